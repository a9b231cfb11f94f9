package protocol

// Header is the 4-byte packet header present on every frame: direction,
// length, counter, type.
type Header struct {
	Direction Direction
	Length    byte
	Counter   byte
	Type      MessageType
}

// ParsedResponse is the result of parsing an inbound frame: the header plus
// the body split into its fixed structured portion and variable trailer.
type ParsedResponse struct {
	Header     Header
	Structured []byte
	Trailer    []byte
}

// Encode serializes a typed request into a contiguous wire frame:
// [direction, length, counter, type, payload..., trailer...].
// direction is always DirectionTX for host-originated frames. length is
// computed as 2 + len(payload) + len(trailer) per spec.
func Encode(msgType MessageType, counter byte, payload, trailer []byte) []byte {
	length := 2 + len(payload) + len(trailer)
	frame := make([]byte, 4+len(payload)+len(trailer))
	frame[0] = byte(DirectionTX)
	frame[1] = byte(length)
	frame[2] = counter
	frame[3] = byte(msgType)
	copy(frame[4:], payload)
	copy(frame[4+len(payload):], trailer)
	return frame
}

// Parse reads direction and length from buf, validates the direction is
// RX, and partitions the remaining body into a fixed structured portion
// (sized per the response's message type) and a trailer. Bodies shorter
// than the registered structured size are zero-filled, matching devices
// that legitimately return short fixed payloads.
func Parse(buf []byte) (*ParsedResponse, error) {
	if len(buf) < 2 {
		return nil, &MalformedFrameError{Reason: "frame shorter than 2 bytes"}
	}
	direction := Direction(buf[0])
	if direction != DirectionRX {
		return nil, &MalformedFrameError{Reason: "direction byte is not RX"}
	}
	length := int(buf[1])
	if length < 2 {
		return nil, &MalformedFrameError{Reason: "length field below minimum of 2"}
	}
	if 2+length > len(buf) {
		return nil, &MalformedFrameError{Reason: "length field overflows buffer"}
	}
	body := buf[2 : 2+length]
	counter := body[0]
	msgType := MessageType(body[1])
	rest := body[2:]

	structuredSize := StructuredPayloadSize(msgType)
	structured := make([]byte, structuredSize)
	var trailer []byte
	if len(rest) >= structuredSize {
		copy(structured, rest[:structuredSize])
		trailer = append([]byte(nil), rest[structuredSize:]...)
	} else {
		copy(structured, rest)
		trailer = nil
	}

	return &ParsedResponse{
		Header: Header{
			Direction: direction,
			Length:    buf[1],
			Counter:   counter,
			Type:      msgType,
		},
		Structured: structured,
		Trailer:    trailer,
	}, nil
}
