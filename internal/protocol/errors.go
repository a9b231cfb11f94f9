package protocol

import "fmt"

// MalformedFrameError is raised when the framer rejects raw bytes: a wrong
// direction byte, a length that overflows the buffer, or a frame that
// doesn't fit the transport's report size.
type MalformedFrameError struct {
	Reason string
}

func (e *MalformedFrameError) Error() string {
	return fmt.Sprintf("malformed frame: %s", e.Reason)
}

// UnexpectedPacketError indicates a response opcode did not match what the
// transaction expected.
type UnexpectedPacketError struct {
	Expected MessageType
	Actual   MessageType
}

func (e *UnexpectedPacketError) Error() string {
	return fmt.Sprintf("unexpected packet: expected %s (0x%02X), got %s (0x%02X)",
		e.Expected, byte(e.Expected), e.Actual, byte(e.Actual))
}
