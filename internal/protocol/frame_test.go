package protocol

import "testing"

func TestEncodeEmptyTrailer(t *testing.T) {
	frame := Encode(GetProductId, 0, nil, nil)
	if frame[0] != byte(DirectionTX) {
		t.Fatalf("direction byte = 0x%02X, want 0x%02X", frame[0], DirectionTX)
	}
	if frame[1] != 2 {
		t.Fatalf("length = %d, want 2", frame[1])
	}
	if frame[3] != byte(GetProductId) {
		t.Fatalf("type byte = 0x%02X, want 0x%02X", frame[3], GetProductId)
	}
}

func TestEncodeWithTrailer(t *testing.T) {
	payload := FileIDPayload(0x00830001)
	trailer := []byte{1, 2, 3, 4, 5}
	frame := Encode(WriteFileData, 7, payload, trailer)

	wantLen := 2 + len(payload) + len(trailer)
	if int(frame[1]) != wantLen {
		t.Fatalf("length = %d, want %d", frame[1], wantLen)
	}
	wantTotal := 4 + len(payload) + len(trailer)
	if len(frame) != wantTotal {
		t.Fatalf("frame length = %d, want %d", len(frame), wantTotal)
	}
	if frame[2] != 7 {
		t.Fatalf("counter = %d, want 7", frame[2])
	}
}

func TestParseRejectsWrongDirection(t *testing.T) {
	buf := []byte{byte(DirectionTX), 2, 0, byte(GetProductId)}
	if _, err := Parse(buf); err == nil {
		t.Fatal("expected malformed frame error for TX-directed buffer")
	}
}

func TestParseRejectsOverflowLength(t *testing.T) {
	buf := []byte{byte(DirectionRX), 10, 0, byte(GetProductId)}
	if _, err := Parse(buf); err == nil {
		t.Fatal("expected malformed frame error for overflowing length")
	}
}

func TestParseGetProductIdResponse(t *testing.T) {
	// Scenario 1 from the testable-properties section: 01 06 00 20 00 00 01 5C
	buf := []byte{0x01, 0x06, 0x00, 0x20, 0x00, 0x00, 0x01, 0x5C}
	resp, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if resp.Header.Counter != 0 {
		t.Fatalf("counter = %d, want 0", resp.Header.Counter)
	}
	if resp.Header.Type != GetProductId {
		t.Fatalf("type = %s, want GetProductId", resp.Header.Type)
	}
	got := ParseProductID(resp.Structured)
	if got != 0x0000015C {
		t.Fatalf("product id = 0x%08X, want 0x0000015C", got)
	}
}

func TestParseFirmwareVersionTrailer(t *testing.T) {
	// Scenario 2: 01 08 00 21 "1.8.42" (length = counter + type + 6 trailer bytes)
	buf := append([]byte{0x01, 0x08, 0x00, 0x21}, []byte("1.8.42")...)
	resp, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if string(resp.Trailer) != "1.8.42" {
		t.Fatalf("trailer = %q, want %q", resp.Trailer, "1.8.42")
	}
}

func TestEncodePreservesCounterAndPayload(t *testing.T) {
	payload := FileIDPayload(0x0001_0100)
	frame := Encode(OpenFileRead, 42, payload, nil)
	if frame[2] != 42 {
		t.Fatalf("counter = %d, want 42", frame[2])
	}
	if string(frame[4:8]) != string(payload) {
		t.Fatalf("payload mismatch after encode")
	}
}

func TestFileIDPayloadIsBigEndian(t *testing.T) {
	buf := FileIDPayload(0x00830001)
	want := []byte{0x00, 0x83, 0x00, 0x01}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("FileIDPayload() = % X, want % X", buf, want)
		}
	}
}
