package commands

import (
	"testing"

	"wristsync/internal/engine"
	"wristsync/internal/protocol"
	"wristsync/internal/transport/transporttest"
)

func TestGetWatchTime(t *testing.T) {
	structured := make([]byte, 20)
	protocol.PutUint32BE(structured[0:4], 1700000000)
	body := append([]byte{0, byte(protocol.GetWatchTime)}, structured...)
	frame := append([]byte{0x01, byte(len(body))}, body...)

	mock := transporttest.NewMock(256, frame)
	eng := engine.New(mock)

	got, err := GetWatchTime(eng)
	if err != nil {
		t.Fatalf("GetWatchTime: %v", err)
	}
	if got != 1700000000 {
		t.Fatalf("time = %d, want 1700000000", got)
	}
}

func TestResetDeviceIsSendOnly(t *testing.T) {
	mock := transporttest.NewMock(256)
	eng := engine.New(mock)

	if err := ResetDevice(eng); err != nil {
		t.Fatalf("ResetDevice: %v", err)
	}
	if len(mock.Written) != 1 {
		t.Fatalf("wrote %d frames, want 1", len(mock.Written))
	}
	// No Read should have been attempted; the mock's read index stays at 0.
}

func TestFormatWatchErrorPreservesRawCode(t *testing.T) {
	structured := make([]byte, 20)
	protocol.PutUint32LE(structured[16:20], 7)
	body := append([]byte{0, byte(protocol.FormatWatch)}, structured...)
	frame := append([]byte{0x01, byte(len(body))}, body...)

	mock := transporttest.NewMock(256, frame)
	eng := engine.New(mock)

	err := FormatWatch(eng)
	if err == nil {
		t.Fatal("expected FormatError")
	}
	formatErr, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("err = %T, want *FormatError", err)
	}
	if formatErr.Code != 7 {
		t.Fatalf("code = %d, want 7 (raw unknown code preserved)", formatErr.Code)
	}
}
