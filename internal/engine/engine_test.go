package engine

import (
	"testing"

	"wristsync/internal/protocol"
	"wristsync/internal/transport/transporttest"
)

func TestGetProductIdTransaction(t *testing.T) {
	mock := transporttest.NewMock(256, []byte{0x01, 0x06, 0x00, 0x20, 0x00, 0x00, 0x01, 0x5C})
	eng := New(mock)

	resp, err := eng.Transaction(protocol.GetProductId, nil, nil)
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	got := protocol.ParseProductID(resp.Structured)
	if got != 0x0000015C {
		t.Fatalf("product id = 0x%08X, want 0x0000015C", got)
	}

	sent := mock.LastWritten()
	want := []byte{0x09, 0x02, 0x00, 0x20}
	for i := range want {
		if sent[i] != want[i] {
			t.Fatalf("written frame = % X, want % X", sent, want)
		}
	}

	if eng.Counter() != 1 {
		t.Fatalf("counter after first transaction = %d, want 1", eng.Counter())
	}
}

func TestFirmwareVersionTrailer(t *testing.T) {
	reply := append([]byte{0x01, 0x08, 0x00, 0x21}, []byte("1.8.42")...)
	mock := transporttest.NewMock(256, reply)
	eng := New(mock)

	resp, err := eng.Transaction(protocol.GetFirmwareVersion, nil, nil)
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	if string(resp.Trailer) != "1.8.42" {
		t.Fatalf("firmware version = %q, want %q", resp.Trailer, "1.8.42")
	}
}

func TestCounterWrapsModulo256(t *testing.T) {
	replies := make([][]byte, 0, 257)
	for i := 0; i < 257; i++ {
		counter := byte(i % 256)
		replies = append(replies, []byte{0x01, 0x06, counter, 0x20, 0, 0, 0, 0})
	}
	mock := transporttest.NewMock(256, replies...)
	eng := New(mock)

	for i := 0; i < 256; i++ {
		if _, err := eng.Transaction(protocol.GetProductId, nil, nil); err != nil {
			t.Fatalf("transaction %d: %v", i, err)
		}
	}
	if eng.Counter() != 0 {
		t.Fatalf("counter after 256 transactions = %d, want 0 (wrapped)", eng.Counter())
	}
}

func TestOutOfSyncResponseDetection(t *testing.T) {
	// Request is sent with counter=5 (by pre-advancing), reply carries counter=4.
	mock := transporttest.NewMock(256)
	eng := New(mock)
	eng.counter = 5
	mock.Replies = [][]byte{{0x01, 0x06, 0x04, 0x20, 0, 0, 0, 0}}

	_, err := eng.Transaction(protocol.GetProductId, nil, nil)
	if err == nil {
		t.Fatal("expected OutOfSyncResponseError")
	}
	desyncErr, ok := err.(*OutOfSyncResponseError)
	if !ok {
		t.Fatalf("err = %T, want *OutOfSyncResponseError", err)
	}
	if desyncErr.Expected != 5 || desyncErr.Actual != 4 {
		t.Fatalf("got expected=%d actual=%d, want expected=5 actual=4", desyncErr.Expected, desyncErr.Actual)
	}
}

func TestUnexpectedPacketType(t *testing.T) {
	mock := transporttest.NewMock(256, []byte{0x01, 0x02, 0x00, 0x21})
	eng := New(mock)

	_, err := eng.Transaction(protocol.GetProductId, nil, nil)
	if err == nil {
		t.Fatal("expected UnexpectedPacketError")
	}
	unexpected, ok := err.(*protocol.UnexpectedPacketError)
	if !ok {
		t.Fatalf("err = %T, want *protocol.UnexpectedPacketError", err)
	}
	if unexpected.Expected != protocol.GetProductId || unexpected.Actual != protocol.GetFirmwareVersion {
		t.Fatalf("got expected=%s actual=%s", unexpected.Expected, unexpected.Actual)
	}
}
