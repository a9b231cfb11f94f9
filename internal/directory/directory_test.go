package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wristsync/internal/engine"
	"wristsync/internal/protocol"
	"wristsync/internal/transport/transporttest"
)

func entryFrame(counter byte, msgType protocol.MessageType, fileID, size uint32, endOfList bool) []byte {
	structured := make([]byte, 20)
	protocol.PutUint32BE(structured[4:8], fileID)
	protocol.PutUint32BE(structured[12:16], size)
	if endOfList {
		protocol.PutUint32LE(structured[16:20], 1)
	}
	body := append([]byte{counter, byte(msgType)}, structured...)
	return append([]byte{0x01, byte(len(body))}, body...)
}

func TestListFilesYieldsEntriesUntilEndOfList(t *testing.T) {
	mock := transporttest.NewMock(256,
		entryFrame(0, protocol.FindFirstFile, 0x00830001, 1024, false),
		entryFrame(1, protocol.FindNextFile, 0x00830002, 2048, false),
		entryFrame(2, protocol.FindNextFile, 0, 0, true),
	)
	eng := engine.New(mock)

	entries, err := ListFiles(eng)
	assert.NoError(t, err)
	assert.Equal(t, []Entry{
		{FileID: 0x00830001, Size: 1024},
		{FileID: 0x00830002, Size: 2048},
	}, entries)
}

func TestListFilesAbortsOnTransactionFailure(t *testing.T) {
	mock := transporttest.NewMock(256,
		entryFrame(0, protocol.FindFirstFile, 0x00830001, 1024, false),
	)
	mock.FailRead = assertError{"device unplugged"}
	eng := engine.New(mock)
	// Consume the single scripted reply, then force the next Read to error.
	enumerator := NewEnumerator(eng)
	_, ok, err := enumerator.Next()
	assert.True(t, ok)
	assert.NoError(t, err)

	_, ok, err = enumerator.Next()
	assert.False(t, ok)
	assert.Error(t, err)
}

type assertError struct{ msg string }

func (e assertError) Error() string { return e.msg }
