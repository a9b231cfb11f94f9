// Package directory implements the find-first/find-next directory
// enumerator: a lazy, finite, non-restartable walk over the device's file
// table yielding (FileId, size) pairs.
package directory

import (
	"wristsync/internal/engine"
	"wristsync/internal/protocol"
)

// Entry is one file in the device's directory.
type Entry struct {
	FileID uint32
	Size   uint32
}

// Enumerator walks a device's directory one entry at a time via
// FindFirstFile/FindNextFile transactions. A new Enumerator must be created
// to restart a walk; it cannot be rewound.
type Enumerator struct {
	engine  *engine.Engine
	started bool
	done    bool
}

// NewEnumerator constructs an Enumerator over eng. No transaction is issued
// until the first call to Next.
func NewEnumerator(eng *engine.Engine) *Enumerator {
	return &Enumerator{engine: eng}
}

// Next returns the next directory entry. ok is false once the device
// reports end_of_list (that response's own entry is excluded) or once a
// prior call has already terminated the enumeration. err is non-nil if the
// underlying transaction failed, which also aborts the enumeration.
func (e *Enumerator) Next() (entry Entry, ok bool, err error) {
	if e.done {
		return Entry{}, false, nil
	}

	var msgType protocol.MessageType
	var payload []byte
	if !e.started {
		msgType = protocol.FindFirstFile
		payload = protocol.FindFirstPayload()
		e.started = true
	} else {
		msgType = protocol.FindNextFile
	}

	resp, err := e.engine.Transaction(msgType, payload, nil)
	if err != nil {
		e.done = true
		return Entry{}, false, err
	}

	parsed := protocol.ParseDirectoryEntryResponse(resp.Structured)
	if parsed.EndOfList {
		e.done = true
		return Entry{}, false, nil
	}

	return Entry{FileID: parsed.FileID, Size: parsed.FileSize}, true, nil
}

// ListFiles drains the enumerator to completion and returns every entry in order.
func ListFiles(eng *engine.Engine) ([]Entry, error) {
	enumerator := NewEnumerator(eng)
	var entries []Entry
	for {
		entry, ok, err := enumerator.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return entries, nil
		}
		entries = append(entries, entry)
	}
}
