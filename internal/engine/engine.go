// Package engine implements the synchronous transaction engine: it owns a
// transport and a rolling counter, and serializes request/response pairs
// over the device's single-duplex HID channel. At most one transaction may
// be in flight at any moment; the engine is not reentrant (§5).
package engine

import (
	"fmt"
	"log"
	"time"

	"wristsync/internal/protocol"
	"wristsync/internal/transport"
)

// DefaultTimeout bounds codec-level reads and writes when callers don't
// supply their own, matching the 2000ms default noted for codec reads.
const DefaultTimeout = 2 * time.Second

// zeroReadRetries is the number of zero-byte reads tolerated before the
// engine gives up and raises a timeout. Short reads (fewer bytes than a
// full report) are not retried; they would indicate a malformed transport,
// which is outside the engine's recovery scope.
const zeroReadRetries = 3

// Engine owns a Transport and the rolling request counter, and executes
// one request/response exchange at a time.
type Engine struct {
	transport transport.Transport
	counter   byte
	timeout   time.Duration
	logger    *log.Logger
}

// New constructs an Engine over an already-open transport. transport must
// not be nil; passing nil is a programmer error and panics, matching the
// "invalid argument... programmer error" category in the error taxonomy.
func New(t transport.Transport) *Engine {
	if t == nil {
		panic("engine: nil transport")
	}
	return &Engine{
		transport: t,
		timeout:   DefaultTimeout,
		logger:    log.Default(),
	}
}

// SetTimeout overrides the per-call read/write timeout. File operations may
// want a longer budget (5s is acceptable per spec) than the codec default.
func (e *Engine) SetTimeout(d time.Duration) {
	e.timeout = d
}

// Counter returns the counter that will be stamped into the next outbound
// request.
func (e *Engine) Counter() byte {
	return e.counter
}

// nextCounter returns the current counter and advances it, wrapping modulo 256.
func (e *Engine) nextCounter() byte {
	c := e.counter
	e.counter++
	return c
}

// Send stamps payload with the current counter, advances the counter, and
// writes the framed request. It does not wait for a response; used only
// for commands that solicit none (ResetDevice). A frame larger than the
// transport's output report size is rejected with a MalformedFrameError
// before the counter advances.
func (e *Engine) Send(msgType protocol.MessageType, payload, trailer []byte) error {
	size, limit := 4+len(payload)+len(trailer), e.transport.Info().ReportOutSize
	if limit > 0 && size > limit {
		return &protocol.MalformedFrameError{Reason: fmt.Sprintf("frame of %d bytes exceeds report size %d", size, limit)}
	}
	counter := e.nextCounter()
	frame := protocol.Encode(msgType, counter, payload, trailer)
	n, err := e.transport.Write(frame, e.timeout)
	if err != nil {
		return &transport.ConnectionError{Op: "send", Err: err}
	}
	if n != len(frame) {
		return &transport.ConnectionError{Op: "send", Err: shortWriteError{wrote: n, want: len(frame)}}
	}
	return nil
}

// shortWriteError reports a write that completed without error but moved
// fewer bytes than the frame's length.
type shortWriteError struct {
	wrote, want int
}

func (e shortWriteError) Error() string {
	return "short write"
}

// Receive blocks for one response, validates it, and returns the parsed
// result. expectedType is the opcode the response must carry (the caller
// resolves request→expected-response asymmetry via protocol.ExpectedResponse
// before calling Receive). expectedCounter is the counter stamped into the
// paired request.
func (e *Engine) Receive(expectedType protocol.MessageType, expectedCounter byte) (*protocol.ParsedResponse, error) {
	reportSize := e.transport.Info().ReportInSize
	if reportSize <= 0 {
		reportSize = 256
	}
	buf := make([]byte, reportSize)

	var n int
	var err error
	for attempt := 0; attempt < zeroReadRetries; attempt++ {
		n, err = e.transport.Read(buf, e.timeout)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			break
		}
	}
	if n == 0 {
		return nil, &TimeoutError{Retries: zeroReadRetries}
	}

	resp, err := protocol.Parse(buf[:n])
	if err != nil {
		return nil, err
	}
	if resp.Header.Type != expectedType {
		return nil, &protocol.UnexpectedPacketError{Expected: expectedType, Actual: resp.Header.Type}
	}
	if resp.Header.Counter != expectedCounter {
		return nil, &OutOfSyncResponseError{Expected: expectedCounter, Actual: resp.Header.Counter}
	}
	return resp, nil
}

// Transaction sends request and blocks for its matching response. The
// expected response opcode is derived from request via
// protocol.ExpectedResponse, handling the file-read request/response
// asymmetry.
func (e *Engine) Transaction(request protocol.MessageType, payload, trailer []byte) (*protocol.ParsedResponse, error) {
	counter := e.counter
	if err := e.Send(request, payload, trailer); err != nil {
		return nil, err
	}
	expected := protocol.ExpectedResponse(request)
	resp, err := e.Receive(expected, counter)
	if err != nil {
		e.logger.Printf("engine: transaction %s failed: %v", request, err)
	}
	return resp, err
}
