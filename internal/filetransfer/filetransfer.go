// Package filetransfer implements the file-transfer state machine: open,
// size, chunked read/write, and close sequences composed atop the
// transaction engine, with field-level endianness applied at the
// payload-construction site and best-effort close on every exit path.
package filetransfer

import (
	"fmt"
	"log"

	"wristsync/internal/deviceprofile"
	"wristsync/internal/engine"
	"wristsync/internal/protocol"
)

// OpenError wraps a non-zero error field returned by OpenFileRead/OpenFileWrite.
type OpenError struct {
	FileID uint32
	Code   uint32
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open file 0x%08X failed: device error code %d", e.FileID, e.Code)
}

// OperationError wraps a non-zero error field on any other file operation
// (close, delete, get-size, write). The raw device code is preserved.
type OperationError struct {
	Op     string
	FileID uint32
	Code   uint32
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s file 0x%08X failed: device error code %d", e.Op, e.FileID, e.Code)
}

// Service performs file operations over one Engine, using profile's chunk
// sizes for read/write.
type Service struct {
	engine  *engine.Engine
	profile deviceprofile.Profile
	logger  *log.Logger
}

// NewService constructs a file-transfer Service over eng, sized by profile.
func NewService(eng *engine.Engine, profile deviceprofile.Profile) *Service {
	return &Service{engine: eng, profile: profile, logger: log.Default()}
}

// openRead transacts OpenFileRead and fails without attempting a close if
// the device reports an error — the file was never successfully opened.
func (s *Service) openRead(fileID uint32) error {
	resp, err := s.engine.Transaction(protocol.OpenFileRead, protocol.FileIDPayload(fileID), nil)
	if err != nil {
		return err
	}
	if code := protocol.ParseFileOperationResponse(resp.Structured).Error; code != 0 {
		return &OpenError{FileID: fileID, Code: code}
	}
	return nil
}

// openWrite transacts OpenFileWrite, same failure contract as openRead.
func (s *Service) openWrite(fileID uint32) error {
	resp, err := s.engine.Transaction(protocol.OpenFileWrite, protocol.FileIDPayload(fileID), nil)
	if err != nil {
		return err
	}
	if code := protocol.ParseFileOperationResponse(resp.Structured).Error; code != 0 {
		return &OpenError{FileID: fileID, Code: code}
	}
	return nil
}

// closeFile issues CloseFile. When checkError is false, a non-zero device
// error or transaction failure is swallowed — used for the best-effort
// close on an already-failing exit path, matching the scoped-resource
// discipline: cleanup errors never shadow an earlier real error.
func (s *Service) closeFile(fileID uint32, checkError bool) error {
	resp, err := s.engine.Transaction(protocol.CloseFile, protocol.FileIDPayload(fileID), nil)
	if err != nil {
		if !checkError {
			s.logger.Printf("filetransfer: suppressed close error for 0x%08X: %v", fileID, err)
			return nil
		}
		return err
	}
	if code := protocol.ParseFileOperationResponse(resp.Structured).Error; code != 0 {
		if !checkError {
			s.logger.Printf("filetransfer: suppressed close error code %d for 0x%08X", code, fileID)
			return nil
		}
		return &OperationError{Op: "close", FileID: fileID, Code: code}
	}
	return nil
}

// GetFileSize transacts GetFileSize and returns the big-endian size
// converted to host order; a non-zero device error is surfaced as an
// OperationError.
func (s *Service) GetFileSize(fileID uint32) (uint32, error) {
	resp, err := s.engine.Transaction(protocol.GetFileSize, protocol.FileIDPayload(fileID), nil)
	if err != nil {
		return 0, err
	}
	parsed := protocol.ParseFileSizeResponse(resp.Structured)
	if parsed.Error != 0 {
		return 0, &OperationError{Op: "get-size", FileID: fileID, Code: parsed.Error}
	}
	return parsed.FileSize, nil
}

// DeleteFile transacts DeleteFile; a non-zero device error is surfaced as
// an OperationError.
func (s *Service) DeleteFile(fileID uint32) error {
	resp, err := s.engine.Transaction(protocol.DeleteFile, protocol.FileIDPayload(fileID), nil)
	if err != nil {
		return err
	}
	if code := protocol.ParseFileOperationResponse(resp.Structured).Error; code != 0 {
		return &OperationError{Op: "delete", FileID: fileID, Code: code}
	}
	return nil
}

// ReadFile opens fileID for reading, drains it in profile.ReadChunk-sized
// requests until a short read (or a zero/zero read) signals end of file,
// and closes it — attempting the close on every exit path, including after
// a mid-transfer failure.
func (s *Service) ReadFile(fileID uint32) (data []byte, err error) {
	if err = s.openRead(fileID); err != nil {
		return nil, err
	}

	defer func() {
		closeErr := s.closeFile(fileID, err == nil)
		if err == nil {
			err = closeErr
		}
	}()

	// A returned size is a reservation hint only; termination is short-read
	// driven (§4.F). A transaction failure here is not, and must abort the
	// read like any other mid-transfer error.
	size, sizeErr := s.GetFileSize(fileID)
	if sizeErr != nil {
		return nil, sizeErr
	}
	data = make([]byte, 0, size)

	chunk := s.profile.ReadChunk
	for {
		resp, txErr := s.engine.Transaction(protocol.ReadFileDataRequest,
			protocol.ReadRequestPayload(fileID, chunk), nil)
		if txErr != nil {
			return nil, txErr
		}
		parsed := protocol.ParseReadDataResponse(resp.Structured)
		data = append(data, resp.Trailer...)

		if parsed.ReadLength < chunk || (parsed.ReadLength == 0 && len(resp.Trailer) == 0) {
			break
		}
	}
	return data, nil
}

// WriteFile opens fileID for writing, transmits data in
// profile.WriteChunk-sized frames (the framer folds trailer length into
// each frame's length byte automatically), and closes it on every exit path.
func (s *Service) WriteFile(fileID uint32, data []byte) (err error) {
	if err = s.openWrite(fileID); err != nil {
		return err
	}

	defer func() {
		closeErr := s.closeFile(fileID, err == nil)
		if err == nil {
			err = closeErr
		}
	}()

	chunk := int(s.profile.WriteChunk)
	for offset := 0; offset < len(data); offset += chunk {
		end := offset + chunk
		if end > len(data) {
			end = len(data)
		}
		resp, txErr := s.engine.Transaction(protocol.WriteFileData,
			protocol.FileIDPayload(fileID), data[offset:end])
		if txErr != nil {
			return txErr
		}
		if code := protocol.ParseFileOperationResponse(resp.Structured).Error; code != 0 {
			return &OperationError{Op: "write", FileID: fileID, Code: code}
		}
	}
	// An empty file still requires an open/close pair with zero write
	// transactions; the loop above naturally performs none when len(data)==0.
	return nil
}
