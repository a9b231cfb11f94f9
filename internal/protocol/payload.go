package protocol

// Payload construction and parsing helpers for the structured portion of
// each (message_type, direction) pair in the §6 wire table. Endianness is
// applied per named field here, at the semantic site, rather than assumed
// frame-wide: file identifiers and the time/file_size/product_id scalars
// are big-endian; everything else is little-endian.

// FileIDPayload builds the 4-byte structured payload shared by
// OpenFileRead, OpenFileWrite, CloseFile, DeleteFile and the GetFileSize
// request: a single big-endian file identifier.
func FileIDPayload(fileID uint32) []byte {
	buf := make([]byte, 4)
	PutUint32BE(buf, fileID)
	return buf
}

// ReadRequestPayload builds the 8-byte ReadFileDataRequest payload:
// file_id (BE) followed by the requested chunk length (LE).
func ReadRequestPayload(fileID uint32, length uint32) []byte {
	buf := make([]byte, 8)
	PutUint32BE(buf[0:4], fileID)
	PutUint32LE(buf[4:8], length)
	return buf
}

// FindFirstPayload builds the 8-byte FindFirstFile payload: two reserved
// little-endian words.
func FindFirstPayload() []byte {
	return make([]byte, 8)
}

// FileOperationResponse is the common 20-byte shape shared by
// OpenFile{Read,Write}, CloseFile, DeleteFile, WriteFileData and
// FormatWatch responses: reserved, file_id, reserved, reserved, error.
// Only the fields each operation actually defines are populated by callers.
type FileOperationResponse struct {
	Error uint32
}

// ParseFileOperationResponse reads the trailing little-endian error/status
// word from a 20-byte file-operation response body.
func ParseFileOperationResponse(structured []byte) FileOperationResponse {
	if len(structured) < 20 {
		return FileOperationResponse{}
	}
	return FileOperationResponse{Error: Uint32LE(structured[16:20])}
}

// FileSizeResponse carries the big-endian file size from a GetFileSize reply.
type FileSizeResponse struct {
	FileSize uint32
	Error    uint32
}

// ParseFileSizeResponse reads file_size (BE, offset 12) from the 20-byte
// GetFileSize response body. The trailing word doubles as an error/reserved
// field depending on firmware; it is surfaced for callers that wish to check it.
func ParseFileSizeResponse(structured []byte) FileSizeResponse {
	if len(structured) < 20 {
		return FileSizeResponse{}
	}
	return FileSizeResponse{
		FileSize: Uint32BE(structured[12:16]),
		Error:    Uint32LE(structured[16:20]),
	}
}

// DirectoryEntryResponse is the 20-byte FindFirst/FindNext response shape.
type DirectoryEntryResponse struct {
	FileID    uint32
	FileSize  uint32
	EndOfList bool
}

// ParseDirectoryEntryResponse reads file_id (BE, offset 4), file_size (BE,
// offset 12) and end_of_list (LE, offset 16) from the response body.
func ParseDirectoryEntryResponse(structured []byte) DirectoryEntryResponse {
	if len(structured) < 20 {
		return DirectoryEntryResponse{}
	}
	return DirectoryEntryResponse{
		FileID:    Uint32BE(structured[4:8]),
		FileSize:  Uint32BE(structured[12:16]),
		EndOfList: Uint32LE(structured[16:20]) != 0,
	}
}

// ReadDataResponse is the 8-byte ReadFileDataResponse structured shape:
// file_id (BE) followed by read_length (LE). The trailer carries the file
// data itself.
type ReadDataResponse struct {
	FileID     uint32
	ReadLength uint32
}

// ParseReadDataResponse reads file_id (BE) and read_length (LE) from an
// 8-byte ReadFileDataResponse body.
func ParseReadDataResponse(structured []byte) ReadDataResponse {
	if len(structured) < 8 {
		return ReadDataResponse{}
	}
	return ReadDataResponse{
		FileID:     Uint32BE(structured[0:4]),
		ReadLength: Uint32LE(structured[4:8]),
	}
}

// WatchTimeResponse carries the big-endian UNIX time from a GetWatchTime reply.
type WatchTimeResponse struct {
	Time uint32
}

// ParseWatchTimeResponse reads the big-endian time value from offset 0 of
// the 20-byte GetWatchTime response body (16 reserved bytes follow it).
func ParseWatchTimeResponse(structured []byte) WatchTimeResponse {
	if len(structured) < 4 {
		return WatchTimeResponse{}
	}
	return WatchTimeResponse{Time: Uint32BE(structured[0:4])}
}

// ParseProductID reads the big-endian product identifier from a 4-byte
// GetProductId response body.
func ParseProductID(structured []byte) uint32 {
	if len(structured) < 4 {
		return 0
	}
	return Uint32BE(structured[0:4])
}

// ParseFormatResponse reads the trailing little-endian error code from a
// 20-byte FormatWatch response body (16 reserved bytes precede it).
func ParseFormatResponse(structured []byte) uint32 {
	if len(structured) < 20 {
		return 0
	}
	return Uint32LE(structured[16:20])
}
