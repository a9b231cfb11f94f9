package protocol

// MessageType is the 8-bit opcode identifying a protocol operation.
type MessageType byte

const (
	OpenFileWrite        MessageType = 0x02
	DeleteFile           MessageType = 0x03
	WriteFileData        MessageType = 0x04
	GetFileSize          MessageType = 0x05
	OpenFileRead         MessageType = 0x06
	ReadFileDataRequest  MessageType = 0x07
	ReadFileDataResponse MessageType = 0x09
	FindFirstFile        MessageType = 0x11
	FindNextFile         MessageType = 0x12
	GetWatchTime         MessageType = 0x14
	ResetGpsProcessor    MessageType = 0x1D
	GetProductId         MessageType = 0x20
	GetFirmwareVersion   MessageType = 0x21
	GetBleVersion        MessageType = 0x28
	CloseFile            MessageType = 0x0C
	FormatWatch          MessageType = 0x0E
	ResetDevice          MessageType = 0x10
)

var messageTypeNames = map[MessageType]string{
	OpenFileWrite:        "OpenFileWrite",
	DeleteFile:           "DeleteFile",
	WriteFileData:        "WriteFileData",
	GetFileSize:          "GetFileSize",
	OpenFileRead:         "OpenFileRead",
	ReadFileDataRequest:  "ReadFileDataRequest",
	ReadFileDataResponse: "ReadFileDataResponse",
	FindFirstFile:        "FindFirstFile",
	FindNextFile:         "FindNextFile",
	GetWatchTime:         "GetWatchTime",
	ResetGpsProcessor:    "ResetGpsProcessor",
	GetProductId:         "GetProductId",
	GetFirmwareVersion:   "GetFirmwareVersion",
	GetBleVersion:        "GetBleVersion",
	CloseFile:            "CloseFile",
	FormatWatch:          "FormatWatch",
	ResetDevice:          "ResetDevice",
}

func (m MessageType) String() string {
	if name, ok := messageTypeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ExpectedResponse returns the opcode a response to request type m must
// carry. Every operation expects its own opcode echoed back except file
// reads, where the device answers 0x07 requests with a 0x09 response.
func ExpectedResponse(request MessageType) MessageType {
	if request == ReadFileDataRequest {
		return ReadFileDataResponse
	}
	return request
}

// structuredPayloadSize is the fixed, opcode-specific portion of a response
// body, in bytes. Any body bytes beyond this size are trailer.
var structuredPayloadSize = map[MessageType]int{
	OpenFileWrite:        20,
	OpenFileRead:         20,
	CloseFile:            20,
	DeleteFile:           20,
	GetFileSize:          20,
	FindFirstFile:        20,
	FindNextFile:         20,
	ReadFileDataResponse: 8,
	WriteFileData:        20,
	GetWatchTime:         20,
	GetFirmwareVersion:   0,
	GetBleVersion:        0,
	GetProductId:         4,
	FormatWatch:          20,
	ResetGpsProcessor:    0,
}

// StructuredPayloadSize returns the fixed response-body size for responseType,
// used by the framer to partition a parsed body into structured bytes and
// trailer. Opcodes with no registered size (e.g. send-only ResetDevice) report 0.
func StructuredPayloadSize(responseType MessageType) int {
	return structuredPayloadSize[responseType]
}
