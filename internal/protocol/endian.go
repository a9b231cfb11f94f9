package protocol

import "encoding/binary"

// PutUint32BE writes v into buf[0:4] in big-endian order. The protocol uses
// big-endian wire encoding only for file identifiers and the time/file_size/
// product_id scalar fields; every other multi-byte field is little-endian.
func PutUint32BE(buf []byte, v uint32) {
	binary.BigEndian.PutUint32(buf, v)
}

// Uint32BE reads a big-endian uint32 from buf[0:4].
func Uint32BE(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}

// PutUint32LE writes v into buf[0:4] in little-endian order.
func PutUint32LE(buf []byte, v uint32) {
	binary.LittleEndian.PutUint32(buf, v)
}

// Uint32LE reads a little-endian uint32 from buf[0:4].
func Uint32LE(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}
