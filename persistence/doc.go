// Package persistence stores guide trees in a blob store.
//
// Each blob is a small self-describing envelope around a codec payload:
//
//	Magic u32 | Version u32 | PayloadLen u64 | Checksum u32 | NameLen u8 | Codec name | Payload
//
// All integers are little-endian. The checksum is the CRC32 (IEEE) of the
// payload, and the codec name selects the decoder on load, so trees written
// with any built-in codec can be read back without configuration.
package persistence
