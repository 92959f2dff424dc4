// Package hash provides the integrity checksum used by persisted artifacts.
//
// Correction artifacts carry a CRC32-Castagnoli checksum over their stored
// payload; the S3 store sends the same checksum with uploads so the service
// rejects corrupted transfers.
//
//	sum := hash.CRC32C(payload)
//	b64 := hash.CRC32CBase64(payload) // S3 x-amz-checksum-crc32c
package hash
