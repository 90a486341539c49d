// Package codec frames published seeds for the seed archive.
//
// Each archive value is one entry holding the serial number a seed was
// published under, the encoded VariationsSeed bytes, and the publish time.
//
// # Entry Format
//
//	[CRC32(4)][SerialSize(4)][PayloadSize(4)][Timestamp(8)][Serial][Payload]
//
// Fields:
//   - CRC32: IEEE checksum over every byte after the CRC field (little-endian)
//   - SerialSize: length of the serial number in bytes (little-endian)
//   - PayloadSize: length of the encoded seed in bytes (little-endian)
//   - Timestamp: publish time, Unix nanoseconds (little-endian)
//   - Serial: serial number bytes
//   - Payload: encoded seed bytes
//
// The header is 20 bytes, so an entry is 20 + len(serial) + len(payload).
//
// # Usage
//
//	c := codec.NewEntryCodec()
//	frame, err := c.Encode(codec.NewEntry(serial, payload, time.Now()))
//	...
//	entry, err := c.Decode(frame)
//	if errors.Is(err, codec.ErrChecksum) {
//	    // archive value is corrupt
//	}
//
// Decode verifies the checksum, so a returned Entry is always intact.
// EntryCodec has no state and is safe for concurrent use.
package codec
