package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"time"
)

// HeaderSize is the fixed size of an entry header.
const HeaderSize = 20

var (
	// ErrShortFrame is returned when data is smaller than its header claims.
	ErrShortFrame = errors.New("entry frame too short")
	// ErrChecksum is returned when an entry fails CRC32 validation.
	ErrChecksum = errors.New("entry checksum mismatch")
)

// Entry is one published seed.
type Entry struct {
	Serial      string    // Serial number the seed was published under
	Payload     []byte    // Encoded VariationsSeed
	PublishedAt time.Time // Publish time
}

// EntryCodec converts entries to and from their archive frame.
type EntryCodec struct{}

// NewEntryCodec creates a new entry codec.
func NewEntryCodec() *EntryCodec {
	return &EntryCodec{}
}

// NewEntry creates an entry for a seed published at t.
func NewEntry(serial string, payload []byte, t time.Time) *Entry {
	return &Entry{Serial: serial, Payload: payload, PublishedAt: t}
}

// Size returns the encoded size of e.
func (e *Entry) Size() int {
	return HeaderSize + len(e.Serial) + len(e.Payload)
}

// Encode frames e.
func (c *EntryCodec) Encode(e *Entry) ([]byte, error) {
	if uint64(len(e.Serial)) > uint64(^uint32(0)) || uint64(len(e.Payload)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("entry too large: serial=%d payload=%d", len(e.Serial), len(e.Payload))
	}

	buf := make([]byte, e.Size())
	serialSize := uint32(len(e.Serial))

	binary.LittleEndian.PutUint32(buf[4:], serialSize)
	binary.LittleEndian.PutUint32(buf[8:], uint32(len(e.Payload)))
	binary.LittleEndian.PutUint64(buf[12:], uint64(e.PublishedAt.UnixNano()))
	copy(buf[HeaderSize:], e.Serial)
	copy(buf[HeaderSize+serialSize:], e.Payload)
	binary.LittleEndian.PutUint32(buf[0:], crc32.ChecksumIEEE(buf[4:]))

	return buf, nil
}

// Decode parses and verifies a frame. The returned payload is a copy.
func (c *EntryCodec) Decode(data []byte) (*Entry, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(data))
	}

	sum := binary.LittleEndian.Uint32(data[0:4])
	serialSize := uint64(binary.LittleEndian.Uint32(data[4:8]))
	payloadSize := uint64(binary.LittleEndian.Uint32(data[8:12]))
	ts := int64(binary.LittleEndian.Uint64(data[12:20]))

	want := HeaderSize + serialSize + payloadSize
	if uint64(len(data)) < want {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortFrame, len(data), want)
	}
	data = data[:want]

	if got := crc32.ChecksumIEEE(data[4:]); got != sum {
		return nil, fmt.Errorf("%w: %d != %d", ErrChecksum, sum, got)
	}

	serialEnd := HeaderSize + serialSize
	payload := make([]byte, payloadSize)
	copy(payload, data[serialEnd:])

	return &Entry{
		Serial:      string(data[HeaderSize:serialEnd]),
		Payload:     payload,
		PublishedAt: time.Unix(0, ts).UTC(),
	}, nil
}
