// Package archive keeps a local history of published seeds in pebble.
package archive

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/seedforge/pkg/codec"
)

var (
	entryPrefix  = []byte("e/")
	serialPrefix = []byte("s/")
)

// ErrNotFound is returned when no entry exists for a serial number.
var ErrNotFound = errors.New("archive entry not found")

// Store is a pebble-backed seed history. Entry keys are the big-endian
// publish time in nanoseconds followed by a ksuid, so key order is publish
// order even for builds within the same second.
type Store struct {
	db    *pebble.DB
	codec *codec.EntryCodec
}

// Open opens or creates the archive at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Store{db: db, codec: codec.NewEntryCodec()}, nil
}

// Append records entry and returns its id.
func (s *Store) Append(entry *codec.Entry) (ksuid.KSUID, error) {
	id, err := ksuid.NewRandomWithTime(entry.PublishedAt)
	if err != nil {
		return ksuid.Nil, err
	}

	frame, err := s.codec.Encode(entry)
	if err != nil {
		return ksuid.Nil, err
	}

	key := entryKey(entry.PublishedAt, id)
	b := s.db.NewBatch()
	defer b.Close()
	if err := b.Set(key, frame, nil); err != nil {
		return ksuid.Nil, err
	}
	if err := b.Set(serialKey(entry.Serial), key, nil); err != nil {
		return ksuid.Nil, err
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to commit archive entry: %w", err)
	}
	return id, nil
}

// Get returns the entry published under serial.
func (s *Store) Get(serial string) (*codec.Entry, error) {
	key, err := s.get(serialKey(serial))
	if err != nil {
		return nil, err
	}
	if len(key) != entryKeySize {
		return nil, fmt.Errorf("corrupt serial index for %q", serial)
	}
	frame, err := s.get(key)
	if err != nil {
		return nil, err
	}
	return s.codec.Decode(frame)
}

// List returns up to limit entries, newest first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]*codec.Entry, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: entryPrefix,
		UpperBound: prefixEnd(entryPrefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []*codec.Entry
	for valid := iter.Last(); valid; valid = iter.Prev() {
		entry, err := s.codec.Decode(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("archive key %x: %w", iter.Key(), err)
		}
		entries = append(entries, entry)
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key []byte) ([]byte, error) {
	data, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

const entryKeySize = 2 + 8 + 20

func entryKey(at time.Time, id ksuid.KSUID) []byte {
	key := make([]byte, 0, entryKeySize)
	key = append(key, entryPrefix...)
	key = binary.BigEndian.AppendUint64(key, uint64(at.UnixNano()))
	return append(key, id.Bytes()...)
}

func serialKey(serial string) []byte {
	return append(append([]byte(nil), serialPrefix...), serial...)
}

func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	end[len(end)-1]++
	return end
}
