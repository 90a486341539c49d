// Package serial generates the per-run serial number stamped into a seed.
//
// The serial number is a cache validation tag (served as an ETag downstream)
// and says nothing about the seed's content.
package serial

import (
	"crypto/md5" //nolint:gosec // not used for security
	"encoding/hex"
	"time"

	"github.com/segmentio/ksuid"
)

// Length is the number of hex characters in a serial number.
const Length = md5.Size * 2

// Generator produces serial numbers from the current time.
type Generator struct {
	now func() time.Time
}

// NewGenerator returns a generator reading the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock returns a generator reading the supplied clock.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Generate returns a lowercase hex MD5 digest of a ksuid minted at the
// current time. The ksuid's random payload separates calls that land in the
// same second.
func (g *Generator) Generate() (string, error) {
	id, err := ksuid.NewRandomWithTime(g.now())
	if err != nil {
		return "", err
	}
	sum := md5.Sum(id.Bytes()) //nolint:gosec
	return hex.EncodeToString(sum[:]), nil
}
