// Package di provides dependency injection container
package di

import (
	"time"

	"github.com/ssargent/seedforge/pkg/archive"
	"github.com/ssargent/seedforge/pkg/enums"
	"github.com/ssargent/seedforge/pkg/pipeline"
	"github.com/ssargent/seedforge/pkg/serial"
)

// ArchiveOpener opens the seed archive in a directory
type ArchiveOpener func(dir string) (*archive.Store, error)

// Container holds all the dependencies for the application
type Container struct {
	tables        enums.Tables
	serials       pipeline.SerialGenerator
	archiveOpener ArchiveOpener
	now           func() time.Time
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		tables:        enums.DefaultTables(),
		serials:       serial.NewGenerator(),
		archiveOpener: archive.Open,
		now:           time.Now,
	}
}

// GetTables returns the channel and platform tables shared by validation and transformation
func (c *Container) GetTables() enums.Tables {
	return c.tables
}

// GetSerialGenerator returns the serial number generator
func (c *Container) GetSerialGenerator() pipeline.SerialGenerator {
	return c.serials
}

// SetSerialGenerator allows overriding the serial number generator (for testing)
func (c *Container) SetSerialGenerator(g pipeline.SerialGenerator) {
	c.serials = g
}

// GetArchiveOpener returns the archive opener
func (c *Container) GetArchiveOpener() ArchiveOpener {
	return c.archiveOpener
}

// GetClock returns the clock used for build timing
func (c *Container) GetClock() func() time.Time {
	return c.now
}

// SetClock allows overriding the clock (for testing)
func (c *Container) SetClock(now func() time.Time) {
	c.now = now
}
