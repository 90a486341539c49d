// Package enums holds the name to wire-code tables for study filter
// channels and platforms.
//
// A single Tables value is built once and handed to both the validator and
// the transformer, so an accepted name is always one the transformer can map.
package enums

import (
	"fmt"
	"sort"
)

// Kind names the filter attribute a table covers.
type Kind string

const (
	KindChannel  Kind = "channel"
	KindPlatform Kind = "platform"
)

// Channel wire codes (Study.Channel).
const (
	ChannelUnknown int32 = -1
	ChannelCanary  int32 = 0
	ChannelDev     int32 = 1
	ChannelBeta    int32 = 2
	ChannelStable  int32 = 3
)

// Platform wire codes (Study.Platform).
const (
	PlatformWindows  int32 = 0
	PlatformMac      int32 = 1
	PlatformLinux    int32 = 2
	PlatformChromeOS int32 = 3
	PlatformAndroid  int32 = 4
	PlatformIOS      int32 = 5
)

// UnsupportedValueError is returned when a name has no entry in a table.
type UnsupportedValueError struct {
	Kind  Kind
	Value string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported %s value %q", e.Kind, e.Value)
}

// Table is an immutable name to code mapping.
type Table struct {
	kind  Kind
	codes map[string]int32
}

// NewTable copies entries into a new table.
func NewTable(kind Kind, entries map[string]int32) Table {
	codes := make(map[string]int32, len(entries))
	for name, code := range entries {
		codes[name] = code
	}
	return Table{kind: kind, codes: codes}
}

// Kind returns the attribute this table maps.
func (t Table) Kind() Kind {
	return t.kind
}

// Lookup returns the wire code for name.
func (t Table) Lookup(name string) (int32, error) {
	code, ok := t.codes[name]
	if !ok {
		return 0, &UnsupportedValueError{Kind: t.kind, Value: name}
	}
	return code, nil
}

// Contains reports whether name is in the table.
func (t Table) Contains(name string) bool {
	_, ok := t.codes[name]
	return ok
}

// Names returns the accepted names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.codes))
	for name := range t.codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tables bundles the channel and platform tables.
type Tables struct {
	Channels  Table
	Platforms Table
}

// DefaultTables returns the tables for the VariationsSeed schema.
func DefaultTables() Tables {
	return Tables{
		Channels: NewTable(KindChannel, map[string]int32{
			"NIGHTLY": ChannelCanary,
			"DEV":     ChannelDev,
			"BETA":    ChannelBeta,
			"RELEASE": ChannelStable,
		}),
		Platforms: NewTable(KindPlatform, map[string]int32{
			"WINDOWS": PlatformWindows,
			"MAC":     PlatformMac,
			"LINUX":   PlatformLinux,
			"IOS":     PlatformIOS,
			"ANDROID": PlatformAndroid,
		}),
	}
}

// Channel maps a channel name to its wire code.
func (t Tables) Channel(name string) (int32, error) {
	return t.Channels.Lookup(name)
}

// Platform maps a platform name to its wire code.
func (t Tables) Platform(name string) (int32, error) {
	return t.Platforms.Lookup(name)
}
