package enums

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	t.Run("channels", func(t *testing.T) {
		cases := map[string]int32{
			"NIGHTLY": ChannelCanary,
			"DEV":     ChannelDev,
			"BETA":    ChannelBeta,
			"RELEASE": ChannelStable,
		}
		for name, want := range cases {
			got, err := tables.Channel(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, name)
		}
	})

	t.Run("platforms", func(t *testing.T) {
		cases := map[string]int32{
			"WINDOWS": PlatformWindows,
			"MAC":     PlatformMac,
			"LINUX":   PlatformLinux,
			"IOS":     PlatformIOS,
			"ANDROID": PlatformAndroid,
		}
		for name, want := range cases {
			got, err := tables.Platform(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, name)
		}
	})

	t.Run("unknown channel is not accepted", func(t *testing.T) {
		assert.False(t, tables.Channels.Contains("UNKNOWN"))
		_, err := tables.Channel("UNKNOWN")
		var unsupported *UnsupportedValueError
		require.True(t, errors.As(err, &unsupported))
		assert.Equal(t, KindChannel, unsupported.Kind)
		assert.Equal(t, "UNKNOWN", unsupported.Value)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := tables.Platform("windows")
		assert.Error(t, err)
	})
}

func TestTableIsImmutable(t *testing.T) {
	entries := map[string]int32{"A": 1}
	table := NewTable(KindChannel, entries)
	entries["B"] = 2

	assert.False(t, table.Contains("B"))
	assert.Equal(t, []string{"A"}, table.Names())
}

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"BETA", "DEV", "NIGHTLY", "RELEASE"}, DefaultTables().Channels.Names())
}
