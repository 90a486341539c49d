package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/seedforge/pkg/enums"
	"github.com/ssargent/seedforge/pkg/seed"
)

func strPtr(s string) *string { return &s }

func study(name string, weights ...uint32) seed.Study {
	s := seed.Study{
		Name: name,
		Filter: seed.Filter{
			Channel:  []string{"RELEASE"},
			Platform: []string{"WINDOWS"},
		},
	}
	for i, w := range weights {
		s.Experiments = append(s.Experiments, seed.Experiment{Name: string(rune('A' + i)), ProbabilityWeight: w})
	}
	return s
}

func TestValidateAcceptsValidDocument(t *testing.T) {
	v := New(enums.DefaultTables())
	doc := &seed.Document{Version: 1, Studies: []seed.Study{study("Study1", 60, 40)}}

	assert.NoError(t, v.Validate(doc))
}

func TestValidateEmptyDocument(t *testing.T) {
	v := New(enums.DefaultTables())
	assert.NoError(t, v.Validate(&seed.Document{}))
}

func TestValidateWeightMismatch(t *testing.T) {
	v := New(enums.DefaultTables())
	doc := &seed.Document{Studies: []seed.Study{study("Study1", 60, 30)}}

	err := v.Validate(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	var mismatch *ProbabilityWeightMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "Study1", mismatch.Study)
	assert.Equal(t, uint64(90), mismatch.Sum)
	assert.Contains(t, err.Error(), "Study1")
	assert.Contains(t, err.Error(), "90")
}

func TestValidateWeightSumDoesNotOverflow(t *testing.T) {
	v := New(enums.DefaultTables())
	doc := &seed.Document{Studies: []seed.Study{study("Big", 4294967295, 101)}}

	var mismatch *ProbabilityWeightMismatchError
	require.True(t, errors.As(v.Validate(doc), &mismatch))
	assert.Equal(t, uint64(4294967396), mismatch.Sum)
}

func TestValidateChannels(t *testing.T) {
	v := New(enums.DefaultTables())

	t.Run("DEV is accepted", func(t *testing.T) {
		s := study("Dev", 100)
		s.Filter.Channel = []string{"DEV", "NIGHTLY", "BETA", "RELEASE"}
		assert.NoError(t, v.Validate(&seed.Document{Studies: []seed.Study{s}}))
	})

	t.Run("UNKNOWN is rejected", func(t *testing.T) {
		s := study("Unknown", 100)
		s.Filter.Channel = []string{"RELEASE", "UNKNOWN"}

		var unsupported *UnsupportedChannelError
		require.True(t, errors.As(v.Validate(&seed.Document{Studies: []seed.Study{s}}), &unsupported))
		assert.Equal(t, "Unknown", unsupported.Study)
		assert.Equal(t, "UNKNOWN", unsupported.Value)
	})
}

func TestValidatePlatforms(t *testing.T) {
	v := New(enums.DefaultTables())
	s := study("Study1", 100)
	s.Filter.Platform = []string{"WINDOWS", "CHROMEOS"}

	err := v.Validate(&seed.Document{Studies: []seed.Study{s}})
	var unsupported *UnsupportedPlatformError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "CHROMEOS", unsupported.Value)
}

func TestValidateReportsAllStudiesInOrder(t *testing.T) {
	v := New(enums.DefaultTables())
	bad := study("Second", 100)
	bad.Filter.Platform = []string{"BEOS"}
	doc := &seed.Document{Studies: []seed.Study{
		study("First", 50),
		bad,
		study("Ok", 100),
		study("First", 100),
	}}

	err := v.Validate(doc)
	var errs Errors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 3)

	var mismatch *ProbabilityWeightMismatchError
	require.True(t, errors.As(errs[0], &mismatch))
	assert.Equal(t, "First", mismatch.Study)

	var platform *UnsupportedPlatformError
	require.True(t, errors.As(errs[1], &platform))
	assert.Equal(t, "Second", platform.Study)

	var dup *DuplicateStudyError
	require.True(t, errors.As(errs[2], &dup))
	assert.Equal(t, "First", dup.Study)

	assert.Contains(t, err.Error(), "3 validation errors")
}

func TestValidateDates(t *testing.T) {
	v := New(enums.DefaultTables())

	tests := []struct {
		name    string
		start   *string
		end     *string
		wantErr bool
	}{
		{name: "no dates"},
		{name: "valid range", start: strPtr("2022-01-01 00:00:00"), end: strPtr("2022-02-01 00:00:00")},
		{name: "malformed start", start: strPtr("2022/01/01"), wantErr: true},
		{name: "malformed end", end: strPtr("tomorrow"), wantErr: true},
		{name: "inverted range", start: strPtr("2022-02-01 00:00:00"), end: strPtr("2022-01-01 00:00:00"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := study("Dated", 100)
			s.Filter.StartDate = tt.start
			s.Filter.EndDate = tt.end

			err := v.Validate(&seed.Document{Studies: []seed.Study{s}})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var invalid *InvalidDateError
			assert.True(t, errors.As(err, &invalid))
		})
	}
}
