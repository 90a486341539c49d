// Package validate checks a seed document before it is transformed.
//
// Every study is checked, and all failures are returned together in document
// order. The first entry of the returned Errors is therefore always the first
// failing study, which is what callers that only report one problem should use.
package validate

import (
	"github.com/ssargent/seedforge/pkg/enums"
	"github.com/ssargent/seedforge/pkg/seed"
)

// TotalProbability is the required sum of experiment weights in a study.
const TotalProbability = 100

// Validator checks documents against the channel and platform tables used by
// the transformer.
type Validator struct {
	tables enums.Tables
}

// New creates a validator for the given tables.
func New(tables enums.Tables) *Validator {
	return &Validator{tables: tables}
}

// Validate returns nil when doc can be transformed, or an Errors value.
func (v *Validator) Validate(doc *seed.Document) error {
	var errs Errors
	seen := make(map[string]struct{}, len(doc.Studies))

	for i := range doc.Studies {
		study := &doc.Studies[i]

		if _, dup := seen[study.Name]; dup {
			errs = append(errs, &DuplicateStudyError{Study: study.Name})
		}
		seen[study.Name] = struct{}{}

		var sum uint64
		for _, exp := range study.Experiments {
			sum += uint64(exp.ProbabilityWeight)
		}
		if sum != TotalProbability {
			errs = append(errs, &ProbabilityWeightMismatchError{Study: study.Name, Sum: sum})
		}

		for _, ch := range study.Filter.Channel {
			if !v.tables.Channels.Contains(ch) {
				errs = append(errs, &UnsupportedChannelError{Study: study.Name, Value: ch})
			}
		}

		for _, p := range study.Filter.Platform {
			if !v.tables.Platforms.Contains(p) {
				errs = append(errs, &UnsupportedPlatformError{Study: study.Name, Value: p})
			}
		}

		errs = append(errs, checkDates(study)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkDates(study *seed.Study) []error {
	var errs []error
	var start, end int64
	var haveStart, haveEnd bool

	if d := study.Filter.StartDate; d != nil {
		ts, err := seed.ParseDate(*d)
		if err != nil {
			errs = append(errs, &InvalidDateError{Study: study.Name, Field: "start_date", Value: *d, Reason: "want " + seed.DateLayout})
		} else {
			start, haveStart = ts, true
		}
	}
	if d := study.Filter.EndDate; d != nil {
		ts, err := seed.ParseDate(*d)
		if err != nil {
			errs = append(errs, &InvalidDateError{Study: study.Name, Field: "end_date", Value: *d, Reason: "want " + seed.DateLayout})
		} else {
			end, haveEnd = ts, true
		}
	}
	if haveStart && haveEnd && start > end {
		errs = append(errs, &InvalidDateError{Study: study.Name, Field: "end_date", Value: *study.Filter.EndDate, Reason: "before start_date"})
	}
	return errs
}
