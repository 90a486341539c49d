// Package transform maps a validated seed document onto the wire seed.
package transform

import (
	"fmt"

	"github.com/ssargent/seedforge/pkg/enums"
	"github.com/ssargent/seedforge/pkg/seed"
	"github.com/ssargent/seedforge/pkg/wire"
)

// Transformer builds wire seeds using the same tables the validator checks.
type Transformer struct {
	tables enums.Tables
}

// New creates a transformer for the given tables.
func New(tables enums.Tables) *Transformer {
	return &Transformer{tables: tables}
}

// Transform converts doc into a wire seed stamped with serial. doc must have
// passed validation; a channel or platform missing from the tables is
// reported as *enums.UnsupportedValueError and no seed is returned.
func (t *Transformer) Transform(doc *seed.Document, serial string) (*wire.Seed, error) {
	studies := make([]wire.Study, 0, len(doc.Studies))
	for i := range doc.Studies {
		st, err := t.study(&doc.Studies[i])
		if err != nil {
			return nil, fmt.Errorf("study %q: %w", doc.Studies[i].Name, err)
		}
		studies = append(studies, st)
	}
	return wire.NewSeed(doc.Version, serial, studies), nil
}

func (t *Transformer) study(s *seed.Study) (wire.Study, error) {
	experiments := make([]wire.Experiment, 0, len(s.Experiments))
	for i := range s.Experiments {
		experiments = append(experiments, experiment(&s.Experiments[i]))
	}

	filter, err := t.filter(&s.Filter)
	if err != nil {
		return wire.Study{}, err
	}

	// Assignments are sticky across sessions and evaluated at process start.
	return wire.NewStudy(s.Name, wire.ConsistencyPermanent, wire.ActivateOnStartup, experiments, filter), nil
}

func experiment(e *seed.Experiment) wire.Experiment {
	var params []wire.Param
	if e.Parameters != nil {
		params = make([]wire.Param, len(e.Parameters))
		for i, p := range e.Parameters {
			params[i] = wire.Param{Name: p.Name, Value: p.Value}
		}
	}

	var fa *wire.FeatureAssociation
	if e.FeatureAssociation != nil {
		fa = &wire.FeatureAssociation{
			EnableFeature:  cloneStrings(e.FeatureAssociation.EnableFeature),
			DisableFeature: cloneStrings(e.FeatureAssociation.DisableFeature),
		}
	}

	return wire.NewExperiment(e.Name, e.ProbabilityWeight, params, fa)
}

func (t *Transformer) filter(f *seed.Filter) (wire.Filter, error) {
	channels, err := mapNames(t.tables.Channels, f.Channel)
	if err != nil {
		return wire.Filter{}, err
	}
	platforms, err := mapNames(t.tables.Platforms, f.Platform)
	if err != nil {
		return wire.Filter{}, err
	}

	out := wire.Filter{
		Channels:     channels,
		Platforms:    platforms,
		Country:      cloneStrings(f.Country),
		MinVersion:   cloneString(f.MinVersion),
		MaxVersion:   cloneString(f.MaxVersion),
		MinOSVersion: cloneString(f.MinOSVersion),
		MaxOSVersion: cloneString(f.MaxOSVersion),
	}

	if out.StartDate, err = date(f.StartDate); err != nil {
		return wire.Filter{}, fmt.Errorf("start_date: %w", err)
	}
	if out.EndDate, err = date(f.EndDate); err != nil {
		return wire.Filter{}, fmt.Errorf("end_date: %w", err)
	}
	return out, nil
}

func mapNames(table enums.Table, names []string) ([]int32, error) {
	if len(names) == 0 {
		return nil, nil
	}
	codes := make([]int32, len(names))
	for i, name := range names {
		code, err := table.Lookup(name)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}
	return codes, nil
}

func date(v *string) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	ts, err := seed.ParseDate(*v)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v...)
}
