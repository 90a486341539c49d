// Package seed defines the experiment-configuration document that seedforge
// reads, and loads it from JSON.
package seed

// Document is the root of an experiment-configuration file.
type Document struct {
	Version int32   `json:"version"`
	Studies []Study `json:"studies"`
}

// Study is a named group of experiments sharing one targeting filter.
type Study struct {
	Name        string       `json:"name"`
	Experiments []Experiment `json:"experiments"`
	Filter      Filter       `json:"filter"`
}

// Experiment is one weighted variant of a study.
type Experiment struct {
	Name               string              `json:"name"`
	ProbabilityWeight  uint32              `json:"probability_weight"`
	Parameters         []Parameter         `json:"parameters,omitempty"`
	FeatureAssociation *FeatureAssociation `json:"feature_association,omitempty"`
}

// Parameter is a name/value pair delivered with an experiment.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FeatureAssociation lists the features an experiment turns on or off.
type FeatureAssociation struct {
	EnableFeature  []string `json:"enable_feature,omitempty"`
	DisableFeature []string `json:"disable_feature,omitempty"`
}

// Filter restricts which clients a study applies to. Pointer and nil-slice
// fields are absent when the document omits them.
type Filter struct {
	Channel      []string `json:"channel"`
	Platform     []string `json:"platform"`
	Country      []string `json:"country,omitempty"`
	MinVersion   *string  `json:"min_version,omitempty"`
	MaxVersion   *string  `json:"max_version,omitempty"`
	MinOSVersion *string  `json:"min_os_version,omitempty"`
	MaxOSVersion *string  `json:"max_os_version,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
}

// ExperimentCount returns the number of experiments across all studies.
func (d *Document) ExperimentCount() int {
	n := 0
	for _, s := range d.Studies {
		n += len(s.Experiments)
	}
	return n
}
