package wire

// Consistency is Study.Consistency.
type Consistency int32

const (
	ConsistencySession   Consistency = 0
	ConsistencyPermanent Consistency = 1
)

// ActivationType is Study.ActivationType.
type ActivationType int32

const (
	ActivateOnQuery   ActivationType = 0
	ActivateOnStartup ActivationType = 1
)

// Seed is the top-level VariationsSeed message.
type Seed struct {
	Version      int32
	SerialNumber string
	Studies      []Study
}

// Study is one Study message.
type Study struct {
	Name           string
	Consistency    Consistency
	ActivationType ActivationType
	Experiments    []Experiment
	Filter         Filter
}

// Experiment is one Study.Experiment message.
type Experiment struct {
	Name               string
	ProbabilityWeight  uint32
	Params             []Param
	FeatureAssociation *FeatureAssociation
}

// Param is Study.Experiment.Param.
type Param struct {
	Name  string
	Value string
}

// FeatureAssociation is Study.Experiment.FeatureAssociation.
type FeatureAssociation struct {
	EnableFeature  []string
	DisableFeature []string
}

// Filter is Study.Filter. Channels and Platforms hold wire enum codes.
type Filter struct {
	StartDate    *int64
	EndDate      *int64
	MinVersion   *string
	MaxVersion   *string
	MinOSVersion *string
	MaxOSVersion *string
	Channels     []int32
	Platforms    []int32
	Country      []string
}

// NewSeed returns a seed carrying the given studies.
func NewSeed(version int32, serial string, studies []Study) *Seed {
	return &Seed{Version: version, SerialNumber: serial, Studies: studies}
}

// NewStudy returns a study with the given policy attributes.
func NewStudy(name string, consistency Consistency, activation ActivationType, experiments []Experiment, filter Filter) Study {
	return Study{
		Name:           name,
		Consistency:    consistency,
		ActivationType: activation,
		Experiments:    experiments,
		Filter:         filter,
	}
}

// NewExperiment returns an experiment. fa may be nil.
func NewExperiment(name string, weight uint32, params []Param, fa *FeatureAssociation) Experiment {
	return Experiment{
		Name:               name,
		ProbabilityWeight:  weight,
		Params:             params,
		FeatureAssociation: fa,
	}
}

func (f *Filter) empty() bool {
	return f.StartDate == nil && f.EndDate == nil &&
		f.MinVersion == nil && f.MaxVersion == nil &&
		f.MinOSVersion == nil && f.MaxOSVersion == nil &&
		len(f.Channels) == 0 && len(f.Platforms) == 0 && len(f.Country) == 0
}

func (fa *FeatureAssociation) empty() bool {
	return fa == nil || (len(fa.EnableFeature) == 0 && len(fa.DisableFeature) == 0)
}

// ExperimentCount returns the number of experiments across all studies.
func (s *Seed) ExperimentCount() int {
	n := 0
	for _, st := range s.Studies {
		n += len(st.Experiments)
	}
	return n
}
