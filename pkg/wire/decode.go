package wire

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Decode parses an encoded VariationsSeed back into a Seed.
func Decode(data []byte) (*Seed, error) {
	m := dynamicpb.NewMessage(schema.seed)
	if err := proto.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	return FromMessage(m), nil
}

// FromMessage converts a VariationsSeed message into a Seed.
func FromMessage(m protoreflect.Message) *Seed {
	fields := schema.seed.Fields()
	s := &Seed{
		SerialNumber: m.Get(fields.ByName("serial_number")).String(),
		Version:      int32(m.Get(fields.ByName("version")).Int()),
	}

	studies := m.Get(fields.ByName("study")).List()
	for i := 0; i < studies.Len(); i++ {
		s.Studies = append(s.Studies, studyFromMessage(studies.Get(i).Message()))
	}
	return s
}

func studyFromMessage(m protoreflect.Message) Study {
	fields := schema.study.Fields()
	st := Study{
		Name:           m.Get(fields.ByName("name")).String(),
		Consistency:    Consistency(m.Get(fields.ByName("consistency")).Enum()),
		ActivationType: ActivationType(m.Get(fields.ByName("activation_type")).Enum()),
	}

	experiments := m.Get(fields.ByName("experiment")).List()
	for i := 0; i < experiments.Len(); i++ {
		st.Experiments = append(st.Experiments, experimentFromMessage(experiments.Get(i).Message()))
	}

	if fd := fields.ByName("filter"); m.Has(fd) {
		st.Filter = filterFromMessage(m.Get(fd).Message())
	}
	return st
}

func experimentFromMessage(m protoreflect.Message) Experiment {
	fields := schema.experiment.Fields()
	e := Experiment{
		Name:              m.Get(fields.ByName("name")).String(),
		ProbabilityWeight: uint32(m.Get(fields.ByName("probability_weight")).Uint()),
	}

	params := m.Get(fields.ByName("param")).List()
	for i := 0; i < params.Len(); i++ {
		pm := params.Get(i).Message()
		e.Params = append(e.Params, Param{
			Name:  pm.Get(schema.param.Fields().ByName("name")).String(),
			Value: pm.Get(schema.param.Fields().ByName("value")).String(),
		})
	}

	if fd := fields.ByName("feature_association"); m.Has(fd) {
		fam := m.Get(fd).Message()
		faFields := schema.featureAssociation.Fields()
		e.FeatureAssociation = &FeatureAssociation{
			EnableFeature:  getStrings(fam, faFields.ByName("enable_feature")),
			DisableFeature: getStrings(fam, faFields.ByName("disable_feature")),
		}
	}
	return e
}

func filterFromMessage(m protoreflect.Message) Filter {
	fields := schema.filter.Fields()
	return Filter{
		StartDate:    getInt64(m, fields.ByName("start_date")),
		EndDate:      getInt64(m, fields.ByName("end_date")),
		MinVersion:   getString(m, fields.ByName("min_version")),
		MaxVersion:   getString(m, fields.ByName("max_version")),
		MinOSVersion: getString(m, fields.ByName("min_os_version")),
		MaxOSVersion: getString(m, fields.ByName("max_os_version")),
		Channels:     getEnums(m, fields.ByName("channel")),
		Platforms:    getEnums(m, fields.ByName("platform")),
		Country:      getStrings(m, fields.ByName("country")),
	}
}

func getString(m protoreflect.Message, fd protoreflect.FieldDescriptor) *string {
	if !m.Has(fd) {
		return nil
	}
	v := m.Get(fd).String()
	return &v
}

func getInt64(m protoreflect.Message, fd protoreflect.FieldDescriptor) *int64 {
	if !m.Has(fd) {
		return nil
	}
	v := m.Get(fd).Int()
	return &v
}

func getStrings(m protoreflect.Message, fd protoreflect.FieldDescriptor) []string {
	list := m.Get(fd).List()
	if list.Len() == 0 {
		return nil
	}
	out := make([]string, list.Len())
	for i := range out {
		out[i] = list.Get(i).String()
	}
	return out
}

func getEnums(m protoreflect.Message, fd protoreflect.FieldDescriptor) []int32 {
	list := m.Get(fd).List()
	if list.Len() == 0 {
		return nil
	}
	out := make([]int32, list.Len())
	for i := range out {
		out[i] = int32(list.Get(i).Enum())
	}
	return out
}
