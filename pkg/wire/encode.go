package wire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

var marshalOptions = proto.MarshalOptions{Deterministic: true}

// Encode serializes s as a VariationsSeed message.
func Encode(s *Seed) ([]byte, error) {
	data, err := marshalOptions.Marshal(s.Message())
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed: %w", err)
	}
	return data, nil
}

// EncodeJSON renders s in the protobuf JSON mapping, for inspection.
func EncodeJSON(s *Seed) ([]byte, error) {
	data, err := protojson.MarshalOptions{Multiline: true, UseProtoNames: true}.Marshal(s.Message())
	if err != nil {
		return nil, fmt.Errorf("failed to render seed as json: %w", err)
	}
	return data, nil
}

// Message builds the dynamic VariationsSeed message for s.
func (s *Seed) Message() proto.Message {
	m := dynamicpb.NewMessage(schema.seed)
	fields := schema.seed.Fields()

	m.Set(fields.ByName("serial_number"), protoreflect.ValueOfString(s.SerialNumber))
	studies := m.Mutable(fields.ByName("study")).List()
	for i := range s.Studies {
		studies.Append(protoreflect.ValueOfMessage(s.Studies[i].message()))
	}
	m.Set(fields.ByName("version"), protoreflect.ValueOfInt32(s.Version))
	return m
}

func (st *Study) message() protoreflect.Message {
	m := dynamicpb.NewMessage(schema.study)
	fields := schema.study.Fields()

	m.Set(fields.ByName("name"), protoreflect.ValueOfString(st.Name))
	m.Set(fields.ByName("consistency"), protoreflect.ValueOfEnum(protoreflect.EnumNumber(st.Consistency)))
	experiments := m.Mutable(fields.ByName("experiment")).List()
	for i := range st.Experiments {
		experiments.Append(protoreflect.ValueOfMessage(st.Experiments[i].message()))
	}
	if !st.Filter.empty() {
		m.Set(fields.ByName("filter"), protoreflect.ValueOfMessage(st.Filter.message()))
	}
	m.Set(fields.ByName("activation_type"), protoreflect.ValueOfEnum(protoreflect.EnumNumber(st.ActivationType)))
	return m
}

func (e *Experiment) message() protoreflect.Message {
	m := dynamicpb.NewMessage(schema.experiment)
	fields := schema.experiment.Fields()

	m.Set(fields.ByName("name"), protoreflect.ValueOfString(e.Name))
	m.Set(fields.ByName("probability_weight"), protoreflect.ValueOfUint32(e.ProbabilityWeight))

	params := m.Mutable(fields.ByName("param")).List()
	for _, p := range e.Params {
		pm := dynamicpb.NewMessage(schema.param)
		pm.Set(schema.param.Fields().ByName("name"), protoreflect.ValueOfString(p.Name))
		pm.Set(schema.param.Fields().ByName("value"), protoreflect.ValueOfString(p.Value))
		params.Append(protoreflect.ValueOfMessage(pm))
	}

	if !e.FeatureAssociation.empty() {
		fam := dynamicpb.NewMessage(schema.featureAssociation)
		faFields := schema.featureAssociation.Fields()
		appendStrings(fam, faFields.ByName("enable_feature"), e.FeatureAssociation.EnableFeature)
		appendStrings(fam, faFields.ByName("disable_feature"), e.FeatureAssociation.DisableFeature)
		m.Set(fields.ByName("feature_association"), protoreflect.ValueOfMessage(fam))
	}
	return m
}

func (f *Filter) message() protoreflect.Message {
	m := dynamicpb.NewMessage(schema.filter)
	fields := schema.filter.Fields()

	setInt64(m, fields.ByName("start_date"), f.StartDate)
	setString(m, fields.ByName("min_version"), f.MinVersion)
	setString(m, fields.ByName("max_version"), f.MaxVersion)
	appendEnums(m, fields.ByName("channel"), f.Channels)
	appendEnums(m, fields.ByName("platform"), f.Platforms)
	appendStrings(m, fields.ByName("country"), f.Country)
	setInt64(m, fields.ByName("end_date"), f.EndDate)
	setString(m, fields.ByName("min_os_version"), f.MinOSVersion)
	setString(m, fields.ByName("max_os_version"), f.MaxOSVersion)
	return m
}

func setString(m protoreflect.Message, fd protoreflect.FieldDescriptor, v *string) {
	if v != nil {
		m.Set(fd, protoreflect.ValueOfString(*v))
	}
}

func setInt64(m protoreflect.Message, fd protoreflect.FieldDescriptor, v *int64) {
	if v != nil {
		m.Set(fd, protoreflect.ValueOfInt64(*v))
	}
}

func appendStrings(m protoreflect.Message, fd protoreflect.FieldDescriptor, values []string) {
	if len(values) == 0 {
		return
	}
	list := m.Mutable(fd).List()
	for _, v := range values {
		list.Append(protoreflect.ValueOfString(v))
	}
}

func appendEnums(m protoreflect.Message, fd protoreflect.FieldDescriptor, codes []int32) {
	if len(codes) == 0 {
		return
	}
	list := m.Mutable(fd).List()
	for _, c := range codes {
		list.Append(protoreflect.ValueOfEnum(protoreflect.EnumNumber(c)))
	}
}
