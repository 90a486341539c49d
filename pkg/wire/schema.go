package wire

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

const schemaPackage = "variations"

type (
	fieldType  = descriptorpb.FieldDescriptorProto_Type
	fieldLabel = descriptorpb.FieldDescriptorProto_Label
)

const (
	optional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	repeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED

	typeString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
	typeInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
	typeInt64   = descriptorpb.FieldDescriptorProto_TYPE_INT64
	typeUint32  = descriptorpb.FieldDescriptorProto_TYPE_UINT32
	typeEnum    = descriptorpb.FieldDescriptorProto_TYPE_ENUM
	typeMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
)

// descriptors for the messages Encode and Decode walk.
type descriptors struct {
	seed               protoreflect.MessageDescriptor
	study              protoreflect.MessageDescriptor
	experiment         protoreflect.MessageDescriptor
	param              protoreflect.MessageDescriptor
	featureAssociation protoreflect.MessageDescriptor
	filter             protoreflect.MessageDescriptor
}

var schema = mustBuildSchema()

// Schema returns the file descriptor for the VariationsSeed schema.
func Schema() protoreflect.FileDescriptor {
	return schema.seed.ParentFile()
}

// SeedDescriptor returns the VariationsSeed message descriptor.
func SeedDescriptor() protoreflect.MessageDescriptor {
	return schema.seed
}

func mustBuildSchema() descriptors {
	fd, err := protodesc.NewFile(schemaFile(), nil)
	if err != nil {
		panic(fmt.Sprintf("wire: invalid VariationsSeed schema: %v", err))
	}

	seed := fd.Messages().ByName("VariationsSeed")
	study := fd.Messages().ByName("Study")
	experiment := study.Messages().ByName("Experiment")
	return descriptors{
		seed:               seed,
		study:              study,
		experiment:         experiment,
		param:              experiment.Messages().ByName("Param"),
		featureAssociation: experiment.Messages().ByName("FeatureAssociation"),
		filter:             study.Messages().ByName("Filter"),
	}
}

func field(name string, number int32, label fieldLabel, typ fieldType, typeName string) *descriptorpb.FieldDescriptorProto {
	f := &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  label.Enum(),
		Type:   typ.Enum(),
	}
	if typeName != "" {
		f.TypeName = proto.String("." + schemaPackage + "." + typeName)
	}
	return f
}

func enum(name string, values ...any) *descriptorpb.EnumDescriptorProto {
	e := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
	for i := 0; i+1 < len(values); i += 2 {
		e.Value = append(e.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(values[i].(string)),
			Number: proto.Int32(int32(values[i+1].(int))),
		})
	}
	return e
}

// schemaFile declares every field in field-number order.
func schemaFile() *descriptorpb.FileDescriptorProto {
	param := &descriptorpb.DescriptorProto{
		Name: proto.String("Param"),
		Field: []*descriptorpb.FieldDescriptorProto{
			field("name", 1, optional, typeString, ""),
			field("value", 2, optional, typeString, ""),
		},
	}

	featureAssociation := &descriptorpb.DescriptorProto{
		Name: proto.String("FeatureAssociation"),
		Field: []*descriptorpb.FieldDescriptorProto{
			field("enable_feature", 1, repeated, typeString, ""),
			field("disable_feature", 2, repeated, typeString, ""),
		},
	}

	experiment := &descriptorpb.DescriptorProto{
		Name: proto.String("Experiment"),
		Field: []*descriptorpb.FieldDescriptorProto{
			field("name", 1, optional, typeString, ""),
			field("probability_weight", 2, optional, typeUint32, ""),
			field("param", 6, repeated, typeMessage, "Study.Experiment.Param"),
			field("feature_association", 12, optional, typeMessage, "Study.Experiment.FeatureAssociation"),
		},
		NestedType: []*descriptorpb.DescriptorProto{param, featureAssociation},
	}

	filter := &descriptorpb.DescriptorProto{
		Name: proto.String("Filter"),
		Field: []*descriptorpb.FieldDescriptorProto{
			field("start_date", 1, optional, typeInt64, ""),
			field("min_version", 2, optional, typeString, ""),
			field("max_version", 3, optional, typeString, ""),
			field("channel", 4, repeated, typeEnum, "Study.Channel"),
			field("platform", 5, repeated, typeEnum, "Study.Platform"),
			field("country", 10, repeated, typeString, ""),
			field("end_date", 13, optional, typeInt64, ""),
			field("min_os_version", 15, optional, typeString, ""),
			field("max_os_version", 17, optional, typeString, ""),
		},
	}

	study := &descriptorpb.DescriptorProto{
		Name: proto.String("Study"),
		Field: []*descriptorpb.FieldDescriptorProto{
			field("name", 1, optional, typeString, ""),
			field("consistency", 7, optional, typeEnum, "Study.Consistency"),
			field("experiment", 9, repeated, typeMessage, "Study.Experiment"),
			field("filter", 10, optional, typeMessage, "Study.Filter"),
			field("activation_type", 12, optional, typeEnum, "Study.ActivationType"),
		},
		NestedType: []*descriptorpb.DescriptorProto{experiment, filter},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			enum("Consistency", "SESSION", 0, "PERMANENT", 1),
			enum("ActivationType", "ACTIVATE_ON_QUERY", 0, "ACTIVATE_ON_STARTUP", 1),
			enum("Channel", "UNKNOWN", -1, "CANARY", 0, "DEV", 1, "BETA", 2, "STABLE", 3),
			enum("Platform",
				"PLATFORM_WINDOWS", 0,
				"PLATFORM_MAC", 1,
				"PLATFORM_LINUX", 2,
				"PLATFORM_CHROMEOS", 3,
				"PLATFORM_ANDROID", 4,
				"PLATFORM_IOS", 5,
			),
		},
	}

	seed := &descriptorpb.DescriptorProto{
		Name: proto.String("VariationsSeed"),
		Field: []*descriptorpb.FieldDescriptorProto{
			field("serial_number", 1, optional, typeString, ""),
			field("study", 2, repeated, typeMessage, "Study"),
			field("version", 4, optional, typeInt32, ""),
		},
	}

	return &descriptorpb.FileDescriptorProto{
		Name:        proto.String("variations/variations_seed.proto"),
		Package:     proto.String(schemaPackage),
		Syntax:      proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{seed, study},
	}
}

// ChannelName returns the Study.Channel value name for code.
func ChannelName(code int32) string {
	return enumName(schema.study.Enums().ByName("Channel"), code)
}

// PlatformName returns the Study.Platform value name for code.
func PlatformName(code int32) string {
	return enumName(schema.study.Enums().ByName("Platform"), code)
}

func enumName(ed protoreflect.EnumDescriptor, code int32) string {
	if v := ed.Values().ByNumber(protoreflect.EnumNumber(code)); v != nil {
		return string(v.Name())
	}
	return fmt.Sprint(code)
}
