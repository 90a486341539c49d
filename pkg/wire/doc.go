// Package wire holds the VariationsSeed value tree and its protobuf encoding.
//
// Client applications parse the encoded seed with their own generated code for
// the VariationsSeed schema, so the field numbers and enum codes declared in
// schema.go must not change. The schema is built at init time as a
// FileDescriptorProto and encoded with dynamic messages, which keeps the
// module free of protoc-generated sources.
//
// # Message layout
//
//	VariationsSeed
//	  1  serial_number    string
//	  2  study            repeated Study
//	  4  version          int32
//
//	Study
//	  1  name             string
//	  7  consistency      Consistency
//	  9  experiment       repeated Experiment
//	  10 filter           Filter
//	  12 activation_type  ActivationType
//
//	Study.Experiment
//	  1  name                 string
//	  2  probability_weight   uint32
//	  6  param                repeated Param{1 name, 2 value}
//	  12 feature_association  FeatureAssociation{1 enable_feature, 2 disable_feature}
//
//	Study.Filter
//	  1  start_date      int64
//	  2  min_version     string
//	  3  max_version     string
//	  4  channel         repeated Channel
//	  5  platform        repeated Platform
//	  10 country         repeated string
//	  13 end_date        int64
//	  15 min_os_version  string
//	  17 max_os_version  string
//
// Fields are declared in field-number order, and Encode marshals
// deterministically, so equal Seeds always produce equal bytes.
//
// # Presence
//
// Optional scalars are pointers on the Go side. A nil pointer is never
// written, and Decode leaves it nil when the field is missing. A Filter or
// FeatureAssociation with no content is omitted from the encoding entirely.
package wire
