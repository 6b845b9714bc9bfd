// Package util holds the small protobuf marshalling helpers shared across
// the client package. It exists so the rest of the module can accept either
// the legacy protoiface.MessageV1 or a modern proto.Message without caring
// which generated stubs a caller happens to be linking against.
package util

import (
	"github.com/golang/protobuf/proto" //nolint:staticcheck // bridges legacy MessageV1 callers
	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/runtime/protoiface"
	"google.golang.org/protobuf/testing/protocmp"
)

// Marshal serialises a protobuf message, accepting both the legacy
// protoiface.MessageV1 and modern proto.Message implementations.
func Marshal(message protoiface.MessageV1) ([]byte, error) {
	return proto.Marshal(message)
}

// Unmarshal deserialises bytes into the given protobuf message.
func Unmarshal(b []byte, message protoiface.MessageV1) error {
	return proto.Unmarshal(b, message)
}

// ProtoEqual reports whether two protobuf messages carry equal field values,
// ignoring unexported internal state. It exists purely to give tests a
// structural comparison for captured wire messages.
func ProtoEqual(expected, actual protoiface.MessageV1) bool {
	return cmp.Equal(expected, actual, protocmp.Transform())
}
