package qdrant

import (
	"fmt"
	"strings"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// validateSearchInput validates common search parameters
func validateSearchInput(vector []float32, topK int) error {
	if len(vector) == 0 {
		return fmt.Errorf("vector cannot be empty")
	}
	if topK <= 0 {
		return fmt.Errorf("topK must be greater than 0")
	}
	return nil
}

// isAlreadyExists recognizes Qdrant's duplicate-collection create error.
// The SDK surfaces it as a gRPC status message, not a typed error.
func isAlreadyExists(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "already exists")
}

// extractVectorDetails safely extracts the vector size and distance metric
// from a Qdrant CollectionInfo.
//
// Qdrant represents vector configuration using a deeply nested protobuf
// structure with "oneof" wrappers; this helper navigates that hierarchy and
// guards against nil pointer dereferences. If any nested field is missing
// or of an unexpected type, it returns (0, "").
func extractVectorDetails(info *qdrant.CollectionInfo) (int, string) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, ""
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok {
		return int(cfg.Params.Size), cfg.Params.Distance.String()
	}

	return 0, ""
}

// derefUint64 safely dereferences a *uint64 pointer.
// If the pointer is nil, it returns 0 instead of panicking.
func derefUint64(v *uint64) uint64 {
	if v != nil {
		return *v
	}
	return 0
}

// payloadToMap converts a Qdrant payload into plain Go values suitable for
// JSON responses.
func payloadToMap(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = valueToAny(v)
	}
	return out
}

// valueToAny unwraps one Qdrant protobuf value.
func valueToAny(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch kind := v.Kind.(type) {
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_ListValue:
		items := make([]any, 0, len(kind.ListValue.Values))
		for _, item := range kind.ListValue.Values {
			items = append(items, valueToAny(item))
		}
		return items
	case *qdrant.Value_StructValue:
		return payloadToMap(kind.StructValue.Fields)
	default:
		return nil
	}
}
