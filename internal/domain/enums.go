package domain

import "fmt"

// Material is one of the two material families on the line. Each material
// has its own cutting machine and its own production capacity pool.
type Material string

const (
	MaterialA Material = "A"
	MaterialB Material = "B"
)

// Materials lists all materials in canonical order. Schedulers iterate this
// slice instead of ranging over maps so output stays deterministic.
var Materials = []Material{MaterialA, MaterialB}

// ParseMaterial parses a material string. Unknown values are rejected rather
// than defaulted.
func ParseMaterial(s string) (Material, error) {
	switch Material(s) {
	case MaterialA, MaterialB:
		return Material(s), nil
	}
	return "", &ValidationError{Field: "material", Message: fmt.Sprintf("unknown material %q", s)}
}

// StructureType determines the cutting capacity bucket and the
// production-minute formula for a line.
type StructureType string

const (
	StructureHinged  StructureType = "hinged"
	StructureSliding StructureType = "sliding"
	StructureSpecial StructureType = "special"
)

// StructureTypes lists all structure types in canonical order.
var StructureTypes = []StructureType{StructureHinged, StructureSliding, StructureSpecial}

// ParseStructureType parses a structure type string. Unrecognized values are
// a validation error, never coerced to sliding.
func ParseStructureType(s string) (StructureType, error) {
	switch StructureType(s) {
	case StructureHinged, StructureSliding, StructureSpecial:
		return StructureType(s), nil
	}
	return "", &ValidationError{Field: "structure", Message: fmt.Sprintf("unknown structure type %q", s)}
}
