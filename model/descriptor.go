package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// Unbounded is the maximum cardinality of repeated fields, "*" on the wire.
const Unbounded = -1

// Kind classifies FHIR types.
type Kind int

const (
	KindPrimitive Kind = iota
	KindComplex
	KindBackbone
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive-type"
	case KindComplex:
		return "complex-type"
	case KindBackbone:
		return "backbone-element"
	default:
		return "resource"
	}
}

// Base tells whether a resource owns the DomainResource fields
// text, contained, extension and modifierExtension.
type Base int

const (
	BaseNone Base = iota
	BaseResource
	BaseDomainResource
)

func (b Base) String() string {
	switch b {
	case BaseResource:
		return "Resource"
	case BaseDomainResource:
		return "DomainResource"
	default:
		return ""
	}
}

// FieldDescriptor describes a field of a complex type, backbone element or resource.
type FieldDescriptor struct {
	// Name is the wire name. For choice fields this is the base name without [x].
	Name     string
	Min      int
	Max      int
	Summary  bool
	Modifier bool
	// Choice lists the allowed types of a choice field, nil for other fields.
	Choice []string
	// Type is the FHIR type name of the field, empty for choice fields.
	Type string
}

// Repeated reports whether the field may occur more than once.
func (f FieldDescriptor) Repeated() bool {
	return f.Max == Unbounded || f.Max > 1
}

// Cardinality renders the cardinality like "0..*".
func (f FieldDescriptor) Cardinality() string {
	upper := "*"
	if f.Max != Unbounded {
		upper = strconv.Itoa(f.Max)
	}
	return fmt.Sprintf("%d..%s", f.Min, upper)
}

// ChoiceName returns the wire name of the choice field for the given type, like valueString.
func (f FieldDescriptor) ChoiceName(typeName string) string {
	return f.Name + strcase.ToCamel(typeName)
}

// TypeDescriptor describes a FHIR type with its fields in declaration order.
type TypeDescriptor struct {
	Name   string
	Kind   Kind
	Base   Base
	Fields []FieldDescriptor
}

// Field resolves a wire name to its field.
//
// Choice fields are found by their base name, their base name with [x] and
// their type suffixed names, like value, value[x] and valueQuantity.
// The type name is returned for type suffixed names.
func (t TypeDescriptor) Field(wireName string) (field FieldDescriptor, typeName string, ok bool) {
	wireName = strings.TrimPrefix(wireName, "_")
	base := strings.TrimSuffix(wireName, "[x]")
	for _, f := range t.Fields {
		if f.Name == base {
			return f, "", true
		}
		if f.Choice == nil || !strings.HasPrefix(wireName, f.Name) {
			continue
		}
		for _, c := range f.Choice {
			if f.ChoiceName(c) == wireName {
				return f, c, true
			}
		}
	}
	return FieldDescriptor{}, "", false
}
