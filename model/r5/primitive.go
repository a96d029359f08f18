package r5

import (
	"fmt"
	"slices"

	"github.com/damedic/fhir-r5-go/encoding"
	"github.com/damedic/fhir-r5-go/fhirpath"
)

// primitiveKind describes the value space and lexical grammar of a FHIR primitive.
type primitiveKind[V any] interface {
	typeName() string
	// scalarKind is the JSON representation of values.
	scalarKind() encoding.ScalarKind
	parse(text string) (V, error)
	format(v V) string
	// system converts values to their FHIRPath System representation.
	system(v V) fhirpath.Element
}

// primitive is a FHIR primitive element: an optional value with optional id and extensions.
// The presence of each part is independent from the others.
type primitive[V any, K primitiveKind[V]] struct {
	Id        *string
	Extension []Extension
	Value     *V
}

func (p primitive[V, K]) kind() K {
	var k K
	return k
}

func (p primitive[V, K]) TypeName() string {
	return p.kind().typeName()
}

func (p primitive[V, K]) HasValue() bool {
	return p.Value != nil
}

// Get returns the value, if any.
func (p primitive[V, K]) Get() (v V, ok bool) {
	if p.Value == nil {
		return v, false
	}
	return *p.Value, true
}

// Set replaces the value.
func (p *primitive[V, K]) Set(v V) {
	p.Value = &v
}

// Combine merges the JSON companion of the primitive into p.
// The value of p is kept, id and extensions of sidecar win if present.
func (p *primitive[V, K]) Combine(sidecar primitive[V, K]) {
	if sidecar.Id != nil {
		p.Id = sidecar.Id
	}
	if len(sidecar.Extension) > 0 {
		p.Extension = sidecar.Extension
	}
	if p.Value == nil {
		p.Value = sidecar.Value
	}
}

func (p primitive[V, K]) withSidecar(sidecar AnyType) AnyType {
	if sc, ok := sidecar.(primitive[V, K]); ok {
		p.Combine(sc)
	}
	return p
}

// isEmpty reports whether the whole element is absent.
func (p primitive[V, K]) isEmpty() bool {
	return p.Value == nil && p.Id == nil && len(p.Extension) == 0
}

func (p primitive[V, K]) isAnyType() {}

func (p primitive[V, K]) SystemValue() (fhirpath.Element, bool) {
	if p.Value == nil {
		return nil, false
	}
	return p.kind().system(*p.Value), true
}

func (p primitive[V, K]) Children(name ...string) fhirpath.Collection {
	var c fhirpath.Collection
	if p.Id != nil && (len(name) == 0 || slices.Contains(name, "id")) {
		c = append(c, fhirpath.String(*p.Id))
	}
	if len(name) == 0 || slices.Contains(name, "extension") {
		for _, e := range p.Extension {
			c = append(c, e)
		}
	}
	return c
}

func (p primitive[V, K]) Equal(other fhirpath.Element) (eq bool, ok bool) {
	v, ok := p.SystemValue()
	if !ok {
		return false, false
	}
	if o, isPrimitive := other.(fhirpath.Primitive); isPrimitive {
		other, ok = o.SystemValue()
		if !ok {
			return false, false
		}
	}
	return v.Equal(other)
}

func (p primitive[V, K]) TypeInfo() fhirpath.TypeInfo {
	return primitiveTypeInfo(p.TypeName())
}

func (p primitive[V, K]) String() string {
	if p.Value == nil {
		return ""
	}
	return p.kind().format(*p.Value)
}

func (p primitive[V, K]) Serialize(s encoding.Serializer) error {
	ps, err := s.SerializePrimitive()
	if err != nil {
		return err
	}
	if err := ps.SerializeID(p.Id); err != nil {
		return err
	}
	var value *encoding.Scalar
	if p.Value != nil {
		value = &encoding.Scalar{Kind: p.kind().scalarKind(), Text: p.kind().format(*p.Value)}
	}
	if err := ps.SerializeValue(value); err != nil {
		return err
	}
	if len(p.Extension) > 0 {
		if err := serializeVec(ps.Extension(), p.Extension); err != nil {
			return err
		}
	}
	return ps.End()
}

func (p *primitive[V, K]) Deserialize(d encoding.Deserializer) error {
	return d.DecodePrimitive(&primitiveVisitor[V, K]{p: p})
}

func (p *primitive[V, K]) deserializeSidecar(d encoding.Deserializer) error {
	return d.DecodeSidecar(&primitiveVisitor[V, K]{p: p, sidecar: true})
}

type primitiveVisitor[V any, K primitiveKind[V]] struct {
	p       *primitive[V, K]
	sidecar bool
}

func (v *primitiveVisitor[V, K]) VisitID(id string) error {
	v.p.Id = &id
	return nil
}

func (v *primitiveVisitor[V, K]) VisitValue(s encoding.Scalar) error {
	k := v.p.kind()
	if v.sidecar {
		return &encoding.UnexpectedEventError{Got: "value", Want: "id or extension of " + k.typeName()}
	}
	if s.Kind != encoding.KindText && s.Kind != k.scalarKind() {
		return &encoding.LexicalFormatError{
			Kind:  k.typeName(),
			Input: s.Text,
			Err:   fmt.Errorf("expected JSON %s, got %s", k.scalarKind(), s.Kind),
		}
	}
	value, err := k.parse(s.Text)
	if err != nil {
		return &encoding.LexicalFormatError{Kind: k.typeName(), Input: s.Text, Err: err}
	}
	v.p.Value = &value
	return nil
}

func (v *primitiveVisitor[V, K]) VisitExtension(d encoding.Deserializer) error {
	return deserializeVec(d, &v.p.Extension)
}

// primitive types derived from other primitives, all others derive from PrimitiveType directly
var primitiveBases = map[string]string{
	"code":        "string",
	"id":          "string",
	"markdown":    "string",
	"canonical":   "uri",
	"oid":         "uri",
	"url":         "uri",
	"uuid":        "uri",
	"positiveInt": "integer",
	"unsignedInt": "integer",
}

func primitiveTypeInfo(name string) fhirpath.TypeInfo {
	var bases []fhirpath.TypeSpecifier
	if base, ok := primitiveBases[name]; ok {
		bases = append(bases, fhirpath.TypeSpecifier{Namespace: "FHIR", Name: base})
	}
	bases = append(bases, fhirBases("PrimitiveType", "DataType", "Element", "Base")...)
	return fhirpath.TypeInfo{
		TypeSpecifier: fhirpath.TypeSpecifier{Namespace: "FHIR", Name: name},
		BaseTypes:     bases,
		Elements:      []string{"id", "extension"},
	}
}

func fhirBases(names ...string) []fhirpath.TypeSpecifier {
	specs := make([]fhirpath.TypeSpecifier, len(names))
	for i, n := range names {
		specs[i] = fhirpath.TypeSpecifier{Namespace: "FHIR", Name: n}
	}
	return specs
}
