package r5

import (
	"encoding/json"
	"encoding/xml"
	"sort"

	"github.com/buger/jsonparser"
	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/model"
)

// AnyType is one of the data types allowed in choice-of-type fields, like Extension.value[x].
type AnyType interface {
	model.Element
	isAnyType()
}

// anyTypeNames lists the variants of AnyType, serialized as value<TypeName>.
var anyTypeNames = []string{
	"base64Binary", "boolean", "canonical", "code", "date", "dateTime", "decimal", "id", "instant",
	"integer", "integer64", "markdown", "oid", "positiveInt", "string", "time", "unsignedInt",
	"uri", "url", "uuid",
	"Address", "Annotation", "Attachment", "CodeableConcept", "CodeableReference", "Coding",
	"ContactPoint", "HumanName", "Identifier", "Meta", "Period", "Quantity", "Range", "Ratio",
	"Reference",
}

type anyTypeCodec struct {
	decode        func(d encoding.Deserializer) (AnyType, error)
	decodeSidecar func(d encoding.Deserializer) (AnyType, error)
}

// anyTypes maps type names to their decoders. It is populated in init,
// because decoding Extension values refers back to Extension itself.
var anyTypes map[string]anyTypeCodec

func primitiveCodec[P AnyType, PP primitivePtr[P]]() anyTypeCodec {
	return anyTypeCodec{
		decode: func(d encoding.Deserializer) (AnyType, error) {
			var p P
			err := PP(&p).Deserialize(d)
			return p, err
		},
		decodeSidecar: func(d encoding.Deserializer) (AnyType, error) {
			var p P
			err := PP(&p).deserializeSidecar(d)
			return p, err
		},
	}
}

func elementCodec[T AnyType, PT elementPtr[T]]() anyTypeCodec {
	return anyTypeCodec{
		decode: func(d encoding.Deserializer) (AnyType, error) {
			var v T
			err := PT(&v).Deserialize(d)
			return v, err
		},
	}
}

// resourceFactory creates an empty resource together with the visitor decoding into it.
type resourceFactory func() (model.Resource, encoding.MapVisitor)

var resourceFactories map[string]resourceFactory

type resourcePtr[R any] interface {
	*R
	model.Resource
	mapVisitor() encoding.MapVisitor
}

func newResource[R any, PR resourcePtr[R]]() (model.Resource, encoding.MapVisitor) {
	r := PR(new(R))
	return r, r.mapVisitor()
}

func init() {
	anyTypes = map[string]anyTypeCodec{
		"base64Binary": primitiveCodec[Base64Binary](),
		"boolean":      primitiveCodec[Boolean](),
		"canonical":    primitiveCodec[Canonical](),
		"code":         primitiveCodec[Code](),
		"date":         primitiveCodec[Date](),
		"dateTime":     primitiveCodec[DateTime](),
		"decimal":      primitiveCodec[Decimal](),
		"id":           primitiveCodec[Id](),
		"instant":      primitiveCodec[Instant](),
		"integer":      primitiveCodec[Integer](),
		"integer64":    primitiveCodec[Integer64](),
		"markdown":     primitiveCodec[Markdown](),
		"oid":          primitiveCodec[Oid](),
		"positiveInt":  primitiveCodec[PositiveInt](),
		"string":       primitiveCodec[String](),
		"time":         primitiveCodec[Time](),
		"unsignedInt":  primitiveCodec[UnsignedInt](),
		"uri":          primitiveCodec[Uri](),
		"url":          primitiveCodec[Url](),
		"uuid":         primitiveCodec[Uuid](),

		"Address":           elementCodec[Address](),
		"Annotation":        elementCodec[Annotation](),
		"Attachment":        elementCodec[Attachment](),
		"CodeableConcept":   elementCodec[CodeableConcept](),
		"CodeableReference": elementCodec[CodeableReference](),
		"Coding":            elementCodec[Coding](),
		"ContactPoint":      elementCodec[ContactPoint](),
		"HumanName":         elementCodec[HumanName](),
		"Identifier":        elementCodec[Identifier](),
		"Meta":              elementCodec[Meta](),
		"Period":            elementCodec[Period](),
		"Quantity":          elementCodec[Quantity](),
		"Range":             elementCodec[Range](),
		"Ratio":             elementCodec[Ratio](),
		"Reference":         elementCodec[Reference](),
	}

	resourceFactories = map[string]resourceFactory{
		"Bundle":              newResource[Bundle],
		"Encounter":           newResource[Encounter],
		"Observation":         newResource[Observation],
		"OperationOutcome":    newResource[OperationOutcome],
		"Parameters":          newResource[Parameters],
		"Patient":             newResource[Patient],
		"StructureDefinition": newResource[StructureDefinition],
	}
}

// ResourceTypes returns the names of all supported resource types, sorted.
func ResourceTypes() []string {
	names := make([]string, 0, len(resourceFactories))
	for name := range resourceFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func unknownResource(resourceType string) error {
	return &encoding.UnknownFieldError{Path: "resourceType", Key: resourceType}
}

// ContainedResource holds a resource of any type, like the elements of DomainResource.contained.
// Resource is a pointer to the concrete resource, like *Patient.
type ContainedResource struct {
	Resource model.Resource
}

func (r ContainedResource) Serialize(s encoding.Serializer) error {
	if r.Resource == nil {
		return &encoding.InvariantError{Type: "ContainedResource", Msg: "no resource set"}
	}
	return r.Resource.Serialize(s)
}

func (r *ContainedResource) Deserialize(d encoding.Deserializer) error {
	return d.DecodeResource(func(resourceType string) (encoding.MapVisitor, error) {
		create, ok := resourceFactories[resourceType]
		if !ok {
			return nil, unknownResource(resourceType)
		}
		res, v := create()
		r.Resource = res
		return v, nil
	})
}

func (r ContainedResource) MarshalJSON() ([]byte, error) {
	return fhirjson.Marshal(r)
}

// UnmarshalJSON looks up the resourceType first, so the resource is decoded without buffering.
func (r *ContainedResource) UnmarshalJSON(b []byte) error {
	resourceType, err := peekResourceType(b)
	if err != nil {
		return err
	}
	return fhirjson.UnmarshalResource(b, resourceType, r)
}

func (r ContainedResource) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return fhirxml.MarshalElement(enc, r, start)
}

func (r *ContainedResource) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return fhirxml.UnmarshalElement(dec, start, r)
}

// peekResourceType reads the resourceType of a JSON resource without decoding it.
func peekResourceType(b []byte) (string, error) {
	resourceType, err := jsonparser.GetString(b, "resourceType")
	if err != nil {
		return "", &encoding.UnexpectedEventError{Got: "object without resourceType", Want: "resource"}
	}
	if _, ok := resourceFactories[resourceType]; !ok {
		return "", unknownResource(resourceType)
	}
	return resourceType, nil
}

var (
	_ json.Marshaler   = ContainedResource{}
	_ json.Unmarshaler = (*ContainedResource)(nil)
	_ xml.Marshaler    = ContainedResource{}
	_ xml.Unmarshaler  = (*ContainedResource)(nil)
)
