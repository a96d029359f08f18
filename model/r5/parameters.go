package r5

import (
	"encoding/xml"

	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// Parameters is the operation request or response of named parameters.
type Parameters struct {
	Id            *Id
	Meta          *Meta
	ImplicitRules *Uri
	Language      *Code
	Parameter     []ParametersParameter
}

var parametersType = newType("Parameters", model.KindResource, model.BaseResource,
	nil,
	singlePrimitive(desc("id", "id", 0, 1, summary), func(o *Parameters) **Id { return &o.Id }),
	singleElement(desc("meta", "Meta", 0, 1, summary), func(o *Parameters) **Meta { return &o.Meta }),
	singlePrimitive(desc("implicitRules", "uri", 0, 1, modifier, summary), func(o *Parameters) **Uri { return &o.ImplicitRules }),
	singlePrimitive(desc("language", "code", 0, 1), func(o *Parameters) **Code { return &o.Language }),
	repeatedElement(desc("parameter", "ParametersParameter", 0, model.Unbounded, summary), func(o *Parameters) *[]ParametersParameter { return &o.Parameter }),
)

func (o Parameters) TypeName() string {
	return "Parameters"
}

func (o Parameters) Serialize(s encoding.Serializer) error {
	return parametersType.serialize(&o, s)
}

func (o *Parameters) Deserialize(d encoding.Deserializer) error {
	return parametersType.deserialize(o, d)
}

func (o Parameters) Children(name ...string) fhirpath.Collection {
	return parametersType.children(&o, name)
}

func (o Parameters) Equal(other fhirpath.Element) (bool, bool) {
	return parametersType.equal(o, other)
}

func (o Parameters) TypeInfo() fhirpath.TypeInfo {
	return parametersType.info
}

func (o Parameters) String() string {
	return compact(o)
}

func (o Parameters) ResourceType() string {
	return "Parameters"
}

func (o Parameters) ResourceId() (string, bool) {
	return resourceID(o.Id)
}

func (o *Parameters) mapVisitor() encoding.MapVisitor {
	return parametersType.visitor(o)
}

func (o Parameters) MarshalJSON() ([]byte, error) {
	return fhirjson.Marshal(o)
}

func (o *Parameters) UnmarshalJSON(b []byte) error {
	return fhirjson.Unmarshal(b, o)
}

func (o Parameters) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return fhirxml.MarshalElement(enc, o, start)
}

func (o *Parameters) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return fhirxml.UnmarshalElement(dec, start, o)
}

type ParametersParameter struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Name              *String
	Value             AnyType
	Resource          *ContainedResource
	Part              []ParametersParameter
}

var parametersParameterType = newType("ParametersParameter", model.KindBackbone, model.BaseNone,
	func(o *ParametersParameter) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ParametersParameter) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ParametersParameter) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("name", "string", 1, 1, summary), func(o *ParametersParameter) **String { return &o.Name }),
	choice(choiceDesc("value", 0, anyTypeNames, summary), func(o *ParametersParameter) *AnyType { return &o.Value }),
	singleResource(desc("resource", "Resource", 0, 1, summary), func(o *ParametersParameter) **ContainedResource { return &o.Resource }),
	repeatedElement(desc("part", "ParametersParameter", 0, model.Unbounded, summary), func(o *ParametersParameter) *[]ParametersParameter { return &o.Part }),
)

func (o ParametersParameter) TypeName() string {
	return "ParametersParameter"
}

func (o ParametersParameter) Serialize(s encoding.Serializer) error {
	return parametersParameterType.serialize(&o, s)
}

func (o *ParametersParameter) Deserialize(d encoding.Deserializer) error {
	return parametersParameterType.deserialize(o, d)
}

func (o ParametersParameter) Children(name ...string) fhirpath.Collection {
	return parametersParameterType.children(&o, name)
}

func (o ParametersParameter) Equal(other fhirpath.Element) (bool, bool) {
	return parametersParameterType.equal(o, other)
}

func (o ParametersParameter) TypeInfo() fhirpath.TypeInfo {
	return parametersParameterType.info
}

func (o ParametersParameter) String() string {
	return compact(o)
}

func (o *ParametersParameter) extensions() *[]Extension {
	return &o.Extension
}

func (o *ParametersParameter) elementID() **string {
	return &o.Id
}
