package r5

import (
	"encoding/xml"

	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// Observation holds measurements and simple assertions made about a patient or other subject.
type Observation struct {
	Id                *Id
	Meta              *Meta
	ImplicitRules     *Uri
	Language          *Code
	Text              *Narrative
	Contained         []ContainedResource
	Extension         []Extension
	ModifierExtension []Extension
	Identifier        []Identifier
	Instantiates      AnyType
	BasedOn           []Reference
	PartOf            []Reference
	Status            *Code
	Category          []CodeableConcept
	Code              *CodeableConcept
	Subject           *Reference
	Focus             []Reference
	Encounter         *Reference
	Effective         AnyType
	Issued            *Instant
	Performer         []Reference
	Value             AnyType
	DataAbsentReason  *CodeableConcept
	Interpretation    []CodeableConcept
	Note              []Annotation
	BodySite          *CodeableConcept
	BodyStructure     *Reference
	Method            *CodeableConcept
	Specimen          *Reference
	Device            *Reference
	ReferenceRange    []ObservationReferenceRange
	HasMember         []Reference
	DerivedFrom       []Reference
	Component         []ObservationComponent
}

var observationType = newType("Observation", model.KindResource, model.BaseDomainResource,
	nil,
	singlePrimitive(desc("id", "id", 0, 1, summary), func(o *Observation) **Id { return &o.Id }),
	singleElement(desc("meta", "Meta", 0, 1, summary), func(o *Observation) **Meta { return &o.Meta }),
	singlePrimitive(desc("implicitRules", "uri", 0, 1, modifier, summary), func(o *Observation) **Uri { return &o.ImplicitRules }),
	singlePrimitive(desc("language", "code", 0, 1), func(o *Observation) **Code { return &o.Language }),
	singleElement(desc("text", "Narrative", 0, 1), func(o *Observation) **Narrative { return &o.Text }),
	repeatedResource(desc("contained", "Resource", 0, model.Unbounded), func(o *Observation) *[]ContainedResource { return &o.Contained }),
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Observation) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *Observation) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("identifier", "Identifier", 0, model.Unbounded, summary), func(o *Observation) *[]Identifier { return &o.Identifier }),
	choice(choiceDesc("instantiates", 0, []string{"canonical", "Reference"}, summary), func(o *Observation) *AnyType { return &o.Instantiates }),
	repeatedElement(desc("basedOn", "Reference", 0, model.Unbounded, summary), func(o *Observation) *[]Reference { return &o.BasedOn }),
	repeatedElement(desc("partOf", "Reference", 0, model.Unbounded, summary), func(o *Observation) *[]Reference { return &o.PartOf }),
	singlePrimitive(desc("status", "code", 1, 1, modifier, summary), func(o *Observation) **Code { return &o.Status }),
	repeatedElement(desc("category", "CodeableConcept", 0, model.Unbounded), func(o *Observation) *[]CodeableConcept { return &o.Category }),
	singleElement(desc("code", "CodeableConcept", 1, 1, summary), func(o *Observation) **CodeableConcept { return &o.Code }),
	singleElement(desc("subject", "Reference", 0, 1, summary), func(o *Observation) **Reference { return &o.Subject }),
	repeatedElement(desc("focus", "Reference", 0, model.Unbounded, summary), func(o *Observation) *[]Reference { return &o.Focus }),
	singleElement(desc("encounter", "Reference", 0, 1, summary), func(o *Observation) **Reference { return &o.Encounter }),
	choice(choiceDesc("effective", 0, []string{"dateTime", "Period", "instant"}, summary), func(o *Observation) *AnyType { return &o.Effective }),
	singlePrimitive(desc("issued", "instant", 0, 1, summary), func(o *Observation) **Instant { return &o.Issued }),
	repeatedElement(desc("performer", "Reference", 0, model.Unbounded, summary), func(o *Observation) *[]Reference { return &o.Performer }),
	choice(choiceDesc("value", 0, []string{"Quantity", "CodeableConcept", "string", "boolean", "integer", "Range", "Ratio", "time", "dateTime", "Period", "Attachment", "Reference"}, summary), func(o *Observation) *AnyType { return &o.Value }),
	singleElement(desc("dataAbsentReason", "CodeableConcept", 0, 1), func(o *Observation) **CodeableConcept { return &o.DataAbsentReason }),
	repeatedElement(desc("interpretation", "CodeableConcept", 0, model.Unbounded), func(o *Observation) *[]CodeableConcept { return &o.Interpretation }),
	repeatedElement(desc("note", "Annotation", 0, model.Unbounded), func(o *Observation) *[]Annotation { return &o.Note }),
	singleElement(desc("bodySite", "CodeableConcept", 0, 1), func(o *Observation) **CodeableConcept { return &o.BodySite }),
	singleElement(desc("bodyStructure", "Reference", 0, 1), func(o *Observation) **Reference { return &o.BodyStructure }),
	singleElement(desc("method", "CodeableConcept", 0, 1), func(o *Observation) **CodeableConcept { return &o.Method }),
	singleElement(desc("specimen", "Reference", 0, 1), func(o *Observation) **Reference { return &o.Specimen }),
	singleElement(desc("device", "Reference", 0, 1), func(o *Observation) **Reference { return &o.Device }),
	repeatedElement(desc("referenceRange", "ObservationReferenceRange", 0, model.Unbounded), func(o *Observation) *[]ObservationReferenceRange { return &o.ReferenceRange }),
	repeatedElement(desc("hasMember", "Reference", 0, model.Unbounded, summary), func(o *Observation) *[]Reference { return &o.HasMember }),
	repeatedElement(desc("derivedFrom", "Reference", 0, model.Unbounded, summary), func(o *Observation) *[]Reference { return &o.DerivedFrom }),
	repeatedElement(desc("component", "ObservationComponent", 0, model.Unbounded, summary), func(o *Observation) *[]ObservationComponent { return &o.Component }),
)

func (o Observation) TypeName() string {
	return "Observation"
}

func (o Observation) Serialize(s encoding.Serializer) error {
	return observationType.serialize(&o, s)
}

func (o *Observation) Deserialize(d encoding.Deserializer) error {
	return observationType.deserialize(o, d)
}

func (o Observation) Children(name ...string) fhirpath.Collection {
	return observationType.children(&o, name)
}

func (o Observation) Equal(other fhirpath.Element) (bool, bool) {
	return observationType.equal(o, other)
}

func (o Observation) TypeInfo() fhirpath.TypeInfo {
	return observationType.info
}

func (o Observation) String() string {
	return compact(o)
}

func (o Observation) ResourceType() string {
	return "Observation"
}

func (o Observation) ResourceId() (string, bool) {
	return resourceID(o.Id)
}

func (o *Observation) mapVisitor() encoding.MapVisitor {
	return observationType.visitor(o)
}

func (o Observation) MarshalJSON() ([]byte, error) {
	return fhirjson.Marshal(o)
}

func (o *Observation) UnmarshalJSON(b []byte) error {
	return fhirjson.Unmarshal(b, o)
}

func (o Observation) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return fhirxml.MarshalElement(enc, o, start)
}

func (o *Observation) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return fhirxml.UnmarshalElement(dec, start, o)
}

func (o *Observation) extensions() *[]Extension {
	return &o.Extension
}

type ObservationReferenceRange struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Low               *Quantity
	High              *Quantity
	NormalValue       *CodeableConcept
	Type              *CodeableConcept
	AppliesTo         []CodeableConcept
	Age               *Range
	Text              *Markdown
}

var observationReferenceRangeType = newType("ObservationReferenceRange", model.KindBackbone, model.BaseNone,
	func(o *ObservationReferenceRange) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ObservationReferenceRange) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ObservationReferenceRange) *[]Extension { return &o.ModifierExtension }),
	singleElement(desc("low", "Quantity", 0, 1), func(o *ObservationReferenceRange) **Quantity { return &o.Low }),
	singleElement(desc("high", "Quantity", 0, 1), func(o *ObservationReferenceRange) **Quantity { return &o.High }),
	singleElement(desc("normalValue", "CodeableConcept", 0, 1), func(o *ObservationReferenceRange) **CodeableConcept { return &o.NormalValue }),
	singleElement(desc("type", "CodeableConcept", 0, 1), func(o *ObservationReferenceRange) **CodeableConcept { return &o.Type }),
	repeatedElement(desc("appliesTo", "CodeableConcept", 0, model.Unbounded), func(o *ObservationReferenceRange) *[]CodeableConcept { return &o.AppliesTo }),
	singleElement(desc("age", "Range", 0, 1), func(o *ObservationReferenceRange) **Range { return &o.Age }),
	singlePrimitive(desc("text", "markdown", 0, 1), func(o *ObservationReferenceRange) **Markdown { return &o.Text }),
)

func (o ObservationReferenceRange) TypeName() string {
	return "ObservationReferenceRange"
}

func (o ObservationReferenceRange) Serialize(s encoding.Serializer) error {
	return observationReferenceRangeType.serialize(&o, s)
}

func (o *ObservationReferenceRange) Deserialize(d encoding.Deserializer) error {
	return observationReferenceRangeType.deserialize(o, d)
}

func (o ObservationReferenceRange) Children(name ...string) fhirpath.Collection {
	return observationReferenceRangeType.children(&o, name)
}

func (o ObservationReferenceRange) Equal(other fhirpath.Element) (bool, bool) {
	return observationReferenceRangeType.equal(o, other)
}

func (o ObservationReferenceRange) TypeInfo() fhirpath.TypeInfo {
	return observationReferenceRangeType.info
}

func (o ObservationReferenceRange) String() string {
	return compact(o)
}

func (o *ObservationReferenceRange) extensions() *[]Extension {
	return &o.Extension
}

func (o *ObservationReferenceRange) elementID() **string {
	return &o.Id
}

type ObservationComponent struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Code              *CodeableConcept
	Value             AnyType
	DataAbsentReason  *CodeableConcept
	Interpretation    []CodeableConcept
	ReferenceRange    []ObservationReferenceRange
}

var observationComponentType = newType("ObservationComponent", model.KindBackbone, model.BaseNone,
	func(o *ObservationComponent) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ObservationComponent) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ObservationComponent) *[]Extension { return &o.ModifierExtension }),
	singleElement(desc("code", "CodeableConcept", 1, 1, summary), func(o *ObservationComponent) **CodeableConcept { return &o.Code }),
	choice(choiceDesc("value", 0, []string{"Quantity", "CodeableConcept", "string", "boolean", "integer", "Range", "Ratio", "time", "dateTime", "Period", "Attachment", "Reference"}, summary), func(o *ObservationComponent) *AnyType { return &o.Value }),
	singleElement(desc("dataAbsentReason", "CodeableConcept", 0, 1), func(o *ObservationComponent) **CodeableConcept { return &o.DataAbsentReason }),
	repeatedElement(desc("interpretation", "CodeableConcept", 0, model.Unbounded), func(o *ObservationComponent) *[]CodeableConcept { return &o.Interpretation }),
	repeatedElement(desc("referenceRange", "ObservationReferenceRange", 0, model.Unbounded), func(o *ObservationComponent) *[]ObservationReferenceRange { return &o.ReferenceRange }),
)

func (o ObservationComponent) TypeName() string {
	return "ObservationComponent"
}

func (o ObservationComponent) Serialize(s encoding.Serializer) error {
	return observationComponentType.serialize(&o, s)
}

func (o *ObservationComponent) Deserialize(d encoding.Deserializer) error {
	return observationComponentType.deserialize(o, d)
}

func (o ObservationComponent) Children(name ...string) fhirpath.Collection {
	return observationComponentType.children(&o, name)
}

func (o ObservationComponent) Equal(other fhirpath.Element) (bool, bool) {
	return observationComponentType.equal(o, other)
}

func (o ObservationComponent) TypeInfo() fhirpath.TypeInfo {
	return observationComponentType.info
}

func (o ObservationComponent) String() string {
	return compact(o)
}

func (o *ObservationComponent) extensions() *[]Extension {
	return &o.Extension
}

func (o *ObservationComponent) elementID() **string {
	return &o.Id
}
