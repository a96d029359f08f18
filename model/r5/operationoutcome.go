package r5

import (
	"encoding/xml"

	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// OperationOutcome is a collection of errors, warnings or information messages that result from a system action.
type OperationOutcome struct {
	Id                *Id
	Meta              *Meta
	ImplicitRules     *Uri
	Language          *Code
	Text              *Narrative
	Contained         []ContainedResource
	Extension         []Extension
	ModifierExtension []Extension
	Issue             []OperationOutcomeIssue
}

var operationOutcomeType = newType("OperationOutcome", model.KindResource, model.BaseDomainResource,
	nil,
	singlePrimitive(desc("id", "id", 0, 1, summary), func(o *OperationOutcome) **Id { return &o.Id }),
	singleElement(desc("meta", "Meta", 0, 1, summary), func(o *OperationOutcome) **Meta { return &o.Meta }),
	singlePrimitive(desc("implicitRules", "uri", 0, 1, modifier, summary), func(o *OperationOutcome) **Uri { return &o.ImplicitRules }),
	singlePrimitive(desc("language", "code", 0, 1), func(o *OperationOutcome) **Code { return &o.Language }),
	singleElement(desc("text", "Narrative", 0, 1), func(o *OperationOutcome) **Narrative { return &o.Text }),
	repeatedResource(desc("contained", "Resource", 0, model.Unbounded), func(o *OperationOutcome) *[]ContainedResource { return &o.Contained }),
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *OperationOutcome) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *OperationOutcome) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("issue", "OperationOutcomeIssue", 1, model.Unbounded, summary), func(o *OperationOutcome) *[]OperationOutcomeIssue { return &o.Issue }),
)

func (o OperationOutcome) TypeName() string {
	return "OperationOutcome"
}

func (o OperationOutcome) Serialize(s encoding.Serializer) error {
	return operationOutcomeType.serialize(&o, s)
}

func (o *OperationOutcome) Deserialize(d encoding.Deserializer) error {
	return operationOutcomeType.deserialize(o, d)
}

func (o OperationOutcome) Children(name ...string) fhirpath.Collection {
	return operationOutcomeType.children(&o, name)
}

func (o OperationOutcome) Equal(other fhirpath.Element) (bool, bool) {
	return operationOutcomeType.equal(o, other)
}

func (o OperationOutcome) TypeInfo() fhirpath.TypeInfo {
	return operationOutcomeType.info
}

func (o OperationOutcome) String() string {
	return compact(o)
}

func (o OperationOutcome) ResourceType() string {
	return "OperationOutcome"
}

func (o OperationOutcome) ResourceId() (string, bool) {
	return resourceID(o.Id)
}

func (o *OperationOutcome) mapVisitor() encoding.MapVisitor {
	return operationOutcomeType.visitor(o)
}

func (o OperationOutcome) MarshalJSON() ([]byte, error) {
	return fhirjson.Marshal(o)
}

func (o *OperationOutcome) UnmarshalJSON(b []byte) error {
	return fhirjson.Unmarshal(b, o)
}

func (o OperationOutcome) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return fhirxml.MarshalElement(enc, o, start)
}

func (o *OperationOutcome) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return fhirxml.UnmarshalElement(dec, start, o)
}

func (o *OperationOutcome) extensions() *[]Extension {
	return &o.Extension
}

type OperationOutcomeIssue struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Severity          *Code
	Code              *Code
	Details           *CodeableConcept
	Diagnostics       *String
	Location          []String
	Expression        []String
}

var operationOutcomeIssueType = newType("OperationOutcomeIssue", model.KindBackbone, model.BaseNone,
	func(o *OperationOutcomeIssue) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *OperationOutcomeIssue) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *OperationOutcomeIssue) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("severity", "code", 1, 1, summary), func(o *OperationOutcomeIssue) **Code { return &o.Severity }),
	singlePrimitive(desc("code", "code", 1, 1, summary), func(o *OperationOutcomeIssue) **Code { return &o.Code }),
	singleElement(desc("details", "CodeableConcept", 0, 1, summary), func(o *OperationOutcomeIssue) **CodeableConcept { return &o.Details }),
	singlePrimitive(desc("diagnostics", "string", 0, 1, summary), func(o *OperationOutcomeIssue) **String { return &o.Diagnostics }),
	repeatedPrimitive(desc("location", "string", 0, model.Unbounded, summary), func(o *OperationOutcomeIssue) *[]String { return &o.Location }),
	repeatedPrimitive(desc("expression", "string", 0, model.Unbounded, summary), func(o *OperationOutcomeIssue) *[]String { return &o.Expression }),
)

func (o OperationOutcomeIssue) TypeName() string {
	return "OperationOutcomeIssue"
}

func (o OperationOutcomeIssue) Serialize(s encoding.Serializer) error {
	return operationOutcomeIssueType.serialize(&o, s)
}

func (o *OperationOutcomeIssue) Deserialize(d encoding.Deserializer) error {
	return operationOutcomeIssueType.deserialize(o, d)
}

func (o OperationOutcomeIssue) Children(name ...string) fhirpath.Collection {
	return operationOutcomeIssueType.children(&o, name)
}

func (o OperationOutcomeIssue) Equal(other fhirpath.Element) (bool, bool) {
	return operationOutcomeIssueType.equal(o, other)
}

func (o OperationOutcomeIssue) TypeInfo() fhirpath.TypeInfo {
	return operationOutcomeIssueType.info
}

func (o OperationOutcomeIssue) String() string {
	return compact(o)
}

func (o *OperationOutcomeIssue) extensions() *[]Extension {
	return &o.Extension
}

func (o *OperationOutcomeIssue) elementID() **string {
	return &o.Id
}
