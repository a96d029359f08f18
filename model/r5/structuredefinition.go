package r5

import (
	"encoding/xml"

	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// StructureDefinition defines a resource, data type or profile by a list of element definitions.
type StructureDefinition struct {
	Id                *Id
	Meta              *Meta
	ImplicitRules     *Uri
	Language          *Code
	Text              *Narrative
	Contained         []ContainedResource
	Extension         []Extension
	ModifierExtension []Extension
	Url               *Uri
	Identifier        []Identifier
	Version           *String
	VersionAlgorithm  AnyType
	Name              *String
	Title             *String
	Status            *Code
	Experimental      *Boolean
	Date              *DateTime
	Publisher         *String
	Description       *Markdown
	Jurisdiction      []CodeableConcept
	Purpose           *Markdown
	Copyright         *Markdown
	CopyrightLabel    *String
	Keyword           []Coding
	FhirVersion       *Code
	Kind              *Code
	Abstract          *Boolean
	ContextInvariant  []String
	Type              *Uri
	BaseDefinition    *Canonical
	Derivation        *Code
	Snapshot          *StructureDefinitionSnapshot
	Differential      *StructureDefinitionDifferential
}

var structureDefinitionType = newType("StructureDefinition", model.KindResource, model.BaseDomainResource,
	nil,
	singlePrimitive(desc("id", "id", 0, 1, summary), func(o *StructureDefinition) **Id { return &o.Id }),
	singleElement(desc("meta", "Meta", 0, 1, summary), func(o *StructureDefinition) **Meta { return &o.Meta }),
	singlePrimitive(desc("implicitRules", "uri", 0, 1, modifier, summary), func(o *StructureDefinition) **Uri { return &o.ImplicitRules }),
	singlePrimitive(desc("language", "code", 0, 1), func(o *StructureDefinition) **Code { return &o.Language }),
	singleElement(desc("text", "Narrative", 0, 1), func(o *StructureDefinition) **Narrative { return &o.Text }),
	repeatedResource(desc("contained", "Resource", 0, model.Unbounded), func(o *StructureDefinition) *[]ContainedResource { return &o.Contained }),
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *StructureDefinition) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *StructureDefinition) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("url", "uri", 0, 1, summary), func(o *StructureDefinition) **Uri { return &o.Url }),
	repeatedElement(desc("identifier", "Identifier", 0, model.Unbounded, summary), func(o *StructureDefinition) *[]Identifier { return &o.Identifier }),
	singlePrimitive(desc("version", "string", 0, 1, summary), func(o *StructureDefinition) **String { return &o.Version }),
	choice(choiceDesc("versionAlgorithm", 0, []string{"string", "Coding"}, summary), func(o *StructureDefinition) *AnyType { return &o.VersionAlgorithm }),
	singlePrimitive(desc("name", "string", 1, 1, summary), func(o *StructureDefinition) **String { return &o.Name }),
	singlePrimitive(desc("title", "string", 0, 1, summary), func(o *StructureDefinition) **String { return &o.Title }),
	singlePrimitive(desc("status", "code", 1, 1, modifier, summary), func(o *StructureDefinition) **Code { return &o.Status }),
	singlePrimitive(desc("experimental", "boolean", 0, 1, summary), func(o *StructureDefinition) **Boolean { return &o.Experimental }),
	singlePrimitive(desc("date", "dateTime", 0, 1, summary), func(o *StructureDefinition) **DateTime { return &o.Date }),
	singlePrimitive(desc("publisher", "string", 0, 1, summary), func(o *StructureDefinition) **String { return &o.Publisher }),
	singlePrimitive(desc("description", "markdown", 0, 1), func(o *StructureDefinition) **Markdown { return &o.Description }),
	repeatedElement(desc("jurisdiction", "CodeableConcept", 0, model.Unbounded, summary), func(o *StructureDefinition) *[]CodeableConcept { return &o.Jurisdiction }),
	singlePrimitive(desc("purpose", "markdown", 0, 1), func(o *StructureDefinition) **Markdown { return &o.Purpose }),
	singlePrimitive(desc("copyright", "markdown", 0, 1), func(o *StructureDefinition) **Markdown { return &o.Copyright }),
	singlePrimitive(desc("copyrightLabel", "string", 0, 1), func(o *StructureDefinition) **String { return &o.CopyrightLabel }),
	repeatedElement(desc("keyword", "Coding", 0, model.Unbounded, summary), func(o *StructureDefinition) *[]Coding { return &o.Keyword }),
	singlePrimitive(desc("fhirVersion", "code", 0, 1, summary), func(o *StructureDefinition) **Code { return &o.FhirVersion }),
	singlePrimitive(desc("kind", "code", 1, 1, summary), func(o *StructureDefinition) **Code { return &o.Kind }),
	singlePrimitive(desc("abstract", "boolean", 1, 1, summary), func(o *StructureDefinition) **Boolean { return &o.Abstract }),
	repeatedPrimitive(desc("contextInvariant", "string", 0, model.Unbounded, summary), func(o *StructureDefinition) *[]String { return &o.ContextInvariant }),
	singlePrimitive(desc("type", "uri", 1, 1, summary), func(o *StructureDefinition) **Uri { return &o.Type }),
	singlePrimitive(desc("baseDefinition", "canonical", 0, 1, summary), func(o *StructureDefinition) **Canonical { return &o.BaseDefinition }),
	singlePrimitive(desc("derivation", "code", 0, 1, summary), func(o *StructureDefinition) **Code { return &o.Derivation }),
	singleElement(desc("snapshot", "StructureDefinitionSnapshot", 0, 1), func(o *StructureDefinition) **StructureDefinitionSnapshot { return &o.Snapshot }),
	singleElement(desc("differential", "StructureDefinitionDifferential", 0, 1), func(o *StructureDefinition) **StructureDefinitionDifferential { return &o.Differential }),
)

func (o StructureDefinition) TypeName() string {
	return "StructureDefinition"
}

func (o StructureDefinition) Serialize(s encoding.Serializer) error {
	return structureDefinitionType.serialize(&o, s)
}

func (o *StructureDefinition) Deserialize(d encoding.Deserializer) error {
	return structureDefinitionType.deserialize(o, d)
}

func (o StructureDefinition) Children(name ...string) fhirpath.Collection {
	return structureDefinitionType.children(&o, name)
}

func (o StructureDefinition) Equal(other fhirpath.Element) (bool, bool) {
	return structureDefinitionType.equal(o, other)
}

func (o StructureDefinition) TypeInfo() fhirpath.TypeInfo {
	return structureDefinitionType.info
}

func (o StructureDefinition) String() string {
	return compact(o)
}

func (o StructureDefinition) ResourceType() string {
	return "StructureDefinition"
}

func (o StructureDefinition) ResourceId() (string, bool) {
	return resourceID(o.Id)
}

func (o *StructureDefinition) mapVisitor() encoding.MapVisitor {
	return structureDefinitionType.visitor(o)
}

func (o StructureDefinition) MarshalJSON() ([]byte, error) {
	return fhirjson.Marshal(o)
}

func (o *StructureDefinition) UnmarshalJSON(b []byte) error {
	return fhirjson.Unmarshal(b, o)
}

func (o StructureDefinition) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return fhirxml.MarshalElement(enc, o, start)
}

func (o *StructureDefinition) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return fhirxml.UnmarshalElement(dec, start, o)
}

func (o *StructureDefinition) extensions() *[]Extension {
	return &o.Extension
}

type StructureDefinitionSnapshot struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Element           []ElementDefinition
}

var structureDefinitionSnapshotType = newType("StructureDefinitionSnapshot", model.KindBackbone, model.BaseNone,
	func(o *StructureDefinitionSnapshot) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *StructureDefinitionSnapshot) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *StructureDefinitionSnapshot) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("element", "ElementDefinition", 1, model.Unbounded), func(o *StructureDefinitionSnapshot) *[]ElementDefinition { return &o.Element }),
)

func (o StructureDefinitionSnapshot) TypeName() string {
	return "StructureDefinitionSnapshot"
}

func (o StructureDefinitionSnapshot) Serialize(s encoding.Serializer) error {
	return structureDefinitionSnapshotType.serialize(&o, s)
}

func (o *StructureDefinitionSnapshot) Deserialize(d encoding.Deserializer) error {
	return structureDefinitionSnapshotType.deserialize(o, d)
}

func (o StructureDefinitionSnapshot) Children(name ...string) fhirpath.Collection {
	return structureDefinitionSnapshotType.children(&o, name)
}

func (o StructureDefinitionSnapshot) Equal(other fhirpath.Element) (bool, bool) {
	return structureDefinitionSnapshotType.equal(o, other)
}

func (o StructureDefinitionSnapshot) TypeInfo() fhirpath.TypeInfo {
	return structureDefinitionSnapshotType.info
}

func (o StructureDefinitionSnapshot) String() string {
	return compact(o)
}

func (o *StructureDefinitionSnapshot) extensions() *[]Extension {
	return &o.Extension
}

func (o *StructureDefinitionSnapshot) elementID() **string {
	return &o.Id
}

type StructureDefinitionDifferential struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Element           []ElementDefinition
}

var structureDefinitionDifferentialType = newType("StructureDefinitionDifferential", model.KindBackbone, model.BaseNone,
	func(o *StructureDefinitionDifferential) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *StructureDefinitionDifferential) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *StructureDefinitionDifferential) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("element", "ElementDefinition", 1, model.Unbounded), func(o *StructureDefinitionDifferential) *[]ElementDefinition { return &o.Element }),
)

func (o StructureDefinitionDifferential) TypeName() string {
	return "StructureDefinitionDifferential"
}

func (o StructureDefinitionDifferential) Serialize(s encoding.Serializer) error {
	return structureDefinitionDifferentialType.serialize(&o, s)
}

func (o *StructureDefinitionDifferential) Deserialize(d encoding.Deserializer) error {
	return structureDefinitionDifferentialType.deserialize(o, d)
}

func (o StructureDefinitionDifferential) Children(name ...string) fhirpath.Collection {
	return structureDefinitionDifferentialType.children(&o, name)
}

func (o StructureDefinitionDifferential) Equal(other fhirpath.Element) (bool, bool) {
	return structureDefinitionDifferentialType.equal(o, other)
}

func (o StructureDefinitionDifferential) TypeInfo() fhirpath.TypeInfo {
	return structureDefinitionDifferentialType.info
}

func (o StructureDefinitionDifferential) String() string {
	return compact(o)
}

func (o *StructureDefinitionDifferential) extensions() *[]Extension {
	return &o.Extension
}

func (o *StructureDefinitionDifferential) elementID() **string {
	return &o.Id
}
