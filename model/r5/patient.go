package r5

import (
	"encoding/xml"

	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// Patient holds demographics and other administrative information about an individual receiving care.
type Patient struct {
	Id                   *Id
	Meta                 *Meta
	ImplicitRules        *Uri
	Language             *Code
	Text                 *Narrative
	Contained            []ContainedResource
	Extension            []Extension
	ModifierExtension    []Extension
	Identifier           []Identifier
	Active               *Boolean
	Name                 []HumanName
	Telecom              []ContactPoint
	Gender               *Code
	BirthDate            *Date
	Deceased             AnyType
	Address              []Address
	MaritalStatus        *CodeableConcept
	MultipleBirth        AnyType
	Photo                []Attachment
	Contact              []PatientContact
	Communication        []PatientCommunication
	GeneralPractitioner  []Reference
	ManagingOrganization *Reference
	Link                 []PatientLink
}

var patientType = newType("Patient", model.KindResource, model.BaseDomainResource,
	nil,
	singlePrimitive(desc("id", "id", 0, 1, summary), func(o *Patient) **Id { return &o.Id }),
	singleElement(desc("meta", "Meta", 0, 1, summary), func(o *Patient) **Meta { return &o.Meta }),
	singlePrimitive(desc("implicitRules", "uri", 0, 1, modifier, summary), func(o *Patient) **Uri { return &o.ImplicitRules }),
	singlePrimitive(desc("language", "code", 0, 1), func(o *Patient) **Code { return &o.Language }),
	singleElement(desc("text", "Narrative", 0, 1), func(o *Patient) **Narrative { return &o.Text }),
	repeatedResource(desc("contained", "Resource", 0, model.Unbounded), func(o *Patient) *[]ContainedResource { return &o.Contained }),
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Patient) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *Patient) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("identifier", "Identifier", 0, model.Unbounded, summary), func(o *Patient) *[]Identifier { return &o.Identifier }),
	singlePrimitive(desc("active", "boolean", 0, 1, modifier, summary), func(o *Patient) **Boolean { return &o.Active }),
	repeatedElement(desc("name", "HumanName", 0, model.Unbounded, summary), func(o *Patient) *[]HumanName { return &o.Name }),
	repeatedElement(desc("telecom", "ContactPoint", 0, model.Unbounded, summary), func(o *Patient) *[]ContactPoint { return &o.Telecom }),
	singlePrimitive(desc("gender", "code", 0, 1, summary), func(o *Patient) **Code { return &o.Gender }),
	singlePrimitive(desc("birthDate", "date", 0, 1, summary), func(o *Patient) **Date { return &o.BirthDate }),
	choice(choiceDesc("deceased", 0, []string{"boolean", "dateTime"}, modifier, summary), func(o *Patient) *AnyType { return &o.Deceased }),
	repeatedElement(desc("address", "Address", 0, model.Unbounded, summary), func(o *Patient) *[]Address { return &o.Address }),
	singleElement(desc("maritalStatus", "CodeableConcept", 0, 1), func(o *Patient) **CodeableConcept { return &o.MaritalStatus }),
	choice(choiceDesc("multipleBirth", 0, []string{"boolean", "integer"}), func(o *Patient) *AnyType { return &o.MultipleBirth }),
	repeatedElement(desc("photo", "Attachment", 0, model.Unbounded), func(o *Patient) *[]Attachment { return &o.Photo }),
	repeatedElement(desc("contact", "PatientContact", 0, model.Unbounded), func(o *Patient) *[]PatientContact { return &o.Contact }),
	repeatedElement(desc("communication", "PatientCommunication", 0, model.Unbounded), func(o *Patient) *[]PatientCommunication { return &o.Communication }),
	repeatedElement(desc("generalPractitioner", "Reference", 0, model.Unbounded), func(o *Patient) *[]Reference { return &o.GeneralPractitioner }),
	singleElement(desc("managingOrganization", "Reference", 0, 1, summary), func(o *Patient) **Reference { return &o.ManagingOrganization }),
	repeatedElement(desc("link", "PatientLink", 0, model.Unbounded, modifier, summary), func(o *Patient) *[]PatientLink { return &o.Link }),
)

func (o Patient) TypeName() string {
	return "Patient"
}

func (o Patient) Serialize(s encoding.Serializer) error {
	return patientType.serialize(&o, s)
}

func (o *Patient) Deserialize(d encoding.Deserializer) error {
	return patientType.deserialize(o, d)
}

func (o Patient) Children(name ...string) fhirpath.Collection {
	return patientType.children(&o, name)
}

func (o Patient) Equal(other fhirpath.Element) (bool, bool) {
	return patientType.equal(o, other)
}

func (o Patient) TypeInfo() fhirpath.TypeInfo {
	return patientType.info
}

func (o Patient) String() string {
	return compact(o)
}

func (o Patient) ResourceType() string {
	return "Patient"
}

func (o Patient) ResourceId() (string, bool) {
	return resourceID(o.Id)
}

func (o *Patient) mapVisitor() encoding.MapVisitor {
	return patientType.visitor(o)
}

func (o Patient) MarshalJSON() ([]byte, error) {
	return fhirjson.Marshal(o)
}

func (o *Patient) UnmarshalJSON(b []byte) error {
	return fhirjson.Unmarshal(b, o)
}

func (o Patient) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return fhirxml.MarshalElement(enc, o, start)
}

func (o *Patient) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return fhirxml.UnmarshalElement(dec, start, o)
}

func (o *Patient) extensions() *[]Extension {
	return &o.Extension
}

type PatientContact struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Relationship      []CodeableConcept
	Name              *HumanName
	AdditionalName    []HumanName
	Telecom           []ContactPoint
	Address           *Address
	AdditionalAddress []Address
	Gender            *Code
	Organization      *Reference
	Period            *Period
}

var patientContactType = newType("PatientContact", model.KindBackbone, model.BaseNone,
	func(o *PatientContact) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *PatientContact) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *PatientContact) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("relationship", "CodeableConcept", 0, model.Unbounded), func(o *PatientContact) *[]CodeableConcept { return &o.Relationship }),
	singleElement(desc("name", "HumanName", 0, 1), func(o *PatientContact) **HumanName { return &o.Name }),
	repeatedElement(desc("additionalName", "HumanName", 0, model.Unbounded), func(o *PatientContact) *[]HumanName { return &o.AdditionalName }),
	repeatedElement(desc("telecom", "ContactPoint", 0, model.Unbounded), func(o *PatientContact) *[]ContactPoint { return &o.Telecom }),
	singleElement(desc("address", "Address", 0, 1), func(o *PatientContact) **Address { return &o.Address }),
	repeatedElement(desc("additionalAddress", "Address", 0, model.Unbounded), func(o *PatientContact) *[]Address { return &o.AdditionalAddress }),
	singlePrimitive(desc("gender", "code", 0, 1), func(o *PatientContact) **Code { return &o.Gender }),
	singleElement(desc("organization", "Reference", 0, 1), func(o *PatientContact) **Reference { return &o.Organization }),
	singleElement(desc("period", "Period", 0, 1), func(o *PatientContact) **Period { return &o.Period }),
)

func (o PatientContact) TypeName() string {
	return "PatientContact"
}

func (o PatientContact) Serialize(s encoding.Serializer) error {
	return patientContactType.serialize(&o, s)
}

func (o *PatientContact) Deserialize(d encoding.Deserializer) error {
	return patientContactType.deserialize(o, d)
}

func (o PatientContact) Children(name ...string) fhirpath.Collection {
	return patientContactType.children(&o, name)
}

func (o PatientContact) Equal(other fhirpath.Element) (bool, bool) {
	return patientContactType.equal(o, other)
}

func (o PatientContact) TypeInfo() fhirpath.TypeInfo {
	return patientContactType.info
}

func (o PatientContact) String() string {
	return compact(o)
}

func (o *PatientContact) extensions() *[]Extension {
	return &o.Extension
}

func (o *PatientContact) elementID() **string {
	return &o.Id
}

type PatientCommunication struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Language          *CodeableConcept
	Preferred         *Boolean
}

var patientCommunicationType = newType("PatientCommunication", model.KindBackbone, model.BaseNone,
	func(o *PatientCommunication) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *PatientCommunication) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *PatientCommunication) *[]Extension { return &o.ModifierExtension }),
	singleElement(desc("language", "CodeableConcept", 1, 1), func(o *PatientCommunication) **CodeableConcept { return &o.Language }),
	singlePrimitive(desc("preferred", "boolean", 0, 1), func(o *PatientCommunication) **Boolean { return &o.Preferred }),
)

func (o PatientCommunication) TypeName() string {
	return "PatientCommunication"
}

func (o PatientCommunication) Serialize(s encoding.Serializer) error {
	return patientCommunicationType.serialize(&o, s)
}

func (o *PatientCommunication) Deserialize(d encoding.Deserializer) error {
	return patientCommunicationType.deserialize(o, d)
}

func (o PatientCommunication) Children(name ...string) fhirpath.Collection {
	return patientCommunicationType.children(&o, name)
}

func (o PatientCommunication) Equal(other fhirpath.Element) (bool, bool) {
	return patientCommunicationType.equal(o, other)
}

func (o PatientCommunication) TypeInfo() fhirpath.TypeInfo {
	return patientCommunicationType.info
}

func (o PatientCommunication) String() string {
	return compact(o)
}

func (o *PatientCommunication) extensions() *[]Extension {
	return &o.Extension
}

func (o *PatientCommunication) elementID() **string {
	return &o.Id
}

type PatientLink struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Other             *Reference
	Type              *Code
}

var patientLinkType = newType("PatientLink", model.KindBackbone, model.BaseNone,
	func(o *PatientLink) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *PatientLink) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *PatientLink) *[]Extension { return &o.ModifierExtension }),
	singleElement(desc("other", "Reference", 1, 1, summary), func(o *PatientLink) **Reference { return &o.Other }),
	singlePrimitive(desc("type", "code", 1, 1, summary), func(o *PatientLink) **Code { return &o.Type }),
)

func (o PatientLink) TypeName() string {
	return "PatientLink"
}

func (o PatientLink) Serialize(s encoding.Serializer) error {
	return patientLinkType.serialize(&o, s)
}

func (o *PatientLink) Deserialize(d encoding.Deserializer) error {
	return patientLinkType.deserialize(o, d)
}

func (o PatientLink) Children(name ...string) fhirpath.Collection {
	return patientLinkType.children(&o, name)
}

func (o PatientLink) Equal(other fhirpath.Element) (bool, bool) {
	return patientLinkType.equal(o, other)
}

func (o PatientLink) TypeInfo() fhirpath.TypeInfo {
	return patientLinkType.info
}

func (o PatientLink) String() string {
	return compact(o)
}

func (o *PatientLink) extensions() *[]Extension {
	return &o.Extension
}

func (o *PatientLink) elementID() **string {
	return &o.Id
}
