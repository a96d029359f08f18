package r5

import (
	"encoding/xml"

	"github.com/damedic/fhir-r5-go/encoding"
	fhirjson "github.com/damedic/fhir-r5-go/encoding/json"
	fhirxml "github.com/damedic/fhir-r5-go/encoding/xml"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// Encounter is an interaction between a patient and healthcare providers.
type Encounter struct {
	Id                 *Id
	Meta               *Meta
	ImplicitRules      *Uri
	Language           *Code
	Text               *Narrative
	Contained          []ContainedResource
	Extension          []Extension
	ModifierExtension  []Extension
	Identifier         []Identifier
	Status             *Code
	Class              []CodeableConcept
	Priority           *CodeableConcept
	Type               []CodeableConcept
	ServiceType        []CodeableReference
	Subject            *Reference
	SubjectStatus      *CodeableConcept
	EpisodeOfCare      []Reference
	BasedOn            []Reference
	CareTeam           []Reference
	PartOf             *Reference
	ServiceProvider    *Reference
	Participant        []EncounterParticipant
	Appointment        []Reference
	ActualPeriod       *Period
	PlannedStartDate   *DateTime
	PlannedEndDate     *DateTime
	Reason             []EncounterReason
	Diagnosis          []EncounterDiagnosis
	Account            []Reference
	DietPreference     []CodeableConcept
	SpecialArrangement []CodeableConcept
	SpecialCourtesy    []CodeableConcept
	Location           []EncounterLocation
}

var encounterType = newType("Encounter", model.KindResource, model.BaseDomainResource,
	nil,
	singlePrimitive(desc("id", "id", 0, 1, summary), func(o *Encounter) **Id { return &o.Id }),
	singleElement(desc("meta", "Meta", 0, 1, summary), func(o *Encounter) **Meta { return &o.Meta }),
	singlePrimitive(desc("implicitRules", "uri", 0, 1, modifier, summary), func(o *Encounter) **Uri { return &o.ImplicitRules }),
	singlePrimitive(desc("language", "code", 0, 1), func(o *Encounter) **Code { return &o.Language }),
	singleElement(desc("text", "Narrative", 0, 1), func(o *Encounter) **Narrative { return &o.Text }),
	repeatedResource(desc("contained", "Resource", 0, model.Unbounded), func(o *Encounter) *[]ContainedResource { return &o.Contained }),
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Encounter) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *Encounter) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("identifier", "Identifier", 0, model.Unbounded, summary), func(o *Encounter) *[]Identifier { return &o.Identifier }),
	singlePrimitive(desc("status", "code", 1, 1, modifier, summary), func(o *Encounter) **Code { return &o.Status }),
	repeatedElement(desc("class", "CodeableConcept", 0, model.Unbounded, summary), func(o *Encounter) *[]CodeableConcept { return &o.Class }),
	singleElement(desc("priority", "CodeableConcept", 0, 1), func(o *Encounter) **CodeableConcept { return &o.Priority }),
	repeatedElement(desc("type", "CodeableConcept", 0, model.Unbounded, summary), func(o *Encounter) *[]CodeableConcept { return &o.Type }),
	repeatedElement(desc("serviceType", "CodeableReference", 0, model.Unbounded, summary), func(o *Encounter) *[]CodeableReference { return &o.ServiceType }),
	singleElement(desc("subject", "Reference", 0, 1, summary), func(o *Encounter) **Reference { return &o.Subject }),
	singleElement(desc("subjectStatus", "CodeableConcept", 0, 1), func(o *Encounter) **CodeableConcept { return &o.SubjectStatus }),
	repeatedElement(desc("episodeOfCare", "Reference", 0, model.Unbounded, summary), func(o *Encounter) *[]Reference { return &o.EpisodeOfCare }),
	repeatedElement(desc("basedOn", "Reference", 0, model.Unbounded), func(o *Encounter) *[]Reference { return &o.BasedOn }),
	repeatedElement(desc("careTeam", "Reference", 0, model.Unbounded), func(o *Encounter) *[]Reference { return &o.CareTeam }),
	singleElement(desc("partOf", "Reference", 0, 1), func(o *Encounter) **Reference { return &o.PartOf }),
	singleElement(desc("serviceProvider", "Reference", 0, 1), func(o *Encounter) **Reference { return &o.ServiceProvider }),
	repeatedElement(desc("participant", "EncounterParticipant", 0, model.Unbounded, summary), func(o *Encounter) *[]EncounterParticipant { return &o.Participant }),
	repeatedElement(desc("appointment", "Reference", 0, model.Unbounded, summary), func(o *Encounter) *[]Reference { return &o.Appointment }),
	singleElement(desc("actualPeriod", "Period", 0, 1), func(o *Encounter) **Period { return &o.ActualPeriod }),
	singlePrimitive(desc("plannedStartDate", "dateTime", 0, 1), func(o *Encounter) **DateTime { return &o.PlannedStartDate }),
	singlePrimitive(desc("plannedEndDate", "dateTime", 0, 1), func(o *Encounter) **DateTime { return &o.PlannedEndDate }),
	repeatedElement(desc("reason", "EncounterReason", 0, model.Unbounded, summary), func(o *Encounter) *[]EncounterReason { return &o.Reason }),
	repeatedElement(desc("diagnosis", "EncounterDiagnosis", 0, model.Unbounded, summary), func(o *Encounter) *[]EncounterDiagnosis { return &o.Diagnosis }),
	repeatedElement(desc("account", "Reference", 0, model.Unbounded), func(o *Encounter) *[]Reference { return &o.Account }),
	repeatedElement(desc("dietPreference", "CodeableConcept", 0, model.Unbounded), func(o *Encounter) *[]CodeableConcept { return &o.DietPreference }),
	repeatedElement(desc("specialArrangement", "CodeableConcept", 0, model.Unbounded), func(o *Encounter) *[]CodeableConcept { return &o.SpecialArrangement }),
	repeatedElement(desc("specialCourtesy", "CodeableConcept", 0, model.Unbounded), func(o *Encounter) *[]CodeableConcept { return &o.SpecialCourtesy }),
	repeatedElement(desc("location", "EncounterLocation", 0, model.Unbounded), func(o *Encounter) *[]EncounterLocation { return &o.Location }),
)

func (o Encounter) TypeName() string {
	return "Encounter"
}

func (o Encounter) Serialize(s encoding.Serializer) error {
	return encounterType.serialize(&o, s)
}

func (o *Encounter) Deserialize(d encoding.Deserializer) error {
	return encounterType.deserialize(o, d)
}

func (o Encounter) Children(name ...string) fhirpath.Collection {
	return encounterType.children(&o, name)
}

func (o Encounter) Equal(other fhirpath.Element) (bool, bool) {
	return encounterType.equal(o, other)
}

func (o Encounter) TypeInfo() fhirpath.TypeInfo {
	return encounterType.info
}

func (o Encounter) String() string {
	return compact(o)
}

func (o Encounter) ResourceType() string {
	return "Encounter"
}

func (o Encounter) ResourceId() (string, bool) {
	return resourceID(o.Id)
}

func (o *Encounter) mapVisitor() encoding.MapVisitor {
	return encounterType.visitor(o)
}

func (o Encounter) MarshalJSON() ([]byte, error) {
	return fhirjson.Marshal(o)
}

func (o *Encounter) UnmarshalJSON(b []byte) error {
	return fhirjson.Unmarshal(b, o)
}

func (o Encounter) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return fhirxml.MarshalElement(enc, o, start)
}

func (o *Encounter) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return fhirxml.UnmarshalElement(dec, start, o)
}

func (o *Encounter) extensions() *[]Extension {
	return &o.Extension
}

type EncounterParticipant struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Type              []CodeableConcept
	Period            *Period
	Actor             *Reference
}

var encounterParticipantType = newType("EncounterParticipant", model.KindBackbone, model.BaseNone,
	func(o *EncounterParticipant) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *EncounterParticipant) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *EncounterParticipant) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("type", "CodeableConcept", 0, model.Unbounded, summary), func(o *EncounterParticipant) *[]CodeableConcept { return &o.Type }),
	singleElement(desc("period", "Period", 0, 1), func(o *EncounterParticipant) **Period { return &o.Period }),
	singleElement(desc("actor", "Reference", 0, 1, summary), func(o *EncounterParticipant) **Reference { return &o.Actor }),
)

func (o EncounterParticipant) TypeName() string {
	return "EncounterParticipant"
}

func (o EncounterParticipant) Serialize(s encoding.Serializer) error {
	return encounterParticipantType.serialize(&o, s)
}

func (o *EncounterParticipant) Deserialize(d encoding.Deserializer) error {
	return encounterParticipantType.deserialize(o, d)
}

func (o EncounterParticipant) Children(name ...string) fhirpath.Collection {
	return encounterParticipantType.children(&o, name)
}

func (o EncounterParticipant) Equal(other fhirpath.Element) (bool, bool) {
	return encounterParticipantType.equal(o, other)
}

func (o EncounterParticipant) TypeInfo() fhirpath.TypeInfo {
	return encounterParticipantType.info
}

func (o EncounterParticipant) String() string {
	return compact(o)
}

func (o *EncounterParticipant) extensions() *[]Extension {
	return &o.Extension
}

func (o *EncounterParticipant) elementID() **string {
	return &o.Id
}

type EncounterReason struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Use               []CodeableConcept
	Value             []CodeableReference
}

var encounterReasonType = newType("EncounterReason", model.KindBackbone, model.BaseNone,
	func(o *EncounterReason) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *EncounterReason) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *EncounterReason) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("use", "CodeableConcept", 0, model.Unbounded, summary), func(o *EncounterReason) *[]CodeableConcept { return &o.Use }),
	repeatedElement(desc("value", "CodeableReference", 0, model.Unbounded, summary), func(o *EncounterReason) *[]CodeableReference { return &o.Value }),
)

func (o EncounterReason) TypeName() string {
	return "EncounterReason"
}

func (o EncounterReason) Serialize(s encoding.Serializer) error {
	return encounterReasonType.serialize(&o, s)
}

func (o *EncounterReason) Deserialize(d encoding.Deserializer) error {
	return encounterReasonType.deserialize(o, d)
}

func (o EncounterReason) Children(name ...string) fhirpath.Collection {
	return encounterReasonType.children(&o, name)
}

func (o EncounterReason) Equal(other fhirpath.Element) (bool, bool) {
	return encounterReasonType.equal(o, other)
}

func (o EncounterReason) TypeInfo() fhirpath.TypeInfo {
	return encounterReasonType.info
}

func (o EncounterReason) String() string {
	return compact(o)
}

func (o *EncounterReason) extensions() *[]Extension {
	return &o.Extension
}

func (o *EncounterReason) elementID() **string {
	return &o.Id
}

type EncounterDiagnosis struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Condition         []CodeableReference
	Use               []CodeableConcept
}

var encounterDiagnosisType = newType("EncounterDiagnosis", model.KindBackbone, model.BaseNone,
	func(o *EncounterDiagnosis) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *EncounterDiagnosis) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *EncounterDiagnosis) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("condition", "CodeableReference", 0, model.Unbounded), func(o *EncounterDiagnosis) *[]CodeableReference { return &o.Condition }),
	repeatedElement(desc("use", "CodeableConcept", 0, model.Unbounded), func(o *EncounterDiagnosis) *[]CodeableConcept { return &o.Use }),
)

func (o EncounterDiagnosis) TypeName() string {
	return "EncounterDiagnosis"
}

func (o EncounterDiagnosis) Serialize(s encoding.Serializer) error {
	return encounterDiagnosisType.serialize(&o, s)
}

func (o *EncounterDiagnosis) Deserialize(d encoding.Deserializer) error {
	return encounterDiagnosisType.deserialize(o, d)
}

func (o EncounterDiagnosis) Children(name ...string) fhirpath.Collection {
	return encounterDiagnosisType.children(&o, name)
}

func (o EncounterDiagnosis) Equal(other fhirpath.Element) (bool, bool) {
	return encounterDiagnosisType.equal(o, other)
}

func (o EncounterDiagnosis) TypeInfo() fhirpath.TypeInfo {
	return encounterDiagnosisType.info
}

func (o EncounterDiagnosis) String() string {
	return compact(o)
}

func (o *EncounterDiagnosis) extensions() *[]Extension {
	return &o.Extension
}

func (o *EncounterDiagnosis) elementID() **string {
	return &o.Id
}

type EncounterLocation struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Location          *Reference
	Status            *Code
	Form              *CodeableConcept
	Period            *Period
}

var encounterLocationType = newType("EncounterLocation", model.KindBackbone, model.BaseNone,
	func(o *EncounterLocation) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *EncounterLocation) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *EncounterLocation) *[]Extension { return &o.ModifierExtension }),
	singleElement(desc("location", "Reference", 1, 1), func(o *EncounterLocation) **Reference { return &o.Location }),
	singlePrimitive(desc("status", "code", 0, 1), func(o *EncounterLocation) **Code { return &o.Status }),
	singleElement(desc("form", "CodeableConcept", 0, 1), func(o *EncounterLocation) **CodeableConcept { return &o.Form }),
	singleElement(desc("period", "Period", 0, 1), func(o *EncounterLocation) **Period { return &o.Period }),
)

func (o EncounterLocation) TypeName() string {
	return "EncounterLocation"
}

func (o EncounterLocation) Serialize(s encoding.Serializer) error {
	return encounterLocationType.serialize(&o, s)
}

func (o *EncounterLocation) Deserialize(d encoding.Deserializer) error {
	return encounterLocationType.deserialize(o, d)
}

func (o EncounterLocation) Children(name ...string) fhirpath.Collection {
	return encounterLocationType.children(&o, name)
}

func (o EncounterLocation) Equal(other fhirpath.Element) (bool, bool) {
	return encounterLocationType.equal(o, other)
}

func (o EncounterLocation) TypeInfo() fhirpath.TypeInfo {
	return encounterLocationType.info
}

func (o EncounterLocation) String() string {
	return compact(o)
}

func (o *EncounterLocation) extensions() *[]Extension {
	return &o.Extension
}

func (o *EncounterLocation) elementID() **string {
	return &o.Id
}
