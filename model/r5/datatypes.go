package r5

import (
	"github.com/damedic/fhir-r5-go/encoding"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	Id           *string
	Extension    []Extension
	System       *Uri
	Version      *String
	Code         *Code
	Display      *String
	UserSelected *Boolean
}

var codingType = newType("Coding", model.KindComplex, model.BaseNone,
	func(o *Coding) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Coding) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("system", "uri", 0, 1, summary), func(o *Coding) **Uri { return &o.System }),
	singlePrimitive(desc("version", "string", 0, 1, summary), func(o *Coding) **String { return &o.Version }),
	singlePrimitive(desc("code", "code", 0, 1, summary), func(o *Coding) **Code { return &o.Code }),
	singlePrimitive(desc("display", "string", 0, 1, summary), func(o *Coding) **String { return &o.Display }),
	singlePrimitive(desc("userSelected", "boolean", 0, 1, summary), func(o *Coding) **Boolean { return &o.UserSelected }),
)

func (o Coding) TypeName() string {
	return "Coding"
}

func (o Coding) Serialize(s encoding.Serializer) error {
	return codingType.serialize(&o, s)
}

func (o *Coding) Deserialize(d encoding.Deserializer) error {
	return codingType.deserialize(o, d)
}

func (o Coding) Children(name ...string) fhirpath.Collection {
	return codingType.children(&o, name)
}

func (o Coding) Equal(other fhirpath.Element) (bool, bool) {
	return codingType.equal(o, other)
}

func (o Coding) TypeInfo() fhirpath.TypeInfo {
	return codingType.info
}

func (o Coding) String() string {
	return compact(o)
}

func (o *Coding) extensions() *[]Extension {
	return &o.Extension
}

func (o *Coding) elementID() **string {
	return &o.Id
}

func (o Coding) isAnyType() {}

type CodeableConcept struct {
	Id        *string
	Extension []Extension
	Coding    []Coding
	Text      *String
}

var codeableConceptType = newType("CodeableConcept", model.KindComplex, model.BaseNone,
	func(o *CodeableConcept) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *CodeableConcept) *[]Extension { return &o.Extension }),
	repeatedElement(desc("coding", "Coding", 0, model.Unbounded, summary), func(o *CodeableConcept) *[]Coding { return &o.Coding }),
	singlePrimitive(desc("text", "string", 0, 1, summary), func(o *CodeableConcept) **String { return &o.Text }),
)

func (o CodeableConcept) TypeName() string {
	return "CodeableConcept"
}

func (o CodeableConcept) Serialize(s encoding.Serializer) error {
	return codeableConceptType.serialize(&o, s)
}

func (o *CodeableConcept) Deserialize(d encoding.Deserializer) error {
	return codeableConceptType.deserialize(o, d)
}

func (o CodeableConcept) Children(name ...string) fhirpath.Collection {
	return codeableConceptType.children(&o, name)
}

func (o CodeableConcept) Equal(other fhirpath.Element) (bool, bool) {
	return codeableConceptType.equal(o, other)
}

func (o CodeableConcept) TypeInfo() fhirpath.TypeInfo {
	return codeableConceptType.info
}

func (o CodeableConcept) String() string {
	return compact(o)
}

func (o *CodeableConcept) extensions() *[]Extension {
	return &o.Extension
}

func (o *CodeableConcept) elementID() **string {
	return &o.Id
}

func (o CodeableConcept) isAnyType() {}

// CodeableReference refers to a concept or a resource.
type CodeableReference struct {
	Id        *string
	Extension []Extension
	Concept   *CodeableConcept
	Reference *Reference
}

var codeableReferenceType = newType("CodeableReference", model.KindComplex, model.BaseNone,
	func(o *CodeableReference) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *CodeableReference) *[]Extension { return &o.Extension }),
	singleElement(desc("concept", "CodeableConcept", 0, 1, summary), func(o *CodeableReference) **CodeableConcept { return &o.Concept }),
	singleElement(desc("reference", "Reference", 0, 1, summary), func(o *CodeableReference) **Reference { return &o.Reference }),
)

func (o CodeableReference) TypeName() string {
	return "CodeableReference"
}

func (o CodeableReference) Serialize(s encoding.Serializer) error {
	return codeableReferenceType.serialize(&o, s)
}

func (o *CodeableReference) Deserialize(d encoding.Deserializer) error {
	return codeableReferenceType.deserialize(o, d)
}

func (o CodeableReference) Children(name ...string) fhirpath.Collection {
	return codeableReferenceType.children(&o, name)
}

func (o CodeableReference) Equal(other fhirpath.Element) (bool, bool) {
	return codeableReferenceType.equal(o, other)
}

func (o CodeableReference) TypeInfo() fhirpath.TypeInfo {
	return codeableReferenceType.info
}

func (o CodeableReference) String() string {
	return compact(o)
}

func (o *CodeableReference) extensions() *[]Extension {
	return &o.Extension
}

func (o *CodeableReference) elementID() **string {
	return &o.Id
}

func (o CodeableReference) isAnyType() {}

type Identifier struct {
	Id        *string
	Extension []Extension
	Use       *Code
	Type      *CodeableConcept
	System    *Uri
	Value     *String
	Period    *Period
	Assigner  *Reference
}

var identifierType = newType("Identifier", model.KindComplex, model.BaseNone,
	func(o *Identifier) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Identifier) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("use", "code", 0, 1, modifier, summary), func(o *Identifier) **Code { return &o.Use }),
	singleElement(desc("type", "CodeableConcept", 0, 1, summary), func(o *Identifier) **CodeableConcept { return &o.Type }),
	singlePrimitive(desc("system", "uri", 0, 1, summary), func(o *Identifier) **Uri { return &o.System }),
	singlePrimitive(desc("value", "string", 0, 1, summary), func(o *Identifier) **String { return &o.Value }),
	singleElement(desc("period", "Period", 0, 1, summary), func(o *Identifier) **Period { return &o.Period }),
	singleElement(desc("assigner", "Reference", 0, 1, summary), func(o *Identifier) **Reference { return &o.Assigner }),
)

func (o Identifier) TypeName() string {
	return "Identifier"
}

func (o Identifier) Serialize(s encoding.Serializer) error {
	return identifierType.serialize(&o, s)
}

func (o *Identifier) Deserialize(d encoding.Deserializer) error {
	return identifierType.deserialize(o, d)
}

func (o Identifier) Children(name ...string) fhirpath.Collection {
	return identifierType.children(&o, name)
}

func (o Identifier) Equal(other fhirpath.Element) (bool, bool) {
	return identifierType.equal(o, other)
}

func (o Identifier) TypeInfo() fhirpath.TypeInfo {
	return identifierType.info
}

func (o Identifier) String() string {
	return compact(o)
}

func (o *Identifier) extensions() *[]Extension {
	return &o.Extension
}

func (o *Identifier) elementID() **string {
	return &o.Id
}

func (o Identifier) isAnyType() {}

// HumanName is a name of a human with text, parts and usage information.
type HumanName struct {
	Id        *string
	Extension []Extension
	Use       *Code
	Text      *String
	Family    *String
	Given     []String
	Prefix    []String
	Suffix    []String
	Period    *Period
}

var humanNameType = newType("HumanName", model.KindComplex, model.BaseNone,
	func(o *HumanName) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *HumanName) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("use", "code", 0, 1, modifier, summary), func(o *HumanName) **Code { return &o.Use }),
	singlePrimitive(desc("text", "string", 0, 1, summary), func(o *HumanName) **String { return &o.Text }),
	singlePrimitive(desc("family", "string", 0, 1, summary), func(o *HumanName) **String { return &o.Family }),
	repeatedPrimitive(desc("given", "string", 0, model.Unbounded, summary), func(o *HumanName) *[]String { return &o.Given }),
	repeatedPrimitive(desc("prefix", "string", 0, model.Unbounded, summary), func(o *HumanName) *[]String { return &o.Prefix }),
	repeatedPrimitive(desc("suffix", "string", 0, model.Unbounded, summary), func(o *HumanName) *[]String { return &o.Suffix }),
	singleElement(desc("period", "Period", 0, 1, summary), func(o *HumanName) **Period { return &o.Period }),
)

func (o HumanName) TypeName() string {
	return "HumanName"
}

func (o HumanName) Serialize(s encoding.Serializer) error {
	return humanNameType.serialize(&o, s)
}

func (o *HumanName) Deserialize(d encoding.Deserializer) error {
	return humanNameType.deserialize(o, d)
}

func (o HumanName) Children(name ...string) fhirpath.Collection {
	return humanNameType.children(&o, name)
}

func (o HumanName) Equal(other fhirpath.Element) (bool, bool) {
	return humanNameType.equal(o, other)
}

func (o HumanName) TypeInfo() fhirpath.TypeInfo {
	return humanNameType.info
}

func (o HumanName) String() string {
	return compact(o)
}

func (o *HumanName) extensions() *[]Extension {
	return &o.Extension
}

func (o *HumanName) elementID() **string {
	return &o.Id
}

func (o HumanName) isAnyType() {}

type Address struct {
	Id         *string
	Extension  []Extension
	Use        *Code
	Type       *Code
	Text       *String
	Line       []String
	City       *String
	District   *String
	State      *String
	PostalCode *String
	Country    *String
	Period     *Period
}

var addressType = newType("Address", model.KindComplex, model.BaseNone,
	func(o *Address) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Address) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("use", "code", 0, 1, modifier, summary), func(o *Address) **Code { return &o.Use }),
	singlePrimitive(desc("type", "code", 0, 1, summary), func(o *Address) **Code { return &o.Type }),
	singlePrimitive(desc("text", "string", 0, 1, summary), func(o *Address) **String { return &o.Text }),
	repeatedPrimitive(desc("line", "string", 0, model.Unbounded, summary), func(o *Address) *[]String { return &o.Line }),
	singlePrimitive(desc("city", "string", 0, 1, summary), func(o *Address) **String { return &o.City }),
	singlePrimitive(desc("district", "string", 0, 1, summary), func(o *Address) **String { return &o.District }),
	singlePrimitive(desc("state", "string", 0, 1, summary), func(o *Address) **String { return &o.State }),
	singlePrimitive(desc("postalCode", "string", 0, 1, summary), func(o *Address) **String { return &o.PostalCode }),
	singlePrimitive(desc("country", "string", 0, 1, summary), func(o *Address) **String { return &o.Country }),
	singleElement(desc("period", "Period", 0, 1, summary), func(o *Address) **Period { return &o.Period }),
)

func (o Address) TypeName() string {
	return "Address"
}

func (o Address) Serialize(s encoding.Serializer) error {
	return addressType.serialize(&o, s)
}

func (o *Address) Deserialize(d encoding.Deserializer) error {
	return addressType.deserialize(o, d)
}

func (o Address) Children(name ...string) fhirpath.Collection {
	return addressType.children(&o, name)
}

func (o Address) Equal(other fhirpath.Element) (bool, bool) {
	return addressType.equal(o, other)
}

func (o Address) TypeInfo() fhirpath.TypeInfo {
	return addressType.info
}

func (o Address) String() string {
	return compact(o)
}

func (o *Address) extensions() *[]Extension {
	return &o.Extension
}

func (o *Address) elementID() **string {
	return &o.Id
}

func (o Address) isAnyType() {}

type ContactPoint struct {
	Id        *string
	Extension []Extension
	System    *Code
	Value     *String
	Use       *Code
	Rank      *PositiveInt
	Period    *Period
}

var contactPointType = newType("ContactPoint", model.KindComplex, model.BaseNone,
	func(o *ContactPoint) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ContactPoint) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("system", "code", 0, 1, summary), func(o *ContactPoint) **Code { return &o.System }),
	singlePrimitive(desc("value", "string", 0, 1, summary), func(o *ContactPoint) **String { return &o.Value }),
	singlePrimitive(desc("use", "code", 0, 1, modifier, summary), func(o *ContactPoint) **Code { return &o.Use }),
	singlePrimitive(desc("rank", "positiveInt", 0, 1, summary), func(o *ContactPoint) **PositiveInt { return &o.Rank }),
	singleElement(desc("period", "Period", 0, 1, summary), func(o *ContactPoint) **Period { return &o.Period }),
)

func (o ContactPoint) TypeName() string {
	return "ContactPoint"
}

func (o ContactPoint) Serialize(s encoding.Serializer) error {
	return contactPointType.serialize(&o, s)
}

func (o *ContactPoint) Deserialize(d encoding.Deserializer) error {
	return contactPointType.deserialize(o, d)
}

func (o ContactPoint) Children(name ...string) fhirpath.Collection {
	return contactPointType.children(&o, name)
}

func (o ContactPoint) Equal(other fhirpath.Element) (bool, bool) {
	return contactPointType.equal(o, other)
}

func (o ContactPoint) TypeInfo() fhirpath.TypeInfo {
	return contactPointType.info
}

func (o ContactPoint) String() string {
	return compact(o)
}

func (o *ContactPoint) extensions() *[]Extension {
	return &o.Extension
}

func (o *ContactPoint) elementID() **string {
	return &o.Id
}

func (o ContactPoint) isAnyType() {}

// Period is a time range defined by start and end date/time.
type Period struct {
	Id        *string
	Extension []Extension
	Start     *DateTime
	End       *DateTime
}

var periodType = newType("Period", model.KindComplex, model.BaseNone,
	func(o *Period) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Period) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("start", "dateTime", 0, 1, summary), func(o *Period) **DateTime { return &o.Start }),
	singlePrimitive(desc("end", "dateTime", 0, 1, summary), func(o *Period) **DateTime { return &o.End }),
)

func (o Period) TypeName() string {
	return "Period"
}

func (o Period) Serialize(s encoding.Serializer) error {
	return periodType.serialize(&o, s)
}

func (o *Period) Deserialize(d encoding.Deserializer) error {
	return periodType.deserialize(o, d)
}

func (o Period) Children(name ...string) fhirpath.Collection {
	return periodType.children(&o, name)
}

func (o Period) Equal(other fhirpath.Element) (bool, bool) {
	return periodType.equal(o, other)
}

func (o Period) TypeInfo() fhirpath.TypeInfo {
	return periodType.info
}

func (o Period) String() string {
	return compact(o)
}

func (o *Period) extensions() *[]Extension {
	return &o.Extension
}

func (o *Period) elementID() **string {
	return &o.Id
}

func (o Period) isAnyType() {}

type Quantity struct {
	Id         *string
	Extension  []Extension
	Value      *Decimal
	Comparator *Code
	Unit       *String
	System     *Uri
	Code       *Code
}

var quantityType = newType("Quantity", model.KindComplex, model.BaseNone,
	func(o *Quantity) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Quantity) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("value", "decimal", 0, 1, summary), func(o *Quantity) **Decimal { return &o.Value }),
	singlePrimitive(desc("comparator", "code", 0, 1, modifier, summary), func(o *Quantity) **Code { return &o.Comparator }),
	singlePrimitive(desc("unit", "string", 0, 1, summary), func(o *Quantity) **String { return &o.Unit }),
	singlePrimitive(desc("system", "uri", 0, 1, summary), func(o *Quantity) **Uri { return &o.System }),
	singlePrimitive(desc("code", "code", 0, 1, summary), func(o *Quantity) **Code { return &o.Code }),
)

func (o Quantity) TypeName() string {
	return "Quantity"
}

func (o Quantity) Serialize(s encoding.Serializer) error {
	return quantityType.serialize(&o, s)
}

func (o *Quantity) Deserialize(d encoding.Deserializer) error {
	return quantityType.deserialize(o, d)
}

func (o Quantity) Children(name ...string) fhirpath.Collection {
	return quantityType.children(&o, name)
}

func (o Quantity) Equal(other fhirpath.Element) (bool, bool) {
	return quantityType.equal(o, other)
}

func (o Quantity) TypeInfo() fhirpath.TypeInfo {
	return quantityType.info
}

func (o Quantity) String() string {
	return compact(o)
}

func (o *Quantity) extensions() *[]Extension {
	return &o.Extension
}

func (o *Quantity) elementID() **string {
	return &o.Id
}

func (o Quantity) isAnyType() {}

type Range struct {
	Id        *string
	Extension []Extension
	Low       *Quantity
	High      *Quantity
}

var rangeType = newType("Range", model.KindComplex, model.BaseNone,
	func(o *Range) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Range) *[]Extension { return &o.Extension }),
	singleElement(desc("low", "Quantity", 0, 1, summary), func(o *Range) **Quantity { return &o.Low }),
	singleElement(desc("high", "Quantity", 0, 1, summary), func(o *Range) **Quantity { return &o.High }),
)

func (o Range) TypeName() string {
	return "Range"
}

func (o Range) Serialize(s encoding.Serializer) error {
	return rangeType.serialize(&o, s)
}

func (o *Range) Deserialize(d encoding.Deserializer) error {
	return rangeType.deserialize(o, d)
}

func (o Range) Children(name ...string) fhirpath.Collection {
	return rangeType.children(&o, name)
}

func (o Range) Equal(other fhirpath.Element) (bool, bool) {
	return rangeType.equal(o, other)
}

func (o Range) TypeInfo() fhirpath.TypeInfo {
	return rangeType.info
}

func (o Range) String() string {
	return compact(o)
}

func (o *Range) extensions() *[]Extension {
	return &o.Extension
}

func (o *Range) elementID() **string {
	return &o.Id
}

func (o Range) isAnyType() {}

type Ratio struct {
	Id          *string
	Extension   []Extension
	Numerator   *Quantity
	Denominator *Quantity
}

var ratioType = newType("Ratio", model.KindComplex, model.BaseNone,
	func(o *Ratio) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Ratio) *[]Extension { return &o.Extension }),
	singleElement(desc("numerator", "Quantity", 0, 1, summary), func(o *Ratio) **Quantity { return &o.Numerator }),
	singleElement(desc("denominator", "Quantity", 0, 1, summary), func(o *Ratio) **Quantity { return &o.Denominator }),
)

func (o Ratio) TypeName() string {
	return "Ratio"
}

func (o Ratio) Serialize(s encoding.Serializer) error {
	return ratioType.serialize(&o, s)
}

func (o *Ratio) Deserialize(d encoding.Deserializer) error {
	return ratioType.deserialize(o, d)
}

func (o Ratio) Children(name ...string) fhirpath.Collection {
	return ratioType.children(&o, name)
}

func (o Ratio) Equal(other fhirpath.Element) (bool, bool) {
	return ratioType.equal(o, other)
}

func (o Ratio) TypeInfo() fhirpath.TypeInfo {
	return ratioType.info
}

func (o Ratio) String() string {
	return compact(o)
}

func (o *Ratio) extensions() *[]Extension {
	return &o.Extension
}

func (o *Ratio) elementID() **string {
	return &o.Id
}

func (o Ratio) isAnyType() {}

// Reference is a reference from one resource to another.
type Reference struct {
	Id         *string
	Extension  []Extension
	Reference  *String
	Type       *Uri
	Identifier *Identifier
	Display    *String
}

var referenceType = newType("Reference", model.KindComplex, model.BaseNone,
	func(o *Reference) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Reference) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("reference", "string", 0, 1, summary), func(o *Reference) **String { return &o.Reference }),
	singlePrimitive(desc("type", "uri", 0, 1, summary), func(o *Reference) **Uri { return &o.Type }),
	singleElement(desc("identifier", "Identifier", 0, 1, summary), func(o *Reference) **Identifier { return &o.Identifier }),
	singlePrimitive(desc("display", "string", 0, 1, summary), func(o *Reference) **String { return &o.Display }),
)

func (o Reference) TypeName() string {
	return "Reference"
}

func (o Reference) Serialize(s encoding.Serializer) error {
	return referenceType.serialize(&o, s)
}

func (o *Reference) Deserialize(d encoding.Deserializer) error {
	return referenceType.deserialize(o, d)
}

func (o Reference) Children(name ...string) fhirpath.Collection {
	return referenceType.children(&o, name)
}

func (o Reference) Equal(other fhirpath.Element) (bool, bool) {
	return referenceType.equal(o, other)
}

func (o Reference) TypeInfo() fhirpath.TypeInfo {
	return referenceType.info
}

func (o Reference) String() string {
	return compact(o)
}

func (o *Reference) extensions() *[]Extension {
	return &o.Extension
}

func (o *Reference) elementID() **string {
	return &o.Id
}

func (o Reference) isAnyType() {}

type Attachment struct {
	Id          *string
	Extension   []Extension
	ContentType *Code
	Language    *Code
	Data        *Base64Binary
	Url         *Url
	Size        *Integer64
	Hash        *Base64Binary
	Title       *String
	Creation    *DateTime
	Height      *PositiveInt
	Width       *PositiveInt
	Frames      *PositiveInt
	Duration    *Decimal
	Pages       *PositiveInt
}

var attachmentType = newType("Attachment", model.KindComplex, model.BaseNone,
	func(o *Attachment) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Attachment) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("contentType", "code", 0, 1, summary), func(o *Attachment) **Code { return &o.ContentType }),
	singlePrimitive(desc("language", "code", 0, 1, summary), func(o *Attachment) **Code { return &o.Language }),
	singlePrimitive(desc("data", "base64Binary", 0, 1), func(o *Attachment) **Base64Binary { return &o.Data }),
	singlePrimitive(desc("url", "url", 0, 1, summary), func(o *Attachment) **Url { return &o.Url }),
	singlePrimitive(desc("size", "integer64", 0, 1, summary), func(o *Attachment) **Integer64 { return &o.Size }),
	singlePrimitive(desc("hash", "base64Binary", 0, 1, summary), func(o *Attachment) **Base64Binary { return &o.Hash }),
	singlePrimitive(desc("title", "string", 0, 1, summary), func(o *Attachment) **String { return &o.Title }),
	singlePrimitive(desc("creation", "dateTime", 0, 1, summary), func(o *Attachment) **DateTime { return &o.Creation }),
	singlePrimitive(desc("height", "positiveInt", 0, 1), func(o *Attachment) **PositiveInt { return &o.Height }),
	singlePrimitive(desc("width", "positiveInt", 0, 1), func(o *Attachment) **PositiveInt { return &o.Width }),
	singlePrimitive(desc("frames", "positiveInt", 0, 1), func(o *Attachment) **PositiveInt { return &o.Frames }),
	singlePrimitive(desc("duration", "decimal", 0, 1), func(o *Attachment) **Decimal { return &o.Duration }),
	singlePrimitive(desc("pages", "positiveInt", 0, 1), func(o *Attachment) **PositiveInt { return &o.Pages }),
)

func (o Attachment) TypeName() string {
	return "Attachment"
}

func (o Attachment) Serialize(s encoding.Serializer) error {
	return attachmentType.serialize(&o, s)
}

func (o *Attachment) Deserialize(d encoding.Deserializer) error {
	return attachmentType.deserialize(o, d)
}

func (o Attachment) Children(name ...string) fhirpath.Collection {
	return attachmentType.children(&o, name)
}

func (o Attachment) Equal(other fhirpath.Element) (bool, bool) {
	return attachmentType.equal(o, other)
}

func (o Attachment) TypeInfo() fhirpath.TypeInfo {
	return attachmentType.info
}

func (o Attachment) String() string {
	return compact(o)
}

func (o *Attachment) extensions() *[]Extension {
	return &o.Extension
}

func (o *Attachment) elementID() **string {
	return &o.Id
}

func (o Attachment) isAnyType() {}

// Annotation is a text note which also contains information about who made the statement and when.
type Annotation struct {
	Id        *string
	Extension []Extension
	Author    AnyType
	Time      *DateTime
	Text      *Markdown
}

var annotationType = newType("Annotation", model.KindComplex, model.BaseNone,
	func(o *Annotation) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Annotation) *[]Extension { return &o.Extension }),
	choice(choiceDesc("author", 0, []string{"Reference", "string"}, summary), func(o *Annotation) *AnyType { return &o.Author }),
	singlePrimitive(desc("time", "dateTime", 0, 1, summary), func(o *Annotation) **DateTime { return &o.Time }),
	singlePrimitive(desc("text", "markdown", 1, 1, summary), func(o *Annotation) **Markdown { return &o.Text }),
)

func (o Annotation) TypeName() string {
	return "Annotation"
}

func (o Annotation) Serialize(s encoding.Serializer) error {
	return annotationType.serialize(&o, s)
}

func (o *Annotation) Deserialize(d encoding.Deserializer) error {
	return annotationType.deserialize(o, d)
}

func (o Annotation) Children(name ...string) fhirpath.Collection {
	return annotationType.children(&o, name)
}

func (o Annotation) Equal(other fhirpath.Element) (bool, bool) {
	return annotationType.equal(o, other)
}

func (o Annotation) TypeInfo() fhirpath.TypeInfo {
	return annotationType.info
}

func (o Annotation) String() string {
	return compact(o)
}

func (o *Annotation) extensions() *[]Extension {
	return &o.Extension
}

func (o *Annotation) elementID() **string {
	return &o.Id
}

func (o Annotation) isAnyType() {}

// Narrative is the human-readable summary of a resource, div holds XHTML.
type Narrative struct {
	Id        *string
	Extension []Extension
	Status    *Code
	Div       Xhtml
}

var narrativeType = newType("Narrative", model.KindComplex, model.BaseNone,
	func(o *Narrative) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Narrative) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("status", "code", 1, 1), func(o *Narrative) **Code { return &o.Status }),
	narrativeDiv(desc("div", "xhtml", 1, 1), func(o *Narrative) *Xhtml { return &o.Div }),
)

func (o Narrative) TypeName() string {
	return "Narrative"
}

func (o Narrative) Serialize(s encoding.Serializer) error {
	return narrativeType.serialize(&o, s)
}

func (o *Narrative) Deserialize(d encoding.Deserializer) error {
	return narrativeType.deserialize(o, d)
}

func (o Narrative) Children(name ...string) fhirpath.Collection {
	return narrativeType.children(&o, name)
}

func (o Narrative) Equal(other fhirpath.Element) (bool, bool) {
	return narrativeType.equal(o, other)
}

func (o Narrative) TypeInfo() fhirpath.TypeInfo {
	return narrativeType.info
}

func (o Narrative) String() string {
	return compact(o)
}

func (o *Narrative) extensions() *[]Extension {
	return &o.Extension
}

func (o *Narrative) elementID() **string {
	return &o.Id
}

// Meta is the metadata about a resource.
type Meta struct {
	Id          *string
	Extension   []Extension
	VersionId   *Id
	LastUpdated *Instant
	Source      *Uri
	Profile     []Canonical
	Security    []Coding
	Tag         []Coding
}

var metaType = newType("Meta", model.KindComplex, model.BaseNone,
	func(o *Meta) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *Meta) *[]Extension { return &o.Extension }),
	singlePrimitive(desc("versionId", "id", 0, 1, summary), func(o *Meta) **Id { return &o.VersionId }),
	singlePrimitive(desc("lastUpdated", "instant", 0, 1, summary), func(o *Meta) **Instant { return &o.LastUpdated }),
	singlePrimitive(desc("source", "uri", 0, 1, summary), func(o *Meta) **Uri { return &o.Source }),
	repeatedPrimitive(desc("profile", "canonical", 0, model.Unbounded, summary), func(o *Meta) *[]Canonical { return &o.Profile }),
	repeatedElement(desc("security", "Coding", 0, model.Unbounded, summary), func(o *Meta) *[]Coding { return &o.Security }),
	repeatedElement(desc("tag", "Coding", 0, model.Unbounded, summary), func(o *Meta) *[]Coding { return &o.Tag }),
)

func (o Meta) TypeName() string {
	return "Meta"
}

func (o Meta) Serialize(s encoding.Serializer) error {
	return metaType.serialize(&o, s)
}

func (o *Meta) Deserialize(d encoding.Deserializer) error {
	return metaType.deserialize(o, d)
}

func (o Meta) Children(name ...string) fhirpath.Collection {
	return metaType.children(&o, name)
}

func (o Meta) Equal(other fhirpath.Element) (bool, bool) {
	return metaType.equal(o, other)
}

func (o Meta) TypeInfo() fhirpath.TypeInfo {
	return metaType.info
}

func (o Meta) String() string {
	return compact(o)
}

func (o *Meta) extensions() *[]Extension {
	return &o.Extension
}

func (o *Meta) elementID() **string {
	return &o.Id
}

func (o Meta) isAnyType() {}
