package r5

import (
	"github.com/damedic/fhir-r5-go/encoding"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
)

// ElementDefinition captures constraints on an element within a resource, identified by its dotted path.
type ElementDefinition struct {
	Id                  *string
	Extension           []Extension
	ModifierExtension   []Extension
	Path                *String
	Representation      []Code
	SliceName           *String
	SliceIsConstraining *Boolean
	Label               *String
	Code                []Coding
	Slicing             *ElementDefinitionSlicing
	Short               *String
	Definition          *Markdown
	Comment             *Markdown
	Requirements        *Markdown
	Alias               []String
	Min                 *UnsignedInt
	Max                 *String
	Base                *ElementDefinitionBase
	ContentReference    *Uri
	Type                []ElementDefinitionType
	DefaultValue        AnyType
	MeaningWhenMissing  *Markdown
	OrderMeaning        *String
	Fixed               AnyType
	Pattern             AnyType
	MinValue            AnyType
	MaxValue            AnyType
	MaxLength           *Integer
	Condition           []Id
	Constraint          []ElementDefinitionConstraint
	MustHaveValue       *Boolean
	ValueAlternatives   []Canonical
	MustSupport         *Boolean
	IsModifier          *Boolean
	IsModifierReason    *String
	IsSummary           *Boolean
	Binding             *ElementDefinitionBinding
}

var elementDefinitionType = newType("ElementDefinition", model.KindBackbone, model.BaseNone,
	func(o *ElementDefinition) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ElementDefinition) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ElementDefinition) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("path", "string", 1, 1, summary), func(o *ElementDefinition) **String { return &o.Path }),
	repeatedPrimitive(desc("representation", "code", 0, model.Unbounded, summary), func(o *ElementDefinition) *[]Code { return &o.Representation }),
	singlePrimitive(desc("sliceName", "string", 0, 1, summary), func(o *ElementDefinition) **String { return &o.SliceName }),
	singlePrimitive(desc("sliceIsConstraining", "boolean", 0, 1, summary), func(o *ElementDefinition) **Boolean { return &o.SliceIsConstraining }),
	singlePrimitive(desc("label", "string", 0, 1, summary), func(o *ElementDefinition) **String { return &o.Label }),
	repeatedElement(desc("code", "Coding", 0, model.Unbounded, summary), func(o *ElementDefinition) *[]Coding { return &o.Code }),
	singleElement(desc("slicing", "ElementDefinitionSlicing", 0, 1, summary), func(o *ElementDefinition) **ElementDefinitionSlicing { return &o.Slicing }),
	singlePrimitive(desc("short", "string", 0, 1, summary), func(o *ElementDefinition) **String { return &o.Short }),
	singlePrimitive(desc("definition", "markdown", 0, 1, summary), func(o *ElementDefinition) **Markdown { return &o.Definition }),
	singlePrimitive(desc("comment", "markdown", 0, 1, summary), func(o *ElementDefinition) **Markdown { return &o.Comment }),
	singlePrimitive(desc("requirements", "markdown", 0, 1, summary), func(o *ElementDefinition) **Markdown { return &o.Requirements }),
	repeatedPrimitive(desc("alias", "string", 0, model.Unbounded, summary), func(o *ElementDefinition) *[]String { return &o.Alias }),
	singlePrimitive(desc("min", "unsignedInt", 0, 1, summary), func(o *ElementDefinition) **UnsignedInt { return &o.Min }),
	singlePrimitive(desc("max", "string", 0, 1, summary), func(o *ElementDefinition) **String { return &o.Max }),
	singleElement(desc("base", "ElementDefinitionBase", 0, 1, summary), func(o *ElementDefinition) **ElementDefinitionBase { return &o.Base }),
	singlePrimitive(desc("contentReference", "uri", 0, 1, summary), func(o *ElementDefinition) **Uri { return &o.ContentReference }),
	repeatedElement(desc("type", "ElementDefinitionType", 0, model.Unbounded, summary), func(o *ElementDefinition) *[]ElementDefinitionType { return &o.Type }),
	choice(choiceDesc("defaultValue", 0, anyTypeNames, summary), func(o *ElementDefinition) *AnyType { return &o.DefaultValue }),
	singlePrimitive(desc("meaningWhenMissing", "markdown", 0, 1, summary), func(o *ElementDefinition) **Markdown { return &o.MeaningWhenMissing }),
	singlePrimitive(desc("orderMeaning", "string", 0, 1, summary), func(o *ElementDefinition) **String { return &o.OrderMeaning }),
	choice(choiceDesc("fixed", 0, anyTypeNames, summary), func(o *ElementDefinition) *AnyType { return &o.Fixed }),
	choice(choiceDesc("pattern", 0, anyTypeNames, summary), func(o *ElementDefinition) *AnyType { return &o.Pattern }),
	choice(choiceDesc("minValue", 0, []string{"date", "dateTime", "instant", "time", "decimal", "integer", "integer64", "positiveInt", "unsignedInt", "Quantity"}, summary), func(o *ElementDefinition) *AnyType { return &o.MinValue }),
	choice(choiceDesc("maxValue", 0, []string{"date", "dateTime", "instant", "time", "decimal", "integer", "integer64", "positiveInt", "unsignedInt", "Quantity"}, summary), func(o *ElementDefinition) *AnyType { return &o.MaxValue }),
	singlePrimitive(desc("maxLength", "integer", 0, 1, summary), func(o *ElementDefinition) **Integer { return &o.MaxLength }),
	repeatedPrimitive(desc("condition", "id", 0, model.Unbounded, summary), func(o *ElementDefinition) *[]Id { return &o.Condition }),
	repeatedElement(desc("constraint", "ElementDefinitionConstraint", 0, model.Unbounded, summary), func(o *ElementDefinition) *[]ElementDefinitionConstraint { return &o.Constraint }),
	singlePrimitive(desc("mustHaveValue", "boolean", 0, 1, summary), func(o *ElementDefinition) **Boolean { return &o.MustHaveValue }),
	repeatedPrimitive(desc("valueAlternatives", "canonical", 0, model.Unbounded, summary), func(o *ElementDefinition) *[]Canonical { return &o.ValueAlternatives }),
	singlePrimitive(desc("mustSupport", "boolean", 0, 1, summary), func(o *ElementDefinition) **Boolean { return &o.MustSupport }),
	singlePrimitive(desc("isModifier", "boolean", 0, 1, summary), func(o *ElementDefinition) **Boolean { return &o.IsModifier }),
	singlePrimitive(desc("isModifierReason", "string", 0, 1, summary), func(o *ElementDefinition) **String { return &o.IsModifierReason }),
	singlePrimitive(desc("isSummary", "boolean", 0, 1, summary), func(o *ElementDefinition) **Boolean { return &o.IsSummary }),
	singleElement(desc("binding", "ElementDefinitionBinding", 0, 1, summary), func(o *ElementDefinition) **ElementDefinitionBinding { return &o.Binding }),
)

func (o ElementDefinition) TypeName() string {
	return "ElementDefinition"
}

func (o ElementDefinition) Serialize(s encoding.Serializer) error {
	return elementDefinitionType.serialize(&o, s)
}

func (o *ElementDefinition) Deserialize(d encoding.Deserializer) error {
	return elementDefinitionType.deserialize(o, d)
}

func (o ElementDefinition) Children(name ...string) fhirpath.Collection {
	return elementDefinitionType.children(&o, name)
}

func (o ElementDefinition) Equal(other fhirpath.Element) (bool, bool) {
	return elementDefinitionType.equal(o, other)
}

func (o ElementDefinition) TypeInfo() fhirpath.TypeInfo {
	return elementDefinitionType.info
}

func (o ElementDefinition) String() string {
	return compact(o)
}

func (o *ElementDefinition) extensions() *[]Extension {
	return &o.Extension
}

func (o *ElementDefinition) elementID() **string {
	return &o.Id
}

type ElementDefinitionSlicing struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Discriminator     []ElementDefinitionSlicingDiscriminator
	Description       *String
	Ordered           *Boolean
	Rules             *Code
}

var elementDefinitionSlicingType = newType("ElementDefinitionSlicing", model.KindBackbone, model.BaseNone,
	func(o *ElementDefinitionSlicing) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ElementDefinitionSlicing) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ElementDefinitionSlicing) *[]Extension { return &o.ModifierExtension }),
	repeatedElement(desc("discriminator", "ElementDefinitionSlicingDiscriminator", 0, model.Unbounded, summary), func(o *ElementDefinitionSlicing) *[]ElementDefinitionSlicingDiscriminator { return &o.Discriminator }),
	singlePrimitive(desc("description", "string", 0, 1, summary), func(o *ElementDefinitionSlicing) **String { return &o.Description }),
	singlePrimitive(desc("ordered", "boolean", 0, 1, summary), func(o *ElementDefinitionSlicing) **Boolean { return &o.Ordered }),
	singlePrimitive(desc("rules", "code", 1, 1, summary), func(o *ElementDefinitionSlicing) **Code { return &o.Rules }),
)

func (o ElementDefinitionSlicing) TypeName() string {
	return "ElementDefinitionSlicing"
}

func (o ElementDefinitionSlicing) Serialize(s encoding.Serializer) error {
	return elementDefinitionSlicingType.serialize(&o, s)
}

func (o *ElementDefinitionSlicing) Deserialize(d encoding.Deserializer) error {
	return elementDefinitionSlicingType.deserialize(o, d)
}

func (o ElementDefinitionSlicing) Children(name ...string) fhirpath.Collection {
	return elementDefinitionSlicingType.children(&o, name)
}

func (o ElementDefinitionSlicing) Equal(other fhirpath.Element) (bool, bool) {
	return elementDefinitionSlicingType.equal(o, other)
}

func (o ElementDefinitionSlicing) TypeInfo() fhirpath.TypeInfo {
	return elementDefinitionSlicingType.info
}

func (o ElementDefinitionSlicing) String() string {
	return compact(o)
}

func (o *ElementDefinitionSlicing) extensions() *[]Extension {
	return &o.Extension
}

func (o *ElementDefinitionSlicing) elementID() **string {
	return &o.Id
}

type ElementDefinitionSlicingDiscriminator struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Type              *Code
	Path              *String
}

var elementDefinitionSlicingDiscriminatorType = newType("ElementDefinitionSlicingDiscriminator", model.KindBackbone, model.BaseNone,
	func(o *ElementDefinitionSlicingDiscriminator) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ElementDefinitionSlicingDiscriminator) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ElementDefinitionSlicingDiscriminator) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("type", "code", 1, 1, summary), func(o *ElementDefinitionSlicingDiscriminator) **Code { return &o.Type }),
	singlePrimitive(desc("path", "string", 1, 1, summary), func(o *ElementDefinitionSlicingDiscriminator) **String { return &o.Path }),
)

func (o ElementDefinitionSlicingDiscriminator) TypeName() string {
	return "ElementDefinitionSlicingDiscriminator"
}

func (o ElementDefinitionSlicingDiscriminator) Serialize(s encoding.Serializer) error {
	return elementDefinitionSlicingDiscriminatorType.serialize(&o, s)
}

func (o *ElementDefinitionSlicingDiscriminator) Deserialize(d encoding.Deserializer) error {
	return elementDefinitionSlicingDiscriminatorType.deserialize(o, d)
}

func (o ElementDefinitionSlicingDiscriminator) Children(name ...string) fhirpath.Collection {
	return elementDefinitionSlicingDiscriminatorType.children(&o, name)
}

func (o ElementDefinitionSlicingDiscriminator) Equal(other fhirpath.Element) (bool, bool) {
	return elementDefinitionSlicingDiscriminatorType.equal(o, other)
}

func (o ElementDefinitionSlicingDiscriminator) TypeInfo() fhirpath.TypeInfo {
	return elementDefinitionSlicingDiscriminatorType.info
}

func (o ElementDefinitionSlicingDiscriminator) String() string {
	return compact(o)
}

func (o *ElementDefinitionSlicingDiscriminator) extensions() *[]Extension {
	return &o.Extension
}

func (o *ElementDefinitionSlicingDiscriminator) elementID() **string {
	return &o.Id
}

type ElementDefinitionBase struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Path              *String
	Min               *UnsignedInt
	Max               *String
}

var elementDefinitionBaseType = newType("ElementDefinitionBase", model.KindBackbone, model.BaseNone,
	func(o *ElementDefinitionBase) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ElementDefinitionBase) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ElementDefinitionBase) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("path", "string", 1, 1, summary), func(o *ElementDefinitionBase) **String { return &o.Path }),
	singlePrimitive(desc("min", "unsignedInt", 1, 1, summary), func(o *ElementDefinitionBase) **UnsignedInt { return &o.Min }),
	singlePrimitive(desc("max", "string", 1, 1, summary), func(o *ElementDefinitionBase) **String { return &o.Max }),
)

func (o ElementDefinitionBase) TypeName() string {
	return "ElementDefinitionBase"
}

func (o ElementDefinitionBase) Serialize(s encoding.Serializer) error {
	return elementDefinitionBaseType.serialize(&o, s)
}

func (o *ElementDefinitionBase) Deserialize(d encoding.Deserializer) error {
	return elementDefinitionBaseType.deserialize(o, d)
}

func (o ElementDefinitionBase) Children(name ...string) fhirpath.Collection {
	return elementDefinitionBaseType.children(&o, name)
}

func (o ElementDefinitionBase) Equal(other fhirpath.Element) (bool, bool) {
	return elementDefinitionBaseType.equal(o, other)
}

func (o ElementDefinitionBase) TypeInfo() fhirpath.TypeInfo {
	return elementDefinitionBaseType.info
}

func (o ElementDefinitionBase) String() string {
	return compact(o)
}

func (o *ElementDefinitionBase) extensions() *[]Extension {
	return &o.Extension
}

func (o *ElementDefinitionBase) elementID() **string {
	return &o.Id
}

type ElementDefinitionType struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Code              *Uri
	Profile           []Canonical
	TargetProfile     []Canonical
	Aggregation       []Code
	Versioning        *Code
}

var elementDefinitionTypeType = newType("ElementDefinitionType", model.KindBackbone, model.BaseNone,
	func(o *ElementDefinitionType) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ElementDefinitionType) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ElementDefinitionType) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("code", "uri", 1, 1, summary), func(o *ElementDefinitionType) **Uri { return &o.Code }),
	repeatedPrimitive(desc("profile", "canonical", 0, model.Unbounded, summary), func(o *ElementDefinitionType) *[]Canonical { return &o.Profile }),
	repeatedPrimitive(desc("targetProfile", "canonical", 0, model.Unbounded, summary), func(o *ElementDefinitionType) *[]Canonical { return &o.TargetProfile }),
	repeatedPrimitive(desc("aggregation", "code", 0, model.Unbounded, summary), func(o *ElementDefinitionType) *[]Code { return &o.Aggregation }),
	singlePrimitive(desc("versioning", "code", 0, 1, summary), func(o *ElementDefinitionType) **Code { return &o.Versioning }),
)

func (o ElementDefinitionType) TypeName() string {
	return "ElementDefinitionType"
}

func (o ElementDefinitionType) Serialize(s encoding.Serializer) error {
	return elementDefinitionTypeType.serialize(&o, s)
}

func (o *ElementDefinitionType) Deserialize(d encoding.Deserializer) error {
	return elementDefinitionTypeType.deserialize(o, d)
}

func (o ElementDefinitionType) Children(name ...string) fhirpath.Collection {
	return elementDefinitionTypeType.children(&o, name)
}

func (o ElementDefinitionType) Equal(other fhirpath.Element) (bool, bool) {
	return elementDefinitionTypeType.equal(o, other)
}

func (o ElementDefinitionType) TypeInfo() fhirpath.TypeInfo {
	return elementDefinitionTypeType.info
}

func (o ElementDefinitionType) String() string {
	return compact(o)
}

func (o *ElementDefinitionType) extensions() *[]Extension {
	return &o.Extension
}

func (o *ElementDefinitionType) elementID() **string {
	return &o.Id
}

// ElementDefinitionConstraint is a FHIRPath invariant which must hold for every occurrence of the element.
type ElementDefinitionConstraint struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Key               *Id
	Requirements      *Markdown
	Severity          *Code
	Suppress          *Boolean
	Human             *String
	Expression        *String
	Source            *Canonical
}

var elementDefinitionConstraintType = newType("ElementDefinitionConstraint", model.KindBackbone, model.BaseNone,
	func(o *ElementDefinitionConstraint) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ElementDefinitionConstraint) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ElementDefinitionConstraint) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("key", "id", 1, 1, summary), func(o *ElementDefinitionConstraint) **Id { return &o.Key }),
	singlePrimitive(desc("requirements", "markdown", 0, 1, summary), func(o *ElementDefinitionConstraint) **Markdown { return &o.Requirements }),
	singlePrimitive(desc("severity", "code", 1, 1, summary), func(o *ElementDefinitionConstraint) **Code { return &o.Severity }),
	singlePrimitive(desc("suppress", "boolean", 0, 1, summary), func(o *ElementDefinitionConstraint) **Boolean { return &o.Suppress }),
	singlePrimitive(desc("human", "string", 1, 1, summary), func(o *ElementDefinitionConstraint) **String { return &o.Human }),
	singlePrimitive(desc("expression", "string", 0, 1, summary), func(o *ElementDefinitionConstraint) **String { return &o.Expression }),
	singlePrimitive(desc("source", "canonical", 0, 1, summary), func(o *ElementDefinitionConstraint) **Canonical { return &o.Source }),
)

func (o ElementDefinitionConstraint) TypeName() string {
	return "ElementDefinitionConstraint"
}

func (o ElementDefinitionConstraint) Serialize(s encoding.Serializer) error {
	return elementDefinitionConstraintType.serialize(&o, s)
}

func (o *ElementDefinitionConstraint) Deserialize(d encoding.Deserializer) error {
	return elementDefinitionConstraintType.deserialize(o, d)
}

func (o ElementDefinitionConstraint) Children(name ...string) fhirpath.Collection {
	return elementDefinitionConstraintType.children(&o, name)
}

func (o ElementDefinitionConstraint) Equal(other fhirpath.Element) (bool, bool) {
	return elementDefinitionConstraintType.equal(o, other)
}

func (o ElementDefinitionConstraint) TypeInfo() fhirpath.TypeInfo {
	return elementDefinitionConstraintType.info
}

func (o ElementDefinitionConstraint) String() string {
	return compact(o)
}

func (o *ElementDefinitionConstraint) extensions() *[]Extension {
	return &o.Extension
}

func (o *ElementDefinitionConstraint) elementID() **string {
	return &o.Id
}

type ElementDefinitionBinding struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Strength          *Code
	Description       *Markdown
	ValueSet          *Canonical
}

var elementDefinitionBindingType = newType("ElementDefinitionBinding", model.KindBackbone, model.BaseNone,
	func(o *ElementDefinitionBinding) **string { return &o.Id },
	repeatedElement(desc("extension", "Extension", 0, model.Unbounded), func(o *ElementDefinitionBinding) *[]Extension { return &o.Extension }),
	repeatedElement(desc("modifierExtension", "Extension", 0, model.Unbounded, modifier, summary), func(o *ElementDefinitionBinding) *[]Extension { return &o.ModifierExtension }),
	singlePrimitive(desc("strength", "code", 1, 1, summary), func(o *ElementDefinitionBinding) **Code { return &o.Strength }),
	singlePrimitive(desc("description", "markdown", 0, 1, summary), func(o *ElementDefinitionBinding) **Markdown { return &o.Description }),
	singlePrimitive(desc("valueSet", "canonical", 0, 1, summary), func(o *ElementDefinitionBinding) **Canonical { return &o.ValueSet }),
)

func (o ElementDefinitionBinding) TypeName() string {
	return "ElementDefinitionBinding"
}

func (o ElementDefinitionBinding) Serialize(s encoding.Serializer) error {
	return elementDefinitionBindingType.serialize(&o, s)
}

func (o *ElementDefinitionBinding) Deserialize(d encoding.Deserializer) error {
	return elementDefinitionBindingType.deserialize(o, d)
}

func (o ElementDefinitionBinding) Children(name ...string) fhirpath.Collection {
	return elementDefinitionBindingType.children(&o, name)
}

func (o ElementDefinitionBinding) Equal(other fhirpath.Element) (bool, bool) {
	return elementDefinitionBindingType.equal(o, other)
}

func (o ElementDefinitionBinding) TypeInfo() fhirpath.TypeInfo {
	return elementDefinitionBindingType.info
}

func (o ElementDefinitionBinding) String() string {
	return compact(o)
}

func (o *ElementDefinitionBinding) extensions() *[]Extension {
	return &o.Extension
}

func (o *ElementDefinitionBinding) elementID() **string {
	return &o.Id
}
