// Package encoding defines the format-neutral contract between FHIR types and format drivers.
//
// Types describe themselves once, in terms of the scoped sub-serializers and visitor callbacks
// declared here, and the drivers in the json and xml subpackages render that description into
// their wire format. Neither side knows about the other.
//
// Serialization is push-based: a type asks the Serializer it was handed for the shape it wants
// to write (a resource, a struct, a primitive, an extension, a repeated field) and fills the
// returned scope. Deserialization is pull-based: a type asks the Deserializer for the shape it
// expects and the driver calls back into the visitor with keys and values in wire order.
package encoding

// ScalarKind is the JSON representation of a primitive value.
type ScalarKind uint8

const (
	// KindText is used by drivers which do not distinguish scalar kinds, like XML.
	KindText ScalarKind = iota
	KindString
	KindNumber
	KindBoolean
)

func (k ScalarKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		return "text"
	}
}

// Scalar is the lexical form of a primitive value together with its JSON kind.
type Scalar struct {
	Kind ScalarKind
	Text string
}

// Serializable is implemented by every type which can be written by a format driver.
type Serializable interface {
	Serialize(s Serializer) error
}

// Deserializable is implemented by pointers to every type which can be read by a format driver.
type Deserializable interface {
	Deserialize(d Deserializer) error
}

// Serializer is bound to the position the next value is written to.
// That is the document root or a named field of an enclosing scope.
type Serializer interface {
	// SerializeResource opens a resource of the given type.
	SerializeResource(resourceType string) (StructSerializer, error)
	// SerializeStruct opens a complex or backbone element.
	SerializeStruct() (StructSerializer, error)
	// SerializePrimitive opens a primitive element.
	SerializePrimitive() (PrimitiveSerializer, error)
	// SerializeExtension opens an extension.
	SerializeExtension() (ExtensionSerializer, error)
	// SerializeVec opens a repeated field with n elements of the same shape.
	SerializeVec(n int) (VecSerializer, error)
	// SerializeXHTML writes a narrative div verbatim.
	SerializeXHTML(div string) error
}

// StructSerializer writes the id and then named fields in declaration order.
type StructSerializer interface {
	// SerializeID writes the element id. It must be called before any field.
	SerializeID(id *string) error
	// Field returns the Serializer for the named field.
	// The returned Serializer must be used before the next call to Field or End.
	Field(name string) Serializer
	End() error
}

// VecSerializer writes a homogeneous sequence of elements.
type VecSerializer interface {
	Element() Serializer
	End() error
}

// PrimitiveSerializer writes a primitive element.
//
// SerializeID and SerializeValue must be called before the extension field is opened.
type PrimitiveSerializer interface {
	SerializeID(id *string) error
	SerializeValue(v *Scalar) error
	// Extension returns the Serializer for the extension field of the primitive.
	Extension() Serializer
	End() error
}

// ExtensionSerializer writes an extension.
//
// SerializeID and SerializeURL must be called before any field.
type ExtensionSerializer interface {
	StructSerializer
	SerializeURL(url string) error
}

// Deserializer is positioned at a value of unknown shape.
// Exactly one of its methods may be called.
type Deserializer interface {
	// DecodeResource opens a resource. The driver determines the resource type,
	// either from the element name (XML) or the resourceType key (JSON), and asks
	// open for the visitor of the resource body.
	DecodeResource(open func(resourceType string) (MapVisitor, error)) error
	// DecodeStruct opens a complex or backbone element.
	// XML attributes like id and url are reported as keys, ahead of child elements.
	DecodeStruct(v MapVisitor) error
	// DecodeVec opens a repeated field. In XML every repetition is a separate key,
	// so drivers may yield a single element per call.
	DecodeVec(v VecVisitor) error
	// DecodePrimitive reads a primitive element.
	DecodePrimitive(v PrimitiveVisitor) error
	// DecodeSidecar reads the JSON _field companion of a primitive.
	DecodeSidecar(v PrimitiveVisitor) error
	// DecodeString reads a plain string, as used by element ids and extension urls.
	DecodeString() (string, error)
	// DecodeXHTML reads a narrative div verbatim.
	DecodeXHTML() (string, error)
}

// MapVisitor receives the keys of a struct or resource.
type MapVisitor interface {
	VisitMap(m MapAccess) error
}

// MapAccess yields the keys of a struct in wire order.
type MapAccess interface {
	// NextKey returns the next key, or ok=false when the struct is closed.
	NextKey() (key string, ok bool, err error)
	// NextValue returns the Deserializer for the value of the last key.
	NextValue() Deserializer
}

// VecVisitor receives the elements of a repeated field.
type VecVisitor interface {
	VisitVec(v VecAccess) error
}

// VecAccess yields the elements of a repeated field in wire order.
type VecAccess interface {
	// NextElement returns the Deserializer for the next element, or ok=false when the sequence ends.
	NextElement() (d Deserializer, ok bool, err error)
}

// PrimitiveVisitor receives the parts of a primitive element.
type PrimitiveVisitor interface {
	VisitID(id string) error
	VisitValue(v Scalar) error
	VisitExtension(d Deserializer) error
}

// MapVisitorFunc adapts a function to MapVisitor.
type MapVisitorFunc func(m MapAccess) error

func (f MapVisitorFunc) VisitMap(m MapAccess) error {
	return f(m)
}

// VecVisitorFunc adapts a function to VecVisitor.
type VecVisitorFunc func(v VecAccess) error

func (f VecVisitorFunc) VisitVec(v VecAccess) error {
	return f(v)
}
