// Package json implements the FHIR-JSON format driver.
//
// Values are written to an in-memory tree first, because the _field companion of a
// primitive is only known after its extensions have been written. Primitive arrays get
// a positional companion array with null placeholders.
package json

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"

	"github.com/damedic/fhir-r5-go/encoding"
)

type node interface {
	write(b *bytes.Buffer) error
}

type member struct {
	key   string
	value node
}

type object struct {
	members []member
}

func (o *object) set(key string, value node) {
	o.members = append(o.members, member{key: key, value: value})
}

func (o *object) write(b *bytes.Buffer) error {
	b.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeString(b, m.key); err != nil {
			return err
		}
		b.WriteByte(':')
		if err := writeNode(b, m.value); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}

type array []node

func (a array) write(b *bytes.Buffer) error {
	b.WriteByte('[')
	for i, n := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeNode(b, n); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

type scalar encoding.Scalar

func (s scalar) write(b *bytes.Buffer) error {
	switch s.Kind {
	case encoding.KindNumber, encoding.KindBoolean:
		if !stdjson.Valid([]byte(s.Text)) {
			return &encoding.InvariantError{Type: s.Kind.String(), Msg: fmt.Sprintf("invalid JSON literal %q", s.Text)}
		}
		b.WriteString(s.Text)
		return nil
	}
	return writeString(b, s.Text)
}

func stringNode(s string) node {
	return scalar{Kind: encoding.KindString, Text: s}
}

func writeNode(b *bytes.Buffer, n node) error {
	if n == nil {
		b.WriteString("null")
		return nil
	}
	return n.write(b)
}

// writeString quotes s without escaping HTML, so narratives stay readable.
func writeString(b *bytes.Buffer, s string) error {
	var buf bytes.Buffer
	enc := stdjson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	b.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return nil
}

// valueSerializer writes to a position in the tree: a key of an object, an array
// slot or the document root.
type valueSerializer struct {
	// put stores a value together with the companion of a primitive or primitive array.
	put func(value, companion node)
}

func (s valueSerializer) SerializeResource(resourceType string) (encoding.StructSerializer, error) {
	o := &object{}
	o.set("resourceType", stringNode(resourceType))
	s.put(o, nil)
	return &structSerializer{obj: o}, nil
}

func (s valueSerializer) SerializeStruct() (encoding.StructSerializer, error) {
	o := &object{}
	s.put(o, nil)
	return &structSerializer{obj: o}, nil
}

func (s valueSerializer) SerializePrimitive() (encoding.PrimitiveSerializer, error) {
	return &primitiveSerializer{put: s.put}, nil
}

func (s valueSerializer) SerializeExtension() (encoding.ExtensionSerializer, error) {
	o := &object{}
	s.put(o, nil)
	return &extensionSerializer{structSerializer{obj: o}}, nil
}

func (s valueSerializer) SerializeVec(n int) (encoding.VecSerializer, error) {
	return &vecSerializer{
		put:        s.put,
		values:     make(array, 0, n),
		companions: make(array, 0, n),
	}, nil
}

func (s valueSerializer) SerializeXHTML(div string) error {
	s.put(stringNode(div), nil)
	return nil
}

func fieldSerializer(o *object, name string) valueSerializer {
	return valueSerializer{put: func(value, companion node) {
		if value != nil {
			o.set(name, value)
		}
		if companion != nil {
			o.set("_"+name, companion)
		}
	}}
}

type structSerializer struct {
	obj *object
}

func (s *structSerializer) SerializeID(id *string) error {
	if id != nil {
		s.obj.set("id", stringNode(*id))
	}
	return nil
}

func (s *structSerializer) Field(name string) encoding.Serializer {
	return fieldSerializer(s.obj, name)
}

func (s *structSerializer) End() error {
	return nil
}

type extensionSerializer struct {
	structSerializer
}

func (s *extensionSerializer) SerializeURL(url string) error {
	s.obj.set("url", stringNode(url))
	return nil
}

type primitiveSerializer struct {
	put       func(value, companion node)
	id        *string
	value     *encoding.Scalar
	companion *object
}

func (p *primitiveSerializer) SerializeID(id *string) error {
	p.id = id
	return nil
}

func (p *primitiveSerializer) SerializeValue(v *encoding.Scalar) error {
	p.value = v
	return nil
}

func (p *primitiveSerializer) initCompanion() {
	if p.companion == nil {
		p.companion = &object{}
		if p.id != nil {
			p.companion.set("id", stringNode(*p.id))
		}
	}
}

func (p *primitiveSerializer) Extension() encoding.Serializer {
	p.initCompanion()
	return fieldSerializer(p.companion, "extension")
}

func (p *primitiveSerializer) End() error {
	if p.id != nil {
		p.initCompanion()
	}
	var value, companion node
	if p.value != nil {
		value = scalar(*p.value)
	}
	if p.companion != nil && len(p.companion.members) > 0 {
		companion = p.companion
	}
	p.put(value, companion)
	return nil
}

type vecSerializer struct {
	put        func(value, companion node)
	values     array
	companions array
}

func (v *vecSerializer) Element() encoding.Serializer {
	i := len(v.values)
	v.values = append(v.values, nil)
	v.companions = append(v.companions, nil)
	return valueSerializer{put: func(value, companion node) {
		v.values[i] = value
		v.companions[i] = companion
	}}
}

func (v *vecSerializer) End() error {
	var values, companions node
	for i := range v.values {
		if v.values[i] != nil {
			values = v.values
		}
		if v.companions[i] != nil {
			companions = v.companions
		}
	}
	if values != nil || companions != nil {
		v.put(values, companions)
	}
	return nil
}

// Encoder writes FHIR-JSON documents to an output stream.
type Encoder struct {
	w              io.Writer
	prefix, indent string
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetIndent instructs the encoder to format each subsequent encoded value
// as if indented by the package-level function MarshalIndent.
func (e *Encoder) SetIndent(prefix, indent string) {
	e.prefix = prefix
	e.indent = indent
}

// Encode writes the JSON encoding of v to the stream, followed by a newline character.
func (e *Encoder) Encode(v encoding.Serializable) error {
	b, err := e.marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if _, err := e.w.Write(b); err != nil {
		return &encoding.IOError{Write: true, Err: err}
	}
	return nil
}

func (e *Encoder) marshal(v encoding.Serializable) ([]byte, error) {
	var root node
	err := v.Serialize(valueSerializer{put: func(value, _ node) {
		root = value
	}})
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if err := writeNode(&b, root); err != nil {
		return nil, err
	}
	if e.prefix == "" && e.indent == "" {
		return b.Bytes(), nil
	}
	var indented bytes.Buffer
	if err := stdjson.Indent(&indented, b.Bytes(), e.prefix, e.indent); err != nil {
		return nil, err
	}
	return indented.Bytes(), nil
}

// Marshal returns the FHIR-JSON encoding of v.
func Marshal(v encoding.Serializable) ([]byte, error) {
	return (&Encoder{}).marshal(v)
}

// MarshalIndent is like Marshal but applies Indent to format the output.
func MarshalIndent(v encoding.Serializable, prefix, indent string) ([]byte, error) {
	return (&Encoder{prefix: prefix, indent: indent}).marshal(v)
}
