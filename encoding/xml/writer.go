// Package xml implements the FHIR-XML format driver.
//
// Primitive values, element ids and extension urls are attributes. Start elements are
// held back until the first child is written, so attributes can still be added to them.
package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/damedic/fhir-r5-go/encoding"
)

const (
	NamespaceFHIR  = "http://hl7.org/fhir"
	NamespaceXHTML = "http://www.w3.org/1999/xhtml"
)

type writer struct {
	enc     *xml.Encoder
	pending *xml.StartElement
}

func (w *writer) encode(t xml.Token) error {
	if err := w.enc.EncodeToken(t); err != nil {
		return &encoding.IOError{Write: true, Err: err}
	}
	return nil
}

func (w *writer) flush() error {
	if w.pending == nil {
		return nil
	}
	start := *w.pending
	w.pending = nil
	return w.encode(start)
}

func (w *writer) open(name xml.Name) error {
	if err := w.flush(); err != nil {
		return err
	}
	w.pending = &xml.StartElement{Name: name}
	return nil
}

func (w *writer) attr(name, value string) error {
	if w.pending == nil {
		return &encoding.InvariantError{Type: "xml", Msg: fmt.Sprintf("attribute %s written after element content", name)}
	}
	w.pending.Attr = append(w.pending.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return nil
}

func (w *writer) close(name xml.Name) error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.encode(xml.EndElement{Name: name})
}

// elementSerializer writes elements with a given name.
type elementSerializer struct {
	w    *writer
	name xml.Name
	root bool
}

func (s *elementSerializer) SerializeResource(resourceType string) (encoding.StructSerializer, error) {
	if s.root {
		name := xml.Name{Space: NamespaceFHIR, Local: resourceType}
		if err := s.w.open(name); err != nil {
			return nil, err
		}
		return &structSerializer{w: s.w, ends: []xml.Name{name}}, nil
	}

	// nested resources are wrapped in an element named after the field
	if err := s.w.open(s.name); err != nil {
		return nil, err
	}
	name := xml.Name{Local: resourceType}
	if err := s.w.open(name); err != nil {
		return nil, err
	}
	return &structSerializer{w: s.w, ends: []xml.Name{name, s.name}}, nil
}

func (s *elementSerializer) elementName() (xml.Name, error) {
	if s.name.Local == "" {
		return xml.Name{}, &encoding.InvariantError{Type: "xml", Msg: "root element requires a name"}
	}
	name := s.name
	if s.root && name.Space == "" {
		name.Space = NamespaceFHIR
	}
	return name, nil
}

func (s *elementSerializer) SerializeStruct() (encoding.StructSerializer, error) {
	name, err := s.elementName()
	if err != nil {
		return nil, err
	}
	if err := s.w.open(name); err != nil {
		return nil, err
	}
	return &structSerializer{w: s.w, ends: []xml.Name{name}}, nil
}

func (s *elementSerializer) SerializePrimitive() (encoding.PrimitiveSerializer, error) {
	name, err := s.elementName()
	if err != nil {
		return nil, err
	}
	if err := s.w.open(name); err != nil {
		return nil, err
	}
	return &primitiveSerializer{w: s.w, name: name}, nil
}

func (s *elementSerializer) SerializeExtension() (encoding.ExtensionSerializer, error) {
	name, err := s.elementName()
	if err != nil {
		return nil, err
	}
	if err := s.w.open(name); err != nil {
		return nil, err
	}
	return &extensionSerializer{structSerializer{w: s.w, ends: []xml.Name{name}}}, nil
}

// SerializeVec returns a serializer repeating the element for every item.
func (s *elementSerializer) SerializeVec(int) (encoding.VecSerializer, error) {
	return vecSerializer{s}, nil
}

func (s *elementSerializer) SerializeXHTML(div string) error {
	if err := s.w.flush(); err != nil {
		return err
	}
	x, err := parseXHTML(div)
	if err != nil {
		return &encoding.LexicalFormatError{Kind: "xhtml", Input: div, Err: err}
	}
	start := xml.StartElement{
		Name: xml.Name{Space: NamespaceXHTML, Local: "div"},
		Attr: x.attrs(),
	}
	inner := struct {
		Inner string `xml:",innerxml"`
	}{x.Inner}
	if err := s.w.enc.EncodeElement(inner, start); err != nil {
		return &encoding.IOError{Write: true, Err: err}
	}
	return nil
}

type vecSerializer struct {
	element *elementSerializer
}

func (v vecSerializer) Element() encoding.Serializer {
	return v.element
}

func (v vecSerializer) End() error {
	return nil
}

type structSerializer struct {
	w    *writer
	ends []xml.Name
}

func (s *structSerializer) SerializeID(id *string) error {
	if id == nil {
		return nil
	}
	return s.w.attr("id", *id)
}

func (s *structSerializer) Field(name string) encoding.Serializer {
	return &elementSerializer{w: s.w, name: xml.Name{Local: name}}
}

func (s *structSerializer) End() error {
	for _, name := range s.ends {
		if err := s.w.close(name); err != nil {
			return err
		}
	}
	return nil
}

type extensionSerializer struct {
	structSerializer
}

func (s *extensionSerializer) SerializeURL(url string) error {
	return s.w.attr("url", url)
}

type primitiveSerializer struct {
	w    *writer
	name xml.Name
}

func (p *primitiveSerializer) SerializeID(id *string) error {
	if id == nil {
		return nil
	}
	return p.w.attr("id", *id)
}

func (p *primitiveSerializer) SerializeValue(v *encoding.Scalar) error {
	if v == nil {
		return nil
	}
	return p.w.attr("value", v.Text)
}

func (p *primitiveSerializer) Extension() encoding.Serializer {
	return &elementSerializer{w: p.w, name: xml.Name{Local: "extension"}}
}

func (p *primitiveSerializer) End() error {
	return p.w.close(p.name)
}

// Encoder writes FHIR-XML documents to an output stream.
type Encoder struct {
	enc *xml.Encoder
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: xml.NewEncoder(w)}
}

// Indent sets the encoder to generate XML in which each element
// begins on a new indented line that starts with prefix and is followed by
// one or more copies of indent according to the nesting depth.
func (e *Encoder) Indent(prefix, indent string) {
	e.enc.Indent(prefix, indent)
}

// Encode writes the XML encoding of v to the stream.
//
// Resources are written as root elements named after their type, other
// values need a name, see EncodeElement.
func (e *Encoder) Encode(v encoding.Serializable) error {
	return e.EncodeElement(v, xml.StartElement{})
}

// EncodeElement writes the XML encoding of v to the stream, using start as
// the outermost tag unless v is a resource.
func (e *Encoder) EncodeElement(v encoding.Serializable, start xml.StartElement) error {
	if err := MarshalElement(e.enc, v, start); err != nil {
		return err
	}
	if err := e.enc.Flush(); err != nil {
		return &encoding.IOError{Write: true, Err: err}
	}
	return nil
}

// MarshalElement writes v to an encoder of the standard library.
// It serves the implementation of xml.Marshaler.
func MarshalElement(enc *xml.Encoder, v encoding.Serializable, start xml.StartElement) error {
	return v.Serialize(&elementSerializer{
		w:    &writer{enc: enc},
		name: start.Name,
		root: true,
	})
}

// Marshal returns the FHIR-XML encoding of v.
func Marshal(v encoding.Serializable) ([]byte, error) {
	var b bytes.Buffer
	if err := NewEncoder(&b).Encode(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// MarshalIndent works like Marshal, but each XML element begins on a new
// indented line that starts with prefix and is followed by one or more
// copies of indent according to the nesting depth.
func MarshalIndent(v encoding.Serializable, prefix, indent string) ([]byte, error) {
	var b bytes.Buffer
	enc := NewEncoder(&b)
	enc.Indent(prefix, indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
