package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/damedic/fhir-r5-go/encoding"
)

type reader struct {
	dec *xml.Decoder
}

func readError(err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.As(err, &syntaxErr) {
		return &encoding.UnexpectedEventError{Got: err.Error()}
	}
	return &encoding.IOError{Err: err}
}

// nextElement returns the next child element, or nil when the end of the
// enclosing element has been consumed. Comments, processing instructions and
// whitespace are skipped.
func (r *reader) nextElement() (*xml.StartElement, error) {
	for {
		t, err := r.dec.Token()
		if err != nil {
			return nil, readError(err)
		}
		switch t := t.(type) {
		case xml.StartElement:
			return &t, nil
		case xml.EndElement:
			return nil, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, &encoding.UnexpectedEventError{Got: "text content", Want: "element"}
			}
		}
	}
}

func (r *reader) root() (*element, error) {
	start, err := r.nextElement()
	if err != nil {
		return nil, err
	}
	if start == nil {
		return nil, &encoding.UnexpectedEventError{Got: "end element", Want: "root element"}
	}
	if start.Name.Space != "" && start.Name.Space != NamespaceFHIR {
		return nil, &encoding.UnexpectedEventError{Got: "namespace " + start.Name.Space, Want: NamespaceFHIR}
	}
	return &element{r: r, start: *start}, nil
}

// ignoredAttr reports namespace declarations and attributes of foreign
// namespaces, like xsi:schemaLocation.
func ignoredAttr(a xml.Attr) bool {
	return isNamespaceDecl(a) || a.Name.Space != ""
}

func isUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// element is positioned after the start tag of an element and implements
// encoding.Deserializer for it.
type element struct {
	r     *reader
	start xml.StartElement
	done  bool
}

func (e *element) name() string {
	return e.start.Name.Local
}

// DecodeResource reads a resource element. Lowercase names, like contained, are
// wrappers around a single resource element.
func (e *element) DecodeResource(open func(resourceType string) (encoding.MapVisitor, error)) error {
	if isUpper(e.name()) {
		v, err := open(e.name())
		if err != nil {
			return err
		}
		return e.DecodeStruct(v)
	}

	start, err := e.r.nextElement()
	if err != nil {
		return err
	}
	if start == nil {
		return &encoding.UnexpectedEventError{Got: "end of " + e.name(), Want: "resource"}
	}
	res := &element{r: e.r, start: *start}
	v, err := open(res.name())
	if err != nil {
		return err
	}
	if err := res.DecodeStruct(v); err != nil {
		return err
	}

	next, err := e.r.nextElement()
	if err != nil {
		return err
	}
	if next != nil {
		return &encoding.UnexpectedEventError{Got: "element " + next.Name.Local, Want: "end of " + e.name()}
	}
	e.done = true
	return nil
}

func (e *element) DecodeStruct(v encoding.MapVisitor) error {
	m := &mapAccess{e: e}
	for _, a := range e.start.Attr {
		if !ignoredAttr(a) {
			m.attrs = append(m.attrs, a)
		}
	}
	if err := v.VisitMap(m); err != nil {
		return err
	}
	e.done = true
	return nil
}

// DecodeVec yields the element itself, repeated fields are repeated keys in XML.
func (e *element) DecodeVec(v encoding.VecVisitor) error {
	return v.VisitVec(&singleAccess{e: e})
}

func (e *element) DecodePrimitive(v encoding.PrimitiveVisitor) error {
	for _, a := range e.start.Attr {
		if ignoredAttr(a) {
			continue
		}
		var err error
		switch a.Name.Local {
		case "id":
			err = v.VisitID(a.Value)
		case "value":
			err = v.VisitValue(encoding.Scalar{Kind: encoding.KindText, Text: a.Value})
		default:
			err = &encoding.UnknownFieldError{Path: e.name(), Key: a.Name.Local}
		}
		if err != nil {
			return err
		}
	}

	for {
		start, err := e.r.nextElement()
		if err != nil {
			return err
		}
		if start == nil {
			break
		}
		if start.Name.Local != "extension" {
			return &encoding.UnknownFieldError{Path: e.name(), Key: start.Name.Local}
		}
		child := &element{r: e.r, start: *start}
		if err := v.VisitExtension(child); err != nil {
			return err
		}
		if err := child.skip(); err != nil {
			return err
		}
	}
	e.done = true
	return nil
}

func (e *element) DecodeSidecar(encoding.PrimitiveVisitor) error {
	return &encoding.UnexpectedEventError{Got: "element " + e.name(), Want: "primitive extension object"}
}

// DecodeString reads the value attribute of the element.
func (e *element) DecodeString() (string, error) {
	var (
		value string
		found bool
	)
	for _, a := range e.start.Attr {
		if !ignoredAttr(a) && a.Name.Local == "value" {
			value, found = a.Value, true
		}
	}
	if !found {
		return "", &encoding.UnexpectedEventError{Got: "element " + e.name() + " without value", Want: "string"}
	}
	return value, e.skip()
}

func (e *element) DecodeXHTML() (string, error) {
	var x xhtml
	if err := e.r.dec.DecodeElement(&x, &e.start); err != nil {
		return "", readError(err)
	}
	e.done = true
	return x.String(), nil
}

// skip consumes the rest of the element, unless a Decode method already did.
func (e *element) skip() error {
	if e.done {
		return nil
	}
	e.done = true
	if err := e.r.dec.Skip(); err != nil {
		return readError(err)
	}
	return nil
}

// mapAccess yields the attributes of an element first and its child elements afterwards.
type mapAccess struct {
	e     *element
	attrs []xml.Attr
	child *element
	value encoding.Deserializer
}

func (m *mapAccess) NextKey() (string, bool, error) {
	if len(m.attrs) > 0 {
		a := m.attrs[0]
		m.attrs = m.attrs[1:]
		m.value = attrValue(a.Value)
		return a.Name.Local, true, nil
	}
	if m.child != nil {
		if err := m.child.skip(); err != nil {
			return "", false, err
		}
	}
	start, err := m.e.r.nextElement()
	if err != nil {
		return "", false, err
	}
	if start == nil {
		m.child = nil
		return "", false, nil
	}
	m.child = &element{r: m.e.r, start: *start}
	m.value = m.child
	return start.Name.Local, true, nil
}

func (m *mapAccess) NextValue() encoding.Deserializer {
	return m.value
}

type singleAccess struct {
	e    *element
	used bool
}

func (s *singleAccess) NextElement() (encoding.Deserializer, bool, error) {
	if s.used {
		return nil, false, nil
	}
	s.used = true
	return s.e, true, nil
}

// attrValue is the value of an attribute, like an element id or an extension url.
type attrValue string

func (a attrValue) unexpected(want string) error {
	return &encoding.UnexpectedEventError{Got: "attribute", Want: want}
}

func (a attrValue) DecodeResource(func(string) (encoding.MapVisitor, error)) error {
	return a.unexpected("resource")
}

func (a attrValue) DecodeStruct(encoding.MapVisitor) error {
	return a.unexpected("element")
}

func (a attrValue) DecodeVec(encoding.VecVisitor) error {
	return a.unexpected("repeated element")
}

func (a attrValue) DecodePrimitive(v encoding.PrimitiveVisitor) error {
	return v.VisitValue(encoding.Scalar{Kind: encoding.KindText, Text: string(a)})
}

func (a attrValue) DecodeSidecar(encoding.PrimitiveVisitor) error {
	return a.unexpected("primitive extension object")
}

func (a attrValue) DecodeString() (string, error) {
	return string(a), nil
}

func (a attrValue) DecodeXHTML() (string, error) {
	return "", a.unexpected("div element")
}

// Decoder reads FHIR-XML documents from an input stream.
type Decoder struct {
	r *reader
}

// NewDecoder creates a new FHIR-XML parser reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: &reader{dec: xml.NewDecoder(r)}}
}

// Decode reads the next root element from its input and stores it in v.
func (d *Decoder) Decode(v encoding.Deserializable) error {
	root, err := d.r.root()
	if err != nil {
		return err
	}
	return v.Deserialize(root)
}

// UnmarshalElement reads the element opened by start from a decoder of the standard library.
// It serves the implementation of xml.Unmarshaler.
func UnmarshalElement(dec *xml.Decoder, start xml.StartElement, v encoding.Deserializable) error {
	e := &element{r: &reader{dec: dec}, start: start}
	if err := v.Deserialize(e); err != nil {
		return err
	}
	return e.skip()
}

// Unmarshal parses FHIR-XML data into v.
func Unmarshal(data []byte, v encoding.Deserializable) error {
	return NewDecoder(bytes.NewReader(data)).Decode(v)
}
