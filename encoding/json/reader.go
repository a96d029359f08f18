package json

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/damedic/fhir-r5-go/encoding"
)

// reader is positioned before a JSON value and implements encoding.Deserializer for it.
//
// Tokens read ahead, like the body of a resource buffered while searching its
// resourceType, are replayed from queue before the underlying decoder is asked again.
type reader struct {
	dec   *stdjson.Decoder
	queue []stdjson.Token
	// resourceType of the root object, if known before decoding.
	resourceType string
}

func newReader(r io.Reader) *reader {
	dec := stdjson.NewDecoder(r)
	dec.UseNumber()
	return &reader{dec: dec}
}

func (r *reader) next() (stdjson.Token, error) {
	if len(r.queue) > 0 {
		t := r.queue[0]
		r.queue = r.queue[1:]
		return t, nil
	}
	t, err := r.dec.Token()
	if err != nil {
		return nil, readError(err)
	}
	return t, nil
}

func (r *reader) peek() (stdjson.Token, error) {
	if len(r.queue) == 0 {
		t, err := r.dec.Token()
		if err != nil {
			return nil, readError(err)
		}
		r.queue = append(r.queue, t)
	}
	return r.queue[0], nil
}

func readError(err error) error {
	var syntaxErr *stdjson.SyntaxError
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.As(err, &syntaxErr) {
		return &encoding.UnexpectedEventError{Got: err.Error()}
	}
	return &encoding.IOError{Err: err}
}

func describe(t stdjson.Token) string {
	switch t := t.(type) {
	case stdjson.Delim:
		switch t {
		case '{':
			return "start of object"
		case '}':
			return "end of object"
		case '[':
			return "start of array"
		default:
			return "end of array"
		}
	case string:
		return fmt.Sprintf("string %q", t)
	case stdjson.Number:
		return "number " + t.String()
	case bool:
		return fmt.Sprintf("boolean %t", t)
	case nil:
		return "null"
	}
	return fmt.Sprintf("%v", t)
}

func (r *reader) expect(want stdjson.Delim) error {
	t, err := r.next()
	if err != nil {
		return err
	}
	if d, ok := t.(stdjson.Delim); !ok || d != want {
		return &encoding.UnexpectedEventError{Got: describe(t), Want: describe(want)}
	}
	return nil
}

// DecodeResource buffers the whole object to find the resourceType, which may appear at any
// position, and replays the remaining tokens to the visitor.
func (r *reader) DecodeResource(open func(resourceType string) (encoding.MapVisitor, error)) error {
	if known := r.resourceType; known != "" {
		r.resourceType = ""
		return r.decodeKnownResource(known, open)
	}
	if err := r.expect('{'); err != nil {
		return err
	}

	var (
		resourceType string
		body         = []stdjson.Token{stdjson.Delim('{')}
		depth        = 1
		atKey        = true
	)
	for {
		t, err := r.next()
		if err != nil {
			return err
		}
		if depth == 1 && atKey {
			if d, ok := t.(stdjson.Delim); ok && d == '}' {
				body = append(body, t)
				break
			}
			if key, _ := t.(string); key == "resourceType" {
				if resourceType != "" {
					return &encoding.UnexpectedEventError{Got: "duplicate resourceType", Want: "resource"}
				}
				v, err := r.next()
				if err != nil {
					return err
				}
				s, ok := v.(string)
				if !ok {
					return &encoding.UnexpectedEventError{Got: describe(v), Want: "resourceType string"}
				}
				resourceType = s
				continue
			}
			body = append(body, t)
			atKey = false
			continue
		}

		body = append(body, t)
		if d, ok := t.(stdjson.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 1 {
			atKey = true
		}
	}

	if resourceType == "" {
		return &encoding.UnexpectedEventError{Got: "object without resourceType", Want: "resource"}
	}
	r.queue = append(body, r.queue...)

	v, err := open(resourceType)
	if err != nil {
		return err
	}
	return r.DecodeStruct(v)
}

// decodeKnownResource streams the object to the visitor, checking the resourceType
// key in passing.
func (r *reader) decodeKnownResource(resourceType string, open func(resourceType string) (encoding.MapVisitor, error)) error {
	if err := r.expect('{'); err != nil {
		return err
	}
	v, err := open(resourceType)
	if err != nil {
		return err
	}
	return v.VisitMap(&resourceAccess{objectAccess: objectAccess{r: r}, resourceType: resourceType})
}

func (r *reader) DecodeStruct(v encoding.MapVisitor) error {
	if err := r.expect('{'); err != nil {
		return err
	}
	return v.VisitMap(&objectAccess{r: r})
}

func (r *reader) DecodeVec(v encoding.VecVisitor) error {
	if err := r.expect('['); err != nil {
		return err
	}
	return v.VisitVec(&arrayAccess{r: r})
}

func (r *reader) DecodePrimitive(v encoding.PrimitiveVisitor) error {
	t, err := r.next()
	if err != nil {
		return err
	}
	switch t := t.(type) {
	case nil:
		return nil
	case string:
		return v.VisitValue(encoding.Scalar{Kind: encoding.KindString, Text: t})
	case stdjson.Number:
		return v.VisitValue(encoding.Scalar{Kind: encoding.KindNumber, Text: t.String()})
	case bool:
		text := "false"
		if t {
			text = "true"
		}
		return v.VisitValue(encoding.Scalar{Kind: encoding.KindBoolean, Text: text})
	}
	return &encoding.UnexpectedEventError{Got: describe(t), Want: "primitive value"}
}

func (r *reader) DecodeSidecar(v encoding.PrimitiveVisitor) error {
	t, err := r.next()
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	}
	if d, ok := t.(stdjson.Delim); !ok || d != '{' {
		return &encoding.UnexpectedEventError{Got: describe(t), Want: "primitive extension object"}
	}
	for {
		t, err := r.next()
		if err != nil {
			return err
		}
		if d, ok := t.(stdjson.Delim); ok && d == '}' {
			return nil
		}
		switch key, _ := t.(string); key {
		case "id":
			id, err := r.DecodeString()
			if err != nil {
				return err
			}
			if err := v.VisitID(id); err != nil {
				return err
			}
		case "extension":
			if err := v.VisitExtension(r); err != nil {
				return err
			}
		default:
			return &encoding.UnknownFieldError{Path: "primitive extension", Key: key}
		}
	}
}

func (r *reader) DecodeString() (string, error) {
	t, err := r.next()
	if err != nil {
		return "", err
	}
	s, ok := t.(string)
	if !ok {
		return "", &encoding.UnexpectedEventError{Got: describe(t), Want: "string"}
	}
	return s, nil
}

func (r *reader) DecodeXHTML() (string, error) {
	return r.DecodeString()
}

type objectAccess struct {
	r *reader
}

func (a *objectAccess) NextKey() (string, bool, error) {
	t, err := a.r.next()
	if err != nil {
		return "", false, err
	}
	if d, ok := t.(stdjson.Delim); ok && d == '}' {
		return "", false, nil
	}
	key, ok := t.(string)
	if !ok {
		return "", false, &encoding.UnexpectedEventError{Got: describe(t), Want: "object key"}
	}
	return key, true, nil
}

func (a *objectAccess) NextValue() encoding.Deserializer {
	return a.r
}

// resourceAccess hides the resourceType key from the visitor of a resource.
type resourceAccess struct {
	objectAccess
	resourceType string
	seen         bool
}

func (a *resourceAccess) NextKey() (string, bool, error) {
	for {
		key, ok, err := a.objectAccess.NextKey()
		if err != nil || !ok || key != "resourceType" {
			return key, ok, err
		}
		if a.seen {
			return "", false, &encoding.UnexpectedEventError{Got: "duplicate resourceType", Want: "resource"}
		}
		a.seen = true
		got, err := a.r.DecodeString()
		if err != nil {
			return "", false, err
		}
		if got != a.resourceType {
			return "", false, &encoding.UnexpectedEventError{Got: "resourceType " + got, Want: "resourceType " + a.resourceType}
		}
	}
}

type arrayAccess struct {
	r *reader
}

func (a *arrayAccess) NextElement() (encoding.Deserializer, bool, error) {
	t, err := a.r.peek()
	if err != nil {
		return nil, false, err
	}
	if d, ok := t.(stdjson.Delim); ok && d == ']' {
		_, err := a.r.next()
		return nil, false, err
	}
	return a.r, true, nil
}

// Decoder reads FHIR-JSON documents from an input stream.
type Decoder struct {
	r *reader
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: newReader(r)}
}

// Decode reads the next JSON value from its input and stores it in v.
func (d *Decoder) Decode(v encoding.Deserializable) error {
	return v.Deserialize(d.r)
}

// Unmarshal parses FHIR-JSON data into v.
// Data following the root value is an error.
func Unmarshal(data []byte, v encoding.Deserializable) error {
	return unmarshal(newReader(bytes.NewReader(data)), v)
}

// UnmarshalResource parses a FHIR-JSON resource into v, when its resourceType is already known.
// The resource is decoded without buffering it, a different resourceType in data is an error.
func UnmarshalResource(data []byte, resourceType string, v encoding.Deserializable) error {
	r := newReader(bytes.NewReader(data))
	r.resourceType = resourceType
	return unmarshal(r, v)
}

func unmarshal(r *reader, v encoding.Deserializable) error {
	if err := v.Deserialize(r); err != nil {
		return err
	}
	if len(r.queue) > 0 {
		return &encoding.UnexpectedEventError{Got: describe(r.queue[0]), Want: "end of input"}
	}
	t, err := r.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return readError(err)
	}
	return &encoding.UnexpectedEventError{Got: describe(t), Want: "end of input"}
}
