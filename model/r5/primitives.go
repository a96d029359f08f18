package r5

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/fhir-r5-go/encoding"
	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/google/uuid"
)

type (
	Base64Binary = primitive[string, base64BinaryKind]
	Boolean      = primitive[bool, booleanKind]
	Canonical    = primitive[string, canonicalKind]
	Code         = primitive[string, codeKind]
	Date         = primitive[string, dateKind]
	DateTime     = primitive[string, dateTimeKind]
	Decimal      = primitive[apd.Decimal, decimalKind]
	Id           = primitive[string, idKind]
	Instant      = primitive[string, instantKind]
	Integer      = primitive[int32, integerKind]
	Integer64    = primitive[int64, integer64Kind]
	Markdown     = primitive[string, markdownKind]
	Oid          = primitive[string, oidKind]
	PositiveInt  = primitive[uint32, positiveIntKind]
	String       = primitive[string, stringKind]
	Time         = primitive[string, timeKind]
	UnsignedInt  = primitive[uint32, unsignedIntKind]
	Uri          = primitive[string, uriKind]
	Url          = primitive[string, urlKind]
	Uuid         = primitive[string, uuidKind]
)

var primitiveTypeNames = []string{
	"base64Binary", "boolean", "canonical", "code", "date", "dateTime", "decimal", "id", "instant",
	"integer", "integer64", "markdown", "oid", "positiveInt", "string", "time", "unsignedInt",
	"uri", "url", "uuid",
}

func isPrimitiveType(name string) bool {
	for _, n := range primitiveTypeNames {
		if n == name {
			return true
		}
	}
	return false
}

var (
	codeRegex     = regexp.MustCompile(`^[^\s]+( [^\s]+)*$`)
	idRegex       = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	oidRegex      = regexp.MustCompile(`^urn:oid:[0-2](\.(0|[1-9][0-9]*))+$`)
	uriRegex      = regexp.MustCompile(`^\S*$`)
	dateRegex     = regexp.MustCompile(`^[0-9]{4}(-(0[1-9]|1[0-2])(-(0[1-9]|[12][0-9]|3[01]))?)?$`)
	timeRegex     = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]{1,9})?$`)
	dateTimeRegex = regexp.MustCompile(`^[0-9]{4}(-(0[1-9]|1[0-2])(-(0[1-9]|[12][0-9]|3[01])` +
		`(T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]{1,9})?(Z|[+-]((0[0-9]|1[0-3]):[0-5][0-9]|14:00)))?)?)?$`)
	instantRegex = regexp.MustCompile(`^([0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60))` +
		`(\.[0-9]{1,9})?(Z|[+-]((0[0-9]|1[0-3]):[0-5][0-9]|14:00))$`)
)

var errGrammar = errors.New("does not match grammar")

func matching(re *regexp.Regexp, s string) (string, error) {
	if !re.MatchString(s) {
		return "", errGrammar
	}
	return s, nil
}

// text implements the parts shared by all primitives with string values.
type text struct{}

func (text) scalarKind() encoding.ScalarKind  { return encoding.KindString }
func (text) format(v string) string           { return v }
func (text) system(v string) fhirpath.Element { return fhirpath.String(v) }
func (text) parse(s string) (string, error)   { return s, nil }
func (t text) uri(s string) (string, error)   { return matching(uriRegex, s) }
func (t text) nonEmpty(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", errors.New("must contain non-whitespace content")
	}
	return s, nil
}

type stringKind struct{ text }

func (stringKind) typeName() string                 { return "string" }
func (k stringKind) parse(s string) (string, error) { return k.nonEmpty(s) }

type markdownKind struct{ text }

func (markdownKind) typeName() string                 { return "markdown" }
func (k markdownKind) parse(s string) (string, error) { return k.nonEmpty(s) }

type codeKind struct{ text }

func (codeKind) typeName() string               { return "code" }
func (codeKind) parse(s string) (string, error) { return matching(codeRegex, s) }

type idKind struct{ text }

func (idKind) typeName() string               { return "id" }
func (idKind) parse(s string) (string, error) { return matching(idRegex, s) }

type uriKind struct{ text }

func (uriKind) typeName() string                 { return "uri" }
func (k uriKind) parse(s string) (string, error) { return k.uri(s) }

type urlKind struct{ text }

func (urlKind) typeName() string                 { return "url" }
func (k urlKind) parse(s string) (string, error) { return k.uri(s) }

type canonicalKind struct{ text }

func (canonicalKind) typeName() string                 { return "canonical" }
func (k canonicalKind) parse(s string) (string, error) { return k.uri(s) }

type oidKind struct{ text }

func (oidKind) typeName() string               { return "oid" }
func (oidKind) parse(s string) (string, error) { return matching(oidRegex, s) }

type uuidKind struct{ text }

func (uuidKind) typeName() string { return "uuid" }

func (uuidKind) parse(s string) (string, error) {
	rest, ok := strings.CutPrefix(s, "urn:uuid:")
	if !ok {
		return "", errors.New("missing urn:uuid: prefix")
	}
	if len(rest) != 36 {
		return "", errGrammar
	}
	if _, err := uuid.Parse(rest); err != nil {
		return "", err
	}
	return s, nil
}

type base64BinaryKind struct{ text }

func (base64BinaryKind) typeName() string { return "base64Binary" }

func (base64BinaryKind) parse(s string) (string, error) {
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return "", err
	}
	return s, nil
}

type dateKind struct{ text }

func (dateKind) typeName() string               { return "date" }
func (dateKind) parse(s string) (string, error) { return matching(dateRegex, s) }

func (dateKind) system(v string) fhirpath.Element {
	d, err := fhirpath.ParseDate(v)
	if err != nil {
		return fhirpath.String(v)
	}
	return d
}

type dateTimeKind struct{ text }

func (dateTimeKind) typeName() string               { return "dateTime" }
func (dateTimeKind) parse(s string) (string, error) { return matching(dateTimeRegex, s) }

func (dateTimeKind) system(v string) fhirpath.Element {
	dt, err := fhirpath.ParseDateTime(v)
	if err != nil {
		return fhirpath.String(v)
	}
	return dt
}

type timeKind struct{ text }

func (timeKind) typeName() string               { return "time" }
func (timeKind) parse(s string) (string, error) { return matching(timeRegex, s) }

func (timeKind) system(v string) fhirpath.Element {
	t, err := fhirpath.ParseTime(v)
	if err != nil {
		return fhirpath.String(v)
	}
	return t
}

type instantKind struct{ text }

func (instantKind) typeName() string { return "instant" }

// parse normalizes the UTC designator Z to the offset of the local time zone.
func (instantKind) parse(s string) (string, error) {
	m := instantRegex.FindStringSubmatch(s)
	if m == nil {
		return "", errGrammar
	}
	if m[len(m)-3] != "Z" {
		return s, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return "", err
	}
	local := t.In(time.Local)
	return local.Format("2006-01-02T15:04:05") + m[6] + local.Format("-07:00"), nil
}

func (instantKind) system(v string) fhirpath.Element {
	dt, err := fhirpath.ParseDateTime(v)
	if err != nil {
		return fhirpath.String(v)
	}
	return dt
}

type booleanKind struct{}

func (booleanKind) typeName() string                { return "boolean" }
func (booleanKind) scalarKind() encoding.ScalarKind { return encoding.KindBoolean }
func (booleanKind) format(v bool) string            { return strconv.FormatBool(v) }
func (booleanKind) system(v bool) fhirpath.Element  { return fhirpath.Boolean(v) }

func (booleanKind) parse(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errGrammar
}

type decimalKind struct{}

func (decimalKind) typeName() string                { return "decimal" }
func (decimalKind) scalarKind() encoding.ScalarKind { return encoding.KindNumber }

// format writes plain notation, unless the value was given with an exponent
// that plain notation can not carry within 17 fraction digits.
func (decimalKind) format(v apd.Decimal) string {
	if v.Exponent > 0 || v.Exponent < -17 {
		return v.Text('G')
	}
	return v.Text('f')
}

func (decimalKind) parse(s string) (apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return apd.Decimal{}, err
	}
	if d.Form != apd.Finite {
		return apd.Decimal{}, errors.New("must be finite")
	}
	return *d, nil
}

func (decimalKind) system(v apd.Decimal) fhirpath.Element {
	var d apd.Decimal
	d.Set(&v)
	return fhirpath.Decimal{Value: &d}
}

// integral implements the parts shared by the integer primitives.
type integral struct{}

func (integral) scalarKind() encoding.ScalarKind { return encoding.KindNumber }

type integerKind struct{ integral }

func (integerKind) typeName() string                { return "integer" }
func (integerKind) format(v int32) string           { return strconv.FormatInt(int64(v), 10) }
func (integerKind) system(v int32) fhirpath.Element { return fhirpath.Integer(v) }

func (integerKind) parse(s string) (int32, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	return int32(i), err
}

type positiveIntKind struct{ integral }

func (positiveIntKind) typeName() string                 { return "positiveInt" }
func (positiveIntKind) format(v uint32) string           { return strconv.FormatUint(uint64(v), 10) }
func (positiveIntKind) system(v uint32) fhirpath.Element { return fhirpath.Integer(v) }

func (positiveIntKind) parse(s string) (uint32, error) {
	i, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	if i == 0 {
		return 0, errors.New("must be greater than 0")
	}
	return uint32(i), nil
}

type unsignedIntKind struct{ integral }

func (unsignedIntKind) typeName() string                 { return "unsignedInt" }
func (unsignedIntKind) format(v uint32) string           { return strconv.FormatUint(uint64(v), 10) }
func (unsignedIntKind) system(v uint32) fhirpath.Element { return fhirpath.Integer(v) }

func (unsignedIntKind) parse(s string) (uint32, error) {
	i, err := strconv.ParseUint(s, 10, 31)
	return uint32(i), err
}

// integer64Kind values travel as JSON strings, they exceed the range of JSON numbers.
type integer64Kind struct{}

func (integer64Kind) typeName() string                { return "integer64" }
func (integer64Kind) scalarKind() encoding.ScalarKind { return encoding.KindString }
func (integer64Kind) format(v int64) string           { return strconv.FormatInt(v, 10) }

func (integer64Kind) parse(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func (integer64Kind) system(v int64) fhirpath.Element {
	if int64(int32(v)) == v {
		return fhirpath.Integer(v)
	}
	return fhirpath.Decimal{Value: apd.New(v, 0)}
}

// Xhtml is the narrative div, kept verbatim as serialized XHTML.
type Xhtml struct {
	Id        *string
	Extension []Extension
	Value     string
}

func (x Xhtml) TypeName() string { return "xhtml" }

func (x Xhtml) Serialize(s encoding.Serializer) error {
	return s.SerializeXHTML(x.Value)
}

func (x *Xhtml) Deserialize(d encoding.Deserializer) error {
	div, err := d.DecodeXHTML()
	if err != nil {
		return err
	}
	if !strings.HasPrefix(strings.TrimSpace(div), "<div") {
		return &encoding.LexicalFormatError{Kind: "xhtml", Input: div, Err: fmt.Errorf("root element must be div")}
	}
	x.Value = div
	return nil
}

func (x Xhtml) HasValue() bool { return x.Value != "" }

func (x Xhtml) SystemValue() (fhirpath.Element, bool) {
	return fhirpath.String(x.Value), x.Value != ""
}

func (x Xhtml) Children(name ...string) fhirpath.Collection {
	return nil
}

func (x Xhtml) Equal(other fhirpath.Element) (bool, bool) {
	o, ok := other.(Xhtml)
	return ok && o.Value == x.Value, true
}

func (x Xhtml) TypeInfo() fhirpath.TypeInfo {
	return primitiveTypeInfo("xhtml")
}

func (x Xhtml) String() string { return x.Value }
