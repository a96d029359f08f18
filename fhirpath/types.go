package fhirpath

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/apd/v3"
)

// Element is the capability every node of a FHIRPath tree implements.
//
// System values (Boolean, String, Integer, Decimal, Date, Time, DateTime) implement it
// directly, FHIR model types implement it mechanically over their field tables.
type Element interface {
	// Children returns all child nodes with given names.
	//
	// If no name is passed, all children are returned.
	Children(name ...string) Collection
	// Equal reports whether other is equal to the element.
	// ok=false means the result is unknown, which FHIRPath treats as empty.
	Equal(other Element) (eq bool, ok bool)
	TypeInfo() TypeInfo
	fmt.Stringer
}

// Converter is implemented by elements which can be coerced to System values.
type Converter interface {
	ToBoolean(explicit bool) (v Boolean, ok bool, err error)
	ToString(explicit bool) (v String, ok bool, err error)
	ToInteger(explicit bool) (v Integer, ok bool, err error)
	ToDecimal(explicit bool) (v Decimal, ok bool, err error)
	ToDateTime(explicit bool) (v DateTime, ok bool, err error)
}

// Primitive is implemented by FHIR primitive elements which wrap a System value.
// FHIR primitives can have extensions without having a value.
type Primitive interface {
	Element
	HasValue() bool
	// SystemValue returns the System representation of the value, if any.
	SystemValue() (Element, bool)
}

type cmpElement interface {
	Element
	Cmp(other Element) (cmp int, ok bool, err error)
}

type apdContextKey struct{}

// WithAPDContext sets the apd.Context for Decimal operations in FHIRPath evaluations.
//
// By default 34 significant digits are kept, which exceeds the precision FHIR mandates
// for decimal values.
func WithAPDContext(ctx context.Context, apdContext *apd.Context) context.Context {
	return context.WithValue(ctx, apdContextKey{}, apdContext)
}

const defaultDecimalPrecision uint32 = 34

var defaultAPDContext = apd.BaseContext.WithPrecision(defaultDecimalPrecision)

func apdContext(ctx context.Context) *apd.Context {
	if ctx != nil {
		if apdContext, ok := ctx.Value(apdContextKey{}).(*apd.Context); ok && apdContext != nil {
			return apdContext
		}
	}
	return defaultAPDContext
}

// TypeSpecifier is a possibly namespace qualified type name.
type TypeSpecifier struct {
	Namespace string
	Name      string
}

// ParseTypeSpecifier splits "FHIR.Patient" into namespace and name.
// Unqualified names are returned without namespace.
func ParseTypeSpecifier(s string) TypeSpecifier {
	s = strings.Trim(s, "`")
	if ns, name, ok := strings.Cut(s, "."); ok {
		return TypeSpecifier{Namespace: strings.Trim(ns, "`"), Name: strings.Trim(name, "`")}
	}
	return TypeSpecifier{Name: s}
}

func (t TypeSpecifier) String() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// TypeInfo describes the runtime type of an element.
type TypeInfo struct {
	TypeSpecifier
	// BaseTypes lists the ancestors of the type, nearest first.
	BaseTypes []TypeSpecifier
	// Elements lists the names of navigable children. It is nil for System types.
	Elements []string
}

func systemType(name string) TypeInfo {
	return TypeInfo{
		TypeSpecifier: TypeSpecifier{Namespace: "System", Name: name},
		BaseTypes:     []TypeSpecifier{{Namespace: "System", Name: "Any"}},
	}
}

// Is reports whether the type or one of its ancestors matches spec.
func (i TypeInfo) Is(spec TypeSpecifier) bool {
	match := func(t TypeSpecifier) bool {
		return t.Name == spec.Name && (spec.Namespace == "" || spec.Namespace == t.Namespace)
	}
	return match(i.TypeSpecifier) || slices.ContainsFunc(i.BaseTypes, match)
}

// HasElement reports whether name is a navigable child of the type.
func (i TypeInfo) HasElement(name string) bool {
	return slices.Contains(i.Elements, name)
}

func conversionError(from Element, to string) error {
	return &IncompatibleError{Msg: fmt.Sprintf("%s %v can not be converted to %s", from.TypeInfo().Name, from, to)}
}

func implicitConversionError(from Element, to string) error {
	return &IncompatibleError{Msg: fmt.Sprintf("%s %v can not be implicitly converted to %s", from.TypeInfo().Name, from, to)}
}

// toPrimitive unwraps FHIR primitives to their System value.
func toPrimitive(e Element) (Element, bool) {
	switch v := e.(type) {
	case Boolean, String, Integer, Decimal, Date, Time, DateTime:
		return v, true
	case Primitive:
		return v.SystemValue()
	}
	return nil, false
}

func toConverter(e Element) (Converter, bool) {
	p, ok := toPrimitive(e)
	if !ok {
		return nil, false
	}
	c, ok := p.(Converter)
	return c, ok
}

// elementTo coerces e to the System type T.
func elementTo[T Element](e Element, explicit bool) (v T, ok bool, err error) {
	c, isConverter := toConverter(e)
	if !isConverter {
		if p, isPrimitive := e.(Primitive); isPrimitive && !p.HasValue() {
			return v, false, nil
		}
		return v, false, conversionError(e, fmt.Sprintf("%T", v))
	}
	switch any(v).(type) {
	case Boolean:
		r, ok, err := c.ToBoolean(explicit)
		return any(r).(T), ok, err
	case String:
		r, ok, err := c.ToString(explicit)
		return any(r).(T), ok, err
	case Integer:
		r, ok, err := c.ToInteger(explicit)
		return any(r).(T), ok, err
	case Decimal:
		r, ok, err := c.ToDecimal(explicit)
		return any(r).(T), ok, err
	case DateTime:
		r, ok, err := c.ToDateTime(explicit)
		return any(r).(T), ok, err
	default:
		return v, false, fmt.Errorf("can not convert to type %T", v)
	}
}

// family groups System types which may be compared with each other.
func family(e Element) string {
	switch e.(type) {
	case Boolean:
		return "Boolean"
	case String:
		return "String"
	case Integer, Decimal:
		return "Number"
	case Date, DateTime:
		return "DateTime"
	case Time:
		return "Time"
	default:
		return ""
	}
}

// Collection is the FHIRPath runtime value: an ordered sequence which keeps duplicates.
type Collection []Element

// Equal compares two collections element by element.
// ok=false is returned when one of them is empty.
func (c Collection) Equal(other Collection) (eq bool, ok bool, err error) {
	if len(c) == 0 || len(other) == 0 {
		return false, false, nil
	}
	if len(c) != len(other) {
		return false, true, nil
	}
	for i, e := range c {
		eq, ok, err := equal(e, other[i])
		if err != nil || !ok || !eq {
			return false, ok, err
		}
	}
	return true, true, nil
}

func equal(left, right Element) (eq bool, ok bool, err error) {
	l, lPrimitive := toPrimitive(left)
	r, rPrimitive := toPrimitive(right)
	if lPrimitive && rPrimitive {
		if family(l) != family(r) {
			return false, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare %s to %s", l.TypeInfo().Name, r.TypeInfo().Name)}
		}
		eq, ok := l.Equal(r)
		return eq, ok, nil
	}
	if lPrimitive != rPrimitive {
		if _, isPrimitive := left.(Primitive); isPrimitive && !lPrimitive {
			return false, false, nil
		}
		if _, isPrimitive := right.(Primitive); isPrimitive && !rPrimitive {
			return false, false, nil
		}
		return false, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare %s to %s", left.TypeInfo().Name, right.TypeInfo().Name)}
	}
	eq, ok = left.Equal(right)
	return eq, ok, nil
}

// Cmp compares two singleton collections.
func (c Collection) Cmp(other Collection) (cmp int, ok bool, err error) {
	if len(c) == 0 || len(other) == 0 {
		return 0, false, nil
	}
	if len(c) != 1 || len(other) != 1 {
		return 0, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare collections with len != 1: %v and %v", c, other)}
	}
	l, lok := toPrimitive(c[0])
	r, rok := toPrimitive(other[0])
	if !lok || !rok {
		if isEmptyPrimitive(c[0]) || isEmptyPrimitive(other[0]) {
			return 0, false, nil
		}
		return 0, false, &IncompatibleError{Msg: "only strings, integers, decimals, dates, datetimes and times can be compared"}
	}
	left, isCmp := l.(cmpElement)
	if !isCmp || family(l) != family(r) {
		return 0, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare %s to %s", l.TypeInfo().Name, r.TypeInfo().Name)}
	}
	return left.Cmp(r)
}

func isEmptyPrimitive(e Element) bool {
	p, ok := e.(Primitive)
	return ok && !p.HasValue()
}

// Union merges two collections, eliminating duplicates.
func (c Collection) Union(other Collection) Collection {
	var union Collection
	for _, e := range slices.Concat(c, other) {
		if !union.Contains(e) {
			union = append(union, e)
		}
	}
	return union
}

// Combine concatenates two collections, keeping duplicates.
func (c Collection) Combine(other Collection) Collection {
	return slices.Concat(c, other)
}

func (c Collection) Contains(element Element) bool {
	for _, e := range c {
		eq, ok, err := equal(e, element)
		if err == nil && ok && eq {
			return true
		}
	}
	return false
}

func (c Collection) String() string {
	if len(c) == 0 {
		return "{ }"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, e := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Singleton returns the only element of c converted to T.
//
// An empty collection returns ok=false, a collection with more than one element fails.
func Singleton[T Element](c Collection) (v T, ok bool, err error) {
	if len(c) == 0 {
		return v, false, nil
	}
	if len(c) > 1 {
		return v, false, &IncompatibleError{Msg: fmt.Sprintf("can not convert collection of len %d to singleton %T", len(c), v)}
	}
	if t, ok := c[0].(T); ok {
		return t, true, nil
	}
	return elementTo[T](c[0], false)
}

type Boolean bool

func (b Boolean) Children(name ...string) Collection {
	return nil
}
func (b Boolean) ToBoolean(explicit bool) (v Boolean, ok bool, err error) {
	return b, true, nil
}
func (b Boolean) ToString(explicit bool) (v String, ok bool, err error) {
	if explicit {
		return String(b.String()), true, nil
	}
	return "", false, implicitConversionError(b, "String")
}
func (b Boolean) ToInteger(explicit bool) (v Integer, ok bool, err error) {
	if explicit {
		if b {
			return 1, true, nil
		}
		return 0, true, nil
	}
	return 0, false, implicitConversionError(b, "Integer")
}
func (b Boolean) ToDecimal(explicit bool) (v Decimal, ok bool, err error) {
	if explicit {
		if b {
			return Decimal{Value: apd.New(10, -1)}, true, nil
		}
		return Decimal{Value: apd.New(0, -1)}, true, nil
	}
	return Decimal{}, false, implicitConversionError(b, "Decimal")
}
func (b Boolean) ToDateTime(explicit bool) (v DateTime, ok bool, err error) {
	return DateTime{}, false, conversionError(b, "DateTime")
}
func (b Boolean) Equal(other Element) (eq bool, ok bool) {
	o, isBool := other.(Boolean)
	return isBool && b == o, true
}
func (b Boolean) TypeInfo() TypeInfo {
	return systemType("Boolean")
}
func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

type String string

func (s String) Children(name ...string) Collection {
	return nil
}
func (s String) ToBoolean(explicit bool) (v Boolean, ok bool, err error) {
	if explicit {
		switch strings.ToLower(string(s)) {
		case "true", "t", "yes", "y", "1", "1.0":
			return true, true, nil
		case "false", "f", "no", "n", "0", "0.0":
			return false, true, nil
		}
		return false, false, nil
	}
	return false, false, implicitConversionError(s, "Boolean")
}
func (s String) ToString(explicit bool) (v String, ok bool, err error) {
	return s, true, nil
}
func (s String) ToInteger(explicit bool) (v Integer, ok bool, err error) {
	if explicit {
		val, err := strconv.ParseInt(string(s), 10, 32)
		if err != nil {
			return 0, false, nil
		}
		return Integer(val), true, nil
	}
	return 0, false, implicitConversionError(s, "Integer")
}
func (s String) ToDecimal(explicit bool) (v Decimal, ok bool, err error) {
	if explicit {
		d, _, err := apd.NewFromString(string(s))
		if err != nil {
			return Decimal{}, false, nil
		}
		return Decimal{Value: d}, true, nil
	}
	return Decimal{}, false, implicitConversionError(s, "Decimal")
}
func (s String) ToDateTime(explicit bool) (v DateTime, ok bool, err error) {
	if explicit {
		d, err := ParseDateTime(string(s))
		if err != nil {
			return DateTime{}, false, nil
		}
		return d, true, nil
	}
	return DateTime{}, false, implicitConversionError(s, "DateTime")
}
func (s String) Equal(other Element) (eq bool, ok bool) {
	o, isString := other.(String)
	return isString && s == o, true
}
func (s String) Cmp(other Element) (cmp int, ok bool, err error) {
	o, isString := other.(String)
	if !isString {
		return 0, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare String to %s", other.TypeInfo().Name)}
	}
	return strings.Compare(string(s), string(o)), true, nil
}
func (s String) TypeInfo() TypeInfo {
	return systemType("String")
}
func (s String) String() string {
	return "'" + strings.ReplaceAll(string(s), "'", `\'`) + "'"
}

type Integer int32

func (i Integer) Children(name ...string) Collection {
	return nil
}
func (i Integer) ToBoolean(explicit bool) (v Boolean, ok bool, err error) {
	if explicit {
		switch i {
		case 0:
			return false, true, nil
		case 1:
			return true, true, nil
		}
		return false, false, nil
	}
	return false, false, implicitConversionError(i, "Boolean")
}
func (i Integer) ToString(explicit bool) (v String, ok bool, err error) {
	if explicit {
		return String(i.String()), true, nil
	}
	return "", false, implicitConversionError(i, "String")
}
func (i Integer) ToInteger(explicit bool) (v Integer, ok bool, err error) {
	return i, true, nil
}
func (i Integer) ToDecimal(explicit bool) (v Decimal, ok bool, err error) {
	return Decimal{Value: apd.New(int64(i), 0)}, true, nil
}
func (i Integer) ToDateTime(explicit bool) (v DateTime, ok bool, err error) {
	return DateTime{}, false, conversionError(i, "DateTime")
}
func (i Integer) Equal(other Element) (eq bool, ok bool) {
	switch o := other.(type) {
	case Integer:
		return i == o, true
	case Decimal:
		d, _, _ := i.ToDecimal(false)
		return d.Equal(o)
	}
	return false, true
}
func (i Integer) Cmp(other Element) (cmp int, ok bool, err error) {
	switch o := other.(type) {
	case Integer:
		return compareInts(int(i), int(o)), true, nil
	case Decimal:
		d, _, _ := i.ToDecimal(false)
		return d.Cmp(o)
	}
	return 0, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare Integer to %s", other.TypeInfo().Name)}
}
func (i Integer) TypeInfo() TypeInfo {
	return systemType("Integer")
}
func (i Integer) String() string {
	return strconv.Itoa(int(i))
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// integerResult returns the result of Integer arithmetic, or empty on 32 bit overflow.
func integerResult(v int64) Collection {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return nil
	}
	return Collection{Integer(v)}
}

type Decimal struct {
	Value *apd.Decimal
}

func (d Decimal) Children(name ...string) Collection {
	return nil
}
func (d Decimal) ToBoolean(explicit bool) (v Boolean, ok bool, err error) {
	if explicit {
		switch {
		case d.Value.IsZero():
			return false, true, nil
		case d.Value.Cmp(apd.New(1, 0)) == 0:
			return true, true, nil
		}
		return false, false, nil
	}
	return false, false, implicitConversionError(d, "Boolean")
}
func (d Decimal) ToString(explicit bool) (v String, ok bool, err error) {
	if explicit {
		return String(d.String()), true, nil
	}
	return "", false, implicitConversionError(d, "String")
}
func (d Decimal) ToInteger(explicit bool) (v Integer, ok bool, err error) {
	if explicit {
		var i apd.Decimal
		if _, err := apd.BaseContext.RoundToIntegralValue(&i, d.Value); err != nil {
			return 0, false, nil
		}
		if i.Cmp(d.Value) != 0 {
			return 0, false, nil
		}
		n, err := i.Int64()
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false, nil
		}
		return Integer(n), true, nil
	}
	return 0, false, implicitConversionError(d, "Integer")
}
func (d Decimal) ToDecimal(explicit bool) (v Decimal, ok bool, err error) {
	return d, true, nil
}
func (d Decimal) ToDateTime(explicit bool) (v DateTime, ok bool, err error) {
	return DateTime{}, false, conversionError(d, "DateTime")
}
func (d Decimal) Equal(other Element) (eq bool, ok bool) {
	cmp, ok, err := d.Cmp(other)
	if err != nil {
		return false, true
	}
	return cmp == 0, ok
}
func (d Decimal) Cmp(other Element) (cmp int, ok bool, err error) {
	switch o := other.(type) {
	case Decimal:
		return d.Value.Cmp(o.Value), true, nil
	case Integer:
		od, _, _ := o.ToDecimal(false)
		return d.Value.Cmp(od.Value), true, nil
	}
	return 0, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare Decimal to %s", other.TypeInfo().Name)}
}
func (d Decimal) TypeInfo() TypeInfo {
	return systemType("Decimal")
}
func (d Decimal) String() string {
	if d.Value == nil {
		return "0"
	}
	return d.Value.Text('f')
}

// isSymbolStart reports whether r may start a FHIRPath identifier.
func isSymbolStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isSymbolPart(r rune) bool {
	return isSymbolStart(r) || unicode.IsDigit(r)
}
