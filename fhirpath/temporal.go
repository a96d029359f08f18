package fhirpath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Precision is the finest component a date or time value was given with.
type Precision int

const (
	PrecisionYear Precision = iota
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
	PrecisionMillisecond
)

var (
	dateRegex     = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)
	timeRegex     = regexp.MustCompile(`^(\d{2})(?::(\d{2})(?::(\d{2})(?:\.(\d+))?)?)?$`)
	timeZoneRegex = regexp.MustCompile(`(Z|[+-]\d{2}:\d{2})$`)
)

type Date struct {
	Value     time.Time
	Precision Precision
}

type Time struct {
	Value     time.Time
	Precision Precision
}

type DateTime struct {
	Value       time.Time
	Precision   Precision
	HasTimeZone bool
}

// ParseDate parses dates of the forms YYYY, YYYY-MM and YYYY-MM-DD.
// A leading @ as used by FHIRPath literals is accepted.
func ParseDate(s string) (Date, error) {
	m := dateRegex.FindStringSubmatch(strings.TrimPrefix(s, "@"))
	if m == nil {
		return Date{}, fmt.Errorf("invalid Date format: %s", s)
	}
	t, p, err := buildDate(m[1], m[2], m[3], time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("invalid Date format: %s: %w", s, err)
	}
	return Date{Value: t, Precision: p}, nil
}

// ParseTime parses times of the forms HH, HH:MM, HH:MM:SS and HH:MM:SS.fff.
// A leading @T as used by FHIRPath literals is accepted.
func ParseTime(s string) (Time, error) {
	m := timeRegex.FindStringSubmatch(strings.TrimPrefix(strings.TrimPrefix(s, "@"), "T"))
	if m == nil {
		return Time{}, fmt.Errorf("invalid Time format: %s", s)
	}
	t, p, err := buildTime(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC), m[1], m[2], m[3], m[4])
	if err != nil {
		return Time{}, fmt.Errorf("invalid Time format: %s: %w", s, err)
	}
	return Time{Value: t, Precision: p}, nil
}

// ParseDateTime parses a date optionally followed by T, a partial time and a time zone.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimPrefix(s, "@")
	datePart, timePart, hasTime := strings.Cut(s, "T")

	loc := time.UTC
	hasTimeZone := false
	if hasTime {
		if tz := timeZoneRegex.FindString(timePart); tz != "" {
			hasTimeZone = true
			timePart = strings.TrimSuffix(timePart, tz)
			if tz != "Z" {
				offset, err := time.Parse("-07:00", tz)
				if err != nil {
					return DateTime{}, fmt.Errorf("invalid DateTime format (time zone): %s", s)
				}
				_, secs := offset.Zone()
				loc = time.FixedZone(tz, secs)
			}
		}
	}

	m := dateRegex.FindStringSubmatch(datePart)
	if m == nil {
		return DateTime{}, fmt.Errorf("invalid DateTime format (date part): %s", s)
	}
	d, p, err := buildDate(m[1], m[2], m[3], loc)
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid DateTime format (date part): %s: %w", s, err)
	}
	if !hasTime || timePart == "" {
		return DateTime{Value: d, Precision: p, HasTimeZone: hasTimeZone}, nil
	}
	if p != PrecisionDay {
		return DateTime{}, fmt.Errorf("invalid DateTime format (time without day): %s", s)
	}

	tm := timeRegex.FindStringSubmatch(timePart)
	if tm == nil {
		return DateTime{}, fmt.Errorf("invalid DateTime format (time part): %s", s)
	}
	t, p, err := buildTime(d, tm[1], tm[2], tm[3], tm[4])
	if err != nil {
		return DateTime{}, fmt.Errorf("invalid DateTime format (time part): %s: %w", s, err)
	}
	return DateTime{Value: t, Precision: p, HasTimeZone: hasTimeZone}, nil
}

func buildDate(year, month, day string, loc *time.Location) (time.Time, Precision, error) {
	p := PrecisionYear
	layout, value := "2006", year
	if month != "" {
		p, layout, value = PrecisionMonth, layout+"-01", value+"-"+month
	}
	if day != "" {
		p, layout, value = PrecisionDay, layout+"-02", value+"-"+day
	}
	t, err := time.ParseInLocation(layout, value, loc)
	return t, p, err
}

func buildTime(day time.Time, hour, minute, second, fraction string) (time.Time, Precision, error) {
	p := PrecisionHour
	layout, value := "15", hour
	if minute != "" {
		p, layout, value = PrecisionMinute, layout+":04", value+":"+minute
	}
	if second != "" {
		p, layout, value = PrecisionSecond, layout+":05", value+":"+second
	}
	if fraction != "" {
		p, layout, value = PrecisionMillisecond, layout+"."+strings.Repeat("9", len(fraction)), value+"."+fraction
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, p, err
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), day.Location()), p, nil
}

// truncate drops all components finer than p.
func truncate(t time.Time, p Precision) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	switch p {
	case PrecisionYear:
		return time.Date(y, 1, 1, 0, 0, 0, 0, t.Location())
	case PrecisionMonth:
		return time.Date(y, mo, 1, 0, 0, 0, 0, t.Location())
	case PrecisionDay:
		return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
	case PrecisionHour:
		return time.Date(y, mo, d, h, 0, 0, 0, t.Location())
	case PrecisionMinute:
		return time.Date(y, mo, d, h, mi, 0, 0, t.Location())
	case PrecisionSecond:
		return time.Date(y, mo, d, h, mi, s, 0, t.Location())
	}
	return t.Truncate(time.Millisecond)
}

// compareAtPrecision compares two values at the coarser of both precisions.
// If they are equal there but were given with different precisions, the result is unknown.
func compareAtPrecision(a time.Time, pa Precision, b time.Time, pb Precision) (int, bool) {
	p := min(pa, pb)
	cmp := truncate(a, p).Compare(truncate(b, p))
	if cmp != 0 {
		return cmp, true
	}
	if pa != pb {
		return 0, false
	}
	return 0, true
}

func (d Date) Children(name ...string) Collection {
	return nil
}
func (d Date) ToBoolean(explicit bool) (v Boolean, ok bool, err error) {
	return false, false, conversionError(d, "Boolean")
}
func (d Date) ToString(explicit bool) (v String, ok bool, err error) {
	if explicit {
		return String(d.format()), true, nil
	}
	return "", false, implicitConversionError(d, "String")
}
func (d Date) ToInteger(explicit bool) (v Integer, ok bool, err error) {
	return 0, false, conversionError(d, "Integer")
}
func (d Date) ToDecimal(explicit bool) (v Decimal, ok bool, err error) {
	return Decimal{}, false, conversionError(d, "Decimal")
}
func (d Date) ToDateTime(explicit bool) (v DateTime, ok bool, err error) {
	return DateTime{Value: d.Value, Precision: d.Precision}, true, nil
}
func (d Date) Equal(other Element) (eq bool, ok bool) {
	cmp, ok, err := d.Cmp(other)
	if err != nil {
		return false, true
	}
	return cmp == 0, ok
}
func (d Date) Cmp(other Element) (cmp int, ok bool, err error) {
	switch o := other.(type) {
	case Date:
		cmp, ok := compareAtPrecision(d.Value, d.Precision, o.Value, o.Precision)
		return cmp, ok, nil
	case DateTime:
		dt, _, _ := d.ToDateTime(false)
		return dt.Cmp(o)
	}
	return 0, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare Date to %s", other.TypeInfo().Name)}
}
func (d Date) TypeInfo() TypeInfo {
	return systemType("Date")
}
func (d Date) format() string {
	switch d.Precision {
	case PrecisionYear:
		return d.Value.Format("2006")
	case PrecisionMonth:
		return d.Value.Format("2006-01")
	}
	return d.Value.Format("2006-01-02")
}
func (d Date) String() string {
	return "@" + d.format()
}

func (t Time) Children(name ...string) Collection {
	return nil
}
func (t Time) ToBoolean(explicit bool) (v Boolean, ok bool, err error) {
	return false, false, conversionError(t, "Boolean")
}
func (t Time) ToString(explicit bool) (v String, ok bool, err error) {
	if explicit {
		return String(t.format()), true, nil
	}
	return "", false, implicitConversionError(t, "String")
}
func (t Time) ToInteger(explicit bool) (v Integer, ok bool, err error) {
	return 0, false, conversionError(t, "Integer")
}
func (t Time) ToDecimal(explicit bool) (v Decimal, ok bool, err error) {
	return Decimal{}, false, conversionError(t, "Decimal")
}
func (t Time) ToDateTime(explicit bool) (v DateTime, ok bool, err error) {
	return DateTime{}, false, conversionError(t, "DateTime")
}
func (t Time) Equal(other Element) (eq bool, ok bool) {
	cmp, ok, err := t.Cmp(other)
	if err != nil {
		return false, true
	}
	return cmp == 0, ok
}
func (t Time) Cmp(other Element) (cmp int, ok bool, err error) {
	o, isTime := other.(Time)
	if !isTime {
		return 0, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare Time to %s", other.TypeInfo().Name)}
	}
	cmp, ok = compareAtPrecision(t.Value, t.Precision, o.Value, o.Precision)
	return cmp, ok, nil
}
func (t Time) TypeInfo() TypeInfo {
	return systemType("Time")
}
func (t Time) format() string {
	return formatClock(t.Value, t.Precision)
}
func (t Time) String() string {
	return "@T" + t.format()
}

func formatClock(t time.Time, p Precision) string {
	switch p {
	case PrecisionHour:
		return t.Format("15")
	case PrecisionMinute:
		return t.Format("15:04")
	case PrecisionSecond:
		return t.Format("15:04:05")
	}
	return t.Format("15:04:05.000")
}

func (dt DateTime) Children(name ...string) Collection {
	return nil
}
func (dt DateTime) ToBoolean(explicit bool) (v Boolean, ok bool, err error) {
	return false, false, conversionError(dt, "Boolean")
}
func (dt DateTime) ToString(explicit bool) (v String, ok bool, err error) {
	if explicit {
		return String(dt.format()), true, nil
	}
	return "", false, implicitConversionError(dt, "String")
}
func (dt DateTime) ToInteger(explicit bool) (v Integer, ok bool, err error) {
	return 0, false, conversionError(dt, "Integer")
}
func (dt DateTime) ToDecimal(explicit bool) (v Decimal, ok bool, err error) {
	return Decimal{}, false, conversionError(dt, "Decimal")
}
func (dt DateTime) ToDateTime(explicit bool) (v DateTime, ok bool, err error) {
	return dt, true, nil
}
func (dt DateTime) Equal(other Element) (eq bool, ok bool) {
	cmp, ok, err := dt.Cmp(other)
	if err != nil {
		return false, true
	}
	return cmp == 0, ok
}
func (dt DateTime) Cmp(other Element) (cmp int, ok bool, err error) {
	var o DateTime
	switch v := other.(type) {
	case DateTime:
		o = v
	case Date:
		o, _, _ = v.ToDateTime(false)
	default:
		return 0, false, &IncompatibleError{Msg: fmt.Sprintf("can not compare DateTime to %s", other.TypeInfo().Name)}
	}
	left, right := dt.Value, o.Value
	if dt.Precision >= PrecisionHour && o.Precision >= PrecisionHour {
		if dt.HasTimeZone != o.HasTimeZone {
			return 0, false, nil
		}
		right = right.In(left.Location())
	}
	cmp, ok = compareAtPrecision(left, dt.Precision, right, o.Precision)
	return cmp, ok, nil
}
func (dt DateTime) TypeInfo() TypeInfo {
	return systemType("DateTime")
}
func (dt DateTime) format() string {
	switch dt.Precision {
	case PrecisionYear, PrecisionMonth, PrecisionDay:
		return Date{Value: dt.Value, Precision: dt.Precision}.format()
	}
	s := dt.Value.Format("2006-01-02") + "T" + formatClock(dt.Value, dt.Precision)
	if dt.HasTimeZone {
		s += dt.Value.Format("Z07:00")
	}
	return s
}
func (dt DateTime) String() string {
	return "@" + dt.format()
}
