package fhirpath

import (
	"context"
	"errors"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
)

func evalString(t *testing.T, ctx context.Context, expr string) Collection {
	t.Helper()
	result, err := Evaluate(ctx, String(""), MustParse(expr))
	if err != nil {
		t.Fatalf("evaluating %s: %v", expr, err)
	}
	return result
}

func TestThreeValuedLogic(t *testing.T) {
	var (
		T = Collection{Boolean(true)}
		F = Collection{Boolean(false)}
		E = Collection{}
	)
	tests := []struct {
		op          Op
		left, right Collection
		want        Collection
	}{
		{OpAnd, T, T, T}, {OpAnd, T, F, F}, {OpAnd, T, E, nil},
		{OpAnd, F, T, F}, {OpAnd, F, F, F}, {OpAnd, F, E, F},
		{OpAnd, E, T, nil}, {OpAnd, E, F, F}, {OpAnd, E, E, nil},

		{OpOr, T, T, T}, {OpOr, T, F, T}, {OpOr, T, E, T},
		{OpOr, F, T, T}, {OpOr, F, F, F}, {OpOr, F, E, nil},
		{OpOr, E, T, T}, {OpOr, E, F, nil}, {OpOr, E, E, nil},

		{OpXor, T, T, F}, {OpXor, T, F, T}, {OpXor, T, E, nil},
		{OpXor, F, T, T}, {OpXor, F, F, F}, {OpXor, F, E, nil},
		{OpXor, E, T, nil}, {OpXor, E, F, nil}, {OpXor, E, E, nil},

		{OpImplies, T, T, T}, {OpImplies, T, F, F}, {OpImplies, T, E, nil},
		{OpImplies, F, T, T}, {OpImplies, F, F, T}, {OpImplies, F, E, T},
		{OpImplies, E, T, T}, {OpImplies, E, F, nil}, {OpImplies, E, E, nil},
	}

	for _, tt := range tests {
		t.Run(tt.left.String()+" "+string(tt.op)+" "+tt.right.String(), func(t *testing.T) {
			got, err := evalLogic(tt.op, tt.left, tt.right)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLogicRejectsCollections(t *testing.T) {
	_, err := evalLogic(OpAnd, Collection{Boolean(true), Boolean(true)}, Collection{Boolean(true)})
	if !errors.Is(err, ErrIncompatible) {
		t.Errorf("expected ErrIncompatible, got %v", err)
	}
}

func TestOperators(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		expr string
		want Collection
	}{
		{expr: "2147483647 + 1", want: nil},
		{expr: "-2147483647 - 2", want: nil},
		{expr: "3 * 4", want: Collection{Integer(12)}},
		{expr: "1 / 4", want: Collection{Decimal{Value: apd.New(25, -2)}}},
		{expr: "1.5 + 1", want: Collection{Decimal{Value: apd.New(25, -1)}}},
		{expr: "'a' + 'b'", want: Collection{String("ab")}},
		{expr: "1 = 1.0", want: Collection{Boolean(true)}},
		{expr: "1 != 2", want: Collection{Boolean(true)}},
		{expr: "'a' < 'b'", want: Collection{Boolean(true)}},
		{expr: "2 >= 2.0", want: Collection{Boolean(true)}},
		{expr: "@2024-01-01 = @2024-01-01", want: Collection{Boolean(true)}},
		{expr: "@2024-01 = @2024-01-15", want: nil},
		{expr: "@2024-01 < @2024-02-15", want: Collection{Boolean(true)}},
		{expr: "@2024-01-01T10:00:00+01:00 = @2024-01-01T09:00:00Z", want: Collection{Boolean(true)}},
		{expr: "@2024-01-01T10:00:00 = @2024-01-01T10:00:00Z", want: nil},
		{expr: "@T10:00 < @T10:00:01", want: nil},
		{expr: "(1 | 2) = (1 | 2)", want: Collection{Boolean(true)}},
		{expr: "(1 | 2) = (2 | 1)", want: Collection{Boolean(false)}},
		{expr: "(1 | 2 | 2).count()", want: Collection{Integer(2)}},
		{expr: "(1 | 2).combine(2).count()", want: Collection{Integer(3)}},
		{expr: "1 is Integer", want: Collection{Boolean(true)}},
		{expr: "1 is System.Decimal", want: Collection{Boolean(false)}},
		{expr: "(1 as Integer) + 1", want: Collection{Integer(2)}},
		{expr: "'x' as Integer", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got := evalString(t, ctx, tt.expr)
			eq, ok, err := tt.want.Equal(got)
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if err != nil || !ok || !eq {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOperatorErrors(t *testing.T) {
	tests := []string{
		"1 + 'a'",
		"'a' - 'b'",
		"(1 | 2) + 1",
		"1 = 'a'",
		"1 < true",
		"(1 | 2) < 3",
		"(1 | 2) is Integer",
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Evaluate(context.Background(), String(""), MustParse(expr))
			if !errors.Is(err, ErrIncompatible) {
				t.Errorf("expected ErrIncompatible, got %v", err)
			}
		})
	}
}

func TestDecimalPrecision(t *testing.T) {
	ctx := WithAPDContext(context.Background(), apd.BaseContext.WithPrecision(4))

	got := evalString(t, ctx, "1 / 3")
	want := Collection{Decimal{Value: apd.New(3333, -4)}}
	if eq, ok, err := want.Equal(got); err != nil || !ok || !eq {
		t.Errorf("expected %v, got %v", want, got)
	}

	got = evalString(t, context.Background(), "1 / 3 * 3")
	d, _, err := Singleton[Decimal](got)
	if err != nil {
		t.Fatal(err)
	}
	if d.Value.Cmp(apd.New(1, 0)) == 0 {
		t.Errorf("expected rounding error with finite precision, got %v", d)
	}
}

func TestCollection(t *testing.T) {
	a := Collection{Integer(1), String("a"), Boolean(true)}

	t.Run("union removes duplicates", func(t *testing.T) {
		got := a.Union(Collection{Integer(1), String("b")})
		want := Collection{Integer(1), String("a"), Boolean(true), String("b")}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("combine keeps duplicates", func(t *testing.T) {
		got := a.Combine(Collection{Integer(1)})
		want := Collection{Integer(1), String("a"), Boolean(true), Integer(1)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("string", func(t *testing.T) {
		if got := a.String(); got != "{ 1, 'a', true }" {
			t.Errorf("unexpected %s", got)
		}
		if got := (Collection{}).String(); got != "{ }" {
			t.Errorf("unexpected %s", got)
		}
	})

	t.Run("equal with empty is unknown", func(t *testing.T) {
		_, ok, err := a.Equal(nil)
		if ok || err != nil {
			t.Errorf("expected unknown result, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("equal with different length", func(t *testing.T) {
		eq, ok, err := a.Equal(a[:2])
		if eq || !ok || err != nil {
			t.Errorf("expected false, got eq=%v ok=%v err=%v", eq, ok, err)
		}
	})
}

func TestSingleton(t *testing.T) {
	if _, ok, err := Singleton[String](nil); ok || err != nil {
		t.Errorf("expected empty result, got ok=%v err=%v", ok, err)
	}

	if _, _, err := Singleton[String](Collection{String("a"), String("b")}); !errors.Is(err, ErrIncompatible) {
		t.Errorf("expected ErrIncompatible, got %v", err)
	}

	i, ok, err := Singleton[Integer](Collection{Integer(3)})
	if err != nil || !ok || i != 3 {
		t.Errorf("expected 3, got %v ok=%v err=%v", i, ok, err)
	}

	d, ok, err := Singleton[Decimal](Collection{Integer(3)})
	if err != nil || !ok || d.Value.Cmp(apd.New(3, 0)) != 0 {
		t.Errorf("expected implicit conversion to 3, got %v ok=%v err=%v", d, ok, err)
	}

	if _, _, err := Singleton[Integer](Collection{String("3")}); !errors.Is(err, ErrIncompatible) {
		t.Errorf("expected no implicit conversion from String, got %v", err)
	}
}

func TestParseTemporal(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		precision Precision
	}{
		{input: "2024", want: "@2024", precision: PrecisionYear},
		{input: "2024-03", want: "@2024-03", precision: PrecisionMonth},
		{input: "2024-03-15", want: "@2024-03-15", precision: PrecisionDay},
		{input: "2024-03-15T10", want: "@2024-03-15T10", precision: PrecisionHour},
		{input: "2024-03-15T10:30:00.250+02:00", want: "@2024-03-15T10:30:00.250+02:00", precision: PrecisionMillisecond},
		{input: "@2024-03-15T10:30Z", want: "@2024-03-15T10:30Z", precision: PrecisionMinute},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dt, err := ParseDateTime(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if dt.String() != tt.want || dt.Precision != tt.precision {
				t.Errorf("expected %s (%d), got %s (%d)", tt.want, tt.precision, dt, dt.Precision)
			}
		})
	}

	for _, invalid := range []string{"2024-1", "24-01-01", "2024-01T10:00", "2024-01-01T25:00"} {
		if _, err := ParseDateTime(invalid); err == nil {
			t.Errorf("expected error for %q", invalid)
		}
	}
	if _, err := ParseTime("10:61"); err == nil {
		t.Error("expected error for invalid minute")
	}
}
