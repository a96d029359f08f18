package fhirpath_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/damedic/fhir-r5-go/testdata"
	"github.com/damedic/fhir-r5-go/testdata/assert"
	"github.com/damedic/fhir-r5-go/utils/ptr"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

// runFHIRPathTest executes a single FHIRPath test and validates the result
func runFHIRPathTest(t *testing.T, ctx context.Context, test testdata.FHIRPathTest) {
	source := strings.TrimSpace(test.Expression.Expression)
	invalid := test.Expression.Invalid

	expr, err := fhirpath.Parse(source)
	if invalid == "syntax" {
		if !errors.Is(err, fhirpath.ErrParse) {
			t.Fatalf("expected syntax error for %q, got %v", source, err)
		}
		return
	}
	if err != nil {
		t.Fatalf("unexpected error parsing expression: %v", err)
	}

	result, err := fhirpath.Evaluate(ctx, test.InputResource, expr)
	if invalid != "" {
		if err == nil {
			t.Fatalf("expected %s error for %q, got %v", invalid, source, result)
		}
		return
	}
	if err != nil {
		t.Fatalf("unexpected error evaluating expression: %v", err)
	}

	if test.Predicate {
		v, ok, err := fhirpath.Singleton[fhirpath.Boolean](result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result = fhirpath.Collection{v && fhirpath.Boolean(ok)}
	}

	expected, err := test.OutputCollection()
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("expression: %s\n  expected: %s\n  actual: %s", source, expected, result)
	assert.FHIRPathEqual(t, expected, result)
}

func TestFHIRPathTestSuite(t *testing.T) {
	tests := testdata.GetFHIRPathTests()

	for _, group := range tests.Groups {
		name := group.Name
		if group.Description != "" {
			name = fmt.Sprintf("%s (%s)", name, group.Description)
		}

		t.Run(name, func(t *testing.T) {
			for _, test := range group.Tests {
				t.Run(test.Name, func(t *testing.T) {
					runFHIRPathTest(t, testContext(t), test)
				})
			}
		})
	}
}

func patient(t *testing.T) *r5.Patient {
	t.Helper()
	p, err := r5.ParseJSON[r5.Patient](testdata.Example("patient-example.json"))
	if err != nil {
		t.Fatal(err)
	}
	return &p
}

func TestPath(t *testing.T) {
	p := patient(t)

	tests := []struct {
		name    string
		expr    string
		want    fhirpath.Collection
		wantErr error
	}{
		{
			name: "given names of all names",
			expr: "Patient.name.given",
			want: fhirpath.Collection{
				fhirpath.String("Peter"), fhirpath.String("James"),
				fhirpath.String("Jim"), fhirpath.String("Jimmy"), fhirpath.String("J"),
				fhirpath.String("Peter"), fhirpath.String("James"),
			},
		},
		{
			name: "indexed name",
			expr: "Patient.name[2].given",
			want: fhirpath.Collection{fhirpath.String("Peter"), fhirpath.String("James")},
		},
		{
			name: "index out of range",
			expr: "Patient.name[3].given",
			want: nil,
		},
		{
			name: "relative path",
			expr: "name.where(use = 'official').family",
			want: fhirpath.Collection{fhirpath.String("Chalmers")},
		},
		{
			name: "extension of primitive",
			expr: "Patient.birthDate.extension.url",
			want: fhirpath.Collection{fhirpath.String("http://hl7.org/fhir/StructureDefinition/patient-birthTime")},
		},
		{
			name:    "wrong root",
			expr:    "Observation.status",
			wantErr: fhirpath.ErrRootMismatch,
		},
		{
			name:    "comparison",
			expr:    "Patient.active = true",
			wantErr: fhirpath.ErrNotAPathExpression,
		},
		{
			name:    "unknown field",
			expr:    "Patient.name.nickname",
			wantErr: fhirpath.ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fhirpath.Path(testContext(t), p, fhirpath.MustParse(tt.expr))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			assert.FHIRPathEqual(t, tt.want, got)
		})
	}
}

func TestPathRootMismatchError(t *testing.T) {
	_, err := fhirpath.Path(context.Background(), patient(t), fhirpath.MustParse("Encounter.status"))

	var mismatch *fhirpath.RootMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected RootMismatchError, got %v", err)
	}
	want := fhirpath.RootMismatchError{Expected: "Encounter", Actual: "Patient"}
	if diff := cmp.Diff(want, *mismatch); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAssert(t *testing.T) {
	p := patient(t)

	tests := []struct {
		name    string
		expr    string
		want    bool
		wantErr error
	}{
		{name: "exists", expr: "Patient.name.exists()", want: true},
		{name: "comparison", expr: "Patient.gender = 'female'", want: false},
		{name: "counting", expr: "Patient.name.given.count() = 7", want: true},
		{name: "counting indexed", expr: "Patient.name[2].given.count() = 2", want: true},
		{name: "implies", expr: "Patient.active implies Patient.name.exists()", want: true},
		{name: "empty is false", expr: "Patient.name.suffix = 'Jr'", want: false},
		{name: "logic", expr: "Patient.active and Patient.deceased.not()", want: true},
		{name: "not boolean", expr: "Patient.name.given", wantErr: fhirpath.ErrNotABoolean},
		{name: "wrong root", expr: "Encounter.status.exists()", wantErr: fhirpath.ErrRootMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fhirpath.Assert(testContext(t), p, fhirpath.MustParse(tt.expr))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	ctx := testContext(t)
	p := patient(t)
	expr := fhirpath.MustParse("name.given.where(startsWith('J')) | telecom.value")

	first, err := fhirpath.Evaluate(ctx, p, expr)
	if err != nil {
		t.Fatal(err)
	}
	for range 10 {
		again, err := fhirpath.Evaluate(ctx, p, expr)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first.String(), again.String()); diff != "" {
			t.Fatalf("result changed (-first +again):\n%s", diff)
		}
	}
}

// count(), empty() and exists() agree with each other for every collection.
func TestCountEmptyExists(t *testing.T) {
	p := patient(t)

	for _, path := range []string{"name", "name.given", "name.suffix", "telecom", "photo", "birthDate.extension"} {
		t.Run(path, func(t *testing.T) {
			ctx := testContext(t)
			items, err := fhirpath.Evaluate(ctx, p, fhirpath.MustParse(path))
			if err != nil {
				t.Fatal(err)
			}

			checks := map[string]fhirpath.Element{
				path + ".count()":  fhirpath.Integer(len(items)),
				path + ".empty()":  fhirpath.Boolean(len(items) == 0),
				path + ".exists()": fhirpath.Boolean(len(items) > 0),
			}
			for expr, want := range checks {
				got, err := fhirpath.Evaluate(ctx, p, fhirpath.MustParse(expr))
				if err != nil {
					t.Fatal(err)
				}
				assert.FHIRPathEqual(t, fhirpath.Collection{want}, got)
			}
		})
	}
}

func TestEnvironmentVariables(t *testing.T) {
	p := patient(t)
	ctx := fhirpath.WithEnv(testContext(t), "threshold", fhirpath.Integer(3))

	tests := []struct {
		expr string
		want fhirpath.Collection
	}{
		{expr: "name.given.count() > %threshold", want: fhirpath.Collection{fhirpath.Boolean(true)}},
		{expr: "%resource.id", want: fhirpath.Collection{fhirpath.String("example")}},
		{expr: "name.first().given.select(%context.id)", want: fhirpath.Collection{fhirpath.String("example"), fhirpath.String("example")}},
		{expr: "%loinc", want: fhirpath.Collection{fhirpath.String("http://loinc.org")}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := fhirpath.Evaluate(ctx, p, fhirpath.MustParse(tt.expr))
			if err != nil {
				t.Fatal(err)
			}
			assert.FHIRPathEqual(t, tt.want, got)
		})
	}

	_, err := fhirpath.Evaluate(ctx, p, fhirpath.MustParse("%undefined"))
	if err == nil {
		t.Error("expected error for undefined variable")
	}
}

type recordingTracer struct {
	traces map[string]string
}

func (r *recordingTracer) Log(_ context.Context, name string, c fhirpath.Collection) error {
	r.traces[name] = c.String()
	return nil
}

func TestTrace(t *testing.T) {
	tracer := &recordingTracer{traces: map[string]string{}}
	ctx := fhirpath.WithTracer(testContext(t), tracer)

	got, err := fhirpath.Evaluate(ctx, patient(t), fhirpath.MustParse("name.trace('names', family).given.first()"))
	if err != nil {
		t.Fatal(err)
	}
	assert.FHIRPathEqual(t, fhirpath.Collection{fhirpath.String("Peter")}, got)

	want := map[string]string{"names": "{ Chalmers, Windsor }"}
	if diff := cmp.Diff(want, tracer.traces); diff != "" {
		t.Errorf("traces mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomFunctions(t *testing.T) {
	ctx := fhirpath.WithFunctions(testContext(t), fhirpath.Functions{
		"initials": func(ctx context.Context, target fhirpath.Collection, parameters []fhirpath.Node, evaluate fhirpath.EvaluateFunc) (fhirpath.Collection, error) {
			var b strings.Builder
			for _, e := range target {
				s, _, err := fhirpath.Singleton[fhirpath.String](fhirpath.Collection{e})
				if err != nil {
					return nil, err
				}
				if s != "" {
					b.WriteByte(s[0])
				}
			}
			return fhirpath.Collection{fhirpath.String(b.String())}, nil
		},
	})

	got, err := fhirpath.Evaluate(ctx, patient(t), fhirpath.MustParse("name.first().given.initials()"))
	if err != nil {
		t.Fatal(err)
	}
	assert.FHIRPathEqual(t, fhirpath.Collection{fhirpath.String("PJ")}, got)

	// defaults are still available
	got, err = fhirpath.Evaluate(ctx, patient(t), fhirpath.MustParse("name.count()"))
	if err != nil {
		t.Fatal(err)
	}
	assert.FHIRPathEqual(t, fhirpath.Collection{fhirpath.Integer(3)}, got)
}

func TestFunctionErrorsNameFunction(t *testing.T) {
	_, err := fhirpath.Evaluate(testContext(t), patient(t), fhirpath.MustParse("name.given.single()"))
	if err == nil || !strings.HasPrefix(err.Error(), "single(): ") {
		t.Errorf("expected error prefixed with function name, got %v", err)
	}

	_, err = fhirpath.Evaluate(testContext(t), patient(t), fhirpath.MustParse("name.foo()"))
	if !errors.Is(err, fhirpath.ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}
}

func TestEvaluateOnModelValues(t *testing.T) {
	name := r5.HumanName{
		Family: &r5.String{Value: ptr.To("Doe")},
		Given: []r5.String{
			{Value: ptr.To("John")},
			{Extension: []r5.Extension{{Url: "http://example.org/absent", Value: r5.Code{Value: ptr.To("unknown")}}}},
		},
	}

	tests := []struct {
		expr string
		want fhirpath.Collection
	}{
		{expr: "given.count()", want: fhirpath.Collection{fhirpath.Integer(2)}},
		{expr: "given.where(hasValue()).count()", want: fhirpath.Collection{fhirpath.Integer(1)}},
		{expr: "given.extension.value", want: fhirpath.Collection{fhirpath.String("unknown")}},
		{expr: "family & ', ' & given.first()", want: fhirpath.Collection{fhirpath.String("Doe, John")}},
		{expr: "HumanName.family", want: fhirpath.Collection{fhirpath.String("Doe")}},
		{expr: "Patient.family", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := fhirpath.Evaluate(testContext(t), name, fhirpath.MustParse(tt.expr))
			if err != nil {
				t.Fatal(err)
			}
			assert.FHIRPathEqual(t, tt.want, got)
		})
	}
}
