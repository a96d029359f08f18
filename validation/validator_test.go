package validation_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/damedic/fhir-r5-go/model"
	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/damedic/fhir-r5-go/testdata"
	"github.com/damedic/fhir-r5-go/utils/ptr"
	"github.com/damedic/fhir-r5-go/validation"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func testContext(t *testing.T) context.Context {
	log := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return log.WithContext(context.Background())
}

func encounterProfile(t *testing.T) r5.StructureDefinition {
	t.Helper()
	profile, err := r5.ParseJSON[r5.StructureDefinition](testdata.Example("structuredefinition-encounter-profile.json"))
	if err != nil {
		t.Fatal(err)
	}
	return profile
}

func encounter(t *testing.T, name string) r5.Encounter {
	t.Helper()
	enc, err := r5.ParseJSON[r5.Encounter](testdata.Example(name))
	if err != nil {
		t.Fatal(err)
	}
	return enc
}

func profile(resourceType string, elements ...r5.ElementDefinition) r5.StructureDefinition {
	return r5.StructureDefinition{
		Url:      &r5.Uri{Value: ptr.To("http://example.org/fhir/StructureDefinition/test")},
		Type:     &r5.Uri{Value: ptr.To(resourceType)},
		Snapshot: &r5.StructureDefinitionSnapshot{Element: elements},
	}
}

func element(path string, min uint32, max string, constraints ...r5.ElementDefinitionConstraint) r5.ElementDefinition {
	return r5.ElementDefinition{
		Path:       &r5.String{Value: ptr.To(path)},
		Min:        &r5.UnsignedInt{Value: ptr.To(min)},
		Max:        &r5.String{Value: ptr.To(max)},
		Constraint: constraints,
	}
}

func constraint(key, severity, human, expression string) r5.ElementDefinitionConstraint {
	return r5.ElementDefinitionConstraint{
		Key:        &r5.Id{Value: ptr.To(key)},
		Severity:   &r5.Code{Value: ptr.To(severity)},
		Human:      &r5.String{Value: ptr.To(human)},
		Expression: &r5.String{Value: ptr.To(expression)},
	}
}

func TestValidateMissingRequiredElement(t *testing.T) {
	outcome, err := validation.Validate(testContext(t), encounter(t, "encounter-missing-class.json"), encounterProfile(t))
	if err != nil {
		t.Fatal(err)
	}

	if len(outcome.Issue) != 1 {
		t.Fatalf("expected exactly one issue, got %d: %v", len(outcome.Issue), outcome.Issue)
	}
	issue := outcome.Issue[0]
	if severity, _ := issue.Severity.Get(); severity != "error" {
		t.Errorf("expected severity error, got %s", severity)
	}
	if code, _ := issue.Code.Get(); code != "required" {
		t.Errorf("expected code required, got %s", code)
	}
	if len(issue.Expression) != 1 || issue.Expression[0].String() != "Encounter.class" {
		t.Errorf("expected expression [Encounter.class], got %v", issue.Expression)
	}
	if diagnostics, _ := issue.Diagnostics.Get(); !strings.Contains(diagnostics, "minimum required = 1") {
		t.Errorf("expected diagnostics to mention the minimum, got %q", diagnostics)
	}
}

func TestValidateValidResource(t *testing.T) {
	outcome, err := validation.Validate(testContext(t), encounter(t, "encounter-example.json"), encounterProfile(t))
	if err != nil {
		t.Fatal(err)
	}

	want := r5.OperationOutcome{
		Issue: []r5.OperationOutcomeIssue{{
			Severity:    &r5.Code{Value: ptr.To("information")},
			Code:        &r5.Code{Value: ptr.To("informational")},
			Diagnostics: &r5.String{Value: ptr.To("No issues detected during validation")},
		}},
	}
	if diff := cmp.Diff(want, outcome); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	status := &r5.Code{Value: ptr.To("in-progress")}
	participants := []r5.EncounterParticipant{
		{Actor: &r5.Reference{Reference: &r5.String{Value: ptr.To("Practitioner/1")}}},
		{Period: &r5.Period{Start: &r5.DateTime{Value: ptr.To("2024-01-01")}}},
	}

	tests := []struct {
		name     string
		resource model.Resource
		profile  r5.StructureDefinition
		opts     []validation.Option
		want     []validation.Issue
	}{
		{
			name:     "maximum cardinality",
			resource: r5.Encounter{Status: status, Participant: participants},
			profile:  profile("Encounter", element("Encounter", 0, "*"), element("Encounter.participant", 0, "1")),
			want: []validation.Issue{{
				Severity:    validation.SeverityError,
				Code:        validation.IssueTypeStructure,
				Diagnostics: "Encounter.participant: maximum allowed = 1, but found 2",
				Expression:  "Encounter.participant",
			}},
		},
		{
			name:     "cardinality per parent occurrence",
			resource: r5.Encounter{Status: status, Participant: participants},
			profile: profile("Encounter",
				element("Encounter", 0, "*"),
				element("Encounter.participant", 0, "*", constraint("enc-1", "error", "A participant needs an actor or a type", "actor.exists() or type.exists()")),
				element("Encounter.participant.actor", 1, "1"),
			),
			want: []validation.Issue{
				{
					Severity:      validation.SeverityError,
					Code:          validation.IssueTypeInvariant,
					Diagnostics:   "Constraint failed: enc-1: 'A participant needs an actor or a type'",
					Expression:    "Encounter.participant[1]",
					ConstraintKey: "enc-1",
				},
				{
					Severity:    validation.SeverityError,
					Code:        validation.IssueTypeRequired,
					Diagnostics: "Encounter.participant[1].actor: minimum required = 1, but only found 0",
					Expression:  "Encounter.participant[1].actor",
				},
			},
		},
		{
			name:     "failing constraint on the root",
			resource: r5.Encounter{Status: status},
			profile: profile("Encounter",
				element("Encounter", 0, "*",
					constraint("enc-2", "error", "Encounter must be finished", "status = 'finished'"),
					constraint("enc-3", "warning", "Encounter should have a subject", "subject.exists()"),
				),
			),
			want: []validation.Issue{
				{
					Severity:      validation.SeverityError,
					Code:          validation.IssueTypeInvariant,
					Diagnostics:   "Constraint failed: enc-2: 'Encounter must be finished'",
					Expression:    "Encounter",
					ConstraintKey: "enc-2",
				},
				{
					Severity:      validation.SeverityWarning,
					Code:          validation.IssueTypeInvariant,
					Diagnostics:   "Constraint failed: enc-3: 'Encounter should have a subject'",
					Expression:    "Encounter",
					ConstraintKey: "enc-3",
				},
			},
		},
		{
			name:     "constraints disabled",
			resource: r5.Encounter{Status: status},
			profile: profile("Encounter",
				element("Encounter", 0, "*", constraint("enc-2", "error", "Encounter must be finished", "status = 'finished'")),
			),
			opts: []validation.Option{validation.WithConstraints(false)},
		},
		{
			name:     "empty result passes",
			resource: r5.Encounter{Status: status},
			profile: profile("Encounter",
				element("Encounter", 0, "*", constraint("enc-4", "error", "Subject must be a patient", "subject.reference.startsWith('Patient/')")),
			),
		},
		{
			name:     "empty element",
			resource: r5.Encounter{Status: status, Class: []r5.CodeableConcept{{}}},
			profile:  profile("Encounter", element("Encounter", 0, "*"), element("Encounter.class", 0, "*")),
			want: []validation.Issue{{
				Severity:      validation.SeverityError,
				Code:          validation.IssueTypeInvariant,
				Diagnostics:   "Constraint failed: ele-1: 'All FHIR elements must have a @value or children'",
				Expression:    "Encounter.class",
				ConstraintKey: "ele-1",
			}},
		},
		{
			name: "extension with value and nested extensions",
			resource: r5.Encounter{
				Status: status,
				Extension: []r5.Extension{{
					Url:       "http://example.org/fhir/StructureDefinition/mixed",
					Value:     r5.String{Value: ptr.To("value")},
					Extension: []r5.Extension{{Url: "nested", Value: r5.Boolean{Value: ptr.To(true)}}},
				}},
			},
			profile: profile("Encounter",
				element("Encounter", 0, "*"),
				element("Encounter.extension", 0, "*", constraint("ext-1", "error", "Must have either extensions or value[x], not both", "extension.exists() != value.exists()")),
			),
			opts: []validation.Option{validation.WithConstraints(false)},
			want: []validation.Issue{{
				Severity:      validation.SeverityError,
				Code:          validation.IssueTypeInvariant,
				Diagnostics:   "Constraint failed: ext-1: 'Must have either extensions or value[x], not both'",
				Expression:    "Encounter.extension",
				ConstraintKey: "ext-1",
			}},
		},
		{
			name:     "unsupported constraint is skipped",
			resource: r5.Encounter{Status: status},
			profile: profile("Encounter",
				element("Encounter", 0, "*", constraint("enc-5", "error", "Unsupported", "status.memberOf('http://example.org/ValueSet/status')")),
			),
		},
		{
			name:     "unsupported constraint is reported",
			resource: r5.Encounter{Status: status},
			profile: profile("Encounter",
				element("Encounter", 0, "*", constraint("enc-5", "error", "Unsupported", "status.memberOf('http://example.org/ValueSet/status')")),
			),
			opts: []validation.Option{validation.WithUnsupportedReport(true)},
			want: []validation.Issue{{
				Severity:      validation.SeverityInformation,
				Code:          validation.IssueTypeNotSupported,
				Diagnostics:   `Constraint enc-5 was not evaluated: function "memberOf" not found`,
				Expression:    "Encounter",
				ConstraintKey: "enc-5",
			}},
		},
		{
			name:     "unknown path is reported leniently",
			resource: r5.Encounter{Status: status},
			profile:  profile("Encounter", element("Encounter", 0, "*"), element("Encounter.colour", 0, "1")),
			opts:     []validation.Option{validation.WithLenientPaths(true)},
			want: []validation.Issue{{
				Severity:    validation.SeverityWarning,
				Code:        validation.IssueTypeNotFound,
				Diagnostics: "unknown element path Encounter.colour: Encounter has no element colour",
				Expression:  "Encounter.colour",
			}},
		},
		{
			name:     "sliced elements are skipped",
			resource: r5.Encounter{Status: status},
			profile: profile("Encounter", element("Encounter", 0, "*"), r5.ElementDefinition{
				Path:      &r5.String{Value: ptr.To("Encounter.class")},
				SliceName: &r5.String{Value: ptr.To("inpatient")},
				Min:       &r5.UnsignedInt{Value: ptr.To(uint32(1))},
				Max:       &r5.String{Value: ptr.To("1")},
			}),
		},
		{
			name: "children of slices are skipped",
			resource: r5.Patient{Extension: []r5.Extension{{
				Url:       "http://example.org/fhir/StructureDefinition/complex",
				Extension: []r5.Extension{{Url: "part", Value: r5.String{Value: ptr.To("a")}}},
			}}},
			profile: profile("Patient",
				element("Patient", 0, "*"),
				element("Patient.extension", 0, "*"),
				r5.ElementDefinition{
					Id:        ptr.To("Patient.extension:race"),
					Path:      &r5.String{Value: ptr.To("Patient.extension")},
					SliceName: &r5.String{Value: ptr.To("race")},
					Min:       &r5.UnsignedInt{Value: ptr.To(uint32(0))},
					Max:       &r5.String{Value: ptr.To("1")},
				},
				r5.ElementDefinition{
					Id:   ptr.To("Patient.extension:race.value[x]"),
					Path: &r5.String{Value: ptr.To("Patient.extension.value[x]")},
					Min:  &r5.UnsignedInt{Value: ptr.To(uint32(1))},
					Max:  &r5.String{Value: ptr.To("1")},
				},
			),
		},
		{
			name: "element ids have a value",
			resource: r5.Encounter{Status: status, Participant: []r5.EncounterParticipant{{
				Id:    ptr.To("p1"),
				Actor: &r5.Reference{Reference: &r5.String{Value: ptr.To("Practitioner/1")}},
			}}},
			profile: profile("Encounter",
				element("Encounter", 0, "*"),
				element("Encounter.participant", 0, "*"),
				element("Encounter.participant.id", 0, "1"),
			),
		},
		{
			name: "extension urls have a value",
			resource: r5.Encounter{Status: status, Extension: []r5.Extension{{
				Url:   "http://example.org/fhir/StructureDefinition/flag",
				Value: r5.Boolean{Value: ptr.To(true)},
			}}},
			profile: profile("Encounter",
				element("Encounter", 0, "*"),
				element("Encounter.extension", 0, "*"),
				element("Encounter.extension.url", 1, "1"),
			),
		},
		{
			name: "type suffixed choice",
			resource: r5.Observation{
				Status: &r5.Code{Value: ptr.To("final")},
				Value:  r5.Quantity{Unit: &r5.String{Value: ptr.To("mg")}},
			},
			profile: profile("Observation",
				element("Observation", 0, "*"),
				element("Observation.valueQuantity", 0, "1"),
				element("Observation.valueQuantity.value", 1, "1"),
			),
			want: []validation.Issue{{
				Severity:    validation.SeverityError,
				Code:        validation.IssueTypeRequired,
				Diagnostics: "Observation.valueQuantity.value: minimum required = 1, but only found 0",
				Expression:  "Observation.valueQuantity.value",
			}},
		},
		{
			name: "type suffixed choice of another type",
			resource: r5.Observation{
				Status: &r5.Code{Value: ptr.To("final")},
				Value:  r5.String{Value: ptr.To("negative")},
			},
			profile: profile("Observation",
				element("Observation", 0, "*"),
				element("Observation.valueQuantity", 0, "1"),
				element("Observation.valueQuantity.value", 1, "1"),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := validation.New(tt.opts...).Check(testContext(t), tt.resource, tt.profile)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, issues); diff != "" {
				t.Errorf("issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckErrors(t *testing.T) {
	enc := r5.Encounter{Status: &r5.Code{Value: ptr.To("planned")}}

	t.Run("profile mismatch", func(t *testing.T) {
		patient, err := r5.ParseJSON[r5.Patient](testdata.Example("patient-example.json"))
		if err != nil {
			t.Fatal(err)
		}
		_, err = validation.Validate(testContext(t), patient, encounterProfile(t))
		if !errors.Is(err, validation.ErrProfileMismatch) {
			t.Fatalf("expected ErrProfileMismatch, got %v", err)
		}
		var mismatch *validation.ProfileMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected ProfileMismatchError, got %T", err)
		}
		want := &validation.ProfileMismatchError{ProfileType: "Encounter", ResourceType: "Patient"}
		if diff := cmp.Diff(want, mismatch); diff != "" {
			t.Errorf("error mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no snapshot", func(t *testing.T) {
		p := encounterProfile(t)
		p.Snapshot = nil
		if _, err := validation.Validate(testContext(t), enc, p); !errors.Is(err, validation.ErrNoSnapshot) {
			t.Errorf("expected ErrNoSnapshot, got %v", err)
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		p := profile("Encounter", element("Encounter", 0, "*"), element("Encounter.status.colour", 0, "1"))
		_, err := validation.Validate(testContext(t), enc, p)
		if !errors.Is(err, validation.ErrUnknownPath) {
			t.Fatalf("expected ErrUnknownPath, got %v", err)
		}
		var unknown *validation.UnknownPathError
		if !errors.As(err, &unknown) || unknown.Path != "Encounter.status.colour" {
			t.Errorf("expected path Encounter.status.colour, got %v", err)
		}
	})

	t.Run("unknown resource type", func(t *testing.T) {
		p := profile("Encounter", element("Encountre.status", 1, "1"))
		if _, err := validation.Validate(testContext(t), enc, p); !errors.Is(err, validation.ErrUnknownPath) {
			t.Errorf("expected ErrUnknownPath, got %v", err)
		}
	})
}

func TestValidatorIsReusable(t *testing.T) {
	ctx := testContext(t)
	v := validation.New()
	p := encounterProfile(t)
	resources := []r5.Encounter{
		encounter(t, "encounter-example.json"),
		encounter(t, "encounter-missing-class.json"),
	}

	var wg sync.WaitGroup
	results := make([][]validation.Issue, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = v.Check(ctx, resources[i%2], p)
		}()
	}
	wg.Wait()

	for i := range results {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		if diff := cmp.Diff(results[i%2], results[i]); diff != "" {
			t.Errorf("run %d differs (-want +got):\n%s", i, diff)
		}
	}
	if len(results[0]) != 0 || len(results[1]) != 1 {
		t.Errorf("expected 0 and 1 issues, got %d and %d", len(results[0]), len(results[1]))
	}
}

func TestOutcome(t *testing.T) {
	issues := []validation.Issue{
		{
			Severity:      validation.SeverityWarning,
			Code:          validation.IssueTypeInvariant,
			Diagnostics:   "Constraint failed: enc-3: 'Encounter should have a subject'",
			Expression:    "Encounter",
			ConstraintKey: "enc-3",
		},
		{Severity: validation.SeverityError, Code: validation.IssueTypeRequired},
	}

	want := r5.OperationOutcome{
		Issue: []r5.OperationOutcomeIssue{
			{
				Severity:    &r5.Code{Value: ptr.To("warning")},
				Code:        &r5.Code{Value: ptr.To("invariant")},
				Diagnostics: &r5.String{Value: ptr.To("Constraint failed: enc-3: 'Encounter should have a subject'")},
				Expression:  []r5.String{{Value: ptr.To("Encounter")}},
			},
			{
				Severity: &r5.Code{Value: ptr.To("error")},
				Code:     &r5.Code{Value: ptr.To("required")},
			},
		},
	}
	if diff := cmp.Diff(want, validation.Outcome(issues)); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}

	if !issues[1].IsError() || issues[0].IsError() {
		t.Error("expected only the second issue to be an error")
	}
	if got := issues[0].String(); got != "warning: Constraint failed: enc-3: 'Encounter should have a subject' at Encounter" {
		t.Errorf("unexpected string %q", got)
	}
}
