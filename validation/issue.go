package validation

import (
	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/damedic/fhir-r5-go/utils/ptr"
)

// Severity maps to OperationOutcome.issue.severity.
type Severity string

const (
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityInformation Severity = "information"
)

// IssueType maps to OperationOutcome.issue.code.
type IssueType string

const (
	// IssueTypeRequired is used for elements below their minimum cardinality.
	IssueTypeRequired IssueType = "required"
	// IssueTypeStructure is used for elements above their maximum cardinality.
	IssueTypeStructure     IssueType = "structure"
	IssueTypeInvariant     IssueType = "invariant"
	IssueTypeNotSupported  IssueType = "not-supported"
	IssueTypeNotFound      IssueType = "not-found"
	IssueTypeInformational IssueType = "informational"
)

// Issue is a single finding of a validation run.
type Issue struct {
	Severity    Severity
	Code        IssueType
	Diagnostics string
	// Expression is the FHIRPath expression of the element the issue is about.
	Expression string
	// ConstraintKey is set for constraint violations, like ele-1.
	ConstraintKey string
}

func (i Issue) IsError() bool {
	return i.Severity == SeverityError
}

func (i Issue) String() string {
	s := string(i.Severity) + ": " + i.Diagnostics
	if i.Expression != "" {
		s += " at " + i.Expression
	}
	return s
}

func (i Issue) outcomeIssue() r5.OperationOutcomeIssue {
	issue := r5.OperationOutcomeIssue{
		Severity: &r5.Code{Value: ptr.To(string(i.Severity))},
		Code:     &r5.Code{Value: ptr.To(string(i.Code))},
	}
	if i.Diagnostics != "" {
		issue.Diagnostics = &r5.String{Value: ptr.To(i.Diagnostics)}
	}
	if i.Expression != "" {
		issue.Expression = []r5.String{{Value: ptr.To(i.Expression)}}
	}
	return issue
}

// Outcome converts issues to an OperationOutcome.
// Without issues, a single informational issue is reported, because OperationOutcome requires one.
func Outcome(issues []Issue) r5.OperationOutcome {
	if len(issues) == 0 {
		issues = []Issue{{
			Severity:    SeverityInformation,
			Code:        IssueTypeInformational,
			Diagnostics: "No issues detected during validation",
		}}
	}
	var outcome r5.OperationOutcome
	for _, i := range issues {
		outcome.Issue = append(outcome.Issue, i.outcomeIssue())
	}
	return outcome
}
