package rest

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/damedic/fhir-r5-go/utils/ptr"
)

// OutcomeError is an error reported to or by a FHIR server as OperationOutcome.
type OutcomeError struct {
	// Status is the HTTP status code. Zero derives it from the issues.
	Status  int
	Outcome r5.OperationOutcome
}

func (e *OutcomeError) Error() string {
	var msgs []string
	for _, issue := range e.Outcome.Issue {
		var msg string
		if issue.Code != nil {
			msg, _ = issue.Code.Get()
		}
		if issue.Diagnostics != nil {
			if d, ok := issue.Diagnostics.Get(); ok {
				msg += ": " + d
			}
		}
		msgs = append(msgs, msg)
	}
	return "operation outcome: " + strings.Join(msgs, "; ")
}

func singleIssue(severity, code, diagnostics string) r5.OperationOutcome {
	return r5.OperationOutcome{
		Issue: []r5.OperationOutcomeIssue{{
			Severity:    &r5.Code{Value: ptr.To(severity)},
			Code:        &r5.Code{Value: ptr.To(code)},
			Diagnostics: &r5.String{Value: ptr.To(diagnostics)},
		}},
	}
}

func outcomeError(severity, code, diagnostics string) error {
	return &OutcomeError{Outcome: singleIssue(severity, code, diagnostics)}
}

func errToOperationOutcome(err error) (int, r5.OperationOutcome) {
	var oe *OutcomeError
	if errors.As(err, &oe) {
		if oe.Status != 0 {
			return oe.Status, oe.Outcome
		}
		return toHTTPErrorStatus(oe.Outcome), oe.Outcome
	}

	return http.StatusInternalServerError, singleIssue("fatal", "exception", err.Error())
}

var issueCodeToHTTPStatus = map[string]int{
	"invalid":       http.StatusBadRequest,
	"structure":     http.StatusBadRequest,
	"required":      http.StatusBadRequest,
	"value":         http.StatusBadRequest,
	"invariant":     http.StatusBadRequest,
	"processing":    http.StatusBadRequest,
	"not-supported": http.StatusNotImplemented,
	"not-found":     http.StatusNotFound,
	"too-long":      http.StatusRequestEntityTooLarge,
	"exception":     http.StatusInternalServerError,
	"timeout":       http.StatusGatewayTimeout,
}

func toHTTPErrorStatus(outcome r5.OperationOutcome) int {
	// define severity levels in order of highest to lowest
	severityRank := map[string]int{
		"fatal":       3,
		"error":       2,
		"warning":     1,
		"information": 0,
	}

	highestSeverity := -1
	// start with 400, only errors and warnings end up here
	highestStatusCodes := []int{http.StatusBadRequest}

	for _, issue := range outcome.Children("issue") {
		severity, ok, err := fhirpath.Singleton[fhirpath.String](issue.Children("severity"))
		if err != nil || !ok {
			continue
		}
		code, ok, err := fhirpath.Singleton[fhirpath.String](issue.Children("code"))
		if err != nil || !ok {
			continue
		}

		severityValue, ok := severityRank[string(severity)]
		if !ok {
			continue
		}
		statusCode, ok := issueCodeToHTTPStatus[string(code)]
		if !ok {
			continue
		}

		if severityValue > highestSeverity {
			highestSeverity = severityValue
			highestStatusCodes = []int{statusCode}
		} else if severityValue == highestSeverity {
			highestStatusCodes = append(highestStatusCodes, statusCode)
		}
	}

	if len(highestStatusCodes) == 1 {
		return highestStatusCodes[0]
	}
	return (slices.Max(highestStatusCodes) / 100) * 100
}
