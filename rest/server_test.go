package rest_test

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/damedic/fhir-r5-go/rest"
	"github.com/damedic/fhir-r5-go/testdata"
	"github.com/damedic/fhir-r5-go/testdata/assert"
	"github.com/damedic/fhir-r5-go/utils/ptr"
	"github.com/rs/zerolog"
)

const encounterProfileURL = "http://example.org/fhir/StructureDefinition/encounter-profile"

const noIssues = `{"resourceType":"OperationOutcome","issue":[{"severity":"information","code":"informational","diagnostics":"No issues detected during validation"}]}`

func testServer(t *testing.T) *rest.Server {
	t.Helper()
	profile, err := r5.ParseJSON[r5.StructureDefinition](testdata.Example("structuredefinition-encounter-profile.json"))
	if err != nil {
		t.Fatal(err)
	}
	return &rest.Server{Profiles: rest.NewProfiles(profile)}
}

func testRequest(t *testing.T, method, target, contentType, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	log := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return req.WithContext(log.WithContext(req.Context()))
}

func serve(t *testing.T, server http.Handler, req *http.Request) (int, http.Header, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatal(err)
	}
	return rec.Code, rec.Result().Header, string(body)
}

func issueCodes(t *testing.T, body string) []string {
	t.Helper()
	outcome, err := r5.ParseJSON[r5.OperationOutcome]([]byte(body))
	if err != nil {
		t.Fatalf("response is no OperationOutcome: %v\n%s", err, body)
	}
	var codes []string
	for _, issue := range outcome.Issue {
		code, _ := issue.Code.Get()
		codes = append(codes, code)
	}
	return codes
}

func TestValidate(t *testing.T) {
	valid := string(testdata.Example("encounter-example.json"))
	missingClass := string(testdata.Example("encounter-missing-class.json"))

	tests := []struct {
		name         string
		target       string
		contentType  string
		body         string
		expectedBody string
		expectedCode string
	}{
		{
			name:         "valid resource",
			target:       "/Encounter/$validate?profile=" + encounterProfileURL,
			contentType:  "application/fhir+json",
			body:         valid,
			expectedBody: noIssues,
		},
		{
			name:         "content type with charset",
			target:       "/Encounter/$validate?profile=" + encounterProfileURL,
			contentType:  "application/fhir+json; charset=utf-8",
			body:         valid,
			expectedBody: noIssues,
		},
		{
			name:         "missing required element",
			target:       "/Encounter/$validate?profile=" + encounterProfileURL,
			contentType:  "application/json",
			body:         missingClass,
			expectedCode: "required",
		},
		{
			name:        "system level with parameters",
			target:      "/$validate",
			contentType: "application/fhir+json",
			body: `{"resourceType":"Parameters","parameter":[` +
				`{"name":"resource","resource":` + missingClass + `},` +
				`{"name":"profile","valueCanonical":"` + encounterProfileURL + `"}]}`,
			expectedCode: "required",
		},
		{
			name:         "profile from meta",
			target:       "/Encounter/$validate",
			contentType:  "application/fhir+json",
			body:         `{"resourceType":"Encounter","meta":{"profile":["` + encounterProfileURL + `"]},"status":"planned","class":[{"text":"ambulatory"}],"subject":{"reference":"Patient/example"}}`,
			expectedBody: noIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, header, body := serve(t, testServer(t), testRequest(t, http.MethodPost, tt.target, tt.contentType, tt.body))
			if status != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", status, body)
			}
			if ct := header.Get("Content-Type"); ct != "application/fhir+json" {
				t.Errorf("expected content type application/fhir+json, got %s", ct)
			}
			if tt.expectedBody != "" {
				assert.JSONEqual(t, tt.expectedBody, body)
			}
			if tt.expectedCode != "" {
				codes := issueCodes(t, body)
				if len(codes) != 1 || codes[0] != tt.expectedCode {
					t.Errorf("expected a single %s issue, got %v", tt.expectedCode, codes)
				}
			}
		})
	}
}

func TestValidateXML(t *testing.T) {
	enc, err := r5.ParseJSON[r5.Encounter](testdata.Example("encounter-example.json"))
	if err != nil {
		t.Fatal(err)
	}
	in, err := r5.EmitXML(enc, false)
	if err != nil {
		t.Fatal(err)
	}

	req := testRequest(t, http.MethodPost, "/Encounter/$validate?_format=xml&profile="+encounterProfileURL, "application/fhir+xml", string(in))
	status, header, body := serve(t, testServer(t), req)
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", status, body)
	}
	if ct := header.Get("Content-Type"); ct != "application/fhir+xml" {
		t.Errorf("expected content type application/fhir+xml, got %s", ct)
	}
	if !strings.HasPrefix(body, xml.Header) {
		t.Errorf("expected XML declaration, got %q", body)
	}

	expected := `<OperationOutcome xmlns="http://hl7.org/fhir"><issue><severity value="information"/><code value="informational"/>` +
		`<diagnostics value="No issues detected during validation"/></issue></OperationOutcome>`
	assert.XMLEqual(t, expected, strings.TrimPrefix(body, xml.Header))
}

type failingResolver struct{}

func (failingResolver) ResolveProfile(context.Context, string) (r5.StructureDefinition, error) {
	return r5.StructureDefinition{}, errors.New("registry unavailable")
}

func TestValidateErrors(t *testing.T) {
	valid := string(testdata.Example("encounter-example.json"))

	tests := []struct {
		name           string
		server         *rest.Server
		target         string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invalid body",
			target:         "/Encounter/$validate?profile=" + encounterProfileURL,
			body:           `{"resourceType":"Encounter",`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "structure",
		},
		{
			name:           "unknown element",
			target:         "/Encounter/$validate?profile=" + encounterProfileURL,
			body:           `{"resourceType":"Encounter","colour":"red"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "structure",
		},
		{
			name:           "resource type does not match path",
			target:         "/Patient/$validate?profile=" + encounterProfileURL,
			body:           valid,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "processing",
		},
		{
			name:           "profile for another type",
			target:         "/$validate?profile=" + encounterProfileURL,
			body:           `{"resourceType":"Patient","id":"p"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "processing",
		},
		{
			name:           "no profile",
			target:         "/Encounter/$validate",
			body:           valid,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "required",
		},
		{
			name:           "unknown profile",
			target:         "/Encounter/$validate?profile=http://example.org/unknown",
			body:           valid,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not-found",
		},
		{
			name:           "parameters without resource",
			target:         "/$validate?profile=" + encounterProfileURL,
			body:           `{"resourceType":"Parameters","parameter":[{"name":"mode","valueCode":"create"}]}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "required",
		},
		{
			name:           "unsupported operation",
			target:         "/Encounter/$everything",
			body:           valid,
			expectedStatus: http.StatusNotImplemented,
			expectedCode:   "not-supported",
		},
		{
			name:           "resolver failure",
			server:         &rest.Server{Profiles: failingResolver{}},
			target:         "/Encounter/$validate?profile=" + encounterProfileURL,
			body:           valid,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "exception",
		},
		{
			name:           "no profiles configured",
			server:         &rest.Server{},
			target:         "/Encounter/$validate?profile=" + encounterProfileURL,
			body:           valid,
			expectedStatus: http.StatusNotImplemented,
			expectedCode:   "not-supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tt.server
			if server == nil {
				server = testServer(t)
			}
			status, _, body := serve(t, server, testRequest(t, http.MethodPost, tt.target, "application/fhir+json", tt.body))
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, status, body)
			}
			codes := issueCodes(t, body)
			if len(codes) != 1 || codes[0] != tt.expectedCode {
				t.Errorf("expected a single %s issue, got %v", tt.expectedCode, codes)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	status, _, _ := serve(t, testServer(t), testRequest(t, http.MethodGet, "/Encounter/$validate", "", ""))
	if status != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", status)
	}
}

func TestProfiles(t *testing.T) {
	profiles := rest.NewProfiles(
		r5.StructureDefinition{
			Url:     &r5.Uri{Value: ptr.To("http://example.org/a")},
			Version: &r5.String{Value: ptr.To("1.0")},
		},
		r5.StructureDefinition{Name: &r5.String{Value: ptr.To("NoURL")}},
	)
	if len(profiles) != 1 {
		t.Errorf("expected one indexed profile, got %d", len(profiles))
	}

	for _, canonical := range []string{"http://example.org/a", "http://example.org/a|1.0"} {
		if _, err := profiles.ResolveProfile(context.Background(), canonical); err != nil {
			t.Errorf("resolving %s: %v", canonical, err)
		}
	}

	for _, canonical := range []string{"http://example.org/a|2.0", "http://example.org/b"} {
		_, err := profiles.ResolveProfile(context.Background(), canonical)
		var oe *rest.OutcomeError
		if !errors.As(err, &oe) {
			t.Errorf("expected OutcomeError resolving %s, got %v", canonical, err)
		}
	}
}
