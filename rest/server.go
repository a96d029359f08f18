// Package rest serves the FHIR $validate operation over HTTP, and calls it on remote servers.
//
// Installed patterns are:
//   - system: "POST /$validate"
//   - type:   "POST /{type}/$validate"
//
// The request body is either the resource to validate or a Parameters resource with a "resource"
// and an optional "profile" parameter. The profile is taken from the "profile" query or body
// parameter, and falls back to the first entry of meta.profile of the resource.
//
// Findings are returned as OperationOutcome with status 200, as long as the validation itself
// could be performed. Unparsable bodies, unknown profiles or profiles not matching the resource
// are reported as OperationOutcome with an error status.
//
// If you do not want the handlers installed at the root, use something like
//
//	mux.Handle("/fhir/", http.StripPrefix("/fhir", server))
package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/damedic/fhir-r5-go/validation"
	"github.com/rs/zerolog"
)

const operationValidate = "$validate"

var declaredProfileExpr = fhirpath.MustParse("meta.profile.first()")

// Server validates resources posted to its $validate endpoints.
// Log output goes to the zerolog.Logger of the request context.
type Server struct {
	// Profiles resolves the profiles resources are validated against.
	Profiles ProfileResolver

	// Validator defaults to validation.New().
	Validator *validation.Validator

	// DefaultFormat of the server.
	// Defaults to JSON.
	DefaultFormat Format

	muxMu sync.Mutex
	mux   *http.ServeMux
}

func (s *Server) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if s.mux == nil {
		s.registerRoutes()
	}
	s.mux.ServeHTTP(writer, request)
}

func (s *Server) registerRoutes() {
	s.muxMu.Lock()
	defer s.muxMu.Unlock()

	// double check, mux might have been set in the background while waiting
	if s.mux != nil {
		return
	}

	s.mux = http.NewServeMux()
	s.mux.Handle("POST /{operation}", http.HandlerFunc(s.handleOperation))
	s.mux.Handle("POST /{type}/{operation}", http.HandlerFunc(s.handleOperation))
}

func (s *Server) validator() *validation.Validator {
	if s.Validator == nil {
		return validation.New()
	}
	return s.Validator
}

func (s *Server) handleOperation(w http.ResponseWriter, r *http.Request) {
	requestFormat := detectFormat(r, "Content-Type", s.DefaultFormat)
	responseFormat := detectFormat(r, "Accept", s.DefaultFormat)
	log := zerolog.Ctx(r.Context())

	operation := r.PathValue("operation")
	if operation != operationValidate {
		log.Error().Str("operation", operation).Msg("operation not supported")
		returnErr(w, outcomeError("fatal", "not-supported", fmt.Sprintf("operation %s not supported", operation)), responseFormat)
		return
	}

	outcome, err := s.validate(r, requestFormat)
	if err != nil {
		log.Error().Err(err).Str("resourceType", r.PathValue("type")).Msg("error validating resource")
		returnErr(w, err, responseFormat)
		return
	}
	returnResult(w, outcome, http.StatusOK, responseFormat)
}

func (s *Server) validate(r *http.Request, requestFormat Format) (r5.OperationOutcome, error) {
	ctx := r.Context()

	resource, err := decodeResource(r.Body, requestFormat)
	if err != nil {
		return r5.OperationOutcome{}, outcomeError("fatal", "structure", "error parsing body: "+err.Error())
	}

	profileURL := r.URL.Query().Get("profile")
	if params, ok := resource.(*r5.Parameters); ok {
		resource, profileURL, err = fromParameters(*params, profileURL)
		if err != nil {
			return r5.OperationOutcome{}, err
		}
	}

	if resourceType := r.PathValue("type"); resourceType != "" && resourceType != resource.ResourceType() {
		return r5.OperationOutcome{}, outcomeError("fatal", "processing",
			fmt.Sprintf("unexpected resource: expected %s, got %s", resourceType, resource.ResourceType()))
	}

	if profileURL == "" {
		profileURL, err = declaredProfile(ctx, resource)
		if err != nil {
			return r5.OperationOutcome{}, err
		}
	}
	if profileURL == "" {
		return r5.OperationOutcome{}, outcomeError("error", "required", "no profile given, expected profile parameter or meta.profile")
	}
	if s.Profiles == nil {
		return r5.OperationOutcome{}, outcomeError("fatal", "not-supported", "no profiles configured")
	}

	profile, err := s.Profiles.ResolveProfile(ctx, profileURL)
	if err != nil {
		return r5.OperationOutcome{}, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("resourceType", resource.ResourceType()).
		Str("profile", profileURL).
		Msg("validating resource")

	outcome, err := s.validator().Validate(ctx, resource, profile)
	switch {
	case errors.Is(err, validation.ErrProfileMismatch):
		return r5.OperationOutcome{}, outcomeError("error", "processing", err.Error())
	case err != nil:
		return r5.OperationOutcome{}, outcomeError("error", "not-supported", fmt.Sprintf("profile %s: %v", profileURL, err))
	}
	return outcome, nil
}

// fromParameters extracts the resource and profile parameters of the $validate operation.
// A profile in the query takes precedence.
func fromParameters(params r5.Parameters, profileURL string) (model.Resource, string, error) {
	var resource model.Resource
	for _, p := range params.Parameter {
		var name string
		if p.Name != nil {
			name, _ = p.Name.Get()
		}
		switch name {
		case "resource":
			if p.Resource != nil {
				resource = p.Resource.Resource
			}
		case "profile":
			if profileURL != "" {
				continue
			}
			switch v := p.Value.(type) {
			case r5.Canonical:
				profileURL, _ = v.Get()
			case r5.Uri:
				profileURL, _ = v.Get()
			}
		}
	}
	if resource == nil {
		return nil, "", outcomeError("error", "required", "parameter resource missing")
	}
	return resource, profileURL, nil
}

func declaredProfile(ctx context.Context, resource model.Resource) (string, error) {
	result, err := fhirpath.Evaluate(ctx, resource, declaredProfileExpr)
	if err != nil {
		return "", err
	}
	profile, _, err := fhirpath.Singleton[fhirpath.String](result)
	if err != nil {
		return "", err
	}
	return string(profile), nil
}

func returnErr(w http.ResponseWriter, err error, format Format) {
	status, oo := errToOperationOutcome(err)
	returnResult(w, oo, status, format)
}

func returnResult(w http.ResponseWriter, r model.Resource, status int, format Format) {
	w.Header().Set("Content-Type", string(format))
	w.WriteHeader(status)

	if err := encode(w, r, format); err != nil {
		// we were not able to return an application level error (OperationOutcome)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
