// Package validation checks resources against the element definitions of a StructureDefinition snapshot.
//
// Every element path of the snapshot is resolved with FHIRPath. Cardinality is checked
// for each occurrence of the parent element, constraints for each occurrence of the element.
// Findings are collected as issues, only problems with the profile itself fail a validation.
package validation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model"
	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/rs/zerolog"
)

var (
	ErrUnknownPath     = errors.New("validation: unknown element path")
	ErrProfileMismatch = errors.New("validation: profile does not apply to resource")
	ErrNoSnapshot      = errors.New("validation: profile has no snapshot")
)

type ProfileMismatchError struct {
	ProfileType  string
	ResourceType string
}

func (e *ProfileMismatchError) Error() string {
	return fmt.Sprintf("profile constrains %s, but resource is %s", e.ProfileType, e.ResourceType)
}

func (e *ProfileMismatchError) Is(target error) bool { return target == ErrProfileMismatch }

type UnknownPathError struct {
	Path string
	Err  error
}

func (e *UnknownPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unknown element path %s: %v", e.Path, e.Err)
	}
	return "unknown element path " + e.Path
}

func (e *UnknownPathError) Is(target error) bool { return target == ErrUnknownPath }
func (e *UnknownPathError) Unwrap() error        { return e.Err }

// Validator validates resources against profiles. It is safe for concurrent use.
type Validator struct {
	opts Options
}

// New creates a Validator with the default options, modified by opts.
func New(opts ...Option) *Validator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Validator{opts: *o}
}

// Validate checks resource against profile and reports the findings as OperationOutcome.
func Validate(ctx context.Context, resource model.Resource, profile r5.StructureDefinition, opts ...Option) (r5.OperationOutcome, error) {
	return New(opts...).Validate(ctx, resource, profile)
}

// Validate checks resource against profile and reports the findings as OperationOutcome.
func (v *Validator) Validate(ctx context.Context, resource model.Resource, profile r5.StructureDefinition) (r5.OperationOutcome, error) {
	issues, err := v.Check(ctx, resource, profile)
	if err != nil {
		return r5.OperationOutcome{}, err
	}
	return Outcome(issues), nil
}

// Check returns the issues found validating resource against profile.
func (v *Validator) Check(ctx context.Context, resource model.Resource, profile r5.StructureDefinition) ([]Issue, error) {
	profileType := value(profile.Type)
	if profileType != resource.ResourceType() {
		return nil, &ProfileMismatchError{ProfileType: profileType, ResourceType: resource.ResourceType()}
	}
	if profile.Snapshot == nil {
		return nil, ErrNoSnapshot
	}

	log := zerolog.Ctx(ctx).With().
		Str("profile", value(profile.Url)).
		Str("resourceType", resource.ResourceType()).
		Logger()
	ctx = log.WithContext(fhirpath.WithEnv(ctx, "resource", resource))

	var issues []Issue
	for _, ed := range profile.Snapshot.Element {
		path := value(ed.Path)
		if ed.SliceName != nil {
			log.Debug().Str("path", path).Str("slice", value(ed.SliceName)).Msg("skipping sliced element")
			continue
		}
		// children of a slice carry the slice name in their id only
		if ed.Id != nil && strings.Contains(*ed.Id, ":") {
			log.Debug().Str("path", path).Str("id", *ed.Id).Msg("skipping element of slice")
			continue
		}
		log.Trace().Str("path", path).Msg("validating element")

		found, err := v.checkElement(ctx, resource, ed)
		if errors.Is(err, ErrUnknownPath) && v.opts.LenientPaths {
			issues = append(issues, Issue{
				Severity:    SeverityWarning,
				Code:        IssueTypeNotFound,
				Diagnostics: err.Error(),
				Expression:  path,
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		issues = append(issues, found...)
	}

	log.Debug().Int("issues", len(issues)).Msg("validated resource")
	return issues, nil
}

func (v *Validator) checkElement(ctx context.Context, resource model.Resource, ed r5.ElementDefinition) ([]Issue, error) {
	path := value(ed.Path)
	labels := strings.Split(path, ".")
	for i, s := range labels {
		labels[i] = strings.TrimSuffix(s, "[x]")
	}
	segments, err := resolve(labels)
	if err != nil {
		return nil, &UnknownPathError{Path: path, Err: err}
	}

	if len(segments) == 1 {
		return v.checkConstraints(ctx, ed, path, fhirpath.Collection{resource}, true), nil
	}

	parentPath, err := fhirpath.Parse(strings.Join(segments[:len(segments)-1], "."))
	if err != nil {
		return nil, &UnknownPathError{Path: path, Err: err}
	}
	child, err := fhirpath.Parse(segments[len(segments)-1])
	if err != nil {
		return nil, &UnknownPathError{Path: path, Err: err}
	}

	parents, err := fhirpath.Path(ctx, resource, parentPath)
	if err != nil {
		return nil, pathError(path, err)
	}

	var (
		issues   []Issue
		elements fhirpath.Collection
	)
	for i, parent := range parents {
		children, err := fhirpath.Evaluate(ctx, parent, child)
		if err != nil {
			return nil, pathError(path, err)
		}
		elements = append(elements, children...)

		expression := path
		if len(parents) > 1 {
			expression = fmt.Sprintf("%s[%d].%s", strings.Join(labels[:len(labels)-1], "."), i, labels[len(labels)-1])
		}
		issues = append(issues, cardinality(ed, expression, len(children))...)
	}
	return append(issues, v.checkConstraints(ctx, ed, path, elements, false)...), nil
}

func pathError(path string, err error) error {
	if errors.Is(err, fhirpath.ErrUnknownField) || errors.Is(err, fhirpath.ErrRootMismatch) {
		return &UnknownPathError{Path: path, Err: err}
	}
	return fmt.Errorf("evaluating %s: %w", path, err)
}

// resolve checks the segments of an element path against the type descriptors
// and returns the FHIRPath navigation for each of them.
// Type suffixed choices like valueQuantity navigate as value.ofType(Quantity).
// Below primitives, untyped choices and inline resources only id and extension are known.
func resolve(path []string) ([]string, error) {
	typeName := path[0]
	if _, ok := r5.Descriptor(typeName); !ok {
		return nil, fmt.Errorf("unknown resource type %s", typeName)
	}
	segments := slices.Clone(path)
	for i, name := range path[1:] {
		d, ok := r5.Descriptor(typeName)
		switch {
		case !ok && (name == "id" || name == "extension"):
			typeName = name
		case !ok:
			return nil, fmt.Errorf("%s has no element %s", typeName, name)
		case name == "id" && d.Kind != model.KindResource:
			typeName = "string"
		default:
			f, choiceType, ok := d.Field(name)
			if !ok {
				return nil, fmt.Errorf("%s has no element %s", typeName, name)
			}
			typeName = f.Type
			if choiceType != "" {
				typeName = choiceType
				segments[i+1] = fmt.Sprintf("%s.ofType(%s)", f.Name, choiceType)
			}
		}
		if typeName == "extension" {
			typeName = "Extension"
		}
	}
	return segments, nil
}

func cardinality(ed r5.ElementDefinition, expression string, count int) []Issue {
	var issues []Issue
	minimum := 0
	if ed.Min != nil && ed.Min.Value != nil {
		minimum = int(*ed.Min.Value)
	}
	if count < minimum {
		issues = append(issues, Issue{
			Severity:    SeverityError,
			Code:        IssueTypeRequired,
			Diagnostics: fmt.Sprintf("%s: minimum required = %d, but only found %d", expression, minimum, count),
			Expression:  expression,
		})
	}

	maximum := value(ed.Max)
	if maximum == "" || maximum == "*" {
		return issues
	}
	n, err := strconv.Atoi(maximum)
	if err == nil && count > n {
		issues = append(issues, Issue{
			Severity:    SeverityError,
			Code:        IssueTypeStructure,
			Diagnostics: fmt.Sprintf("%s: maximum allowed = %d, but found %d", expression, n, count),
			Expression:  expression,
		})
	}
	return issues
}

type stringValued interface {
	Get() (string, bool)
}

// value returns the value of an optional string primitive, or the empty string.
func value[P stringValued](p *P) string {
	if p == nil {
		return ""
	}
	v, _ := (*p).Get()
	return v
}
