package validation

import (
	"context"
	"fmt"

	"github.com/damedic/fhir-r5-go/fhirpath"
	"github.com/damedic/fhir-r5-go/model/r5"
	"github.com/rs/zerolog"
)

// builtin constraints are checked natively, their expressions are not evaluated.
var builtin = map[string]func(fhirpath.Element) bool{
	"ele-1": hasValueOrChildren,
	"ext-1": extensionOrValue,
}

// hasValueOrChildren checks that a present element is not empty:
// hasValue() or (children().count() > id.count())
// Element ids and extension urls are System values, which always carry a value.
func hasValueOrChildren(e fhirpath.Element) bool {
	if e.TypeInfo().Namespace == "System" {
		return true
	}
	if p, ok := e.(fhirpath.Primitive); ok && p.HasValue() {
		return true
	}
	for _, name := range e.TypeInfo().Elements {
		if name != "id" && len(e.Children(name)) > 0 {
			return true
		}
	}
	return false
}

// extensionOrValue checks that an extension has either nested extensions or a value.
func extensionOrValue(e fhirpath.Element) bool {
	ext, ok := e.(r5.Extension)
	if !ok {
		return true
	}
	return (ext.Value != nil) != (len(ext.Extension) > 0)
}

// checkConstraints checks the constraints of ed against every element found at path.
// ele-1 holds for every element below the root, whether the profile lists it or not.
func (v *Validator) checkConstraints(ctx context.Context, ed r5.ElementDefinition, path string, elements fhirpath.Collection, root bool) []Issue {
	log := zerolog.Ctx(ctx)
	var issues []Issue

	for i, e := range elements {
		if root {
			break
		}
		if !hasValueOrChildren(e) {
			issues = append(issues, Issue{
				Severity:      SeverityError,
				Code:          IssueTypeInvariant,
				Diagnostics:   "Constraint failed: ele-1: 'All FHIR elements must have a @value or children'",
				Expression:    indexed(path, i, len(elements)),
				ConstraintKey: "ele-1",
			})
		}
	}

	for _, c := range ed.Constraint {
		key := value(c.Key)
		if key == "ele-1" {
			continue
		}
		check, native := builtin[key]
		if !native && !v.opts.Constraints {
			continue
		}

		var expr fhirpath.Expression
		if !native {
			var err error
			expr, err = fhirpath.Parse(value(c.Expression))
			if err != nil {
				issues = append(issues, v.unsupported(ctx, key, path, err)...)
				continue
			}
		}

		for i, e := range elements {
			passed := true
			if native {
				passed = check(e)
			} else {
				ok, err := evaluate(ctx, e, expr)
				if err != nil {
					issues = append(issues, v.unsupported(ctx, key, indexed(path, i, len(elements)), err)...)
					continue
				}
				passed = ok
			}
			if passed {
				continue
			}

			severity := SeverityWarning
			if value(c.Severity) == "error" {
				severity = SeverityError
			}
			issues = append(issues, Issue{
				Severity:      severity,
				Code:          IssueTypeInvariant,
				Diagnostics:   fmt.Sprintf("Constraint failed: %s: '%s'", key, value(c.Human)),
				Expression:    indexed(path, i, len(elements)),
				ConstraintKey: key,
			})
			log.Trace().Str("constraint", key).Str("path", path).Msg("constraint failed")
		}
	}
	return issues
}

// evaluate runs a constraint against a single element.
// An empty result, or one which is not a single boolean, passes.
func evaluate(ctx context.Context, e fhirpath.Element, expr fhirpath.Expression) (bool, error) {
	result, err := fhirpath.Evaluate(fhirpath.WithEnv(ctx, "context", e), e, expr)
	if err != nil {
		return false, err
	}
	b, ok, err := fhirpath.Singleton[fhirpath.Boolean](result)
	if err != nil || !ok {
		return true, nil
	}
	return bool(b), nil
}

func (v *Validator) unsupported(ctx context.Context, key, path string, err error) []Issue {
	zerolog.Ctx(ctx).Debug().Err(err).Str("constraint", key).Str("path", path).Msg("skipping constraint")
	if !v.opts.ReportUnsupported {
		return nil
	}
	return []Issue{{
		Severity:      SeverityInformation,
		Code:          IssueTypeNotSupported,
		Diagnostics:   fmt.Sprintf("Constraint %s was not evaluated: %v", key, err),
		Expression:    path,
		ConstraintKey: key,
	}}
}

func indexed(path string, i, n int) string {
	if n <= 1 {
		return path
	}
	return fmt.Sprintf("%s[%d]", path, i)
}
