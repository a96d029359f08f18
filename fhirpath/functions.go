package fhirpath

import (
	"context"
	"fmt"
	"maps"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// Tracer defines the interface for logging trace messages
type Tracer interface {
	// Log logs a trace message with the given name and collection
	Log(ctx context.Context, name string, collection Collection) error
}

// LogTracer writes traces to the zerolog.Logger of the context.
type LogTracer struct {
	Level zerolog.Level
}

func (t LogTracer) Log(ctx context.Context, name string, collection Collection) error {
	zerolog.Ctx(ctx).WithLevel(t.Level).
		Str("name", name).
		Stringer("collection", collection).
		Msg("fhirpath trace")
	return nil
}

type tracerKey struct{}

// WithTracer installs the given trace logger into the context.
//
// By default, traces are logged at debug level to the logger returned by zerolog.Ctx.
func WithTracer(ctx context.Context, tracer Tracer) context.Context {
	return context.WithValue(ctx, tracerKey{}, tracer)
}

func tracer(ctx context.Context) Tracer {
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok && t != nil {
		return t
	}
	return LogTracer{Level: zerolog.DebugLevel}
}

type Functions map[string]Function

// Function implements a FHIRPath function.
//
// target is the collection the function is invoked on, parameters are the unevaluated
// argument expressions, which the function evaluates on demand with evaluate.
type Function = func(
	ctx context.Context,
	target Collection,
	parameters []Node,
	evaluate EvaluateFunc,
) (result Collection, err error)

type EvaluateFunc = func(
	ctx context.Context,
	target Collection,
	expr Node,
	scope *FunctionScope, // nil preserves parent scope
) (result Collection, err error)

// FunctionScope holds the variables $this, $index and $total of an iteration.
type FunctionScope struct {
	This  Element
	Index int
	Total Collection
}

type functionsKey struct{}

// WithFunctions installs the given functions into the context.
func WithFunctions(ctx context.Context, functions Functions) context.Context {
	allFns := maps.Clone(getFunctions(ctx))
	maps.Copy(allFns, functions)
	return context.WithValue(ctx, functionsKey{}, allFns)
}

func getFunctions(ctx context.Context) Functions {
	fns, ok := ctx.Value(functionsKey{}).(Functions)
	if !ok {
		return defaultFunctions
	}
	return fns
}

func callFunc(ctx context.Context, target Collection, n CallNode, scope *FunctionScope) (Collection, error) {
	fn, ok := getFunctions(ctx)[n.Name]
	if !ok {
		return nil, &UnknownFunctionError{Name: n.Name}
	}
	evaluate := func(ctx context.Context, target Collection, expr Node, fnScope *FunctionScope) (Collection, error) {
		if fnScope == nil {
			fnScope = scope
		}
		return evalExpression(ctx, target, expr, fnScope)
	}
	result, err := fn(ctx, target, n.Args, evaluate)
	if err != nil {
		return nil, fmt.Errorf("%s(): %w", n.Name, err)
	}
	return result, nil
}

func ofType(target Collection, spec TypeSpecifier) Collection {
	var result Collection
	for _, e := range target {
		if e.TypeInfo().Is(spec) {
			result = append(result, e)
		}
	}
	return result
}

func expectParameters(parameters []Node, min, max int) error {
	if len(parameters) < min || len(parameters) > max {
		if min == max {
			return fmt.Errorf("expected %d parameters, got %d", min, len(parameters))
		}
		return fmt.Errorf("expected %d to %d parameters, got %d", min, max, len(parameters))
	}
	return nil
}

// criteria evaluates a boolean criteria parameter for every element of target.
func criteria(ctx context.Context, target Collection, param Node, evaluate EvaluateFunc, fn func(i int, e Element, b, ok bool) bool) error {
	for i, elem := range target {
		result, err := evaluate(ctx, Collection{elem}, param, &FunctionScope{This: elem, Index: i})
		if err != nil {
			return err
		}
		b, ok, err := Singleton[Boolean](result)
		if err != nil {
			return err
		}
		if !fn(i, elem, bool(b), ok) {
			return nil
		}
	}
	return nil
}

func booleans(target Collection) ([]bool, error) {
	bs := make([]bool, 0, len(target))
	for _, e := range target {
		b, ok, err := elementTo[Boolean](e, false)
		if err != nil {
			return nil, err
		}
		if ok {
			bs = append(bs, bool(b))
		}
	}
	return bs, nil
}

func singletonString(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (s String, arg String, ok bool, err error) {
	s, ok, err = Singleton[String](target)
	if err != nil || !ok {
		return "", "", false, err
	}
	param, err := evaluate(ctx, target, parameters[0], nil)
	if err != nil {
		return "", "", false, err
	}
	arg, ok, err = Singleton[String](param)
	return s, arg, ok, err
}

var defaultFunctions = Functions{
	"empty": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		return Collection{Boolean(len(target) == 0)}, nil
	},
	"exists": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 1); err != nil {
			return nil, err
		}
		if len(parameters) == 0 {
			return Collection{Boolean(len(target) > 0)}, nil
		}
		found := false
		err := criteria(ctx, target, parameters[0], evaluate, func(_ int, _ Element, b, ok bool) bool {
			found = ok && b
			return !found
		})
		return Collection{Boolean(found)}, err
	},
	"all": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		all := true
		err := criteria(ctx, target, parameters[0], evaluate, func(_ int, _ Element, b, ok bool) bool {
			all = ok && b
			return all
		})
		return Collection{Boolean(all)}, err
	},
	"allTrue": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		bs, err := booleans(target)
		if err != nil {
			return nil, err
		}
		for _, b := range bs {
			if !b {
				return Collection{Boolean(false)}, nil
			}
		}
		return Collection{Boolean(len(bs) == len(target))}, nil
	},
	"anyTrue": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		bs, err := booleans(target)
		if err != nil {
			return nil, err
		}
		for _, b := range bs {
			if b {
				return Collection{Boolean(true)}, nil
			}
		}
		return Collection{Boolean(false)}, nil
	},
	"allFalse": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		bs, err := booleans(target)
		if err != nil {
			return nil, err
		}
		for _, b := range bs {
			if b {
				return Collection{Boolean(false)}, nil
			}
		}
		return Collection{Boolean(len(bs) == len(target))}, nil
	},
	"count": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		return Collection{Integer(len(target))}, nil
	},
	"distinct": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		return target.Union(nil), nil
	},
	"isDistinct": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		return Collection{Boolean(len(target.Union(nil)) == len(target))}, nil
	},
	"where": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		var result Collection
		err := criteria(ctx, target, parameters[0], evaluate, func(_ int, e Element, b, ok bool) bool {
			if ok && b {
				result = append(result, e)
			}
			return true
		})
		return result, err
	},
	"select": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		var result Collection
		for i, elem := range target {
			projection, err := evaluate(ctx, Collection{elem}, parameters[0], &FunctionScope{This: elem, Index: i})
			if err != nil {
				return nil, err
			}
			result = append(result, projection...)
		}
		return result, nil
	},
	"single": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) > 1 {
			return nil, fmt.Errorf("expected single item but got %d items", len(target))
		}
		return target, nil
	},
	"first": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) == 0 {
			return nil, nil
		}
		return Collection{target[0]}, nil
	},
	"last": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) == 0 {
			return nil, nil
		}
		return Collection{target[len(target)-1]}, nil
	},
	"tail": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) < 2 {
			return nil, nil
		}
		return target[1:], nil
	},
	"skip": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		n, err := integerParameter(ctx, target, parameters, evaluate)
		if err != nil {
			return nil, err
		}
		if n >= len(target) {
			return nil, nil
		}
		return target[max(n, 0):], nil
	},
	"take": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		n, err := integerParameter(ctx, target, parameters, evaluate)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, nil
		}
		return target[:min(n, len(target))], nil
	},
	"not": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		b, ok, err := Singleton[Boolean](target)
		if err != nil || !ok {
			return nil, err
		}
		return Collection{!b}, nil
	},
	"hasValue": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) != 1 {
			return Collection{Boolean(false)}, nil
		}
		_, ok := toPrimitive(target[0])
		return Collection{Boolean(ok)}, nil
	},
	"ofType": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		p, ok := parameters[0].(PathNode)
		if !ok {
			return nil, fmt.Errorf("expected type specifier, got %s", parameters[0])
		}
		return ofType(target, ParseTypeSpecifier(p.Name)), nil
	},
	"children": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		var result Collection
		for _, e := range target {
			result = append(result, e.Children()...)
		}
		return result, nil
	},
	"trace": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 2); err != nil {
			return nil, err
		}
		nameResult, err := evaluate(ctx, target, parameters[0], nil)
		if err != nil {
			return nil, err
		}
		name, _, err := Singleton[String](nameResult)
		if err != nil {
			return nil, err
		}
		logged := target
		if len(parameters) == 2 {
			logged, err = evaluate(ctx, target, parameters[1], nil)
			if err != nil {
				return nil, err
			}
		}
		if err := tracer(ctx).Log(ctx, string(name), logged); err != nil {
			return nil, err
		}
		return target, nil
	},
	"iif": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 2, 3); err != nil {
			return nil, err
		}
		criterion, err := evaluate(ctx, target, parameters[0], nil)
		if err != nil {
			return nil, err
		}
		b, ok, err := Singleton[Boolean](criterion)
		if err != nil {
			return nil, err
		}
		if ok && bool(b) {
			return evaluate(ctx, target, parameters[1], nil)
		}
		if len(parameters) == 3 {
			return evaluate(ctx, target, parameters[2], nil)
		}
		return nil, nil
	},
	"startsWith": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		s, prefix, ok, err := singletonString(ctx, target, parameters, evaluate)
		if err != nil || !ok {
			return nil, err
		}
		return Collection{Boolean(strings.HasPrefix(string(s), string(prefix)))}, nil
	},
	"endsWith": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		s, suffix, ok, err := singletonString(ctx, target, parameters, evaluate)
		if err != nil || !ok {
			return nil, err
		}
		return Collection{Boolean(strings.HasSuffix(string(s), string(suffix)))}, nil
	},
	"contains": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		s, sub, ok, err := singletonString(ctx, target, parameters, evaluate)
		if err != nil || !ok {
			return nil, err
		}
		return Collection{Boolean(strings.Contains(string(s), string(sub)))}, nil
	},
	"matches": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		s, pattern, ok, err := singletonString(ctx, target, parameters, evaluate)
		if err != nil || !ok {
			return nil, err
		}
		re, err := regexp.Compile("(?s)" + string(pattern))
		if err != nil {
			return nil, err
		}
		return Collection{Boolean(re.MatchString(string(s)))}, nil
	},
	"length": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		s, ok, err := Singleton[String](target)
		if err != nil || !ok {
			return nil, err
		}
		return Collection{Integer(len([]rune(string(s))))}, nil
	},
	"toString": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) == 0 {
			return nil, nil
		}
		if len(target) > 1 {
			return nil, fmt.Errorf("expected single item but got %d items", len(target))
		}
		s, ok, err := elementTo[String](target[0], true)
		if err != nil || !ok {
			return nil, nil
		}
		return Collection{s}, nil
	},
	"toInteger": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 0, 0); err != nil {
			return nil, err
		}
		if len(target) == 0 {
			return nil, nil
		}
		if len(target) > 1 {
			return nil, fmt.Errorf("expected single item but got %d items", len(target))
		}
		i, ok, err := elementTo[Integer](target[0], true)
		if err != nil || !ok {
			return nil, nil
		}
		return Collection{i}, nil
	},
	"union": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		other, err := evaluate(ctx, target, parameters[0], nil)
		if err != nil {
			return nil, err
		}
		return target.Union(other), nil
	},
	"combine": func(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (Collection, error) {
		if err := expectParameters(parameters, 1, 1); err != nil {
			return nil, err
		}
		other, err := evaluate(ctx, target, parameters[0], nil)
		if err != nil {
			return nil, err
		}
		return target.Combine(other), nil
	},
}

func integerParameter(ctx context.Context, target Collection, parameters []Node, evaluate EvaluateFunc) (int, error) {
	if err := expectParameters(parameters, 1, 1); err != nil {
		return 0, err
	}
	param, err := evaluate(ctx, target, parameters[0], nil)
	if err != nil {
		return 0, err
	}
	n, ok, err := Singleton[Integer](param)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("expected integer parameter")
	}
	return int(n), nil
}
