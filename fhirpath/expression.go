package fhirpath

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/rs/zerolog"
)

// Expression represents a parsed FHIRPath expression that can be evaluated against a FHIR resource.
// Expressions are created using the Parse or MustParse functions.
type Expression struct {
	source   string
	tree     Node
	root     RootMode
	rootType string
}

// String returns the source text of the expression.
func (e Expression) String() string {
	return e.source
}

// Tree returns the root node of the parsed expression.
func (e Expression) Tree() Node {
	return e.tree
}

// Root returns how the expression is anchored.
// For RootAbsolute the anchoring type name is returned as well.
func (e Expression) Root() (RootMode, string) {
	return e.root, e.rootType
}

// Parse parses a FHIRPath expression string and returns an Expression object.
// If the expression cannot be parsed, a *SyntaxError is returned.
//
// Example:
//
//	expr, err := fhirpath.Parse("Patient.name.given")
//	if err != nil {
//	    // Handle error
//	}
func Parse(expr string) (Expression, error) {
	tree, err := parse(expr)
	if err != nil {
		return Expression{}, err
	}
	mode, typ := rootMode(tree)
	return Expression{source: expr, tree: tree, root: mode, rootType: typ}, nil
}

// MustParse parses a FHIRPath expression string and returns an Expression object.
// If the expression cannot be parsed, it panics.
//
// This function is useful when you know the expression is valid and want to avoid
// error checking, such as in tests or with hardcoded expressions.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return e
}

// Path evaluates an expression which selects elements, like Patient.name.given.
//
// It fails with ErrRootMismatch when the expression is anchored at a different type than root,
// and with ErrNotAPathExpression when the expression yields a single computed value,
// like a comparison, instead of a collection.
func Path(ctx context.Context, root Element, expr Expression) (Collection, error) {
	if err := checkRoot(root, expr); err != nil {
		return nil, err
	}
	if returnTypeOf(expr.tree) != typeCollection {
		return nil, fmt.Errorf("%w: %s", ErrNotAPathExpression, expr)
	}
	return Evaluate(ctx, root, expr)
}

// Assert evaluates a boolean expression, like Patient.name.exists().
//
// An empty result counts as false. It fails with ErrNotABoolean when the expression
// does not yield a boolean.
func Assert(ctx context.Context, root Element, expr Expression) (bool, error) {
	if err := checkRoot(root, expr); err != nil {
		return false, err
	}
	if returnTypeOf(expr.tree) != typeBoolean {
		return false, fmt.Errorf("%w: %s", ErrNotABoolean, expr)
	}
	result, err := Evaluate(ctx, root, expr)
	if err != nil {
		return false, err
	}
	b, ok, err := Singleton[Boolean](result)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNotABoolean, err)
	}
	return ok && bool(b), nil
}

func checkRoot(root Element, expr Expression) error {
	if expr.root == RootAbsolute && root.TypeInfo().Name != expr.rootType {
		return &RootMismatchError{Expected: expr.rootType, Actual: root.TypeInfo().Name}
	}
	return nil
}

// Evaluate evaluates a FHIRPath expression against a target element and returns the resulting collection.
//
// The context parameter can be used to provide additional configuration for the evaluation,
// such as decimal precision settings, trace logging, or environment variables.
//
// Example:
//
//	patient := r5.Patient{...}
//	expr := fhirpath.MustParse("Patient.name.given")
//	result, err := fhirpath.Evaluate(context.Background(), patient, expr)
func Evaluate(ctx context.Context, target Element, expr Expression) (Collection, error) {
	ctx = withEnvDefaults(ctx, target)
	result, err := evalExpression(ctx, Collection{target}, expr.tree, nil)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Trace().
		Str("expression", expr.String()).
		Int("results", len(result)).
		Msg("evaluated fhirpath expression")
	return result, nil
}

type envKey struct{}

// WithEnv sets environment variables, referenced as %name in expressions.
//
// The variables %resource and %context default to the evaluation target.
func WithEnv(ctx context.Context, name string, value Element) context.Context {
	env := maps.Clone(envFrom(ctx))
	if env == nil {
		env = map[string]Element{}
	}
	env[strings.TrimPrefix(name, "%")] = value
	return context.WithValue(ctx, envKey{}, env)
}

func envFrom(ctx context.Context) map[string]Element {
	env, _ := ctx.Value(envKey{}).(map[string]Element)
	return env
}

func withEnvDefaults(ctx context.Context, target Element) context.Context {
	env := envFrom(ctx)
	if _, ok := env["resource"]; !ok {
		ctx = WithEnv(ctx, "resource", target)
	}
	if _, ok := envFrom(ctx)["context"]; !ok {
		ctx = WithEnv(ctx, "context", target)
	}
	return ctx
}

var defaultEnv = map[string]Element{
	"ucum":  String("http://unitsofmeasure.org"),
	"sct":   String("http://snomed.info/sct"),
	"loinc": String("http://loinc.org"),
}

// evalExpression evaluates n with focus as input collection.
func evalExpression(ctx context.Context, focus Collection, n Node, scope *FunctionScope) (Collection, error) {
	switch n := n.(type) {
	case IntegerNode:
		return Collection{n.Value}, nil
	case DecimalNode:
		return Collection{Decimal{Value: n.Value}}, nil
	case StringNode:
		return Collection{String(n.Value)}, nil
	case BooleanNode:
		return Collection{Boolean(n.Value)}, nil
	case DateTimeNode:
		return Collection{n.Value}, nil
	case PathNode:
		return evalTermPath(ctx, focus, n, scope)
	case CallNode:
		return callFunc(ctx, focus, n, scope)
	case BinOpNode:
		return evalBinOp(ctx, focus, n, scope)
	}
	return nil, fmt.Errorf("unexpected node %T", n)
}

// evalTermPath evaluates a path which does not follow a dot, like the first component
// of Patient.name or name.given, or a variable.
func evalTermPath(ctx context.Context, focus Collection, n PathNode, scope *FunctionScope) (Collection, error) {
	switch {
	case n.Name == "$this":
		if scope != nil && scope.This != nil {
			return index(Collection{scope.This}, n.Index), nil
		}
		return index(focus, n.Index), nil
	case n.Name == "$index":
		if scope == nil {
			return nil, fmt.Errorf("$index used outside of a function")
		}
		return Collection{Integer(scope.Index)}, nil
	case n.Name == "$total":
		if scope == nil {
			return nil, fmt.Errorf("$total used outside of aggregate()")
		}
		return scope.Total, nil
	case strings.HasPrefix(n.Name, "%"):
		name := strings.TrimPrefix(n.Name, "%")
		if v, ok := envFrom(ctx)[name]; ok {
			return index(Collection{v}, n.Index), nil
		}
		if v, ok := defaultEnv[name]; ok {
			return Collection{v}, nil
		}
		return nil, fmt.Errorf("environment variable %q not defined", n.Name)
	}

	// A type name at the start of a path filters the focus by type.
	if isUpper(n.Name) {
		spec := ParseTypeSpecifier(n.Name)
		var matching Collection
		for _, e := range focus {
			if e.TypeInfo().Is(spec) {
				matching = append(matching, e)
			}
		}
		if len(matching) > 0 || !anyHasElement(focus, n.Name) {
			return index(matching, n.Index), nil
		}
	}
	return children(focus, n)
}

func anyHasElement(c Collection, name string) bool {
	for _, e := range c {
		if e.TypeInfo().HasElement(name) {
			return true
		}
	}
	return false
}

// children navigates from every element of focus to its children named n.Name.
//
// Navigating to a name none of the elements declares is an error. Heterogeneous
// collections may contain elements lacking the name, which contribute nothing.
func children(focus Collection, n PathNode) (Collection, error) {
	if len(focus) > 0 && !anyHasElement(focus, n.Name) {
		return nil, &UnknownFieldError{Type: focus[0].TypeInfo().Name, Name: n.Name}
	}
	var result Collection
	for _, e := range focus {
		result = append(result, e.Children(n.Name)...)
	}
	return index(result, n.Index), nil
}

func index(c Collection, i *int) Collection {
	if i == nil {
		return c
	}
	if *i < 0 || *i >= len(c) {
		return nil
	}
	return Collection{c[*i]}
}

func evalBinOp(ctx context.Context, focus Collection, n BinOpNode, scope *FunctionScope) (Collection, error) {
	if n.Op == OpDot {
		left, err := evalExpression(ctx, focus, n.Left, scope)
		if err != nil {
			return nil, err
		}
		switch right := n.Right.(type) {
		case PathNode:
			return children(left, right)
		case CallNode:
			return callFunc(ctx, left, right, scope)
		}
		return nil, fmt.Errorf("invalid right operand of '.': %s", n.Right)
	}

	left, err := evalExpression(ctx, focus, n.Left, scope)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case OpAs, OpIs:
		spec := ParseTypeSpecifier(n.Right.(PathNode).Name)
		if n.Op == OpIs {
			if len(left) == 0 {
				return nil, nil
			}
			if len(left) > 1 {
				return nil, &IncompatibleError{Msg: fmt.Sprintf("'is' expects a single element, got %d", len(left))}
			}
			return Collection{Boolean(left[0].TypeInfo().Is(spec))}, nil
		}
		if len(left) > 1 {
			return nil, &IncompatibleError{Msg: fmt.Sprintf("'as' expects a single element, got %d", len(left))}
		}
		return ofType(left, spec), nil
	}

	right, err := evalExpression(ctx, focus, n.Right, scope)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case OpAnd, OpOr, OpXor, OpImplies:
		return evalLogic(n.Op, left, right)
	case OpEq, OpNe:
		eq, ok, err := left.Equal(right)
		if err != nil || !ok {
			return nil, err
		}
		return Collection{Boolean(eq == (n.Op == OpEq))}, nil
	case OpLt, OpLe, OpGt, OpGe:
		cmp, ok, err := left.Cmp(right)
		if err != nil || !ok {
			return nil, err
		}
		switch n.Op {
		case OpLt:
			return Collection{Boolean(cmp < 0)}, nil
		case OpLe:
			return Collection{Boolean(cmp <= 0)}, nil
		case OpGt:
			return Collection{Boolean(cmp > 0)}, nil
		}
		return Collection{Boolean(cmp >= 0)}, nil
	case OpUnion:
		return left.Union(right), nil
	case OpConcat:
		l, _, err := Singleton[String](left)
		if err != nil {
			return nil, err
		}
		r, _, err := Singleton[String](right)
		if err != nil {
			return nil, err
		}
		return Collection{l + r}, nil
	case OpAdd, OpSub, OpMul, OpDiv:
		return arithmetic(ctx, n.Op, left, right)
	}
	return nil, fmt.Errorf("unsupported operator %s", n.Op)
}

// evalLogic implements three-valued logic, where the empty collection is unknown.
func evalLogic(op Op, left, right Collection) (Collection, error) {
	lb, lok, err := Singleton[Boolean](left)
	if err != nil {
		return nil, err
	}
	rb, rok, err := Singleton[Boolean](right)
	if err != nil {
		return nil, err
	}
	l, r := bool(lb), bool(rb)
	known := func(b bool) Collection { return Collection{Boolean(b)} }
	switch op {
	case OpAnd:
		switch {
		case lok && rok:
			return known(l && r), nil
		case lok && !l, rok && !r:
			return known(false), nil
		}
	case OpOr:
		switch {
		case lok && rok:
			return known(l || r), nil
		case lok && l, rok && r:
			return known(true), nil
		}
	case OpXor:
		if lok && rok {
			return known(l != r), nil
		}
	case OpImplies:
		switch {
		case lok && rok:
			return known(!l || r), nil
		case lok && !l, rok && r:
			return known(true), nil
		}
	}
	return nil, nil
}

func arithmetic(ctx context.Context, op Op, left, right Collection) (Collection, error) {
	if len(left) == 0 || len(right) == 0 {
		return nil, nil
	}
	if len(left) > 1 || len(right) > 1 {
		return nil, &IncompatibleError{Msg: fmt.Sprintf("arithmetic operands must be singletons: %v %s %v", left, op, right)}
	}
	l, lok := toPrimitive(left[0])
	r, rok := toPrimitive(right[0])
	if !lok || !rok {
		if isEmptyPrimitive(left[0]) || isEmptyPrimitive(right[0]) {
			return nil, nil
		}
		return nil, &IncompatibleError{Msg: fmt.Sprintf("can not apply %s to %v and %v", op, left[0], right[0])}
	}

	if ls, ok := l.(String); ok && op == OpAdd {
		rs, ok := r.(String)
		if !ok {
			return nil, &IncompatibleError{Msg: fmt.Sprintf("can not add %s to String", r.TypeInfo().Name)}
		}
		return Collection{ls + rs}, nil
	}

	li, lInt := l.(Integer)
	ri, rInt := r.(Integer)
	if lInt && rInt && op != OpDiv {
		switch op {
		case OpAdd:
			return integerResult(int64(li) + int64(ri)), nil
		case OpSub:
			return integerResult(int64(li) - int64(ri)), nil
		case OpMul:
			return integerResult(int64(li) * int64(ri)), nil
		}
	}

	if family(l) != "Number" || family(r) != "Number" {
		return nil, &IncompatibleError{Msg: fmt.Sprintf("can not apply %s to %s and %s", op, l.TypeInfo().Name, r.TypeInfo().Name)}
	}
	ld, _, _ := elementTo[Decimal](l, false)
	rd, _, _ := elementTo[Decimal](r, false)

	apdCtx := apdContext(ctx)
	var res apd.Decimal
	var err error
	switch op {
	case OpAdd:
		_, err = apdCtx.Add(&res, ld.Value, rd.Value)
	case OpSub:
		_, err = apdCtx.Sub(&res, ld.Value, rd.Value)
	case OpMul:
		_, err = apdCtx.Mul(&res, ld.Value, rd.Value)
	case OpDiv:
		if rd.Value.IsZero() {
			return nil, nil
		}
		_, err = apdCtx.Quo(&res, ld.Value, rd.Value)
	}
	if err != nil {
		return nil, err
	}
	return Collection{Decimal{Value: &res}}, nil
}
