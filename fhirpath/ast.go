package fhirpath

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Node is a node of a parsed FHIRPath expression.
type Node interface {
	node()
	String() string
}

// Op is a binary operator of the FHIRPath grammar.
type Op string

const (
	OpDot     Op = "."
	OpAdd     Op = "+"
	OpSub     Op = "-"
	OpMul     Op = "*"
	OpDiv     Op = "/"
	OpConcat  Op = "&"
	OpUnion   Op = "|"
	OpAnd     Op = "and"
	OpOr      Op = "or"
	OpXor     Op = "xor"
	OpImplies Op = "implies"
	OpEq      Op = "="
	OpNe      Op = "!="
	OpLt      Op = "<"
	OpLe      Op = "<="
	OpGt      Op = ">"
	OpGe      Op = ">="
	OpAs      Op = "as"
	OpIs      Op = "is"
)

type IntegerNode struct {
	Value Integer
}

type DecimalNode struct {
	Value *apd.Decimal
}

type StringNode struct {
	Value string
}

type BooleanNode struct {
	Value bool
}

// DateTimeNode holds a Date, Time or DateTime literal.
type DateTimeNode struct {
	Value Element
}

// PathNode navigates to the children with the given name.
// Names starting with $ or % refer to variables.
type PathNode struct {
	Name  string
	Index *int
}

type CallNode struct {
	Name string
	Args []Node
}

type BinOpNode struct {
	Left  Node
	Op    Op
	Right Node
}

func (IntegerNode) node()  {}
func (DecimalNode) node()  {}
func (StringNode) node()   {}
func (BooleanNode) node()  {}
func (DateTimeNode) node() {}
func (PathNode) node()     {}
func (CallNode) node()     {}
func (BinOpNode) node()    {}

func (n IntegerNode) String() string  { return n.Value.String() }
func (n DecimalNode) String() string  { return n.Value.Text('f') }
func (n StringNode) String() string   { return String(n.Value).String() }
func (n BooleanNode) String() string  { return strconv.FormatBool(n.Value) }
func (n DateTimeNode) String() string { return n.Value.String() }

func (n PathNode) String() string {
	if n.Index != nil {
		return n.Name + "[" + strconv.Itoa(*n.Index) + "]"
	}
	return n.Name
}

func (n CallNode) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

func (n BinOpNode) String() string {
	if n.Op == OpDot {
		return n.Left.String() + "." + n.Right.String()
	}
	return "(" + n.Left.String() + " " + string(n.Op) + " " + n.Right.String() + ")"
}

// RootMode tells how an expression is anchored.
type RootMode int

const (
	// RootNone marks expressions starting with a literal or an operator.
	RootNone RootMode = iota
	// RootAbsolute marks expressions whose first path component is a type name, like Patient.name.
	RootAbsolute
	// RootRelative marks expressions starting with a field name or function, like name.given.
	RootRelative
)

func (m RootMode) String() string {
	switch m {
	case RootAbsolute:
		return "Absolute"
	case RootRelative:
		return "Relative"
	}
	return "None"
}

// leftmost returns the first leaf of the tree in reading order.
func leftmost(n Node) Node {
	for {
		b, ok := n.(BinOpNode)
		if !ok {
			return n
		}
		n = b.Left
	}
}

func rootMode(tree Node) (RootMode, string) {
	switch n := leftmost(tree).(type) {
	case PathNode:
		switch {
		case strings.HasPrefix(n.Name, "%"):
			return RootNone, ""
		case isUpper(n.Name):
			return RootAbsolute, n.Name
		}
		return RootRelative, ""
	case CallNode:
		return RootRelative, ""
	}
	return RootNone, ""
}

// returnType is the static result type of an expression.
type returnType int

const (
	typeCollection returnType = iota
	typeBoolean
	typeInteger
	typeDecimal
	typeString
	typeDateTime
)

var (
	booleanFunctions = map[string]bool{
		"empty": true, "exists": true, "allTrue": true, "anyTrue": true, "allFalse": true, "all": true,
		"not": true, "hasValue": true, "startsWith": true, "endsWith": true, "contains": true,
		"matches": true, "isDistinct": true,
	}
	integerFunctions = map[string]bool{"count": true, "length": true, "toInteger": true}
	stringFunctions  = map[string]bool{"toString": true}
)

func returnTypeOf(n Node) returnType {
	switch n := n.(type) {
	case IntegerNode:
		return typeInteger
	case DecimalNode:
		return typeDecimal
	case StringNode:
		return typeString
	case BooleanNode:
		return typeBoolean
	case DateTimeNode:
		return typeDateTime
	case CallNode:
		switch {
		case booleanFunctions[n.Name]:
			return typeBoolean
		case integerFunctions[n.Name]:
			return typeInteger
		case stringFunctions[n.Name]:
			return typeString
		}
		return typeCollection
	case BinOpNode:
		switch n.Op {
		case OpDot:
			return returnTypeOf(n.Right)
		case OpAnd, OpOr, OpXor, OpImplies, OpEq, OpNe, OpLt, OpLe, OpGt, OpGe, OpIs:
			return typeBoolean
		case OpConcat:
			return typeString
		case OpAdd, OpSub, OpMul, OpDiv:
			l, r := returnTypeOf(n.Left), returnTypeOf(n.Right)
			switch {
			case l == typeString || r == typeString:
				return typeString
			case l == typeInteger && r == typeInteger && n.Op != OpDiv:
				return typeInteger
			case l == typeDateTime:
				return typeDateTime
			}
			return typeDecimal
		}
	}
	return typeCollection
}
