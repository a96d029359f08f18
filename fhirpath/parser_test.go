package fhirpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	type tok struct {
		Kind  tokenKind
		Value string
	}
	tests := []struct {
		expr string
		want []tok
	}{
		{
			expr: "Patient.name[0]",
			want: []tok{{tkSymbol, "Patient"}, {tkDot, "."}, {tkSymbol, "name"}, {tkOpenBracket, "["}, {tkNumber, "0"}, {tkCloseBracket, "]"}, {tkEOF, ""}},
		},
		{
			expr: "a and b",
			want: []tok{{tkSymbol, "a"}, {tkWhitespace, " "}, {tkOperator, "and"}, {tkWhitespace, " "}, {tkSymbol, "b"}, {tkEOF, ""}},
		},
		{
			expr: "'it\\'s' != `div`",
			want: []tok{{tkText, "it's"}, {tkWhitespace, " "}, {tkComparator, "!="}, {tkWhitespace, " "}, {tkSymbol, "div"}, {tkEOF, ""}},
		},
		{
			expr: "1.5<=2",
			want: []tok{{tkNumber, "1.5"}, {tkComparator, "<="}, {tkNumber, "2"}, {tkEOF, ""}},
		},
		{
			expr: "@2024-01-01T10:00:00Z|%resource",
			want: []tok{{tkDateTime, "@2024-01-01T10:00:00Z"}, {tkOperator, "|"}, {tkSymbol, "%resource"}, {tkEOF, ""}},
		},
		{
			expr: "$this // trailing",
			want: []tok{{tkSymbol, "$this"}, {tkWhitespace, " "}, {tkWhitespace, "// trailing"}, {tkEOF, ""}},
		},
		{
			expr: "'\\u00e9'",
			want: []tok{{tkText, "é"}, {tkEOF, ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			tokens, err := tokenize(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			var got []tok
			for _, token := range tokens {
				got = append(got, tok{token.kind, token.value})
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		expr string
		pos  int
	}{
		{expr: "'open", pos: 0},
		{expr: "a ! b", pos: 2},
		{expr: "a # b", pos: 2},
		{expr: "/* open", pos: 0},
		{expr: "'bad \\q'", pos: 6},
		{expr: "a + @", pos: 4},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := tokenize(tt.expr)
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected SyntaxError, got %v", err)
			}
			if syntaxErr.Pos != tt.pos {
				t.Errorf("expected position %d, got %d (%v)", tt.pos, syntaxErr.Pos, err)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse")
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{expr: "Patient.name.given", want: "Patient.name.given"},
		{expr: "1 + 2 * 3", want: "(1 + (2 * 3))"},
		{expr: "1 - 2 - 3", want: "((1 - 2) - 3)"},
		{expr: "a or b and c", want: "(a or (b and c))"},
		{expr: "a implies b or c", want: "(a implies (b or c))"},
		{expr: "a xor b or c", want: "((a xor b) or c)"},
		{expr: "a = b and c != d", want: "((a = b) and (c != d))"},
		{expr: "a | b = c", want: "((a | b) = c)"},
		{expr: "value is Quantity", want: "(value is Quantity)"},
		{expr: "value as FHIR.Quantity", want: "(value as FHIR.Quantity)"},
		{expr: "name.where(use = 'official').given[0]", want: "name.where((use = 'official')).given[0]"},
		{expr: "iif(a, 'x', 'y')", want: "iif(a, 'x', 'y')"},
		{expr: "-5 + 2", want: "(-5 + 2)"},
		{expr: "-a.count()", want: "(0 - a.count())"},
		{expr: "'a' & 'b'", want: "('a' & 'b')"},
		{expr: "(1 + 2).toString()", want: "(1 + 2).toString()"},
		{expr: "true and false", want: "(true and false)"},
		{expr: "1.50", want: "1.50"},
		{expr: "@2024-01 < @2024-02-01", want: "(@2024-01 < @2024-02-01)"},
		{expr: "@T10:30", want: "@T10:30"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			expr, err := Parse(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, expr.Tree().String()); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
			if expr.String() != tt.expr {
				t.Errorf("expected source %q, got %q", tt.expr, expr.String())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		expr string
		pos  int
	}{
		{expr: "", pos: 0},
		{expr: "   ", pos: 3},
		{expr: "name.", pos: 5},
		{expr: "name..given", pos: 5},
		{expr: "(1 + 2", pos: 6},
		{expr: "1 2", pos: 2},
		{expr: "name[x]", pos: 5},
		{expr: "where(a,)", pos: 8},
		{expr: "a is 'b'", pos: 5},
		{expr: "99999999999", pos: 0},
		{expr: "@2024-13-01", pos: 0},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Parse(tt.expr)
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("expected SyntaxError, got %v", err)
			}
			if syntaxErr.Pos != tt.pos {
				t.Errorf("expected position %d, got %d (%v)", tt.pos, syntaxErr.Pos, err)
			}
			if syntaxErr.Expr != tt.expr {
				t.Errorf("expected expression %q, got %q", tt.expr, syntaxErr.Expr)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("name.")
}

func TestRoot(t *testing.T) {
	tests := []struct {
		expr     string
		mode     RootMode
		rootType string
	}{
		{expr: "Patient.name", mode: RootAbsolute, rootType: "Patient"},
		{expr: "Patient.name.given.count() > 1", mode: RootAbsolute, rootType: "Patient"},
		{expr: "name.given", mode: RootRelative},
		{expr: "exists()", mode: RootRelative},
		{expr: "%resource.id", mode: RootNone},
		{expr: "1 + 1", mode: RootNone},
		{expr: "'a'.length()", mode: RootNone},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			mode, rootType := MustParse(tt.expr).Root()
			if mode != tt.mode || rootType != tt.rootType {
				t.Errorf("expected %s %q, got %s %q", tt.mode, tt.rootType, mode, rootType)
			}
		})
	}
}

func TestReturnType(t *testing.T) {
	tests := []struct {
		expr string
		want returnType
	}{
		{expr: "name.given", want: typeCollection},
		{expr: "name.exists()", want: typeBoolean},
		{expr: "name.count()", want: typeInteger},
		{expr: "a = b", want: typeBoolean},
		{expr: "a and b", want: typeBoolean},
		{expr: "1 + 2", want: typeInteger},
		{expr: "1 / 2", want: typeDecimal},
		{expr: "'a' + 'b'", want: typeString},
		{expr: "a & b", want: typeString},
		{expr: "a.toString()", want: typeString},
		{expr: "a | b", want: typeCollection},
		{expr: "value is Quantity", want: typeBoolean},
		{expr: "@2024 + 1", want: typeDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if got := returnTypeOf(MustParse(tt.expr).Tree()); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
