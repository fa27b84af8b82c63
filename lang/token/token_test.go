package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		if k.String() == "" {
			t.Errorf("missing string representation of kind %d", k)
		}
	}
}

func TestLookupIdent(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		expect := k >= AND && k <= WHILE
		name := kindNames[k]
		got := LookupIdent(name)
		if expect {
			require.Equal(t, k, got)
		} else {
			require.Equal(t, IDENT, got)
		}
	}
}

func TestLiteralString(t *testing.T) {
	cases := []struct {
		name string
		lit  Literal
		want string
	}{
		{"nil", Literal{Kind: NilLiteral}, "nil"},
		{"true", Literal{Kind: BoolLiteral, Bool: true}, "true"},
		{"false", Literal{Kind: BoolLiteral, Bool: false}, "false"},
		{"number", Literal{Kind: NumberLiteral, Number: 1.5}, "1.5"},
		{"string", Literal{Kind: StringLiteral, Str: "hi"}, "hi"},
		{"none", Literal{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.lit.String())
		})
	}
}
