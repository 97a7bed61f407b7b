package token_test

import (
	"testing"

	"github.com/chrismichaelps/solis/internal/token"
)

func TestLookupIdentKeyword(t *testing.T) {
	if got := token.LookupIdent("match"); got != token.MATCH {
		t.Fatalf("got %s, want MATCH", got)
	}
}

func TestLookupIdentCapitalizationSplitsIdentVsConstructor(t *testing.T) {
	if got := token.LookupIdent("foo"); got != token.IDENT {
		t.Fatalf("got %s, want IDENT", got)
	}
	if got := token.LookupIdent("Foo"); got != token.CONSTRUCTOR {
		t.Fatalf("got %s, want CONSTRUCTOR", got)
	}
}

func TestBinaryOperatorsMembership(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/", "%", "==", "!=", "<", ">", "<=", ">=", "&&", "||", "++", "::", ":", "|>"} {
		if !token.BinaryOperators[op] {
			t.Errorf("expected %q to be a recognized binary operator", op)
		}
	}
	if token.BinaryOperators["->"] {
		t.Errorf("'->' is a type arrow, not a binary operator")
	}
}
