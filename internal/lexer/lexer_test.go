package lexer

import (
	"math/big"
	"testing"

	"github.com/chrismichaelps/solis/internal/token"
)

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func lastNonEOF(toks []token.Token) token.Token {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].Type != token.EOF {
			return toks[i]
		}
	}
	return token.Token{}
}

func TestTokenizeIdentifiersAndKeywords(t *testing.T) {
	toks := Tokenize("let add = Cons")
	got := types(toks)
	want := []token.Type{token.LET, token.IDENT, token.ASSIGN, token.CONSTRUCTOR, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeNumberKinds(t *testing.T) {
	cases := []struct {
		src  string
		typ  token.Type
		lit  interface{}
	}{
		{"42", token.INT, int64(42)},
		{"3.14", token.FLOAT, 3.14},
		{"2e10", token.FLOAT, 2e10},
		{"42n", token.BIG_INT, big.NewInt(42)},
	}
	for _, c := range cases {
		toks := Tokenize(c.src)
		tok := toks[0]
		if tok.Type != c.typ {
			t.Fatalf("%q: got type %s want %s", c.src, tok.Type, c.typ)
		}
		if bi, ok := c.lit.(*big.Int); ok {
			gotBI, ok := tok.Literal.(*big.Int)
			if !ok || gotBI.Cmp(bi) != 0 {
				t.Fatalf("%q: got literal %v want %v", c.src, tok.Literal, bi)
			}
			continue
		}
		if tok.Literal != c.lit {
			t.Fatalf("%q: got literal %v want %v", c.src, tok.Literal, c.lit)
		}
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks := Tokenize(`"a\nb\"c"`)
	tok := toks[0]
	if tok.Type != token.STRING {
		t.Fatalf("got type %s want STRING", tok.Type)
	}
	if tok.Literal != "a\nb\"c" {
		t.Fatalf("got %q", tok.Literal)
	}
}

func TestTokenizeCharLiteral(t *testing.T) {
	toks := Tokenize(`'\n'`)
	tok := toks[0]
	if tok.Type != token.CHAR || tok.Literal != "\n" {
		t.Fatalf("got %v %v", tok.Type, tok.Literal)
	}
}

func TestTokenizeOperatorsDisambiguateLongestMatch(t *testing.T) {
	toks := Tokenize(":: : -> | |> && & ++ +")
	got := types(toks)
	want := []token.Type{
		token.CONS, token.COLON, token.ARROW, token.PIPE, token.PIPE_GT,
		token.AND, token.ILLEGAL, token.CONCAT, token.PLUS, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestTokenizeSkipsLineAndBlockComments(t *testing.T) {
	toks := Tokenize("1 // comment\n2 -- also comment\n/* block */ 3")
	got := types(toks)
	want := []token.Type{token.INT, token.INT, token.INT, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestTokenizeOverflowingIntIsIllegal(t *testing.T) {
	toks := Tokenize("99999999999999999999")
	if toks[0].Type != token.ILLEGAL {
		t.Fatalf("want ILLEGAL for overflowing int, got %s", toks[0].Type)
	}
}

func TestTokenizeUnterminatedStringIsIllegal(t *testing.T) {
	toks := Tokenize(`"abc`)
	tok := lastNonEOF(toks)
	if tok.Type != token.ILLEGAL {
		t.Fatalf("want ILLEGAL, got %s", tok.Type)
	}
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	toks := Tokenize("let\nx")
	// "x" starts on line 2, column 1.
	var xTok token.Token
	for _, tk := range toks {
		if tk.Type == token.IDENT {
			xTok = tk
			break
		}
	}
	if xTok.Line != 2 {
		t.Fatalf("got line %d want 2", xTok.Line)
	}
	if xTok.Column != 1 {
		t.Fatalf("got column %d want 1", xTok.Column)
	}
}
