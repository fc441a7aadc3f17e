package tdop

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	l := NewLexer()
	l.RegisterToken(newA, `a`)
	l.RegisterToken(newB, `aa`)
	cases := []struct {
		src  string
		want []Token
		err  error
	}{
		// blanks
		{"", []Token{&End{}}, nil},
		{" \t \t ", []Token{&End{}}, nil},
		// longest match wins regardless of registration order
		{"a", []Token{&aTok{Base{Lit: "a"}}, &End{}}, nil},
		{"aa", []Token{&bTok{Base{Lit: "aa"}}, &End{}}, nil},
		{"aaa", []Token{&bTok{Base{Lit: "aa"}}, &aTok{Base{Lit: "a"}}, &End{}}, nil},
		{"aaaa", []Token{&bTok{Base{Lit: "aa"}}, &bTok{Base{Lit: "aa"}}, &End{}}, nil},
		// blanks separate tokens and break runs
		{"a a", []Token{&aTok{Base{Lit: "a"}}, &aTok{Base{Lit: "a"}}, &End{}}, nil},
		{" aa\ta ", []Token{&bTok{Base{Lit: "aa"}}, &aTok{Base{Lit: "a"}}, &End{}}, nil},
		// default parens
		{"(a)", []Token{&LeftParen{Base{Lit: "("}}, &aTok{Base{Lit: "a"}}, &RightParen{Base{Lit: ")"}}, &End{}}, nil},
		{")(", []Token{&RightParen{Base{Lit: ")"}}, &LeftParen{Base{Lit: "("}}, &End{}}, nil},
		// invalid characters end the scan without an End
		{"$", nil, &LexError{Char: '$', Rest: "$", Col: 1}},
		{"a$a", []Token{&aTok{Base{Lit: "a"}}}, &LexError{Char: '$', Rest: "$a", Col: 2}},
		{"aa $", []Token{&bTok{Base{Lit: "aa"}}}, &LexError{Char: '$', Rest: "$", Col: 4}},
		{"\naa", nil, &LexError{Char: '\n', Rest: "\naa", Col: 1}},
	}
	for _, c := range cases {
		scan := l.Lex(c.src)
		for i, want := range c.want {
			got, err := scan.Next()
			if err != nil {
				t.Errorf("scanning %q: token %d: unexpected error %v", c.src, i, err)
				break
			}
			if reflect.TypeOf(got) != reflect.TypeOf(want) || got.Text() != want.Text() {
				t.Errorf("scanning %q: token %d: want %T %q, got %T %q", c.src, i, want, want.Text(), got, got.Text())
			}
		}
		got, err := scan.Next()
		switch {
		case c.err == nil && err != io.EOF:
			t.Errorf("scanning %q: after last token want EOF, got %v with error %v", c.src, got, err)
		case c.err != nil && !reflect.DeepEqual(err, c.err):
			t.Errorf("scanning %q: want terminal error %v, got %v", c.src, c.err, err)
		}
		// The scan is single-pass: after the end or an error, only EOF.
		if _, err := scan.Next(); err != io.EOF {
			t.Errorf("scanning %q: exhausted scan returned %v", c.src, err)
		}
	}
}

func TestScanPositions(t *testing.T) {
	// Positions count runes, not bytes.
	l := NewLexer()
	l.RegisterToken(newA, `π+`)
	scan := l.Lex("ππ π$")
	for i := 0; i < 2; i++ {
		if _, err := scan.Next(); err != nil {
			t.Fatalf("token %d: unexpected error %v", i, err)
		}
	}
	_, err := scan.Next()
	lerr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %T %v", err, err)
	}
	if lerr.Col != 5 {
		t.Errorf("want error at rune column 5, got %d", lerr.Col)
	}
	if lerr.Char != '$' || lerr.Rest != "$" {
		t.Errorf("want char '$' with rest %q, got %q with rest %q", "$", lerr.Char, lerr.Rest)
	}
}

func TestScanIndependent(t *testing.T) {
	// Scans from one lexer do not interfere with one another.
	l := NewLexer(Parens(false))
	l.RegisterToken(newA, `a`)
	s1 := l.Lex("a a")
	s2 := l.Lex("a")
	if _, err := s1.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := s2.Next(); err != nil {
		t.Fatal(err)
	}
	if tok, err := s2.Next(); err != nil {
		t.Fatal(err)
	} else if _, ok := tok.(*End); !ok {
		t.Errorf("short scan should be at its end, got %T", tok)
	}
	if tok, err := s1.Next(); err != nil {
		t.Fatal(err)
	} else if _, ok := tok.(*aTok); !ok {
		t.Errorf("long scan should have a token left, got %T", tok)
	}
}

func TestBlanksOption(t *testing.T) {
	l := NewLexer(Blanks("_"), Parens(false))
	l.RegisterToken(newA, `a`)
	scan := l.Lex("_a_a_")
	for i := 0; i < 2; i++ {
		tok, err := scan.Next()
		if err != nil {
			t.Fatalf("token %d: unexpected error %v", i, err)
		}
		if _, ok := tok.(*aTok); !ok {
			t.Errorf("token %d: want *aTok, got %T", i, tok)
		}
	}
	if tok, err := scan.Next(); err != nil {
		t.Fatal(err)
	} else if _, ok := tok.(*End); !ok {
		t.Errorf("want end of input, got %T", tok)
	}
	// The default blanks no longer apply.
	scan = l.Lex("a a")
	if _, err := scan.Next(); err != nil {
		t.Fatal(err)
	}
	_, err := scan.Next()
	lerr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("space should not lex: want *LexError, got %T %v", err, err)
	}
	if lerr.Char != ' ' {
		t.Errorf("want error on space, got %q", lerr.Char)
	}
}

func TestParensOption(t *testing.T) {
	if l := NewLexer(); len(l.Tokens.entries) != 2 {
		t.Errorf("default lexer should register 2 paren patterns, has %d", len(l.Tokens.entries))
	}
	l := NewLexer(Parens(false))
	if len(l.Tokens.entries) != 0 {
		t.Errorf("lexer without parens should register no patterns, has %d", len(l.Tokens.entries))
	}
	if _, err := l.Lex("(").Next(); err == nil {
		t.Error("paren lexed without paren tokens")
	}
}

func TestScanReconstructs(t *testing.T) {
	// Concatenating scanned token texts gives the input with blanks removed,
	// and every successful scan ends with exactly one End.
	l := NewLexer()
	l.RegisterToken(newA, `a`)
	l.RegisterToken(newB, `aa`)
	srcs := []string{"", " ", "a", "aaa", "(aa) a", "\ta ( ) aaaa\t"}
	for _, src := range srcs {
		var b strings.Builder
		ends := 0
		scan := l.Lex(src)
		for {
			tok, err := scan.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("scanning %q: %v", src, err)
			}
			if _, ok := tok.(*End); ok {
				ends++
				continue
			}
			b.WriteString(tok.Text())
		}
		want := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' {
				return -1
			}
			return r
		}, src)
		if b.String() != want {
			t.Errorf("scanning %q reconstructed %q, want %q", src, b.String(), want)
		}
		if ends != 1 {
			t.Errorf("scanning %q yielded %d end tokens", src, ends)
		}
	}
}

func BenchmarkScan(b *testing.B) {
	l := NewLexer()
	l.RegisterToken(newA, `a`)
	l.RegisterToken(newB, `aa`)
	src := strings.Repeat("aaa (aa) ", 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scan := l.Lex(src)
		for {
			if _, err := scan.Next(); err != nil {
				break
			}
		}
	}
}
