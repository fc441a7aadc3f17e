package tdop

import "regexp"

// Constructor builds a token from the source text its pattern matched.
// Constructors for stateful grammars are usually closures over whatever
// state the grammar needs, e.g. an evaluation context or a symbol table.
type Constructor func(text string) Token

// Candidate pairs a registered constructor with the text its pattern matched
// at the start of some input.
type Candidate struct {
	// New is the registered constructor.
	New Constructor
	// Text is the matched text.
	Text string
}

type entry struct {
	new Constructor
	re  *regexp.Regexp
}

// Registry maps patterns to token constructors. The zero value is ready to
// use. A registry preserves registration order because order is part of
// matching: when two patterns match text of the same length, the one
// registered first wins.
type Registry struct {
	entries []entry
}

// Register adds a constructor under a pattern. The pattern uses regexp
// syntax and is implicitly anchored at the start of input. One constructor
// may be registered under any number of patterns. Register panics if the
// pattern does not compile or newToken is nil; both are grammar definition
// bugs rather than input errors.
func (r *Registry) Register(newToken Constructor, pattern string) {
	if newToken == nil {
		panic("tdop: register with nil constructor")
	}
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	r.entries = append(r.entries, entry{newToken, re})
}

// Candidates returns every registered constructor whose pattern matches a
// nonempty prefix of text, in registration order, each paired with its
// matched text. The result is nil when text is empty or nothing matches.
func (r *Registry) Candidates(text string) []Candidate {
	var v []Candidate
	for _, e := range r.entries {
		if n := matchlen(e.re, text); n > 0 {
			v = append(v, Candidate{e.new, text[:n]})
		}
	}
	return v
}

// Match selects the registered constructor whose pattern matches the longest
// nonempty prefix of text, breaking ties in favor of the one registered
// first. It returns a nil constructor and an empty string when nothing
// matches. A pattern matching the empty string never produces a token, so
// lexing cannot stall on one.
func (r *Registry) Match(text string) (Constructor, string) {
	var best Constructor
	m := 0
	for _, e := range r.entries {
		if n := matchlen(e.re, text); n > m {
			best, m = e.new, n
		}
	}
	if best == nil {
		return nil, ""
	}
	return best, text[:m]
}

// matchlen returns the length in bytes of re's match at the start of text,
// or 0 for no match or an empty match.
func matchlen(re *regexp.Regexp, text string) int {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return 0
	}
	return loc[1]
}
