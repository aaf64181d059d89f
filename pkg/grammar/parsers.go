package grammar

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/sqlgram/pkg/token"
)

// KeywordMatcher matches a single word token case-insensitively.
type KeywordMatcher struct {
	Value string
}

// Keyword matches the given keyword, case-insensitively, against one word
// token.
func Keyword(value string) *KeywordMatcher {
	return &KeywordMatcher{Value: value}
}

// Match implements Node.
func (m *KeywordMatcher) Match(ctx *Context, pos int) (int, bool, error) {
	tok, ok := ctx.At(pos)
	if !ok || tok.Type != token.Word {
		return 0, false, nil
	}
	if !strings.EqualFold(tok.Raw, m.Value) {
		return 0, false, nil
	}
	return 1, true, nil
}

// SymbolMatcher matches a single token whose raw text equals Value exactly.
// Used for operators and punctuation produced as symbol tokens.
type SymbolMatcher struct {
	Value string
}

// Sym matches the given symbol text against one token.
func Sym(value string) *SymbolMatcher {
	return &SymbolMatcher{Value: value}
}

// Match implements Node.
func (m *SymbolMatcher) Match(ctx *Context, pos int) (int, bool, error) {
	tok, ok := ctx.At(pos)
	if !ok || tok.Raw != m.Value {
		return 0, false, nil
	}
	return 1, true, nil
}

// RegexMatcher matches a single token whose raw text matches an anchored,
// case-insensitive pattern. An optional trim rule strips quote characters
// from the value the matcher reports, without affecting what it matches.
type RegexMatcher struct {
	Pattern   string
	TrimChars string

	re         *regexp.Regexp
	compileErr error
}

// Regex matches one token against the given pattern. The pattern is
// anchored to the whole token and compiled case-insensitively; compile
// failures surface at dialect publication, not at construction.
func Regex(pattern string) *RegexMatcher {
	m := &RegexMatcher{Pattern: pattern}
	m.re, m.compileErr = regexp.Compile(`(?is)\A(?:` + pattern + `)\z`)
	return m
}

// Trim sets the characters stripped from matched values.
func (m *RegexMatcher) Trim(chars string) *RegexMatcher {
	m.TrimChars = chars
	return m
}

// Err returns the pattern compile error, if any. Checked during dialect
// validation so a bad pattern aborts publication instead of failing
// mid-match.
func (m *RegexMatcher) Err() error {
	return m.compileErr
}

// Match implements Node.
func (m *RegexMatcher) Match(ctx *Context, pos int) (int, bool, error) {
	if m.compileErr != nil {
		return 0, false, m.compileErr
	}
	tok, ok := ctx.At(pos)
	if !ok || !tok.IsCode() {
		return 0, false, nil
	}
	if !m.re.MatchString(tok.Raw) {
		return 0, false, nil
	}
	return 1, true, nil
}

// MatchedValue returns the value reported for a matched token, with trim
// characters removed.
func (m *RegexMatcher) MatchedValue(tok token.Token) string {
	if m.TrimChars == "" {
		return tok.Raw
	}
	return strings.Trim(tok.Raw, m.TrimChars)
}

// TypedMatcher matches a single token of a given lexeme class, such as
// numeric literals or double-quoted forms.
type TypedMatcher struct {
	TokenType token.Type
	TrimChars string
}

// Typed matches one token of the given lexeme class.
func Typed(t token.Type) *TypedMatcher {
	return &TypedMatcher{TokenType: t}
}

// Trim sets the characters stripped from matched values, typically the
// surrounding quotes of a quoted form.
func (m *TypedMatcher) Trim(chars string) *TypedMatcher {
	m.TrimChars = chars
	return m
}

// Match implements Node.
func (m *TypedMatcher) Match(ctx *Context, pos int) (int, bool, error) {
	tok, ok := ctx.At(pos)
	if !ok || tok.Type != m.TokenType {
		return 0, false, nil
	}
	return 1, true, nil
}

// MatchedValue returns the value reported for a matched token, with trim
// characters removed.
func (m *TypedMatcher) MatchedValue(tok token.Token) string {
	if m.TrimChars == "" {
		return tok.Raw
	}
	return strings.Trim(tok.Raw, m.TrimChars)
}

// SetMatcher matches a single word token that belongs to a named keyword
// set of the dialect being matched. Used directly, or as the exclusion of
// an identifier matcher so that reclassifying a keyword between sets is
// observable at match time.
type SetMatcher struct {
	Set string
}

// KeywordOf matches any keyword belonging to the named set.
func KeywordOf(set string) *SetMatcher {
	return &SetMatcher{Set: set}
}

// Match implements Node.
func (m *SetMatcher) Match(ctx *Context, pos int) (int, bool, error) {
	tok, ok := ctx.At(pos)
	if !ok || tok.Type != token.Word {
		return 0, false, nil
	}
	in, err := ctx.Resolver.InSet(m.Set, tok.Raw)
	if err != nil {
		return 0, false, err
	}
	if !in {
		return 0, false, nil
	}
	return 1, true, nil
}
