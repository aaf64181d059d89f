package dialect

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// KeywordSet is a named, case-insensitive keyword membership set owned by a
// dialect. Membership edits are only possible before the owning dialect is
// published. There is no meaningful ordering within a set.
type KeywordSet struct {
	name    string
	owner   *Dialect
	members map[string]struct{}
}

// Name returns the set name.
func (s *KeywordSet) Name() string {
	return s.name
}

// Update adds keywords to the set. Re-adding a present keyword is a no-op.
// The call is atomic: if any keyword would violate a mutual-exclusion axis
// it fails before anything is inserted.
func (s *KeywordSet) Update(keywords ...string) error {
	if s.owner.published {
		return ErrPublished
	}
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		norm := NormalizeKeyword(kw)
		if norm == "" {
			continue
		}
		if conflict := s.owner.exclusiveConflict(s.name, norm); conflict != "" {
			return &KeywordClassificationError{
				Dialect:     s.owner.name,
				Keyword:     norm,
				Set:         s.name,
				ConflictSet: conflict,
			}
		}
		normalized = append(normalized, norm)
	}
	for _, norm := range normalized {
		s.members[norm] = struct{}{}
	}
	return nil
}

// DifferenceUpdate removes keywords from the set. Removing an absent
// keyword is a no-op, not an error.
func (s *KeywordSet) DifferenceUpdate(keywords ...string) error {
	if s.owner.published {
		return ErrPublished
	}
	for _, kw := range keywords {
		delete(s.members, NormalizeKeyword(kw))
	}
	return nil
}

// Contains reports membership, case-insensitively.
func (s *KeywordSet) Contains(keyword string) bool {
	_, ok := s.members[NormalizeKeyword(keyword)]
	return ok
}

// Members returns the stored keywords, sorted for deterministic output.
func (s *KeywordSet) Members() []string {
	members := make([]string, 0, len(s.members))
	for kw := range s.members {
		members = append(members, kw)
	}
	sort.Strings(members)
	return members
}

// Len returns the number of keywords in the set.
func (s *KeywordSet) Len() int {
	return len(s.members)
}

/// NormalizeKeyword returns the stored form of a keyword: trimmed and
// upper-cased, matching the convention of keyword resource files.
func NormalizeKeyword(keyword string) string {
	return strings.ToUpper(strings.TrimSpace(keyword))
}

// ReadKeywords reads a keyword resource: one keyword per line, surrounding
// whitespace trimmed, blank lines ignored, case-insensitive.
func ReadKeywords(r io.Reader) ([]string, error) {
	var keywords []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		kw := NormalizeKeyword(scanner.Text())
		if kw == "" {
			continue
		}
		keywords = append(keywords, kw)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keywords, nil
}
