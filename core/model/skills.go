package model

import (
	"sort"
	"strings"
)

// SkillSet is a normalized set of skill tokens. Tokens are lower-cased and
// trimmed; the empty token is never a member.
type SkillSet map[string]struct{}

// ParseSkills tokenizes a free-text skill list. Commas and semicolons both act
// as delimiters. An empty or unparsable field yields an empty set, never nil
// semantics the caller has to special-case.
func ParseSkills(raw string) SkillSet {
	set := make(SkillSet)
	for _, tok := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// Intersect returns the members present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(SkillSet)
	for tok := range small {
		if _, ok := large[tok]; ok {
			out[tok] = struct{}{}
		}
	}
	return out
}

// Diff returns the members of other that are missing from s.
func (s SkillSet) Diff(other SkillSet) SkillSet {
	out := make(SkillSet)
	for tok := range other {
		if _, ok := s[tok]; !ok {
			out[tok] = struct{}{}
		}
	}
	return out
}

// Contains reports membership of the normalized token.
func (s SkillSet) Contains(tok string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(tok))]
	return ok
}

// Sorted returns the tokens in lexical order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Join renders the set as a sorted, comma separated string.
func (s SkillSet) Join() string {
	return strings.Join(s.Sorted(), ",")
}
