package match

import (
	"sort"
	"strings"
)

// DefaultMinScore is the similarity below which Suggest stays silent.
const DefaultMinScore = 0.6

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// NormalizeIdent folds case and drops '_', '-', '.' and spaces.
func NormalizeIdent(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch r {
		case '_', '-', '.', ' ':
			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// Rank scores every known name against name, best first. Ties keep the
// order of known.
func Rank(name string, known []string) []Candidate {
	norm := NormalizeIdent(name)

	out := make([]Candidate, 0, len(known))
	for _, k := range known {
		out = append(out, Candidate{Name: k, Score: Similarity(norm, NormalizeIdent(k))})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// Suggest returns up to limit known names scoring at least minScore,
// best first. A name that matches exactly is never suggested.
func Suggest(name string, known []string, minScore float64, limit int) []string {
	var out []string

	for _, c := range Rank(name, known) {
		if len(out) == limit || c.Score < minScore {
			break
		}

		if c.Name == name {
			continue
		}

		out = append(out, c.Name)
	}

	return out
}
