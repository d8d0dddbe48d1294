package match

import (
	"sort"
)

const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.5
	// DefaultSuggestions is the number of names suggested at most.
	DefaultSuggestions = 3
)

// Candidate is a known name scored against a target.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by score, highest first.
type CandidateList []Candidate

// RankNames scores every name against target.
func RankNames(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, Candidate{Name: name, Score: NameSimilarity(target, name)})
	}

	sort.Sort(candidates)
	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less orders by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// Suggest returns the names close enough to target to be offered instead,
// best first. An exact match is never suggested.
func Suggest(target string, names []string) []string {
	var others []string
	for _, name := range names {
		if name != target {
			others = append(others, name)
		}
	}

	ranked := RankNames(target, others).AboveThreshold(DefaultMinScore).Top(DefaultSuggestions)
	if len(ranked) == 0 {
		return nil
	}

	return ranked.Names()
}
