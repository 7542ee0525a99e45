package score

import (
	"sort"
	"strings"

	"github.com/fievelk/kwe/internal/model"
	"github.com/fievelk/kwe/internal/tokenize"
)

// Scorer turns a co-occurrence graph and a candidate list into ranked
// keywords
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// WordScores computes degree(w)/frequency(w) for every vocabulary word.
// A word only enters the vocabulary by occurring in at least one candidate,
// which sets its diagonal count to at least one, so the division is safe.
func (s *Scorer) WordScores(g *Graph) map[string]float64 {
	scores := make(map[string]float64, g.VocabularySize())
	for i, word := range g.words {
		scores[word] = float64(g.degreeAt(i)) / float64(g.counts[i*len(g.words)+i])
	}
	return scores
}

// KeywordScores aggregates word scores into per-keyword scores, in first-
// insertion order. The canonical key of a candidate is its tokens joined by
// single spaces with original casing kept, so keys are fully case-sensitive.
// When the same canonical key recurs, the later score overwrites the earlier
// one (last-write-wins, never aggregation) while the keyword keeps its
// original position.
func (s *Scorer) KeywordScores(g *Graph, candidates []tokenize.Candidate) []model.Keyword {
	wordScores := s.WordScores(g)

	var keywords []model.Keyword
	position := make(map[string]int, len(candidates))

	for _, cand := range candidates {
		total := 0.0
		for _, tok := range cand {
			total += wordScores[strings.ToLower(tok)]
		}

		key := cand.String()
		if at, seen := position[key]; seen {
			keywords[at].Score = total
			continue
		}
		position[key] = len(keywords)
		keywords = append(keywords, model.Keyword{Text: key, Score: total})
	}
	return keywords
}

// Prune sorts keywords by score descending and keeps the best
// floor(vocabularySize/3) of them. The sort is stable, so ties keep their
// first-insertion order. A cutoff of zero yields an empty, valid result.
func (s *Scorer) Prune(keywords []model.Keyword, vocabularySize int) []model.Keyword {
	sorted := make([]model.Keyword, len(keywords))
	copy(sorted, keywords)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	n := vocabularySize / 3
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Rank is the full scoring stage: graph to ranked, pruned keywords
func (s *Scorer) Rank(g *Graph, candidates []tokenize.Candidate) []model.Keyword {
	return s.Prune(s.KeywordScores(g, candidates), g.VocabularySize())
}
