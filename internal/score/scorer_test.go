package score

import (
	"math"
	"testing"

	"github.com/fievelk/kwe/internal/model"
	"github.com/fievelk/kwe/internal/tokenize"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScorer_WordScores(t *testing.T) {
	scorer := NewScorer()

	candidates := []tokenize.Candidate{
		{"endangered"},
		{"species"},
		{"endangered", "species"},
		{"Wolves"},
	}
	g := BuildGraph(candidates)

	scores := scorer.WordScores(g)

	// endangered: degree 3 (freq 2 + co-occurrence 1), frequency 2
	if !almostEqual(scores["endangered"], 1.5) {
		t.Errorf("Expected score 1.5 for 'endangered', got %f", scores["endangered"])
	}
	if !almostEqual(scores["species"], 1.5) {
		t.Errorf("Expected score 1.5 for 'species', got %f", scores["species"])
	}
	// wolves: isolated unigram, degree == frequency == 1
	if !almostEqual(scores["wolves"], 1.0) {
		t.Errorf("Expected score 1.0 for 'wolves', got %f", scores["wolves"])
	}
}

func TestScorer_KeywordScores_SumOfWordScores(t *testing.T) {
	scorer := NewScorer()

	candidates := []tokenize.Candidate{
		{"endangered"},
		{"species"},
		{"endangered", "species"},
	}
	g := BuildGraph(candidates)

	keywords := scorer.KeywordScores(g, candidates)

	byText := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		byText[kw.Text] = kw.Score
	}

	if !almostEqual(byText["endangered species"], 3.0) {
		t.Errorf("Expected 'endangered species' score 3.0, got %f", byText["endangered species"])
	}
	if !almostEqual(byText["endangered"], 1.5) {
		t.Errorf("Expected 'endangered' score 1.5, got %f", byText["endangered"])
	}
}

func TestScorer_KeywordScores_FirstInsertionOrder(t *testing.T) {
	scorer := NewScorer()

	candidates := []tokenize.Candidate{
		{"alpha", "bravo"},
		{"charlie"},
		{"alpha", "bravo"}, // duplicate canonical key
	}
	g := BuildGraph(candidates)

	keywords := scorer.KeywordScores(g, candidates)

	if len(keywords) != 2 {
		t.Fatalf("Expected 2 keywords after key collision, got %d", len(keywords))
	}
	if keywords[0].Text != "alpha bravo" || keywords[1].Text != "charlie" {
		t.Errorf("Expected first-insertion order [alpha bravo, charlie], got [%s, %s]",
			keywords[0].Text, keywords[1].Text)
	}
}

func TestScorer_KeywordScores_CaseSensitiveKeys(t *testing.T) {
	scorer := NewScorer()

	// Same word, different casing: word scores merge case-insensitively
	// but the output keys stay distinct.
	candidates := []tokenize.Candidate{
		{"Food"},
		{"food"},
	}
	g := BuildGraph(candidates)

	keywords := scorer.KeywordScores(g, candidates)

	if len(keywords) != 2 {
		t.Fatalf("Expected 2 case-distinct keywords, got %d", len(keywords))
	}
	for _, kw := range keywords {
		if !almostEqual(kw.Score, 1.0) {
			t.Errorf("Expected score 1.0 for %q, got %f", kw.Text, kw.Score)
		}
	}
}

func TestScorer_Prune_KeepsTopThirdOfVocabulary(t *testing.T) {
	scorer := NewScorer()

	keywords := []model.Keyword{
		{Text: "low", Score: 1},
		{Text: "high", Score: 9},
		{Text: "mid", Score: 5},
		{Text: "highest", Score: 12},
	}

	pruned := scorer.Prune(keywords, 9)

	if len(pruned) != 3 {
		t.Fatalf("Expected floor(9/3) = 3 keywords, got %d", len(pruned))
	}
	wantOrder := []string{"highest", "high", "mid"}
	for i, want := range wantOrder {
		if pruned[i].Text != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, pruned[i].Text)
		}
	}
}

func TestScorer_Prune_TinyVocabularyYieldsEmpty(t *testing.T) {
	scorer := NewScorer()

	keywords := []model.Keyword{
		{Text: "hello", Score: 1},
		{Text: "world", Score: 1},
	}

	pruned := scorer.Prune(keywords, 2)

	if len(pruned) != 0 {
		t.Errorf("Expected empty result for vocabulary of 2, got %d keywords", len(pruned))
	}
}

func TestScorer_Prune_StableTies(t *testing.T) {
	scorer := NewScorer()

	keywords := []model.Keyword{
		{Text: "first", Score: 2},
		{Text: "second", Score: 2},
		{Text: "third", Score: 2},
	}

	pruned := scorer.Prune(keywords, 9)

	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if pruned[i].Text != want {
			t.Errorf("Tie order broken at %d: expected %q, got %q", i, want, pruned[i].Text)
		}
	}
}

func TestScorer_Rank_EndToEnd(t *testing.T) {
	scorer := NewScorer()

	// Candidates of the two-sentence wolves/food document with
	// max size 3 and flexible windowing.
	candidates := []tokenize.Candidate{
		{"Wolves"},
		{"endangered"}, {"species"}, {"endangered", "species"},
		{"Food"},
		{"substance"}, {"consumed"}, {"substance", "consumed"},
		{"provide"}, {"nutritional"}, {"support"},
		{"provide", "nutritional"}, {"nutritional", "support"},
		{"provide", "nutritional", "support"},
		{"body"},
	}
	g := BuildGraph(candidates)

	if got := g.VocabularySize(); got != 10 {
		t.Fatalf("Expected vocabulary of 10, got %d", got)
	}

	ranked := scorer.Rank(g, candidates)

	if len(ranked) != 3 {
		t.Fatalf("Expected floor(10/3) = 3 ranked keywords, got %d", len(ranked))
	}
	if ranked[0].Text != "provide nutritional support" {
		t.Errorf("Expected 'provide nutritional support' first, got %q", ranked[0].Text)
	}
	if !almostEqual(ranked[0].Score, 6.0) {
		t.Errorf("Expected top score 6.0, got %f", ranked[0].Score)
	}
	// The two bigrams tie at 4.0 and keep insertion order
	if ranked[1].Text != "provide nutritional" || ranked[2].Text != "nutritional support" {
		t.Errorf("Expected [provide nutritional, nutritional support], got [%s, %s]",
			ranked[1].Text, ranked[2].Text)
	}
}
