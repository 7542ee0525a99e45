// Package score builds the word co-occurrence graph for a document and
// derives RAKE keyword scores from it.
package score

import (
	"strings"

	"github.com/fievelk/kwe/internal/tokenize"
)

// Graph is the symmetric co-occurrence table of one extraction run. Words
// are lowercased and mapped to dense indices; counts live in a flat n*n
// slice so the hot inner loop of the build never hashes strings. The
// diagonal holds word frequencies.
type Graph struct {
	index  map[string]int // lowercased word -> matrix index
	words  []string       // matrix index -> lowercased word
	counts []int          // flat n*n count matrix, row-major
}

// BuildGraph builds the co-occurrence graph from the full candidate list.
// Two words co-occur once for every candidate keyword that contains them
// both; a word co-occurring with itself increments its frequency.
func BuildGraph(candidates []tokenize.Candidate) *Graph {
	g := &Graph{index: make(map[string]int)}

	for _, cand := range candidates {
		for _, tok := range cand {
			word := strings.ToLower(tok)
			if _, ok := g.index[word]; !ok {
				g.index[word] = len(g.words)
				g.words = append(g.words, word)
			}
		}
	}

	n := len(g.words)
	g.counts = make([]int, n*n)

	indices := make([]int, 0, 8)
	for _, cand := range candidates {
		indices = indices[:0]
		for _, tok := range cand {
			indices = append(indices, g.index[strings.ToLower(tok)])
		}
		for _, i := range indices {
			row := i * n
			for _, j := range indices {
				g.counts[row+j]++
			}
		}
	}
	return g
}

// VocabularySize returns the number of distinct lowercased words
func (g *Graph) VocabularySize() int {
	return len(g.words)
}

// Words returns the vocabulary in insertion order
func (g *Graph) Words() []string {
	out := make([]string, len(g.words))
	copy(out, g.words)
	return out
}

// Count returns the co-occurrence count of two words, case-insensitively.
// Unknown words count zero.
func (g *Graph) Count(w1, w2 string) int {
	i, ok := g.index[strings.ToLower(w1)]
	if !ok {
		return 0
	}
	j, ok := g.index[strings.ToLower(w2)]
	if !ok {
		return 0
	}
	return g.counts[i*len(g.words)+j]
}

// Frequency returns the number of occurrences of w across all candidates,
// read from the matrix diagonal
func (g *Graph) Frequency(w string) int {
	return g.Count(w, w)
}

// Degree returns the sum of all co-occurrence counts of w, including its
// self-count
func (g *Graph) Degree(w string) int {
	i, ok := g.index[strings.ToLower(w)]
	if !ok {
		return 0
	}
	return g.degreeAt(i)
}

func (g *Graph) degreeAt(i int) int {
	n := len(g.words)
	row := g.counts[i*n : (i+1)*n]
	sum := 0
	for _, c := range row {
		sum += c
	}
	return sum
}
