package model

import "time"

// Keyword is a single ranked keyword with its RAKE score
type Keyword struct {
	Text  string  `json:"text"`  // Space-joined tokens, original casing of the last occurrence
	Score float64 `json:"score"` // Sum of word degree/frequency scores
}

// Result is the complete outcome of one extraction run
type Result struct {
	Source      string    `json:"source"`       // Input path, or "-" for stdin
	ExtractedAt time.Time `json:"extracted_at"` // When the extraction ran

	Keywords []Keyword `json:"keywords"` // Ranked, highest score first

	VocabularySize int `json:"vocabulary_size"` // Distinct lowercased tokens across candidates
	CandidateCount int `json:"candidate_count"` // Candidate keywords before scoring
	SentenceCount  int `json:"sentence_count"`  // Sentences segmented from the document

	Extraction ExtractionConfig `json:"extraction"` // Settings the run used
}
