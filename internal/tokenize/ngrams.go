package tokenize

// ExtractNGrams expands stopword-free chunks into candidate keywords.
//
// With flexible=true every contiguous subsequence of every length from 1 up
// to min(size, len(chunk)) is emitted, shortest first. With flexible=false
// only the windows of length min(size, len(chunk)) are emitted, so a chunk
// shorter than size still yields itself once.
func ExtractNGrams(chunks [][]string, size int, flexible bool) []Candidate {
	var candidates []Candidate

	if flexible {
		for _, chunk := range chunks {
			limit := min(size, len(chunk))
			for n := 1; n <= limit; n++ {
				for i := 0; i+n <= len(chunk); i++ {
					candidates = append(candidates, Candidate(chunk[i:i+n]))
				}
			}
		}
		return candidates
	}

	for _, chunk := range chunks {
		n := min(size, len(chunk))
		for i := 0; i+n <= len(chunk); i++ {
			candidates = append(candidates, Candidate(chunk[i:i+n]))
		}
	}
	return candidates
}
