package jaundice

// ScoreResult holds the outcome of rating a lemma sequence against a
// charged lexicon.
type ScoreResult struct {
	// Matched lists the lemmas found in the lexicon, in input order.
	// A lemma appears once per occurrence in the input.
	Matched []string

	// Rate is the percentage of charged lemmas over the total lemma
	// count, in [0, 100].
	Rate float64
}

// Score rates lemmas against the lexicon. Matching is exact lemma
// equality; there is no partial or fuzzy matching. An empty sequence
// scores 0 rather than dividing by zero.
func Score(lemmas []string, lexicon *Lexicon) ScoreResult {
	if len(lemmas) == 0 {
		return ScoreResult{}
	}

	var matched []string
	for _, lemma := range lemmas {
		if lexicon.Contains(lemma) {
			matched = append(matched, lemma)
		}
	}

	return ScoreResult{
		Matched: matched,
		Rate:    100 * float64(len(matched)) / float64(len(lemmas)),
	}
}
