package snack

import (
	"snackbot/internal/pkg/textfold"

	"github.com/adrg/strutil/metrics"
)

// Similarity is the pairwise comparison result for two snacks. Scores are
// normalized to [0,1].
type Similarity struct {
	NameScore        float64
	DescriptionScore float64
}

// SameItem reports whether two snacks are exactly the same catalog item,
// by canonical product id. This check takes precedence over fuzzy scores.
func SameItem(a, b Snack) bool {
	return a.BoxedID != "" && a.BoxedID == b.BoxedID
}

// Compare scores a candidate snack against an existing one. Equal non-empty
// UPCs short-circuit to a perfect score; otherwise name and description are
// scored independently with a bigram Sorensen-Dice ratio, missing text
// treated as empty. Pure and deterministic.
func Compare(existing, candidate Snack) Similarity {
	if existing.UPC != "" && existing.UPC == candidate.UPC {
		return Similarity{NameScore: 1, DescriptionScore: 1}
	}
	return Similarity{
		NameScore:        textRatio(existing.Name, candidate.Name),
		DescriptionScore: textRatio(existing.Description, candidate.Description),
	}
}

// SimilarEnough applies the prompt policy: both scores must clear their
// thresholds before the user is asked to resolve the conflict.
func (s Similarity) SimilarEnough(nameThreshold, descriptionThreshold float64) bool {
	return s.NameScore > nameThreshold && s.DescriptionScore > descriptionThreshold
}

func textRatio(a, b string) float64 {
	a, b = textfold.Fold(a), textfold.Fold(b)
	if a == b {
		return 1
	}
	dice := metrics.NewSorensenDice()
	dice.NgramSize = 2
	return dice.Compare(a, b)
}
