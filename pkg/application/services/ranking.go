package services

import "vectorplan/pkg/domain/entities"

// rankKey is the shared tie-break chain applied to every ranked ordering:
// descending score, then descending penetration, descending requirement,
// descending top-SKU flag, and finally ascending SKU code. The SKU tail
// makes every ordering a deterministic total order, so equal inputs
// always produce identical ranks.
type rankKey struct {
	Score       float64
	Penetration float64
	Requirement float64
	TopSKU      bool
	SKU         entities.SKUCode
}

// scoreKey builds the tie-break key for a scored record under a given
// score variant.
func scoreKey(r *entities.ScoredRecord, score float64) rankKey {
	return rankKey{
		Score:       score,
		Penetration: r.PenetrationValue(),
		Requirement: r.Requirement,
		TopSKU:      r.TopSKU,
		SKU:         r.SKU,
	}
}

// lessRanked reports whether a sorts before b in descending-score order.
func lessRanked(a, b rankKey) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Penetration != b.Penetration {
		return a.Penetration > b.Penetration
	}
	if a.Requirement != b.Requirement {
		return a.Requirement > b.Requirement
	}
	if a.TopSKU != b.TopSKU {
		return a.TopSKU
	}
	return a.SKU < b.SKU
}

// normalizeBatch divides each value by the batch maximum, clamping
// negative results to 0. A non-positive maximum zeroes the whole column
// (degenerate-batch guard), so normalized values always lie in [0,1]
// and the batch-maximum record scores exactly 1.
func normalizeBatch(values []float64) []float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	normalized := make([]float64, len(values))
	if max <= 0 {
		return normalized
	}
	for i, v := range values {
		n := v / max
		if n < 0 {
			n = 0
		}
		normalized[i] = n
	}
	return normalized
}
