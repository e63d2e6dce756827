package textutil

// CosineSimilarity returns the cosine of the angle between a and b, or 0 when
// either is nil or zero.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	small, large := a.weights, b.weights
	if len(large) < len(small) {
		small, large = large, small
	}
	var dot float64
	for term, w := range small {
		dot += w * large[term]
	}
	return dot / (a.norm * b.norm)
}
