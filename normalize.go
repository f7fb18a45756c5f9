package morphan

// Normalize scales raw so that it sums to 1. An empty or all-zero input
// is returned as an empty slice.
func Normalize(raw []float64) []float64 {
	var sum float64
	for _, r := range raw {
		sum += r
	}
	if sum == 0 {
		return []float64{}
	}
	out := make([]float64, len(raw))
	for i, r := range raw {
		out[i] = r / sum
	}
	return out
}

// normalizeAnalyses fills in Score from Raw for one word's analyses.
func normalizeAnalyses(analyses []Analysis) {
	raw := make([]float64, len(analyses))
	for i, a := range analyses {
		raw[i] = a.Raw
	}
	for i, s := range Normalize(raw) {
		analyses[i].Score = s
	}
}
