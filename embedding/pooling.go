package embedding

// MeanPool reduces a multi-vector to a single vector by taking the
// arithmetic mean independently per component across all rows (the token
// axis). The output length equals the row length.
//
// Components are accumulated in float64 before dividing, so long documents
// don't lose precision to repeated float32 rounding. An empty multi-vector
// pools to nil.
func MeanPool(rows [][]float32) []float32 {
	if len(rows) == 0 {
		return nil
	}

	dim := len(rows[0])
	sums := make([]float64, dim)
	for _, row := range rows {
		for j, v := range row {
			sums[j] += float64(v)
		}
	}

	n := float64(len(rows))
	pooled := make([]float32, dim)
	for j, s := range sums {
		pooled[j] = float32(s / n)
	}
	return pooled
}
