package utils

// SafeDivide divide num por den retornando 0 quando o denominador é zero.
// Nenhuma razão derivada do pipeline pode produzir NaN ou Inf.
func SafeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}
