package analytics

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

const hoursPerDay = 24

func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	return stat.Mean(values, nil), true
}

// populationStdDev usa divisor N. Série vazia resulta em 0.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	_, std := stat.PopMeanStdDev(values, nil)
	return std
}

// slope calcula a inclinação por mínimos quadrados contra o índice 0..n-1
func slope(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	index := make([]float64, len(values))
	for i := range index {
		index[i] = float64(i)
	}

	_, beta := stat.LinearRegression(index, values, nil, false)
	if math.IsNaN(beta) {
		return 0
	}

	return beta
}

// movingAverage retorna a média móvel à direita; posições sem janela completa ficam nil
func movingAverage(values []float64, window int) []*float64 {
	result := make([]*float64, len(values))
	if window <= 0 {
		return result
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}

		if i >= window-1 {
			avg := sum / float64(window)
			result[i] = &avg
		}
	}

	return result
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}

	return values[len(values)-n:]
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

// wholeDays arredonda para baixo, como a parte de dias de um intervalo
func wholeDays(d time.Duration) float64 {
	return math.Floor(d.Hours() / hoursPerDay)
}

func floatPtr(v float64) *float64 {
	return &v
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// dayOf retorna a data de calendário do instante, representada à meia-noite UTC
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
