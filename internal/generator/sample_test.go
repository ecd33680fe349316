package generator

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleCount_Zero(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, SampleCount(NewStream("zero_"+strconv.Itoa(i)), 0))
	}
}

func TestSampleCount_Integral(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, 5, SampleCount(NewStream("five_"+strconv.Itoa(i)), 5.0))
	}
}

func TestSampleCount_InvalidAverages(t *testing.T) {
	assert.Equal(t, 0, SampleCount(NewStream("neg"), -2.5))
	assert.Equal(t, 0, SampleCount(NewStream("nan"), math.NaN()))
	assert.Equal(t, 0, SampleCount(NewStream("inf"), math.Inf(1)))
}

func TestSampleCount_ConsumesOneValue(t *testing.T) {
	for _, avg := range []float64{0, 2.5, 5} {
		a, b := NewStream("consume"), NewStream("consume")
		SampleCount(a, avg)
		b.Float64()
		assert.Equal(t, b.Float64(), a.Float64(), "average %v", avg)
	}
}

func TestSampleCount_ExpectationLaw(t *testing.T) {
	const (
		n   = 20000
		avg = 2.5
	)
	sum := 0
	for i := 0; i < n; i++ {
		c := SampleCount(NewStream("law_"+strconv.Itoa(i)), avg)
		assert.Contains(t, []int{2, 3}, c)
		sum += c
	}
	// standard error is 0.5/sqrt(n) ~ 0.0035
	assert.InDelta(t, avg, float64(sum)/n, 0.05)
}
