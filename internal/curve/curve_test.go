package curve

import (
	"math"
	"testing"

	"github.com/markusressel/amdfan2go/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func makeTestCurve() *ControlCurve {
	return New([]Point{
		{Temperature: 10, FanSpeed: 5},
		{Temperature: 30, FanSpeed: 10},
		{Temperature: 50, FanSpeed: 50},
		{Temperature: 100, FanSpeed: 80},
	})
}

func TestEvaluateClamping(t *testing.T) {
	// GIVEN
	curve := makeTestCurve()

	// WHEN
	belowFirst := curve.Evaluate(0)
	aboveLast := curve.Evaluate(110)

	// THEN
	assert.Equal(t, 5.0, belowFirst)
	assert.Equal(t, 80.0, aboveLast)
}

func TestEvaluateExactBreakpoints(t *testing.T) {
	// GIVEN
	curve := makeTestCurve()

	// WHEN
	atFirst := curve.Evaluate(10)
	atSecond := curve.Evaluate(30)

	// THEN
	assert.Equal(t, 5.0, atFirst)
	assert.Equal(t, 10.0, atSecond)
}

func TestEvaluateInterpolates(t *testing.T) {
	// GIVEN
	curve := makeTestCurve()

	// WHEN
	betweenFirstPair := curve.Evaluate(20)
	betweenSecondPair := curve.Evaluate(45)

	// THEN
	assert.Equal(t, 7.5, betweenFirstPair)
	assert.Equal(t, 40.0, betweenSecondPair)
}

func TestEvaluateEmptyCurve(t *testing.T) {
	// GIVEN
	curve := New(nil)

	// WHEN
	result := curve.Evaluate(50)

	// THEN
	assert.True(t, math.IsNaN(result))
}

func TestEvaluateNaNInput(t *testing.T) {
	// GIVEN
	curve := makeTestCurve()

	// WHEN
	result := curve.Evaluate(math.NaN())

	// THEN
	assert.True(t, math.IsNaN(result))
}

func TestEvaluateSinglePoint(t *testing.T) {
	// GIVEN
	curve := New([]Point{
		{Temperature: 60, FanSpeed: 0.5},
	})

	// WHEN
	below := curve.Evaluate(0)
	at := curve.Evaluate(60)
	above := curve.Evaluate(100)

	// THEN
	assert.Equal(t, 0.5, below)
	assert.Equal(t, 0.5, at)
	assert.Equal(t, 0.5, above)
}

func TestFromConfig(t *testing.T) {
	// GIVEN
	config := configuration.CurveConfig{
		Temperatures: []float64{40, 60, 80},
		FanSpeeds:    []float64{0.0, 0.5, 1.0},
	}

	// WHEN
	curve := FromConfig(config)

	// THEN
	assert.Equal(t, []Point{
		{Temperature: 40, FanSpeed: 0.0},
		{Temperature: 60, FanSpeed: 0.5},
		{Temperature: 80, FanSpeed: 1.0},
	}, curve.Points())
	assert.Equal(t, 0.25, curve.Evaluate(50))
}
