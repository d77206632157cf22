package curve

import (
	"math"
	"sort"

	"github.com/markusressel/amdfan2go/internal/configuration"
	"github.com/markusressel/amdfan2go/internal/util"
)

// Point is a single breakpoint of a control curve, mapping a temperature
// in degrees celsius to a relative fan speed in [0..1].
type Point struct {
	Temperature float64 `json:"temperature"`
	FanSpeed    float64 `json:"fanSpeed"`
}

// ControlCurve is a piecewise linear mapping from temperature to
// relative fan speed. Breakpoints are ordered by temperature ascending,
// which configuration validation establishes before a curve is built.
type ControlCurve struct {
	points []Point
}

func New(points []Point) *ControlCurve {
	return &ControlCurve{
		points: points,
	}
}

// FromConfig builds the curve defined by the parallel breakpoint lists
// of the given configuration.
func FromConfig(config configuration.CurveConfig) *ControlCurve {
	points := make([]Point, 0, len(config.Temperatures))
	for i, temperature := range config.Temperatures {
		points = append(points, Point{
			Temperature: temperature,
			FanSpeed:    config.FanSpeeds[i],
		})
	}
	return New(points)
}

// Points returns a copy of the breakpoints of this curve.
func (c *ControlCurve) Points() []Point {
	points := make([]Point, len(c.points))
	copy(points, c.points)
	return points
}

// Evaluate maps the given temperature to a relative fan speed.
// Inputs below the first breakpoint return the first fan speed, inputs
// above the last breakpoint return the last one. An empty curve and a
// NaN input evaluate to NaN, which callers must treat as a broken
// precondition rather than a fan speed.
func (c *ControlCurve) Evaluate(input float64) float64 {
	if len(c.points) == 0 || math.IsNaN(input) {
		return math.NaN()
	}

	highIndex := sort.Search(len(c.points), func(i int) bool {
		return c.points[i].Temperature >= input
	})

	if highIndex == 0 {
		// input is below the lowest breakpoint
		return c.points[0].FanSpeed
	}
	if highIndex == len(c.points) {
		// input is above the highest breakpoint
		return c.points[highIndex-1].FanSpeed
	}

	low := c.points[highIndex-1]
	high := c.points[highIndex]
	ratio := util.Ratio(input, low.Temperature, high.Temperature)
	return low.FanSpeed + ratio*(high.FanSpeed-low.FanSpeed)
}
