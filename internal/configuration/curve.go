package configuration

// CurveConfig defines the fan curve as two parallel lists. Entry i maps
// Temperatures[i] (degrees celsius) to FanSpeeds[i] (relative speed
// within [0..1]).
type CurveConfig struct {
	Temperatures []float64 `json:"temperatures"`
	FanSpeeds    []float64 `json:"fanSpeeds"`
}
