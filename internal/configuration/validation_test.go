package configuration

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() Configuration {
	return Configuration{
		CardPath:     "/sys/class/drm/card0/device",
		PollInterval: 500 * time.Millisecond,
		Curve: CurveConfig{
			Temperatures: []float64{10, 30, 50, 100},
			FanSpeeds:    []float64{0.05, 0.1, 0.5, 0.8},
		},
		Statistics: StatisticsConfig{
			Enabled: false,
			Port:    9000,
		},
		Api: ApiConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    9001,
		},
	}
}

func TestValidateValidConfig(t *testing.T) {
	// GIVEN
	config := validTestConfig()

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateEmptyCardPath(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.CardPath = ""

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "CardPath must not be empty")
}

func TestValidateNonPositivePollInterval(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.PollInterval = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "PollInterval must be positive, got '0s'")
}

func TestValidateEmptyCurve(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Curve = CurveConfig{}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "Curve: at least one temperature/fanSpeed pair is required")
}

func TestValidateCurveLengthMismatch(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Curve = CurveConfig{
		Temperatures: []float64{10, 30, 50},
		FanSpeeds:    []float64{0.05, 0.1},
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "Curve: temperatures (3) and fanSpeeds (2) must have the same number of entries")
}

func TestValidateCurveNotAscending(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Curve = CurveConfig{
		Temperatures: []float64{10, 50, 30},
		FanSpeeds:    []float64{0.05, 0.1, 0.5},
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, fmt.Sprintf("Curve: temperatures must be strictly ascending, entry %d (%v) does not increase on its predecessor (%v)", 2, 30.0, 50.0))
}

func TestValidateCurveDuplicateTemperature(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Curve = CurveConfig{
		Temperatures: []float64{10, 30, 30},
		FanSpeeds:    []float64{0.05, 0.1, 0.5},
	}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "strictly ascending")
}

func TestValidateCurveTemperatureNaN(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Curve.Temperatures[1] = math.NaN()

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "Curve: temperature at index 1 is not a finite number")
}

func TestValidateCurveFanSpeedOutOfRange(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Curve.FanSpeeds[2] = 1.5

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "Curve: fanSpeed at index 2 must be within [0..1], got 1.5")
}

func TestValidateCurveFanSpeedNegative(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Curve.FanSpeeds[0] = -0.1

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "Curve: fanSpeed at index 0 must be within [0..1], got -0.1")
}

func TestValidateStatisticsInvalidPort(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Statistics.Enabled = true
	config.Statistics.Port = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "Statistics: invalid port 0")
}

func TestValidateStatisticsPortIgnoredWhenDisabled(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Statistics.Enabled = false
	config.Statistics.Port = -1

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateApiInvalidPort(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Api.Enabled = true
	config.Api.Port = 70000

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.EqualError(t, err, "Api: invalid port 70000")
}
