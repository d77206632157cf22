package configuration

import (
	"errors"
	"fmt"
	"math"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	err := validateControl(config)
	if err != nil {
		return err
	}
	err = validateCurve(config)
	if err != nil {
		return err
	}
	err = validateStatistics(config)
	if err != nil {
		return err
	}
	return validateApi(config)
}

func validateControl(config *Configuration) error {
	if len(config.CardPath) <= 0 {
		return errors.New("CardPath must not be empty")
	}
	if config.PollInterval <= 0 {
		return errors.New(fmt.Sprintf("PollInterval must be positive, got '%s'", config.PollInterval))
	}
	return nil
}

func validateCurve(config *Configuration) error {
	curveConfig := config.Curve

	if len(curveConfig.Temperatures) <= 0 {
		return errors.New("Curve: at least one temperature/fanSpeed pair is required")
	}
	if len(curveConfig.Temperatures) != len(curveConfig.FanSpeeds) {
		return errors.New(fmt.Sprintf("Curve: temperatures (%d) and fanSpeeds (%d) must have the same number of entries", len(curveConfig.Temperatures), len(curveConfig.FanSpeeds)))
	}

	for idx, temperature := range curveConfig.Temperatures {
		if math.IsNaN(temperature) || math.IsInf(temperature, 0) {
			return errors.New(fmt.Sprintf("Curve: temperature at index %d is not a finite number", idx))
		}
		if idx > 0 && temperature <= curveConfig.Temperatures[idx-1] {
			return errors.New(fmt.Sprintf("Curve: temperatures must be strictly ascending, entry %d (%v) does not increase on its predecessor (%v)", idx, temperature, curveConfig.Temperatures[idx-1]))
		}
	}

	for idx, fanSpeed := range curveConfig.FanSpeeds {
		if math.IsNaN(fanSpeed) || fanSpeed < 0 || fanSpeed > 1 {
			return errors.New(fmt.Sprintf("Curve: fanSpeed at index %d must be within [0..1], got %v", idx, fanSpeed))
		}
	}

	return nil
}

func validateStatistics(config *Configuration) error {
	statisticsConfig := config.Statistics
	if statisticsConfig.Enabled {
		if statisticsConfig.Port <= 0 || statisticsConfig.Port > 65535 {
			return errors.New(fmt.Sprintf("Statistics: invalid port %d", statisticsConfig.Port))
		}
	}
	return nil
}

func validateApi(config *Configuration) error {
	apiConfig := config.Api
	if apiConfig.Enabled {
		if apiConfig.Port <= 0 || apiConfig.Port > 65535 {
			return errors.New(fmt.Sprintf("Api: invalid port %d", apiConfig.Port))
		}
	}
	return nil
}
