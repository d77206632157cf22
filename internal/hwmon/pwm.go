package hwmon

import (
	"math"

	"github.com/markusressel/amdfan2go/internal/util"
)

// Pwm is a raw fan PWM value. Its exact meaning depends on the
// pwm1_min/pwm1_max bounds of the device it is written to.
type Pwm int

// PwmMode selects who is in control of the fan, using the values the
// hwmon sysfs interface defines for pwm1_enable.
type PwmMode int

const (
	// PwmModeManual hands fan control to userspace
	PwmModeManual PwmMode = 1
	// PwmModeAutomatic returns fan control to the hardware
	PwmModeAutomatic PwmMode = 2
)

func (m PwmMode) String() string {
	switch m {
	case PwmModeManual:
		return "manual"
	case PwmModeAutomatic:
		return "automatic"
	}
	return "unknown"
}

// PwmFromFraction converts a relative fan speed in [0..1] into a raw pwm
// value within the given bounds. Out-of-range fractions are clamped.
// A non-finite computation result, including a NaN fraction, fails with
// an InvalidFanSpeedError carrying the original, unclamped fraction.
func PwmFromFraction(min Pwm, max Pwm, fraction float64) (Pwm, error) {
	clamped := util.Coerce(fraction, 0.0, 1.0)
	pwmFloat := float64(min) + (float64(max)-float64(min))*clamped
	if math.IsNaN(pwmFloat) || math.IsInf(pwmFloat, 0) {
		return 0, &InvalidFanSpeedError{Min: min, Max: max, Fraction: fraction}
	}
	return Pwm(int(math.Floor(pwmFloat))), nil
}
