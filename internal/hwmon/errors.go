package hwmon

import (
	"fmt"
)

// Errors of this layer form a closed set of types so that callers can
// tell filesystem failures apart from garbage file content and from
// impossible actuation values.

// IOError indicates a filesystem failure while accessing a device file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError indicates unexpected content in a device file. Raw holds
// the first line as read, or the empty string if there was none.
type ParseError struct {
	Path string
	Raw  string
}

func (e *ParseError) Error() string {
	if len(e.Raw) <= 0 {
		return fmt.Sprintf("could not parse empty content of %s", e.Path)
	}
	return fmt.Sprintf("could not parse %q from %s", e.Raw, e.Path)
}

// InvalidFanSpeedError indicates a fan speed computation whose result
// cannot be written to the device.
type InvalidFanSpeedError struct {
	Min      Pwm
	Max      Pwm
	Fraction float64
}

func (e *InvalidFanSpeedError) Error() string {
	return fmt.Sprintf("computation resulted in invalid fan speed (min=%d max=%d fraction=%v)", e.Min, e.Max, e.Fraction)
}

// DeviceNotFoundError indicates that no hwmon sensor group exists below
// the configured device path.
type DeviceNotFoundError struct {
	Root string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("no hwmon sensor group found below %s", e.Root)
}
