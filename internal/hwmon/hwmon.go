package hwmon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Attribute files of a hwmon sensor group used for fan control.
// Only the first channel is relevant, amdgpu exposes one fan per card.
const (
	TempInputFile = "temp1_input"
	PwmFile       = "pwm1"
	PwmEnableFile = "pwm1_enable"
	PwmMinFile    = "pwm1_min"
	PwmMaxFile    = "pwm1_max"
)

// Device is a single hwmon sensor group of a GPU, bundling its
// temperature input with its pwm output. The pwm bounds are read once
// at construction and are read-only afterwards.
type Device struct {
	id              string
	pathTemperature string
	pathPwm         string
	pathPwmEnable   string
	pwmMin          Pwm
	pwmMax          Pwm
}

// ForDevice opens all hwmon sensor groups below the given device path,
// usually /sys/class/drm/cardX/device. It fails with an IOError if the
// hwmon directory cannot be listed and returns an empty slice if the
// listing holds no groups.
func ForDevice(devicePath string) ([]*Device, error) {
	hwmonPath := filepath.Join(devicePath, "hwmon")
	entries, err := os.ReadDir(hwmonPath)
	if err != nil {
		return nil, &IOError{Op: "list", Path: hwmonPath, Err: err}
	}

	var result []*Device
	for _, entry := range entries {
		groupPath := filepath.Join(hwmonPath, entry.Name())
		// entry.IsDir is false for symlinked groups, stat follows them
		info, err := os.Stat(groupPath)
		if err != nil || !info.IsDir() {
			continue
		}
		device, err := NewDevice(groupPath)
		if err != nil {
			return nil, err
		}
		result = append(result, device)
	}
	return result, nil
}

// NewDevice opens the hwmon sensor group at the given path, eagerly
// reading its pwm bounds. Bounds with min > max are rejected here so
// that the conversion in PwmFromFraction never sees them.
func NewDevice(controllerPath string) (*Device, error) {
	pwmMin, err := readValue(filepath.Join(controllerPath, PwmMinFile))
	if err != nil {
		return nil, err
	}
	pwmMax, err := readValue(filepath.Join(controllerPath, PwmMaxFile))
	if err != nil {
		return nil, err
	}
	if pwmMin > pwmMax {
		return nil, &InvalidFanSpeedError{Min: Pwm(pwmMin), Max: Pwm(pwmMax)}
	}

	return &Device{
		id:              filepath.Base(controllerPath),
		pathTemperature: filepath.Join(controllerPath, TempInputFile),
		pathPwm:         filepath.Join(controllerPath, PwmFile),
		pathPwmEnable:   filepath.Join(controllerPath, PwmEnableFile),
		pwmMin:          Pwm(pwmMin),
		pwmMax:          Pwm(pwmMax),
	}, nil
}

func (d *Device) GetId() string {
	return d.id
}

// GetTemperature reads the current temperature from the device.
// Every call hits the sysfs file, values are never cached.
func (d *Device) GetTemperature() (Temperature, error) {
	raw, err := readValue(d.pathTemperature)
	if err != nil {
		return 0, err
	}
	return Temperature(raw), nil
}

func (d *Device) GetPwmMin() Pwm {
	return d.pwmMin
}

func (d *Device) GetPwmMax() Pwm {
	return d.pwmMax
}

// GetPwm reads back the currently applied pwm value.
func (d *Device) GetPwm() (Pwm, error) {
	raw, err := readValue(d.pathPwm)
	if err != nil {
		return 0, err
	}
	return Pwm(raw), nil
}

// GetPwmMode reads the current control mode. Values other than the
// manual/automatic sentinels surface as a ParseError.
func (d *Device) GetPwmMode() (PwmMode, error) {
	raw, err := readValue(d.pathPwmEnable)
	if err != nil {
		return 0, err
	}
	mode := PwmMode(raw)
	switch mode {
	case PwmModeManual, PwmModeAutomatic:
		return mode, nil
	}
	return 0, &ParseError{Path: d.pathPwmEnable, Raw: strconv.Itoa(raw)}
}

// SetPwmMode switches fan control between userspace and hardware.
func (d *Device) SetPwmMode(mode PwmMode) error {
	return writeValue(d.pathPwmEnable, strconv.Itoa(int(mode)))
}

// SetPwm applies the given raw pwm value to the fan.
func (d *Device) SetPwm(pwm Pwm) error {
	return writeValue(d.pathPwm, fmt.Sprintf("%d\n", int(pwm)))
}

// readValue reads the first line of the file at the given path and
// parses it as a signed integer. sysfs attributes hold one value per
// file, anything beyond the first line is ignored.
func readValue(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, &IOError{Op: "read", Path: path, Err: err}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	value, parseErr := strconv.Atoi(line)
	if parseErr != nil {
		return 0, &ParseError{Path: path, Raw: line}
	}
	return value, nil
}

func writeValue(path string, value string) error {
	if err := os.WriteFile(path, []byte(value), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
