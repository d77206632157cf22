package controller

import (
	"context"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/amdfan2go/internal/curve"
	"github.com/markusressel/amdfan2go/internal/hwmon"
	"github.com/markusressel/amdfan2go/internal/ui"
	"github.com/markusressel/amdfan2go/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// number of temperature samples used for the moving average
const temperatureWindowSize = 10

var (
	// SnapshotMap holds the most recent state of each running fan
	// controller, keyed by device id. Read by the REST api and the
	// statistics collectors.
	SnapshotMap = cmap.New[Snapshot]()
)

// Snapshot is the state of a fan controller after an iteration.
type Snapshot struct {
	DeviceId       string            `json:"deviceId"`
	Temperature    hwmon.Temperature `json:"temperature"`
	AvgTemperature float64           `json:"avgTemperature"`
	FanSpeed       float64           `json:"fanSpeed"`
	Pwm            hwmon.Pwm         `json:"pwm"`
	Iterations     uint64            `json:"iterations"`
	SamplingErrors uint64            `json:"samplingErrors"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Device is the part of a hwmon sensor group the controller drives.
type Device interface {
	GetId() string
	GetTemperature() (hwmon.Temperature, error)
	GetPwmMin() hwmon.Pwm
	GetPwmMax() hwmon.Pwm
	SetPwmMode(mode hwmon.PwmMode) error
	SetPwm(pwm hwmon.Pwm) error
}

type FanController interface {
	// Run engages manual fan control and blocks in the control loop
	// until the context is cancelled or an unrecoverable error occurs.
	// Automatic fan control is restored before it returns, no matter
	// how the loop ended.
	Run(ctx context.Context) error
	// UpdateFanSpeed runs a single sample/actuate cycle.
	UpdateFanSpeed() error
}

type fanController struct {
	device       Device
	curve        *curve.ControlCurve
	pollInterval time.Duration

	tempWindow *rolling.PointPolicy

	iterations     uint64
	samplingErrors uint64
}

func NewFanController(device Device, controlCurve *curve.ControlCurve, pollInterval time.Duration) FanController {
	return &fanController{
		device:       device,
		curve:        controlCurve,
		pollInterval: pollInterval,
		tempWindow:   util.CreateRollingWindow(temperatureWindowSize),
	}
}

func (f *fanController) Run(ctx context.Context) error {
	// restore pwm_enable on every exit path, including a failed enable
	defer f.restorePwmMode()

	ui.Info("Enabling manual fan control on %s", f.device.GetId())
	err := f.device.SetPwmMode(hwmon.PwmModeManual)
	if err != nil {
		return err
	}

	err = f.loop(ctx)
	if err != nil {
		ui.Error("Control loop aborted: %v", err)
	} else {
		ui.Info("Control loop stopped")
	}
	return err
}

func (f *fanController) loop(ctx context.Context) error {
	tick := time.Tick(f.pollInterval)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		err := f.UpdateFanSpeed()
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}
}

func (f *fanController) UpdateFanSpeed() error {
	device := f.device

	temperature, err := device.GetTemperature()
	if err != nil {
		f.samplingErrors++
		f.publishFailure()
		return err
	}
	temperatureCelsius := temperature.Celsius()
	f.tempWindow.Append(temperatureCelsius)

	fanSpeed := f.curve.Evaluate(temperatureCelsius)

	pwm, err := hwmon.PwmFromFraction(device.GetPwmMin(), device.GetPwmMax(), fanSpeed)
	if err != nil {
		return err
	}

	ui.Debug("T_cur=%5.1f°C\tV_rel=%5.1f%%\tV_pwm=%3d", temperatureCelsius, fanSpeed*100.0, pwm)

	err = device.SetPwm(pwm)
	if err != nil {
		return err
	}

	f.iterations++
	f.publishSnapshot(temperature, fanSpeed, pwm)
	return nil
}

func (f *fanController) restorePwmMode() {
	device := f.device
	err := device.SetPwmMode(hwmon.PwmModeAutomatic)
	if err != nil {
		ui.ErrorAndNotify("Fan Control", "CRITICAL: could not restore automatic fan control on %s: %v", device.GetId(), err)
	} else {
		ui.Info("Automatic fan control restored on %s", device.GetId())
	}
}

func (f *fanController) publishSnapshot(temperature hwmon.Temperature, fanSpeed float64, pwm hwmon.Pwm) {
	SnapshotMap.Set(f.device.GetId(), Snapshot{
		DeviceId:       f.device.GetId(),
		Temperature:    temperature,
		AvgTemperature: f.tempWindow.Reduce(rolling.Avg),
		FanSpeed:       fanSpeed,
		Pwm:            pwm,
		Iterations:     f.iterations,
		SamplingErrors: f.samplingErrors,
		UpdatedAt:      time.Now(),
	})
}

func (f *fanController) publishFailure() {
	snapshot, _ := SnapshotMap.Get(f.device.GetId())
	snapshot.DeviceId = f.device.GetId()
	snapshot.Iterations = f.iterations
	snapshot.SamplingErrors = f.samplingErrors
	snapshot.UpdatedAt = time.Now()
	SnapshotMap.Set(f.device.GetId(), snapshot)
}
