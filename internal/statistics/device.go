package statistics

import (
	"github.com/markusressel/amdfan2go/internal/controller"
	"github.com/markusressel/amdfan2go/internal/hwmon"
	"github.com/prometheus/client_golang/prometheus"
)

const deviceSubsystem = "device"

type DeviceCollector struct {
	device *hwmon.Device

	temperature *prometheus.Desc
	pwm         *prometheus.Desc
	pwmMin      *prometheus.Desc
	pwmMax      *prometheus.Desc
}

func NewDeviceCollector(device *hwmon.Device) *DeviceCollector {
	return &DeviceCollector{
		device: device,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, deviceSubsystem, "temperature_celsius"),
			"Last sampled temperature of the device",
			[]string{"id"}, nil,
		),
		pwm: prometheus.NewDesc(prometheus.BuildFQName(namespace, deviceSubsystem, "pwm"),
			"Last PWM value written to the device",
			[]string{"id"}, nil,
		),
		pwmMin: prometheus.NewDesc(prometheus.BuildFQName(namespace, deviceSubsystem, "pwm_min"),
			"Lower PWM bound of the device",
			[]string{"id"}, nil,
		),
		pwmMax: prometheus.NewDesc(prometheus.BuildFQName(namespace, deviceSubsystem, "pwm_max"),
			"Upper PWM bound of the device",
			[]string{"id"}, nil,
		),
	}
}

func (collector *DeviceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
	ch <- collector.pwm
	ch <- collector.pwmMin
	ch <- collector.pwmMax
}

// Collect implements required collect function for all prometheus collectors
func (collector *DeviceCollector) Collect(ch chan<- prometheus.Metric) {
	deviceId := collector.device.GetId()

	// bounds are cached at construction time and never change
	ch <- prometheus.MustNewConstMetric(collector.pwmMin, prometheus.GaugeValue, float64(collector.device.GetPwmMin()), deviceId)
	ch <- prometheus.MustNewConstMetric(collector.pwmMax, prometheus.GaugeValue, float64(collector.device.GetPwmMax()), deviceId)

	snapshot, ok := controller.SnapshotMap.Get(deviceId)
	if !ok || snapshot.Iterations == 0 {
		return
	}
	ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, snapshot.Temperature.Celsius(), deviceId)
	ch <- prometheus.MustNewConstMetric(collector.pwm, prometheus.GaugeValue, float64(snapshot.Pwm), deviceId)
}
