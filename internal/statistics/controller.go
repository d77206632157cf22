package statistics

import (
	"github.com/markusressel/amdfan2go/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	fanSpeed       *prometheus.Desc
	avgTemperature *prometheus.Desc
	iterations     *prometheus.Desc
	samplingErrors *prometheus.Desc
}

func NewControllerCollector() *ControllerCollector {
	return &ControllerCollector{
		fanSpeed: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "fan_speed_fraction"),
			"Relative fan speed within [0..1] computed by the fan curve",
			[]string{"id"}, nil,
		),
		avgTemperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "temperature_avg_celsius"),
			"Moving average of the sampled temperature",
			[]string{"id"}, nil,
		),
		iterations: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "iterations_total"),
			"Counter for completed control loop iterations",
			[]string{"id"}, nil,
		),
		samplingErrors: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "sampling_errors_total"),
			"Counter for failed temperature sensor reads",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.fanSpeed
	ch <- collector.avgTemperature
	ch <- collector.iterations
	ch <- collector.samplingErrors
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for deviceId, snapshot := range controller.SnapshotMap.Items() {
		ch <- prometheus.MustNewConstMetric(collector.iterations, prometheus.CounterValue, float64(snapshot.Iterations), deviceId)
		ch <- prometheus.MustNewConstMetric(collector.samplingErrors, prometheus.CounterValue, float64(snapshot.SamplingErrors), deviceId)
		if snapshot.Iterations == 0 {
			continue
		}
		ch <- prometheus.MustNewConstMetric(collector.fanSpeed, prometheus.GaugeValue, snapshot.FanSpeed, deviceId)
		ch <- prometheus.MustNewConstMetric(collector.avgTemperature, prometheus.GaugeValue, snapshot.AvgTemperature, deviceId)
	}
}
