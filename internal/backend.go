package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/markusressel/amdfan2go/internal/api"
	"github.com/markusressel/amdfan2go/internal/configuration"
	"github.com/markusressel/amdfan2go/internal/controller"
	"github.com/markusressel/amdfan2go/internal/curve"
	"github.com/markusressel/amdfan2go/internal/hwmon"
	"github.com/markusressel/amdfan2go/internal/statistics"
	"github.com/markusressel/amdfan2go/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires root permissions to be able to modify fan speeds, please run amdfan2go as root")
	}

	cardPath := configuration.CurrentConfig.CardPath
	pollInterval := configuration.CurrentConfig.PollInterval

	ui.Info("Card: %s", cardPath)
	ui.Info("Poll: %s", pollInterval)

	device := DiscoverDevice(cardPath)

	controlCurve := curve.FromConfig(configuration.CurrentConfig.Curve)
	fanController := controller.NewFanController(device, controlCurve, pollInterval)

	statistics.Register(statistics.NewDeviceCollector(device))
	statistics.Register(statistics.NewControllerCollector())

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if configuration.CurrentConfig.Statistics.Enabled {
			// === Prometheus Exporter
			port := configuration.CurrentConfig.Statistics.Port
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", port),
				Handler: promhttp.Handler(),
			}

			g.Add(func() error {
				ui.Info("Starting statistics server on port %d...", port)
				err := server.ListenAndServe()
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		if configuration.CurrentConfig.Api.Enabled {
			// === REST api
			restService := api.CreateRestService()
			address := fmt.Sprintf("%s:%d", configuration.CurrentConfig.Api.Host, configuration.CurrentConfig.Api.Port)

			g.Add(func() error {
				ui.Info("Starting REST api server on %s...", address)
				err := restService.Start(address)
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := restService.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api server: %v", err)
				} else {
					ui.Info("REST api server stopped.")
				}
			})
		}
	}
	{
		// === fan controller
		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan controller for device %s stopped.", device.GetId())
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Something went wrong: %v", err)
			}
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received SIGTERM signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// DiscoverDevice finds the hwmon sensor group of the card at the given
// path. The kernel registers the groups in discovery order, the most
// recently registered entry wins.
func DiscoverDevice(cardPath string) *hwmon.Device {
	devices, err := hwmon.ForDevice(cardPath)
	if err != nil {
		ui.FatalWithoutStacktrace("Error discovering hwmon sensor groups: %v", err)
	}
	if len(devices) == 0 {
		err := &hwmon.DeviceNotFoundError{Root: cardPath}
		ui.FatalWithoutStacktrace("%v", err)
	}
	return devices[len(devices)-1]
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(stdout))
}
