package sensor

import (
	"fmt"

	"github.com/markusressel/amdfan2go/internal"
	"github.com/markusressel/amdfan2go/internal/configuration"
	"github.com/markusressel/amdfan2go/internal/hwmon"
	"github.com/markusressel/amdfan2go/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Print the current temperature of the card",
	Long:             ``,
	TraverseChildren: true,
	Args:             cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		device := getDevice()

		temperature, err := device.GetTemperature()
		if err != nil {
			return err
		}
		fmt.Printf("%d", int(temperature))
		return nil
	},
}

func getDevice() *hwmon.Device {
	configPath := configuration.DetectConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate()
	if err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	return internal.DiscoverDevice(configuration.CurrentConfig.CardPath)
}
