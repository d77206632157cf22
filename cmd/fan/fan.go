package fan

import (
	"github.com/markusressel/amdfan2go/internal"
	"github.com/markusressel/amdfan2go/internal/configuration"
	"github.com/markusressel/amdfan2go/internal/hwmon"
	"github.com/markusressel/amdfan2go/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
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
