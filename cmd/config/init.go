package config

import (
	"os"
	"strings"

	"github.com/markusressel/amdfan2go/internal/ui"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

var outputPath string

const starterConfig = `# amdfan2go configuration

# sysfs path of the controlled card
cardPath: /sys/class/drm/card0/device

# how often the temperature is sampled,
# a duration string or a bare number of milliseconds
pollInterval: 500ms

# the fan curve, temperatures in degrees celsius,
# fanSpeeds as a fraction within [0..1]
curve:
  temperatures: [40, 60, 80, 90]
  fanSpeeds: [0.0, 0.4, 0.8, 1.0]

#statistics:
#  enabled: true
#  port: 9000

#api:
#  enabled: true
#  host: localhost
#  port: 9001
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(outputPath); err == nil {
			ui.FatalWithoutStacktrace("Refusing to overwrite existing file: %s", outputPath)
		}

		if err := atomic.WriteFile(outputPath, strings.NewReader(starterConfig)); err != nil {
			return err
		}

		ui.Success("Wrote configuration to: %s", outputPath)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(
		&outputPath,
		"output", "o",
		"amdfan2go.yaml",
		"Path of the configuration file to create",
	)
	Command.AddCommand(initCmd)
}
