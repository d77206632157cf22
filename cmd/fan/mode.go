package fan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/markusressel/amdfan2go/internal/hwmon"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Get/Set the current pwm mode setting of the fan",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		device := getDevice()

		if len(args) > 0 {
			firstArg := args[0]
			var mode hwmon.PwmMode
			argAsInt, err := strconv.Atoi(firstArg)
			if err != nil {
				switch strings.ToLower(firstArg) {
				case "auto":
					mode = hwmon.PwmModeAutomatic
				case "manual":
					mode = hwmon.PwmModeManual
				default:
					return fmt.Errorf("unknown mode: %s, must be an integer in (1..2) or one of: 'auto', 'manual'", firstArg)
				}
			} else {
				mode = hwmon.PwmMode(argAsInt)
				validModes := []hwmon.PwmMode{hwmon.PwmModeManual, hwmon.PwmModeAutomatic}
				if !slices.Contains(validModes, mode) {
					return fmt.Errorf("unknown mode: %d, must be an integer in (1..2) or one of: 'auto', 'manual'", argAsInt)
				}
			}
			err = device.SetPwmMode(mode)
			if err != nil {
				return err
			}
		}

		mode, err := device.GetPwmMode()
		if err != nil {
			return err
		}

		switch mode {
		case hwmon.PwmModeManual:
			fmt.Printf("Manual PWM control, gives amdfan2go control (%d)", mode)
		case hwmon.PwmModeAutomatic:
			fmt.Printf("Automatic control by integrated hardware (%d)", mode)
		default:
			fmt.Printf("Unknown (%d)", mode)
		}

		return nil
	},
}

func init() {
	Command.AddCommand(modeCmd)
}
