package fan

import (
	"fmt"
	"strconv"

	"github.com/markusressel/amdfan2go/internal/hwmon"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Get/Set the current speed setting of the fan to the given PWM value",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		device := getDevice()

		if len(args) > 0 {
			pwmValue, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			pwm := hwmon.Pwm(pwmValue)
			if pwm < device.GetPwmMin() || pwm > device.GetPwmMax() {
				return fmt.Errorf("pwm value %d is outside of the device range [%d..%d]", pwm, device.GetPwmMin(), device.GetPwmMax())
			}
			return device.SetPwm(pwm)
		}

		pwm, err := device.GetPwm()
		if err != nil {
			return err
		}
		fmt.Printf("%d", pwm)
		return nil
	},
}

func init() {
	Command.AddCommand(speedCmd)
}
