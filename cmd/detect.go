package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/markusressel/amdfan2go/cmd/global"
	"github.com/markusressel/amdfan2go/internal/hwmon"
	"github.com/markusressel/amdfan2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long:  `Detects all hwmon chips with temperature sensors or PWM outputs and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		chips := hwmon.GetChips()

		// === Print detected devices ===
		tableConfig := &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		}

		for _, chip := range chips {
			if len(chip.Name) <= 0 {
				continue
			}

			if len(chip.Pwms) <= 0 && len(chip.Sensors) <= 0 {
				continue
			}

			ui.Printfln("> %s", chip.Name)

			var pwmRows [][]string
			for _, pwm := range chip.Pwms {
				pwmText := "N/A"
				value, err := pwm.GetValue()
				if err == nil {
					pwmText = strconv.Itoa(int(value))
				}

				pwmRows = append(pwmRows, []string{
					"", strconv.Itoa(pwm.Index), pwm.Label, pwmText,
				})
			}
			var pwmHeaders = []string{"PWMs   ", "Index", "Label", "Value"}

			pwmTable := table.Table{
				Headers: pwmHeaders,
				Rows:    pwmRows,
			}

			var sensorRows [][]string
			for _, sensor := range chip.Sensors {
				valueText := "N/A"
				value, err := sensor.GetValue()
				if err == nil {
					valueText = strconv.Itoa(int(value))
				}

				_, file := filepath.Split(sensor.Input)
				labelAndFile := fmt.Sprintf("%s (%s)", sensor.Label, file)

				sensorRows = append(sensorRows, []string{
					"", strconv.Itoa(sensor.Index), labelAndFile, valueText,
				})
			}
			var sensorHeaders = []string{"Sensors", "Index", "Label", "Value"}

			sensorTable := table.Table{
				Headers: sensorHeaders,
				Rows:    sensorRows,
			}

			tables := []table.Table{pwmTable, sensorTable}

			for idx, tab := range tables {
				if tab.Rows == nil {
					continue
				}
				var buf bytes.Buffer
				tableErr := tab.WriteTable(&buf, tableConfig)
				if tableErr != nil {
					ui.Fatal("Error printing table: %v", tableErr)
				}
				tableString := buf.String()
				if idx < (len(tables) - 1) {
					ui.Printf(tableString)
				} else {
					ui.Printfln(tableString)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
