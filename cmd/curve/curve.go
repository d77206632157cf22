package curve

import (
	"bytes"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/amdfan2go/cmd/global"
	"github.com/markusressel/amdfan2go/internal/configuration"
	"github.com/markusressel/amdfan2go/internal/curve"
	"github.com/markusressel/amdfan2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var Command = &cobra.Command{
	Use:              "curve",
	Short:            "Print the configured fan curve to console",
	Long:             ``,
	TraverseChildren: true,
	Args:             cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		configPath := configuration.DetectConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()

		err = configuration.Validate()
		if err != nil {
			ui.FatalWithoutStacktrace("%v", err)
		}

		controlCurve := curve.FromConfig(configuration.CurrentConfig.Curve)
		points := controlCurve.Points()

		// print table
		var rows [][]string
		for _, point := range points {
			rows = append(rows, []string{
				strconv.FormatFloat(point.Temperature, 'f', -1, 64),
				strconv.FormatFloat(point.FanSpeed*100.0, 'f', -1, 64),
			})
		}
		tab := table.Table{
			Headers: []string{"Temperature [°C]", "Fan Speed [%]"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			panic(tableErr)
		}
		ui.Printfln(buf.String())

		// plot the curve across its temperature span
		start := int(points[0].Temperature)
		stop := int(points[len(points)-1].Temperature)

		values := make([]float64, 0, stop-start+1)
		for t := start; t <= stop; t++ {
			values = append(values, controlCurve.Evaluate(float64(t))*100.0)
		}

		caption := "Fan Speed [%] / Temperature [°C]"
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln(graph)

		return nil
	},
}
