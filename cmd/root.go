package cmd

import (
	"fmt"
	"os"

	"github.com/markusressel/amdfan2go/cmd/config"
	"github.com/markusressel/amdfan2go/cmd/curve"
	"github.com/markusressel/amdfan2go/cmd/fan"
	"github.com/markusressel/amdfan2go/cmd/global"
	"github.com/markusressel/amdfan2go/cmd/sensor"
	"github.com/markusressel/amdfan2go/internal"
	"github.com/markusressel/amdfan2go/internal/configuration"
	"github.com/markusressel/amdfan2go/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "amdfan2go",
	Short: "A daemon to control the fan of an AMD GPU.",
	Long: `amdfan2go is a simple daemon that controls the fan
of an AMD graphics card based on its temperature sensor.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		if err := loadAndValidateConfig(); err != nil {
			ui.ErrorAndNotify("Config Validation Error", err.Error())
			os.Exit(1)
		}

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is amdfan2go.yaml in ., $HOME or /etc/amdfan2go/)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)

	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(curve.Command)
	rootCmd.AddCommand(sensor.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// loadAndValidateConfig reads and validates the configuration the daemon
// will run with. The returned error decides the process exit status.
func loadAndValidateConfig() error {
	configPath := configuration.DetectConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	return configuration.Validate()
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("amdfan", pterm.NewStyle(pterm.FgLightRed)),
		pterm.NewLettersFromStringWithStyle("2", pterm.NewStyle(pterm.FgWhite)),
		pterm.NewLettersFromStringWithStyle("go", pterm.NewStyle(pterm.FgLightRed)),
	).Render()
	if err != nil {
		fmt.Println("amdfan2go")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
