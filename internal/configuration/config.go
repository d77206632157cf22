package configuration

import (
	"os"
	"time"

	"github.com/markusressel/amdfan2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Configuration struct {
	CardPath     string        `json:"cardPath"`
	PollInterval time.Duration `json:"pollInterval"`

	Curve CurveConfig `json:"curve"`

	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("amdfan2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/amdfan2go/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("CardPath", "/sys/class/drm/card0/device")
	viper.SetDefault("PollInterval", 500*time.Millisecond)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)
}

// DetectConfigFile tries to read the configuration file. Running without
// one is not possible since there is no sane default for the fan curve,
// so a missing file is fatal.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		ui.FatalWithoutStacktrace("Error reading config file, %v", err)
	}
	return viper.ConfigFileUsed()
}

// LoadConfig decodes the detected configuration file into CurrentConfig.
func LoadConfig() {
	if err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(configDecodeHook()),
	); err != nil {
		ui.FatalWithoutStacktrace("unable to decode into struct, %v", err)
	}
}
