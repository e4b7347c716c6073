package daa

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// appConfig is the ambient (non-domain) application configuration: where
// to look for well-clear parameter files, default scan resolutions, and
// logging verbosity. It is entirely separate from ParameterData, which
// holds the domain well-clear parameters themselves in the engine's own
// "key = value [unit]" format (spec.md §6) — appConfig is ordinary viper
// config, ParameterData is not.
type appConfig struct {
	DefaultParamFile string `mapstructure:"default_param_file"`
	TrkStepDeg       float64 `mapstructure:"trk_step_deg"`
	GsStepKnots      float64 `mapstructure:"gs_step_knots"`
	VsStepFpm        float64 `mapstructure:"vs_step_fpm"`
	AltStepFt        float64 `mapstructure:"alt_step_ft"`
	LogLevel         string  `mapstructure:"log_level"`
}

var (
	cfgLoaded sync.Once
	config    appConfig
)

// daaConfig loads the ambient configuration once per process, reading
// DAA_CONFIG (a directory) or falling back to the working directory,
// mirroring the reference engine's env-var-driven viper bootstrap.
func daaConfig() appConfig {
	cfgLoaded.Do(func() {
		viper.SetConfigName("daa_config")
		viper.SetConfigType("toml")
		if dir := os.Getenv("DAA_CONFIG"); dir != "" {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(".")
		viper.SetDefault("trk_step_deg", 1.0)
		viper.SetDefault("gs_step_knots", 1.0)
		viper.SetDefault("vs_step_fpm", 100.0)
		viper.SetDefault("alt_step_ft", 100.0)
		viper.SetDefault("log_level", "info")

		if err := viper.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				fmt.Fprintf(os.Stderr, "[daa:warn] config: %v\n", err)
			}
		}
		if err := viper.Unmarshal(&config); err != nil {
			fmt.Fprintf(os.Stderr, "[daa:error] config: unmarshal failed: %v\n", err)
		}
	})
	return config
}

func logInfo(context, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[daa:info] %s: "+format+"\n", append([]any{context}, args...)...)
}

func logWarn(context, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[daa:warn] %s: "+format+"\n", append([]any{context}, args...)...)
}

func logError(context, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[daa:error] %s: "+format+"\n", append([]any{context}, args...)...)
}
