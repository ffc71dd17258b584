package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Service  ServiceConfig `mapstructure:"service"`
	Output   OutputConfig  `mapstructure:"output"`
	LogLevel string        `mapstructure:"log_level"`
}

type ServiceConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	Indent int    `mapstructure:"indent"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Service: ServiceConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 30,
		},
		Output: OutputConfig{
			Format: "pretty",
			Indent: 0,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("url", defaults.Service.BaseURL, "Base URL of the model categorizer service")
	fs.Int("timeout", defaults.Service.TimeoutSeconds, "Request timeout in seconds")
	fs.String("format", defaults.Output.Format, "Output format (pretty|json)")
	fs.Int("indent", defaults.Output.Indent, "Base indentation for pretty output")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("MODELCATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("modelcatalog")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("service.base_url", c.Service.BaseURL)
	v.SetDefault("service.timeout_seconds", c.Service.TimeoutSeconds)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("output.indent", c.Output.Indent)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("service.base_url", "url")
	v.RegisterAlias("service.timeout_seconds", "timeout")
	v.RegisterAlias("output.format", "format")
	v.RegisterAlias("output.indent", "indent")
	v.RegisterAlias("log_level", "log-level")
}
