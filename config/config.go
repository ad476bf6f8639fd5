// Package config loads the network parameter table and logging settings.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/luciorubeens/ark-tsc/internal/logging"
	"github.com/luciorubeens/ark-tsc/network"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. ARK_NETWORK=devnet or ARK_NETWORKS_DEVNET_VERSION=30.
const EnvPrefix = "ARK"

// Config holds all configuration consumed by the key core.
type Config struct {
	Network  string                   `mapstructure:"network"`
	Networks map[string]NetworkConfig `mapstructure:"networks"`
	Log      logging.Config           `mapstructure:"log"`
}

// NetworkConfig holds the version bytes of one network.
type NetworkConfig struct {
	Version int `mapstructure:"version"`
	WIF     int `mapstructure:"wif"`
}

// Load reads configuration from an optional YAML file and environment
// variables. An empty path searches ./ark.yaml and ./config/ark.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ark")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults seeds the built-in ARK networks.
func setDefaults(v *viper.Viper) {
	def := network.DefaultTable()

	v.SetDefault("network", def.Default().Name)
	for _, n := range def.Networks() {
		v.SetDefault("networks."+n.Name+".version", int(n.Version))
		v.SetDefault("networks."+n.Name+".wif", int(n.WIF))
	}

	v.SetDefault("log.format", "console")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "stderr")
}

// Validate checks that every network is known, its version bytes fit in a
// byte, and the default network is configured.
func (c *Config) Validate() error {
	if len(c.Networks) == 0 {
		return errors.New("config: no networks configured")
	}

	for name, nc := range c.Networks {
		if _, err := network.ParseType(name); err != nil {
			return fmt.Errorf("config: networks.%s: %w", name, err)
		}
		if nc.Version < 0 || nc.Version > 0xff {
			return fmt.Errorf("config: networks.%s.version %d out of range", name, nc.Version)
		}
		if nc.WIF < 0 || nc.WIF > 0xff {
			return fmt.Errorf("config: networks.%s.wif %d out of range", name, nc.WIF)
		}
	}

	if _, ok := c.Networks[strings.ToLower(c.Network)]; !ok {
		return fmt.Errorf("config: default network %q is not configured: %w", c.Network, network.ErrUnknownNetwork)
	}
	return nil
}

// Table builds the read-only network table described by c.
func (c *Config) Table() (network.Table, error) {
	if err := c.Validate(); err != nil {
		return network.Table{}, err
	}

	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	nets := make([]network.Network, 0, len(names))
	for _, name := range names {
		t, _ := network.ParseType(name)
		nc := c.Networks[name]
		nets = append(nets, network.Network{
			Type:    t,
			Name:    t.String(),
			Version: byte(nc.Version),
			WIF:     byte(nc.WIF),
		})
	}

	def, _ := network.ParseType(c.Network)
	return network.NewTable(def, nets...)
}

// DefaultNetwork returns the configured default network.
func (c *Config) DefaultNetwork() (network.Network, error) {
	tb, err := c.Table()
	if err != nil {
		return network.Network{}, err
	}
	return tb.Default(), nil
}
