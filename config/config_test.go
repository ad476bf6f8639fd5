package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciorubeens/ark-tsc/network"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ark.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "mainnet", cfg.Network)
		assert.Len(t, cfg.Networks, 3)
		assert.Equal(t, NetworkConfig{Version: 0x17, WIF: 0xaa}, cfg.Networks["mainnet"])
		assert.Equal(t, NetworkConfig{Version: 0x1e, WIF: 0xaa}, cfg.Networks["devnet"])
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
network: devnet
networks:
  devnet:
    version: 65
    wif: 239
log:
  format: json
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "devnet", cfg.Network)
		assert.Equal(t, NetworkConfig{Version: 65, WIF: 239}, cfg.Networks["devnet"])
		assert.Equal(t, NetworkConfig{Version: 0x17, WIF: 0xaa}, cfg.Networks["mainnet"])
		assert.Equal(t, "json", cfg.Log.Format)

		net, err := cfg.DefaultNetwork()
		require.NoError(t, err)
		assert.Equal(t, network.Devnet, net.Type)
		assert.Equal(t, byte(65), net.Version)
		assert.Equal(t, byte(239), net.WIF)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("ARK_NETWORK", "testnet")
		t.Setenv("ARK_NETWORKS_TESTNET_WIF", "200")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "testnet", cfg.Network)
		assert.Equal(t, 200, cfg.Networks["testnet"].WIF)
	})

	t.Run("explicit missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown default network fails", func(t *testing.T) {
		path := writeConfig(t, "network: regtest\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, network.ErrUnknownNetwork)
	})

	t.Run("out of range version fails", func(t *testing.T) {
		path := writeConfig(t, `
networks:
  mainnet:
    version: 256
`)
		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no networks",
			cfg:     Config{Network: "mainnet"},
			wantErr: "no networks configured",
		},
		{
			name: "unknown network name",
			cfg: Config{Network: "mainnet", Networks: map[string]NetworkConfig{
				"mainnet": {Version: 0x17, WIF: 0xaa},
				"regtest": {Version: 0x6f, WIF: 0xef},
			}},
			wantErr: "networks.regtest",
		},
		{
			name: "negative wif",
			cfg: Config{Network: "mainnet", Networks: map[string]NetworkConfig{
				"mainnet": {Version: 0x17, WIF: -1},
			}},
			wantErr: "wif -1 out of range",
		},
		{
			name: "default not configured",
			cfg: Config{Network: "devnet", Networks: map[string]NetworkConfig{
				"mainnet": {Version: 0x17, WIF: 0xaa},
			}},
			wantErr: "default network",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTable(t *testing.T) {
	cfg := &Config{Network: "Testnet", Networks: map[string]NetworkConfig{
		"mainnet": {Version: 0x17, WIF: 0xaa},
		"testnet": {Version: 0x17, WIF: 0xba},
	}}

	tb, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, network.Testnet, tb.Default().Type)
	assert.Len(t, tb.Networks(), 2)

	_, err = tb.Lookup(network.Devnet)
	assert.ErrorIs(t, err, network.ErrUnknownNetwork)
}
