// Package network holds the per-chain version bytes used when encoding
// addresses and WIF strings.
package network

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Type identifies a target chain.
type Type int

// Known network types.
const (
	Mainnet Type = iota + 1
	Devnet
	Testnet
)

// ErrUnknownNetwork is returned when a network type or name has no entry.
var ErrUnknownNetwork = errors.New("network: unknown network")

// String returns the lowercase network name.
func (t Type) String() string {
	switch t {
	case Mainnet:
		return "mainnet"
	case Devnet:
		return "devnet"
	case Testnet:
		return "testnet"
	default:
		return fmt.Sprintf("network(%d)", int(t))
	}
}

// ParseType maps a case-insensitive name to its Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mainnet":
		return Mainnet, nil
	case "devnet":
		return Devnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
}

// Network carries the version bytes of a chain.
type Network struct {
	Type    Type
	Name    string
	Version byte // address version byte
	WIF     byte // WIF version byte
}

// String implements fmt.Stringer.
func (n Network) String() string {
	return fmt.Sprintf("%s(version=0x%02x, wif=0x%02x)", n.Name, n.Version, n.WIF)
}

// Built-in ARK parameters.
var (
	mainnet = Network{Type: Mainnet, Name: "mainnet", Version: 0x17, WIF: 0xaa}
	devnet  = Network{Type: Devnet, Name: "devnet", Version: 0x1e, WIF: 0xaa}
	testnet = Network{Type: Testnet, Name: "testnet", Version: 0x17, WIF: 0xba}
)

// Table is a read-only set of networks keyed by type.
// A Table is never modified after construction and is safe for concurrent use.
type Table struct {
	networks map[Type]Network
	def      Type
}

// NewTable builds a Table from networks. def selects the network returned
// by Default and must be present.
func NewTable(def Type, networks ...Network) (Table, error) {
	m := make(map[Type]Network, len(networks))
	for _, n := range networks {
		if _, ok := m[n.Type]; ok {
			return Table{}, fmt.Errorf("network: duplicate entry for %s", n.Type)
		}
		if n.Name == "" {
			n.Name = n.Type.String()
		}
		m[n.Type] = n
	}
	if _, ok := m[def]; !ok {
		return Table{}, fmt.Errorf("%w: default %s not in table", ErrUnknownNetwork, def)
	}
	return Table{networks: m, def: def}, nil
}

// DefaultTable returns the built-in mainnet, devnet and testnet parameters
// with mainnet as the default.
func DefaultTable() Table {
	return Table{
		networks: map[Type]Network{
			Mainnet: mainnet,
			Devnet:  devnet,
			Testnet: testnet,
		},
		def: Mainnet,
	}
}

// Lookup returns the network registered for t.
func (tb Table) Lookup(t Type) (Network, error) {
	n, ok := tb.networks[t]
	if !ok {
		return Network{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, t)
	}
	return n, nil
}

// LookupName resolves a network by name.
func (tb Table) LookupName(name string) (Network, error) {
	t, err := ParseType(name)
	if err != nil {
		return Network{}, err
	}
	return tb.Lookup(t)
}

// Default returns the table's default network.
func (tb Table) Default() Network {
	return tb.networks[tb.def]
}

// Networks returns all entries ordered by type.
func (tb Table) Networks() []Network {
	out := make([]Network, 0, len(tb.networks))
	for _, n := range tb.networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// MainnetParams returns the built-in ARK mainnet parameters.
func MainnetParams() Network { return mainnet }

// DevnetParams returns the built-in ARK devnet parameters.
func DevnetParams() Network { return devnet }

// TestnetParams returns the built-in ARK testnet parameters.
func TestnetParams() Network { return testnet }
