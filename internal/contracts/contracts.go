// Package contracts holds the addresses and interface descriptions of the deployed FlightGuard contracts.
package contracts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	NamePolicy        = "FlightGuardPolicy"
	NameToken         = "FlightGuardToken"
	NameLiquidityPool = "LiquidityPool"
	NameRegistry      = "FlightGuardRegistry"
)

// Names lists every contract the client knows about.
var Names = []string{NamePolicy, NameToken, NameLiquidityPool, NameRegistry}

var (
	// ErrUnknownContract is returned for names outside Names.
	ErrUnknownContract = errors.New("unknown contract")
	// ErrOverrideChain is returned when a deployments override does not target a development chain.
	ErrOverrideChain = errors.New("deployments override needs a chain_id other than the embedded one")
)

var (
	//go:embed deployments.yaml
	deploymentsYAML []byte

	//go:embed abi/*.json
	abiFS embed.FS
)

// Contract is a deployed contract: its address and parsed ABI.
type Contract struct {
	Name    string
	Address common.Address
	ABI     abi.ABI
}

// Deployments is the on-disk shape of deployments.yaml.
type Deployments struct {
	Network     model.Network     `yaml:"network"`
	ChainID     uint64            `yaml:"chain_id"`
	ExplorerURL string            `yaml:"explorer_url"`
	Contracts   map[string]string `yaml:"contracts"`
}

// Registry resolves contracts by name.
type Registry struct {
	network     model.Network
	chainID     uint64
	explorerURL string
	contracts   map[string]Contract
}

// Load builds a Registry from the embedded deployments and ABIs.
func Load() (*Registry, error) {
	return LoadWithOverride("")
}

// LoadWithOverride builds a Registry from the embedded data, then applies any
// non-empty fields of the YAML file at path. An empty path applies nothing.
// Overrides are for development chains: the file must name a chain_id different
// from the embedded deployment, so the published addresses stay fixed.
func LoadWithOverride(path string) (*Registry, error) {
	base, err := decodeDeployments(deploymentsYAML)
	if err != nil {
		return nil, fmt.Errorf("decode embedded deployments: %w", err)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read deployments override: %w", err)
		}
		override, err := decodeDeployments(raw)
		if err != nil {
			return nil, fmt.Errorf("decode deployments override %s: %w", path, err)
		}
		if override.ChainID == 0 || override.ChainID == base.ChainID {
			return nil, fmt.Errorf("%w: %s has chain_id %d", ErrOverrideChain, path, override.ChainID)
		}
		base = merge(base, override)
	}
	return build(base)
}

// Contract returns the named contract.
func (r *Registry) Contract(name string) (Contract, error) {
	c, ok := r.contracts[name]
	if !ok {
		return Contract{}, fmt.Errorf("%w: %q", ErrUnknownContract, name)
	}
	return c, nil
}

// All returns every contract in Names order.
func (r *Registry) All() []Contract {
	out := make([]Contract, 0, len(Names))
	for _, name := range Names {
		out = append(out, r.contracts[name])
	}
	return out
}

// Network returns the network the deployments belong to.
func (r *Registry) Network() model.Network { return r.network }

// ChainID returns the expected chain id, or 0 when unknown.
func (r *Registry) ChainID() uint64 { return r.chainID }

// ExplorerURL returns the block explorer base URL.
func (r *Registry) ExplorerURL() string { return r.explorerURL }

// TxURL returns the explorer link for a transaction, or "" without an explorer.
func (r *Registry) TxURL(hash common.Hash) string {
	if r.explorerURL == "" {
		return ""
	}
	return strings.TrimRight(r.explorerURL, "/") + "/tx/" + hash.Hex()
}

// WithExplorerURL returns a copy of the registry that links to a different explorer.
func (r *Registry) WithExplorerURL(url string) *Registry {
	cp := *r
	cp.explorerURL = url
	return &cp
}

func decodeDeployments(raw []byte) (Deployments, error) {
	var d Deployments
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Deployments{}, err
	}
	return d, nil
}

func merge(base, override Deployments) Deployments {
	if override.Network != "" {
		base.Network = override.Network
	}
	if override.ChainID != 0 {
		base.ChainID = override.ChainID
	}
	if override.ExplorerURL != "" {
		base.ExplorerURL = override.ExplorerURL
	}
	merged := make(map[string]string, len(base.Contracts))
	for name, addr := range base.Contracts {
		merged[name] = addr
	}
	for name, addr := range override.Contracts {
		merged[name] = addr
	}
	base.Contracts = merged
	return base
}

func build(d Deployments) (*Registry, error) {
	known := make(map[string]struct{}, len(Names))
	for _, name := range Names {
		known[name] = struct{}{}
	}
	var unknown []string
	for name := range d.Contracts {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownContract, strings.Join(unknown, ", "))
	}

	r := &Registry{
		network:     d.Network,
		chainID:     d.ChainID,
		explorerURL: d.ExplorerURL,
		contracts:   make(map[string]Contract, len(Names)),
	}
	for _, name := range Names {
		raw, ok := d.Contracts[name]
		if !ok {
			return nil, fmt.Errorf("contract %s: address missing", name)
		}
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("contract %s: invalid address %q", name, raw)
		}
		parsed, err := loadABI(name)
		if err != nil {
			return nil, err
		}
		r.contracts[name] = Contract{
			Name:    name,
			Address: common.HexToAddress(raw),
			ABI:     parsed,
		}
	}
	return r, nil
}

func loadABI(name string) (abi.ABI, error) {
	raw, err := abiFS.ReadFile("abi/" + name + ".json")
	if err != nil {
		return abi.ABI{}, fmt.Errorf("read %s abi: %w", name, err)
	}
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse %s abi: %w", name, err)
	}
	return parsed, nil
}
