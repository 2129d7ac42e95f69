package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Artifact is a compiled contract: its ABI and creation bytecode.
type Artifact struct {
	Name     string
	ABI      abi.ABI
	Bytecode []byte
}

// rawArtifact accepts both the Remix layout (data.bytecode.object) and the
// hardhat/foundry layouts (bytecode as a string or {object}).
type rawArtifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
	Data         *struct {
		Bytecode json.RawMessage `json:"bytecode"`
	} `json:"data"`
}

// LoadArtifact reads a compiled contract artifact from disk.
func LoadArtifact(path string) (Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read artifact: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseArtifact(name, raw)
}

// ParseArtifact decodes an artifact document. name is used when the document carries none.
func ParseArtifact(name string, raw []byte) (Artifact, error) {
	var doc rawArtifact
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Artifact{}, fmt.Errorf("decode artifact %q: %w", name, err)
	}
	if doc.ContractName != "" {
		name = doc.ContractName
	}
	if len(doc.ABI) == 0 {
		return Artifact{}, fmt.Errorf("artifact %q has no abi", name)
	}
	parsed, err := abi.JSON(bytes.NewReader(doc.ABI))
	if err != nil {
		return Artifact{}, fmt.Errorf("parse abi of %q: %w", name, err)
	}

	code := doc.Bytecode
	if doc.Data != nil && len(doc.Data.Bytecode) > 0 {
		code = doc.Data.Bytecode
	}
	hexCode, err := bytecodeHex(code)
	if err != nil {
		return Artifact{}, fmt.Errorf("artifact %q: %w", name, err)
	}
	bytecode := common.FromHex(hexCode)
	if len(bytecode) == 0 {
		return Artifact{}, fmt.Errorf("artifact %q has empty bytecode", name)
	}
	return Artifact{Name: name, ABI: parsed, Bytecode: bytecode}, nil
}

func bytecodeHex(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("bytecode missing")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("decode bytecode: %w", err)
	}
	return obj.Object, nil
}
