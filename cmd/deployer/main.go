// Command deployer deploys one compiled contract and prints its address.
//
//	deployer [flags] <ContractName> [constructor args...]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/flightguard/internal/bootstrap"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/wallet"
)

type config struct {
	RPCURL        string        `long:"rpc-url" env:"FLIGHTGUARD_RPC_URL" description:"Ethereum JSON-RPC endpoint" required:"true"`
	ChainID       uint64        `long:"chain-id" env:"FLIGHTGUARD_CHAIN_ID" description:"Expected chain id, 0 skips the check"`
	Network       string        `long:"network" env:"FLIGHTGUARD_NETWORK" description:"Network label for metrics and logs" default:"sepolia"`
	ArtifactsDir  string        `long:"artifacts-dir" env:"FLIGHTGUARD_ARTIFACTS_DIR" description:"Directory holding <ContractName>.json artifacts" default:"contracts/artifacts"`
	Keystore      string        `long:"keystore" env:"FLIGHTGUARD_KEYSTORE" description:"Keystore directory of the deploying account"`
	PrivateKey    string        `long:"private-key" env:"FLIGHTGUARD_PRIVATE_KEY" description:"Hex private key of the deploying account (prefer the environment variable)"`
	PassphraseEnv string        `long:"passphrase-env" env:"FLIGHTGUARD_PASSPHRASE_ENV" description:"Environment variable holding the keystore passphrase" default:"FLIGHTGUARD_PASSPHRASE"`
	ConfirmPoll   time.Duration `long:"confirm-poll" env:"FLIGHTGUARD_CONFIRM_POLL" description:"Receipt polling interval" default:"2s"`
	Yes           bool          `long:"yes" short:"y" description:"Sign without asking for confirmation"`
	LogJSON       bool          `long:"log-json" env:"FLIGHTGUARD_LOG_JSON" description:"Log as JSON"`

	Args struct {
		Contract string   `positional-arg-name:"ContractName" required:"true"`
		Values   []string `positional-arg-name:"args"`
	} `positional-args:"true"`
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := bootstrap.NewLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	addr, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error("deploy failed", zap.String("contract", cfg.Args.Contract), zap.Error(err))
		fmt.Println(err.Error())
		_ = logger.Sync()
		os.Exit(1)
	}
	fmt.Printf("address: %s\n", addr)
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (string, error) {
	name := cfg.Args.Contract
	fmt.Printf("deploying %s\n", name)

	artifact, err := ledger.LoadArtifact(filepath.Join(cfg.ArtifactsDir, name+".json"))
	if err != nil {
		return "", err
	}
	args, err := ledger.ParseArgs(artifact.ABI.Constructor.Inputs, cfg.Args.Values)
	if err != nil {
		return "", fmt.Errorf("constructor arguments: %w", err)
	}

	client, closeClient, err := bootstrap.DialLedger(ctx, cfg.RPCURL, model.Network(cfg.Network), cfg.ChainID)
	if err != nil {
		return "", err
	}
	defer closeClient()

	var approver wallet.Approver
	if !cfg.Yes {
		approver = wallet.NewPromptApprover(os.Stdin, os.Stderr)
	}
	provider, err := bootstrap.NewWalletProvider(bootstrap.WalletConfig{
		KeystoreDir:   cfg.Keystore,
		PrivateKey:    cfg.PrivateKey,
		PassphraseEnv: cfg.PassphraseEnv,
	}, approver)
	if err != nil {
		return "", err
	}
	session, err := wallet.NewConnector(provider, logger).Connect(ctx)
	if err != nil {
		return "", err
	}
	signer, err := provider.Signer(ctx, session.Address)
	if err != nil {
		return "", err
	}

	addr, tx, err := ledger.Deploy(ctx, client, signer, artifact, args...)
	if err != nil {
		return "", err
	}
	logger.Info("deployment sent",
		zap.String("contract", artifact.Name),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("address", addr.Hex()),
	)

	receipt, err := ledger.WaitMined(ctx, client, tx.Hash(), cfg.ConfirmPoll)
	if err != nil {
		return "", err
	}
	if receipt.ContractAddress != (common.Address{}) && receipt.ContractAddress != addr {
		logger.Warn("receipt reports a different contract address", zap.String("receipt_address", receipt.ContractAddress.Hex()))
		addr = receipt.ContractAddress
	}
	logger.Info("deployment mined", zap.Uint64("block", receipt.BlockNumber.Uint64()))
	return addr.Hex(), nil
}
