// Command flightguard buys flight-delay policies and lists the policies a wallet holds.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/flightguard/internal/bootstrap"
)

type options struct {
	RPCURL           string        `long:"rpc-url" env:"FLIGHTGUARD_RPC_URL" description:"Ethereum JSON-RPC endpoint"`
	ChainID          uint64        `long:"chain-id" env:"FLIGHTGUARD_CHAIN_ID" description:"Expected chain id, overrides the deployments file"`
	Deployments      string        `long:"deployments" env:"FLIGHTGUARD_DEPLOYMENTS" description:"Development only: YAML file with contract addresses for a non-default chain_id"`
	ExplorerURL      string        `long:"explorer-url" env:"FLIGHTGUARD_EXPLORER_URL" description:"Block explorer base URL for transaction links"`
	Keystore         string        `long:"keystore" env:"FLIGHTGUARD_KEYSTORE" description:"Keystore directory holding the wallet account"`
	PrivateKey       string        `long:"private-key" env:"FLIGHTGUARD_PRIVATE_KEY" description:"Hex private key of the wallet account (prefer the environment variable)"`
	PassphraseEnv    string        `long:"passphrase-env" env:"FLIGHTGUARD_PASSPHRASE_ENV" description:"Environment variable holding the keystore passphrase" default:"FLIGHTGUARD_PASSPHRASE"`
	ConfirmPoll      time.Duration `long:"confirm-poll" env:"FLIGHTGUARD_CONFIRM_POLL" description:"Receipt polling interval" default:"2s"`
	RPCRPS           int           `long:"rpc-rps" env:"FLIGHTGUARD_RPC_RPS" description:"Policy read requests per second, 0 disables throttling"`
	Workers          int           `long:"workers" env:"FLIGHTGUARD_WORKERS" description:"Concurrent policy record reads" default:"8"`
	UnresolvedStatus string        `long:"unresolved-status" env:"FLIGHTGUARD_UNRESOLVED_STATUS" description:"Status of policies neither active nor paid out (expired|pending)" default:"expired"`
	Partial          bool          `long:"partial" env:"FLIGHTGUARD_PARTIAL" description:"Show readable policies when some records fail to load"`
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"FLIGHTGUARD_CLICKHOUSE_DSN" description:"Enable the purchase journal in ClickHouse"`
	MetricsAddr      string        `long:"metrics-addr" env:"FLIGHTGUARD_METRICS_ADDR" description:"Serve Prometheus metrics on this address"`
	Yes              bool          `long:"yes" short:"y" description:"Sign transactions without asking for confirmation"`
	LogJSON          bool          `long:"log-json" env:"FLIGHTGUARD_LOG_JSON" description:"Log as JSON"`
}

// cli carries what every command needs. Commands run one at a time.
type cli struct {
	opts   options
	ctx    context.Context
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

func (c *cli) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	logger, err := bootstrap.NewLogger(c.opts.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	c.logger = logger
	return logger
}

func newParser(c *cli) *flags.Parser {
	parser := flags.NewParser(&c.opts, flags.HelpFlag|flags.PassDoubleDash)

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"connect", "Connect the wallet", "Requests wallet access and prints the authorised account.", &connectCommand{cli: c}},
		{"purchase", "Purchase a policy", "Buys a flight-delay policy for the fixed premium and waits for confirmation.", &purchaseCommand{cli: c}},
		{"policies", "List policies", "Lists the policies held by the connected wallet or by --holder.", &policiesCommand{cli: c}},
		{"contracts", "Show contract configuration", "Prints the network, chain id and contract addresses in use.", &contractsCommand{cli: c}},
		{"history", "Show purchase journal", "Lists purchases journaled from this client. Needs --clickhouse-dsn.", &historyCommand{cli: c}},
		{"console", "Interactive console", "Starts the interactive purchase and policy console.", &consoleCommand{cli: c}},
	}
	for _, cmd := range commands {
		if _, err := parser.AddCommand(cmd.name, cmd.short, cmd.long, cmd.data); err != nil {
			panic(fmt.Sprintf("register command %s: %v", cmd.name, err))
		}
	}
	return parser
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &cli{ctx: ctx, in: bufio.NewReader(os.Stdin), out: os.Stdout}
	code := execute(c, newParser(c), os.Args[1:])
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	stop()
	os.Exit(code)
}

func execute(c *cli, parser *flags.Parser, args []string) int {
	_, err := parser.ParseArgs(args)
	if err == nil {
		return 0
	}

	var ferr *flags.Error
	if errors.As(err, &ferr) {
		if ferr.Type == flags.ErrHelp {
			fmt.Fprintln(c.out, ferr.Message)
			return 0
		}
		fmt.Fprintln(os.Stderr, ferr.Message)
		return 2
	}

	c.log().Error("command failed", zap.Error(err))
	fmt.Fprintln(c.out, userMessage(err))
	return 1
}
