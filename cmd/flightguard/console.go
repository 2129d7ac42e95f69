package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/flightguard/internal/contracts"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/policy"
	"github.com/goodnatureofminers/flightguard/internal/view"
)

const consoleHelp = `Commands:
  connect                              connect the wallet
  purchase [flight departure tier]     buy a policy; prompts for missing fields
  policies                             show my policies
  refresh                              re-read my policies
  goto purchase|policies               switch view
  home                                 back to the purchase view
  status                               show the current view
  contracts                            show contract addresses
  history                              show journaled purchases
  help                                 show this help
  quit                                 leave the console`

// console is a line-oriented front end for the view controller. It shares its
// reader with the transaction approver so prompts never race for input.
type console struct {
	ctrl     *view.Controller
	registry *contracts.Registry
	history  func(ctx context.Context, holder common.Address) ([]model.PurchaseEntry, error)
	in       *bufio.Reader
	out      io.Writer
	logger   *zap.Logger
}

func newConsole(ctrl *view.Controller, registry *contracts.Registry, in *bufio.Reader, out io.Writer, logger *zap.Logger) *console {
	return &console{
		ctrl:     ctrl,
		registry: registry,
		in:       in,
		out:      out,
		logger:   logger.Named("console"),
	}
}

var errQuit = errors.New("quit")

// Run reads commands until quit, end of input or ctx cancellation.
func (c *console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "FlightGuard flight-delay insurance. Type help for commands.")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		renderHeader(c.out, c.ctrl.Snapshot())

		line, err := c.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out)
				return nil
			}
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		err = c.dispatch(ctx, fields[0], fields[1:])
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			c.logger.Debug("command failed", zap.String("command", fields[0]), zap.Error(err))
			fmt.Fprintln(c.out, userMessage(err))
		}
	}
}

func (c *console) dispatch(ctx context.Context, cmd string, args []string) error {
	switch strings.ToLower(cmd) {
	case "connect":
		session, err := c.ctrl.Connect(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Connected: %s\n", session.Address.Hex())
		return nil
	case "purchase", "buy":
		return c.purchase(ctx, args)
	case "policies":
		return c.showListing(c.ctrl.Navigate(ctx, view.MyPolicies))
	case "refresh":
		return c.showListing(c.ctrl.Refresh(ctx))
	case "goto":
		return c.navigate(ctx, args)
	case "home":
		if err := c.ctrl.Home(); err != nil {
			return err
		}
		c.status()
		return nil
	case "status":
		c.status()
		return nil
	case "contracts":
		renderContracts(c.out, c.registry)
		return nil
	case "history":
		return c.showHistory(ctx)
	case "help", "?":
		fmt.Fprintln(c.out, consoleHelp)
		return nil
	case "quit", "exit":
		return errQuit
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type help for commands.\n", cmd)
		return nil
	}
}

func (c *console) purchase(ctx context.Context, args []string) error {
	if snap := c.ctrl.Snapshot(); !snap.Session.Connected() {
		return view.ErrNotConnected
	}

	var flight, departure, tierRaw string
	switch len(args) {
	case 0:
		var err error
		if flight, err = c.prompt("Flight Number: "); err != nil {
			return err
		}
		if departure, err = c.prompt("Departure Time (YYYY-MM-DDTHH:MM, UTC): "); err != nil {
			return err
		}
		if tierRaw, err = c.prompt("Tier [1 Basic, 2 Premium, 3 Enterprise]: "); err != nil {
			return err
		}
	case 3:
		flight, departure, tierRaw = args[0], args[1], args[2]
	default:
		return fmt.Errorf("%w: usage: purchase <flight> <departure> <tier>", policy.ErrInvalidDraft)
	}

	if strings.TrimSpace(tierRaw) == "" {
		tierRaw = "1"
	}
	tier, err := model.ParseTier(tierRaw)
	if err != nil {
		return fmt.Errorf("%w: %w", policy.ErrInvalidDraft, err)
	}
	draft := model.PolicyDraft{FlightNumber: flight, DepartureLocal: departure, Tier: tier}
	if _, err := policy.ValidateDraft(draft); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Processing transaction...")
	conf, err := c.ctrl.Purchase(ctx, draft)
	if err != nil {
		return err
	}
	renderConfirmation(c.out, conf)
	return nil
}

func (c *console) navigate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: goto purchase|policies", view.ErrInvalidTransition)
	}
	switch strings.ToLower(args[0]) {
	case "purchase":
		if err := c.ctrl.Navigate(ctx, view.Purchase); err != nil {
			return err
		}
		c.status()
		return nil
	case "policies", "my-policies":
		return c.showListing(c.ctrl.Navigate(ctx, view.MyPolicies))
	default:
		return fmt.Errorf("%w: unknown view %q", view.ErrInvalidTransition, args[0])
	}
}

func (c *console) showListing(err error) error {
	if errors.Is(err, view.ErrBusy) || errors.Is(err, view.ErrNotConnected) || errors.Is(err, view.ErrInvalidTransition) {
		return err
	}
	snap := c.ctrl.Snapshot()
	return renderListing(c.out, snap.Policies, snap.Unreadable, err)
}

func (c *console) showHistory(ctx context.Context) error {
	if c.history == nil {
		return errJournalDisabled
	}
	snap := c.ctrl.Snapshot()
	if !snap.Session.Connected() {
		return view.ErrNotConnected
	}
	entries, err := c.history(ctx, snap.Session.Address)
	if err != nil {
		return err
	}
	renderHistory(c.out, entries)
	return nil
}

func (c *console) status() {
	snap := c.ctrl.Snapshot()
	switch {
	case !snap.Session.Connected():
		fmt.Fprintln(c.out, "Wallet not connected. Type connect.")
	case snap.State == view.Confirmation && snap.Confirmation != nil:
		fmt.Fprintf(c.out, "Showing confirmation of %s.\n", snap.Confirmation.TxHash.Hex())
	default:
		fmt.Fprintf(c.out, "Connected as %s, view %s.\n", snap.Session.ShortAddress(), snap.State)
	}
}

func (c *console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

// readLine returns a trimmed line. A final line without newline is returned before io.EOF.
func (c *console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
