package main

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/policy"
	"github.com/goodnatureofminers/flightguard/internal/view"
)

var errJournalDisabled = errors.New("purchase journal disabled")

type connectCommand struct {
	cli *cli
}

func (c *connectCommand) Execute([]string) error {
	a, err := newApp(c.cli)
	if err != nil {
		return err
	}
	defer a.Close()

	session, err := a.controller.Connect(c.cli.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cli.out, "Connected: %s\n", session.Address.Hex())
	return nil
}

type purchaseCommand struct {
	cli *cli

	Flight    string `long:"flight" short:"f" description:"Flight number, e.g. DL8627" required:"true"`
	Departure string `long:"departure" short:"d" description:"Departure as YYYY-MM-DDTHH:MM, read as UTC" required:"true"`
	Tier      string `long:"tier" short:"t" description:"Tier: 1|2|3 or basic|premium|enterprise" default:"1"`
}

func (c *purchaseCommand) Execute([]string) error {
	tier, err := model.ParseTier(c.Tier)
	if err != nil {
		return fmt.Errorf("%w: %w", policy.ErrInvalidDraft, err)
	}
	draft := model.PolicyDraft{FlightNumber: c.Flight, DepartureLocal: c.Departure, Tier: tier}
	if _, err := policy.ValidateDraft(draft); err != nil {
		return err
	}

	a, err := newApp(c.cli)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.controller.Connect(c.cli.ctx); err != nil {
		return err
	}
	fmt.Fprintf(c.cli.out, "Purchasing %s policy for %s, premium %s ETH\n",
		tier.Name(), draft.FlightNumber, model.FormatEther(a.submitter.Premium()))

	conf, err := a.controller.Purchase(c.cli.ctx, draft)
	if err != nil {
		return err
	}
	renderConfirmation(c.cli.out, conf)
	return nil
}

type policiesCommand struct {
	cli *cli

	Holder string `long:"holder" description:"List another holder's policies without a wallet"`
}

func (c *policiesCommand) Execute([]string) error {
	a, err := newApp(c.cli)
	if err != nil {
		return err
	}
	defer a.Close()

	if c.Holder != "" {
		return c.listHolder(a)
	}

	if _, err := a.controller.Connect(c.cli.ctx); err != nil {
		return err
	}
	err = a.controller.Navigate(c.cli.ctx, view.MyPolicies)
	snap := a.controller.Snapshot()
	return renderListing(c.cli.out, snap.Policies, snap.Unreadable, err)
}

func (c *policiesCommand) listHolder(a *app) error {
	if !common.IsHexAddress(c.Holder) {
		return fmt.Errorf("invalid holder address %q", c.Holder)
	}
	holder := common.HexToAddress(c.Holder)

	if c.cli.opts.Partial {
		res, err := a.queries.ListPoliciesPartial(c.cli.ctx, holder)
		return renderListing(c.cli.out, res.Policies, res.Failed, err)
	}
	policies, err := a.queries.ListPolicies(c.cli.ctx, holder)
	return renderListing(c.cli.out, policies, nil, err)
}

type contractsCommand struct {
	cli *cli
}

func (c *contractsCommand) Execute([]string) error {
	registry, err := loadRegistry(c.cli.opts)
	if err != nil {
		return err
	}
	renderContracts(c.cli.out, registry)
	return nil
}

type historyCommand struct {
	cli *cli

	Holder string `long:"holder" description:"Holder to list, defaults to the connected wallet"`
}

func (c *historyCommand) Execute([]string) error {
	if c.cli.opts.ClickhouseDSN == "" {
		return errJournalDisabled
	}
	a, err := newApp(c.cli)
	if err != nil {
		return err
	}
	defer a.Close()

	var holder common.Address
	if c.Holder != "" {
		if !common.IsHexAddress(c.Holder) {
			return fmt.Errorf("invalid holder address %q", c.Holder)
		}
		holder = common.HexToAddress(c.Holder)
	} else {
		session, err := a.controller.Connect(c.cli.ctx)
		if err != nil {
			return err
		}
		holder = session.Address
	}

	entries, err := a.History(c.cli.ctx, holder)
	if err != nil {
		return err
	}
	renderHistory(c.cli.out, entries)
	return nil
}

type consoleCommand struct {
	cli *cli
}

func (c *consoleCommand) Execute([]string) error {
	a, err := newApp(c.cli)
	if err != nil {
		return err
	}
	defer a.Close()

	con := newConsole(a.controller, a.registry, c.cli.in, c.cli.out, c.cli.log())
	if a.journal != nil {
		con.history = a.History
	}
	return con.Run(c.cli.ctx)
}
