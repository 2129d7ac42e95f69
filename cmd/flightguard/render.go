package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goodnatureofminers/flightguard/internal/contracts"
	"github.com/goodnatureofminers/flightguard/internal/ledger"
	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/policy"
	"github.com/goodnatureofminers/flightguard/internal/view"
	"github.com/goodnatureofminers/flightguard/internal/wallet"
)

// userMessage maps an error to the text shown to the user. Details go to the log.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, wallet.ErrNoWallet):
		return "No wallet available. Set --keystore or FLIGHTGUARD_PRIVATE_KEY."
	case errors.Is(err, wallet.ErrConnectionRejected):
		return "Wallet connection was rejected."
	case errors.Is(err, policy.ErrInvalidDraft):
		return "Please fill out all fields: " + detail(err, policy.ErrInvalidDraft)
	case errors.Is(err, policy.ErrWalletNotPresent):
		return "No wallet available to sign the purchase."
	case errors.Is(err, policy.ErrUserRejectedSignature):
		return "Transaction signature was rejected. Nothing was sent."
	case errors.Is(err, policy.ErrSubmissionFailed):
		return "Error purchasing policy: the node did not accept the transaction."
	case errors.Is(err, policy.ErrConfirmationFailed) && errors.Is(err, ledger.ErrReverted):
		return "Error purchasing policy: the transaction reverted."
	case errors.Is(err, policy.ErrConfirmationFailed):
		return "Error purchasing policy: the transaction was not confirmed."
	case errors.Is(err, policy.ErrQueryFailed):
		return "Failed to fetch policies. Check the RPC endpoint and contract deployment."
	case errors.Is(err, ledger.ErrChainMismatch):
		return "The RPC node serves a different chain than the configured contracts."
	case errors.Is(err, view.ErrBusy):
		return "Another operation is in progress."
	case errors.Is(err, view.ErrNotConnected):
		return "Connect your wallet first."
	case errors.Is(err, view.ErrInvalidTransition):
		return "That action is not available from this view."
	case errors.Is(err, errJournalDisabled):
		return "The purchase journal is disabled. Set --clickhouse-dsn."
	default:
		return "Error: " + err.Error()
	}
}

// detail strips the sentinel prefix from a wrapped message.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

func renderConfirmation(w io.Writer, c model.Confirmation) {
	departure := c.Draft.DepartureLocal
	if epoch, err := policy.ParseDeparture(c.Draft.DepartureLocal); err == nil {
		departure = policy.DisplayDeparture(epoch)
	}

	fmt.Fprintln(w, "Policy Purchased Successfully!")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  Flight Number:\t%s\n", c.Draft.FlightNumber)
	fmt.Fprintf(tw, "  Departure:\t%s\n", departure)
	fmt.Fprintf(tw, "  Tier:\t%s\n", c.Draft.Tier.Name())
	fmt.Fprintf(tw, "  Transaction Hash:\t%s\n", c.TxHash.Hex())
	if c.BlockNumber != nil {
		fmt.Fprintf(tw, "  Block:\t%s\n", c.BlockNumber)
	}
	if c.ExplorerURL != "" {
		fmt.Fprintf(tw, "  Explorer:\t%s\n", c.ExplorerURL)
	}
	_ = tw.Flush()
	fmt.Fprintln(w, "Your transaction has been confirmed on the blockchain.")
}

// renderListing prints a policy listing. A partial listing is printed with a
// warning; any other error prints nothing and is returned.
func renderListing(w io.Writer, policies []model.Policy, unreadable []policy.FailedRead, err error) error {
	var perr *policy.PartialQueryError
	if err != nil && !errors.As(err, &perr) {
		return err
	}
	renderPolicies(w, policies)
	if len(unreadable) > 0 {
		ids := make([]string, len(unreadable))
		for i, f := range unreadable {
			ids[i] = f.ID.String()
		}
		fmt.Fprintf(w, "Warning: %d policy record(s) could not be read: %s\n", len(ids), strings.Join(ids, ", "))
	}
	return nil
}

func renderPolicies(w io.Writer, policies []model.Policy) {
	fmt.Fprintln(w, "My Insurance Policies")
	if len(policies) == 0 {
		fmt.Fprintln(w, "You have not purchased any policies yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFLIGHT\tSTATUS\tDEPARTURE\tTIER\tPREMIUM PAID\tPOTENTIAL PAYOUT")
	for _, p := range policies {
		flight := p.FlightNumber
		if flight == "" {
			flight = "N/A"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s ETH\t%s ETH\n",
			p.ID,
			flight,
			p.Status,
			policy.DisplayDeparture(p.DepartureTime),
			p.Tier.Name(),
			model.FormatEther(p.Premium),
			model.FormatEther(p.PayoutAmount),
		)
	}
	_ = tw.Flush()
}

func renderContracts(w io.Writer, registry *contracts.Registry) {
	fmt.Fprintf(w, "Network: %s (chain id %d)\n", registry.Network(), registry.ChainID())
	if url := registry.ExplorerURL(); url != "" {
		fmt.Fprintf(w, "Explorer: %s\n", url)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTRACT\tADDRESS")
	for _, c := range registry.All() {
		fmt.Fprintf(tw, "%s\t%s\n", c.Name, c.Address.Hex())
	}
	_ = tw.Flush()
}

func renderHistory(w io.Writer, entries []model.PurchaseEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No journaled purchases.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBMITTED\tFLIGHT\tDEPARTURE\tTIER\tOUTCOME\tBLOCK\tTX")
	for _, e := range entries {
		outcome := string(e.Outcome)
		if e.Error != "" {
			outcome += " (" + e.Error + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			e.SubmittedAt.UTC().Format("2006-01-02 15:04:05"),
			e.FlightNumber,
			policy.DisplayDeparture(e.DepartureTime.Unix()),
			e.Tier.Name(),
			outcome,
			e.BlockNumber,
			e.TxHash,
		)
	}
	_ = tw.Flush()
}

func renderHeader(w io.Writer, snap view.Snapshot) {
	account := "not connected"
	if snap.Session.Connected() {
		account = snap.Session.ShortAddress()
	}
	fmt.Fprintf(w, "[%s] %s> ", account, snap.State)
}
