package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/goodnatureofminers/flightguard/internal/policy"
	"go.uber.org/zap"
)

// Snapshot is a copy of the controller state for rendering.
type Snapshot struct {
	State        State
	Session      model.WalletSession
	Confirmation *model.Confirmation
	// Policies is nil until a listing succeeds and after a listing fails.
	Policies []model.Policy
	// Unreadable lists records skipped by a partial listing.
	Unreadable []policy.FailedRead
	Busy       bool
}

// Controller is the view state machine:
//
//	Disconnected --connect--> Purchase
//	Purchase --purchase--> Confirmation
//	Confirmation --navigate--> Purchase | MyPolicies
//	Purchase <--navigate--> MyPolicies
//	any connected state --home--> Purchase
//
// Only one ledger operation runs at a time; others fail with ErrBusy.
type Controller struct {
	logger    *zap.Logger
	connector Connector
	purchaser Purchaser
	lister    Lister
	partial   bool

	mu           sync.Mutex
	busy         bool
	state        State
	session      model.WalletSession
	confirmation *model.Confirmation
	policies     []model.Policy
	unreadable   []policy.FailedRead
}

// NewController starts in Disconnected. With partial set, listings keep readable
// records when some reads fail.
func NewController(connector Connector, purchaser Purchaser, lister Lister, partial bool, logger *zap.Logger) *Controller {
	return &Controller{
		logger:    logger.Named("view"),
		connector: connector,
		purchaser: purchaser,
		lister:    lister,
		partial:   partial,
		state:     Disconnected,
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		State:   c.state,
		Session: c.session,
		Busy:    c.busy,
	}
	if c.confirmation != nil {
		conf := *c.confirmation
		s.Confirmation = &conf
	}
	if c.policies != nil {
		s.Policies = make([]model.Policy, len(c.policies))
		copy(s.Policies, c.policies)
	}
	if len(c.unreadable) > 0 {
		s.Unreadable = append([]policy.FailedRead(nil), c.unreadable...)
	}
	return s
}

// Connect requests wallet access. On success the controller shows Purchase; a
// different account also drops the previous account's list and confirmation.
// On failure nothing changes.
func (c *Controller) Connect(ctx context.Context) (model.WalletSession, error) {
	if err := c.begin(); err != nil {
		return model.WalletSession{}, err
	}

	session, err := c.connector.Connect(ctx)

	c.mu.Lock()
	defer c.end()
	if err != nil {
		return model.WalletSession{}, err
	}
	switched := c.session.Address != session.Address
	c.session = session
	if switched {
		c.confirmation = nil
		c.policies, c.unreadable = nil, nil
	}
	if c.state == Disconnected || switched {
		c.moveLocked(Purchase)
	}
	return session, nil
}

// Purchase submits draft from the Purchase view and moves to Confirmation once mined.
// A failed purchase leaves the controller on Purchase without confirmation context.
func (c *Controller) Purchase(ctx context.Context, draft model.PolicyDraft) (model.Confirmation, error) {
	if err := c.begin(); err != nil {
		return model.Confirmation{}, err
	}

	c.mu.Lock()
	session, state := c.session, c.state
	c.mu.Unlock()

	if !session.Connected() {
		c.finish()
		return model.Confirmation{}, ErrNotConnected
	}
	if state != Purchase {
		c.finish()
		return model.Confirmation{}, fmt.Errorf("%w: purchase from %s", ErrInvalidTransition, state)
	}

	conf, err := c.purchaser.Purchase(ctx, session.Address, draft)

	c.mu.Lock()
	defer c.end()
	if err != nil {
		return model.Confirmation{}, err
	}
	c.confirmation = &conf
	c.moveLocked(Confirmation)
	return conf, nil
}

// ShowMyPolicies moves to MyPolicies and reads the holder's policies afresh.
func (c *Controller) ShowMyPolicies(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}

	c.mu.Lock()
	session, state := c.session, c.state
	if !session.Connected() {
		c.end()
		return ErrNotConnected
	}
	if state == Disconnected {
		c.end()
		return fmt.Errorf("%w: my policies from %s", ErrInvalidTransition, state)
	}
	c.moveLocked(MyPolicies)
	c.mu.Unlock()

	return c.load(ctx, session)
}

// Refresh re-reads the policy list while on MyPolicies.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}

	c.mu.Lock()
	session, state := c.session, c.state
	if state != MyPolicies {
		c.end()
		return fmt.Errorf("%w: refresh from %s", ErrInvalidTransition, state)
	}
	c.policies, c.unreadable = nil, nil
	c.mu.Unlock()

	return c.load(ctx, session)
}

// Navigate moves to Purchase or MyPolicies. Reaching MyPolicies reads the list.
func (c *Controller) Navigate(ctx context.Context, target State) error {
	switch target {
	case MyPolicies:
		return c.ShowMyPolicies(ctx)
	case Purchase:
		if err := c.begin(); err != nil {
			return err
		}
		c.mu.Lock()
		defer c.end()
		if c.state == Disconnected {
			return ErrNotConnected
		}
		c.moveLocked(Purchase)
		return nil
	default:
		return fmt.Errorf("%w: navigate to %s", ErrInvalidTransition, target)
	}
}

// Home shows Purchase from any connected state. Without a session it stays Disconnected.
func (c *Controller) Home() error {
	if err := c.begin(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.end()
	if c.state != Disconnected {
		c.moveLocked(Purchase)
	}
	return nil
}

func (c *Controller) load(ctx context.Context, session model.WalletSession) error {
	var (
		policies   []model.Policy
		unreadable []policy.FailedRead
		err        error
	)
	if c.partial {
		var res policy.PartialResult
		res, err = c.lister.ListPoliciesPartial(ctx, session.Address)
		var perr *policy.PartialQueryError
		if err == nil || errors.As(err, &perr) {
			policies, unreadable = res.Policies, res.Failed
		}
	} else {
		policies, err = c.lister.ListPolicies(ctx, session.Address)
		if err != nil {
			policies = nil
		}
	}

	c.mu.Lock()
	defer c.end()
	c.policies, c.unreadable = policies, unreadable
	if err != nil {
		c.logger.Error("policy listing failed", zap.String("holder", session.Address.Hex()), zap.Error(err))
	}
	return err
}

// begin marks an operation in flight.
func (c *Controller) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrBusy
	}
	c.busy = true
	return nil
}

// end clears the busy flag and releases c.mu, which the caller holds.
func (c *Controller) end() {
	c.busy = false
	c.mu.Unlock()
}

func (c *Controller) finish() {
	c.mu.Lock()
	c.end()
}

// moveLocked changes state; leaving Confirmation drops its context and leaving MyPolicies drops the list.
func (c *Controller) moveLocked(next State) {
	if c.state == next && next != MyPolicies {
		return
	}
	if c.state == Confirmation && next != Confirmation {
		c.confirmation = nil
	}
	if next == MyPolicies || c.state == MyPolicies {
		c.policies, c.unreadable = nil, nil
	}
	c.logger.Debug("view transition", zap.Stringer("from", c.state), zap.Stringer("to", next))
	c.state = next
}
