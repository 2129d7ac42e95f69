package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/flightguard/internal/model"
	"go.uber.org/zap"
)

// Connector establishes a wallet session through a Provider.
type Connector struct {
	provider Provider
	logger   *zap.Logger
}

// NewConnector builds a connector. A nil provider means no wallet is installed.
func NewConnector(provider Provider, logger *zap.Logger) *Connector {
	return &Connector{
		provider: provider,
		logger:   logger.Named("wallet"),
	}
}

// Provider returns the underlying provider, or nil when none is configured.
func (c *Connector) Provider() Provider {
	return c.provider
}

// Connect requests account access and returns a session for the first authorised account.
// Errors match ErrNoWallet or ErrConnectionRejected. Nothing is retried.
func (c *Connector) Connect(ctx context.Context) (model.WalletSession, error) {
	if c.provider == nil {
		c.logger.Warn("connect requested without a wallet")
		return model.WalletSession{}, ErrNoWallet
	}

	accounts, err := c.provider.RequestAccounts(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoWallet) && !errors.Is(err, ErrConnectionRejected) {
			err = fmt.Errorf("%w: %w", ErrConnectionRejected, err)
		}
		c.logger.Error("wallet connection failed", zap.Error(err))
		return model.WalletSession{}, err
	}
	if len(accounts) == 0 {
		c.logger.Error("wallet authorised no accounts")
		return model.WalletSession{}, fmt.Errorf("%w: no accounts authorised", ErrConnectionRejected)
	}

	session := model.WalletSession{Address: accounts[0]}
	c.logger.Info("wallet connected", zap.String("holder", session.Address.Hex()))
	return session, nil
}
