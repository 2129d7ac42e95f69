package model

import "github.com/ethereum/go-ethereum/common"

// WalletSession holds the account authorised by the wallet. The zero value is a disconnected session.
type WalletSession struct {
	Address common.Address
}

// Connected reports whether an account has been authorised.
func (s WalletSession) Connected() bool {
	return s.Address != (common.Address{})
}

// ShortAddress renders the address as 0x1234...abcd.
func (s WalletSession) ShortAddress() string {
	if !s.Connected() {
		return ""
	}
	hex := s.Address.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}
