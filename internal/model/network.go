// Package model defines domain models for the FlightGuard policy client.
package model

// Network names the chain a client is attached to. It is used as a metrics and journal label.
type Network string

var (
	Sepolia Network = "sepolia"
	Mainnet Network = "mainnet"
	Local   Network = "local"
)
