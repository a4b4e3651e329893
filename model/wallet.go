package model

type WalletClientKind string

const (
	WalletClientCustodial WalletClientKind = "custodial"
	WalletClientExternal  WalletClientKind = "external"
)

type SigningWallet struct {
	ID         string           `json:"id"`
	Address    string           `json:"address"`
	ChainKind  string           `json:"chain_kind"`
	ClientKind WalletClientKind `json:"client_kind"`
	OwnerID    string           `json:"owner_id,omitempty"`
}
