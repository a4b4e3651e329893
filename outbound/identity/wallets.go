package identity

import (
	"context"
	"tickto/model"
)

type Provider interface {
	ListWallets(ctx context.Context, userID string) ([]model.SigningWallet, error)
	CreateWallet(ctx context.Context, userID string, chainKind string) (model.SigningWallet, error)
	RequestSignature(ctx context.Context, wallet model.SigningWallet, transaction []byte) ([]byte, error)
}

type Signer interface {
	RequestSignature(ctx context.Context, wallet model.SigningWallet, transaction []byte) ([]byte, error)
}

// Wallets sends custodial wallets to the provider and external wallets to their holder.
type Wallets struct {
	Provider Provider
	External Signer
}

func (out *Wallets) ListWallets(ctx context.Context, userID string) ([]model.SigningWallet, error) {
	return out.Provider.ListWallets(ctx, userID)
}

func (out *Wallets) CreateWallet(ctx context.Context, userID string, chainKind string) (model.SigningWallet, error) {
	return out.Provider.CreateWallet(ctx, userID, chainKind)
}

func (out *Wallets) RequestSignature(ctx context.Context, wallet model.SigningWallet, transaction []byte) ([]byte, error) {
	if wallet.ClientKind == model.WalletClientExternal {
		return out.External.RequestSignature(ctx, wallet, transaction)
	}

	return out.Provider.RequestSignature(ctx, wallet, transaction)
}
