package purchase

import (
	"context"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"testing"
	"tickto/common/constant"
	"tickto/model"
)

type signer struct {
	key solana.PrivateKey
}

func newSigner(t *testing.T) signer {
	t.Helper()

	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	return signer{key: key}
}

func (s signer) address() string {
	return s.key.PublicKey().String()
}

func (s signer) wallet(kind model.WalletClientKind) model.SigningWallet {
	return model.SigningWallet{
		ID:         "wallet-" + s.address()[:6],
		Address:    s.address(),
		ChainKind:  constant.ChainSolana,
		ClientKind: kind,
	}
}

// sign mirrors a custodial provider: decode, sign the message, re-encode.
func (s signer) sign(_ context.Context, _ model.SigningWallet, raw []byte) ([]byte, error) {
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, err
	}

	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return nil, err
	}

	signature, err := s.key.Sign(message)
	if err != nil {
		return nil, err
	}

	tx.Signatures[0] = signature

	return tx.MarshalBinary()
}

func blockReference(seed byte, expiry uint64) model.BlockReference {
	return model.BlockReference{
		Hash:         solana.Hash{seed, 0xa1, 0xb2, 0xc3}.String(),
		ExpiryHeight: expiry,
	}
}

func organizerAddress(t *testing.T) string {
	t.Helper()

	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("failed to generate organizer key: %v", err)
	}

	return key.PublicKey().String()
}

func validRequest(organizer string) model.PurchaseRequest {
	return model.PurchaseRequest{
		EventID:          "evt_01j9summerfest",
		BuyerID:          "user-42",
		TierID:           "tier-ga",
		TierName:         "General Admission",
		Quantity:         2,
		UnitPrice:        constant.LamportsPerSol,
		OrganizerAddress: organizer,
		BuyerEmail:       "buyer@example.com",
	}
}

// echoRows makes a TicketStore mock behave like an empty store that accepts the insert.
func echoRows(_ context.Context, _ string, rows []model.Ticket) ([]model.Ticket, error) {
	return rows, nil
}

func recordStates(sm *StateMachine) *[]model.PurchaseState {
	states := []model.PurchaseState{sm.State()}
	sm.Subscribe(func(transition model.PurchaseTransition) {
		states = append(states, transition.To)
	})

	return &states
}
