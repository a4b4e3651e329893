package purchase

import (
	"errors"
	"fmt"
	"github.com/gagliardetto/solana-go"
)

var errEmptyAddress = errors.New("address is empty")

// ParseAddress accepts a base58 encoded ed25519 public key. The all-zero key is rejected because
// it names the system program, never a wallet.
func ParseAddress(address string) (solana.PublicKey, error) {
	if address == "" {
		return solana.PublicKey{}, errEmptyAddress
	}

	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("decode address %q: %w", address, err)
	}

	if key == (solana.PublicKey{}) {
		return solana.PublicKey{}, fmt.Errorf("address %q is the zero key", address)
	}

	return key, nil
}
