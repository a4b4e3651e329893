package store

import (
	"context"
	"errors"
	"github.com/jackc/pgx/v5"
	"tickto/common"
	"tickto/common/otel"
	"tickto/outbound/sqlgen"
)

type ProfileStore struct {
	Querier *sqlgen.Queries
}

// PrimaryWalletAddress returns "" for unknown users and users without a declared primary wallet.
func (out ProfileStore) PrimaryWalletAddress(ctx context.Context, userID string) (string, error) {
	ctx, span := otel.Tracer.Start(ctx, "ProfileStore.PrimaryWalletAddress")
	defer span.End()

	address, err := out.Querier.FindUserPrimaryWalletAddress(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		common.UtilSpanError(span, err)
		return "", err
	}

	return address.String, nil
}
