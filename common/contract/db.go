package contract

import (
	"context"
	"github.com/jackc/pgx/v5"
)

// TxStarter opens the transaction that claims a payment signature and copies its tickets. Both
// pgxpool.Pool and pgxmock pools satisfy it.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
