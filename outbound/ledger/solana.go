package ledger

import (
	"context"
	"fmt"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/otel"
	"tickto/model"
)

// SolanaLedger talks to a Solana JSON-RPC node.
type SolanaLedger struct {
	Client     *rpc.Client
	Commitment rpc.CommitmentType
}

func NewSolanaLedger(endpoint string, commitment string) SolanaLedger {
	return SolanaLedger{
		Client:     rpc.New(endpoint),
		Commitment: rpc.CommitmentType(commitment),
	}
}

func (out SolanaLedger) LatestBlockReference(ctx context.Context) (model.BlockReference, error) {
	ctx, span := otel.Tracer.Start(ctx, "SolanaLedger.LatestBlockReference")
	defer span.End()

	res, err := out.Client.GetLatestBlockhash(ctx, out.commitment())
	if err != nil {
		common.UtilSpanError(span, err)
		return model.BlockReference{}, err
	}

	if res == nil || res.Value == nil {
		err = fmt.Errorf("empty latest blockhash response")
		common.UtilSpanError(span, err)
		return model.BlockReference{}, err
	}

	return model.BlockReference{
		Hash:         res.Value.Blockhash.String(),
		ExpiryHeight: res.Value.LastValidBlockHeight,
	}, nil
}

func (out SolanaLedger) SubmitTransaction(ctx context.Context, signed []byte) (string, error) {
	ctx, span := otel.Tracer.Start(ctx, "SolanaLedger.SubmitTransaction")
	defer span.End()

	sig, err := out.Client.SendRawTransactionWithOpts(ctx, signed, rpc.TransactionOpts{
		PreflightCommitment: out.commitment(),
	})
	if err != nil {
		common.UtilSpanError(span, err)
		return "", err
	}

	return sig.String(), nil
}

func (out SolanaLedger) GetTransactionStatus(ctx context.Context, signature string) (model.TransactionStatus, error) {
	ctx, span := otel.Tracer.Start(ctx, "SolanaLedger.GetTransactionStatus")
	defer span.End()

	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.TransactionStatus{}, fmt.Errorf("decode signature %q: %w", signature, err)
	}

	res, err := out.Client.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.TransactionStatus{}, err
	}

	if res == nil || len(res.Value) == 0 || res.Value[0] == nil {
		return model.TransactionStatus{}, nil
	}

	st := res.Value[0]
	status := model.TransactionStatus{
		Landed:     true,
		Succeeded:  st.Err == nil,
		Height:     st.Slot,
		Commitment: string(st.ConfirmationStatus),
	}

	if st.Err != nil {
		status.Err = fmt.Sprint(st.Err)
		slog.DebugContext(ctx, "transaction landed with error", common.ExtractTraceIDFromCtx(ctx), slog.String(constant.LogFieldSignature, signature), slog.String("ledger_err", status.Err))
	}

	return status, nil
}

func (out SolanaLedger) CurrentBlockHeight(ctx context.Context) (uint64, error) {
	ctx, span := otel.Tracer.Start(ctx, "SolanaLedger.CurrentBlockHeight")
	defer span.End()

	height, err := out.Client.GetBlockHeight(ctx, out.commitment())
	if err != nil {
		common.UtilSpanError(span, err)
		return 0, err
	}

	return height, nil
}

func (out SolanaLedger) commitment() rpc.CommitmentType {
	if out.Commitment == "" {
		return rpc.CommitmentConfirmed
	}

	return out.Commitment
}
