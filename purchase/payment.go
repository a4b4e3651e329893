package purchase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/oklog/ulid/v2"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/metrics"
	"tickto/common/otel"
	"tickto/model"
	"time"
)

// PaymentSubmitter moves quantity*unitPrice lamports from the buyer wallet to the organizer with a
// single system transfer. The signed receipt is journaled before it is sent.
type PaymentSubmitter struct {
	Identity Identity
	Ledger   Ledger
	Journal  ReceiptJournal

	TimeNow func() time.Time
}

func FreeReceipt() model.PaymentReceipt {
	return model.PaymentReceipt{
		Signature: constant.FreeReceiptPrefix + ulid.Make().String(),
		Free:      true,
		Confirmed: true,
	}
}

func (s *PaymentSubmitter) Submit(ctx context.Context, purchaseID string, wallet model.SigningWallet, req model.PurchaseRequest) (model.PaymentReceipt, error) {
	ctx, span := otel.Tracer.Start(ctx, "PaymentSubmitter.Submit")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	purchaseAttr := slog.String(constant.LogFieldPurchaseId, purchaseID)

	amount, ok := req.TotalLamports()
	if !ok {
		return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindValidation, nil, fmt.Errorf("total of %d x %d overflows", req.Quantity, req.UnitPrice))
	}

	if amount == 0 {
		slog.DebugContext(ctx, "free purchase, skipping ledger", traceIdAttr, purchaseAttr)
		return FreeReceipt(), nil
	}

	payee, err := ParseAddress(req.OrganizerAddress)
	if err != nil {
		slog.WarnContext(ctx, "organizer address is malformed", traceIdAttr, purchaseAttr, slog.String("event_id", req.EventID), slog.Any(constant.LogFieldErr, err))
		return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindInvalidAddress, nil, fmt.Errorf("organizer address: %w", err))
	}

	payer, err := ParseAddress(wallet.Address)
	if err != nil {
		return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindWalletUnavailable, nil, fmt.Errorf("payer address: %w", err))
	}

	ref, err := s.Ledger.LatestBlockReference(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch block reference", traceIdAttr, purchaseAttr, slog.Any(constant.LogFieldErr, err))
		metrics.RecordSubmission("blockhash_error")
		return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindSubmissionFailed, nil, fmt.Errorf("latest block reference: %w", err))
	}

	blockhash, err := solana.HashFromBase58(ref.Hash)
	if err != nil {
		return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindSubmissionFailed, nil, fmt.Errorf("decode blockhash %q: %w", ref.Hash, err))
	}

	unsigned, message, err := BuildTransfer(payer, payee, amount, blockhash)
	if err != nil {
		return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindSubmissionFailed, nil, err)
	}

	slog.InfoContext(ctx, "requesting payment signature", traceIdAttr, purchaseAttr, slog.Uint64("amount", amount), slog.String("client_kind", string(wallet.ClientKind)))

	signed, err := s.Identity.RequestSignature(ctx, wallet, unsigned)
	if err != nil {
		return model.PaymentReceipt{}, s.classifySignatureError(ctx, err)
	}

	signature, err := VerifySignedTransfer(signed, message, payer)
	if err != nil {
		slog.WarnContext(ctx, "signed transaction rejected", traceIdAttr, purchaseAttr, slog.Any(constant.LogFieldErr, err))
		return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindSignatureDeclined, nil, err)
	}

	receipt := model.PaymentReceipt{
		Signature:       signature,
		BlockhashUsed:   ref.Hash,
		LastValidHeight: ref.ExpiryHeight,
		Amount:          amount,
		FromAddress:     payer.String(),
		ToAddress:       payee.String(),
	}

	sigAttr := slog.String(constant.LogFieldSignature, receipt.Signature)

	if s.Journal != nil {
		err = s.Journal.RecordSigned(ctx, model.JournalEntry{
			PurchaseID: purchaseID,
			Receipt:    receipt,
			Request:    req,
			Status:     model.ReceiptStatusSigned,
			UpdatedAt:  s.now(),
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to journal signed receipt", traceIdAttr, purchaseAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
			return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindSubmissionFailed, nil, fmt.Errorf("journal receipt: %w", err))
		}
	}

	// Once the bytes leave this process the payment may land, so the send ignores cancellation.
	sendCtx := context.WithoutCancel(ctx)

	txID, err := s.Ledger.SubmitTransaction(sendCtx, signed)
	if err != nil {
		slog.ErrorContext(ctx, "failed to submit transaction", traceIdAttr, purchaseAttr, sigAttr, slog.Any(constant.LogFieldErr, err))
		metrics.RecordSubmission("error")
		s.mark(sendCtx, receipt.Signature, model.ReceiptStatusFailed)
		return model.PaymentReceipt{}, errs.NewPurchaseError(errs.KindSubmissionFailed, &receipt, fmt.Errorf("submit transaction: %w", err))
	}

	if txID != receipt.Signature {
		slog.WarnContext(ctx, "ledger returned a different transaction id", traceIdAttr, purchaseAttr, sigAttr, slog.String("transaction_id", txID))
	}

	metrics.RecordSubmission("ok")
	s.mark(sendCtx, receipt.Signature, model.ReceiptStatusSubmitted)

	slog.InfoContext(ctx, "payment submitted", traceIdAttr, purchaseAttr, sigAttr, slog.Uint64("last_valid_height", receipt.LastValidHeight))

	return receipt, nil
}

func (s *PaymentSubmitter) classifySignatureError(ctx context.Context, err error) error {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	switch {
	case errors.Is(err, errs.ErrSignatureRejected):
		slog.InfoContext(ctx, "payment signature declined", traceIdAttr)
		return errs.NewPurchaseError(errs.KindSignatureDeclined, nil, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		slog.InfoContext(ctx, "payment signature abandoned", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return errs.NewPurchaseError(errs.KindCanceled, nil, err)
	default:
		slog.ErrorContext(ctx, "failed to obtain payment signature", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return errs.NewPurchaseError(errs.KindSubmissionFailed, nil, fmt.Errorf("request signature: %w", err))
	}
}

func (s *PaymentSubmitter) mark(ctx context.Context, signature string, status model.ReceiptStatus) {
	if s.Journal == nil {
		return
	}

	if err := s.Journal.UpdateReceiptStatus(ctx, signature, status); err != nil {
		slog.ErrorContext(ctx, "failed to update receipt status",
			common.ExtractTraceIDFromCtx(ctx),
			slog.String(constant.LogFieldSignature, signature),
			slog.String("status", string(status)),
			slog.Any(constant.LogFieldErr, err),
		)
	}
}

func (s *PaymentSubmitter) now() time.Time {
	if s.TimeNow == nil {
		return time.Now()
	}

	return s.TimeNow()
}

// BuildTransfer returns the wire transaction with an empty signature slot for the payer, and the
// message bytes the payer has to sign.
func BuildTransfer(payer, payee solana.PublicKey, lamports uint64, blockhash solana.Hash) ([]byte, []byte, error) {
	tx, err := solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(lamports, payer, payee).Build(),
		},
		blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("build transfer: %w", err)
	}

	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("encode message: %w", err)
	}

	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)

	wire, err := tx.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("encode transaction: %w", err)
	}

	return wire, message, nil
}

// VerifySignedTransfer checks the signer returned exactly the message we built, signed by the payer,
// and returns the payer signature which doubles as the transaction id.
func VerifySignedTransfer(signed, message []byte, payer solana.PublicKey) (string, error) {
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(signed))
	if err != nil {
		return "", fmt.Errorf("decode signed transaction: %w", err)
	}

	signedMessage, err := tx.Message.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("encode signed message: %w", err)
	}

	if !bytes.Equal(signedMessage, message) {
		return "", errors.New("signed transaction differs from the requested transfer")
	}

	if len(tx.Signatures) == 0 || tx.Signatures[0] == (solana.Signature{}) {
		return "", errors.New("transaction carries no payer signature")
	}

	if !tx.Signatures[0].Verify(payer, message) {
		return "", errors.New("payer signature does not verify")
	}

	return tx.Signatures[0].String(), nil
}
