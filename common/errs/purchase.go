package errs

import (
	"errors"
	"fmt"
	"net/http"
	"tickto/model"
)

var (
	ErrSignatureRejected   = errors.New("signature rejected by wallet holder")
	ErrTicketCodeCollision = errors.New("ticket code collision")
)

type Kind string

const (
	KindValidation                 Kind = "ValidationError"
	KindWalletUnavailable          Kind = "WalletUnavailable"
	KindInvalidAddress             Kind = "InvalidAddress"
	KindSignatureDeclined          Kind = "SignatureDeclined"
	KindSubmissionFailed           Kind = "SubmissionFailed"
	KindPaymentRejected            Kind = "PaymentRejected"
	KindAmbiguousOutcome           Kind = "AmbiguousOutcome"
	KindIssuanceFailed             Kind = "IssuanceFailed"
	KindIssuanceAfterPaymentFailed Kind = "IssuanceAfterPaymentFailed"
	KindCanceled                   Kind = "Canceled"
)

// Retryable reports whether the whole pipeline may be started again from scratch.
// AmbiguousOutcome and IssuanceAfterPaymentFailed are resumed by signature instead.
func (k Kind) Retryable() bool {
	switch k {
	case KindWalletUnavailable, KindSubmissionFailed, KindIssuanceFailed, KindCanceled:
		return true
	default:
		return false
	}
}

// RequiresResume reports whether the caller must resume with the receipt signature
// rather than submit a new payment.
func (k Kind) RequiresResume() bool {
	return k == KindAmbiguousOutcome || k == KindIssuanceAfterPaymentFailed
}

func (k Kind) Message() string {
	switch k {
	case KindValidation:
		return "The purchase request is invalid"
	case KindWalletUnavailable:
		return "We could not prepare your wallet, please try again"
	case KindInvalidAddress:
		return "This event cannot accept payment right now"
	case KindSignatureDeclined:
		return "The payment was not approved"
	case KindSubmissionFailed:
		return "The payment could not be sent, you have not been charged"
	case KindPaymentRejected:
		return "The network rejected the payment, you have not been charged"
	case KindAmbiguousOutcome:
		return "We are still checking your payment, please do not pay again"
	case KindIssuanceFailed:
		return "We could not issue your tickets, please try again"
	case KindIssuanceAfterPaymentFailed:
		return "Your payment was received but tickets are delayed, please contact support with your payment signature"
	case KindCanceled:
		return "The purchase was canceled"
	default:
		return "Internal Server Error"
	}
}

func (k Kind) HttpStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindInvalidAddress:
		return http.StatusUnprocessableEntity
	case KindSignatureDeclined, KindPaymentRejected:
		return http.StatusPaymentRequired
	case KindAmbiguousOutcome:
		return http.StatusAccepted
	case KindWalletUnavailable, KindSubmissionFailed:
		return http.StatusServiceUnavailable
	case KindCanceled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type PurchaseError struct {
	Kind    Kind
	Receipt *model.PaymentReceipt
	Err     error
}

func NewPurchaseError(kind Kind, receipt *model.PaymentReceipt, err error) *PurchaseError {
	return &PurchaseError{Kind: kind, Receipt: receipt, Err: err}
}

func (e *PurchaseError) Error() string {
	if e.Receipt != nil && e.Receipt.Signature != "" {
		return fmt.Sprintf("%s (signature %s): %v", e.Kind, e.Receipt.Signature, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// Is matches another PurchaseError of the same kind, so errors.Is(err, &PurchaseError{Kind: k}) works.
func (e *PurchaseError) Is(target error) bool {
	t, ok := target.(*PurchaseError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

func KindOf(err error) Kind {
	var purchaseErr *PurchaseError
	if errors.As(err, &purchaseErr) {
		return purchaseErr.Kind
	}

	return ""
}

func ReceiptOf(err error) *model.PaymentReceipt {
	var purchaseErr *PurchaseError
	if errors.As(err, &purchaseErr) {
		return purchaseErr.Receipt
	}

	return nil
}
