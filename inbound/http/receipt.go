package http

import (
	"errors"
	"log/slog"
	"net/http"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
)

type ReceiptHttp struct {
	Runner    PurchaseRunner
	Tickets   TicketFinder
	Snapshots SnapshotStore
}

func RegisterReceiptHttp(mux *http.ServeMux, runner PurchaseRunner, tickets TicketFinder, snapshots SnapshotStore) *ReceiptHttp {
	in := &ReceiptHttp{Runner: runner, Tickets: tickets, Snapshots: snapshots}

	mux.HandleFunc("POST /api/receipts/{signature}/resume", in.resume)
	mux.HandleFunc("GET /api/receipts/{signature}/tickets", in.tickets)

	return in
}

// resume answers with the outcome itself. A purchase that fails again keeps the kind's status code.
func (in *ReceiptHttp) resume(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "ReceiptHttp.resume")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	signature := r.PathValue("signature")

	outcome, err := in.Runner.Resume(ctx, signature)
	if outcome.PurchaseID != "" {
		if saveErr := in.Snapshots.SaveOutcome(ctx, outcome); saveErr != nil {
			slog.WarnContext(ctx, "failed to save resumed outcome", traceIdAttr,
				slog.String(constant.LogFieldSignature, signature),
				slog.Any(constant.LogFieldErr, saveErr))
		}
	}

	if err != nil {
		common.UtilSpanError(span, err)

		var purchaseErr *errs.PurchaseError
		if errors.As(err, &purchaseErr) && outcome.PurchaseID != "" {
			writeJSONResponse(w, purchaseErr.Kind.HttpStatus(), outcome)
			return
		}

		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, outcome)
}

func (in *ReceiptHttp) tickets(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "ReceiptHttp.tickets")
	defer span.End()

	signature := r.PathValue("signature")
	tickets, err := in.Tickets.FindTicketsBySignature(ctx, signature)
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	if len(tickets) == 0 {
		writeErrorResponse(w, errs.NotFound("No tickets issued for this payment"))
		return
	}

	writeJSONResponse(w, http.StatusOK, model.ListTicketsResponse{Signature: signature, Tickets: tickets})
}
