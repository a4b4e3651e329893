package http

import (
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"tickto/common"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
)

// SignatureHttp receives an external wallet's answer to a signature request and hands it to
// the instance waiting for it.
type SignatureHttp struct {
	Relay    SignatureRelay
	Validate *validator.Validate
}

func RegisterSignatureHttp(mux *http.ServeMux, relay SignatureRelay, validate *validator.Validate) *SignatureHttp {
	in := &SignatureHttp{Relay: relay, Validate: validate}

	mux.HandleFunc("POST /api/signatures/{request_id}", in.answer)

	return in
}

func (in *SignatureHttp) answer(w http.ResponseWriter, r *http.Request) {
	var answer model.SignatureAnswer
	if err := json.NewDecoder(r.Body).Decode(&answer); err != nil {
		writeErrorResponse(w, errs.BadRequest("Invalid request", nil))
		return
	}

	answer.RequestID = r.PathValue("request_id")

	if err := in.Validate.Struct(answer); err != nil {
		writeErrorResponse(w, err)
		return
	}

	if !answer.Rejected && answer.SignedTransaction == "" {
		writeErrorResponse(w, errs.BadRequest("Validation failed", map[string]string{"SignedTransaction": "required"}))
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "SignatureHttp.answer")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	if err := in.Relay.Answer(ctx, answer); err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "signature answer relayed", traceIdAttr,
		slog.String("request_id", answer.RequestID),
		slog.Bool("rejected", answer.Rejected))

	w.WriteHeader(http.StatusAccepted)
}
