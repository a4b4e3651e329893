package http

import (
	"context"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/viper"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
	"tickto/purchase"
	"time"
)

const defaultRunTimeout = 5 * time.Minute

// PurchaseHttp accepts purchases and runs each one in the background. Cancellation only reaches
// purchases running on this instance and only matters until the payment is submitted.
type PurchaseHttp struct {
	Runner    PurchaseRunner
	Snapshots SnapshotStore
	Buyers    BuyerVerifier
	Validate  *validator.Validate

	TimeNow func() time.Time

	runTimeout time.Duration

	mu      sync.Mutex
	running map[string]context.CancelFunc
	wg      sync.WaitGroup
}

func RegisterPurchaseHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	runner PurchaseRunner,
	snapshots SnapshotStore,
	buyers BuyerVerifier,
	validate *validator.Validate,
) *PurchaseHttp {
	in := &PurchaseHttp{
		Runner:    runner,
		Snapshots: snapshots,
		Buyers:    buyers,
		Validate:  validate,
		TimeNow:   time.Now,

		runTimeout: cfg.GetDuration("purchase.run_timeout"),
		running:    make(map[string]context.CancelFunc),
	}

	if in.runTimeout <= 0 {
		in.runTimeout = defaultRunTimeout
	}

	mux.HandleFunc("POST /api/purchases", in.create)
	mux.HandleFunc("GET /api/purchases/{id}", in.get)
	mux.HandleFunc("DELETE /api/purchases/{id}", in.cancel)

	return in
}

// create signs the payment with the wallets of the authenticated buyer only: buyer_id may be
// omitted, and must match the access token when present.
func (in *PurchaseHttp) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "PurchaseHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		writeErrorResponse(w, errs.Unauthorized("Missing access token"))
		return
	}

	buyerID, err := in.Buyers.VerifyToken(ctx, strings.TrimSpace(token))
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errs.Unauthorized("Invalid access token"))
		return
	}

	var req model.PurchaseRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errs.BadRequest("Invalid request", nil))
		return
	}

	if req.BuyerID == "" {
		req.BuyerID = buyerID
	}

	if req.BuyerID != buyerID {
		slog.WarnContext(ctx, "purchase for another buyer refused", traceIdAttr,
			slog.String(constant.LogFieldBuyerId, buyerID),
			slog.String("requested_buyer_id", req.BuyerID))
		writeErrorResponse(w, errs.Forbidden("Cannot purchase for another buyer"))
		return
	}

	if err = in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	purchaseID := ulid.Make().String()
	sm := purchase.NewStateMachine(purchaseID, req.BuyerID)

	in.Snapshots.Observe(ctx, model.PurchaseTransition{
		PurchaseID: purchaseID,
		BuyerID:    req.BuyerID,
		From:       model.PurchaseStateIdle,
		To:         model.PurchaseStateIdle,
		At:         in.TimeNow().UTC(),
	})

	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), in.runTimeout)

	in.mu.Lock()
	in.running[purchaseID] = cancel
	in.mu.Unlock()

	in.wg.Add(1)
	go in.run(runCtx, cancel, sm, req)

	slog.InfoContext(ctx, "purchase accepted", traceIdAttr,
		slog.String(constant.LogFieldPurchaseId, purchaseID),
		slog.String(constant.LogFieldBuyerId, req.BuyerID))

	writeJSONResponse(w, http.StatusAccepted, model.CreatePurchaseResponse{PurchaseID: purchaseID})
}

func (in *PurchaseHttp) run(ctx context.Context, cancel context.CancelFunc, sm *purchase.StateMachine, req model.PurchaseRequest) {
	defer in.wg.Done()
	defer cancel()
	defer in.forget(sm.PurchaseID())

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	purchaseAttr := slog.String(constant.LogFieldPurchaseId, sm.PurchaseID())

	outcome, err := in.Runner.Run(ctx, sm, req)
	if err != nil {
		slog.InfoContext(ctx, "purchase finished with failure", traceIdAttr, purchaseAttr,
			slog.String(constant.LogFieldKind, outcome.ErrorKind),
			slog.Any(constant.LogFieldErr, err))
	}

	if outcome.PurchaseID == "" {
		outcome.PurchaseID = sm.PurchaseID()
	}

	if err = in.Snapshots.SaveOutcome(context.WithoutCancel(ctx), outcome); err != nil {
		slog.ErrorContext(ctx, "failed to save purchase outcome", traceIdAttr, purchaseAttr, slog.Any(constant.LogFieldErr, err))
	}
}

func (in *PurchaseHttp) forget(purchaseID string) {
	in.mu.Lock()
	delete(in.running, purchaseID)
	in.mu.Unlock()
}

func (in *PurchaseHttp) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "PurchaseHttp.get")
	defer span.End()

	snap, err := in.Snapshots.Get(ctx, r.PathValue("id"))
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, snap)
}

func (in *PurchaseHttp) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "PurchaseHttp.cancel")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	purchaseID := r.PathValue("id")

	in.mu.Lock()
	cancel, ok := in.running[purchaseID]
	in.mu.Unlock()

	if !ok {
		writeErrorResponse(w, errs.NotFound("Purchase is not running"))
		return
	}

	cancel()

	slog.InfoContext(ctx, "purchase cancellation requested", traceIdAttr, slog.String(constant.LogFieldPurchaseId, purchaseID))

	writeJSONResponse(w, http.StatusAccepted, model.CreatePurchaseResponse{PurchaseID: purchaseID})
}

// Drain cancels every purchase that has not submitted a payment yet and waits for all of them
// to finish, or for ctx to expire.
func (in *PurchaseHttp) Drain(ctx context.Context) error {
	in.mu.Lock()
	for _, cancel := range in.running {
		cancel()
	}
	in.mu.Unlock()

	done := make(chan struct{})
	go func() {
		in.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
