package cron

import (
	"context"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/otel"
	"tickto/model"
	"tickto/outbound/store"
	"time"
)

// reconcileStatuses are receipts whose payment may have landed without tickets. A failed send is
// included since the network can still accept a transaction the RPC node reported as failed.
var reconcileStatuses = []model.ReceiptStatus{
	model.ReceiptStatusSigned,
	model.ReceiptStatusSubmitted,
	model.ReceiptStatusConfirmed,
	model.ReceiptStatusExpired,
	model.ReceiptStatusFailed,
}

// ReconcileCron enqueues a resume for every journaled payment that stopped moving. Only one
// instance scans per interval, guarded by a redis lock.
type ReconcileCron struct {
	Cfg       *viper.Viper
	Cache     *redis.Client
	Journal   store.ReceiptJournal
	Publisher jetstream.Publisher

	TimeNow func() time.Time
}

func (in ReconcileCron) Start(ctx context.Context) {
	refreshTicker := time.NewTicker(in.Cfg.GetDuration("cron.reconcile.interval"))
	defer refreshTicker.Stop()

	slog.Info("reconcile cron started")

	for {
		select {
		case <-refreshTicker.C:
			in.Reconcile(ctx)
		case <-ctx.Done():
			slog.Info("reconcile cron stopped")
			return
		}
	}
}

// Reconcile runs one scan and returns how many resumes were enqueued.
func (in ReconcileCron) Reconcile(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("cron.reconcile.timeout"))
	defer cancel()

	ctx, span := otel.Tracer.Start(ctx, "ReconcileCron.Reconcile")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	acquired, err := in.Cache.SetNX(ctx, constant.ReconcileLockKey, true, in.Cfg.GetDuration("cron.reconcile.interval")).Result()
	if err != nil {
		common.UtilSpanError(span, err)
		slog.ErrorContext(ctx, "failed to take reconcile lock", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return 0
	}

	if !acquired {
		slog.DebugContext(ctx, "reconcile already running elsewhere", traceIdAttr)
		return 0
	}

	now := in.TimeNow()
	signatures, err := in.Journal.ListStale(ctx,
		reconcileStatuses,
		now.Add(-in.Cfg.GetDuration("cron.reconcile.stale_after")),
		now.Add(-in.Cfg.GetDuration("cron.reconcile.horizon")),
		in.Cfg.GetInt("cron.reconcile.batch_size"),
	)
	if err != nil {
		common.UtilSpanError(span, err)
		return 0
	}

	enqueued := 0
	for _, signature := range signatures {
		err = common.PublishMessage(ctx, in.Publisher, constant.SubjectResumePurchase,
			model.ResumePurchaseEventMessage{Signature: signature},
			jetstream.WithMsgID("resume:"+signature))
		if err != nil {
			slog.ErrorContext(ctx, "failed to enqueue resume", traceIdAttr,
				slog.String(constant.LogFieldSignature, signature),
				slog.Any(constant.LogFieldErr, err))
			continue
		}
		enqueued++
	}

	if len(signatures) > 0 {
		slog.InfoContext(ctx, "reconcile enqueued resumes", traceIdAttr,
			slog.Int("stale", len(signatures)),
			slog.Int("enqueued", enqueued))
	}

	return enqueued
}
