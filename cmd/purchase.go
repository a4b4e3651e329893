package cmd

import (
	"context"
	"github.com/nats-io/nats.go/jetstream"
	"log"
	"log/slog"
	"tickto/common/constant"
	inboundCron "tickto/inbound/cron"
	"tickto/inbound/event"
	"tickto/outbound/snapshot"
	"tickto/outbound/sqlgen"
	"tickto/outbound/store"
	"time"
)

func runQueuePurchaseCmd(ctx context.Context) {
	cfg := newCfg("env")

	shutdownTracer := newTracer(ctx, cfg)
	defer shutdownTracer(context.Background())

	db := newDb(cfg)
	defer db.Close()

	querier := sqlgen.New(db)

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	st := createStreamWorkQueue(ctx, cfg, js)

	snapshots := &snapshot.Store{Cache: cacheClient, TTL: cfg.GetDuration("purchase.snapshot_ttl")}
	coordinator := newCoordinator(cfg, coordinatorDeps{
		db:        db,
		querier:   querier,
		js:        js,
		natsConn:  natsConn,
		pubnub:    newPubNub(cfg),
		snapshots: snapshots,
	})

	purchaseEvent := event.PurchaseEvent{
		Resumer:   coordinator,
		Snapshots: snapshots,
		Timeout:   cfg.GetDuration("queue.purchase.timeout"),
	}

	reconcileCron := inboundCron.ReconcileCron{
		Cfg:       cfg,
		Cache:     cacheClient,
		Journal:   store.ReceiptJournal{Querier: querier},
		Publisher: js,
		TimeNow:   time.Now,
	}

	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       "consumer:purchase",
		FilterSubject: constant.PurchaseWildcard,
		MaxDeliver:    cfg.GetInt("queue.purchase.max_deliver"),
		AckWait:       cfg.GetDuration("queue.purchase.ack_wait"),
	})
	if err != nil {
		log.Fatalln("failed to create consumer", err)
	}

	iter, err := cons.Messages(jetstream.PullMaxMessages(cfg.GetInt("queue.purchase.batch_size")))
	if err != nil {
		panic(err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				msg, err := iter.Next()
				if err != nil && err != jetstream.ErrMsgIteratorClosed {
					slog.ErrorContext(ctx, "Error fetching message", slog.Any(constant.LogFieldErr, err))
					continue
				}

				if msg == nil {
					continue
				}

				var eventErr error
				switch msg.Subject() {
				case constant.SubjectResumePurchase:
					eventErr = purchaseEvent.ResumeHandler(ctx, msg.Data())
				}

				if eventErr != nil {
					msg.NakWithDelay(cfg.GetDuration("queue.purchase.nak_delay"))
					continue
				}

				if err := msg.Ack(); err != nil {
					slog.ErrorContext(ctx, "Error acknowledging message",
						slog.Any(constant.LogFieldErr, err),
						slog.Any(constant.LogFieldPayload, string(msg.Data())),
						slog.String("subject", msg.Subject()),
					)
					continue
				}
			}
		}
	}()

	go func() {
		reconcileCron.Start(ctx)
	}()

	slog.InfoContext(ctx, "purchase queue consumer started")

	<-ctx.Done()

	iter.Stop()

	slog.InfoContext(ctx, "purchase queue consumer stopped")
}

// runReconcileCmd runs a single reconcile scan, for operators catching up after an outage.
func runReconcileCmd(ctx context.Context) {
	cfg := newCfg("env")

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	createStreamWorkQueue(ctx, cfg, js)

	reconcileCron := inboundCron.ReconcileCron{
		Cfg:       cfg,
		Cache:     cacheClient,
		Journal:   store.ReceiptJournal{Querier: sqlgen.New(db)},
		Publisher: js,
		TimeNow:   time.Now,
	}

	enqueued := reconcileCron.Reconcile(ctx)

	slog.InfoContext(ctx, "reconcile finished", slog.Int("enqueued", enqueued))
}
