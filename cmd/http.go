package cmd

import (
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/pprof"
	inboundHttp "tickto/inbound/http"
	"tickto/outbound/identity"
	"tickto/outbound/realtime"
	"tickto/outbound/snapshot"
	"tickto/outbound/sqlgen"
	"tickto/outbound/store"
	"time"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	if cfg.GetString("env") == "dev" {
		cpu, err := os.Create("http-cpu.prof")
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer cpu.Close()

		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	shutdownTracer := newTracer(ctx, cfg)
	defer shutdownTracer(context.Background())

	validate := validator.New()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	createStreamWorkQueue(ctx, cfg, js)

	querier := sqlgen.New(db)
	snapshots := &snapshot.Store{Cache: cacheClient, TTL: cfg.GetDuration("purchase.snapshot_ttl")}

	coordinator := newCoordinator(cfg, coordinatorDeps{
		db:        db,
		querier:   querier,
		js:        js,
		natsConn:  natsConn,
		pubnub:    newPubNub(cfg),
		snapshots: snapshots,
	})

	apiMux := http.NewServeMux()

	inboundHttp.RegisterHealthHttp(apiMux, cfg.GetDuration("server.health_timeout"), map[string]inboundHttp.HealthCheck{
		"postgres": db.Ping,
		"redis": func(ctx context.Context) error {
			return cacheClient.Ping(ctx).Err()
		},
		"nats": func(ctx context.Context) error {
			if status := natsConn.Status(); status != nats.CONNECTED {
				return fmt.Errorf("nats connection %s", status)
			}
			return nil
		},
	})

	purchaseHttp := inboundHttp.RegisterPurchaseHttp(apiMux, cfg, coordinator, snapshots, newBuyerVerifier(cfg), validate)
	inboundHttp.RegisterReceiptHttp(apiMux, coordinator, store.TicketStore{Db: db, Querier: querier}, snapshots)
	inboundHttp.RegisterSignatureHttp(apiMux, &identity.NatsRelay{Conn: natsConn}, validate)

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(cfg.GetDuration("server.request_timeout"))

	// Websocket upgrades need the raw writer, so the stream skips the api middlewares.
	mux := http.NewServeMux()
	inboundHttp.RegisterStreamHttp(mux, &realtime.NatsNotifier{Conn: natsConn}, snapshots)
	mux.Handle("/", timeoutMiddleware(inboundHttp.AccessLogMiddleware(inboundHttp.CorsMiddleware(apiMux))))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           mux,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      cfg.GetDuration("server.request_timeout") + 5*time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started", slog.Int("port", cfg.GetInt("server.port")))

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), cfg.GetDuration("server.shutdown_timeout"))
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		slog.Error("unable to shutdown server", slog.Any("error", err))
	}

	if err := purchaseHttp.Drain(ctxShutDown); err != nil {
		slog.Error("purchases still running at shutdown", slog.Any("error", err))
	}

	slog.Info("http server stopped")
}
