package cmd

import (
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	pubnub "github.com/pubnub/go"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"log"
	"os"
	"tickto/common/constant"
	tjs "tickto/common/jetstream"
	"tickto/common/otel"
	"tickto/outbound/identity"
	"tickto/outbound/ledger"
	"tickto/outbound/realtime"
	"tickto/outbound/snapshot"
	"tickto/outbound/sqlgen"
	"tickto/outbound/store"
	"tickto/purchase"
	"time"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	err = os.Setenv("TZ", config.GetString("server.timezone"))
	if err != nil {
		log.Fatalln(err)
	}

	return config
}

func newTracer(ctx context.Context, cfg *viper.Viper) func(context.Context) error {
	shutdown, err := otel.InitTracerProvider(ctx, otel.TracingConfig{
		Enabled:    cfg.GetBool("tracing.enabled"),
		Endpoint:   cfg.GetString("tracing.endpoint"),
		SampleRate: cfg.GetFloat64("tracing.sample_rate"),
	})
	if err != nil {
		log.Fatalln(err)
	}

	return shutdown
}

func newDb(cfg *viper.Viper) *pgxpool.Pool {
	username := cfg.GetString("db.user")
	password := cfg.GetString("db.password")
	host := cfg.GetString("db.host")
	port := cfg.GetInt("db.port")
	database := cfg.GetString("db.name")
	maxConn := cfg.GetInt("db.pool.max")
	minConn := cfg.GetInt("db.pool.min")
	timezone := cfg.GetString("server.timezone")

	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?timezone=%s",
		username, password, host, port, database, timezone)

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		log.Fatalln(err)
	}

	config.MaxConns = int32(maxConn)
	config.MinConns = int32(minConn)
	config.ConnConfig.Tracer = &otel.PgxCustomTracer{}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalln(err)
	}

	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	return pool
}

func newRedis(cfg *viper.Viper) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetString("redis.addr"),
		Password: cfg.GetString("redis.password"),
		DB:       0,
	})

	err := rdb.Ping(context.Background()).Err()
	if err != nil {
		log.Fatalln(err)
	}

	return rdb
}

func newNats(viper *viper.Viper) *nats.Conn {
	conn, err := nats.Connect(viper.GetString("nats.addr"), nats.Name(otel.ServiceName))
	if err != nil {
		log.Fatalln(err)
	}

	return conn
}

func newJs(conn *nats.Conn) jetstream.JetStream {
	js, err := jetstream.New(conn)
	if err != nil {
		log.Fatalln(err)
	}

	return js
}

func createStreamWorkQueue(ctx context.Context, cfg *viper.Viper, js jetstream.JetStream) jetstream.Stream {
	maxBytes := cfg.GetInt64("nats.stream.max_bytes")
	if maxBytes == 0 {
		maxBytes = -1
	}

	st, err := tjs.CreateQueueStream(ctx, js, maxBytes)
	if err != nil {
		panic(err)
	}

	return st
}

func newLedger(cfg *viper.Viper) ledger.SolanaLedger {
	return ledger.NewSolanaLedger(cfg.GetString("solana.endpoint"), cfg.GetString("solana.commitment"))
}

func newPubNub(cfg *viper.Viper) *pubnub.PubNub {
	return realtime.NewPubNub(
		cfg.GetString("pubnub.publish_key"),
		cfg.GetString("pubnub.subscribe_key"),
		cfg.GetString("pubnub.secret_key"),
	)
}

func newBuyerVerifier(cfg *viper.Viper) *identity.TokenVerifier {
	verifier, err := identity.NewTokenVerifier(cfg.GetString("identity.app_id"), cfg.GetString("identity.verification_key"))
	if err != nil {
		log.Fatalln(err)
	}

	return verifier
}

// newIdentity routes custodial wallets to the provider and external wallets to the buyer's app.
func newIdentity(cfg *viper.Viper, natsConn *nats.Conn, pusher identity.Pusher) *identity.Wallets {
	provider := identity.NewPrivyClient(
		cfg.GetString("identity.auth_url"),
		cfg.GetString("identity.api_url"),
		cfg.GetString("identity.app_id"),
		cfg.GetString("identity.app_secret"),
		cfg.GetDuration("identity.timeout"),
	)

	return &identity.Wallets{
		Provider: provider,
		External: &identity.ExternalSigner{
			Pusher:          pusher,
			Relay:           &identity.NatsRelay{Conn: natsConn},
			ApprovalTimeout: cfg.GetDuration("identity.approval_timeout"),
			TimeNow:         time.Now,
		},
	}
}

type coordinatorDeps struct {
	db        *pgxpool.Pool
	querier   *sqlgen.Queries
	js        jetstream.JetStream
	natsConn  *nats.Conn
	pubnub    *pubnub.PubNub
	snapshots *snapshot.Store
}

func newCoordinator(cfg *viper.Viper, deps coordinatorDeps) *purchase.Coordinator {
	chainLedger := newLedger(cfg)
	journal := store.ReceiptJournal{Querier: deps.querier}
	pusher := &realtime.PubNubNotifier{Client: deps.pubnub}
	wallets := newIdentity(cfg, deps.natsConn, pusher)

	return &purchase.Coordinator{
		Validate: validator.New(),
		Resolver: &purchase.WalletResolver{
			Identity: wallets,
			Profiles: store.ProfileStore{Querier: deps.querier},
			Chain:    constant.ChainSolana,
		},
		Submitter: &purchase.PaymentSubmitter{
			Identity: wallets,
			Ledger:   chainLedger,
			Journal:  journal,
			TimeNow:  time.Now,
		},
		Watcher: &purchase.ConfirmationWatcher{
			Ledger:       chainLedger,
			Commitment:   cfg.GetString("solana.commitment"),
			PollInterval: cfg.GetDuration("purchase.confirmation.poll_interval"),
			MaxInterval:  cfg.GetDuration("purchase.confirmation.max_interval"),
			MaxWait:      cfg.GetDuration("purchase.confirmation.max_wait"),
		},
		Issuer: &purchase.TicketIssuer{
			Store:   store.TicketStore{Db: deps.db, Querier: deps.querier},
			TimeNow: time.Now,
		},
		Journal:   journal,
		Publisher: deps.js,
		Notifier: &purchase.Notifier{
			Publisher:        deps.js,
			LamportFormatter: message.NewPrinter(language.English),
			SupportEmail:     cfg.GetString("email.support"),
		},
		Observers: []purchase.Observer{
			deps.snapshots,
			&realtime.NatsNotifier{Conn: deps.natsConn},
			pusher,
		},
		SubmitMaxAttempts: cfg.GetInt("purchase.submit.max_attempts"),
	}
}
