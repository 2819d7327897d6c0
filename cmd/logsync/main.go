package main

// logsync keeps a local view of the trainlog goals and logs, and delivers
// log toggles to the backend through the persistent sync queue.

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/trainlog/internal/client"
	"github.com/2beens/trainlog/internal/config"
	"github.com/2beens/trainlog/internal/logging"
	"github.com/2beens/trainlog/internal/syncqueue"
	"github.com/2beens/trainlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const usage = `usage: logsync [-env dev] [-config ./config.toml] <command> [args]

commands:
  status                        show the local view and the queue state
  refresh                       drain the queue and fetch the latest logs
  upsert -goal N -date D [-exercise N -weight W -reps R]
  delete -goal N -date D
  sort -urgency=true|false      change the goal ordering
  sync                          keep draining until interrupted
  analytics [-start D] [-end D] [-goal N] [-exercise N]
`

type app struct {
	cfg       *config.ClientConfig
	queue     *syncqueue.Queue
	api       *client.Client
	rdb       *redis.Client
	shutdowns []func()
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, *env, *configPath, *verbose)
	if err != nil {
		log.Fatalf("logsync setup: %s", err)
	}
	defer a.close()

	if err := a.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(ctx context.Context, env, configPath string, verbose bool) (*app, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, err
	}
	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		return nil, err
	}

	logLevel := "warn"
	if verbose {
		logLevel = "debug"
	}
	logging.Setup(logging.LoggerSetupParams{
		LogLevel:         logLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "trainlog-logsync",
	})

	a := &app{cfg: &cfg.Client}

	var store syncqueue.Store
	if cfg.Client.UseRedisStore {
		a.rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: secrets.RedisPassword,
		})
		store = syncqueue.NewRedisStore(a.rdb, "logsync")
		log.Debugf("using redis state store at %s:%s", cfg.RedisHost, cfg.RedisPort)
	} else {
		store = syncqueue.NewFileStore(cfg.Client.StateFilePath)
		log.Debugf("using state file %s", cfg.Client.StateFilePath)
	}

	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, "trainlog-logsync", a.rdb)
	if err != nil {
		return nil, err
	}
	a.shutdowns = append(a.shutdowns, otelShutdown)

	if secrets.APIToken == "" {
		log.Warnln("api token not set, use TRAINLOG_API_TOKEN")
	}
	a.api = client.NewClient(cfg.Client.ServerURL, secrets.APIToken, &http.Client{
		Timeout:   cfg.Client.RequestTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})

	a.queue = syncqueue.NewQueue(a.api, store, syncqueue.Options{
		SettleGrace: cfg.Client.SettleGrace,
	})
	if err := a.queue.Load(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) close() {
	for _, shutdown := range a.shutdowns {
		shutdown()
	}
	a.shutdowns = nil
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
		a.rdb = nil
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "status":
		printView(os.Stdout, a.queue)
		return nil
	case "refresh":
		return a.refresh(ctx)
	case "upsert":
		return a.upsert(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "sort":
		return a.sort(ctx, args)
	case "sync":
		return a.sync(ctx)
	case "analytics":
		return a.analytics(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// drain delivers what it can. A failed delivery leaves the queue blocked
// and is reported, but is not a command failure.
func (a *app) drain(ctx context.Context) {
	err := a.queue.Drain(ctx)
	switch {
	case err == nil:
	case errors.Is(err, syncqueue.ErrDrainInProgress):
	default:
		fmt.Fprintf(os.Stderr, "not synced yet, %d pending: %s\n", a.queue.Pending(), err)
	}
}

func (a *app) refresh(ctx context.Context) error {
	if err := a.queue.Refresh(ctx, a.cfg.VisibleDays); err != nil {
		return err
	}
	printView(os.Stdout, a.queue)
	return nil
}

func (a *app) sort(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sort", flag.ContinueOnError)
	urgency := fs.Bool("urgency", false, "sort by urgency instead of display order")
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.queue.SetSortByUrgency(ctx, *urgency)
	printView(os.Stdout, a.queue)
	return nil
}
