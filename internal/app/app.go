package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	botpkg "github.com/coinherald/coinherald/internal/bot"
	"github.com/coinherald/coinherald/internal/config"
	"github.com/coinherald/coinherald/internal/domain"
	"github.com/coinherald/coinherald/internal/infra/blockchain"
	chartinfra "github.com/coinherald/coinherald/internal/infra/chart"
	"github.com/coinherald/coinherald/internal/infra/discord"
	repopg "github.com/coinherald/coinherald/internal/repository/postgres"
	prefssvc "github.com/coinherald/coinherald/internal/service/prefs"
	"github.com/coinherald/coinherald/internal/transport/httptransport"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// App wires the market-data client, preference store, gateway, router and
// status ticker together and owns their lifecycles.
type App struct {
	cfg config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	gw     *discord.Gateway
	router *botpkg.Router
	ticker *botpkg.StatusTicker
	prefs  *prefssvc.Service
	cache  *botpkg.SnapshotCache
}

func NewApp(cfg config.Config, log *slog.Logger, db *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: db}

	prefsRepo := repopg.NewPrefsRepo(db)
	app.prefs = prefssvc.NewService(prefsRepo, log)

	market := blockchain.NewClient(cfg.Blockchain)
	renderer := chartinfra.NewRenderer(cfg.Chart)

	gw, err := discord.New(cfg.Discord, log)
	if err != nil {
		log.Error("gateway init failed", slog.String("error", err.Error()))
		return nil, err
	}
	app.gw = gw

	registry := botpkg.NewRegistry()
	text := botpkg.NewTextCommands(cfg.TextCommands.Path, log)
	commands := botpkg.NewCommands(market, renderer, gw, app.prefs, registry, text, log)
	app.router = botpkg.NewRouter(cfg.Discord.Prefix, registry, text, commands, app.prefs, gw, log)

	app.cache = botpkg.NewSnapshotCache()
	app.ticker = botpkg.NewStatusTicker(cfg.Ticker, market, gw, app.cache, log)

	// Event plumbing: every message goes through the router; every guild
	// observation reconciles the preference store.
	gw.OnMessage(app.router.Route)
	gw.OnGuildCreate(func(ctx context.Context, server domain.Server) {
		if err := app.prefs.RegisterServer(ctx, server); err != nil {
			log.Error("server registration failed",
				slog.String("server_id", server.ID),
				slog.String("error", err.Error()),
			)
		}
	})

	if cfg.Server.Enabled {
		e := echo.New()
		e.HideBanner = true
		app.e = e
		httptransport.NewStatusHandler(log, app.cache).RegisterRoutes(e)
		app.serv = &http.Server{
			Addr:         cfg.Server.Addr,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			Handler:      e,
		}
	}

	log.Info("app initialized",
		slog.String("prefix", cfg.Discord.Prefix),
		slog.Bool("http_enabled", cfg.Server.Enabled),
		slog.Bool("ticker_debug", cfg.Ticker.Debug),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.gw.Open(); err != nil {
		return err
	}

	a.log.Info("starting status ticker")
	go a.ticker.Run(ctx)

	if a.e != nil {
		a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
		go func() {
			if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error("http server error", slog.String("error", err.Error()))
			}
		}()
	}

	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.gw != nil {
		if err := a.gw.Close(); err != nil {
			a.log.Error("gateway close error", slog.String("error", err.Error()))
		}
	}

	if a.db != nil {
		a.db.Close()
	}

	a.log.Info("application stopped")
	return nil
}
