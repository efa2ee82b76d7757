package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"gearguard/internal/infrastructure/migration"
	"gearguard/internal/infrastructure/persistence/seeds"
	"gearguard/internal/interfaces/cli/bootstrap"
	httpRouter "gearguard/internal/interfaces/http"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/version"
)

var (
	env         string
	strategy    string
	skipMigrate bool
	noSeed      bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the GearGuard HTTP server. The schema is brought up to date and empty tables are seeded before the first request is served.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&strategy, "strategy", migration.StrategyGoose, "Migration strategy (goose, auto)")
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not migrate the schema on startup")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "Do not seed empty tables on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	e, err := bootstrap.Setup(env)
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := e.Config
	log := e.Log

	log.Infow("starting server",
		"environment", env,
		"version", version.String(),
		"driver", cfg.Database.Driver)

	gin.SetMode(bootstrap.MapEnvToGinMode(cfg.Server.Mode))
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := prepareStore(cmd.Context(), e); err != nil {
		return err
	}

	router, err := httpRouter.NewRouter(e.DB, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	return serve(srv, quit, log)
}

// serve runs srv until a signal arrives on quit or the listener fails. A
// listener error is returned so deferred cleanup in the caller still runs.
func serve(srv *http.Server, quit <-chan os.Signal, log logger.Interface) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", srv.Addr,
			"mode", gin.Mode())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		log.Errorw("failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// prepareStore migrates the schema and seeds empty tables.
func prepareStore(ctx context.Context, e *bootstrap.Env) error {
	if skipMigrate {
		e.Log.Infow("skipping migration")
	} else {
		manager, err := migration.NewManager(strategy, e.Config.Database.Driver)
		if err != nil {
			return err
		}
		if err := manager.Migrate(e.DB); err != nil {
			return err
		}
	}

	if noSeed || !e.Config.Database.Seed {
		return nil
	}

	data, err := seeds.Load()
	if err != nil {
		return err
	}
	result, err := seeds.Seed(ctx, e.DB, data)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	e.Log.Infow("seed check completed",
		"teams", result.Teams,
		"members", result.Members,
		"equipment", result.Equipment,
		"requests", result.Requests)
	return nil
}
