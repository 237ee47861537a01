package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chartfold/chartfold/internal/config"
	"github.com/chartfold/chartfold/internal/domain/encounter"
	"github.com/chartfold/chartfold/internal/domain/imaging"
	"github.com/chartfold/chartfold/internal/domain/labs"
	"github.com/chartfold/chartfold/internal/domain/medication"
	"github.com/chartfold/chartfold/internal/domain/pathology"
	"github.com/chartfold/chartfold/internal/domain/procedure"
	"github.com/chartfold/chartfold/internal/domain/quality"
	"github.com/chartfold/chartfold/internal/domain/source"
	"github.com/chartfold/chartfold/internal/domain/timeline"
	"github.com/chartfold/chartfold/internal/platform/db"
	"github.com/chartfold/chartfold/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartfold-server",
		Short: "Cross-source clinical record linkage API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "", "Path to migrations directory (defaults to MIGRATIONS_DIR)")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "", "Path to migrations directory (defaults to MIGRATIONS_DIR)")
	cmd.AddCommand(statusCmd)

	return cmd
}

// linkConfig maps the tunable linking knobs from the environment onto the
// linker's config struct.
func linkConfig(cfg *config.Config) pathology.LinkConfig {
	return pathology.LinkConfig{
		MaxDays:    cfg.LinkMaxDays,
		MinScore:   cfg.LinkMinScore,
		DateWeight: cfg.LinkDateWeight,
		NameWeight: cfg.LinkNameWeight,
	}
}

func timelineWindow(cfg *config.Config) timeline.Window {
	return timeline.Window{
		PreOpDays:  cfg.PreOpImagingDays,
		PostOpDays: cfg.PostOpImagingDays,
	}
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	apiV1 := e.Group("/api/v1")

	runTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return db.WithTx(ctx, pool, fn)
	}

	// Load audit and source naming
	sourceRepo := source.NewRepo(pool)
	sourceSvc := source.NewService(sourceRepo)
	source.NewHandler(sourceSvc).RegisterRoutes(apiV1)

	// Encounters with cross-source coalescing
	encRepo := encounter.NewRepo(pool)
	encSvc := encounter.NewService(encRepo, cfg.EncounterToleranceDays)
	encounter.NewHandler(encSvc).RegisterRoutes(apiV1)

	// Procedures
	procRepo := procedure.NewRepo(pool)
	procSvc := procedure.NewService(procRepo)
	procedure.NewHandler(procSvc).RegisterRoutes(apiV1)

	// Pathology reports and the report-to-procedure linker
	pathRepo := pathology.NewRepo(pool)
	pathSvc := pathology.NewService(pathRepo, procRepo, runTx, linkConfig(cfg), logger)
	pathology.NewHandler(pathSvc).RegisterRoutes(apiV1)

	// Lab results, duplicates, trends
	labRepo := labs.NewRepo(pool)
	labSvc := labs.NewService(labRepo)
	labs.NewHandler(labSvc).RegisterRoutes(apiV1)

	// Medications and reconciliation
	medRepo := medication.NewRepo(pool)
	medSvc := medication.NewService(medRepo)
	medication.NewHandler(medSvc).RegisterRoutes(apiV1)

	// Imaging reports
	imgRepo := imaging.NewRepo(pool)
	imgSvc := imaging.NewService(imgRepo)
	imaging.NewHandler(imgSvc).RegisterRoutes(apiV1)

	// Surgical timeline composed over the domains above
	tlSvc := timeline.NewService(procRepo, pathSvc, pathRepo, imgRepo, medRepo, timelineWindow(cfg))
	timeline.NewHandler(tlSvc).RegisterRoutes(apiV1)

	// Data quality reporting
	qualRepo := quality.NewRepo(pool)
	qualSvc := quality.NewService(qualRepo, labSvc)
	quality.NewHandler(qualSvc).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
