package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "fittrack/internal/adapter/http"
	"fittrack/internal/adapter/memory"
	"fittrack/internal/adapter/postgres"
	"fittrack/internal/app"
	"fittrack/internal/config"
	"fittrack/internal/domain"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "fittrack",
		Short:        "Fitness and nutrition tracking API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), envFile)
		},
	})
	root.AddCommand(newMigrateCmd(&envFile))
	return root
}

func newMigrateCmd(envFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	run := func(fn func(*postgres.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			m, err := postgres.NewMigrator(cfg.Database.URL)
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(m)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: run(func(m *postgres.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				log.Println("migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			RunE: run(func(m *postgres.Migrator) error {
				if err := m.Down(); err != nil {
					return err
				}
				log.Println("rolled back one migration")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied migration version",
			RunE: run(func(m *postgres.Migrator) error {
				v, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Printf("version %d dirty=%t\n", v, dirty)
				return nil
			}),
		},
	)
	return cmd
}

func serve(parent context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(cfg.Database.URL); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	db, err := postgres.Open(cfg.Database.URL, postgres.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("db open: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sessionRepo domain.SessionRepository = postgres.NewSessionRepo(db)
	if cfg.Session.Store == config.SessionStoreMemory {
		sessionRepo = memory.NewSessionRepo()
	}

	users := postgres.NewUserRepo(db)
	meals := postgres.NewMealRepo(db)
	workouts := postgres.NewWorkoutRepo(db)

	userSvc := app.NewUserService(users)
	sessionSvc := app.NewSessionService(sessionRepo, users, cfg.Session.TTL, cfg.Session.HashCost)
	go sessionSvc.RunSweeper(ctx, cfg.Session.SweepInterval)

	svc := adapthttp.Services{
		Users:      userSvc,
		Admin:      app.NewAdminService(userSvc, postgres.NewAdminRepo(db)),
		Coaches:    app.NewCoachService(postgres.NewCoachRepo(db)),
		Dietitians: app.NewDietitianService(postgres.NewDietitianRepo(db)),
		Clients:    app.NewClientService(postgres.NewGoalRepo(db), meals, workouts),
		Meals:      app.NewMealService(meals),
		Workouts:   app.NewWorkoutService(workouts),
		Plans:      app.NewPlanService(postgres.NewPlanRepo(db)),
		Sessions:   sessionSvc,
	}

	h := adapthttp.New(svc, adapthttp.Options{
		WebDir:         cfg.Server.WebDir,
		RequireSession: cfg.Session.Require,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Ready:          db,
	}).Handler()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (session store %s)", cfg.Server.Addr, cfg.Session.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("server: %v", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
		return err
	}
	return nil
}
