package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"heritage-explorer-service/internal/app"
	"heritage-explorer-service/internal/catalog"
	"heritage-explorer-service/internal/config"
	filestore "heritage-explorer-service/internal/infra/file"
	"heritage-explorer-service/internal/infra/gemini"
	"heritage-explorer-service/internal/infra/memory"
	pgstore "heritage-explorer-service/internal/infra/postgres"
	redisstore "heritage-explorer-service/internal/infra/redis"
	transport "heritage-explorer-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the heritage explorer server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	// Stories come from Postgres when available, otherwise from the built-in
	// set. Redis sits in front of either as a read-through cache.
	var loader catalog.StoryLoader = catalog.NewStaticStoryLoader()
	if pool != nil {
		loader = pgstore.NewStoryLoader(pool)
	}
	if redisClient != nil {
		catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
		loader = redisstore.NewStoryCache(redisClient, loader, catalogTTL)
	}
	cat := catalog.New(loader)

	var store app.ProgressStore
	switch {
	case redisClient != nil:
		store = redisstore.NewProgressStore(redisClient)
	case cfg.Progress.Dir != "":
		store, err = filestore.NewProgressStore(cfg.Progress.Dir)
		if err != nil {
			return err
		}
	default:
		store = memory.NewProgressStore()
	}

	var contribRepo app.ContributionRepository = memory.NewContributionRepository()
	if cfg.Postgres.URL != "" {
		db := openBun(cfg.Postgres.URL)
		defer db.Close()
		contribRepo = pgstore.NewContributionRepository(db)
	}

	var responder app.Responder
	if cfg.Gemini.APIKey != "" {
		responder = gemini.NewClient(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
		})
	} else {
		log.Printf("no Gemini API key configured, chat uses the built-in responder")
		responder = app.NewStaticResponder()
	}

	progress := app.NewProgressService(store)
	stories := app.NewStoryService(cat, progress)
	quizzes := app.NewQuizService(cat, progress)
	chat := app.NewChatService(responder)
	contributions := app.NewContributionService(contribRepo)

	handler := transport.NewHandler(cat, chat, contributions, progress, stories, quizzes)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting heritage explorer service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
