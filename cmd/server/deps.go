package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/repoquest/repoquest/internal/clients/github"
	"github.com/repoquest/repoquest/internal/config"
	"github.com/repoquest/repoquest/internal/errors"
	combatorch "github.com/repoquest/repoquest/internal/orchestrators/combat"
	worldorch "github.com/repoquest/repoquest/internal/orchestrators/world"
	"github.com/repoquest/repoquest/internal/pkg/clock"
	"github.com/repoquest/repoquest/internal/pkg/idgen"
	redisclient "github.com/repoquest/repoquest/internal/redis"
	enemyrepo "github.com/repoquest/repoquest/internal/repositories/enemy"
	itemrepo "github.com/repoquest/repoquest/internal/repositories/item"
	playerrepo "github.com/repoquest/repoquest/internal/repositories/player"
	questrepo "github.com/repoquest/repoquest/internal/repositories/quest"
	roomrepo "github.com/repoquest/repoquest/internal/repositories/room"
	worldrepo "github.com/repoquest/repoquest/internal/repositories/world"
)

// app wires configuration, storage, and orchestrators for the CLI commands.
type app struct {
	cfg   *config.Config
	redis redisclient.Client

	playerRepo playerrepo.Repository
	itemRepo   itemrepo.Repository
	enemyRepo  enemyrepo.Repository

	worldSvc  worldorch.Service
	combatSvc combatorch.Service

	playerIDs idgen.Generator
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		return nil, err
	}

	githubClient, err := github.New(&github.Config{
		BaseURL:    cfg.GithubBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Token:      cfg.GithubToken,
	})
	if err != nil {
		return nil, err
	}

	realClock := clock.New()

	playerRepo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: redisClient, Clock: realClock})
	if err != nil {
		return nil, err
	}
	worldRepo, err := worldrepo.NewRedis(&worldrepo.RedisConfig{Client: redisClient, Clock: realClock})
	if err != nil {
		return nil, err
	}
	enemyRepo, err := enemyrepo.NewRedis(&enemyrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}
	roomRepo, err := roomrepo.NewRedis(&roomrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}
	questRepo, err := questrepo.NewRedis(&questrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}
	itemRepo, err := itemrepo.NewRedis(&itemrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}

	worldSvc, err := worldorch.NewOrchestrator(&worldorch.Config{
		GithubClient: githubClient,
		WorldRepo:    worldRepo,
		EnemyRepo:    enemyRepo,
		RoomRepo:     roomRepo,
		QuestRepo:    questRepo,
		IDGenerator:  idgen.NewPrefixed(""),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create world orchestrator")
	}

	combatSvc, err := combatorch.NewOrchestrator(&combatorch.Config{
		PlayerRepo:  playerRepo,
		ItemRepo:    itemRepo,
		RoomRepo:    roomRepo,
		QuestRepo:   questRepo,
		IDGenerator: idgen.NewPrefixed("item"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat orchestrator")
	}

	return &app{
		cfg:        cfg,
		redis:      redisClient,
		playerRepo: playerRepo,
		itemRepo:   itemRepo,
		enemyRepo:  enemyRepo,
		worldSvc:   worldSvc,
		combatSvc:  combatSvc,
		playerIDs:  idgen.NewPrefixed("player"),
	}, nil
}

func (a *app) Close() {
	if err := a.redis.Close(); err != nil {
		slog.Warn("failed to close redis client", "error", err)
	}
}
