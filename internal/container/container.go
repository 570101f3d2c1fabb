package container

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/saulo-duarte/academy-functions/internal/aigateway"
	"github.com/saulo-duarte/academy-functions/internal/aiquiz"
	"github.com/saulo-duarte/academy-functions/internal/auth"
	"github.com/saulo-duarte/academy-functions/internal/config"
	"github.com/saulo-duarte/academy-functions/internal/ratelimit"
	"github.com/saulo-duarte/academy-functions/internal/records"
	"github.com/saulo-duarte/academy-functions/internal/reshuffle"
	"github.com/saulo-duarte/academy-functions/internal/router"
	"github.com/saulo-duarte/academy-functions/internal/scoring"
)

type Container struct {
	Config *config.Config
	DB     *gorm.DB

	Records            records.Repository
	ReshuffleContainer *reshuffle.ReshuffleContainer
	AIQuizContainer    *aiquiz.AIQuizContainer
	ScoringContainer   *scoring.ScoringContainer
	RateLimitContainer *ratelimit.RateLimitContainer
	AuthHandler        *auth.Handler
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	log := config.WithContext(ctx)
	auth.Init(cfg.JWTSecret)

	db, err := config.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	gateway, err := aigateway.New(ctx, cfg.AI)
	if errors.Is(err, aigateway.ErrNotConfigured) {
		log.Warn("AI_API_KEY not set, AI routes will answer 503")
		gateway = aigateway.Unavailable()
	} else if err != nil {
		return nil, err
	}

	return &Container{
		Config:             cfg,
		DB:                 db,
		Records:            records.NewRepository(db),
		ReshuffleContainer: reshuffle.NewReshuffleContainer(db, cfg.ShuffleWorkers),
		AIQuizContainer:    aiquiz.NewAIQuizContainer(gateway),
		ScoringContainer:   scoring.NewScoringContainer(db, gateway),
		RateLimitContainer: ratelimit.NewRateLimitContainer(db, cfg.RateLimit),
		AuthHandler:        auth.NewHandler(cfg.CookieDomain, cfg.CookieSecure),
	}, nil
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		ReshuffleHandler: c.ReshuffleContainer.Handler,
		AIQuizHandler:    c.AIQuizContainer.Handler,
		ScoringHandler:   c.ScoringContainer.Handler,
		AuthHandler:      c.AuthHandler,
		RateLimit:        c.RateLimitContainer.For,
		Ping:             c.Records.Ping,
		CORSOrigins:      c.Config.CORSOrigins,
	}
}
