package scoring

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/academy-functions/internal/aigateway"
)

type ScoringContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewScoringContainer(db *gorm.DB, gateway aigateway.Gateway) *ScoringContainer {
	repo := NewRepository(db)
	service := NewService(gateway, repo)
	handler := NewHandler(service)

	return &ScoringContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
