package reshuffle

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/academy-functions/internal/records"
)

type ReshuffleContainer struct {
	Handler *Handler
	Service Service
}

func NewReshuffleContainer(db *gorm.DB, workers int) *ReshuffleContainer {
	repo := records.NewRepository(db)
	service := NewService(repo, WithWorkers(workers))
	handler := NewHandler(service)

	return &ReshuffleContainer{
		Handler: handler,
		Service: service,
	}
}
