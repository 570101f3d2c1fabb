package aiquiz

import "github.com/saulo-duarte/academy-functions/internal/aigateway"

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(gateway aigateway.Gateway) *AIQuizContainer {
	service := NewService(gateway)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}
}
