package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"

	"github.com/saulo-duarte/academy-functions/internal/config"
	"github.com/saulo-duarte/academy-functions/internal/container"
	"github.com/saulo-duarte/academy-functions/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	// .env is only for local runs
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("Invalid configuration")
	}
	config.InitLogger(cfg)

	ctx := context.Background()
	c, err := container.New(ctx, cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}

	r := router.New(c.RouterConfig())

	if cfg.OnLambda() {
		chiLambda = chiadapter.New(r)
		lambda.Start(handler)
		return
	}

	config.Logger.WithField("addr", cfg.HTTPAddr).Info("Serving HTTP")
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		config.Logger.WithError(err).Fatal("HTTP server stopped")
	}
}
