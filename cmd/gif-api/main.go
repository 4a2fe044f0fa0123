package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gif-api/configs"
	_ "gif-api/docs"
	"gif-api/internal/application/controller"
	"gif-api/internal/application/middleware"
	"gif-api/internal/application/schedule"
	"gif-api/internal/domain/gateway/api"
	"gif-api/internal/domain/gateway/db"
	"gif-api/internal/domain/usecase/gif"
	"gif-api/internal/domain/usecase/health"
	"gif-api/internal/domain/usecase/rankings"
	pkghttp "gif-api/pkg/http"
	"gif-api/pkg/log"
	"gif-api/pkg/msg"
	"gif-api/pkg/redis"
	"gif-api/pkg/resource"
)

// @title gif-api
// @description Read-through caching and ranking layer in front of the Giphy API
// @BasePath /
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(configs.Env.ContextPath)

	outboundLogger := &log.OutboundHTTPLogger{}

	// Init gateways
	giphyGateway := api.NewGiphyGateway(
		resource.GetString("app.giphy.url"),
		resource.GetString("app.giphy.get-by-id-path"),
		resource.GetString("app.giphy.search-path"),
		resource.GetString("app.giphy.api-key"),
		pkghttp.ClientOptions{
			ReadTimeout: resource.GetDuration("app.giphy.read-timeout"),
			Logger:      outboundLogger,
		},
	)

	harperClient := db.NewHarperClient(
		resource.GetString("app.harperdb.url"),
		resource.GetString("app.harperdb.schema"),
		resource.GetString("app.harperdb.username"),
		resource.GetString("app.harperdb.password"),
		pkghttp.ClientOptions{
			ReadTimeout: resource.GetDuration("app.harperdb.read-timeout"),
			Logger:      outboundLogger,
		},
	)

	cacheGateway := db.NewHarperGifCacheGateway(
		harperClient,
		resource.GetString("app.harperdb.gif-cache-table"),
		resource.GetString("app.harperdb.search-cache-table"),
	)
	counterGateway := db.NewHarperCounterGateway(
		harperClient,
		resource.GetString("app.harperdb.counter-table"),
	)
	storeHealthGateway := db.NewHarperHealthGateway(
		harperClient,
		resource.GetString("app.harperdb.counter-table"),
	)

	// Init redis
	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL("gif_rankings", resource.GetDuration("app.redis.rankings-snapshot-ttl")))
	snapshotCache := redis.NewCache(redisClient, redis.NewCacheOptions().WithCacheName("gif_rankings"))

	// Init use cases
	gifUseCase := gif.NewGifUseCase(
		resource.GetInt("app.giphy.search-limit"),
		giphyGateway,
		cacheGateway,
		counterGateway,
	)
	rankingsUseCase := rankings.NewRankingsUseCase(gifUseCase, counterGateway, snapshotCache)
	healthUseCase := health.NewHealthUseCase(storeHealthGateway, redisClient)

	// Init controllers
	gifController := controller.NewGifController(apiGroup, gifUseCase)
	rankingsController := controller.NewRankingsController(apiGroup, rankingsUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init routes
	gifController.InitGifRoutes()
	rankingsController.InitRankingsRoutes()
	healthController.InitHealthRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init schedule
	if resource.GetBool("app.rankings.warmup.enabled") {
		rankingsScheduler := schedule.NewRankingsScheduler(
			rankingsUseCase,
			redisClient,
			resource.GetString("app.rankings.warmup.cron"),
			resource.GetInt("app.rankings.warmup.lock-ttl-seconds"),
			resource.GetInt("app.rankings.warmup.lock-refresh-seconds"),
		)
		rankingsScheduler.InitRankingsScheduleTasks(context.Background())
	}

	// Start server
	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
