package main

import (
	"context"
	"fmt"
	"os"

	"vatsim-traffic/configs"
	"vatsim-traffic/internal/application/console"
	"vatsim-traffic/internal/domain/gateway/api"
	"vatsim-traffic/internal/domain/gateway/store"
	"vatsim-traffic/internal/domain/usecase/traffic"
	"vatsim-traffic/pkg/http"
	"vatsim-traffic/pkg/log"
	"vatsim-traffic/pkg/msg"
	"vatsim-traffic/pkg/redis"
	"vatsim-traffic/pkg/resource"
	"vatsim-traffic/pkg/style"
)

func main() {
	ctx := context.Background()

	log.Infow("starting", "app", configs.Env.ApplicationName)

	baseURL := resource.GetString("app.datafeed.base-url")
	if baseURL == "" {
		log.Fatal("app.datafeed.base-url is not configured; run from the repository root or set PROPERTIES_FILE_PATH")
	}

	fmt.Println(style.Blue(msg.GetMessage("app.banner")))
	fmt.Println(style.Blue(msg.GetMessage("app.init")))

	// Init gateways
	apiGateway := api.NewDatafeedGateway(baseURL, resource.GetString("app.datafeed.path"), http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.client.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.client.read-timeout"),
		Backoff: http.NewBackoffConfig().
			WithMaxRetries(resource.GetInt("app.client.max-retries")),
	})
	snapshotStore := newSnapshotStore(ctx)

	// Init UseCase
	trafficUseCase := traffic.NewTrafficUseCase(
		apiGateway,
		snapshotStore,
		resource.GetString("app.datafeed.sample-path"),
		resource.GetDuration("app.datafeed.update-delay"),
		resource.GetBool("app.datafeed.local-mode"),
	)

	if err := trafficUseCase.Init(ctx); err != nil {
		log.Fatalf("failed to initialize datafeed: %v", err)
	}

	fmt.Println(style.Blue(msg.GetMessage("app.ready")))
	fmt.Println()

	// Run dialog
	dialog := console.NewDialog(trafficUseCase, os.Stdin, os.Stdout)
	if err := dialog.Run(ctx); err != nil {
		log.Fatalf("dialog failed: %v", err)
	}
}

// newSnapshotStore picks the snapshot backend from configuration. Redis
// falls back to the file store when the server is unreachable.
func newSnapshotStore(ctx context.Context) store.SnapshotStore {
	filePath := resource.GetString("app.cache.file-path")

	if resource.GetString("app.cache.backend") != "redis" {
		return store.NewFileStore(filePath)
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.cache.redis.host")).
		WithPort(resource.GetInt("app.cache.redis.port")).
		WithPassword(resource.GetString("app.cache.redis.password")).
		WithDatabase(resource.GetInt("app.cache.redis.database"))

	client, err := redis.NewClient(ctx, config)
	if err != nil {
		log.Warnw("redis unavailable, using file snapshot store", "error", err)
		return store.NewFileStore(filePath)
	}

	cache := redis.NewCache(client, "vatsim", resource.GetDuration("app.cache.redis.ttl"))
	return store.NewRedisStore(cache)
}
