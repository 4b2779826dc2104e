package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"vatsim-traffic/internal/domain/model"
	"vatsim-traffic/pkg/http"
	"vatsim-traffic/pkg/log"
)

// datafeedGatewayImpl implements the DatafeedGateway interface
type datafeedGatewayImpl struct {
	httpClient *http.Client
	path       string
}

// NewDatafeedGateway creates a new instance of DatafeedGateway with HTTP client
func NewDatafeedGateway(baseURL string, path string, clientOptions http.ClientOptions) DatafeedGateway {
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	return &datafeedGatewayImpl{
		httpClient: httpClient,
		path:       path,
	}
}

// FetchDatafeed downloads and decodes the current datafeed snapshot
func (g *datafeedGatewayImpl) FetchDatafeed(ctx context.Context) (*model.Datafeed, error) {
	requestID := uuid.NewString()
	log.Debugw("fetching datafeed", "requestId", requestID, "path", g.path)

	var feed model.Datafeed
	status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(g.path).
		WithSuccessResp(&feed).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch datafeed: %w", err)
	}

	log.Debugw("datafeed fetched",
		"requestId", requestID, "status", status,
		"pilots", len(feed.Pilots), "controllers", len(feed.Controllers))

	return &feed, nil
}
