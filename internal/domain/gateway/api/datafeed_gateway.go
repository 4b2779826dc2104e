package api

import (
	"context"

	"vatsim-traffic/internal/domain/model"
)

// DatafeedGateway defines the interface for fetching the VATSIM datafeed
type DatafeedGateway interface {
	// FetchDatafeed downloads and decodes the current datafeed snapshot
	FetchDatafeed(ctx context.Context) (*model.Datafeed, error)
}
