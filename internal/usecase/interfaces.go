// Package usecase implements the operation catalog: every exposed tool maps
// to one method here that builds the vendor-shaped request, issues a single
// client call and renders the response. Operations return (string, error);
// flattening errors into diagnostic strings happens in the inbound adapter,
// never here.
package usecase

import (
	"context"
	"log/slog"
	"net/url"
)

// DirectAPI is the Direct-side client surface the catalog depends on.
type DirectAPI interface {
	// DirectRequest issues one {method, params} call to a Direct service.
	DirectRequest(ctx context.Context, service, method string, params map[string]any, useV501 bool) (map[string]any, error)

	// DirectReport posts a report definition and returns the raw TSV body
	// and HTTP status (200 data, 201/202 still generating).
	DirectReport(ctx context.Context, definition map[string]any) (string, int, error)
}

// MetrikaAPI is the Metrika-side client surface the catalog depends on.
type MetrikaAPI interface {
	MetrikaRequest(ctx context.Context, httpMethod, endpoint string, query url.Values, body any) (map[string]any, error)
}

// Catalog holds the injected clients shared by all operations. It keeps no
// state across calls.
type Catalog struct {
	direct  DirectAPI
	metrika MetrikaAPI
	logger  *slog.Logger
}

// NewCatalog creates the operation catalog.
func NewCatalog(direct DirectAPI, metrika MetrikaAPI, logger *slog.Logger) *Catalog {
	return &Catalog{
		direct:  direct,
		metrika: metrika,
		logger:  logger.With("component", "catalog"),
	}
}
