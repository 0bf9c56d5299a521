package service

import (
	"time"

	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/internal/proxy"
	"github.com/ravenbix/rstools/internal/store"
)

// Services aggregates all item-management services over one server
// connection.
type Services struct {
	LinkedReports LinkedReportService
	Catalog       CatalogService
}

// NewServices wires the services to a report server client and an optional
// catalog cache.
func NewServices(client proxy.ReportServerClient, cache store.CatalogCache, cacheTTL time.Duration, log *logger.Logger) *Services {
	return &Services{
		LinkedReports: NewLinkedReportService(client, log),
		Catalog:       NewCatalogService(client, cache, cacheTTL, log),
	}
}
