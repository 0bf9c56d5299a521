package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/internal/proxy"
	"github.com/ravenbix/rstools/internal/store"
	"github.com/ravenbix/rstools/models"
)

type catalogService struct {
	client   proxy.ReportServerClient
	cache    store.CatalogCache
	cacheTTL time.Duration
	logger   *logger.Logger
}

// NewCatalogService constructs a [CatalogService]. cache may be nil, in
// which case the cached-listing operations degrade to direct server calls.
func NewCatalogService(client proxy.ReportServerClient, cache store.CatalogCache, cacheTTL time.Duration, log *logger.Logger) CatalogService {
	return &catalogService{client: client, cache: cache, cacheTTL: cacheTTL, logger: log}
}

func (s *catalogService) ListFolder(ctx context.Context, folder string, recursive bool) ([]models.CatalogItem, error) {
	if err := validateItemPath(folder); err != nil {
		return nil, err
	}

	items, err := s.client.ListChildren(ctx, folder, recursive)
	if err != nil {
		return nil, fmt.Errorf("list folder %q: %w", folder, mapProxyError(err))
	}
	return items, nil
}

func (s *catalogService) ListFolderCached(ctx context.Context, folder string) (store.CachedFolder, error) {
	if err := validateItemPath(folder); err != nil {
		return store.CachedFolder{}, err
	}

	if s.cache == nil {
		items, err := s.ListFolder(ctx, folder, false)
		if err != nil {
			return store.CachedFolder{}, err
		}
		return store.CachedFolder{Folder: folder, Items: items, RefreshedAt: time.Now().UTC()}, nil
	}

	cached, err := s.cache.GetFolder(ctx, folder)
	switch {
	case errors.Is(err, store.ErrCacheMiss):
		// fall through to refresh
	case err != nil:
		return store.CachedFolder{}, fmt.Errorf("read cached folder %q: %w", folder, err)
	case s.cacheTTL <= 0 || time.Since(cached.RefreshedAt) <= s.cacheTTL:
		return cached, nil
	}

	if err = s.RefreshFolder(ctx, folder); err != nil {
		return store.CachedFolder{}, err
	}

	cached, err = s.cache.GetFolder(ctx, folder)
	if errors.Is(err, store.ErrCacheMiss) {
		// the folder exists but is empty; the cache stores no rows for it
		return store.CachedFolder{Folder: folder, RefreshedAt: time.Now().UTC()}, nil
	}
	if err != nil {
		return store.CachedFolder{}, fmt.Errorf("read cached folder %q: %w", folder, err)
	}
	return cached, nil
}

func (s *catalogService) RefreshFolder(ctx context.Context, folder string) error {
	if err := validateItemPath(folder); err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}

	items, err := s.client.ListChildren(ctx, folder, false)
	if err != nil {
		return fmt.Errorf("refresh folder %q: %w", folder, mapProxyError(err))
	}

	if err = s.cache.ReplaceFolder(ctx, folder, items); err != nil {
		return fmt.Errorf("store folder %q in cache: %w", folder, err)
	}

	s.logger.Debug().Str("folder", folder).Int("items", len(items)).Msg("folder cache refreshed")
	return nil
}

func (s *catalogService) PurgeCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Purge(ctx); err != nil {
		return fmt.Errorf("purge catalog cache: %w", err)
	}
	return nil
}

func (s *catalogService) CreateFolder(ctx context.Context, name, parent string) (models.CatalogItem, error) {
	if name == "" {
		return models.CatalogItem{}, ErrEmptyName
	}
	if err := validateItemPath(parent); err != nil {
		return models.CatalogItem{}, err
	}

	item, err := s.client.CreateFolder(ctx, name, parent)
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("create folder %q in %q: %w", name, parent, mapProxyError(err))
	}

	s.logger.Info().Str("folder", item.Path).Msg("folder created")
	return item, nil
}

func (s *catalogService) DeleteItem(ctx context.Context, itemPath string) error {
	if err := validateItemPath(itemPath); err != nil {
		return err
	}

	if err := s.client.DeleteItem(ctx, itemPath); err != nil {
		return fmt.Errorf("delete item %q: %w", itemPath, mapProxyError(err))
	}

	s.logger.Info().Str("item", itemPath).Msg("catalog item deleted")
	return nil
}

func (s *catalogService) GetItemProperties(ctx context.Context, itemPath string, names []string) (models.Properties, error) {
	if err := validateItemPath(itemPath); err != nil {
		return nil, err
	}

	properties, err := s.client.GetProperties(ctx, itemPath, names)
	if err != nil {
		return nil, fmt.Errorf("get properties of %q: %w", itemPath, mapProxyError(err))
	}
	return properties, nil
}

func (s *catalogService) SetItemProperties(ctx context.Context, itemPath string, properties models.Properties) error {
	if err := validateItemPath(itemPath); err != nil {
		return err
	}
	if len(properties) == 0 {
		return nil
	}

	if err := s.client.SetProperties(ctx, itemPath, properties); err != nil {
		return fmt.Errorf("set properties of %q: %w", itemPath, mapProxyError(err))
	}
	return nil
}
