package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/internal/proxy"
	"github.com/ravenbix/rstools/models"
)

type linkedReportService struct {
	client proxy.ReportServerClient
	logger *logger.Logger
}

func NewLinkedReportService(client proxy.ReportServerClient, log *logger.Logger) LinkedReportService {
	return &linkedReportService{client: client, logger: log}
}

func (s *linkedReportService) Create(ctx context.Context, req models.CreateLinkedReportRequest) error {
	if err := validateCreateRequest(req); err != nil {
		return err
	}

	properties := models.Properties{}
	if req.Description != "" {
		properties = properties.Set(models.PropertyDescription, req.Description)
	}
	if req.Hidden != nil {
		properties = properties.Set(models.PropertyHidden, strconv.FormatBool(*req.Hidden))
	}

	if err := s.client.CreateLinkedItem(ctx, req.Name, req.Folder, req.ItemPath, properties); err != nil {
		return fmt.Errorf("create linked report %q in %q: %w", req.Name, req.Folder, mapProxyError(err))
	}

	s.logger.Info().
		Str("name", req.Name).
		Str("folder", req.Folder).
		Str("link", req.ItemPath).
		Msg("linked report created")
	return nil
}

func (s *linkedReportService) GetSource(ctx context.Context, itemPath string) (string, error) {
	if err := validateItemPath(itemPath); err != nil {
		return "", err
	}

	itemType, err := s.client.GetItemType(ctx, itemPath)
	if err != nil {
		return "", fmt.Errorf("resolve type of %q: %w", itemPath, mapProxyError(err))
	}
	if itemType != models.ItemTypeLinkedReport {
		return "", fmt.Errorf("%w: %s is a %s", ErrNotLinkedReport, itemPath, itemType)
	}

	link, err := s.client.GetItemLink(ctx, itemPath)
	if err != nil {
		return "", fmt.Errorf("get source of %q: %w", itemPath, mapProxyError(err))
	}
	return link, nil
}

func (s *linkedReportService) SetSource(ctx context.Context, itemPath, link string) error {
	if err := validateItemPath(itemPath); err != nil {
		return err
	}
	if err := validateItemPath(link); err != nil {
		return err
	}

	itemType, err := s.client.GetItemType(ctx, itemPath)
	if err != nil {
		return fmt.Errorf("resolve type of %q: %w", itemPath, mapProxyError(err))
	}
	if itemType != models.ItemTypeLinkedReport {
		return fmt.Errorf("%w: %s is a %s", ErrNotLinkedReport, itemPath, itemType)
	}

	if err = s.client.SetItemLink(ctx, itemPath, link); err != nil {
		return fmt.Errorf("set source of %q: %w", itemPath, mapProxyError(err))
	}

	s.logger.Info().Str("item", itemPath).Str("link", link).Msg("linked report repointed")
	return nil
}

func validateCreateRequest(req models.CreateLinkedReportRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}
	if strings.Contains(req.Name, "/") {
		return fmt.Errorf("%w: %s", ErrInvalidName, req.Name)
	}
	if strings.TrimSpace(req.Folder) == "" {
		return ErrEmptyFolder
	}
	if !strings.HasPrefix(req.Folder, "/") {
		return fmt.Errorf("%w: %s", ErrInvalidPath, req.Folder)
	}
	if strings.TrimSpace(req.ItemPath) == "" {
		return ErrEmptyItemPath
	}
	if !strings.HasPrefix(req.ItemPath, "/") {
		return fmt.Errorf("%w: %s", ErrInvalidPath, req.ItemPath)
	}
	return nil
}

func validateItemPath(itemPath string) error {
	if strings.TrimSpace(itemPath) == "" {
		return ErrEmptyItemPath
	}
	if !strings.HasPrefix(itemPath, "/") {
		return fmt.Errorf("%w: %s", ErrInvalidPath, itemPath)
	}
	return nil
}
