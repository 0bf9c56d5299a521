// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package proxy

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ravenbix/rstools/internal/logger"
	"github.com/ravenbix/rstools/models"
)

// ClientConfig holds everything needed to reach the management endpoint of
// one report server.
type ClientConfig struct {
	// ReportServerURI is the server base URI (".../ReportServer") or the
	// full endpoint URI (".../ReportService2010.asmx").
	ReportServerURI string

	// Username and Password enable basic authentication when non-empty.
	Username string
	Password string

	// Timeout bounds a single round trip. Defaults to 30 seconds.
	Timeout time.Duration
}

type soapClient struct {
	http     *resty.Client
	endpoint string
	logger   *logger.Logger
}

// NewSOAPClient builds a [ReportServerClient] speaking SOAP 1.1 against the
// 2010 management endpoint of the configured server.
func NewSOAPClient(cfg ClientConfig, log *logger.Logger) (ReportServerClient, error) {
	if strings.TrimSpace(cfg.ReportServerURI) == "" {
		return nil, ErrNoServerURI
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	endpoint := strings.TrimRight(strings.TrimSpace(cfg.ReportServerURI), "/")
	if !strings.HasSuffix(strings.ToLower(endpoint), strings.ToLower(endpointPath)) {
		endpoint += endpointPath
	}

	cli := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "text/xml; charset=utf-8")
	if cfg.Username != "" {
		cli.SetBasicAuth(cfg.Username, cfg.Password)
	}

	return &soapClient{http: cli, endpoint: endpoint, logger: log}, nil
}

func (c *soapClient) CreateLinkedItem(ctx context.Context, name, parent, link string, properties models.Properties) error {
	req := createLinkedItemRequest{
		NS:         reportingNS,
		ItemPath:   name,
		Parent:     parent,
		Link:       link,
		Properties: toWireProperties(properties),
	}

	if err := c.call(ctx, "CreateLinkedItem", req, nil); err != nil {
		return fmt.Errorf("create linked item: %w", err)
	}
	return nil
}

func (c *soapClient) GetItemType(ctx context.Context, itemPath string) (models.ItemType, error) {
	var resp getItemTypeResponse
	req := getItemTypeRequest{NS: reportingNS, ItemPath: itemPath}

	if err := c.call(ctx, "GetItemType", req, &resp); err != nil {
		return models.ItemTypeUnknown, fmt.Errorf("get item type: %w", err)
	}
	if resp.Type == "" {
		return models.ItemTypeUnknown, nil
	}
	return models.ItemType(resp.Type), nil
}

func (c *soapClient) GetItemLink(ctx context.Context, itemPath string) (string, error) {
	var resp getItemLinkResponse
	req := getItemLinkRequest{NS: reportingNS, ItemPath: itemPath}

	if err := c.call(ctx, "GetItemLink", req, &resp); err != nil {
		return "", fmt.Errorf("get item link: %w", err)
	}
	return resp.Link, nil
}

func (c *soapClient) SetItemLink(ctx context.Context, itemPath, link string) error {
	req := setItemLinkRequest{NS: reportingNS, ItemPath: itemPath, Link: link}

	if err := c.call(ctx, "SetItemLink", req, nil); err != nil {
		return fmt.Errorf("set item link: %w", err)
	}
	return nil
}

func (c *soapClient) ListChildren(ctx context.Context, itemPath string, recursive bool) ([]models.CatalogItem, error) {
	var resp listChildrenResponse
	req := listChildrenRequest{NS: reportingNS, ItemPath: itemPath, Recursive: recursive}

	if err := c.call(ctx, "ListChildren", req, &resp); err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}

	items := make([]models.CatalogItem, 0, len(resp.Items))
	for _, w := range resp.Items {
		items = append(items, w.toModel())
	}
	return items, nil
}

func (c *soapClient) CreateFolder(ctx context.Context, folder, parent string) (models.CatalogItem, error) {
	var resp createFolderResponse
	req := createFolderRequest{NS: reportingNS, Folder: folder, Parent: parent}

	if err := c.call(ctx, "CreateFolder", req, &resp); err != nil {
		return models.CatalogItem{}, fmt.Errorf("create folder: %w", err)
	}
	return resp.Item.toModel(), nil
}

func (c *soapClient) DeleteItem(ctx context.Context, itemPath string) error {
	req := deleteItemRequest{NS: reportingNS, ItemPath: itemPath}

	if err := c.call(ctx, "DeleteItem", req, nil); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (c *soapClient) GetProperties(ctx context.Context, itemPath string, names []string) (models.Properties, error) {
	req := getPropertiesRequest{NS: reportingNS, ItemPath: itemPath}
	if len(names) > 0 {
		list := &wirePropertyList{}
		for _, name := range names {
			list.Property = append(list.Property, wireProperty{Name: name})
		}
		req.Properties = list
	}

	var resp getPropertiesResponse
	if err := c.call(ctx, "GetProperties", req, &resp); err != nil {
		return nil, fmt.Errorf("get properties: %w", err)
	}
	return fromWireProperties(resp.Values), nil
}

func (c *soapClient) SetProperties(ctx context.Context, itemPath string, properties models.Properties) error {
	req := setPropertiesRequest{
		NS:         reportingNS,
		ItemPath:   itemPath,
		Properties: toWireProperties(properties),
	}

	if err := c.call(ctx, "SetProperties", req, nil); err != nil {
		return fmt.Errorf("set properties: %w", err)
	}
	return nil
}

// call performs one SOAP round trip: marshal the payload into an envelope,
// POST it with the operation's SOAPAction, surface faults as mapped errors,
// and decode the response document into response when it is non-nil.
func (c *soapClient) call(ctx context.Context, action string, payload, response any) error {
	body, err := xml.Marshal(newEnvelope(payload))
	if err != nil {
		return fmt.Errorf("%s marshal request: %w", action, err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("SOAPAction", `"`+reportingNS+`/`+action+`"`).
		SetBody(append([]byte(xml.Header), body...)).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("%s request: %w", action, err)
	}

	c.logger.Debug().
		Str("action", action).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("soap call completed")

	if resp.StatusCode() != http.StatusOK {
		return decodeError(resp)
	}

	if response != nil {
		if err = xml.Unmarshal(resp.Body(), response); err != nil {
			return fmt.Errorf("%s decode response: %w", action, err)
		}
	}
	return nil
}

// decodeError turns a non-200 response into an error: a mapped SOAP fault
// when the body carries one, or a plain http error otherwise.
func decodeError(resp *resty.Response) error {
	var fault faultEnvelope
	if err := xml.Unmarshal(resp.Body(), &fault); err == nil && (fault.Code != "" || fault.Reason != "") {
		return mapFault(fault)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
