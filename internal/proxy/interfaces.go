// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

// Package proxy provides the client for the report server management web
// service.
//
// The primary abstraction is [ReportServerClient], which decouples the
// service layer from the SOAP wire protocol. The package ships one
// implementation ([NewSOAPClient]) speaking the 2010 management endpoint
// (ReportService2010.asmx) over HTTP.
//
// SOAP faults are mapped by mapFault to the sentinel errors defined in
// errors.go so that callers can use [errors.Is] for protocol-agnostic error
// handling (e.g. [ErrItemNotFound] for rsItemNotFound).
package proxy

import (
	"context"

	"github.com/ravenbix/rstools/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/report_server_client_mock.go -package=mock

// ReportServerClient defines the item-management operations of the report
// server web service. Implementations are responsible for serialisation,
// authentication, and mapping wire-level faults to the sentinel values
// defined in this package.
type ReportServerClient interface {
	// CreateLinkedItem creates a new linked item named name inside the
	// parent folder, pointing at the catalog item at link. properties is an
	// optional metadata list applied to the new item; nil leaves server
	// defaults. Returns nothing meaningful on success.
	CreateLinkedItem(ctx context.Context, name, parent, link string, properties models.Properties) error

	// GetItemType returns the catalog type of the item at itemPath.
	// Returns [ErrItemNotFound] (wrapped) when no item exists at that path.
	GetItemType(ctx context.Context, itemPath string) (models.ItemType, error)

	// GetItemLink returns the path of the report definition a linked item
	// points at. The item at itemPath must be a linked report.
	GetItemLink(ctx context.Context, itemPath string) (string, error)

	// SetItemLink repoints the linked item at itemPath to the report
	// definition at link.
	SetItemLink(ctx context.Context, itemPath, link string) error

	// ListChildren lists the items in the folder at itemPath. When
	// recursive is true the listing descends into subfolders.
	ListChildren(ctx context.Context, itemPath string, recursive bool) ([]models.CatalogItem, error)

	// CreateFolder creates a folder named folder inside parent and returns
	// the created catalog item. Returns [ErrItemAlreadyExists] (wrapped)
	// when the folder already exists.
	CreateFolder(ctx context.Context, folder, parent string) (models.CatalogItem, error)

	// DeleteItem removes the catalog item at itemPath. Deleting a folder
	// removes its contents as well.
	DeleteItem(ctx context.Context, itemPath string) error

	// GetProperties fetches the named properties of the item at itemPath.
	// An empty names slice fetches all properties.
	GetProperties(ctx context.Context, itemPath string, names []string) (models.Properties, error)

	// SetProperties writes the given properties on the item at itemPath.
	SetProperties(ctx context.Context, itemPath string, properties models.Properties) error
}
