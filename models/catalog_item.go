// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package models

import "time"

// ItemType is the catalog item type name reported by the server.
type ItemType string

// Item types known to the 2010 management endpoint. The server may report
// additional types (e.g. extension-specific ones); those are carried through
// as-is.
const (
	ItemTypeUnknown      ItemType = "Unknown"
	ItemTypeFolder       ItemType = "Folder"
	ItemTypeReport       ItemType = "Report"
	ItemTypeLinkedReport ItemType = "LinkedReport"
	ItemTypeDataSource   ItemType = "DataSource"
	ItemTypeDataSet      ItemType = "DataSet"
	ItemTypeResource     ItemType = "Resource"
	ItemTypeModel        ItemType = "Model"
)

// CatalogItem describes a single item in the report server catalog as
// returned by the management endpoint. Timestamps are pointers because the
// server omits them for some item types.
type CatalogItem struct {
	// ID is the server-assigned identifier of the item.
	ID string

	// Name is the item name without the folder part.
	Name string

	// Path is the full catalog path, starting with "/".
	Path string

	// Type is the catalog item type reported by the server.
	Type ItemType

	// Description is the free-text description shown in the portal.
	Description string

	// Hidden marks items excluded from portal listings.
	Hidden bool

	// CreatedBy and ModifiedBy are server-side account names.
	CreatedBy  string
	ModifiedBy string

	CreationDate *time.Time
	ModifiedDate *time.Time
}

// IsFolder reports whether the item is a folder.
func (c CatalogItem) IsFolder() bool {
	return c.Type == ItemTypeFolder
}
