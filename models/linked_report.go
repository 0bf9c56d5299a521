// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package models

// CreateLinkedReportRequest describes a new linked report: a named catalog
// entry that points at an existing report definition while carrying its own
// description, visibility, and parameter defaults.
type CreateLinkedReportRequest struct {
	// Name is the name of the linked report to create, without a folder part.
	Name string

	// Folder is the full path of the destination folder, starting with "/".
	Folder string

	// ItemPath is the full path of the source report definition the new
	// item links to.
	ItemPath string

	// Description, when non-empty, is attached as the Description property
	// of the new item.
	Description string

	// Hidden is tri-state: nil leaves the server default, otherwise the
	// Hidden property is set explicitly.
	Hidden *bool
}
