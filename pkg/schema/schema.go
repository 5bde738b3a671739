// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the request and response types exchanged with the
// importer service.
package schema

import (
	"github.com/jorsj/vertex-ai-search-importer/internal/api"
)

// ImportRequest identifies one storage object to be imported. Empty fields
// are handled by the import handler as a logged no-op rather than a
// validation failure so that the event-delivery layer does not redeliver.
type ImportRequest struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
}

var _ api.Message = ImportRequest{}

func (ImportRequest) Validate() error { return nil }

// VersionRequest asks for the running service revision.
type VersionRequest struct{}

var _ api.Message = VersionRequest{}

func (VersionRequest) Validate() error { return nil }

// VersionResponse reports the running service revision.
type VersionResponse struct {
	Version string
}
