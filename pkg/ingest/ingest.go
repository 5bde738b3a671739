// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package ingest converts GCS object notifications into Vertex AI Search
// document import submissions.
package ingest

import (
	"context"
	"log"
	"os"
	"path"
	"strings"

	"github.com/jorsj/vertex-ai-search-importer/internal/api"
	"github.com/jorsj/vertex-ai-search-importer/internal/docsvc"
	"github.com/jorsj/vertex-ai-search-importer/internal/gcsx"
	"github.com/jorsj/vertex-ai-search-importer/pkg/schema"
	"github.com/pkg/errors"
	discoveryengine "google.golang.org/api/discoveryengine/v1"
)

// DataSchema is the schema tag for unstructured content imports.
const DataSchema = "content"

// ReconciliationIncremental adds new documents and updates existing ones.
// FULL would instead replace the entire data store with the supplied source.
const ReconciliationIncremental = "INCREMENTAL"

// allowedExtensions lists the file extensions eligible for import.
var allowedExtensions = map[string]bool{
	".html": true,
	".pdf":  true,
	".docx": true,
	".pptx": true,
	".txt":  true,
	".xlsx": true,
}

// SupportedDocument reports whether the object name carries an extension
// eligible for import. The extension is matched case-insensitively and
// returned as derived from the name. A leading dot on the final path
// element marks a hidden file, not an extension.
func SupportedDocument(name string) (ext string, ok bool) {
	base := path.Base(name)
	ext = path.Ext(base)
	if ext == base {
		ext = ""
	}
	return ext, allowedExtensions[strings.ToLower(ext)]
}

// Config holds the data store coordinates targeted by imports.
type Config struct {
	ProjectID   string
	Location    string
	DataStoreID string
}

// Complete reports whether every required value is set.
func (c Config) Complete() bool {
	return c.ProjectID != "" && c.Location != "" && c.DataStoreID != ""
}

// BranchPath returns the resource name of the default branch of the
// configured data store.
func (c Config) BranchPath() string {
	return docsvc.BranchPath(c.ProjectID, c.Location, c.DataStoreID, docsvc.DefaultBranch)
}

// NewImportRequest builds an incremental content import for the given URIs.
func NewImportRequest(uris []string) *discoveryengine.GoogleCloudDiscoveryengineV1ImportDocumentsRequest {
	return &discoveryengine.GoogleCloudDiscoveryengineV1ImportDocumentsRequest{
		GcsSource: &discoveryengine.GoogleCloudDiscoveryengineV1GcsSource{
			InputUris:  uris,
			DataSchema: DataSchema,
		},
		ReconciliationMode: ReconciliationIncremental,
	}
}

// Batches splits uris into order-preserving chunks of at most size elements.
// Sizes below 1 are treated as 1.
func Batches(uris []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	var out [][]string
	for len(uris) > size {
		out = append(out, uris[:size])
		uris = uris[size:]
	}
	if len(uris) > 0 {
		out = append(out, uris)
	}
	return out
}

// ImportDeps holds dependencies for the Import handler. The client is
// shared, read-only state safe for concurrent invocations.
type ImportDeps struct {
	Client docsvc.Client
	Config Config
}

// Import converts one storage notification into at most one import
// submission. Missing payload fields or configuration and unsupported
// extensions end the invocation as a logged no-op; a Document Service
// failure is logged and propagated so the delivery layer can redeliver.
func Import(ctx context.Context, e schema.ImportRequest, deps *ImportDeps) (*api.NoReturn, error) {
	if e.Bucket == "" || e.Object == "" || !deps.Config.Complete() {
		log.Printf("Error: missing file details or configuration (PROJECT_ID, LOCATION, DATA_STORE_ID): bucket=%q object=%q", e.Bucket, e.Object)
		return nil, nil
	}
	uri := gcsx.URI(e.Bucket, e.Object)
	log.Printf("Processing file: %s", uri)
	if ext, ok := SupportedDocument(e.Object); !ok {
		log.Printf("Skipping file '%s' with unsupported extension '%s'", e.Object, ext)
		return nil, nil
	}
	op, err := deps.Client.ImportDocuments(ctx, deps.Config.BranchPath(), NewImportRequest([]string{uri}))
	if err != nil {
		log.Printf("Error calling Vertex AI Search API for file %s: %v", uri, err)
		return nil, api.AsStatus(docsvc.ErrorCode(err), errors.Wrapf(err, "importing %s", uri))
	}
	log.Printf("Started Vertex AI Search import operation: %s", op.Name)
	log.Printf("Successfully triggered import for: %s", uri)
	return nil, nil
}

// Version reports the running service revision.
func Version(ctx context.Context, _ schema.VersionRequest, _ *api.NoDeps) (*schema.VersionResponse, error) {
	return &schema.VersionResponse{Version: os.Getenv("K_REVISION")}, nil
}
