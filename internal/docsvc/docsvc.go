// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package docsvc provides a thin client over the Vertex AI Search (Discovery
// Engine) Document Service, scoped to the document import surface used by
// this service.
package docsvc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	discoveryengine "google.golang.org/api/discoveryengine/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
)

// DefaultBranch is the branch into which documents are imported unless a
// data store uses custom branches.
const DefaultBranch = "default_branch"

// defaultCollection is the collection id assigned to data stores that are
// not explicitly organized into collections.
const defaultCollection = "default_collection"

// Client interface abstracts Document Service interactions.
type Client interface {
	// ImportDocuments starts a document import into the given branch and
	// returns the resulting long-running operation. It does not wait for
	// the import to complete.
	ImportDocuments(ctx context.Context, branch string, req *discoveryengine.GoogleCloudDiscoveryengineV1ImportDocumentsRequest) (*discoveryengine.GoogleLongrunningOperation, error)
}

// BranchPath returns the resource name of a data store branch.
func BranchPath(project, location, dataStore, branch string) string {
	return fmt.Sprintf("projects/%s/locations/%s/collections/%s/dataStores/%s/branches/%s", project, location, defaultCollection, dataStore, branch)
}

// NewService creates a Discovery Engine service handle for the given
// location. Non-global locations are served from regional endpoints.
func NewService(ctx context.Context, location string, opts ...option.ClientOption) (*discoveryengine.Service, error) {
	if location != "" && location != "global" {
		opts = append([]option.ClientOption{option.WithEndpoint(fmt.Sprintf("https://%s-discoveryengine.googleapis.com/", location))}, opts...)
	}
	s, err := discoveryengine.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "creating discoveryengine service")
	}
	return s, nil
}

type clientImpl struct {
	service *discoveryengine.Service
}

// NewClient creates a Client backed by the given service handle. The handle
// is safe for concurrent use and should be shared process-wide.
func NewClient(s *discoveryengine.Service) Client {
	return &clientImpl{service: s}
}

func (c *clientImpl) ImportDocuments(ctx context.Context, branch string, req *discoveryengine.GoogleCloudDiscoveryengineV1ImportDocumentsRequest) (*discoveryengine.GoogleLongrunningOperation, error) {
	return c.service.Projects.Locations.Collections.DataStores.Branches.Documents.Import(branch, req).Context(ctx).Do()
}

// ErrorCode maps an API call failure to the gRPC code used for propagating
// it to the event-delivery layer. Unknown failures map to Internal.
func ErrorCode(err error) codes.Code {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return codes.Internal
	}
	switch apiErr.Code {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}
