// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package docsvctest provides test doubles for the docsvc package.
package docsvctest

import (
	"context"

	discoveryengine "google.golang.org/api/discoveryengine/v1"
)

// MockClient implements docsvc.Client for testing.
type MockClient struct {
	ImportDocumentsFunc func(ctx context.Context, branch string, req *discoveryengine.GoogleCloudDiscoveryengineV1ImportDocumentsRequest) (*discoveryengine.GoogleLongrunningOperation, error)
}

func (mc *MockClient) ImportDocuments(ctx context.Context, branch string, req *discoveryengine.GoogleCloudDiscoveryengineV1ImportDocumentsRequest) (*discoveryengine.GoogleLongrunningOperation, error) {
	return mc.ImportDocumentsFunc(ctx, branch, req)
}
