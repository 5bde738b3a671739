// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package docsvctest

import (
	"testing"

	"github.com/jorsj/vertex-ai-search-importer/internal/docsvc"
)

func TestMockClient(t *testing.T) {
	var _ docsvc.Client = &MockClient{}
}
