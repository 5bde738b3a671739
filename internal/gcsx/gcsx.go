// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package gcsx provides helpers for composing and parsing gs:// object URIs.
package gcsx

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// URI composes the gs:// URI for an object within a bucket.
func URI(bucket, object string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, object)
}

// Parse splits a gs:// URI into its bucket and object components. The object
// component may be empty when the URI names only a bucket.
func Parse(uri string) (bucket, object string, err error) {
	if !strings.HasPrefix(uri, "gs://") {
		return "", "", errors.Errorf("invalid GCS URI: %s", uri)
	}
	rest := strings.TrimLeft(strings.TrimPrefix(uri, "gs://"), "/")
	if rest == "" {
		return "", "", errors.Errorf("invalid GCS URI: %s", uri)
	}
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) == 1 {
		return parts[0], "", nil
	}
	return parts[0], parts[1], nil
}
