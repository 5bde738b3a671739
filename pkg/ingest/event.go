// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"encoding/json"
	"io"

	"github.com/jorsj/vertex-ai-search-importer/pkg/schema"
	"github.com/pkg/errors"
)

// StorageEventBodyToImportRequest converts an HTTP request body carrying a
// GCS object notification into an ImportRequest. The body may be either the
// bare JSON_API_V1 object payload (Eventarc direct delivery) or a Pub/Sub
// push envelope whose message data holds that payload.
func StorageEventBodyToImportRequest(body io.ReadCloser) (*schema.ImportRequest, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "reading request body")
	}
	if err := body.Close(); err != nil {
		return nil, errors.Wrap(err, "closing request body")
	}
	// A message key distinguishes the push envelope from a bare object
	// payload; once identified as an envelope, its decode errors are
	// surfaced rather than falling through to the bare decode.
	var wrapper struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(b, &wrapper); err == nil && len(wrapper.Message) > 0 {
		var envelope schema.PubSubEnvelope
		if err := json.Unmarshal(b, &envelope); err != nil {
			return nil, errors.Wrap(err, "decoding push envelope")
		}
		b = envelope.Message.Data
	}
	var event schema.GCSObjectEvent
	if err := json.Unmarshal(b, &event); err != nil {
		return nil, errors.Wrap(err, "decoding event")
	}
	return &schema.ImportRequest{Bucket: event.Bucket, Object: event.Name}, nil
}
