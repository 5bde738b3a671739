// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jorsj/vertex-ai-search-importer/pkg/schema"
)

const objectPayload = `{
	"kind": "storage#object",
	"bucket": "my-bucket",
	"name": "reports/q1.pdf",
	"generation": "1700000000000000",
	"size": "52831"
}`

func TestStorageEventBodyToImportRequest(t *testing.T) {
	envelope := fmt.Sprintf(`{"message":{"data":%q,"messageId":"123"},"subscription":"projects/my-project/subscriptions/gcs-events"}`,
		base64.StdEncoding.EncodeToString([]byte(objectPayload)))

	tests := []struct {
		name    string
		body    string
		want    *schema.ImportRequest
		wantErr bool
	}{
		{
			name: "bare object payload",
			body: objectPayload,
			want: &schema.ImportRequest{Bucket: "my-bucket", Object: "reports/q1.pdf"},
		},
		{
			name: "pubsub push envelope",
			body: envelope,
			want: &schema.ImportRequest{Bucket: "my-bucket", Object: "reports/q1.pdf"},
		},
		{
			name: "payload without bucket",
			body: `{"name": "reports/q1.pdf"}`,
			want: &schema.ImportRequest{Object: "reports/q1.pdf"},
		},
		{
			name:    "malformed json",
			body:    "not json",
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: true,
		},
		{
			name:    "envelope with malformed payload",
			body:    fmt.Sprintf(`{"message":{"data":%q}}`, base64.StdEncoding.EncodeToString([]byte("not json"))),
			wantErr: true,
		},
		{
			name:    "envelope with invalid base64 data",
			body:    `{"message":{"data":"%%%not-base64%%%","messageId":"123"}}`,
			wantErr: true,
		},
		{
			name:    "envelope without data",
			body:    `{"message":{"messageId":"123"}}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StorageEventBodyToImportRequest(io.NopCloser(strings.NewReader(tt.body)))
			if tt.wantErr {
				if err == nil {
					t.Fatal("StorageEventBodyToImportRequest() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("StorageEventBodyToImportRequest() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("StorageEventBodyToImportRequest() diff (-want +got):\n%s", diff)
			}
		})
	}
}
