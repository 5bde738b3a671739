// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package gcsx

import (
	"strings"
	"testing"
)

func TestURI(t *testing.T) {
	if got, want := URI("my-bucket", "reports/q1.pdf"), "gs://my-bucket/reports/q1.pdf"; got != want {
		t.Errorf("URI() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantObject string
		wantErr    bool
	}{
		{
			name:       "bucket and object",
			uri:        "gs://my-bucket/reports/q1.pdf",
			wantBucket: "my-bucket",
			wantObject: "reports/q1.pdf",
		},
		{
			name:       "bucket only",
			uri:        "gs://my-bucket",
			wantBucket: "my-bucket",
		},
		{
			name:       "bucket with trailing slash",
			uri:        "gs://my-bucket/",
			wantBucket: "my-bucket",
		},
		{
			name:    "missing scheme",
			uri:     "my-bucket/reports/q1.pdf",
			wantErr: true,
		},
		{
			name:    "empty path",
			uri:     "gs://",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, object, err := Parse(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got nil", tt.uri)
				}
				if !strings.Contains(err.Error(), "invalid GCS URI") {
					t.Errorf("Parse(%q) error = %v, want invalid GCS URI", tt.uri, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.uri, err)
			}
			if bucket != tt.wantBucket || object != tt.wantObject {
				t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)", tt.uri, bucket, object, tt.wantBucket, tt.wantObject)
			}
		})
	}
}

func TestURIParseRoundTrip(t *testing.T) {
	uri := URI("bucket", "a/b/c.txt")
	bucket, object, err := Parse(uri)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", uri, err)
	}
	if bucket != "bucket" || object != "a/b/c.txt" {
		t.Errorf("Parse(URI()) = (%q, %q), want (bucket, a/b/c.txt)", bucket, object)
	}
}
