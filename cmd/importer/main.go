// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// importer serves the GCS-triggered Vertex AI Search import endpoint.
//
// Object notifications are delivered by Eventarc or a Pub/Sub push
// subscription as HTTP POSTs to "/". Eligible files are submitted to the
// configured data store as incremental document imports; a non-2xx response
// signals the delivery layer to redeliver the event.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/jorsj/vertex-ai-search-importer/internal/api"
	"github.com/jorsj/vertex-ai-search-importer/internal/docsvc"
	"github.com/jorsj/vertex-ai-search-importer/pkg/ingest"
	"github.com/pkg/errors"
)

var port = flag.Int("port", 8080, "port on which to serve")

// Set as environment variables on the service. Missing values cause every
// invocation to no-op with a logged error rather than to fail.
var config = ingest.Config{
	ProjectID:   os.Getenv("PROJECT_ID"),
	Location:    os.Getenv("LOCATION"), // e.g. "global" or "us"
	DataStoreID: os.Getenv("DATA_STORE_ID"),
}

// getClient returns the process-wide Document Service client, created on
// first use and shared read-only across concurrent invocations.
var getClient = sync.OnceValues(func() (docsvc.Client, error) {
	s, err := docsvc.NewService(context.Background(), config.Location)
	if err != nil {
		return nil, err
	}
	return docsvc.NewClient(s), nil
})

func ImportInit(ctx context.Context) (*ingest.ImportDeps, error) {
	client, err := getClient()
	if err != nil {
		return nil, errors.Wrap(err, "creating document service client")
	}
	return &ingest.ImportDeps{Client: client, Config: config}, nil
}

func main() {
	flag.Parse()
	http.HandleFunc("/", api.Translate(ingest.StorageEventBodyToImportRequest, api.Handler(ImportInit, ingest.Import)))
	http.HandleFunc("/version", api.Handler(api.NoDepsInit, ingest.Version))
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), nil); err != nil {
		log.Fatalln(err)
	}
}
