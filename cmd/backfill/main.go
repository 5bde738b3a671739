// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// backfill imports the existing contents of a GCS bucket into a Vertex AI
// Search data store, applying the same eligibility rules as the
// event-triggered importer. Eligible objects are submitted in batched
// incremental imports; completion of the resulting operations is not
// awaited.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	gcs "cloud.google.com/go/storage"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/jorsj/vertex-ai-search-importer/internal/docsvc"
	"github.com/jorsj/vertex-ai-search-importer/internal/gcsx"
	"github.com/jorsj/vertex-ai-search-importer/pkg/ingest"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/api/iterator"
)

var (
	project   = flag.String("project", "", "GCP project id owning the data store")
	location  = flag.String("location", "global", `data store location (e.g. "global" or "us")`)
	dataStore = flag.String("data-store", "", "Vertex AI Search data store id")
	batchSize = flag.Int("batch-size", 100, "maximum number of input URIs per import request")
	dryRun    = flag.Bool("dry-run", false, "list eligible objects without submitting imports")
)

var (
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "backfill gs://<bucket>[/<prefix>] -project=<project> -data-store=<data-store>",
	Short: "Import the existing contents of a GCS bucket into a Vertex AI Search data store.",
	Args:  cobra.ExactArgs(1),
	// Silence errors because we will print the error ourselves in main.
	SilenceErrors: true,
	// Don't show usage for every error.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := ingest.Config{ProjectID: *project, Location: *location, DataStoreID: *dataStore}
		if !cfg.Complete() {
			return errors.New("project, location, and data-store are required")
		}
		if *batchSize < 1 {
			return errors.New("batch-size must be at least 1")
		}
		bucket, prefix, err := gcsx.Parse(args[0])
		if err != nil {
			return errors.Wrap(err, "parsing bucket path")
		}
		ctx := cmd.Context()
		client, err := gcs.NewClient(ctx)
		if err != nil {
			return errors.Wrap(err, "creating GCS client")
		}
		defer client.Close()
		var uris []string
		var skipped int
		it := client.Bucket(bucket).Objects(ctx, &gcs.Query{Prefix: prefix})
		for {
			attrs, err := it.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return errors.Wrap(err, "listing objects")
			}
			if _, ok := ingest.SupportedDocument(attrs.Name); !ok {
				skipped++
				continue
			}
			uris = append(uris, gcsx.URI(bucket, attrs.Name))
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s eligible objects, %s skipped\n", green(len(uris)), yellow(skipped))
		if *dryRun {
			for _, batch := range ingest.Batches(uris, *batchSize) {
				fmt.Fprintln(out, yellow(fmt.Sprintf("would import %d documents:", len(batch))))
				for _, uri := range batch {
					fmt.Fprintln(out, "  "+uri)
				}
			}
			return nil
		}
		if len(uris) == 0 {
			return nil
		}
		s, err := docsvc.NewService(ctx, cfg.Location)
		if err != nil {
			return errors.Wrap(err, "creating document service")
		}
		docs := docsvc.NewClient(s)
		branch := cfg.BranchPath()
		runID := uuid.New().String()
		for i, batch := range ingest.Batches(uris, *batchSize) {
			op, err := docs.ImportDocuments(ctx, branch, ingest.NewImportRequest(batch))
			if err != nil {
				return errors.Wrapf(err, "importing batch %d", i)
			}
			log.Printf("run %s: started import operation %s (%d documents)", runID, op.Name, len(batch))
		}
		fmt.Fprintln(out, green("all imports submitted"))
		return nil
	},
}

func init() {
	rootCmd.Flags().AddGoFlag(flag.Lookup("project"))
	rootCmd.Flags().AddGoFlag(flag.Lookup("location"))
	rootCmd.Flags().AddGoFlag(flag.Lookup("data-store"))
	rootCmd.Flags().AddGoFlag(flag.Lookup("batch-size"))
	rootCmd.Flags().AddGoFlag(flag.Lookup("dry-run"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
