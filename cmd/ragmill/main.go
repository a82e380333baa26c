// Copyright 2025 The ragmill Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/souravobl/ragmill"
	"github.com/souravobl/ragmill/ai"
	"github.com/souravobl/ragmill/ingestion"
	"github.com/souravobl/ragmill/storage"
	"github.com/souravobl/ragmill/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "ragmill",
		Usage: "Chunk and embed PDF documents into a local vector store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Extract, chunk, embed and store the PDFs in a directory",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "pdf_dir",
						Aliases:  []string{"p"},
						Usage:    "Directory containing the PDF files to ingest",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "output_dir",
						Usage: "Directory for saved chunk JSON files",
						Value: "chunks",
					},
					&cli.BoolFlag{
						Name:  "parallel",
						Usage: "Extract documents concurrently",
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "Write each document's chunks as JSON files into output_dir",
					},
					&cli.BoolFlag{
						Name:  "skip_embed",
						Usage: "Skip embedding and vector store writes",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB vector store directory",
						Value:   "ragmill.db",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for parallel extraction",
						Value: ingestion.DefaultPoolSize,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunk texts to embed per request",
						Value: ingestion.DefaultEmbedBatchSize,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print chunk counts per collection",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB vector store directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	skipEmbed := c.Bool("skip_embed")

	millOpts := []ragmill.MillOption{
		ragmill.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
	}
	if skipEmbed {
		millOpts = append(millOpts, ragmill.WithoutEmbedder())
	}

	mill, err := ragmill.NewMill(c.String("db"), millOpts...)
	if err != nil {
		return fmt.Errorf("failed to open vector store: %w", err)
	}
	defer mill.Close()

	pipelineOpts := []ingestion.Option{
		ingestion.WithParallel(c.Bool("parallel")),
		ingestion.WithSkipEmbed(skipEmbed),
		ingestion.WithPoolSize(c.Int("pool-size")),
		ingestion.WithEmbedBatchSize(c.Int("batch-size")),
	}
	if c.Bool("save") {
		pipelineOpts = append(pipelineOpts, ingestion.WithSaveDir(c.String("output_dir")))
	}

	pipeline, err := mill.NewIngestionPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	fmt.Fprintf(os.Stderr, "PDF directory: %s\n", c.String("pdf_dir"))
	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	if !skipEmbed {
		fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
		fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	}
	fmt.Fprintln(os.Stderr)

	summary, runErr := pipeline.Run(ctx, c.String("pdf_dir"))
	summary.Write(os.Stderr)

	if runErr != nil {
		return fmt.Errorf("ingestion failed: %w", runErr)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open vector store: %w", err)
	}
	store := badger.NewChunkStore(backend)
	defer store.Close()

	for _, collection := range storage.Collections() {
		count, err := store.CountChunks(ctx, collection)
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", collection, err)
		}
		fmt.Printf("%s: %d\n", collection, count)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
