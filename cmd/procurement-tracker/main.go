// Command procurement-tracker runs a single document through the extraction
// pipeline against a local SQLite database and prints the result as JSON.
// Without an OPENAI_API_KEY the AI call fails fast and the run is served by
// the deterministic pattern extraction.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/cache"
	"github.com/procurehq/procurement-tracker/internal/common"
	"github.com/procurehq/procurement-tracker/internal/export"
	"github.com/procurehq/procurement-tracker/internal/extraction/openai"
	"github.com/procurehq/procurement-tracker/internal/patterns"
	"github.com/procurehq/procurement-tracker/internal/pipeline"
	repo "github.com/procurehq/procurement-tracker/internal/repository"
	"github.com/procurehq/procurement-tracker/internal/suppliers"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file      = flag.String("file", "", "path to a plain-text document (required)")
		tenantStr = flag.String("tenant", "", "tenant UUID (generated when empty)")
		docType   = flag.String("type", "Invoice", "document type (Invoice, Contract, Purchase Order, ...)")
		title     = flag.String("title", "", "document title (defaults to the file name)")
		dbPath    = flag.String("db", "procurement.db", "SQLite database path")
		out       = flag.String("out", "", "write a supplier XLSX report to this path after processing")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	tenantID := uuid.New()
	if *tenantStr != "" {
		parsed, err := uuid.Parse(*tenantStr)
		if err != nil {
			printError("Error: --tenant must be a UUID: %v\n", err)
			os.Exit(1)
		}
		tenantID = parsed
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		printError("Error: reading %s: %v\n", *file, err)
		os.Exit(1)
	}
	if *title == "" {
		*title = filepath.Base(*file)
	}

	ctx := context.Background()

	entc, err := repo.OpenSQLite(*dbPath, logger)
	if err != nil {
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()

	if err := entc.Schema.Create(ctx); err != nil {
		printError("Error: creating schema: %v\n", err)
		os.Exit(1)
	}

	documentsRepo := repo.NewDocumentRepository(entc, logger)
	suppliersRepo := repo.NewSupplierRepository(entc, logger)
	jobsRepo := repo.NewProcessJobRepository(entc, logger)

	extractionCache := cache.NewMemoryStore(cfg.Cache.SweepInterval,
		cache.WithMaxEntries(cfg.Cache.MaxEntries),
		cache.WithLogger(logger),
	)
	defer extractionCache.Stop()

	aiClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(logger, pipeline.Config{
		PromptTemplateID: cfg.Extraction.PromptTemplateID,
		CacheTTL:         cfg.Cache.TTL,
		AITimeout:        cfg.LLM.Timeout,
	}, extractionCache, aiClient,
		patterns.New(patterns.WithDefaultCurrency(cfg.Extraction.DefaultCurrency)),
		suppliers.NewResolver(suppliersRepo, logger),
		documentsRepo, jobsRepo)

	canonical, known := constants.CanonicalizeDocumentType(*docType)
	if !known {
		logger.Warn("unknown document type, treating as Other", "type", *docType)
	}
	doc, err := documentsRepo.Create(ctx, &repo.CreateDocumentRequest{
		TenantID:     tenantID,
		Title:        *title,
		DocumentType: canonical,
		RawText:      string(raw),
	})
	if err != nil {
		printError("Error: registering document: %v\n", err)
		os.Exit(1)
	}

	res, err := processor.ProcessDocument(ctx, pipeline.ProcessRequest{
		TenantID:     tenantID,
		DocumentID:   doc.ID,
		DocumentType: string(canonical),
		RawText:      string(raw),
	})
	if err != nil {
		printError("Error: processing document: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{
		"document_id":      doc.ID,
		"tenant_id":        tenantID,
		"job_id":           res.JobID,
		"model_used":       res.Result.ModelUsed,
		"confidence_score": res.Result.ConfidenceScore,
		"cache_hit":        res.CacheHit,
		"corrections":      res.Corrections,
		"fields":           res.Result.Fields,
		"supplier":         res.Supplier,
		"supplier_created": res.SupplierCreated,
	}); err != nil {
		printError("Error: encoding result: %v\n", err)
		os.Exit(1)
	}

	if *out != "" {
		exporter := export.NewService(suppliersRepo, logger)
		xlsx, err := exporter.ExportSuppliersXLSX(ctx, tenantID)
		if err != nil {
			printError("Error: exporting suppliers: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
			printError("Error: writing %s: %v\n", *out, err)
			os.Exit(1)
		}
		logger.Info("supplier report written", "path", *out)
	}
}
