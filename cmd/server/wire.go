package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	gatepassapp "github.com/zumech/backend/internal/application/gatepass"
	printapp "github.com/zumech/backend/internal/application/printing"
	"github.com/zumech/backend/internal/infrastructure/config"
	"github.com/zumech/backend/internal/infrastructure/storage"
)

// newStorage returns the upload store and the document archive. Without
// credentials both are nil unless the in-memory stub is requested.
func newStorage(ctx context.Context, cfg *config.StorageConfig, log *zap.Logger) (gatepassapp.ObjectStore, printapp.DocumentArchive, error) {
	if cfg.UseStub {
		log.Warn("Using in-memory object storage; uploads are lost on restart")
		mem := storage.NewMemoryObjectStorage(cfg.PublicBaseURL)
		return mem, mem, nil
	}
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		log.Warn("Object storage not configured, uploads and archiving are disabled")
		return nil, nil, nil
	}

	uploads, err := storage.NewS3ObjectStorage(cfg, cfg.GatePassBucket, storage.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("gate-pass bucket: %w", err)
	}
	if err := uploads.EnsureBucket(ctx); err != nil {
		return nil, nil, fmt.Errorf("gate-pass bucket: %w", err)
	}

	documents, err := storage.NewS3ObjectStorage(cfg, cfg.DocumentsBucket, storage.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("documents bucket: %w", err)
	}
	if err := documents.EnsureBucket(ctx); err != nil {
		return nil, nil, fmt.Errorf("documents bucket: %w", err)
	}
	return uploads, documents, nil
}
