package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/compozy/k8s-demo/internal/domain"
	"github.com/compozy/k8s-demo/internal/repository"
	"github.com/compozy/k8s-demo/internal/service"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// IndexFileName is the name of the exported document
	IndexFileName = "index.html"
	// ExportDirPermissions defines the permissions for the export directory
	ExportDirPermissions = 0755
	// ExportFilePermissions defines the permissions for exported files
	ExportFilePermissions = 0644
)

// ExportPageUseCase contains the logic for the render --output command.

type ExportPageUseCase struct {
	FS       repository.FileSystemRepository
	Renderer service.PageRenderer
	Locker   repository.ExportLocker
	Logger   *zap.Logger
}

// Execute renders the view as a full document into dir/index.html and returns the written path.
func (uc *ExportPageUseCase) Execute(ctx context.Context, view *domain.RootView, dir string) (string, error) {
	log := uc.Logger
	if log == nil {
		log = zap.NewNop()
	}
	var buf bytes.Buffer
	if err := uc.Renderer.RenderDocument(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	if err := uc.FS.MkdirAll(dir, ExportDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	unlock, err := uc.Locker.Lock(ctx, dir)
	if err != nil {
		return "", fmt.Errorf("failed to lock export directory: %w", err)
	}
	defer func() {
		if unlockErr := unlock(); unlockErr != nil {
			log.Warn("failed to release export lock", zap.String("dir", dir), zap.Error(unlockErr))
		}
	}()
	target := filepath.Join(dir, IndexFileName)
	tempFile := target + ".tmp"
	if err := afero.WriteFile(uc.FS, tempFile, buf.Bytes(), ExportFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write temp page: %w", err)
	}
	if err := uc.FS.Rename(tempFile, target); err != nil {
		if removeErr := uc.FS.Remove(tempFile); removeErr != nil {
			log.Warn("failed to remove temp page", zap.String("path", tempFile), zap.Error(removeErr))
		}
		return "", fmt.Errorf("failed to rename page: %w", err)
	}
	log.Info("exported page",
		zap.String("path", target),
		zap.String("version", view.Version()),
		zap.Int("bytes", buf.Len()),
	)
	return target, nil
}
