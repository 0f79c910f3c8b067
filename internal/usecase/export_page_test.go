package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/compozy/k8s-demo/internal/domain"
	"github.com/compozy/k8s-demo/internal/service"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type renameFailFs struct {
	afero.Fs
}

func (renameFailFs) Rename(string, string) error {
	return errors.New("rename refused")
}

func TestExportPageUseCase_Execute(t *testing.T) {
	t.Run("Should write the rendered document to index.html", func(t *testing.T) {
		ctx := context.Background()
		fsRepo := afero.NewMemMapFs()
		renderer, err := service.NewPageRenderer(service.DefaultStyleSheet())
		require.NoError(t, err)
		locker := new(mockExportLocker)
		locker.On("Lock", ctx, "dist").Return(nil)
		uc := &ExportPageUseCase{FS: fsRepo, Renderer: renderer, Locker: locker}
		view := domain.NewRootView()
		path, err := uc.Execute(ctx, view, "dist")
		require.NoError(t, err)
		assert.Equal(t, "dist/index.html", path)
		written, err := afero.ReadFile(fsRepo, path)
		require.NoError(t, err)
		var expected bytes.Buffer
		require.NoError(t, renderer.RenderDocument(&expected, view))
		assert.Equal(t, expected.Bytes(), written)
		tempExists, _ := afero.Exists(fsRepo, "dist/index.html.tmp")
		assert.False(t, tempExists)
		assert.Equal(t, 1, locker.unlocked)
		locker.AssertExpectations(t)
	})
	t.Run("Should overwrite an existing export", func(t *testing.T) {
		ctx := context.Background()
		fsRepo := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsRepo, "dist/index.html", []byte("stale"), 0644))
		renderer, err := service.NewPageRenderer(service.DefaultStyleSheet())
		require.NoError(t, err)
		locker := new(mockExportLocker)
		locker.On("Lock", ctx, "dist").Return(nil)
		uc := &ExportPageUseCase{FS: fsRepo, Renderer: renderer, Locker: locker}
		_, err = uc.Execute(ctx, domain.NewRootView(), "dist")
		require.NoError(t, err)
		written, err := afero.ReadFile(fsRepo, "dist/index.html")
		require.NoError(t, err)
		assert.Contains(t, string(written), "Version: 1.1.0")
	})
	t.Run("Should log the export", func(t *testing.T) {
		ctx := context.Background()
		core, logs := observer.New(zapcore.InfoLevel)
		renderer := new(mockPageRenderer)
		renderer.On("RenderDocument", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			_, _ = io.WriteString(args.Get(0).(io.Writer), "<html></html>")
		}).Return(nil)
		locker := new(mockExportLocker)
		locker.On("Lock", ctx, "out").Return(nil)
		uc := &ExportPageUseCase{
			FS:       afero.NewMemMapFs(),
			Renderer: renderer,
			Locker:   locker,
			Logger:   zap.New(core),
		}
		_, err := uc.Execute(ctx, domain.NewRootView(), "out")
		require.NoError(t, err)
		entries := logs.FilterMessage("exported page").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "1.1.0", entries[0].ContextMap()["version"])
		assert.Equal(t, int64(13), entries[0].ContextMap()["bytes"])
	})
	t.Run("Should fail when rendering fails", func(t *testing.T) {
		ctx := context.Background()
		fsRepo := afero.NewMemMapFs()
		renderer := new(mockPageRenderer)
		renderer.On("RenderDocument", mock.Anything, mock.Anything).Return(errors.New("boom"))
		locker := new(mockExportLocker)
		uc := &ExportPageUseCase{FS: fsRepo, Renderer: renderer, Locker: locker}
		_, err := uc.Execute(ctx, domain.NewRootView(), "dist")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to render page")
		exists, _ := afero.Exists(fsRepo, "dist/index.html")
		assert.False(t, exists)
		locker.AssertNotCalled(t, "Lock", mock.Anything, mock.Anything)
	})
	t.Run("Should fail when the lock is held", func(t *testing.T) {
		ctx := context.Background()
		fsRepo := afero.NewMemMapFs()
		renderer, err := service.NewPageRenderer(service.DefaultStyleSheet())
		require.NoError(t, err)
		locker := new(mockExportLocker)
		locker.On("Lock", ctx, "dist").Return(domain.ErrLockTimeout)
		uc := &ExportPageUseCase{FS: fsRepo, Renderer: renderer, Locker: locker}
		_, err = uc.Execute(ctx, domain.NewRootView(), "dist")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrLockTimeout)
		exists, _ := afero.Exists(fsRepo, "dist/index.html")
		assert.False(t, exists)
	})
	t.Run("Should clean up the temp file when rename fails", func(t *testing.T) {
		ctx := context.Background()
		fsRepo := renameFailFs{Fs: afero.NewMemMapFs()}
		renderer, err := service.NewPageRenderer(service.DefaultStyleSheet())
		require.NoError(t, err)
		locker := new(mockExportLocker)
		locker.On("Lock", ctx, "dist").Return(nil)
		uc := &ExportPageUseCase{FS: fsRepo, Renderer: renderer, Locker: locker}
		_, err = uc.Execute(ctx, domain.NewRootView(), "dist")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to rename page")
		tempExists, _ := afero.Exists(fsRepo, "dist/index.html.tmp")
		assert.False(t, tempExists)
		assert.Equal(t, 1, locker.unlocked)
	})
}
