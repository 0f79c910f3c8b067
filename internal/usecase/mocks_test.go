package usecase

import (
	"context"
	"io"

	"github.com/compozy/k8s-demo/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockPageRenderer struct{ mock.Mock }

func (m *mockPageRenderer) RenderFragment(w io.Writer, view *domain.RootView) error {
	args := m.Called(w, view)
	return args.Error(0)
}

func (m *mockPageRenderer) RenderDocument(w io.Writer, view *domain.RootView) error {
	args := m.Called(w, view)
	return args.Error(0)
}

type mockExportLocker struct {
	mock.Mock
	unlocked int
}

func (m *mockExportLocker) Lock(ctx context.Context, dir string) (func() error, error) {
	args := m.Called(ctx, dir)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func() error {
		m.unlocked++
		return nil
	}, nil
}
