package service

import (
	"io"

	"github.com/compozy/k8s-demo/internal/domain"
)

// PageRenderer defines the interface for turning a RootView into markup.

type PageRenderer interface {
	RenderFragment(w io.Writer, view *domain.RootView) error
	RenderDocument(w io.Writer, view *domain.RootView) error
}
