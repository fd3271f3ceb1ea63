// Package renderer turns rendered certificate HTML into PDF bytes and
// runs the batch generation pipeline.
package renderer

import (
	"context"
	"log/slog"
	"os/exec"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
)

// Meta carries per-certificate context alongside the HTML. The native
// renderer composes the page from Fields instead of the HTML.
type Meta struct {
	EventID       string
	ParticipantID string
	Fields        placeholder.Set
}

type Renderer interface {
	RenderPDF(ctx context.Context, html string, meta Meta) ([]byte, error)
}

var chromeBinaries = []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"}

func chromeAvailable() bool {
	for _, name := range chromeBinaries {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// New selects the renderer from configuration. Chrome is the default;
// when no Chrome binary is installed the native composer takes over.
func New() Renderer {
	mode := "chrome"
	if common.Config.Renderer != nil && *common.Config.Renderer != "" {
		mode = *common.Config.Renderer
	}

	if mode == "native" {
		slog.Info("Using native PDF renderer")
		return NewNativeRenderer()
	}

	if !chromeAvailable() {
		slog.Warn("Chrome binary not found, falling back to native PDF renderer")
		return NewNativeRenderer()
	}

	slog.Info("Using Chrome PDF renderer")
	return NewChromeRenderer()
}
