package adapter

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/m-mizutani/goerr/v2"
)

// Searcher opens an external resource for a formatted query URL. The
// caller only supplies the URL and never parses a response.
type Searcher interface {
	Open(ctx context.Context, url string) error
}

// Browser implements Searcher with the platform URL opener
type Browser struct{}

// NewBrowser creates a Browser
func NewBrowser() *Browser {
	return &Browser{}
}

func (b *Browser) Open(ctx context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return goerr.Wrap(err, "failed to open browser", goerr.V("url", url))
	}
	return nil
}
