// Package output delivers generated diagrams to one or more targets.
// A target is a file path, stdout, the system clipboard, or the default
// browser. Targets accumulate, so a single invocation can write a file
// and copy to the clipboard at the same time. When no target is
// requested the content goes to stdout.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/toozej/mermaidgen/internal/render"
	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// Target identifies one delivery destination.
type Target int

const (
	TargetFile Target = iota
	TargetStdout
	TargetClipboard
	TargetBrowser
)

// Handler fans written content out to the configured targets.
type Handler struct {
	file    string
	targets []Target

	fs       afero.Fs
	stdout   io.Writer
	copyText func(string) error
	openPath func(string) error
}

// NewHandler builds a Handler from the CLI output flags. An empty file
// path skips the file target. If nothing is selected stdout is used.
func NewHandler(file string, stdout, clipboard, openBrowser bool) *Handler {
	h := &Handler{
		file:     file,
		fs:       afero.NewOsFs(),
		stdout:   os.Stdout,
		copyText: CopyToClipboard,
		openPath: openInBrowser,
	}

	if file != "" {
		h.targets = append(h.targets, TargetFile)
	}
	if stdout {
		h.targets = append(h.targets, TargetStdout)
	}
	if clipboard {
		h.targets = append(h.targets, TargetClipboard)
	}
	if openBrowser {
		h.targets = append(h.targets, TargetBrowser)
	}
	if len(h.targets) == 0 {
		h.targets = append(h.targets, TargetStdout)
	}

	return h
}

// Targets returns the resolved delivery targets in order.
func (h *Handler) Targets() []Target {
	return h.targets
}

// WriteSVG delivers rendered SVG markup. The browser target writes the
// markup to a temp file and opens it.
func (h *Handler) WriteSVG(content string) error {
	for _, target := range h.targets {
		switch target {
		case TargetFile:
			if err := h.writeFile(h.file, []byte(content)); err != nil {
				return err
			}
		case TargetStdout:
			fmt.Fprintln(h.stdout, content)
		case TargetClipboard:
			if err := h.copyText(content); err != nil {
				return mermaid.Wrap(mermaid.KindClipboard, err, "copying SVG to clipboard")
			}
		case TargetBrowser:
			path := filepath.Join(os.TempDir(), "mermaidgen-output.svg")
			if err := h.writeFile(path, []byte(content)); err != nil {
				return err
			}
			if err := h.openPath(path); err != nil {
				return fmt.Errorf("opening %s in browser: %w", path, err)
			}
		}
	}
	return nil
}

// WritePNG delivers rendered PNG bytes. The clipboard target is not
// supported for binary content and reports a warning instead.
func (h *Handler) WritePNG(content []byte) error {
	for _, target := range h.targets {
		switch target {
		case TargetFile:
			if err := h.writeFile(h.file, content); err != nil {
				return err
			}
		case TargetStdout:
			if _, err := h.stdout.Write(content); err != nil {
				return fmt.Errorf("writing PNG to stdout: %w", err)
			}
		case TargetClipboard:
			fmt.Fprintln(os.Stderr, "Warning: PNG clipboard output is not supported")
		case TargetBrowser:
			path := filepath.Join(os.TempDir(), "mermaidgen-output.png")
			if err := h.writeFile(path, content); err != nil {
				return err
			}
			if err := h.openPath(path); err != nil {
				return fmt.Errorf("opening %s in browser: %w", path, err)
			}
		}
	}
	return nil
}

// WriteMermaid delivers raw Mermaid script. The browser target opens
// the script in the mermaid.live editor instead of a local file.
func (h *Handler) WriteMermaid(content string) error {
	for _, target := range h.targets {
		switch target {
		case TargetFile:
			if err := h.writeFile(h.file, []byte(content)); err != nil {
				return err
			}
		case TargetStdout:
			fmt.Fprintln(h.stdout, content)
		case TargetClipboard:
			if err := h.copyText(content); err != nil {
				return mermaid.Wrap(mermaid.KindClipboard, err, "copying script to clipboard")
			}
		case TargetBrowser:
			url := LiveEditorURL(content)
			if err := h.openPath(url); err != nil {
				return fmt.Errorf("opening %s in browser: %w", url, err)
			}
		}
	}
	return nil
}

// LiveEditorURL returns the mermaid.live editor URL for a script.
func LiveEditorURL(script string) string {
	return "https://mermaid.live/edit#base64:" + render.EncodeScript(script)
}

func (h *Handler) writeFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := h.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(h.fs, path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
