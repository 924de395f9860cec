package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/toozej/mermaidgen/internal/render"
	"github.com/toozej/mermaidgen/pkg/mermaid"
)

func newTestHandler(file string, stdout, clipboard, openBrowser bool) (*Handler, *bytes.Buffer, *[]string, *[]string) {
	h := NewHandler(file, stdout, clipboard, openBrowser)
	out := &bytes.Buffer{}
	copied := &[]string{}
	opened := &[]string{}

	h.fs = afero.NewMemMapFs()
	h.stdout = out
	h.copyText = func(text string) error {
		*copied = append(*copied, text)
		return nil
	}
	h.openPath = func(target string) error {
		*opened = append(*opened, target)
		return nil
	}

	return h, out, copied, opened
}

func TestHandlerTargets(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		stdout      bool
		clipboard   bool
		openBrowser bool
		want        []Target
	}{
		{
			name: "default to stdout",
			want: []Target{TargetStdout},
		},
		{
			name: "file only",
			file: "diagram.mmd",
			want: []Target{TargetFile},
		},
		{
			name:      "multiple targets accumulate",
			file:      "diagram.svg",
			stdout:    true,
			clipboard: true,
			want:      []Target{TargetFile, TargetStdout, TargetClipboard},
		},
		{
			name:        "all four targets",
			file:        "out.mmd",
			stdout:      true,
			clipboard:   true,
			openBrowser: true,
			want:        []Target{TargetFile, TargetStdout, TargetClipboard, TargetBrowser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.file, tt.stdout, tt.clipboard, tt.openBrowser)
			got := h.Targets()
			if len(got) != len(tt.want) {
				t.Fatalf("Targets() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Targets()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWriteMermaidToFile(t *testing.T) {
	h, _, _, _ := newTestHandler("diagrams/flow.mmd", false, false, false)

	script := "flowchart TD\n    a --> b"
	if err := h.WriteMermaid(script); err != nil {
		t.Fatalf("WriteMermaid() error = %v", err)
	}

	data, err := afero.ReadFile(h.fs, "diagrams/flow.mmd")
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != script {
		t.Errorf("file content = %q, want %q", string(data), script)
	}
}

func TestWriteMermaidToStdout(t *testing.T) {
	h, out, _, _ := newTestHandler("", false, false, false)

	if err := h.WriteMermaid("pie\n    \"A\" : 1"); err != nil {
		t.Fatalf("WriteMermaid() error = %v", err)
	}
	if got := out.String(); got != "pie\n    \"A\" : 1\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestWriteMermaidFansOut(t *testing.T) {
	h, out, copied, opened := newTestHandler("out.mmd", true, true, true)

	script := "sequenceDiagram\n    a->>b: hi"
	if err := h.WriteMermaid(script); err != nil {
		t.Fatalf("WriteMermaid() error = %v", err)
	}

	if data, err := afero.ReadFile(h.fs, "out.mmd"); err != nil || string(data) != script {
		t.Errorf("file content = %q, err = %v", string(data), err)
	}
	if !strings.Contains(out.String(), script) {
		t.Errorf("stdout missing script: %q", out.String())
	}
	if len(*copied) != 1 || (*copied)[0] != script {
		t.Errorf("clipboard = %v", *copied)
	}
	if len(*opened) != 1 || !strings.HasPrefix((*opened)[0], "https://mermaid.live/edit#base64:") {
		t.Errorf("browser target = %v", *opened)
	}
}

func TestLiveEditorURLRoundtrip(t *testing.T) {
	script := "flowchart LR\n    a --> b"
	url := LiveEditorURL(script)

	const prefix = "https://mermaid.live/edit#base64:"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("url = %q", url)
	}
	decoded, err := render.DecodeScript(strings.TrimPrefix(url, prefix))
	if err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if decoded != script {
		t.Errorf("decoded payload = %q, want %q", decoded, script)
	}
}

func TestWriteSVGBrowserUsesTempFile(t *testing.T) {
	h, _, _, opened := newTestHandler("", false, false, true)

	if err := h.WriteSVG("<svg></svg>"); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}
	if len(*opened) != 1 || !strings.HasSuffix((*opened)[0], "mermaidgen-output.svg") {
		t.Fatalf("browser target = %v", *opened)
	}
	data, err := afero.ReadFile(h.fs, (*opened)[0])
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "<svg></svg>" {
		t.Errorf("temp file content = %q", string(data))
	}
}

func TestWritePNGToFile(t *testing.T) {
	h, _, _, _ := newTestHandler("chart.png", false, false, false)

	content := []byte{0x89, 'P', 'N', 'G'}
	if err := h.WritePNG(content); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	data, err := afero.ReadFile(h.fs, "chart.png")
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("file content = %v, want %v", data, content)
	}
}

func TestClipboardErrorKind(t *testing.T) {
	h, _, _, _ := newTestHandler("", false, true, false)
	h.copyText = func(string) error {
		return errors.New("no clipboard utility found")
	}

	err := h.WriteMermaid("pie")
	if err == nil {
		t.Fatal("expected clipboard error")
	}
	var tagged *mermaid.Error
	if !errors.As(err, &tagged) || tagged.Kind != mermaid.KindClipboard {
		t.Errorf("expected clipboard-kind error, got %v", err)
	}
}
