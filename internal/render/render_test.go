package render

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/toozej/mermaidgen/pkg/mermaid"
	"github.com/toozej/mermaidgen/pkg/mermaid/pie"
)

func TestEncodeRoundtrip(t *testing.T) {
	script := "graph TD\n  A[Start] --> B{Decision}\n  B -->|Yes| C[End]"
	encoded := EncodeScript(script)
	if strings.ContainsAny(encoded, "+/=") {
		t.Errorf("encoding not URL-safe: %q", encoded)
	}
	decoded, err := DecodeScript(encoded)
	if err != nil {
		t.Fatalf("DecodeScript: %v", err)
	}
	if decoded != script {
		t.Errorf("roundtrip = %q, want %q", decoded, script)
	}
}

func TestClientServerFallback(t *testing.T) {
	t.Setenv(EnvServer, "")
	if got := NewClient("").Server(); got != DefaultServer {
		t.Errorf("Server() = %q, want %q", got, DefaultServer)
	}

	t.Setenv(EnvServer, "https://ink.internal.example.com")
	if got := NewClient("").Server(); got != "https://ink.internal.example.com" {
		t.Errorf("Server() = %q, env override ignored", got)
	}

	if got := NewClient("https://explicit.example.com/").Server(); got != "https://explicit.example.com" {
		t.Errorf("Server() = %q, explicit server should win and be trimmed", got)
	}
}

func TestURLBuilding(t *testing.T) {
	t.Setenv(EnvServer, "")
	c := NewClient("")
	d := pie.NewBuilder().Data("A", 1).Build()

	t.Run("no options", func(t *testing.T) {
		url := c.URL(d, "svg", Options{})
		if !strings.HasPrefix(url, DefaultServer+"/svg/") {
			t.Errorf("URL = %q", url)
		}
		if strings.Contains(url, "?") {
			t.Errorf("URL carries empty query: %q", url)
		}
	})

	t.Run("all options", func(t *testing.T) {
		url := c.URL(d, "img", Options{Width: 800, Height: 600, Scale: 2, BackgroundColor: "#1e1e1e"})
		for _, want := range []string{"/img/", "width=800", "height=600", "scale=2", "bgColor=1e1e1e"} {
			if !strings.Contains(url, want) {
				t.Errorf("URL missing %q: %q", want, url)
			}
		}
		if strings.Contains(url, "#") {
			t.Errorf("background color keeps #: %q", url)
		}
	})

	t.Run("encoded payload decodes to script", func(t *testing.T) {
		url := c.URL(d, "svg", Options{})
		payload := strings.TrimPrefix(url, DefaultServer+"/svg/")
		script, err := DecodeScript(payload)
		if err != nil {
			t.Fatalf("DecodeScript: %v", err)
		}
		if script != d.ToMermaid() {
			t.Errorf("payload = %q, want %q", script, d.ToMermaid())
		}
	})
}

func TestRenderSVG(t *testing.T) {
	const svg = `<svg xmlns="http://www.w3.org/2000/svg"></svg>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/svg/") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(svg))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.RenderSVG(context.Background(), pie.NewBuilder().Data("A", 1).Build(), Options{})
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if got != svg {
		t.Errorf("RenderSVG = %q, want %q", got, svg)
	}
}

func TestRenderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad diagram", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.RenderPNG(context.Background(), pie.NewBuilder().Build(), Options{})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	var tagged *mermaid.Error
	if !errors.As(err, &tagged) || tagged.Kind != mermaid.KindRender {
		t.Errorf("expected render-kind error, got %v", err)
	}
}
