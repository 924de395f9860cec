// Package main provides diagram generation utilities for the mermaidgen project.
//
// This application generates architectural and component diagrams for the
// mermaidgen application using mermaidgen's own flowchart package. It creates
// visual representations of the project structure and component relationships
// to aid in documentation and understanding.
//
// The generated diagrams are saved as .mmd files in the docs/diagrams/
// directory and can be rendered with mermaidgen itself:
//
//	go run cmd/diagrams/main.go
//	mermaidgen render docs/diagrams/architecture.mmd -o docs/diagrams/architecture.svg
//
// This will generate:
//   - architecture.mmd: High-level architecture showing user interaction flow
//   - components.mmd: Component relationships and dependencies
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/toozej/mermaidgen/pkg/mermaid"
	"github.com/toozej/mermaidgen/pkg/mermaid/flowchart"
)

func main() {
	if err := os.MkdirAll("docs/diagrams", 0750); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}

	writeDiagram("architecture.mmd", architectureDiagram())
	writeDiagram("components.mmd", componentsDiagram())

	fmt.Println("Diagram .mmd files generated successfully in ./docs/diagrams/")
}

func writeDiagram(name string, d *flowchart.Diagram) {
	path := filepath.Join("docs", "diagrams", name)
	if err := os.WriteFile(path, []byte(mermaid.BuildScript(d)), 0600); err != nil {
		log.Fatal("Failed to write diagram:", err)
	}
}

// architectureDiagram describes the interaction flow between users, the CLI,
// and the external services mermaidgen talks to.
func architectureDiagram() *flowchart.Diagram {
	return flowchart.NewBuilder().
		Direction(mermaid.TopBottom).
		Node(flowchart.Node{ID: "user", Label: "User", Shape: flowchart.Stadium}).
		Node(flowchart.Node{ID: "cli", Label: "CLI Application"}).
		Node(flowchart.Node{ID: "config", Label: "Configuration (env/.env)"}).
		Node(flowchart.Node{ID: "builders", Label: "Diagram Builders"}).
		Node(flowchart.Node{ID: "tui", Label: "TUI Gallery (Bubbletea)"}).
		Node(flowchart.Node{ID: "ink", Label: "mermaid.ink Renderer"}).
		Node(flowchart.Node{ID: "out", Label: "Output (file/stdout/clipboard/browser)"}).
		Link(flowchart.Link{From: "user", To: "cli"}).
		Link(flowchart.Link{From: "cli", To: "config"}).
		Link(flowchart.Link{From: "cli", To: "builders"}).
		Link(flowchart.Link{From: "cli", To: "tui"}).
		Link(flowchart.Link{From: "builders", To: "ink", Label: "svg/png"}).
		Link(flowchart.Link{From: "builders", To: "out", Label: "mmd"}).
		Link(flowchart.Link{From: "ink", To: "out"}).
		Build()
}

// componentsDiagram maps the package layout and the dependencies between
// packages inside the repository.
func componentsDiagram() *flowchart.Diagram {
	return flowchart.NewBuilder().
		Direction(mermaid.LeftRight).
		Node(flowchart.Node{ID: "main", Label: "main.go"}).
		Node(flowchart.Node{ID: "cmd", Label: "cmd/mermaidgen"}).
		Node(flowchart.Node{ID: "config", Label: "pkg/config"}).
		Node(flowchart.Node{ID: "mermaidpkg", Label: "pkg/mermaid"}).
		Node(flowchart.Node{ID: "specparse", Label: "internal/specparse"}).
		Node(flowchart.Node{ID: "render", Label: "internal/render"}).
		Node(flowchart.Node{ID: "output", Label: "internal/output"}).
		Node(flowchart.Node{ID: "tui", Label: "internal/tui"}).
		Node(flowchart.Node{ID: "version", Label: "pkg/version"}).
		Node(flowchart.Node{ID: "man", Label: "pkg/man"}).
		Link(flowchart.Link{From: "main", To: "cmd"}).
		Link(flowchart.Link{From: "cmd", To: "config"}).
		Link(flowchart.Link{From: "cmd", To: "specparse"}).
		Link(flowchart.Link{From: "cmd", To: "mermaidpkg"}).
		Link(flowchart.Link{From: "cmd", To: "render"}).
		Link(flowchart.Link{From: "cmd", To: "output"}).
		Link(flowchart.Link{From: "cmd", To: "tui"}).
		Link(flowchart.Link{From: "cmd", To: "version"}).
		Link(flowchart.Link{From: "cmd", To: "man"}).
		Link(flowchart.Link{From: "specparse", To: "mermaidpkg"}).
		Link(flowchart.Link{From: "tui", To: "mermaidpkg"}).
		Build()
}
