// Package main provides the entry point for the mermaidgen CLI application.
// mermaidgen is a tool to build, render, and share Mermaid diagrams from the command line.
package main

import cmd "github.com/toozej/mermaidgen/cmd/mermaidgen"

func main() {
	cmd.Execute()
}
