package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// addInputFlags registers the input flags shared by every diagram
// sub-command: a spec file, stdin, or raw Mermaid passthrough.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Read diagram definition from JSON/YAML/TOML file")
	cmd.Flags().Bool("stdin", false, "Read diagram definition from stdin (JSON/YAML)")
	cmd.Flags().String("mermaid", "", "Raw mermaid syntax passthrough")
}

// readSpec resolves --input and --stdin into document bytes plus the
// format name ("json", "yaml" or "toml"). ok is false when neither
// input source was requested. The file extension selects the format;
// stdin content is sniffed, with a leading brace meaning JSON.
func readSpec(cmd *cobra.Command) (data []byte, format string, ok bool, err error) {
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		data, err = os.ReadFile(path) // #nosec G304
		if err != nil {
			return nil, "", true, mermaid.Wrap(mermaid.KindParse, err, "reading %s", path)
		}

		switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
		case "json":
			return data, "json", true, nil
		case "yaml", "yml", "":
			return data, "yaml", true, nil
		case "toml":
			return data, "toml", true, nil
		default:
			return nil, "", true, mermaid.Errorf(mermaid.KindUnsupportedFormat,
				"unsupported input format %q", ext)
		}
	}

	if useStdin, _ := cmd.Flags().GetBool("stdin"); useStdin {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", true, mermaid.Wrap(mermaid.KindParse, err, "reading stdin")
		}
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			return data, "json", true, nil
		}
		return data, "yaml", true, nil
	}

	return nil, "", false, nil
}

// rawMermaid returns the --mermaid passthrough text if one was given.
func rawMermaid(cmd *cobra.Command) (string, bool) {
	text, _ := cmd.Flags().GetString("mermaid")
	return text, text != ""
}
