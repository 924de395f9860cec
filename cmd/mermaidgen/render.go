package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

var renderCmd = &cobra.Command{
	Use:   "render [FILE]",
	Short: "Render a raw .mmd file or mermaid string",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	script, err := renderScript(cmd, args)
	if err != nil {
		return err
	}
	return emit(mermaid.NewRaw("", script))
}

// renderScript resolves the input sources in priority order: the
// --mermaid flag, then a file argument, then stdin.
func renderScript(cmd *cobra.Command, args []string) (string, error) {
	if text, ok := rawMermaid(cmd); ok {
		return text, nil
	}

	if len(args) > 0 {
		// The argument is a file when one exists at that path, raw
		// mermaid text otherwise.
		if _, statErr := os.Stat(args[0]); statErr != nil {
			return args[0], nil
		}
		data, err := os.ReadFile(args[0]) // #nosec G304
		if err != nil {
			return "", mermaid.Wrap(mermaid.KindParse, err, "reading %s", args[0])
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mermaid.Wrap(mermaid.KindParse, err, "reading stdin")
	}
	if len(data) == 0 {
		return "", mermaid.Errorf(mermaid.KindInvalidSpec,
			"no input provided: use --mermaid, provide a file, or pipe to stdin")
	}
	return string(data), nil
}

func init() {
	renderCmd.Flags().Bool("stdin", false, "Read raw mermaid from stdin")
	renderCmd.Flags().String("mermaid", "", "Raw mermaid string to render")
}
