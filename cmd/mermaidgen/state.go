package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/internal/specparse"
	"github.com/toozej/mermaidgen/pkg/mermaid"
	"github.com/toozej/mermaidgen/pkg/mermaid/state"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Generate a state diagram",
	Args:  cobra.NoArgs,
	RunE:  runState,
}

func runState(cmd *cobra.Command, args []string) error {
	if text, ok := rawMermaid(cmd); ok {
		return emit(state.FromRawMermaid(text))
	}

	diagram, err := buildState(cmd)
	if err != nil {
		return err
	}
	if diagram.Theme == nil {
		diagram.Theme = themeConfig()
	}
	return emit(diagram)
}

func buildState(cmd *cobra.Command) (*state.Diagram, error) {
	if data, format, ok, err := readSpec(cmd); ok {
		if err != nil {
			return nil, err
		}
		return decodeState(data, format)
	}

	builder := state.NewBuilder()
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		builder.Title(title)
	}
	if dirFlag, _ := cmd.Flags().GetString("direction"); dirFlag != "" {
		dir, err := mermaid.ParseDirection(dirFlag)
		if err != nil {
			return nil, mermaid.Wrap(mermaid.KindParse, err, "parsing --direction")
		}
		builder.Direction(dir)
	}

	states, _ := cmd.Flags().GetStringArray("state")
	for _, spec := range states {
		st, err := specparse.State(spec)
		if err != nil {
			return nil, err
		}
		if st.Description != "" {
			builder.StateWithDescription(st.ID, st.Description)
		} else {
			builder.State(st.ID)
		}
	}

	transitions, _ := cmd.Flags().GetStringArray("transition")
	for _, spec := range transitions {
		tr, err := specparse.Transition(spec)
		if err != nil {
			return nil, err
		}
		if tr.Label != "" {
			builder.TransitionWithLabel(tr.From, tr.To, tr.Label)
		} else {
			builder.Transition(tr.From, tr.To)
		}
	}

	return builder.Build(), nil
}

func decodeState(data []byte, format string) (*state.Diagram, error) {
	switch format {
	case "json":
		return state.FromJSON(data)
	case "toml":
		return state.FromTOML(data)
	default:
		return state.FromYAML(data)
	}
}

func init() {
	addInputFlags(stateCmd)
	stateCmd.Flags().String("title", "", "Diagram title")
	stateCmd.Flags().String("direction", "", "Layout direction (TB, BT, LR, RL)")
	stateCmd.Flags().StringArray("state", nil, `Add state: "id[:description]" ("[*]" accepted)`)
	stateCmd.Flags().StringArray("transition", nil, `Add transition: "from->to[:label]"`)
}
