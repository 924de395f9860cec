package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/internal/specparse"
	"github.com/toozej/mermaidgen/pkg/mermaid/sequence"
)

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Generate a sequence diagram",
	Args:  cobra.NoArgs,
	RunE:  runSequence,
}

func runSequence(cmd *cobra.Command, args []string) error {
	if text, ok := rawMermaid(cmd); ok {
		return emit(sequence.FromRawMermaid(text))
	}

	diagram, err := buildSequence(cmd)
	if err != nil {
		return err
	}
	if diagram.Theme == nil {
		diagram.Theme = themeConfig()
	}
	return emit(diagram)
}

func buildSequence(cmd *cobra.Command) (*sequence.Diagram, error) {
	if data, format, ok, err := readSpec(cmd); ok {
		if err != nil {
			return nil, err
		}
		return decodeSequence(data, format)
	}

	builder := sequence.NewBuilder()
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		builder.Title(title)
	}
	if autonumber, _ := cmd.Flags().GetBool("autonumber"); autonumber {
		builder.Autonumber(true)
	}

	actors, _ := cmd.Flags().GetStringArray("actor")
	for _, spec := range actors {
		p, err := specparse.Participant(spec, sequence.TypeActor)
		if err != nil {
			return nil, err
		}
		if p.Label != "" {
			builder.ActorWithLabel(p.ID, p.Label)
		} else {
			builder.Actor(p.ID)
		}
	}

	participants, _ := cmd.Flags().GetStringArray("participant")
	for _, spec := range participants {
		p, err := specparse.Participant(spec, sequence.TypeParticipant)
		if err != nil {
			return nil, err
		}
		if p.Label != "" {
			builder.ParticipantWithLabel(p.ID, p.Label)
		} else {
			builder.Participant(p.ID)
		}
	}

	messages, _ := cmd.Flags().GetStringArray("message")
	for _, spec := range messages {
		msg, err := specparse.Message(spec)
		if err != nil {
			return nil, err
		}
		builder.Message(msg)
	}

	notes, _ := cmd.Flags().GetStringArray("note")
	for _, spec := range notes {
		note, err := specparse.SequenceNote(spec)
		if err != nil {
			return nil, err
		}
		builder.Note(note)
	}

	return builder.Build(), nil
}

func decodeSequence(data []byte, format string) (*sequence.Diagram, error) {
	switch format {
	case "json":
		return sequence.FromJSON(data)
	case "toml":
		return sequence.FromTOML(data)
	default:
		return sequence.FromYAML(data)
	}
}

func init() {
	addInputFlags(sequenceCmd)
	sequenceCmd.Flags().String("title", "", "Diagram title")
	sequenceCmd.Flags().Bool("autonumber", false, "Number the messages")
	sequenceCmd.Flags().StringArray("actor", nil, `Add actor: "id[:label]"`)
	sequenceCmd.Flags().StringArray("participant", nil, `Add participant: "id[:label]"`)
	sequenceCmd.Flags().StringArray("message", nil, `Add message: "from->to[:type[:text]]"`)
	sequenceCmd.Flags().StringArray("note", nil, `Add note: "position:participant:text"`)
}
