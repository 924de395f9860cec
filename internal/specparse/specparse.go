// Package specparse parses the colon-delimited fragment flags the CLI
// accepts for building diagrams inline, such as "id:label:shape" for a
// flowchart node or "from->to:style:label" for a link. Parse errors
// echo the offending fragment so the user can see which flag value was
// rejected.
package specparse

import (
	"strconv"
	"strings"

	"github.com/toozej/mermaidgen/pkg/mermaid"
	"github.com/toozej/mermaidgen/pkg/mermaid/er"
	"github.com/toozej/mermaidgen/pkg/mermaid/flowchart"
	"github.com/toozej/mermaidgen/pkg/mermaid/journey"
	"github.com/toozej/mermaidgen/pkg/mermaid/mindmap"
	"github.com/toozej/mermaidgen/pkg/mermaid/pie"
	"github.com/toozej/mermaidgen/pkg/mermaid/requirement"
	"github.com/toozej/mermaidgen/pkg/mermaid/sequence"
	"github.com/toozej/mermaidgen/pkg/mermaid/state"
)

// splitArrow splits "from->rest" fragments on the first "->".
func splitArrow(spec, kind string) (from, rest string, err error) {
	pos := strings.Index(spec, "->")
	if pos < 0 {
		return "", "", mermaid.Errorf(mermaid.KindParse,
			"invalid %s spec %q: expected '->' between endpoints", kind, spec)
	}
	return strings.TrimSpace(spec[:pos]), spec[pos+2:], nil
}

// Entity parses "name" or "name:attr:type[:KEY],attr:type,...".
func Entity(spec string) (er.Entity, error) {
	parts := strings.SplitN(spec, ":", 2)
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return er.Entity{}, mermaid.Errorf(mermaid.KindParse,
			"invalid entity spec %q: missing name", spec)
	}

	entity := er.Entity{Name: name}
	if len(parts) < 2 || parts[1] == "" {
		return entity, nil
	}

	for _, attrSpec := range strings.Split(parts[1], ",") {
		attrParts := strings.Split(attrSpec, ":")
		attr := er.Attribute{
			Name: strings.TrimSpace(attrParts[0]),
			Type: "string",
		}
		if len(attrParts) > 1 && strings.TrimSpace(attrParts[1]) != "" {
			attr.Type = strings.TrimSpace(attrParts[1])
		}
		if len(attrParts) > 2 {
			switch strings.ToUpper(strings.TrimSpace(attrParts[2])) {
			case "PK":
				attr.Key = er.PrimaryKey
			case "FK":
				attr.Key = er.ForeignKey
			case "UK":
				attr.Key = er.UniqueKey
			}
		}
		entity.Attributes = append(entity.Attributes, attr)
	}

	return entity, nil
}

// ERRelationship parses "from->to[:type[:label]]" where type is one of
// one-to-one, one-to-many, many-to-one, many-to-many or the 1:1 / 1:n /
// n:1 / n:n shorthands. The default is one-to-many.
func ERRelationship(spec string) (er.Relationship, error) {
	from, rest, err := splitArrow(spec, "relationship")
	if err != nil {
		return er.Relationship{}, err
	}

	parts := strings.SplitN(rest, ":", 3)
	rel := er.Relationship{
		From:        from,
		To:          strings.TrimSpace(parts[0]),
		FromCard:    er.ExactlyOne,
		ToCard:      er.ZeroOrMore,
		Identifying: true,
	}

	if len(parts) > 1 && parts[1] != "" {
		relType := strings.ToLower(strings.TrimSpace(parts[1]))
		label := ""
		if len(parts) > 2 {
			label = parts[2]
		}

		// Shorthands like "1:1" straddle the colon delimiter, so the
		// second half lands in the label slot and must be recombined.
		if relType == "1" || relType == "n" || relType == "m" {
			sub := strings.SplitN(label, ":", 2)
			relType += ":" + strings.ToLower(strings.TrimSpace(sub[0]))
			if len(sub) > 1 {
				label = sub[1]
			} else {
				label = ""
			}
		}

		switch relType {
		case "one-to-one", "1:1":
			rel.FromCard, rel.ToCard = er.ExactlyOne, er.ExactlyOne
		case "one-to-many", "1:n", "1:m":
			rel.FromCard, rel.ToCard = er.ExactlyOne, er.ZeroOrMore
		case "many-to-one", "n:1", "m:1":
			rel.FromCard, rel.ToCard = er.ZeroOrMore, er.ExactlyOne
		case "many-to-many", "n:n", "m:m":
			rel.FromCard, rel.ToCard = er.ZeroOrMore, er.ZeroOrMore
		}

		if label != "" {
			rel.Label = strings.TrimSpace(label)
		}
	}

	return rel, nil
}

// FlowchartNode parses "id[:label[:shape]]". A missing label falls back
// to the id.
func FlowchartNode(spec string) (flowchart.Node, error) {
	parts := strings.SplitN(spec, ":", 3)
	id := strings.TrimSpace(parts[0])
	if id == "" {
		return flowchart.Node{}, mermaid.Errorf(mermaid.KindParse,
			"invalid node spec %q: missing id", spec)
	}

	node := flowchart.Node{ID: id, Label: id}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		node.Label = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		shape, err := flowchart.ParseShape(strings.TrimSpace(parts[2]))
		if err != nil {
			return flowchart.Node{}, mermaid.Errorf(mermaid.KindParse,
				"invalid node spec %q: %v", spec, err)
		}
		node.Shape = shape
	}

	return node, nil
}

// FlowchartLink parses "from->to[:style[:label]]".
func FlowchartLink(spec string) (flowchart.Link, error) {
	from, rest, err := splitArrow(spec, "link")
	if err != nil {
		return flowchart.Link{}, err
	}

	parts := strings.SplitN(rest, ":", 3)
	link := flowchart.Link{From: from, To: strings.TrimSpace(parts[0])}

	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		style, err := flowchart.ParseLinkStyle(strings.TrimSpace(parts[1]))
		if err != nil {
			return flowchart.Link{}, mermaid.Errorf(mermaid.KindParse,
				"invalid link spec %q: %v", spec, err)
		}
		link.Style = style
	}
	if len(parts) > 2 && parts[2] != "" {
		link.Label = strings.TrimSpace(parts[2])
	}

	return link, nil
}

// FlowchartSubgraph parses "id[:title[:node1,node2,...]]".
func FlowchartSubgraph(spec string) (flowchart.Subgraph, error) {
	parts := strings.SplitN(spec, ":", 3)
	id := strings.TrimSpace(parts[0])
	if id == "" {
		return flowchart.Subgraph{}, mermaid.Errorf(mermaid.KindParse,
			"invalid subgraph spec %q: missing id", spec)
	}

	sg := flowchart.Subgraph{ID: id}
	if len(parts) > 1 && parts[1] != "" {
		sg.SubTitle = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 && parts[2] != "" {
		for _, node := range strings.Split(parts[2], ",") {
			sg.Nodes = append(sg.Nodes, strings.TrimSpace(node))
		}
	}

	return sg, nil
}

// JourneyTask parses "name:score" or "name:score:actor1,actor2". The
// score is clamped to the 0..5 range by the journey package.
func JourneyTask(spec string) (journey.Task, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return journey.Task{}, mermaid.Errorf(mermaid.KindParse,
			"invalid task spec %q: expected 'name:score' or 'name:score:actors'", spec)
	}

	name := strings.TrimSpace(parts[0])
	score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return journey.Task{}, mermaid.Errorf(mermaid.KindParse,
			"invalid score in task spec %q", spec)
	}

	var actors []string
	if len(parts) > 2 && parts[2] != "" {
		for _, actor := range strings.Split(parts[2], ",") {
			actors = append(actors, strings.TrimSpace(actor))
		}
	}

	return journey.NewTask(name, score, actors...), nil
}

// MindmapNode parses "parent:text[:shape]" and returns the parent text
// alongside the parsed node.
func MindmapNode(spec string) (parent string, node mindmap.Node, err error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", mindmap.Node{}, mermaid.Errorf(mermaid.KindParse,
			"invalid mindmap node spec %q: expected 'parent:text' or 'parent:text:shape'", spec)
	}

	parent = strings.TrimSpace(parts[0])
	node = mindmap.Node{Text: strings.TrimSpace(parts[1])}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		shape, err := mindmap.ParseShape(strings.TrimSpace(parts[2]))
		if err != nil {
			return "", mindmap.Node{}, mermaid.Errorf(mermaid.KindParse,
				"invalid mindmap node spec %q: %v", spec, err)
		}
		node.Shape = shape
	}

	return parent, node, nil
}

// PieSlice parses "label:value".
func PieSlice(spec string) (pie.Slice, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return pie.Slice{}, mermaid.Errorf(mermaid.KindParse,
			"invalid data spec %q: expected 'label:value'", spec)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return pie.Slice{}, mermaid.Errorf(mermaid.KindParse,
			"invalid numeric value %q in data spec %q", parts[1], spec)
	}

	return pie.Slice{Label: strings.TrimSpace(parts[0]), Value: value}, nil
}

// Requirement parses "id:name" or "id:name:text:risk:verify".
func Requirement(spec string) (requirement.Requirement, error) {
	parts := strings.SplitN(spec, ":", 5)
	if len(parts) < 2 {
		return requirement.Requirement{}, mermaid.Errorf(mermaid.KindParse,
			"invalid requirement spec %q: expected 'id:name' or 'id:name:text:risk:verify'", spec)
	}

	req := requirement.Requirement{
		ID:   strings.TrimSpace(parts[0]),
		Name: strings.TrimSpace(parts[1]),
	}
	if len(parts) > 2 && parts[2] != "" {
		req.Text = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 && parts[3] != "" {
		if risk, err := requirement.ParseRisk(strings.TrimSpace(parts[3])); err == nil {
			req.Risk = risk
		}
	}
	if len(parts) > 4 && parts[4] != "" {
		if verify, err := requirement.ParseVerifyMethod(strings.TrimSpace(parts[4])); err == nil {
			req.VerifyMethod = verify
		}
	}

	return req, nil
}

// Element parses "id:name".
func Element(spec string) (requirement.Element, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) < 2 {
		return requirement.Element{}, mermaid.Errorf(mermaid.KindParse,
			"invalid element spec %q: expected 'id:name'", spec)
	}

	return requirement.Element{
		ID:   strings.TrimSpace(parts[0]),
		Name: strings.TrimSpace(parts[1]),
	}, nil
}

// ReqRelationship parses "from->to[:type]". An unknown or missing type
// defaults to satisfies.
func ReqRelationship(spec string) (requirement.Relationship, error) {
	from, rest, err := splitArrow(spec, "relationship")
	if err != nil {
		return requirement.Relationship{}, err
	}

	parts := strings.SplitN(rest, ":", 2)
	rel := requirement.Relationship{
		From: from,
		To:   strings.TrimSpace(parts[0]),
		Type: requirement.Satisfies,
	}

	if len(parts) > 1 && parts[1] != "" {
		if relType, err := requirement.ParseRelationType(strings.TrimSpace(parts[1])); err == nil {
			rel.Type = relType
		}
	}

	return rel, nil
}

// Participant parses "id[:label]" for sequence participants and actors.
func Participant(spec string, typ sequence.ParticipantType) (sequence.Participant, error) {
	parts := strings.SplitN(spec, ":", 2)
	id := strings.TrimSpace(parts[0])
	if id == "" {
		return sequence.Participant{}, mermaid.Errorf(mermaid.KindParse,
			"invalid participant spec %q: missing id", spec)
	}

	participant := sequence.Participant{ID: id, Type: typ}
	if len(parts) > 1 && parts[1] != "" {
		participant.Label = strings.TrimSpace(parts[1])
	}

	return participant, nil
}

// Message parses "from->to[:type[:text]]".
func Message(spec string) (sequence.Message, error) {
	from, rest, err := splitArrow(spec, "message")
	if err != nil {
		return sequence.Message{}, err
	}

	parts := strings.SplitN(rest, ":", 3)
	msg := sequence.Message{From: from, To: strings.TrimSpace(parts[0])}

	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		msgType, err := sequence.ParseMessageType(strings.TrimSpace(parts[1]))
		if err != nil {
			return sequence.Message{}, mermaid.Errorf(mermaid.KindParse,
				"invalid message spec %q: %v", spec, err)
		}
		msg.Type = msgType
	}
	if len(parts) > 2 && parts[2] != "" {
		msg.Text = strings.TrimSpace(parts[2])
	}

	return msg, nil
}

// SequenceNote parses "position:participant:text".
func SequenceNote(spec string) (sequence.Note, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 3 {
		return sequence.Note{}, mermaid.Errorf(mermaid.KindParse,
			"invalid note spec %q: expected 'position:participant:text'", spec)
	}

	position, err := sequence.ParseNotePosition(strings.TrimSpace(parts[0]))
	if err != nil {
		position = sequence.NoteOver
	}

	return sequence.Note{
		Position: position,
		Over:     []string{strings.TrimSpace(parts[1])},
		Text:     strings.TrimSpace(parts[2]),
	}, nil
}

// State parses "id[:description]". The "[*]" pseudostate is accepted
// and carries no description.
func State(spec string) (state.State, error) {
	parts := strings.SplitN(spec, ":", 2)
	id := strings.TrimSpace(parts[0])
	if id == "" {
		return state.State{}, mermaid.Errorf(mermaid.KindParse,
			"invalid state spec %q: missing id", spec)
	}

	st := state.State{ID: id}
	if id != state.StartEnd && len(parts) > 1 && parts[1] != "" {
		st.Description = strings.TrimSpace(parts[1])
	}

	return st, nil
}

// Transition parses "from->to[:label]". Either endpoint may be "[*]".
func Transition(spec string) (state.Transition, error) {
	from, rest, err := splitArrow(spec, "transition")
	if err != nil {
		return state.Transition{}, err
	}

	parts := strings.SplitN(rest, ":", 2)
	tr := state.Transition{From: from, To: strings.TrimSpace(parts[0])}
	if len(parts) > 1 && parts[1] != "" {
		tr.Label = strings.TrimSpace(parts[1])
	}

	return tr, nil
}
