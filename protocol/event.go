package protocol

import (
	"strconv"
	"strings"
)

const (
	ActionStop      = "stop"
	ActionStart     = "start"
	ActionFinish    = "finish"
	ActionTerminate = "terminate"
	ActionSetID     = "set_id"
)

var (
	_ Event = &Stop{}
	_ Event = &Start{}
	_ Event = &Finish{}
	_ Event = &Terminate{}
	_ Event = &SetID{}
	_ Event = &Unknown{}
)

// Event is a group transition sent by groupd to the client.
type Event interface {
	Action() string
	isEvent()
}

// Stop asks the client to suspend activity in the group.
type Stop struct {
	Group string
}

func (*Stop) Action() string { return ActionStop }
func (*Stop) isEvent()       {}

// Start announces a new membership transition. The client is expected to
// acknowledge it with a done command carrying the same EventNr.
type Start struct {
	Group   string
	Type    int
	EventNr int
	NodeIDs []int
}

func (*Start) Action() string { return ActionStart }
func (*Start) isEvent()       {}

// Finish tells the client that every member acknowledged the transition.
type Finish struct {
	Group   string
	EventNr int
}

func (*Finish) Action() string { return ActionFinish }
func (*Finish) isEvent()       {}

// Terminate means the client has been removed from the group.
type Terminate struct {
	Group string
}

func (*Terminate) Action() string { return ActionTerminate }
func (*Terminate) isEvent()       {}

// SetID assigns the global id of the group.
type SetID struct {
	Group string
	ID    int
}

func (*SetID) Action() string { return ActionSetID }
func (*SetID) isEvent()       {}

// Unknown carries a line with an action this client does not understand.
// Such events are dropped so that groupd can add new kinds without breaking
// older clients.
type Unknown struct {
	Name string
	Args []string
}

func (u *Unknown) Action() string { return u.Name }
func (*Unknown) isEvent()         {}

// EncodeEvent formats the event as a protocol line without the terminator.
func EncodeEvent(e Event) string {
	switch event := e.(type) {
	case *Stop:
		return ActionStop + " " + event.Group
	case *Start:
		var b strings.Builder

		b.WriteString(ActionStart)
		b.WriteByte(' ')
		b.WriteString(event.Group)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(event.Type))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(event.EventNr))

		for _, id := range event.NodeIDs {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(id))
		}

		return b.String()
	case *Finish:
		return ActionFinish + " " + event.Group + " " + strconv.Itoa(event.EventNr)
	case *Terminate:
		return ActionTerminate + " " + event.Group
	case *SetID:
		return ActionSetID + " " + event.Group + " " + strconv.Itoa(event.ID)
	case *Unknown:
		return strings.Join(append([]string{event.Name}, event.Args...), " ")
	default:
		panic("EncodeEvent: unknown event type")
	}
}

// Decoder turns protocol lines received from groupd into events.
type Decoder struct {
	// MaxTokens bounds the number of tokens taken from a line, extra
	// tokens are ignored. Zero means DefaultMaxTokens.
	MaxTokens int

	// Strict makes the decoder reject missing arguments and numbers that
	// do not parse. Otherwise they silently become empty strings and zeros.
	Strict bool
}

// Decode parses a single line. Lines with an unrecognized action decode to
// *Unknown. The error is always nil unless Strict is set.
func (d Decoder) Decode(line string) (Event, error) {
	maxTokens := d.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	tokens := Tokenize(line, maxTokens)
	if len(tokens) == 0 {
		return &Unknown{}, nil
	}

	a := &args{tokens: tokens, strict: d.Strict}

	var event Event

	switch tokens[0] {
	case ActionStop:
		event = &Stop{Group: a.str(1)}
	case ActionStart:
		event = &Start{
			Group:   a.str(1),
			Type:    a.num(2),
			EventNr: a.num(3),
			NodeIDs: a.ints(4),
		}
	case ActionFinish:
		event = &Finish{Group: a.str(1), EventNr: a.num(2)}
	case ActionTerminate:
		event = &Terminate{Group: a.str(1)}
	case ActionSetID:
		event = &SetID{Group: a.str(1), ID: a.num(2)}
	default:
		return &Unknown{Name: tokens[0], Args: tokens[1:]}, nil
	}

	if a.err != nil {
		return nil, a.err
	}

	return event, nil
}
