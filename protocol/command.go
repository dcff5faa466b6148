package protocol

import (
	"fmt"
	"strconv"
)

const (
	CommandSetup = "setup"
	CommandJoin  = "join"
	CommandLeave = "leave"
	CommandDone  = "done"
)

var (
	_ Command = &Setup{}
	_ Command = &Join{}
	_ Command = &Leave{}
	_ Command = &Done{}
)

// Command is a request sent by the client to groupd.
type Command interface {
	isCommand()
}

// Setup is the handshake line, sent once right after connecting.
type Setup struct {
	Name  string
	Level int
}

func (*Setup) isCommand() {}

type Join struct {
	Group string
}

func (*Join) isCommand() {}

type Leave struct {
	Group string
}

func (*Leave) isCommand() {}

// Done acknowledges that the client has processed the start event EventNr.
type Done struct {
	Group   string
	EventNr int
}

func (*Done) isCommand() {}

// EncodeCommand formats the command as a protocol line without the terminator.
func EncodeCommand(c Command) string {
	switch cmd := c.(type) {
	case *Setup:
		return CommandSetup + " " + cmd.Name + " " + strconv.Itoa(cmd.Level)
	case *Join:
		return CommandJoin + " " + cmd.Group
	case *Leave:
		return CommandLeave + " " + cmd.Group
	case *Done:
		return CommandDone + " " + cmd.Group + " " + strconv.Itoa(cmd.EventNr)
	default:
		panic("EncodeCommand: unknown command type")
	}
}

// DecodeCommand parses a command line the way groupd sees it. Unlike event
// decoding it is always strict.
func DecodeCommand(line string) (Command, error) {
	tokens := Tokenize(line, DefaultMaxTokens)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrMalformed)
	}

	a := &args{tokens: tokens, strict: true}

	var (
		cmd   Command
		arity int
	)

	switch tokens[0] {
	case CommandSetup:
		cmd, arity = &Setup{Name: a.str(1), Level: a.num(2)}, 3
	case CommandJoin:
		cmd, arity = &Join{Group: a.str(1)}, 2
	case CommandLeave:
		cmd, arity = &Leave{Group: a.str(1)}, 2
	case CommandDone:
		cmd, arity = &Done{Group: a.str(1), EventNr: a.num(2)}, 3
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, tokens[0])
	}

	if a.err != nil {
		return nil, a.err
	}

	if len(tokens) != arity {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrMalformed, tokens[0], arity-1, len(tokens)-1)
	}

	return cmd, nil
}
