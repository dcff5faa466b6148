package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecoder_Decode(t *testing.T) {
	tests := map[string]struct {
		line string
		want Event
	}{
		"Stop": {
			line: "stop g1",
			want: &Stop{Group: "g1"},
		},
		"Start": {
			line: "start g1 1 5 10 11 12",
			want: &Start{Group: "g1", Type: 1, EventNr: 5, NodeIDs: []int{10, 11, 12}},
		},
		"StartNoNodes": {
			line: "start g1 2 6",
			want: &Start{Group: "g1", Type: 2, EventNr: 6, NodeIDs: []int{}},
		},
		"Finish": {
			line: "finish g1 5",
			want: &Finish{Group: "g1", EventNr: 5},
		},
		"Terminate": {
			line: "terminate g1",
			want: &Terminate{Group: "g1"},
		},
		"SetID": {
			line: "set_id g1 65538",
			want: &SetID{Group: "g1", ID: 65538},
		},
		"ExtraWhitespace": {
			line: "  finish   g1\t7 ",
			want: &Finish{Group: "g1", EventNr: 7},
		},
		"Unknown": {
			line: "frobnicate x y",
			want: &Unknown{Name: "frobnicate", Args: []string{"x", "y"}},
		},
		"Empty": {
			line: "",
			want: &Unknown{},
		},
		"MalformedNumbersBecomeZero": {
			line: "start g1 x 5abc -3 zz",
			want: &Start{Group: "g1", Type: 0, EventNr: 5, NodeIDs: []int{-3, 0}},
		},
		"MissingArguments": {
			line: "set_id",
			want: &SetID{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			event, err := Decoder{}.Decode(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, event)
		})
	}
}

func TestDecoder_DecodeStrict(t *testing.T) {
	dec := Decoder{Strict: true}

	tests := map[string]struct {
		line    string
		wantErr bool
	}{
		"Valid":         {line: "start g1 1 5 10 11", wantErr: false},
		"BadNodeID":     {line: "start g1 1 5 10 x", wantErr: true},
		"BadEventNr":    {line: "finish g1 5abc", wantErr: true},
		"MissingGroup":  {line: "stop", wantErr: true},
		"MissingID":     {line: "set_id g1", wantErr: true},
		"UnknownAction": {line: "frobnicate", wantErr: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := dec.Decode(tt.line)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformed)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDecoder_MaxTokens(t *testing.T) {
	dec := Decoder{MaxTokens: 6}

	event, err := dec.Decode("start g1 1 5 10 11 12 13")
	require.NoError(t, err)
	require.Equal(t, []int{10, 11}, event.(*Start).NodeIDs)
}

func TestEncodeEvent_RoundTrip(t *testing.T) {
	events := []Event{
		&Stop{Group: "g1"},
		&Start{Group: "g1", Type: 1, EventNr: 5, NodeIDs: []int{10, 11, 12}},
		&Start{Group: "g2", Type: 0, EventNr: 1, NodeIDs: []int{}},
		&Finish{Group: "g1", EventNr: 5},
		&Terminate{Group: "g1"},
		&SetID{Group: "g1", ID: 3},
	}

	for _, event := range events {
		decoded, err := Decoder{Strict: true}.Decode(EncodeEvent(event))
		require.NoError(t, err)
		require.Equal(t, event, decoded)
	}

	require.Equal(t, "start g1 1 5 10 11 12", EncodeEvent(events[1]))
}

func TestAtoi(t *testing.T) {
	tests := map[string]int{
		"42":    42,
		"-7":    -7,
		"+3":    3,
		"12abc": 12,
		"abc":   0,
		"":      0,
		"-":     0,
	}

	for in, want := range tests {
		require.Equal(t, want, atoi(in), "atoi(%q)", in)
	}
}
