package tracker

type Status int

const (
	StatusJoining Status = iota + 1
	StatusStopped
	StatusStarting
	StatusRunning
	StatusTerminated
)

func (s Status) String() string {
	switch s {
	case StatusJoining:
		return "joining"
	case StatusStopped:
		return "stopped"
	case StatusStarting:
		return "starting"
	case StatusRunning:
		return "running"
	case StatusTerminated:
		return "terminated"
	default:
		return ""
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
