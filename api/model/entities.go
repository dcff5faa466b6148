package model

type Group struct {
	Name       string `json:"name"`
	ID         int    `json:"id"`
	Status     string `json:"status"`
	EventNr    int    `json:"event_nr"`
	EventType  int    `json:"event_type"`
	FinishedNr int    `json:"finished_nr"`
	Members    []int  `json:"members"`
}

type Event struct {
	Action string `json:"action"`
	Group  string `json:"group"`
	Line   string `json:"line"`
	Time   int64  `json:"time"`
}
