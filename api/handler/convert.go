package handler

import (
	"github.com/maxpoletaev/libgroup/api/model"
	"github.com/maxpoletaev/libgroup/tracker"
)

func toModelGroup(g tracker.Group) model.Group {
	members := g.Members
	if members == nil {
		members = []int{}
	}

	return model.Group{
		Name:       g.Name,
		ID:         g.ID,
		Status:     g.Status.String(),
		EventNr:    g.EventNr,
		EventType:  g.EventType,
		FinishedNr: g.FinishedNr,
		Members:    members,
	}
}

func toModelEvent(n tracker.Notification) model.Event {
	return model.Event{
		Action: n.Action,
		Group:  n.Group,
		Line:   n.Line,
		Time:   n.Time.UnixMilli(),
	}
}
