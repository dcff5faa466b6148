package handler

//go:generate mockgen -source=facilities.go -destination=facilities_mock_test.go -package=handler

import (
	"github.com/maxpoletaev/libgroup/tracker"
)

// GroupSource provides the group state exposed over HTTP.
type GroupSource interface {
	Groups() []tracker.Group
	Group(name string) (tracker.Group, bool)
	Subscribe() (<-chan tracker.Notification, func())
}
