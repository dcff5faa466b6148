// Package tracker keeps the last known state of every group a session takes
// part in, built from the events dispatched by groupd.
package tracker

import (
	"fmt"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/maxpoletaev/libgroup/client"
	"github.com/maxpoletaev/libgroup/protocol"
)

var _ client.Handler = &Tracker{}

// Group is a snapshot of a group state.
type Group struct {
	Name       string `json:"name"`
	ID         int    `json:"id"`
	Status     Status `json:"status"`
	EventNr    int    `json:"event_nr"`
	EventType  int    `json:"event_type"`
	FinishedNr int    `json:"finished_nr"`
	Members    []int  `json:"members"`
}

func (g Group) clone() Group {
	g.Members = append([]int{}, g.Members...)
	return g
}

// Notification is published to subscribers for every dispatched event.
type Notification struct {
	Action string    `json:"action"`
	Group  string    `json:"group"`
	Line   string    `json:"line"`
	Time   time.Time `json:"time"`
}

type Config struct {
	// AutoAck makes the tracker acknowledge every start event with a done
	// command as soon as it is received.
	AutoAck bool

	// SubscriberBuffer is the number of notifications queued per
	// subscriber. Notifications for a full subscriber are dropped.
	SubscriberBuffer int

	Metrics *Metrics
	Logger  kitlog.Logger
}

func DefaultConfig() Config {
	return Config{
		SubscriberBuffer: 64,
		Logger:           kitlog.NewNopLogger(),
	}
}

// Tracker implements client.Handler. Handler methods are called from the
// dispatching goroutine while readers may query the state concurrently.
type Tracker struct {
	mut     sync.RWMutex
	groups  map[string]*Group
	subs    map[int]chan Notification
	nextSub int
	conf    Config
}

func New(conf Config) *Tracker {
	if conf.Logger == nil {
		conf.Logger = kitlog.NewNopLogger()
	}

	if conf.SubscriberBuffer <= 0 {
		conf.SubscriberBuffer = DefaultConfig().SubscriberBuffer
	}

	return &Tracker{
		groups: make(map[string]*Group),
		subs:   make(map[int]chan Notification),
		conf:   conf,
	}
}

// Joining registers a group for which a join request has been sent but no
// events have arrived yet.
func (t *Tracker) Joining(name string) {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.group(name).Status = StatusJoining
}

// Forget removes the group from the tracker, typically after leaving it.
func (t *Tracker) Forget(name string) {
	t.mut.Lock()
	defer t.mut.Unlock()

	delete(t.groups, name)
	t.conf.Metrics.setGroups(len(t.groups))
}

// group must be called with the lock held.
func (t *Tracker) group(name string) *Group {
	g, ok := t.groups[name]
	if !ok {
		g = &Group{Name: name, Members: []int{}}
		t.groups[name] = g
		t.conf.Metrics.setGroups(len(t.groups))
	}

	return g
}

// Groups returns all known groups sorted by name.
func (t *Tracker) Groups() []Group {
	t.mut.RLock()
	defer t.mut.RUnlock()

	names := maps.Keys(t.groups)
	slices.Sort(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, t.groups[name].clone())
	}

	return groups
}

func (t *Tracker) Group(name string) (Group, bool) {
	t.mut.RLock()
	defer t.mut.RUnlock()

	g, ok := t.groups[name]
	if !ok {
		return Group{}, false
	}

	return g.clone(), true
}

// Subscribe returns a channel receiving notifications about new events and a
// function to cancel the subscription.
func (t *Tracker) Subscribe() (<-chan Notification, func()) {
	t.mut.Lock()
	defer t.mut.Unlock()

	id := t.nextSub
	t.nextSub++

	ch := make(chan Notification, t.conf.SubscriberBuffer)
	t.subs[id] = ch

	var once sync.Once

	cancel := func() {
		once.Do(func() {
			t.mut.Lock()
			delete(t.subs, id)
			t.mut.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// record must be called with the lock held.
func (t *Tracker) record(group string, event protocol.Event) {
	t.conf.Metrics.event(event.Action())

	n := Notification{
		Action: event.Action(),
		Group:  group,
		Line:   protocol.EncodeEvent(event),
		Time:   time.Now(),
	}

	for id, ch := range t.subs {
		select {
		case ch <- n:
		default:
			level.Warn(t.conf.Logger).Log("msg", "subscriber is too slow, dropping notification", "subscriber", id)
		}
	}

	level.Info(t.conf.Logger).Log("msg", "group event", "group", group, "event", n.Line)
}

func (t *Tracker) Stop(s *client.Session, event *protocol.Stop) error {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.group(event.Group).Status = StatusStopped
	t.record(event.Group, event)

	return nil
}

func (t *Tracker) Start(s *client.Session, event *protocol.Start) error {
	t.mut.Lock()

	g := t.group(event.Group)
	g.Status = StatusStarting
	g.EventNr = event.EventNr
	g.EventType = event.Type
	g.Members = append([]int{}, event.NodeIDs...)
	t.record(event.Group, event)

	t.mut.Unlock()

	if !t.conf.AutoAck {
		return nil
	}

	if _, err := s.Done(event.Group, event.EventNr); err != nil {
		return fmt.Errorf("failed to acknowledge event %d of group %s: %w", event.EventNr, event.Group, err)
	}

	t.conf.Metrics.ack()

	return nil
}

func (t *Tracker) Finish(s *client.Session, event *protocol.Finish) error {
	t.mut.Lock()
	defer t.mut.Unlock()

	g := t.group(event.Group)
	g.Status = StatusRunning
	g.FinishedNr = event.EventNr
	t.record(event.Group, event)

	return nil
}

func (t *Tracker) Terminate(s *client.Session, event *protocol.Terminate) error {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.group(event.Group).Status = StatusTerminated
	t.record(event.Group, event)

	return nil
}

func (t *Tracker) SetID(s *client.Session, event *protocol.SetID) error {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.group(event.Group).ID = event.ID
	t.record(event.Group, event)

	return nil
}
