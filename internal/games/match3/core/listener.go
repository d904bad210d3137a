package core

// Listener receives state deltas from a session.
// Notifications reference cells by position; tokens are never handed out.
// Calls are synchronous and happen in mutation order.
type Listener interface {
	TokenCreated(p Pos, color int)
	// TokenMoved covers both swaps and falls.
	TokenMoved(from, to Pos)
	TokenRemoved(p Pos)
	ScoreChanged(total int)
	BoardReset()
}

// NopListener ignores all notifications.
type NopListener struct{}

func (NopListener) TokenCreated(Pos, int) {}
func (NopListener) TokenMoved(Pos, Pos) {}
func (NopListener) TokenRemoved(Pos) {}
func (NopListener) ScoreChanged(int) {}
func (NopListener) BoardReset() {}

// EventKind identifies a recorded notification.
type EventKind uint8

const (
	EventCreated EventKind = iota
	EventMoved
	EventRemoved
	EventScore
	EventReset
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "Created"
	case EventMoved:
		return "Moved"
	case EventRemoved:
		return "Removed"
	case EventScore:
		return "Score"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Event is one recorded notification. Fields not relevant to Kind are zero.
type Event struct {
	Kind  EventKind
	From  Pos // Moved source; position for Created and Removed
	To    Pos // Moved destination
	Color int // Created only
	Score int // Score only
}

// Recorder is a Listener that keeps every notification in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) TokenCreated(p Pos, color int) {
	r.Events = append(r.Events, Event{Kind: EventCreated, From: p, Color: color})
}

func (r *Recorder) TokenMoved(from, to Pos) {
	r.Events = append(r.Events, Event{Kind: EventMoved, From: from, To: to})
}

func (r *Recorder) TokenRemoved(p Pos) {
	r.Events = append(r.Events, Event{Kind: EventRemoved, From: p})
}

func (r *Recorder) ScoreChanged(total int) {
	r.Events = append(r.Events, Event{Kind: EventScore, Score: total})
}

func (r *Recorder) BoardReset() {
	r.Events = append(r.Events, Event{Kind: EventReset})
}

// Count returns how many events of the given kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Drain returns the recorded events and clears the log.
func (r *Recorder) Drain() []Event {
	events := r.Events
	r.Events = nil
	return events
}
