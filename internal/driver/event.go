package driver

// Status tracks one file through a lint run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusLinting
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusLinting:
		return "linting"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Event reports per-file progress. Findings is only meaningful for
// StatusDone.
type Event struct {
	File     string
	Status   Status
	Findings int
}

// emit sends an event when a progress channel is attached.
func emit(ch chan<- Event, ev Event) {
	if ch == nil {
		return
	}
	ch <- ev
}
