package entity

// Status is the closed set of kitchen states. The forward flow is a linear
// chain (PENDING -> STARTED -> COMPLETED -> READY); a manual override may
// still force any member from any current state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusStarted   Status = "STARTED"
	StatusCompleted Status = "COMPLETED"
	StatusReady     Status = "READY"
)

var forwardStatus = map[Status]Status{
	StatusPending:   StatusStarted,
	StatusStarted:   StatusCompleted,
	StatusCompleted: StatusReady,
}

// Next returns the forward transition, false when there is none (READY).
func (s Status) Next() (Status, bool) {
	n, ok := forwardStatus[s]
	return n, ok
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusStarted, StatusCompleted, StatusReady:
		return true
	}
	return false
}

// ParseStatus rejects anything outside the four-value enum.
func ParseStatus(v string) (Status, bool) {
	s := Status(v)
	return s, s.Valid()
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusStarted, StatusCompleted, StatusReady}
}
