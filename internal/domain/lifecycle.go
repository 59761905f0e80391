package domain

// RequestStatus is the lifecycle state of a mentorship request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// Valid reports whether the value is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected:
		return true
	}
	return false
}

// RequestTransitionAllowed reports whether a request may move between the two
// states. Only the mentor-driven pending->accepted and pending->rejected
// transitions exist; accepted requests stay accepted forever (the linked
// session is the signal that scheduling happened) and rejected is terminal.
func RequestTransitionAllowed(from, to RequestStatus) bool {
	if from != RequestPending {
		return false
	}
	return to == RequestAccepted || to == RequestRejected
}

// RequestDeletable reports whether the owning mentee may still withdraw the
// request.
func RequestDeletable(status RequestStatus) bool {
	return status == RequestPending
}

// SessionStatus is the lifecycle state of a mentoring session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Valid reports whether the value is a known session status.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionScheduled, SessionCompleted, SessionCancelled:
		return true
	}
	return false
}

// SessionTransitionAllowed reports whether a session participant with the
// given role may move a session between the two states. Either party may
// cancel a scheduled session; only the mentor may mark it completed. Both
// completed and cancelled are terminal.
func SessionTransitionAllowed(from, to SessionStatus, actorIsMentor bool) bool {
	if from != SessionScheduled {
		return false
	}
	switch to {
	case SessionCancelled:
		return true
	case SessionCompleted:
		return actorIsMentor
	}
	return false
}

// Rateable reports whether a session in the given state can receive ratings.
func Rateable(status SessionStatus) bool {
	return status == SessionCompleted
}
