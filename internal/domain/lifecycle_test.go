package domain

import "testing"

func TestRequestTransitionAllowed(t *testing.T) {
	tests := []struct {
		name string
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{name: "pending to accepted", from: RequestPending, to: RequestAccepted, want: true},
		{name: "pending to rejected", from: RequestPending, to: RequestRejected, want: true},
		{name: "accepted is final", from: RequestAccepted, to: RequestRejected, want: false},
		{name: "rejected is terminal", from: RequestRejected, to: RequestAccepted, want: false},
		{name: "no self transition", from: RequestPending, to: RequestPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequestTransitionAllowed(tt.from, tt.to); got != tt.want {
				t.Fatalf("RequestTransitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRequestDeletable(t *testing.T) {
	if !RequestDeletable(RequestPending) {
		t.Fatal("pending request should be deletable")
	}
	if RequestDeletable(RequestAccepted) || RequestDeletable(RequestRejected) {
		t.Fatal("only pending requests are deletable")
	}
}

func TestSessionTransitionAllowed(t *testing.T) {
	tests := []struct {
		name          string
		from          SessionStatus
		to            SessionStatus
		actorIsMentor bool
		want          bool
	}{
		{name: "mentor completes", from: SessionScheduled, to: SessionCompleted, actorIsMentor: true, want: true},
		{name: "mentee cannot complete", from: SessionScheduled, to: SessionCompleted, actorIsMentor: false, want: false},
		{name: "mentor cancels", from: SessionScheduled, to: SessionCancelled, actorIsMentor: true, want: true},
		{name: "mentee cancels", from: SessionScheduled, to: SessionCancelled, actorIsMentor: false, want: true},
		{name: "completed is terminal", from: SessionCompleted, to: SessionCancelled, actorIsMentor: true, want: false},
		{name: "cancelled is terminal", from: SessionCancelled, to: SessionCompleted, actorIsMentor: true, want: false},
		{name: "no transition back to scheduled", from: SessionCompleted, to: SessionScheduled, actorIsMentor: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionTransitionAllowed(tt.from, tt.to, tt.actorIsMentor); got != tt.want {
				t.Fatalf("SessionTransitionAllowed(%s, %s, mentor=%v) = %v, want %v",
					tt.from, tt.to, tt.actorIsMentor, got, tt.want)
			}
		})
	}
}

func TestRateable(t *testing.T) {
	if !Rateable(SessionCompleted) {
		t.Fatal("completed session should accept ratings")
	}
	if Rateable(SessionScheduled) || Rateable(SessionCancelled) {
		t.Fatal("only completed sessions accept ratings")
	}
}

func TestStatusValidity(t *testing.T) {
	for _, status := range []RequestStatus{RequestPending, RequestAccepted, RequestRejected} {
		if !status.Valid() {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if RequestStatus("completed").Valid() {
		t.Fatal("completed is not a request status")
	}

	for _, status := range []SessionStatus{SessionScheduled, SessionCompleted, SessionCancelled} {
		if !status.Valid() {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if SessionStatus("pending").Valid() {
		t.Fatal("pending is not a session status")
	}
}
