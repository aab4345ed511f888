package model

import "github.com/google/uuid"

// JobID identifies a tracked job. A job starts life under a locally generated
// provisional id and is rebound to the server-issued id once the submission
// response is known; only confirmed ids can match remote snapshot entries.
type JobID struct {
	value       string
	provisional bool
}

// NewProvisionalID returns a fresh locally generated placeholder id
func NewProvisionalID() JobID {
	return JobID{value: "local-" + uuid.NewString(), provisional: true}
}

// NewFailureID returns a fresh id marking a failed submission record.
// A distinct id keeps the failed record from colliding with a later
// retry of the same file.
func NewFailureID() JobID {
	return JobID{value: "failed-" + uuid.NewString(), provisional: true}
}

// ServerID wraps a server-issued identifier
func ServerID(value string) JobID {
	return JobID{value: value}
}

func (id JobID) String() string { return id.value }

// Provisional reports whether the id is still a local placeholder
func (id JobID) Provisional() bool { return id.provisional }

// IsZero reports whether the id is unset
func (id JobID) IsZero() bool { return id.value == "" }
