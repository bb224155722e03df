package medcard

import (
	"encoding/json"
	"fmt"
)

// MalformedSnapshotError reports a persisted record that cannot be decoded
// into a structurally valid snapshot.
type MalformedSnapshotError struct {
	Reason string
	Err    error
}

func (e *MalformedSnapshotError) Error() string {
	return fmt.Sprintf("malformed snapshot: %s", e.Reason)
}

func (e *MalformedSnapshotError) Unwrap() error { return e.Err }

// EncodeSnapshot serializes s into its persisted form. The encoding is
// lossless: every field, array length and empty-date sentinel survives a
// decode round trip.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot parses a persisted record back into a snapshot.
//
// The grid arrays are structurally required: a record missing therapies or
// sessionDates (or carrying them as non-arrays) fails with
// MalformedSnapshotError. Missing scalar fields decode to empty strings
// instead of failing — a clinician's partly recovered card beats a strict
// schema rejection.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, &MalformedSnapshotError{Reason: "invalid encoding", Err: err}
	}
	if s.Therapies == nil {
		return Snapshot{}, &MalformedSnapshotError{Reason: "missing therapies"}
	}
	if s.SessionDates == nil {
		return Snapshot{}, &MalformedSnapshotError{Reason: "missing sessionDates"}
	}
	return s, nil
}
