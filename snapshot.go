package medcard

import "slices"

// Sex is the administrative sex marker on the card.
type Sex string

const (
	SexUnset  Sex = ""
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Snapshot is the complete state of one medical card at a point in time.
// The JSON tags are the persisted record format, so an encoded snapshot is
// interchangeable with cards saved by earlier versions of the application.
//
// Snapshots are values: mutation helpers clone before writing, so a held
// snapshot is never changed out from under its holder.
type Snapshot struct {
	PatientName      string   `json:"patientName"`
	ClinicalHistory  string   `json:"clinicalHistory"`
	RehabRoom        string   `json:"rehabRoom"`
	State            string   `json:"state"`
	BirthDate        string   `json:"birthDate"` // ISO date, or "" when unset
	Age              string   `json:"age"`       // derived from BirthDate, never edited directly
	Sex              Sex      `json:"sex"`
	IDCard           string   `json:"idCard"`
	HealthConditions string   `json:"healthConditions"`
	Therapies        []string `json:"therapies"`    // row labels, len >= 1
	SessionDates     []string `json:"sessionDates"` // ISO dates or "", len >= 1
}

// NewSnapshot returns an empty card with the given grid dimensions.
// Dimensions below 1 are raised to 1; the grid never renders degenerate.
func NewSnapshot(therapies, sessions int) Snapshot {
	if therapies < 1 {
		therapies = 1
	}
	if sessions < 1 {
		sessions = 1
	}
	return Snapshot{
		Therapies:    make([]string, therapies),
		SessionDates: make([]string, sessions),
	}
}

// Clone returns a deep copy; the grid slices are never shared.
func (s Snapshot) Clone() Snapshot {
	s.Therapies = slices.Clone(s.Therapies)
	s.SessionDates = slices.Clone(s.SessionDates)
	return s
}

// NumTherapies is the therapy row count. There is no separate counter to
// drift: the dimension is the array length.
func (s Snapshot) NumTherapies() int { return len(s.Therapies) }

// NumSessions is the session column count, derived the same way.
func (s Snapshot) NumSessions() int { return len(s.SessionDates) }

// Equal reports whether two snapshots hold the same values.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.PatientName == o.PatientName &&
		s.ClinicalHistory == o.ClinicalHistory &&
		s.RehabRoom == o.RehabRoom &&
		s.State == o.State &&
		s.BirthDate == o.BirthDate &&
		s.Age == o.Age &&
		s.Sex == o.Sex &&
		s.IDCard == o.IDCard &&
		s.HealthConditions == o.HealthConditions &&
		slices.Equal(s.Therapies, o.Therapies) &&
		slices.Equal(s.SessionDates, o.SessionDates)
}
