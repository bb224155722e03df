package medcard

// Grid operations maintain the two variable-length axes of the treatment
// table: therapy rows and session-date columns. Every operation treats the
// snapshot as a value — the input is never modified, the result is a fresh
// snapshot — and every out-of-bounds index is a no-op rather than an error.
//
// Removal refuses to shrink either axis below one entry, so the table
// header and body always have something to render.

// AppendTherapy appends one empty therapy row. Always succeeds.
func AppendTherapy(s Snapshot) Snapshot {
	s = s.Clone()
	s.Therapies = append(s.Therapies, "")
	return s
}

// RemoveTherapy removes the therapy row at i, shifting later rows down.
// No-op when i is out of bounds or only one row remains.
func RemoveTherapy(s Snapshot, i int) Snapshot {
	if i < 0 || i >= len(s.Therapies) || len(s.Therapies) <= 1 {
		return s
	}
	s = s.Clone()
	s.Therapies = append(s.Therapies[:i], s.Therapies[i+1:]...)
	return s
}

// SetTherapy replaces the label of the therapy row at i.
// No-op when i is out of bounds: rows can be deleted out from under a
// pending edit, and a late edit must not land on a neighbour.
func SetTherapy(s Snapshot, i int, text string) Snapshot {
	if i < 0 || i >= len(s.Therapies) {
		return s
	}
	s = s.Clone()
	s.Therapies[i] = text
	return s
}

// AppendSession appends one undated session column. Always succeeds.
func AppendSession(s Snapshot) Snapshot {
	s = s.Clone()
	s.SessionDates = append(s.SessionDates, "")
	return s
}

// RemoveSession removes the session column at i under the same shift and
// minimum-one policy as therapy rows.
func RemoveSession(s Snapshot, i int) Snapshot {
	if i < 0 || i >= len(s.SessionDates) || len(s.SessionDates) <= 1 {
		return s
	}
	s = s.Clone()
	s.SessionDates = append(s.SessionDates[:i], s.SessionDates[i+1:]...)
	return s
}

// SetSessionDate sets the date of the session column at i to an ISO date
// or the empty unset sentinel. Out-of-bounds is a no-op. A non-empty value
// that is not a valid calendar date clears the column and reports
// InvalidDateError, keeping the grid usable with best available data.
func SetSessionDate(s Snapshot, i int, date string) (Snapshot, error) {
	if i < 0 || i >= len(s.SessionDates) {
		return s, nil
	}
	var err error
	if date != "" {
		if _, perr := ParseISODate(date); perr != nil {
			date, err = "", perr
		}
	}
	s = s.Clone()
	s.SessionDates[i] = date
	return s, err
}
