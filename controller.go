package medcard

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FieldKey identifies a scalar card field in the uniform edit protocol.
// Every widget kind dispatches the same Edit{key, value} shape through
// FieldEdit regardless of how the value was produced.
type FieldKey string

const (
	FieldPatientName      FieldKey = "patientName"
	FieldClinicalHistory  FieldKey = "clinicalHistory"
	FieldRehabRoom        FieldKey = "rehabRoom"
	FieldState            FieldKey = "state"
	FieldBirthDate        FieldKey = "birthDate"
	FieldSex              FieldKey = "sex"
	FieldIDCard           FieldKey = "idCard"
	FieldHealthConditions FieldKey = "healthConditions"
)

// Controller owns the live card state. All mutation funnels through it so
// change listeners only ever observe settled snapshots — in particular,
// never a birth date with a stale age.
//
// The controller also assigns each therapy row and session column a stable
// identity token at creation. UI bindings key by token and resolve to a
// position at render time, so an edit raised against a row survives the
// index shift caused by deleting an earlier row: if the token is gone the
// edit is a no-op instead of landing on a neighbour.
type Controller struct {
	snapshot Snapshot
	rowIDs   []uuid.UUID // parallel to snapshot.Therapies
	colIDs   []uuid.UUID // parallel to snapshot.SessionDates

	store Store
	log   zerolog.Logger
	now   func() time.Time

	initialRows int
	initialCols int

	printing  bool
	listeners []func(Snapshot)
}

// NewController creates a controller over the given storage medium.
// Call Init before anything else.
func NewController(store Store, log zerolog.Logger) *Controller {
	return &Controller{
		store:       store,
		log:         log,
		now:         time.Now,
		initialRows: 1,
		initialCols: 1,
	}
}

// InitialGrid sets the dimensions of a fresh card. Values below 1 are
// raised to 1.
func (c *Controller) InitialGrid(rows, cols int) *Controller {
	c.initialRows, c.initialCols = rows, cols
	return c
}

// Clock overrides the time source used for age derivation.
func (c *Controller) Clock(now func() time.Time) *Controller {
	c.now = now
	return c
}

// Init loads the persisted card, falling back to a fresh one when nothing
// usable is stored. It never fails: a clinician is never blocked from a
// blank form, so load errors are logged and swallowed.
func (c *Controller) Init() Snapshot {
	c.snapshot = NewSnapshot(c.initialRows, c.initialCols)

	if data, ok, err := c.store.Load(KeyCard); err != nil {
		c.log.Warn().Err(err).Msg("card load failed, starting blank")
	} else if ok {
		snap, derr := DecodeSnapshot(data)
		if derr != nil {
			c.log.Warn().Err(derr).Msg("saved card malformed, starting blank")
		} else {
			// a decoded card may carry empty arrays; raise to the floor
			if len(snap.Therapies) == 0 {
				snap.Therapies = []string{""}
			}
			if len(snap.SessionDates) == 0 {
				snap.SessionDates = []string{""}
			}
			c.snapshot = snap
		}
	}

	// the stored age may have been computed on an earlier day
	c.snapshot.BirthDate, c.snapshot.Age = c.deriveAge(c.snapshot.BirthDate)

	c.rowIDs = freshIDs(len(c.snapshot.Therapies))
	c.colIDs = freshIDs(len(c.snapshot.SessionDates))
	return c.snapshot
}

// Current returns the settled snapshot.
func (c *Controller) Current() Snapshot { return c.snapshot }

// RowIDs returns the identity tokens of the therapy rows, in row order.
func (c *Controller) RowIDs() []uuid.UUID { return c.rowIDs }

// ColumnIDs returns the identity tokens of the session columns, in order.
func (c *Controller) ColumnIDs() []uuid.UUID { return c.colIDs }

// OnChange registers a listener notified after every settled transition.
// Returns an unsubscribe function.
func (c *Controller) OnChange(fn func(Snapshot)) func() {
	c.listeners = append(c.listeners, fn)
	idx := len(c.listeners) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		c.listeners[idx] = nil
	}
}

// FieldEdit routes a scalar field edit into the snapshot. A birthDate edit
// recomputes age in the same transition, so no observer ever sees the pair
// mismatched. Unknown keys and unknown sex values are no-ops.
func (c *Controller) FieldEdit(key FieldKey, value string) Snapshot {
	s := c.snapshot.Clone()
	switch key {
	case FieldPatientName:
		s.PatientName = value
	case FieldClinicalHistory:
		s.ClinicalHistory = value
	case FieldRehabRoom:
		s.RehabRoom = value
	case FieldState:
		s.State = value
	case FieldIDCard:
		s.IDCard = value
	case FieldHealthConditions:
		s.HealthConditions = value
	case FieldSex:
		switch Sex(value) {
		case SexUnset, SexMale, SexFemale:
			s.Sex = Sex(value)
		default:
			return c.snapshot
		}
	case FieldBirthDate:
		s.BirthDate, s.Age = c.deriveAge(value)
	default:
		c.log.Debug().Str("field", string(key)).Msg("edit for unknown field ignored")
		return c.snapshot
	}
	c.commit(s)
	return c.snapshot
}

// TherapyEdit sets the label of the row identified by id.
// No-op when the row has been deleted.
func (c *Controller) TherapyEdit(id uuid.UUID, text string) {
	if i := indexOf(c.rowIDs, id); i >= 0 {
		c.TherapyEditAt(i, text)
	}
}

// TherapyEditAt is the positional variant of TherapyEdit.
func (c *Controller) TherapyEditAt(i int, text string) {
	next := SetTherapy(c.snapshot, i, text)
	c.commit(next)
}

// SessionDateEdit sets the date of the column identified by id.
// No-op when the column has been deleted.
func (c *Controller) SessionDateEdit(id uuid.UUID, date string) {
	if i := indexOf(c.colIDs, id); i >= 0 {
		c.SessionDateEditAt(i, date)
	}
}

// SessionDateEditAt is the positional variant of SessionDateEdit.
// An invalid date clears the column, per the recover-to-empty policy.
func (c *Controller) SessionDateEditAt(i int, date string) {
	next, err := SetSessionDate(c.snapshot, i, date)
	if err != nil {
		var ide *InvalidDateError
		if errors.As(err, &ide) {
			c.log.Warn().Str("date", ide.Value).Int("column", i).Msg("invalid session date cleared")
		}
	}
	c.commit(next)
}

// AddTherapyRow appends an empty row and returns its identity token.
func (c *Controller) AddTherapyRow() uuid.UUID {
	id := uuid.New()
	c.rowIDs = append(c.rowIDs, id)
	c.commit(AppendTherapy(c.snapshot))
	return id
}

// RemoveTherapyRow deletes the row identified by id.
// No-op when the token is unknown or only one row remains.
func (c *Controller) RemoveTherapyRow(id uuid.UUID) {
	if i := indexOf(c.rowIDs, id); i >= 0 {
		c.RemoveTherapyRowAt(i)
	}
}

// RemoveTherapyRowAt is the positional variant of RemoveTherapyRow.
func (c *Controller) RemoveTherapyRowAt(i int) {
	next := RemoveTherapy(c.snapshot, i)
	if len(next.Therapies) == len(c.snapshot.Therapies) {
		return // refused: out of bounds or at the floor of one
	}
	c.rowIDs = append(c.rowIDs[:i], c.rowIDs[i+1:]...)
	c.commit(next)
}

// AddSessionColumn appends an undated column and returns its token.
func (c *Controller) AddSessionColumn() uuid.UUID {
	id := uuid.New()
	c.colIDs = append(c.colIDs, id)
	c.commit(AppendSession(c.snapshot))
	return id
}

// RemoveSessionColumn deletes the column identified by id.
// No-op when the token is unknown or only one column remains.
func (c *Controller) RemoveSessionColumn(id uuid.UUID) {
	if i := indexOf(c.colIDs, id); i >= 0 {
		c.RemoveSessionColumnAt(i)
	}
}

// RemoveSessionColumnAt is the positional variant of RemoveSessionColumn.
func (c *Controller) RemoveSessionColumnAt(i int) {
	next := RemoveSession(c.snapshot, i)
	if len(next.SessionDates) == len(c.snapshot.SessionDates) {
		return
	}
	c.colIDs = append(c.colIDs[:i], c.colIDs[i+1:]...)
	c.commit(next)
}

// Save writes the current snapshot to the storage medium. On failure the
// in-memory snapshot is untouched; nothing from the editing session is
// lost, only the save attempt.
func (c *Controller) Save() error {
	data, err := EncodeSnapshot(c.snapshot)
	if err != nil {
		return &PersistenceError{Key: KeyCard, Err: err}
	}
	if err := c.store.Save(KeyCard, data); err != nil {
		c.log.Error().Err(err).Msg("card save failed")
		return err
	}
	return nil
}

// RequestPrint switches to the print rendition. No snapshot mutation.
func (c *Controller) RequestPrint() { c.printing = true }

// ClosePrint returns to the editable rendition.
func (c *Controller) ClosePrint() { c.printing = false }

// Printing reports whether the print rendition is active.
func (c *Controller) Printing() bool { return c.printing }

// deriveAge validates a birth date value and derives the age field from
// it. An empty or invalid date yields the unset pair: the field recovers
// to empty rather than carrying a value age can't be derived from.
func (c *Controller) deriveAge(birthDate string) (string, string) {
	if birthDate == "" {
		return "", ""
	}
	b, err := ParseISODate(birthDate)
	if err != nil {
		c.log.Warn().Str("birthDate", birthDate).Msg("invalid birth date cleared")
		return "", ""
	}
	return birthDate, strconv.Itoa(AgeInYears(b, c.now()))
}

func (c *Controller) commit(s Snapshot) {
	c.snapshot = s
	for _, fn := range c.listeners {
		if fn != nil {
			fn(s)
		}
	}
}

func freshIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func indexOf(ids []uuid.UUID, id uuid.UUID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
