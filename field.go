package medcard

import "time"

// FieldKind distinguishes the widget a field binds to.
type FieldKind int

const (
	KindText FieldKind = iota
	KindSelect
	KindDate
)

// Option is one selectable value with its rendered label.
type Option struct {
	Value string
	Label string
}

// Field is the contract between the form engine and whatever widget
// renders it: a label, the current value, and change callbacks. The engine
// never knows what a widget looks like; a widget never reaches into the
// snapshot directly.
//
// Text and select widgets report edits through OnChange. Date widgets
// report through OnSelect, which fires exactly once per committed date —
// on day selection in the drill-down picker — never on intermediate
// year/month steps.
type Field struct {
	Label    string
	Kind     FieldKind
	Required bool
	ReadOnly bool
	Options  []Option
	Value    func() string
	OnChange func(string)
	OnSelect func(time.Time)

	// Date fields only: picker year bounds. Zero values mean the picker
	// default of 1900 through next year.
	FromYear int
	ToYear   int
}

// TextField binds a free-text widget.
func TextField(label string, value func() string, onChange func(string)) Field {
	return Field{Label: label, Kind: KindText, Value: value, OnChange: onChange}
}

// SelectField binds a fixed-option widget.
func SelectField(label string, value func() string, onChange func(string), options ...Option) Field {
	return Field{Label: label, Kind: KindSelect, Value: value, OnChange: onChange, Options: options}
}

// DateField binds a drill-down date widget.
func DateField(label string, value func() string, onSelect func(time.Time)) Field {
	return Field{Label: label, Kind: KindDate, Value: value, OnSelect: onSelect}
}

// Require marks the field with the required indicator.
func (f Field) Require() Field {
	f.Required = true
	return f
}

// Readonly marks the field as display-only (derived values).
func (f Field) Readonly() Field {
	f.ReadOnly = true
	return f
}

// YearRange bounds a date field's picker years.
func (f Field) YearRange(from, to int) Field {
	f.FromYear, f.ToYear = from, to
	return f
}
