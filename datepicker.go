package medcard

import (
	"strconv"
	"time"
)

// PickerLevel is the drill-down stage the date picker is showing.
type PickerLevel int

const (
	LevelYear PickerLevel = iota
	LevelMonth
	LevelDay
)

// DatePicker is the three-level drill-down behind every date field:
// pick a year, then a month, then a day. Each level is independently
// filterable by a substring match against its rendered labels — years and
// days as digits, months by localized name. Choosing a day commits the
// full date exactly once and resets the picker to the year level for its
// next open.
type DatePicker struct {
	fromYear int
	toYear   int
	lang     Language

	level PickerLevel
	year  int
	month time.Month
	day   int
	query string

	values []int
	filter *Filter[int]
}

// NewDatePicker creates a picker covering 1900 through next year, the
// full plausible lifespan for a birth date.
func NewDatePicker(lang Language) *DatePicker {
	p := &DatePicker{
		fromYear: 1900,
		toYear:   time.Now().Year() + 1,
		lang:     lang,
	}
	p.Open(time.Time{}, false)
	return p
}

// Years narrows the selectable year range.
func (p *DatePicker) Years(from, to int) *DatePicker {
	if to < from {
		from, to = to, from
	}
	p.fromYear, p.toYear = from, to
	p.enterLevel(LevelYear)
	return p
}

// SetLanguage changes the language used for month labels.
func (p *DatePicker) SetLanguage(lang Language) {
	p.lang = lang
	if p.level == LevelMonth {
		p.enterLevel(LevelMonth)
	}
}

// Open seeds the picker from the field's current value, or from today when
// the field is unset, and returns to the year level.
func (p *DatePicker) Open(selected time.Time, ok bool) {
	if !ok {
		selected = time.Now()
	}
	p.year = selected.Year()
	p.month = selected.Month()
	p.day = selected.Day()
	if p.year < p.fromYear {
		p.year = p.fromYear
	}
	if p.year > p.toYear {
		p.year = p.toYear
	}
	p.enterLevel(LevelYear)
}

// Level returns the drill-down stage currently showing.
func (p *DatePicker) Level() PickerLevel { return p.level }

// Query returns the current level's search text.
func (p *DatePicker) Query() string { return p.query }

// SetQuery re-filters the current level's options.
func (p *DatePicker) SetQuery(q string) {
	p.query = q
	p.filter.Update(q)
}

// Options returns the rendered labels of the filtered options at the
// current level.
func (p *DatePicker) Options() []string {
	labels := make([]string, len(p.filter.Items))
	for i, v := range p.filter.Items {
		labels[i] = p.label(v)
	}
	return labels
}

// Working returns the date under construction, for header display.
func (p *DatePicker) Working() time.Time {
	return time.Date(p.year, p.month, p.day, 0, 0, 0, 0, time.UTC)
}

// Choose selects the i-th filtered option. At the year and month levels it
// drills down; at the day level it commits and returns the full date with
// ok=true. Out-of-range i is a no-op.
func (p *DatePicker) Choose(i int) (time.Time, bool) {
	if i < 0 || i >= len(p.filter.Items) {
		return time.Time{}, false
	}
	v := p.filter.Items[i]
	switch p.level {
	case LevelYear:
		p.year = v
		p.clampDay()
		p.enterLevel(LevelMonth)
	case LevelMonth:
		p.month = time.Month(v)
		p.clampDay()
		p.enterLevel(LevelDay)
	case LevelDay:
		p.day = v
		date := p.Working()
		p.enterLevel(LevelYear) // next open starts back at years
		return date, true
	}
	return time.Time{}, false
}

// Back steps up one level: day to month, month to year.
func (p *DatePicker) Back() {
	switch p.level {
	case LevelDay:
		p.enterLevel(LevelMonth)
	case LevelMonth:
		p.enterLevel(LevelYear)
	}
}

// Jump shows the given level directly, mirroring the header shortcuts.
// Jumping to the day level is not supported; it is only reached by
// drilling down.
func (p *DatePicker) Jump(level PickerLevel) {
	if level == LevelYear || level == LevelMonth {
		p.enterLevel(level)
	}
}

func (p *DatePicker) enterLevel(level PickerLevel) {
	p.level = level
	p.query = ""
	p.values = p.values[:0]
	switch level {
	case LevelYear:
		for y := p.fromYear; y <= p.toYear; y++ {
			p.values = append(p.values, y)
		}
	case LevelMonth:
		for m := 1; m <= 12; m++ {
			p.values = append(p.values, m)
		}
	case LevelDay:
		for d := 1; d <= daysInMonth(p.year, p.month); d++ {
			p.values = append(p.values, d)
		}
	}
	p.filter = NewFilter(&p.values, func(v *int) string { return p.label(*v) })
}

func (p *DatePicker) label(v int) string {
	if p.level == LevelMonth {
		return MonthName(p.lang, time.Month(v))
	}
	return strconv.Itoa(v)
}

func (p *DatePicker) clampDay() {
	if max := daysInMonth(p.year, p.month); p.day > max {
		p.day = max
	}
}
