package medcard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type slotKind int

const (
	slotScalar slotKind = iota
	slotTherapy
	slotSession
)

// slot is one focusable position on the card: a scalar field, a therapy
// row or a session column. Grid slots carry the row/column identity token
// rather than a position, so focus and edits follow the entry across
// deletions instead of landing on a shifted neighbour.
type slot struct {
	kind  slotKind
	field Field
	id    uuid.UUID
}

// Card is the interactive terminal rendition of the medical card. It is a
// bubbletea model; every state transition runs synchronously inside
// Update, one per key event.
//
// Keys: Tab/Shift-Tab move focus, typing edits the focused field, Enter
// opens the date picker on date fields, Space cycles a select. Ctrl-S
// saves, Ctrl-P shows the print view, Ctrl-A and Ctrl-E add a therapy row
// or session column, Ctrl-D deletes the focused one, Ctrl-G and Ctrl-T
// toggle language and theme.
type Card struct {
	ctrl   *Controller
	langs  *LanguageStore
	themes *ThemeStore
	log    zerolog.Logger

	lang   Language
	labels Labels
	theme  Theme

	slots []slot
	focus int

	picker     *DatePicker
	pickerOpen bool
	pickerSlot int
	pickerSel  int

	notice    string
	noticeErr bool

	width  int
	height int
}

// NewCard wires a card over an initialized controller and the two
// preference stores.
func NewCard(ctrl *Controller, langs *LanguageStore, themes *ThemeStore, log zerolog.Logger) *Card {
	c := &Card{
		ctrl:   ctrl,
		langs:  langs,
		themes: themes,
		log:    log,
	}
	c.lang = langs.Init()
	c.labels = LabelsFor(c.lang)
	c.theme = ThemeByName(themes.Init())
	c.picker = NewDatePicker(c.lang)
	c.rebuildSlots()
	return c
}

// Init implements tea.Model.
func (c *Card) Init() tea.Cmd { return nil }

// rebuildSlots regenerates the focus order: scalar fields first, then
// therapy rows, then session columns. Called whenever the grid changes
// shape or the language changes, since labels live on the fields.
func (c *Card) rebuildSlots() {
	l := c.labels
	text := func(key FieldKey, label string) Field {
		return TextField(label,
			func() string { return c.scalarValue(key) },
			func(v string) { c.ctrl.FieldEdit(key, v) })
	}

	birth := DateField(l.BirthDate,
		func() string { return c.ctrl.Current().BirthDate },
		func(d time.Time) { c.ctrl.FieldEdit(FieldBirthDate, FormatISODate(d)) })

	sex := SelectField(l.Sex,
		func() string { return string(c.ctrl.Current().Sex) },
		func(v string) { c.ctrl.FieldEdit(FieldSex, v) },
		Option{Value: "", Label: "--"},
		Option{Value: "M", Label: "M"},
		Option{Value: "F", Label: "F"})

	c.slots = c.slots[:0]
	c.slots = append(c.slots,
		slot{kind: slotScalar, field: text(FieldPatientName, l.PatientName).Require()},
		slot{kind: slotScalar, field: text(FieldClinicalHistory, l.ClinicalHistory)},
		slot{kind: slotScalar, field: text(FieldRehabRoom, l.RehabRoom)},
		slot{kind: slotScalar, field: text(FieldState, l.State)},
		slot{kind: slotScalar, field: birth},
		slot{kind: slotScalar, field: sex},
		slot{kind: slotScalar, field: text(FieldIDCard, l.IDCard)},
		slot{kind: slotScalar, field: text(FieldHealthConditions, l.HealthConditions)},
	)
	for _, id := range c.ctrl.RowIDs() {
		c.slots = append(c.slots, slot{kind: slotTherapy, id: id})
	}
	for _, id := range c.ctrl.ColumnIDs() {
		c.slots = append(c.slots, slot{kind: slotSession, id: id})
	}
	if c.focus >= len(c.slots) {
		c.focus = len(c.slots) - 1
	}
}

func (c *Card) scalarValue(key FieldKey) string {
	s := c.ctrl.Current()
	switch key {
	case FieldPatientName:
		return s.PatientName
	case FieldClinicalHistory:
		return s.ClinicalHistory
	case FieldRehabRoom:
		return s.RehabRoom
	case FieldState:
		return s.State
	case FieldIDCard:
		return s.IDCard
	case FieldHealthConditions:
		return s.HealthConditions
	}
	return ""
}

// Update implements tea.Model.
func (c *Card) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if c.ctrl.Printing() {
			if msg.String() == "ctrl+c" {
				return c, tea.Quit
			}
			c.ctrl.ClosePrint()
			return c, nil
		}
		if c.pickerOpen {
			return c, c.updatePicker(msg)
		}
		return c, c.updateForm(msg)
	}
	return c, nil
}

func (c *Card) updateForm(msg tea.KeyMsg) tea.Cmd {
	c.notice = ""
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "tab", "down":
		c.moveFocus(1)
	case "shift+tab", "up":
		c.moveFocus(-1)
	case "ctrl+s":
		if err := c.ctrl.Save(); err != nil {
			c.notice, c.noticeErr = c.labels.SaveFailed, true
		} else {
			c.notice, c.noticeErr = c.labels.Saved, false
		}
	case "ctrl+p":
		c.ctrl.RequestPrint()
	case "ctrl+a":
		c.ctrl.AddTherapyRow()
		c.rebuildSlots()
	case "ctrl+e":
		c.ctrl.AddSessionColumn()
		c.rebuildSlots()
	case "ctrl+d":
		c.deleteFocused()
	case "ctrl+g":
		c.toggleLanguage()
	case "ctrl+t":
		c.toggleTheme()
	case "enter":
		c.openPickerForFocus()
	case "backspace":
		c.backspaceFocused()
	default:
		if msg.Type == tea.KeyRunes {
			c.typeIntoFocused(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			c.typeIntoFocused(" ")
		}
	}
	return nil
}

func (c *Card) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		switch {
		case c.picker.Query() != "":
			c.picker.SetQuery("")
		case c.picker.Level() == LevelYear:
			c.pickerOpen = false
		default:
			c.picker.Back()
		}
		c.pickerSel = 0
	case "up":
		if c.pickerSel > 0 {
			c.pickerSel--
		}
	case "down":
		if c.pickerSel < len(c.picker.Options())-1 {
			c.pickerSel++
		}
	case "enter":
		if date, ok := c.picker.Choose(c.pickerSel); ok {
			c.commitPickedDate(date)
			c.pickerOpen = false
		}
		c.pickerSel = 0
	case "backspace":
		c.picker.SetQuery(trimLastRune(c.picker.Query()))
		c.pickerSel = 0
	default:
		if msg.Type == tea.KeyRunes {
			c.picker.SetQuery(c.picker.Query() + string(msg.Runes))
			c.pickerSel = 0
		}
	}
	return nil
}

func (c *Card) moveFocus(delta int) {
	n := len(c.slots)
	c.focus = ((c.focus+delta)%n + n) % n
}

func (c *Card) typeIntoFocused(text string) {
	s := c.slots[c.focus]
	switch s.kind {
	case slotScalar:
		switch s.field.Kind {
		case KindText:
			s.field.OnChange(s.field.Value() + text)
		case KindSelect:
			c.cycleSelect(s.field)
		}
	case slotTherapy:
		c.ctrl.TherapyEdit(s.id, c.therapyLabel(s.id)+text)
	}
}

func (c *Card) backspaceFocused() {
	s := c.slots[c.focus]
	switch s.kind {
	case slotScalar:
		switch s.field.Kind {
		case KindText:
			s.field.OnChange(trimLastRune(s.field.Value()))
		case KindDate:
			c.ctrl.FieldEdit(FieldBirthDate, "")
		}
	case slotTherapy:
		c.ctrl.TherapyEdit(s.id, trimLastRune(c.therapyLabel(s.id)))
	case slotSession:
		c.ctrl.SessionDateEdit(s.id, "")
	}
}

func (c *Card) cycleSelect(f Field) {
	cur := f.Value()
	for i, opt := range f.Options {
		if opt.Value == cur {
			f.OnChange(f.Options[(i+1)%len(f.Options)].Value)
			return
		}
	}
	if len(f.Options) > 0 {
		f.OnChange(f.Options[0].Value)
	}
}

func (c *Card) therapyLabel(id uuid.UUID) string {
	if i := indexOf(c.ctrl.RowIDs(), id); i >= 0 {
		return c.ctrl.Current().Therapies[i]
	}
	return ""
}

func (c *Card) sessionDate(id uuid.UUID) string {
	if i := indexOf(c.ctrl.ColumnIDs(), id); i >= 0 {
		return c.ctrl.Current().SessionDates[i]
	}
	return ""
}

func (c *Card) deleteFocused() {
	s := c.slots[c.focus]
	switch s.kind {
	case slotTherapy:
		c.ctrl.RemoveTherapyRow(s.id)
	case slotSession:
		c.ctrl.RemoveSessionColumn(s.id)
	default:
		return
	}
	c.rebuildSlots()
}

// openPickerForFocus opens the drill-down picker for the focused date
// target. Session pickers start at 2000 like the card's session columns
// always have; the birth date picker covers the full default range.
func (c *Card) openPickerForFocus() {
	s := c.slots[c.focus]
	var value string
	switch {
	case s.kind == slotScalar && s.field.Kind == KindDate:
		value = s.field.Value()
		from, to := s.field.FromYear, s.field.ToYear
		if from == 0 {
			from = 1900
		}
		if to == 0 {
			to = time.Now().Year() + 1
		}
		c.picker.Years(from, to)
	case s.kind == slotSession:
		value = c.sessionDate(s.id)
		c.picker.Years(2000, time.Now().Year()+1)
	default:
		return
	}

	if t, err := ParseISODate(value); err == nil && value != "" {
		c.picker.Open(t, true)
	} else {
		c.picker.Open(time.Time{}, false)
	}
	c.pickerOpen = true
	c.pickerSlot = c.focus
	c.pickerSel = 0
}

func (c *Card) commitPickedDate(date time.Time) {
	s := c.slots[c.pickerSlot]
	switch {
	case s.kind == slotScalar && s.field.Kind == KindDate:
		s.field.OnSelect(date)
	case s.kind == slotSession:
		c.ctrl.SessionDateEdit(s.id, FormatISODate(date))
	}
}

func (c *Card) toggleLanguage() {
	c.lang = c.lang.Toggle()
	c.labels = LabelsFor(c.lang)
	c.picker.SetLanguage(c.lang)
	if err := c.langs.Set(c.lang); err != nil {
		c.log.Error().Err(err).Msg("language preference save failed")
	}
	c.rebuildSlots()
}

func (c *Card) toggleTheme() {
	c.theme = ThemeByName(c.theme.Name.Toggle())
	if err := c.themes.Set(c.theme.Name); err != nil {
		c.log.Error().Err(err).Msg("theme preference save failed")
	}
}

// View implements tea.Model.
func (c *Card) View() string {
	if c.ctrl.Printing() {
		return c.printView()
	}
	return c.editView()
}

// shortDate renders an ISO date as dd/MM for the session header, or the
// placeholder when unset.
func (c *Card) shortDate(iso string) string {
	t, err := ParseISODate(iso)
	if iso == "" || err != nil {
		return c.labels.DatePlaceholder
	}
	return t.Format("02/01")
}

func (c *Card) editView() string {
	th, l := c.theme, c.labels
	var b strings.Builder

	b.WriteString(c.headerBlock())
	b.WriteString("\n")

	for i, s := range c.slots {
		if s.kind != slotScalar {
			break
		}
		b.WriteString(c.fieldLine(i, s.field))
		b.WriteString("\n")
		if s.field.Kind == KindDate {
			// the derived age renders beside its source, never editable
			b.WriteString(fmt.Sprintf("  %s %s\n",
				th.Label.Render(l.Age+":"), th.Muted.Render(c.ctrl.Current().Age)))
		}
	}

	b.WriteString("\n")
	b.WriteString(c.gridBlock())
	b.WriteString("\n")

	if c.pickerOpen {
		b.WriteString(c.pickerBlock())
		b.WriteString("\n")
	}

	b.WriteString(c.footerBlock())
	return b.String()
}

func (c *Card) headerBlock() string {
	th, l := c.theme, c.labels
	return lipgloss.JoinVertical(lipgloss.Center,
		th.Header.Render(l.HeaderCountry),
		th.Header.Render(l.HeaderMission),
		th.Header.Render(l.HeaderTitle),
	) + "\n"
}

func (c *Card) fieldLine(slotIdx int, f Field) string {
	th := c.theme
	indicator := "  "
	if slotIdx == c.focus && !c.pickerOpen {
		indicator = th.Focus.Render("▸ ")
	}
	label := f.Label
	if f.Required {
		label += " *"
	}
	value := f.Value()
	if f.Kind == KindSelect {
		value = optionLabel(f, value)
	}
	if value == "" {
		value = th.Muted.Render("·")
	} else {
		value = th.Base.Render(value)
	}
	return fmt.Sprintf("%s%s %s", indicator, th.Label.Render(label+":"), value)
}

func optionLabel(f Field, value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// gridBlock renders the treatment table: one header row of numbered,
// dated session columns and one line per therapy row.
func (c *Card) gridBlock() string {
	th, l := c.theme, c.labels
	snap := c.ctrl.Current()
	var b strings.Builder

	b.WriteString(th.Accent.Render(l.Therapies))
	b.WriteString(th.Muted.Render("   ^A " + l.AddRow + "  ^E " + l.AddSession))
	b.WriteString("\n")

	// session header: column number over dd/MM
	cells := make([]string, 0, snap.NumSessions())
	for j, id := range c.ctrl.ColumnIDs() {
		label := fmt.Sprintf("%d %s", j+1, c.shortDate(snap.SessionDates[j]))
		if c.slotIndexFor(slotSession, id) == c.focus && !c.pickerOpen {
			label = th.Focus.Render("▸" + label)
		} else {
			label = th.Base.Render(" " + label)
		}
		cells = append(cells, label)
	}
	b.WriteString(fmt.Sprintf("%-24s", th.Label.Render(l.TreatmentSessions)))
	b.WriteString(strings.Join(cells, th.Border.Render(" │ ")))
	b.WriteString("\n")
	b.WriteString(th.Border.Render(strings.Repeat("─", 60)))
	b.WriteString("\n")

	for i, id := range c.ctrl.RowIDs() {
		indicator := "  "
		if c.slotIndexFor(slotTherapy, id) == c.focus && !c.pickerOpen {
			indicator = th.Focus.Render("▸ ")
		}
		label := snap.Therapies[i]
		if label == "" {
			label = th.Muted.Render(strings.Repeat("·", 20))
		} else {
			label = th.Base.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", indicator, label))
	}
	return b.String()
}

func (c *Card) slotIndexFor(kind slotKind, id uuid.UUID) int {
	for i, s := range c.slots {
		if s.kind == kind && s.id == id {
			return i
		}
	}
	return -1
}

func (c *Card) pickerBlock() string {
	th, l := c.theme, c.labels
	var b strings.Builder

	w := c.picker.Working()
	b.WriteString(th.Accent.Render(fmt.Sprintf("%d · %s", w.Year(), MonthName(c.lang, w.Month()))))
	b.WriteString("\n")

	prompt := l.SearchYear
	switch c.picker.Level() {
	case LevelMonth:
		prompt = l.SearchMonth
	case LevelDay:
		prompt = l.SearchDay
	}
	b.WriteString(th.Muted.Render(prompt) + " " + th.Base.Render(c.picker.Query()) + th.Focus.Render("▏"))
	b.WriteString("\n")

	options := c.picker.Options()
	const visible = 8
	start := 0
	if c.pickerSel >= visible {
		start = c.pickerSel - visible + 1
	}
	for i := start; i < len(options) && i < start+visible; i++ {
		if i == c.pickerSel {
			b.WriteString(th.Focus.Render("▸ " + options[i]))
		} else {
			b.WriteString(th.Base.Render("  " + options[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c *Card) footerBlock() string {
	th, l := c.theme, c.labels
	help := fmt.Sprintf("Tab · ^S %s · ^P %s · ^D ✕ · ^G %s · ^T ◐ · ^C ⏻",
		l.Save, l.Print, strings.ToUpper(string(c.lang.Toggle())))
	line := th.Muted.Render(help)
	if c.notice != "" {
		style := th.Accent
		if c.noticeErr {
			style = th.Error
		}
		line += "   " + style.Render(c.notice)
	}
	return line
}

// printView is the non-interactive rendition: the same snapshot values in
// a static layout, no indicators and no controls.
func (c *Card) printView() string {
	th, l := c.theme, c.labels
	snap := c.ctrl.Current()
	var b strings.Builder

	b.WriteString(c.headerBlock())
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", th.Label.Render(label+":"), th.Base.Render(value)))
	}
	row(l.PatientName, snap.PatientName)
	row(l.ClinicalHistory, snap.ClinicalHistory)
	row(l.RehabRoom, snap.RehabRoom)
	row(l.State, snap.State)
	row(l.BirthDate, snap.BirthDate)
	row(l.Age, snap.Age)
	row(l.Sex, string(snap.Sex))
	row(l.IDCard, snap.IDCard)
	row(l.HealthConditions, snap.HealthConditions)
	b.WriteString("\n")

	b.WriteString(th.Label.Render(l.Therapies) + "  " + th.Label.Render(l.TreatmentSessions))
	b.WriteString("\n")
	dates := make([]string, snap.NumSessions())
	for j, d := range snap.SessionDates {
		if d == "" {
			dates[j] = fmt.Sprintf("%d: —", j+1)
		} else {
			dates[j] = fmt.Sprintf("%d: %s", j+1, c.shortDate(d))
		}
	}
	b.WriteString(th.Base.Render(strings.Join(dates, "   ")))
	b.WriteString("\n")
	b.WriteString(th.Border.Render(strings.Repeat("─", 60)))
	b.WriteString("\n")
	for _, t := range snap.Therapies {
		b.WriteString(th.Base.Render(t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.Muted.Render("· · ·"))
	b.WriteString("\n")
	return b.String()
}

func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
