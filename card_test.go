package medcard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func newTestCard(store *memStore) *Card {
	ctrl := newTestController(store)
	ctrl.Init()
	return NewCard(ctrl,
		NewLanguageStore(store, LangES, zerolog.Nop()),
		NewThemeStore(store, ThemeLightName, zerolog.Nop()),
		zerolog.Nop())
}

func keyRunes(c *Card, s string) {
	for _, r := range s {
		c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func key(c *Card, t tea.KeyType) {
	c.Update(tea.KeyMsg{Type: t})
}

func TestCard(t *testing.T) {
	t.Run("TypingEditsFocusedField", func(t *testing.T) {
		c := newTestCard(newMemStore())
		keyRunes(c, "Ana")
		if got := c.ctrl.Current().PatientName; got != "Ana" {
			t.Errorf("expected Ana, got %q", got)
		}
		key(c, tea.KeyBackspace)
		if got := c.ctrl.Current().PatientName; got != "An" {
			t.Errorf("expected An after backspace, got %q", got)
		}
	})

	t.Run("TabMovesFocus", func(t *testing.T) {
		c := newTestCard(newMemStore())
		key(c, tea.KeyTab)
		keyRunes(c, "HC-9")
		if got := c.ctrl.Current().ClinicalHistory; got != "HC-9" {
			t.Errorf("expected edit on second field, got %+v", c.ctrl.Current())
		}
		key(c, tea.KeyShiftTab)
		keyRunes(c, "X")
		if got := c.ctrl.Current().PatientName; got != "X" {
			t.Errorf("expected edit back on first field, got %q", got)
		}
	})

	t.Run("SpaceCyclesSexSelect", func(t *testing.T) {
		c := newTestCard(newMemStore())
		for i := 0; i < 5; i++ { // focus the sex field
			key(c, tea.KeyTab)
		}
		key(c, tea.KeySpace)
		if got := c.ctrl.Current().Sex; got != SexMale {
			t.Fatalf("expected M after one cycle, got %q", got)
		}
		key(c, tea.KeySpace)
		if got := c.ctrl.Current().Sex; got != SexFemale {
			t.Fatalf("expected F after two cycles, got %q", got)
		}
		key(c, tea.KeySpace)
		if got := c.ctrl.Current().Sex; got != SexUnset {
			t.Fatalf("expected unset after full cycle, got %q", got)
		}
	})

	t.Run("PickerCommitsBirthDate", func(t *testing.T) {
		c := newTestCard(newMemStore())
		for i := 0; i < 4; i++ { // focus the birth date field
			key(c, tea.KeyTab)
		}
		key(c, tea.KeyEnter) // open picker
		if !c.pickerOpen {
			t.Fatalf("picker did not open")
		}

		keyRunes(c, "1990") // filter years
		key(c, tea.KeyEnter)
		keyRunes(c, "junio")
		key(c, tea.KeyEnter)
		keyRunes(c, "15")
		key(c, tea.KeyEnter) // commit day

		if c.pickerOpen {
			t.Errorf("picker still open after commit")
		}
		s := c.ctrl.Current()
		if s.BirthDate != "1990-06-15" {
			t.Errorf("expected 1990-06-15, got %q", s.BirthDate)
		}
		if s.Age != "34" {
			t.Errorf("expected derived age 34, got %q", s.Age)
		}
	})

	t.Run("AddRowExtendsFocusOrder", func(t *testing.T) {
		c := newTestCard(newMemStore())
		before := len(c.slots)
		key(c, tea.KeyCtrlA)
		if len(c.slots) != before+1 {
			t.Errorf("expected %d slots, got %d", before+1, len(c.slots))
		}
		if got := c.ctrl.Current().NumTherapies(); got != 2 {
			t.Errorf("expected 2 rows, got %d", got)
		}
	})

	t.Run("SaveSetsNotice", func(t *testing.T) {
		store := newMemStore()
		c := newTestCard(store)
		keyRunes(c, "Ana")
		key(c, tea.KeyCtrlS)
		if c.notice != c.labels.Saved || c.noticeErr {
			t.Errorf("expected saved notice, got %q err=%v", c.notice, c.noticeErr)
		}
		if _, ok := store.entries[KeyCard]; !ok {
			t.Errorf("card not written to store")
		}
	})

	t.Run("FailedSaveSetsErrorNotice", func(t *testing.T) {
		store := newMemStore()
		c := newTestCard(store)
		store.failPut = true
		key(c, tea.KeyCtrlS)
		if c.notice != c.labels.SaveFailed || !c.noticeErr {
			t.Errorf("expected failure notice, got %q err=%v", c.notice, c.noticeErr)
		}
	})

	t.Run("PrintViewShowsSameValuesThenReturns", func(t *testing.T) {
		c := newTestCard(newMemStore())
		keyRunes(c, "Ana")
		key(c, tea.KeyCtrlP)
		if !c.ctrl.Printing() {
			t.Fatalf("expected print mode")
		}
		if view := c.View(); !strings.Contains(view, "Ana") {
			t.Errorf("print view missing card data")
		}
		key(c, tea.KeyEnter) // any key returns to editing
		if c.ctrl.Printing() {
			t.Errorf("expected return to edit mode")
		}
	})

	t.Run("LanguageToggleSwapsLabelsAndPersists", func(t *testing.T) {
		store := newMemStore()
		c := newTestCard(store)
		key(c, tea.KeyCtrlG)
		if c.lang != LangEN {
			t.Fatalf("expected en, got %q", c.lang)
		}
		if got := string(store.entries[KeyLanguage]); got != "en" {
			t.Errorf("language not persisted: %q", got)
		}
		if view := c.View(); !strings.Contains(view, "Full Name") {
			t.Errorf("labels not swapped to English")
		}
	})

	t.Run("ThemeTogglePersists", func(t *testing.T) {
		store := newMemStore()
		c := newTestCard(store)
		key(c, tea.KeyCtrlT)
		if c.theme.Name != ThemeDarkName {
			t.Fatalf("expected dark, got %q", c.theme.Name)
		}
		if got := string(store.entries[KeyTheme]); got != "dark" {
			t.Errorf("theme not persisted: %q", got)
		}
	})

	t.Run("DeleteFocusedRow", func(t *testing.T) {
		c := newTestCard(newMemStore())
		key(c, tea.KeyCtrlA) // second row so deletion is allowed
		// focus the first therapy row (after the 8 scalar slots)
		for i := 0; i < 8; i++ {
			key(c, tea.KeyTab)
		}
		key(c, tea.KeyCtrlD)
		if got := c.ctrl.Current().NumTherapies(); got != 1 {
			t.Errorf("expected 1 row after delete, got %d", got)
		}
		if len(c.slots) != 8+1+1 { // scalars + one row + one column
			t.Errorf("slots not rebuilt: %d", len(c.slots))
		}
	})
}
