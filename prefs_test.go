package medcard

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLanguageStore(t *testing.T) {
	t.Run("DefaultWhenAbsent", func(t *testing.T) {
		ls := NewLanguageStore(newMemStore(), LangES, zerolog.Nop())
		if got := ls.Init(); got != LangES {
			t.Errorf("expected es, got %q", got)
		}
	})

	t.Run("LoadsStoredValue", func(t *testing.T) {
		store := newMemStore()
		store.entries[KeyLanguage] = []byte("en")
		ls := NewLanguageStore(store, LangES, zerolog.Nop())
		if got := ls.Init(); got != LangEN {
			t.Errorf("expected en, got %q", got)
		}
	})

	t.Run("UnrecognizedFallsBack", func(t *testing.T) {
		store := newMemStore()
		store.entries[KeyLanguage] = []byte("fr")
		ls := NewLanguageStore(store, LangES, zerolog.Nop())
		if got := ls.Init(); got != LangES {
			t.Errorf("expected es, got %q", got)
		}
	})

	t.Run("SetWritesThrough", func(t *testing.T) {
		store := newMemStore()
		ls := NewLanguageStore(store, LangES, zerolog.Nop())
		if err := ls.Set(LangEN); err != nil {
			t.Fatalf("set: %v", err)
		}
		if got := string(store.entries[KeyLanguage]); got != "en" {
			t.Errorf("expected persisted en, got %q", got)
		}
	})
}

func TestThemeStore(t *testing.T) {
	t.Run("DefaultWhenAbsent", func(t *testing.T) {
		ts := NewThemeStore(newMemStore(), ThemeLightName, zerolog.Nop())
		if got := ts.Init(); got != ThemeLightName {
			t.Errorf("expected light, got %q", got)
		}
	})

	t.Run("LoadsStoredValue", func(t *testing.T) {
		store := newMemStore()
		store.entries[KeyTheme] = []byte("dark")
		ts := NewThemeStore(store, ThemeLightName, zerolog.Nop())
		if got := ts.Init(); got != ThemeDarkName {
			t.Errorf("expected dark, got %q", got)
		}
	})

	t.Run("NoKeyCollisionWithCard", func(t *testing.T) {
		store := newMemStore()
		c := newTestController(store)
		c.Init()
		if err := c.Save(); err != nil {
			t.Fatalf("save: %v", err)
		}
		ts := NewThemeStore(store, ThemeLightName, zerolog.Nop())
		if err := ts.Set(ThemeDarkName); err != nil {
			t.Fatalf("set: %v", err)
		}

		// the card record must be untouched by the preference write
		c2 := newTestController(store)
		s := c2.Init()
		if s.NumTherapies() != 1 || s.NumSessions() != 1 {
			t.Errorf("card record damaged by preference write: %+v", s)
		}
	})
}
