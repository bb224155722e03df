package medcard

import (
	"testing"

	"github.com/spf13/afero"
)

func TestFileStore(t *testing.T) {
	newStore := func(t *testing.T) *FileStore {
		t.Helper()
		s, err := NewFileStore(afero.NewMemMapFs(), "/data")
		if err != nil {
			t.Fatalf("new store: %v", err)
		}
		return s
	}

	t.Run("AbsentKey", func(t *testing.T) {
		s := newStore(t)
		v, ok, err := s.Load(KeyCard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || v != nil {
			t.Errorf("expected absent, got ok=%v value=%q", ok, v)
		}
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		s := newStore(t)
		if err := s.Save(KeyCard, []byte(`{"x":1}`)); err != nil {
			t.Fatalf("save: %v", err)
		}
		v, ok, err := s.Load(KeyCard)
		if err != nil || !ok {
			t.Fatalf("load: ok=%v err=%v", ok, err)
		}
		if string(v) != `{"x":1}` {
			t.Errorf("expected saved value back, got %q", v)
		}
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		s := newStore(t)
		s.Save(KeyCard, []byte("card"))
		s.Save(KeyLanguage, []byte("en"))
		s.Save(KeyTheme, []byte("dark"))

		for key, want := range map[string]string{
			KeyCard: "card", KeyLanguage: "en", KeyTheme: "dark",
		} {
			v, ok, err := s.Load(key)
			if err != nil || !ok {
				t.Fatalf("load %q: ok=%v err=%v", key, ok, err)
			}
			if string(v) != want {
				t.Errorf("key %q: expected %q, got %q", key, want, v)
			}
		}
	})

	t.Run("WriteFailureIsPersistenceError", func(t *testing.T) {
		s, err := NewFileStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/")
		if err != nil {
			// read-only fs may refuse MkdirAll too; either failure shape is fine
			if _, isPE := err.(*PersistenceError); !isPE {
				t.Fatalf("expected PersistenceError, got %T", err)
			}
			return
		}
		err = s.Save(KeyCard, []byte("x"))
		if _, isPE := err.(*PersistenceError); !isPE {
			t.Errorf("expected PersistenceError, got %T (%v)", err, err)
		}
	})
}
