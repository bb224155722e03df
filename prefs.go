package medcard

import (
	"slices"

	"github.com/rs/zerolog"
)

// prefStore loads and saves one small preference entry with a default.
// Init never fails: an absent, unreadable or unrecognized stored value
// falls back to the default so startup is never blocked by a preference.
type prefStore struct {
	store Store
	key   string
	def   string
	valid []string
	log   zerolog.Logger
}

func (p *prefStore) init() string {
	data, ok, err := p.store.Load(p.key)
	if err != nil {
		p.log.Warn().Err(err).Str("key", p.key).Msg("preference load failed, using default")
		return p.def
	}
	if !ok {
		return p.def
	}
	v := string(data)
	if !slices.Contains(p.valid, v) {
		p.log.Warn().Str("key", p.key).Str("value", v).Msg("unrecognized preference, using default")
		return p.def
	}
	return v
}

func (p *prefStore) set(v string) error {
	return p.store.Save(p.key, []byte(v))
}

// LanguageStore is the explicitly-scoped store for the language preference.
type LanguageStore struct {
	p prefStore
}

// NewLanguageStore builds a language store with the given default.
func NewLanguageStore(s Store, def Language, log zerolog.Logger) *LanguageStore {
	return &LanguageStore{p: prefStore{
		store: s,
		key:   KeyLanguage,
		def:   string(def),
		valid: []string{string(LangES), string(LangEN)},
		log:   log,
	}}
}

// Init loads the stored language or the default.
func (l *LanguageStore) Init() Language { return Language(l.p.init()) }

// Set writes the preference through to the storage medium.
func (l *LanguageStore) Set(v Language) error { return l.p.set(string(v)) }

// ThemeStore is the explicitly-scoped store for the theme preference.
type ThemeStore struct {
	p prefStore
}

// NewThemeStore builds a theme store with the given default.
func NewThemeStore(s Store, def ThemeName, log zerolog.Logger) *ThemeStore {
	return &ThemeStore{p: prefStore{
		store: s,
		key:   KeyTheme,
		def:   string(def),
		valid: []string{string(ThemeLightName), string(ThemeDarkName)},
		log:   log,
	}}
}

// Init loads the stored theme name or the default.
func (t *ThemeStore) Init() ThemeName { return ThemeName(t.p.init()) }

// Set writes the preference through to the storage medium.
func (t *ThemeStore) Set(v ThemeName) error { return t.p.set(string(v)) }
