package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	keyDateFormat = "dateFormat"
	keyBold       = "useBoldFormatting"
	keyCustom     = "customFormat"

	defaultPath = "~/.datestamp.yaml"
)

// DefaultPath returns the settings file location, honouring DATESTAMP_CONFIG.
func DefaultPath() (string, error) {
	path := defaultPath
	if override := os.Getenv("DATESTAMP_CONFIG"); override != "" {
		path = override
	}
	return homedir.Expand(path)
}

// Store loads and saves Settings. It is the single owner of the value; the
// rest of the program reads it through Get and changes it through Update.
// Saves are last-write-wins.
type Store struct {
	mu      sync.Mutex
	fs      afero.Fs
	v       *viper.Viper
	path    string
	current Settings

	subs   map[int]func(Settings)
	nextID int
}

// Open loads path merged over Defaults. A missing file is not an error.
func Open(fs afero.Fs, path string) (*Store, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(expanded)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("DATESTAMP")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(keyDateFormat, d.DateFormat)
	v.SetDefault(keyBold, d.UseBoldFormatting)
	v.SetDefault(keyCustom, d.CustomFormat)

	s := &Store{fs: fs, v: v, path: expanded, subs: make(map[int]func(Settings))}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("settings: stat %s: %w", s.path, err)
	}
	if exists {
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("settings: read %s: %w", s.path, err)
		}
	}
	s.mu.Lock()
	s.current = Settings{
		DateFormat:        s.v.GetString(keyDateFormat),
		UseBoldFormatting: s.v.GetBool(keyBold),
		CustomFormat:      s.v.GetString(keyCustom),
	}
	s.mu.Unlock()
	return nil
}

// Path is the settings file location.
func (s *Store) Path() string { return s.path }

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update applies fn to a copy of the settings, validates, saves and notifies
// subscribers. The in-memory value is left untouched if validation fails.
func (s *Store) Update(fn func(*Settings)) error {
	s.mu.Lock()
	next := s.current
	fn(&next)
	if err := next.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.current = next
	s.mu.Unlock()
	return s.Save()
}

// Save writes the current settings and notifies subscribers.
func (s *Store) Save() error {
	current := s.Get()
	data, err := yaml.Marshal(current)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: ensure dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("settings: write: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("settings: write: %w", err)
	}
	s.notify(current)
	return nil
}

// Subscribe registers fn to run after every save or external reload. The
// returned func removes the subscription.
func (s *Store) Subscribe(fn func(Settings)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(current Settings) {
	s.mu.Lock()
	subs := make([]func(Settings), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(current)
	}
}

// Watch reloads the settings when the file changes on disk, for example when
// another datestamp process saves. It only works on the OS filesystem.
func (s *Store) Watch() {
	s.v.OnConfigChange(func(fsnotify.Event) {
		if err := s.load(); err != nil {
			fmt.Fprintf(os.Stderr, "settings: reload: %v\n", err)
			return
		}
		s.notify(s.Get())
	})
	s.v.WatchConfig()
}
