// Package session is the editor workspace the date inserter runs against:
// a set of panes persisted with diskv, each optionally bound to a note file
// read and written through afero.
package session

import (
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"github.com/spf13/afero"

	"tableflip.dev/datestamp/pkg/workspace"
)

// Kind is the type of view a pane shows.
type Kind string

const (
	// KindNote is an editable markdown note.
	KindNote Kind = "note"
	// KindCalendar is the calendar panel. It is never an insertion target.
	KindCalendar Kind = "calendar"
)

// ErrPaneNotFound is returned for unknown pane ids.
var ErrPaneNotFound = errors.New("session: pane not found")

// Pane is one open view in the session.
type Pane struct {
	ID        string             `json:"id"`
	Kind      Kind               `json:"kind"`
	File      string             `json:"file,omitempty"`
	Cursor    workspace.Position `json:"cursor"`
	OpenedAt  time.Time          `json:"openedAt"`
	FocusedAt time.Time          `json:"focusedAt,omitempty"`
}

// State is the session wide focus information.
type State struct {
	Active     string `json:"active,omitempty"`
	ActiveFile string `json:"activeFile,omitempty"`
}

const (
	paneBucket  = "panes"
	stateBucket = "session"
	stateName   = "state"
)

// Session implements workspace.Host on top of a diskv store.
type Session struct {
	d        *diskv.Diskv
	fs       afero.Fs
	basePath string
	now      func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithFs sets the filesystem notes are read from and written to.
func WithFs(fs afero.Fs) Option {
	return func(s *Session) { s.fs = fs }
}

// WithClock overrides the clock used for focus ordering.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Load opens the session stored under cfg. A nil cfg uses LoadConfig.
func Load(cfg Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	s := &Session{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// Other datestamp processes edit the same session, so nothing
			// is cached in memory.
			CacheSizeMax: 0,
		}),
		fs:       afero.NewOsFs(),
		basePath: basePath,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BasePath is the session directory.
func (s *Session) BasePath() string { return s.basePath }

// Panes lists the open panes in opening order.
func (s *Session) Panes() []Pane {
	panes := make([]Pane, 0)
	for key := range s.d.KeysPrefix(paneBucket+"-", nil) {
		p, err := s.readPane(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		panes = append(panes, *p)
	}
	sortPanes(panes)
	return panes
}

// Pane returns the pane with id.
func (s *Session) Pane(id string) (Pane, error) {
	p, err := s.readPane(paneKey(id))
	if err != nil {
		return Pane{}, err
	}
	return *p, nil
}

// State returns the focus state.
func (s *Session) State() State {
	st := State{}
	val, err := s.d.Read(stateKey())
	if err != nil {
		return st
	}
	if err := json.Unmarshal(val, &st); err != nil {
		fmt.Fprintf(os.Stderr, "session: decode state: %v\n", err)
	}
	return st
}

// Open shows file in a note pane and focuses it. An existing pane on the same
// file is reused. The file is created empty when it does not exist.
func (s *Session) Open(file string) (Pane, error) {
	file = s.normalize(file)
	if file == "" {
		return Pane{}, errors.New("session: file required")
	}
	for _, p := range s.Panes() {
		if p.Kind == KindNote && p.File == file {
			return s.Focus(p.ID)
		}
	}

	exists, err := afero.Exists(s.fs, file)
	if err != nil {
		return Pane{}, err
	}
	if !exists {
		if err := s.fs.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return Pane{}, err
		}
		if err := afero.WriteFile(s.fs, file, nil, 0o644); err != nil {
			return Pane{}, err
		}
	}

	p := &Pane{Kind: KindNote, File: file, OpenedAt: s.now()}
	p.ID = newID(p)
	if err := s.writePane(p); err != nil {
		return Pane{}, err
	}
	return s.Focus(p.ID)
}

// OpenCalendar returns the calendar pane, opening one if none exists. The
// calendar pane is revealed but the editing focus stays where it was, so a
// later insertion still targets the note the user was in.
func (s *Session) OpenCalendar() (Pane, error) {
	for _, p := range s.Panes() {
		if p.Kind == KindCalendar {
			return p, nil
		}
	}
	p := &Pane{ID: string(KindCalendar), Kind: KindCalendar, OpenedAt: s.now()}
	if err := s.writePane(p); err != nil {
		return Pane{}, err
	}
	return *p, nil
}

// Close removes a pane. Focus state pointing at it is cleared.
func (s *Session) Close(id string) error {
	if !s.d.Has(paneKey(id)) {
		return fmt.Errorf("%w: %s", ErrPaneNotFound, id)
	}
	if err := s.d.Erase(paneKey(id)); err != nil {
		return err
	}
	st := s.State()
	if st.Active == id {
		st.Active = ""
		return s.writeState(st)
	}
	return nil
}

// Focus makes the pane active. Focusing a note also makes its file the
// active file; focusing the calendar leaves the active file alone.
func (s *Session) Focus(id string) (Pane, error) {
	p, err := s.readPane(paneKey(id))
	if err != nil {
		return Pane{}, err
	}
	p.FocusedAt = s.now()
	if err := s.writePane(p); err != nil {
		return Pane{}, err
	}
	st := s.State()
	st.Active = p.ID
	if p.Kind == KindNote {
		st.ActiveFile = p.File
	}
	if err := s.writeState(st); err != nil {
		return Pane{}, err
	}
	return *p, nil
}

// MoveCursor places the cursor of a note pane, clamped to its document.
func (s *Session) MoveCursor(id string, pos workspace.Position) (Pane, error) {
	p, err := s.readPane(paneKey(id))
	if err != nil {
		return Pane{}, err
	}
	if p.Kind != KindNote {
		return Pane{}, fmt.Errorf("session: pane %s is not a note", id)
	}
	lines, err := s.readLines(p.File)
	if err != nil {
		return Pane{}, err
	}
	p.Cursor = clamp(lines, pos)
	if err := s.writePane(p); err != nil {
		return Pane{}, err
	}
	return *p, nil
}

// Content returns the text of a pane's file.
func (s *Session) Content(id string) (string, error) {
	p, err := s.readPane(paneKey(id))
	if err != nil {
		return "", err
	}
	if p.Kind != KindNote {
		return "", fmt.Errorf("session: pane %s is not a note", id)
	}
	data, err := afero.ReadFile(s.fs, p.File)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Session) normalize(file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	if _, ok := s.fs.(*afero.OsFs); ok {
		if abs, err := filepath.Abs(file); err == nil {
			return abs
		}
	}
	return filepath.Clean(file)
}

func (s *Session) readPane(key string) (*Pane, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPaneNotFound, keyToPathTransform(key).FileName)
		}
		return nil, err
	}
	p := &Pane{}
	if err := json.Unmarshal(val, p); err != nil {
		return nil, err
	}
	if p.Kind == "" {
		p.Kind = KindNote
	}
	return p, nil
}

func (s *Session) writePane(p *Pane) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.d.Write(paneKey(p.ID), data)
}

func (s *Session) writeState(st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.d.Write(stateKey(), data)
}

func (s *Session) readLines(file string) ([]string, error) {
	data, err := afero.ReadFile(s.fs, file)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

func sortPanes(panes []Pane) {
	sort.SliceStable(panes, func(i, j int) bool {
		if panes[i].OpenedAt.Equal(panes[j].OpenedAt) {
			return panes[i].ID < panes[j].ID
		}
		return panes[i].OpenedAt.Before(panes[j].OpenedAt)
	})
}

func newID(p *Pane) string {
	b, _ := json.Marshal(p)
	id := md5.Sum(append(b, []byte(p.OpenedAt.Format(time.RFC3339Nano))...))
	return fmt.Sprintf("%x", id[:4])
}

func paneKey(id string) string {
	return fmt.Sprintf("%s-%s", paneBucket, id)
}

func stateKey() string {
	return fmt.Sprintf("%s-%s", stateBucket, stateName)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
