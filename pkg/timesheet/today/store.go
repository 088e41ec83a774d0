// Package today tracks the in-progress day's entries in a local JSON file
// and writes finished entries into timesheet workbooks.
package today

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
)

// DefaultDescription is used when an entry is added without one.
const DefaultDescription = "No description"

var (
	// ErrNoDay indicates the day file does not exist yet.
	ErrNoDay = errors.New("today's sheet doesn't exist yet")
	// ErrNotFound indicates no entry matches the removal request.
	ErrNotFound = errors.New("entry not found")
	// ErrNoLast indicates there is no last-added entry to remove.
	ErrNoLast = errors.New("there is no last added entry")
	// ErrWorking indicates a working project is already running.
	ErrWorking = errors.New("working project already in progress")
	// ErrNotWorking indicates no working project is running.
	ErrNotWorking = errors.New("no working project in progress")
	// ErrNoProject indicates the working project has no code and none was given.
	ErrNoProject = errors.New("working project has no project code")
)

// Entry is one booked block of the day.
type Entry struct {
	ID          string  `json:"id"`
	Project     string  `json:"project"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
}

// ProjectEntry converts the entry to a timesheet triple.
func (e Entry) ProjectEntry() models.ProjectEntry {
	return models.ProjectEntry{Project: e.Project, Hours: e.Hours, Description: e.Description}
}

// Working is a project started but not yet finished.
type Working struct {
	Project     string    `json:"project,omitempty"`
	Description string    `json:"description,omitempty"`
	StartedAt   time.Time `json:"started_at"`
}

// Elapsed returns the hours since the project started, rounded up to the
// quarter hour with a minimum of one quarter.
func (w Working) Elapsed(now time.Time) float64 {
	h := now.Sub(w.StartedAt).Hours()
	q := math.Ceil(h*4) / 4
	if q < 0.25 {
		q = 0.25
	}
	return q
}

// Day is the persisted state of the in-progress day.
type Day struct {
	Entries   []Entry  `json:"projects"`
	LastAdded *Entry   `json:"last_added,omitempty"`
	Working   *Working `json:"working_project,omitempty"`
}

// Store reads and writes the day file.
type Store struct {
	path   string
	dryRun bool
	logger *log.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithDryRun logs saves instead of writing them.
func WithDryRun(dry bool) Option {
	return func(s *Store) { s.dryRun = dry }
}

// WithLogger sets the store's logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a store backed by the file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, logger: log.New(io.Discard), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Path returns the day file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the day file.
func (s *Store) Load() (*Day, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoDay
		}
		return nil, fmt.Errorf("failed to read day file: %w", err)
	}
	var d Day
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse day file: %w", err)
	}
	s.logger.Debug("Loaded day", "path", s.path, "entries", len(d.Entries))
	return &d, nil
}

// loadOrNew returns the stored day, or an empty day when none exists.
func (s *Store) loadOrNew() (*Day, error) {
	d, err := s.Load()
	if errors.Is(err, ErrNoDay) {
		return &Day{}, nil
	}
	return d, err
}

// Save writes the day file, or only logs it in dry-run mode.
func (s *Store) Save(d *Day) error {
	if s.dryRun {
		s.logger.Info("Dry run, not saving day", "entries", len(d.Entries))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create day directory: %w", err)
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, append(data, '\n'), 0o644)
}

// Add books hours on a project. An existing entry with the same project and
// description accumulates the hours; merged reports whether that happened.
func (s *Store) Add(project string, hours float64, description string) (entry Entry, merged bool, err error) {
	d, err := s.loadOrNew()
	if err != nil {
		return Entry{}, false, err
	}
	entry, merged = add(d, project, hours, description)
	return entry, merged, s.Save(d)
}

func add(d *Day, project string, hours float64, description string) (Entry, bool) {
	if description == "" {
		description = DefaultDescription
	}
	added := Entry{ID: uuid.NewString(), Project: project, Hours: hours, Description: description}
	defer func() { d.LastAdded = &added }()

	for i := range d.Entries {
		e := &d.Entries[i]
		if e.Project == project && e.Description == description {
			e.Hours += hours
			added.ID = e.ID
			return *e, true
		}
	}
	d.Entries = append(d.Entries, added)
	return added, false
}

// Removal describes the outcome of a Remove call.
type Removal struct {
	Entry Entry
	// Deleted is set when the entry was removed entirely rather than
	// reduced.
	Deleted bool
}

// Remove takes hours off the matching entry, deleting it when it has no
// more hours than requested.
func (s *Store) Remove(project string, hours float64, description string) (Removal, error) {
	d, err := s.Load()
	if err != nil {
		return Removal{}, err
	}
	r, err := remove(d, project, hours, description)
	if err != nil {
		return Removal{}, err
	}
	return r, s.Save(d)
}

// RemoveLast undoes the last Add.
func (s *Store) RemoveLast() (Removal, error) {
	d, err := s.Load()
	if err != nil {
		return Removal{}, err
	}
	if d.LastAdded == nil {
		return Removal{}, ErrNoLast
	}
	last := *d.LastAdded
	r, err := remove(d, last.Project, last.Hours, last.Description)
	if err != nil {
		return Removal{}, err
	}
	d.LastAdded = nil
	return r, s.Save(d)
}

func remove(d *Day, project string, hours float64, description string) (Removal, error) {
	for i := range d.Entries {
		e := &d.Entries[i]
		if e.Project != project || e.Description != description {
			continue
		}
		if e.Hours > hours {
			e.Hours -= hours
			return Removal{Entry: *e}, nil
		}
		removed := *e
		d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
		return Removal{Entry: removed, Deleted: true}, nil
	}
	return Removal{}, fmt.Errorf("%w: %s", ErrNotFound, project)
}

// Start begins a working project.
func (s *Store) Start(project, description string) (Working, error) {
	d, err := s.loadOrNew()
	if err != nil {
		return Working{}, err
	}
	if d.Working != nil {
		return Working{}, ErrWorking
	}
	w := Working{Project: project, Description: description, StartedAt: s.now()}
	d.Working = &w
	return w, s.Save(d)
}

// Finish stops the working project and books its elapsed hours. A project
// code or description given here fills in one the project was started
// without. When no code is known the working project is kept running.
func (s *Store) Finish(project, description string) (Entry, error) {
	d, err := s.Load()
	if err != nil {
		return Entry{}, err
	}
	if d.Working == nil {
		return Entry{}, ErrNotWorking
	}
	w := *d.Working
	if w.Project == "" {
		w.Project = project
	}
	if w.Description == "" {
		w.Description = description
	}
	if w.Project == "" {
		return Entry{}, ErrNoProject
	}
	d.Working = nil
	e, _ := add(d, w.Project, w.Elapsed(s.now()), w.Description)
	return e, s.Save(d)
}

// Elapsed returns the running hours of the working project.
func (s *Store) Elapsed(w Working) float64 {
	return w.Elapsed(s.now())
}

// Clear deletes the day file.
func (s *Store) Clear() error {
	if s.dryRun {
		s.logger.Info("Dry run, not clearing day", "path", s.path)
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
