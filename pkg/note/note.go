package note

import (
	"crypto/md5"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repeat describes how often a session or task recurs.
type Repeat string

const (
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatMonthly Repeat = "monthly"
	RepeatYearly  Repeat = "yearly"
)

// Status is the lifecycle state of a note.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusTrashed  Status = "trashed"
)

// Section names a kind of course meeting a note tracks.
type Section string

const (
	Lectures  Section = "lectures"
	Tutorials Section = "tutorials"
	Seminars  Section = "seminars"
)

// AllSections lists the known sections in display order.
func AllSections() []Section {
	return []Section{Lectures, Tutorials, Seminars}
}

// DefaultSections matches the create form's defaults: seminars start excluded.
func DefaultSections() []Section {
	return []Section{Lectures, Tutorials}
}

// Session is one scheduled occurrence of a section: a weekday, a wall-clock
// time, and a repeat policy. NextResetAt is the unix-millisecond instant at
// which a completed repeating session auto-unchecks; zero means unset.
type Session struct {
	ID          string `json:"id"`
	Day         string `json:"day,omitempty"`  // Mon..Sun, empty when unset
	Time        string `json:"time,omitempty"` // HH:MM, empty when unset
	Repeat      Repeat `json:"repeat"`
	Completed   bool   `json:"completed"`
	NextResetAt int64  `json:"nextResetAt,omitempty"`
	Text        string `json:"text,omitempty"`
}

// Task is a deadline item. Day (1..31) and Month (0..11, zero-based as the
// original records persisted it) are pointers because January is month 0 and
// absence must stay distinguishable. Advancing the due date mutates Day and
// Month in place; a task carries no separate timestamp field.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text,omitempty"`
	Day       *int   `json:"day"`
	Month     *int   `json:"month"`
	Repeat    Repeat `json:"repeat"`
	Completed bool   `json:"completed"`
}

// LegacySchedule is the single day/time pair old records stored per section
// before multiple sessions existed. Consumed only by Normalize.
type LegacySchedule struct {
	Day  string `json:"day,omitempty"`
	Time string `json:"time,omitempty"`
}

// Note is one course card.
type Note struct {
	ID           string                        `json:"id"`
	CourseName   string                        `json:"courseName"`
	Sections     []Section                     `json:"sections"`
	SessionTimes map[Section][]*Session        `json:"sessionTimes"`
	Tasks        []*Task                       `json:"tasks"`
	Status       Status                        `json:"status"`
	Schedule     map[Section]*LegacySchedule   `json:"schedule,omitempty"`
	Created      Timestamp                     `json:"created,omitempty"`
}

// NewID returns a fresh note identifier. Note IDs stay dash-free hex because
// the store's key-to-path transform splits on dashes.
func NewID() string {
	sum := md5.Sum([]byte(uuid.NewString()))
	return fmt.Sprintf("%x", sum[:8])
}

// New creates an active note for the given course and sections.
func New(courseName string, sections []Section) *Note {
	n := &Note{
		ID:           NewID(),
		CourseName:   courseName,
		Sections:     append([]Section(nil), sections...),
		SessionTimes: make(map[Section][]*Session, len(sections)),
		Tasks:        make([]*Task, 0),
		Status:       StatusActive,
		Created:      Timestamp{Time: time.Now()},
	}
	for _, s := range sections {
		n.SessionTimes[s] = []*Session{NewSession("", "")}
	}
	return n
}

// NewSession creates a non-repeating session with the given schedule.
func NewSession(day, tod string) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Day:    day,
		Time:   tod,
		Repeat: RepeatNone,
	}
}

// NewTask creates a non-repeating task with no deadline.
func NewTask(text string) *Task {
	return &Task{
		ID:     uuid.NewString(),
		Text:   text,
		Repeat: RepeatNone,
	}
}

// HasSection reports whether the note tracks the given section.
func (n *Note) HasSection(s Section) bool {
	for _, have := range n.Sections {
		if have == s {
			return true
		}
	}
	return false
}

// FindSession returns the session with the given id and its section.
func (n *Note) FindSession(id string) (*Session, Section, bool) {
	for _, sec := range n.Sections {
		for _, s := range n.SessionTimes[sec] {
			if s.ID == id {
				return s, sec, true
			}
		}
	}
	return nil, "", false
}

// FindTask returns the task with the given id.
func (n *Note) FindTask(id string) (*Task, bool) {
	for _, t := range n.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// HasDeadline reports whether both due-date fields are set.
func (t *Task) HasDeadline() bool {
	return t != nil && t.Day != nil && t.Month != nil
}

// ParseSection validates a section name.
func ParseSection(s string) (Section, bool) {
	switch Section(s) {
	case Lectures, Tutorials, Seminars:
		return Section(s), true
	}
	return "", false
}

// ParseRepeat validates a repeat name, treating empty as none.
func ParseRepeat(s string) (Repeat, bool) {
	if s == "" {
		return RepeatNone, true
	}
	switch Repeat(s) {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly:
		return Repeat(s), true
	}
	return "", false
}
