package note

import "github.com/google/uuid"

// Normalize upgrades a freshly loaded note to the current record shape so the
// engines never have to branch on absent fields. It fills default status and
// repeat values, assigns missing identifiers, and synthesizes a session list
// for any tracked section that only has the legacy single-schedule field.
// Returns true when anything was rewritten.
func Normalize(n *Note) bool {
	if n == nil {
		return false
	}
	changed := false

	if n.Status == "" {
		n.Status = StatusActive
		changed = true
	}
	if n.SessionTimes == nil {
		n.SessionTimes = make(map[Section][]*Session)
		changed = true
	}
	if n.Tasks == nil {
		n.Tasks = make([]*Task, 0)
		changed = true
	}

	for _, sec := range n.Sections {
		if len(n.SessionTimes[sec]) > 0 {
			continue
		}
		s := NewSession("", "")
		if legacy := n.Schedule[sec]; legacy != nil {
			s.Day = legacy.Day
			s.Time = legacy.Time
		}
		n.SessionTimes[sec] = []*Session{s}
		changed = true
	}

	for _, sessions := range n.SessionTimes {
		for _, s := range sessions {
			if s.ID == "" {
				s.ID = uuid.NewString()
				changed = true
			}
			if s.Repeat == "" {
				s.Repeat = RepeatNone
				changed = true
			}
		}
	}

	for _, t := range n.Tasks {
		if t.ID == "" {
			t.ID = uuid.NewString()
			changed = true
		}
		if t.Repeat == "" {
			t.Repeat = RepeatNone
			changed = true
		}
	}

	return changed
}
