package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"coursedeck/pkg/note"
)

// Persistence is the durable store for course notes. List always returns a
// fully normalized collection (malformed records are skipped, absent data is
// an empty collection), and SaveAll replaces the whole collection at once;
// there is no partial update.
type Persistence interface {
	List(ctx context.Context) []*note.Note
	SaveAll(notes []*note.Note) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*note.Note, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	n := note.Note{}
	if err := json.Unmarshal(val, &n); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	n.ID = pk.FileName
	note.Normalize(&n)
	return &n, nil
}

func (p *persistence) List(ctx context.Context) []*note.Note {
	all := make([]*note.Note, 0)
	for key := range p.d.Keys(ctx.Done()) {
		n, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, n)
	}
	sortNotes(all)
	return all
}

// SaveAll writes every note and erases any key the new collection no longer
// contains, so a status change relocates the record and a removed note
// disappears in the same pass.
func (p *persistence) SaveAll(notes []*note.Note) error {
	keep := make(map[string]struct{}, len(notes))
	for _, n := range notes {
		key := toKey(n)
		data, err := json.Marshal(n)
		if err != nil {
			return err
		}
		if err := p.d.Write(key, data); err != nil {
			return err
		}
		keep[key] = struct{}{}
	}

	stale := make([]string, 0)
	for key := range p.d.Keys(nil) {
		if _, ok := keep[key]; !ok {
			stale = append(stale, key)
		}
	}
	for _, key := range stale {
		if err := p.d.Erase(key); err != nil {
			return err
		}
	}
	return nil
}

func sortNotes(notes []*note.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		left := notes[i]
		right := notes[j]
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.Before(rt)
		}
	})
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

// toKey makes `status-id`, bucketing records by lifecycle status on disk. Note
// IDs are dash-free hex so the transform stays invertible.
func toKey(n *note.Note) string {
	status := n.Status
	if status == "" {
		status = note.StatusActive
	}

	if n.ID == "" {
		b, _ := json.Marshal(n)
		id := md5.Sum(b)
		n.ID = fmt.Sprintf("%x", id[:8])
	}

	return fmt.Sprintf("%s-%s", status, n.ID)
}
