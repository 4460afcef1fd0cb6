package get

import (
	"context"
	"errors"
	"fmt"

	"coursedeck/pkg/note"
	"coursedeck/pkg/printers"
	"coursedeck/pkg/store"
)

// Get lists course cards, optionally filtered by lifecycle status.
type Get struct {
	ShowID bool
	Status note.Status

	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	if g.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	fmt.Println("")

	shown := 0
	for _, n := range g.Persistence.List(ctx) {
		if g.Status != "" && n.Status != g.Status {
			continue
		}
		pp.Card(n)
		shown++
	}
	if shown == 0 {
		fmt.Println("No course notes yet. Add one with: coursedeck add course <name>")
	}
	return nil
}
