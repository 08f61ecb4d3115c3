//go:build !js

package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plus3/invaders/world"
)

// EntityRow is one line of the entity table.
type EntityRow struct {
	ID   world.EntityId
	Kind world.Kind
	Rect world.Rect
}

const (
	columnID = iota
	columnKind
	columnX
	columnY
)

// collectRows snapshots every entity of w, player first.
func collectRows(w *world.World, dst []EntityRow) []EntityRow {
	for _, kind := range []world.Kind{world.Player, world.Enemy, world.PlayerShot, world.EnemyShot} {
		for e := range w.Each(kind) {
			dst = append(dst, EntityRow{ID: e.Id, Kind: e.Kind, Rect: e.Rect})
		}
	}
	return dst
}

func sortRows(rows []EntityRow, column int, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less bool

		switch column {
		case columnKind:
			less = a.Kind < b.Kind
		case columnX:
			less = a.Rect.X < b.Rect.X
		case columnY:
			less = a.Rect.Y < b.Rect.Y
		default:
			less = a.ID < b.ID
		}

		if !ascending {
			return !less
		}
		return less
	})
}

// filterRows keeps the rows whose id or kind contains filter.
func filterRows(rows []EntityRow, filter string) []EntityRow {
	if filter == "" {
		return rows
	}

	filtered := make([]EntityRow, 0, len(rows))
	filterLower := strings.ToLower(filter)

	for _, row := range rows {
		idStr := fmt.Sprintf("%d", row.ID)
		if !strings.Contains(idStr, filterLower) && !strings.Contains(row.Kind.String(), filterLower) {
			continue
		}
		filtered = append(filtered, row)
	}

	return filtered
}
