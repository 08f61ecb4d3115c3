//go:build !js

package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/invaders/world"
)

// EntityBrowser lists the live entities with their rectangles. The table is
// rebuilt every frame since projectiles come and go each tick.
type EntityBrowser struct {
	rows               []EntityRow
	selectedEntityId   world.EntityId
	filterText         string
	sortColumn         int
	sortAscending      bool
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		sortAscending:      true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(w *world.World) {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	eb.rows = collectRows(w, eb.rows[:0])
	sortRows(eb.rows, eb.sortColumn, eb.sortAscending)
	filtered := filterRows(eb.rows, eb.filterText)

	totalPages := max(1, (len(filtered)+eb.maxEntitiesPerPage-1)/eb.maxEntitiesPerPage)
	eb.currentPage = min(eb.currentPage, totalPages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			row := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(row.Kind.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.Rect.X))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.Rect.Y))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.maxEntitiesPerPage {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	if e, ok := w.Get(eb.selectedEntityId); ok {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Selected %d (%s)", e.Id, e.Kind))
		imgui.Text(fmt.Sprintf("x=%.1f y=%.1f w=%.0f h=%.0f", e.Rect.X, e.Rect.Y, e.Rect.W, e.Rect.H))
	}

	imgui.End()
}
