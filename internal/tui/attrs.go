package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"areamap/internal/areamap"
	"areamap/internal/layout"
)

// refreshProgress rebuilds the progress table for the current area.
func (m *Model) refreshProgress() {
	d, ok := m.currentData()
	if !ok || len(d.Children) == 0 {
		m.showTable = false
		m.status = "no sub-zones in current area"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Sub-zone", Width: 20},
		{Title: "Coins", Width: 9},
		{Title: "Coins %", Width: 7},
		{Title: "Fish", Width: 9},
		{Title: "Fish %", Width: 7},
	}
	rows := make([]table.Row, 0, len(d.Children))
	for i, c := range d.Children {
		coins, coinsTotal := areamap.Count(d.Collectibles[c.ID])
		fish, fishTotal := areamap.Count(d.Capturables[c.ID])
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			layout.DisplayName(d.RootName(), c.Name),
			fmt.Sprintf("%d/%d", coins, coinsTotal),
			pct(coins, coinsTotal),
			fmt.Sprintf("%d/%d", fish, fishTotal),
			pct(fish, fishTotal),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func pct(done, total int) string {
	p, ok := areamap.Percent(done, total)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", p)
}
