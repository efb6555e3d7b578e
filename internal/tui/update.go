package tui

import (
	"fmt"
	"log"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"
)

const sidebarWidth = 28

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "ctrl+s":
				doc := strings.TrimSpace(m.ta.Value())
				if doc == "" {
					m.status = "paste: empty"
					return m, nil
				}
				if err := m.loadPasted(doc); err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showTable {
			switch msg.String() {
			case "up", "down", "pgup", "pgdown", "home", "end":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "m":
			on := m.visible.Flip()
			m.status = fmt.Sprintf("map: %v", on)
		case "[":
			m.selectArea(m.areaIdx - 1)
			m.status = "area: " + m.areaName()
		case "]":
			m.selectArea(m.areaIdx + 1)
			m.status = "area: " + m.areaName()
		case "r":
			if area, ok := m.currentArea(); ok {
				m.cache.Invalidate(area)
				m.status = "rebuilt: " + string(area)
				log.Printf("invalidated area %s", area)
			}
		case "up", "w":
			m.move(0, 1, 0)
		case "down", "s":
			m.move(0, -1, 180)
		case "left", "a":
			m.move(-1, 0, 270)
		case "right", "d":
			m.move(1, 0, 90)
		case ",":
			m.player.heading = wrapHeading(m.player.heading - 15)
		case ".":
			m.player.heading = wrapHeading(m.player.heading + 15)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshProgress()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
	case tea.MouseMsg:
		// compute map origin and size (must match View layout)
		sw := 0
		if m.showSidebar {
			sw = sidebarWidth
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := max(4, m.height-headerHeight-footerHeight)
		contentWidth := max(10, m.width)
		mapWidth := max(10, contentWidth-sw-1)
		mapHeight := contentHeight
		mapOriginX := sw
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := headerHeight
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			if p, ok := m.cellToWorld(m.hoverCellX, m.hoverCellY, max(8, mapWidth), max(4, mapHeight)); ok {
				m.hoverHasW = true
				m.hoverWorld = p
				m.hoverScene = m.sceneAt(p)
			} else {
				m.hoverHasW = false
				m.hoverScene = ""
			}
		} else {
			m.hovering = false
			m.hoverHasW = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// move steps the player along the world axes and faces it that way.
func (m *Model) move(dx, dz, heading float64) {
	s := m.step()
	m.player.pos = orb.Point{m.player.pos[0] + dx*s, m.player.pos[1] + dz*s}
	m.player.heading = heading
	if where := m.sceneAt(m.player.pos); where != "" {
		m.status = "player in " + where
	} else {
		m.status = fmt.Sprintf("player at x=%.1f z=%.1f", m.player.pos[0], m.player.pos[1])
	}
}

func (m *Model) areaName() string {
	area, ok := m.currentArea()
	if !ok {
		return "<none>"
	}
	return string(area)
}

func wrapHeading(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
