package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"areamap/internal/areamap"
	"areamap/internal/overlay"
	"areamap/internal/scene"
)

// player is the stand-in for the host's primary player.
type player struct {
	pos     orb.Point
	heading float64
}

func (p *player) Position() orb.Point { return p.pos }
func (p *player) Heading() float64    { return p.heading }

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	catalog *scene.Static
	cache   *areamap.Cache
	overlay *overlay.Overlay
	visible *overlay.Toggle
	player  *player
	areas   []scene.AreaID
	areaIdx int

	// last rendered map size in cells
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverWorld orb.Point
	hoverHasW  bool
	hoverScene string

	// progress table
	showTable bool
	tbl       table.Model
}

func New() Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "areamap ready",
		visible:     &overlay.Toggle{On: true},
		player:      &player{},
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Catalogs"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a GeoJSON scene catalog here. Ctrl+S to load; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a catalog at launch and selects area if it exists.
func NewWithPath(path string, area string) Model {
	m := New()
	m.loadPath(path)
	for i, a := range m.areas {
		if string(a) == area && i != m.areaIdx {
			m.selectArea(i)
		}
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setCatalog swaps in a freshly loaded catalog with an empty cache.
func (m *Model) setCatalog(cat *scene.Static) {
	m.catalog = cat
	m.cache = areamap.NewCatalogCache(cat)
	m.overlay = overlay.New(m.cache, m.visible, m.player)
	m.areas = cat.Areas()
	m.areaIdx = 0
	if cat.HasPlayer {
		m.player.pos, m.player.heading = cat.Player, cat.PlayerHeading
		m.selectAreaKeepPlayer(0)
		return
	}
	m.selectArea(0)
}

func (m *Model) currentArea() (scene.AreaID, bool) {
	if len(m.areas) == 0 {
		return "", false
	}
	return m.areas[m.areaIdx], true
}

// currentData returns the cached map of the selected area.
func (m *Model) currentData() (*areamap.Data, bool) {
	area, ok := m.currentArea()
	if !ok || m.cache == nil {
		return nil, false
	}
	return m.cache.GetOrBuild(area), true
}

// selectArea switches area and drops the player in the middle of it.
func (m *Model) selectArea(i int) {
	m.selectAreaKeepPlayer(i)
	if d, ok := m.currentData(); ok {
		if b, ok := d.Bound(); ok {
			m.player.pos = b.Center()
		}
	}
}

func (m *Model) selectAreaKeepPlayer(i int) {
	m.areaIdx = wrapIndex(i, len(m.areas))
	if m.showTable {
		m.refreshProgress()
	}
}

// step is the distance the player moves per key press.
func (m *Model) step() float64 {
	d, ok := m.currentData()
	if !ok {
		return 1
	}
	b, ok := d.Bound()
	if !ok {
		return 1
	}
	return max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]) / 50
}
