package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"areamap/internal/scene"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".geojson" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no catalogs in current directory"
	}
}

// loadPath loads a GeoJSON scene catalog into the model.
func (m *Model) loadPath(p string) {
	m.selPath = p
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".geojson", ".json":
		cat, err := scene.LoadGeoJSON(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			log.Printf("load %s: %v", p, err)
			return
		}
		m.setCatalog(cat)
		m.status = "loaded: " + filepath.Base(p) + m.summary()
		log.Printf("loaded %s: %d scenes, %d areas", p, len(cat.Scenes()), len(m.areas))
	default:
		m.status = "unsupported file: " + ext
	}
}

// loadPasted loads a catalog document typed or pasted into the textarea.
func (m *Model) loadPasted(doc string) error {
	cat, err := scene.DecodeGeoJSON([]byte(doc))
	if err != nil {
		return err
	}
	m.selPath = ""
	m.setCatalog(cat)
	m.status = "loaded pasted catalog" + m.summary()
	return nil
}

func (m *Model) summary() string {
	area, ok := m.currentArea()
	if !ok {
		return "  no areas"
	}
	return fmt.Sprintf("  areas=%d  area=%s", len(m.areas), area)
}
