package scene

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Static is an in-memory Catalog.
type Static struct {
	records      []Record
	index        map[ID]int
	volumes      map[ID][]orb.Bound
	collectibles map[ID][]ProgressItem
	capturables  map[ID][]ProgressItem

	// Player is the starting player position, if the source provided one.
	Player        orb.Point
	PlayerHeading float64
	HasPlayer     bool
}

func NewStatic() *Static {
	return &Static{
		index:        map[ID]int{},
		volumes:      map[ID][]orb.Bound{},
		collectibles: map[ID][]ProgressItem{},
		capturables:  map[ID][]ProgressItem{},
	}
}

// AddScene registers a sub-zone. Records keep insertion order.
func (s *Static) AddScene(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("scene: empty id")
	}
	if _, dup := s.index[r.ID]; dup {
		return fmt.Errorf("scene: duplicate id %q", r.ID)
	}
	s.index[r.ID] = len(s.records)
	s.records = append(s.records, r)
	return nil
}

func (s *Static) AddVolume(id ID, b orb.Bound) error {
	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("scene: volume for unknown scene %q", id)
	}
	s.volumes[id] = append(s.volumes[id], b)
	return nil
}

func (s *Static) AddCollectible(id ID, c *Collectible) error {
	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("scene: collectible for unknown scene %q", id)
	}
	s.collectibles[id] = append(s.collectibles[id], c)
	return nil
}

func (s *Static) AddCapturable(id ID, c *Capturable) error {
	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("scene: capturable for unknown scene %q", id)
	}
	s.capturables[id] = append(s.capturables[id], c)
	return nil
}

// Scene returns the record registered under id.
func (s *Static) Scene(id ID) (Record, bool) {
	i, ok := s.index[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Areas lists the distinct area ids in first-seen order.
func (s *Static) Areas() []AreaID {
	var out []AreaID
	seen := map[AreaID]bool{}
	for _, r := range s.records {
		if seen[r.Area] {
			continue
		}
		seen[r.Area] = true
		out = append(out, r.Area)
	}
	return out
}

func (s *Static) Scenes() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Static) EntranceVolumes(id ID) []orb.Bound { return s.volumes[id] }
func (s *Static) Collectibles(id ID) []ProgressItem { return s.collectibles[id] }
func (s *Static) Capturables(id ID) []ProgressItem  { return s.capturables[id] }
