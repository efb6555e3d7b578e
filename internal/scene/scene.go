// Package scene describes the host's sub-zone records as seen by the area
// map: which area a sub-zone belongs to, its parent link, its entrance
// volumes, and the progress items placed inside it.
package scene

import "github.com/paulmach/orb"

// AreaID names a top-level area. It is used as a cache key.
type AreaID string

// ID identifies one sub-zone for the lifetime of the process.
type ID string

// Record is one sub-zone.
type Record struct {
	ID     ID
	Name   string
	Area   AreaID
	Parent ID // empty for the root of an area
}

// HasParent reports whether the record links to a parent sub-zone.
func (r Record) HasParent() bool { return r.Parent != "" }

// ProgressItem is a collectible or capturable entity. Done is read lazily,
// so a snapshot of items keeps tracking progress made after it was taken.
type ProgressItem interface {
	Done() bool
}

// Collectible is done once collected.
type Collectible struct {
	Collected bool
}

func (c *Collectible) Done() bool { return c.Collected }

// CaptureState is the state of a capturable entity.
type CaptureState int

const (
	Free CaptureState = iota
	Captured
)

func (s CaptureState) String() string {
	if s == Captured {
		return "captured"
	}
	return "free"
}

// Capturable is done once captured.
type Capturable struct {
	State CaptureState
}

func (c *Capturable) Done() bool { return c.State == Captured }

// Catalog is the read-only view of the host's scene graph.
type Catalog interface {
	// Scenes lists every known sub-zone in a stable order.
	Scenes() []Record
	// EntranceVolumes returns the world-space (x, z) bounds of each entrance
	// collider attached to the sub-zone.
	EntranceVolumes(id ID) []orb.Bound
	Collectibles(id ID) []ProgressItem
	Capturables(id ID) []ProgressItem
}
