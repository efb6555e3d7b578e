package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature kinds understood by DecodeGeoJSON, taken from the "kind" property.
const (
	KindScene       = "scene"
	KindVolume      = "volume"
	KindCollectible = "collectible"
	KindCapturable  = "capturable"
	KindPlayer      = "player"
)

// LoadGeoJSON reads a catalog from a GeoJSON FeatureCollection file.
func LoadGeoJSON(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return DecodeGeoJSON(data)
}

// DecodeGeoJSON builds a catalog from a FeatureCollection document.
//
// Scene features carry id, name, area and an optional parent. Volume features
// reference a scene and contribute the bounds of their geometry in the (x, z)
// plane. Collectible and capturable features reference a scene and carry
// "collected" or "state". A player feature gives the start position and
// "heading" in degrees. Scene features may appear anywhere in the collection.
func DecodeGeoJSON(data []byte) (*Static, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	cat := NewStatic()

	// scenes first so that later features can reference any of them
	for _, f := range fc.Features {
		if f.Properties.MustString("kind", "") != KindScene {
			continue
		}
		r := Record{
			ID:     ID(f.Properties.MustString("id", "")),
			Name:   f.Properties.MustString("name", ""),
			Area:   AreaID(f.Properties.MustString("area", "")),
			Parent: ID(f.Properties.MustString("parent", "")),
		}
		if r.Name == "" {
			r.Name = string(r.ID)
		}
		if err := cat.AddScene(r); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
	}

	for i, f := range fc.Features {
		kind := f.Properties.MustString("kind", "")
		ref := ID(f.Properties.MustString("scene", ""))
		switch kind {
		case KindScene:
			continue
		case KindVolume:
			if f.Geometry == nil {
				return nil, fmt.Errorf("geojson: feature %d: volume without geometry", i)
			}
			err = cat.AddVolume(ref, f.Geometry.Bound())
		case KindCollectible:
			err = cat.AddCollectible(ref, &Collectible{Collected: f.Properties.MustBool("collected", false)})
		case KindCapturable:
			var state CaptureState
			switch s := f.Properties.MustString("state", "free"); s {
			case "free":
				state = Free
			case "captured":
				state = Captured
			default:
				return nil, fmt.Errorf("geojson: feature %d: unknown capture state %q", i, s)
			}
			err = cat.AddCapturable(ref, &Capturable{State: state})
		case KindPlayer:
			p, ok := f.Geometry.(orb.Point)
			if !ok {
				return nil, fmt.Errorf("geojson: feature %d: player needs a Point geometry", i)
			}
			cat.Player = p
			cat.PlayerHeading = f.Properties.MustFloat64("heading", 0)
			cat.HasPlayer = true
		case "":
			return nil, fmt.Errorf("geojson: feature %d: missing kind", i)
		default:
			return nil, fmt.Errorf("geojson: feature %d: unknown kind %q", i, kind)
		}
		if err != nil {
			return nil, fmt.Errorf("geojson: feature %d: %w", i, err)
		}
	}
	if len(cat.records) == 0 {
		return nil, errors.New("geojson: no scenes found")
	}
	return cat, nil
}
