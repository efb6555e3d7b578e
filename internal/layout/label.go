package layout

import (
	"fmt"
	"strings"

	"areamap/internal/areamap"
	"areamap/internal/scene"
)

// DisplayName strips the "<root>_" prefix from a child's name. Without a
// root name the child name is returned unchanged.
func DisplayName(root, name string) string {
	if root == "" {
		return name
	}
	return strings.TrimPrefix(name, root+"_")
}

// Label is the three-line caption of a child: its display name followed by
// coin and fish progress.
func Label(d *areamap.Data, child scene.Record) string {
	coins, coinsTotal := areamap.Count(d.Collectibles[child.ID])
	fish, fishTotal := areamap.Count(d.Capturables[child.ID])
	return fmt.Sprintf("%s\nCoins: %3d/%3d (%s)\nFish:  %3d/%3d (%s)",
		DisplayName(d.RootName(), child.Name),
		coins, coinsTotal, percent(coins, coinsTotal),
		fish, fishTotal, percent(fish, fishTotal),
	)
}

func percent(done, total int) string {
	p, ok := areamap.Percent(done, total)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%3d%%", p)
}
