package systems

import (
	"sort"

	"github.com/automoto/rario/components"
	"github.com/automoto/rario/leveldata"
	"github.com/automoto/rario/sprites"
	"github.com/automoto/rario/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions moves every actor along X, resolves, then does the same
// along Y, handing each actor its overlap with the first tile hit. Each actor
// resolves against at most one tile per axis per frame.
func UpdateCollisions(w donburi.World) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	offset := xBack(w)
	actors := Actors(w)

	for _, axis := range []sprites.Axis{sprites.AxisX, sprites.AxisY} {
		for _, a := range actors {
			a.MoveMutate(axis)
			tile, hit := ResolveAxis(space, offset, a)
			if !hit {
				continue
			}
			if overlap, ok := a.Rect().Intersect(tile.Rect().Translate(-offset, 0)); ok {
				a.HandleCollision(axis, overlap)
			}
		}
	}
}

// ResolveAxis finds the first tile, in storage order, that the actor overlaps.
// The probe is grown by a unit on each side because resolv maps the far edge
// to a cell with W-1; the overlap test itself is strict.
func ResolveAxis(space *components.SpaceData, xBack float64, a sprites.Actor) (leveldata.Tile, bool) {
	r := a.Rect()

	probe := space.Probe
	probe.X = r.X + xBack - 1
	probe.Y = r.Y - 1
	probe.W = r.W + 2
	probe.H = r.H + 2
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return leveldata.Tile{}, false
	}

	candidates := make([]leveldata.Tile, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if tile, ok := obj.Data.(leveldata.Tile); ok {
			candidates = append(candidates, tile)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Index < candidates[j].Index })

	for _, tile := range candidates {
		if r.Overlaps(tile.Rect().Translate(-xBack, 0)) {
			return tile, true
		}
	}
	return leveldata.Tile{}, false
}
