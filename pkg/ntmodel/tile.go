package ntmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ntpanic/solver/internal/ntkerrors"
)

// Local connection indices, under a tile's own orientation 0.
const (
	EdgeW = 0
	EdgeN = 1
	EdgeE = 2
	EdgeS = 3
)

// NumPieces is the fixed size of the tile inventory (§3).
const NumPieces = 9

// NumSides is the number of faces a physical tile has.
const NumSides = 2

// NumOrientations is the number of 90-degree rotations a tile can take.
const NumOrientations = 4

// Road is one road segment on a tile side, connecting two local edges.
type Road struct {
	Connection [2]int `json:"connection"`
	Item       string `json:"item,omitempty"`
	// Direction names the local edge the item faces. Nil means the road
	// carries no directional item.
	Direction *int `json:"direction,omitempty"`
}

// TileSide is one face of a physical tile: its roads plus scalar item
// counts (§3).
type TileSide struct {
	Roads          []Road `json:"roads"`
	Houses         int    `json:"houses"`
	UFOs           int    `json:"ufos"`
	Girls          int    `json:"girls"`
	Boys           int    `json:"boys"`
	Dogs           int    `json:"dogs"`
	Hamburgers     int    `json:"hamburgers"`
	Aliens         int    `json:"aliens"`
	Agents         int    `json:"agents"`
	CapturedAliens int    `json:"captured_aliens"`
	Curves         int    `json:"curves"`
}

// Tile is a physical piece: its two sides.
type Tile [NumSides]TileSide

// TileCatalog is the full nine-piece inventory, indexed by piece.
type TileCatalog []Tile

// LoadTileCatalog parses and validates a tile catalogue JSON file (§6).
func LoadTileCatalog(path string) (TileCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ntkerrors.NewIOError("read", path, err)
	}

	var raw []Tile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ntkerrors.NewCatalogueError(path, fmt.Sprintf("invalid JSON: %v", err))
	}

	catalog := TileCatalog(raw)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Validate checks structural invariants: exactly NumPieces entries and every
// road's connection indices within {0,1,2,3}.
func (c TileCatalog) Validate() error {
	if len(c) != NumPieces {
		return ntkerrors.NewCatalogueError("", fmt.Sprintf("expected %d pieces, got %d", NumPieces, len(c)))
	}
	for piece, tile := range c {
		for side, ts := range tile {
			for ri, road := range ts.Roads {
				for _, idx := range road.Connection {
					if idx < EdgeW || idx > EdgeS {
						return ntkerrors.NewTopologyError(piece, side, ri, fmt.Sprintf("connection index %d out of range", idx))
					}
				}
				if road.Direction != nil && (*road.Direction < EdgeW || *road.Direction > EdgeS) {
					return ntkerrors.NewTopologyError(piece, side, ri, fmt.Sprintf("direction index %d out of range", *road.Direction))
				}
			}
		}
	}
	return nil
}

// Citizens returns boys+girls for the side, per §4.5's `citizens` property.
func (t TileSide) Citizens() int { return t.Boys + t.Girls }

// Safe reports whether the side carries zero aliens, per §4.5's `safe`
// adjacency property.
func (t TileSide) Safe() bool { return t.Aliens == 0 }
