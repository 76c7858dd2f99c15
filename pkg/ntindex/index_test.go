package ntindex

import (
	"testing"

	"github.com/ntpanic/solver/pkg/ntmodel"
)

func twoRoadCatalog() ntmodel.TileCatalog {
	catalog := make(ntmodel.TileCatalog, ntmodel.NumPieces)
	for p := range catalog {
		catalog[p][0] = ntmodel.TileSide{}
		catalog[p][1] = ntmodel.TileSide{}
	}
	// Piece 0, side 0 starts with an empty road list; tests add roads.
	catalog[0][0].Roads = []Road{}
	return catalog
}

// Road is a thin local alias purely to keep twoRoadCatalog readable; it is
// the same type as ntmodel.Road.
type Road = ntmodel.Road

func TestBuildEdgeMaskRotation(t *testing.T) {
	catalog := twoRoadCatalog()
	catalog[0][0].Roads = []Road{{Connection: [2]int{ntmodel.EdgeW, ntmodel.EdgeE}}}

	ix := Build(catalog)

	m0 := ix.Mask(ntmodel.OrientedTile{Piece: 0, Side: 0, Orientation: 0})
	if !m0[ntmodel.EdgeW] || !m0[ntmodel.EdgeE] || m0[ntmodel.EdgeN] || m0[ntmodel.EdgeS] {
		t.Fatalf("orientation 0 mask = %v, want W/E set", m0)
	}

	// Rotating 90 degrees should turn the W-E road into a N-S road.
	m1 := ix.Mask(ntmodel.OrientedTile{Piece: 0, Side: 0, Orientation: 1})
	if !m1[ntmodel.EdgeN] || !m1[ntmodel.EdgeS] || m1[ntmodel.EdgeW] || m1[ntmodel.EdgeE] {
		t.Fatalf("orientation 1 mask = %v, want N/S set", m1)
	}
}

func TestCandidatesForNoConstraintReturnsEverything(t *testing.T) {
	catalog := twoRoadCatalog()
	ix := Build(catalog)

	all := ix.CandidatesFor(Required{NoConstraint, NoConstraint, NoConstraint, NoConstraint})
	want := ntmodel.NumPieces * ntmodel.NumSides * ntmodel.NumOrientations
	if len(all) != want {
		t.Fatalf("unconstrained candidate count = %d, want %d", len(all), want)
	}
}

func TestCandidatesForRespectsRequiredPresence(t *testing.T) {
	catalog := twoRoadCatalog()
	catalog[0][0].Roads = []Road{{Connection: [2]int{ntmodel.EdgeW, ntmodel.EdgeE}}}
	ix := Build(catalog)

	req := Required{Present, NoConstraint, NoConstraint, NoConstraint}
	for _, ot := range ix.CandidatesFor(req) {
		if !ix.Mask(ot)[ntmodel.EdgeW] {
			t.Fatalf("candidate %+v does not satisfy required west edge", ot)
		}
	}
}
