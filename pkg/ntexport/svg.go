package ntexport

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/ntpanic/solver/internal/ntkerrors"
	"github.com/ntpanic/solver/pkg/ntmodel"
)

// SVGOptions configures the rendered tiling diagram.
type SVGOptions struct {
	CellSize   int    // Pixel size of one board cell (default: 160)
	Margin     int    // Canvas margin in pixels (default: 60)
	ShowLabels bool   // Show piece/side/orientation labels per cell
	ShowLegend bool   // Show a legend explaining the road color
	Title      string // Optional title drawn above the grid
}

// DefaultSVGOptions returns sensible default rendering options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		CellSize:   160,
		Margin:     60,
		ShowLabels: true,
		ShowLegend: true,
		Title:      "Nine Tiles Panic tiling",
	}
}

// edgeMidpoint returns the (x, y) offset, relative to a cell's top-left
// corner, of the midpoint of the given local edge at orientation 0.
func edgeMidpoint(size int, edge int) (int, int) {
	half := size / 2
	switch edge {
	case ntmodel.EdgeW:
		return 0, half
	case ntmodel.EdgeN:
		return half, 0
	case ntmodel.EdgeE:
		return size, half
	case ntmodel.EdgeS:
		return half, size
	}
	return half, half
}

// RenderTiling draws board as a 3x3 grid of oriented tiles: cell borders,
// each tile's roads as lines between the rotated edge midpoints they
// connect, and its item counts as a compact label, mirroring
// original_source/visualize.py's board diagram in spirit.
func RenderTiling(board ntmodel.Board, catalog ntmodel.TileCatalog, opts SVGOptions) ([]byte, error) {
	if opts.CellSize <= 0 {
		opts.CellSize = 160
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	width := ntmodel.GridSize*opts.CellSize + 2*opts.Margin
	height := ntmodel.GridSize*opts.CellSize + 2*opts.Margin
	headerHeight := 0
	if opts.Title != "" {
		headerHeight = 40
	}
	height += headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(width/2, opts.Margin/2, opts.Title,
			"text-anchor:middle;font-size:20px;font-weight:bold;fill:#fff")
	}

	top := opts.Margin + headerHeight
	for pos, ot := range board {
		row, col := ntmodel.RowCol(pos)
		x := opts.Margin + col*opts.CellSize
		y := top + row*opts.CellSize
		drawCell(canvas, x, y, opts.CellSize, ot, catalog, opts)
	}

	if opts.ShowLegend {
		drawLegend(canvas, opts.Margin, top+ntmodel.GridSize*opts.CellSize+20)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawCell(canvas *svg.SVG, x, y, size int, ot *ntmodel.OrientedTile, catalog ntmodel.TileCatalog, opts SVGOptions) {
	canvas.Rect(x, y, size, size, "fill:#16213e;stroke:#4a5568;stroke-width:2")

	if ot == nil {
		return
	}

	tileSide := catalog[ot.Piece][ot.Side]
	for _, road := range tileSide.Roads {
		e0 := ntmodel.Rotate(road.Connection[0], ot.Orientation)
		e1 := ntmodel.Rotate(road.Connection[1], ot.Orientation)
		x0, y0 := edgeMidpoint(size, e0)
		x1, y1 := edgeMidpoint(size, e1)
		canvas.Line(x+x0, y+y0, x+x1, y+y1, "stroke:#4299e1;stroke-width:4;opacity:0.9")
	}

	if opts.ShowLabels {
		label := fmt.Sprintf("%d/%d/%d", ot.Piece, ot.Side, ot.Orientation)
		canvas.Text(x+size/2, y+16, label,
			"text-anchor:middle;font-size:12px;fill:#fff")

		items := itemSummary(tileSide)
		if items != "" {
			canvas.Text(x+size/2, y+size-10, items,
				"text-anchor:middle;font-size:11px;fill:#ed8936")
		}
	}
}

func itemSummary(ts ntmodel.TileSide) string {
	parts := ""
	add := func(label string, n int) {
		if n > 0 {
			parts += fmt.Sprintf("%s:%d ", label, n)
		}
	}
	add("H", ts.Houses)
	add("U", ts.UFOs)
	add("Gi", ts.Girls)
	add("By", ts.Boys)
	add("D", ts.Dogs)
	add("Bu", ts.Hamburgers)
	add("A", ts.Aliens)
	add("Ag", ts.Agents)
	return parts
}

func drawLegend(canvas *svg.SVG, x, y int) {
	canvas.Line(x, y, x+30, y, "stroke:#4299e1;stroke-width:4")
	canvas.Text(x+40, y+4, "road",
		"font-size:12px;fill:#fff")
}

// SaveSVG renders board to path as an SVG file with 0644 permissions.
func SaveSVG(board ntmodel.Board, catalog ntmodel.TileCatalog, path string, opts SVGOptions) error {
	data, err := RenderTiling(board, catalog, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ntkerrors.NewIOError("write", path, err)
	}
	return nil
}
