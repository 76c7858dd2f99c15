// Package ntexport renders the selector's results to the two JSON
// artifacts §6 specifies (best_solutions.json, percentiles.json) and, as a
// supplemented visual debugging aid mirroring
// original_source/visualize.py, an SVG rendering of any single tiling.
package ntexport
