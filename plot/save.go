// SPDX-License-Identifier: MIT

// Package plot - PNG rendering of populated figures.
package plot

import (
	"os"
	"path/filepath"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Canvas dimensions. Stacked gain figures take two rows.
const (
	figWidth  = 6 * vg.Inch
	figHeight = 4 * vg.Inch
)

// Save writes one PNG per populated figure into dir, creating the
// directory if needed. File names are fixed per figure kind. With no
// populated figures Save does nothing and returns nil.
func (f *Figures) Save(dir string) error {
	if f.Count() == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for k := kind(0); k < kindCount; k++ {
		fig := f.figs[k]
		if fig == nil {
			continue
		}
		path := filepath.Join(dir, kindFile[k])
		if fig.top != nil {
			if err := saveStacked(fig.top, fig.bottom, path); err != nil {
				return err
			}
			continue
		}
		if err := fig.single.Save(figWidth, figHeight, path); err != nil {
			return err
		}
	}
	return nil
}

// saveStacked renders top above bottom on one canvas with aligned
// frequency axes and writes the result as a PNG.
func saveStacked(top, bottom *gplot.Plot, path string) error {
	img := vgimg.New(figWidth, 2*figHeight)
	dc := draw.New(img)
	plots := [][]*gplot.Plot{{top}, {bottom}}
	canvases := gplot.Align(plots, draw.Tiles{Rows: 2, Cols: 1}, dc)
	top.Draw(canvases[0][0])
	bottom.Draw(canvases[1][0])

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
