// seehuhn.de/go/speckle - speckles circling rounded rectangles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf plays all test cases and writes one PDF per case.  Each
// PDF shows the final path together with the trail of every speckle,
// older positions drawn in lighter gray.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/speckle"
	"seehuhn.de/go/speckle/field"
	"seehuhn.de/go/speckle/orbit"
	"seehuhn.de/go/speckle/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/trails", "output directory")
	every := flag.Int("every", 4, "record speckle positions every `n` frames")
	verbose := flag.Bool("v", false, "log path rebuilds and redistributions")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	speckle.SetLogger(logger)

	if err := run(*outDir, max(*every, 1), logger); err != nil {
		logger.Error("genpdf failed", "error", err)
		os.Exit(1)
	}
}

func run(outDir string, every int, logger *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(&tc, every, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Info("wrote trail", "case", name, "file", pdfPath)
		}
	}
	return nil
}

// trail is the list of recorded positions of one speckle.
type trail []vec.Vec2

func generatePDF(tc *testcases.TestCase, every int, pdfPath string) error {
	var trails []trail
	var final *orbit.Path
	tc.Play(func(frame int, d *speckle.RoundedRectangle, f *field.Field) {
		final = d.Path()
		if frame%every != 0 {
			return
		}
		for i, pt := range f.Positions(nil) {
			if i >= len(trails) {
				trails = append(trails, nil)
			}
			trails[i] = append(trails[i], pt)
		}
	})

	// Page size in points (1 point = 1 pixel at 72 DPI)
	w, h := float64(tc.Width), float64(tc.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the unit square has y pointing down.
	page.Transform(matrix.Matrix{w, 0, 0, -h, 0, h})

	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(0.01)
	page.SetLineJoin(graphics.LineJoinRound)
	drawPath(page, final.Outline())
	page.Stroke()

	// zero-length strokes with round caps draw dots
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineWidth(0.02)
	for _, tr := range trails {
		for k, pt := range tr {
			age := float64(len(tr)-1-k) / float64(max(len(tr)-1, 1))
			page.SetStrokeColor(color.DeviceGray(0.9 * age))
			page.MoveTo(pt.X, pt.Y)
			page.LineTo(pt.X, pt.Y)
			page.Stroke()
		}
	}

	return page.Close()
}

// pathBuilder is the subset of the page methods used by drawPath.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath adds the path to the current page.  The outline consists of
// lines and cubic curves only.
func drawPath(page pathBuilder, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
