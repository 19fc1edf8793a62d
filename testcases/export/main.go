// Command export plays all test cases and writes the sampled trajectories
// to JSON, together with a PNG preview of the last frame of every case.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/speckle"
	"seehuhn.de/go/speckle/field"
	"seehuhn.de/go/speckle/preview"
	"seehuhn.de/go/speckle/testcases"
)

func main() {
	outDir := flag.String("o", "testdata", "output directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*outDir, logger); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

type jsonTestCase struct {
	Name      string      `json:"name"`
	Inset     float64     `json:"inset"`
	Radius    float64     `json:"corner_radius"`
	Direction string      `json:"direction"`
	Movement  float64     `json:"movement_rate"`
	Response  float64     `json:"position_response_rate"`
	Frames    []jsonFrame `json:"frames"`
}

type jsonFrame struct {
	Frame    int         `json:"frame"`
	Active   []int       `json:"active"`
	Progress []float64   `json:"progress"`
	Pos      [][]float64 `json:"pos"`
}

func run(outDir string, logger *slog.Logger) error {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	previewDir := filepath.Join(outDir, "preview")
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, err := play(name, &tc, filepath.Join(previewDir, name+".png"))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	fname := filepath.Join(outDir, "trajectories.json")
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	logger.Info("wrote trajectories", "file", fname, "cases", len(out.TestCases))
	return nil
}

// play runs a test case, records every frame and writes a preview image
// of the last frame to pngPath.
func play(name string, tc *testcases.TestCase, pngPath string) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:      name,
		Inset:     tc.Options.Inset,
		Radius:    tc.Options.CornerRadius,
		Direction: tc.Options.Direction.String(),
		Movement:  tc.Options.MovementRate,
		Response:  tc.Options.PositionResponseRate,
	}

	canvas := preview.New(tc.Width, tc.Height)
	var last *speckle.RoundedRectangle
	var lastField *field.Field
	tc.Play(func(frame int, d *speckle.RoundedRectangle, f *field.Field) {
		jf := jsonFrame{
			Frame:  frame,
			Active: d.Active(),
		}
		for i, pt := range f.Positions(nil) {
			jf.Progress = append(jf.Progress, d.Progress(i))
			jf.Pos = append(jf.Pos, []float64{pt.X, pt.Y})
		}
		jtc.Frames = append(jtc.Frames, jf)
		last, lastField = d, f
	})

	img := canvas.Frame(last.Path(), lastField.Positions(nil))
	f, err := os.Create(pngPath)
	if err != nil {
		return jtc, err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return jtc, err
	}
	return jtc, f.Close()
}
