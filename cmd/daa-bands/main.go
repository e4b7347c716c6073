// Command daa-bands runs the DAA kinematic bands engine over one or more
// state files and reports track bands, optionally in batch mode across
// many state files concurrently. With -plot, a single-file run also
// writes a plot of its track bands; batch runs write no plot.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rbutler/daaband"
	"github.com/rbutler/daaband/daaio"
	"github.com/rbutler/daaband/projection"
)

func main() {
	stateFile := flag.String("states", "", "path to a state file (required)")
	paramFile := flag.String("params", "", "path to a well-clear parameter file")
	plotPath := flag.String("plot", "", "optional path to write a track-bands plot (PNG)")
	batch := flag.String("batch", "", "comma-separated list of additional state files to run concurrently")
	flag.Parse()

	if *stateFile == "" {
		log.Fatalf("[daa:error] daa-bands: -states is required")
	}

	files := []string{*stateFile}
	if *batch != "" {
		for _, f := range splitCSV(*batch) {
			files = append(files, f)
		}
	}

	if len(files) == 1 {
		if err := runOne(files[0], *paramFile, *plotPath); err != nil {
			log.Fatalf("[daa:error] daa-bands: %v", err)
		}
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, f := range files {
		f := f
		g.Go(func() error { return runOne(f, *paramFile, "") })
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("[daa:error] daa-bands: batch run failed: %v", err)
	}
}

func splitCSV(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ',' {
			out = append(out, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

func runOne(stateFile, paramFile, plotPath string) error {
	f, err := os.Open(stateFile)
	if err != nil {
		return fmt.Errorf("open %s: %w", stateFile, err)
	}
	defer f.Close()

	rows, err := daaio.ReadStates(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", stateFile, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: no state rows", stateFile)
	}

	core := daa.NewDaidalusCore()
	if paramFile != "" {
		pf, err := os.Open(paramFile)
		if err != nil {
			return fmt.Errorf("open %s: %w", paramFile, err)
		}
		defer pf.Close()
		pd, err := daaio.ReadParameters(pf)
		if err != nil {
			return fmt.Errorf("parse %s: %w", paramFile, err)
		}
		core.Parameters = pd
		core.ApplyParameters()
	}

	proj := projection.NewProjector(rows[0].Pos)
	own := daaio.ToTrafficState(rows[0], proj)
	var traffic []daa.TrafficState
	for _, r := range rows[1:] {
		traffic = append(traffic, daaio.ToTrafficState(r, proj))
	}
	core.SetOwnship(own)
	core.SetTraffic(traffic)

	bands := core.TrackBands(own.Time, daa.ToInternal(1, "deg"))
	for _, b := range bands {
		fmt.Printf("%s: trk band [%6.1f, %6.1f] deg -> %s\n",
			stateFile,
			daa.FromInternal(b.Interval.Low, "deg"),
			daa.FromInternal(b.Interval.Up, "deg"),
			b.Region)
	}

	if plotPath != "" {
		return plotTrackBands(plotPath, bands)
	}
	return nil
}

func plotTrackBands(path string, bands []daa.BandsRange) error {
	p := plot.New()
	p.Title.Text = "track bands"
	p.X.Label.Text = "track (deg)"
	p.Y.Label.Text = "severity"

	pts := make(plotter.XYs, 0, len(bands))
	for _, b := range bands {
		mid := (b.Interval.Low + b.Interval.Up) / 2
		pts = append(pts, plotter.XY{X: daa.FromInternal(mid, "deg"), Y: float64(b.Region.Severity())})
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(scatter)
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
