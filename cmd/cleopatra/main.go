// Command cleopatra renders a CSV grid of numbers to a PNG figure, an
// animated GIF, or a video file.
//
// The input file holds one row of comma-separated values per line. Blank
// lines split the input into frames: a multi-frame input is animated, a
// single-frame input is plotted. With -hist the values are shown as
// overlaid per-column histograms instead.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Serapieum-of-alex/cleopatra"
)

func main() {
	outFlag := flag.String("o", "out.png", "Output file (.png, .gif, .mp4, .avi, .mov)")
	titleFlag := flag.String("title", "Array Plot", "Figure title")
	cmapFlag := flag.String("cmap", "coolwarm-r", "Colormap name")
	scaleFlag := flag.String("scale", "linear", "Color scale: linear, power, sym-lognorm, boundary-norm, midpoint")
	excludeFlag := flag.String("exclude", "", "Comma-separated sentinel values to mask")
	pointsFlag := flag.String("points", "", "CSV file with id,row,col point overlays")
	cellValuesFlag := flag.Bool("cell-values", false, "Write each cell value on the plot")
	histFlag := flag.Bool("hist", false, "Plot per-column histograms instead of a raster")
	fpsFlag := flag.Int("fps", 2, "Frames per second for animation output")
	intervalFlag := flag.Duration("interval", 200*time.Millisecond, "Frame delay")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input.csv>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	frames, err := readFrames(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	opts := cleopatra.Options{
		"title":              *titleFlag,
		"cmap":               *cmapFlag,
		"color_scale":        *scaleFlag,
		"display_cell_value": *cellValuesFlag,
	}

	if *histFlag {
		if len(frames) != 1 {
			fatal(fmt.Errorf("histograms take a single frame, got %d", len(frames)))
		}
		stat, err := cleopatra.NewStatisticColumns(frames[0], cleopatra.Options{"title": *titleFlag})
		if err != nil {
			fatal(err)
		}
		fig, _, err := stat.Histogram(nil)
		if err != nil {
			fatal(err)
		}
		fatalIf(fig.SavePNG(*outFlag))
		return
	}

	cfg := &cleopatra.Config{}
	if *excludeFlag != "" {
		cfg.ExcludeValues, err = parseFloats(*excludeFlag)
		if err != nil {
			fatal(err)
		}
	}

	var points []cleopatra.Point
	if *pointsFlag != "" {
		points, err = readPoints(*pointsFlag)
		if err != nil {
			fatal(err)
		}
	}
	plotCfg := &cleopatra.PlotConfig{Points: points}

	if len(frames) == 1 {
		glyph, err := cleopatra.New(frames[0], cfg)
		if err != nil {
			fatal(err)
		}
		fig, err := glyph.Plot(plotCfg, opts)
		if err != nil {
			fatal(err)
		}
		fatalIf(fig.SavePNG(*outFlag))
		return
	}

	glyph, err := cleopatra.NewStack(frames, cfg)
	if err != nil {
		fatal(err)
	}
	labels := make([]string, len(frames))
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	animCfg := &cleopatra.AnimateConfig{PlotConfig: *plotCfg, Interval: *intervalFlag}
	if _, err := glyph.Animate(labels, animCfg, opts); err != nil {
		fatal(err)
	}
	fatalIf(glyph.SaveAnimation(*outFlag, *fpsFlag))
}

// readFrames parses the input into one or more grids, split on blank lines.
func readFrames(path string) ([][][]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var frames [][][]float64
	for _, block := range strings.Split(string(raw), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		records, err := csv.NewReader(strings.NewReader(block)).ReadAll()
		if err != nil {
			return nil, err
		}
		var grid [][]float64
		for _, record := range records {
			row := make([]float64, len(record))
			for i, field := range record {
				row[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
			}
			grid = append(grid, row)
		}
		frames = append(frames, grid)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%s: no data", path)
	}
	return frames, nil
}

// readPoints parses an id,row,col table.
func readPoints(path string) ([]cleopatra.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	var points []cleopatra.Point
	for _, record := range records {
		if len(record) != 3 {
			return nil, fmt.Errorf("%s: want id,row,col records, got %d fields", path, len(record))
		}
		var vals [3]float64
		for i, field := range record {
			vals[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		points = append(points, cleopatra.Point{ID: vals[0], Row: vals[1], Col: vals[2]})
	}
	return points, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func fatalIf(err error) {
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
