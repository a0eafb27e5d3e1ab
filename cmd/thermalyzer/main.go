package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thermalyzer/pkg/analysis"
	"thermalyzer/pkg/config"
	"thermalyzer/pkg/logging"
	"thermalyzer/pkg/model"
	"thermalyzer/pkg/version"
)

var (
	initConfig  = flag.Bool("init-config", false, "Generate default config file and exit")
	configPath  = flag.String("config", "configs/thermalyzer.yaml", "Path to config file")
	trackPath   = flag.String("track", "", "Path to a pre-parsed track JSON file")
	geojsonPath = flag.String("geojson", "", "Optional path to write the GeoJSON overlay")
)

func main() {
	flag.Parse()

	if *initConfig {
		if err := config.GenerateDefault(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config file generated: %s\n", *configPath)
		return
	}

	if *trackPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: thermalyzer -track <points.json> [-config <path>] [-geojson <out>]")
		os.Exit(2)
	}

	if err := run(context.Background(), *configPath, *trackPath, *geojsonPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, trackPath, geojsonPath string) error {
	// The triangle search is the only superlinear step; Ctrl-C aborts it
	// cooperatively instead of killing the process mid-write.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanupLogs, err := logging.Init(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("Thermalyzer started", "version", version.Version, "track", trackPath)

	track, err := loadTrack(trackPath)
	if err != nil {
		return fmt.Errorf("failed to load track: %w", err)
	}

	report, err := analysis.New(&cfg.Analysis).Analyze(ctx, track)
	if err != nil {
		return err
	}

	printReport(os.Stdout, report)

	if geojsonPath != "" {
		if err := writeOverlay(geojsonPath, track, report); err != nil {
			return fmt.Errorf("failed to write overlay: %w", err)
		}
		slog.Info("overlay written", "path", geojsonPath)
	}
	return nil
}

// trackInput is the boundary format: an already-parsed point sequence plus
// header metadata. Parsing raw flight logs is the job of an external parser.
type trackInput struct {
	Date     string       `json:"date"` // YYYY-MM-DD
	Pilot    string       `json:"pilot"`
	Glider   string       `json:"glider"`
	GliderID string       `json:"glider_id"`
	Points   []pointInput `json:"points"`
}

type pointInput struct {
	Time        time.Time `json:"time"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	PressureAlt int       `json:"pressure_alt"`
	GPSAlt      int       `json:"gps_alt"`
	Valid       bool      `json:"valid"`
}

func loadTrack(path string) (*model.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var in trackInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("invalid track JSON: %w", err)
	}

	header := model.TrackHeader{
		Pilot:    in.Pilot,
		Glider:   in.Glider,
		GliderID: in.GliderID,
	}
	if in.Date != "" {
		date, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", in.Date, err)
		}
		header.Date = date
	}

	points := make([]model.TrackPoint, len(in.Points))
	for i, p := range in.Points {
		points[i] = model.NewTrackPoint(p.Time.UTC(), p.Lat, p.Lon, p.PressureAlt, p.GPSAlt, p.Valid)
	}
	return model.NewTrack(header, points), nil
}

func printReport(w io.Writer, r *model.Report) {
	fmt.Fprintf(w, "Flight %s (%s, %d points, %s)\n", r.ID, r.Header.Pilot, r.Points, r.Duration)
	fmt.Fprintf(w, "  Climb (inst/5s/15s):  %+.1f / %+.1f / %+.1f m/s\n",
		r.Extremes.Instant.MaxClimb, r.Extremes.Avg5s.MaxClimb, r.Extremes.Avg15s.MaxClimb)
	fmt.Fprintf(w, "  Sink  (inst/5s/15s):  %+.1f / %+.1f / %+.1f m/s\n",
		r.Extremes.Instant.MaxSink, r.Extremes.Avg5s.MaxSink, r.Extremes.Avg15s.MaxSink)
	fmt.Fprintf(w, "  Thermals:             %d (mean %.1f m/s, total %s)\n",
		r.Thermals.Count, r.Thermals.MeanStrength, r.Thermals.TotalTime)
	if r.Thermals.Strongest != nil {
		fmt.Fprintf(w, "  Strongest thermal:    %.1f m/s for %s\n",
			r.Thermals.Strongest.AvgStrength, r.Thermals.Strongest.Duration)
	}
	fmt.Fprintf(w, "  Glide:                best L/D %.1f, mean %.1f, longest %.1f km, climbing %.0f%%\n",
		r.Glide.BestLD, r.Glide.MeanLD, r.Glide.LongestGlideKm, r.Glide.ClimbPercent)
	if r.Closing.Closed {
		fmt.Fprintf(w, "  Closing point:        index %d\n", r.Closing.Index)
	} else {
		fmt.Fprintf(w, "  Closing point:        not closed (%s)\n", r.Closing.Reason)
	}
	if r.Triangle.Valid {
		fmt.Fprintf(w, "  Triangle:             %.1f km perimeter\n", r.Triangle.PerimeterKm)
	} else {
		fmt.Fprintf(w, "  Triangle:             none (%s)\n", r.Triangle.Reason)
	}
	d := r.Triangle.Diagnostics
	fmt.Fprintf(w, "  Search diagnostics:   %d comparisons over %d/%d samples in %s\n",
		d.Comparisons, d.SampleCount, d.TotalPoints, d.Elapsed)
}

func writeOverlay(path string, track *model.Track, report *model.Report) error {
	fc := analysis.Overlay(track, report)
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
