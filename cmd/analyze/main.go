// Command analyze runs the grievance classification pipeline over a single
// complaint and prints the analysis as JSON. It resolves addresses against
// the bundled city table, so it works without network access.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jansunwai/grievance-classifier/internal/classifier"
	"github.com/jansunwai/grievance-classifier/internal/data"
	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

// cityGeocoder resolves free-text addresses against the major-city table.
type cityGeocoder struct{}

func (cityGeocoder) Geocode(_ context.Context, query string) (float64, float64, error) {
	for _, part := range strings.Split(query, ",") {
		if coords, ok := data.CoordinatesFor(strings.TrimSpace(part)); ok {
			return coords.Lat, coords.Lon, nil
		}
	}
	return 0, 0, fmt.Errorf("no known city in %q", query)
}

func (cityGeocoder) ReverseGeocode(_ context.Context, lat, lon float64) (string, error) {
	city, _ := data.NearestCity(lat, lon)
	if city == "" {
		return "", fmt.Errorf("no reference city for %.4f,%.4f", lat, lon)
	}
	return city, nil
}

func main() {
	var (
		text     string
		ocrText  string
		address  string
		lat      float64
		lon      float64
		hintCat  string
		hintDept string
		pretty   bool
		verbose  bool
	)

	flag.StringVar(&text, "text", "", "Complaint text to analyze (reads stdin when empty)")
	flag.StringVar(&ocrText, "ocr", "", "Text recovered from an attached photo")
	flag.StringVar(&address, "address", "", "Manually entered address")
	flag.Float64Var(&lat, "lat", 0, "GPS latitude from photo metadata")
	flag.Float64Var(&lon, "lon", 0, "GPS longitude from photo metadata")
	flag.StringVar(&hintCat, "vision-category", "", "Category suggested by image analysis")
	flag.StringVar(&hintDept, "vision-department", "", "Department code suggested by image analysis")
	flag.BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	flag.BoolVar(&verbose, "v", false, "Log pipeline internals to stderr")
	flag.Parse()

	gpsSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "lat" || f.Name == "lon" {
			gpsSet = true
		}
	})

	if text == "" && ocrText == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read stdin: %v\n", err)
			os.Exit(1)
		}
		text = strings.TrimSpace(string(raw))
	}
	if text == "" && ocrText == "" {
		fmt.Fprintln(os.Stderr, "Error: no complaint text. Use -text, -ocr or pipe text on stdin")
		os.Exit(1)
	}

	level := "error"
	if verbose {
		level = "debug"
	}
	log, err := logger.NewFromLoggingConfig(level, "json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	analyzer, err := classifier.NewAnalyzer(log, cityGeocoder{}, classifier.Config{Version: "cli"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build analyzer: %v\n", err)
		os.Exit(1)
	}

	complaint := &domain.Complaint{
		Text:          text,
		OCRText:       ocrText,
		ManualAddress: address,
	}
	if gpsSet {
		complaint.GPS = &domain.GPSCoordinates{Latitude: lat, Longitude: lon}
	}
	if hintCat != "" || hintDept != "" {
		complaint.Vision = &domain.VisionHint{
			Category:            hintCat,
			SuggestedDepartment: hintDept,
		}
	}

	analysis := analyzer.Analyze(context.Background(), complaint)

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(analysis); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode analysis: %v\n", err)
		os.Exit(1)
	}
}
