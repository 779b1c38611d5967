// internal/classifier/fusion.go
package classifier

import (
	"context"
	"strings"

	"github.com/jansunwai/grievance-classifier/internal/data"
	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/logger"
)

// India bounding box used for coordinate validation and for discarding
// geocoder results that land abroad.
const (
	indiaLatMin = 6.0
	indiaLatMax = 37.0
	indiaLonMin = 68.0
	indiaLonMax = 98.0
)

// Nearest-city distance thresholds in degrees.
const (
	highAccuracyDistance   = 0.1
	mediumAccuracyDistance = 0.5
)

// Geocoder resolves free-form queries to coordinates and coordinates back
// to labels. Implementations are best-effort: a failed call means no
// result for that signal, never a failed fusion.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (lat, lon float64, err error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// LocationFusion merges GPS, manual and OCR location signals into one best
// decision.
type LocationFusion struct {
	geocoder Geocoder
	logger   logger.Logger
}

// NewLocationFusion creates the fusion stage. A nil geocoder disables
// address resolution; the cascade still works on the remaining signals.
func NewLocationFusion(geocoder Geocoder, log logger.Logger) *LocationFusion {
	return &LocationFusion{geocoder: geocoder, logger: log}
}

// Fuse picks the single best location. Valid in-India GPS wins outright; a
// geocodable manual address is next; then geocodable OCR candidates; then
// partial OCR evidence. A manual address that failed to geocode survives
// as a provisional answer that only a geocoded OCR candidate can replace,
// and in that case both sources are credited.
func (f *LocationFusion) Fuse(
	ctx context.Context,
	gps *domain.GPSCoordinates,
	evidence *domain.LocationEvidence,
	manualAddress string,
) domain.FusedLocation {
	fused := domain.FusedLocation{
		Confidence: domain.ConfidenceLow,
		Method:     domain.MethodNone,
	}

	if gps != nil {
		validation := f.ValidateCoordinates(gps.Latitude, gps.Longitude)
		if validation.IsValid && validation.IsInIndia {
			fused.Coordinates = &domain.GPSCoordinates{Latitude: gps.Latitude, Longitude: gps.Longitude}
			fused.Address = f.reverseGeocode(ctx, gps.Latitude, gps.Longitude)
			fused.Confidence = domain.ConfidenceHigh
			fused.Method = domain.MethodGPS
			fused.Sources = []string{domain.SourceGPSMetadata}
			if f.logger != nil {
				f.logger.Debug("fused location from gps", logger.String("nearest_city", validation.NearestCity))
			}
			return fused
		}
		if f.logger != nil {
			f.logger.Warn("gps coordinates rejected",
				logger.Float64("lat", gps.Latitude),
				logger.Float64("lon", gps.Longitude),
				logger.Bool("valid", validation.IsValid))
		}
	}

	var provisional *domain.FusedLocation
	if strings.TrimSpace(manualAddress) != "" {
		if coords, ok := f.geocodeAddress(ctx, manualAddress); ok {
			fused.Coordinates = coords
			fused.Address = manualAddress
			fused.Confidence = domain.ConfidenceHigh
			fused.Method = domain.MethodManual
			fused.Sources = []string{domain.SourceManualInput}
			return fused
		}
		// Keep the raw manual address; it is still the complainant's word.
		provisional = &domain.FusedLocation{
			Address:    manualAddress,
			Confidence: domain.ConfidenceMedium,
			Method:     domain.MethodManual,
			Sources:    []string{domain.SourceManualInput},
		}
	}

	if evidence != nil {
		for _, candidate := range evidence.CandidateAddresses {
			coords, ok := f.geocodeAddress(ctx, candidate)
			if !ok {
				continue
			}
			fused.Coordinates = coords
			fused.Address = candidate
			fused.Confidence = domain.ConfidenceMedium
			fused.Method = domain.MethodOCR
			fused.Sources = []string{domain.SourceOCRText}
			if provisional != nil {
				fused.Sources = []string{domain.SourceManualInput, domain.SourceOCRText}
			}
			return fused
		}
	}

	if provisional != nil {
		return *provisional
	}

	if evidence != nil && (evidence.Pincode != "" || evidence.City != "") {
		parts := make([]string, 0, 3)
		if evidence.City != "" {
			parts = append(parts, evidence.City)
		}
		if evidence.State != "" {
			parts = append(parts, evidence.State)
		}
		if evidence.Pincode != "" {
			parts = append(parts, evidence.Pincode)
		}
		fused.Address = strings.Join(parts, ", ")
		fused.Method = domain.MethodOCRPartial
		fused.Sources = []string{domain.SourceOCRPartial}
		if coords, ok := f.geocodeAddress(ctx, fused.Address); ok {
			fused.Coordinates = coords
			fused.Confidence = domain.ConfidenceMedium
		}
		return fused
	}

	return fused
}

// ValidateCoordinates checks a raw GPS pair and, for points inside India,
// locates it relative to the major-city table.
func (f *LocationFusion) ValidateCoordinates(lat, lon float64) domain.CoordinateValidation {
	validation := domain.CoordinateValidation{Accuracy: domain.AccuracyUnknown}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return validation
	}
	validation.IsValid = true
	validation.IsInIndia = inIndia(lat, lon)
	if !validation.IsInIndia {
		return validation
	}

	city, distance := data.NearestCity(lat, lon)
	validation.NearestCity = city
	switch {
	case distance < highAccuracyDistance:
		validation.Accuracy = domain.ConfidenceHigh
	case distance < mediumAccuracyDistance:
		validation.Accuracy = domain.ConfidenceMedium
	default:
		validation.Accuracy = domain.ConfidenceLow
	}
	return validation
}

func inIndia(lat, lon float64) bool {
	return lat >= indiaLatMin && lat <= indiaLatMax && lon >= indiaLonMin && lon <= indiaLonMax
}

// geocodeAddress resolves an address through the collaborator, appending
// ", India" to disambiguate. Results outside the India bounding box are
// discarded.
func (f *LocationFusion) geocodeAddress(ctx context.Context, address string) (*domain.GPSCoordinates, bool) {
	if f.geocoder == nil {
		return nil, false
	}
	lat, lon, err := f.geocoder.Geocode(ctx, address+", India")
	if err != nil {
		if f.logger != nil {
			f.logger.Warn("geocoding failed", logger.String("address", address), logger.Error(err))
		}
		return nil, false
	}
	if !inIndia(lat, lon) {
		if f.logger != nil {
			f.logger.Warn("geocoded point outside india, discarding",
				logger.Float64("lat", lat), logger.Float64("lon", lon))
		}
		return nil, false
	}
	return &domain.GPSCoordinates{Latitude: lat, Longitude: lon}, true
}

func (f *LocationFusion) reverseGeocode(ctx context.Context, lat, lon float64) string {
	if f.geocoder == nil {
		return ""
	}
	label, err := f.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		if f.logger != nil {
			f.logger.Warn("reverse geocoding failed", logger.Error(err))
		}
		return ""
	}
	return label
}
