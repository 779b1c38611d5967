package domain

// Location confidence tiers, also used as coordinate accuracy tiers.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"

	AccuracyUnknown = "unknown"
)

// Fusion methods, in cascade priority order.
const (
	MethodGPS        = "gps"
	MethodManual     = "manual"
	MethodOCR        = "ocr"
	MethodOCRPartial = "ocr_partial"
	MethodNone       = "none"
)

// Evidence source labels recorded on a fused location, in the order the
// cascade consulted them.
const (
	SourceGPSMetadata = "gps_metadata"
	SourceManualInput = "manual_input"
	SourceOCRText     = "ocr_text"
	SourceOCRPartial  = "ocr_partial"
)

// LocationEvidence is everything the extractor found in one piece of text.
type LocationEvidence struct {
	Pincode            string   `json:"pincode,omitempty"`
	State              string   `json:"state,omitempty"`
	City               string   `json:"city,omitempty"`
	AddressKeywords    []string `json:"address_keywords,omitempty"`
	Landmarks          []string `json:"landmarks,omitempty"`
	CandidateAddresses []string `json:"candidate_addresses,omitempty"`
	Confidence         int      `json:"confidence_score"`
}

// FusedLocation is the single best location decision after merging GPS,
// manual and OCR evidence. Coordinates, when present, always lie inside
// the India bounding box; when absent, confidence is never high.
type FusedLocation struct {
	Coordinates *GPSCoordinates `json:"coordinates,omitempty"`
	Address     string          `json:"address,omitempty"`
	Confidence  string          `json:"confidence"`
	Method      string          `json:"method"`
	Sources     []string        `json:"sources,omitempty"`
}

// CoordinateValidation is the outcome of checking a raw GPS pair.
type CoordinateValidation struct {
	IsValid     bool   `json:"is_valid"`
	IsInIndia   bool   `json:"is_in_india"`
	NearestCity string `json:"nearest_city,omitempty"`
	Accuracy    string `json:"accuracy"`
}
