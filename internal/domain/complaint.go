package domain

// Complaint is the raw input to a combined analysis: the complaint text
// plus whatever optional signals arrived with it.
type Complaint struct {
	Text          string          `json:"text"`
	GPS           *GPSCoordinates `json:"gps,omitempty"`
	ManualAddress string          `json:"manual_address,omitempty"`
	OCRText       string          `json:"ocr_text,omitempty"`
	Vision        *VisionHint     `json:"vision,omitempty"`
}

// GPSCoordinates is a raw latitude/longitude pair, typically lifted from
// image metadata.
type GPSCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VisionHint is the structured summary an external image-understanding
// collaborator produced for an attached photo. Every field is optional.
type VisionHint struct {
	Category            string   `json:"category,omitempty"`
	Description         string   `json:"description,omitempty"`
	SuggestedDepartment string   `json:"suggested_department,omitempty"`
	VisualElements      []string `json:"visual_elements,omitempty"`
	LocationText        string   `json:"location_text,omitempty"`
}
