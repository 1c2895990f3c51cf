package models

// MeasureRequest is the transport payload for one measurement. Exactly one
// of Image (base64-encoded bytes, optionally prefixed with a data-URL
// header) or URL (remote image to fetch) must be set.
type MeasureRequest struct {
	Image string `json:"image,omitempty"`
	URL   string `json:"url,omitempty"`
}

// MeasureResponse is the transport representation of one successful
// measurement. The three millimeter fields carry the measurement itself;
// the rest is request metadata.
type MeasureResponse struct {
	EyeWidthMM    float64 `json:"eye_width_mm"`
	BridgeWidthMM float64 `json:"bridge_width_mm"`
	BSizeMM       float64 `json:"b_size_mm"`

	// Method is the calibration path that produced the values: "precise"
	// when iris and pupil circles were found for both eyes, "approximate"
	// otherwise.
	Method string `json:"method"`

	RequestID         string  `json:"request_id"`
	ProcessingTimeSec float64 `json:"processing_time_sec"`

	// Warnings are non-fatal capture quality findings (blur, exposure,
	// resolution). They accompany a valid measurement.
	Warnings []string `json:"warnings,omitempty"`
}
