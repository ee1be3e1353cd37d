package models

// LocationSample is one reading produced by the device location subsystem.
type LocationSample struct {
	// Latitude and Longitude are in decimal degrees.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Accuracy is the estimated error radius in meters; smaller is better.
	Accuracy float64 `json:"accuracy"`

	// Timestamp is the reading time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`

	// Provider names the subsystem that produced the reading
	// (e.g. "gps", "network").
	Provider string `json:"provider"`
}

// LocationRecord is an accepted sample as stored in the export history,
// extended with a human-readable timestamp.
type LocationRecord struct {
	LocationSample

	// DateTime is Timestamp rendered as "2006-01-02 15:04:05".
	DateTime string `json:"dateTime"`
}

// LocationExport describes a completed history export.
type LocationExport struct {
	FilePath    string `json:"filePath"`
	FileName    string `json:"fileName"`
	RecordCount int    `json:"recordCount"`
}
