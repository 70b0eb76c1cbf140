// Package entities contains domain entities used across the application.
package entities

// Species represents one bird taxon from the collected dataset,
// including its photos and audio recordings. The dataset is loaded
// once at startup and never mutated afterwards.
type Species struct {
	ID             string      `json:"id"`             // unique species identifier (e.g. "northern-cardinal")
	CommonName     string      `json:"commonName"`     // common English name
	ScientificName string      `json:"scientificName"` // Latin name
	Region         string      `json:"region"`         // geographic region the species was collected for
	Description    string      `json:"description"`    // Wikipedia summary
	Photos         []Photo     `json:"photos"`
	Recordings     []Recording `json:"recordings"`
}

// HasPhotos reports whether the species can back a photo question or option.
func (s *Species) HasPhotos() bool {
	return len(s.Photos) > 0
}

// HasRecordings reports whether the species can back an audio question or option.
func (s *Species) HasRecordings() bool {
	return len(s.Recordings) > 0
}

// Photo is a single photo of a species. A photo has no identity of its
// own beyond its cached path or source URL, which serves as the
// de-duplication key between a question prompt and its answer options.
type Photo struct {
	URL         string `json:"url"`
	Source      string `json:"source"`
	License     string `json:"license"`
	Attribution string `json:"attribution"`
	Cached      string `json:"cached"` // local cached file path, empty if not cached
}

// Key returns the de-duplication key for the photo.
func (p Photo) Key() string {
	if p.Cached != "" {
		return p.Cached
	}
	return p.URL
}

// Recording is a single Xeno-canto recording of a species.
type Recording struct {
	ID                string `json:"id"`
	Type              string `json:"type"` // call type: "song", "call", etc.
	AudioURL          string `json:"audioUrl"`
	SpectrogramURL    string `json:"spectrogramUrl"`
	Quality           string `json:"quality"` // A, B, C, D, E or "no score"
	Duration          string `json:"duration"`
	Location          string `json:"location"`
	Recordist         string `json:"recordist"`
	Date              string `json:"date"`
	License           string `json:"license"`
	CachedAudio       string `json:"cachedAudio"`
	CachedSpectrogram string `json:"cachedSpectrogram"`
}

// Key returns the de-duplication key for the recording's audio.
func (r Recording) Key() string {
	if r.CachedAudio != "" {
		return r.CachedAudio
	}
	return r.AudioURL
}

// Dataset is the on-disk envelope produced by the collection pipeline.
type Dataset struct {
	Species  []*Species      `json:"species"`
	Metadata DatasetMetadata `json:"metadata"`
}

// DatasetMetadata describes the dataset build.
type DatasetMetadata struct {
	Version      string   `json:"version"`
	Created      string   `json:"created"`
	TotalSpecies int      `json:"totalSpecies"`
	DataSources  []string `json:"dataSources"`
	TestMode     bool     `json:"testMode"`
}
