package domain

import "time"

// SyncStats holds statistics about an index build.
type SyncStats struct {
	RootURL         string        `json:"root_url"`
	Languages       int           `json:"languages"`
	Projects        int           `json:"projects"`
	Resources       int           `json:"resources"`
	Catalogs        int           `json:"catalogs"`
	TargetLanguages int           `json:"target_languages"`
	Questionnaires  int           `json:"questionnaires"`
	ChunkMarkers    int           `json:"chunk_markers"`
	Skipped         int           `json:"skipped"`
	Duration        time.Duration `json:"duration"`
}

// Add merges the counters of other into s.
func (s *SyncStats) Add(other *SyncStats) {
	if other == nil {
		return
	}
	s.Languages += other.Languages
	s.Projects += other.Projects
	s.Resources += other.Resources
	s.Catalogs += other.Catalogs
	s.TargetLanguages += other.TargetLanguages
	s.Questionnaires += other.Questionnaires
	s.ChunkMarkers += other.ChunkMarkers
	s.Skipped += other.Skipped
}

// Updates lists slugs whose indexed content is newer than the local archives.
type Updates struct {
	SourceLanguages []string `json:"source_languages"`
	Projects        []string `json:"projects"`
}

func (u *Updates) Empty() bool {
	return len(u.SourceLanguages) == 0 && len(u.Projects) == 0
}

const (
	EventIndexBuilt       = "index.built"
	EventUpdatesAvailable = "updates.available"
)

// CatalogEvent is announced to subscribers after an index build or update check.
type CatalogEvent struct {
	Action  string     `json:"action"`
	Stats   *SyncStats `json:"stats,omitempty"`
	Updates *Updates   `json:"updates,omitempty"`
}
