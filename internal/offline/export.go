package offline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ExportManifest is the file staff hand to the registration desk for
// manual reconciliation.
type ExportManifest struct {
	BadgeNumber string    `json:"badge_number"`
	ExportedAt  time.Time `json:"exported_at"`
	RecordCount int       `json:"record_count"`
	Records     []Record  `json:"records"`
}

// ExportFileName follows the offline_verifications_<badge>_<date>.json
// convention so files from different stations sort predictably.
func ExportFileName(badgeNumber string, now time.Time) string {
	return fmt.Sprintf("offline_verifications_%s_%s.json", badgeNumber, now.Format("2006-01-02"))
}

// WriteExport serializes the badge's queue into dir and returns the
// full path of the written file.
func WriteExport(dir, badgeNumber string, records []Record, now time.Time) (string, error) {
	manifest := ExportManifest{
		BadgeNumber: badgeNumber,
		ExportedAt:  now.UTC(),
		RecordCount: len(records),
		Records:     records,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFileName(badgeNumber, now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
