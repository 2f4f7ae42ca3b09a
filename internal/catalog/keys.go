package catalog

import (
	"fmt"

	"github.com/abhisek/pawnforge/internal/puzzlegen"
	"golang.org/x/mod/semver"
)

// SchemaVersion tags every cache key and entry. Bumping it invalidates all
// prior entries without explicit deletion: older tags simply stop matching.
const SchemaVersion = "v3.0.0"

// CacheKey builds the storage key for one puzzle set.
func CacheKey(userID, category string, band puzzlegen.DifficultyBand, version string) string {
	return fmt.Sprintf("%s|%s|%s|%s", userID, category, band, version)
}

// versionCurrent reports whether a stored entry's schema tag satisfies the
// wanted version. Entries written under an older tag are treated as a miss;
// a newer tag (rolled-back binary) still serves.
func versionCurrent(entryVersion, want string) bool {
	if !semver.IsValid(entryVersion) || !semver.IsValid(want) {
		return entryVersion == want
	}
	return semver.Compare(entryVersion, want) >= 0
}
