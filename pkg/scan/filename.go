// Package scan discovers revision files in a law corpus, parses the
// revision-file naming grammar, and accumulates per-law revision
// chains.
package scan

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/coolbeans/lawindex/pkg/law"
)

// Revision files are named <LawId>_<YYYYMMDD>_<PatchId>.xml, where
// the id segments are alphanumeric tokens.
var revisionNamePattern = regexp.MustCompile(
	`^(?P<id>[0-9A-Za-z]+)_(?P<year>[0-9]{4})(?P<month>[0-9]{2})(?P<day>[0-9]{2})_(?P<patchid>[0-9A-Za-z]+)\.xml$`,
)

// FilenameError reports a file name that does not match the
// revision-file grammar.
type FilenameError struct {
	Name string
}

func (e *FilenameError) Error() string {
	return fmt.Sprintf("file name %q does not match the revision-file pattern", e.Name)
}

// ParsedName holds the components of a matched revision file name.
type ParsedName struct {
	ID      string
	Year    int
	Month   int
	Day     int
	PatchID string
}

// ParseRevisionName matches a file name against the revision-file
// grammar. It is a pure function: no filesystem access.
func ParseRevisionName(name string) (ParsedName, error) {
	match := revisionNamePattern.FindStringSubmatch(name)
	if match == nil {
		return ParsedName{}, &FilenameError{Name: name}
	}

	parsed := ParsedName{
		ID:      match[revisionNamePattern.SubexpIndex("id")],
		PatchID: match[revisionNamePattern.SubexpIndex("patchid")],
	}

	// The digit groups are guaranteed numeric by the pattern.
	parsed.Year, _ = strconv.Atoi(match[revisionNamePattern.SubexpIndex("year")])
	parsed.Month, _ = strconv.Atoi(match[revisionNamePattern.SubexpIndex("month")])
	parsed.Day, _ = strconv.Atoi(match[revisionNamePattern.SubexpIndex("day")])

	return parsed, nil
}

// PatchInfoFromName parses a revision file name and converts its date
// to the era calendar, producing the law id and the patch entry for
// the chain. Fails with a FilenameError on a grammar mismatch or a
// law.DateOutOfRangeError when the date precedes the era table.
func PatchInfoFromName(dir, name string) (string, law.PatchInfo, error) {
	parsed, err := ParseRevisionName(name)
	if err != nil {
		return "", law.PatchInfo{}, err
	}

	patchDate, err := law.DateFromAD(parsed.Year, parsed.Month, parsed.Day)
	if err != nil {
		return "", law.PatchInfo{}, fmt.Errorf("revision date of %s: %w", name, err)
	}

	return parsed.ID, law.PatchInfo{
		Dir:       dir,
		File:      name,
		ID:        parsed.ID,
		PatchDate: patchDate,
		PatchID:   parsed.PatchID,
	}, nil
}
