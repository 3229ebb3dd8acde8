package bazaar

import (
	"strings"

	"go.trai.ch/vcsmake/internal/core/domain"
)

// pathOffset is where the file name starts in a "FFF path" status line.
const pathOffset = 4

var versionFlags = map[byte]domain.FileState{
	'+': domain.StateVersioned,
	'-': domain.StateUnversioned,
	'R': domain.StateRenamed,
	'?': domain.StateUnknown,
	'X': domain.StateNonexistent,
	'C': domain.StateConflict,
	'P': domain.StatePendingMerge,
}

var contentFlags = map[byte]domain.FileState{
	'N': domain.StateCreated,
	'D': domain.StateDeleted,
	'K': domain.StateKindChanged,
	'M': domain.StateModified,
}

// ParseStatusLine decodes one line of "bzr status --short".
// The content flag overrides the version flag and the execute flag overrides both.
// An empty line yields the zero entry.
func ParseStatusLine(line string) domain.StatusEntry {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return domain.StatusEntry{}
	}

	var entry domain.StatusEntry
	entry.State = versionFlags[line[0]]
	if len(line) >= 2 {
		if s, ok := contentFlags[line[1]]; ok {
			entry.State = s
		}
	}
	if len(line) >= 3 && line[2] == '*' {
		entry.State = domain.StateExecuteBitChanged
	}
	if len(line) > pathOffset {
		entry.Path = strings.TrimLeft(line[pathOffset:], " ")
	}
	return entry
}

// ParseStatus decodes the whole output of "bzr status --short", skipping empty entries.
func ParseStatus(output string) []domain.StatusEntry {
	var entries []domain.StatusEntry
	for line := range strings.Lines(output) {
		entry := ParseStatusLine(line)
		if entry.IsEmpty() {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
