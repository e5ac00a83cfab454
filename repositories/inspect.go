package repositories

import (
	"strings"
	"time"

	"github.com/mama165/sdk-go/database"
)

// InspectPrefixes are the key spaces worth listing when looking at a database.
var InspectPrefixes = []string{requestPrefix, factPrefix, sessionPrefix, factIndexPrefix}

// Entry is a decoded Badger value, for the inspector and the debug server.
type Entry struct {
	Key    string
	Kind   string
	Owner  string
	Detail string
	At     time.Time
}

// DecodeEntry returns false for keys it does not know.
func DecodeEntry(key string, value []byte) (Entry, bool) {
	entry := Entry{Key: key}
	switch {
	case strings.HasPrefix(key, requestPrefix):
		var disk diskRecord
		if err := unmarshal(value, &disk); err != nil {
			return entry, false
		}
		record := toRecord(disk)
		entry.Kind, entry.Owner, entry.At = "REQUEST", record.Author, record.CreatedAt
		entry.Detail = record.Prompt
		if record.Answered() {
			entry.Kind = "ANSWERED"
			entry.Detail += " => " + record.Persona() + ": " + *record.Response
		}
	case strings.HasPrefix(key, factPrefix):
		var disk diskFact
		if err := unmarshal(value, &disk); err != nil {
			return entry, false
		}
		fact := toFact(disk)
		entry.Kind, entry.Owner, entry.At = "FACT", fact.Username, fact.UpdatedAt
		entry.Detail = fact.Display()
		if !fact.Active {
			entry.Kind = "FACT (deleted)"
		}
	case strings.HasPrefix(key, sessionPrefix), strings.HasPrefix(key, factIndexPrefix):
		entry.Kind, entry.Detail = "INDEX", string(value)
	default:
		return entry, false
	}
	return entry, true
}

// InspectMapper renders a key for the Badger debug server.
func InspectMapper(key string, value []byte) database.InspectRow {
	row := database.DefaultMapper(key, value)
	entry, ok := DecodeEntry(key, value)
	if !ok {
		return row
	}
	row.Type = entry.Kind
	row.Detail = entry.Detail
	return row
}
