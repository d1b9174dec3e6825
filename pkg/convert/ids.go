package convert

// idPriority is the fixed identifier preference order. The import endpoint
// favors globally unique, cross-service-stable schemes over its internal
// one, so this ordering must not change: imdb > tmdb > tvdb > trakt.
var idPriority = []struct {
	scheme string // key in the export's ids block
	field  string // key in the import record
}{
	{"imdb", "imdb_id"},
	{"tmdb", "tmdb_id"},
	{"tvdb", "tvdb_id"},
	{"trakt", "trakt_id"},
}

// ResolveID picks the best identifier from an export ids block. The first
// scheme in priority order with a non-empty value wins. Returns ok=false
// when no scheme has a usable value.
func ResolveID(ids map[string]any) (field string, value any, ok bool) {
	if len(ids) == 0 {
		return "", nil, false
	}
	for _, p := range idPriority {
		if v, found := ids[p.scheme]; found && idPresent(v) {
			return p.field, v, true
		}
	}
	return "", nil, false
}

// idPresent reports whether an identifier value is usable. Null, empty
// strings, and zero numbers all count as absent.
func idPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case int64:
		return t != 0
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
