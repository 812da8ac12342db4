package identity

// mergeDecision says whether a new reference displaces the stored
// origin/source provenance of an existing entry.
type mergeDecision int

const (
	keepExisting mergeDecision = iota
	takeIncoming
)

// origins in priority order, for building and auditing the merge table.
var allOrigins = []Origin{
	OriginEnvironment,
	OriginArgv,
	OriginConfigFile,
	OriginDefault,
	OriginDirectory,
}

// mergeTable is keyed by (existing origin, incoming origin). The incoming
// reference wins provenance only when it strictly outranks the stored one.
var mergeTable = buildMergeTable()

func buildMergeTable() map[Origin]map[Origin]mergeDecision {
	table := make(map[Origin]map[Origin]mergeDecision, len(allOrigins))
	for _, existing := range allOrigins {
		row := make(map[Origin]mergeDecision, len(allOrigins))
		for _, incoming := range allOrigins {
			if incoming < existing {
				row[incoming] = takeIncoming
			} else {
				row[incoming] = keepExisting
			}
		}
		table[existing] = row
	}
	return table
}

// merge folds a repeated reference into an existing entry. Provenance
// (origin and source) follows the merge table; directory attachment is an
// independent update so a weak directory reference still contributes its
// path to an entry whose provenance it cannot displace.
func merge(existing, incoming Identity) Identity {
	out := existing
	if mergeTable[existing.Origin][incoming.Origin] == takeIncoming {
		out.Origin = incoming.Origin
		out.Source = incoming.Source
	}
	if incoming.Origin == OriginDirectory && incoming.Directory != "" {
		out.Directory = incoming.Directory
	}
	return out
}
