package identity

import "testing"

func TestMergeTableCoversEveryOriginPair(t *testing.T) {
	for _, existing := range allOrigins {
		row, ok := mergeTable[existing]
		if !ok {
			t.Fatalf("merge table missing row for %v", existing)
		}
		for _, incoming := range allOrigins {
			decision, ok := row[incoming]
			if !ok {
				t.Fatalf("merge table missing decision for (%v, %v)", existing, incoming)
			}
			want := keepExisting
			if incoming < existing {
				want = takeIncoming
			}
			if decision != want {
				t.Errorf("(%v, %v): got %v want %v", existing, incoming, decision, want)
			}
		}
	}
}

func TestMergeReplacesProvenanceOnlyWhenOutranked(t *testing.T) {
	existing := Identity{Name: "work", Origin: OriginConfigFile, Source: "SSH_OPTIONS"}

	got := merge(existing, Identity{Name: "work", Origin: OriginEnvironment, Source: "DEFAULT_IDENTITY"})
	if got.Origin != OriginEnvironment || got.Source != "DEFAULT_IDENTITY" {
		t.Fatalf("higher-priority reference should win: %+v", got)
	}

	got = merge(existing, Identity{Name: "work", Origin: OriginDefault, Source: "DEFAULT_IDENTITY"})
	if got.Origin != OriginConfigFile || got.Source != "SSH_OPTIONS" {
		t.Fatalf("lower-priority reference must not displace provenance: %+v", got)
	}

	got = merge(existing, Identity{Name: "work", Origin: OriginConfigFile, Source: "SSH_ADD_OPTIONS"})
	if got.Source != "SSH_OPTIONS" {
		t.Fatalf("equal-priority reference must keep the first source: %+v", got)
	}
}

func TestMergeAttachesDirectoryIndependently(t *testing.T) {
	existing := Identity{Name: "work", Origin: OriginConfigFile, Source: "SSH_OPTIONS"}
	incoming := Identity{Name: "work", Origin: OriginDirectory, Source: "/ids/work", Directory: "/ids/work"}

	got := merge(existing, incoming)
	if got.Origin != OriginConfigFile {
		t.Fatalf("directory discovery must not displace config provenance: %+v", got)
	}
	if got.Directory != "/ids/work" {
		t.Fatalf("directory path must attach regardless: %+v", got)
	}

	// The other way around: a config reference landing on a directory entry
	// takes provenance but keeps the attached path.
	got = merge(incoming, existing)
	if got.Origin != OriginConfigFile || got.Source != "SSH_OPTIONS" {
		t.Fatalf("config reference should displace directory provenance: %+v", got)
	}
	if got.Directory != "/ids/work" {
		t.Fatalf("attached directory must survive provenance replacement: %+v", got)
	}
}
