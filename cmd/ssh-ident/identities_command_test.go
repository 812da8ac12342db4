package main

import (
	"encoding/json"
	"testing"

	"sshident/internal/testsupport"
)

func TestIdentitiesListsDirectoryDiscoveries(t *testing.T) {
	f := testsupport.NewFixture(t, testsupport.WithIdentityDirs("alice", "bob"))
	out, err := runCommand(t, newTestContext(t, f), "identities")
	if err != nil {
		t.Fatalf("identities: %v", err)
	}
	requireContains(t, out, "alice")
	requireContains(t, out, "bob")
	requireContains(t, out, f.IdentitiesDir())
}

func TestIdentitiesOriginColumn(t *testing.T) {
	f := testsupport.NewFixture(t, testsupport.WithIdentityDirs("alice"))
	out, err := runCommand(t, newTestContext(t, f), "identities", "--origin")
	if err != nil {
		t.Fatalf("identities --origin: %v", err)
	}
	requireContains(t, out, "ORIGIN")
	requireContains(t, out, "directory")
}

func TestIdentitiesJSONIsSortedAndMerged(t *testing.T) {
	f := testsupport.NewFixture(t,
		testsupport.WithIdentityDirs("work"),
		testsupport.WithConfigFile(`{"SSH_OPTIONS": [[["work", "zeta"], [], "-C"]]}`),
	)
	out, err := runCommand(t, newTestContext(t, f), "identities", "--json")
	if err != nil {
		t.Fatalf("identities --json: %v", err)
	}

	var rows []identityRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	workSeen := 0
	for _, row := range rows {
		if row.Name == "work" {
			workSeen++
			if row.Origin != "config" {
				t.Fatalf("config reference must win provenance, got %q", row.Origin)
			}
			if row.Directory == "" {
				t.Fatal("directory must attach to merged identity")
			}
		}
	}
	if workSeen != 1 {
		t.Fatalf("expected exactly one merged entry for work, got %d", workSeen)
	}

	for i := 1; i < len(rows); i++ {
		if rows[i-1].Name >= rows[i].Name {
			t.Fatalf("rows not sorted by name: %q before %q", rows[i-1].Name, rows[i].Name)
		}
	}
}
