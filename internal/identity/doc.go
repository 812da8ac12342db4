// Package identity builds the canonical mapping of identity names to
// metadata from configuration references and an on-disk directory scan.
//
// References arrive from several sources: the DEFAULT_IDENTITY setting,
// option tables that list identities in their first column, and the
// identities directory whose immediate subdirectories each name an identity.
// Duplicate references are merged, never duplicated; the recorded origin is
// the highest-priority source seen, while directory discovery attaches its
// path to a matching identity regardless of who created the entry.
package identity
