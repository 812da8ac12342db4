// Package settings resolves runtime configuration from layered origins.
//
// Every recognized setting lives in a compiled-in catalog; at lookup time the
// store probes the process environment, the loaded JSON configuration file,
// and finally the catalog defaults, in that order, and reports which origin
// supplied the winning value. Values are modelled as a small closed variant
// (string, int, bool, list) so option tables nest without reflection, and
// expansion of environment variables and tilde shortcuts is a pure transform
// that callers opt into per lookup.
//
// The store is loaded once per process invocation and is read-only afterwards.
// Looking up a name outside the catalog is a usage error, never a silent
// fallback, because the catalog is the exhaustive contract of the tool.
package settings
