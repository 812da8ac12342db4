// Package testsupport provides fixture builders shared by tests: hermetic
// home directories, seeded configuration files, and identity directory
// trees wired into settings-store injection points.
package testsupport
