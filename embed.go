// Package pragency holds assets embedded into the binary from the module root.
package pragency

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command
// and by the storage tests.
//
//go:embed migrations
var Migrations embed.FS
