// Package migrations embeds the SQL schema for every storage backend.
package migrations

import "embed"

// FS holds one directory of numbered migrations per driver
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
