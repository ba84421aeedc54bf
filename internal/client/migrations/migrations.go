// Package migrations embeds the schema migrations for the local state DB.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
