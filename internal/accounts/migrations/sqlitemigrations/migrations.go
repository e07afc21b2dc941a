// Package sqlitemigrations embeds the SQLite schema migrations.
package sqlitemigrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
