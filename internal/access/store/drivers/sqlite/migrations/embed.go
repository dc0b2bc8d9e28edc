// Package migrations embeds the sqlite schema migrations so the binary can
// bring a fresh database up to date on start.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
