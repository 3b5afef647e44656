// Package migrations embeds the goose migrations applied to the local
// snapshot database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
