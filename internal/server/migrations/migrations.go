// Package migrations embeds the goose SQL migrations for the server schema.
package migrations

import "embed"

// Migrations is the embedded migration set, rooted at ".".
//
//go:embed *.sql
var Migrations embed.FS
