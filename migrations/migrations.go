// Package migrations embeds the goose SQL migrations so the binary can
// bring the schema up on start without external tooling.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
