// Package migrations embeds the goose SQL migration files so they can be
// applied by the server at startup and by the test helper.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
