// Package migrations holds the goose SQL migrations, embedded so the server
// and the test helper apply the same schema.
package migrations

import "embed"

// FS contains every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
