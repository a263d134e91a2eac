// Package migrations embeds the SQL migration files so they can be applied
// with golang-migrate's iofs source at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
