// Package migrations embeds the SQL schema migrations so a deployed binary
// does not depend on the migrations directory being present on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
