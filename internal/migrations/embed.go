package migrations

import "embed"

// FS lets goose resolve migration versions from any working directory.
//
//go:embed *.go
var FS embed.FS
