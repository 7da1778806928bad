// Package root exposes files embedded at the repository root, such as the
// goose SQL migrations applied by the migrate subcommand.
package root

import "embed"

// Migrations contains the goose SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
