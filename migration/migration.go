package migration

import (
	"context"
)

// Migrators are one-shot data migrations selected by version from the
// migrate command.
var Migrators = map[string]func(context.Context) error{
	"0000": migrate0000,
	"0001": migrate0001,
	"0002": migrate0002,
}
