// Package actions implements the leaf command handlers. Each exported
// handler delegates to an internal function taking an actionDeps so tests
// can substitute the store, clock and streams.
package actions

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/strata-tools/cli/internal/paths"
	"github.com/strata-tools/cli/internal/store"
)

type actionDeps struct {
	openStore func() (*store.Store, error)
	stdin     io.Reader
	now       func() time.Time
	newID     func() string
	version   func() string
}

var databasePath = ""

// SetDatabasePath points the actions at the configured registry database.
// Called once from main after config loading.
func SetDatabasePath(p string) { databasePath = p }

func defaultDeps() actionDeps {
	return actionDeps{
		openStore: func() (*store.Store, error) {
			path := databasePath
			if path == "" {
				path = paths.DatabasePath()
			}
			return store.Open(path)
		},
		stdin:   os.Stdin,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
		version: func() string { return version },
	}
}
