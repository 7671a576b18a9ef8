// Package ui provides terminal output utilities, including pager support
// for long help output.
//
// The pager intentionally executes the command the user configured via
// --pager / STRATA_PAGER / PAGER, the same trust model as git and man.
package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/term"
)

var (
	pagerMu       sync.RWMutex
	pagerDisabled bool
	pagerOverride string
)

// DisablePager turns the pager off globally (--no-pager, config).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager overrides the pager command for this invocation.
func SetPager(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

// Page writes content through the configured pager when stdout is a
// terminal, falling back to plain stdout otherwise.
func Page(content string) {
	pagerMu.RLock()
	disabled, override := pagerDisabled, pagerOverride
	pagerMu.RUnlock()

	if disabled || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(content)
		return
	}

	pager := override
	if pager == "" {
		pager = os.Getenv("STRATA_PAGER")
	}
	if pager == "" {
		pager = os.Getenv("PAGER")
	}
	if pager == "" {
		pager = "less -FRX"
	}

	parts := strings.Fields(pager)
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Print(content)
	}
}
