package actions

import (
	"fmt"

	"github.com/strata-tools/cli/internal/dispatchers"
)

const quotaEnabledKey = "quota_enabled"

// QuotaEnable turns quota accounting on for the registry.
func QuotaEnable(args []string, cctx *dispatchers.Context) error {
	return setQuota(cctx, defaultDeps(), true)
}

// QuotaDisable turns quota accounting off.
func QuotaDisable(args []string, cctx *dispatchers.Context) error {
	return setQuota(cctx, defaultDeps(), false)
}

func setQuota(cctx *dispatchers.Context, deps actionDeps, enabled bool) error {
	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	value := "0"
	state := "disabled"
	if enabled {
		value = "1"
		state = "enabled"
	}
	if err := s.SetMeta(quotaEnabledKey, value); err != nil {
		return err
	}
	fmt.Fprintf(cctx.Stdout, "Quota accounting %s\n", state)
	return nil
}

// QuotaStatus reports whether quota accounting is enabled.
func QuotaStatus(args []string, cctx *dispatchers.Context) error {
	return quotaStatus(args, cctx, defaultDeps())
}

func quotaStatus(_ []string, cctx *dispatchers.Context, deps actionDeps) error {
	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	value, err := s.GetMeta(quotaEnabledKey, "0")
	if err != nil {
		return err
	}
	state := "disabled"
	if value == "1" {
		state = "enabled"
	}
	fmt.Fprintf(cctx.Stdout, "Quota accounting: %s\n", state)
	return nil
}
