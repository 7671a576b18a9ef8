package actions

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/strata-tools/cli/internal/dispatchers"
)

// QGroupCreate registers a quota group: strata qgroup create <name>.
func QGroupCreate(args []string, cctx *dispatchers.Context) error {
	return qgroupCreate(args, cctx, defaultDeps())
}

func qgroupCreate(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 1 {
		return errors.New("qgroup create requires a <name> argument")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.CreateQGroup(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cctx.Stdout, "Created qgroup '%s'\n", args[0])
	return nil
}

// QGroupDestroy removes a quota group.
func QGroupDestroy(args []string, cctx *dispatchers.Context) error {
	return qgroupDestroy(args, cctx, defaultDeps())
}

func qgroupDestroy(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 1 {
		return errors.New("qgroup destroy requires a <name> argument")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DestroyQGroup(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cctx.Stdout, "Destroyed qgroup '%s'\n", args[0])
	return nil
}

// QGroupLimit sets a referenced-bytes limit:
// strata qgroup limit <size>|none <name>.
func QGroupLimit(args []string, cctx *dispatchers.Context) error {
	return qgroupLimit(args, cctx, defaultDeps())
}

func qgroupLimit(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 2 {
		return errors.New("qgroup limit requires <size> and <name> arguments")
	}

	var limit int64
	if args[0] != "none" {
		parsed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid size %q", args[0])
		}
		limit = parsed
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SetQGroupLimit(args[1], limit); err != nil {
		return err
	}
	fmt.Fprintf(cctx.Stdout, "Set limit of qgroup '%s'\n", args[1])
	return nil
}

// QGroupAssign adds a volume to a quota group:
// strata qgroup assign <qgroup> <volume>.
func QGroupAssign(args []string, cctx *dispatchers.Context) error {
	return qgroupAssign(args, cctx, defaultDeps())
}

func qgroupAssign(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 2 {
		return errors.New("qgroup assign requires <qgroup> and <volume> arguments")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	v, err := s.GetVolume(args[1])
	if err != nil {
		return err
	}
	if err := s.AssignQGroup(args[0], v.ID); err != nil {
		return err
	}
	fmt.Fprintf(cctx.Stdout, "Assigned volume '%s' to qgroup '%s'\n", v.Name, args[0])
	return nil
}

// QGroupShow lists quota groups with limits and members, json-capable.
func QGroupShow(args []string, cctx *dispatchers.Context) error {
	return qgroupShow(args, cctx, defaultDeps())
}

func qgroupShow(_ []string, cctx *dispatchers.Context, deps actionDeps) error {
	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	groups, err := s.ListQGroups()
	if err != nil {
		return err
	}

	type qgroupView struct {
		Name          string   `json:"name"`
		MaxReferenced int64    `json:"max_referenced"`
		Members       []string `json:"members"`
	}

	views := make([]qgroupView, 0, len(groups))
	for _, g := range groups {
		members, err := s.QGroupMembers(g.Name)
		if err != nil {
			return err
		}
		views = append(views, qgroupView{g.Name, g.MaxReferenced, members})
	}

	if cctx.Format == dispatchers.FormatJSON {
		enc := json.NewEncoder(cctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	for _, g := range views {
		limit := "none"
		if g.MaxReferenced > 0 {
			limit = strconv.FormatInt(g.MaxReferenced, 10)
		}
		fmt.Fprintf(cctx.Stdout, "%-16s limit=%-12s members=%d\n", g.Name, limit, len(g.Members))
	}
	return nil
}
