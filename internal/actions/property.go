package actions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/strata-tools/cli/internal/dispatchers"
)

// PropertyGet reads a property: strata property get <volume> <key>.
func PropertyGet(args []string, cctx *dispatchers.Context) error {
	return propertyGet(args, cctx, defaultDeps())
}

func propertyGet(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 2 {
		return errors.New("property get requires <volume> and <key> arguments")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	v, err := s.GetVolume(args[0])
	if err != nil {
		return err
	}
	value, err := s.GetProperty(v.ID, args[1])
	if err != nil {
		return err
	}

	if cctx.Format == dispatchers.FormatJSON {
		return json.NewEncoder(cctx.Stdout).Encode(map[string]string{args[1]: value})
	}
	fmt.Fprintf(cctx.Stdout, "%s=%s\n", args[1], value)
	return nil
}

// PropertySet writes a property: strata property set <volume> <key> <value>.
func PropertySet(args []string, cctx *dispatchers.Context) error {
	return propertySet(args, cctx, defaultDeps())
}

func propertySet(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 3 {
		return errors.New("property set requires <volume>, <key> and <value> arguments")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	v, err := s.GetVolume(args[0])
	if err != nil {
		return err
	}
	return s.SetProperty(v.ID, args[1], args[2])
}

// PropertyList prints all properties of a volume, json-capable.
func PropertyList(args []string, cctx *dispatchers.Context) error {
	return propertyList(args, cctx, defaultDeps())
}

func propertyList(args []string, cctx *dispatchers.Context, deps actionDeps) error {
	if len(args) < 1 {
		return errors.New("property list requires a <volume> argument")
	}

	s, err := deps.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	v, err := s.GetVolume(args[0])
	if err != nil {
		return err
	}
	properties, err := s.ListProperties(v.ID)
	if err != nil {
		return err
	}

	if cctx.Format == dispatchers.FormatJSON {
		enc := json.NewEncoder(cctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(properties)
	}

	for _, p := range properties {
		fmt.Fprintf(cctx.Stdout, "%s=%s\n", p.Key, p.Value)
	}
	return nil
}
