/*
Package server implements the commands shared by every tollgate daemon:
starting the ABCI server and writing the application state into a
tendermint genesis file.
*/
package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"path/filepath"

	"github.com/iov-one/tollgate/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	appStateKey = "app_state"
	flagForce   = "f"
)

// GenOptions can parse command-line arguments to generate default
// app_state for the genesis file. This is application-specific.
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisDoc involves some tendermint-specific structures we don't want to
// parse, so we just grab it into a raw object format, so we can add one
// line.
type GenesisDoc map[string]json.RawMessage

// GenesisPath returns the location of the tendermint genesis file within
// the home directory.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd will set the app_state of an existing genesis file, as created by
// `tendermint init`. It refuses to override an app_state that is already
// present, unless -f is given.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := GenesisPath(home)
	doc, err := loadGenesis(genFile)
	if err != nil {
		return err
	}
	if raw, ok := doc[appStateKey]; ok && len(raw) > 0 && string(raw) != "null" && !force {
		return errors.Wrapf(errors.ErrState, "%s already has %s, use -f to overwrite", genFile, appStateKey)
	}

	options, err := gen(initFlags.Args())
	if err != nil {
		return err
	}
	doc[appStateKey] = options
	if err := writeGenesis(genFile, doc); err != nil {
		return err
	}

	logger.Info("App state written", "path", genFile)
	return nil
}

func loadGenesis(filename string) (GenesisDoc, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "genesis file: %s", err)
	}
	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "genesis file %s: %s", filename, err)
	}
	if doc == nil {
		doc = make(GenesisDoc)
	}
	return doc, nil
}

func writeGenesis(filename string, doc GenesisDoc) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis file: %s", err)
	}
	if err := ioutil.WriteFile(filename, out, 0600); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "write genesis file: %s", err)
	}
	return nil
}
