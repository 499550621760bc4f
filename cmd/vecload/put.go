package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/alecthomas/kingpin.v2"
)

type putOptions struct {
	File               string
	Name               string
	ObjstoreConfigFile string
}

func (o *putOptions) BindFlags(cmd *kingpin.CmdClause) *kingpin.CmdClause {
	cmd.Arg("file", "Local record file to upload.").
		Required().ExistingFileVar(&o.File)
	cmd.Arg("name", "Blob name; defaults to the file's base name.").
		StringVar(&o.Name)
	cmd.Flag("objstore.config-file", "YAML object store configuration.").
		Required().StringVar(&o.ObjstoreConfigFile)
	return cmd
}

func (o *putOptions) Run(ctx context.Context) error {
	cfg, err := loadObjstoreConfig(o.ObjstoreConfigFile)
	if err != nil {
		return err
	}
	store, err := cfg.newStore(ctx)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(o.File)
	if err != nil {
		return err
	}

	name := o.Name
	if name == "" {
		name = filepath.Base(o.File)
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("put %s: %w", name, err)
	}

	fmt.Fprintf(os.Stderr, "uploaded %s (%d bytes) as %s\n", o.File, len(data), name)
	return nil
}
