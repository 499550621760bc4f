package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hupe1980/vecload/blobstore"
	"github.com/hupe1980/vecload/blobstore/minio"
	"github.com/hupe1980/vecload/blobstore/s3"
	"gopkg.in/yaml.v3"
)

const (
	storeLocal = "local"
	storeS3    = "s3"
	storeMinio = "minio"
)

// objstoreConfig is the YAML document passed with --objstore.config-file.
type objstoreConfig struct {
	Type      string `yaml:"type"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	Root      string `yaml:"root"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Insecure  bool   `yaml:"insecure"`
}

var errMissingField = errors.New("missing required field")

func loadObjstoreConfig(path string) (objstoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return objstoreConfig{}, err
	}
	return parseObjstoreConfig(data)
}

func parseObjstoreConfig(data []byte) (objstoreConfig, error) {
	var cfg objstoreConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return objstoreConfig{}, fmt.Errorf("parse objstore config: %w", err)
	}
	if cfg.Type == "" {
		cfg.Type = storeLocal
	}
	return cfg, cfg.validate()
}

func (c objstoreConfig) validate() error {
	switch c.Type {
	case storeLocal:
		if c.Root == "" {
			return fmt.Errorf("%w: root", errMissingField)
		}
	case storeS3:
		if c.Bucket == "" {
			return fmt.Errorf("%w: bucket", errMissingField)
		}
	case storeMinio:
		if c.Bucket == "" {
			return fmt.Errorf("%w: bucket", errMissingField)
		}
		if c.Endpoint == "" {
			return fmt.Errorf("%w: endpoint", errMissingField)
		}
	default:
		return fmt.Errorf("unsupported objstore type %q", c.Type)
	}
	return nil
}

func (c objstoreConfig) newStore(ctx context.Context) (blobstore.BlobStore, error) {
	switch c.Type {
	case storeLocal:
		return blobstore.NewLocalStore(c.Root), nil
	case storeS3:
		opts := []s3.Option{s3.WithPrefix(c.Prefix)}
		if c.Region != "" {
			opts = append(opts, s3.WithRegion(c.Region))
		}
		if c.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(c.Endpoint))
		}
		if c.AccessKey != "" {
			opts = append(opts, s3.WithStaticCredentials(c.AccessKey, c.SecretKey))
		}
		return s3.New(ctx, c.Bucket, opts...)
	case storeMinio:
		return minio.Dial(c.Endpoint, c.AccessKey, c.SecretKey, !c.Insecure, c.Bucket, c.Prefix)
	default:
		return nil, fmt.Errorf("unsupported objstore type %q", c.Type)
	}
}
