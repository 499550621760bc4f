package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/hupe1980/vecload"
	"github.com/hupe1980/vecload/blobstore"
	"github.com/hupe1980/vecload/metric"
	"github.com/hupe1980/vecload/resource"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/alecthomas/kingpin.v2"
)

type ingestOptions struct {
	// Paths are file paths, or blob names when ObjstoreConfigFile is set.
	Paths              []string
	Rows               int
	Width              int
	Mmap               bool
	Checked            bool
	Compression        string
	MaxRecordSize      int
	Workers            int
	IOLimit            int64
	ObjstoreConfigFile string
	MetricsAddress     string
}

func (o *ingestOptions) BindFlags(cmd *kingpin.CmdClause) *kingpin.CmdClause {
	cmd.Arg("paths", "Record files, or blob names with --objstore.config-file.").
		Required().StringsVar(&o.Paths)
	cmd.Flag("rows", "Row capacity of each destination matrix.").
		Default("1024").IntVar(&o.Rows)
	cmd.Flag("width", "Expected number of float32 values per record.").
		Default(fmt.Sprint(vecload.DefaultRowWidth)).IntVar(&o.Width)
	cmd.Flag("mmap", "Memory-map local files instead of streaming them.").
		BoolVar(&o.Mmap)
	cmd.Flag("checked", "Decode every element instead of bulk copying.").
		BoolVar(&o.Checked)
	cmd.Flag("compression", "Input compression (auto, none, zstd, lz4).").
		Default("auto").EnumVar(&o.Compression, "auto", "none", "zstd", "lz4")
	cmd.Flag("max-record-size", "Largest accepted record payload in bytes (0 disables).").
		Default(fmt.Sprint(vecload.DefaultMaxRecordSize)).IntVar(&o.MaxRecordSize)
	cmd.Flag("workers", "Number of files ingested in parallel.").
		Default("4").IntVar(&o.Workers)
	cmd.Flag("io-limit", "Read rate limit in bytes per second (0 disables).").
		Default("0").Int64Var(&o.IOLimit)
	cmd.Flag("objstore.config-file", "YAML object store configuration; paths become blob names.").
		Default("").StringVar(&o.ObjstoreConfigFile)
	cmd.Flag("metrics.listen-address", "Serve Prometheus metrics on this address while ingesting.").
		Default("").StringVar(&o.MetricsAddress)
	return cmd
}

func (o *ingestOptions) Run(ctx context.Context, logger *vecload.Logger) error {
	ct, err := vecload.ParseCompression(o.Compression)
	if err != nil {
		return err
	}

	var store blobstore.BlobStore
	if o.ObjstoreConfigFile != "" {
		cfg, err := loadObjstoreConfig(o.ObjstoreConfigFile)
		if err != nil {
			return err
		}
		if store, err = cfg.newStore(ctx); err != nil {
			return err
		}
	}

	opts := []vecload.Option{
		vecload.WithRowWidth(o.Width),
		vecload.WithLogger(logger),
		vecload.WithMmap(o.Mmap),
		vecload.WithCheckedCopy(o.Checked),
		vecload.WithCompression(ct),
		vecload.WithMaxRecordSize(o.MaxRecordSize),
		vecload.WithResourceController(resource.NewController(resource.Config{
			MaxWorkers:         int64(o.Workers),
			IOLimitBytesPerSec: o.IOLimit,
		})),
	}

	if o.MetricsAddress != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, vecload.WithMetricsCollector(metric.NewPrometheusCollector(reg)))
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			log.Println(http.ListenAndServe(o.MetricsAddress, nil))
		}()
	}

	jobs := make([]vecload.Job, len(o.Paths))
	for i, p := range o.Paths {
		jobs[i] = vecload.Job{Path: p, Store: store, Dst: vecload.NewMatrix(o.Rows, o.Width)}
	}

	reports, err := vecload.IngestMany(ctx, jobs, opts...)
	if reports != nil {
		printReports(o.Paths, reports)
	}
	return err
}

func printReports(paths []string, reports []*vecload.Report) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tWRITTEN\tRECORDS\tSKIPPED\tDURATION")
	for i, r := range reports {
		if r == nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", paths[i], r.Written, r.Records, len(r.Skipped), r.Duration)
	}
	_ = tw.Flush()
}
