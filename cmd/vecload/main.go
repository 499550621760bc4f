// Command vecload generates, uploads and ingests bin-framed float32 record files.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hupe1980/vecload"
	"gopkg.in/alecthomas/kingpin.v2"
)

type globalOptions struct {
	LogLevel  string
	LogFormat string
}

func (o *globalOptions) BindFlags(app *kingpin.Application) {
	app.Flag("log.level", "Minimum log level (debug, info, warn, error).").
		Default("warn").EnumVar(&o.LogLevel, "debug", "info", "warn", "error")
	app.Flag("log.format", "Log output format (text, json).").
		Default("text").EnumVar(&o.LogFormat, "text", "json")
}

func (o *globalOptions) logger() *vecload.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(strings.ToUpper(o.LogLevel)))
	if o.LogFormat == "json" {
		return vecload.NewJSONLogger(level)
	}
	return vecload.NewTextLogger(level)
}

func main() {
	app := kingpin.New("vecload", "Generate, upload and ingest float32 record files.")
	app.HelpFlag.Short('h')

	global := &globalOptions{}
	global.BindFlags(app)

	gen := &genOptions{}
	genCmd := gen.BindFlags(app.Command("gen", "Write a record file of random rows."))

	ingest := &ingestOptions{}
	ingestCmd := ingest.BindFlags(app.Command("ingest", "Ingest record files into matrices and print a summary."))

	put := &putOptions{}
	putCmd := put.BindFlags(app.Command("put", "Upload a record file to an object store."))

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {
	case genCmd.FullCommand():
		err = gen.Run()
	case ingestCmd.FullCommand():
		err = ingest.Run(ctx, global.logger())
	case putCmd.FullCommand():
		err = put.Run(ctx)
	}
	if err != nil {
		log.Fatal(err)
	}
}
