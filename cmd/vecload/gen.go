package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hupe1980/vecload"
	"github.com/hupe1980/vecload/internal/compress"
	"github.com/hupe1980/vecload/internal/frame"
	"github.com/hupe1980/vecload/testutil"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/alecthomas/kingpin.v2"
)

type genOptions struct {
	// Out is the record file to write.
	Out string
	// Rows is the number of records to write.
	Rows int
	// Width is the number of float32 values per record.
	Width int
	// MalformedEvery replaces every n-th record with a short one. 0 disables.
	MalformedEvery int
	Compression    string
	Seed           int64
}

func (o *genOptions) BindFlags(cmd *kingpin.CmdClause) *kingpin.CmdClause {
	cmd.Flag("out", "Path of the record file to write.").
		Short('o').Required().StringVar(&o.Out)
	cmd.Flag("rows", "Number of records to write.").
		Default("1000").IntVar(&o.Rows)
	cmd.Flag("width", "Number of float32 values per record.").
		Default(fmt.Sprint(vecload.DefaultRowWidth)).IntVar(&o.Width)
	cmd.Flag("malformed-every", "Write every n-th record with the wrong size (0 disables).").
		Default("0").IntVar(&o.MalformedEvery)
	cmd.Flag("compression", "Output compression (none, zstd, lz4).").
		Default("none").EnumVar(&o.Compression, "none", "zstd", "lz4")
	cmd.Flag("seed", "Random seed.").
		Default("42").Int64Var(&o.Seed)
	return cmd
}

func (o *genOptions) Run() (err error) {
	ct, err := compress.Parse(o.Compression)
	if err != nil {
		return err
	}

	f, err := os.Create(o.Out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	cw, err := compress.NewWriter(bw, ct)
	if err != nil {
		return err
	}
	w := frame.NewWriter(cw)

	rng := testutil.NewRNG(o.Seed)
	row := make([]float32, o.Width)
	bar := progressbar.Default(int64(o.Rows))

	for i := range o.Rows {
		var rec []byte
		if o.MalformedEvery > 0 && (i+1)%o.MalformedEvery == 0 {
			rec = rng.Bytes(rng.Intn(o.Width * 4))
		} else {
			rng.FillUniform(row)
			rec = testutil.Encode(row)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
		if err := bar.Add(1); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	if err := cw.Close(); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %d records to %s\n", w.Count(), o.Out)
	return nil
}
