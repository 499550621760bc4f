package vecload

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/vecload/internal/compress"
	"github.com/hupe1980/vecload/internal/frame"
	"github.com/hupe1980/vecload/internal/fs"
	"github.com/hupe1980/vecload/internal/rowcopy"
	"github.com/hupe1980/vecload/resource"
)

const (
	// DefaultRowWidth is the number of float32 values per record.
	DefaultRowWidth = 512

	// DefaultBufferSize is the read buffer size of the streaming file path.
	DefaultBufferSize = frame.DefaultBufferSize

	// DefaultMaxRecordSize rejects declared record lengths above 100 MiB.
	DefaultMaxRecordSize = frame.DefaultMaxRecordSize
)

// FileSystem abstracts how IngestFile opens record files.
type FileSystem = fs.FileSystem

// File is an open record file.
type File = fs.File

// Compression selects how record files are decompressed.
type Compression = compress.Type

const (
	// CompressionAuto detects zstd and LZ4 from the file header.
	CompressionAuto = compress.Auto
	// CompressionNone reads files unchanged.
	CompressionNone = compress.None
	// CompressionZstd expects a zstd frame stream.
	CompressionZstd = compress.Zstd
	// CompressionLZ4 expects an LZ4 frame stream.
	CompressionLZ4 = compress.LZ4
)

// ParseCompression maps a name such as "zstd" to a Compression.
func ParseCompression(name string) (Compression, error) {
	return compress.Parse(name)
}

type options struct {
	rowWidth         int
	logger           *Logger
	metricsCollector MetricsCollector
	checkedCopy      bool
	mmap             bool
	compression      Compression
	bufferSize       int
	maxRecordSize    int
	fileSystem       FileSystem
	controller       *resource.Controller
	workers          int
}

// Option configures an ingestion call.
type Option func(*options)

// WithRowWidth sets the number of float32 values per record. The destination
// matrix must have exactly this many columns. Non-positive widths make every
// call fail with *ErrInvalidRowWidth.
func WithRowWidth(w int) Option {
	return func(o *options) {
		o.rowWidth = w
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vecload.NewJSONLogger(slog.LevelInfo)
//	report, err := vecload.IngestFile(ctx, path, m, vecload.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecload.BasicMetricsCollector{}
//	_, _ = vecload.IngestFile(ctx, path, m, vecload.WithMetricsCollector(metrics))
//	stats := metrics.Stats()
//	fmt.Printf("Rows: %d, Skipped: %d\n", stats.RowsWritten, stats.RecordsSkipped)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCheckedCopy decodes each value with encoding/binary instead of a single
// bulk copy. Results are identical.
func WithCheckedCopy(enabled bool) Option {
	return func(o *options) {
		o.checkedCopy = enabled
	}
}

// WithMmap maps record files into memory and decodes records in place.
// Ignored when a custom FileSystem is configured.
func WithMmap(enabled bool) Option {
	return func(o *options) {
		o.mmap = enabled
	}
}

// WithCompression overrides codec detection for record files and readers.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithBufferSize sets the read buffer size of the streaming path.
// Non-positive sizes select DefaultBufferSize.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultBufferSize
		}
		o.bufferSize = n
	}
}

// WithMaxRecordSize caps the declared length of a single framed record.
// Zero or negative disables the cap.
func WithMaxRecordSize(n int) Option {
	return func(o *options) {
		o.maxRecordSize = max(n, 0)
	}
}

// WithFileSystem replaces the local file system used by IngestFile and
// IngestMany.
func WithFileSystem(fsys FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fileSystem = fsys
	}
}

// WithResourceController shares worker slots and an IO budget across calls.
// Streaming reads are throttled by the controller's IO limit.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithWorkers sets the parallelism of IngestMany when no resource controller
// is configured. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		rowWidth:         DefaultRowWidth,
		logger:           NewTextLogger(slog.LevelWarn),
		metricsCollector: NoopMetricsCollector{},
		compression:      CompressionAuto,
		bufferSize:       DefaultBufferSize,
		maxRecordSize:    DefaultMaxRecordSize,
		fileSystem:       fs.Default,
		workers:          runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *options) validate() error {
	if o.rowWidth <= 0 {
		return &ErrInvalidRowWidth{Width: o.rowWidth}
	}
	return nil
}

func (o *options) copyFunc() rowcopy.Func {
	if o.checkedCopy {
		return rowcopy.CopyChecked
	}
	return rowcopy.Copy
}

func (o *options) frameOptions() frame.Options {
	return frame.Options{
		BufferSize:    o.bufferSize,
		MaxRecordSize: o.maxRecordSize,
	}
}

// mappable reports whether files can be memory mapped directly.
func (o *options) mappable() bool {
	_, local := o.fileSystem.(fs.LocalFS)
	return o.mmap && local
}
