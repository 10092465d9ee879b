// Package logflags configures a zap logger from command-line flags.
package logflags

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/units"
	"github.com/lestrrat-go/strftime"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvLevel names an environment variable that overrides the default of
// -log.level.
const EnvLevel = "ZFRONT_LOG_LEVEL"

type Mode string

const (
	ModeProd Mode = "prod"
	ModeDev  Mode = "dev"
)

func (m *Mode) Set(s string) error {
	switch Mode(s) {
	case ModeProd, ModeDev:
		*m = Mode(s)
		return nil
	}
	return fmt.Errorf("unknown log mode %q (must be %q or %q)", s, ModeProd, ModeDev)
}

func (m Mode) String() string {
	return string(m)
}

type Flags struct {
	Level zapcore.Level
	// Path is "stderr", "stdout", or a file path.  Files are rotated
	// once they reach MaxSize megabytes.
	Path    string
	Mode    Mode
	MaxSize int
	// TimeFormat is a strftime pattern for log timestamps.  If empty,
	// timestamps are ISO8601.
	TimeFormat string
	maxSize    string
	timeFormat *strftime.Strftime
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.Level = zapcore.WarnLevel
	if s := os.Getenv(EnvLevel); s != "" {
		if err := f.Level.Set(s); err != nil {
			fmt.Fprintf(os.Stderr, "ignoring %s: %s\n", EnvLevel, err)
		}
	}
	f.Mode = ModeProd
	fs.Var(&f.Level, "log.level", "logging level (debug, info, warn, error)")
	fs.StringVar(&f.Path, "log.path", "stderr", "where to send logs (stderr, stdout, or a file path)")
	fs.Var(&f.Mode, "log.mode", "log encoding (prod for JSON, dev for console)")
	fs.StringVar(&f.maxSize, "log.maxsize", "100MiB", "size at which a log file is rotated")
	fs.StringVar(&f.TimeFormat, "log.timefmt", "", "strftime format of log timestamps (default ISO8601)")
}

func (f *Flags) Init() error {
	size, err := units.ParseBase2Bytes(f.maxSize)
	if err != nil {
		return fmt.Errorf("log.maxsize: %w", err)
	}
	if size < units.MiB {
		return fmt.Errorf("log.maxsize must be at least 1MiB: %q", f.maxSize)
	}
	f.MaxSize = int((size + units.MiB - 1) / units.MiB)
	if f.TimeFormat != "" {
		p, err := strftime.New(f.TimeFormat)
		if err != nil {
			return fmt.Errorf("log.timefmt: %w", err)
		}
		f.timeFormat = p
	}
	return nil
}

// Open returns a logger writing to the configured destination.
func (f *Flags) Open() (*zap.Logger, error) {
	var ws zapcore.WriteSyncer
	switch f.Path {
	case "", "stderr":
		ws = zapcore.Lock(os.Stderr)
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	default:
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename: f.Path,
			MaxSize:  f.MaxSize,
		})
	}
	return zap.New(zapcore.NewCore(f.encoder(), ws, f.Level)), nil
}

func (f *Flags) encoder() zapcore.Encoder {
	if f.Mode == ModeDev {
		config := zap.NewDevelopmentEncoderConfig()
		config.EncodeTime = f.timeEncoder()
		return zapcore.NewConsoleEncoder(config)
	}
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = f.timeEncoder()
	return zapcore.NewJSONEncoder(config)
}

func (f *Flags) timeEncoder() zapcore.TimeEncoder {
	if f.timeFormat == nil {
		return zapcore.ISO8601TimeEncoder
	}
	p := f.timeFormat
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(p.FormatString(t))
	}
}
