// Package cli holds the flags and setup shared by every zfront command.
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/brimdata/zfront/cli/logflags"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags.
var Version = "unknown"

type Initializer interface {
	Init() error
}

type Flags struct {
	showVersion bool
	cpuprofile  string
	logFlags    logflags.Flags
	logger      *zap.Logger
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
	fs.StringVar(&f.cpuprofile, "cpuprofile", "", "write cpu profile to given file name")
	f.logFlags.SetFlags(fs)
}

// Init initializes the common flags followed by each of all.  It returns
// a context canceled on interrupt and a cleanup function the caller must
// call when done.
func (f *Flags) Init(all ...Initializer) (context.Context, func(), error) {
	if f.showVersion {
		fmt.Printf("Version: %s\n", Version)
		os.Exit(0)
	}
	for _, i := range append([]Initializer{&f.logFlags}, all...) {
		if err := i.Init(); err != nil {
			return nil, nil, err
		}
	}
	logger, err := f.logFlags.Open()
	if err != nil {
		return nil, nil, err
	}
	f.logger = logger
	stopProfile, err := f.startProfile()
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	cleanup := func() {
		cancel()
		stopProfile()
		logger.Sync()
	}
	return ctx, cleanup, nil
}

// Logger returns the logger configured by Init or a no-op logger before
// Init is called.
func (f *Flags) Logger() *zap.Logger {
	if f.logger == nil {
		return zap.NewNop()
	}
	return f.logger
}

func (f *Flags) startProfile() (func(), error) {
	if f.cpuprofile == "" {
		return func() {}, nil
	}
	file, err := os.Create(f.cpuprofile)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close()
	}, nil
}
