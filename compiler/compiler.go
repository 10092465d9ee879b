// Package compiler is the entry point to the front end.  It loads source
// files and parses them into syntax trees, one tree per file.
package compiler

import (
	"context"
	"errors"
	goruntime "runtime"
	"time"

	"github.com/brimdata/zfront/compiler/ast"
	"github.com/brimdata/zfront/compiler/parser"
	"github.com/brimdata/zfront/compiler/srcfiles"
	"github.com/hashicorp/golang-lru/arc/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Parallelism is the default number of files parsed at once by ParseFiles.
var Parallelism = goruntime.GOMAXPROCS(0)

type Compiler struct {
	logger      *zap.Logger
	parallelism int
	cache       *arc.ARCCache[cacheKey, *ast.Root]
}

type cacheKey struct {
	name string
	text string
}

// NewCompiler returns a Compiler that logs to logger, which may be nil.
func NewCompiler(logger *zap.Logger, parallelism int) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parallelism <= 0 {
		parallelism = Parallelism
	}
	return &Compiler{logger: logger, parallelism: parallelism}
}

// EnableCache makes c remember the trees of up to size sources, keyed by
// file name and contents, so that a source seen before is not parsed
// again.  Failed parses are not remembered.
func (c *Compiler) EnableCache(size int) error {
	cache, err := arc.NewARC[cacheKey, *ast.Root](size)
	if err != nil {
		return err
	}
	c.cache = cache
	return nil
}

// ParseSource parses src as the contents of the file called name.
func (c *Compiler) ParseSource(name string, src []byte) (*ast.Root, error) {
	return c.parse(srcfiles.NewFile(name, src))
}

// ParseFile reads and parses the file at path.
func (c *Compiler) ParseFile(path string) (*ast.Root, error) {
	file, err := srcfiles.Load(path)
	if err != nil {
		return nil, err
	}
	return c.parse(file)
}

func (c *Compiler) parse(file *srcfiles.File) (*ast.Root, error) {
	key := cacheKey{file.Name, file.Text}
	if c.cache != nil {
		if root, ok := c.cache.Get(key); ok {
			c.logger.Debug("parse", zap.String("file", file.Name), zap.Bool("ok", true), zap.Bool("cached", true))
			return root, nil
		}
	}
	start := time.Now()
	root, err := parser.Parse(file, parser.WithLogger(c.logger.Named("parser")))
	c.logger.Debug("parse",
		zap.String("file", file.Name),
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("ok", err == nil),
		zap.Bool("cached", false))
	if err == nil && c.cache != nil {
		c.cache.Add(key, root)
	}
	return root, err
}

// ParseFiles parses the files at paths concurrently and returns their
// trees in the order of paths.  Parsing stops at the first failure, and
// the returned error is that of the earliest path that failed.
func (c *Compiler) ParseFiles(ctx context.Context, paths []string) ([]*ast.Root, error) {
	roots := make([]*ast.Root, len(paths))
	errs := make([]error, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return err
			}
			roots[i], errs[i] = c.ParseFile(path)
			return errs[i]
		})
	}
	gerr := g.Wait()
	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return nil, err
		}
	}
	if gerr != nil {
		return nil, gerr
	}
	return roots, nil
}

var std = NewCompiler(nil, 0)

// ParseSource parses src with a default Compiler.
func ParseSource(name string, src []byte) (*ast.Root, error) {
	return std.ParseSource(name, src)
}

// ParseFile parses the file at path with a default Compiler.
func ParseFile(path string) (*ast.Root, error) {
	return std.ParseFile(path)
}

// ParseFiles parses the files at paths with a default Compiler.
func ParseFiles(ctx context.Context, paths []string) ([]*ast.Root, error) {
	return std.ParseFiles(ctx, paths)
}
