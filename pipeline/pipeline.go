// Package pipeline runs schema files through load, resolve and generate, and
// writes or checks the resulting artifacts.
//
// Each file is processed on its own goroutine with a bounded worker count;
// results always come back in argument order.
package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/expandgen/codegen"
	"github.com/teranos/expandgen/config"
	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/logger"
	"github.com/teranos/expandgen/resolve"
	"github.com/teranos/expandgen/schema"
	"github.com/teranos/expandgen/schema/parser"
	"github.com/teranos/expandgen/version"
)

// Artifact is one generated file.
type Artifact struct {
	Kind    string `json:"kind" yaml:"kind"`
	Path    string `json:"path" yaml:"path"`
	Content []byte `json:"-" yaml:"-"`
}

// Result is the outcome of processing one schema file.
type Result struct {
	Path   string
	File   *schema.File
	Schema *resolve.Schema
	// Artifacts is empty when Err is set
	Artifacts []Artifact
	// Diagnostics holds errors and warnings in position order
	Diagnostics schema.Diagnostics
	Err         error
	Duration    time.Duration
}

// Pipeline processes schema files with one configuration.
type Pipeline struct {
	cfg     *config.Config
	version string
	logger  *zap.SugaredLogger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithVersion overrides the generator version used for requires checks and
// file headers.
func WithVersion(v string) Option {
	return func(p *Pipeline) {
		p.version = v
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// New creates a pipeline for cfg.
func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:     cfg,
		version: version.Version,
		logger:  logger.ComponentLogger("pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) codegenOptions(pkg string) codegen.Options {
	return codegen.Options{
		Package: pkg,
		Version: p.version,
		Assert:  p.cfg.Generate.Assert,
	}
}

// Process loads, resolves and generates one schema file.
func (p *Pipeline) Process(ctx context.Context, path string) *Result {
	start := time.Now()
	res := &Result{Path: path}
	log := logger.ChildLogger(p.logger, logger.FieldFile, path)

	defer func() {
		res.Duration = time.Since(start)
		log.Debugw("Processed schema",
			logger.FieldDurationMS, res.Duration.Milliseconds(),
			logger.FieldCount, len(res.Artifacts))
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	f, err := parser.ParseFile(path)
	if err != nil {
		res.Err = err
		switch e := err.(type) {
		case schema.Diagnostics:
			res.Diagnostics = e
		case *schema.Diagnostic:
			res.Diagnostics = schema.Diagnostics{e}
		}
		return res
	}
	res.File = f

	s, err := resolve.Resolve(f, resolve.WithVersion(p.version))
	res.Schema = s
	res.Diagnostics = append(res.Diagnostics, s.Diagnostics...)

	if err == nil && p.cfg.Generate.CheckCustom {
		diags, cerr := codegen.CheckCustomFuncs(filepath.Dir(path), s)
		if cerr != nil {
			log.Warnw("Skipping custom function check", logger.FieldError, cerr)
		}
		res.Diagnostics = append(res.Diagnostics, diags...)
		res.Diagnostics.Sort()
		err = diags.Err()
	}
	if err != nil {
		res.Err = err
		return res
	}

	pkg := p.packageName(f)
	base := strings.TrimSuffix(path, schema.Extension)
	generators := []codegen.Generator{
		codegen.NewSourceGenerator(p.codegenOptions(pkg), p.cfg.Generate.OutputSuffix),
		codegen.NewTestGenerator(p.codegenOptions(pkg), p.cfg.Generate.TestSuffix),
	}
	for _, g := range generators {
		out, err := g.Generate(s)
		if err != nil {
			res.Err = errors.Wrapf(err, "generating %s for %s", g.Kind(), path)
			res.Artifacts = nil
			return res
		}
		if out == nil {
			continue
		}
		res.Artifacts = append(res.Artifacts, Artifact{Kind: g.Kind(), Path: base + g.Suffix(), Content: out})
	}

	for _, w := range res.Diagnostics.Warnings() {
		log.Debugw("Schema warning", logger.FieldKind, w.Kind, "message", w.Error())
	}
	return res
}

// packageName picks the Go package of generated code: the schema's package
// clause, then the configured package, then the directory name.
func (p *Pipeline) packageName(f *schema.File) string {
	if f.Package != "" {
		return f.Package
	}
	if p.cfg.Generate.Package != "" {
		return p.cfg.Generate.Package
	}
	abs, err := filepath.Abs(filepath.Dir(f.Path))
	if err != nil {
		return "main"
	}
	return PackageFromDir(filepath.Base(abs))
}

// PackageFromDir derives a Go package name from a directory name.
func PackageFromDir(dir string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(dir) {
		if r == '_' || unicode.IsLetter(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "main"
	}
	return b.String()
}

// Build processes paths concurrently, at most cfg.Generate.Jobs at a time.
// One failing file does not stop the others; the returned error combines
// every file's error.
func (p *Pipeline) Build(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	jobs := p.cfg.Generate.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			results[i] = p.Process(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var combined error
	for _, r := range results {
		if r.Err != nil {
			combined = errors.CombineErrors(combined, errors.Wrapf(r.Err, "%s", r.Path))
		}
	}
	return results, combined
}
