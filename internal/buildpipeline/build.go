package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"cinder/internal/diag"
	"cinder/internal/modcache"
)

// BuildRequest configures compilation of a set of source units into
// on-disk module files.
type BuildRequest struct {
	// Paths are the source files to compile, one module per file.
	Paths []string
	// OutputRoot is where the target directory is created; defaults to
	// the current working directory.
	OutputRoot string
	// Jobs bounds concurrent unit compilations; 0 means NumCPU.
	Jobs int
	// Cache, when non-nil, lets unchanged files skip the pipeline.
	Cache *modcache.Cache

	MaxDiagnostics int
	Sink           diag.Sink
	Progress       ProgressSink
}

// UnitOutcome is the per-file result of a build.
type UnitOutcome struct {
	Path       string
	OutputPath string // empty when no module was written
	ErrorCount int
	Cached     bool
	Elapsed    time.Duration
}

// BuildResult aggregates the outcomes of every unit in the request.
type BuildResult struct {
	Units      []UnitOutcome
	ErrorCount int
	Elapsed    time.Duration
}

// Build compiles every unit and writes one .easm module per source file
// under <OutputRoot>/target. Units are independent, so they compile in
// parallel; each owns its resolver context, directory, and label table.
// Units that hit syntax errors produce no output file; units with
// lowering or verification errors still get their best-effort module
// written, and the caller decides based on ErrorCount.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing build request")
	}
	if len(req.Paths) == 0 {
		return result, fmt.Errorf("no source files")
	}

	outputRoot := req.OutputRoot
	if outputRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		outputRoot = cwd
	}
	outputDir := filepath.Join(outputRoot, "target")
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return result, fmt.Errorf("failed to create output dir: %w", err)
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	if req.Progress != nil {
		for _, p := range req.Paths {
			req.Progress.OnEvent(Event{File: p, Stage: StageParse, Status: StatusQueued})
		}
	}

	start := time.Now()
	outcomes := make([]UnitOutcome, len(req.Paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, p := range req.Paths {
		g.Go(func() error {
			out, err := buildUnit(gctx, req, outputDir, p)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	result.Units = outcomes
	result.Elapsed = time.Since(start)
	for _, u := range outcomes {
		result.ErrorCount += u.ErrorCount
	}
	return result, nil
}

// buildUnit compiles one source file and writes its module, going through
// the cache when one is configured.
func buildUnit(ctx context.Context, req *BuildRequest, outputDir, path string) (UnitOutcome, error) {
	out := UnitOutcome{Path: path}
	outPath := filepath.Join(outputDir, moduleFileName(path))

	var src []byte
	var key modcache.Digest
	if req.Cache != nil {
		var err error
		src, err = os.ReadFile(path)
		if err != nil {
			return out, err
		}
		key = modcache.HashSource(src)
		var hit modcache.Payload
		if ok, err := req.Cache.Get(key, &hit); err == nil && ok {
			if werr := os.WriteFile(outPath, []byte(hit.Module), 0o600); werr != nil {
				return out, fmt.Errorf("failed to write module %q: %w", outPath, werr)
			}
			out.OutputPath = outPath
			out.Cached = true
			emitStage(req.Progress, path, StageEmit, StatusDone, nil, 0)
			return out, nil
		}
	}

	res, err := Compile(ctx, &CompileRequest{
		Path:           path,
		Source:         src,
		MaxDiagnostics: req.MaxDiagnostics,
		Sink:           req.Sink,
		Progress:       req.Progress,
	})
	if err != nil {
		return out, err
	}
	out.ErrorCount = res.ErrorCount
	out.Elapsed = res.Elapsed

	if res.Module == FailureSentinel {
		return out, nil
	}
	if werr := os.WriteFile(outPath, []byte(res.Module), 0o600); werr != nil {
		return out, fmt.Errorf("failed to write module %q: %w", outPath, werr)
	}
	out.OutputPath = outPath

	if req.Cache != nil && res.ErrorCount == 0 {
		// Cache write failures are non-fatal; the module is on disk.
		_ = req.Cache.Put(key, &modcache.Payload{Path: path, Module: res.Module})
	}
	return out, nil
}

// moduleFileName maps a source path to its module file name, e.g.
// pkg/app.cin becomes app.easm.
func moduleFileName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".easm"
}
