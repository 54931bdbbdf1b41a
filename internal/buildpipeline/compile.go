// Package buildpipeline orchestrates the compilation passes for one or
// more source units and assembles the final module text.
package buildpipeline

import (
	"context"
	"fmt"
	"time"

	"cinder/internal/asm"
	"cinder/internal/diag"
	"cinder/internal/lower"
	"cinder/internal/parser"
	"cinder/internal/source"
	"cinder/internal/symbols"
)

// FailureSentinel is returned in place of module text when syntax errors
// make compilation impossible.
const FailureSentinel = "error"

// defaultMaxDiagnostics bounds the per-unit diagnostic bag.
const defaultMaxDiagnostics = 256

// CompileRequest configures compilation of a single source unit.
type CompileRequest struct {
	// Path names the unit; it is loaded from disk unless Source is set.
	Path string
	// Source, when non-nil, is used instead of reading Path.
	Source []byte

	MaxDiagnostics int
	Sink           diag.Sink
	Progress       ProgressSink
}

// CompileResult captures the module text and compilation outcome. Module
// may be a best-effort (possibly invalid) module even when ErrorCount is
// non-zero; callers must check ErrorCount or the sentinel, never assume a
// non-sentinel return means success.
type CompileResult struct {
	Module     string
	ErrorCount int
	Directory  *symbols.Directory
	Elapsed    time.Duration
	Timings    Timings
}

// Compile runs the full pipeline over one unit: parse, namespace
// resolution, signature harvesting, lowering, integrity verification, and
// module assembly. Each unit owns its resolver context, symbol directory,
// and label table, so independent units may compile concurrently.
//
// Syntax errors are fatal: every error diagnostic is delivered to the
// sink and the sentinel is returned with no passes run. Lowering and
// verification failures are reported as located diagnostics but still
// produce a best-effort module.
func Compile(ctx context.Context, req *CompileRequest) (CompileResult, error) {
	var result CompileResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing compile request")
	}
	if req.Path == "" {
		return result, fmt.Errorf("missing target path")
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	sink := req.Sink
	if sink == nil {
		sink = diag.NopSink{}
	}
	maxDiags := req.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = defaultMaxDiagnostics
	}

	start := time.Now()
	emitStage(req.Progress, req.Path, StageParse, StatusWorking, nil, 0)

	fs := source.NewFileSet()
	var id source.FileID
	if req.Source != nil {
		id = fs.AddVirtual(req.Path, req.Source)
	} else {
		var err error
		id, err = fs.Load(req.Path)
		if err != nil {
			emitStage(req.Progress, req.Path, StageParse, StatusError, err, 0)
			return result, err
		}
	}

	parseStart := time.Now()
	bag := diag.NewBag(safeCap(maxDiags))
	unit := parser.ParseUnit(fs.Get(id), parser.Options{
		MaxErrors: uint(maxDiags),
		Reporter:  diag.BagReporter{Bag: bag},
	})
	result.Timings.Set(StageParse, time.Since(parseStart))

	if bag.HasErrors() {
		// Deliver every error-severity diagnostic before giving up, so
		// one editor round trip shows all syntax problems in the file.
		for _, d := range bag.Items() {
			if d.Severity == diag.SevError {
				diag.Deliver(sink, fs, d)
			}
		}
		result.Module = FailureSentinel
		result.ErrorCount = bag.ErrorCount()
		result.Elapsed = time.Since(start)
		emitStage(req.Progress, req.Path, StageParse, StatusError,
			fmt.Errorf("%d syntax error(s)", result.ErrorCount), result.Elapsed)
		return result, nil
	}

	rctx := symbols.NewContext()
	dir := symbols.NewDirectory()
	labels := symbols.NewLabelTable()
	result.Directory = dir

	emitStage(req.Progress, req.Path, StageResolve, StatusWorking, nil, 0)
	lower.ResolveNamespaces(unit, rctx)

	emitStage(req.Progress, req.Path, StageHarvest, StatusWorking, nil, 0)
	var code *asm.Builder
	harvest, fail := lower.HarvestSignatures(unit, rctx, dir)
	if fail == nil {
		emitStage(req.Progress, req.Path, StageLower, StatusWorking, nil, 0)
		lowerStart := time.Now()
		var res *lower.Result
		res, fail = lower.NewLowerer(rctx, dir, labels, harvest).LowerUnit(unit)
		result.Timings.Set(StageLower, time.Since(lowerStart))
		if res != nil {
			code = res.Code
		}
		if fail == nil {
			emitStage(req.Progress, req.Path, StageVerify, StatusWorking, nil, 0)
			fail = lower.Verify(res, dir, labels)
		}
	}
	if fail != nil {
		diag.Deliver(sink, fs, failureDiagnostic(id, fail))
		result.ErrorCount++
	}

	emitStage(req.Progress, req.Path, StageEmit, StatusWorking, nil, 0)
	result.Module = AssembleModule(dir, code)
	result.Elapsed = time.Since(start)

	if result.ErrorCount == 0 {
		sink.ReportInfo(fmt.Sprintf("compiled %s in %s", req.Path, FormatLatency(result.Elapsed)))
		emitStage(req.Progress, req.Path, StageEmit, StatusDone, nil, result.Elapsed)
	} else {
		emitStage(req.Progress, req.Path, StageEmit, StatusError, fail, result.Elapsed)
	}
	return result, nil
}

// failureDiagnostic converts a pass failure into a located diagnostic.
// The location comes from the node being processed when the failure was
// raised; with no node the diagnostic points at the start of the file.
func failureDiagnostic(file source.FileID, fail *lower.Failure) diag.Diagnostic {
	code := diag.LowInternal
	if fail.Kind == lower.FailVerify {
		code = diag.VerIntegrity
	}
	sp := source.Span{File: file}
	if fail.Node != nil {
		sp = fail.Node.Span()
	}
	return diag.NewError(code, sp, fail.Error())
}

// FormatLatency renders a wall-clock duration as
// minutes:seconds.milliseconds.
func FormatLatency(d time.Duration) string {
	m := int(d / time.Minute)
	s := int(d/time.Second) % 60
	ms := int(d/time.Millisecond) % 1000
	return fmt.Sprintf("%d:%02d.%03d", m, s, ms)
}

func safeCap(n int) int {
	if n > 65535 {
		return 65535
	}
	return n
}
