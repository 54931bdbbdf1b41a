package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cinder/internal/buildpipeline"
	"cinder/internal/diag"
	"cinder/internal/modcache"
	"cinder/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.cin ...]",
	Short: "Compile sources into Ember VM modules",
	Long: `Build compiles every given source file into a .easm module. With no
arguments the nearest cinder.toml decides what to compile.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Int("jobs", 0, "concurrent compilations (0 = all CPUs)")
	buildCmd.Flags().String("output", "", "output root (overrides [build].output)")
	buildCmd.Flags().Bool("no-cache", false, "disable the module cache")
}

func runBuild(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	outputOverride, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Root().PersistentFlags().GetString("ui")
	if err != nil {
		return err
	}
	useUI, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	if quiet {
		useUI = false
	}

	paths, outputRoot, manifestJobs, err := resolveBuildTargets(args)
	if err != nil {
		return err
	}
	if outputOverride != "" {
		outputRoot = outputOverride
	}
	if jobs == 0 {
		jobs = manifestJobs
	}

	var cache *modcache.Cache
	if !noCache {
		cache, err = modcache.Open("cinder")
		if err != nil {
			// A broken cache dir should not block the build.
			fmt.Fprintf(os.Stderr, "warning: module cache disabled: %v\n", err)
			cache = nil
		}
	}

	var sink diag.Sink = diag.WriterSink{W: os.Stderr}
	if quiet {
		sink = errorOnlySink{next: sink}
	}
	req := &buildpipeline.BuildRequest{
		Paths:          paths,
		OutputRoot:     outputRoot,
		Jobs:           jobs,
		Cache:          cache,
		MaxDiagnostics: maxDiags,
		Sink:           sink,
	}

	var res buildpipeline.BuildResult
	if useUI {
		// Progress events carry the request paths verbatim, so the UI
		// list must use the same strings.
		res, err = runBuildWithUI(cmd.Context(), "cinder build", paths, req)
	} else {
		res, err = buildpipeline.Build(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	if showTimings {
		printUnitTimings(os.Stdout, res)
	}
	if res.ErrorCount > 0 {
		return fmt.Errorf("build failed with %d error(s)", res.ErrorCount)
	}
	if !quiet {
		written := 0
		for _, u := range res.Units {
			if u.OutputPath != "" {
				written++
			}
		}
		fmt.Fprintf(os.Stdout, "wrote %d module(s) in %s\n",
			written, buildpipeline.FormatLatency(res.Elapsed))
	}
	return nil
}

// errorOnlySink drops informational reports, keeping build errors.
type errorOnlySink struct {
	next diag.Sink
}

func (s errorOnlySink) ReportBuildError(msg, path string, line, col int) {
	s.next.ReportBuildError(msg, path, line, col)
}

func (s errorOnlySink) ReportInfo(string) {}

// resolveBuildTargets turns CLI arguments into source file paths plus the
// output root and the manifest's job count (0 when none applies).
// Explicit arguments win; otherwise the manifest decides.
func resolveBuildTargets(args []string) (paths []string, outputRoot string, jobs int, err error) {
	if len(args) > 0 {
		for _, a := range args {
			if filepath.Ext(a) != project.SourceExt {
				return nil, "", 0, fmt.Errorf("%q is not a %s file", a, project.SourceExt)
			}
		}
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		return args, cwd, 0, nil
	}

	manifestPath, ok, err := project.Find(".")
	if err != nil {
		return nil, "", 0, err
	}
	if !ok {
		return nil, "", 0, fmt.Errorf("no source files given and no %s found", project.ManifestName)
	}
	manifest, err := project.Load(manifestPath)
	if err != nil {
		return nil, "", 0, err
	}
	paths, err = manifest.SourceFiles()
	if err != nil {
		return nil, "", 0, err
	}
	return paths, manifest.OutputRoot(), manifest.Build.Jobs, nil
}
