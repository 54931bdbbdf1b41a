package buildpipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"cinder/internal/buildpipeline"
	"cinder/internal/modcache"
)

// recordSink captures host-facing diagnostics for assertions.
type recordSink struct {
	mu     sync.Mutex
	errors []recordedError
	infos  []string
}

type recordedError struct {
	msg  string
	path string
	line int
	col  int
}

func (s *recordSink) ReportBuildError(msg, path string, line, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, recordedError{msg: msg, path: path, line: line, col: col})
}

func (s *recordSink) ReportInfo(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infos = append(s.infos, msg)
}

func compileStr(t *testing.T, src string) (buildpipeline.CompileResult, *recordSink) {
	t.Helper()
	sink := &recordSink{}
	res, err := buildpipeline.Compile(context.Background(), &buildpipeline.CompileRequest{
		Path:   "test.cin",
		Source: []byte(src),
		Sink:   sink,
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return res, sink
}

func TestCompilePublicField(t *testing.T) {
	res, sink := compileStr(t, `
namespace App {
	class C {
		public int x;
	}
}
`)
	if res.ErrorCount != 0 {
		t.Fatalf("errors = %d, sink = %+v", res.ErrorCount, sink.errors)
	}
	exportRe := regexp.MustCompile(`\.export x_\d+`)
	if len(exportRe.FindAllString(res.Module, -1)) != 1 {
		t.Errorf("expected exactly one export of x:\n%s", res.Module)
	}
	declRe := regexp.MustCompile(`x_\d+: %SystemInt32, null`)
	if !declRe.MatchString(res.Module) {
		t.Errorf("declaration of x missing:\n%s", res.Module)
	}
	// One field, no methods: exactly one declaration line, and no
	// receiver symbol for a class that never names `this`.
	anyDeclRe := regexp.MustCompile(`(?m)^    \w+: %`)
	if decls := anyDeclRe.FindAllString(res.Module, -1); len(decls) != 1 {
		t.Errorf("declarations = %d, want 1:\n%s", len(decls), res.Module)
	}
	if strings.Contains(res.Module, ", this") {
		t.Errorf("unused receiver symbol declared:\n%s", res.Module)
	}
	// No methods and no const fields: the code block is empty.
	if !strings.HasSuffix(res.Module, ".data_end\n\n") {
		t.Errorf("code block should be empty:\n%q", res.Module)
	}
	if len(sink.infos) != 1 || !strings.Contains(sink.infos[0], "compiled test.cin in ") {
		t.Errorf("latency info = %+v", sink.infos)
	}
}

func TestCompileSyntaxErrorReturnsSentinel(t *testing.T) {
	res, sink := compileStr(t, `
class C {
	public int x
}
`)
	if res.Module != buildpipeline.FailureSentinel {
		t.Fatalf("module = %q", res.Module)
	}
	if res.ErrorCount == 0 {
		t.Fatal("error count must be non-zero")
	}
	// No passes run: no symbol directory was built.
	if res.Directory != nil {
		t.Error("directory must stay empty on syntax errors")
	}
	if len(sink.errors) != 1 {
		t.Fatalf("errors = %+v", sink.errors)
	}
	got := sink.errors[0]
	if got.line != 4 {
		t.Errorf("line = %d, want 4 (the brace after the unterminated field)", got.line)
	}
	if got.path != "test.cin" {
		t.Errorf("path = %q", got.path)
	}
	if len(sink.infos) != 0 {
		t.Errorf("no latency info on failure, got %+v", sink.infos)
	}
}

func TestCompileForwardCall(t *testing.T) {
	res, sink := compileStr(t, `
class Seq {
	int foo() {
		return bar();
	}
	int bar() {
		return 7;
	}
}
`)
	if res.ErrorCount != 0 {
		t.Fatalf("errors = %d, sink = %+v", res.ErrorCount, sink.errors)
	}
	if !strings.Contains(res.Module, "Seq_bar") {
		t.Errorf("forward call target missing:\n%s", res.Module)
	}
}

func TestCompileLoweringFailureBestEffort(t *testing.T) {
	res, sink := compileStr(t, `
namespace App {
	class C {
		public int x;

		int broken() {
			return nothere;
		}
	}
}
`)
	if res.ErrorCount != 1 {
		t.Fatalf("errors = %d, sink = %+v", res.ErrorCount, sink.errors)
	}
	if len(sink.errors) != 1 {
		t.Fatalf("errors = %+v", sink.errors)
	}
	if sink.errors[0].line != 7 {
		t.Errorf("failure located at line %d, want 7", sink.errors[0].line)
	}
	// Best-effort module still comes back with the data block intact.
	if res.Module == buildpipeline.FailureSentinel {
		t.Fatal("lowering failures must not return the sentinel")
	}
	if !strings.Contains(res.Module, ".data_start") || !strings.Contains(res.Module, "%SystemInt32") {
		t.Errorf("partial module missing data block:\n%s", res.Module)
	}
}

func TestCompileDuplicateInitLabelReported(t *testing.T) {
	// The const initializer section and a user method named init share
	// one mangled label; the collision must surface as an error instead
	// of shipping a module the loader rejects.
	res, sink := compileStr(t, `
namespace App {
	class C {
		private const int max = 9;

		void init() {}
	}
}
`)
	if res.ErrorCount == 0 {
		t.Fatalf("duplicate label compiled clean:\n%s", res.Module)
	}
	if len(sink.errors) == 0 || !strings.Contains(sink.errors[0].msg, "App_C_init") {
		t.Errorf("errors = %+v", sink.errors)
	}
}

func TestCompileDeclarationCompleteness(t *testing.T) {
	res, _ := compileStr(t, `
class C {
	public int a;
	private string b;
	internal bool c;
}
`)
	if res.ErrorCount != 0 {
		t.Fatalf("errors = %d", res.ErrorCount)
	}
	declRe := regexp.MustCompile(`(?m)^    \w+: %`)
	decls := len(declRe.FindAllString(res.Module, -1))
	if decls != res.Directory.Len() {
		t.Errorf("declaration lines = %d, directory symbols = %d\n%s",
			decls, res.Directory.Len(), res.Module)
	}
}

func TestFormatLatency(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "0:00.000"},
		{999, "0:00.999"},
		{1000, "0:01.000"},
		{61500, "1:01.500"},
		{3600000, "60:00.000"},
	}
	for _, c := range cases {
		got := buildpipeline.FormatLatency(time.Duration(c.ms) * time.Millisecond)
		if got != c.want {
			t.Errorf("FormatLatency(%dms) = %q, want %q", c.ms, got, c.want)
		}
	}
}

func TestBuildWritesModulesAndUsesCache(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "counter.cin")
	src := `
namespace App {
	class Counter {
		public int count;

		void bump() {
			this.count = this.count + 1;
		}
	}
}
`
	if err := os.WriteFile(srcPath, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	cache, err := modcache.OpenAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	req := &buildpipeline.BuildRequest{
		Paths:      []string{srcPath},
		OutputRoot: dir,
		Cache:      cache,
		Sink:       &recordSink{},
	}
	res, err := buildpipeline.Build(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res.ErrorCount != 0 || len(res.Units) != 1 {
		t.Fatalf("result = %+v", res)
	}
	first := res.Units[0]
	if first.Cached {
		t.Error("first build must not be a cache hit")
	}
	module, err := os.ReadFile(first.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(module), ".export count_") {
		t.Errorf("module missing export:\n%s", module)
	}

	res2, err := buildpipeline.Build(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !res2.Units[0].Cached {
		t.Error("second build of unchanged source must hit the cache")
	}
	module2, err := os.ReadFile(res2.Units[0].OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(module2) != string(module) {
		t.Error("cached module differs from compiled module")
	}
}

func TestBuildNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "bom.cin")
	src := append([]byte{0xEF, 0xBB, 0xBF},
		[]byte("namespace App {\r\n\tclass C {\r\n\t\tpublic int x;\r\n\t}\r\n}\r\n")...)
	if err := os.WriteFile(srcPath, src, 0o600); err != nil {
		t.Fatal(err)
	}
	cache, err := modcache.OpenAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	sink := &recordSink{}
	req := &buildpipeline.BuildRequest{
		Paths:      []string{srcPath},
		OutputRoot: dir,
		Cache:      cache,
		Sink:       sink,
	}
	res, err := buildpipeline.Build(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res.ErrorCount != 0 {
		t.Fatalf("errors = %d, sink = %+v", res.ErrorCount, sink.errors)
	}
	module, err := os.ReadFile(res.Units[0].OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(module), ".export x_") {
		t.Errorf("module missing export:\n%s", module)
	}

	// With a cache configured the first build already fed raw file
	// bytes into the compiler; the rebuild serves the stored module.
	res2, err := buildpipeline.Build(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if res2.ErrorCount != 0 || !res2.Units[0].Cached {
		t.Fatalf("rebuild = %+v", res2)
	}
}

func TestBuildSyntaxErrorProducesNoOutput(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "bad.cin")
	if err := os.WriteFile(srcPath, []byte("class C {"), 0o600); err != nil {
		t.Fatal(err)
	}
	sink := &recordSink{}
	res, err := buildpipeline.Build(context.Background(), &buildpipeline.BuildRequest{
		Paths:      []string{srcPath},
		OutputRoot: dir,
		Sink:       sink,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.ErrorCount == 0 || res.Units[0].OutputPath != "" {
		t.Fatalf("result = %+v", res)
	}
	if len(sink.errors) == 0 {
		t.Error("syntax errors must reach the sink")
	}
}
