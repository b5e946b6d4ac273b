package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subtran/internal/logging"
	"subtran/internal/sanitize"
	"subtran/internal/store"
	"subtran/internal/translate"
)

const rawSample = "1\n00:00:01,000 --> 00:00:02,000\nWe  started\nthe project\n\n" +
	"2\n00:00:02,000 --> 00:00:03,000\nback in 2015.\n\n" +
	"3\n00:00:03,000 --> 00:00:04,000\nThat was it!\n\n"

func newTestRunner() *Runner {
	return NewRunnerWithLogger(logging.NewNopLogger())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestPreprocess(t *testing.T) {
	root := t.TempDir()
	inDir := filepath.Join(root, "raw")
	outDir := filepath.Join(root, "clean")
	if err := os.Mkdir(inDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(inDir, "ep01.srt"), rawSample)
	writeFile(t, filepath.Join(inDir, "empty.srt"), "junk\n")

	results, err := newTestRunner().Preprocess(inDir, outDir)
	if err != nil {
		t.Fatalf("preprocess: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %+v", results)
	}
	if !results[0].Skipped || results[0].Input != "empty.srt" {
		t.Fatalf("empty file should be skipped: %+v", results[0])
	}
	if results[1].Skipped || results[1].Count != 2 {
		t.Fatalf("unexpected result %+v", results[1])
	}

	out := readFile(t, filepath.Join(outDir, "ep01_cleaned.srt"))
	if !strings.Contains(out, "We started the project back in 2015.") {
		t.Fatalf("normalization missing in output:\n%s", out)
	}
	if !strings.HasPrefix(out, "1\n00:00:01,000 --> 00:00:03,000\n") {
		t.Fatalf("merged timecode wrong:\n%s", out)
	}
}

func TestPreprocessMissingDir(t *testing.T) {
	if _, err := newTestRunner().Preprocess(filepath.Join(t.TempDir(), "nope"), t.TempDir()); err == nil {
		t.Fatal("expected error for missing input dir")
	}
}

func TestExtract(t *testing.T) {
	root := t.TempDir()
	inDir := filepath.Join(root, "clean")
	outDir := filepath.Join(root, "csv")
	if err := os.Mkdir(inDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(inDir, "ep01_cleaned.srt"),
		"1\n00:00:01,000 --> 00:00:02,000\nhello\nworld\n\n")

	results, err := newTestRunner().Extract(inDir, outDir)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(results) != 1 || results[0].Output != "ep01_cleaned.csv" {
		t.Fatalf("unexpected results %+v", results)
	}
	records, _, err := store.ReadFile(filepath.Join(outDir, "ep01_cleaned.csv"))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if records[0].Timecode != "00:00:01,000 --> 00:00:02,000" || records[0].Content != "hello world" {
		t.Fatalf("unexpected record %+v", records[0])
	}
}

func TestTranslateStage(t *testing.T) {
	root := t.TempDir()
	inDir := filepath.Join(root, "csv")
	outDir := filepath.Join(root, "pre")
	if err := os.Mkdir(inDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(inDir, "ep01.csv"), "Timecode,Content\ntc1,hello\ntc2,world\n")

	provider, err := translate.New("mock", translate.Options{})
	if err != nil {
		t.Fatal(err)
	}
	engine := translate.NewEngine(provider, 1)
	results, err := newTestRunner().Translate(context.Background(), inDir, outDir, engine)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if len(results) != 1 || results[0].Count != 2 {
		t.Fatalf("unexpected results %+v", results)
	}
	records, hasTranslation, err := store.ReadFile(filepath.Join(outDir, "ep01_pretranslated.csv"))
	if err != nil || !hasTranslation {
		t.Fatalf("read csv: %v %v", hasTranslation, err)
	}
	if records[0].Translation != "MOCK: hello" || records[1].Translation != "MOCK: world" {
		t.Fatalf("unexpected translations %+v", records)
	}
}

func TestSanitizeStage(t *testing.T) {
	root := t.TempDir()
	inDir := filepath.Join(root, "pre")
	outDir := filepath.Join(root, "san")
	if err := os.Mkdir(inDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(inDir, "ep01.csv"),
		"Timecode,Content,Content_zh\ntc1,hi,abc你好\n")
	writeFile(t, filepath.Join(inDir, "nozh.csv"), "Timecode,Content\ntc1,hi\n")

	results, err := newTestRunner().Sanitize(inDir, outDir, sanitize.New(sanitize.Identity{}))
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("unexpected results %+v", results)
	}
	if results[0].Skipped || results[0].Output != "ep01_sanitized.csv" {
		t.Fatalf("unexpected result %+v", results[0])
	}
	if !results[1].Skipped {
		t.Fatalf("file without translation column must be skipped: %+v", results[1])
	}
	records, _, err := store.ReadFile(filepath.Join(outDir, "ep01_sanitized.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Translation != "abc 你好" {
		t.Fatalf("expected width spacing, got %q", records[0].Translation)
	}
}

func TestConvert(t *testing.T) {
	root := t.TempDir()
	inDir := filepath.Join(root, "san")
	outDir := filepath.Join(root, "out")
	if err := os.Mkdir(inDir, 0o755); err != nil {
		t.Fatal(err)
	}
	csv := "Timecode,Content,Content_zh\n" +
		"\"00:00:01,000 --> 00:00:02,000\",hello,你好\n" +
		"\"00:00:02,000 --> 00:00:03,000\",skip me,\n" +
		"\"00:00:03,000 --> 00:00:04,000\",arrow,a-->b\n"
	writeFile(t, filepath.Join(inDir, "ep01.csv"), csv)

	results, err := newTestRunner().Convert(inDir, outDir)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if results[0].Count != 2 {
		t.Fatalf("expected 2 surviving rows, got %+v", results[0])
	}
	out := readFile(t, filepath.Join(outDir, "ep01.srt"))
	want := "1\n00:00:01,000 --> 00:00:02,000\n你好\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\na→b\n\n"
	if out != want {
		t.Fatalf("unexpected srt output:\n%s", out)
	}
}

// Full chain over a temp tree: raw SRT in, translated SRT out.
func TestPipelineEndToEnd(t *testing.T) {
	root := t.TempDir()
	dirs := map[string]string{
		"raw":   filepath.Join(root, "raw subtitles"),
		"clean": filepath.Join(root, "preprocessed subtitles"),
		"csv":   filepath.Join(root, "extracted csv"),
		"pre":   filepath.Join(root, "pretranslated csv"),
		"san":   filepath.Join(root, "sanitized csv"),
		"out":   filepath.Join(root, "translated subtitles"),
	}
	if err := os.Mkdir(dirs["raw"], 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dirs["raw"], "ep01.srt"), rawSample)

	r := newTestRunner()
	if _, err := r.Preprocess(dirs["raw"], dirs["clean"]); err != nil {
		t.Fatalf("preprocess: %v", err)
	}
	if _, err := r.Extract(dirs["clean"], dirs["csv"]); err != nil {
		t.Fatalf("extract: %v", err)
	}
	provider, _ := translate.New("mock", translate.Options{})
	if _, err := r.Translate(context.Background(), dirs["csv"], dirs["pre"], translate.NewEngine(provider, 0)); err != nil {
		t.Fatalf("translate: %v", err)
	}
	if _, err := r.Sanitize(dirs["pre"], dirs["san"], sanitize.New(sanitize.Identity{})); err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	results, err := r.Convert(dirs["san"], dirs["out"])
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(results) != 1 || results[0].Skipped {
		t.Fatalf("unexpected results %+v", results)
	}

	out := readFile(t, filepath.Join(dirs["out"], results[0].Output))
	if !strings.Contains(out, "MOCK: We started the project back in 2015.") {
		t.Fatalf("unexpected final output:\n%s", out)
	}
	if !strings.HasPrefix(out, "1\n00:00:01,000 --> 00:00:03,000\n") {
		t.Fatalf("final output lost merged timing:\n%s", out)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.srt"), rawSample)
	writeFile(t, filepath.Join(dir, "b.srt"), "nothing here\n")

	infos, err := newTestRunner().Inspect(dir)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 files, got %+v", infos)
	}
	if infos[0].Name != "a.srt" || infos[0].Blocks != 3 {
		t.Fatalf("unexpected info %+v", infos[0])
	}
	if infos[1].Blocks != 0 {
		t.Fatalf("expected zero blocks for junk file, got %+v", infos[1])
	}
}
