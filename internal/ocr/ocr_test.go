package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stubRunner returns canned output per binary name.
type stubRunner struct {
	out   map[string]string
	fail  map[string]error
	calls []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	if err, ok := s.fail[name]; ok {
		return nil, []byte("boom"), err
	}
	return []byte(s.out[name]), nil, nil
}

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t600\t400\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t20\t30\t80\t24\t95\tJohn\n" +
	"5\t1\t1\t1\t1\t2\t110\t30\t90\t24\t91\tSmith\n" +
	"5\t1\t1\t1\t2\t1\t20\t70\t200\t20\t88\tSenior\n" +
	"5\t1\t1\t1\t2\t2\t230\t70\t120\t20\t84\tEngineer\n"

func TestParseTSVLines(t *testing.T) {
	lines := parseTSVLines(sampleTSV)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	if lines[0].Text != "John Smith" {
		t.Errorf("line 0 text = %q, want %q", lines[0].Text, "John Smith")
	}
	if lines[1].Text != "Senior Engineer" {
		t.Errorf("line 1 text = %q, want %q", lines[1].Text, "Senior Engineer")
	}

	// word boxes are unioned per line
	box := lines[0].Box
	if box.Left != 20 || box.Top != 30 || box.Width != 180 || box.Height != 24 {
		t.Errorf("line 0 box = %+v, want union of word boxes", box)
	}

	// mean of 95 and 91, scaled to 0..1
	if got := lines[0].Confidence; got < 0.92 || got > 0.94 {
		t.Errorf("line 0 confidence = %v, want ~0.93", got)
	}
}

func TestParseTSVLines_EmptyAndMarkerRows(t *testing.T) {
	if got := parseTSVLines(""); len(got) != 0 {
		t.Fatalf("empty tsv produced %d lines", len(got))
	}
	// only header and a conf=-1 layout marker
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"1\t1\t0\t0\t0\t0\t0\t0\t600\t400\t-1\t\n"
	if got := parseTSVLines(tsv); len(got) != 0 {
		t.Fatalf("marker-only tsv produced %d lines", len(got))
	}
}

func TestExtractorLines(t *testing.T) {
	resetEngineProbe()
	runner := &stubRunner{out: map[string]string{"tesseract": sampleTSV}}
	e := NewExtractor(Config{}, nil)
	e.runner = runner

	res, err := e.Lines(context.Background(), "card.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Texts(); len(got) != 2 || got[0] != "John Smith" {
		t.Fatalf("Texts() = %v", got)
	}
	if !strings.Contains(res.Text, "Senior Engineer") {
		t.Errorf("joined text missing line: %q", res.Text)
	}
	if res.Language != "eng" {
		t.Errorf("language = %q, want eng", res.Language)
	}
}

func TestExtractorLines_UnsupportedExtension(t *testing.T) {
	resetEngineProbe()
	e := NewExtractor(Config{}, nil)
	e.runner = &stubRunner{}

	if _, err := e.Lines(context.Background(), "card.pdf"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestEngineFallsBackWhenAcceleratedProbeFails(t *testing.T) {
	resetEngineProbe()
	runner := &stubRunner{
		out:  map[string]string{"tesseract": sampleTSV},
		fail: map[string]error{"tesseract-opencl": errors.New("not found")},
	}
	e := NewExtractor(Config{AcceleratedBinary: "tesseract-opencl"}, nil)
	e.runner = runner

	if _, err := e.Lines(context.Background(), "card.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	probed := false
	for _, c := range runner.calls {
		if c == "tesseract-opencl" {
			probed = true
		}
	}
	if !probed {
		t.Error("accelerated binary was never probed")
	}
	if runner.calls[len(runner.calls)-1] != "tesseract" {
		t.Errorf("final OCR call used %q, want fallback tesseract", runner.calls[len(runner.calls)-1])
	}
}
