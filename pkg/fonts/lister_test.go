package fonts

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/matte/pkg/cache"
	"github.com/matzehuels/matte/pkg/errors"
)

type fakeRunner struct {
	stdout string
	err    error
	calls  int
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string) ([]byte, []byte, error) {
	f.calls++
	return []byte(f.stdout), nil, f.err
}

func newTestLister(t *testing.T, runner *fakeRunner) *Lister {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewLister(runner, "", c, log.New(&bytes.Buffer{}))
}

func TestListerCaches(t *testing.T) {
	runner := &fakeRunner{stdout: listOutput}
	l := newTestLister(t, runner)
	ctx := context.Background()

	first, err := l.ListBold(ctx)
	if err != nil {
		t.Fatalf("ListBold() error: %v", err)
	}
	second, err := l.ListBold(ctx)
	if err != nil {
		t.Fatalf("ListBold() error: %v", err)
	}
	if runner.calls != 1 {
		t.Errorf("runner called %d times, want 1", runner.calls)
	}
	if len(first) != 3 || len(second) != 3 || second[0] != first[0] {
		t.Errorf("cached list differs: %v vs %v", first, second)
	}
}

func TestListerPartialFailure(t *testing.T) {
	runner := &fakeRunner{stdout: listOutput, err: fmt.Errorf("exit status 1")}
	fonts, err := newTestLister(t, runner).ListBold(context.Background())
	if err != nil {
		t.Fatalf("ListBold() error: %v", err)
	}
	if len(fonts) != 3 {
		t.Errorf("len(fonts) = %d, want 3", len(fonts))
	}
}

func TestListerFailure(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("convert not found")}
	_, err := newTestLister(t, runner).ListBold(context.Background())
	if !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("ListBold() error = %v, want FONT_NOT_FOUND", err)
	}
}

func TestResolve(t *testing.T) {
	l := newTestLister(t, &fakeRunner{stdout: listOutput})
	ctx := context.Background()

	f, fallback, err := l.Resolve(ctx, "OpenSans-Bold")
	if err != nil || fallback || f.CSSFontFamily != "Open Sans" {
		t.Errorf("Resolve(OpenSans-Bold) = %+v, %v, %v", f, fallback, err)
	}

	f, fallback, err = l.Resolve(ctx, "Papyrus-Bold")
	if err != nil || !fallback || f.IMFontName != "arial-black" {
		t.Errorf("Resolve(missing) = %+v, %v, %v; want first font as fallback", f, fallback, err)
	}

	empty := newTestLister(t, &fakeRunner{stdout: "  Font: Thin\n    family: Thin\n    glyphs: /Thin.ttf\n"})
	if _, _, err := empty.Resolve(ctx, "Arial-Bold"); !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("Resolve with no bold fonts error = %v, want FONT_NOT_FOUND", err)
	}
}
