package convert

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/observability"
)

// DefaultBinary is the compositing program run by a Renderer.
const DefaultBinary = "convert"

// Result describes a finished render.
type Result struct {
	JobID    string
	Output   string
	Warnings string // stderr of a successful run
	Duration time.Duration
}

// Renderer runs convert for a document. Renders of the same document key are
// serialized: a request that arrives while one is running fails with
// RENDER_IN_PROGRESS instead of queueing.
type Renderer struct {
	Runner ProcessRunner
	Binary string
	Logger *log.Logger

	mu    sync.Mutex
	locks map[string]*semaphore.Weighted
}

// NewRenderer creates a renderer. A nil runner uses ExecRunner, an empty
// binary uses DefaultBinary and a nil logger uses log.Default().
func NewRenderer(runner ProcessRunner, binary string, logger *log.Logger) *Renderer {
	if runner == nil {
		runner = ExecRunner{}
	}
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		Runner: runner,
		Binary: binary,
		Logger: logger,
		locks:  make(map[string]*semaphore.Weighted),
	}
}

func (r *Renderer) lock(key string) *semaphore.Weighted {
	r.mu.Lock()
	defer r.mu.Unlock()
	sem, ok := r.locks[key]
	if !ok {
		sem = semaphore.NewWeighted(1)
		r.locks[key] = sem
	}
	return sem
}

// Render composites req. key identifies the document being rendered.
func (r *Renderer) Render(ctx context.Context, key string, req Request) (*Result, error) {
	sem := r.lock(key)
	if !sem.TryAcquire(1) {
		return nil, errors.New(errors.ErrCodeRenderInProgress, "a render of %s is already running", key)
	}
	defer sem.Release(1)

	if req.Output == "" {
		req.Output = DefaultOutput
	}
	args := BuildArgs(req)
	res := &Result{JobID: uuid.NewString(), Output: req.Output}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, res.JobID, len(req.Regions))
	r.Logger.Debug("running convert", "job", res.JobID, "binary", r.Binary, "args", len(args))

	start := time.Now()
	_, stderr, err := r.Runner.Run(ctx, r.Binary, args)
	res.Duration = time.Since(start)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeRenderFailed, err, "error running convert command")
		hooks.OnRenderComplete(ctx, res.JobID, res.Duration, err)
		return nil, err
	}
	hooks.OnRenderComplete(ctx, res.JobID, res.Duration, nil)

	res.Warnings = strings.TrimSpace(string(stderr))
	if res.Warnings != "" {
		r.Logger.Warn("convert finished with warnings", "job", res.JobID, "stderr", res.Warnings)
	}
	r.Logger.Info("rendered matte", "out", res.Output, "regions", len(req.Regions), "duration", res.Duration.Round(time.Millisecond))
	return res, nil
}

// CommandLine returns the shell command that Render would run for req.
func (r *Renderer) CommandLine(req Request) string {
	return CommandLine(r.Binary, BuildArgs(req))
}
