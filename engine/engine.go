package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/uprootiny/umbra-sub002/anim"
	"github.com/uprootiny/umbra-sub002/arena"
	"github.com/uprootiny/umbra-sub002/chart"
	"github.com/uprootiny/umbra-sub002/clipexport"
	"github.com/uprootiny/umbra-sub002/field"
	"github.com/uprootiny/umbra-sub002/history"
	"github.com/uprootiny/umbra-sub002/pointset"
	"github.com/uprootiny/umbra-sub002/render"
	"github.com/uprootiny/umbra-sub002/vptree"
)

// Clock abstracts wall-clock time, following the explicit-clock design
// note of spec.md §9 (clipboard coalescing takes a timestamp from this
// clock rather than calling time.Now() itself; each history.Stack keeps
// its own clock, which the engine leaves at the wall-clock default).
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type stdLogger struct{ *log.Logger }

func (s stdLogger) Printf(format string, args ...any) { s.Logger.Printf(format, args...) }

// pointSetEntry bundles a PointSet with the per-set satellite state
// that only makes sense scoped to it: undo history, spatial index, and
// density field.
type pointSetEntry struct {
	ps      *pointset.PointSet
	history *history.Stack
	index   *vptree.Index
	field   *field.Field
}

// rendererEntry bundles a batch Renderer with the point set it targets,
// so UpdateBatch/GetBatchStats need only the rid.
type rendererEntry struct {
	renderer *render.Renderer
	psID     string
}

// Engine is the one process-wide aggregate: every core operation is a
// method on it, and it is the sole owner of every point set, lens,
// renderer, clipboard, and animation queue in the process, per spec.md
// §9's "one process-wide Engine aggregate, no implicit globals."
type Engine struct {
	dim int

	log   Logger
	clock Clock

	nextID int

	pointsets map[string]*pointSetEntry
	lenses    map[string]*chart.Lens
	renderers map[string]*rendererEntry

	activeLens string
	clipboard  clipexport.Clipboard

	animQueue *anim.Queue
	scratch   *arena.Float64Arena
}

// Option configures New.
type Option func(*Engine)

// WithLogger overrides the default stdlib-log-backed Logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock overrides the default wall clock, for deterministic tests.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// New constructs an Engine for ambient hyperbolic dimension dim,
// corresponding to spec.md §6's init(dim) lifecycle call. A single
// engine serves every point set, lens, and renderer created
// thereafter; all share the same dimension.
func New(dim int, opts ...Option) *Engine {
	e := &Engine{
		dim:       dim,
		log:       stdLogger{log.New(log.Writer(), "", log.LstdFlags)},
		clock:     realClock{},
		pointsets: make(map[string]*pointSetEntry),
		lenses:    make(map[string]*chart.Lens),
		renderers: make(map[string]*rendererEntry),
		animQueue: anim.NewQueue(),
		scratch:   arena.NewFloat64Arena(1 << 16),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) nextIDFor(prefix string) string {
	e.nextID++
	return fmt.Sprintf("%s%d", prefix, e.nextID)
}

func (e *Engine) logErr(err *EngineError) *EngineError {
	e.log.Printf("%v", err)
	return err
}

// BeginFrame resets the per-frame scratch arena, per spec.md §5's
// "scratch buffers provided through a frame arena, reset at the start
// of each frame."
func (e *Engine) BeginFrame() {
	e.scratch.Reset()
}

// TickAnimations advances every running animation by dtMs milliseconds
// and removes the ones that finished this tick. It is the engine's one
// ambient per-frame hook beyond BeginFrame — the display-refresh loop
// (spec.md §5) is expected to call both once per frame.
func (e *Engine) TickAnimations(dtMs float64) {
	e.animQueue.Tick(dtMs / 1000.0)
}

// HotReloadBefore/HotReloadAfter are optional lifecycle hooks (spec.md
// §6) with nothing to snapshot in this engine's state model — every
// point set already lives in columnar slices the caller can serialize
// via ExportPointSet, so a hot reload only needs to re-run CreatePointSet
// + ImportPointSet on the other side. Kept as no-ops for interface
// parity with adapters that always call them.
func (e *Engine) HotReloadBefore() {}
func (e *Engine) HotReloadAfter()  {}

func (e *Engine) entry(psID string) (*pointSetEntry, *EngineError) {
	pe, ok := e.pointsets[psID]
	if !ok {
		return nil, newErr(NotFound, "pointset", pointset.ErrNotFound)
	}
	return pe, nil
}
