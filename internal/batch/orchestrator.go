package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/engr-razib/BrandingAssetGenerator/internal/brand"
	"github.com/engr-razib/BrandingAssetGenerator/internal/metrics"
)

const (
	kindBatch      = "batch"
	kindRegenerate = "regenerate"

	outputMimeType = "image/png"
)

// Generator is the external image-generation capability.
type Generator interface {
	GenerateImage(ctx context.Context, req brand.ImageRequest) ([]byte, error)
}

type Options struct {
	Generator Generator
	Logger    *slog.Logger

	// RequestTimeout bounds each image request. Every size of a batch is
	// dispatched at once, so it also bounds the whole batch.
	RequestTimeout time.Duration

	NewID func() string
	Now   func() time.Time
}

type Orchestrator struct {
	gen            Generator
	logger         *slog.Logger
	requestTimeout time.Duration
	newID          func() string
	now            func() time.Time
}

func New(opts Options) *Orchestrator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Orchestrator{
		gen:            opts.Generator,
		logger:         logger,
		requestTimeout: opts.RequestTimeout,
		newID:          newID,
		now:            now,
	}
}

// Batch is one submission: a frozen form snapshot plus the visible set of
// items generated from it.
type Batch struct {
	ID        string
	Form      brand.FormData
	Category  brand.Category
	CreatedAt time.Time

	mu     sync.Mutex
	items  []*Item
	once   sync.Once
	result Result
}

func (b *Batch) Items() []ItemView {
	b.mu.Lock()
	items := append([]*Item(nil), b.items...)
	b.mu.Unlock()

	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, it.View())
	}
	return out
}

// Ready returns the items that currently hold a payload, in visible order.
func (b *Batch) Ready() []ItemView {
	all := b.Items()
	out := make([]ItemView, 0, len(all))
	for _, v := range all {
		if v.Ready() {
			out = append(out, v)
		}
	}
	return out
}

func (b *Batch) Item(id string) (ItemView, bool) {
	it := b.lookup(id)
	if it == nil {
		return ItemView{}, false
	}
	return it.View(), true
}

func (b *Batch) lookup(id string) *Item {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, it := range b.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

type Result struct {
	BatchID string
	Items   []ItemView
	Failed  int
	Total   int
}

// Err classifies the settled batch: ErrAllFailed blocks, *PartialFailure
// is advisory, nil means every size succeeded (or none were requested).
func (r Result) Err() error {
	switch {
	case r.Failed == 0:
		return nil
	case len(r.Items) == 0:
		return ErrAllFailed
	default:
		return &PartialFailure{Failed: r.Failed, Total: r.Total}
	}
}

// Message is the user-facing text for Err, empty when nothing failed.
func (r Result) Message() string {
	switch err := r.Err(); {
	case err == nil:
		return ""
	case errors.Is(err, ErrAllFailed):
		return "Failed to generate any images. Please check your prompt or API configuration."
	default:
		return fmt.Sprintf("Failed to generate %d image(s). You can try regenerating them individually.", r.Failed)
	}
}

func (r Result) outcome() string {
	switch {
	case r.Total == 0:
		return "empty"
	case r.Failed == 0:
		return "complete"
	case len(r.Items) == 0:
		return "failed"
	default:
		return "partial"
	}
}

// NewBatch creates a batch with one pending item per size label. The form
// is copied, so later edits by the caller do not leak into the batch.
func (o *Orchestrator) NewBatch(form brand.FormData, category brand.Category, sizeLabels []string) *Batch {
	b := &Batch{
		ID:        o.newID(),
		Form:      form,
		Category:  category,
		CreatedAt: o.now(),
		items:     make([]*Item, 0, len(sizeLabels)),
	}
	for _, label := range sizeLabels {
		b.items = append(b.items, newItem(o.newID(), label))
	}
	return b
}

// Run dispatches every pending item of b concurrently, waits for all of
// them to settle and reconciles the visible set down to the ready items.
// A failing item never cancels its siblings. Running a batch twice
// returns the first result.
func (o *Orchestrator) Run(ctx context.Context, b *Batch) Result {
	b.once.Do(func() {
		b.result = o.run(ctx, b)
	})
	return b.result
}

func (o *Orchestrator) run(ctx context.Context, b *Batch) Result {
	b.mu.Lock()
	items := append([]*Item(nil), b.items...)
	b.mu.Unlock()

	metrics.BatchSize.Observe(float64(len(items)))

	if len(items) == 0 {
		res := Result{BatchID: b.ID}
		metrics.BatchesTotal.WithLabelValues(b.Category.String(), res.outcome()).Inc()
		return res
	}

	o.logger.Info("batch dispatched", "batch_id", b.ID, "category", b.Category.String(), "sizes", len(items))

	var g errgroup.Group
	for _, it := range items {
		it := it
		g.Go(func() error {
			data, err := o.generate(ctx, b, it.SizeLabel, kindBatch)
			if err != nil {
				o.logger.Warn("batch item failed", "batch_id", b.ID, "item_id", it.ID, "size", it.SizeLabel, "err", err)
				it.fail(err)
				return nil
			}
			it.succeed(data)
			return nil
		})
	}
	_ = g.Wait()

	ready := make([]*Item, 0, len(items))
	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		v := it.View()
		if v.State != StateReady {
			continue
		}
		ready = append(ready, it)
		views = append(views, v)
	}

	b.mu.Lock()
	b.items = ready
	b.mu.Unlock()

	res := Result{
		BatchID: b.ID,
		Items:   views,
		Failed:  len(items) - len(views),
		Total:   len(items),
	}

	metrics.BatchesTotal.WithLabelValues(b.Category.String(), res.outcome()).Inc()
	o.logger.Info("batch settled", "batch_id", b.ID, "ready", len(views), "failed", res.Failed)

	return res
}

// SubmitBatch creates a batch for the given sizes and runs it to settlement.
func (o *Orchestrator) SubmitBatch(ctx context.Context, form brand.FormData, category brand.Category, sizeLabels []string) (*Batch, Result) {
	b := o.NewBatch(form, category, sizeLabels)
	return b, o.Run(ctx, b)
}

// RegenerateItem requests a fresh image for one visible item using the
// batch's frozen snapshot. Only the targeted item is touched. On failure
// the item ends up Failed without a payload and an *ItemError is returned.
func (o *Orchestrator) RegenerateItem(ctx context.Context, b *Batch, itemID string) (ItemView, error) {
	it := b.lookup(itemID)
	if it == nil {
		return ItemView{}, ErrItemNotFound
	}
	if !it.begin() {
		return it.View(), ErrItemInFlight
	}

	data, err := o.generate(ctx, b, it.SizeLabel, kindRegenerate)
	if err != nil {
		o.logger.Warn("regeneration failed", "batch_id", b.ID, "item_id", it.ID, "size", it.SizeLabel, "err", err)
		it.fail(err)
		return it.View(), &ItemError{ItemID: it.ID, SizeLabel: it.SizeLabel, Err: err}
	}

	it.succeed(data)
	return it.View(), nil
}

func (o *Orchestrator) generate(ctx context.Context, b *Batch, sizeLabel, kind string) ([]byte, error) {
	prompt, ratio := brand.BuildPrompt(b.Form, b.Category, sizeLabel)

	// Dispatched requests are never cancelled; a superseded batch simply
	// lets them finish.
	reqCtx := context.WithoutCancel(ctx)
	if o.requestTimeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, o.requestTimeout)
		defer cancel()
	}

	start := time.Now()
	data, err := o.callGenerator(reqCtx, brand.ImageRequest{
		Prompt:      prompt,
		AspectRatio: ratio,
		Count:       1,
		MimeType:    outputMimeType,
	})
	metrics.GenerationDuration.WithLabelValues(b.Category.String(), string(ratio)).Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.GenerationsTotal.WithLabelValues(b.Category.String(), kind, status).Inc()

	return data, err
}

func (o *Orchestrator) callGenerator(ctx context.Context, req brand.ImageRequest) ([]byte, error) {
	if o.gen == nil {
		return nil, errNoGenerator
	}
	data, err := o.gen.GenerateImage(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	return data, nil
}
