package batch

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/engr-razib/BrandingAssetGenerator/internal/brand"
)

const (
	sizeA = "Leaderboard | 728 × 90 px"
	sizeB = "Square | 250 × 250 px"
	sizeC = "Half Page | 300 × 600 px"
)

type stubGenerator struct {
	mu    sync.Mutex
	calls []brand.ImageRequest
	fn    func(ctx context.Context, req brand.ImageRequest) ([]byte, error)
}

func (s *stubGenerator) GenerateImage(ctx context.Context, req brand.ImageRequest) ([]byte, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	return s.fn(ctx, req)
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubGenerator) lastCall() brand.ImageRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

func targets(req brand.ImageRequest, sizeLabel string) bool {
	return strings.Contains(req.Prompt, "approximately "+sizeLabel+".")
}

func sequentialIDs() func() string {
	var n int64
	return func() string {
		return "id-" + strconv.FormatInt(atomic.AddInt64(&n, 1), 10)
	}
}

func newTestOrchestrator(gen Generator) *Orchestrator {
	return New(Options{Generator: gen, NewID: sequentialIDs()})
}

var bannerForm = brand.FormData{
	CopyTitle:   "Sustainable Style, Delivered.",
	Description: "An e-commerce clothing brand focused on sustainability.",
}

func TestSubmitBatchDropsFailedItemsInOrder(t *testing.T) {
	gen := &stubGenerator{fn: func(_ context.Context, req brand.ImageRequest) ([]byte, error) {
		if targets(req, sizeB) {
			return nil, errors.New("quota exceeded")
		}
		return []byte("png:" + req.Prompt[len(req.Prompt)-8:]), nil
	}}
	o := newTestOrchestrator(gen)

	b, res := o.SubmitBatch(context.Background(), bannerForm, brand.Banner, []string{sizeA, sizeB, sizeC})

	if res.Total != 3 || res.Failed != 1 || len(res.Items) != 2 {
		t.Fatalf("unexpected result: total=%d failed=%d items=%d", res.Total, res.Failed, len(res.Items))
	}
	if res.Items[0].SizeLabel != sizeA || res.Items[1].SizeLabel != sizeC {
		t.Fatalf("unexpected order: %s, %s", res.Items[0].SizeLabel, res.Items[1].SizeLabel)
	}
	if len(res.Items)+res.Failed != res.Total {
		t.Fatalf("result invariant broken")
	}
	for _, v := range res.Items {
		if v.State != StateReady || v.InFlight || len(v.Payload) == 0 {
			t.Fatalf("item not ready: %+v", v)
		}
	}

	var partial *PartialFailure
	if err := res.Err(); !errors.As(err, &partial) || partial.Failed != 1 || partial.Total != 3 {
		t.Fatalf("expected partial failure, got %v", err)
	}

	visible := b.Items()
	if len(visible) != 2 || visible[0].ID != res.Items[0].ID || visible[1].ID != res.Items[1].ID {
		t.Fatalf("visible set not reconciled: %+v", visible)
	}
	if gen.callCount() != 3 {
		t.Fatalf("expected 3 generator calls, got %d", gen.callCount())
	}
}

func TestSubmitBatchEmptyDoesNotCallGenerator(t *testing.T) {
	gen := &stubGenerator{fn: func(context.Context, brand.ImageRequest) ([]byte, error) {
		t.Fatalf("generator must not be called")
		return nil, nil
	}}
	o := newTestOrchestrator(gen)

	_, res := o.SubmitBatch(context.Background(), bannerForm, brand.Banner, nil)
	if len(res.Items) != 0 || res.Failed != 0 || res.Total != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if err := res.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitBatchAllFailed(t *testing.T) {
	gen := &stubGenerator{fn: func(context.Context, brand.ImageRequest) ([]byte, error) {
		return nil, errors.New("upstream down")
	}}
	o := newTestOrchestrator(gen)

	b, res := o.SubmitBatch(context.Background(), bannerForm, brand.Banner, []string{sizeA, sizeB})
	if !errors.Is(res.Err(), ErrAllFailed) {
		t.Fatalf("expected ErrAllFailed, got %v", res.Err())
	}
	if res.Failed != 2 || len(b.Items()) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSubmitBatchTreatsEmptyImageAsFailure(t *testing.T) {
	gen := &stubGenerator{fn: func(_ context.Context, req brand.ImageRequest) ([]byte, error) {
		if targets(req, sizeA) {
			return nil, nil
		}
		return []byte("ok"), nil
	}}
	o := newTestOrchestrator(gen)

	_, res := o.SubmitBatch(context.Background(), bannerForm, brand.Banner, []string{sizeA, sizeC})
	if res.Failed != 1 || len(res.Items) != 1 || res.Items[0].SizeLabel != sizeC {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSubmitBatchDispatchesConcurrently(t *testing.T) {
	sizes := []string{
		sizeA,
		sizeB,
		sizeC,
		"Medium Rectangle | 300 × 250 px",
		"Wide Skyscraper | 160 × 600 px",
		"Billboard | 970 × 250 px",
	}
	var started int32
	release := make(chan struct{})

	gen := &stubGenerator{fn: func(context.Context, brand.ImageRequest) ([]byte, error) {
		if atomic.AddInt32(&started, 1) == int32(len(sizes)) {
			close(release)
		}
		select {
		case <-release:
			return []byte("ok"), nil
		case <-time.After(2 * time.Second):
			return nil, errors.New("requests were not dispatched concurrently")
		}
	}}
	o := New(Options{Generator: gen, NewID: sequentialIDs(), RequestTimeout: 5 * time.Second})

	_, res := o.SubmitBatch(context.Background(), bannerForm, brand.Banner, sizes)
	if res.Failed != 0 || res.Total != len(sizes) {
		t.Fatalf("expected all %d items ready, got %+v", len(sizes), res)
	}
}

func TestSubmitBatchIgnoresCallerCancellation(t *testing.T) {
	gen := &stubGenerator{fn: func(ctx context.Context, _ brand.ImageRequest) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []byte("ok"), nil
	}}
	o := newTestOrchestrator(gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, res := o.SubmitBatch(ctx, bannerForm, brand.Banner, []string{sizeA})
	if res.Failed != 0 {
		t.Fatalf("dispatched request must not observe caller cancellation")
	}
}

func TestSubmitBatchPassesAspectRatioAndFormat(t *testing.T) {
	gen := &stubGenerator{fn: func(context.Context, brand.ImageRequest) ([]byte, error) {
		return []byte("ok"), nil
	}}
	o := newTestOrchestrator(gen)

	o.SubmitBatch(context.Background(), bannerForm, brand.Banner, []string{sizeA})
	req := gen.lastCall()
	if req.AspectRatio != brand.AspectWidescreen || req.Count != 1 || req.MimeType != "image/png" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestRunTwiceReturnsFirstResult(t *testing.T) {
	gen := &stubGenerator{fn: func(context.Context, brand.ImageRequest) ([]byte, error) {
		return []byte("ok"), nil
	}}
	o := newTestOrchestrator(gen)

	b := o.NewBatch(bannerForm, brand.Banner, []string{sizeA, sizeB})
	first := o.Run(context.Background(), b)
	second := o.Run(context.Background(), b)
	if gen.callCount() != 2 || first.Total != second.Total || len(second.Items) != 2 {
		t.Fatalf("batch was dispatched twice: calls=%d", gen.callCount())
	}
}

func TestRegenerateItemLeavesSiblingsUntouched(t *testing.T) {
	var round int32
	gen := &stubGenerator{fn: func(_ context.Context, req brand.ImageRequest) ([]byte, error) {
		r := atomic.LoadInt32(&round)
		return []byte("round-" + strconv.Itoa(int(r)) + ":" + req.Prompt[len(req.Prompt)-4:]), nil
	}}
	o := newTestOrchestrator(gen)

	b, res := o.SubmitBatch(context.Background(), bannerForm, brand.Banner, []string{sizeA, sizeB, sizeC})
	before := b.Items()

	atomic.StoreInt32(&round, 1)
	target := res.Items[1]
	view, err := o.RegenerateItem(context.Background(), b, target.ID)
	if err != nil {
		t.Fatalf("RegenerateItem error: %v", err)
	}
	if view.ID != target.ID || view.State != StateReady || view.InFlight {
		t.Fatalf("unexpected regenerated view: %+v", view)
	}
	if bytes.Equal(view.Payload, target.Payload) {
		t.Fatalf("payload was not replaced")
	}

	after := b.Items()
	if len(after) != len(before) {
		t.Fatalf("visible set changed size: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if i == 1 {
			continue
		}
		if after[i].ID != before[i].ID || after[i].InFlight != before[i].InFlight || !bytes.Equal(after[i].Payload, before[i].Payload) {
			t.Fatalf("sibling %d mutated: %+v -> %+v", i, before[i], after[i])
		}
	}
	if gen.lastCall().AspectRatio != brand.AspectSquare {
		t.Fatalf("regeneration used wrong aspect ratio: %s", gen.lastCall().AspectRatio)
	}
}

func TestRegenerateItemFailureDiscardsPayload(t *testing.T) {
	fail := int32(0)
	gen := &stubGenerator{fn: func(context.Context, brand.ImageRequest) ([]byte, error) {
		if atomic.LoadInt32(&fail) == 1 {
			return nil, errors.New("malformed prompt")
		}
		return []byte("ok"), nil
	}}
	o := newTestOrchestrator(gen)

	b, res := o.SubmitBatch(context.Background(), bannerForm, brand.Banner, []string{sizeA, sizeB})
	atomic.StoreInt32(&fail, 1)

	view, err := o.RegenerateItem(context.Background(), b, res.Items[0].ID)
	var itemErr *ItemError
	if !errors.As(err, &itemErr) {
		t.Fatalf("expected *ItemError, got %v", err)
	}
	if itemErr.ItemID != res.Items[0].ID || itemErr.SizeLabel != sizeA {
		t.Fatalf("unexpected item error: %+v", itemErr)
	}
	if view.State != StateFailed || view.InFlight || view.Payload != nil || view.Error == "" {
		t.Fatalf("unexpected view after failure: %+v", view)
	}

	visible := b.Items()
	if len(visible) != 2 {
		t.Fatalf("regeneration must not remove items, got %d", len(visible))
	}
	if !visible[1].Ready() {
		t.Fatalf("sibling lost its payload: %+v", visible[1])
	}
	if ready := b.Ready(); len(ready) != 1 || ready[0].ID != res.Items[1].ID {
		t.Fatalf("unexpected ready set: %+v", ready)
	}
}

func TestRegenerateItemUsesFrozenForm(t *testing.T) {
	gen := &stubGenerator{fn: func(context.Context, brand.ImageRequest) ([]byte, error) {
		return []byte("ok"), nil
	}}
	o := newTestOrchestrator(gen)

	form := bannerForm
	b, res := o.SubmitBatch(context.Background(), form, brand.Banner, []string{sizeA})
	form.Description = "Something else entirely"

	if _, err := o.RegenerateItem(context.Background(), b, res.Items[0].ID); err != nil {
		t.Fatalf("RegenerateItem error: %v", err)
	}
	if !strings.Contains(gen.lastCall().Prompt, bannerForm.Description) {
		t.Fatalf("regeneration did not use the frozen form: %s", gen.lastCall().Prompt)
	}
}

func TestRegenerateItemUnknownAndInFlight(t *testing.T) {
	entered := make(chan struct{}, 1)
	unblock := make(chan struct{})
	var blocking int32

	gen := &stubGenerator{fn: func(context.Context, brand.ImageRequest) ([]byte, error) {
		if atomic.LoadInt32(&blocking) == 1 {
			entered <- struct{}{}
			<-unblock
		}
		return []byte("ok"), nil
	}}
	o := newTestOrchestrator(gen)

	b, res := o.SubmitBatch(context.Background(), bannerForm, brand.Banner, []string{sizeA, sizeB})

	if _, err := o.RegenerateItem(context.Background(), b, "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	atomic.StoreInt32(&blocking, 1)
	done := make(chan error, 1)
	go func() {
		_, err := o.RegenerateItem(context.Background(), b, res.Items[0].ID)
		done <- err
	}()
	<-entered

	if v, _ := b.Item(res.Items[0].ID); !v.InFlight || v.State != StatePending {
		t.Fatalf("item should be in flight: %+v", v)
	}
	if v, _ := b.Item(res.Items[1].ID); v.InFlight {
		t.Fatalf("sibling should not be in flight: %+v", v)
	}
	if _, err := o.RegenerateItem(context.Background(), b, res.Items[0].ID); !errors.Is(err, ErrItemInFlight) {
		t.Fatalf("expected ErrItemInFlight, got %v", err)
	}

	close(unblock)
	if err := <-done; err != nil {
		t.Fatalf("first regeneration failed: %v", err)
	}
}

func TestResultErr(t *testing.T) {
	if err := (Result{Total: 2, Items: make([]ItemView, 2)}).Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Result{Total: 2, Failed: 2}).Err(); !errors.Is(err, ErrAllFailed) {
		t.Fatalf("expected ErrAllFailed, got %v", err)
	}

	partial := Result{Total: 3, Failed: 2, Items: make([]ItemView, 1)}
	if got := partial.Message(); got != "Failed to generate 2 image(s). You can try regenerating them individually." {
		t.Fatalf("unexpected partial message %q", got)
	}
	if got := (Result{}).Message(); got != "" {
		t.Fatalf("expected no message for empty result, got %q", got)
	}
}
