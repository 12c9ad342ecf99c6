// Package generator sequences one ad generation: optional image synthesis,
// then copy synthesis, then the durable commit into history. It drives the
// simulated progress overlay and holds the single-flight guarantee.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/gemini"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/history"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/progress"
)

type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// DefaultDisplayDelay is how long the Succeeded state (and the full bar)
// stays visible before the orchestrator returns to Idle.
const DefaultDisplayDelay = 1500 * time.Millisecond

// ContentSynthesizer produces the ad copy. Implemented by *gemini.Client;
// stubbed in tests.
type ContentSynthesizer interface {
	GenerateAdContent(ctx context.Context, productImage string, brand ads.BrandProfile, style, userPrompt string) (ads.AdContent, error)
}

// ImageSynthesizer produces a product image from a text prompt.
type ImageSynthesizer interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Request is one generation trigger. ProductImage is a data URI; at least
// one of ProductImage and Prompt must be set.
type Request struct {
	ProductImage string           `json:"product_image"`
	Prompt       string           `json:"prompt"`
	Style        string           `json:"style"`
	Brand        ads.BrandProfile `json:"brand"`
}

type Orchestrator struct {
	content      ContentSynthesizer
	images       ImageSynthesizer
	log          *history.Log
	sim          *progress.Simulator
	displayDelay time.Duration

	mu    sync.Mutex
	state State
}

// New wires an orchestrator. content and images may be nil when no API key
// is configured; Generate then fails with KindConfig before any call.
func New(content ContentSynthesizer, images ImageSynthesizer, log *history.Log, sim *progress.Simulator) *Orchestrator {
	return &Orchestrator{
		content:      content,
		images:       images,
		log:          log,
		sim:          sim,
		displayDelay: DefaultDisplayDelay,
		state:        StateIdle,
	}
}

// SetDisplayDelay shortens the post-success linger. Used by tests.
func (o *Orchestrator) SetDisplayDelay(d time.Duration) {
	o.displayDelay = d
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Progress returns the current simulated progress snapshot.
func (o *Orchestrator) Progress() progress.Snapshot {
	return o.sim.Snapshot()
}

// Generate runs one full generation. On success the result is already
// committed to history when this returns.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (ads.AdContent, error) {
	if req.ProductImage == "" && strings.TrimSpace(req.Prompt) == "" {
		return ads.AdContent{}, &Error{
			Kind: KindValidation,
			Err:  errors.New("a product image or a prompt is required"),
		}
	}

	if !o.tryAcquire() {
		return ads.AdContent{}, &Error{
			Kind: KindBusy,
			Err:  errors.New("a generation is already in progress"),
		}
	}

	if o.content == nil {
		o.setState(StateIdle)
		return ads.AdContent{}, &Error{Kind: KindConfig, Err: gemini.ErrMissingAPIKey}
	}

	requestID := uuid.New().String()
	slog.Info("generation started", "request_id", requestID, "style", req.Style, "has_image", req.ProductImage != "")

	o.sim.Start()

	result, effectiveImage, err := o.run(ctx, req)
	if err != nil {
		o.sim.Stop()
		kind := classify(err)
		if kind == KindContract {
			slog.Error("remote service violated its response contract", "request_id", requestID, "error", err)
		} else {
			slog.Warn("generation failed", "request_id", requestID, "kind", kind, "error", err)
		}
		o.setState(StateFailed)
		o.setState(StateIdle)
		return ads.AdContent{}, &Error{Kind: kind, Err: err}
	}

	o.sim.Complete()

	item := ads.HistoryItem{
		ID:           ulid.Make().String(),
		CreatedAtMs:  time.Now().UnixMilli(),
		ProductImage: effectiveImage,
		CompanyName:  req.Brand.Name,
		Content:      result,
	}
	if err := o.log.Append(ctx, item); err != nil {
		// The result is still good for the operator; losing the history row
		// is logged, not surfaced.
		slog.Error("failed to append generation to history", "request_id", requestID, "error", err)
	}

	o.setState(StateSucceeded)
	time.AfterFunc(o.displayDelay, o.settleIdle)

	slog.Info("generation succeeded", "request_id", requestID, "history_id", item.ID, "hashtags", len(result.Hashtags))
	return result, nil
}

// run performs the remote calls: image synthesis when no product image was
// supplied, then copy synthesis with the effective image.
func (o *Orchestrator) run(ctx context.Context, req Request) (ads.AdContent, string, error) {
	effectiveImage := req.ProductImage

	if effectiveImage == "" {
		generated, err := o.images.GenerateImage(ctx, req.Prompt)
		if err != nil {
			return ads.AdContent{}, "", err
		}
		effectiveImage = generated
	}

	content, err := o.content.GenerateAdContent(ctx, effectiveImage, req.Brand, req.Style, req.Prompt)
	if err != nil {
		return ads.AdContent{}, "", err
	}

	return content, effectiveImage, nil
}

func (o *Orchestrator) tryAcquire() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateIdle {
		return false
	}
	o.state = StateRunning
	return true
}

func (o *Orchestrator) setState(state State) {
	o.mu.Lock()
	o.state = state
	o.mu.Unlock()
}

// settleIdle ends the post-success display window unless another state
// change got there first.
func (o *Orchestrator) settleIdle() {
	o.mu.Lock()
	if o.state == StateSucceeded {
		o.state = StateIdle
	}
	o.mu.Unlock()
}
