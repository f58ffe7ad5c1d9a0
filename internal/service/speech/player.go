// Package speech coordinates pronunciation playback. The synthesizer
// itself is an external collaborator; this package only enforces the
// playback discipline: issuing a new utterance first cancels whatever is
// in flight, so at most one utterance is ever audible and the most recent
// request always wins. There is no queue.
package speech

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/numee-project/numee-backend/internal/config"
	"github.com/numee-project/numee-backend/internal/domain"
)

// Utterance is one playback request.
type Utterance struct {
	Text     string
	Language string
	Rate     float64
}

// Synthesizer produces audio for an utterance. Speak blocks until playback
// finishes or ctx is cancelled.
type Synthesizer interface {
	Speak(ctx context.Context, u Utterance) error
}

// Player serializes playback over a synthesizer, last writer wins.
type Player struct {
	log   *slog.Logger
	synth Synthesizer
	cfg   config.SpeechConfig

	mu     sync.Mutex
	cancel context.CancelFunc

	noticeOnce sync.Once
}

// NewPlayer creates a player. synth may be nil when playback is not
// available; Speak then returns ErrUnsupported.
func NewPlayer(logger *slog.Logger, synth Synthesizer, cfg config.SpeechConfig) *Player {
	return &Player{
		log:   logger.With("service", "speech"),
		synth: synth,
		cfg:   cfg,
	}
}

// Speak starts playback of text, cancelling any in-flight utterance first.
// It returns once playback has started; completion is not awaited.
func (p *Player) Speak(text string) error {
	if p.synth == nil {
		// Surfaced once; repeated requests stay quiet in the log.
		p.noticeOnce.Do(func() {
			p.log.Warn("speech synthesis not available")
		})
		return domain.ErrUnsupported
	}
	if text == "" {
		return domain.NewValidationError("text", "nothing to speak")
	}

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.mu.Unlock()

	u := Utterance{Text: text, Language: p.cfg.Language, Rate: p.cfg.Rate}
	go func() {
		defer cancel()
		if err := p.synth.Speak(ctx, u); err != nil && !errors.Is(err, context.Canceled) {
			p.log.Warn("playback failed", slog.String("error", err.Error()))
		}
	}()
	return nil
}

// Stop cancels any in-flight utterance. Idempotent.
func (p *Player) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()
}
