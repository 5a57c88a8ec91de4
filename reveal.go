package easel

import (
	"github.com/tanema/gween/ease"
)

// RevealDirection selects the axis and sign of the pre-visible offset.
type RevealDirection uint8

const (
	RevealUp    RevealDirection = iota // starts below its resting spot, slides up
	RevealLeft                         // starts left of its resting spot, slides right
	RevealRight                        // starts right of its resting spot, slides left
)

const (
	defaultRevealDistance  = 40.0
	defaultRevealDuration  = float32(0.7)
	defaultRevealThreshold = 0.15
)

// RevealConfig parameterizes a Reveal. Zero values take the defaults noted on
// each field. To observe with a threshold of exactly zero, build the
// VisibilityObserver directly instead.
type RevealConfig struct {
	Direction RevealDirection
	Delay     float32        // seconds between the latch and the start of the transition
	Distance  float64        // pre-visible offset in pixels (default 40)
	Duration  float32        // transition length in seconds (default 0.7)
	Threshold float64        // visibility fraction that triggers the reveal (default 0.15)
	Ease      ease.TweenFunc // easing function (default ease.OutCubic)
}

// Reveal transitions a node from hidden (transparent, offset along the
// configured direction) to settled (opaque, at its resting position) the
// first time it scrolls into view.
//
// The state machine is one-way: Hidden → Visible, with no reverse edge. The
// underlying visibility signal is a one-shot latch, so a revealed node never
// animates back. The configured delay defers the start of the transition,
// not the detection of visibility.
type Reveal struct {
	node     *Node
	observer *VisibilityObserver
	cfg      RevealConfig
	baseX    float64
	baseY    float64
	move     *TweenGroup
	fade     *TweenGroup
	started  bool
	settled  bool
}

// NewReveal wraps node in a reveal transition and registers it with the page.
// The node's current position is taken as its resting spot; the initial
// offset and zero alpha are applied immediately. A nil page degrades the
// underlying observer to always-visible, so the reveal plays as soon as it is
// driven (the caller owns Update in that case).
func NewReveal(page *Page, node *Node, cfg RevealConfig) *Reveal {
	if cfg.Distance <= 0 {
		cfg.Distance = defaultRevealDistance
	}
	if cfg.Duration <= 0 {
		cfg.Duration = defaultRevealDuration
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = defaultRevealThreshold
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.OutCubic
	}

	r := &Reveal{
		node:  node,
		cfg:   cfg,
		baseX: node.X,
		baseY: node.Y,
	}

	// Initial presentation: fully transparent, offset along the direction axis.
	node.Alpha = 0
	switch cfg.Direction {
	case RevealLeft:
		node.X = r.baseX - cfg.Distance
	case RevealRight:
		node.X = r.baseX + cfg.Distance
	default:
		node.Y = r.baseY + cfg.Distance
	}
	node.MarkDirty()

	r.observer = NewVisibilityObserver(page, cfg.Threshold)
	r.observer.Attach(node)

	if page != nil {
		page.addReveal(r)
	}
	return r
}

// Update advances the reveal by dt seconds. Registered reveals are driven by
// Page.Update; standalone reveals (nil page) are driven by the caller.
func (r *Reveal) Update(dt float32) {
	if r.settled {
		return
	}
	if r.node.IsDisposed() {
		r.observer.Disconnect()
		r.settled = true
		return
	}

	if !r.started {
		if !r.observer.Visible() {
			return
		}
		r.started = true
		r.move = TweenPosition(r.node, r.baseX, r.baseY, r.cfg.Duration, r.cfg.Ease)
		r.move.SetDelay(r.cfg.Delay)
		r.fade = TweenAlpha(r.node, 1, r.cfg.Duration, r.cfg.Ease)
		r.fade.SetDelay(r.cfg.Delay)
	}

	r.move.Update(dt)
	r.fade.Update(dt)
	if r.move.Done && r.fade.Done {
		r.settled = true
	}
}

// Settled reports whether the reveal has reached its terminal state.
func (r *Reveal) Settled() bool {
	return r.settled
}

// Started reports whether the transition has been triggered by the latch.
func (r *Reveal) Started() bool {
	return r.started
}

// Node returns the wrapped node.
func (r *Reveal) Node() *Node {
	return r.node
}

// Observer returns the underlying visibility observer.
func (r *Reveal) Observer() *VisibilityObserver {
	return r.observer
}

// Cancel releases the observer subscription and detaches the reveal from
// further updates, leaving the node in its current presentation state.
func (r *Reveal) Cancel() {
	r.observer.Disconnect()
	r.settled = true
}

// --- Page-side registry ---

// addReveal registers a reveal to be driven by Page.Update.
func (p *Page) addReveal(r *Reveal) {
	p.reveals = append(p.reveals, r)
}

// updateReveals advances all registered reveals and prunes settled ones.
func (p *Page) updateReveals(dt float32) {
	kept := p.reveals[:0]
	for _, r := range p.reveals {
		r.Update(dt)
		if !r.settled {
			kept = append(kept, r)
		}
	}
	// Nil out the tail so pruned reveals are collectable.
	for i := len(kept); i < len(p.reveals); i++ {
		p.reveals[i] = nil
	}
	p.reveals = kept
}
