package easel

// VisibilityObserver reports, once, when a node first scrolls into view.
//
// The observer is a one-shot latch: the first intersection check where the
// visible fraction of the node's box meets the threshold sets Visible to true
// permanently and releases the page subscription. No further checks are
// performed for that observer, and the signal never reverts.
//
// An observer created with a nil page has no intersection capability and
// latches true synchronously at Attach (fail open — an element that cannot be
// observed is treated as always visible rather than permanently hidden).
type VisibilityObserver struct {
	page      *Page
	threshold float64
	target    *Node
	visible   bool
	active    bool

	// OnVisible, if set, fires exactly once, immediately after the latch.
	// The subscription is already released when it runs.
	OnVisible func()
}

// NewVisibilityObserver creates an observer with the given visibility
// threshold: the fraction of the target's box area that must be inside the
// page's visible bounds, in [0, 1]. Values outside the range are clamped.
// The observer is idle until Attach binds a target node.
func NewVisibilityObserver(page *Page, threshold float64) *VisibilityObserver {
	return &VisibilityObserver{page: page, threshold: clamp01(threshold)}
}

// Visible returns the latched visibility signal.
func (o *VisibilityObserver) Visible() bool {
	return o.visible
}

// Threshold returns the current visibility threshold.
func (o *VisibilityObserver) Threshold() float64 {
	return o.threshold
}

// Target returns the observed node, or nil while idle.
func (o *VisibilityObserver) Target() *Node {
	return o.target
}

// Active reports whether a page subscription is currently held. The
// subscription exists only while a target is attached and the signal has not
// latched; it is released the instant Visible becomes true.
func (o *VisibilityObserver) Active() bool {
	return o.active
}

// Attach binds the observer to a node and subscribes to intersection checks.
// Attaching nil keeps the observer idle. Re-attaching a different node tears
// down the previous subscription and starts a fresh one. If the signal has
// already latched, Attach only updates the target reference — the latch never
// resets and no new subscription is created.
func (o *VisibilityObserver) Attach(n *Node) {
	if n == nil {
		return
	}
	if o.visible {
		o.target = n
		return
	}

	o.release()
	o.target = n

	if o.page == nil {
		// No intersection capability: fail open.
		o.latch()
		return
	}
	o.page.subscribe(o)
	o.active = true
}

// SetThreshold changes the visibility threshold. On an unlatched, attached
// observer this tears down the current subscription and creates a fresh one;
// a latched signal is left untouched. A disposed target stays released —
// teardown is final.
func (o *VisibilityObserver) SetThreshold(t float64) {
	o.threshold = clamp01(t)
	if o.visible || o.target == nil || o.target.IsDisposed() || o.page == nil {
		return
	}
	o.release()
	o.page.subscribe(o)
	o.active = true
}

// Disconnect releases any active subscription and clears the target. Safe to
// call on every exit path, including after the latch or repeated calls.
func (o *VisibilityObserver) Disconnect() {
	o.release()
	o.target = nil
}

// latch sets the one-way visibility signal, releasing the subscription first
// so the handle is gone before OnVisible observes the new state.
func (o *VisibilityObserver) latch() {
	o.release()
	o.visible = true
	if o.OnVisible != nil {
		o.OnVisible()
	}
}

// release drops the page subscription if one is held.
func (o *VisibilityObserver) release() {
	if !o.active {
		return
	}
	o.page.unsubscribe(o)
	o.active = false
}

// check runs one intersection test against the given visible bounds and
// latches when the threshold is met. Returns true when the observer latched.
// World transforms must be current when this runs.
func (o *VisibilityObserver) check(bounds Rect) bool {
	frac, intersects := visibleFraction(o.target, bounds)
	if !intersects {
		return false
	}
	// A zero threshold still requires actual intersection, tested above.
	if frac < o.threshold {
		return false
	}
	o.latch()
	return true
}

// visibleFraction returns the fraction of the node's world-space box inside
// bounds, and whether the two overlap at all. Nodes with a degenerate box
// never intersect, and zero-area edge contact does not count as overlap.
func visibleFraction(n *Node, bounds Rect) (float64, bool) {
	w, h := n.Size()
	if w <= 0 || h <= 0 {
		return 0, false
	}
	aabb := worldAABB(n.worldTransform, w, h)
	area := aabb.Area()
	if area <= 0 {
		return 0, false
	}
	overlap := aabb.Intersection(bounds).Area()
	if overlap <= 0 {
		return 0, false
	}
	return overlap / area, true
}

// --- Page-side subscription dispatch ---

// subscribe registers an observer for per-tick intersection checks.
func (p *Page) subscribe(o *VisibilityObserver) {
	p.observers = append(p.observers, o)
}

// unsubscribe removes an observer. Uses copy+nil to avoid retaining a
// dangling pointer in the backing array.
func (p *Page) unsubscribe(o *VisibilityObserver) {
	for i, other := range p.observers {
		if other == o {
			copy(p.observers[i:], p.observers[i+1:])
			p.observers[len(p.observers)-1] = nil
			p.observers = p.observers[:len(p.observers)-1]
			return
		}
	}
}

// dispatchVisibility runs one intersection check for every subscribed
// observer. Observers whose target was disposed are released here — disposal
// of the owning node is a teardown path and must drop the subscription even
// if the signal never latched.
func (p *Page) dispatchVisibility() {
	if len(p.observers) == 0 {
		return
	}
	bounds := p.viewport.VisibleBounds()

	// Latching mutates p.observers; iterate over a reused snapshot.
	p.obsScratch = append(p.obsScratch[:0], p.observers...)
	for _, o := range p.obsScratch {
		if !o.active {
			continue
		}
		if o.target == nil || o.target.IsDisposed() {
			o.release()
			continue
		}
		o.check(bounds)
	}
}
