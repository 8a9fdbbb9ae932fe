package navigation

import "sync"

// ViewSink receives view switches produced by navigation.
type ViewSink interface {
	SetCurrentView(view string)
	SetMasterSection(section string)
}

// ViewState is the default sink: the current view and master-data section.
type ViewState struct {
	CurrentView   string
	MasterSection string
}

// NewViewState returns the state the dashboard opens with.
func NewViewState() *ViewState {
	return &ViewState{CurrentView: ViewDashboard, MasterSection: DefaultMasterSection}
}

func (s *ViewState) SetCurrentView(view string) { s.CurrentView = view }

func (s *ViewState) SetMasterSection(section string) { s.MasterSection = section }

// Controller owns one navigation trail. All methods are safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	policy  Policy
	sink    ViewSink
	history []Entry
}

// NewController creates a trail holding only the landing entry.
func NewController(sink ViewSink) *Controller {
	return NewControllerWithPolicy(DefaultPolicy(), sink)
}

// NewControllerWithPolicy is NewController with a custom label policy.
func NewControllerWithPolicy(policy Policy, sink ViewSink) *Controller {
	return &Controller{
		policy:  policy,
		sink:    sink,
		history: []Entry{policy.Landing()},
	}
}

// Restore rebuilds a controller from stored entries. The entries are healed and
// clamped to MaxEntries; an empty trail starts over at the landing entry.
func Restore(entries []Entry, sink ViewSink) *Controller {
	c := NewController(sink)
	healed := lastN(SelfHeal(entries), MaxEntries)
	if len(healed) > 0 {
		c.history = healed
	}
	return c
}

// Push records a main-section navigation and reports whether the trail changed.
// The sink is updated even when the location is not recorded.
func (c *Controller) Push(view, subSection string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.switchTo(view, subSection)

	rule := c.policy.Resolve(view, subSection)
	if !rule.Recordable {
		return false
	}
	entry := Entry{View: view, SubSection: subSection, Label: rule.Label}
	if c.current().Same(entry) {
		return false
	}

	next := append(c.history, entry)
	if len(next) > MaxEntries {
		next = lastN(next, MaxEntries)
	}
	c.commit(next)
	return true
}

// GoBack drops the current entry. It is a no-op on a single-entry trail.
func (c *Controller) GoBack() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.history) <= 1 {
		return false
	}
	c.commit(c.history[:len(c.history)-1])
	prev := c.current()
	c.switchTo(prev.View, prev.SubSection)
	return true
}

// JumpToBreadcrumb rewinds the trail to the first entry matching target. A target
// that was never visited replaces the whole trail.
func (c *Controller) JumpToBreadcrumb(target Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if target.Label == "" {
		target.Label = c.policy.Resolve(target.View, target.SubSection).Label
	}

	idx := -1
	for i, entry := range c.history {
		if entry.Same(target) {
			idx = i
			break
		}
	}
	if idx >= 0 {
		c.commit(c.history[:idx+1])
	} else {
		c.commit([]Entry{target})
	}
	c.switchTo(target.View, target.SubSection)
}

// Reset returns to the landing entry.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	landing := c.policy.Landing()
	c.commit([]Entry{landing})
	c.switchTo(landing.View, landing.SubSection)
}

// Entries returns a copy of the trail, oldest first.
func (c *Controller) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.history))
	copy(out, c.history)
	return out
}

// Current returns the active entry.
func (c *Controller) Current() Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current()
}

// Len returns the trail length.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history)
}

// CanGoBack reports whether GoBack would change the trail.
func (c *Controller) CanGoBack() bool {
	return c.Len() > 1
}

// ShowReset reports whether the breadcrumb bar should offer a reset.
func (c *Controller) ShowReset() bool {
	return c.Len() > ResetThreshold
}

// Breadcrumbs renders the trail; only the last entry is not clickable.
func (c *Controller) Breadcrumbs() []Breadcrumb {
	entries := c.Entries()
	crumbs := make([]Breadcrumb, len(entries))
	for i, entry := range entries {
		crumbs[i] = Breadcrumb{
			Entry:     entry,
			Index:     i,
			Clickable: i < len(entries)-1,
		}
	}
	return crumbs
}

func (c *Controller) current() Entry {
	return c.history[len(c.history)-1]
}

// commit stores a healed copy of next as the trail.
func (c *Controller) commit(next []Entry) {
	healed := SelfHeal(next)
	if len(healed) == 0 {
		healed = []Entry{c.policy.Landing()}
	}
	c.history = healed
}

func (c *Controller) switchTo(view, subSection string) {
	if c.sink == nil {
		return
	}
	c.sink.SetCurrentView(view)
	if subSection != "" {
		c.sink.SetMasterSection(subSection)
	}
}
