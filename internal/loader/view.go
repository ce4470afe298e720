package loader

import "fmt"

// Surfaces toggles the per-stage presentation panels.
type Surfaces interface {
	// DeactivateAll clears the active flag from every panel.
	DeactivateAll()
	// Activate flags the panel with the given id. It reports false when no
	// such panel exists, in which case nothing changes.
	Activate(id string) bool
}

// Text receives label updates.
type Text interface {
	SetText(text string)
}

// Meter receives the displayed percent.
type Meter interface {
	SetPercent(percent int)
}

// Hider hides the loading surface once the sequence completes.
type Hider interface {
	Hide()
}

// View bundles the targets a Sequencer writes to. A nil field is a missing
// element and its updates are skipped.
type View struct {
	Surfaces Surfaces
	Label    Text
	Percent  Meter
	Screen   Hider
}

// FormatPercent renders a percent the way the counter displays it.
func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// Panels is a single-selection set of stage surfaces: at most one id is
// active at any time.
type Panels struct {
	ids      map[string]struct{}
	order    []string
	active   string
	onChange func(active string)
}

// NewPanels returns a panel set holding the given ids.
func NewPanels(ids ...string) *Panels {
	p := &Panels{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if _, ok := p.ids[id]; ok {
			continue
		}
		p.ids[id] = struct{}{}
		p.order = append(p.order, id)
	}
	return p
}

// PanelsFor builds a panel set from a stage list.
func PanelsFor(stages []Stage) *Panels {
	ids := make([]string, len(stages))
	for i, st := range stages {
		ids[i] = st.ID
	}
	return NewPanels(ids...)
}

// OnChange registers fn to be called with the active id ("" when none)
// whenever the selection changes.
func (p *Panels) OnChange(fn func(active string)) {
	p.onChange = fn
}

func (p *Panels) DeactivateAll() {
	if p.active == "" {
		return
	}
	p.active = ""
	p.notify()
}

func (p *Panels) Activate(id string) bool {
	if _, ok := p.ids[id]; !ok {
		return false
	}
	if p.active == id {
		return true
	}
	p.active = id
	p.notify()
	return true
}

// Active returns the active id, or "" when no panel is active.
func (p *Panels) Active() string {
	return p.active
}

// IDs returns the panel ids in registration order.
func (p *Panels) IDs() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

func (p *Panels) notify() {
	if p.onChange != nil {
		p.onChange(p.active)
	}
}
