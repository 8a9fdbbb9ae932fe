package navigation

import "time"

const (
	// ViewDashboard is the landing location every trail starts from.
	ViewDashboard = "dashboard"
	// ViewMasters is the master-data section; it needs a sub-section to be recorded.
	ViewMasters = "masters"

	// DefaultMasterSection is the master-data category shown before any is picked.
	DefaultMasterSection = "materials"
)

const (
	// MaxEntries bounds the trail after every push.
	MaxEntries = 10
	// HealThreshold is the length above which SelfHeal trims back to MaxEntries.
	HealThreshold = 20
	// ResetThreshold is the length above which breadcrumbs offer a reset.
	ResetThreshold = 8
)

// Entry is one visited location in the trail.
type Entry struct {
	View       string `json:"view" yaml:"view"`
	SubSection string `json:"sub_section,omitempty" yaml:"sub_section,omitempty"`
	Label      string `json:"label" yaml:"label"`
}

// Key identifies a location; Label is not part of it.
type Key struct {
	View       string
	SubSection string
}

// Key returns the identity of the entry.
func (e Entry) Key() Key {
	return Key{View: e.View, SubSection: e.SubSection}
}

// Same reports whether both entries point at the same location.
func (e Entry) Same(other Entry) bool {
	return e.Key() == other.Key()
}

// Breadcrumb is an entry as presented to breadcrumb renderers.
type Breadcrumb struct {
	Entry
	Index     int  `json:"index"`
	Clickable bool `json:"clickable"`
}

// Trail is the persisted navigation state of one client session.
type Trail struct {
	TenantID      string    `json:"tenant_id"`
	SessionID     string    `json:"session_id"`
	Entries       []Entry   `json:"entries"`
	CurrentView   string    `json:"current_view"`
	MasterSection string    `json:"master_section"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TrailView is the read model returned by every Service call.
type TrailView struct {
	SessionID     string       `json:"session_id"`
	Entries       []Entry      `json:"entries"`
	Breadcrumbs   []Breadcrumb `json:"breadcrumbs"`
	CurrentView   string       `json:"current_view"`
	MasterSection string       `json:"master_section"`
	CanGoBack     bool         `json:"can_go_back"`
	ShowReset     bool         `json:"show_reset"`
	Changed       bool         `json:"changed"`
}
