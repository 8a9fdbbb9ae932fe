package navigation

import "strings"

// ViewRule describes how a section is labelled and whether it enters the trail.
type ViewRule struct {
	Label      string
	Recordable bool
}

// Policy maps view ids to breadcrumb labels and recording rules.
type Policy struct {
	labels map[string]string
}

// DefaultPolicy returns the sidebar's main sections.
func DefaultPolicy() Policy {
	return Policy{labels: map[string]string{
		ViewDashboard: "Dashboard",
		"projects":    "Projects",
		"rfq":         "RFQs",
		"quotes":      "Quotes",
		"po":          "Purchase Orders",
		"goods":       "Goods",
		"payments":    "Payments",
		"reports":     "Reports & Analytics",
	}}
}

// Resolve returns the label and recording rule for a location.
//
// Hyphenated ids are in-page tab switches and never enter the trail. The masters
// section is recorded only together with a sub-section, labelled "Masters - {sub}".
func (p Policy) Resolve(view, subSection string) ViewRule {
	if view == ViewMasters {
		if subSection == "" {
			return ViewRule{Label: "Masters", Recordable: false}
		}
		return ViewRule{Label: "Masters - " + subSection, Recordable: true}
	}

	label, ok := p.labels[view]
	if !ok {
		label = view
	}
	if view == "" || strings.Contains(view, "-") {
		return ViewRule{Label: label, Recordable: false}
	}
	return ViewRule{Label: label, Recordable: true}
}

// Entry builds the trail entry for a location.
func (p Policy) Entry(view, subSection string) Entry {
	return Entry{
		View:       view,
		SubSection: subSection,
		Label:      p.Resolve(view, subSection).Label,
	}
}

// Landing returns the entry every trail starts with.
func (p Policy) Landing() Entry {
	return p.Entry(ViewDashboard, "")
}
