package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// Rows whose resolved category contains one of these are app configuration,
// never menu items.
var configCategoryKeywords = []string{"setting", "config", "system", "ตั้งค่า"}

// Spicy markers. "Spicy" is matched case-sensitively on purpose — sheet
// authors write it as a label, not free text.
var spicyMarkers = []string{"Spicy", "พริก", "ต้มยำ", "เผ็ด"}

// accumulator is the fold state for one pipeline run. It never survives the
// run: Finalize converts it once into an immutable MenuData.
type accumulator struct {
	order  []string
	items  map[string]*MenuItem
	config AppConfig
}

func newAccumulator() *accumulator {
	return &accumulator{items: make(map[string]*MenuItem)}
}

// Fold classifies one resolved row and merges it into the running state.
// Classification is mutually exclusive: a configuration row never creates an
// item, an item row never touches config. Rows with no resolvable name are
// dropped silently — best-effort degradation over hard failure.
func (a *accumulator) Fold(rec Record) {
	if isConfigRow(rec) {
		a.applyConfig(rec)
		return
	}

	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return
	}

	item, ok := a.items[name]
	if !ok {
		item = a.createItem(name, rec)
		a.items[name] = item
		a.order = append(a.order, name)
	}
	// A repeated name only contributes options; the first row's price,
	// description, and image stand.
	mergeOptions(item, rec)
}

// Finalize flattens the accumulator into the output snapshot, items in
// first-seen order. Items is non-nil even when empty so the JSON encoding
// is always an array.
func (a *accumulator) Finalize() MenuData {
	items := make([]MenuItem, 0, len(a.order))
	for _, name := range a.order {
		items = append(items, *a.items[name])
	}
	return MenuData{Items: items, Config: a.config}
}

func (a *accumulator) createItem(name string, rec Record) *MenuItem {
	item := &MenuItem{
		ID:          fmt.Sprintf("item-%d", len(a.items)),
		Category:    strings.TrimSpace(rec.Category),
		Name:        name,
		Price:       coerceNumber(rec.Price),
		Description: strings.TrimSpace(rec.Description),
		IsSpicy:     looksSpicy(name, rec.Description),
	}
	if img := strings.TrimSpace(rec.Image); img != "" {
		item.Image = NormalizeImageURL(img)
	} else {
		item.Image = placeholderImageURL(name)
	}
	return item
}

// applyConfig sub-classifies a configuration row by its name. Later rows
// overwrite earlier ones for the same key — last write wins across sheets.
// A row with a blank value cell is a no-op: it never clears an earlier
// value, so only rows that actually carry a value participate in the
// last-write-wins order.
func (a *accumulator) applyConfig(rec Record) {
	name := strings.ToLower(rec.Name)
	switch {
	case strings.Contains(name, "logo"):
		if v := strings.TrimSpace(rec.Image); v != "" {
			a.config.LogoURL = NormalizeImageURL(v)
		}
	case strings.Contains(name, "qr"), strings.Contains(name, "payment"):
		if v := strings.TrimSpace(rec.Image); v != "" {
			a.config.QRCodeURL = NormalizeImageURL(v)
		}
	case strings.Contains(name, "line"):
		// Authors paste the LINE id wherever is handy, so search the
		// image field first, then fall back through the value-bearing
		// columns.
		v := firstNonEmpty(rec.Image, rec.Price, rec.Description, rec.OptionChoices, rec.OptionGroup)
		if v != "" {
			a.config.LineOAID = stripLineDeepLink(v)
		}
	}
}

// mergeOptions applies the two supported option encodings in order.
// Row-based (group + choice + optional modifier) wins when present; the
// comma-separated fallback carries no per-choice pricing.
func mergeOptions(item *MenuItem, rec Record) {
	group := strings.TrimSpace(rec.OptionGroup)
	choice := strings.TrimSpace(rec.OptionChoice)
	if group != "" && choice != "" {
		addChoice(item, group, choice, coerceNumber(rec.OptionModifier))
		return
	}

	header := strings.TrimSpace(rec.OptionHeader)
	list := strings.TrimSpace(rec.OptionChoices)
	if header == "" || list == "" {
		return
	}
	for _, tok := range strings.Split(list, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			addChoice(item, header, tok, 0)
		}
	}
}

// addChoice find-or-creates the named group and appends the choice unless one
// of that exact name is already present. Re-adding is idempotent; existing
// choices are never overwritten, so options only accumulate.
func addChoice(item *MenuItem, groupName, choiceName string, modifier float64) {
	var grp *MenuOption
	for i := range item.Options {
		if item.Options[i].Name == groupName {
			grp = &item.Options[i]
			break
		}
	}
	if grp == nil {
		item.Options = append(item.Options, MenuOption{Name: groupName})
		grp = &item.Options[len(item.Options)-1]
	}

	for _, c := range grp.Choices {
		if c.Name == choiceName {
			return
		}
	}
	grp.Choices = append(grp.Choices, MenuChoice{Name: choiceName, PriceModifier: modifier})
}

func isConfigRow(rec Record) bool {
	category := strings.ToLower(rec.Category)
	for _, kw := range configCategoryKeywords {
		if strings.Contains(category, kw) {
			return true
		}
	}
	return false
}

func looksSpicy(name, description string) bool {
	for _, marker := range spicyMarkers {
		if strings.Contains(name, marker) || strings.Contains(description, marker) {
			return true
		}
	}
	return false
}

// stripLineDeepLink reduces a pasted LINE deep link to its trailing path
// segment: everything after the final "/" up to the first "?". A bare id
// passes through untouched.
func stripLineDeepLink(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.LastIndex(v, "/"); i >= 0 {
		v = v[i+1:]
	}
	if q := strings.Index(v, "?"); q >= 0 {
		v = v[:q]
	}
	return v
}

// coerceNumber parses a price-ish cell, tolerating thousands separators and
// a baht sign. Anything uncoercible is 0 — a sheet typo must not break the
// storefront.
func coerceNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "฿")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
