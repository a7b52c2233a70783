package plan

// packItem is one packing entry produced by a rule: a label plus whether
// it belongs to the essential ("minimalist") subset.
type packItem struct {
	label     string
	essential bool
}

func item(label string) packItem      { return packItem{label: label} }
func essential(label string) packItem { return packItem{label: label, essential: true} }

// itemList is an insertion-ordered unique collection of packing entries.
// Adding a duplicate label never reorders or duplicates it; the essential
// flag only upgrades, never downgrades.
type itemList struct {
	order []string
	flags map[string]bool
}

func newItemList() *itemList {
	return &itemList{flags: make(map[string]bool)}
}

func (l *itemList) add(it packItem) {
	if it.label == "" {
		return
	}
	if _, seen := l.flags[it.label]; !seen {
		l.order = append(l.order, it.label)
		l.flags[it.label] = it.essential
		return
	}
	if it.essential {
		l.flags[it.label] = true
	}
}

func (l *itemList) addAll(items []packItem) {
	for _, it := range items {
		l.add(it)
	}
}

// items returns all labels in first-insertion order.
func (l *itemList) items() []string {
	return append([]string(nil), l.order...)
}

// essentials returns the labels flagged essential, in insertion order.
// Always a subset (by membership) of items().
func (l *itemList) essentials() []string {
	var out []string
	for _, label := range l.order {
		if l.flags[label] {
			out = append(out, label)
		}
	}
	return out
}

// appendUnique appends items not already present, preserving first-seen
// order. The exact-string dedup rule used by every user-facing list.
func appendUnique(existing []string, items ...string) []string {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s] = true
	}
	for _, s := range items {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		existing = append(existing, s)
	}
	return existing
}
