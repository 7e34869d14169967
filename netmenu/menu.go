package netmenu

import (
	"fmt"
	"strings"
)

// groups returns the categories in fixed display order.
func (m *Menu) groups() [][]Action {
	return [][]Action{m.AccessPoints, m.VPN, m.GSM, m.Other}
}

// Actions returns every action in display order.
func (m *Menu) Actions() []Action {
	var all []Action
	for _, g := range m.groups() {
		all = append(all, g...)
	}
	return all
}

// Lines flattens the menu into the display lines handed to the picker:
// categories in fixed order, separated by one blank line, with empty
// categories (and their separator) skipped entirely.
func (m *Menu) Lines() []string {
	var lines []string
	for _, g := range m.groups() {
		if len(g) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		for _, a := range g {
			lines = append(lines, a.Label)
		}
	}
	return lines
}

// Resolve maps the picker's response back to exactly one action. An empty
// or whitespace-only response is a user cancellation. Zero matches means
// the picker returned text outside the supplied menu; more than one means
// the label-uniqueness invariant was broken upstream. Both are fatal.
func (m *Menu) Resolve(choice string) (Action, error) {
	choice = strings.TrimSuffix(choice, "\n")
	if strings.TrimSpace(choice) == "" {
		return Action{}, ErrCancelled
	}

	var found []Action
	for _, a := range m.Actions() {
		if a.Label == choice {
			found = append(found, a)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Action{}, fmt.Errorf("selection %q is not in the menu: %w", choice, ErrNotFound)
	}
	return Action{}, fmt.Errorf("selection %q matches %d actions: %w", choice, len(found), ErrAmbiguous)
}

// checkLabels enforces the label-uniqueness invariant at build time so a
// duplicate is caught before the menu ever reaches the picker.
func (m *Menu) checkLabels() error {
	seen := make(map[string]bool)
	for _, a := range m.Actions() {
		if seen[a.Label] {
			return fmt.Errorf("duplicate menu label %q: %w", a.Label, ErrAmbiguous)
		}
		seen[a.Label] = true
	}
	return nil
}
