package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"taskring/internal/config"
)

type keyMap struct {
	quit        key.Binding
	forceQuit   key.Binding
	add         key.Binding
	up          key.Binding
	down        key.Binding
	toggle      key.Binding
	remove      key.Binding
	edit        key.Binding
	confirm     key.Binding
	cancel      key.Binding
	focusSwitch key.Binding
	nextFilter  key.Binding
	prevFilter  key.Binding
	filterAll   key.Binding
	filterAct   key.Binding
	filterDone  key.Binding
	clearDone   key.Binding
	help        key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		quit:        key.NewBinding(key.WithKeys(k.Quit), key.WithHelp(label(k.Quit), "quit")),
		forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		add:         key.NewBinding(key.WithKeys(k.Add), key.WithHelp(label(k.Add), "add task")),
		up:          key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(label(k.Up)+"/↑", "up")),
		down:        key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(label(k.Down)+"/↓", "down")),
		toggle:      key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(label(k.Toggle), "toggle done")),
		remove:      key.NewBinding(key.WithKeys(k.Delete, "x"), key.WithHelp(label(k.Delete), "delete")),
		edit:        key.NewBinding(key.WithKeys(k.Edit, k.Confirm), key.WithHelp(label(k.Edit)+"/"+label(k.Confirm), "edit")),
		confirm:     key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(label(k.Confirm), "save")),
		cancel:      key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(label(k.Cancel), "cancel")),
		focusSwitch: key.NewBinding(key.WithKeys(k.FocusSwitch), key.WithHelp(label(k.FocusSwitch), "input/list")),
		nextFilter:  key.NewBinding(key.WithKeys(k.NextFilter, "right"), key.WithHelp(label(k.NextFilter)+"/→", "next filter")),
		prevFilter:  key.NewBinding(key.WithKeys(k.PrevFilter, "left"), key.WithHelp(label(k.PrevFilter)+"/←", "prev filter")),
		filterAll:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		filterAct:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		filterDone:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "done")),
		clearDone:   key.NewBinding(key.WithKeys(k.ClearCompleted), key.WithHelp(label(k.ClearCompleted), "clear done")),
		help:        key.NewBinding(key.WithKeys(k.Help), key.WithHelp(label(k.Help), "more")),
	}
}

func label(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.focusSwitch, k.toggle, k.edit, k.remove, k.nextFilter, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.add, k.focusSwitch, k.up, k.down},
		{k.toggle, k.edit, k.remove, k.clearDone},
		{k.nextFilter, k.prevFilter, k.filterAll, k.filterAct, k.filterDone},
		{k.confirm, k.cancel, k.help, k.quit},
	}
}
