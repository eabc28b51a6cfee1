package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open, New, Close, CloseAll, CloseEverything key.Binding
	SwitchGroup, PrevTab, NextTab              key.Binding
	MoveLeft, MoveRight                        key.Binding
	Split, Append, Menu                        key.Binding
	Dirty, Global, Drag, Quick, Yank           key.Binding
	Inspector, DiffMode, Wrap, Log, Help       key.Binding
	ScrollLeft, ScrollRight                    key.Binding
	Undo, Save, Quit                           key.Binding
}

func newKeyMap() keyMap {
	b := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	return keyMap{
		Open:            b("open path", "o"),
		New:             b("new untitled", "n"),
		Close:           b("close tab", "x"),
		CloseAll:        b("close all unpinned", "X"),
		CloseEverything: b("close everything", "ctrl+x"),
		SwitchGroup:     b("switch group", "tab"),
		PrevTab:         b("previous tab", "h", "left"),
		NextTab:         b("next tab", "l", "right"),
		MoveLeft:        b("move tab left", "H", "shift+left"),
		MoveRight:       b("move tab right", "L", "shift+right"),
		Split:           b("split to other group", "s"),
		Append:          b("append to other group", "a"),
		Menu:            b("group menu", "m"),
		Dirty:           b("toggle modified", "d"),
		Global:          b("toggle pinned", "g"),
		Drag:            b("toggle dragging", "D"),
		Quick:           b("quick switch", "/"),
		Yank:            b("copy file name", "y"),
		Inspector:       b("state inspector", "i"),
		DiffMode:        b("unified/side-by-side", "v"),
		Wrap:            b("wrap", "w"),
		Log:             b("action log", "ctrl+l"),
		Help:            b("help", "?"),
		ScrollLeft:      b("scroll inspector left", "[", "{"),
		ScrollRight:     b("scroll inspector right", "]", "}"),
		Undo:            b("undo", "u"),
		Save:            b("save workspace", "W"),
		Quit:            b("quit", "q", "ctrl+c"),
	}
}
