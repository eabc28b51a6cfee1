package tui

import (
	"os"
	"reflect"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabgroups/internal/config"
	"tabgroups/internal/tui/state"
	"tabgroups/internal/tui/util"
	"tabgroups/internal/tui/views/documents"
	"tabgroups/internal/tui/views/groups"
	helpview "tabgroups/internal/tui/views/keys"
	diffw "tabgroups/internal/tui/widgets/diff"
	"tabgroups/internal/tui/widgets/editor"
	"tabgroups/internal/tui/widgets/statusbar"
	"tabgroups/internal/tui/widgets/tabbar"
)

// Options configures the interactive shell.
type Options struct {
	Store     *state.Store
	Workspace string        // where W saves the layout; empty disables saving
	NoColor   bool
	LogCh     <-chan string // dispatch log lines, shown in the action log panel
	LogDir    string        // where the action log panel saves to
	Dropped   func() int    // log lines the panel never received
}

// Run starts the shell and blocks until the user quits.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ===== Model =====

type mode string

const (
	modeNormal mode = "normal"
	modeOpen   mode = "open"  // path prompt
	modeQuick  mode = "quick" // quick switch by tab name
	modeMenu   mode = "menu"  // group context menu
)

type model struct {
	store     *state.Store
	keys      keyMap
	view      state.ViewState
	workspace string
	saved     *config.Workspace // last layout written by W

	// last transition, shown by the inspector
	before, after state.EditorState

	mode     mode
	prompt   prompt
	matches  []documents.Match
	menu     []groups.Option
	menuSel  int
	untitled int

	logs  logPanel
	logCh <-chan string

	tabs      tabbar.TabBar
	status    statusbar.StatusBar
	editor    editor.Editor
	inspector diffw.DiffView
}

func newModel(opts Options) model {
	st := opts.Store
	if st == nil {
		st = state.NewStore(state.InitialState(), nil)
	}
	noColor := util.NoColor(opts.NoColor)
	return model{
		store:     st,
		keys:      newKeyMap(),
		view:      state.ViewState{MinCol: 30, NoColor: noColor},
		workspace: opts.Workspace,
		mode:      modeNormal,
		prompt:    newPrompt(),
		logs:      logPanel{saveDir: opts.LogDir, dropped: opts.Dropped},
		logCh:     opts.LogCh,
		tabs:      tabbar.NewTabBar(noColor),
		status:    statusbar.NewStatusBar(),
		editor:    editor.NewEditor(),
		inspector: diffw.NewDiffView(),
	}
}

func (m model) Init() tea.Cmd {
	if m.logCh != nil {
		return waitLog(m.logCh)
	}
	return nil
}

// Update handles all shell interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view = state.Resize(m.view, msg.Width, msg.Height)
		m.logs.width = msg.Width
		return m, nil
	case logMsg:
		m.logs.add(string(msg))
		return m, waitLog(m.logCh)
	case tea.KeyMsg:
		switch m.mode {
		case modeOpen:
			return m.updateOpen(msg)
		case modeQuick:
			return m.updateQuick(msg)
		case modeMenu:
			return m.updateMenu(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

// dispatch runs a through the store and remembers the transition.
func (m *model) dispatch(a state.Action) {
	before := m.store.State()
	after, err := m.store.Dispatch(a)
	if err != nil {
		m.view = state.SetNotice(m.view, err.Error())
		return
	}
	m.before, m.after = before, after
	m.view = state.SetNotice(m.view, "")
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view.Panel == state.PanelLog && m.logs.handleKey(msg) {
		return m, nil
	}
	s := m.store.State()
	k := s.ActiveEditor
	g := s.Group(k)
	id := g.ActiveDocumentID
	doc, hasDoc := s.ActiveDocument()
	other := state.OtherGroup(k)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		m.mode = modeOpen
		m.prompt.start("path to open")
		return m, textinput.Blink
	case key.Matches(msg, m.keys.New):
		m.untitled++
		m.dispatch(state.Open{Document: untitledDocument(m.untitled)})
	case key.Matches(msg, m.keys.Close):
		if hasDoc {
			m.dispatch(state.Close{Group: k, DocumentID: id})
		}
	case key.Matches(msg, m.keys.CloseAll):
		m.dispatch(state.CloseAll{})
	case key.Matches(msg, m.keys.CloseEverything):
		m.dispatch(state.CloseAll{IncludeGlobal: true})
	case key.Matches(msg, m.keys.SwitchGroup):
		if other == state.Secondary && !state.HasDocuments(s.Group(state.Primary)) {
			m.view = state.SetNotice(m.view, "Open a document first")
			break
		}
		m.dispatch(state.SetActiveEditor{Group: other})
	case key.Matches(msg, m.keys.PrevTab):
		if n := neighbour(g, -1, true); n != "" {
			m.dispatch(state.SetActiveTab{DocumentID: n})
		}
	case key.Matches(msg, m.keys.NextTab):
		if n := neighbour(g, 1, true); n != "" {
			m.dispatch(state.SetActiveTab{DocumentID: n})
		}
	case key.Matches(msg, m.keys.MoveLeft):
		if n := neighbour(g, -1, false); n != "" {
			m.dispatch(state.SwapTabs{Src: k, SrcTabID: id, Dest: k, DestTabID: n})
		}
	case key.Matches(msg, m.keys.MoveRight):
		if n := neighbour(g, 1, false); n != "" {
			m.dispatch(state.SwapTabs{Src: k, SrcTabID: id, Dest: k, DestTabID: n})
		}
	case key.Matches(msg, m.keys.Split):
		if hasDoc {
			m.dispatch(state.SplitTab{Src: k, Dest: other, DocumentID: id})
		}
	case key.Matches(msg, m.keys.Append):
		if hasDoc {
			m.dispatch(state.AppendTab{Src: k, Dest: other, DocumentID: id})
		}
	case key.Matches(msg, m.keys.Menu):
		m.menu = groups.RenderOptions(s, k)
		m.menuSel = 0
		m.mode = modeMenu
	case key.Matches(msg, m.keys.Dirty):
		if hasDoc {
			m.dispatch(state.SetDirtyFlag{DocumentID: id, Dirty: !doc.Dirty})
		}
	case key.Matches(msg, m.keys.Global):
		if hasDoc {
			pinned := !doc.IsGlobal
			m.dispatch(state.UpdateDocument{Patch: state.DocumentPatch{DocumentID: id, IsGlobal: &pinned}})
		}
	case key.Matches(msg, m.keys.Drag):
		m.dispatch(state.ToggleDraggingTab{Dragging: !s.DraggingTab})
	case key.Matches(msg, m.keys.Quick):
		m.mode = modeQuick
		m.prompt.start("tab name")
		m.matches = documents.Rank(s, "")
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Yank):
		if hasDoc {
			name := doc.FileName
			if name == "" {
				name = doc.DocumentID
			}
			if err := clipboard.WriteAll(name); err != nil {
				m.view = state.SetNotice(m.view, "Copy failed: "+err.Error())
			} else {
				m.view = state.SetNotice(m.view, "Copied "+name)
			}
		}
	case key.Matches(msg, m.keys.Inspector):
		m.view = state.TogglePanel(m.view, state.PanelInspector)
	case key.Matches(msg, m.keys.DiffMode):
		m.view = state.Resize(state.ToggleView(m.view), m.view.Width, m.view.Height)
	case key.Matches(msg, m.keys.Wrap):
		m.view = state.ToggleWrap(m.view)
		m.logs.wrap = m.view.Wrap
	case key.Matches(msg, m.keys.Log):
		m.view = state.TogglePanel(m.view, state.PanelLog)
	case key.Matches(msg, m.keys.Help):
		m.view = state.TogglePanel(m.view, state.PanelHelp)
	case key.Matches(msg, m.keys.ScrollLeft):
		m.view = state.ScrollLeft(m.view, msg.String() == "{")
	case key.Matches(msg, m.keys.ScrollRight):
		m.view = state.ScrollRight(m.view, msg.String() == "}")
	case key.Matches(msg, m.keys.Undo):
		before := m.store.State()
		if m.store.Undo() {
			m.before, m.after = before, m.store.State()
			m.view = state.SetNotice(m.view, "Undone")
		} else {
			m.view = state.SetNotice(m.view, "Nothing to undo")
		}
	case key.Matches(msg, m.keys.Save):
		m.saveWorkspace(s)
	}
	return m, nil
}

func (m *model) saveWorkspace(s state.EditorState) {
	if m.workspace == "" {
		m.view = state.SetNotice(m.view, "No workspace file configured")
		return
	}
	ws := config.FromState(s)
	if m.saved != nil && reflect.DeepEqual(ws, m.saved) {
		m.view = state.SetNotice(m.view, "Workspace unchanged")
		return
	}
	if err := config.Save(m.workspace, ws); err != nil {
		m.view = state.SetNotice(m.view, "Save failed: "+err.Error())
		return
	}
	m.saved = config.Clone(ws)
	m.view = state.SetNotice(m.view, "Saved workspace to "+m.workspace)
}

func (m model) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.prompt.stop()
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.prompt.input.Value())
		m.mode = modeNormal
		m.prompt.stop()
		if path == "" {
			return m, nil
		}
		d := documentForPath(path)
		if _, err := os.Stat(d.FileName); err != nil {
			m.view = state.SetNotice(m.view, "! not found: "+d.FileName)
			return m, nil
		}
		m.dispatch(state.Open{Document: d})
		return m, nil
	case "tab":
		if len(m.prompt.suggest) > 0 {
			m.prompt.input.SetValue(m.prompt.suggest[m.prompt.sel])
			m.prompt.input.CursorEnd()
			m.prompt.suggest = computeSuggestions(m.prompt.input.Value())
			m.prompt.sel = 0
		}
		return m, nil
	case "up":
		m.prompt.move(-1, len(m.prompt.suggest))
		return m, nil
	case "down":
		m.prompt.move(1, len(m.prompt.suggest))
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	m.prompt.suggest = computeSuggestions(m.prompt.input.Value())
	m.prompt.sel = 0
	return m, cmd
}

func (m model) updateQuick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.prompt.stop()
		m.matches = nil
		return m, nil
	case "enter":
		if m.prompt.sel < len(m.matches) {
			m.dispatch(state.SetActiveTab{DocumentID: m.matches[m.prompt.sel].Document.DocumentID})
		}
		m.mode = modeNormal
		m.prompt.stop()
		m.matches = nil
		return m, nil
	case "up", "ctrl+p":
		m.prompt.move(-1, len(m.matches))
		return m, nil
	case "down", "ctrl+n":
		m.prompt.move(1, len(m.matches))
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	m.matches = documents.Rank(m.store.State(), m.prompt.input.Value())
	m.prompt.sel = 0
	return m, cmd
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "m":
		m.mode = modeNormal
	case "up", "k":
		if m.menuSel > 0 {
			m.menuSel--
		}
	case "down", "j":
		if m.menuSel < len(m.menu)-1 {
			m.menuSel++
		}
	case "enter":
		if m.menuSel < len(m.menu) {
			m.dispatch(m.menu[m.menuSel].Action)
		}
		m.mode = modeNormal
	}
	return m, nil
}

// neighbour returns the id next to the active tab in tab order, or "" when
// there is none.
func neighbour(g state.TabGroup, delta int, wrap bool) string {
	n := len(g.TabOrder)
	i := -1
	for j, id := range g.TabOrder {
		if id == g.ActiveDocumentID {
			i = j
			break
		}
	}
	if n < 2 || i < 0 {
		return ""
	}
	j := i + delta
	if wrap {
		j = (j%n + n) % n
	} else if j < 0 || j >= n {
		return ""
	}
	return g.TabOrder[j]
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	s := m.store.State()
	noColor := m.view.NoColor
	var b strings.Builder

	title := "Tab groups"
	if !noColor {
		title = titleStyle.Render(title)
	}
	b.WriteString(title + "\n")
	for _, k := range state.GroupKeys {
		b.WriteString(m.tabs.View(k, s.Group(k), s.ActiveEditor == k, m.view.Width) + "\n")
	}
	b.WriteString("\n" + m.editor.View(s) + "\n")

	switch m.mode {
	case modeOpen:
		b.WriteString("Open: " + m.prompt.input.View() + "\n")
		for i, sug := range m.prompt.suggest {
			b.WriteString(m.cursorLine(sug, i == m.prompt.sel) + "\n")
		}
		b.WriteString(m.hint("enter: open   tab: complete   esc: cancel") + "\n")
	case modeQuick:
		b.WriteString("Switch to: " + m.prompt.input.View() + "\n")
		b.WriteString(documents.RenderMatches(m.matches, m.prompt.sel, maxSuggestions, noColor))
		b.WriteString(m.hint("enter: switch   ↑/↓: select   esc: cancel") + "\n")
	case modeMenu:
		b.WriteString(groups.View(s.ActiveEditor, m.menu, m.menuSel))
		b.WriteString(m.hint("enter: run   j/k: select   esc: close") + "\n")
	}

	switch m.view.Panel {
	case state.PanelInspector:
		if m.after.Editors == nil {
			b.WriteString("No transitions yet\n")
		} else {
			b.WriteString(m.inspector.View(m.view, m.before, m.after))
		}
	case state.PanelLog:
		b.WriteString(m.logs.view(noColor))
	case state.PanelHelp:
		b.WriteString(helpview.RenderHelp(s))
	}

	b.WriteString("\n" + m.status.View(s, m.view) + "\n")
	return b.String()
}

func (m model) cursorLine(s string, selected bool) string {
	if !selected {
		return "  " + s
	}
	if m.view.NoColor {
		return "> " + s
	}
	return selStyle.Render("> " + s)
}

func (m model) hint(s string) string {
	if m.view.NoColor {
		return s
	}
	return faintStyle.Render(s)
}
