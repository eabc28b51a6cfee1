package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// logPanel shows the dispatch log streamed in from the store's logger.
type logPanel struct {
	lines     []string
	offset    int
	width     int
	wrap      bool
	frozen    bool
	frozenBuf []string
	status    string
	saveDir   string
	dropped   func() int
	// search state
	searching  bool
	searchBuf  string
	searchIdxs []int
	searchPos  int
}

const logPanelLines = 12

type logMsg string

func waitLog(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(s)
	}
}

func (p *logPanel) add(line string) {
	if p.frozen {
		p.frozenBuf = append(p.frozenBuf, line)
		return
	}
	p.lines = append(p.lines, line)
}

// handleKey reports whether the key was consumed by the panel.
func (p *logPanel) handleKey(msg tea.KeyMsg) bool {
	k := msg.String()
	if p.searching {
		switch k {
		case "enter":
			p.searching = false
			p.computeSearch()
			p.jumpToResult(0)
		case "esc":
			p.searching = false
			p.searchBuf = ""
			p.searchIdxs = nil
			p.searchPos = 0
		default:
			if msg.Type == tea.KeyBackspace || msg.Type == tea.KeyCtrlH {
				if r := []rune(p.searchBuf); len(r) > 0 {
					p.searchBuf = string(r[:len(r)-1])
				}
			} else if msg.Type == tea.KeyRunes {
				p.searchBuf += string(msg.Runes)
			}
		}
		return true
	}
	switch k {
	case "j", "down":
		if p.offset > 0 {
			p.offset--
		}
	case "k", "up":
		if p.offset < len(p.lines) {
			p.offset++
		}
	case "J", "end":
		p.offset = 0
	case "K", "home":
		p.offset = len(p.lines)
	case "/":
		p.searching = true
		p.searchBuf = ""
	case "n":
		if len(p.searchIdxs) == 0 && strings.TrimSpace(p.searchBuf) != "" {
			p.computeSearch()
		}
		if len(p.searchIdxs) > 0 {
			p.jumpToResult(p.searchPos + 1)
		}
	case "N":
		if len(p.searchIdxs) == 0 && strings.TrimSpace(p.searchBuf) != "" {
			p.computeSearch()
		}
		if len(p.searchIdxs) > 0 {
			p.jumpToResult(p.searchPos - 1)
		}
	case "S":
		if path, err := p.save(); err == nil {
			p.status = "Saved log to " + path
		} else {
			p.status = "Save failed: " + err.Error()
		}
	case "f":
		p.frozen = !p.frozen
		if !p.frozen && len(p.frozenBuf) > 0 {
			p.lines = append(p.lines, p.frozenBuf...)
			p.frozenBuf = nil
		}
		if p.frozen {
			p.status = "Log frozen"
		} else {
			p.status = "Log resumed"
		}
	default:
		return false
	}
	return true
}

func (p logPanel) view(noColor bool) string {
	var b strings.Builder
	title := "Action log"
	if !noColor {
		title = titleStyle.Render(title)
	}
	status := ""
	if p.searching {
		status = fmt.Sprintf("  /%s", p.searchBuf)
	} else if len(p.searchIdxs) > 0 {
		status = fmt.Sprintf("  [%d/%d]", p.searchPos+1, len(p.searchIdxs))
	}
	if p.dropped != nil {
		if n := p.dropped(); n > 0 {
			status += fmt.Sprintf("  (%d dropped)", n)
		}
	}
	b.WriteString(title + status + "\n")

	start := len(p.lines) - logPanelLines - p.offset
	if start < 0 {
		start = 0
	}
	end := start + logPanelLines
	if end > len(p.lines) {
		end = len(p.lines)
	}
	avail := p.width
	if avail <= 0 {
		avail = 100
	}
	// border and padding
	avail -= 4
	if avail < 20 {
		avail = 20
	}
	lines := make([]string, 0, end-start)
	for i, ln := range p.lines[start:end] {
		if !p.wrap {
			if r := []rune(ln); len(r) > avail {
				ln = string(r[:avail-1]) + "…"
			}
		}
		if noColor {
			lines = append(lines, ln)
		} else {
			lines = append(lines, p.highlight(ln, start+i))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "(no actions yet)")
	}
	content := strings.Join(lines, "\n")
	if noColor {
		b.WriteString(content + "\n")
	} else {
		border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
		b.WriteString(border.Render(content) + "\n")
	}
	b.WriteString("(j/k) scroll (/) search (n/N) next (S) save (f) freeze (ctrl+l) close\n")
	if strings.TrimSpace(p.status) != "" {
		b.WriteString(p.status + "\n")
	}
	return b.String()
}

// computeSearch indexes the lines containing searchBuf, case-insensitively.
func (p *logPanel) computeSearch() {
	p.searchIdxs = nil
	p.searchPos = 0
	q := strings.ToLower(strings.TrimSpace(p.searchBuf))
	if q == "" {
		return
	}
	for i, ln := range p.lines {
		if strings.Contains(strings.ToLower(ln), q) {
			p.searchIdxs = append(p.searchIdxs, i)
		}
	}
}

func (p *logPanel) jumpToResult(pos int) {
	if len(p.searchIdxs) == 0 {
		return
	}
	if pos < 0 {
		pos = len(p.searchIdxs) - 1
	}
	if pos >= len(p.searchIdxs) {
		pos = 0
	}
	p.searchPos = pos
	// put the hit on the last visible row
	p.offset = len(p.lines) - (p.searchIdxs[pos] + 1)
	if p.offset < 0 {
		p.offset = 0
	}
}

var highlightStyle = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "228", Dark: "94"}).Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"})

func (p *logPanel) highlight(s string, idx int) string {
	q := strings.ToLower(strings.TrimSpace(p.searchBuf))
	if q == "" || !containsIndex(p.searchIdxs, idx) {
		return s
	}
	lower := strings.ToLower(s)
	i := strings.Index(lower, q)
	if i < 0 || len(lower) != len(s) {
		return s
	}
	return s[:i] + highlightStyle.Render(s[i:i+len(q)]) + s[i+len(q):]
}

func containsIndex(a []int, x int) bool {
	for _, v := range a {
		if v == x {
			return true
		}
	}
	return false
}

func (p *logPanel) save() (string, error) {
	dir := p.saveDir
	if dir == "" {
		dir = filepath.Join(".tabgroups", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, time.Now().Format("20060102_150405")+".log")
	data := strings.Join(p.lines, "\n") + "\n"
	return path, os.WriteFile(path, []byte(data), 0644)
}
