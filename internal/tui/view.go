package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shnupta/scc/internal/domain"
	"github.com/shnupta/scc/internal/session"
)

func (m Model) View() string {
	if !m.ready {
		return "initialising..."
	}

	vm := session.Project(m.ctrl)

	var body string
	if vm.Mode == session.ModeBrowse {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderSearch(vm),
			m.renderGroupBar(vm),
			m.renderRows(vm),
		)
	} else {
		body = m.renderForm(vm)
	}

	parts := []string{m.renderHeader(vm), body}
	if status := m.status(vm); status != "" {
		parts = append(parts, styleStatus.Render(status))
	}
	parts = append(parts, m.renderHelp(vm))

	return domain.TruncateLines(lipgloss.JoinVertical(lipgloss.Left, parts...), m.width)
}

// status is the store or controller status, else the last watcher failure.
func (m Model) status(vm session.ViewModel) string {
	if vm.Status != "" {
		return vm.Status
	}
	if m.watchErr != nil {
		return "watch failed: " + m.watchErr.Error()
	}
	return ""
}

func (m Model) renderHeader(vm session.ViewModel) string {
	title := "scc"
	if vm.Title != "" {
		title += "  ·  " + vm.Title
	} else {
		title += fmt.Sprintf("  ·  %d connections", m.ctrl.Store().Len())
	}
	return styleHeader.Width(m.width).Render(title)
}

func (m Model) renderSearch(vm session.ViewModel) string {
	return styleSearch.Render("search: " + vm.Search + "▎")
}

func (m Model) renderGroupBar(vm session.ViewModel) string {
	labels := make([]string, 0, len(vm.Groups))
	for _, g := range vm.Groups {
		label := g.Label
		if label == "" {
			label = "(none)"
		}
		if g.Selected {
			labels = append(labels, styleGroupSelected.Render(label))
		} else {
			labels = append(labels, styleGroup.Render(label))
		}
	}
	return styleGroupBar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, labels...))
}

func (m Model) renderRows(vm session.ViewModel) string {
	if len(vm.Rows) == 0 {
		return styleEmpty.Render("no connections")
	}

	// header(1) + search(1) + group bar(2) + help(1)
	avail := m.height - 5
	if m.status(vm) != "" {
		avail--
	}
	start, end := visibleWindow(vm.Rows, avail)

	var sb strings.Builder
	for _, r := range vm.Rows[start:end] {
		sb.WriteString(m.renderRow(r) + "\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// visibleWindow returns the slice bounds of rows that fit in height lines
// while keeping the selected row in view.
func visibleWindow(rows []session.Row, height int) (int, int) {
	if height <= 0 || len(rows) <= height {
		return 0, len(rows)
	}
	sel := 0
	for i, r := range rows {
		if r.Selected {
			sel = i
			break
		}
	}
	start := 0
	if sel >= height {
		start = sel - height + 1
	}
	return start, start + height
}

func (m Model) renderRow(r session.Row) string {
	target := r.Hostname
	if r.User != "" {
		target = r.User + "@" + r.Hostname
	}
	name := lipgloss.NewStyle().Width(nameColWidth).Render(domain.TruncateLines(r.Name, nameColWidth-1))
	host := lipgloss.NewStyle().Width(hostColWidth).Render(domain.TruncateLines(target, hostColWidth-1))
	line := name + host + styleRowMeta.Render(r.Group)

	if r.Selected {
		return styleRowSelected.Width(m.width).Render(line)
	}
	return styleRow.Width(m.width).Render(line)
}

func (m Model) renderForm(vm session.ViewModel) string {
	var sb strings.Builder
	sb.WriteString(styleFormTitle.Render(vm.Title) + "\n\n")
	for _, f := range vm.Form {
		label := styleFormLabel.Render(f.Label + ":")
		value := f.Value
		if f.Focused {
			label = styleFormLabelFocused.Render(f.Label + ":")
			value += "▎"
		}
		sb.WriteString(label + " " + value + "\n")
	}
	return styleForm.Render(strings.TrimSuffix(sb.String(), "\n"))
}

func (m Model) renderHelp(vm session.ViewModel) string {
	if vm.Mode == session.ModeBrowse {
		return styleHelp.Width(m.width).Render(m.help.ShortHelpView(browseHelp))
	}
	return styleHelpForm.Width(m.width).Render(m.help.ShortHelpView(formHelp))
}
