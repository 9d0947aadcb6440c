package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"solarenroll/internal/domain"
	"solarenroll/internal/wizard"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Community Solar Enrollment"))
	b.WriteString("\n")
	b.WriteString(m.progress())
	b.WriteString("\n\n")

	if m.wiz.Submitted() {
		b.WriteString(m.success())
		b.WriteString(helpStyle.Render("enter/r: new enrollment • q: quit"))
		b.WriteString("\n")
		return b.String()
	}

	for _, v := range m.wiz.Fields() {
		b.WriteString(m.field(v))
		b.WriteString("\n")
	}
	b.WriteString(m.status())
	b.WriteString(helpStyle.Render(m.help()))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) progress() string {
	cur := m.wiz.Step()
	parts := make([]string, len(wizard.StepLabels))
	for i, label := range wizard.StepLabels {
		step := wizard.Step(i + 1)
		switch {
		case step < cur:
			parts[i] = stepDone.Render("✓ " + label)
		case step == cur:
			parts[i] = stepCurrent.Render(fmt.Sprintf("%d. %s", i+1, label))
		default:
			parts[i] = stepUpcoming.Render(fmt.Sprintf("%d. %s", i+1, label))
		}
	}
	return strings.Join(parts, stepUpcoming.Render("  ›  "))
}

func (m *Model) field(v wizard.FieldView) string {
	label := v.Label
	if v.Required {
		label += " *"
	}
	ls := labelStyle
	if v.Name == m.focusedField() {
		ls = focusedLabel
	}

	lines := []string{ls.Render(label)}
	switch {
	case v.Name == wizard.FieldAssistanceProgram:
		lines = append(lines, m.programSelector(domain.AssistanceProgram(v.Value)))
	case v.ReadOnly:
		if v.Value == "" {
			lines = append(lines, helperStyle.Render("  "+v.Placeholder))
		} else {
			lines = append(lines, readOnlyStyle.Render("  "+v.Value))
		}
	default:
		lines = append(lines, m.inputs[v.Name].View())
	}
	if v.Helper != "" {
		lines = append(lines, helperStyle.Render("  "+v.Helper))
	}
	if v.Error != "" {
		lines = append(lines, errorStyle.Render("  "+v.Error))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) programSelector(cur domain.AssistanceProgram) string {
	opts := make([]string, len(programs))
	for i, p := range programs {
		name := string(p)
		if p == domain.AssistanceNone {
			name = "None"
		}
		if p == cur {
			opts[i] = focusedLabel.Render("(•) " + name)
		} else {
			opts[i] = helperStyle.Render("( ) " + name)
		}
	}
	return "  " + strings.Join(opts, "  ")
}

func (m *Model) status() string {
	var lines []string
	if m.pending > 0 {
		lines = append(lines, m.spinner.View()+busyStyle.Render(" "+m.busyLabel()))
	}
	if m.wiz.Step() == wizard.StepAddress {
		if s := m.addr.LookupStatus(); s.Err != "" && !s.Loading {
			lines = append(lines, errorStyle.Render("Utility lookup failed: "+s.Err))
		}
	}
	if m.banner != "" {
		lines = append(lines, errorStyle.Render(m.banner))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) busyLabel() string {
	switch {
	case m.submitting:
		return "Submitting..."
	case m.addr.ValidateStatus().Loading:
		return "Validating address..."
	default:
		return "Looking up utility..."
	}
}

func (m *Model) help() string {
	switch m.wiz.Step() {
	case wizard.StepPersonal:
		return "tab: next field • enter: continue • ctrl+c: quit"
	case wizard.StepAddress:
		return "tab: next field • enter: continue • ctrl+o: validate address • esc: back • ctrl+c: quit"
	default:
		return "tab: next field • ←/→: assistance program • enter: submit • esc: back • ctrl+c: quit"
	}
}

func (m *Model) success() string {
	lines := []string{titleStyle.Render("Enrollment Successful!")}
	if res := m.wiz.Result(); res != nil {
		if res.SubscriberID != 0 {
			lines = append(lines, fmt.Sprintf("Subscriber ID: %d", res.SubscriberID))
		}
		if res.Message != "" {
			lines = append(lines, res.Message)
		}
	}
	r := m.wiz.Record()
	lines = append(lines, helperStyle.Render(fmt.Sprintf("%s %s, %s", r.FirstName, r.LastName, r.Address)))
	return successBox.Render(strings.Join(lines, "\n")) + "\n"
}
