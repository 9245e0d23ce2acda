package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/style-peers/peer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	ctx      context.Context
	err      error
	session  *session
	result   string
	layers   []layerPeer
	funcs    []funcInfo
	inputs   []textinput.Model
	layer    int
	selected int
	focusIdx int
	state    modelState
}

type funcInfo struct {
	surface string
	fn      peer.SurfaceFunc
}

func (f funcInfo) params() []string {
	names := make([]string, len(f.fn.Params))
	for i := range f.fn.Params {
		names[i] = "value"
		if len(f.fn.Params) > 1 {
			names[i] = fmt.Sprintf("arg%d", i)
		}
	}
	return names
}

type modelState int

const (
	stateSelectLayer modelState = iota
	stateSelectFunc
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(ctx context.Context, s *session) *interactiveModel {
	return &interactiveModel{
		ctx:     ctx,
		session: s,
		state:   stateSelectLayer,
	}
}

type bridgedMsg struct {
	layers []layerPeer
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.bridgeLayers
}

func (m *interactiveModel) bridgeLayers() tea.Msg {
	return bridgedMsg{layers: m.session.bridgeAll()}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			m.move(-1)

		case "down", "j":
			m.move(1)

		case "enter":
			switch m.state {
			case stateSelectLayer:
				if len(m.layers) > 0 {
					m.prepareFuncs()
					m.state = stateSelectFunc
				}

			case stateSelectFunc:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callFunction
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateSelectFunc:
				m.state = stateSelectLayer
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}
		}

	case bridgedMsg:
		m.layers = msg.layers

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) move(delta int) {
	switch m.state {
	case stateSelectLayer:
		m.layer = clamp(m.layer+delta, len(m.layers))
	case stateSelectFunc:
		m.selected = clamp(m.selected+delta, len(m.funcs))
	}
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m *interactiveModel) prepareFuncs() {
	m.funcs = nil
	for _, s := range m.session.surfaces(m.layers[m.layer].typ) {
		for _, f := range s.Funcs {
			m.funcs = append(m.funcs, funcInfo{surface: s.Name, fn: f})
		}
	}
	m.selected = 0
}

func (m *interactiveModel) prepareInputs() {
	f := m.funcs[m.selected]
	names := f.params()
	m.inputs = make([]textinput.Model, len(f.fn.Params))
	for i, p := range f.fn.Params {
		ti := textinput.New()
		ti.Placeholder = peer.TypeName(p)
		ti.Prompt = names[i] + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callFunction() tea.Msg {
	f := m.funcs[m.selected]
	args := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		args[i] = input.Value()
	}

	results, err := m.session.call(m.ctx, m.layers[m.layer].handle, f.surface, f.fn.Name, args)
	if err != nil {
		return callResultMsg{err: err}
	}
	if len(results) == 0 {
		return callResultMsg{result: "ok"}
	}
	return callResultMsg{result: strings.Join(results, " ")}
}

func (m *interactiveModel) View() string {
	if m.layers == nil {
		return "Creating peers..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Style Peers"))
	b.WriteString(" ")
	b.WriteString(m.session.path)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectLayer:
		b.WriteString("Select a layer:\n\n")
		for i, lp := range m.layers {
			line := fmt.Sprintf("%-24s %s", lp.layer.ID(), typeStyle.Render(lp.typ.Name))
			if i == m.layer {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateSelectFunc:
		lp := m.layers[m.layer]
		fmt.Fprintf(&b, "Layer %s (handle %d)\n\n", funcStyle.Render(lp.layer.ID()), lp.handle)
		for i, f := range m.funcs {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.formatFunc(f)))
			} else {
				b.WriteString("  " + m.formatFunc(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • esc layers • q quit"))

	case stateInputArgs:
		f := m.funcs[m.selected]
		fmt.Fprintf(&b, "Calling %s\n\n", funcStyle.Render(f.surface+"#"+f.fn.Name))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(peer.TypeName(f.fn.Params[i])))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		f := m.funcs[m.selected]
		fmt.Fprintf(&b, "Result of %s:\n\n", funcStyle.Render(f.surface+"#"+f.fn.Name))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatFunc(f funcInfo) string {
	var params []string
	for i, name := range f.params() {
		params = append(params, name+": "+typeStyle.Render(peer.TypeName(f.fn.Params[i])))
	}
	result := ""
	if len(f.fn.Results) > 0 {
		result = " -> " + typeStyle.Render(peer.TypeName(f.fn.Results[0]))
	}
	return typeStyle.Render(f.surface) + "#" + funcStyle.Render(f.fn.Name) + "(" + strings.Join(params, ", ") + ")" + result
}
