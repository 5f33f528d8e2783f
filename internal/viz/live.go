package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

type TickMsg time.Time

// LiveModel plays an already-computed trajectory back one mesh point per
// frame. The solution is never recomputed; playback only moves a cursor
// over the stored points.
type LiveModel struct {
	expression string
	mesh       []float64
	solution   []float64
	h          float64
	frameRate  int
	head       int
	running    bool
}

func NewLive(expression string, mesh, solution []float64, h float64, frameRate int) LiveModel {
	if frameRate < 1 {
		frameRate = 30
	}
	return LiveModel{
		expression: expression,
		mesh:       mesh,
		solution:   solution,
		h:          h,
		frameRate:  frameRate,
		running:    true,
	}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.head = 0
			m.running = true
		}
		return m, nil

	case TickMsg:
		if m.running && m.head < len(m.mesh)-1 {
			m.head++
		}
		return m, m.tick()
	}

	return m, nil
}

func (m LiveModel) View() string {
	graph := asciigraph.Plot(m.solution[:m.head+1],
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	)

	status := "playing"
	if m.head == len(m.mesh)-1 {
		status = "done"
	} else if !m.running {
		status = "paused"
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("dy/dt = "+m.expression),
		labelStyle.Render("t")+valueStyle.Render(fmt.Sprintf("%10.4f", m.mesh[m.head])),
		labelStyle.Render("y")+valueStyle.Render(fmt.Sprintf("%10.4f", m.solution[m.head])),
		labelStyle.Render("point")+valueStyle.Render(fmt.Sprintf("%d / %d", m.head+1, len(m.mesh))),
		labelStyle.Render("h")+valueStyle.Render(fmt.Sprintf("%g", m.h)),
		labelStyle.Render("status")+valueStyle.Render(status),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		graphStyle.Render(graph),
		statsStyle.Render(stats),
	)

	return body + "\n" + helpStyle.Render("space pause/resume • r restart • q quit") + "\n"
}

// RunLive starts the playback UI and blocks until the user quits.
func RunLive(m LiveModel) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
