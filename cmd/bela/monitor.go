package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/l0calh05t/bela-go"
	"github.com/l0calh05t/bela-go/engine"
	"github.com/l0calh05t/bela-go/engine/sim"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	channelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type levelsMsg struct {
	peaks   []float64
	elapsed uint64
	rate    float32
	buffers uint64
}

type runDoneMsg struct{ err error }

type monitorModel struct {
	eng     *sim.Engine
	levels  chan levelsMsg
	meter   progress.Model
	peaks   []float64
	elapsed uint64
	rate    float32
	buffers uint64
	err     error
	done    bool
}

func newMonitorModel(eng *sim.Engine, levels chan levelsMsg) *monitorModel {
	return &monitorModel{
		eng:    eng,
		levels: levels,
		meter:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (m *monitorModel) Init() tea.Cmd {
	return m.waitForLevels
}

func (m *monitorModel) waitForLevels() tea.Msg {
	return <-m.levels
}

func (m *monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.eng.RequestStop()
			return m, tea.Quit
		}

	case levelsMsg:
		m.peaks = msg.peaks
		m.elapsed = msg.elapsed
		m.rate = msg.rate
		m.buffers = msg.buffers
		return m, m.waitForLevels

	case runDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.meter.Width = msg.Width - 24
		if m.meter.Width > 60 {
			m.meter.Width = 60
		}
	}

	return m, nil
}

func (m *monitorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bela monitor"))
	b.WriteString("\n\n")

	if len(m.peaks) == 0 {
		b.WriteString("Waiting for the first buffer...\n")
	}

	for c, peak := range m.peaks {
		b.WriteString(channelStyle.Render(fmt.Sprintf("out %d ", c)))
		b.WriteString(m.meter.ViewAs(peak))
		b.WriteString(fmt.Sprintf(" %6.1f dB", toDB(peak)))
		b.WriteString("\n")
	}

	if m.rate > 0 {
		seconds := float64(m.elapsed) / float64(m.rate)
		b.WriteString("\n")
		b.WriteString(statStyle.Render(
			fmt.Sprintf("%d buffers • %.2f s", m.buffers, seconds)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q quit"))
	return b.String()
}

func toDB(peak float64) float64 {
	if peak <= 0 {
		return -120
	}
	db := 20 * math.Log10(peak)
	if db < -120 {
		return -120
	}
	return db
}

func runInteractive(configFile string, ctor bela.Constructor, opts []sim.Option) error {
	levels := make(chan levelsMsg, 1)
	var buffers uint64

	sink := func(d *engine.BufferDescriptor) {
		buffers++
		peaks := make([]float64, d.AudioOutChannels)
		for f := 0; f < d.AudioFrames; f++ {
			for c := 0; c < d.AudioOutChannels; c++ {
				v := math.Abs(float64(d.AudioOut[f*d.AudioOutChannels+c]))
				if v > peaks[c] {
					peaks[c] = v
				}
			}
		}
		select {
		case levels <- levelsMsg{
			peaks:   peaks,
			elapsed: d.AudioFramesElapsed,
			rate:    d.AudioSampleRate,
			buffers: buffers,
		}:
		default:
		}
	}

	eng := sim.New(append(opts, sim.WithOutputSink(sink))...)
	b := bela.New(ctor).Engine(eng)
	if configFile != "" {
		if err := applyConfigFile(b, configFile); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	p := tea.NewProgram(newMonitorModel(eng, levels), tea.WithAltScreen())
	runErr := make(chan error, 1)
	go func() {
		err := b.Run()
		runErr <- err
		p.Send(runDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		eng.RequestStop()
		<-runErr
		return err
	}
	eng.RequestStop()
	return <-runErr
}
