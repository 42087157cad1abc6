package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NOTE: https://github.com/charmbracelet/bubbletea/blob/main/examples/progress-download/
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Render

type copyProgressMsg float64
type copyErrMsg struct{ err error }

// copyWriter streams a source file into its destination while reporting the
// copied fraction to the progress model.
type copyWriter struct {
	total      int64
	copied     int64
	file       *os.File
	reader     io.Reader
	onProgress func(float64)
}

func (cw *copyWriter) Start(p *tea.Program) {
	// TeeReader calls cw.Write() for every chunk that moves
	_, err := io.Copy(cw.file, io.TeeReader(cw.reader, cw))
	if err != nil {
		p.Send(copyErrMsg{err})
		return
	}
	p.Send(copyProgressMsg(1.0))
}

func (cw *copyWriter) Write(b []byte) (int, error) {
	cw.copied += int64(len(b))
	if cw.total > 0 && cw.onProgress != nil {
		cw.onProgress(float64(cw.copied) / float64(cw.total))
	}
	return len(b), nil
}

type copyModel struct {
	name     string
	progress progress.Model
	done     bool
	err      error
}

func finalPause() tea.Cmd {
	return tea.Tick(time.Millisecond*250, func(_ time.Time) tea.Msg {
		return nil
	})
}

func (m copyModel) Init() tea.Cmd {
	return nil
}

func (m copyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Keypresses must not interrupt a copy in flight; quitting early
		// would truncate the destination file.
		if m.done {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 2*2 - 4
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		return m, nil

	case copyErrMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case copyProgressMsg:
		var cmds []tea.Cmd

		if msg >= 1.0 {
			m.done = true
			cmds = append(cmds, tea.Sequence(finalPause(), tea.Quit))
		}

		cmds = append(cmds, m.progress.SetPercent(float64(msg)))
		return m, tea.Batch(cmds...)

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	default:
		return m, nil
	}
}

func (m copyModel) View() string {
	if m.err != nil {
		return "Error copying: " + m.err.Error() + "\n"
	}

	pad := strings.Repeat(" ", 2)
	return "\n" +
		pad + m.progress.View() + "\n\n" +
		pad + helpStyle("Copying "+m.name)
}

// copyWithProgress is copyFile with a progress bar. The renderer DLLs run to
// tens of megabytes, so backup and restore copies are worth showing.
func copyWithProgress(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close() // nolint:errcheck

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}

	cw := &copyWriter{
		total:  info.Size(),
		file:   destination,
		reader: source,
	}
	m := copyModel{
		name:     filepath.Base(dst),
		progress: progress.New(progress.WithDefaultGradient()),
	}
	p := tea.NewProgram(m)
	cw.onProgress = func(ratio float64) {
		p.Send(copyProgressMsg(ratio))
	}
	go cw.Start(p)

	final, err := p.Run()
	if err != nil {
		destination.Close() // nolint:errcheck
		return err
	}
	if err := destination.Close(); err != nil {
		return err
	}
	if fm, ok := final.(copyModel); ok && fm.err != nil {
		return fm.err
	}
	if cw.copied != cw.total {
		return fmt.Errorf("copy of %s stopped at %d of %d bytes", src, cw.copied, cw.total)
	}
	if err := os.Chmod(dst, info.Mode()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
