// Command watchctl is a terminal UI for browsing a connected device's file
// directory: select an entry to copy its file id to the clipboard for use
// in a separate export step.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/gousb"

	"wristsync/internal/config"
	"wristsync/internal/directory"
	"wristsync/internal/transport"
	"wristsync/internal/watch"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFF00")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))
)

// fileItem adapts a directory.Entry to bubbles/list's list.Item interface.
type fileItem directory.Entry

func (i fileItem) Title() string { return fmt.Sprintf("0x%08X", i.FileID) }
func (i fileItem) Description() string {
	return fmt.Sprintf("%d bytes", i.Size)
}
func (i fileItem) FilterValue() string { return i.Title() }

type model struct {
	list   list.Model
	status string
}

func newModel(entries []directory.Entry) model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = fileItem(e)
	}
	l := list.New(items, list.NewDefaultDelegate(), 60, 20)
	l.Title = "device files"
	l.Styles.Title = titleStyle
	return model{list: l}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-4)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", "c":
			if item, ok := m.list.SelectedItem().(fileItem); ok {
				hex := fmt.Sprintf("0x%08X", item.FileID)
				if err := clipboard.WriteAll(hex); err != nil {
					m.status = errorStyle.Render("clipboard copy failed: " + err.Error())
				} else {
					m.status = statusStyle.Render("copied " + hex + " to clipboard")
				}
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.list.View() + "\n" + m.status + "\nenter/c: copy file id   q: quit\n"
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	t := transport.NewHIDTransport(gousb.ID(cfg.VendorID), gousb.ID(cfg.ProductID), 256, 256)
	w, err := watch.Connect(t)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer w.Close()

	entries, err := w.ListFiles()
	if err != nil {
		log.Fatalf("list files: %v", err)
	}

	p := tea.NewProgram(newModel(entries))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
