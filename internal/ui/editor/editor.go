// Package editor provides the interactive description editor TUI.
//
// The editor owns the raw text buffer and cursor, and on every edit feeds
// both to the annotation engine (for the live preview) and the autocomplete
// controller (for the hashtag dropdown). It is the "host editing surface"
// the engine packages are written against.
package editor

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowtasks/flowtext/internal/ui/pretty"
	"github.com/flowtasks/flowtext/pkg/attach"
	"github.com/flowtasks/flowtext/pkg/render"
	"github.com/flowtasks/flowtext/pkg/suggest"
	"github.com/flowtasks/flowtext/pkg/tags"
)

// Options configures a new editor model.
type Options struct {
	// InitialText seeds the buffer.
	InitialText string

	// Source supplies hashtag suggestions.
	Source tags.Source

	// Uploader stores pasted images. Nil disables paste.
	Uploader attach.Uploader

	// InboxDir is scanned for the newest file on ctrl+p.
	InboxDir string

	// Styles renders the preview and dropdown.
	Styles *pretty.Styles

	// OnSave receives the buffer when the user saves. Nil disables saving.
	OnSave func(text string) error
}

// uploadDoneMsg delivers the outcome of a background upload.
type uploadDoneMsg attach.Result

// Model is the bubbletea model for the editor.
type Model struct {
	text   string
	cursor int

	controller *suggest.Controller
	paster     *attach.Paster
	inbox      string
	styles     *pretty.Styles
	onSave     func(string) error

	preview viewport.Model
	status  string
	width   int
	ready   bool
}

// New creates an editor model.
func New(opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = pretty.NewStyles(true)
	}

	m := &Model{
		text:       opts.InitialText,
		cursor:     len(opts.InitialText),
		controller: suggest.NewController(opts.Source),
		inbox:      opts.InboxDir,
		styles:     styles,
		onSave:     opts.OnSave,
	}
	if opts.Uploader != nil {
		m.paster = attach.NewPaster(opts.Uploader)
	}
	return m
}

// Text returns the current buffer contents.
func (m *Model) Text() string {
	return m.text
}

// Cursor returns the current cursor offset.
func (m *Model) Cursor() int {
	return m.cursor
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		previewHeight := msg.Height / 3
		if previewHeight < 3 {
			previewHeight = 3
		}
		if !m.ready {
			m.preview = viewport.New(msg.Width, previewHeight)
			m.ready = true
		} else {
			m.preview.Width = msg.Width
			m.preview.Height = previewHeight
		}
		m.refreshPreview()
		return m, nil

	case uploadDoneMsg:
		m.text = m.paster.Finish(m.text, attach.Result(msg))
		if m.cursor > len(m.text) {
			m.cursor = len(m.text)
		}
		if msg.Err != nil {
			m.status = "upload failed"
		} else {
			m.status = "attached " + attach.Ref(msg.Index)
		}
		m.observe()
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the dropdown is open, navigation keys belong to it.
	if m.controller.Active() {
		switch msg.Type {
		case tea.KeyDown:
			m.controller.MoveDown()
			return m, nil
		case tea.KeyUp:
			m.controller.MoveUp()
			return m, nil
		case tea.KeyEnter, tea.KeyTab:
			if newText, newCursor, ok := m.controller.Commit(m.text); ok {
				m.text = newText
				m.cursor = newCursor
				m.refreshPreview()
			}
			return m, nil
		case tea.KeyEsc:
			m.controller.Cancel()
			return m, nil
		}
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.controller.Blur()
		return m, tea.Quit

	case tea.KeyCtrlS:
		if m.onSave != nil {
			if err := m.onSave(m.text); err != nil {
				m.status = "save failed: " + err.Error()
			} else {
				m.status = "saved"
			}
		}
		return m, nil

	case tea.KeyCtrlP:
		return m, m.pasteNewest()

	case tea.KeyLeft:
		if m.cursor > 0 {
			_, size := utf8.DecodeLastRuneInString(m.text[:m.cursor])
			m.cursor -= size
		}
	case tea.KeyRight:
		if m.cursor < len(m.text) {
			_, size := utf8.DecodeRuneInString(m.text[m.cursor:])
			m.cursor += size
		}
	case tea.KeyBackspace:
		if m.cursor > 0 {
			_, size := utf8.DecodeLastRuneInString(m.text[:m.cursor])
			m.text = m.text[:m.cursor-size] + m.text[m.cursor:]
			m.cursor -= size
		}
	case tea.KeyEnter:
		m.insert("\n")
	case tea.KeySpace:
		m.insert(" ")
	case tea.KeyRunes:
		m.insert(string(msg.Runes))
	default:
		return m, nil
	}

	m.observe()
	m.refreshPreview()
	return m, nil
}

func (m *Model) insert(s string) {
	m.text = m.text[:m.cursor] + s + m.text[m.cursor:]
	m.cursor += len(s)
}

// observe reports the current buffer and cursor to the autocomplete
// controller. The session lives entirely in the controller; the editor
// only routes keys while the dropdown is visible.
func (m *Model) observe() {
	m.controller.Observe(context.Background(), m.text, m.cursor)
}

func (m *Model) refreshPreview() {
	if !m.ready {
		return
	}
	m.preview.SetContent(m.styles.FormatSegments(render.Annotate(m.text)))
}

// pasteNewest attaches the most recently modified file in the inbox dir,
// inserting the pending placeholder immediately and finishing the upload
// as a background command.
func (m *Model) pasteNewest() tea.Cmd {
	if m.paster == nil || m.inbox == "" {
		m.status = "paste disabled"
		return nil
	}

	path, ok := newestFile(m.inbox)
	if !ok {
		m.status = "inbox is empty"
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		m.status = "read failed: " + err.Error()
		return nil
	}

	newText, newCursor, done, err := m.paster.Paste(
		context.Background(), m.text, m.cursor, data, mimeFor(path))
	if err != nil {
		m.status = err.Error()
		return nil
	}

	m.text = newText
	m.cursor = newCursor
	m.status = "uploading " + filepath.Base(path)
	m.refreshPreview()

	return func() tea.Msg {
		return uploadDoneMsg(<-done)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Description"))
	b.WriteByte('\n')
	b.WriteString(m.renderBuffer())
	b.WriteString("\n\n")

	if m.controller.Active() {
		s := m.controller.Session()
		b.WriteString(m.styles.FormatDropdown(s.Suggestions, s.Selected))
		b.WriteString("\n\n")
	}

	if m.ready {
		b.WriteString(m.styles.Title.Render("Preview"))
		b.WriteByte('\n')
		b.WriteString(m.preview.View())
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.Dim.Render(m.statusLine()))
	return b.String()
}

// renderBuffer shows the raw buffer with a visible cursor cell.
func (m *Model) renderBuffer() string {
	before := m.text[:m.cursor]
	after := m.text[m.cursor:]

	cursorCell := m.styles.Selected.Render(" ")
	if len(after) > 0 && after[0] != '\n' {
		_, size := utf8.DecodeRuneInString(after)
		cursorCell = m.styles.Selected.Render(after[:size])
		after = after[size:]
	}

	return before + cursorCell + after
}

func (m *Model) statusLine() string {
	help := "ctrl+s save · ctrl+p paste image · esc quit"
	if m.status == "" {
		return help
	}
	return m.status + " · " + help
}

// newestFile returns the most recently modified regular file in dir.
func newestFile(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	type candidate struct {
		path    string
		modTime int64
	}
	var files []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime().UnixNano(),
		})
	}
	if len(files) == 0 {
		return "", false
	}

	sort.Slice(files, func(i, j int) bool { return files[i].modTime > files[j].modTime })
	return files[0].path, true
}

// mimeFor guesses an image mime type from the file extension.
func mimeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
