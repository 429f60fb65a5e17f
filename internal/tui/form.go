// Package tui implements the interactive application form.
//
// It uses bubbletea, which follows The Elm Architecture: a Model holds all
// state, Update folds messages into a new model, and View renders the model
// to a string. "Generate" runs the pipeline in a tea.Cmd so the form stays
// responsive while LaTeX compiles.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/obarouni/cv-builder/internal/compiler"
	"github.com/obarouni/cv-builder/internal/pipeline"
	"github.com/obarouni/cv-builder/internal/types"
	"github.com/obarouni/cv-builder/internal/viewer"
)

// MaxSelectedProjects bounds the selection; the CV layout fits four entries.
const MaxSelectedProjects = 4

// section identifies which form control has focus.
type section int

const (
	sectionJobType section = iota
	sectionCompany
	sectionRole
	sectionLink
	sectionSummary
	sectionProjects
	sectionToggles
	sectionCoverBody
	sectionGenerate
)

// toggle indexes within the toggles row.
const (
	toggleCompile = iota
	toggleClean
	toggleOpen
	toggleRawLaTeX
	toggleCoverLetter
	toggleCoverCompile
	toggleCoverOpen
	toggleCount
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Runner executes the generation pipeline; swappable for tests.
type Runner func(ctx context.Context, opts pipeline.RunOptions) (*types.OutputBundle, error)

// Options configures the form.
type Options struct {
	Projects      []types.Project
	Warnings      []string
	JobTypes      []string
	CandidateName string
	TemplateDir   string
	JobsDir       string
	Compiler      *compiler.Compiler // carries the configured timeout and TEXINPUTS
	Opener        func(string) error // opens the job folder; swappable for tests
	Runner        Runner
}

// generateDoneMsg carries the pipeline result back into Update.
type generateDoneMsg struct {
	bundle *types.OutputBundle
	err    error
}

// Model is the form state.
type Model struct {
	opts Options

	jobTypeIdx int

	company textinput.Model
	role    textinput.Model
	link    textinput.Model

	summary   textarea.Model
	coverBody textarea.Model

	projectCursor int
	selectedIDs   []string // selection order matters; it is the include order

	toggles      [toggleCount]bool
	toggleCursor int

	focus      section
	generating bool
	status     string
	errText    string
	bundle     *types.OutputBundle
	quitting   bool
}

// New builds the form model.
func New(opts Options) Model {
	if len(opts.JobTypes) == 0 {
		opts.JobTypes = []string{"EE", "Data"}
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.Run
	}
	if opts.Opener == nil {
		opts.Opener = viewer.Open
	}

	company := textinput.New()
	company.Placeholder = "Acme Corp"
	company.Focus()
	role := textinput.New()
	role.Placeholder = "Data Engineer"
	link := textinput.New()
	link.Placeholder = "https://..."

	summary := textarea.New()
	summary.Placeholder = "Professional summary..."
	summary.SetHeight(5)
	coverBody := textarea.New()
	coverBody.Placeholder = "Cover letter body..."
	coverBody.SetHeight(6)

	m := Model{
		opts:      opts,
		company:   company,
		role:      role,
		link:      link,
		summary:   summary,
		coverBody: coverBody,
		focus:     sectionCompany,
	}
	m.toggles[toggleCompile] = true
	m.toggles[toggleClean] = true
	m.toggles[toggleOpen] = true
	m.toggles[toggleCoverCompile] = true
	m.toggles[toggleCoverOpen] = true
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generateDoneMsg:
		m.generating = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.status = ""
		} else {
			m.errText = ""
			m.bundle = msg.bundle
			m.status = fmt.Sprintf("Documents created in %s", msg.bundle.OutputDir)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.setFocus(m.nextSection(1))
			return m, nil
		case "shift+tab":
			m.setFocus(m.nextSection(-1))
			return m, nil
		case "ctrl+g":
			return m.startGenerate()
		case "ctrl+o":
			m.openJobFolder()
			return m, nil
		}
		return m.updateFocused(msg)
	}

	return m, nil
}

// nextSection advances focus, skipping the cover body when the letter is off.
func (m *Model) nextSection(delta int) section {
	next := m.focus
	for {
		next = section((int(next) + delta + int(sectionGenerate) + 1) % (int(sectionGenerate) + 1))
		if next == sectionCoverBody && !m.toggles[toggleCoverLetter] {
			continue
		}
		return next
	}
}

func (m *Model) setFocus(next section) {
	m.focus = next
	m.company.Blur()
	m.role.Blur()
	m.link.Blur()
	m.summary.Blur()
	m.coverBody.Blur()

	switch next {
	case sectionCompany:
		m.company.Focus()
	case sectionRole:
		m.role.Focus()
	case sectionLink:
		m.link.Focus()
	case sectionSummary:
		m.summary.Focus()
	case sectionCoverBody:
		m.coverBody.Focus()
	}
}

// updateFocused routes a key to the control that has focus.
func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case sectionJobType:
		switch msg.String() {
		case "left", "h":
			m.jobTypeIdx = (m.jobTypeIdx + len(m.opts.JobTypes) - 1) % len(m.opts.JobTypes)
		case "right", "l", " ":
			m.jobTypeIdx = (m.jobTypeIdx + 1) % len(m.opts.JobTypes)
		}
	case sectionCompany:
		m.company, cmd = m.company.Update(msg)
	case sectionRole:
		m.role, cmd = m.role.Update(msg)
	case sectionLink:
		m.link, cmd = m.link.Update(msg)
	case sectionSummary:
		m.summary, cmd = m.summary.Update(msg)
	case sectionProjects:
		m.moveOrToggleProject(msg)
	case sectionToggles:
		m.moveOrFlipToggle(msg)
	case sectionCoverBody:
		m.coverBody, cmd = m.coverBody.Update(msg)
	case sectionGenerate:
		if msg.String() == "enter" {
			return m.startGenerate()
		}
	}

	return m, cmd
}

func (m *Model) moveOrToggleProject(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if m.projectCursor > 0 {
			m.projectCursor--
		}
	case "down", "j":
		if m.projectCursor < len(m.opts.Projects)-1 {
			m.projectCursor++
		}
	case " ", "enter":
		if len(m.opts.Projects) == 0 {
			return
		}
		m.toggleProject(m.opts.Projects[m.projectCursor].ID)
	}
}

// toggleProject adds or removes an ID, keeping selection order and refusing a
// fifth selection.
func (m *Model) toggleProject(id string) {
	for i, sel := range m.selectedIDs {
		if sel == id {
			m.selectedIDs = append(m.selectedIDs[:i], m.selectedIDs[i+1:]...)
			return
		}
	}
	if len(m.selectedIDs) >= MaxSelectedProjects {
		m.errText = fmt.Sprintf("at most %d projects can be selected", MaxSelectedProjects)
		return
	}
	m.errText = ""
	m.selectedIDs = append(m.selectedIDs, id)
}

func (m *Model) moveOrFlipToggle(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		if m.toggleCursor > 0 {
			m.toggleCursor--
		}
	case "right", "l":
		if m.toggleCursor < toggleCount-1 {
			m.toggleCursor++
		}
	case " ", "enter":
		m.toggles[m.toggleCursor] = !m.toggles[m.toggleCursor]
	}
}

// openJobFolder opens the output folder of the last successful run. It is a
// no-op until a run has produced one.
func (m *Model) openJobFolder() {
	if m.bundle == nil {
		return
	}
	if err := m.opts.Opener(m.bundle.OutputDir); err != nil {
		m.errText = fmt.Sprintf("could not open %s: %v", m.bundle.OutputDir, err)
	}
}

// record builds the ApplicationRecord from the current form state.
func (m *Model) record() *types.ApplicationRecord {
	return &types.ApplicationRecord{
		JobType:            m.opts.JobTypes[m.jobTypeIdx],
		Company:            strings.TrimSpace(m.company.Value()),
		Role:               strings.TrimSpace(m.role.Value()),
		JobLink:            strings.TrimSpace(m.link.Value()),
		Summary:            strings.TrimSpace(m.summary.Value()),
		RawLaTeX:           m.toggles[toggleRawLaTeX],
		ProjectIDs:         append([]string{}, m.selectedIDs...),
		IncludeCoverLetter: m.toggles[toggleCoverLetter],
		CoverLetterBody:    strings.TrimSpace(m.coverBody.Value()),
		CoverLetterCompile: m.toggles[toggleCoverCompile],
		CoverLetterOpen:    m.toggles[toggleCoverOpen],
		Compile:            m.toggles[toggleCompile],
		CleanJunk:          m.toggles[toggleClean],
		OpenPDF:            m.toggles[toggleOpen],
	}
}

func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	m.generating = true
	m.errText = ""
	m.status = "Generating..."

	opts := pipeline.RunOptions{
		Record:        m.record(),
		Projects:      m.opts.Projects,
		CandidateName: m.opts.CandidateName,
		TemplateDir:   m.opts.TemplateDir,
		JobsDir:       m.opts.JobsDir,
		Compiler:      m.opts.Compiler,
	}
	runner := m.opts.Runner

	return m, func() tea.Msg {
		bundle, err := runner(context.Background(), opts)
		return generateDoneMsg{bundle: bundle, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("CV Builder"))
	b.WriteString("\n\n")

	for _, w := range m.opts.Warnings {
		b.WriteString(errorStyle.Render("warning: "+w) + "\n")
	}
	if len(m.opts.Warnings) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.renderJobType())
	b.WriteString(m.renderField(sectionCompany, "Company", m.company.View()))
	b.WriteString(m.renderField(sectionRole, "Role Title", m.role.View()))
	b.WriteString(m.renderField(sectionLink, "Job Link", m.link.View()))
	b.WriteString(m.renderField(sectionSummary, fmt.Sprintf("Summary (%d chars)", len(m.summary.Value())), m.summary.View()))
	b.WriteString(m.renderProjects())
	b.WriteString(m.renderToggles())
	if m.toggles[toggleCoverLetter] {
		b.WriteString(m.renderField(sectionCoverBody, fmt.Sprintf("Cover Letter (%d chars)", len(m.coverBody.Value())), m.coverBody.View()))
	}
	b.WriteString(m.renderGenerate())

	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText) + "\n")
	}
	if m.status != "" {
		b.WriteString(okStyle.Render(m.status) + "\n")
	}

	help := "tab/shift+tab: move · space: toggle · ctrl+g: generate · esc: quit"
	if m.bundle != nil {
		help += " · ctrl+o: open job folder"
	}
	b.WriteString(labelStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderField(s section, label, view string) string {
	name := labelStyle.Render(label + ":")
	if m.focus == s {
		name = focusedStyle.Render(label + ":")
	}
	return fmt.Sprintf("%s\n%s\n\n", name, view)
}

func (m Model) renderJobType() string {
	label := labelStyle.Render("Job Type:")
	if m.focus == sectionJobType {
		label = focusedStyle.Render("Job Type:")
	}
	parts := make([]string, len(m.opts.JobTypes))
	for i, jt := range m.opts.JobTypes {
		if i == m.jobTypeIdx {
			parts[i] = focusedStyle.Render("[" + jt + "]")
		} else {
			parts[i] = " " + jt + " "
		}
	}
	return fmt.Sprintf("%s %s\n\n", label, strings.Join(parts, " "))
}

func (m Model) renderProjects() string {
	label := labelStyle.Render(fmt.Sprintf("Projects (%d/%d):", len(m.selectedIDs), MaxSelectedProjects))
	if m.focus == sectionProjects {
		label = focusedStyle.Render(fmt.Sprintf("Projects (%d/%d):", len(m.selectedIDs), MaxSelectedProjects))
	}

	var b strings.Builder
	b.WriteString(label + "\n")
	for i, p := range m.opts.Projects {
		cursor := "  "
		if m.focus == sectionProjects && i == m.projectCursor {
			cursor = focusedStyle.Render("> ")
		}
		mark := "[ ]"
		if order := m.selectionOrder(p.ID); order > 0 {
			mark = fmt.Sprintf("[%d]", order)
		}
		b.WriteString(fmt.Sprintf("%s%s %s - %s\n", cursor, mark, p.ID, p.Name))
	}
	if len(m.opts.Projects) == 0 {
		b.WriteString("  (no projects found)\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) selectionOrder(id string) int {
	for i, sel := range m.selectedIDs {
		if sel == id {
			return i + 1
		}
	}
	return 0
}

func (m Model) renderToggles() string {
	names := [toggleCount]string{"Compile CV", "Clean junk", "Open CV", "Raw LaTeX", "Cover letter", "Compile letter", "Open letter"}
	parts := make([]string, toggleCount)
	for i := 0; i < toggleCount; i++ {
		mark := "[ ]"
		if m.toggles[i] {
			mark = "[x]"
		}
		item := fmt.Sprintf("%s %s", mark, names[i])
		if m.focus == sectionToggles && i == m.toggleCursor {
			item = focusedStyle.Render(item)
		}
		parts[i] = item
	}
	return strings.Join(parts, "  ") + "\n\n"
}

func (m Model) renderGenerate() string {
	button := "[ Generate ]"
	if m.focus == sectionGenerate {
		button = focusedStyle.Render(button)
	}
	if m.generating {
		button = "[ Generating... ]"
	}
	return button + "\n\n"
}
