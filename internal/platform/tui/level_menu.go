package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/levels"
)

// CampaignSelection holds the campaign setup chosen by the user.
type CampaignSelection struct {
	Level      string // Starting level number; empty = first level
	Difficulty config.DifficultyPreset
}

// CampaignMenuModel lets users pick a starting level and difficulty
// before a campaign run.
type CampaignMenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	pack          []*levels.Level
	difficulty    config.DifficultyPreset
	selection     CampaignSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewCampaignMenuModel creates a new campaign setup model over the
// given level pack. An empty or unknown preset starts at normal.
func NewCampaignMenuModel(width, height int, pack []*levels.Level, preset config.DifficultyPreset) CampaignMenuModel {
	if preset == "" || !config.ValidPreset(preset) {
		preset = config.DifficultyNormal
	}
	return CampaignMenuModel{
		cursor:     0,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		pack:       pack,
		difficulty: preset,
		choosing:   true,
	}
}

// Init initializes the model.
func (m CampaignMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CampaignMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m CampaignMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleSetupKey(action)
}

func (m CampaignMenuModel) handleSetupKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Start, Select Level, Difficulty
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Start from the first level
			m.choosing = false
			m.selection = CampaignSelection{Difficulty: m.difficulty}
			return m, tea.Quit
		case 1: // Select Level
			m.inLevelSelect = true
			m.levelCursor = 0
		case 2: // Cycle difficulty
			m.difficulty = nextDifficulty(m.difficulty)
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m CampaignMenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.pack)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if len(m.pack) > 0 {
			m.choosing = false
			m.selection = CampaignSelection{
				Level:      strconv.Itoa(m.pack[m.levelCursor].Number),
				Difficulty: m.difficulty,
			}
			return m, tea.Quit
		}
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// nextDifficulty cycles easy -> normal -> hard -> easy.
func nextDifficulty(d config.DifficultyPreset) config.DifficultyPreset {
	switch d {
	case config.DifficultyEasy:
		return config.DifficultyNormal
	case config.DifficultyNormal:
		return config.DifficultyHard
	default:
		return config.DifficultyEasy
	}
}

// View renders the setup or level selection screen.
func (m CampaignMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewSetup()
}

func (m CampaignMenuModel) viewSetup() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C A M P A I G N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Set up your run:", m.width))
	b.WriteString("\n\n")

	options := []string{
		fmt.Sprintf("Start (%d levels)", len(m.pack)),
		"Select Level...",
		fmt.Sprintf("Difficulty: %s", m.difficulty),
	}

	for i, option := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, option), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m CampaignMenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.pack {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, lvl.Number, lvl.Name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m CampaignMenuModel) Selected() *CampaignSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m CampaignMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CampaignMenuModel) WantsBack() bool {
	return m.back
}

// RunCampaignSelector runs the campaign setup screen and returns the
// selection, or nil if the user backed out.
func RunCampaignSelector(cfg core.RuntimeConfig, pack []*levels.Level, preset config.DifficultyPreset) (*CampaignSelection, core.RuntimeConfig, error) {
	model := NewCampaignMenuModel(cfg.ScreenW, cfg.ScreenH, pack, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(CampaignMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
