package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"kidquest/internal/engine"
	"kidquest/internal/storage"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	status     *engine.StatusResult
	badges     []engine.BadgeProgress
	challenges []engine.ChallengeStatus
	pet        *engine.PetStatusResult
	recent     []storage.Completion

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	status     *engine.StatusResult
	badges     []engine.BadgeProgress
	challenges []engine.ChallengeStatus
	pet        *engine.PetStatusResult
	recent     []storage.Completion
	err        error
}

type claimedMsg struct {
	id  string
	res *engine.ClaimResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.svc.Status(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		badges, err := m.svc.Badges(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		challenges, err := m.svc.ActiveChallenges(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		pet, err := m.svc.PetStatus(m.ctx)
		if err != nil && !errors.Is(err, engine.ErrNoPet) {
			return loadedMsg{err: err}
		}
		history, err := m.svc.History(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		recent := history
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		return loadedMsg{status: status, badges: badges, challenges: challenges, pet: pet, recent: recent}
	}
}

func (m boardModel) claimCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ClaimChallenge(m.ctx, id)
		return claimedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		m.badges = msg.badges
		m.challenges = msg.challenges
		m.pet = msg.pet
		m.recent = msg.recent
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case claimedMsg:
		if msg.err != nil {
			m.lastLog = "Claim failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Claimed %s: +%d points (total %d)", msg.id, msg.res.RewardPoints, msg.res.PointsTotal)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "c":
			// Claim the first claimable challenge.
			for _, ch := range m.challenges {
				if ch.Claimable() {
					m.lastLog = fmt.Sprintf("Claiming %s…", ch.ID)
					return m, m.claimCmd(ch.ID)
				}
			}
			m.lastLog = "Nothing to claim yet."
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.status == nil {
		return "KidQuest — loading…"
	}
	streak := fmt.Sprintf("%d day streak", m.status.DailyStreak)
	if m.status.DailyStreak == 1 {
		streak = "1 day streak"
	}
	return fmt.Sprintf("KidQuest | ⭐ %d points | 🔥 %s | %d activities done",
		m.status.Points, streak, m.status.Completions)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Badges"}
	if len(m.badges) == 0 {
		lines = append(lines, "Loading…")
	}
	for _, b := range m.badges {
		mark := "  "
		if b.Unlocked {
			mark = b.Icon + " "
		}
		lines = append(lines, fmt.Sprintf("- %s%s %s", mark, b.Name, progressBar(b.Progress, b.Requirement, 10)))
	}
	lines = append(lines, "")
	lines = append(lines, "Pet")
	if m.pet == nil {
		lines = append(lines, "(none adopted)")
	} else {
		lines = append(lines, fmt.Sprintf("%s %s (stage %d)", m.pet.Emoji(), m.pet.Species.Name, m.pet.Stage+1))
		lines = append(lines, fmt.Sprintf("happiness %s", progressBar(int(m.pet.Happiness), 100, 10)))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- c: claim challenge")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Challenges")
	if len(m.challenges) == 0 {
		out = append(out, "(none active)")
	}
	for _, ch := range m.challenges {
		state := progressBar(ch.Progress, ch.Requirement, 10)
		switch {
		case ch.Claimed:
			state = "claimed"
		case ch.Complete():
			state = "ready to claim!"
		}
		out = append(out, fmt.Sprintf("- %s %s [%s] %s", ch.Type.Icon(), ch.Title, ch.Type.Label(), state))
	}
	out = append(out, "")
	out = append(out, "Recent Activities")
	if len(m.recent) == 0 {
		out = append(out, "(nothing yet)")
	}
	for i := len(m.recent) - 1; i >= 0; i-- {
		c := m.recent[i]
		out = append(out, fmt.Sprintf("- %s (%s, %s)", c.Title, c.Category, c.CompletedAt.Format("Jan 2")))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
