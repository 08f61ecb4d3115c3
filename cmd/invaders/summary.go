package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/sim"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Summary describes one headless session.
type Summary struct {
	Seed       uint64
	Outcome    sim.Outcome
	Score      int
	Enemies    int
	Remaining  int
	EnemyShots int
	KeyPresses int
	GameTime   time.Duration
	WallTime   time.Duration
	Activities []sched.ActivityStats
}

// Render formats the summary for a terminal.
func (s *Summary) Render() string {
	outcome := s.Outcome.String()
	switch s.Outcome {
	case sim.Won:
		outcome = wonStyle.Render(s.Outcome.Message())
	case sim.Lost:
		outcome = lostStyle.Render(s.Outcome.Message())
	}

	rows := [][2]string{
		{"Outcome", outcome},
		{"Score", fmt.Sprintf("%d", s.Score)},
		{"Enemies", fmt.Sprintf("%d destroyed of %d", s.Enemies-s.Remaining, s.Enemies)},
		{"Enemy shots", fmt.Sprintf("%d", s.EnemyShots)},
		{"Key presses", fmt.Sprintf("%d", s.KeyPresses)},
		{"Game time", s.GameTime.Truncate(time.Millisecond).String()},
		{"Wall time", s.WallTime.Truncate(time.Microsecond).String()},
		{"Seed", fmt.Sprintf("%d", s.Seed)},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Invaders simulation"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}

	if len(s.Activities) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Activities"))
		b.WriteString("\n")
		for _, a := range s.Activities {
			fmt.Fprintf(&b, "%s%d runs, avg %s, max %s\n",
				labelStyle.Render(a.Name), a.ExecutionCount, a.AvgDuration, a.MaxDuration)
		}
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
