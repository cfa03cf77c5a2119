package summary

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type Run struct {
	URL   string
	Stats domain.RunStats
	Err   error
}

const rateBarWidth = 20

func renderRun(run Run, s styles) string {
	stats := run.Stats
	lines := []string{
		s.title.Render("Poll Session Summary"),
		s.header.Render(run.URL),
	}

	rows := [][2]string{
		{"duration", formatDuration(stats.Duration())},
		{"checks", fmt.Sprintf("%d", stats.Iterations)},
		{"active checks", fmt.Sprintf("%d", stats.ActiveChecks)},
		{"polls seen", fmt.Sprintf("%d", stats.PollsSeen)},
		{"polls answered", fmt.Sprintf("%d", stats.PollsAnswered)},
		{"answers", fmt.Sprintf("%d", stats.Answers)},
	}
	if stats.LastChoice != "" {
		rows = append(rows, [2]string{"last choice", stats.LastChoice})
	}

	body := make([]string, 0, len(rows)+3)
	for _, row := range rows {
		body = append(body, lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(row[0]+":"), s.value.Render(row[1])))
	}
	if stats.PollsSeen > 0 {
		rate := float64(stats.PollsAnswered) / float64(stats.PollsSeen)
		body = append(body, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render("answer rate:"),
			renderBar(rate, rateBarWidth, s),
			" ",
			s.value.Render(fmt.Sprintf("%3.0f%%", rate*100)),
		))
	}
	if stats.ClickFailures > 0 {
		body = append(body, s.warning.Render(fmt.Sprintf("%d click(s) did not register", stats.ClickFailures)))
	}
	if stats.QueryFailures > 0 {
		body = append(body, s.warning.Render(fmt.Sprintf("%d page check(s) failed", stats.QueryFailures)))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, body...)))

	if run.Err != nil {
		lines = append(lines, s.section.Render(s.warning.Render("stopped: "+run.Err.Error())))
	} else {
		lines = append(lines, s.section.Render(s.good.Render("stopped cleanly")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfiles(profiles []domain.Profile, s styles) string {
	lines := []string{
		s.title.Render("Profiles"),
		s.header.Render(fmt.Sprintf("profiles: %d", len(profiles))),
	}

	if len(profiles) == 0 {
		lines = append(lines, s.empty.Render("No profiles saved. Add one with `webclicker profile add`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, profile := range profiles {
		lines = append(lines, s.section.Render(renderProfile(profile, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfile(profile domain.Profile, s styles) string {
	interval := "default"
	if profile.Interval > 0 {
		interval = profile.Interval.String()
	}

	login := "none"
	if profile.Username != "" {
		login = profile.Username
		if profile.PasswordRef == "" {
			login += " (no password stored)"
		}
	}

	parts := []string{
		s.profile.Render(string(profile.Name)),
		lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("url:"), s.value.Render(profile.URL)),
		lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("interval:"), s.value.Render(interval)),
		lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("headless:"), s.value.Render(fmt.Sprintf("%t", profile.Headless))),
		lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render("login:"), s.value.Render(login)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderBar(fraction float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clamp(fraction)))
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}
