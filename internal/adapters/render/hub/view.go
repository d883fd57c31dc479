package hub

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/forcekit/hubkit/internal/application"
	"github.com/forcekit/hubkit/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

// Render draws the hub auth status: resolved strategy, hub identity
// and which credentials are present. Secret values are never shown.
func Render(report application.Report, opts RenderOptions) string {
	return renderView(report, opts, newStyles())
}

func renderView(report application.Report, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Hub Authentication"),
		line(s, "strategy", s.strategy.Render(strategyLabel(report.Strategy))),
	}

	if report.HubUsername != "" {
		lines = append(lines, line(s, "hub username", s.value.Render(report.HubUsername)))
	}
	if report.Instance != "" {
		lines = append(lines, line(s, "instance", s.value.Render(report.Instance)))
	}

	lines = append(lines,
		line(s, "jwt key", presenceLabel(report.HasJWTKey, s)),
		line(s, "auth url", presenceLabel(report.HasAuthURL, s)),
	)

	if report.LastTransfer != nil {
		lines = append(lines, line(s, "last transfer", s.meta.Render(transferLabel(*report.LastTransfer, opts.Now))))
	}

	if report.Strategy == domain.StrategyNone {
		lines = append(lines, s.warning.Render("no hub credentials configured"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func line(s styles, label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label+": "), value)
}

func strategyLabel(strategy domain.AuthStrategy) string {
	switch strategy {
	case domain.StrategyJWT:
		return "jwt"
	case domain.StrategyAuthURL:
		return "auth url"
	case domain.StrategyReuse:
		return "reuse existing hub"
	default:
		return "none"
	}
}

func presenceLabel(present bool, s styles) string {
	if present {
		return s.present.Render("present")
	}
	return s.missing.Render("not set")
}

func transferLabel(record domain.TransferRecord, now time.Time) string {
	label := strategyLabel(record.Method)
	if record.CapturedAt.IsZero() {
		return label
	}
	if now.IsZero() {
		return fmt.Sprintf("%s at %s", label, record.CapturedAt.Format(time.RFC3339))
	}

	age := now.Sub(record.CapturedAt)
	if age < time.Minute {
		return fmt.Sprintf("%s just now", label)
	}
	if age < time.Hour {
		return fmt.Sprintf("%s %dm ago", label, int(age.Minutes()))
	}
	if age < 24*time.Hour {
		return fmt.Sprintf("%s %dh ago", label, int(age.Hours()))
	}
	return fmt.Sprintf("%s at %s", label, record.CapturedAt.Format("15:04 on 02 Jan"))
}
