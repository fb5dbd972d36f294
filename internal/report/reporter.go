// Package report renders run progress and the final ledger for humans. It
// is pure presentation: it consumes status records and never influences
// ordering or failure semantics.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vk/seedweave/internal/executor"
	"github.com/vk/seedweave/internal/registry"
	"github.com/vk/seedweave/internal/seeder"
)

var (
	styleCompleted = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	styleFailed    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	styleSkipped   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	stylePending   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	styleRunning   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	styleDetail    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
)

// Reporter writes human-oriented progress and summary lines.
type Reporter struct {
	out   io.Writer
	plain bool
}

// New creates a reporter writing to out. plain disables all styling, for
// non-TTY output and stable test assertions.
func New(out io.Writer, plain bool) *Reporter {
	return &Reporter{out: out, plain: plain}
}

func (r *Reporter) render(style lipgloss.Style, s string) string {
	if r.plain {
		return s
	}
	return style.Render(s)
}

func (r *Reporter) statusLabel(s seeder.Status) string {
	label := fmt.Sprintf("%-9s", s.String())
	switch s {
	case seeder.StatusCompleted:
		return r.render(styleCompleted, label)
	case seeder.StatusFailed:
		return r.render(styleFailed, label)
	case seeder.StatusSkipped:
		return r.render(styleSkipped, label)
	case seeder.StatusRunning:
		return r.render(styleRunning, label)
	default:
		return r.render(stylePending, label)
	}
}

// Order prints the resolved execution order without executing anything
// (the --dry-run view).
func (r *Reporter) Order(order []string, reg *registry.Registry) {
	fmt.Fprintf(r.out, "Execution order (%d seeders):\n", len(order))
	for i, name := range order {
		line := fmt.Sprintf("%3d. %s", i+1, name)
		if def, ok := reg.Lookup(name); ok && len(def.DependsOn) > 0 {
			line += r.render(styleDetail, fmt.Sprintf("  (after: %s)", strings.Join(def.DependsOn, ", ")))
		}
		fmt.Fprintln(r.out, line)
	}
}

// Ledger prints one line per seeder result plus a run summary.
func (r *Reporter) Ledger(l *seeder.Ledger) {
	for i := range l.Results {
		res := &l.Results[i]
		line := fmt.Sprintf("%s %s", r.statusLabel(res.Status), res.Name)
		if res.Duration > 0 {
			line += r.render(styleDetail, fmt.Sprintf("  %s", res.Duration.Round(time.Millisecond)))
		}
		fmt.Fprintln(r.out, line)
		if res.Error != nil {
			fmt.Fprintf(r.out, "          %s\n", r.render(styleFailed, "└─ "+res.Error.Error()))
		}
	}
	r.summary(l)
}

func (r *Reporter) summary(l *seeder.Ledger) {
	counts := l.Counts()
	var parts []string
	for _, s := range []seeder.Status{
		seeder.StatusCompleted, seeder.StatusFailed, seeder.StatusSkipped, seeder.StatusPending,
	} {
		if counts[s] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[s], s))
		}
	}
	verdict := r.render(styleCompleted, "OK")
	if !l.Success() {
		verdict = r.render(styleFailed, "FAILED")
	}
	fmt.Fprintf(r.out, "\nrun %s: %s — %s\n", l.RunID, strings.Join(parts, ", "), verdict)
}

// Resolution prints a structural failure (missing or circular dependency)
// that aborted the run before any seeder executed.
func (r *Reporter) Resolution(err error) {
	fmt.Fprintf(r.out, "%s %s\n", r.render(styleFailed, "resolution failed:"), err)
}

// Hooks returns engine hooks that print progress lines as seeders start,
// finish, and get skipped.
func (r *Reporter) Hooks() executor.Hooks {
	return executor.Hooks{
		OnUnitStart: func(name string, index, total int, description string) {
			line := fmt.Sprintf("%s [%d/%d] %s", r.render(styleRunning, "▶"), index, total, name)
			if description != "" {
				line += r.render(styleDetail, " — "+description)
			}
			fmt.Fprintln(r.out, line)
		},
		OnUnitEnd: func(duration time.Duration, success bool) {
			if success {
				fmt.Fprintf(r.out, "  %s in %s\n", r.render(styleCompleted, "done"), duration.Round(time.Millisecond))
				return
			}
			fmt.Fprintf(r.out, "  %s after %s\n", r.render(styleFailed, "failed"), duration.Round(time.Millisecond))
		},
		OnUnitSkipped: func(name string, failedDeps []string) {
			fmt.Fprintf(r.out, "%s %s (failed dependencies: %s)\n",
				r.render(styleSkipped, "↷ skipped"), name, strings.Join(failedDeps, ", "))
		},
	}
}
