package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/comitanigiacomo/kanso-widgets/internal/adapters/contributions"
	"github.com/comitanigiacomo/kanso-widgets/internal/adapters/render"
	"github.com/comitanigiacomo/kanso-widgets/internal/config"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/engine"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/services"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF1493"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFF"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444")).
			Padding(0, 1)
)

var errUsage = errors.New("usage")

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "kanso-widgets - terminal previews of the home-screen widgets")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  widgets heatmap <payload.json|->   Contribution grid from an aggregator, GraphQL or series payload")
	fmt.Fprintln(w, "  widgets progress [timezone]        Day, week and year progress")
	fmt.Fprintln(w, "  widgets quote [timezone]           Phrase of the day")
	fmt.Fprintln(w, "  widgets help                       Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Set WIDGET_PROFILE to a TOML file to override grid and ring settings.")
}

type cli struct {
	cfg   domain.EngineConfig
	now   func() time.Time
	stdin io.Reader
	out   io.Writer
}

func main() {
	engineCfg, err := config.LoadProfile(os.Getenv("WIDGET_PROFILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	c := &cli{cfg: engineCfg, now: time.Now, stdin: os.Stdin, out: os.Stdout}
	if err := c.run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			printHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c *cli) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	optional := func(i int) string {
		if len(args) > i {
			return args[i]
		}
		return ""
	}

	switch args[0] {
	case "heatmap":
		if len(args) < 2 {
			return errUsage
		}
		return c.heatmap(args[1])
	case "progress":
		return c.progress(optional(1))
	case "quote":
		return c.quote(optional(1))
	case "help", "-h", "--help":
		printHelp(c.out)
		return nil
	}
	return errUsage
}

func (c *cli) heatmap(path string) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(c.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	payload, err := contributions.Decode(data)
	if err != nil {
		return err
	}
	series, total, err := payload.Normalize()
	if err != nil {
		return err
	}

	hm, err := services.NewHeatmapService(nil, c.cfg).BuildHeatmapWithTotal(series, total)
	if err != nil {
		return err
	}

	term := render.NewTerminal(render.TerminalOptions{CellPitch: c.cfg.CellSize + c.cfg.CellGap})
	engine.DrawHeatmap(term, hm.Weeks, c.cfg.CellSize, c.cfg.CellGap)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("contributions", hm.Total), "  ",
		stat("streak", hm.CurrentStreak), "  ",
		stat("longest", hm.LongestStreak),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Activity (%s payload)", payload.Shape)),
		header,
		"",
		term.String(),
	)
	fmt.Fprintln(c.out, boxStyle.Render(body))
	return nil
}

func (c *cli) progress(timezone string) error {
	report, err := services.NewProgressService(c.cfg).WithClock(c.now).Snapshot(timezone)
	if err != nil {
		return err
	}

	ringTerm := render.NewTerminal(render.TerminalOptions{Ring: c.cfg.Ring})
	engine.DrawRing(ringTerm, report.YearPeriod.Ring)

	bars := make([]string, 0, 3)
	for _, p := range []struct {
		label  string
		period domain.PeriodProgress
	}{
		{"day ", report.Day},
		{"week", report.Week},
		{"year", report.YearPeriod},
	} {
		barTerm := render.NewTerminal(render.TerminalOptions{BarWidth: c.cfg.Bar.TotalWidth})
		engine.DrawBar(barTerm, p.period.Bar)
		bars = append(bars, fmt.Sprintf("%s %s %s",
			labelStyle.Render(p.label), barTerm.String(), valueStyle.Render(fmt.Sprintf("%3d%%", p.period.Percent))))
	}

	days := fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("passed"), valueStyle.Render(fmt.Sprint(report.YearDays.Passed)),
		labelStyle.Render("left"), valueStyle.Render(fmt.Sprint(report.YearDays.Remaining)))

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("%d", report.Year)),
		ringTerm.String(),
		"",
		lipgloss.JoinVertical(lipgloss.Left, bars...),
		days,
	)
	fmt.Fprintln(c.out, boxStyle.Render(body))
	return nil
}

func (c *cli) quote(timezone string) error {
	q, err := services.NewQuoteService(nil).WithClock(c.now).Today(timezone)
	if err != nil {
		return err
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Today"),
		lipgloss.NewStyle().Width(40).Render(q.Text),
		labelStyle.Render(fmt.Sprintf("%s · day %d", q.Date, q.DayOfYear)),
	)
	fmt.Fprintln(c.out, boxStyle.Render(body))
	return nil
}

func stat(label string, v int) string {
	return lipgloss.JoinVertical(lipgloss.Left, valueStyle.Render(fmt.Sprint(v)), labelStyle.Render(label))
}
