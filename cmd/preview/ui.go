package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/loader"
)

var (
	neon  = lipgloss.Color("#00ffff")
	dim   = lipgloss.Color("243")
	faint = lipgloss.Color("238")

	mutedStyle = lipgloss.NewStyle().Foreground(dim)
)

var icons = map[string]string{
	"check-circle": "✓",
	"times-circle": "✗",
	"info-circle":  "●",
}

// RenderNotification draws a notification as a filled badge in its accent
// color.
func RenderNotification(n contact.Notification) string {
	icon := icons[n.Icon]
	if icon == "" {
		icon = "●"
	}
	badge := lipgloss.NewStyle().
		Background(lipgloss.Color(n.Accent())).
		Foreground(lipgloss.Color("#0a0a1a")).
		Bold(true).
		Padding(0, 1)
	meta := mutedStyle.Render(fmt.Sprintf("dismisses after %s", n.Dismiss))
	return badge.Render(icon+" "+n.Message) + " " + meta
}

// RenderSchedule tabulates the stages with their start offsets and targets.
func RenderSchedule(stages []loader.Stage, labels []string, settle time.Duration) string {
	rows := make([][]string, len(stages))
	var offset time.Duration
	for i, st := range stages {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			st.ID,
			labels[i],
			ms(offset),
			ms(st.Duration),
			loader.FormatPercent(loader.TargetPercent(i, len(stages))),
		}
		offset += st.Duration
	}

	headerStyle := lipgloss.NewStyle().Foreground(neon).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "ID", "LABEL", "STARTS", "DURATION", "TARGET").
		Rows(rows...)

	done := loader.TotalDuration(stages, settle)
	return t.Render() + "\n" + mutedStyle.Render(fmt.Sprintf("settle %s, complete at %s", ms(settle), ms(done))) + "\n"
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
