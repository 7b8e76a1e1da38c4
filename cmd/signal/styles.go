package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-signals/internal/engine"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/shopspring/decimal"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for secondary text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	// Signal type styles.
	BuyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	SellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	HoldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// TableStyle frames an evaluation.
	TableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// FormatSignalType renders a signal type in its color, padded so columns line up.
func FormatSignalType(signalType types.SignalType) string {
	label := fmt.Sprintf("%-4s", signalType)

	switch signalType {
	case types.SignalTypeBuy:
		return BuyStyle.Render(label)
	case types.SignalTypeSell:
		return SellStyle.Render(label)
	default:
		return HoldStyle.Render(label)
	}
}

// FormatPrice formats a value with a fixed number of decimal places.
func FormatPrice(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places)
}

// FormatRawValues renders raw indicator values as sorted key=value pairs.
func FormatRawValues(raw map[string]float64) string {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+FormatPrice(raw[key], 4))
	}

	return strings.Join(parts, " ")
}

// RenderSignalLine renders one signal on a single line, used by scan.
func RenderSignalLine(signal types.Signal) string {
	return fmt.Sprintf("%s  %-20s %s  %s",
		signal.Time.Format("2006-01-02 15:04:05"),
		signal.Strategy,
		FormatSignalType(signal.Type),
		HelpStyle.Render(signal.Reason))
}

// RenderEvaluation renders an evaluation as a framed table.
func RenderEvaluation(evaluation engine.Evaluation) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("%s @ %s", evaluation.Symbol, evaluation.Time.Format("2006-01-02 15:04:05"))))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("evaluation " + evaluation.ID))
	b.WriteString("\n\n")

	for _, signal := range evaluation.Signals {
		fmt.Fprintf(&b, "%-20s %s  %s\n", signal.Strategy, FormatSignalType(signal.Type), signal.Reason)
		fmt.Fprintf(&b, "%-20s %s\n", "", HelpStyle.Render(FormatRawValues(signal.RawValue)))
	}

	names := make([]types.StrategyType, 0, len(evaluation.Errors))
	for name := range evaluation.Errors {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintf(&b, "%-20s %s\n", name, ErrorStyle.Render(evaluation.Errors[name].Error()))
	}

	return TableStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderSummary renders per-strategy signal counts of a scan.
func RenderSummary(symbol string, summary engine.ScanSummary) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("%s: %d bars scanned", symbol, summary.Bars)))
	b.WriteString("\n\n")

	names := make([]types.StrategyType, 0, len(summary.Signals))
	for name := range summary.Signals {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		counts := summary.Signals[name]
		fmt.Fprintf(&b, "%-20s %s %-6d %s %-6d %s %d\n", name,
			FormatSignalType(types.SignalTypeBuy), counts[types.SignalTypeBuy],
			FormatSignalType(types.SignalTypeSell), counts[types.SignalTypeSell],
			FormatSignalType(types.SignalTypeHold), counts[types.SignalTypeHold])
	}

	if summary.Errors > 0 {
		fmt.Fprintf(&b, "%s\n", ErrorStyle.Render(fmt.Sprintf("%d evaluations failed", summary.Errors)))
	}

	return TableStyle.Render(strings.TrimRight(b.String(), "\n"))
}
