// Package report provides formatted output utilities for CLI results.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/jonathan/cv-tailor/internal/scoring"
	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxDetailsToShow is the default number of detail lines per stage
	maxDetailsToShow = 5
)

// Printer handles formatted result output
type Printer struct {
	out       io.Writer
	useColors bool
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer, useColors bool) *Printer {
	return &Printer{out: out, useColors: useColors}
}

// colorFuncs returns red/green/yellow sprint functions, or plain
// passthroughs when colors are disabled.
func (p *Printer) colorFuncs() (red, green, yellow func(...any) string) {
	if p.useColors {
		return color.New(color.FgRed).SprintFunc(),
			color.New(color.FgGreen).SprintFunc(),
			color.New(color.FgYellow).SprintFunc()
	}
	return fmt.Sprint, fmt.Sprint, fmt.Sprint
}

// formatDelta renders a score delta with a sign and direction marker.
func (p *Printer) formatDelta(delta float64) string {
	red, green, yellow := p.colorFuncs()
	switch {
	case delta > 0:
		return green(fmt.Sprintf("+%.0f ▲", delta))
	case delta < 0:
		return red(fmt.Sprintf("%.0f ▼", delta))
	default:
		return yellow("0")
	}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs the stage-by-stage breakdown for one text unit.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) error {
	if result == nil {
		return nil
	}

	table := tablewriter.NewWriter(p.out)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Stage", "Score", "Details"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, stage := range types.Stages {
		stageResult := result.StageResultFor(stage)
		details := stageResult.Details
		if len(details) > maxDetailsToShow {
			details = details[:maxDetailsToShow]
		}
		data = append(data, []string{
			stage.DisplayName(),
			fmt.Sprintf("%.0f", stageResult.Score),
			strings.Join(details, "; "),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.out, "Total score: %.0f\n", result.TotalScore)
	return err
}

// PrintDecision outputs one arbitration outcome, including every
// rejection reason when the original was kept.
func (p *Printer) PrintDecision(decision *types.ArbiterDecision) {
	if decision == nil {
		return
	}
	red, green, _ := p.colorFuncs()

	var sb strings.Builder
	winner := green(string(decision.Winner))
	if decision.Winner == types.WinnerOriginal {
		winner = red(string(decision.Winner))
	}
	sb.WriteString(fmt.Sprintf("Winner:   %s\n", winner))
	sb.WriteString(fmt.Sprintf("Original: %.0f\n", decision.OriginalAnalysis.TotalScore))
	sb.WriteString(fmt.Sprintf("Tailored: %.0f\n", decision.TailoredAnalysis.TotalScore))
	sb.WriteString(fmt.Sprintf("Delta:    %+.0f\n", decision.ScoreDelta))

	if len(decision.RejectionReasons) > 0 {
		sb.WriteString("\nRejection reasons:\n")
		for _, reason := range decision.RejectionReasons {
			if reason.Detail != "" {
				sb.WriteString(fmt.Sprintf("  • %s: %s\n", reason.StageName, reason.Detail))
				continue
			}
			sb.WriteString(fmt.Sprintf("  • %s: %.0f → %.0f (-%.0f)\n",
				reason.StageName, reason.OriginalScore, reason.TailoredScore, reason.Drop))
		}
	}

	p.printBox("Arbitration", sb.String())
}

// PrintBatch outputs the per-unit decision table and the batch totals.
func (p *Printer) PrintBatch(result *types.ArbiterResult) error {
	if result == nil {
		return nil
	}

	table := tablewriter.NewWriter(p.out)
	defer func() { _ = table.Close() }()

	table.Header([]string{"#", "Winner", "Original", "Tailored", "Delta", "Text"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, decision := range result.Decisions {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			string(decision.Winner),
			fmt.Sprintf("%.0f", decision.OriginalAnalysis.TotalScore),
			fmt.Sprintf("%.0f", decision.TailoredAnalysis.TotalScore),
			p.formatDelta(decision.ScoreDelta),
			truncateText(decision.Bullet, 48),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	preserved := "yes"
	if !result.MethodologyPreserved {
		preserved = "no"
	}
	_, err := fmt.Fprintf(p.out, "Batch total: %.0f → %.0f, non-regression held: %s\n",
		result.OriginalTotalScore, result.OptimisedTotalScore, preserved)
	return err
}

// PrintDocument outputs the full document-tailoring result: section
// decisions, document scores before and after, and the merged
// competency indicators.
func (p *Printer) PrintDocument(result *types.DocumentResult) error {
	if result == nil {
		return nil
	}

	table := tablewriter.NewWriter(p.out)
	table.Header([]string{"Section", "Winner", "Original", "Tailored", "Delta"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, section := range result.Sections {
		data = append(data, []string{
			section.SectionName,
			string(section.Decision.Winner),
			fmt.Sprintf("%.0f", section.Decision.OriginalAnalysis.TotalScore),
			fmt.Sprintf("%.0f", section.Decision.TailoredAnalysis.TotalScore),
			p.formatDelta(section.Decision.ScoreDelta),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_ = table.Close()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.1f → %.1f\n", result.OriginalScore.Overall, result.OptimisedScore.Overall))
	sb.WriteString(fmt.Sprintf("Core:       %.1f → %.1f\n", result.OriginalScore.Core, result.OptimisedScore.Core))
	sb.WriteString(fmt.Sprintf("Structural: %.1f → %.1f\n", result.OriginalScore.StructuralFormat, result.OptimisedScore.StructuralFormat))
	if result.OriginalScore.KeywordMatch > 0 || result.OptimisedScore.KeywordMatch > 0 {
		sb.WriteString(fmt.Sprintf("Keywords:   %.1f → %.1f\n", result.OriginalScore.KeywordMatch, result.OptimisedScore.KeywordMatch))
	} else {
		sb.WriteString("Keywords:   n/a (no job posting)\n")
	}
	p.printBox("Document score", sb.String())

	return p.printIndicators(result.Indicators)
}

// printIndicators renders the merged competency profile.
func (p *Printer) printIndicators(set types.IndicatorSet) error {
	if len(set.Entries) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(p.out)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Dimension", "Score", "Evidence"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, entry := range set.Entries {
		evidence := entry.Evidence
		if evidence == "" {
			evidence = entry.Suggestion
		}
		data = append(data, []string{
			entry.Name,
			fmt.Sprintf("%.0f/10", entry.Score),
			truncateText(evidence, 48),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.out, "Average: %.1f/10\n", set.Average())
	return err
}

// PrintProfiles lists the registered weight profiles and their dimensions.
func (p *Printer) PrintProfiles() error {
	table := tablewriter.NewWriter(p.out)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Profile", "Dimension", "Weight"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, name := range scoring.ProfileNames() {
		profile, err := scoring.Profile(name)
		if err != nil {
			return err
		}
		for _, dim := range profile.Dimensions {
			data = append(data, []string{name, dim.ID, fmt.Sprintf("%.2f", dim.Weight)})
		}
		if profile.Fallback != nil {
			for _, dim := range profile.Fallback.Dimensions {
				data = append(data, []string{name + " (fallback)", dim.ID, fmt.Sprintf("%.2f", dim.Weight)})
			}
		}
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// truncateText shortens text for table cells.
func truncateText(text string, limit int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if len(text) <= limit {
		return text
	}
	return text[:limit-3] + "..."
}
