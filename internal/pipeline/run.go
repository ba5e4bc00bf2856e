// Package pipeline provides the high-level orchestration for tailoring a
// whole career document: section splitting and alignment, candidate
// generation, per-section arbitration, and document-level scoring.
package pipeline

import (
	"context"
	"errors"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-tailor/internal/arbiter"
	"github.com/jonathan/cv-tailor/internal/generation"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/scoring"
	"github.com/jonathan/cv-tailor/internal/sections"
	"github.com/jonathan/cv-tailor/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Section string `json:"section,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for a document-tailoring run
type RunOptions struct {
	Document   string               // Required: the original document text
	JobText    string               // Optional: job posting text for keyword matching
	Generator  generation.Generator // Used when Candidate is empty
	Candidate  string               // Optional: a pre-generated candidate document
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message, section string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, Section: section})
	}
}

// Run tailors a document section by section. Each section's candidate
// comes either from the supplied pre-generated candidate document
// (aligned by fuzzy section name) or from the generator; a generation
// failure degrades to "no candidate" and the original section stands.
// Arbitration is pure, so sections arbitrate concurrently.
func Run(ctx context.Context, opts RunOptions) (*types.DocumentResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	originalSections := sections.Split(opts.Document)
	emitProgress(&opts, "split", "split document into sections", "")
	logger.Info("document split", zap.Int("sections", len(originalSections)))

	pairs, err := buildPairs(ctx, &opts, logger, originalSections)
	if err != nil {
		return nil, err
	}

	decisions := make([]types.DocumentDecision, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pair := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			decisions[i] = types.DocumentDecision{
				SectionName: pair.Name,
				Decision:    arbitratePair(pair),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range decisions {
		emitProgress(&opts, "arbitrate", string(decisions[i].Decision.Winner)+" wins", decisions[i].SectionName)
	}

	final := assembleDocument(decisions)
	keywords := ingestion.ExtractKeywords(opts.JobText)

	result := &types.DocumentResult{
		Sections:       decisions,
		FinalDocument:  final,
		OriginalScore:  scoreDocument(opts.Document, originalAnalyses(decisions), keywords),
		OptimisedScore: scoreDocument(final, winningAnalyses(decisions), keywords),
	}

	// Merge the indicator profiles so no quality dimension regresses even
	// when a section rewrite traded one strength for another.
	result.Indicators = scoring.MergeIndicatorSets(
		scoring.IndicatorProfile(opts.Document),
		scoring.IndicatorProfile(final),
	)

	logger.Info("document tailored",
		zap.Float64("original_overall", result.OriginalScore.Overall),
		zap.Float64("optimised_overall", result.OptimisedScore.Overall),
	)
	return result, nil
}

// buildPairs produces one aligned (original, candidate) pair per section.
func buildPairs(ctx context.Context, opts *RunOptions, logger *zap.Logger, originalSections []types.Section) ([]sections.AlignedPair, error) {
	if opts.Candidate != "" {
		return sections.Align(originalSections, sections.Split(opts.Candidate)), nil
	}

	pairs := make([]sections.AlignedPair, 0, len(originalSections))
	for _, section := range originalSections {
		pair := sections.AlignedPair{Name: section.Name, Original: section.Text}
		if opts.Generator != nil {
			candidate, err := opts.Generator.Rewrite(ctx, section.Text, opts.JobText)
			switch {
			case errors.Is(err, generation.ErrNoCandidate):
				logger.Debug("no candidate for section", zap.String("section", section.Name))
			case err != nil:
				return nil, err
			default:
				pair.Candidate = candidate
			}
		}
		emitProgress(opts, "generate", "candidate ready", section.Name)
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// arbitratePair handles the three pair shapes: both sides present, no
// candidate (the original stands unopposed), and candidate-only sections
// that have nothing to regress against.
func arbitratePair(pair sections.AlignedPair) types.ArbiterDecision {
	switch {
	case pair.Original == "":
		batch := arbiter.RunBatch(nil, []string{pair.Candidate})
		return batch.Decisions[0]
	case pair.Candidate == "":
		return arbiter.Arbitrate(pair.Original, pair.Original)
	default:
		return arbiter.Arbitrate(pair.Original, pair.Candidate)
	}
}

// assembleDocument rebuilds the document from the winning section texts.
func assembleDocument(decisions []types.DocumentDecision) string {
	parts := make([]string, 0, len(decisions))
	for _, d := range decisions {
		if d.Decision.Bullet == "" {
			continue
		}
		parts = append(parts, d.SectionName+"\n"+d.Decision.Bullet)
	}
	return strings.Join(parts, "\n\n")
}

func originalAnalyses(decisions []types.DocumentDecision) []types.AnalysisResult {
	results := make([]types.AnalysisResult, 0, len(decisions))
	for _, d := range decisions {
		results = append(results, d.Decision.OriginalAnalysis)
	}
	return results
}

func winningAnalyses(decisions []types.DocumentDecision) []types.AnalysisResult {
	results := make([]types.AnalysisResult, 0, len(decisions))
	for _, d := range decisions {
		if d.Decision.Winner == types.WinnerTailored {
			results = append(results, d.Decision.TailoredAnalysis)
		} else {
			results = append(results, d.Decision.OriginalAnalysis)
		}
	}
	return results
}

// scoreDocument folds document text and per-section analyses into the
// document-level component scores: core from the competency profile
// (1-10 rescaled to 0-100), structural format from the ATS and recruiter
// stages averaged over sections, keyword match from posting coverage
// (zero when no posting was supplied, which switches the weight profile
// to its fallback).
func scoreDocument(document string, analyses []types.AnalysisResult, keywords []string) types.DocumentScore {
	profile := scoring.IndicatorProfile(document)
	core := profile.Average() * 10

	structural := 0.0
	if len(analyses) > 0 {
		for _, a := range analyses {
			structural += (a.ATS.Score + a.RecruiterUX.Score) / 2
		}
		structural /= float64(len(analyses))
	}

	keywordMatch := ingestion.KeywordMatchScore(document, keywords)
	return scoring.CombineDocumentScore(core, keywordMatch, structural)
}
