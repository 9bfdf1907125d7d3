// Package pipeline provides the orchestration of a single resume parse:
// sectionize, run every field extractor concurrently, then aggregate.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/taxonomy"
	"github.com/jonathan/resume-parser/internal/types"
)

// ProgressEvent represents one extractor finishing during a parse
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	ParseID  string `json:"parse_id,omitempty"`
}

// ProgressCallback is called when an extractor finishes. Extractors run
// concurrently, so the callback must be safe for concurrent use.
type ProgressCallback func(event ProgressEvent)

// Parser turns resume text into a ParsedResume. It holds no per-document
// state and is safe for concurrent use.
type Parser struct {
	cfg        config.Config
	tax        *taxonomy.Taxonomy
	logger     *zap.Logger
	now        func() time.Time
	onProgress ProgressCallback
	extractors []extractor
}

// Option customizes a Parser
type Option func(*Parser)

// WithLogger sets the logger; nil means no logging
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTaxonomy replaces the embedded lookup tables
func WithTaxonomy(tax *taxonomy.Taxonomy) Option {
	return func(p *Parser) {
		if tax != nil {
			p.tax = tax
		}
	}
}

// WithClock sets the source of "now" used for open-ended date ranges
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithProgress registers a callback for per-extractor progress
func WithProgress(cb ProgressCallback) Option {
	return func(p *Parser) {
		p.onProgress = cb
	}
}

// NewParser builds a Parser. Zero thresholds in cfg are filled from
// config.Default; the merged configuration must validate.
func NewParser(cfg config.Config, opts ...Option) (*Parser, error) {
	merged := cfg.MergeWithDefaults(config.Default())
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	p := &Parser{
		cfg:        merged,
		logger:     zap.NewNop(),
		now:        time.Now,
		extractors: defaultExtractors(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.tax == nil {
		tax, err := taxonomy.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
		p.tax = tax
	}
	p.logger.Debug("parser ready",
		zap.Strings("extractors", ExtractorNames()),
		zap.Int("project_title_threshold", p.cfg.ProjectTitleThreshold),
		zap.Int("education_proximity", p.cfg.EducationProximity),
	)
	return p, nil
}

// Config returns the effective configuration
func (p *Parser) Config() config.Config {
	return p.cfg
}

// Parse extracts every field from text. It fails only for invalid UTF-8 or a
// cancelled context; fields that cannot be found come back with confidence 0
// and an extractor that fails unexpectedly is reported in Warnings.
func (p *Parser) Parse(ctx context.Context, text string) (*types.ParsedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !utf8.ValidString(text) {
		return nil, &InputError{Message: "text is not valid UTF-8"}
	}

	parseID := uuid.New().String()
	logger := p.logger.With(zap.String("parse_id", parseID))
	start := time.Now()

	zones := sections.Sectionize(text, p.tax)
	logger.Info("parse.start",
		zap.Int("text_length", len(text)),
		zap.Int("zones", len(zones.Labels())),
		zap.Int("headers", zones.HeaderCount()),
		zap.Int("lines", zones.LineCount()),
	)

	in := &input{
		text:  text,
		zones: zones,
		now:   p.now(),
		cfg:   p.cfg,
		tax:   p.tax,
	}
	record := &types.ParsedResume{}

	var (
		mu       sync.Mutex
		warnings []string
	)

	g, gCtx := errgroup.WithContext(ctx)
	for _, ex := range p.extractors {
		ex := ex
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			diagnostics, failure := runGuarded(ex, in, record)
			if failure != nil {
				ex.reset(record)
				logger.Error("extractor failed",
					zap.String("extractor", ex.name),
					zap.Any("recovered", failure.Recovered),
				)
				mu.Lock()
				warnings = append(warnings, failure.Error())
				mu.Unlock()
			}
			for _, d := range diagnostics {
				logger.Debug("skipped malformed input", zap.String("extractor", ex.name), zap.Error(d))
			}

			p.emitProgress(parseID, ex, failure)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	normalizeEmpty(record)
	record.OverallConfidence = scoring.OverallConfidence(scoring.InputsFrom(record), p.cfg.Weights)
	if err := record.Validate(); err != nil {
		logger.Warn("record failed validation", zap.Error(err))
		warnings = append(warnings, "record validation failed: "+err.Error())
	}
	sort.Strings(warnings)
	record.Warnings = warnings
	if p.cfg.IncludeRawText {
		record.RawText = text
	}

	logger.Info("parse.done",
		zap.Int("overall_confidence", record.OverallConfidence),
		zap.Int("skills", len(record.Skills)),
		zap.Int("education", len(record.Education)),
		zap.Int("work_experience", len(record.WorkExperience)),
		zap.Int("projects", len(record.Projects)),
		zap.Int("warnings", len(record.Warnings)),
		zap.Duration("duration", time.Since(start)),
	)
	return record, nil
}

// runGuarded runs one extractor, converting a panic into an ExtractorError
func runGuarded(ex extractor, in *input, out *types.ParsedResume) (diagnostics []error, failure *ExtractorError) {
	defer func() {
		if r := recover(); r != nil {
			failure = &ExtractorError{Extractor: ex.name, Recovered: r}
		}
	}()
	return ex.run(in, out), nil
}

// emitProgress calls the progress callback if configured
func (p *Parser) emitProgress(parseID string, ex extractor, failure *ExtractorError) {
	if p.onProgress == nil {
		return
	}
	message := "extracted " + ex.name
	if failure != nil {
		message = failure.Error()
	}
	p.onProgress(ProgressEvent{
		Step:     ex.name,
		Category: ex.category,
		Message:  message,
		ParseID:  parseID,
	})
}

// normalizeEmpty replaces nil lists so the record always serializes with the
// same shape
func normalizeEmpty(r *types.ParsedResume) {
	if r.Skills == nil {
		r.Skills = []types.ExtractedField[string]{}
	}
	if r.Education == nil {
		r.Education = []types.EducationEntry{}
	}
	if r.WorkExperience == nil {
		r.WorkExperience = []types.WorkExperienceEntry{}
	}
	if r.Projects == nil {
		r.Projects = []types.ProjectEntry{}
	}
	for i := range r.WorkExperience {
		if r.WorkExperience[i].Description == nil {
			r.WorkExperience[i].Description = []string{}
		}
	}
	for i := range r.Projects {
		if r.Projects[i].TechStack == nil {
			r.Projects[i].TechStack = []string{}
		}
		if r.Projects[i].Description == nil {
			r.Projects[i].Description = []string{}
		}
	}
}
