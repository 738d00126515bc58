// Package patcher applies patch model documents to base model documents, one file or a whole tree at a time.
package patcher

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/viant/codemerge/logging"
	"github.com/viant/codemerge/merger"
	"github.com/viant/codemerge/repository"
)

// ErrNoPairs is returned when a tree merge finds no documents to process
var ErrNoPairs = errors.New("no documents to merge")

// Patcher merges model documents
type Patcher struct {
	store  *repository.Store
	config *Config
	logger *zerolog.Logger
}

// Option represents patcher option
type Option func(p *Patcher)

// WithLogger sets logger, context logger is used otherwise
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Patcher) {
		p.logger = logger
	}
}

// New creates a patcher
func New(store *repository.Store, config *Config, options ...Option) *Patcher {
	if store == nil {
		store = repository.NewStore(nil)
	}
	if config == nil {
		config = DefaultConfig()
	}
	ret := &Patcher{store: store, config: config}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (p *Patcher) log(ctx context.Context) *zerolog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return logging.FromContext(ctx)
}

// MergeFile merges patch document into base document and writes the result to dest (base when empty)
func (p *Patcher) MergeFile(ctx context.Context, baseURL, patchURL, destURL string) (*Result, error) {
	if destURL == "" {
		destURL = baseURL
	}
	base, err := p.store.Load(ctx, baseURL)
	if err != nil {
		return nil, err
	}
	patch, err := p.store.Load(ctx, patchURL)
	if err != nil {
		return nil, err
	}
	stats := newStats(base, patch)
	before, err := base.Fingerprint()
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint %v: %w", baseURL, err)
	}
	merger.MergeFile(base, patch, p.config.Override)
	stats.merged(base)
	after, err := base.Fingerprint()
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint merged %v: %w", baseURL, err)
	}

	result := &Result{Path: destURL, Action: ActionMerged, Stats: stats, Fingerprint: after}
	logger := p.log(ctx)
	if result.Fingerprint == before {
		result.Action = ActionUnchanged
		if destURL == baseURL {
			logger.Debug().Str("base", baseURL).Str("patch", patchURL).Msg("base unchanged, skipping write")
			return result, nil
		}
	}
	if p.config.DryRun {
		logger.Debug().Str("dest", destURL).Int("appended", stats.Appended()).Msg("dry run")
		return result, nil
	}
	if err = p.store.Save(ctx, destURL, base); err != nil {
		return nil, err
	}
	result.Written = true
	logger.Debug().Str("dest", destURL).Str("action", string(result.Action)).Int("appended", stats.Appended()).Msg("merged")
	return result, nil
}

// MergeTree pairs documents of base and patch trees by relative path and merges them into dest tree (base when empty)
func (p *Patcher) MergeTree(ctx context.Context, baseRoot, patchRoot, destRoot string) (*Report, error) {
	if destRoot == "" {
		destRoot = baseRoot
	}
	if err := p.config.Validate(); err != nil {
		return nil, err
	}
	basePaths, err := p.list(ctx, baseRoot)
	if err != nil {
		return nil, err
	}
	patchPaths, err := p.list(ctx, patchRoot)
	if err != nil {
		return nil, err
	}
	if len(basePaths) == 0 && len(patchPaths) == 0 {
		return nil, fmt.Errorf("%w: %v, %v", ErrNoPairs, baseRoot, patchRoot)
	}

	report := &Report{}
	for _, relative := range union(basePaths, patchPaths) {
		if err = ctx.Err(); err != nil {
			return report, err
		}
		baseURL := repository.Join(baseRoot, relative)
		patchURL := repository.Join(patchRoot, relative)
		destURL := repository.Join(destRoot, relative)
		var result *Result
		switch {
		case basePaths[relative] && patchPaths[relative]:
			if result, err = p.MergeFile(ctx, baseURL, patchURL, destURL); err != nil {
				return report, err
			}
		case basePaths[relative]:
			result = &Result{Action: ActionBase}
			if destRoot != baseRoot {
				result.Written, err = p.copy(ctx, baseURL, destURL)
			}
		default:
			result = &Result{Action: ActionPatch}
			result.Written, err = p.copy(ctx, patchURL, destURL)
		}
		if err != nil {
			return report, err
		}
		result.Path = relative
		report.Results = append(report.Results, result)
	}
	totals := report.Totals()
	p.log(ctx).Info().
		Int("documents", len(report.Results)).
		Int("merged", report.Count(ActionMerged)).
		Int("unchanged", report.Count(ActionUnchanged)).
		Int("written", report.Written()).
		Int("appended", totals.Appended()).
		Bool("override", p.config.Override).
		Msg("tree merged")
	return report, nil
}

func (p *Patcher) copy(ctx context.Context, sourceURL, destURL string) (bool, error) {
	if p.config.DryRun {
		return false, nil
	}
	if err := p.store.Copy(ctx, sourceURL, destURL); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Patcher) list(ctx context.Context, root string) (map[string]bool, error) {
	paths, err := p.store.List(ctx, root)
	if err != nil {
		return nil, err
	}
	result := make(map[string]bool, len(paths))
	for _, relative := range paths {
		if p.config.Match(relative) {
			result[relative] = true
		}
	}
	return result, nil
}

func union(sets ...map[string]bool) []string {
	var result []string
	seen := map[string]bool{}
	for _, set := range sets {
		for key := range set {
			if !seen[key] {
				seen[key] = true
				result = append(result, key)
			}
		}
	}
	sort.Strings(result)
	return result
}
