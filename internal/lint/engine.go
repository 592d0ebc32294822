// Package lint runs the rule catalogue over a range of commits and a
// branch name and aggregates the violations into a deterministic result.
package lint

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/lintry/lintry/internal/branch"
	"github.com/lintry/lintry/internal/commit"
	"github.com/lintry/lintry/internal/rule"
)

// Engine evaluates commits against a catalogue. The engine is stateless
// per invocation: Run is parse, evaluate, aggregate, with no cross-commit
// memory except the final merge.
type Engine struct {
	catalogue *rule.Catalogue
	workers   int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithWorkers overrides the worker count used for parallel evaluation.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) { e.workers = n }
}

// NewEngine creates an Engine over a catalogue. The catalogue must be
// fully built before the first Run and is never mutated afterwards.
func NewEngine(catalogue *rule.Catalogue, opts ...EngineOption) *Engine {
	e := &Engine{
		catalogue: catalogue,
		workers:   runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run parses and evaluates every record plus the branch name, and merges
// the violations into a Result. Independent commits are evaluated in
// parallel; the output ordering depends only on range position, rule and
// location, never on scheduling. An empty record slice yields an empty,
// passing result. branchName may be empty to skip the branch check.
func (e *Engine) Run(ctx context.Context, records []*commit.Record, branchName string) *Result {
	result := &Result{}

	pool := newWorkerPool(e.workers)
	defer pool.close()

	tasks := make([]func() CommitReport, len(records))
	for i, rec := range records {
		tasks[i] = func() CommitReport {
			parsed := commit.Parse(rec)
			return CommitReport{
				Commit:     parsed,
				Violations: e.catalogue.EvaluateCommit(parsed),
			}
		}
	}
	result.Commits = runOrdered(pool, tasks)

	if branchName != "" {
		result.Branch = e.catalogue.EvaluateBranch(branch.Parse(branchName))
	}

	result.HasErrors = hasErrors(result)
	slog.DebugContext(ctx, "lint run finished",
		"commits", len(result.Commits),
		"violations", result.ViolationCount(),
		"errors", result.HasErrors,
	)
	return result
}

// hasErrors is a pure reduction over all severities.
func hasErrors(r *Result) bool {
	for _, v := range r.Branch {
		if v.Severity == rule.SeverityError {
			return true
		}
	}
	for _, c := range r.Commits {
		for _, v := range c.Violations {
			if v.Severity == rule.SeverityError {
				return true
			}
		}
	}
	return false
}
