// Package pipeline orchestrates the generation stages in strict order:
// model probe, config patch, migrations, scaffolds, instructions. Each
// stage receives the run configuration and returns an updated copy;
// disabled stages are identity transforms. Failures abort the remaining
// stages without rolling back files already written.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/authsmith/authsmith/internal/catalog"
	"github.com/authsmith/authsmith/internal/config"
	"github.com/authsmith/authsmith/internal/defs"
	"github.com/authsmith/authsmith/internal/migration"
	"github.com/authsmith/authsmith/internal/patcher"
	"github.com/authsmith/authsmith/internal/probe"
	"github.com/authsmith/authsmith/internal/template"
)

// Pipeline threads a run configuration through the ordered generation
// stages. All collaborators are interfaces so stages are testable in
// isolation.
type Pipeline struct {
	probe      probe.Probe
	planner    *migration.Planner
	newSink    func(dir string) migration.Sink
	patcher    *patcher.Patcher
	scaffolder template.Scaffolder
	clock      config.Clock
	logger     *slog.Logger
}

// Options configures a Pipeline. Zero fields get production defaults.
type Options struct {
	Probe      probe.Probe
	Planner    *migration.Planner
	NewSink    func(dir string) migration.Sink
	Patcher    *patcher.Patcher
	Scaffolder template.Scaffolder
	Clock      config.Clock
	Logger     *slog.Logger
}

// New creates a Pipeline.
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Pipeline{
		probe:      opts.Probe,
		planner:    opts.Planner,
		newSink:    opts.NewSink,
		patcher:    opts.Patcher,
		scaffolder: opts.Scaffolder,
		clock:      opts.Clock,
		logger:     logger,
	}
	if p.probe == nil {
		p.probe = probe.New(logger)
	}
	if p.planner == nil {
		p.planner = migration.NewPlanner(logger)
	}
	if p.newSink == nil {
		p.newSink = func(dir string) migration.Sink { return migration.DirSink{Dir: dir} }
	}
	if p.patcher == nil {
		p.patcher = patcher.New(nil, logger)
	}
	if p.scaffolder == nil {
		p.scaffolder = template.NewScaffolder(logger)
	}
	if p.clock == nil {
		p.clock = config.SystemClock{}
	}
	return p
}

// Run executes the stages in order and returns the final report.
func (p *Pipeline) Run(ctx context.Context, run config.Run) (*Report, error) {
	report := &Report{}

	p.logger.Info("starting install",
		"capabilities", run.Capabilities.Names(),
		"model", run.ModelName,
		"table", run.TableName,
	)

	// Stage 1: probe for an existing model. The result decides the main
	// migration verb and whether a model scaffold is written.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	run, err := p.probeModel(run)
	if err != nil {
		return nil, fmt.Errorf("probe stage: %w", err)
	}

	// Stage 2: patch the persistent config file.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	run, err = p.patchConfig(run, report)
	if err != nil {
		return nil, fmt.Errorf("config stage: %w", err)
	}

	// Stage 3: plan and emit migrations in strict timestamp order.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	run, err = p.emitMigrations(run, report)
	if err != nil {
		return nil, fmt.Errorf("migration stage: %w", err)
	}

	// Stage 4: deploy boilerplate scaffolds.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	run, err = p.deployScaffolds(ctx, run, report)
	if err != nil {
		return nil, fmt.Errorf("scaffold stage: %w", err)
	}

	p.appendInstructions(run, report)

	p.logger.Info("install finished",
		"migrations", len(report.Migrations),
		"scaffolds", len(report.Scaffolds),
		"warnings", len(report.Warnings),
	)
	return report, nil
}

// probeModel runs the model probe once and caches the result on the run.
func (p *Pipeline) probeModel(run config.Run) (config.Run, error) {
	searchPath := filepath.Join(run.ProjectRoot, defs.DefaultModelDir)
	found, err := p.probe.Exists(run.ModelName, searchPath)
	if err != nil {
		return run, err
	}
	p.logger.Debug("model probe", "model", run.ModelName, "found", found)
	return run.WithModelFound(found), nil
}

// patchConfig appends the generated auth block to the host config file.
// A missing target or a declined confirmation skips the stage and records
// a warning; neither aborts the pipeline.
func (p *Pipeline) patchConfig(run config.Run, report *Report) (config.Run, error) {
	if !run.Stages.Config {
		return run, nil
	}

	block := patcher.Block(run)
	target := filepath.Join(run.ProjectRoot, run.ConfigFile)
	res, err := p.patcher.Patch(block, target)
	if errors.Is(err, patcher.ErrTargetMissing) {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("config file %s not found; add the auth block yourself", run.ConfigFile))
		return run, nil
	}
	if err != nil {
		return run, err
	}

	report.ConfigPatched = res.Applied
	if !res.Applied {
		report.Warnings = append(report.Warnings, res.Message)
	}
	return run, nil
}

// emitMigrations plans and writes the main, invitation, and remember
// migrations, threading the timestamp counter through each plan.
func (p *Pipeline) emitMigrations(run config.Run, report *Report) (config.Run, error) {
	if !run.Stages.Migrations {
		return run, nil
	}

	sink := p.newSink(filepath.Join(run.ProjectRoot, run.MigrationDir))

	plan, run := p.planner.PlanMain(run)
	if plan != nil {
		files, err := migration.Emit(sink, *plan)
		if err != nil {
			return run, err
		}
		report.Migrations = append(report.Migrations, files...)
	} else {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%s needs no schema changes; main migration skipped", run.TableName))
	}

	if inv, next := p.planner.PlanInvitation(run); inv != nil {
		run = next
		files, err := migration.Emit(sink, *inv)
		if err != nil {
			return run, err
		}
		report.Migrations = append(report.Migrations, files...)
	}

	if rem, next := p.planner.PlanRemember(run); rem != nil {
		run = next
		files, err := migration.Emit(sink, *rem)
		if err != nil {
			return run, err
		}
		report.Migrations = append(report.Migrations, files...)
	}

	return run, nil
}

// deployScaffolds hands the selected artifact categories to the external
// scaffolder. The model scaffold is only generated when no model exists.
func (p *Pipeline) deployScaffolds(ctx context.Context, run config.Run, report *Report) (config.Run, error) {
	var cats []template.Category
	if run.Stages.Models && !run.ModelFound {
		cats = append(cats, template.CategoryModel)
	}
	if run.Stages.Web {
		cats = append(cats, template.CategoryWeb)
	}
	if run.Stages.Controllers {
		cats = append(cats, template.CategoryControllers)
	}
	if run.Stages.Views {
		cats = append(cats, template.CategoryViews)
	}
	if run.Stages.Templates && run.RequireEmail {
		cats = append(cats, template.CategoryMailer)
	}
	if len(cats) == 0 {
		return run, nil
	}

	tctx := template.NewContext(run, p.clock.Now())
	written, skipped, err := p.scaffolder.Deploy(ctx, run.ProjectRoot, cats, run.Capabilities, tctx)
	report.Scaffolds = append(report.Scaffolds, written...)
	for _, s := range skipped {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%s exists; left untouched", s))
	}
	if err != nil {
		return run, err
	}
	return run, nil
}

// appendInstructions accumulates the human-readable follow-up steps.
func (p *Pipeline) appendInstructions(run config.Run, report *Report) {
	if len(report.Migrations) > 0 {
		report.appendInstruction("Run the generated migrations in %s/ with your migration runner.", run.MigrationDir)
	}
	if run.Stages.Web {
		report.appendInstruction("Mount the auth routes: call web.RegisterAuthRoutes(mux) in your router setup.")
	}
	if report.ConfigPatched {
		report.appendInstruction("Review the auth block appended to %s.", run.ConfigFile)
	}
	if run.RequireEmail {
		report.appendInstruction("Configure the auth.mailer adapter; %s needs to send email.",
			emailCapabilities(run))
	}
	report.appendInstruction("Point auth.repo (%s) at your persistence layer.", run.RepoPkg)
}

// emailCapabilities names the enabled email-dependent capabilities.
func emailCapabilities(run config.Run) string {
	var names []string
	for _, c := range run.Capabilities.Canonical() {
		if catalog.RequiresEmail(c) {
			names = append(names, string(c))
		}
	}
	return strings.Join(names, ", ")
}
