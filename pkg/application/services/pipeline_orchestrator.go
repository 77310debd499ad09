package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"vectorplan/pkg/application/dto"
	"vectorplan/pkg/domain/config"
	"vectorplan/pkg/domain/entities"
	"vectorplan/pkg/domain/repositories"
	"vectorplan/pkg/infrastructure/events"
)

// DateFormat is the display format for analysis dates.
const DateFormat = "02.01.2006"

// Sources bundles the data-source repositories the pipeline reads from.
type Sources struct {
	Demand    repositories.DemandRepository
	Stockouts repositories.StockoutRepository
	Dispatch  repositories.DispatchRepository
	CureTimes repositories.CureTimeRepository
	Mould     repositories.MouldRepository
	Manual    repositories.ManualRepository
}

// PipelineOrchestrator wires the three stage services to the data
// sources and applies the degradation policy: demand records are
// required per date; every other source may be unavailable and degrades
// to documented neutral values with a warning.
type PipelineOrchestrator struct {
	logger   zerolog.Logger
	sources  Sources
	weights  config.Weights
	journal  events.Journal
	demand   *DemandService
	deploy   *DeploymentService
	override *OverrideService
}

// NewPipelineOrchestrator creates an orchestrator over the given sources
// and weight configuration. Run milestones are discarded; use
// NewPipelineOrchestratorWithJournal to record them.
func NewPipelineOrchestrator(
	logger zerolog.Logger,
	sources Sources,
	weights config.Weights,
) *PipelineOrchestrator {
	return NewPipelineOrchestratorWithJournal(logger, sources, weights, events.Nop())
}

// NewPipelineOrchestratorWithJournal creates an orchestrator that
// records run milestones to the given journal.
func NewPipelineOrchestratorWithJournal(
	logger zerolog.Logger,
	sources Sources,
	weights config.Weights,
	journal events.Journal,
) *PipelineOrchestrator {
	return &PipelineOrchestrator{
		logger:   logger,
		sources:  sources,
		weights:  weights,
		journal:  journal,
		demand:   NewDemandService(),
		deploy:   NewDeploymentService(),
		override: NewOverrideService(),
	}
}

// RunDate executes the pipeline for one date up to the requested stage
// (1, 2 or 3) and returns the stage outputs with an executive summary.
func (o *PipelineOrchestrator) RunDate(
	ctx context.Context,
	date time.Time,
	stage int,
) (*dto.DateResult, error) {
	if stage < 1 || stage > 3 {
		return nil, fmt.Errorf("invalid stage %d: must be 1, 2 or 3", stage)
	}

	result := &dto.DateResult{
		RunID: uuid.New().String(),
		Date:  date,
		Stage: stage,
	}
	log := o.logger.With().
		Str("run_id", result.RunID).
		Str("date", date.Format(DateFormat)).
		Logger()
	o.journal.Append(events.NewRunStarted(result.RunID, date, stage))

	demand, err := o.sources.Demand.DemandRecords(date)
	if err != nil {
		return nil, fmt.Errorf("loading demand records: %w", err)
	}
	inputs := DemandInputs{Demand: demand}

	inputs.Stockouts, err = o.sources.Stockouts.StockoutCounts(date)
	if err != nil {
		if !errors.Is(err, repositories.ErrSourceUnavailable) {
			return nil, fmt.Errorf("loading stockout counts: %w", err)
		}
		o.degrade(log, result, "stockouts", err)
		inputs.Stockouts = nil
	}

	inputs.Dispatch, err = o.sources.Dispatch.DispatchRecords()
	if err != nil {
		if !errors.Is(err, repositories.ErrSourceUnavailable) {
			return nil, fmt.Errorf("loading dispatch records: %w", err)
		}
		o.degrade(log, result, "dispatch history", err)
		inputs.Dispatch = nil
	}

	inputs.CureTimes, err = o.sources.CureTimes.CureTimes()
	if err != nil {
		if !errors.Is(err, repositories.ErrSourceUnavailable) {
			return nil, fmt.Errorf("loading cure times: %w", err)
		}
		o.degrade(log, result, "cure times", err)
		inputs.CureTimes = nil
	}

	stageStart := time.Now()
	result.Scored = o.demand.Score(ctx, inputs, o.weights)
	o.journal.Append(events.NewStageCompleted(
		result.RunID, date, 1, len(result.Scored), time.Since(stageStart)))
	log.Info().
		Int("records", len(result.Scored)).
		Dur("elapsed", time.Since(stageStart)).
		Msg("stage 1 scoring complete")

	if stage >= 2 {
		machines, err := o.sources.Mould.MachineAssignments(date)
		if err != nil {
			if !errors.Is(err, repositories.ErrSourceUnavailable) {
				return nil, fmt.Errorf("loading machine assignments: %w", err)
			}
			o.degrade(log, result, "mould report", err)
			machines = nil
		}
		stageStart = time.Now()
		result.Deployed = o.deploy.Adjust(ctx, result.Scored, machines, o.weights)
		result.Summary.MachinesActive = len(machines)
		o.journal.Append(events.NewStageCompleted(
			result.RunID, date, 2, len(result.Deployed), time.Since(stageStart)))
		log.Info().
			Int("records", len(result.Deployed)).
			Int("machines", len(machines)).
			Dur("elapsed", time.Since(stageStart)).
			Msg("stage 2 deployment adjustment complete")
	}

	if stage >= 3 {
		manual, err := o.sources.Manual.ManualEntries()
		if err != nil {
			if !errors.Is(err, repositories.ErrSourceUnavailable) {
				return nil, fmt.Errorf("loading manual entries: %w", err)
			}
			o.degrade(log, result, "manual overrides", err)
			manual = nil
		}
		stageStart = time.Now()
		result.Hybrid = o.override.Merge(ctx, result.Deployed, manual, o.weights)
		o.journal.Append(events.NewStageCompleted(
			result.RunID, date, 3, len(result.Hybrid), time.Since(stageStart)))
		log.Info().
			Int("records", len(result.Hybrid)).
			Int("manual", len(manual)).
			Dur("elapsed", time.Since(stageStart)).
			Msg("stage 3 override merge complete")
	}

	summarize(result)
	o.journal.Append(events.NewRunCompleted(result.RunID, date, result.FinalCount()))
	return result, nil
}

// RunRange executes the pipeline for every date in the inclusive range.
// A date whose required demand sources are unavailable is skipped with a
// warning; the run aborts only when no date could be processed at all.
func (o *PipelineOrchestrator) RunRange(
	ctx context.Context,
	start, end time.Time,
	stage int,
) (*dto.RangeResult, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s precedes start %s",
			end.Format(DateFormat), start.Format(DateFormat))
	}

	rr := &dto.RangeResult{RunID: uuid.New().String(), Stage: stage}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		result, err := o.RunDate(ctx, day, stage)
		if err != nil {
			o.logger.Warn().
				Err(err).
				Str("date", day.Format(DateFormat)).
				Msg("skipping date")
			o.journal.Append(events.NewDateSkipped(rr.RunID, day, err.Error()))
			rr.Skipped = append(rr.Skipped, dto.SkippedDate{Date: day, Reason: err.Error()})
			continue
		}
		rr.Results = append(rr.Results, result)
	}

	if len(rr.Results) == 0 {
		return rr, fmt.Errorf("no processable dates between %s and %s",
			start.Format(DateFormat), end.Format(DateFormat))
	}
	return rr, nil
}

func (o *PipelineOrchestrator) degrade(
	log zerolog.Logger,
	result *dto.DateResult,
	source string,
	err error,
) {
	log.Warn().Err(err).Str("source", source).Msg("optional source unavailable, using fallbacks")
	o.journal.Append(events.NewSourceDegraded(result.RunID, result.Date, source))
	result.Summary.Degraded = append(result.Summary.Degraded, source)
}

func summarize(result *dto.DateResult) {
	s := &result.Summary
	s.ScoredRecords = len(result.Scored)

	for _, d := range result.Deployed {
		if d.IsGhostSKU {
			s.GhostSKUs++
		}
		if d.CriticalGap {
			s.CriticalGaps++
		}
		if d.ExcessProduction {
			s.ExcessRunning++
		}
		if d.MouldAlert {
			s.MouldAlerts++
		}
	}

	s.HybridRows = len(result.Hybrid)
	for _, h := range result.Hybrid {
		if h.Source == entities.SourceManual {
			s.ManualRows++
			if h.HighestPriority {
				s.HighestManual++
			}
		}
		if h.Overstock {
			s.OverstockRows++
		}
	}
}
