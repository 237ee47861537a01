package pathology

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chartfold/chartfold/internal/domain/procedure"
	"github.com/chartfold/chartfold/internal/platform/dates"
)

// TxRunner runs fn inside one transaction. Production wiring uses
// db.WithTx; tests substitute a pass-through.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	repo  Repository
	procs procedure.Repository
	runTx TxRunner
	cfg   LinkConfig
	log   zerolog.Logger
}

func NewService(repo Repository, procs procedure.Repository, runTx TxRunner, cfg LinkConfig, log zerolog.Logger) *Service {
	return &Service{repo: repo, procs: procs, runTx: runTx, cfg: cfg, log: log}
}

func (s *Service) Create(ctx context.Context, rep *Report) error {
	if rep.Source == "" {
		return fmt.Errorf("source is required")
	}
	rep.Date = dates.Normalize(rep.Date)

	// When only raw text arrived, fill structured fields from it. Fields
	// the adapter already populated are left alone.
	if rep.FullText != "" {
		sec := ParseSections(rep.FullText)
		if rep.Diagnosis == "" {
			rep.Diagnosis = sec.Diagnosis
		}
		if rep.Specimen == "" {
			rep.Specimen = sec.Specimen
		}
		if rep.GrossDescription == "" {
			rep.GrossDescription = sec.GrossDescription
		}
		if rep.MicroscopicDescription == "" {
			rep.MicroscopicDescription = sec.MicroscopicDescription
		}
		if rep.Staging == "" {
			rep.Staging = sec.Staging
		}
		if rep.Margins == "" {
			rep.Margins = sec.Margins
		}
		if rep.LymphNodes == "" {
			rep.LymphNodes = sec.LymphNodes
		}
	}
	return s.repo.Create(ctx, rep)
}

func (s *Service) Get(ctx context.Context, id int64) (*Report, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByProcedure(ctx context.Context, procedureID int64) ([]*Report, error) {
	return s.repo.ListByProcedure(ctx, procedureID)
}

// RunLinking links every still-unlinked report to its best procedure and
// persists the accepted links in one transaction, so a crash mid-write
// leaves either the prior state or the fully-linked state. Re-running is
// safe: linked reports are never revisited. Returns the accepted links.
func (s *Service) RunLinking(ctx context.Context) ([]Link, error) {
	reports, err := s.repo.ListUnlinked(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unlinked reports: %w", err)
	}
	procs, err := s.procs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list procedures: %w", err)
	}

	candidates := make([]ProcedureCandidate, len(procs))
	for i, p := range procs {
		candidates[i] = ProcedureCandidate{ID: p.ID, Date: p.Date, Name: p.Name}
	}

	links := ComputeLinks(reports, candidates, s.cfg)
	if len(links) == 0 {
		return nil, nil
	}

	err = s.runTx(ctx, func(ctx context.Context) error {
		for _, l := range links {
			if err := s.repo.SetProcedureID(ctx, l.ReportID, l.ProcedureID); err != nil {
				return fmt.Errorf("link report %d to procedure %d: %w", l.ReportID, l.ProcedureID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("unlinked", len(reports)).
		Int("linked", len(links)).
		Msg("pathology linking pass complete")
	return links, nil
}
