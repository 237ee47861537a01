package timeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chartfold/chartfold/internal/domain/imaging"
	"github.com/chartfold/chartfold/internal/domain/medication"
	"github.com/chartfold/chartfold/internal/domain/pathology"
	"github.com/chartfold/chartfold/internal/domain/procedure"
	"github.com/chartfold/chartfold/internal/platform/dates"
	"github.com/chartfold/chartfold/pkg/pagination"
)

// Window is the asymmetric imaging window around a procedure: a longer
// lookback than lookahead, since diagnostic imaging typically precedes
// treatment.
type Window struct {
	PreOpDays  int
	PostOpDays int
}

type Service struct {
	procs     procedure.Repository
	pathology *pathology.Service
	pathRepo  pathology.Repository
	imaging   imaging.Repository
	meds      medication.Repository
	window    Window
}

func NewService(
	procs procedure.Repository,
	pathSvc *pathology.Service,
	pathRepo pathology.Repository,
	imagingRepo imaging.Repository,
	meds medication.Repository,
	window Window,
) *Service {
	return &Service{
		procs:     procs,
		pathology: pathSvc,
		pathRepo:  pathRepo,
		imaging:   imagingRepo,
		meds:      meds,
		window:    window,
	}
}

// BuildSurgical composes the chronological surgical view. It first runs a
// pathology linking pass, so the timeline is the primary driver of
// linking; the pass persists atomically and is safe to repeat. Procedures
// come back date ascending, windowed by limit/offset (limit 0 means all).
// includeFullText controls whether pathology full report text rides along.
func (s *Service) BuildSurgical(ctx context.Context, limit, offset int, includeFullText bool) ([]Entry, error) {
	if _, err := s.pathology.RunLinking(ctx); err != nil {
		return nil, fmt.Errorf("pathology linking: %w", err)
	}

	procs, err := s.procs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list procedures: %w", err)
	}
	studies, err := s.imaging.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list imaging: %w", err)
	}
	meds, err := s.meds.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}

	lo, hi := pagination.Window(len(procs), limit, offset)
	entries := make([]Entry, 0, hi-lo)

	for _, proc := range procs[lo:hi] {
		entry := Entry{
			Procedure: ProcedureView{
				ID:       proc.ID,
				Name:     proc.Name,
				Date:     proc.Date,
				Provider: proc.Provider,
				Facility: proc.Facility,
				Source:   proc.Source,
			},
			Imaging:     []ImagingView{},
			Medications: []MedicationView{},
		}

		linked, err := s.pathRepo.ListByProcedure(ctx, proc.ID)
		if err != nil {
			return nil, fmt.Errorf("pathology for procedure %d: %w", proc.ID, err)
		}
		if len(linked) > 0 {
			// First report by id is the primary one when several link to
			// the same procedure.
			rep := linked[0]
			pv := &PathologyView{
				ID:         rep.ID,
				Diagnosis:  rep.Diagnosis,
				Staging:    rep.Staging,
				Margins:    rep.Margins,
				LymphNodes: rep.LymphNodes,
				Source:     rep.Source,
			}
			if includeFullText {
				pv.FullText = rep.FullText
			}
			entry.Pathology = pv
		}

		if procDate, ok := dates.ParseISO(proc.Date); ok {
			for _, img := range studies {
				imgDate, ok := dates.ParseISO(img.Date)
				if !ok {
					continue
				}
				// delta > 0 means the study precedes the procedure.
				delta := int(procDate.Sub(imgDate).Hours() / 24)
				if delta < -s.window.PostOpDays || delta > s.window.PreOpDays {
					continue
				}
				timing := "same-day"
				if delta > 0 {
					timing = "pre-op"
				} else if delta < 0 {
					timing = "post-op"
				}
				entry.Imaging = append(entry.Imaging, ImagingView{
					ID:         img.ID,
					Study:      img.StudyName,
					Modality:   img.Modality,
					Date:       img.Date,
					Impression: img.Impression,
					Source:     img.Source,
					Timing:     timing,
				})
			}

			for _, med := range meds {
				if medConcurrent(med, procDate) {
					entry.Medications = append(entry.Medications, MedicationView{
						Name:   med.Name,
						Source: med.Source,
					})
				}
			}
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// medConcurrent reports whether a medication was in effect on the
// procedure date: open-ended active, or a [start, stop] interval
// containing the date.
func medConcurrent(med *medication.Medication, procDate time.Time) bool {
	if strings.EqualFold(med.Status, "active") && med.StopDate == "" {
		return true
	}
	if med.StartDate == "" || med.StopDate == "" {
		return false
	}
	start, ok := dates.ParseISO(med.StartDate)
	if !ok {
		return false
	}
	stop, ok := dates.ParseISO(med.StopDate)
	if !ok {
		return false
	}
	return !procDate.Before(start) && !procDate.After(stop)
}
