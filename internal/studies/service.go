package studies

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"study-backend/internal/content"
	"study-backend/internal/export"
	"study-backend/internal/shared/metrics"
	"study-backend/internal/shared/storage/object"
	"study-backend/internal/shared/telemetry"
	"study-backend/internal/shared/util"
)

const exportPrefix = "exports"

// Service runs section generation and keeps study records in step with it.
type Service struct {
	Repo      Repo
	Generator *content.Generator
	// Rand hands out one random source per call; nil means clock-seeded.
	Rand content.RandSource
	// Archive keeps a copy of every export when set.
	Archive       object.Store
	ExportOptions export.Options
	Now           func() time.Time

	locks keyedMutex
}

// NewService constructs a Service with the default generator.
func NewService(repo Repo, rand content.RandSource) *Service {
	return &Service{
		Repo:      repo,
		Generator: content.NewGenerator(),
		Rand:      rand,
	}
}

// Generate produces content for req.Section and records it on the study
// named by data.study_id. A complete setup without a study creates one.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	start := time.Now()
	raw := strings.TrimSpace(req.Section)
	if raw == "" {
		return GenerateResult{}, fmt.Errorf("%w: section is required", ErrInvalidInput)
	}
	section, err := content.ParseSection(raw)
	if err != nil {
		metrics.IncUnknownSection()
		return GenerateResult{}, err
	}

	in := content.InputFromMap(req.Data)
	markup, err := s.generator().Generate(section, in, s.rand())
	if err != nil {
		return GenerateResult{}, err
	}

	studyID, err := s.record(ctx, section, in, markup)
	if err != nil {
		return GenerateResult{}, err
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncSectionGenerated(string(section))
	metrics.ObserveGenerationDurationMs(elapsed)
	telemetry.Info("study.generate", map[string]any{
		"section":     string(section),
		"study_id":    studyID,
		"chars":       len(markup),
		"duration_ms": elapsed,
	})

	return GenerateResult{Content: markup, StudyID: studyID}, nil
}

// record persists the outcome of one generation and returns the affected
// study id, or "" when no study was touched.
func (s *Service) record(ctx context.Context, section content.Section, in content.StudyInput, markup string) (string, error) {
	if in.StudyID != "" {
		unlock := s.locks.Lock(in.StudyID)
		defer unlock()

		study, err := s.Repo.GetByID(ctx, in.StudyID)
		switch {
		case err == nil:
			if section == content.SectionSetup {
				return study.ID, nil
			}
			return study.ID, s.storeSection(ctx, study, section, in, markup)
		case errors.Is(err, ErrNotFound):
			// Unknown ids are treated as if none was sent.
		default:
			return "", fmt.Errorf("load study %s: %w", in.StudyID, err)
		}
	}

	if section != content.SectionSetup || len(content.ValidateSetup(in)) > 0 {
		return "", nil
	}
	return s.create(ctx, in)
}

func (s *Service) create(ctx context.Context, in content.StudyInput) (string, error) {
	now := s.now()
	study := Study{
		ID:                 uuid.NewString(),
		StudyType:          in.StudyType,
		FieldOfStudy:       in.FieldOfStudy,
		MainTopic:          in.MainTopic,
		ProblemDescription: in.ProblemDescription,
		Keywords:           in.Keywords,
		Contents:           map[content.Section]string{},
		Progress:           content.NewProgress(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.Create(ctx, study); err != nil {
		return "", fmt.Errorf("create study: %w", err)
	}
	telemetry.Info("study.created", map[string]any{
		"study_id":   study.ID,
		"study_type": study.StudyType,
		"field":      study.FieldOfStudy,
	})
	return study.ID, nil
}

func (s *Service) storeSection(ctx context.Context, study Study, section content.Section, in content.StudyInput, markup string) error {
	study.SetContent(section, markup)
	study.Progress.MarkComplete(section)
	if v, ok := in.AdditionalInput(section); ok {
		study.Progress.RecordAdditionalInput(section, v)
	}
	study.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, study); err != nil {
		return fmt.Errorf("update study %s: %w", study.ID, err)
	}
	return nil
}

// Get returns one study.
func (s *Service) Get(ctx context.Context, id string) (Study, error) {
	if strings.TrimSpace(id) == "" {
		return Study{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns studies newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Study, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Delete removes a study.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	unlock := s.locks.Lock(id)
	defer unlock()
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	telemetry.Info("study.deleted", map[string]any{"study_id": id})
	return nil
}

// ExportResult is a rendered study PDF.
type ExportResult struct {
	FileName string
	Data     []byte
	Pages    int
	// Checksum is the hex SHA-256 of Data.
	Checksum string
	// StorageKey is set when the PDF was archived.
	StorageKey string
}

// Export renders the study's title, abstract and the requested sections to PDF.
func (s *Service) Export(ctx context.Context, studyID string, sections []string) (ExportResult, error) {
	if strings.TrimSpace(studyID) == "" {
		return ExportResult{}, fmt.Errorf("%w: study id is required", ErrInvalidInput)
	}
	study, err := s.Repo.GetByID(ctx, studyID)
	if err != nil {
		return ExportResult{}, err
	}

	doc := export.BuildDocument(study.ID, study.Contents, sections)
	var buf bytes.Buffer
	if err := export.RenderPDF(&buf, doc, s.ExportOptions); err != nil {
		metrics.IncExportFailed()
		return ExportResult{}, fmt.Errorf("export study %s: %w", study.ID, err)
	}

	result := ExportResult{
		FileName: export.FileName(study.ID),
		Data:     buf.Bytes(),
	}
	result.Checksum = util.ContentHash(result.Data)
	if info, err := export.Inspect(result.Data); err == nil {
		result.Pages = info.Pages
	}

	if s.Archive != nil {
		key := path.Join(exportPrefix, study.ID, fmt.Sprintf("%d.pdf", s.now().UnixNano()))
		if _, err := s.Archive.SaveWithKey(ctx, key, "application/pdf", bytes.NewReader(result.Data)); err != nil {
			telemetry.Error("study.export.archive_failed", map[string]any{
				"study_id": study.ID,
				"error":    err.Error(),
			})
		} else {
			result.StorageKey = key
		}
	}

	metrics.IncExport()
	telemetry.Info("study.export", map[string]any{
		"study_id":    study.ID,
		"parts":       len(doc.Parts),
		"pages":       result.Pages,
		"bytes":       len(result.Data),
		"checksum":    result.Checksum,
		"storage_key": result.StorageKey,
	})
	return result, nil
}

// OpenExport streams an archived export. Malformed study ids and names are
// rejected so the key cannot leave the study's archive.
func (s *Service) OpenExport(ctx context.Context, studyID, name string) (io.ReadCloser, error) {
	if s.Archive == nil {
		return nil, ErrNotFound
	}
	name, err := util.CheckFileName(name)
	if err != nil || !ValidID(studyID) || !strings.HasSuffix(name, ".pdf") {
		return nil, ErrInvalidInput
	}
	rc, err := s.Archive.Open(ctx, path.Join(exportPrefix, studyID, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return rc, nil
}

func (s *Service) generator() *content.Generator {
	if s.Generator == nil {
		return content.NewGenerator()
	}
	return s.Generator
}

func (s *Service) rand() content.Rand {
	if s.Rand == nil {
		return content.NewRand(time.Now().UnixNano())
	}
	return s.Rand()
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
