package studies

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"study-backend/internal/content"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const studyColumns = `id, study_type, field_of_study, main_topic, problem_description, keywords,
    title_content, abstract_content, introduction_content, literature_content, methodology_content,
    results_content, discussion_content, conclusion_content, references_content,
    additional_inputs, completed_sections, created_at, updated_at`

// Create inserts a new study.
func (r *PGRepo) Create(ctx context.Context, study Study) error {
	const query = `
INSERT INTO studies (
    id,
    study_type,
    field_of_study,
    main_topic,
    problem_description,
    keywords,
    title_content,
    abstract_content,
    introduction_content,
    literature_content,
    methodology_content,
    results_content,
    discussion_content,
    conclusion_content,
    references_content,
    additional_inputs,
    completed_sections,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	inputs, completed, err := encodeProgress(study.Progress)
	if err != nil {
		return err
	}

	args := []any{
		study.ID,
		study.StudyType,
		study.FieldOfStudy,
		study.MainTopic,
		study.ProblemDescription,
		nullString(study.Keywords),
	}
	args = append(args, contentArgs(study)...)
	args = append(args, inputs, completed, study.CreatedAt, study.UpdatedAt)

	_, err = r.DB.ExecContext(ctx, query, args...)
	return err
}

// GetByID fetches a study by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Study, error) {
	if !ValidID(id) {
		return Study{}, ErrNotFound
	}
	query := `
SELECT ` + studyColumns + `
FROM studies
WHERE id = $1`
	study, err := scanStudy(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Study{}, ErrNotFound
		}
		return Study{}, err
	}
	return study, nil
}

// List lists studies ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Study, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + studyColumns + `
FROM studies
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Study{}
	for rows.Next() {
		study, err := scanStudy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, study)
	}
	return out, rows.Err()
}

// Update writes generated content and progress for an existing study.
func (r *PGRepo) Update(ctx context.Context, study Study) error {
	if !ValidID(study.ID) {
		return ErrNotFound
	}
	const query = `
UPDATE studies
SET title_content = $1,
    abstract_content = $2,
    introduction_content = $3,
    literature_content = $4,
    methodology_content = $5,
    results_content = $6,
    discussion_content = $7,
    conclusion_content = $8,
    references_content = $9,
    additional_inputs = $10,
    completed_sections = $11,
    updated_at = $12
WHERE id = $13`

	inputs, completed, err := encodeProgress(study.Progress)
	if err != nil {
		return err
	}
	args := contentArgs(study)
	args = append(args, inputs, completed, study.UpdatedAt, study.ID)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a study.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	if !ValidID(id) {
		return ErrNotFound
	}
	const query = `DELETE FROM studies WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudy(row rowScanner) (Study, error) {
	var study Study
	var keywords sql.NullString
	sections := content.ContentSections()
	contents := make([]sql.NullString, len(sections))
	var inputs, completed []byte

	dest := []any{
		&study.ID,
		&study.StudyType,
		&study.FieldOfStudy,
		&study.MainTopic,
		&study.ProblemDescription,
		&keywords,
	}
	for i := range contents {
		dest = append(dest, &contents[i])
	}
	dest = append(dest, &inputs, &completed, &study.CreatedAt, &study.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return Study{}, err
	}
	if keywords.Valid {
		study.Keywords = keywords.String
	}
	for i, section := range sections {
		if contents[i].Valid {
			study.SetContent(section, contents[i].String)
		}
	}
	progress, err := decodeProgress(inputs, completed)
	if err != nil {
		return Study{}, err
	}
	study.Progress = progress
	return study, nil
}

// contentArgs returns one argument per content section, in column order.
func contentArgs(study Study) []any {
	sections := content.ContentSections()
	out := make([]any, 0, len(sections))
	for _, section := range sections {
		v, ok := study.Contents[section]
		if !ok {
			out = append(out, sql.NullString{})
			continue
		}
		out = append(out, sql.NullString{String: v, Valid: true})
	}
	return out
}

func encodeProgress(p content.Progress) ([]byte, []byte, error) {
	p = p.Clone()
	inputs, err := json.Marshal(p.AdditionalInputs)
	if err != nil {
		return nil, nil, fmt.Errorf("encode additional inputs: %w", err)
	}
	completed, err := json.Marshal(p.CompletedSections)
	if err != nil {
		return nil, nil, fmt.Errorf("encode completed sections: %w", err)
	}
	return inputs, completed, nil
}

func decodeProgress(inputs, completed []byte) (content.Progress, error) {
	p := content.NewProgress()
	if len(inputs) > 0 {
		if err := json.Unmarshal(inputs, &p.AdditionalInputs); err != nil {
			return content.Progress{}, fmt.Errorf("decode additional inputs: %w", err)
		}
	}
	if len(completed) > 0 {
		if err := json.Unmarshal(completed, &p.CompletedSections); err != nil {
			return content.Progress{}, fmt.Errorf("decode completed sections: %w", err)
		}
	}
	if p.AdditionalInputs == nil {
		p.AdditionalInputs = map[string]string{}
	}
	if p.CompletedSections == nil {
		p.CompletedSections = []content.Section{}
	}
	return p, nil
}

func nullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
