package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal-backend/internal/domain"
)

type dictionaryRepo struct {
	db *pgxpool.Pool
}

// NewDictionaryRepository creates a repository for the skill and language
// reference dictionaries. Read-only from the API's perspective.
func NewDictionaryRepository(db *pgxpool.Pool) domain.DictionaryRepository {
	return &dictionaryRepo{db: db}
}

func (r *dictionaryRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *dictionaryRepo) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM languages ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	languages := []domain.Language{}
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, rows.Err()
}
