package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"jobportal-backend/internal/domain"
)

type profileRepo struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `
	id, account_id, profile_picture, description, currently, job_preference,
	experience, it_details, resume, certifications, recruiting,
	experience_enabled, urls_enabled, certifications_enabled, resume_enabled,
	skills_enabled, languages_enabled, currently_enabled,
	job_preference_enabled, it_details_enabled, website_urls, posted_works`

// GetOrCreate returns the account's profile, inserting an empty one when
// missing. Registration creates the profile in the same transaction as the
// account; this guards accounts that predate that behavior.
func (r *profileRepo) GetOrCreate(ctx context.Context, accountID int64) (*domain.Profile, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (account_id) VALUES ($1) ON CONFLICT (account_id) DO NOTHING`,
		accountID,
	)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE account_id = $1`

	var p domain.Profile
	err = r.db.QueryRow(ctx, query, accountID).Scan(
		&p.ID, &p.AccountID, &p.ProfilePicture, &p.Description, &p.Currently,
		&p.JobPreference, &p.Experience, &p.ITDetails, &p.Resume,
		pq.Array(&p.Certifications), &p.Recruiting,
		&p.ExperienceEnabled, &p.URLsEnabled, &p.CertificationsEnabled,
		&p.ResumeEnabled, &p.SkillsEnabled, &p.LanguagesEnabled,
		&p.CurrentlyEnabled, &p.JobPreferenceEnabled, &p.ITDetailsEnabled,
		&p.WebsiteURLs, &p.PostedWorks,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles SET
			profile_picture = $2, description = $3, currently = $4,
			job_preference = $5, experience = $6, it_details = $7,
			resume = $8, certifications = $9, recruiting = $10,
			experience_enabled = $11, urls_enabled = $12,
			certifications_enabled = $13, resume_enabled = $14,
			skills_enabled = $15, languages_enabled = $16,
			currently_enabled = $17, job_preference_enabled = $18,
			it_details_enabled = $19, website_urls = $20, posted_works = $21
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.ProfilePicture, p.Description, p.Currently,
		p.JobPreference, p.Experience, p.ITDetails,
		p.Resume, pq.Array(p.Certifications), p.Recruiting,
		p.ExperienceEnabled, p.URLsEnabled,
		p.CertificationsEnabled, p.ResumeEnabled,
		p.SkillsEnabled, p.LanguagesEnabled,
		p.CurrentlyEnabled, p.JobPreferenceEnabled,
		p.ITDetailsEnabled, p.WebsiteURLs, p.PostedWorks,
	)
	return err
}

// ReplaceSkills clears the profile's skill rows and inserts the submitted
// set inside one transaction, so no reader ever observes a partially-cleared
// association set. Ids missing from the dictionary insert zero rows and are
// silently skipped.
func (r *profileRepo) ReplaceSkills(ctx context.Context, profileID int64, items []domain.SkillSelection) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM profile_skills WHERE profile_id = $1`, profileID)
	if err != nil {
		return err
	}

	insert := `
		INSERT INTO profile_skills (profile_id, skill_id, proficiency)
		SELECT $1, id, $2 FROM skills WHERE id = $3`
	for _, item := range items {
		if _, err := tx.Exec(ctx, insert, profileID, item.Proficiency, item.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *profileRepo) ReplaceLanguages(ctx context.Context, profileID int64, items []domain.LanguageSelection) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM profile_languages WHERE profile_id = $1`, profileID)
	if err != nil {
		return err
	}

	insert := `
		INSERT INTO profile_languages (profile_id, language_id, read, write, speak, proficiency)
		SELECT $1, id, $2, $3, $4, $5 FROM languages WHERE id = $6`
	for _, item := range items {
		if _, err := tx.Exec(ctx, insert,
			profileID, item.Read, item.Write, item.Speak, item.Proficiency, item.ID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *profileRepo) GetSkills(ctx context.Context, profileID int64) ([]domain.ProfileSkill, error) {
	query := `
		SELECT s.id, s.name, ps.proficiency
		FROM profile_skills ps
		JOIN skills s ON s.id = ps.skill_id
		WHERE ps.profile_id = $1
		ORDER BY s.name ASC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.ProfileSkill{}
	for rows.Next() {
		var s domain.ProfileSkill
		if err := rows.Scan(&s.SkillID, &s.Name, &s.Proficiency); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *profileRepo) GetLanguages(ctx context.Context, profileID int64) ([]domain.ProfileLanguage, error) {
	query := `
		SELECT l.id, l.name, pl.read, pl.write, pl.speak, pl.proficiency
		FROM profile_languages pl
		JOIN languages l ON l.id = pl.language_id
		WHERE pl.profile_id = $1
		ORDER BY l.name ASC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	languages := []domain.ProfileLanguage{}
	for rows.Next() {
		var l domain.ProfileLanguage
		if err := rows.Scan(&l.LanguageID, &l.Name, &l.Read, &l.Write, &l.Speak, &l.Proficiency); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, rows.Err()
}
