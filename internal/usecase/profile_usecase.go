package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo     domain.ProfileRepository
	accountRepo     domain.AccountRepository
	applicationRepo domain.ApplicationRepository
	dictionaryRepo  domain.DictionaryRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	profileRepo domain.ProfileRepository,
	accountRepo domain.AccountRepository,
	applicationRepo domain.ApplicationRepository,
	dictionaryRepo domain.DictionaryRepository,
) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo:     profileRepo,
		accountRepo:     accountRepo,
		applicationRepo: applicationRepo,
		dictionaryRepo:  dictionaryRepo,
	}
}

// GetProfile get-or-creates the account's profile and loads its skill and
// language associations plus the account's job applications.
func (uc *profileUsecase) GetProfile(ctx context.Context, accountID int64) (*domain.Profile, error) {
	acc, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	profile, err := uc.profileRepo.GetOrCreate(ctx, acc.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if profile.Skills, err = uc.profileRepo.GetSkills(ctx, profile.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	if profile.Languages, err = uc.profileRepo.GetLanguages(ctx, profile.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	if profile.Applications, err = uc.applicationRepo.GetByAccountID(ctx, acc.ID); err != nil {
		return nil, apperror.Internal(err)
	}

	profile.User = &domain.UserSummary{
		ID:          acc.ID,
		Username:    acc.Username,
		Email:       acc.Email,
		Role:        acc.Role,
		CompanyName: acc.CompanyName,
	}
	return profile, nil
}

// UpdateProfile applies a partial patch. Absent scalar keys keep their
// stored value; absent enabled flags reset to true (the historical client
// contract); malformed JSON lists degrade to empty lists.
func (uc *profileUsecase) UpdateProfile(ctx context.Context, accountID int64, patch domain.ProfilePatch) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetOrCreate(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	applyString(&profile.Description, patch.Description)
	applyString(&profile.Currently, patch.Currently)
	applyString(&profile.Experience, patch.Experience)
	applyString(&profile.ITDetails, patch.ITDetails)
	if patch.JobPreference != nil {
		profile.JobPreference = *patch.JobPreference
	}
	if patch.Recruiting != nil {
		profile.Recruiting = *patch.Recruiting
	}

	profile.ExperienceEnabled = flagValue(patch.ExperienceEnabled)
	profile.URLsEnabled = flagValue(patch.URLsEnabled)
	profile.CertificationsEnabled = flagValue(patch.CertificationsEnabled)
	profile.ResumeEnabled = flagValue(patch.ResumeEnabled)
	profile.SkillsEnabled = flagValue(patch.SkillsEnabled)
	profile.LanguagesEnabled = flagValue(patch.LanguagesEnabled)
	profile.CurrentlyEnabled = flagValue(patch.CurrentlyEnabled)
	profile.JobPreferenceEnabled = flagValue(patch.JobPreferenceEnabled)
	profile.ITDetailsEnabled = flagValue(patch.ITDetailsEnabled)

	if patch.ProfilePicture != nil {
		profile.ProfilePicture = patch.ProfilePicture
	}
	if patch.Resume != nil {
		profile.Resume = patch.Resume
	}
	// New certification uploads append; no new files leaves the list alone
	if len(patch.NewCertifications) > 0 {
		profile.Certifications = append(profile.Certifications, patch.NewCertifications...)
	}

	if patch.WebsiteURLs != nil {
		profile.WebsiteURLs = lenientJSONList(*patch.WebsiteURLs)
	}
	if patch.PostedWorks != nil {
		profile.PostedWorks = lenientJSONList(*patch.PostedWorks)
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}

	if patch.Skills != nil {
		items := NormalizeSkillSelections(*patch.Skills)
		if err := uc.profileRepo.ReplaceSkills(ctx, profile.ID, items); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if patch.Languages != nil {
		items := NormalizeLanguageSelections(*patch.Languages)
		if err := uc.profileRepo.ReplaceLanguages(ctx, profile.ID, items); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	return uc.GetProfile(ctx, accountID)
}

func (uc *profileUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := uc.dictionaryRepo.ListSkills(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return skills, nil
}

func (uc *profileUsecase) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	languages, err := uc.dictionaryRepo.ListLanguages(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return languages, nil
}

func applyString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

// flagValue resolves an enabled flag: absent means enabled.
func flagValue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// lenientJSONList passes through parseable JSON and substitutes an empty
// list for anything malformed instead of rejecting the request.
func lenientJSONList(raw string) json.RawMessage {
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw)
	}
	return json.RawMessage("[]")
}

// NormalizeSkillSelections parses a skill replace-all payload: a JSON list
// of ids or {id, proficiency} objects. Malformed payloads normalize to the
// empty set; entries without an id are dropped.
func NormalizeSkillSelections(raw string) []domain.SkillSelection {
	var items []interface{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}

	selections := []domain.SkillSelection{}
	for _, item := range items {
		var sel domain.SkillSelection
		switch v := item.(type) {
		case map[string]interface{}:
			sel.ID = asID(v["id"])
			sel.Proficiency, _ = v["proficiency"].(string)
		default:
			sel.ID = asID(item)
		}
		if sel.ID == 0 {
			continue
		}
		if sel.Proficiency == "" {
			sel.Proficiency = domain.ProficiencyBeginner
		}
		selections = append(selections, sel)
	}
	return selections
}

// NormalizeLanguageSelections parses a language replace-all payload: a JSON
// list of ids or {id, read, write, speak, proficiency} objects.
func NormalizeLanguageSelections(raw string) []domain.LanguageSelection {
	var items []interface{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}

	selections := []domain.LanguageSelection{}
	for _, item := range items {
		var sel domain.LanguageSelection
		switch v := item.(type) {
		case map[string]interface{}:
			sel.ID = asID(v["id"])
			sel.Read = asBool(v["read"])
			sel.Write = asBool(v["write"])
			sel.Speak = asBool(v["speak"])
			sel.Proficiency, _ = v["proficiency"].(string)
		default:
			sel.ID = asID(item)
		}
		if sel.ID == 0 {
			continue
		}
		if sel.Proficiency == "" {
			sel.Proficiency = domain.ProficiencyBeginner
		}
		selections = append(selections, sel)
	}
	return selections
}

func asID(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case string:
		var id int64
		for _, r := range n {
			if r < '0' || r > '9' {
				return 0
			}
			id = id*10 + int64(r-'0')
		}
		return id
	default:
		return 0
	}
}

func asBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b != "" && b != "0" && b != "false"
	default:
		return false
	}
}
