package domain

import (
	"context"
	"encoding/json"
)

// Job preference values
const (
	PreferenceRemote = "remote"
	PreferenceOnsite = "onsite"
	PreferenceHybrid = "hybrid"
)

// Skill/language proficiency values
const (
	ProficiencyBeginner     = "beg"
	ProficiencyIntermediate = "inter"
	ProficiencyExpert       = "expert"
)

// Skill and Language are global reference dictionaries, unique by name.
// The API exposes no write path for them; see scripts/seeddict.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProfileSkill is a (profile, skill) join row serialized with the skill's
// dictionary id and name, as the clients expect.
type ProfileSkill struct {
	SkillID     int64  `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type ProfileLanguage struct {
	LanguageID  int64  `json:"id"`
	Name        string `json:"name"`
	Read        bool   `json:"read"`
	Write       bool   `json:"write"`
	Speak       bool   `json:"speak"`
	Proficiency string `json:"proficiency"`
}

// Profile is the 1:1 editable record attached to an Account. The *_enabled
// flags are client display hints only; the server always serves the fields.
type Profile struct {
	ID             int64   `json:"-"`
	AccountID      int64   `json:"-"`
	ProfilePicture *string `json:"profile_picture"`
	Description    *string `json:"description"`
	Currently      *string `json:"currently"`
	JobPreference  string  `json:"job_preference"`
	Experience     *string `json:"experience"`
	ITDetails      *string `json:"it_details"`
	Resume         *string `json:"resume"`
	Certifications []string `json:"certifications"`
	Recruiting     bool    `json:"recruiting"`

	ExperienceEnabled     bool `json:"experience_enabled"`
	URLsEnabled           bool `json:"urls_enabled"`
	CertificationsEnabled bool `json:"certifications_enabled"`
	ResumeEnabled         bool `json:"resume_enabled"`
	SkillsEnabled         bool `json:"skills_enabled"`
	LanguagesEnabled      bool `json:"languages_enabled"`
	CurrentlyEnabled      bool `json:"currently_enabled"`
	JobPreferenceEnabled  bool `json:"job_preference_enabled"`
	ITDetailsEnabled      bool `json:"it_details_enabled"`

	// Free-form JSON lists; no schema beyond being parseable JSON.
	WebsiteURLs json.RawMessage `json:"website_urls"`
	PostedWorks json.RawMessage `json:"posted_works"`

	User         *UserSummary      `json:"user,omitempty"`
	Skills       []ProfileSkill    `json:"skills"`
	Languages    []ProfileLanguage `json:"languages"`
	Applications []JobApplication  `json:"applications"`
}

// SkillSelection is one entry of a skill replace-all submission.
type SkillSelection struct {
	ID          int64
	Proficiency string
}

// LanguageSelection is one entry of a language replace-all submission.
type LanguageSelection struct {
	ID          int64
	Read        bool
	Write       bool
	Speak       bool
	Proficiency string
}

// ProfilePatch carries a partial update. Nil pointer means "key absent".
// Absent scalar keys leave the stored value unchanged; absent enabled flags
// reset to true (the historical client contract, not a merge).
type ProfilePatch struct {
	Description   *string
	Currently     *string
	JobPreference *string
	Experience    *string
	ITDetails     *string
	Recruiting    *bool

	ExperienceEnabled     *bool
	URLsEnabled           *bool
	CertificationsEnabled *bool
	ResumeEnabled         *bool
	SkillsEnabled         *bool
	LanguagesEnabled      *bool
	CurrentlyEnabled      *bool
	JobPreferenceEnabled  *bool
	ITDetailsEnabled      *bool

	// Raw JSON payloads as submitted; malformed input degrades to an
	// empty list rather than an error.
	WebsiteURLs *string
	PostedWorks *string
	Skills      *string
	Languages   *string

	// Storage paths for files uploaded with this request.
	ProfilePicture    *string
	Resume            *string
	NewCertifications []string
}

type ProfileRepository interface {
	// GetOrCreate returns the account's profile, creating an empty one if
	// missing. Idempotent; safe to call on every read and write.
	GetOrCreate(ctx context.Context, accountID int64) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	// ReplaceSkills deletes every skill row for the profile and inserts the
	// given set inside one transaction. Unknown skill ids are skipped.
	ReplaceSkills(ctx context.Context, profileID int64, items []SkillSelection) error
	ReplaceLanguages(ctx context.Context, profileID int64, items []LanguageSelection) error
	GetSkills(ctx context.Context, profileID int64) ([]ProfileSkill, error)
	GetLanguages(ctx context.Context, profileID int64) ([]ProfileLanguage, error)
}

type DictionaryRepository interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	ListLanguages(ctx context.Context) ([]Language, error)
}

type ProfileUsecase interface {
	// GetProfile resolves the account, then get-or-creates its profile and
	// loads skills, languages and the account's applications.
	GetProfile(ctx context.Context, accountID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, accountID int64, patch ProfilePatch) (*Profile, error)
	ListSkills(ctx context.Context) ([]Skill, error)
	ListLanguages(ctx context.Context) ([]Language, error)
}
