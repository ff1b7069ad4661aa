package domain

// Questionnaire is a set of questions used to capture metadata about a new language.
// TdID is the identifier assigned by the remote translation database.
type Questionnaire struct {
	ID                int64  `db:"id" json:"id"`
	LanguageSlug      string `db:"language_slug" json:"language_slug"`
	LanguageName      string `db:"language_name" json:"language_name"`
	LanguageDirection string `db:"language_direction" json:"language_direction"`
	TdID              int64  `db:"td_id" json:"td_id"`
}

// Question belongs to a questionnaire. DependsOn holds the TdID of the
// question whose answer gates this one.
type Question struct {
	ID              int64  `db:"id" json:"id"`
	Text            string `db:"text" json:"text"`
	Help            string `db:"help" json:"help"`
	IsRequired      bool   `db:"is_required" json:"is_required"`
	InputType       string `db:"input_type" json:"input_type"`
	Sort            int    `db:"sort" json:"sort"`
	DependsOn       *int64 `db:"depends_on" json:"depends_on"`
	TdID            int64  `db:"td_id" json:"td_id"`
	QuestionnaireID int64  `db:"questionnaire_id" json:"questionnaire_id"`
}

// Versification is a named verse numbering scheme.
type Versification struct {
	ID   int64  `db:"id" json:"id"`
	Slug string `db:"slug" json:"slug"`
	Name string `db:"name" json:"name"`
}

// ChunkMarker marks the first verse of a chunk within a project.
type ChunkMarker struct {
	ID              int64  `db:"id" json:"id"`
	Chapter         string `db:"chapter" json:"chapter"`
	Verse           string `db:"verse" json:"verse"`
	ProjectSlug     string `db:"project_slug" json:"project_slug"`
	VersificationID int64  `db:"versification_id" json:"versification_id"`
}
