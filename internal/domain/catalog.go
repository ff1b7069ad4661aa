package domain

// SourceLanguage is a language that translation source content is published in.
type SourceLanguage struct {
	ID        int64  `db:"id" json:"id"`
	Slug      string `db:"slug" json:"slug"`
	Name      string `db:"name" json:"name"`
	Direction string `db:"direction" json:"direction"` // "ltr" or "rtl"
}

// TargetLanguage is a language that content can be translated into.
type TargetLanguage struct {
	ID                int64  `db:"id" json:"id"`
	Slug              string `db:"slug" json:"slug"`
	Name              string `db:"name" json:"name"`
	AnglicizedName    string `db:"anglicized_name" json:"anglicized_name"`
	Direction         string `db:"direction" json:"direction"`
	Region            string `db:"region" json:"region"`
	IsGatewayLanguage bool   `db:"is_gateway_language" json:"is_gateway_language"`
}

// Category is one level of a project's category path.
// Root categories have ParentID 0.
type Category struct {
	ID       int64  `db:"id" json:"id"`
	Slug     string `db:"slug" json:"slug"`
	Name     string `db:"name" json:"name"`
	ParentID int64  `db:"parent_id" json:"parent_id"`
}

type Project struct {
	ID               int64  `db:"id" json:"id"`
	Slug             string `db:"slug" json:"slug"`
	Name             string `db:"name" json:"name"`
	Desc             string `db:"description" json:"desc"`
	Icon             string `db:"icon" json:"icon"`
	Sort             int    `db:"sort" json:"sort"`
	ChunksURL        string `db:"chunks_url" json:"chunks_url"`
	SourceLanguageID int64  `db:"source_language_id" json:"source_language_id"`
	CategoryID       int64  `db:"category_id" json:"category_id"`

	// Not stored on the row.
	LanguageSlug string `db:"language_slug" json:"language_slug"`
}

type Resource struct {
	ID            int64  `db:"id" json:"id"`
	Slug          string `db:"slug" json:"slug"`
	Name          string `db:"name" json:"name"`
	TranslateMode string `db:"translate_mode" json:"translate_mode"`
	CheckingLevel string `db:"checking_level" json:"checking_level"`
	Comments      string `db:"comments" json:"comments"`
	PubDate       string `db:"pub_date" json:"pub_date"`
	License       string `db:"license" json:"license"`
	Version       string `db:"version" json:"version"`
	ProjectID     int64  `db:"project_id" json:"project_id"`

	// Formats are written by the repository. Readers leave it empty and
	// expose the container format only.
	Formats         []ResourceFormat `db:"-" json:"formats,omitempty"`
	ContainerFormat *ResourceFormat  `db:"-" json:"container_format,omitempty"`

	LanguageSlug string `db:"language_slug" json:"language_slug"`
	ProjectSlug  string `db:"project_slug" json:"project_slug"`
}

// ResourceFormat is one downloadable rendition of a resource.
type ResourceFormat struct {
	ID            int64  `db:"id" json:"id"`
	SyntaxVersion string `db:"syntax_version" json:"syntax_version"`
	MimeType      string `db:"mime_type" json:"mime_type"`
	ModifiedAt    int64  `db:"modified_at" json:"modified_at"`
	URL           string `db:"url" json:"url"`
	ResourceID    int64  `db:"resource_id" json:"resource_id"`
}

// Catalog points at one of the global feeds.
type Catalog struct {
	ID         int64  `db:"id" json:"id"`
	Slug       string `db:"slug" json:"slug"`
	URL        string `db:"url" json:"url"`
	ModifiedAt int64  `db:"modified_at" json:"modified_at"`
}

// ContainerMimePrefix prefixes the media type of every resource container format.
const ContainerMimePrefix = "application/tsrc+"

const (
	CatalogLangnames            = "langnames"
	CatalogNewLanguageQuestions = "new-language-questions"
)
