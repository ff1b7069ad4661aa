// Package door43 decodes the legacy content API feeds into domain entities.
package door43

import (
	"encoding/json"
	"fmt"
	"strings"

	"resource_catalog/internal/domain"
)

const (
	LangnamesURL             = "https://td.unfoldingword.org/exports/langnames.json"
	NewLanguageQuestionsURL  = "https://td.unfoldingword.org/api/questionnaire/"
	chunksURLTemplate        = "https://api.unfoldingword.org/bible/txt/1/%s/chunks.json"
	obsSlug                  = "obs"
	containerMimePrefix      = domain.ContainerMimePrefix
	containerSyntaxVersion   = "1.0"
	DefaultVersificationSlug = "en-US"
	DefaultVersificationName = "American English"
)

// GlobalCatalogs returns the catalogs the legacy root feed does not list.
func GlobalCatalogs() []domain.Catalog {
	return []domain.Catalog{
		{Slug: domain.CatalogLangnames, URL: LangnamesURL},
		{Slug: domain.CatalogNewLanguageQuestions, URL: NewLanguageQuestionsURL},
	}
}

// IsContainerMime reports whether mime names a resource container format.
func IsContainerMime(mime string) bool {
	return strings.HasPrefix(mime, containerMimePrefix)
}

// ContainerMime returns the container media type for a resource slug.
func ContainerMime(resourceSlug string) string {
	switch resourceSlug {
	case "tn", "tq", "obs-tn", "obs-tq":
		return containerMimePrefix + "help"
	case "tw":
		return containerMimePrefix + "dict"
	case "ta":
		return containerMimePrefix + "man"
	default:
		return containerMimePrefix + "book"
	}
}

// TranslateMode is "all" for open bible stories and "gl" (gateway languages only) otherwise.
func TranslateMode(projectSlug string) string {
	if projectSlug == obsSlug {
		return "all"
	}
	return "gl"
}

// ChunksURL returns the chunk feed of a project, or "" for open bible stories.
func ChunksURL(projectSlug string) string {
	if projectSlug == obsSlug {
		return ""
	}
	return fmt.Sprintf(chunksURLTemplate, projectSlug)
}

func DecodeRootCatalog(data []byte) ([]RootEntry, error) {
	var entries []RootEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode root catalog: %w", err)
	}
	return entries, nil
}

func DecodeLanguageCatalog(data []byte) ([]LanguageEntry, error) {
	var entries []LanguageEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode language catalog: %w", err)
	}
	return entries, nil
}

func DecodeResourceCatalog(data []byte) ([]ResourceEntry, error) {
	var entries []ResourceEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode resource catalog: %w", err)
	}
	return entries, nil
}

func DecodeChunks(data []byte) ([]ChunkEntry, error) {
	var entries []ChunkEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode chunks: %w", err)
	}
	return entries, nil
}

// SourceLanguage maps the language half of a language catalog entry.
func (e LanguageEntry) SourceLanguage() domain.SourceLanguage {
	return domain.SourceLanguage{
		Slug:      e.Language.Slug,
		Name:      e.Language.Name,
		Direction: e.Language.Direction,
	}
}

// Project maps the project half of a language catalog entry.
func (e LanguageEntry) Project(root RootEntry) domain.Project {
	return domain.Project{
		Slug:      root.Slug,
		Name:      e.ProjectInfo.Name,
		Desc:      e.ProjectInfo.Desc,
		Icon:      e.ProjectInfo.Icon,
		Sort:      int(e.ProjectInfo.Sort),
		ChunksURL: ChunksURL(root.Slug),
	}
}

// Categories pairs the root entry's category slugs with the localized
// names from the language entry, root to leaf.
func (e LanguageEntry) Categories(root RootEntry) []domain.Category {
	categories := make([]domain.Category, 0, len(root.Meta))
	for i, slug := range root.Meta {
		name := slug
		if i < len(e.ProjectInfo.Meta) {
			name = e.ProjectInfo.Meta[i]
		}
		categories = append(categories, domain.Category{Slug: slug, Name: name})
	}
	return categories
}

// Resource maps a resource catalog entry, synthesizing its single container format.
func (e ResourceEntry) Resource(projectSlug string) domain.Resource {
	return domain.Resource{
		Slug:          e.Slug,
		Name:          e.Name,
		TranslateMode: TranslateMode(projectSlug),
		CheckingLevel: string(e.Status.CheckingLevel),
		Comments:      e.Status.Comments,
		PubDate:       e.Status.PublishDate,
		License:       e.Status.License,
		Version:       string(e.Status.Version),
		Formats: []domain.ResourceFormat{{
			SyntaxVersion: containerSyntaxVersion,
			MimeType:      ContainerMime(e.Slug),
			ModifiedAt:    int64(e.DateModified),
			URL:           e.Source,
		}},
	}
}

// DecodeLangnames decodes the compact target language export.
func DecodeLangnames(data []byte) ([]domain.TargetLanguage, error) {
	var entries []LangnameEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode langnames: %w", err)
	}

	languages := make([]domain.TargetLanguage, 0, len(entries))
	for _, e := range entries {
		languages = append(languages, domain.TargetLanguage{
			Slug:              e.LC,
			Name:              e.LN,
			AnglicizedName:    e.Ang,
			Direction:         e.LD,
			Region:            e.LR,
			IsGatewayLanguage: e.GW,
		})
	}
	return languages, nil
}

// QuestionnaireSet is one decoded questionnaire with its questions in feed order.
type QuestionnaireSet struct {
	Questionnaire domain.Questionnaire
	Questions     []domain.Question
}

func DecodeQuestionnaires(data []byte) ([]QuestionnaireSet, error) {
	var feed QuestionnaireFeed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("decode questionnaires: %w", err)
	}

	sets := make([]QuestionnaireSet, 0, len(feed.Languages))
	for _, q := range feed.Languages {
		set := QuestionnaireSet{
			Questionnaire: domain.Questionnaire{
				LanguageSlug:      q.LanguageSlug,
				LanguageName:      q.LanguageName,
				LanguageDirection: q.LanguageDirection,
				TdID:              q.QuestionnaireID,
			},
		}
		for _, question := range q.Questions {
			set.Questions = append(set.Questions, domain.Question{
				Text:       question.Text,
				Help:       question.Help,
				IsRequired: question.Required,
				InputType:  question.InputType,
				Sort:       question.Sort,
				DependsOn:  question.DependsOn,
				TdID:       question.ID,
			})
		}
		sets = append(sets, set)
	}
	return sets, nil
}
