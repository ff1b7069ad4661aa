package door43

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RootEntry is one project in the legacy root catalog.
type RootEntry struct {
	Slug         string   `json:"slug"`
	Sort         flexInt  `json:"sort"`
	DateModified flexInt  `json:"date_modified"`
	LangCatalog  string   `json:"lang_catalog"`
	Meta         []string `json:"meta"`
}

// LanguageEntry is one language a project is available in.
type LanguageEntry struct {
	Language    APILanguage `json:"language"`
	ProjectInfo APIProject  `json:"project"`
	ResCatalog  string      `json:"res_catalog"`
}

type APILanguage struct {
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Direction    string  `json:"direction"`
	DateModified flexInt `json:"date_modified"`
}

type APIProject struct {
	Name string   `json:"name"`
	Desc string   `json:"desc"`
	Icon string   `json:"icon"`
	Sort flexInt  `json:"sort"`
	Meta []string `json:"meta"`
}

// ResourceEntry is one resource of a project in one language.
type ResourceEntry struct {
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	DateModified flexInt   `json:"date_modified"`
	Source       string    `json:"source"`
	Status       APIStatus `json:"status"`
}

type APIStatus struct {
	CheckingLevel flexString `json:"checking_level"`
	Comments      string     `json:"comments"`
	PublishDate   string     `json:"publish_date"`
	License       string     `json:"license"`
	Version       flexString `json:"version"`
}

// LangnameEntry uses the compact field names of the langnames export.
type LangnameEntry struct {
	LC  string   `json:"lc"`
	LN  string   `json:"ln"`
	Ang string   `json:"ang"`
	LD  string   `json:"ld"`
	LR  string   `json:"lr"`
	GW  bool     `json:"gw"`
	CC  []string `json:"cc"`
	Alt []string `json:"alt"`
	PK  int64    `json:"pk"`
}

type QuestionnaireFeed struct {
	Languages []APIQuestionnaire `json:"languages"`
}

type APIQuestionnaire struct {
	QuestionnaireID   int64         `json:"questionnaire_id"`
	LanguageSlug      string        `json:"language_slug"`
	LanguageName      string        `json:"language_name"`
	LanguageDirection string        `json:"language_direction"`
	Questions         []APIQuestion `json:"questions"`
}

type APIQuestion struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Help      string `json:"help"`
	Required  bool   `json:"required"`
	InputType string `json:"input_type"`
	Sort      int    `json:"sort"`
	DependsOn *int64 `json:"depends_on"`
}

type ChunkEntry struct {
	Chapter string `json:"chp"`
	Verse   string `json:"firstvs"`
}

// flexInt accepts both JSON numbers and numeric strings; the legacy feeds use either.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// flexString accepts strings and numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	*f = flexString(b)
	return nil
}
