package door43

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource_catalog/internal/domain"
)

func TestDecodeRootCatalog_AcceptsStringNumbers(t *testing.T) {
	entries, err := DecodeRootCatalog([]byte(`[
		{"slug":"1ch","sort":"13","date_modified":"20160223","lang_catalog":"https://x/1ch/languages.json","meta":["bible-ot"]},
		{"slug":"obs","sort":1,"date_modified":20150826,"lang_catalog":"https://x/obs/languages.json","meta":[]}
	]`))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "1ch", entries[0].Slug)
	assert.Equal(t, flexInt(13), entries[0].Sort)
	assert.Equal(t, flexInt(20160223), entries[0].DateModified)
	assert.Equal(t, []string{"bible-ot"}, entries[0].Meta)
	assert.Equal(t, flexInt(1), entries[1].Sort)
}

func TestDecodeRootCatalog_Malformed(t *testing.T) {
	_, err := DecodeRootCatalog([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestLanguageEntry_Mapping(t *testing.T) {
	entries, err := DecodeLanguageCatalog([]byte(`[{
		"language":{"slug":"en","name":"English","direction":"ltr","date_modified":"20151222"},
		"project":{"name":"1 Chronicles","desc":"","sort":"13","meta":["Bible: OT"]},
		"res_catalog":"https://x/1ch/en/resources.json"
	}]`))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	root := RootEntry{Slug: "1ch", Meta: []string{"bible-ot"}}
	e := entries[0]

	assert.Equal(t, domain.SourceLanguage{Slug: "en", Name: "English", Direction: "ltr"}, e.SourceLanguage())

	project := e.Project(root)
	assert.Equal(t, "1ch", project.Slug)
	assert.Equal(t, "1 Chronicles", project.Name)
	assert.Equal(t, 13, project.Sort)
	assert.Equal(t, "https://api.unfoldingword.org/bible/txt/1/1ch/chunks.json", project.ChunksURL)

	assert.Equal(t, []domain.Category{{Slug: "bible-ot", Name: "Bible: OT"}}, e.Categories(root))
}

func TestLanguageEntry_CategoryNameFallsBackToSlug(t *testing.T) {
	e := LanguageEntry{}
	cats := e.Categories(RootEntry{Meta: []string{"bible", "bible-nt"}})
	assert.Equal(t, []domain.Category{{Slug: "bible", Name: "bible"}, {Slug: "bible-nt", Name: "bible-nt"}}, cats)
}

func TestResourceEntry_Mapping(t *testing.T) {
	entries, err := DecodeResourceCatalog([]byte(`[{
		"slug":"ulb","name":"Unlocked Literal Bible","date_modified":"20160223",
		"source":"https://x/1ch/en/ulb/source.json",
		"status":{"checking_level":"3","comments":"Original source text","publish_date":"2015-12-22","license":"CC BY-SA","version":4}
	}]`))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	r := entries[0].Resource("1ch")
	assert.Equal(t, "ulb", r.Slug)
	assert.Equal(t, "gl", r.TranslateMode)
	assert.Equal(t, "3", r.CheckingLevel)
	assert.Equal(t, "2015-12-22", r.PubDate)
	assert.Equal(t, "4", r.Version)
	require.Len(t, r.Formats, 1)
	assert.Equal(t, "application/tsrc+book", r.Formats[0].MimeType)
	assert.Equal(t, int64(20160223), r.Formats[0].ModifiedAt)
	assert.Equal(t, "https://x/1ch/en/ulb/source.json", r.Formats[0].URL)

	assert.Equal(t, "all", entries[0].Resource("obs").TranslateMode)
}

func TestHelpers(t *testing.T) {
	assert.Empty(t, ChunksURL("obs"))
	assert.Equal(t, "application/tsrc+help", ContainerMime("tn"))
	assert.Equal(t, "application/tsrc+dict", ContainerMime("tw"))
	assert.Equal(t, "application/tsrc+man", ContainerMime("ta"))
	assert.True(t, IsContainerMime("application/tsrc+book"))
	assert.False(t, IsContainerMime("application/pdf"))

	catalogs := GlobalCatalogs()
	require.Len(t, catalogs, 2)
	assert.Equal(t, domain.CatalogLangnames, catalogs[0].Slug)
	assert.Equal(t, domain.CatalogNewLanguageQuestions, catalogs[1].Slug)
}

func TestDecodeLangnames(t *testing.T) {
	langs, err := DecodeLangnames([]byte(`[
		{"lc":"aa","ln":"Afaraf","ang":"Afar","ld":"ltr","lr":"Africa","gw":false,"cc":["DJ"],"alt":[],"pk":6},
		{"lc":"ar","ln":"العربية","ang":"Arabic","ld":"rtl","lr":"Asia","gw":true}
	]`))
	require.NoError(t, err)
	require.Len(t, langs, 2)

	assert.Equal(t, domain.TargetLanguage{
		Slug: "aa", Name: "Afaraf", AnglicizedName: "Afar", Direction: "ltr", Region: "Africa",
	}, langs[0])
	assert.True(t, langs[1].IsGatewayLanguage)
	assert.Equal(t, "rtl", langs[1].Direction)
}

func TestDecodeQuestionnaires_KeepsOrderAndDependencies(t *testing.T) {
	sets, err := DecodeQuestionnaires([]byte(`{"languages":[{
		"questionnaire_id":1,"language_slug":"en","language_name":"English","language_direction":"ltr",
		"questions":[
			{"id":0,"text":"Language name?","help":"","required":true,"input_type":"string","sort":1,"depends_on":null},
			{"id":1,"text":"Also known as?","help":"","required":false,"input_type":"string","sort":2,"depends_on":0}
		]
	}]}`))
	require.NoError(t, err)
	require.Len(t, sets, 1)

	assert.Equal(t, int64(1), sets[0].Questionnaire.TdID)
	assert.Equal(t, "en", sets[0].Questionnaire.LanguageSlug)
	require.Len(t, sets[0].Questions, 2)
	assert.Equal(t, 1, sets[0].Questions[0].Sort)
	assert.True(t, sets[0].Questions[0].IsRequired)
	assert.Nil(t, sets[0].Questions[0].DependsOn)
	require.NotNil(t, sets[0].Questions[1].DependsOn)
	assert.Equal(t, int64(0), *sets[0].Questions[1].DependsOn)
	assert.Equal(t, int64(1), sets[0].Questions[1].TdID)
}

func TestDecodeChunks(t *testing.T) {
	chunks, err := DecodeChunks([]byte(`[{"chp":"01","firstvs":"01"},{"chp":"01","firstvs":"04"}]`))
	require.NoError(t, err)
	assert.Equal(t, []ChunkEntry{{Chapter: "01", Verse: "01"}, {Chapter: "01", Verse: "04"}}, chunks)
}
