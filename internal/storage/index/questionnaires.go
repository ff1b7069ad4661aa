package index

import (
	"context"

	"resource_catalog/internal/domain"
)

func (r *Repository) AddQuestionnaire(ctx context.Context, q domain.Questionnaire) (int64, error) {
	if err := validate("questionnaire",
		required("language_slug", q.LanguageSlug),
		required("language_name", q.LanguageName),
		requiredID("td_id", q.TdID),
	); err != nil {
		return 0, err
	}
	direction := q.LanguageDirection
	if direction == "" {
		direction = "ltr"
	}

	return r.upsert(ctx, "questionnaire", `
		INSERT INTO questionnaire (language_slug, language_name, language_direction, td_id)
		VALUES (:language_slug, :language_name, :language_direction, :td_id)
		ON CONFLICT DO NOTHING;
		UPDATE questionnaire SET
			language_slug = :language_slug,
			language_name = :language_name,
			language_direction = :language_direction
		WHERE td_id = :td_id`,
		`SELECT id FROM questionnaire WHERE td_id = :td_id`,
		map[string]any{
			"language_slug":      q.LanguageSlug,
			"language_name":      q.LanguageName,
			"language_direction": direction,
			"td_id":              q.TdID,
		})
}

// AddQuestion upserts a question of a questionnaire. A nil DependsOn is stored as NULL.
func (r *Repository) AddQuestion(ctx context.Context, q domain.Question, questionnaireID int64) (int64, error) {
	if err := validate("question",
		required("text", q.Text),
		required("input_type", q.InputType),
		requiredID("questionnaire_id", questionnaireID),
	); err != nil {
		return 0, err
	}

	return r.upsert(ctx, "question", `
		INSERT INTO question (text, help, is_required, input_type, sort, depends_on, td_id, questionnaire_id)
		VALUES (:text, :help, :is_required, :input_type, :sort, :depends_on, :td_id, :questionnaire_id)
		ON CONFLICT DO NOTHING;
		UPDATE question SET
			text = :text,
			help = :help,
			is_required = :is_required,
			input_type = :input_type,
			sort = :sort,
			depends_on = :depends_on
		WHERE td_id = :td_id AND questionnaire_id = :questionnaire_id`,
		`SELECT id FROM question WHERE td_id = :td_id AND questionnaire_id = :questionnaire_id`,
		map[string]any{
			"text":             q.Text,
			"help":             q.Help,
			"is_required":      q.IsRequired,
			"input_type":       q.InputType,
			"sort":             q.Sort,
			"depends_on":       q.DependsOn,
			"td_id":            q.TdID,
			"questionnaire_id": questionnaireID,
		})
}

func (r *Repository) GetQuestionnaires(ctx context.Context) ([]domain.Questionnaire, error) {
	var qs []domain.Questionnaire
	err := r.store.Query(ctx, &qs, `
		SELECT id, language_slug, language_name, language_direction, td_id
		FROM questionnaire ORDER BY td_id`, nil)
	return qs, err
}

func (r *Repository) GetQuestions(ctx context.Context, questionnaireID int64) ([]domain.Question, error) {
	var qs []domain.Question
	err := r.store.Query(ctx, &qs, `
		SELECT id, text, help, is_required, input_type, sort, depends_on, td_id, questionnaire_id
		FROM question WHERE questionnaire_id = :questionnaire_id
		ORDER BY sort, id`,
		map[string]any{"questionnaire_id": questionnaireID})
	return qs, err
}
