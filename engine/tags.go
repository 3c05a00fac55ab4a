package engine

import (
	"fmt"
	"sort"

	"github.com/velaraptor/pocas-backend/schema"
)

// FallbackTag widens the candidate query when the resolved profile would be
// too narrow to match anything useful.
const FallbackTag = "Public Benefits"

var (
	ErrAnswerCountMismatch = fmt.Errorf("number of answers does not match number of questions")
)

// ZipAnswers pairs the raw 0/1 answer vector with the question list after an
// explicit ascending-id sort. The length precondition fails fast rather than
// truncating either side.
func ZipAnswers(answers []int, questions []schema.Question) ([]schema.AnsweredQuestion, error) {
	if len(answers) != len(questions) {
		return nil, ErrAnswerCountMismatch
	}

	sorted := make([]schema.Question, len(questions))
	copy(sorted, questions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	answered := make([]schema.AnsweredQuestion, len(sorted))
	for i, question := range sorted {
		answered[i] = schema.AnsweredQuestion{
			QuestionID: question.ID,
			Tags:       question.Tags,
			Answered:   answers[i] != 0,
		}
	}

	return answered, nil
}

// ResolveTags builds the complete user tag profile for one request: the union
// of tags from affirmatively answered questions, the age-bracket tag, and the
// fallback tag when the set would otherwise hold at most one entry.
func ResolveTags(answers []int, questions []schema.Question, age int) ([]string, error) {
	answered, err := ZipAnswers(answers, questions)
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0)
	seen := make(map[string]bool)
	add := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, a := range answered {
		if !a.Answered {
			continue
		}
		for _, tag := range a.Tags {
			add(tag)
		}
	}

	add(AgeBracketTag(age))

	if len(tags) <= 1 {
		add(FallbackTag)
	}

	return tags, nil
}
