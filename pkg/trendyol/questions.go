package trendyol

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Questions lists customer questions.
func (c *Client) Questions(ctx context.Context, filter QuestionFilter) Response[[]Question] {
	req := c.sellerRequest(http.MethodGet, RouteQuestions, nil, filter.query())
	return list[Question](ctx, c, req, legacyWrapperKeys...)
}

// UnansweredQuestions lists questions waiting for an answer. A
// non-positive size falls back to DefaultRecentSize.
func (c *Client) UnansweredQuestions(ctx context.Context, size int) Response[[]Question] {
	if size <= 0 {
		size = DefaultRecentSize
	}
	return c.Questions(ctx, QuestionFilter{Status: WaitingForAnswer, Size: &size})
}

// AnswerQuestion posts an answer to a customer question.
func (c *Client) AnswerQuestion(ctx context.Context, answer QuestionAnswer) (Response[json.RawMessage], error) {
	if err := requireValue(answer.QuestionID, "questionId"); err != nil {
		return Response[json.RawMessage]{}, err
	}
	if err := requireValue(answer.Text, "text"); err != nil {
		return Response[json.RawMessage]{}, err
	}

	params := Params{"questionId": url.PathEscape(answer.QuestionID.String())}
	req := c.sellerRequest(http.MethodPost, RouteQuestionAnswer, params, nil).
		withBody(map[string]string{"text": answer.Text})
	return send[json.RawMessage](ctx, c, req), nil
}
