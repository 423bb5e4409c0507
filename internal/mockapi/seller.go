package mockapi

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

const (
	orderCount   = 3
	ledgerCount  = 8
	recentWindow = 7 * 24 * time.Hour
)

func (s *Server) registerSeller() {
	s.echo.GET(echoPath(trendyol.RouteOrders), s.handleOrders)
	s.echo.GET(echoPath(trendyol.RouteClaims), s.handleClaims)
	s.echo.GET(echoPath(trendyol.RouteClaimIssueReasons), s.handleIssueReasons)
	s.echo.GET(echoPath(trendyol.RouteQuestions), s.handleQuestions)
	s.echo.POST(echoPath(trendyol.RouteQuestionAnswer), s.handleAnswer)
	s.echo.GET(echoPath(trendyol.RouteWebhooks), s.handleListWebhooks)
	s.echo.POST(echoPath(trendyol.RouteWebhooks), s.handleCreateWebhook)
	s.echo.DELETE(echoPath(trendyol.RouteWebhookByID), s.handleDeleteWebhook)
	s.echo.GET(echoPath(trendyol.RouteSettlements), s.handleSettlements)
	s.echo.GET(echoPath(trendyol.RouteOtherFinancials), s.handleOtherFinancials)
}

// dateRange reads startDate and endDate as epoch millis. Missing bounds
// default to the last week ending now.
func dateRange(c echo.Context) (time.Time, time.Time, bool) {
	end := time.Now()
	start := end.Add(-recentWindow)
	if v := c.QueryParam("endDate"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		end = time.UnixMilli(ms)
	}
	if v := c.QueryParam("startDate"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		start = time.UnixMilli(ms)
	}
	return start, end, !start.After(end)
}

// within spreads n timestamps evenly across [start, end].
func within(start, end time.Time, i, n int) time.Time {
	return start.Add(end.Sub(start) * time.Duration(i+1) / time.Duration(n+1))
}

func (s *Server) handleOrders(c echo.Context) error {
	page, size, err := pageParams(c, 50, trendyol.MaxLegacyPageSize)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}
	start, end, ok := dateRange(c)
	if !ok {
		return apiError(c, http.StatusBadRequest, "invalid date range")
	}

	orders := make([]trendyol.Order, 0, orderCount)
	for i := range orderCount {
		o := order(i, within(start, end, i, orderCount))
		if n := c.QueryParam("orderNumber"); n != "" && n != o.OrderNumber {
			continue
		}
		orders = append(orders, o)
	}
	return c.JSON(http.StatusOK, legacyPage(orders, page, size))
}

func (s *Server) handleClaims(c echo.Context) error {
	page, size, err := pageParams(c, 50, trendyol.MaxLegacyPageSize)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}
	start, end, ok := dateRange(c)
	if !ok {
		return apiError(c, http.StatusBadRequest, "invalid date range")
	}
	return c.JSON(http.StatusOK, legacyPage([]trendyol.Claim{claim(within(start, end, 0, 1))}, page, size))
}

func (s *Server) handleIssueReasons(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"issueReasons": issueReasons})
}

func (s *Server) handleQuestions(c echo.Context) error {
	page, size, err := pageParams(c, 50, trendyol.MaxLegacyPageSize)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	status := trendyol.QuestionStatus(c.QueryParam("status"))

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []trendyol.Question{}
	for _, q := range questions() {
		if answer, ok := s.answers[q.ID.String()]; ok {
			q.AnswerText = answer
			q.Status = trendyol.WaitingForApprove
		}
		if status == "" || q.Status == status {
			matched = append(matched, q)
		}
	}
	return c.JSON(http.StatusOK, legacyPage(matched, page, size))
}

func (s *Server) handleAnswer(c echo.Context) error {
	id := c.Param("questionId")
	if !slices.ContainsFunc(questions(), func(q trendyol.Question) bool { return q.ID.String() == id }) {
		return apiError(c, http.StatusNotFound, "question not found: "+id)
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		return apiError(c, http.StatusBadRequest, "text is required")
	}

	s.mu.Lock()
	s.answers[id] = body.Text
	s.mu.Unlock()

	return c.NoContent(http.StatusOK)
}

// handleListWebhooks answers with the wrapped form the remote API uses.
func (s *Server) handleListWebhooks(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hooks := make([]trendyol.Webhook, 0, len(s.webhooks))
	for _, w := range s.webhooks {
		hooks = append(hooks, w)
	}
	slices.SortFunc(hooks, func(a, b trendyol.Webhook) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return c.JSON(http.StatusOK, map[string]any{"webhooks": hooks})
}

func (s *Server) handleCreateWebhook(c echo.Context) error {
	var w trendyol.Webhook
	if err := json.NewDecoder(c.Request().Body).Decode(&w); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if w.URL == "" {
		return apiError(c, http.StatusBadRequest, "url is required")
	}

	active := true
	w.ID = trendyol.ID(uuid.NewString())
	w.Active = &active
	w.CreatedDate = time.Now().UnixMilli()

	s.mu.Lock()
	s.webhooks[w.ID.String()] = w
	s.mu.Unlock()

	return c.JSON(http.StatusOK, w)
}

func (s *Server) handleDeleteWebhook(c echo.Context) error {
	id := c.Param("webhookId")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.webhooks[id]; !ok {
		return apiError(c, http.StatusNotFound, "webhook not found: "+id)
	}
	delete(s.webhooks, id)
	return c.NoContent(http.StatusNoContent)
}

// transactionFilter returns the requested transaction types, preferring
// the plural parameter.
func transactionFilter(c echo.Context) []string {
	if v := c.QueryParam("transactionTypes"); v != "" {
		return strings.Split(v, ",")
	}
	if v := c.QueryParam("transactionType"); v != "" {
		return []string{v}
	}
	return nil
}

// requireRange reads a mandatory date range. A non-empty message explains
// why the range was rejected.
func requireRange(c echo.Context) (start, end time.Time, message string) {
	if c.QueryParam("startDate") == "" || c.QueryParam("endDate") == "" {
		return start, end, "startDate and endDate are required"
	}
	start, end, ok := dateRange(c)
	if !ok {
		return start, end, "invalid date range"
	}
	return start, end, ""
}

func (s *Server) handleSettlements(c echo.Context) error {
	start, end, msg := requireRange(c)
	if msg != "" {
		return apiError(c, http.StatusBadRequest, msg)
	}
	page, size, err := pageParams(c, 500, 1000)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	types := transactionFilter(c)
	records := []trendyol.SettlementRecord{}
	for i := range ledgerCount {
		r := settlement(i, within(start, end, i, ledgerCount))
		if len(types) == 0 || slices.Contains(types, r.TransactionType) {
			records = append(records, r)
		}
	}
	return c.JSON(http.StatusOK, legacyPage(records, page, size))
}

func (s *Server) handleOtherFinancials(c echo.Context) error {
	start, end, msg := requireRange(c)
	if msg != "" {
		return apiError(c, http.StatusBadRequest, msg)
	}
	page, size, err := pageParams(c, 500, 1000)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	types := transactionFilter(c)
	records := []trendyol.OtherFinancialsRecord{}
	for i := range ledgerCount {
		r := otherFinancial(i, within(start, end, i, ledgerCount))
		if len(types) == 0 || slices.Contains(types, r.TransactionType) {
			records = append(records, r)
		}
	}
	return c.JSON(http.StatusOK, legacyPage(records, page, size))
}
