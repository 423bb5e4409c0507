package mockapi_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/trendyol-seller/internal/config"
	"github.com/donaldgifford/trendyol-seller/internal/mockapi"
	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func newMock(t *testing.T, cfg config.MockServerConfig) *httptest.Server {
	t.Helper()

	if cfg.CursorAfter == 0 {
		cfg.CursorAfter = 9
	}
	if cfg.TotalElements == 0 {
		cfg.TotalElements = 25
	}
	srv := httptest.NewServer(mockapi.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, cfg config.MockServerConfig) *trendyol.Client {
	t.Helper()

	srv := newMock(t, cfg)
	return trendyol.New(trendyol.Credentials{
		SellerID:  "12345",
		APIKey:    "key",
		APISecret: "secret",
	}, trendyol.WithBaseURL(srv.URL))
}

func ptr[T any](v T) *T { return &v }

func TestMock_RejectsMissingCredentials(t *testing.T) {
	t.Parallel()

	srv := newMock(t, config.MockServerConfig{})
	c := trendyol.New(trendyol.Credentials{SellerID: "12345"}, trendyol.WithBaseURL(srv.URL))

	resp, err := c.CreateProductsV2(context.Background(), trendyol.CreateProductsV2Request{
		Items: []trendyol.CreateProductV2Item{{Barcode: "1"}},
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", resp.Error)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, string(resp.Raw))
}

func TestMock_OperationalEndpoints(t *testing.T) {
	t.Parallel()

	srv := newMock(t, config.MockServerConfig{})

	for _, path := range []string{"/healthz", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestMock_Ping(t *testing.T) {
	t.Parallel()

	c := newClient(t, config.MockServerConfig{})
	require.NoError(t, c.Ping(context.Background()))
}

func TestMock_Catalog(t *testing.T) {
	t.Parallel()

	c := newClient(t, config.MockServerConfig{})
	ctx := context.Background()

	brands := c.Brands(ctx, trendyol.BrandFilter{Size: ptr(2)})
	require.True(t, brands.Success, brands.Error)
	assert.Len(t, brands.Data, 2)

	byName, err := c.BrandsByName(ctx, "mavi")
	require.NoError(t, err)
	require.Len(t, byName.Data, 1)
	assert.Equal(t, int64(1793), byName.Data[0].ID)

	cats := c.Categories(ctx)
	require.True(t, cats.Success)
	require.NotEmpty(t, cats.Data)
	assert.Len(t, cats.Data[0].SubCategories, 2)

	legacy, err := c.CategoryAttributes(ctx, 411)
	require.NoError(t, err)
	require.Len(t, legacy.Data, 2)
	assert.Len(t, legacy.Data[0].AttributeValues, 3)

	attrs, err := c.CategoryAttributesV2(ctx, 411)
	require.NoError(t, err)
	require.True(t, attrs.Success)
	assert.Equal(t, int64(411), attrs.Data.ID)
	assert.True(t, attrs.Data.CategoryAttributes[0].Varianter)

	values, err := c.CategoryAttributeValuesV2(ctx, 411, 47, trendyol.AttributeValueFilter{Size: ptr(10)})
	require.NoError(t, err)
	require.True(t, values.Success)
	assert.Len(t, values.Data.Content, 10)
	assert.Equal(t, int64(30), values.Data.TotalElements)
	assert.True(t, values.Data.HasMore())
}

func TestMock_ApprovedPagination(t *testing.T) {
	t.Parallel()

	c := newClient(t, config.MockServerConfig{TotalElements: 25, CursorAfter: 1})
	ctx := context.Background()

	filter := trendyol.ProductFilterV2{Size: ptr(500)}
	var (
		seen   []string
		cursor bool
	)
	for range 10 {
		resp := c.ApprovedProductsV2(ctx, filter)
		require.True(t, resp.Success, resp.Error)
		assert.Equal(t, trendyol.MaxApprovedPageSize, resp.Data.Size)
		for _, p := range resp.Data.Content {
			seen = append(seen, p.Variants[0].Barcode)
		}

		next, ok := resp.Data.Next()
		if !ok {
			break
		}
		cursor = cursor || next.UsesCursor()
		filter = filter.WithContinuation(next)
	}

	assert.Len(t, seen, 25)
	assert.False(t, cursor, "a single page never reaches the cursor threshold")

	small := trendyol.ProductFilterV2{Size: ptr(10)}
	first := c.UnapprovedProductsV2(ctx, small)
	require.True(t, first.Success)
	assert.Empty(t, first.Data.NextPageToken)

	second := c.UnapprovedProductsV2(ctx, small.WithContinuation(trendyol.Continuation{Page: 1}))
	require.True(t, second.Success)
	assert.Equal(t, "cursor-2", second.Data.NextPageToken)

	third := c.UnapprovedProductsV2(ctx, small.WithContinuation(trendyol.Continuation{NextPageToken: second.Data.NextPageToken}))
	require.True(t, third.Success)
	assert.Equal(t, 2, third.Data.Page)
	assert.Len(t, third.Data.Content, 5)
	assert.False(t, third.Data.HasMore())
}

func TestMock_BasicInfo(t *testing.T) {
	t.Parallel()

	c := newClient(t, config.MockServerConfig{})
	ctx := context.Background()

	found, err := c.ProductBasicInfoV2(ctx, "MOCK-00003")
	require.NoError(t, err)
	require.True(t, found.Success)
	assert.True(t, found.Data.Approved)
	assert.Equal(t, int64(9510002), found.Data.ContentID)
	assert.NotEmpty(t, found.Data.ListingID)

	missing, err := c.ProductBasicInfoV2(ctx, "NOPE")
	require.NoError(t, err)
	assert.False(t, missing.Success)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	assert.Equal(t, "product not found: NOPE", missing.Error)

	legacy, err := c.ProductByBarcode(ctx, "MOCK-00002")
	require.NoError(t, err)
	require.NotNil(t, legacy.Data)
	assert.Equal(t, "STK-00002", legacy.Data.StockCode)
}

func TestMock_BulkEndpoints(t *testing.T) {
	t.Parallel()

	c := newClient(t, config.MockServerConfig{})
	ctx := context.Background()

	created, err := c.CreateProductsV2(ctx, trendyol.CreateProductsV2Request{
		Items: []trendyol.CreateProductV2Item{{Barcode: "NEW-1", Title: "New"}},
	})
	require.NoError(t, err)
	require.True(t, created.Success, created.Error)
	assert.Len(t, created.Data.BatchRequestID, 36)

	variants, err := c.UpdateApprovedVariantsV2(ctx, trendyol.UpdateApprovedVariantsRequest{
		Items: []trendyol.UpdateApprovedVariantItem{{Barcode: "MOCK-00001", VatRate: ptr(20)}},
	})
	require.NoError(t, err)
	require.True(t, variants.Success)
	assert.NotEqual(t, created.Data.BatchRequestID, variants.Data.BatchRequestID)
}

func TestMock_SellerResources(t *testing.T) {
	t.Parallel()

	c := newClient(t, config.MockServerConfig{})
	ctx := context.Background()

	orders := c.RecentOrders(ctx, 3, 0)
	require.True(t, orders.Success, orders.Error)
	require.Len(t, orders.Data, 3)
	window := time.Now().Add(-3 * 24 * time.Hour).UnixMilli()
	for _, o := range orders.Data {
		assert.GreaterOrEqual(t, o.OrderDate, window)
	}

	claims := c.RecentClaims(ctx, 0, 0)
	require.True(t, claims.Success)
	require.Len(t, claims.Data, 1)

	reasons := c.ClaimIssueReasons(ctx)
	assert.Len(t, reasons.Data, 2)

	waiting := c.UnansweredQuestions(ctx, 0)
	require.Len(t, waiting.Data, 1)

	answered, err := c.AnswerQuestion(ctx, trendyol.QuestionAnswer{QuestionID: waiting.Data[0].ID, Text: "Normal kalıp."})
	require.NoError(t, err)
	assert.True(t, answered.Success)

	waiting = c.UnansweredQuestions(ctx, 0)
	require.True(t, waiting.Success)
	assert.Empty(t, waiting.Data)
}

func TestMock_Webhooks(t *testing.T) {
	t.Parallel()

	c := newClient(t, config.MockServerConfig{})
	ctx := context.Background()

	created, err := c.CreateWebhook(ctx, trendyol.Webhook{URL: "https://example.com/hook"})
	require.NoError(t, err)
	require.True(t, created.Success)
	require.NotNil(t, created.Data.Active)
	assert.True(t, *created.Data.Active)

	hooks := c.Webhooks(ctx)
	require.Len(t, hooks.Data, 1)
	assert.Equal(t, created.Data.ID, hooks.Data[0].ID)

	deleted, err := c.DeleteWebhook(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, deleted.StatusCode)

	again, err := c.DeleteWebhook(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
	assert.Contains(t, again.Error, "webhook not found")
}

func TestMock_Finance(t *testing.T) {
	t.Parallel()

	c := newClient(t, config.MockServerConfig{})
	ctx := context.Background()

	filter := trendyol.FinanceFilter{
		StartDate:        trendyol.DateFromMillis(1706745600000),
		EndDate:          trendyol.DateFromMillis(1707004800000),
		TransactionType:  "Coupon",
		TransactionTypes: []string{"Sale", "Return"},
	}
	settlements, err := c.Settlements(ctx, filter)
	require.NoError(t, err)
	require.True(t, settlements.Success, settlements.Error)
	require.Len(t, settlements.Data, 4)
	for _, r := range settlements.Data {
		assert.Contains(t, []string{"Sale", "Return"}, r.TransactionType)
		assert.GreaterOrEqual(t, r.TransactionDate, int64(1706745600000))
	}

	other, err := c.OtherFinancials(ctx, trendyol.FinanceFilter{
		StartDate:       filter.StartDate,
		EndDate:         filter.EndDate,
		TransactionType: "WireTransfer",
	})
	require.NoError(t, err)
	require.True(t, other.Success)
	assert.Len(t, other.Data, 3)
}
