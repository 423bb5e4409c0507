package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/trendyol-seller/internal/metrics"
	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

func (s *Server) registerProducts() {
	s.echo.GET(echoPath(trendyol.RouteProducts), s.handleLegacyProducts)
	s.echo.GET(echoPath(trendyol.RouteApprovedV2), s.handleApproved)
	s.echo.GET(echoPath(trendyol.RouteUnapprovedV2), s.handleUnapproved)
	s.echo.GET(echoPath(trendyol.RouteProductBasicInfoV2), s.handleBasicInfo)

	for _, route := range []string{
		trendyol.RouteCreateProductsV2,
		trendyol.RouteUnapprovedUpdateV2,
		trendyol.RouteContentUpdateV2,
		trendyol.RouteVariantUpdateV2,
		trendyol.RouteDeliveryUpdateV2,
	} {
		s.echo.POST(echoPath(route), s.handleBulk)
	}
}

func (s *Server) handleLegacyProducts(c echo.Context) error {
	page, size, err := pageParams(c, 50, trendyol.MaxLegacyPageSize)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	total := int(s.cfg.TotalElements)
	items := make([]trendyol.Product, 0, total)
	bc := c.QueryParam("barcode")
	for i := range total {
		p := legacyProduct(i)
		if bc == "" || p.Barcode == bc {
			items = append(items, p)
		}
	}
	return c.JSON(http.StatusOK, legacyPage(items, page, size))
}

func (s *Server) handleApproved(c echo.Context) error {
	page, size, err := pageParams(c, trendyol.MaxApprovedPageSize, trendyol.MaxApprovedPageSize)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, buildPage(s.cfg.TotalElements, page, size, s.cfg.CursorAfter, approvedProduct))
}

func (s *Server) handleUnapproved(c echo.Context) error {
	page, size, err := pageParams(c, trendyol.MaxUnapprovedPageSize, trendyol.MaxUnapprovedPageSize)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, buildPage(s.cfg.TotalElements, page, size, s.cfg.CursorAfter, unapprovedProduct))
}

// handleBasicInfo knows the generated MOCK-nnnnn barcodes; anything else is
// reported as not found.
func (s *Server) handleBasicInfo(c echo.Context) error {
	bc := c.Param("barcode")
	n, err := strconv.Atoi(strings.TrimPrefix(bc, "MOCK-"))
	if err != nil || !strings.HasPrefix(bc, "MOCK-") || n < 1 || int64(n) > s.cfg.TotalElements {
		return apiError(c, http.StatusNotFound, "product not found: "+bc)
	}

	p := approvedProduct(n - 1)
	return c.JSON(http.StatusOK, trendyol.ProductBasicInfo{
		Barcode:      bc,
		Approved:     true,
		ApprovedDate: p.CreationDate,
		ListingID:    trendyol.ID(uuid.NewSHA1(uuid.NameSpaceOID, []byte(bc)).String()),
		ContentID:    p.ContentID,
	})
}

// handleBulk accepts any non-empty items array and issues a batch id.
func (s *Server) handleBulk(c echo.Context) error {
	var body struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if len(body.Items) == 0 {
		return apiError(c, http.StatusBadRequest, "items must not be empty")
	}
	if len(body.Items) > 1000 {
		return apiError(c, http.StatusBadRequest, "items must not exceed 1000")
	}

	id := uuid.NewString()
	metrics.BatchRequestsTotal.Inc()
	s.logger.Info("batch request accepted",
		"route", c.Path(),
		"items", len(body.Items),
		"batch_request_id", id,
	)
	return c.JSON(http.StatusOK, trendyol.BatchRequest{BatchRequestID: id})
}
