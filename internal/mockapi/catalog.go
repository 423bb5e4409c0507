package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

const attributeValueCount = 30

func (s *Server) registerCatalog() {
	s.echo.GET(echoPath(trendyol.RouteBrands), s.handleBrands)
	s.echo.GET(echoPath(trendyol.RouteBrandsByName), s.handleBrandsByName)
	s.echo.GET(echoPath(trendyol.RouteCategories), s.handleCategories)
	s.echo.GET(echoPath(trendyol.RouteCategoryAttributes), s.handleLegacyCategoryAttributes)
	s.echo.GET(echoPath(trendyol.RouteCategoryAttributesV2), s.handleCategoryAttributes)
	s.echo.GET(echoPath(trendyol.RouteCategoryAttributeValuesV2), s.handleAttributeValues)
}

func (s *Server) handleBrands(c echo.Context) error {
	page, size, err := pageParams(c, trendyol.MaxLegacyPageSize, trendyol.MaxLegacyPageSize)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}
	start := min(page*size, len(brands))
	end := min(start+size, len(brands))
	return c.JSON(http.StatusOK, map[string]any{"brands": brands[start:end]})
}

// handleBrandsByName answers with a bare array, unlike the paged brand list.
func (s *Server) handleBrandsByName(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return apiError(c, http.StatusBadRequest, "name is required")
	}
	matched := []trendyol.Brand{}
	for _, b := range brands {
		if strings.EqualFold(b.Name, name) {
			matched = append(matched, b)
		}
	}
	return c.JSON(http.StatusOK, matched)
}

func (s *Server) handleCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) handleLegacyCategoryAttributes(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid categoryId")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"id":                 id,
		"name":               "Gömlek",
		"categoryAttributes": legacyCategoryAttributes(),
	})
}

func (s *Server) handleCategoryAttributes(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid categoryId")
	}
	return c.JSON(http.StatusOK, categoryAttributesV2(id))
}

func (s *Server) handleAttributeValues(c echo.Context) error {
	page, size, err := pageParams(c, trendyol.MaxAttributeValuesPageSize, trendyol.MaxAttributeValuesPageSize)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}

	if name := c.QueryParam("attributeValueName"); name != "" {
		matched := []trendyol.AttributeValue{}
		for i := range attributeValueCount {
			if v := attributeValue(i); strings.Contains(strings.ToLower(v.AttributeValueName), strings.ToLower(name)) {
				matched = append(matched, v)
			}
		}
		return c.JSON(http.StatusOK, buildPage(int64(len(matched)), page, size, s.cfg.CursorAfter,
			func(i int) trendyol.AttributeValue { return matched[i] }))
	}

	return c.JSON(http.StatusOK, buildPage(attributeValueCount, page, size, s.cfg.CursorAfter, attributeValue))
}
