package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hiveflow/hiveflow/pkg/models"
)

// createHierarchyHandler handles POST /hierarchies/create.
func (s *Server) createHierarchyHandler(c *echo.Context) error {
	var req models.CreateHierarchyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	h, err := s.hierarchies.CreateHierarchy(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return ok(c, h)
}

// listHierarchiesHandler handles POST /hierarchies/list.
func (s *Server) listHierarchiesHandler(c *echo.Context) error {
	var req ListHierarchiesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	page, err := s.hierarchies.ListHierarchies(c.Request().Context(), req.Page, req.Size)
	if err != nil {
		return mapServiceError(err)
	}
	return ok(c, page)
}

// getHierarchyHandler handles POST /hierarchies/get.
func (s *Server) getHierarchyHandler(c *echo.Context) error {
	var req HierarchyIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.HierarchyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hierarchy_id is required")
	}

	h, err := s.hierarchies.GetHierarchy(c.Request().Context(), req.HierarchyID)
	if err != nil {
		return mapServiceError(err)
	}
	return ok(c, h)
}

// deleteHierarchyHandler handles POST /hierarchies/delete.
func (s *Server) deleteHierarchyHandler(c *echo.Context) error {
	var req HierarchyIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.HierarchyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hierarchy_id is required")
	}

	if err := s.hierarchies.DeleteHierarchy(c.Request().Context(), req.HierarchyID); err != nil {
		return mapServiceError(err)
	}
	return ok(c, nil)
}
