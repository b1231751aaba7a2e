package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/turing-nlp/internal/storage"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type RunRouter struct {
	e      *echo.Echo
	reader storage.Reader
}

func NewRunRouter(e *echo.Echo, reader storage.Reader) *RunRouter {
	return &RunRouter{
		e:      e,
		reader: reader,
	}
}

func (r *RunRouter) Bind() {
	r.e.GET("/runs", r.listHandler)
	r.e.GET("/runs/:id", r.getHandler)
}

// listHandler godoc
// @Summary List recorded runs
// @Description Newest first, offset paginated.
// @Tags runs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.OffsetResult[domain.Run]
// @Failure 400 {object} dto.ErrorResponse
// @Router /runs [get]
func (r *RunRouter) listHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return err
	}
	page.Normalize()

	res, err := r.reader.ListRuns(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// getHandler godoc
// @Summary Get a recorded run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} domain.Run
// @Failure 404 {object} dto.ErrorResponse
// @Router /runs/{id} [get]
func (r *RunRouter) getHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	run, err := r.reader.GetRun(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, run)
}
