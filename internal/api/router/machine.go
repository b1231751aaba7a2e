package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/apperr"
	"github.com/DjordjeVuckovic/turing-nlp/internal/definition"
	"github.com/DjordjeVuckovic/turing-nlp/internal/diagram"
	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/internal/dto"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/DjordjeVuckovic/turing-nlp/internal/session"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage"
	"github.com/DjordjeVuckovic/turing-nlp/pkg/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	DefaultRunLimit = 1_000
	MaxRunLimit     = 100_000
)

type MachineRouter struct {
	e        *echo.Echo
	sessions session.Store
	storer   storage.Storer
}

func NewMachineRouter(e *echo.Echo, sessions session.Store, storer storage.Storer) *MachineRouter {
	return &MachineRouter{
		e:        e,
		sessions: sessions,
		storer:   storer,
	}
}

func (r *MachineRouter) Bind() {
	g := r.e.Group("/machines")
	g.POST("", r.createHandler)
	g.GET("", r.listHandler)
	g.GET("/:id", r.getHandler)
	g.POST("/:id/step", r.stepHandler)
	g.POST("/:id/run", r.runHandler)
	g.POST("/:id/load", r.loadHandler)
	g.GET("/:id/diagram", r.diagramHandler)
	g.DELETE("/:id", r.deleteHandler)
}

// createHandler godoc
// @Summary Create a machine session
// @Description Builds a machine from a YAML definition or a structured config (built-in parity when both are empty) and loads the input.
// @Tags machines
// @Accept json
// @Produce json
// @Param request body dto.CreateMachineRequest true "Machine definition"
// @Success 201 {object} session.Info
// @Failure 400 {object} dto.ErrorResponse
// @Router /machines [post]
func (r *MachineRouter) createHandler(c echo.Context) error {
	var req dto.CreateMachineRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	def, err := resolveDefinition(req)
	if err != nil {
		return err
	}

	m, err := def.Build()
	if err != nil {
		return err
	}

	info, err := r.sessions.Create(c.Request().Context(), def.Name, def.Input, m)
	if err != nil {
		return err
	}

	slog.Info("Machine session created", "id", info.ID, "definition", def.Name)
	return c.JSON(http.StatusCreated, info)
}

func resolveDefinition(req dto.CreateMachineRequest) (*definition.Definition, error) {
	var (
		def *definition.Definition
		err error
	)
	switch {
	case req.Definition != "":
		def, err = definition.Parse([]byte(req.Definition))
		if err != nil {
			return nil, err
		}
	case req.Config != nil:
		name := req.Name
		if name == "" {
			name = "custom"
		}
		def = definition.FromConfig(name, *req.Config)
	default:
		def = definition.Parity()
	}

	if req.Name != "" {
		def.Name = req.Name
	}
	if req.Input != nil {
		def.Input = *req.Input
	}
	return def, nil
}

// listHandler godoc
// @Summary List machine sessions
// @Tags machines
// @Produce json
// @Success 200 {array} session.Info
// @Router /machines [get]
func (r *MachineRouter) listHandler(c echo.Context) error {
	infos, err := r.sessions.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, infos)
}

// getHandler godoc
// @Summary Get a machine session
// @Tags machines
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Info
// @Failure 404 {object} dto.ErrorResponse
// @Router /machines/{id} [get]
func (r *MachineRouter) getHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	info, err := r.sessions.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// stepHandler godoc
// @Summary Execute one step
// @Description Halted machines return the same terminal status without changing.
// @Tags machines
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.StepResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /machines/{id}/step [post]
func (r *MachineRouter) stepHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var status machine.Status
	info, err := r.sessions.Do(c.Request().Context(), id, func(s *session.Session) error {
		status = s.Machine.Step()
		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.StepResponse{Status: status, Session: info})
}

// runHandler godoc
// @Summary Run until halt or limit
// @Description Steps the machine up to limit times and records the outcome in run history.
// @Tags machines
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.RunRequest false "Step limit"
// @Success 200 {object} dto.RunResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /machines/{id}/run [post]
func (r *MachineRouter) runHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.RunRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Limit == 0 {
		req.Limit = DefaultRunLimit
	}
	if req.Limit < 0 || req.Limit > MaxRunLimit {
		return apperr.NewValidation("limit must be between 1 and 100000")
	}

	var (
		status machine.Status
		taken  int
	)
	start := time.Now()
	info, err := r.sessions.Do(c.Request().Context(), id, func(s *session.Session) error {
		status, taken = s.Machine.Run(req.Limit)
		return nil
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	run := domain.NewRun(info.Name, info.Input, info.ID, info.Snapshot)
	if _, err := r.storer.SaveRun(c.Request().Context(), run); err != nil {
		return err
	}

	slog.Info("Machine run finished", "id", id, "status", status, "taken", taken, "elapsed", elapsed)
	return c.JSON(http.StatusOK, dto.RunResponse{
		Status:    status,
		Taken:     taken,
		ElapsedMs: utils.RoundDecimal(float64(elapsed.Microseconds())/1000, 3),
		Session:   info,
		Run:       run,
	})
}

// loadHandler godoc
// @Summary Load new input
// @Description Resets the tape to the input plus blank padding, the head to 0 and the state to start.
// @Tags machines
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.LoadRequest true "Input"
// @Success 200 {object} session.Info
// @Failure 404 {object} dto.ErrorResponse
// @Router /machines/{id}/load [post]
func (r *MachineRouter) loadHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.LoadRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	info, err := r.sessions.Do(c.Request().Context(), id, func(s *session.Session) error {
		s.Machine.LoadString(req.Input)
		s.Input = req.Input
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// diagramHandler godoc
// @Summary Render the machine as DOT
// @Tags machines
// @Produce plain
// @Param id path string true "Session ID"
// @Success 200 {string} string
// @Failure 404 {object} dto.ErrorResponse
// @Router /machines/{id}/diagram [get]
func (r *MachineRouter) diagramHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var dot string
	_, err = r.sessions.Do(c.Request().Context(), id, func(s *session.Session) error {
		dot = diagram.Machine(s.Name, s.Machine.Config())
		return nil
	})
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, dot)
}

// deleteHandler godoc
// @Summary Delete a machine session
// @Tags machines
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /machines/{id} [delete]
func (r *MachineRouter) deleteHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := r.sessions.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap("invalid id", err)
	}
	return id, nil
}
