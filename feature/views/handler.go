package views

import (
	"errors"

	"listsync/core/listsync"
	"listsync/core/logger"
	"listsync/core/reconcile"
	"listsync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SelectionRequest is the body of a selection update.
type SelectionRequest struct {
	Selection []int `json:"selection"`
}

// Handler handles HTTP requests for views.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the view routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/views")
	group.Get("/", h.HandleListViews)
	group.Post("/", h.HandleCreateView)
	group.Get("/:id", h.HandleGetView)
	group.Put("/:id/selection", h.HandleSetSelection)
	group.Post("/:id/refresh", h.HandleRefreshView)
	group.Delete("/:id", h.HandleDeleteView)

	app.Put("/sources/:name", h.HandlePublishSource)
}

// HandleListViews lists all views.
// @Summary List Views
// @Tags views
// @Produce json
// @Success 200 {array} models.View
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /views [get]
func (h *Handler) HandleListViews(c *fiber.Ctx) error {
	views, err := h.service.ListViews(c.Context())
	if err != nil {
		return h.fail(c, "List views failed", err)
	}
	return c.JSON(views)
}

// HandleCreateView creates an empty view bound to a source snapshot.
// @Summary Create View
// @Tags views
// @Accept json
// @Produce json
// @Param view body CreateViewRequest true "View"
// @Success 201 {object} ViewDetail
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /views [post]
func (h *Handler) HandleCreateView(c *fiber.Ctx) error {
	var req CreateViewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	view, err := h.service.CreateView(c.Context(), req)
	if err != nil {
		return h.fail(c, "Create view failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// HandleGetView returns a view with its items and selection.
// @Summary Get View
// @Tags views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} ViewDetail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /views/{id} [get]
func (h *Handler) HandleGetView(c *fiber.Ctx) error {
	view, err := h.service.GetView(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Get view failed", err)
	}
	return c.JSON(view)
}

// HandleSetSelection replaces the selection of a view.
// @Summary Set Selection
// @Tags views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param selection body SelectionRequest true "Selected positions"
// @Success 200 {object} ViewDetail
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /views/{id}/selection [put]
func (h *Handler) HandleSetSelection(c *fiber.Ctx) error {
	var req SelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	view, err := h.service.SetSelection(c.Context(), c.Params("id"), req.Selection)
	if err != nil {
		return h.fail(c, "Set selection failed", err)
	}
	return c.JSON(view)
}

// HandleRefreshView reconciles a view with its source snapshot.
// @Summary Refresh View
// @Description Reconciles the view with its source. With dry_run the plan is returned without saving.
// @Tags views
// @Produce json
// @Param id path string true "View ID"
// @Param dry_run query bool false "Plan only"
// @Param reload query bool false "Bypass the snapshot cache"
// @Success 200 {object} RefreshReport
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 422 {object} map[string]string "Invalid Snapshot"
// @Router /views/{id}/refresh [post]
func (h *Handler) HandleRefreshView(c *fiber.Ctx) error {
	dryRun := utils.ToBool(c.Query("dry_run"))
	opts := RefreshOptions{
		Options: reconcile.Options{DryRun: dryRun, Confirmed: true},
		Reload:  utils.ToBool(c.Query("reload")),
	}

	report, err := h.service.RefreshView(c.Context(), c.Params("id"), opts)
	if err != nil {
		return h.fail(c, "Refresh view failed", err)
	}
	return c.JSON(report)
}

// HandleDeleteView removes a view.
// @Summary Delete View
// @Tags views
// @Param id path string true "View ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /views/{id} [delete]
func (h *Handler) HandleDeleteView(c *fiber.Ctx) error {
	if err := h.service.DeleteView(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, "Delete view failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePublishSource uploads a source snapshot.
// @Summary Publish Source
// @Tags sources
// @Accept json
// @Produce json
// @Param name path string true "Snapshot name (e.g. 'products.json')"
// @Success 200 {object} map[string]int "Record count"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 413 {object} map[string]string "Snapshot Too Large"
// @Failure 422 {object} map[string]string "Invalid Snapshot"
// @Router /sources/{name} [put]
func (h *Handler) HandlePublishSource(c *fiber.Ctx) error {
	body := c.Body()
	if limit := h.service.cfg.MaxObjectBytes; limit > 0 && int64(len(body)) > limit {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "snapshot too large"})
	}

	count, err := h.service.PublishSource(c.Context(), c.Params("name"), body)
	if err != nil {
		return h.fail(c, "Publish source failed", err)
	}
	return c.JSON(fiber.Map{"records": count})
}

// fail maps err to a status code and writes the error response.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrViewNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, listsync.ErrInvalidArgument):
		status = fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrMissingID), errors.Is(err, reconcile.ErrDuplicateID),
		errors.Is(err, listsync.ErrIndexOutOfRange):
		status = fiber.StatusUnprocessableEntity
	}

	l := logger.WithRayID(h.service.logger, c)
	if status == fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err), zap.Int("status", status))
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
