package server

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	apperrors "github.com/kbukum/kthmin/errors"
	"github.com/kbukum/kthmin/finder"
	"github.com/kbukum/kthmin/logger"
	"github.com/kbukum/kthmin/validation"
)

// FindPath is the route of the k-th smallest query.
const FindPath = "/find-k-min"

// KthFinder answers k-th smallest queries.
type KthFinder interface {
	Find(ctx context.Context, locator string, k int) (*finder.Result, error)
}

// FindRequest is the query accepted by FindPath.
type FindRequest struct {
	Path string `json:"path" form:"path" validate:"required"`
	N    *int   `json:"n" form:"n" validate:"required"`
}

// FindHandler serves FindPath.
type FindHandler struct {
	finder KthFinder
	log    *logger.Logger
}

// NewFindHandler creates a FindHandler.
func NewFindHandler(f KthFinder, log *logger.Logger) *FindHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FindHandler{finder: f, log: log.WithComponent("http")}
}

// Register mounts GET and POST FindPath on s.
func (h *FindHandler) Register(s *Server) {
	s.Route(http.MethodGet, FindPath, h.Find)
	s.Route(http.MethodPost, FindPath, h.Find)
}

// Find binds the request, runs the query and writes the result.
//
// GET reads `path` and `n` from the query string, or a JSON body when
// neither is present. POST always reads a JSON body.
func (h *FindHandler) Find(c *gin.Context) {
	req, err := bindFindRequest(c)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	res, err := h.finder.Find(c.Request.Context(), req.Path, *req.N)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	RespondOK(c, res)
}

func bindFindRequest(c *gin.Context) (*FindRequest, error) {
	var req FindRequest
	fromQuery := c.Request.Method == http.MethodGet &&
		(c.Query("path") != "" || c.Query("n") != "")

	var err error
	if fromQuery {
		err = c.ShouldBindWith(&req, binding.Query)
	} else {
		err = c.ShouldBindWith(&req, binding.JSON)
	}
	// An empty body falls through to validation, which names the missing fields.
	if err != nil && !stderrors.Is(err, io.EOF) {
		return nil, bindError(err)
	}
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	return &req, nil
}

func bindError(err error) error {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return apperrors.PayloadTooLarge(tooLarge.Limit)
	}
	return apperrors.Validation("malformed request").WithCause(err)
}
