package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	responseUC domain.ResponseUsecase
}

func NewResponseHandler(protected *gin.RouterGroup, responseUC domain.ResponseUsecase) {
	handler := &ResponseHandler{responseUC: responseUC}

	protected.POST("/jobs/:id/responses", handler.Create)

	responses := protected.Group("/responses")
	{
		responses.GET("", handler.List)
		responses.GET("/:id", handler.Get)
		responses.PATCH("/:id", handler.Update)
		responses.DELETE("/:id", handler.Delete)
	}
}

type CreateResponseRequest struct {
	Message string `json:"message" binding:"required"`
}

type UpdateResponseRequest struct {
	Message *string `json:"message"`
}

func (h *ResponseHandler) Create(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resp, err := h.responseUC.Create(c.Request.Context(), middleware.ActorFrom(c), jobID, req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Response created", resp)
}

// List serves two shapes behind one endpoint: ?job_id=N for the job owner
// reviewing applicants, ?mine=true for a candidate's own responses.
func (h *ResponseHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var jobID *int64
	if v := c.Query("job_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("invalid job_id"))
			return
		}
		jobID = &n
	}
	forSelf := c.Query("mine") == "true"

	details, err := h.responseUC.List(c.Request.Context(), middleware.ActorFrom(c), jobID, forSelf, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Response list", gin.H{
		"responses": details,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *ResponseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	detail, err := h.responseUC.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Response details", detail)
}

func (h *ResponseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resp, err := h.responseUC.Update(c.Request.Context(), middleware.ActorFrom(c), id, domain.ResponsePatch{
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Response updated", resp)
}

func (h *ResponseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	ref, err := h.responseUC.Delete(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Response deleted", ref)
}
