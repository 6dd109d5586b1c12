package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(optional *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Reads take optional auth: anonymous and candidate actors browse
	// everything, a company is narrowed to its own postings.
	browse := optional.Group("/jobs")
	{
		browse.GET("", handler.List)
		browse.GET("/:id", handler.GetDetails)
	}

	// Writes require an authenticated company.
	manage := protected.Group("/jobs")
	{
		manage.POST("", handler.Create)
		manage.PATCH("/:id", handler.Update)
		manage.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	OwnerID     int64  `json:"owner_id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	SalaryFrom  int64  `json:"salary_from" binding:"required,gt=0"`
	SalaryTo    int64  `json:"salary_to" binding:"required,gt=0,gtefield=SalaryFrom"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateJobRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SalaryFrom  *int64  `json:"salary_from" binding:"omitempty,gt=0"`
	SalaryTo    *int64  `json:"salary_to" binding:"omitempty,gt=0"`
	IsActive    *bool   `json:"is_active"`
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	job, err := h.jobUC.Create(c.Request.Context(), middleware.ActorFrom(c), domain.JobDraft{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		IsActive:    isActive,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List supports the full filter surface: salary range, creation-date
// floor, owner and title substring, plus limit/offset pagination.
func (h *JobHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var filter domain.JobFilter
	if v := c.Query("salary_from"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("invalid salary_from"))
			return
		}
		filter.SalaryFrom = &n
	}
	if v := c.Query("salary_to"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("invalid salary_to"))
			return
		}
		filter.SalaryTo = &n
	}
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.Error(apperror.BadRequest("created_after must be RFC 3339"))
			return
		}
		filter.CreatedAfter = &t
	}
	if v := c.Query("owner_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("invalid owner_id"))
			return
		}
		filter.OwnerID = &n
	}
	if v := c.Query("title"); v != "" {
		filter.Title = &v
	}

	jobs, total, err := h.jobUC.List(c.Request.Context(), middleware.ActorFrom(c), filter, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":   jobs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.Update(c.Request.Context(), middleware.ActorFrom(c), id, domain.JobPatch{
		Title:       req.Title,
		Description: req.Description,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		IsActive:    req.IsActive,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	ref, err := h.jobUC.Delete(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", ref)
}
