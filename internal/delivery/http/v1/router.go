package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/auth"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("user_kind", func(fl validator.FieldLevel) bool {
			return domain.UserKind(fl.Field().String()).Valid()
		})
	}
}

type RouterDeps struct {
	AuthUC     domain.AuthUsecase
	UserUC     domain.UserUsecase
	JobUC      domain.JobUsecase
	ResponseUC domain.ResponseUsecase
	Resolver   *auth.Resolver
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	registerValidations()

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes (registration, login, refresh)
	NewAuthHandler(v1, deps.AuthUC, deps.UserUC)

	// Optional-auth routes: a credential narrows or widens visibility but
	// is never required.
	optional := v1.Group("")
	optional.Use(middleware.OptionalAuth(deps.Resolver))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(deps.Resolver))

	NewJobHandler(optional, protected, deps.JobUC)
	NewUserHandler(optional, protected, deps.UserUC)
	NewResponseHandler(protected, deps.ResponseUC)

	return r
}
