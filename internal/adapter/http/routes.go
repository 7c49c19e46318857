package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/handlers"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/middleware"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/authtoken"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Projects *handlers.ProjectHandler
	Tasks    *handlers.TaskHandler
	Comments *handlers.CommentHandler
	Admin    *handlers.AdminHandler
	Settings *handlers.SettingsHandler
}

func RegisterRoutes(r *gin.Engine, tokens *authtoken.Manager, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())

	api.GET("/health", h.Health.CheckHealth)
	api.GET("/health/report", h.Health.CheckHealthReport)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)

		authed := auth.Group("", middleware.RequireAuth(tokens))
		authed.POST("/logout", h.Auth.Logout)
		authed.GET("/me", h.Auth.Me)
		authed.GET("/users", h.Auth.ListUsers)
	}

	projects := api.Group("/projects", middleware.RequireAuth(tokens))
	{
		projects.GET("", h.Projects.ListProjects)
		projects.POST("", h.Projects.CreateProject)
		projects.GET("/:id", h.Projects.GetProject)
		projects.PUT("/:id", h.Projects.UpdateProject)
		projects.DELETE("/:id", h.Projects.DeleteProject)
		projects.GET("/:id/members", h.Projects.ListMembers)
		projects.POST("/:id/members", h.Projects.AddMember)
		projects.DELETE("/:id/members/:userId", h.Projects.RemoveMember)
	}

	tasks := api.Group("/tasks", middleware.RequireAuth(tokens))
	{
		tasks.GET("/project/:projectId/tasks", h.Tasks.ListProjectTasks)
		tasks.POST("/project/:projectId/tasks", h.Tasks.CreateTask)
		tasks.GET("/:id", h.Tasks.GetTask)
		tasks.PUT("/:id", h.Tasks.UpdateTask)
		tasks.DELETE("/:id", h.Tasks.DeleteTask)
	}

	comments := api.Group("/comments", middleware.RequireAuth(tokens))
	{
		comments.GET("/project/:projectId/comments", h.Comments.ListProjectComments)
		comments.POST("/project/:projectId/comments", h.Comments.CreateProjectComment)
		comments.GET("/task/:taskId/comments", h.Comments.ListTaskComments)
		comments.POST("/task/:taskId/comments", h.Comments.CreateTaskComment)
		comments.GET("/:id", h.Comments.GetComment)
		comments.PUT("/:id", h.Comments.UpdateComment)
		comments.DELETE("/:id", h.Comments.DeleteComment)
	}

	admin := api.Group("/admin", middleware.RequireAuth(tokens), middleware.RequireAdmin())
	{
		admin.GET("/users", h.Admin.ListUsers)
		admin.POST("/users", h.Admin.CreateUser)
		admin.PUT("/users/:id", h.Admin.UpdateUser)
		admin.DELETE("/users/:id", h.Admin.DeleteUser)

		admin.GET("/roles", h.Admin.ListRoles)
		admin.POST("/roles", h.Admin.CreateRole)
		admin.PUT("/roles/:id", h.Admin.UpdateRole)
		admin.DELETE("/roles/:id", h.Admin.DeleteRole)

		admin.GET("/settings", h.Settings.ListSettings)
		admin.POST("/settings", h.Settings.CreateSetting)
		admin.GET("/settings/:id", h.Settings.GetSetting)
		admin.PUT("/settings/:id", h.Settings.UpdateSetting)
		admin.DELETE("/settings/:id", h.Settings.DeleteSetting)

		admin.GET("/projects", h.Admin.ListProjects)
		admin.GET("/tasks", h.Admin.ListTasks)
		admin.GET("/analytics/user-activity", h.Admin.UserActivity)
	}
}
