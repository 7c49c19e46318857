package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/db"
	httpadapter "github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/handlers"
	httpmiddleware "github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/middleware"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/app/service"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/config"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/authtoken"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEs, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	tokens := authtoken.NewManager(cfg.JwtSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)

	userRepository := dbadapter.NewUserRepository(db)
	roleRepository := dbadapter.NewRoleRepository(db)
	projectRepository := dbadapter.NewProjectRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	commentRepository := dbadapter.NewCommentRepository(db)
	settingRepository := dbadapter.NewSettingRepository(db)
	activityRepository := dbadapter.NewActivityRepository(db)

	authService := service.NewAuthService(userRepository, activityRepository, tokens)
	projectService := service.NewProjectService(projectRepository, userRepository)
	taskService := service.NewTaskService(taskRepository, projectRepository, projectService)
	commentService := service.NewCommentService(commentRepository, taskRepository, projectRepository, projectService)
	adminService := service.NewAdminService(userRepository, roleRepository, projectRepository, taskRepository, activityRepository)
	settingsService := service.NewSettingsService(settingRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, tokens, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Auth:     handlers.NewAuthHandler(authService),
		Projects: handlers.NewProjectHandler(projectService),
		Tasks:    handlers.NewTaskHandler(taskService),
		Comments: handlers.NewCommentHandler(commentService),
		Admin:    handlers.NewAdminHandler(adminService),
		Settings: handlers.NewSettingsHandler(settingsService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
