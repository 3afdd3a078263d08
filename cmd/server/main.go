package main

import (
	"fmt"
	"log"

	"systers-portal/config"
	"systers-portal/internal/auth"
	"systers-portal/internal/community"
	"systers-portal/internal/database"
	"systers-portal/internal/logs"
	"systers-portal/internal/middlewares"
	"systers-portal/internal/news"
	"systers-portal/internal/role"
	"systers-portal/internal/session"
	"systers-portal/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.IsDevelopment() {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}

func newSessionStore(cfg config.Config) session.Store {
	if cfg.RedisAddr == "" {
		zap.L().Info("REDIS_ADDR not set, sessions are stateless")
		return session.StatelessStore{}
	}
	store, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, 0)
	if err != nil {
		zap.L().Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	return store
}

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	logService := &logs.LogService{DB: db}
	authService := &auth.AuthService{DB: db}
	communityService := &community.CommunityService{DB: db}
	roleService := &role.RoleService{DB: db}
	newsService := &news.NewsService{DB: db}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		created, err := authService.EnsureSuperuser(cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			logger.Fatal("failed to ensure superuser", zap.Error(err))
		}
		if created {
			logger.Info("created initial superuser", zap.String("username", cfg.AdminUsername))
		}
	}

	sessions := newSessionStore(cfg)

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(logger))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middlewares.AuthMiddleware(cfg.JWTSecret, sessions))
	r.SetHTMLTemplate(web.MustTemplates())

	auth.RegisterRoutes(r, &auth.AuthController{
		AuthService:   authService,
		LS:            logService,
		Sessions:      sessions,
		Secret:        cfg.JWTSecret,
		SecureCookies: cfg.SecureCookies,
	})

	community.RegisterRoutes(r, &community.CommunityController{
		CommunityService: communityService,
		Profiles:         authService,
		LS:               logService,
	}, authService)

	role.RegisterRoutes(r, &role.RoleController{
		RoleService: roleService,
		Communities: communityService,
		Profiles:    authService,
		LS:          logService,
	})

	logs.RegisterRoutes(r, logService, authService)

	news.RegisterRoutes(r, &news.NewsController{
		NewsService: newsService,
		Communities: communityService,
		Profiles:    authService,
		Roles:       roleService,
		LS:          logService,
	})

	addr := "0.0.0.0:" + cfg.Port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
