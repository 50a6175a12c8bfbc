package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adopta-match/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	quizH *QuizHandler,
	userH *UserHandler,
	jwtSvc *service.JWTService,
) *gin.Engine {
	r := gin.New()

	// Middlewares básicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	quiz := r.Group("/quiz")
	quiz.GET("/questions", quizH.ListQuestions)
	quiz.GET("/archetypes", quizH.ListArchetypes)
	quiz.POST("/sessions", OptionalJWTMiddleware(jwtSvc), quizH.CreateSession)
	quiz.PUT("/sessions/:id/answers", quizH.RecordAnswer)
	quiz.GET("/sessions/:id/profile", quizH.GetProfile)
	quiz.GET("/sessions/:id/results", quizH.GetResults)
	quiz.GET("/sessions/:id/results/:archetype", quizH.GetArchetypeDetail)
	quiz.POST("/sessions/:id/results/email", quizH.EmailResults)

	r.POST("/users", userH.CreateUser)
	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.Refresh)
	auth.POST("/logout", userH.Logout)

	me := r.Group("/users")
	me.Use(JWTAuthMiddleware(jwtSvc))
	me.GET("/me", userH.Me)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
