package server

import (
	"errors"
	"io/fs"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"healthcube/internal/utility"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Validator = utility.NewRequestValidator()
	e.HTTPErrorHandler = utility.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{"*"},
	}))

	e.Use(LoggerMiddleware)

	e.GET("/", s.indexHandler)
	e.GET("/health", s.healthHandler)

	// AI planning routes
	ai := e.Group("/api/ai")
	ai.POST("/meal-plan", s.handler.MealPlanHandler)
	ai.POST("/workout-plan", s.handler.WorkoutPlanHandler)
	ai.POST("/food-calorie", s.handler.FoodCalorieHandler)
	ai.GET("/food-table", s.handler.FoodTableHandler)

	// Body measurement history routes
	body := e.Group("/api/user/body-data")
	body.POST("", s.handler.CreateBodyRecordHandler)
	body.GET("/history", s.handler.GetBodyRecordsHandler)
	body.DELETE("/:id", s.handler.DeleteBodyRecordHandler)

	return e
}

// LoggerMiddleware attaches a request-scoped logger to both the echo context
// and the request context, so code below the handlers can use zerolog.Ctx.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().
			Str("request_id", requestID).
			Str("ip", utility.GetRealIP(c)).
			Logger()

		c.Set("logger", &logger)
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		return next(c)
	}
}

// indexHandler serves the single-page frontend when it is present next to the binary.
func (s *Server) indexHandler(c echo.Context) error {
	if _, err := os.Stat(s.indexFile); errors.Is(err, fs.ErrNotExist) {
		return echo.NewHTTPError(http.StatusNotFound, "Frontend page not found")
	}
	return c.File(s.indexFile)
}
