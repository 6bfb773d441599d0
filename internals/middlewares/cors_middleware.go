// file: internals/middlewares/cors_middleware.go
package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"akreditasi_backend/internals/configs"
)

// CorsMiddleware: origin dari CORS_ALLOW_ORIGINS (dipisah koma).
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(parts, ", "),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: origins != "*",
	})
}
