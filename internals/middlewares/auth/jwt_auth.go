// file: internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "akreditasi_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)

		// user_id: id/sub/user_id dalam urutan preferensi
		for _, k := range []string{"id", "sub", "user_id"} {
			if v := strClaim(claims, k); v != "" {
				c.Locals(helper.LocUserID, v)
				break
			}
		}

		roles := readStringSlice(claims["roles"])
		if r := strClaim(claims, "role"); r != "" {
			roles = append(roles, r)
		}
		c.Locals(helper.LocRoles, roles)

		return c.Next()
	}
}

// RequireRoles: lolos jika salah satu role cocok (case-insensitive).
func RequireRoles(message string, allowed ...string) fiber.Handler {
	want := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		want[strings.ToLower(r)] = struct{}{}
	}
	if message == "" {
		message = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		for _, r := range helper.RolesFromLocals(c) {
			if _, ok := want[strings.ToLower(r)]; ok {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, message)
	}
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// readStringSlice: []string atau []any → []string (kosong di-skip)
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
