// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FromFiberError: *fiber.Error → JSON konsisten; selain itu 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// ValidationError: validator.ValidationErrors → 422 dengan pesan per field (json name).
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		name := jsonFieldPath(fe.Namespace())
		fields[name] = append(fields[name], validationMessage(fe))
	}
	return JsonValidationError(c, fields)
}

// "CreateScoreRequest.Source" → "source"; "ReplaceLevelsRequest.Levels[0].LevelName" → "levels[0].level_name"
func jsonFieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = toSnake(p)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return strings.ReplaceAll(b.String(), "_i_d", "_id")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "max":
		return "maksimal " + fe.Param()
	case "min":
		return "minimal " + fe.Param()
	case "gte":
		return "harus ≥ " + fe.Param()
	default:
		return fe.Tag()
	}
}

/* ===============================
   Postgres error mapping (pgx / lib/pq)
=================================*/

func pgCode(err error) (string, string, bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.Message, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Message, true
	}
	return "", "", false
}

func MapPGError(err error) (int, string) {
	code, msg, ok := pgCode(err)
	if !ok {
		if IsNotFound(err) {
			return http.StatusNotFound, "Data tidak ditemukan"
		}
		return http.StatusInternalServerError, err.Error()
	}
	switch code {
	case "23505":
		return http.StatusConflict, "Data duplikat (unique violation)."
	case "23503":
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	case "23514":
		return http.StatusUnprocessableEntity, "Data melanggar constraint (check violation)."
	default:
		return http.StatusInternalServerError, msg
	}
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
