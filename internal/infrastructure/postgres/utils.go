package postgres

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae *pgxpool.Pool y pgx.Tx para que los repositorios sirvan dentro y fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql constructor de consultas con placeholders $n.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// keywordFilter busca la palabra clave como texto literal (sin distinguir mayúsculas) en
// cualquiera de las expresiones. Devuelve nil si no hay palabra clave.
func keywordFilter(keyword string, exprs ...string) squirrel.Sqlizer {
	if keyword == "" {
		return nil
	}
	pattern := regexp.QuoteMeta(keyword)
	or := make(squirrel.Or, 0, len(exprs))
	for _, e := range exprs {
		or = append(or, squirrel.Expr(e+" ~* ?", pattern))
	}
	return or
}

// orderBy traduce la clave lógica a columna según la lista blanca; desconocida = fallback.
func orderBy(key string, asc bool, columns map[string]string, fallback string) string {
	col, ok := columns[key]
	if !ok {
		col = fallback
	}
	if asc {
		return col + " ASC"
	}
	return col + " DESC"
}

// nullIfEmpty guarda NULL para claves opcionales (item_id / product_id).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
