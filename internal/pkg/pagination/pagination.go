package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/pkg/response"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query holds the parsed page window of a list request.
type Query struct {
	Page  int
	Limit int
}

// FromContext reads page and limit from the query string, clamping both
// into their allowed ranges.
func FromContext(c *gin.Context) Query {
	q := Query{
		Page:  atoiOr(c.Query("page"), DefaultPage),
		Limit: atoiOr(c.Query("limit"), DefaultLimit),
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Paginate runs the count and the windowed find on the given query and
// fills in the response metadata.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := db.Offset((q.Page - 1) * q.Limit).Limit(q.Limit).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   pages,
		Limit:       q.Limit,
		HasNextPage: q.Page < pages,
	}, nil
}

func atoiOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
