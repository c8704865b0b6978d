package repository

import (
	"strings"

	"e-disposisi/internal/errs"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry uint16 = 1062

func findErr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFoundf("%s tidak ditemukan", what)
	}
	return errors.Wrapf(err, "find %s", what)
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

// Paginate clamps page and limit the same way for every list endpoint.
func Paginate(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	return page, limit
}

func pageScope(page, limit int) func(*gorm.DB) *gorm.DB {
	page, limit = Paginate(page, limit)
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(limit).Offset((page - 1) * limit)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into a LIKE pattern that matches it
// literally anywhere in the column.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
