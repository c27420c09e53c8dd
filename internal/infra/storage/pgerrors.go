// Package storage содержит общие помощники для PostgreSQL-репозиториев.
package storage

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

// IsUniqueViolation проверяет, что err вызван нарушением уникального ограничения
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
