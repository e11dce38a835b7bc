package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// SQLSTATE codes translated into field violations.
const (
	codeUniqueViolation     = "23505"
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
	codeNumericOutOfRange   = "22003"
	codeDatetimeOutOfRange  = "22008"
)

// constraintViolations maps the named constraints created by Migrate to the
// API field and message a client sees.
var constraintViolations = map[string]domain.Violation{
	"users_username_key":            {Field: "username", Message: "is already taken"},
	"users_username_check":          {Field: "username", Message: "must not be empty"},
	"products_name_check":           {Field: "name", Message: "must not be empty"},
	"products_description_check":    {Field: "description", Message: "must not be empty"},
	"products_category_check":       {Field: "category", Message: "must not be empty"},
	"products_original_price_check": {Field: "originalPrice", Message: "must be greater than or equal to 0"},
	"products_seller_id_fkey":       {Field: "sellerId", Message: "must reference an existing user"},
	"bids_price_check":              {Field: "price", Message: "must be greater than 0"},
	"bids_product_id_fkey":          {Field: "productId", Message: "must reference an existing product"},
	"bids_bidder_id_fkey":           {Field: "bidderId", Message: "must reference an existing user"},
}

// translate converts driver errors into domain errors: a missing row becomes
// notFound, a constraint failure becomes a *domain.ValidationError, and
// anything else is returned unchanged.
func translate(err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if v, ok := violationFor(pgErr); ok {
			return &domain.ValidationError{Violations: []domain.Violation{v}}
		}
	}
	return err
}

func violationFor(pgErr *pgconn.PgError) (domain.Violation, bool) {
	switch pgErr.Code {
	case codeUniqueViolation, codeForeignKeyViolation, codeCheckViolation:
		if v, ok := constraintViolations[pgErr.ConstraintName]; ok {
			return v, true
		}
		field := fieldName(pgErr.ColumnName)
		if field == "" {
			field = fieldName(pgErr.ConstraintName)
		}
		return domain.Violation{Field: field, Message: "is invalid"}, true
	case codeNotNullViolation:
		return domain.Violation{Field: fieldName(pgErr.ColumnName), Message: "is required"}, true
	case codeInvalidText, codeDatetimeOutOfRange:
		return domain.Violation{Field: fieldName(pgErr.ColumnName), Message: "has an invalid format"}, true
	case codeNumericOutOfRange:
		return domain.Violation{Field: fieldName(pgErr.ColumnName), Message: "is out of range"}, true
	}
	return domain.Violation{}, false
}

// fieldName turns a snake_case column into the camelCase JSON field name.
func fieldName(column string) string {
	parts := strings.Split(column, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
