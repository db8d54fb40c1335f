package validator

import (
	"errors"
	"strings"
	"unicode/utf8"

	"app/internal/usecase"
)

type productValidator struct{}

func NewProductValidator() usecase.ProductValidator {
	return &productValidator{}
}

// 商品入力のフィールド制約を検証
// name 2〜120 / description 〜2000 / price >= 0 / category 2〜60
func (v *productValidator) ValidateProduct(in usecase.ProductInput) error {
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 120 {
		return errors.New("name must be 2-120 characters")
	}

	if utf8.RuneCountInString(in.Description) > 2000 {
		return errors.New("description too long")
	}

	if in.Price.IsNegative() {
		return errors.New("price must be >= 0")
	}

	category := strings.TrimSpace(in.Category)
	if n := utf8.RuneCountInString(category); n < 2 || n > 60 {
		return errors.New("category must be 2-60 characters")
	}

	return nil
}
