package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"app/internal/domain/model"
	"app/internal/usecase"
)

type orderValidator struct{}

// Usecaseは interface を依存注入
func NewOrderValidator() usecase.OrderValidator {
	return &orderValidator{}
}

// カート行の形を検証（価格は受け取らない設計。数量は1〜10）
func (v *orderValidator) ValidateCart(items []usecase.CartItemInput) error {
	for i, it := range items {
		if strings.TrimSpace(it.ProductID) == "" {
			return fmt.Errorf("items[%d]: product_id required", i)
		}
		if it.Quantity < 1 || it.Quantity > 10 {
			return fmt.Errorf("items[%d]: quantity must be 1-10", i)
		}
	}
	return nil
}

// 配送先・連絡先を検証。phone以外は必須。
func (v *orderValidator) ValidateCustomer(c model.CustomerInfo) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("customer name required")
	}

	// email形式
	if !isEmailLike(strings.TrimSpace(c.Email)) {
		return errors.New("invalid email")
	}

	if strings.TrimSpace(c.Address) == "" {
		return errors.New("address required")
	}
	if strings.TrimSpace(c.City) == "" {
		return errors.New("city required")
	}
	if strings.TrimSpace(c.ZipCode) == "" {
		return errors.New("zip_code required")
	}
	if strings.TrimSpace(c.Country) == "" {
		return errors.New("country required")
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
