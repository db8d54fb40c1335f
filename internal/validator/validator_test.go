package validator_test

import (
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func customer() model.CustomerInfo {
	return model.CustomerInfo{
		Name:    "Hanako Tanaka",
		Email:   "hanako@example.com",
		Address: "1-2-3 Ginza",
		City:    "Tokyo",
		ZipCode: "104-0061",
		Country: "JP",
	}
}

func TestOrderValidator_ValidateCart(t *testing.T) {
	v := validator.NewOrderValidator()

	assert.NoError(t, v.ValidateCart([]usecase.CartItemInput{{ProductID: "p1", Quantity: 1}}))
	assert.NoError(t, v.ValidateCart([]usecase.CartItemInput{{ProductID: "p1", Quantity: 10}}))

	assert.Error(t, v.ValidateCart([]usecase.CartItemInput{{ProductID: "p1", Quantity: 0}}))
	assert.Error(t, v.ValidateCart([]usecase.CartItemInput{{ProductID: "p1", Quantity: 11}}))
	assert.Error(t, v.ValidateCart([]usecase.CartItemInput{{ProductID: " ", Quantity: 1}}))
}

func TestOrderValidator_ValidateCustomer_PhoneOptional(t *testing.T) {
	v := validator.NewOrderValidator()

	c := customer()
	c.Phone = ""
	assert.NoError(t, v.ValidateCustomer(c))
}

func TestOrderValidator_ValidateCustomer_RequiredFields(t *testing.T) {
	v := validator.NewOrderValidator()

	c := customer()
	c.Name = " "
	assert.Error(t, v.ValidateCustomer(c))

	c = customer()
	c.Email = "nope"
	assert.Error(t, v.ValidateCustomer(c))

	c = customer()
	c.Address = ""
	assert.Error(t, v.ValidateCustomer(c))

	c = customer()
	c.City = ""
	assert.Error(t, v.ValidateCustomer(c))

	c = customer()
	c.ZipCode = ""
	assert.Error(t, v.ValidateCustomer(c))

	c = customer()
	c.Country = ""
	assert.Error(t, v.ValidateCustomer(c))
}

func TestProductValidator_ValidateProduct(t *testing.T) {
	v := validator.NewProductValidator()

	ok := usecase.ProductInput{
		Name:     "Gold Ring",
		Price:    decimal.NewFromInt(100),
		Category: "rings",
	}
	assert.NoError(t, v.ValidateProduct(ok))

	// 境界: name 2文字と120文字は許可
	in := ok
	in.Name = "ab"
	assert.NoError(t, v.ValidateProduct(in))
	in.Name = strings.Repeat("a", 120)
	assert.NoError(t, v.ValidateProduct(in))
	in.Name = strings.Repeat("a", 121)
	assert.Error(t, v.ValidateProduct(in))
	in.Name = "a"
	assert.Error(t, v.ValidateProduct(in))

	// description 上限2000
	in = ok
	in.Description = strings.Repeat("d", 2000)
	assert.NoError(t, v.ValidateProduct(in))
	in.Description = strings.Repeat("d", 2001)
	assert.Error(t, v.ValidateProduct(in))

	// price 0は許可、負は拒否
	in = ok
	in.Price = decimal.Zero
	assert.NoError(t, v.ValidateProduct(in))
	in.Price = decimal.NewFromFloat(-0.01)
	assert.Error(t, v.ValidateProduct(in))

	// category 境界
	in = ok
	in.Category = strings.Repeat("c", 60)
	assert.NoError(t, v.ValidateProduct(in))
	in.Category = strings.Repeat("c", 61)
	assert.Error(t, v.ValidateProduct(in))
}
