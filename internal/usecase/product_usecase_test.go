package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductUsecase(pRepo *ProductRepoMock, clock usecase.Clock) *usecase.ProductUsecase {
	return usecase.NewProductUsecase(pRepo, validator.NewProductValidator(), &seqIDGen{}, clock)
}

func TestProductUsecase_ListProducts_QTooLong(t *testing.T) {
	uc := newProductUsecase(new(ProductRepoMock), &fixedClock{time.Now()})

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Q: strings.Repeat("x", 101)})
	assertErrContains(t, err, "q too long")
}

func TestProductUsecase_ListProducts_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := newProductUsecase(pRepo, &fixedClock{time.Now()})

	q := repo.ProductListQuery{Category: "rings", Q: "gold"}
	items := []model.Product{{ID: "p1", Name: "Gold Ring"}}
	pRepo.On("List", mock.Anything, q).Return(items, nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Category: " rings ", Q: "gold"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, "p1", out[0].ID)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_ListProducts_EmptyResultIsNotNil(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := newProductUsecase(pRepo, &fixedClock{time.Now()})

	// ストアがnilを返してもJSONでは[]になるようにする
	pRepo.On("List", mock.Anything, mock.AnythingOfType("repository.ProductListQuery")).Return(nil, nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{})
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Equal(t, 0, len(out))
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := newProductUsecase(pRepo, &fixedClock{time.Now()})

	pRepo.On("FindByID", mock.Anything, "missing").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), "missing")
	assertErrContains(t, err, "product not found")
}

func TestProductUsecase_GetProduct_Success(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := newProductUsecase(pRepo, &fixedClock{time.Now()})

	pRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1"}, nil)

	p, err := uc.GetProduct(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_AdminCreateProduct_Validation(t *testing.T) {
	uc := newProductUsecase(new(ProductRepoMock), &fixedClock{time.Now()})

	// nameが短すぎる
	_, err := uc.AdminCreateProduct(context.Background(), usecase.ProductInput{
		Name: "x", Price: dec("10"), Category: "rings",
	})
	assertErrContains(t, err, "name must be 2-120 characters")

	// 価格が負
	_, err = uc.AdminCreateProduct(context.Background(), usecase.ProductInput{
		Name: "Gold Ring", Price: dec("-1"), Category: "rings",
	})
	assertErrContains(t, err, "price must be >= 0")

	// categoryが短すぎる
	_, err = uc.AdminCreateProduct(context.Background(), usecase.ProductInput{
		Name: "Gold Ring", Price: dec("10"), Category: "r",
	})
	assertErrContains(t, err, "category must be 2-60 characters")
}

func TestProductUsecase_AdminCreateProduct_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)

	pRepo := new(ProductRepoMock)
	uc := newProductUsecase(pRepo, &fixedClock{now})

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		// trim済みの名前、採番済みID、created_at==updated_at
		return p.Name == "Gold Ring" && p.ID != "" && p.CreatedAt.Equal(now) && p.UpdatedAt.Equal(now)
	})).Return(model.Product{ID: "p-created", Name: "Gold Ring"}, nil)

	p, err := uc.AdminCreateProduct(ctx, usecase.ProductInput{
		Name:     " Gold Ring ",
		Price:    dec("199.99"),
		Category: "rings",
		InStock:  true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "p-created", p.ID)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_AdminUpdateProduct_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := newProductUsecase(pRepo, &fixedClock{time.Now()})

	pRepo.On("Update", mock.Anything, mock.AnythingOfType("model.Product")).Return(repo.ErrNotFound)

	_, err := uc.AdminUpdateProduct(ctx, "missing", usecase.ProductInput{
		Name: "Gold Ring", Price: dec("10"), Category: "rings",
	})
	assertErrContains(t, err, "product not found")
}

func TestProductUsecase_AdminUpdateProduct_ReturnsUpdated(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := newProductUsecase(pRepo, &fixedClock{time.Now()})

	pRepo.On("Update", mock.Anything, mock.AnythingOfType("model.Product")).Return(nil)
	pRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1", Name: "Gold Ring"}, nil)

	p, err := uc.AdminUpdateProduct(ctx, "p1", usecase.ProductInput{
		Name: "Gold Ring", Price: dec("10"), Category: "rings",
	})
	assert.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_AdminDeleteProduct_NotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := newProductUsecase(pRepo, &fixedClock{time.Now()})

	pRepo.On("Delete", mock.Anything, "missing").Return(repo.ErrNotFound)

	err := uc.AdminDeleteProduct(context.Background(), "missing")
	assertErrContains(t, err, "product not found")
}

func TestProductUsecase_AdminDeleteProduct_Success(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := newProductUsecase(pRepo, &fixedClock{time.Now()})

	pRepo.On("Delete", mock.Anything, "p1").Return(nil)

	err := uc.AdminDeleteProduct(context.Background(), "p1")
	assert.NoError(t, err)

	pRepo.AssertExpectations(t)
}
