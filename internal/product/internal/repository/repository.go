// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/product_repository.mock.go -typed ProductRepository
type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	UpdateRating(ctx context.Context, id int64, avgRating float64, totalReviews int64) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	FindOnShelfByID(ctx context.Context, id int64) (domain.Product, error)
	ListByStoreID(ctx context.Context, storeID int64, offset, limit int) ([]domain.Product, error)
	CountByStoreID(ctx context.Context, storeID int64) (int64, error)

	ListStorefront(ctx context.Context, q dao.StorefrontQuery) ([]domain.EnrichedProduct, error)
	CountStorefront(ctx context.Context, q dao.StorefrontQuery) (int64, error)

	CreateProductType(ctx context.Context, t domain.ProductType) (int64, error)
	FindProductTypeByID(ctx context.Context, id int64) (domain.ProductType, error)
	ListActiveProductTypes(ctx context.Context) ([]domain.ProductType, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) Create(ctx context.Context, product domain.Product) (int64, error) {
	return p.d.Create(ctx, p.toEntity(product))
}

func (p *productRepository) Update(ctx context.Context, product domain.Product) error {
	return p.d.Update(ctx, p.toEntity(product))
}

func (p *productRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return p.d.UpdateStatus(ctx, id, status.ToUint8())
}

func (p *productRepository) UpdateRating(ctx context.Context, id int64, avgRating float64, totalReviews int64) error {
	return p.d.UpdateRating(ctx, id, avgRating, totalReviews)
}

func (p *productRepository) Delete(ctx context.Context, id int64) error {
	return p.d.Delete(ctx, id)
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	product, err := p.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(product), nil
}

func (p *productRepository) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	product, err := p.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(product), nil
}

func (p *productRepository) FindOnShelfByID(ctx context.Context, id int64) (domain.Product, error) {
	product, err := p.d.FindOnShelfByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(product), nil
}

func (p *productRepository) ListByStoreID(ctx context.Context, storeID int64, offset, limit int) ([]domain.Product, error) {
	products, err := p.d.ListByStoreID(ctx, storeID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) CountByStoreID(ctx context.Context, storeID int64) (int64, error) {
	return p.d.CountByStoreID(ctx, storeID)
}

func (p *productRepository) ListStorefront(ctx context.Context, q dao.StorefrontQuery) ([]domain.EnrichedProduct, error) {
	products, err := p.d.ListStorefront(ctx, q)
	if err != nil {
		return nil, err
	}
	return slice.Map(products, func(idx int, src dao.StorefrontProduct) domain.EnrichedProduct {
		return domain.EnrichedProduct{
			Product: domain.Product{
				ID:            src.Id,
				SN:            src.SN,
				StoreID:       src.StoreId,
				ProductTypeID: src.ProductTypeId,
				Name:          src.Name,
				Description:   src.Description,
				Price:         src.Price,
				Status:        domain.Status(src.Status),
				AverageRating: src.AverageRating,
				TotalReviews:  src.TotalReviews,
				Ctime:         src.Ctime,
				Utime:         src.Utime,
			},
			OriginalPrice: src.Price,
			CurrentPrice:  src.CurrentPrice,
			DiscountRate:  src.DiscountRate,
		}
	}), nil
}

func (p *productRepository) CountStorefront(ctx context.Context, q dao.StorefrontQuery) (int64, error) {
	return p.d.CountStorefront(ctx, q)
}

func (p *productRepository) CreateProductType(ctx context.Context, t domain.ProductType) (int64, error) {
	return p.d.CreateProductType(ctx, dao.ProductType{
		Id:       t.ID,
		Code:     t.Code,
		Name:     t.Name,
		ParentId: t.ParentID,
		IsActive: t.IsActive,
	})
}

func (p *productRepository) FindProductTypeByID(ctx context.Context, id int64) (domain.ProductType, error) {
	t, err := p.d.FindProductTypeByID(ctx, id)
	if err != nil {
		return domain.ProductType{}, err
	}
	return p.toTypeDomain(t), nil
}

func (p *productRepository) ListActiveProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	types, err := p.d.ListActiveProductTypes(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(types, func(idx int, src dao.ProductType) domain.ProductType {
		return p.toTypeDomain(src)
	}), nil
}

func (p *productRepository) toEntity(product domain.Product) dao.Product {
	return dao.Product{
		Id:            product.ID,
		SN:            product.SN,
		StoreId:       product.StoreID,
		ProductTypeId: product.ProductTypeID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		Status:        product.Status.ToUint8(),
		AverageRating: product.AverageRating,
		TotalReviews:  product.TotalReviews,
	}
}

func (p *productRepository) toDomain(product dao.Product) domain.Product {
	return domain.Product{
		ID:            product.Id,
		SN:            product.SN,
		StoreID:       product.StoreId,
		ProductTypeID: product.ProductTypeId,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		Status:        domain.Status(product.Status),
		AverageRating: product.AverageRating,
		TotalReviews:  product.TotalReviews,
		Ctime:         product.Ctime,
		Utime:         product.Utime,
	}
}

func (p *productRepository) toTypeDomain(t dao.ProductType) domain.ProductType {
	return domain.ProductType{
		ID:       t.Id,
		Code:     t.Code,
		Name:     t.Name,
		ParentID: t.ParentId,
		IsActive: t.IsActive,
		Ctime:    t.Ctime,
		Utime:    t.Utime,
	}
}
