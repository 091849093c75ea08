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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/discount/internal/domain"
	"github.com/ecodeclub/emall/internal/discount/internal/repository/dao"
)

var (
	ErrDuplicatedCode = dao.ErrDuplicatedCode
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/discount_repository.mock.go -typed DiscountRepository
type DiscountRepository interface {
	Create(ctx context.Context, d domain.Discount) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Discount, error)
	MaxSpecialRate(ctx context.Context, storeID, productTypeID int64, now time.Time) (float64, error)
	Deactivate(ctx context.Context, id int64) error
	ListByCreator(ctx context.Context, byType domain.CreatedByType, byID int64, offset, limit int) ([]domain.Discount, error)
	CountByCreator(ctx context.Context, byType domain.CreatedByType, byID int64) (int64, error)
}

func NewDiscountRepository(d dao.DiscountDAO) DiscountRepository {
	return &discountRepository{d: d}
}

type discountRepository struct {
	d dao.DiscountDAO
}

func (r *discountRepository) Create(ctx context.Context, d domain.Discount) (int64, error) {
	entity, sp := r.toEntity(d)
	return r.d.Create(ctx, entity, sp)
}

func (r *discountRepository) FindByID(ctx context.Context, id int64) (domain.Discount, error) {
	entity, sp, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Discount{}, err
	}
	return r.toDomain(entity, sp), nil
}

func (r *discountRepository) MaxSpecialRate(ctx context.Context, storeID, productTypeID int64, now time.Time) (float64, error) {
	return r.d.MaxSpecialRate(ctx, storeID, productTypeID, now.UnixMilli())
}

func (r *discountRepository) Deactivate(ctx context.Context, id int64) error {
	return r.d.Deactivate(ctx, id)
}

func (r *discountRepository) ListByCreator(ctx context.Context, byType domain.CreatedByType, byID int64, offset, limit int) ([]domain.Discount, error) {
	ds, err := r.d.ListByCreator(ctx, byType.ToUint8(), byID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ds, func(idx int, src dao.Discount) domain.Discount {
		// 列表场景不携带特殊折扣作用域
		return r.toDomain(src, nil)
	}), nil
}

func (r *discountRepository) CountByCreator(ctx context.Context, byType domain.CreatedByType, byID int64) (int64, error) {
	return r.d.CountByCreator(ctx, byType.ToUint8(), byID)
}

func (r *discountRepository) toEntity(d domain.Discount) (dao.Discount, *dao.SpecialDiscount) {
	entity := dao.Discount{
		Id:                d.ID,
		Code:              d.Code,
		Type:              d.Type.ToUint8(),
		Name:              d.Name,
		Description:       d.Description,
		MinPurchaseAmount: d.MinPurchaseAmount,
		StartDatetime:     d.StartDatetime,
		EndDatetime:       d.EndDatetime,
		IsActive:          d.IsActive,
		UsageLimit:        d.UsageLimit,
		UsageCount:        d.UsageCount,
		CreatedByType:     d.CreatedByType.ToUint8(),
		CreatedById:       d.CreatedByID,
	}
	var sp *dao.SpecialDiscount
	switch {
	case d.Detail.Seasonal != nil:
		entity.SeasonalRate = d.Detail.Seasonal.Rate
		entity.MaxDiscountAmount = d.Detail.Seasonal.MaxAmount
	case d.Detail.Shipping != nil:
		entity.ShippingAmount = d.Detail.Shipping.Amount
	case d.Detail.Special != nil:
		special := d.Detail.Special
		entity.MaxDiscountAmount = special.MaxAmount
		sp = &dao.SpecialDiscount{
			StoreId:           special.StoreID,
			DiscountRate:      special.Rate,
			MaxDiscountAmount: special.MaxAmount,
		}
		if special.ProductTypeID > 0 {
			sp.ProductTypeId = sql.NullInt64{Int64: special.ProductTypeID, Valid: true}
		}
	}
	return entity, sp
}

func (r *discountRepository) toDomain(entity dao.Discount, sp *dao.SpecialDiscount) domain.Discount {
	d := domain.Discount{
		ID:                entity.Id,
		Code:              entity.Code,
		Type:              domain.Type(entity.Type),
		Name:              entity.Name,
		Description:       entity.Description,
		MinPurchaseAmount: entity.MinPurchaseAmount,
		StartDatetime:     entity.StartDatetime,
		EndDatetime:       entity.EndDatetime,
		IsActive:          entity.IsActive,
		UsageLimit:        entity.UsageLimit,
		UsageCount:        entity.UsageCount,
		CreatedByType:     domain.CreatedByType(entity.CreatedByType),
		CreatedByID:       entity.CreatedById,
		Ctime:             entity.Ctime,
		Utime:             entity.Utime,
	}
	switch d.Type {
	case domain.TypeSeasonal:
		d.Detail.Seasonal = &domain.Seasonal{
			Rate:      entity.SeasonalRate,
			MaxAmount: entity.MaxDiscountAmount,
		}
	case domain.TypeShipping:
		d.Detail.Shipping = &domain.Shipping{
			Amount: entity.ShippingAmount,
		}
	case domain.TypeSpecial:
		if sp != nil {
			d.Detail.Special = &domain.Special{
				StoreID:       sp.StoreId,
				ProductTypeID: sp.ProductTypeId.Int64,
				Rate:          sp.DiscountRate,
				MaxAmount:     sp.MaxDiscountAmount,
			}
		}
	}
	return d
}
