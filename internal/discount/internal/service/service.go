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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/emall/internal/discount/internal/domain"
	"github.com/ecodeclub/emall/internal/discount/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicatedCode   = repository.ErrDuplicatedCode
	ErrInvalidDiscount  = errors.New("折扣信息非法")
	ErrNotDiscountOwner = errors.New("非折扣创建者")
)

//go:generate mockgen -source=./service.go -package=discountmocks -destination=../../mocks/discount.mock.go -typed Service
type Service interface {
	// MaxSpecialRate 解析店铺内指定商品分类当前可用的最大折扣率, 无可用折扣时返回 0
	// productTypeID 为 0 时仅匹配全店作用域的折扣. 纯读操作, 不更新使用次数
	MaxSpecialRate(ctx context.Context, storeID, productTypeID int64) (float64, error)
	Create(ctx context.Context, d domain.Discount) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Discount, error)
	Deactivate(ctx context.Context, id int64, byType domain.CreatedByType, byID int64) error
	ListByCreator(ctx context.Context, byType domain.CreatedByType, byID int64, offset, limit int) ([]domain.Discount, int64, error)
}

func NewService(repo repository.DiscountRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.DiscountRepository
}

func (s *service) MaxSpecialRate(ctx context.Context, storeID, productTypeID int64) (float64, error) {
	return s.repo.MaxSpecialRate(ctx, storeID, productTypeID, time.Now())
}

func (s *service) Create(ctx context.Context, d domain.Discount) (int64, error) {
	if err := s.validate(d); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, d)
}

func (s *service) validate(d domain.Discount) error {
	if d.Code == "" {
		return fmt.Errorf("%w: 折扣码为空", ErrInvalidDiscount)
	}
	if d.StartDatetime >= d.EndDatetime {
		return fmt.Errorf("%w: 生效窗口非法", ErrInvalidDiscount)
	}
	switch d.Type {
	case domain.TypeSeasonal:
		if d.Detail.Seasonal == nil || !validRate(d.Detail.Seasonal.Rate) {
			return fmt.Errorf("%w: 季节性折扣明细非法", ErrInvalidDiscount)
		}
	case domain.TypeShipping:
		if d.Detail.Shipping == nil || d.Detail.Shipping.Amount <= 0 {
			return fmt.Errorf("%w: 运费折扣明细非法", ErrInvalidDiscount)
		}
	case domain.TypeSpecial:
		sp := d.Detail.Special
		if sp == nil || sp.StoreID <= 0 || !validRate(sp.Rate) {
			return fmt.Errorf("%w: 特殊折扣明细非法", ErrInvalidDiscount)
		}
	default:
		return fmt.Errorf("%w: 未知折扣类型 %d", ErrInvalidDiscount, d.Type)
	}
	return nil
}

func validRate(rate float64) bool {
	return rate > 0 && rate <= 1
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Discount, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Deactivate(ctx context.Context, id int64, byType domain.CreatedByType, byID int64) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if d.CreatedByType != byType || d.CreatedByID != byID {
		return fmt.Errorf("%w: id=%d", ErrNotDiscountOwner, id)
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *service) ListByCreator(ctx context.Context, byType domain.CreatedByType, byID int64, offset, limit int) ([]domain.Discount, int64, error) {
	var (
		eg    errgroup.Group
		ds    []domain.Discount
		total int64
	)
	eg.Go(func() error {
		var err error
		ds, err = s.repo.ListByCreator(ctx, byType, byID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByCreator(ctx, byType, byID)
		return err
	})
	return ds, total, eg.Wait()
}
