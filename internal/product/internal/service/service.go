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

	"github.com/ecodeclub/emall/internal/discount"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/repository"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/store"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound     = errors.New("商品不存在")
	ErrNotProductOwner     = errors.New("商品不属于当前卖家的店铺")
	ErrInvalidProduct      = errors.New("商品信息非法")
	ErrProductTypeNotFound = errors.New("商品类目不存在")
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	// Storefront 货架分页查询, 返回的每个商品都带折后价
	Storefront(ctx context.Context, q domain.StorefrontQuery) ([]domain.EnrichedProduct, int64, error)
	Detail(ctx context.Context, id int64) (domain.EnrichedProduct, error)
	// Enrich 叠加此刻生效的最大专属折扣, 无折扣时折后价等于原价
	Enrich(ctx context.Context, p domain.Product) (domain.EnrichedProduct, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySN(ctx context.Context, sn string) (domain.Product, error)

	Create(ctx context.Context, sellerID int64, p domain.Product) (int64, error)
	Update(ctx context.Context, sellerID int64, p domain.Product) error
	Publish(ctx context.Context, sellerID, id int64) error
	Unpublish(ctx context.Context, sellerID, id int64) error
	Delete(ctx context.Context, sellerID, id int64) error
	ListMine(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Product, int64, error)
	UpdateRating(ctx context.Context, id int64, avgRating float64, totalReviews int64) error

	CreateProductType(ctx context.Context, t domain.ProductType) (int64, error)
	ProductTypes(ctx context.Context) ([]domain.ProductType, error)
	DescendantTypeIDs(ctx context.Context, rootID int64) ([]int64, error)
}

func NewService(repo repository.ProductRepository,
	storeSvc store.Service,
	discountSvc discount.Service,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		storeSvc:    storeSvc,
		discountSvc: discountSvc,
		snGenerator: snGenerator,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.ProductRepository
	storeSvc    store.Service
	discountSvc discount.Service
	snGenerator *sequencenumber.Generator
	logger      *elog.Component
}

func (s *service) Storefront(ctx context.Context, q domain.StorefrontQuery) ([]domain.EnrichedProduct, int64, error) {
	daoQuery := dao.StorefrontQuery{
		StoreID:   q.StoreID,
		Keyword:   q.Keyword,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		MinRating: q.MinRating,
		SortBy:    q.SortBy,
		Desc:      q.Desc,
		Offset:    q.Offset,
		Limit:     q.Limit,
		Now:       time.Now().UnixMilli(),
	}
	if q.ProductTypeID > 0 {
		ids, err := s.DescendantTypeIDs(ctx, q.ProductTypeID)
		if err != nil {
			return nil, 0, err
		}
		daoQuery.ProductTypeIDs = ids
	}

	var (
		eg       errgroup.Group
		products []domain.EnrichedProduct
		total    int64
	)
	eg.Go(func() error {
		var err error
		products, err = s.repo.ListStorefront(ctx, daoQuery)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountStorefront(ctx, daoQuery)
		return err
	})
	return products, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, id int64) (domain.EnrichedProduct, error) {
	p, err := s.repo.FindOnShelfByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EnrichedProduct{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
		}
		return domain.EnrichedProduct{}, err
	}
	return s.Enrich(ctx, p)
}

func (s *service) Enrich(ctx context.Context, p domain.Product) (domain.EnrichedProduct, error) {
	rate, err := s.discountSvc.MaxSpecialRate(ctx, p.StoreID, p.ProductTypeID)
	if err != nil {
		return domain.EnrichedProduct{}, fmt.Errorf("解析商品折扣失败: %w", err)
	}
	return domain.Enrich(p, rate), nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return p, err
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	p, err := s.repo.FindBySN(ctx, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, fmt.Errorf("%w: sn=%s", ErrProductNotFound, sn)
	}
	return p, err
}

func (s *service) Create(ctx context.Context, sellerID int64, p domain.Product) (int64, error) {
	if p.Name == "" || p.Price <= 0 {
		return 0, fmt.Errorf("%w: 名称为空或价格非法", ErrInvalidProduct)
	}
	st, err := s.storeSvc.FindBySellerID(ctx, sellerID)
	if err != nil {
		return 0, fmt.Errorf("查找卖家店铺失败: %w", err)
	}
	if _, err = s.repo.FindProductTypeByID(ctx, p.ProductTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: id=%d", ErrProductTypeNotFound, p.ProductTypeID)
		}
		return 0, err
	}

	sn, err := s.snGenerator.Generate(st.ID)
	if err != nil {
		return 0, fmt.Errorf("生成商品序列号失败: %w", err)
	}
	p.SN = sn
	p.StoreID = st.ID
	p.Status = domain.StatusOffShelf

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	if err = s.storeSvc.IncrProductCount(ctx, st.ID); err != nil {
		// 计数没跟上就把刚插入的商品删掉, 避免落下一个悬空的商品
		if er := s.repo.Delete(ctx, id); er != nil {
			s.logger.Error("回滚商品创建失败",
				elog.FieldErr(er),
				elog.Int64("id", id))
		}
		return 0, fmt.Errorf("更新店铺商品数失败: %w", err)
	}
	return id, nil
}

func (s *service) Update(ctx context.Context, sellerID int64, p domain.Product) error {
	if p.Name == "" || p.Price <= 0 {
		return fmt.Errorf("%w: 名称为空或价格非法", ErrInvalidProduct)
	}
	if _, err := s.owned(ctx, sellerID, p.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *service) Publish(ctx context.Context, sellerID, id int64) error {
	if _, err := s.owned(ctx, sellerID, id); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, domain.StatusOnShelf)
}

func (s *service) Unpublish(ctx context.Context, sellerID, id int64) error {
	if _, err := s.owned(ctx, sellerID, id); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, domain.StatusOffShelf)
}

func (s *service) Delete(ctx context.Context, sellerID, id int64) error {
	p, err := s.owned(ctx, sellerID, id)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err = s.storeSvc.DecrProductCount(ctx, p.StoreID); err != nil {
		return fmt.Errorf("更新店铺商品数失败: %w", err)
	}
	return nil
}

func (s *service) ListMine(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Product, int64, error) {
	st, err := s.storeSvc.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, 0, fmt.Errorf("查找卖家店铺失败: %w", err)
	}
	var (
		eg       errgroup.Group
		products []domain.Product
		total    int64
	)
	eg.Go(func() error {
		var err error
		products, err = s.repo.ListByStoreID(ctx, st.ID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByStoreID(ctx, st.ID)
		return err
	})
	return products, total, eg.Wait()
}

func (s *service) UpdateRating(ctx context.Context, id int64, avgRating float64, totalReviews int64) error {
	return s.repo.UpdateRating(ctx, id, avgRating, totalReviews)
}

func (s *service) CreateProductType(ctx context.Context, t domain.ProductType) (int64, error) {
	if t.Code == "" || t.Name == "" {
		return 0, fmt.Errorf("%w: 类目编码或名称为空", ErrInvalidProduct)
	}
	if t.ParentID > 0 {
		if _, err := s.repo.FindProductTypeByID(ctx, t.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("%w: 父类目id=%d", ErrProductTypeNotFound, t.ParentID)
			}
			return 0, err
		}
	}
	t.IsActive = true
	return s.repo.CreateProductType(ctx, t)
}

func (s *service) ProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	return s.repo.ListActiveProductTypes(ctx)
}

func (s *service) DescendantTypeIDs(ctx context.Context, rootID int64) ([]int64, error) {
	if _, err := s.repo.FindProductTypeByID(ctx, rootID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrProductTypeNotFound, rootID)
		}
		return nil, err
	}
	all, err := s.repo.ListActiveProductTypes(ctx)
	if err != nil {
		return nil, err
	}
	return domain.DescendantIDs(all, rootID), nil
}

func (s *service) owned(ctx context.Context, sellerID, productID int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, productID)
		}
		return domain.Product{}, err
	}
	st, err := s.storeSvc.FindBySellerID(ctx, sellerID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("查找卖家店铺失败: %w", err)
	}
	if p.StoreID != st.ID {
		return domain.Product{}, fmt.Errorf("%w: id=%d", ErrNotProductOwner, productID)
	}
	return p, nil
}
