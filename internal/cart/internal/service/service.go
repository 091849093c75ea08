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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/cart/internal/domain"
	"github.com/ecodeclub/emall/internal/cart/internal/repository"
	"github.com/ecodeclub/emall/internal/product"
	"gorm.io/gorm"
)

var (
	ErrInvalidQuantity  = errors.New("购买数量非法")
	ErrCartItemNotFound = errors.New("购物车项不存在")
	ErrProductNotOnSale = errors.New("商品不在售")
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go -typed Service
type Service interface {
	// Add 加购, 同一商品重复加购时叠加数量并刷新快照
	Add(ctx context.Context, uid, productID, quantity int64) (int64, error)
	UpdateQuantity(ctx context.Context, uid, productID, quantity int64) error
	Select(ctx context.Context, uid int64, productIDs []int64, selected bool) error
	Remove(ctx context.Context, uid, productID int64) error
	List(ctx context.Context, uid int64) ([]domain.CartItem, error)
	// SelectedSnapshot 勾选商品的结算快照, 下单编排只消费这份快照
	SelectedSnapshot(ctx context.Context, uid int64) (domain.Snapshot, error)
	// ClearSelected 清理已结算的勾选项, 调用方自行决定失败是否致命
	ClearSelected(ctx context.Context, uid int64) error
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{repo: repo, productSvc: productSvc}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

func (s *service) Add(ctx context.Context, uid, productID, quantity int64) (int64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	p, err := s.productSvc.FindByID(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("查找商品失败: %w", err)
	}
	if !p.OnShelf() {
		return 0, fmt.Errorf("%w: id=%d", ErrProductNotOnSale, productID)
	}

	existing, err := s.repo.FindByUIDAndProductID(ctx, uid, productID)
	switch {
	case err == nil:
		if _, er := s.repo.UpdateQuantity(ctx, uid, productID, existing.Quantity+quantity); er != nil {
			return 0, er
		}
		return existing.ID, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.repo.Create(ctx, domain.CartItem{
			UID:      uid,
			Quantity: quantity,
			Selected: true,
			Product: domain.ProductSnapshot{
				ProductID:     p.ID,
				SN:            p.SN,
				StoreID:       p.StoreID,
				ProductTypeID: p.ProductTypeID,
				Name:          p.Name,
				Description:   p.Description,
				Price:         p.Price,
			},
		})
	default:
		return 0, err
	}
}

func (s *service) UpdateQuantity(ctx context.Context, uid, productID, quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	affected, err := s.repo.UpdateQuantity(ctx, uid, productID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: productId=%d", ErrCartItemNotFound, productID)
	}
	return nil
}

func (s *service) Select(ctx context.Context, uid int64, productIDs []int64, selected bool) error {
	if len(productIDs) == 0 {
		return nil
	}
	return s.repo.UpdateSelected(ctx, uid, productIDs, selected)
}

func (s *service) Remove(ctx context.Context, uid, productID int64) error {
	affected, err := s.repo.Delete(ctx, uid, productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: productId=%d", ErrCartItemNotFound, productID)
	}
	return nil
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	return s.repo.ListByUID(ctx, uid)
}

func (s *service) SelectedSnapshot(ctx context.Context, uid int64) (domain.Snapshot, error) {
	items, err := s.repo.ListSelectedByUID(ctx, uid)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{
		Items: slice.Map(items, func(idx int, src domain.CartItem) domain.SnapshotItem {
			return domain.SnapshotItem{
				Quantity: src.Quantity,
				Product:  src.Product,
			}
		}),
	}, nil
}

func (s *service) ClearSelected(ctx context.Context, uid int64) error {
	return s.repo.DeleteSelected(ctx, uid)
}
