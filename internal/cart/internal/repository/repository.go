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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/cart/internal/domain"
	"github.com/ecodeclub/emall/internal/cart/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/cart_repository.mock.go -typed CartRepository
type CartRepository interface {
	Create(ctx context.Context, item domain.CartItem) (int64, error)
	FindByUIDAndProductID(ctx context.Context, uid, productID int64) (domain.CartItem, error)
	UpdateQuantity(ctx context.Context, uid, productID, quantity int64) (int64, error)
	UpdateSelected(ctx context.Context, uid int64, productIDs []int64, selected bool) error
	Delete(ctx context.Context, uid, productID int64) (int64, error)
	ListByUID(ctx context.Context, uid int64) ([]domain.CartItem, error)
	ListSelectedByUID(ctx context.Context, uid int64) ([]domain.CartItem, error)
	DeleteSelected(ctx context.Context, uid int64) error
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{d: d}
}

type cartRepository struct {
	d dao.CartDAO
}

func (c *cartRepository) Create(ctx context.Context, item domain.CartItem) (int64, error) {
	return c.d.Create(ctx, c.toEntity(item))
}

func (c *cartRepository) FindByUIDAndProductID(ctx context.Context, uid, productID int64) (domain.CartItem, error) {
	item, err := c.d.FindByUIDAndProductID(ctx, uid, productID)
	if err != nil {
		return domain.CartItem{}, err
	}
	return c.toDomain(item), nil
}

func (c *cartRepository) UpdateQuantity(ctx context.Context, uid, productID, quantity int64) (int64, error) {
	return c.d.UpdateQuantity(ctx, uid, productID, quantity)
}

func (c *cartRepository) UpdateSelected(ctx context.Context, uid int64, productIDs []int64, selected bool) error {
	return c.d.UpdateSelected(ctx, uid, productIDs, selected)
}

func (c *cartRepository) Delete(ctx context.Context, uid, productID int64) (int64, error) {
	return c.d.Delete(ctx, uid, productID)
}

func (c *cartRepository) ListByUID(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	items, err := c.d.ListByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
		return c.toDomain(src)
	}), nil
}

func (c *cartRepository) ListSelectedByUID(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	items, err := c.d.ListSelectedByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
		return c.toDomain(src)
	}), nil
}

func (c *cartRepository) DeleteSelected(ctx context.Context, uid int64) error {
	return c.d.DeleteSelected(ctx, uid)
}

func (c *cartRepository) toEntity(item domain.CartItem) dao.CartItem {
	return dao.CartItem{
		Id:        item.ID,
		Uid:       item.UID,
		ProductId: item.Product.ProductID,
		Quantity:  item.Quantity,
		Selected:  item.Selected,
		Snapshot: sqlx.JsonColumn[domain.ProductSnapshot]{
			Val:   item.Product,
			Valid: true,
		},
	}
}

func (c *cartRepository) toDomain(item dao.CartItem) domain.CartItem {
	return domain.CartItem{
		ID:       item.Id,
		UID:      item.Uid,
		Quantity: item.Quantity,
		Selected: item.Selected,
		Product:  item.Snapshot.Val,
		Ctime:    item.Ctime,
		Utime:    item.Utime,
	}
}
