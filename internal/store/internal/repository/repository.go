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

	"github.com/ecodeclub/emall/internal/store/internal/domain"
	"github.com/ecodeclub/emall/internal/store/internal/repository/dao"
)

type StoreRepository interface {
	Create(ctx context.Context, s domain.Store) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Store, error)
	FindBySellerID(ctx context.Context, sellerID int64) (domain.Store, error)
	IncrProductCount(ctx context.Context, id int64) error
	DecrProductCount(ctx context.Context, id int64) error
}

func NewStoreRepository(d dao.StoreDAO) StoreRepository {
	return &storeRepository{d: d}
}

type storeRepository struct {
	d dao.StoreDAO
}

func (r *storeRepository) Create(ctx context.Context, s domain.Store) (int64, error) {
	return r.d.Create(ctx, r.toEntity(s))
}

func (r *storeRepository) FindByID(ctx context.Context, id int64) (domain.Store, error) {
	s, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Store{}, err
	}
	return r.toDomain(s), nil
}

func (r *storeRepository) FindBySellerID(ctx context.Context, sellerID int64) (domain.Store, error) {
	s, err := r.d.FindBySellerID(ctx, sellerID)
	if err != nil {
		return domain.Store{}, err
	}
	return r.toDomain(s), nil
}

func (r *storeRepository) IncrProductCount(ctx context.Context, id int64) error {
	return r.d.UpdateProductCount(ctx, id, 1)
}

func (r *storeRepository) DecrProductCount(ctx context.Context, id int64) error {
	return r.d.UpdateProductCount(ctx, id, -1)
}

func (r *storeRepository) toEntity(s domain.Store) dao.Store {
	return dao.Store{
		Id:           s.ID,
		SellerId:     s.SellerID,
		Name:         s.Name,
		Description:  s.Description,
		ProductCount: s.ProductCount,
		Status:       s.Status.ToUint8(),
	}
}

func (r *storeRepository) toDomain(s dao.Store) domain.Store {
	return domain.Store{
		ID:           s.Id,
		SellerID:     s.SellerId,
		Name:         s.Name,
		Description:  s.Description,
		ProductCount: s.ProductCount,
		Status:       domain.Status(s.Status),
		Ctime:        s.Ctime,
		Utime:        s.Utime,
	}
}
