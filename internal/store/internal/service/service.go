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

	"github.com/ecodeclub/emall/internal/store/internal/domain"
	"github.com/ecodeclub/emall/internal/store/internal/repository"
)

//go:generate mockgen -source=./service.go -package=storemocks -destination=../../mocks/store.mock.go -typed Service
type Service interface {
	Create(ctx context.Context, s domain.Store) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Store, error)
	FindBySellerID(ctx context.Context, sellerID int64) (domain.Store, error)
	IncrProductCount(ctx context.Context, id int64) error
	DecrProductCount(ctx context.Context, id int64) error
}

func NewService(repo repository.StoreRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.StoreRepository
}

func (s *service) Create(ctx context.Context, st domain.Store) (int64, error) {
	if st.Status == 0 {
		st.Status = domain.StatusOpen
	}
	return s.repo.Create(ctx, st)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Store, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindBySellerID(ctx context.Context, sellerID int64) (domain.Store, error) {
	return s.repo.FindBySellerID(ctx, sellerID)
}

func (s *service) IncrProductCount(ctx context.Context, id int64) error {
	return s.repo.IncrProductCount(ctx, id)
}

func (s *service) DecrProductCount(ctx context.Context, id int64) error {
	return s.repo.DecrProductCount(ctx, id)
}
