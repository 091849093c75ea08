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
	"strings"
	"testing"

	discountmocks "github.com/ecodeclub/emall/internal/discount/mocks"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
	repomocks "github.com/ecodeclub/emall/internal/product/internal/repository/mocks"
	"github.com/ecodeclub/emall/internal/store"
	storemocks "github.com/ecodeclub/emall/internal/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newTestService(repo *repomocks.MockProductRepository,
	storeSvc *storemocks.MockService,
	discountSvc *discountmocks.MockService) Service {
	return NewService(repo, storeSvc, discountSvc, sequencenumber.NewGenerator("PRD"))
}

func TestService_Detail(t *testing.T) {
	t.Parallel()

	t.Run("带折扣的详情", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockProductRepository(ctrl)
		discountSvc := discountmocks.NewMockService(ctrl)

		repo.EXPECT().FindOnShelfByID(gomock.Any(), int64(1)).
			Return(domain.Product{ID: 1, StoreID: 100, ProductTypeID: 3, Price: 1000, Status: domain.StatusOnShelf}, nil).Times(1)
		discountSvc.EXPECT().MaxSpecialRate(gomock.Any(), int64(100), int64(3)).
			Return(0.25, nil).Times(1)

		svc := newTestService(repo, storemocks.NewMockService(ctrl), discountSvc)
		got, err := svc.Detail(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), got.OriginalPrice)
		assert.Equal(t, int64(750), got.CurrentPrice)
		assert.Equal(t, 0.25, got.DiscountRate)
	})

	t.Run("商品不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockProductRepository(ctrl)

		repo.EXPECT().FindOnShelfByID(gomock.Any(), int64(999)).
			Return(domain.Product{}, gorm.ErrRecordNotFound).Times(1)

		svc := newTestService(repo, storemocks.NewMockService(ctrl), discountmocks.NewMockService(ctrl))
		_, err := svc.Detail(context.Background(), 999)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockProductRepository(ctrl)
		storeSvc := storemocks.NewMockService(ctrl)

		storeSvc.EXPECT().FindBySellerID(gomock.Any(), int64(42)).
			Return(store.Store{ID: 100, SellerID: 42}, nil).Times(1)
		repo.EXPECT().FindProductTypeByID(gomock.Any(), int64(3)).
			Return(domain.ProductType{ID: 3, Code: "phone"}, nil).Times(1)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p domain.Product) (int64, error) {
				assert.Equal(t, int64(100), p.StoreID)
				assert.Equal(t, domain.StatusOffShelf, p.Status)
				assert.True(t, strings.HasPrefix(p.SN, "PRD"), p.SN)
				return 1, nil
			}).Times(1)
		storeSvc.EXPECT().IncrProductCount(gomock.Any(), int64(100)).Return(nil).Times(1)

		svc := newTestService(repo, storeSvc, discountmocks.NewMockService(ctrl))
		id, err := svc.Create(context.Background(), 42, domain.Product{
			Name: "手机", Price: 399900, ProductTypeID: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("店铺计数失败时删除已插入的商品", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockProductRepository(ctrl)
		storeSvc := storemocks.NewMockService(ctrl)

		storeSvc.EXPECT().FindBySellerID(gomock.Any(), int64(42)).
			Return(store.Store{ID: 100, SellerID: 42}, nil).Times(1)
		repo.EXPECT().FindProductTypeByID(gomock.Any(), int64(3)).
			Return(domain.ProductType{ID: 3, Code: "phone"}, nil).Times(1)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(1)
		storeSvc.EXPECT().IncrProductCount(gomock.Any(), int64(100)).
			Return(errors.New("模拟计数失败")).Times(1)
		repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil).Times(1)

		svc := newTestService(repo, storeSvc, discountmocks.NewMockService(ctrl))
		_, err := svc.Create(context.Background(), 42, domain.Product{
			Name: "手机", Price: 399900, ProductTypeID: 3,
		})
		assert.Error(t, err)
	})

	t.Run("类目不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockProductRepository(ctrl)
		storeSvc := storemocks.NewMockService(ctrl)

		storeSvc.EXPECT().FindBySellerID(gomock.Any(), int64(42)).
			Return(store.Store{ID: 100, SellerID: 42}, nil).Times(1)
		repo.EXPECT().FindProductTypeByID(gomock.Any(), int64(888)).
			Return(domain.ProductType{}, gorm.ErrRecordNotFound).Times(1)

		svc := newTestService(repo, storeSvc, discountmocks.NewMockService(ctrl))
		_, err := svc.Create(context.Background(), 42, domain.Product{
			Name: "手机", Price: 399900, ProductTypeID: 888,
		})
		assert.ErrorIs(t, err, ErrProductTypeNotFound)
	})

	t.Run("价格非法", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := newTestService(repomocks.NewMockProductRepository(ctrl),
			storemocks.NewMockService(ctrl), discountmocks.NewMockService(ctrl))
		_, err := svc.Create(context.Background(), 42, domain.Product{Name: "手机", Price: 0})
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})
}

func TestService_Update_Ownership(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockProductRepository(ctrl)
	storeSvc := storemocks.NewMockService(ctrl)

	// 商品挂在100号店, 而当前卖家的店是200号
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).
		Return(domain.Product{ID: 1, StoreID: 100}, nil).Times(1)
	storeSvc.EXPECT().FindBySellerID(gomock.Any(), int64(42)).
		Return(store.Store{ID: 200, SellerID: 42}, nil).Times(1)

	svc := newTestService(repo, storeSvc, discountmocks.NewMockService(ctrl))
	err := svc.Update(context.Background(), 42, domain.Product{ID: 1, Name: "手机", Price: 100})
	assert.ErrorIs(t, err, ErrNotProductOwner)
}

func TestService_Storefront_TypeSubtree(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockProductRepository(ctrl)

	repo.EXPECT().FindProductTypeByID(gomock.Any(), int64(1)).
		Return(domain.ProductType{ID: 1}, nil).Times(1)
	repo.EXPECT().ListActiveProductTypes(gomock.Any()).
		Return([]domain.ProductType{
			{ID: 1, ParentID: 0},
			{ID: 2, ParentID: 1},
			{ID: 3, ParentID: 2},
			{ID: 4, ParentID: 0},
		}, nil).Times(1)
	repo.EXPECT().ListStorefront(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q dao.StorefrontQuery) ([]domain.EnrichedProduct, error) {
			assert.ElementsMatch(t, []int64{1, 2, 3}, q.ProductTypeIDs)
			assert.NotZero(t, q.Now)
			return []domain.EnrichedProduct{}, nil
		}).Times(1)
	repo.EXPECT().CountStorefront(gomock.Any(), gomock.Any()).
		Return(int64(0), nil).Times(1)

	svc := newTestService(repo, storemocks.NewMockService(ctrl), discountmocks.NewMockService(ctrl))
	_, total, err := svc.Storefront(context.Background(), domain.StorefrontQuery{ProductTypeID: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
