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
	"testing"

	"github.com/ecodeclub/emall/internal/cart/internal/domain"
	repomocks "github.com/ecodeclub/emall/internal/cart/internal/repository/mocks"
	"github.com/ecodeclub/emall/internal/product"
	productmocks "github.com/ecodeclub/emall/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_Add(t *testing.T) {
	t.Parallel()

	t.Run("首次加购默认勾选并冻结快照", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCartRepository(ctrl)
		productSvc := productmocks.NewMockService(ctrl)

		productSvc.EXPECT().FindByID(gomock.Any(), int64(11)).
			Return(product.Product{
				ID: 11, SN: "PRD-11", StoreID: 100, ProductTypeID: 3,
				Name: "手机", Description: "旗舰机", Price: 399900,
				Status: product.StatusOnShelf,
			}, nil).Times(1)
		repo.EXPECT().FindByUIDAndProductID(gomock.Any(), int64(7), int64(11)).
			Return(domain.CartItem{}, gorm.ErrRecordNotFound).Times(1)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, item domain.CartItem) (int64, error) {
				assert.Equal(t, int64(7), item.UID)
				assert.Equal(t, int64(2), item.Quantity)
				assert.True(t, item.Selected)
				assert.Equal(t, domain.ProductSnapshot{
					ProductID: 11, SN: "PRD-11", StoreID: 100, ProductTypeID: 3,
					Name: "手机", Description: "旗舰机", Price: 399900,
				}, item.Product)
				return 1, nil
			}).Times(1)

		svc := NewService(repo, productSvc)
		id, err := svc.Add(context.Background(), 7, 11, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("重复加购叠加数量", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCartRepository(ctrl)
		productSvc := productmocks.NewMockService(ctrl)

		productSvc.EXPECT().FindByID(gomock.Any(), int64(11)).
			Return(product.Product{ID: 11, Status: product.StatusOnShelf, Price: 100}, nil).Times(1)
		repo.EXPECT().FindByUIDAndProductID(gomock.Any(), int64(7), int64(11)).
			Return(domain.CartItem{ID: 5, UID: 7, Quantity: 3}, nil).Times(1)
		repo.EXPECT().UpdateQuantity(gomock.Any(), int64(7), int64(11), int64(5)).
			Return(int64(1), nil).Times(1)

		svc := NewService(repo, productSvc)
		id, err := svc.Add(context.Background(), 7, 11, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("商品不在售", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		productSvc := productmocks.NewMockService(ctrl)

		productSvc.EXPECT().FindByID(gomock.Any(), int64(11)).
			Return(product.Product{ID: 11, Status: product.StatusOffShelf, Price: 100}, nil).Times(1)

		svc := NewService(repomocks.NewMockCartRepository(ctrl), productSvc)
		_, err := svc.Add(context.Background(), 7, 11, 1)
		assert.ErrorIs(t, err, ErrProductNotOnSale)
	})

	t.Run("数量非法", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := NewService(repomocks.NewMockCartRepository(ctrl), productmocks.NewMockService(ctrl))
		_, err := svc.Add(context.Background(), 7, 11, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_UpdateQuantity(t *testing.T) {
	t.Parallel()

	t.Run("购物车里没有这个商品", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCartRepository(ctrl)

		repo.EXPECT().UpdateQuantity(gomock.Any(), int64(7), int64(11), int64(2)).
			Return(int64(0), nil).Times(1)

		svc := NewService(repo, productmocks.NewMockService(ctrl))
		err := svc.UpdateQuantity(context.Background(), 7, 11, 2)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})

	t.Run("成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCartRepository(ctrl)

		repo.EXPECT().UpdateQuantity(gomock.Any(), int64(7), int64(11), int64(2)).
			Return(int64(1), nil).Times(1)

		svc := NewService(repo, productmocks.NewMockService(ctrl))
		require.NoError(t, svc.UpdateQuantity(context.Background(), 7, 11, 2))
	})
}

func TestService_Remove(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockCartRepository(ctrl)

	repo.EXPECT().Delete(gomock.Any(), int64(7), int64(11)).
		Return(int64(0), nil).Times(1)

	svc := NewService(repo, productmocks.NewMockService(ctrl))
	err := svc.Remove(context.Background(), 7, 11)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestService_SelectedSnapshot(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockCartRepository(ctrl)

	repo.EXPECT().ListSelectedByUID(gomock.Any(), int64(7)).
		Return([]domain.CartItem{
			{ID: 1, UID: 7, Quantity: 2, Selected: true,
				Product: domain.ProductSnapshot{ProductID: 11, StoreID: 100, Price: 100}},
			{ID: 2, UID: 7, Quantity: 1, Selected: true,
				Product: domain.ProductSnapshot{ProductID: 12, StoreID: 200, Price: 500}},
		}, nil).Times(1)

	svc := NewService(repo, productmocks.NewMockService(ctrl))
	snapshot, err := svc.SelectedSnapshot(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{Items: []domain.SnapshotItem{
		{Quantity: 2, Product: domain.ProductSnapshot{ProductID: 11, StoreID: 100, Price: 100}},
		{Quantity: 1, Product: domain.ProductSnapshot{ProductID: 12, StoreID: 200, Price: 500}},
	}}, snapshot)
}
