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

	"github.com/ecodeclub/emall/internal/discount/internal/domain"
	repomocks "github.com/ecodeclub/emall/internal/discount/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	t.Parallel()

	validSpecial := func() domain.Discount {
		return domain.Discount{
			Code:          "SPECIAL-2024",
			Type:          domain.TypeSpecial,
			Name:          "店庆折扣",
			StartDatetime: 1000,
			EndDatetime:   9000,
			IsActive:      true,
			CreatedByType: domain.CreatedBySeller,
			CreatedByID:   42,
			Detail: domain.Detail{
				Special: &domain.Special{StoreID: 100, ProductTypeID: 3, Rate: 0.25},
			},
		}
	}

	t.Run("成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockDiscountRepository(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(1)

		svc := NewService(repo)
		id, err := svc.Create(context.Background(), validSpecial())
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("折扣码重复", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockDiscountRepository(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), ErrDuplicatedCode).Times(1)

		svc := NewService(repo)
		_, err := svc.Create(context.Background(), validSpecial())
		assert.ErrorIs(t, err, ErrDuplicatedCode)
	})

	t.Run("折扣码为空", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := NewService(repomocks.NewMockDiscountRepository(ctrl))
		d := validSpecial()
		d.Code = ""
		_, err := svc.Create(context.Background(), d)
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("生效窗口始末颠倒", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := NewService(repomocks.NewMockDiscountRepository(ctrl))
		d := validSpecial()
		d.StartDatetime, d.EndDatetime = 9000, 1000
		_, err := svc.Create(context.Background(), d)
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("折扣率超过1", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := NewService(repomocks.NewMockDiscountRepository(ctrl))
		d := validSpecial()
		d.Detail.Special.Rate = 1.2
		_, err := svc.Create(context.Background(), d)
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("明细与类型不匹配", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := NewService(repomocks.NewMockDiscountRepository(ctrl))
		d := validSpecial()
		d.Type = domain.TypeShipping
		_, err := svc.Create(context.Background(), d)
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})
}

func TestService_Deactivate(t *testing.T) {
	t.Parallel()

	t.Run("创建者本人可以停用", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockDiscountRepository(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(domain.Discount{ID: 1, CreatedByType: domain.CreatedBySeller, CreatedByID: 42}, nil).Times(1)
		repo.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(nil).Times(1)

		svc := NewService(repo)
		require.NoError(t, svc.Deactivate(context.Background(), 1, domain.CreatedBySeller, 42))
	})

	t.Run("非创建者不能停用", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockDiscountRepository(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(domain.Discount{ID: 1, CreatedByType: domain.CreatedBySeller, CreatedByID: 42}, nil).Times(1)

		svc := NewService(repo)
		err := svc.Deactivate(context.Background(), 1, domain.CreatedBySeller, 999)
		assert.ErrorIs(t, err, ErrNotDiscountOwner)
	})

	t.Run("系统折扣卖家不能停用", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockDiscountRepository(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), int64(2)).
			Return(domain.Discount{ID: 2, CreatedByType: domain.CreatedBySystem, CreatedByID: 0}, nil).Times(1)

		svc := NewService(repo)
		err := svc.Deactivate(context.Background(), 2, domain.CreatedBySeller, 42)
		assert.ErrorIs(t, err, ErrNotDiscountOwner)
	})
}

func TestService_MaxSpecialRate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockDiscountRepository(ctrl)

	repo.EXPECT().MaxSpecialRate(gomock.Any(), int64(100), int64(3), gomock.Any()).
		Return(0.25, nil).Times(1)

	svc := NewService(repo)
	rate, err := svc.MaxSpecialRate(context.Background(), 100, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.25, rate)
}
