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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/emall/internal/order/internal/domain"
	ordermocks "github.com/ecodeclub/emall/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredOrdersJob_Run(t *testing.T) {
	t.Parallel()

	t.Run("一批之内全部关完", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		svc.EXPECT().FindExpiredOrders(gomock.Any(), 0, 10, gomock.Any()).
			Return([]domain.Order{{ID: 1}, {ID: 2}}, int64(2), nil).Times(1)
		svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{1, 2}, gomock.Any()).
			Return(nil).Times(1)

		j := NewCloseExpiredOrdersJob(svc, 10, 30, time.Minute)
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("超过一批时循环到关完为止", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		first := svc.EXPECT().FindExpiredOrders(gomock.Any(), 0, 2, gomock.Any()).
			Return([]domain.Order{{ID: 1}, {ID: 2}}, int64(3), nil).Times(1)
		svc.EXPECT().FindExpiredOrders(gomock.Any(), 0, 2, gomock.Any()).
			Return([]domain.Order{{ID: 3}}, int64(1), nil).Times(1).After(first)
		svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{1, 2}, gomock.Any()).
			Return(nil).Times(1)
		svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{3}, gomock.Any()).
			Return(nil).Times(1)

		j := NewCloseExpiredOrdersJob(svc, 2, 30, time.Minute)
		require.NoError(t, j.Run(context.Background()))
	})

	t.Run("查询失败直接返回错误", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		mockErr := errors.New("mock error")
		svc.EXPECT().FindExpiredOrders(gomock.Any(), 0, 10, gomock.Any()).
			Return(nil, int64(0), mockErr).Times(1)

		j := NewCloseExpiredOrdersJob(svc, 10, 30, time.Minute)
		assert.ErrorIs(t, j.Run(context.Background()), mockErr)
	})

	t.Run("关闭失败直接返回错误", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		mockErr := errors.New("mock error")
		svc.EXPECT().FindExpiredOrders(gomock.Any(), 0, 10, gomock.Any()).
			Return([]domain.Order{{ID: 1}}, int64(1), nil).Times(1)
		svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{1}, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ids []int64, cancelledAt int64) error {
				return mockErr
			}).Times(1)

		j := NewCloseExpiredOrdersJob(svc, 10, 30, time.Minute)
		assert.ErrorIs(t, j.Run(context.Background()), mockErr)
	})
}
