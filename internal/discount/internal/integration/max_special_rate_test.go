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

//go:build e2e

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ecodeclub/emall/internal/discount/internal/repository/dao"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestDiscountResolverTestSuite(t *testing.T) {
	suite.Run(t, new(DiscountResolverTestSuite))
}

type DiscountResolverTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.DiscountDAO
}

func (s *DiscountResolverTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
	s.dao = dao.NewDiscountGORMDAO(s.db)
}

func (s *DiscountResolverTestSuite) TearDownSuite() {
	s.NoError(s.db.Exec("DROP TABLE `discounts`").Error)
	s.NoError(s.db.Exec("DROP TABLE `special_discounts`").Error)
}

func (s *DiscountResolverTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `discounts`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `special_discounts`").Error)
}

// createSpecial 插入一条特殊折扣, productTypeID 为 0 表示全店作用域
func (s *DiscountResolverTestSuite) createSpecial(code string, storeID, productTypeID int64,
	rate float64, active bool, start, end time.Time) {
	s.T().Helper()
	sp := &dao.SpecialDiscount{
		StoreId:      storeID,
		DiscountRate: rate,
	}
	if productTypeID > 0 {
		sp.ProductTypeId = sql.NullInt64{Int64: productTypeID, Valid: true}
	}
	_, err := s.dao.Create(context.Background(), dao.Discount{
		Code:          code,
		Type:          3,
		Name:          "特殊折扣" + code,
		StartDatetime: start.UnixMilli(),
		EndDatetime:   end.UnixMilli(),
		IsActive:      active,
		CreatedByType: 2,
		CreatedById:   42,
	}, sp)
	require.NoError(s.T(), err)
}

func (s *DiscountResolverTestSuite) TestMaxSpecialRate() {
	t := s.T()
	now := time.Now()
	past, future := now.Add(-time.Hour), now.Add(time.Hour)

	testCases := []struct {
		name          string
		before        func(t *testing.T)
		storeID       int64
		productTypeID int64
		want          float64
	}{
		{
			name: "全店和分类折扣并存时取最大",
			before: func(t *testing.T) {
				s.createSpecial("D1", 100, 0, 0.10, true, past, future)
				s.createSpecial("D2", 100, 3, 0.25, true, past, future)
			},
			storeID:       100,
			productTypeID: 3,
			want:          0.25,
		},
		{
			name:          "无可用折扣返回0",
			before:        func(t *testing.T) {},
			storeID:       100,
			productTypeID: 3,
			want:          0,
		},
		{
			name: "过期折扣不参与",
			before: func(t *testing.T) {
				s.createSpecial("D3", 100, 3, 0.50, true, past, now.Add(-time.Minute))
				s.createSpecial("D4", 100, 0, 0.10, true, past, future)
			},
			storeID:       100,
			productTypeID: 3,
			want:          0.10,
		},
		{
			name: "还没开始的折扣不参与",
			before: func(t *testing.T) {
				s.createSpecial("D5", 100, 3, 0.50, true, now.Add(time.Minute), future)
			},
			storeID:       100,
			productTypeID: 3,
			want:          0,
		},
		{
			name: "停用折扣不参与",
			before: func(t *testing.T) {
				s.createSpecial("D6", 100, 3, 0.50, false, past, future)
			},
			storeID:       100,
			productTypeID: 3,
			want:          0,
		},
		{
			name: "别的分类作用域不命中",
			before: func(t *testing.T) {
				s.createSpecial("D7", 100, 4, 0.50, true, past, future)
			},
			storeID:       100,
			productTypeID: 3,
			want:          0,
		},
		{
			name: "别的店铺不命中",
			before: func(t *testing.T) {
				s.createSpecial("D8", 200, 3, 0.50, true, past, future)
			},
			storeID:       100,
			productTypeID: 3,
			want:          0,
		},
		{
			name: "分类为0时仅命中全店作用域",
			before: func(t *testing.T) {
				s.createSpecial("D9", 100, 3, 0.50, true, past, future)
				s.createSpecial("D10", 100, 0, 0.15, true, past, future)
			},
			storeID:       100,
			productTypeID: 0,
			want:          0.15,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.before(t)
			rate, err := s.dao.MaxSpecialRate(context.Background(),
				tc.storeID, tc.productTypeID, time.Now().UnixMilli())
			require.NoError(t, err)
			require.Equal(t, tc.want, rate)
			s.NoError(s.db.Exec("TRUNCATE TABLE `discounts`").Error)
			s.NoError(s.db.Exec("TRUNCATE TABLE `special_discounts`").Error)
		})
	}
}
