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
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/slice"
	discountdao "github.com/ecodeclub/emall/internal/discount/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestStorefrontTestSuite(t *testing.T) {
	suite.Run(t, new(StorefrontTestSuite))
}

type StorefrontTestSuite struct {
	suite.Suite
	db          *egorm.Component
	dao         dao.ProductDAO
	discountDao discountdao.DiscountDAO
}

func (s *StorefrontTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	require.NoError(s.T(), discountdao.InitTables(s.db))
	s.dao = dao.NewProductGORMDAO(s.db)
	s.discountDao = discountdao.NewDiscountGORMDAO(s.db)
}

func (s *StorefrontTestSuite) TearDownSuite() {
	for _, table := range []string{"products", "product_types", "discounts", "special_discounts"} {
		s.NoError(s.db.Exec(fmt.Sprintf("DROP TABLE `%s`", table)).Error)
	}
}

func (s *StorefrontTestSuite) TearDownTest() {
	for _, table := range []string{"products", "product_types", "discounts", "special_discounts"} {
		s.NoError(s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error)
	}
}

func (s *StorefrontTestSuite) createProduct(sn string, storeID, typeID, price int64, rating float64) int64 {
	s.T().Helper()
	id, err := s.dao.Create(context.Background(), dao.Product{
		SN:            sn,
		StoreId:       storeID,
		ProductTypeId: typeID,
		Name:          "商品" + sn,
		Description:   "描述" + sn,
		Price:         price,
		Status:        2,
		AverageRating: rating,
	})
	require.NoError(s.T(), err)
	return id
}

func (s *StorefrontTestSuite) createSpecial(code string, storeID, productTypeID int64, rate float64) {
	s.T().Helper()
	sp := &discountdao.SpecialDiscount{
		StoreId:      storeID,
		DiscountRate: rate,
	}
	if productTypeID > 0 {
		sp.ProductTypeId = sql.NullInt64{Int64: productTypeID, Valid: true}
	}
	_, err := s.discountDao.Create(context.Background(), discountdao.Discount{
		Code:          code,
		Type:          3,
		Name:          "特殊折扣" + code,
		StartDatetime: time.Now().Add(-time.Hour).UnixMilli(),
		EndDatetime:   time.Now().Add(time.Hour).UnixMilli(),
		IsActive:      true,
		CreatedByType: 2,
		CreatedById:   42,
	}, sp)
	require.NoError(s.T(), err)
}

func (s *StorefrontTestSuite) TestListStorefront_DiscountedPrice() {
	t := s.T()
	// 100号店有一条全店9折和一条手机类目75折, 200号店没有折扣
	s.createProduct("P1", 100, 3, 1000, 4.5)
	s.createProduct("P2", 100, 4, 1000, 4.0)
	s.createProduct("P3", 200, 3, 1000, 3.0)
	s.createSpecial("ST1", 100, 0, 0.10)
	s.createSpecial("ST2", 100, 3, 0.25)

	got, err := s.dao.ListStorefront(context.Background(), dao.StorefrontQuery{
		SortBy: "price",
		Limit:  10,
		Now:    time.Now().UnixMilli(),
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	bySN := slice.ToMap(got, func(p dao.StorefrontProduct) string { return p.SN })
	require.Equal(t, int64(750), bySN["P1"].CurrentPrice)
	require.Equal(t, 0.25, bySN["P1"].DiscountRate)
	require.Equal(t, int64(900), bySN["P2"].CurrentPrice)
	require.Equal(t, 0.10, bySN["P2"].DiscountRate)
	require.Equal(t, int64(1000), bySN["P3"].CurrentPrice)
	require.Equal(t, float64(0), bySN["P3"].DiscountRate)

	// 折后价升序
	require.Equal(t, []string{"P1", "P2", "P3"}, slice.Map(got, func(idx int, p dao.StorefrontProduct) string {
		return p.SN
	}))
}

func (s *StorefrontTestSuite) TestListStorefront_PriceFilterUsesDiscountedPrice() {
	t := s.T()
	s.createProduct("P1", 100, 3, 1000, 4.5)
	s.createProduct("P2", 200, 3, 800, 4.0)
	s.createSpecial("ST1", 100, 3, 0.25)

	// 原价1000折后750, 过滤上限800应当命中两件
	q := dao.StorefrontQuery{
		MaxPrice: 800,
		SortBy:   "price",
		Limit:    10,
		Now:      time.Now().UnixMilli(),
	}
	got, err := s.dao.ListStorefront(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, []string{"P1", "P2"}, slice.Map(got, func(idx int, p dao.StorefrontProduct) string {
		return p.SN
	}))

	count, err := s.dao.CountStorefront(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	// 下限800只剩没有折扣的那件
	q2 := dao.StorefrontQuery{
		MinPrice: 800,
		SortBy:   "price",
		Limit:    10,
		Now:      time.Now().UnixMilli(),
	}
	got, err = s.dao.ListStorefront(context.Background(), q2)
	require.NoError(t, err)
	require.Equal(t, []string{"P2"}, slice.Map(got, func(idx int, p dao.StorefrontProduct) string {
		return p.SN
	}))
}

func (s *StorefrontTestSuite) TestListStorefront_Filters() {
	t := s.T()
	s.createProduct("P1", 100, 3, 1000, 4.5)
	s.createProduct("P2", 100, 4, 500, 2.0)
	s.createProduct("P3", 200, 3, 700, 5.0)

	testCases := []struct {
		name string
		q    dao.StorefrontQuery
		want []string
	}{
		{
			name: "按店铺过滤",
			q:    dao.StorefrontQuery{StoreID: 100, SortBy: "price", Limit: 10},
			want: []string{"P2", "P1"},
		},
		{
			name: "按类目过滤",
			q:    dao.StorefrontQuery{ProductTypeIDs: []int64{3}, SortBy: "price", Limit: 10},
			want: []string{"P3", "P1"},
		},
		{
			name: "按关键字过滤",
			q:    dao.StorefrontQuery{Keyword: "P2", SortBy: "price", Limit: 10},
			want: []string{"P2"},
		},
		{
			name: "按最低评分过滤",
			q:    dao.StorefrontQuery{MinRating: 4.0, SortBy: "rating", Desc: true, Limit: 10},
			want: []string{"P3", "P1"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.q.Now = time.Now().UnixMilli()
			got, err := s.dao.ListStorefront(context.Background(), tc.q)
			require.NoError(t, err)
			require.Equal(t, tc.want, slice.Map(got, func(idx int, p dao.StorefrontProduct) string {
				return p.SN
			}))
		})
	}
}
