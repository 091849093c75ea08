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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrich(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		price       int64
		rate        float64
		wantCurrent int64
	}{
		{
			name:        "八折",
			price:       1000,
			rate:        0.2,
			wantCurrent: 800,
		},
		{
			name:        "无折扣时原价即现价",
			price:       1000,
			rate:        0,
			wantCurrent: 1000,
		},
		{
			name:        "折后价四舍五入到分",
			price:       999,
			rate:        0.25,
			wantCurrent: 749,
		},
		{
			name:        "全额折扣",
			price:       500,
			rate:        1,
			wantCurrent: 0,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := Product{ID: 1, Price: tc.price}
			got := Enrich(p, tc.rate)
			assert.Equal(t, tc.price, got.OriginalPrice)
			assert.Equal(t, tc.wantCurrent, got.CurrentPrice)
			assert.Equal(t, tc.rate, got.DiscountRate)
			assert.Equal(t, p, got.Product)
		})
	}
}

func TestDescendantIDs(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		all    []ProductType
		rootID int64
		want   []int64
	}{
		{
			name: "子孙全收",
			all: []ProductType{
				{ID: 1, ParentID: 0},
				{ID: 2, ParentID: 1},
				{ID: 3, ParentID: 1},
				{ID: 4, ParentID: 2},
				{ID: 5, ParentID: 0},
			},
			rootID: 1,
			want:   []int64{1, 2, 3, 4},
		},
		{
			name: "叶子类目只有自己",
			all: []ProductType{
				{ID: 1, ParentID: 0},
				{ID: 2, ParentID: 1},
			},
			rootID: 2,
			want:   []int64{2},
		},
		{
			name: "父指针成环不会死循环",
			all: []ProductType{
				{ID: 1, ParentID: 2},
				{ID: 2, ParentID: 1},
				{ID: 3, ParentID: 2},
			},
			rootID: 1,
			want:   []int64{1, 2, 3},
		},
		{
			name:   "空类目表",
			all:    nil,
			rootID: 9,
			want:   []int64{9},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ElementsMatch(t, tc.want, DescendantIDs(tc.all, tc.rootID))
		})
	}
}

func TestDescendantIDs_DepthGuard(t *testing.T) {
	t.Parallel()
	// 长度远超最大深度的链, 只收最大深度以内的子孙
	var all []ProductType
	for i := int64(2); i <= 100; i++ {
		all = append(all, ProductType{ID: i, ParentID: i - 1})
	}
	got := DescendantIDs(all, 1)
	assert.Len(t, got, maxTypeDepth+1)
	assert.Equal(t, int64(1), got[0])
}
