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
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscount_EffectiveAt(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(5000)
	testCases := []struct {
		name     string
		discount Discount
		want     bool
	}{
		{
			name:     "窗口内且启用",
			discount: Discount{IsActive: true, StartDatetime: 1000, EndDatetime: 9000},
			want:     true,
		},
		{
			name:     "恰好在起始时刻生效",
			discount: Discount{IsActive: true, StartDatetime: 5000, EndDatetime: 9000},
			want:     true,
		},
		{
			name:     "恰好在结束时刻仍然生效",
			discount: Discount{IsActive: true, StartDatetime: 1000, EndDatetime: 5000},
			want:     true,
		},
		{
			name:     "还没开始",
			discount: Discount{IsActive: true, StartDatetime: 6000, EndDatetime: 9000},
			want:     false,
		},
		{
			name:     "已经过期",
			discount: Discount{IsActive: true, StartDatetime: 1000, EndDatetime: 4000},
			want:     false,
		},
		{
			name:     "窗口内但已停用",
			discount: Discount{IsActive: false, StartDatetime: 1000, EndDatetime: 9000},
			want:     false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.discount.EffectiveAt(now))
		})
	}
}
