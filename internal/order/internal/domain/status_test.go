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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []Status{
	StatusPendingPayment,
	StatusPaymentFailed,
	StatusPaid,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCompleted,
	StatusCancelled,
}

func TestStatus_CanTransition(t *testing.T) {
	t.Parallel()
	allowed := map[Status][]Status{
		StatusPendingPayment: {StatusPaid, StatusPaymentFailed, StatusCancelled},
		StatusPaymentFailed:  {StatusPaid, StatusCancelled},
		StatusPaid:           {StatusProcessing, StatusCancelled},
		StatusProcessing:     {StatusShipped, StatusCancelled},
		StatusShipped:        {StatusDelivered},
		StatusDelivered:      {StatusCompleted},
		StatusCompleted:      {},
		StatusCancelled:      {},
	}
	for from, tos := range allowed {
		set := make(map[Status]bool, len(tos))
		for _, to := range tos {
			set[to] = true
		}
		for _, to := range allStatuses {
			assert.Equal(t, set[to], from.CanTransition(to),
				"%s -> %s", from, to)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	t.Parallel()
	for _, s := range allStatuses {
		if !s.Terminal() {
			continue
		}
		// 终态没有任何出边
		for _, to := range allStatuses {
			assert.False(t, s.CanTransition(to), "%s -> %s", s, to)
		}
	}
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestOrder_Transition(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		order   Order
		next    Status
		now     int64
		wantErr bool
		after   func(t *testing.T, o Order)
	}{
		{
			name:  "待支付到已支付",
			order: Order{Status: StatusPendingPayment},
			next:  StatusPaid,
			now:   1000,
			after: func(t *testing.T, o Order) {
				assert.Equal(t, StatusPaid, o.Status)
				assert.Equal(t, int64(1000), o.PaidAt)
				assert.Zero(t, o.ShippedAt)
				assert.Zero(t, o.CancelledAt)
			},
		},
		{
			name:  "支付失败不盖时间戳",
			order: Order{Status: StatusPendingPayment},
			next:  StatusPaymentFailed,
			now:   1000,
			after: func(t *testing.T, o Order) {
				assert.Equal(t, StatusPaymentFailed, o.Status)
				assert.Zero(t, o.PaidAt)
				assert.Zero(t, o.CancelledAt)
			},
		},
		{
			name:  "发货保留已有的支付时间",
			order: Order{Status: StatusProcessing, PaidAt: 500},
			next:  StatusShipped,
			now:   2000,
			after: func(t *testing.T, o Order) {
				assert.Equal(t, StatusShipped, o.Status)
				assert.Equal(t, int64(500), o.PaidAt)
				assert.Equal(t, int64(2000), o.ShippedAt)
			},
		},
		{
			name:  "送达后确认完成",
			order: Order{Status: StatusDelivered, PaidAt: 500, ShippedAt: 600, DeliveredAt: 700},
			next:  StatusCompleted,
			now:   3000,
			after: func(t *testing.T, o Order) {
				assert.Equal(t, StatusCompleted, o.Status)
				assert.Equal(t, int64(500), o.PaidAt)
				assert.Equal(t, int64(600), o.ShippedAt)
				assert.Equal(t, int64(700), o.DeliveredAt)
				assert.Equal(t, int64(3000), o.CompletedAt)
			},
		},
		{
			name:    "已发货不能取消",
			order:   Order{Status: StatusShipped, ShippedAt: 600},
			next:    StatusCancelled,
			now:     3000,
			wantErr: true,
		},
		{
			name:    "终态不能再流转",
			order:   Order{Status: StatusCancelled, CancelledAt: 900},
			next:    StatusPaid,
			now:     3000,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			o := tc.order
			err := o.Transition(tc.next, tc.now)
			if tc.wantErr {
				var invalid *InvalidTransitionError
				require.True(t, errors.As(err, &invalid))
				assert.Equal(t, tc.order.Status, invalid.From)
				assert.Equal(t, tc.next, invalid.To)
				// 拒绝时订单原样不动
				assert.Equal(t, tc.order, o)
				return
			}
			require.NoError(t, err)
			tc.after(t, o)
		})
	}
}

func TestOrder_Transition_RejectedPairsDoNotMutate(t *testing.T) {
	t.Parallel()
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if from.CanTransition(to) {
				continue
			}
			o := Order{Status: from, PaidAt: 1, ShippedAt: 2, DeliveredAt: 3, CompletedAt: 4, CancelledAt: 5}
			before := o
			err := o.Transition(to, 9999)
			require.Error(t, err, "%s -> %s", from, to)
			assert.Equal(t, before, o, "%s -> %s", from, to)
		}
	}
}
