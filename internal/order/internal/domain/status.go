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

import "fmt"

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPendingPayment Status = 1
	StatusPaymentFailed  Status = 2
	StatusPaid           Status = 3
	StatusProcessing     Status = 4
	StatusShipped        Status = 5
	StatusDelivered      Status = 6
	StatusCompleted      Status = 7
	StatusCancelled      Status = 8
)

var statusNames = map[Status]string{
	StatusPendingPayment: "pending_payment",
	StatusPaymentFailed:  "payment_failed",
	StatusPaid:           "paid",
	StatusProcessing:     "processing",
	StatusShipped:        "shipped",
	StatusDelivered:      "delivered",
	StatusCompleted:      "completed",
	StatusCancelled:      "cancelled",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(s))
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Terminal 终态没有任何出边
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// transitions 状态流转表, 不在表里的流转一律拒绝
var transitions = map[Status][]Status{
	StatusPendingPayment: {StatusPaid, StatusPaymentFailed, StatusCancelled},
	StatusPaymentFailed:  {StatusPaid, StatusCancelled},
	StatusPaid:           {StatusProcessing, StatusCancelled},
	StatusProcessing:     {StatusShipped, StatusCancelled},
	StatusShipped:        {StatusDelivered},
	StatusDelivered:      {StatusCompleted},
	StatusCompleted:      {},
	StatusCancelled:      {},
}

// CanTransition 当前状态是否允许流转到 next
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InvalidTransitionError 携带流转前后两个状态
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("订单状态非法流转: %s -> %s", e.From, e.To)
}

// Transition 应用一次状态流转.
// 拒绝时返回错误且不修改订单; 接受时设置新状态并盖上对应的生命周期时间戳,
// payment_failed 和 processing 不盖时间戳, 已有的时间戳从不覆盖
func (o *Order) Transition(next Status, now int64) error {
	if !o.Status.CanTransition(next) {
		return &InvalidTransitionError{From: o.Status, To: next}
	}
	o.Status = next
	switch next {
	case StatusPaid:
		o.PaidAt = now
	case StatusShipped:
		o.ShippedAt = now
	case StatusDelivered:
		o.DeliveredAt = now
	case StatusCompleted:
		o.CompletedAt = now
	case StatusCancelled:
		o.CancelledAt = now
	}
	return nil
}
