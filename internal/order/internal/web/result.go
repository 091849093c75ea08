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

package web

import (
	"github.com/ecodeclub/emall/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidOrderResult = ginx.Result{
		Code: errs.InvalidOrder.Code,
		Msg:  errs.InvalidOrder.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	concurrentUpdateResult = ginx.Result{
		Code: errs.ConcurrentUpdate.Code,
		Msg:  errs.ConcurrentUpdate.Msg,
	}
	notStoreOrderResult = ginx.Result{
		Code: errs.NotStoreOrder.Code,
		Msg:  errs.NotStoreOrder.Msg,
	}
	duplicatedRequestResult = ginx.Result{
		Code: errs.DuplicatedRequest.Code,
		Msg:  errs.DuplicatedRequest.Msg,
	}
)
