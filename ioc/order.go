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

package ioc

import (
	"time"

	"github.com/ecodeclub/emall/internal/order"
	"github.com/gotomicro/ego/core/econf"
)

func initOrderPolicy() order.Policy {
	type Config struct {
		ShippingFee int64 `yaml:"shippingFee"`
	}
	cfg := Config{ShippingFee: 60}
	err := econf.UnmarshalKey("order.policy", &cfg)
	if err != nil {
		panic(err)
	}
	return order.Policy{ShippingFee: cfg.ShippingFee}
}

func initCloseExpiredOrdersJob(svc order.Service) *order.CloseExpiredOrdersJob {
	type Config struct {
		Limit         int   `yaml:"limit"`
		ExpireMinutes int64 `yaml:"expireMinutes"`
	}
	cfg := Config{Limit: 100, ExpireMinutes: 30}
	err := econf.UnmarshalKey("order.closeExpired", &cfg)
	if err != nil {
		panic(err)
	}
	return order.NewCloseExpiredOrdersJob(svc, cfg.Limit, cfg.ExpireMinutes, time.Minute)
}
