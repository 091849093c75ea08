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

//go:build wireinject

package order

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/emall/internal/order/internal/web"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/store"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	InitSNGenerator,
	initOrderEventProducer,
	service.NewNoopInventoryHook,
	repository.NewRepository,
	service.NewService)

func InitModule(db *egorm.Component,
	cache ecache.Cache,
	q mq.MQ,
	policy service.Policy,
	cartModule *cart.Module,
	storeModule *store.Module,
) *Module {
	wire.Build(
		ServiceSet,
		web.NewHandler,
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*store.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func InitSNGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGenerator("ORD")
}

func initOrderEventProducer(q mq.MQ) event.OrderEventProducer {
	producer, err := event.NewOrderEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
