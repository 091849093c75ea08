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

package product

import (
	"context"
	"sync"

	"github.com/ecodeclub/emall/internal/discount"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/product/internal/event"
	"github.com/ecodeclub/emall/internal/product/internal/repository"
	"github.com/ecodeclub/emall/internal/product/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/product/internal/service"
	"github.com/ecodeclub/emall/internal/product/internal/web"
	"github.com/ecodeclub/emall/internal/store"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	InitSNGenerator,
	repository.NewProductRepository,
	service.NewService)

func InitModule(db *egorm.Component, q mq.MQ, storeModule *store.Module, discountModule *discount.Module) *Module {
	wire.Build(
		ServiceSet,
		web.NewHandler,
		web.NewAdminHandler,
		initRatingConsumer,
		wire.FieldsOf(new(*store.Module), "Svc"),
		wire.FieldsOf(new(*discount.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initRatingConsumer(svc service.Service, q mq.MQ) *event.RatingConsumer {
	consumer, err := event.NewRatingConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	consumer.Start(context.Background())
	return consumer
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProductGORMDAO(db)
}

func InitSNGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGenerator("PRD")
}
