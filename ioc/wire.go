//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/discount"
	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/store"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		store.InitModule,
		wire.FieldsOf(new(*store.Module), "Hdl"),
		discount.InitModule,
		wire.FieldsOf(new(*discount.Module), "Hdl", "AdminHdl"),
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "Svc"),
		initOrderPolicy,
		initCloseExpiredOrdersJob,
		initCronJobs,
		InitSession,
		InitAdminServer,
		initGinxServer)
	return new(App), nil
}
