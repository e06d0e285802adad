//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/marketplace/internal/cart"
	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/payment"
	"github.com/ecodeclub/marketplace/internal/product"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() *App {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitService,
		cart.InitModule,
		order.InitModule,
		payment.InitModule,
		InitSession,
		initGinxServer)
	return new(App)
}
