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

package payment

import (
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/payment/internal/repository"
	"github.com/ecodeclub/marketplace/internal/payment/internal/repository/cache"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service/gateway"
	"github.com/ecodeclub/marketplace/internal/payment/internal/web"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	cache.NewPendingPaymentECache,
	repository.NewPendingPaymentRepository,
	InitGateways,
	service.NewService,
	web.NewHandler,
	wire.FieldsOf(new(*order.Module), "Svc"),
	wire.Struct(new(Module), "*"))

func InitModule(ec ecache.Cache, orderModule *order.Module) *Module {
	wire.Build(ModuleSet)
	return new(Module)
}

// 模拟一次网关网络往返的耗时
const gatewayLatency = time.Second

func InitGateways() map[domain.Provider]gateway.Gateway {
	return map[domain.Provider]gateway.Gateway{
		domain.ProviderMTN:    gateway.NewMTNGateway(gatewayLatency),
		domain.ProviderAirtel: gateway.NewAirtelGateway(gatewayLatency),
	}
}
