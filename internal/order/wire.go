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
	"github.com/ecodeclub/marketplace/internal/cart"
	"github.com/ecodeclub/marketplace/internal/order/internal/repository"
	"github.com/ecodeclub/marketplace/internal/order/internal/repository/dao"
	"github.com/ecodeclub/marketplace/internal/order/internal/service"
	"github.com/ecodeclub/marketplace/internal/order/internal/web"
	"github.com/ecodeclub/marketplace/internal/pkg/tracking"
	"github.com/ecodeclub/marketplace/internal/product"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	tracking.NewGenerator,
	InitTablesOnce,
	repository.NewOrderRepository,
	service.NewService,
	web.NewHandler,
	wire.FieldsOf(new(*cart.Module), "Svc", "DAO"),
	wire.Struct(new(Module), "*"))

func InitModule(db *egorm.Component, ec ecache.Cache, productSvc product.Service, cartModule *cart.Module) *Module {
	wire.Build(ModuleSet)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component, tg *tracking.Generator, cartDAO cart.CartDAO) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db, tg, cartDAO)
}
