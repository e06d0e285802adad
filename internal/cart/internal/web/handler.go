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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/marketplace/internal/cart/internal/domain"
	"github.com/ecodeclub/marketplace/internal/cart/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 同时服务已登录用户和匿名用户,
// 匿名用户通过 X-Cart-Session 请求头携带购物车标识。
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/detail", ginx.W(h.Detail))
	g.POST("/add", ginx.B[AddCartItemReq](h.Add))
	g.POST("/update", ginx.B[UpdateCartItemReq](h.Update))
	g.POST("/delete", ginx.B[RemoveCartItemReq](h.Remove))
	g.POST("/clear", ginx.W(h.Clear))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/cart/migrate", ginx.BS[MigrateCartReq](h.Migrate))
}

// actor 先尝试登录态,拿不到再退回匿名购物车标识。
func (h *Handler) actor(ctx *ginx.Context) (domain.Actor, error) {
	sess, err := session.Get(ctx)
	if err == nil {
		return domain.Actor{UID: sess.Claims().Uid}, nil
	}
	token := ctx.GetHeader("X-Cart-Session")
	if token == "" {
		return domain.Actor{}, errors.New("缺少购物车会话标识")
	}
	return domain.Actor{SessionToken: token}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return sessionRequiredResult, err
	}
	cart, err := h.svc.Get(ctx.Request.Context(), actor)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取购物车失败: %w", err)
	}
	return ginx.Result{Data: h.toCartVO(cart)}, nil
}

func (h *Handler) Add(ctx *ginx.Context, req AddCartItemReq) (ginx.Result, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return sessionRequiredResult, err
	}
	err = h.svc.Add(ctx.Request.Context(), actor, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, err
	case errors.Is(err, service.ErrProductNotFound):
		return productNotFoundResult, err
	case errors.Is(err, service.ErrProductUnavailable):
		return productUnavailableResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("添加购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateCartItemReq) (ginx.Result, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return sessionRequiredResult, err
	}
	err = h.svc.Update(ctx.Request.Context(), actor, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, err
	case errors.Is(err, service.ErrLineNotFound):
		return lineNotFoundResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("修改购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, req RemoveCartItemReq) (ginx.Result, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return sessionRequiredResult, err
	}
	if err := h.svc.Remove(ctx.Request.Context(), actor, req.ProductID); err != nil {
		return systemErrorResult, fmt.Errorf("删除购物车商品失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Clear(ctx *ginx.Context) (ginx.Result, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return sessionRequiredResult, err
	}
	if err := h.svc.Clear(ctx.Request.Context(), actor); err != nil {
		return systemErrorResult, fmt.Errorf("清空购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// Migrate 登录后把匿名购物车合并进当前用户的购物车
func (h *Handler) Migrate(ctx *ginx.Context, req MigrateCartReq, sess session.Session) (ginx.Result, error) {
	token := req.Token
	if token == "" {
		token = ctx.GetHeader("X-Cart-Session")
	}
	if token == "" {
		return sessionRequiredResult, errors.New("缺少购物车会话标识")
	}
	n, err := h.svc.Migrate(ctx.Request.Context(), token, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("迁移购物车失败: %w", err)
	}
	return ginx.Result{Data: MigrateCartResp{Migrated: n}}, nil
}

func (h *Handler) toCartVO(cart domain.Cart) CartResp {
	return CartResp{
		Items: slice.Map(cart.Lines, func(idx int, src domain.Line) CartItem {
			return CartItem{
				ProductID:   src.ProductID,
				SellerID:    src.SellerID,
				ProductName: src.ProductName,
				UnitPrice:   src.UnitPrice.InexactFloat64(),
				Quantity:    src.Quantity,
				Subtotal:    src.Subtotal.InexactFloat64(),
			}
		}),
		TotalItems: cart.TotalItems,
		TotalPrice: cart.TotalPrice.InexactFloat64(),
	}
}
