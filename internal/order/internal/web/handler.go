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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/status", ginx.BS[UpdateOrderStatusReq](h.UpdateOrderStatus))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/sales", ginx.BS[ListOrdersReq](h.ListSales))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 下单。带 product_id 时直接购买,不带时把购物车整车下单。
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, fmt.Errorf("请求ID错误: %w", err)
	}
	uid := sess.Claims().Uid
	var (
		orders []domain.Order
		err    error
	)
	if req.ProductID > 0 {
		var o domain.Order
		o, err = h.svc.CreateFromProduct(ctx.Request.Context(), uid, req.ProductID, req.Quantity, req.ShippingAddress, req.PaymentMethod)
		orders = []domain.Order{o}
	} else {
		orders, err = h.svc.CreateFromCart(ctx.Request.Context(), uid, req.ShippingAddress, req.PaymentMethod)
	}
	switch {
	case errors.Is(err, service.ErrProductUnavailable):
		return productUnavailableResult, err
	case errors.Is(err, service.ErrSelfPurchase):
		return selfPurchaseResult, err
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{Data: CreateOrderResp{Groups: h.groupBySeller(orders)}}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("order:create:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, time.Hour*24); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

// groupBySeller 只做响应整形,不合并订单
func (h *Handler) groupBySeller(orders []domain.Order) []SellerOrders {
	groups := make([]SellerOrders, 0, len(orders))
	idx := make(map[int64]int)
	for _, o := range orders {
		i, ok := idx[o.SellerID]
		if !ok {
			i = len(groups)
			idx[o.SellerID] = i
			groups = append(groups, SellerOrders{SellerID: o.SellerID})
		}
		groups[i].Orders = append(groups[i].Orders, h.toOrderVO(o))
	}
	return groups
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Find(ctx.Request.Context(), sess.Claims().Uid, req.OrderID)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("查询订单失败: %w", err)
	}
	return ginx.Result{Data: h.toOrderVO(o)}, nil
}

// UpdateOrderStatus 卖家更新订单状态
func (h *Handler) UpdateOrderStatus(ctx *ginx.Context, req UpdateOrderStatusReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.UpdateStatus(ctx.Request.Context(), sess.Claims().Uid, req.OrderID, domain.Status(req.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, err
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("更新订单状态失败: %w", err)
	}
	return ginx.Result{Data: h.toOrderVO(o)}, nil
}

// ListOrders 买家分页查询自己的订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListByBuyer(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit, domain.Status(req.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return h.toOrderVO(src)
			}),
		},
	}, nil
}

// ListSales 卖家分页查询卖出的订单
func (h *Handler) ListSales(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListBySeller(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit, domain.Status(req.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return h.toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) toOrderVO(o domain.Order) Order {
	return Order{
		ID:              o.ID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		ProductID:       o.ProductID,
		ProductName:     o.ProductName,
		UnitPrice:       o.UnitPrice.InexactFloat64(),
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice.InexactFloat64(),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus.String(),
		PaymentRef:      o.PaymentRef,
		FailureReason:   o.FailureReason,
		Status:          o.Status.String(),
		TrackingNumber:  o.TrackingNumber,
		Ctime:           o.Ctime,
		Utime:           o.Utime,
	}
}
