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
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service/gateway"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/payment/methods", ginx.W(h.Methods))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/initiate", ginx.BS[InitiatePaymentReq](h.Initiate))
	g.POST("/status", ginx.BS[PaymentStatusReq](h.PollStatus))
	g.POST("/pending", ginx.S(h.ListPending))
	g.POST("/cancel", ginx.BS[CancelPaymentReq](h.Cancel))
}

func (h *Handler) Methods(_ *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: MethodsResp{
			Methods: slice.Map(h.svc.Methods(), func(idx int, src domain.Method) Method {
				return Method{
					ID:          src.ID,
					Name:        src.Name,
					Description: src.Description,
					Enabled:     src.Enabled,
					Countries:   src.Countries,
				}
			}),
		},
	}, nil
}

func (h *Handler) Initiate(ctx *ginx.Context, req InitiatePaymentReq, sess session.Session) (ginx.Result, error) {
	pp, err := h.svc.Initiate(ctx.Request.Context(), sess.Claims().Uid, req.OrderID, req.PhoneNumber)
	var rejected *gateway.RejectedError
	switch {
	case errors.Is(err, service.ErrInvalidPhone):
		return invalidPhoneResult, err
	case errors.Is(err, service.ErrOrderNotFound):
		return paymentNotFoundResult, err
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case errors.Is(err, service.ErrAlreadyPaid):
		return alreadyPaidResult, err
	case errors.As(err, &rejected):
		return paymentRejectedResult(rejected.Message), err
	case err != nil:
		return systemErrorResult, fmt.Errorf("发起支付失败: %w", err)
	}
	provider := strings.ToUpper(pp.Provider.String())
	return ginx.Result{
		Data: InitiatePaymentResp{
			TransactionID: pp.TransactionID,
			ExternalID:    pp.ExternalID,
			Amount:        pp.Amount.InexactFloat64(),
			Provider:      provider,
			Status:        pp.Status.String(),
			Instructions:  fmt.Sprintf("请在 %s 手机上确认本次付款", provider),
		},
	}, nil
}

func (h *Handler) PollStatus(ctx *ginx.Context, req PaymentStatusReq, sess session.Session) (ginx.Result, error) {
	view, err := h.svc.PollStatus(ctx.Request.Context(), sess.Claims().Uid, req.TransactionID)
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return paymentNotFoundResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("查询支付状态失败: %w", err)
	}
	return ginx.Result{
		Data: PaymentStatusResp{
			TransactionID: view.TransactionID,
			OrderID:       view.OrderID,
			Provider:      strings.ToUpper(view.Provider.String()),
			Status:        view.Status.String(),
			Amount:        view.Amount.InexactFloat64(),
			SettlementRef: view.SettlementRef,
			FailureReason: view.FailureReason,
			Message:       view.Message,
			Utime:         view.Utime,
		},
	}, nil
}

func (h *Handler) ListPending(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	payments, err := h.svc.ListPending(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询在途支付失败: %w", err)
	}
	return ginx.Result{
		Data: ListPendingResp{
			Payments: slice.Map(payments, func(idx int, src domain.PendingPayment) PendingPayment {
				return PendingPayment{
					TransactionID: src.TransactionID,
					ExternalID:    src.ExternalID,
					OrderID:       src.OrderID,
					Amount:        src.Amount.InexactFloat64(),
					PhoneNumber:   src.PhoneNumber,
					Provider:      src.Provider.String(),
					Status:        src.Status.String(),
					Ctime:         src.Ctime,
					Utime:         src.Utime,
				}
			}),
		},
	}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req CancelPaymentReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx.Request.Context(), sess.Claims().Uid, req.TransactionID)
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return paymentNotFoundResult, err
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("取消支付失败: %w", err)
	}
	return ginx.Result{Msg: "支付已取消"}, nil
}
