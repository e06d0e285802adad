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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/payment/internal/repository"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service/gateway"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

// 一小时未决的在途支付在下次查询时被惰性清掉
const staleness = time.Hour

var (
	ErrPaymentNotFound = repository.ErrPaymentNotFound
	ErrOrderNotFound   = order.ErrOrderNotFound
	ErrForbidden       = errors.New("无权操作该交易")
	ErrAlreadyPaid     = errors.New("该订单已支付或已取消")
	ErrInvalidPhone    = errors.New("手机号格式非法")
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// Initiate 对订单发起移动支付。按手机号识别运营商,
	// 网关受理后登记一笔在途支付;网关拒绝时返回 *gateway.RejectedError,
	// 不留任何在途记录。
	Initiate(ctx context.Context, uid, orderID int64, phoneNumber string) (domain.PendingPayment, error)
	// PollStatus 查询一次交易状态并把终态写回订单:
	// 成功置为已支付并确认订单,失败记下原因,两种终态都会移除在途支付,
	// 之后再查同一交易号会得到 ErrPaymentNotFound。
	PollStatus(ctx context.Context, uid int64, transactionID string) (domain.StatusView, error)
	// ListPending 返回一小时内的在途支付,顺带清掉过期的
	ListPending(ctx context.Context, uid int64) ([]domain.PendingPayment, error)
	// Cancel 只做本地登记的移除,不通知网关
	Cancel(ctx context.Context, uid int64, transactionID string) error
	Methods() []domain.Method
}

func NewService(repo repository.PendingPaymentRepository,
	orderSvc order.Service,
	gateways map[domain.Provider]gateway.Gateway) Service {
	return &service{
		repo:     repo,
		orderSvc: orderSvc,
		gateways: gateways,
		l:        elog.DefaultLogger}
}

type service struct {
	repo     repository.PendingPaymentRepository
	orderSvc order.Service
	gateways map[domain.Provider]gateway.Gateway
	l        *elog.Component
}

func (s *service) Initiate(ctx context.Context, uid, orderID int64, phoneNumber string) (domain.PendingPayment, error) {
	if !strings.HasPrefix(phoneNumber, "+") || len(phoneNumber) < 10 {
		return domain.PendingPayment{}, ErrInvalidPhone
	}
	o, err := s.orderSvc.Find(ctx, uid, orderID)
	if err != nil {
		if errors.Is(err, order.ErrForbidden) {
			return domain.PendingPayment{}, ErrForbidden
		}
		return domain.PendingPayment{}, err
	}
	// 买家才能付款,卖家能查到订单但不能替买家付
	if o.BuyerID != uid {
		return domain.PendingPayment{}, ErrForbidden
	}
	if o.PaymentStatus != order.PaymentStatusPending {
		return domain.PendingPayment{}, ErrAlreadyPaid
	}

	p := provider.Detect(phoneNumber)
	now := time.Now()
	externalID := fmt.Sprintf("KM_%d_%d", orderID, now.Unix())
	resp, err := s.gateways[p].RequestToPay(ctx, gateway.RequestToPayReq{
		Amount:      o.TotalPrice,
		PhoneNumber: phoneNumber,
		ExternalID:  externalID,
		Message:     fmt.Sprintf("订单 #%s 付款", o.TrackingNumber),
	})
	if err != nil {
		return domain.PendingPayment{}, err
	}

	pp := domain.PendingPayment{
		TransactionID: resp.TransactionID,
		ExternalID:    externalID,
		OrderID:       orderID,
		Amount:        o.TotalPrice,
		PhoneNumber:   phoneNumber,
		Provider:      p,
		Status:        domain.StatusPending,
		Ctime:         now.UnixMilli(),
		Utime:         now.UnixMilli(),
	}
	if err := s.repo.Save(ctx, uid, pp); err != nil {
		return domain.PendingPayment{}, err
	}
	return pp, nil
}

func (s *service) PollStatus(ctx context.Context, uid int64, transactionID string) (domain.StatusView, error) {
	pp, err := s.repo.Find(ctx, uid, transactionID)
	if err != nil {
		return domain.StatusView{}, err
	}
	resp, err := s.gateways[pp.Provider].CheckStatus(ctx, transactionID)
	if err != nil {
		return domain.StatusView{}, err
	}

	now := time.Now().UnixMilli()
	switch resp.Status {
	case domain.StatusSuccess:
		err = s.orderSvc.MarkPaid(ctx, pp.OrderID, pp.Provider.PaymentMethod(), resp.SettlementRef)
		if err != nil {
			return domain.StatusView{}, err
		}
		if err := s.repo.Delete(ctx, uid, transactionID); err != nil {
			return domain.StatusView{}, err
		}
		s.l.Info("支付成功",
			elog.String("txn_id", transactionID),
			elog.Int64("order_id", pp.OrderID),
			elog.String("settlement_ref", resp.SettlementRef))
	case domain.StatusFailed:
		err = s.orderSvc.MarkPaymentFailed(ctx, pp.OrderID, resp.FailureReason)
		if err != nil {
			return domain.StatusView{}, err
		}
		if err := s.repo.Delete(ctx, uid, transactionID); err != nil {
			return domain.StatusView{}, err
		}
		s.l.Warn("支付失败",
			elog.String("txn_id", transactionID),
			elog.Int64("order_id", pp.OrderID),
			elog.String("reason", resp.FailureReason))
	default:
		pp.Status = domain.StatusPending
		pp.Utime = now
		if err := s.repo.Save(ctx, uid, pp); err != nil {
			return domain.StatusView{}, err
		}
	}

	return domain.StatusView{
		TransactionID: transactionID,
		OrderID:       pp.OrderID,
		Provider:      pp.Provider,
		Status:        resp.Status,
		Amount:        pp.Amount,
		SettlementRef: resp.SettlementRef,
		FailureReason: resp.FailureReason,
		Message:       resp.Message,
		Utime:         now,
	}, nil
}

func (s *service) ListPending(ctx context.Context, uid int64) ([]domain.PendingPayment, error) {
	payments, err := s.repo.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	horizon := time.Now().Add(-staleness).UnixMilli()
	alive := make([]domain.PendingPayment, 0, len(payments))
	for _, p := range payments {
		if p.Ctime >= horizon {
			alive = append(alive, p)
		}
	}
	if len(alive) != len(payments) {
		if err := s.repo.Replace(ctx, uid, alive); err != nil {
			return nil, err
		}
	}
	return alive, nil
}

func (s *service) Cancel(ctx context.Context, uid int64, transactionID string) error {
	pp, err := s.repo.Find(ctx, uid, transactionID)
	if err != nil {
		return err
	}
	o, err := s.orderSvc.Find(ctx, uid, pp.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrForbidden) {
			return ErrForbidden
		}
		return err
	}
	if o.BuyerID != uid {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, uid, transactionID)
}

func (s *service) Methods() []domain.Method {
	return []domain.Method{
		{
			ID:          "mtn_mobile_money",
			Name:        "MTN Mobile Money",
			Description: "用 MTN Mobile Money 账户付款",
			Enabled:     true,
			Countries:   []string{"CM", "CI", "GH", "UG", "ZM", "RW"},
		},
		{
			ID:          "airtel_money",
			Name:        "Airtel Money",
			Description: "用 Airtel Money 账户付款",
			Enabled:     true,
			Countries:   []string{"CM", "TD", "GA", "NE"},
		},
		{
			ID:          "orange_money",
			Name:        "Orange Money",
			Description: "用 Orange Money 账户付款",
			Enabled:     false,
			Countries:   []string{"CM", "CI", "SN", "ML", "BF"},
		},
		{
			ID:          "card",
			Name:        "银行卡",
			Description: "Visa 或 Mastercard 付款",
			Enabled:     false,
			Countries:   []string{"ALL"},
		},
	}
}
