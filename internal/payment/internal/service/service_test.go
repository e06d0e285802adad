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
	"testing"
	"time"

	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/payment/internal/repository"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	// uid -> 交易号 -> 在途支付
	store map[int64]map[string]domain.PendingPayment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{store: make(map[int64]map[string]domain.PendingPayment)}
}

func (f *fakeRepo) bucket(uid int64) map[string]domain.PendingPayment {
	if f.store[uid] == nil {
		f.store[uid] = make(map[string]domain.PendingPayment)
	}
	return f.store[uid]
}

func (f *fakeRepo) Save(_ context.Context, uid int64, p domain.PendingPayment) error {
	f.bucket(uid)[p.TransactionID] = p
	return nil
}

func (f *fakeRepo) Find(_ context.Context, uid int64, transactionID string) (domain.PendingPayment, error) {
	p, ok := f.bucket(uid)[transactionID]
	if !ok {
		return domain.PendingPayment{}, repository.ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakeRepo) List(_ context.Context, uid int64) ([]domain.PendingPayment, error) {
	b := f.bucket(uid)
	res := make([]domain.PendingPayment, 0, len(b))
	for _, p := range b {
		res = append(res, p)
	}
	return res, nil
}

func (f *fakeRepo) Delete(_ context.Context, uid int64, transactionID string) error {
	delete(f.bucket(uid), transactionID)
	return nil
}

func (f *fakeRepo) Replace(_ context.Context, uid int64, payments []domain.PendingPayment) error {
	m := make(map[string]domain.PendingPayment, len(payments))
	for _, p := range payments {
		m[p.TransactionID] = p
	}
	f.store[uid] = m
	return nil
}

type fakeOrderSvc struct {
	orders map[int64]order.Order
}

func (f *fakeOrderSvc) CreateFromProduct(_ context.Context, _, _, _ int64, _, _ string) (order.Order, error) {
	return order.Order{}, nil
}

func (f *fakeOrderSvc) CreateFromCart(_ context.Context, _ int64, _, _ string) ([]order.Order, error) {
	return nil, nil
}

func (f *fakeOrderSvc) Find(_ context.Context, actorID, orderID int64) (order.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return order.Order{}, order.ErrOrderNotFound
	}
	if o.BuyerID != actorID && o.SellerID != actorID {
		return order.Order{}, order.ErrForbidden
	}
	return o, nil
}

func (f *fakeOrderSvc) UpdateStatus(_ context.Context, _, _ int64, _ order.Status) (order.Order, error) {
	return order.Order{}, nil
}

func (f *fakeOrderSvc) MarkPaid(_ context.Context, orderID int64, method, ref string) error {
	o := f.orders[orderID]
	o.PaymentStatus = order.PaymentStatusPaid
	o.Status = order.StatusConfirmed
	o.PaymentMethod = method
	o.PaymentRef = ref
	f.orders[orderID] = o
	return nil
}

func (f *fakeOrderSvc) MarkPaymentFailed(_ context.Context, orderID int64, reason string) error {
	o := f.orders[orderID]
	o.PaymentStatus = order.PaymentStatusFailed
	o.FailureReason = reason
	f.orders[orderID] = o
	return nil
}

func (f *fakeOrderSvc) ListByBuyer(_ context.Context, _ int64, _, _ int, _ order.Status) ([]order.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderSvc) ListBySeller(_ context.Context, _ int64, _, _ int, _ order.Status) ([]order.Order, int64, error) {
	return nil, 0, nil
}

// fakeGateway 把状态查询结果固定下来,规避模拟器的哈希推算
type fakeGateway struct {
	provider domain.Provider
	status   domain.Status
}

func (f *fakeGateway) Provider() domain.Provider {
	return f.provider
}

func (f *fakeGateway) RequestToPay(ctx context.Context, req gateway.RequestToPayReq) (gateway.RequestToPayResp, error) {
	real := gateway.NewMTNGateway(0)
	if f.provider == domain.ProviderAirtel {
		real = gateway.NewAirtelGateway(0)
	}
	return real.RequestToPay(ctx, req)
}

func (f *fakeGateway) CheckStatus(_ context.Context, transactionID string) (gateway.StatusResp, error) {
	resp := gateway.StatusResp{TransactionID: transactionID, Status: f.status}
	switch f.status {
	case domain.StatusSuccess:
		resp.SettlementRef = "FT1693468800"
	case domain.StatusFailed:
		resp.FailureReason = "INSUFFICIENT_FUNDS"
	}
	return resp, nil
}

func newFixture(mtnStatus domain.Status) (*fakeRepo, *fakeOrderSvc, Service) {
	repo := newFakeRepo()
	orderSvc := &fakeOrderSvc{orders: map[int64]order.Order{
		1: {
			ID: 1, BuyerID: 9, SellerID: 2,
			TotalPrice:     decimal.NewFromFloat(200),
			PaymentStatus:  order.PaymentStatusPending,
			Status:         order.StatusPending,
			TrackingNumber: "KM00000001",
		},
		2: {
			ID: 2, BuyerID: 9, SellerID: 2,
			TotalPrice:    decimal.NewFromFloat(50),
			PaymentStatus: order.PaymentStatusPaid,
			Status:        order.StatusConfirmed,
		},
	}}
	svc := NewService(repo, orderSvc, map[domain.Provider]gateway.Gateway{
		domain.ProviderMTN:    &fakeGateway{provider: domain.ProviderMTN, status: mtnStatus},
		domain.ProviderAirtel: &fakeGateway{provider: domain.ProviderAirtel, status: mtnStatus},
	})
	return repo, orderSvc, svc
}

func TestService_Initiate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		uid     int64
		orderID int64
		phone   string
		wantErr error
	}{
		{
			name:    "MTN号码受理成功",
			uid:     9,
			orderID: 1,
			phone:   "+237670123453",
		},
		{
			name:    "手机号不带加号",
			uid:     9,
			orderID: 1,
			phone:   "237670123453",
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "手机号过短",
			uid:     9,
			orderID: 1,
			phone:   "+23767",
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "订单不存在",
			uid:     9,
			orderID: 404,
			phone:   "+237670123453",
			wantErr: ErrOrderNotFound,
		},
		{
			name:    "不是买家",
			uid:     2,
			orderID: 1,
			phone:   "+237670123453",
			wantErr: ErrForbidden,
		},
		{
			name:    "订单已支付",
			uid:     9,
			orderID: 2,
			phone:   "+237670123453",
			wantErr: ErrAlreadyPaid,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo, _, svc := newFixture(domain.StatusPending)
			pp, err := svc.Initiate(context.Background(), tc.uid, tc.orderID, tc.phone)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusPending, pp.Status)
			assert.Equal(t, domain.ProviderMTN, pp.Provider)
			assert.True(t, decimal.NewFromFloat(200).Equal(pp.Amount))
			assert.Contains(t, pp.ExternalID, "KM_1_")
			// 在途支付已登记
			_, err = repo.Find(context.Background(), tc.uid, pp.TransactionID)
			assert.NoError(t, err)
		})
	}
}

func TestService_Initiate_Rejected(t *testing.T) {
	t.Parallel()
	repo, _, svc := newFixture(domain.StatusPending)
	// 末位9的号码被网关拒绝
	_, err := svc.Initiate(context.Background(), 9, 1, "+237670123459")
	var rejected *gateway.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "PAYER_NOT_FOUND", rejected.Code)
	// 拒绝时不留在途记录
	got, err := repo.List(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_PollStatus_Success(t *testing.T) {
	t.Parallel()
	_, orderSvc, svc := newFixture(domain.StatusSuccess)
	ctx := context.Background()
	pp, err := svc.Initiate(ctx, 9, 1, "+237670123453")
	require.NoError(t, err)

	view, err := svc.PollStatus(ctx, 9, pp.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, view.Status)
	assert.Equal(t, "FT1693468800", view.SettlementRef)

	// 终态写回订单
	o := orderSvc.orders[1]
	assert.Equal(t, order.PaymentStatusPaid, o.PaymentStatus)
	assert.Equal(t, order.StatusConfirmed, o.Status)
	assert.Equal(t, "mtn_mobile_money", o.PaymentMethod)
	assert.Equal(t, "FT1693468800", o.PaymentRef)

	// 终态后在途支付被移除,再查同一交易号是 NotFound
	_, err = svc.PollStatus(ctx, 9, pp.TransactionID)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestService_PollStatus_Failed(t *testing.T) {
	t.Parallel()
	_, orderSvc, svc := newFixture(domain.StatusFailed)
	ctx := context.Background()
	pp, err := svc.Initiate(ctx, 9, 1, "+237670123453")
	require.NoError(t, err)

	view, err := svc.PollStatus(ctx, 9, pp.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, view.Status)
	assert.Equal(t, "INSUFFICIENT_FUNDS", view.FailureReason)

	o := orderSvc.orders[1]
	assert.Equal(t, order.PaymentStatusFailed, o.PaymentStatus)
	assert.Equal(t, "INSUFFICIENT_FUNDS", o.FailureReason)

	_, err = svc.PollStatus(ctx, 9, pp.TransactionID)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestService_PollStatus_Pending(t *testing.T) {
	t.Parallel()
	repo, orderSvc, svc := newFixture(domain.StatusPending)
	ctx := context.Background()
	pp, err := svc.Initiate(ctx, 9, 1, "+237670123453")
	require.NoError(t, err)

	view, err := svc.PollStatus(ctx, 9, pp.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, view.Status)
	// 未决时记录保留,订单不动
	_, err = repo.Find(ctx, 9, pp.TransactionID)
	assert.NoError(t, err)
	assert.Equal(t, order.PaymentStatusPending, orderSvc.orders[1].PaymentStatus)
}

func TestService_ListPending_PrunesStale(t *testing.T) {
	t.Parallel()
	repo, _, svc := newFixture(domain.StatusPending)
	ctx := context.Background()
	now := time.Now().UnixMilli()
	fresh := domain.PendingPayment{
		TransactionID: "txn-fresh", OrderID: 1,
		Provider: domain.ProviderMTN, Status: domain.StatusPending,
		Ctime: now, Utime: now,
	}
	stale := domain.PendingPayment{
		TransactionID: "txn-stale", OrderID: 1,
		Provider: domain.ProviderMTN, Status: domain.StatusPending,
		Ctime: now - (2 * time.Hour).Milliseconds(),
		Utime: now - (2 * time.Hour).Milliseconds(),
	}
	require.NoError(t, repo.Save(ctx, 9, fresh))
	require.NoError(t, repo.Save(ctx, 9, stale))

	alive, err := svc.ListPending(ctx, 9)
	require.NoError(t, err)
	require.Len(t, alive, 1)
	assert.Equal(t, "txn-fresh", alive[0].TransactionID)
	// 过期的已经被清掉
	_, err = repo.Find(ctx, 9, "txn-stale")
	assert.ErrorIs(t, err, repository.ErrPaymentNotFound)
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()
	repo, orderSvc, svc := newFixture(domain.StatusPending)
	ctx := context.Background()
	pp, err := svc.Initiate(ctx, 9, 1, "+237670123453")
	require.NoError(t, err)

	// 不存在的交易
	assert.ErrorIs(t, svc.Cancel(ctx, 9, "txn-miss"), ErrPaymentNotFound)

	require.NoError(t, svc.Cancel(ctx, 9, pp.TransactionID))
	_, err = repo.Find(ctx, 9, pp.TransactionID)
	assert.ErrorIs(t, err, repository.ErrPaymentNotFound)
	// 取消不动订单
	assert.Equal(t, order.PaymentStatusPending, orderSvc.orders[1].PaymentStatus)
}

func TestService_Methods(t *testing.T) {
	t.Parallel()
	_, _, svc := newFixture(domain.StatusPending)
	methods := svc.Methods()
	require.NotEmpty(t, methods)
	var enabled []string
	for _, m := range methods {
		if m.Enabled {
			enabled = append(enabled, m.ID)
		}
	}
	assert.Contains(t, enabled, "mtn_mobile_money")
}

func TestService_PendingIsolationBetweenBuyers(t *testing.T) {
	t.Parallel()
	_, _, svc := newFixture(domain.StatusPending)
	ctx := context.Background()
	pp, err := svc.Initiate(ctx, 9, 1, "+237670123453")
	require.NoError(t, err)

	// 其他用户看不到,也查不到这笔交易
	other, err := svc.ListPending(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, other)
	_, err = svc.PollStatus(ctx, 8, pp.TransactionID)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
