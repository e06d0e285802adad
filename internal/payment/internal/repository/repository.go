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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/payment/internal/repository/cache"
)

var ErrPaymentNotFound = errors.New("交易不存在")

// PendingPaymentRepository 在途支付按买家隔离,
// 任何买家都看不到别人的在途支付。
type PendingPaymentRepository interface {
	Save(ctx context.Context, uid int64, p domain.PendingPayment) error
	Find(ctx context.Context, uid int64, transactionID string) (domain.PendingPayment, error)
	List(ctx context.Context, uid int64) ([]domain.PendingPayment, error)
	Delete(ctx context.Context, uid int64, transactionID string) error
	// Replace 用给定集合整体覆盖买家的在途支付,用于惰性清理
	Replace(ctx context.Context, uid int64, payments []domain.PendingPayment) error
}

func NewPendingPaymentRepository(c cache.PendingPaymentCache) PendingPaymentRepository {
	return &pendingPaymentRepository{c: c}
}

type pendingPaymentRepository struct {
	c cache.PendingPaymentCache
}

func (r *pendingPaymentRepository) Save(ctx context.Context, uid int64, p domain.PendingPayment) error {
	payments, err := r.c.Get(ctx, uid)
	if err != nil {
		return err
	}
	payments[p.TransactionID] = r.toEntity(p)
	return r.c.Set(ctx, uid, payments)
}

func (r *pendingPaymentRepository) Find(ctx context.Context, uid int64, transactionID string) (domain.PendingPayment, error) {
	payments, err := r.c.Get(ctx, uid)
	if err != nil {
		return domain.PendingPayment{}, err
	}
	p, ok := payments[transactionID]
	if !ok {
		return domain.PendingPayment{}, ErrPaymentNotFound
	}
	return r.toDomain(p), nil
}

func (r *pendingPaymentRepository) List(ctx context.Context, uid int64) ([]domain.PendingPayment, error) {
	payments, err := r.c.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	res := make([]domain.PendingPayment, 0, len(payments))
	for _, p := range payments {
		res = append(res, r.toDomain(p))
	}
	return res, nil
}

func (r *pendingPaymentRepository) Delete(ctx context.Context, uid int64, transactionID string) error {
	payments, err := r.c.Get(ctx, uid)
	if err != nil {
		return err
	}
	delete(payments, transactionID)
	return r.c.Set(ctx, uid, payments)
}

func (r *pendingPaymentRepository) Replace(ctx context.Context, uid int64, payments []domain.PendingPayment) error {
	m := make(map[string]cache.PendingPayment, len(payments))
	for _, p := range payments {
		m[p.TransactionID] = r.toEntity(p)
	}
	return r.c.Set(ctx, uid, m)
}

func (r *pendingPaymentRepository) toEntity(p domain.PendingPayment) cache.PendingPayment {
	return cache.PendingPayment{
		TransactionID: p.TransactionID,
		ExternalID:    p.ExternalID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		PhoneNumber:   p.PhoneNumber,
		Provider:      p.Provider.String(),
		Status:        p.Status.String(),
		Ctime:         p.Ctime,
		Utime:         p.Utime,
	}
}

func (r *pendingPaymentRepository) toDomain(p cache.PendingPayment) domain.PendingPayment {
	return domain.PendingPayment{
		TransactionID: p.TransactionID,
		ExternalID:    p.ExternalID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		PhoneNumber:   p.PhoneNumber,
		Provider:      domain.Provider(p.Provider),
		Status:        domain.Status(p.Status),
		Ctime:         p.Ctime,
		Utime:         p.Utime,
	}
}
