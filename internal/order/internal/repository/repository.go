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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("订单不存在")

type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
	CreateFromCart(ctx context.Context, orders []domain.Order, buyerID int64) ([]domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int, status domain.Status) ([]domain.Order, error)
	CountByBuyer(ctx context.Context, buyerID int64, status domain.Status) (int64, error)
	ListBySeller(ctx context.Context, sellerID int64, offset, limit int, status domain.Status) ([]domain.Order, error)
	CountBySeller(ctx context.Context, sellerID int64, status domain.Status) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	MarkPaid(ctx context.Context, id int64, method, ref string) error
	MarkPaymentFailed(ctx context.Context, id int64, reason string) error
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	created, err := r.d.Create(ctx, r.toEntity(o))
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(created), nil
}

func (r *orderRepository) CreateFromCart(ctx context.Context, orders []domain.Order, buyerID int64) ([]domain.Order, error) {
	entities := slice.Map(orders, func(idx int, src domain.Order) dao.Order {
		return r.toEntity(src)
	})
	created, err := r.d.CreateFromCart(ctx, entities, buyerID)
	if err != nil {
		return nil, err
	}
	return slice.Map(created, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.d.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int, status domain.Status) ([]domain.Order, error) {
	os, err := r.d.ListByBuyer(ctx, buyerID, offset, limit, status.String())
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) CountByBuyer(ctx context.Context, buyerID int64, status domain.Status) (int64, error) {
	return r.d.CountByBuyer(ctx, buyerID, status.String())
}

func (r *orderRepository) ListBySeller(ctx context.Context, sellerID int64, offset, limit int, status domain.Status) ([]domain.Order, error) {
	os, err := r.d.ListBySeller(ctx, sellerID, offset, limit, status.String())
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) CountBySeller(ctx context.Context, sellerID int64, status domain.Status) (int64, error) {
	return r.d.CountBySeller(ctx, sellerID, status.String())
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.d.UpdateStatus(ctx, id, status.String())
}

func (r *orderRepository) MarkPaid(ctx context.Context, id int64, method, ref string) error {
	return r.d.UpdatePaymentSuccess(ctx, id, method, ref)
}

func (r *orderRepository) MarkPaymentFailed(ctx context.Context, id int64, reason string) error {
	return r.d.UpdatePaymentFailure(ctx, id, reason)
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:              o.ID,
		BuyerId:         o.BuyerID,
		SellerId:        o.SellerID,
		ProductId:       o.ProductID,
		ProductName:     o.ProductName,
		UnitPrice:       o.UnitPrice,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
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

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:              o.Id,
		BuyerID:         o.BuyerId,
		SellerID:        o.SellerId,
		ProductID:       o.ProductId,
		ProductName:     o.ProductName,
		UnitPrice:       o.UnitPrice,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   domain.PaymentStatus(o.PaymentStatus),
		PaymentRef:      o.PaymentRef,
		FailureReason:   o.FailureReason,
		Status:          domain.Status(o.Status),
		TrackingNumber:  o.TrackingNumber,
		Ctime:           o.Ctime,
		Utime:           o.Utime,
	}
}
