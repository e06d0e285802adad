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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/marketplace/internal/cart"
	"github.com/ecodeclub/marketplace/internal/pkg/tracking"
	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
)

type OrderDAO interface {
	// Create 插入订单并在同一事务里回填运单号
	Create(ctx context.Context, o Order) (Order, error)
	// CreateFromCart 批量插入订单、回填运单号,并清空买家购物车,
	// 三者在同一事务里提交,插入失败时购物车保持不变。
	CreateFromCart(ctx context.Context, orders []Order, buyerID int64) ([]Order, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	// status 为空串时不过滤
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int, status string) ([]Order, error)
	CountByBuyer(ctx context.Context, buyerID int64, status string) (int64, error)
	ListBySeller(ctx context.Context, sellerID int64, offset, limit int, status string) ([]Order, error)
	CountBySeller(ctx context.Context, sellerID int64, status string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdatePaymentSuccess(ctx context.Context, id int64, method, ref string) error
	UpdatePaymentFailure(ctx context.Context, id int64, reason string) error
}

func NewOrderGORMDAO(db *egorm.Component, tg *tracking.Generator, cartDAO cart.CartDAO) OrderDAO {
	return &OrderGORMDAO{db: db, tg: tg, cartDAO: cartDAO}
}

type OrderGORMDAO struct {
	db      *egorm.Component
	tg      *tracking.Generator
	cartDAO cart.CartDAO
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order) (Order, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		var err error
		o, err = d.createTx(tx, o)
		return err
	})
	return o, err
}

// createTx 先插入拿到自增ID,再用ID生成运单号写回去
func (d *OrderGORMDAO) createTx(tx *egorm.Component, o Order) (Order, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	if err := tx.Create(&o).Error; err != nil {
		return Order{}, err
	}
	o.TrackingNumber = d.tg.Generate(o.Id)
	err := tx.Model(&Order{}).Where("id = ?", o.Id).
		Updates(map[string]any{
			"tracking_number": o.TrackingNumber,
			"utime":           now,
		}).Error
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (d *OrderGORMDAO) CreateFromCart(ctx context.Context, orders []Order, buyerID int64) ([]Order, error) {
	res := make([]Order, 0, len(orders))
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		for _, o := range orders {
			created, err := d.createTx(tx, o)
			if err != nil {
				return err
			}
			res = append(res, created)
		}
		return d.cartDAO.DeleteByUIDTx(tx, buyerID)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (d *OrderGORMDAO) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int, status string) ([]Order, error) {
	var res []Order
	query := d.db.WithContext(ctx).Where("buyer_id = ?", buyerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyer(ctx context.Context, buyerID int64, status string) (int64, error) {
	var count int64
	query := d.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", buyerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) ListBySeller(ctx context.Context, sellerID int64, offset, limit int, status string) ([]Order, error) {
	var res []Order
	query := d.db.WithContext(ctx).Where("seller_id = ?", sellerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountBySeller(ctx context.Context, sellerID int64, status string) (int64, error) {
	var count int64
	query := d.db.WithContext(ctx).Model(&Order{}).Where("seller_id = ?", sellerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) UpdatePaymentSuccess(ctx context.Context, id int64, method, ref string) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": "paid",
			"status":         "confirmed",
			"payment_method": method,
			"payment_ref":    ref,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) UpdatePaymentFailure(ctx context.Context, id int64, reason string) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": "failed",
			"failure_reason": reason,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

type Order struct {
	Id       int64 `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	BuyerId  int64 `gorm:"not null;index:idx_buyer_id;comment:买家ID"`
	SellerId int64 `gorm:"not null;index:idx_seller_id;comment:卖家ID"`

	ProductId   int64           `gorm:"not null;index:idx_product_id;comment:商品ID"`
	ProductName string          `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:下单时单价快照"`
	Quantity    int64           `gorm:"not null;comment:购买数量"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:下单时总价快照"`

	ShippingAddress string `gorm:"type:varchar(512);not null;comment:收货地址"`
	PaymentMethod   string `gorm:"type:varchar(64);comment:支付方式"`
	PaymentStatus   string `gorm:"type:varchar(16);not null;default:'pending';comment:支付状态 pending/paid/failed/refunded"`
	PaymentRef      string `gorm:"type:varchar(64);comment:支付结算凭证号"`
	FailureReason   string `gorm:"type:varchar(255);comment:支付失败原因"`
	Status          string `gorm:"type:varchar(16);not null;default:'pending';comment:订单状态 pending/confirmed/shipped/delivered/cancelled"`
	TrackingNumber  string `gorm:"type:varchar(32);comment:运单号,插入后回填"`

	Ctime int64
	Utime int64
}
