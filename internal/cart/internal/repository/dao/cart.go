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

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrLineNotFound = gorm.ErrRecordNotFound

type CartDAO interface {
	FindByUID(ctx context.Context, uid int64) ([]CartLine, error)
	// Upsert 插入购物车行,行已存在时累加数量
	Upsert(ctx context.Context, uid, productID, qty int64) error
	// UpdateQuantity 覆盖写数量,没有对应的行时返回 ErrLineNotFound
	UpdateQuantity(ctx context.Context, uid, productID, qty int64) error
	Delete(ctx context.Context, uid, productID int64) error
	DeleteByUID(ctx context.Context, uid int64) error
	// DeleteByUIDTx 参与调用方管理的事务,
	// 下单时清空购物车要和插入订单在同一个事务里。
	DeleteByUIDTx(tx *egorm.Component, uid int64) error
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

func (d *CartGORMDAO) FindByUID(ctx context.Context, uid int64) ([]CartLine, error) {
	var res []CartLine
	err := d.db.WithContext(ctx).Where("uid = ?", uid).Order("ctime ASC").Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) Upsert(ctx context.Context, uid, productID, qty int64) error {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&CartLine{
		Uid:       uid,
		ProductId: productID,
		Quantity:  qty,
		Ctime:     now,
		Utime:     now,
	}).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			// 命中唯一索引,改为累加数量
			return d.db.WithContext(ctx).Model(&CartLine{}).
				Where("uid = ? AND product_id = ?", uid, productID).
				Updates(map[string]any{
					"quantity": gorm.Expr("quantity + ?", qty),
					"utime":    now,
				}).Error
		}
	}
	return err
}

func (d *CartGORMDAO) UpdateQuantity(ctx context.Context, uid, productID, qty int64) error {
	var line CartLine
	err := d.db.WithContext(ctx).Where("uid = ? AND product_id = ?", uid, productID).First(&line).Error
	if err != nil {
		return err
	}
	return d.db.WithContext(ctx).Model(&CartLine{}).Where("id = ?", line.Id).
		Updates(map[string]any{
			"quantity": qty,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *CartGORMDAO) Delete(ctx context.Context, uid, productID int64) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND product_id = ?", uid, productID).Delete(&CartLine{}).Error
}

func (d *CartGORMDAO) DeleteByUID(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).Where("uid = ?", uid).Delete(&CartLine{}).Error
}

func (d *CartGORMDAO) DeleteByUIDTx(tx *egorm.Component, uid int64) error {
	return tx.Where("uid = ?", uid).Delete(&CartLine{}).Error
}

type CartLine struct {
	Id        int64 `gorm:"primaryKey;autoIncrement;comment:购物车行自增ID"`
	Uid       int64 `gorm:"not null;uniqueIndex:uniq_uid_product,priority:1;comment:买家ID"`
	ProductId int64 `gorm:"not null;uniqueIndex:uniq_uid_product,priority:2;comment:商品ID"`
	Quantity  int64 `gorm:"not null;comment:数量"`
	Ctime     int64
	Utime     int64
}
