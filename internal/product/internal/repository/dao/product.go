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
	"github.com/shopspring/decimal"
)

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, p Product) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now()
	p.Utime, p.Ctime = now.UnixMilli(), now.UnixMilli()
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

// UpdateStatus 直接覆盖写,同一商品并发翻转状态时后写覆盖先写,不报错
func (d *ProductGORMDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

type Product struct {
	Id          int64           `gorm:"primaryKey;autoIncrement;comment:商品ID"`
	SellerId    int64           `gorm:"not null;index:idx_seller_id;comment:卖家ID"`
	Name        string          `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string          `gorm:"not null;comment:商品描述"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:价格"`
	Status      string          `gorm:"type:varchar(16);not null;default:'draft';index:idx_status;comment:状态 active/sold/draft/suspended"`
	Ctime       int64
	Utime       int64
}
