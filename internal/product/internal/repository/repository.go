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

	"github.com/ecodeclub/marketplace/internal/product/internal/domain"
	"github.com/ecodeclub/marketplace/internal/product/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("商品不存在")

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	res, err := p.d.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}
	return p.toDomain(res), nil
}

func (p *productRepository) Create(ctx context.Context, prod domain.Product) (int64, error) {
	return p.d.Create(ctx, p.toEntity(prod))
}

func (p *productRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return p.d.UpdateStatus(ctx, id, status.String())
}

func (p *productRepository) toDomain(prod dao.Product) domain.Product {
	return domain.Product{
		ID:          prod.Id,
		SellerID:    prod.SellerId,
		Name:        prod.Name,
		Description: prod.Description,
		Price:       prod.Price,
		Status:      domain.Status(prod.Status),
		Ctime:       prod.Ctime,
		Utime:       prod.Utime,
	}
}

func (p *productRepository) toEntity(prod domain.Product) dao.Product {
	return dao.Product{
		Id:          prod.ID,
		SellerId:    prod.SellerID,
		Name:        prod.Name,
		Description: prod.Description,
		Price:       prod.Price,
		Status:      prod.Status.String(),
	}
}
