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

package order

import (
	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/service"
	"github.com/ecodeclub/marketplace/internal/order/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Service = service.Service

type Handler = web.Handler

type Order = domain.Order

type Status = domain.Status

type PaymentStatus = domain.PaymentStatus

const (
	StatusPending   = domain.StatusPending
	StatusConfirmed = domain.StatusConfirmed
	StatusShipped   = domain.StatusShipped
	StatusDelivered = domain.StatusDelivered
	StatusCancelled = domain.StatusCancelled

	PaymentStatusPending  = domain.PaymentStatusPending
	PaymentStatusPaid     = domain.PaymentStatusPaid
	PaymentStatusFailed   = domain.PaymentStatusFailed
	PaymentStatusRefunded = domain.PaymentStatusRefunded
)

var (
	ErrOrderNotFound      = service.ErrOrderNotFound
	ErrForbidden          = service.ErrForbidden
	ErrInvalidStatus      = service.ErrInvalidStatus
	ErrProductUnavailable = service.ErrProductUnavailable
	ErrSelfPurchase       = service.ErrSelfPurchase
	ErrEmptyCart          = service.ErrEmptyCart
)
