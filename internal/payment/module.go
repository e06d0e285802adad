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

package payment

import (
	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service"
	"github.com/ecodeclub/marketplace/internal/payment/internal/service/gateway"
	"github.com/ecodeclub/marketplace/internal/payment/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Service = service.Service

type Handler = web.Handler

type Provider = domain.Provider

type PendingPayment = domain.PendingPayment

type StatusView = domain.StatusView

// RejectedError 网关拒绝支付请求
type RejectedError = gateway.RejectedError

const (
	ProviderMTN    = domain.ProviderMTN
	ProviderAirtel = domain.ProviderAirtel

	StatusPending = domain.StatusPending
	StatusSuccess = domain.StatusSuccess
	StatusFailed  = domain.StatusFailed
)

var (
	ErrPaymentNotFound = service.ErrPaymentNotFound
	ErrForbidden       = service.ErrForbidden
	ErrAlreadyPaid     = service.ErrAlreadyPaid
	ErrInvalidPhone    = service.ErrInvalidPhone
)
