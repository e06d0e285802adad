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

package web

type InitiatePaymentReq struct {
	OrderID     int64  `json:"order_id"`
	PhoneNumber string `json:"phone_number"`
}

type InitiatePaymentResp struct {
	TransactionID string  `json:"transaction_id"`
	ExternalID    string  `json:"external_id"`
	Amount        float64 `json:"amount"`
	Provider      string  `json:"provider"`
	Status        string  `json:"status"`
	Instructions  string  `json:"instructions"`
}

type PaymentStatusReq struct {
	TransactionID string `json:"transaction_id"`
}

type PaymentStatusResp struct {
	TransactionID string  `json:"transaction_id"`
	OrderID       int64   `json:"order_id"`
	Provider      string  `json:"provider"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	SettlementRef string  `json:"settlement_ref,omitempty"`
	FailureReason string  `json:"failure_reason,omitempty"`
	Message       string  `json:"message"`
	Utime         int64   `json:"utime"`
}

type CancelPaymentReq struct {
	TransactionID string `json:"transaction_id"`
}

type ListPendingResp struct {
	Payments []PendingPayment `json:"payments"`
}

type PendingPayment struct {
	TransactionID string  `json:"transaction_id"`
	ExternalID    string  `json:"external_id"`
	OrderID       int64   `json:"order_id"`
	Amount        float64 `json:"amount"`
	PhoneNumber   string  `json:"phone_number"`
	Provider      string  `json:"provider"`
	Status        string  `json:"status"`
	Ctime         int64   `json:"ctime"`
	Utime         int64   `json:"utime"`
}

type MethodsResp struct {
	Methods []Method `json:"methods"`
}

type Method struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	Countries   []string `json:"countries"`
}
