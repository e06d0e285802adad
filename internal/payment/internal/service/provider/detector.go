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

package provider

import (
	"strings"

	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
)

// 喀麦隆国家码
const countryCode = "237"

var (
	mtnPrefixes    = []string{"06", "67", "65", "68"}
	airtelPrefixes = []string{"05", "04", "75", "76", "77", "78"}
)

// Detect 按号段前缀识别运营商。纯函数,永不失败,
// 号段规则只是启发式,没有命中任何前缀时默认 MTN。
func Detect(phoneNumber string) domain.Provider {
	n := strings.NewReplacer("+", "", " ", "", "-", "").Replace(phoneNumber)
	n = strings.TrimPrefix(n, countryCode)
	for _, p := range mtnPrefixes {
		if strings.HasPrefix(n, p) {
			return domain.ProviderMTN
		}
	}
	for _, p := range airtelPrefixes {
		if strings.HasPrefix(n, p) {
			return domain.ProviderAirtel
		}
	}
	return domain.ProviderMTN
}
