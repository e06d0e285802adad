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

package tracking

import "fmt"

const (
	defaultPrefix = "KM"
	defaultWidth  = 8
)

// Generator 用订单自身的ID派生展示用的运单号,
// 运单号在内部从不用作查询键。
type Generator struct {
	prefix string
	width  int
}

// NewGeneratorWith 自定义前缀和补零宽度
func NewGeneratorWith(prefix string, width int) *Generator {
	return &Generator{prefix: prefix, width: width}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(defaultPrefix, defaultWidth)
}

// Generate 生成前缀加补零数字,例如 42 -> KM00000042,
// 超出宽度的ID保留全部位数。
func (g *Generator) Generate(id int64) string {
	return fmt.Sprintf("%s%0*d", g.prefix, g.width, id)
}
