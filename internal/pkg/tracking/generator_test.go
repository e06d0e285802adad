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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	g := NewGenerator()

	testCases := []struct {
		name     string
		id       int64
		expected string
	}{
		{
			name:     "single digit id",
			id:       7,
			expected: "KM00000007",
		},
		{
			name:     "double digit id",
			id:       42,
			expected: "KM00000042",
		},
		{
			name:     "id filling the full width",
			id:       12345678,
			expected: "KM12345678",
		},
		{
			name:     "id wider than the padding keeps all digits",
			id:       123456789,
			expected: "KM123456789",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.Generate(tc.id))
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := NewGenerator()
	first := g.Generate(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, g.Generate(7))
	}
}

func TestGenerateWithCustomPrefix(t *testing.T) {
	g := NewGeneratorWith("TN", 4)
	assert.Equal(t, "TN0042", g.Generate(42))
}
