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

package sequencenumber

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGeneratorWith("ORD",
		func(t time.Time) int64 { return 1704038400000 },
		func() string { return "VQKdUngoXKW9qM7km8AQWp" })

	testCases := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "买家ID不足四位时补零",
			input:    1,
			expected: "0001",
		},
		{
			name:     "买家ID超过四位时取后四位",
			input:    123456789,
			expected: "6789",
		},
		{
			name:     "买家ID后四位为零",
			input:    123450000,
			expected: "0000",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sn, err := g.Generate(tc.input)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(sn, "ORD"))
			assert.Contains(t, sn, tc.expected)
			assert.Equal(t, 35, len(sn))
		})
	}
}

func TestGenerator_Generate_Unique(t *testing.T) {
	g := NewGenerator("ORD")
	seen := make(map[string]struct{}, 128)
	for i := 0; i < 128; i++ {
		sn, err := g.Generate(int64(i))
		require.NoError(t, err)
		_, ok := seen[sn]
		assert.False(t, ok)
		seen[sn] = struct{}{}
	}
}
