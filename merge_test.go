// FILE: lixenwraith/registry/merge_test.go
package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMergeReplace(t *testing.T) {
	tests := []struct {
		name     string
		dst      Tree
		src      Tree
		expected Tree
	}{
		{
			name:     "local overrides nested scalar",
			dst:      Tree{"A": Tree{"x": int64(1), "y": int64(2)}},
			src:      Tree{"A": Tree{"y": int64(3)}},
			expected: Tree{"A": Tree{"x": int64(1), "y": int64(3)}},
		},
		{
			name:     "scalar replaces tree",
			dst:      Tree{"A": Tree{"x": int64(1)}},
			src:      Tree{"A": "flat"},
			expected: Tree{"A": "flat"},
		},
		{
			name:     "tree replaces scalar",
			dst:      Tree{"A": "flat"},
			src:      Tree{"A": Tree{"x": int64(1)}},
			expected: Tree{"A": Tree{"x": int64(1)}},
		},
		{
			name:     "lists are replaced not concatenated",
			dst:      Tree{"A": Tree{"l": []any{int64(1), int64(2)}}},
			src:      Tree{"A": Tree{"l": []any{int64(3)}}},
			expected: Tree{"A": Tree{"l": []any{int64(3)}}},
		},
		{
			name:     "disjoint domains are unioned",
			dst:      Tree{"A": Tree{"x": int64(1)}},
			src:      Tree{"B": Tree{"y": int64(2)}},
			expected: Tree{"A": Tree{"x": int64(1)}, "B": Tree{"y": int64(2)}},
		},
		{
			name:     "empty source",
			dst:      Tree{"A": Tree{"x": int64(1)}},
			src:      Tree{},
			expected: Tree{"A": Tree{"x": int64(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeReplace(tt.dst, tt.src)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("MergeReplace() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeAppend(t *testing.T) {
	tests := []struct {
		name     string
		dst      Tree
		src      Tree
		expected Tree
	}{
		{
			name:     "scalar collision becomes list",
			dst:      Tree{"A": Tree{"x": int64(1)}},
			src:      Tree{"A": Tree{"x": int64(2)}},
			expected: Tree{"A": Tree{"x": []any{int64(1), int64(2)}}},
		},
		{
			name:     "nested trees are merged",
			dst:      Tree{"A": Tree{"x": int64(1), "sub": Tree{"a": "g"}}},
			src:      Tree{"A": Tree{"y": int64(2), "sub": Tree{"b": "l"}}},
			expected: Tree{"A": Tree{"x": int64(1), "y": int64(2), "sub": Tree{"a": "g", "b": "l"}}},
		},
		{
			name:     "lists are concatenated",
			dst:      Tree{"A": Tree{"l": []any{"a", "b"}}},
			src:      Tree{"A": Tree{"l": []any{"c"}}},
			expected: Tree{"A": Tree{"l": []any{"a", "b", "c"}}},
		},
		{
			name:     "scalar appended to existing list",
			dst:      Tree{"A": Tree{"x": []any{int64(1), int64(2)}}},
			src:      Tree{"A": Tree{"x": int64(3)}},
			expected: Tree{"A": Tree{"x": []any{int64(1), int64(2), int64(3)}}},
		},
		{
			name:     "tree colliding with scalar",
			dst:      Tree{"A": Tree{"x": Tree{"k": "v"}}},
			src:      Tree{"A": Tree{"x": "s"}},
			expected: Tree{"A": Tree{"x": []any{Tree{"k": "v"}, "s"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeAppend(tt.dst, tt.src)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("MergeAppend() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	dst := Tree{"A": Tree{"x": int64(1), "l": []any{"a"}}}
	src := Tree{"A": Tree{"x": int64(2), "l": []any{"b"}}}

	MergeAppend(dst, src)
	MergeReplace(dst, src)

	assert.Equal(t, Tree{"A": Tree{"x": int64(1), "l": []any{"a"}}}, dst)
	assert.Equal(t, Tree{"A": Tree{"x": int64(2), "l": []any{"b"}}}, src)
}
