// FILE: lixenwraith/registry/merge.go
package registry

// MergeStrategy combines two trees into a new one, src taking precedence over
// dst as the strategy defines. Neither input is modified.
type MergeStrategy func(dst, src Tree) Tree

// MergeReplace merges recursively with strict replacement: nested trees present
// on both sides are merged, any other value from src replaces the one in dst.
func MergeReplace(dst, src Tree) Tree {
	out := cloneTree(dst)
	for key, srcValue := range src {
		dstTree, dstIsTree := out[key].(Tree)
		srcTree, srcIsTree := srcValue.(Tree)
		if dstIsTree && srcIsTree {
			out[key] = MergeReplace(dstTree, srcTree)
			continue
		}
		out[key] = cloneValue(srcValue)
	}
	return out
}

// MergeAppend merges recursively without overriding: nested trees present on
// both sides are merged, and when any other value collides the two are
// combined into a list, dst values first. Lists are concatenated; a list
// colliding with a scalar gains it as a new element.
func MergeAppend(dst, src Tree) Tree {
	out := cloneTree(dst)
	for key, srcValue := range src {
		dstValue, exists := out[key]
		if !exists {
			out[key] = cloneValue(srcValue)
			continue
		}

		dstTree, dstIsTree := dstValue.(Tree)
		srcTree, srcIsTree := srcValue.(Tree)
		if dstIsTree && srcIsTree {
			out[key] = MergeAppend(dstTree, srcTree)
			continue
		}

		out[key] = append(asList(dstValue), asList(cloneValue(srcValue))...)
	}
	return out
}

// asList returns a list value as is and wraps anything else in a one-element list.
func asList(value any) []any {
	if list, ok := value.([]any); ok {
		return list
	}
	return []any{value}
}
