package messageformat

import (
	"fmt"
	"strings"
)

// Resource represents a message tree merged from one or many sources, ready to be compiled.
// Values are either patterns (string) or nested groups (map[string]any or map[string]string).
type Resource struct {
	tree map[string]any
}

// NewResource creates a new empty resource
func NewResource() *Resource {
	return &Resource{
		tree: make(map[string]any),
	}
}

// AddMessages adds a message tree to the resource.
// If a message was already defined by another tree, an error is raised and the message is skipped.
// Groups defined by several trees are merged.
func (resource *Resource) AddMessages(tree map[string]any) (errs []error) {
	return merge(resource.tree, tree, nil, false)
}

// AddMessagesOverriding adds a message tree to the resource.
// If a message was already defined by another tree, the already existing one gets overridden.
func (resource *Resource) AddMessagesOverriding(tree map[string]any) {
	merge(resource.tree, tree, nil, true)
}

// Tree returns the merged message tree
func (resource *Resource) Tree() map[string]any {
	return resource.tree
}

// IsEmpty returns if no messages are present in the resource
func (resource *Resource) IsEmpty() bool {
	return len(resource.tree) == 0
}

func merge(target, source map[string]any, path []string, override bool) (errs []error) {
	for key, value := range source {
		keyPath := append(path[:len(path):len(path)], key)

		// Groups are merged recursively into a copy owned by the resource
		if group, ok := asGroup(value); ok {
			existing, exists := target[key]
			if !exists {
				existing = make(map[string]any, len(group))
				target[key] = existing
			}
			if existingGroup, ok := existing.(map[string]any); ok {
				errs = append(errs, merge(existingGroup, group, keyPath, override)...)
				continue
			}
			if !override {
				errs = append(errs, fmt.Errorf("message '%s' is already defined", strings.Join(keyPath, ".")))
				continue
			}
			replacement := make(map[string]any, len(group))
			merge(replacement, group, keyPath, override)
			target[key] = replacement
			continue
		}

		if _, exists := target[key]; exists && !override {
			errs = append(errs, fmt.Errorf("message '%s' is already defined", strings.Join(keyPath, ".")))
			continue
		}
		target[key] = value
	}
	return
}

// asGroup converts the supported group types into map[string]any
func asGroup(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[string]string:
		group := make(map[string]any, len(v))
		for key, pattern := range v {
			group[key] = pattern
		}
		return group, true
	default:
		return nil, false
	}
}
