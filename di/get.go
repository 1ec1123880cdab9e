package di

import (
	"fmt"
	"strings"

	"github.com/habiliai/exampleproject/errors"
)

func Get[T any](c *Container, key string) (res T, err error) {
	obj, err := c.resolve(key)
	if err != nil {
		return
	}

	var ok bool
	res, ok = obj.(T)
	if !ok {
		err = errors.Wrapf(errors.ErrNotResolved, "object %q is not of type %T", key, res)
		return
	}

	return
}

func MustGet[T any](c *Container, key string) T {
	res, err := Get[T](c, key)
	if err != nil {
		panic(fmt.Sprintf("error: %+v", err))
	}

	return res
}

// resolve finds the longest registered prefix of the dot-separated key,
// produces its object once, then descends the remaining segments through
// nested map[string]any subtrees.
func (c *Container) resolve(key string) (any, error) {
	prefix := key
	for {
		if obj, ok := c.objects[prefix]; ok {
			return descend(key, prefix, obj)
		}

		if fn, ok := c.providers[prefix]; ok {
			obj, err := fn(c)
			if err != nil {
				return nil, errors.Wrapf(err, "provider for %q failed", prefix)
			}
			c.objects[prefix] = obj
			return descend(key, prefix, obj)
		}

		i := strings.LastIndexByte(prefix, '.')
		if i < 0 {
			return nil, errors.Wrapf(errors.ErrNotResolved, "no provider registered for %q", key)
		}
		prefix = prefix[:i]
	}
}

func descend(key, prefix string, obj any) (any, error) {
	if key == prefix {
		return obj, nil
	}

	for _, seg := range strings.Split(key[len(prefix)+1:], ".") {
		tree, ok := obj.(map[string]any)
		if !ok {
			return nil, errors.Wrapf(errors.ErrNotResolved, "%q is not a subtree under %q", key, prefix)
		}
		if obj, ok = tree[seg]; !ok {
			return nil, errors.Wrapf(errors.ErrNotResolved, "no entry %q under %q", seg, prefix)
		}
	}

	return obj, nil
}
