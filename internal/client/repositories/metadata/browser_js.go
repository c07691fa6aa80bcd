//go:build js && wasm

package metadata

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

// ErrStorageUnavailable is returned when the browser refuses access to a
// Web Storage area, e.g. in private mode or with storage disabled.
var ErrStorageUnavailable = errors.New("web storage unavailable")

// BrowserRepository adapts window.localStorage or window.sessionStorage.
// Values are stored as strings.
type BrowserRepository struct {
	area string
}

// NewLocalStorage returns the durable store of the browser build.
func NewLocalStorage() *BrowserRepository {
	return &BrowserRepository{area: "localStorage"}
}

// NewSessionStorage returns the tab-scoped store of the browser build.
func NewSessionStorage() *BrowserRepository {
	return &BrowserRepository{area: "sessionStorage"}
}

// call invokes method on the storage area, converting thrown JS
// exceptions into errors.
func (r *BrowserRepository) call(method string, args ...any) (res js.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s.%s: %w: %v", r.area, method, ErrStorageUnavailable, p)
		}
	}()

	st := js.Global().Get(r.area)
	if st.IsUndefined() || st.IsNull() {
		return js.Undefined(), fmt.Errorf("%s: %w", r.area, ErrStorageUnavailable)
	}
	return st.Call(method, args...), nil
}

func (r *BrowserRepository) Get(_ context.Context, key string) ([]byte, error) {
	v, err := r.call("getItem", key)
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	if v.IsNull() || v.IsUndefined() {
		return nil, nil
	}
	return []byte(v.String()), nil
}

func (r *BrowserRepository) Set(_ context.Context, key string, value []byte) error {
	if _, err := r.call("setItem", key, string(value)); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

// SetMany restores the previous values when a write fails part way.
func (r *BrowserRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	previous := make(map[string][]byte, len(values))
	for k := range values {
		old, err := r.Get(ctx, k)
		if err != nil {
			return err
		}
		previous[k] = old
	}

	for k, v := range values {
		if err := r.Set(ctx, k, v); err != nil {
			for pk, pv := range previous {
				if pv == nil {
					_ = r.Delete(ctx, pk)
				} else {
					_ = r.Set(ctx, pk, pv)
				}
			}
			return err
		}
	}
	return nil
}

func (r *BrowserRepository) Delete(_ context.Context, key string) error {
	if _, err := r.call("removeItem", key); err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}
