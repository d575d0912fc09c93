package apiclient

import (
	"context"
	"net/url"
	"path"

	"github.com/google/uuid"
)

// Resource maps the CRUD verbs of one REST collection to HTTP calls.
type Resource[T any] struct {
	client *Client
	base   string
}

func NewResource[T any](c *Client, base string) Resource[T] {
	return Resource[T]{client: c, base: base}
}

func (r Resource[T]) Client() *Client { return r.client }

// Path joins the collection path, the id and any sub-route segments.
func (r Resource[T]) Path(id uuid.UUID, segments ...string) string {
	parts := append([]string{r.base, id.String()}, segments...)
	return path.Join(parts...)
}

// CollectionPath joins sub-route segments onto the collection path.
func (r Resource[T]) CollectionPath(segments ...string) string {
	return path.Join(append([]string{r.base}, segments...)...)
}

func (r Resource[T]) List(ctx context.Context, query url.Values) ([]*T, error) {
	var items []*T
	if err := r.client.Get(ctx, r.base, query, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r Resource[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var item T
	if err := r.client.Get(ctx, r.Path(id), nil, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r Resource[T]) Create(ctx context.Context, body any) (*T, error) {
	var item T
	if err := r.client.Post(ctx, r.base, body, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r Resource[T]) Update(ctx context.Context, id uuid.UUID, body any) (*T, error) {
	var item T
	if err := r.client.Put(ctx, r.Path(id), body, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r Resource[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Delete(ctx, r.Path(id))
}

// Action posts body to a sub-route of one item and decodes the response into out.
func (r Resource[T]) Action(ctx context.Context, method string, id uuid.UUID, action string, body, out any) error {
	return r.client.Do(ctx, Request{Method: method, Path: r.Path(id, action), Body: body}, out)
}
