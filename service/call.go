// Package service holds one typed facade per backend resource area. Each
// method builds a request descriptor, hands it to the shared executor and
// decodes the result into the declared shape. Facades do not catch errors.
package service

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/jrsteele09/ainote-client/executor"
	clienterrors "github.com/jrsteele09/ainote-client/internal/errors"
)

var jsonNull = []byte("null")

// call executes req and decodes the body into T. An empty or null body
// yields the zero value. A string result that is not JSON is taken as
// plain text.
func call[T any](ctx context.Context, exec executor.Executor, req *executor.Request) (T, error) {
	var result T
	raw, err := exec.Execute(ctx, req)
	if err != nil {
		return result, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return result, nil
	}
	if err := json.Unmarshal(trimmed, &result); err != nil {
		if s, ok := any(&result).(*string); ok {
			*s = string(raw)
			return result, nil
		}
		return result, clienterrors.Wrapf(clienterrors.ErrDecode, "%s: %v", req, err)
	}
	return result, nil
}

func callVoid(ctx context.Context, exec executor.Executor, req *executor.Request) error {
	_, err := exec.Execute(ctx, req)
	return err
}

// segment appends one percent-encoded path parameter to base.
func segment(base, value string) string {
	return base + executor.EscapeComponent(value)
}

func required(operation string, params ...string) error {
	for i := 0; i+1 < len(params); i += 2 {
		if params[i+1] == "" {
			return clienterrors.Missing(operation, params[i])
		}
	}
	return nil
}

// Paging is shared by the paged queries. Nil fields are left out of the
// query and the backend applies its own defaults.
type Paging struct {
	PageIndex *int
	PageSize  *int
}

func (p Paging) addTo(q executor.Query) executor.Query {
	return q.Add("pageIndex", p.PageIndex).Add("pageSize", p.PageSize)
}
