package service

import (
	"context"

	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/model"
)

// LogService reads and manages the audit log.
type LogService struct {
	executor executor.Executor
}

func NewLogService(exec executor.Executor) *LogService {
	return &LogService{executor: exec}
}

func (s *LogService) Create(ctx context.Context, body model.LogSpecification) (model.Log, error) {
	return call[model.Log](ctx, s.executor, &executor.Request{
		Path:   "/log",
		Method: executor.MethodPost,
		Body:   body,
	})
}

func (s *LogService) Delete(ctx context.Context, id string) error {
	if err := required("LogService.Delete", "id", id); err != nil {
		return err
	}
	return callVoid(ctx, s.executor, &executor.Request{
		Path:   segment("/log/", id),
		Method: executor.MethodDelete,
	})
}

func (s *LogService) FindAll(ctx context.Context) ([]model.Log, error) {
	return call[[]model.Log](ctx, s.executor, &executor.Request{
		Path:   "/log",
		Method: executor.MethodGet,
	})
}

func (s *LogService) FindByAccountID(ctx context.Context, accountID string) ([]model.Log, error) {
	if err := required("LogService.FindByAccountID", "accountId", accountID); err != nil {
		return nil, err
	}
	return call[[]model.Log](ctx, s.executor, &executor.Request{
		Path:   segment("/log/account/", accountID),
		Method: executor.MethodGet,
	})
}

func (s *LogService) FindByID(ctx context.Context, id string) (*model.Log, error) {
	if err := required("LogService.FindByID", "id", id); err != nil {
		return nil, err
	}
	return call[*model.Log](ctx, s.executor, &executor.Request{
		Path:   segment("/log/", id),
		Method: executor.MethodGet,
	})
}

// FindLatestLogs returns the newest entries; a nil limit uses the backend
// default.
func (s *LogService) FindLatestLogs(ctx context.Context, limit *int) ([]model.Log, error) {
	return call[[]model.Log](ctx, s.executor, &executor.Request{
		Path:   "/log/latest",
		Method: executor.MethodGet,
		Query:  executor.Query{}.Add("limit", limit),
	})
}
