package service

import (
	"context"

	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/model"
)

type NoteService struct {
	executor executor.Executor
}

func NewNoteService(exec executor.Executor) *NoteService {
	return &NoteService{executor: exec}
}

type NotePageOptions struct {
	Paging
	Sort   *string
	Search model.NoteSearch
}

func (s *NoteService) Page(ctx context.Context, opts NotePageOptions) (model.Page[model.NoteListItem], error) {
	query := executor.Query{}.Add("keyword", opts.Search.Keyword)
	query = opts.Paging.addTo(query).Add("sort", opts.Sort)

	return call[model.Page[model.NoteListItem]](ctx, s.executor, &executor.Request{
		Path:   "/note/page",
		Method: executor.MethodGet,
		Query:  query,
	})
}

func (s *NoteService) Add(ctx context.Context, body model.CreateNote) (string, error) {
	return call[string](ctx, s.executor, &executor.Request{
		Path:   "/note/add",
		Method: executor.MethodPost,
		Body:   body,
	})
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := required("NoteService.Delete", "id", id); err != nil {
		return err
	}
	return callVoid(ctx, s.executor, &executor.Request{
		Path:   segment("/note/", id),
		Method: executor.MethodDelete,
	})
}
