package service

import (
	"context"
	"io"

	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/model"
)

// FileService talks to the object storage endpoints.
type FileService struct {
	executor executor.Executor
}

func NewFileService(exec executor.Executor) *FileService {
	return &FileService{executor: exec}
}

func (s *FileService) DeleteFile(ctx context.Context, id string) error {
	if err := required("FileService.DeleteFile", "id", id); err != nil {
		return err
	}
	return callVoid(ctx, s.executor, &executor.Request{
		Path:   segment("/file/", id),
		Method: executor.MethodDelete,
	})
}

func (s *FileService) GetAllFiles(ctx context.Context) ([]model.StaticFile, error) {
	return call[[]model.StaticFile](ctx, s.executor, &executor.Request{
		Path:   "/file",
		Method: executor.MethodGet,
	})
}

func (s *FileService) GetFileByID(ctx context.Context, id string) (*model.StaticFile, error) {
	if err := required("FileService.GetFileByID", "id", id); err != nil {
		return nil, err
	}
	return call[*model.StaticFile](ctx, s.executor, &executor.Request{
		Path:   segment("/file/", id),
		Method: executor.MethodGet,
	})
}

func (s *FileService) GetFilesByType(ctx context.Context, fileType model.FileType) ([]model.StaticFile, error) {
	if err := required("FileService.GetFilesByType", "fileType", string(fileType)); err != nil {
		return nil, err
	}
	return call[[]model.StaticFile](ctx, s.executor, &executor.Request{
		Path:   segment("/file/type/", string(fileType)),
		Method: executor.MethodGet,
	})
}

func (s *FileService) GetFilesByUploaderID(ctx context.Context, uploaderID string) ([]model.StaticFile, error) {
	if err := required("FileService.GetFilesByUploaderID", "uploaderId", uploaderID); err != nil {
		return nil, err
	}
	return call[[]model.StaticFile](ctx, s.executor, &executor.Request{
		Path:   segment("/file/uploader/", uploaderID),
		Method: executor.MethodGet,
	})
}

func (s *FileService) GetLatestFiles(ctx context.Context, limit *int) ([]model.StaticFile, error) {
	return call[[]model.StaticFile](ctx, s.executor, &executor.Request{
		Path:   "/file/latest",
		Method: executor.MethodGet,
		Query:  executor.Query{}.Add("limit", limit),
	})
}

// SearchFiles matches keyword against file names. An empty keyword is sent
// as is.
func (s *FileService) SearchFiles(ctx context.Context, keyword string) ([]model.StaticFile, error) {
	return call[[]model.StaticFile](ctx, s.executor, &executor.Request{
		Path:   "/file/search",
		Method: executor.MethodGet,
		Query:  executor.Query{}.Add("keyword", keyword),
	})
}

// UploadOptions describes one file upload. Folder is the target folder in
// the bucket, e.g. "avatars". ContentType defaults to
// application/octet-stream.
type UploadOptions struct {
	Folder      string
	FileName    string
	ContentType string
	Content     io.Reader
}

// UploadFile sends Content as the multipart field "file".
func (s *FileService) UploadFile(ctx context.Context, opts UploadOptions) (model.StaticFile, error) {
	if err := required("FileService.UploadFile", "folder", opts.Folder, "fileName", opts.FileName); err != nil {
		return model.StaticFile{}, err
	}
	return call[model.StaticFile](ctx, s.executor, &executor.Request{
		Path:   "/file/upload",
		Method: executor.MethodPost,
		Query:  executor.Query{}.Add("folder", opts.Folder),
		File: &executor.FilePart{
			FieldName:   "file",
			FileName:    opts.FileName,
			ContentType: opts.ContentType,
			Content:     opts.Content,
		},
	})
}
