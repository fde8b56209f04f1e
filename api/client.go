// Package api bundles every service facade over one shared executor.
package api

import (
	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/service"
)

type Client struct {
	Account  *service.AccountService
	Auth     *service.AuthService
	Company  *service.CompanyService
	Log      *service.LogService
	Note     *service.NoteService
	File     *service.FileService
	Template *service.TemplateService
	Ai       *service.AiService
}

func New(exec executor.Executor) *Client {
	return &Client{
		Account:  service.NewAccountService(exec),
		Auth:     service.NewAuthService(exec),
		Company:  service.NewCompanyService(exec),
		Log:      service.NewLogService(exec),
		Note:     service.NewNoteService(exec),
		File:     service.NewFileService(exec),
		Template: service.NewTemplateService(exec),
		Ai:       service.NewAiService(exec),
	}
}
