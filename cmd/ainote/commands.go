package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jrsteele09/ainote-client/api"
	"github.com/jrsteele09/ainote-client/authflow"
	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/internal/config"
	"github.com/jrsteele09/ainote-client/model"
	"github.com/jrsteele09/ainote-client/service"
	"github.com/jrsteele09/ainote-client/session"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type app struct {
	client *api.Client
	flow   *authflow.Flow
	store  session.Store
	log    zerolog.Logger
	out    io.Writer
	errOut io.Writer // Usage and flag errors
}

type command struct {
	name    string
	summary string
	run     func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{"login", "sign in with -u and -p (captcha via -captcha-key/-captcha-code)", (*app).login},
	{"captcha", "fetch a captcha challenge", (*app).captcha},
	{"sms-code", "send an SMS sign-in code to -phone", (*app).smsCode},
	{"sms-login", "sign in with -phone and -code", (*app).smsLogin},
	{"logout", "clear the stored session", (*app).logout},
	{"whoami", "show the stored session and the signed-in profile", (*app).whoami},
	{"tenant", "switch to <tenant>, or -clear it", (*app).tenant},
	{"companies", "list the companies you belong to", (*app).companies},
	{"upload", "upload <path> into -folder", (*app).upload},
	{"files", "list uploaded files", (*app).files},
	{"logs", "show the latest -limit log entries", (*app).logs},
	{"chat", "send <message> to the assistant", (*app).chat},
	{"views", "list the view projections this client understands", (*app).views},
}

func newApp(c config.Config, log zerolog.Logger, out, errOut io.Writer, registry *prometheus.Registry) (*app, error) {
	store, err := session.NewFileStore(c.GetSessionFile(), session.WithLogger(log))
	if err != nil {
		return nil, err
	}

	options := []executor.Option{
		executor.WithTimeout(c.GetRequestTimeout()),
		executor.WithTenantHeader(c.GetTenantHeader()),
		executor.WithLogger(log),
		executor.WithSessionExpiredHandler(func(_ context.Context, expired *executor.SessionExpiredError) {
			log.Warn().Str("path", expired.Path).Msg("stored credentials were rejected and have been removed")
		}),
	}
	if registry != nil {
		metrics, err := executor.NewMetrics(registry)
		if err != nil {
			return nil, err
		}
		options = append(options, executor.WithMetrics(metrics))
	}

	exec, err := executor.NewHTTPExecutor(c.GetBaseURL(), store, options...)
	if err != nil {
		return nil, err
	}
	client := api.New(exec)
	flow, err := authflow.New(client, store, authflow.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return &app{client: client, flow: flow, store: store, log: log, out: out, errOut: errOut}, nil
}

func (a *app) dispatch(ctx context.Context, name string, args []string) error {
	for _, c := range commands {
		if c.name == name {
			return c.run(a, ctx, args)
		}
	}
	return errors.Errorf("unknown command %q", name)
}

func (a *app) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// newFlags returns a subcommand flag set whose usage and parse errors go
// to errOut. -h makes Parse return flag.ErrHelp.
func (a *app) newFlags(name string) *flag.FlagSet {
	flags := flag.NewFlagSet("ainote "+name, flag.ContinueOnError)
	flags.SetOutput(a.errOut)
	return flags
}

func (a *app) login(ctx context.Context, args []string) error {
	flags := a.newFlags("login")
	username := flags.String("u", "", "username")
	password := flags.String("p", "", "password")
	captchaKey := flags.String("captcha-key", "", "captcha key from the captcha command")
	captchaCode := flags.String("captcha-code", "", "captcha answer")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return errors.New("login requires -u and -p")
	}

	current, err := a.flow.Login(ctx, model.LoginInput{
		Username: *username,
		Password: *password,
		VerKey:   *captchaKey,
		VerCode:  *captchaCode,
	})
	if err != nil {
		return err
	}
	return a.print(sessionSummary(current))
}

func (a *app) captcha(ctx context.Context, _ []string) error {
	challenge, err := a.client.Auth.Captcha(ctx)
	if err != nil {
		return err
	}
	return a.print(challenge)
}

func (a *app) smsCode(ctx context.Context, args []string) error {
	flags := a.newFlags("sms-code")
	phone := flags.String("phone", "", "phone number")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := a.client.Auth.SendSmsCode(ctx, *phone); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Code sent to %s\n", *phone)
	return nil
}

func (a *app) smsLogin(ctx context.Context, args []string) error {
	flags := a.newFlags("sms-login")
	phone := flags.String("phone", "", "phone number")
	code := flags.String("code", "", "code received by SMS")
	if err := flags.Parse(args); err != nil {
		return err
	}
	current, err := a.flow.SmsLogin(ctx, model.SmsLoginInput{Phone: *phone, Code: *code})
	if err != nil {
		return err
	}
	return a.print(sessionSummary(current))
}

func (a *app) logout(context.Context, []string) error {
	if err := a.flow.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *app) whoami(ctx context.Context, _ []string) error {
	if !a.store.HasToken() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	me, err := a.flow.RefreshProfile(ctx)
	if err != nil {
		return err
	}
	summary := sessionSummary(a.flow.Current())
	if me != nil {
		summary["username"] = me.Username
		summary["tenants"] = me.Tenants()
	}
	return a.print(summary)
}

func (a *app) tenant(_ context.Context, args []string) error {
	flags := a.newFlags("tenant")
	clearTenant := flags.Bool("clear", false, "remove the selected tenant")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *clearTenant {
		return a.flow.ClearTenant()
	}
	if flags.NArg() != 1 {
		return errors.New("tenant requires exactly one tenant id")
	}
	if err := a.flow.SwitchTenant(flags.Arg(0)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Tenant set to %s\n", flags.Arg(0))
	return nil
}

func (a *app) companies(ctx context.Context, _ []string) error {
	names, err := a.client.Company.MyCompany(ctx)
	if err != nil {
		return err
	}
	return a.print(names)
}

func (a *app) upload(ctx context.Context, args []string) error {
	flags := a.newFlags("upload")
	folder := flags.String("folder", "", "destination folder")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("upload requires exactly one file path")
	}
	path := flags.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer f.Close()

	uploaded, err := a.client.File.UploadFile(ctx, service.UploadOptions{
		Folder:      *folder,
		FileName:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Content:     f,
	})
	if err != nil {
		return err
	}
	return a.print(uploaded)
}

func (a *app) files(ctx context.Context, _ []string) error {
	files, err := a.client.File.GetAllFiles(ctx)
	if err != nil {
		return err
	}
	return a.print(files)
}

func (a *app) logs(ctx context.Context, args []string) error {
	flags := a.newFlags("logs")
	limit := flags.Int("limit", 0, "number of entries, 0 for the backend default")
	if err := flags.Parse(args); err != nil {
		return err
	}
	var limitParam *int
	if *limit > 0 {
		limitParam = limit
	}
	entries, err := a.client.Log.FindLatestLogs(ctx, limitParam)
	if err != nil {
		return err
	}
	return a.print(entries)
}

func (a *app) chat(ctx context.Context, args []string) error {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return errors.New("chat requires a message")
	}
	resp, err := a.client.Ai.Chat(ctx, model.AiChatRequest{Message: message})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, resp.Reply)
	return nil
}

func (a *app) views(context.Context, []string) error {
	views := model.Views()
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, string(name))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.out, "%-36s %T\n", name, views[model.ViewName(name)])
	}
	return nil
}

// sessionSummary is what the CLI shows for a session. The token itself is
// never printed.
func sessionSummary(s session.Session) map[string]any {
	summary := map[string]any{
		"userId": s.UserID,
		"role":   s.Role,
		"tenant": s.TenantID,
	}
	if claims, ok := s.Claims(); ok && !claims.ExpiresAt.IsZero() {
		summary["expiresAt"] = claims.ExpiresAt
	}
	return summary
}
