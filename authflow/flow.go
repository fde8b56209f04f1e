// Package authflow owns every write to the session apart from the
// transport's clear on authorization failure.
package authflow

import (
	"context"

	"github.com/jrsteele09/ainote-client/api"
	clienterrors "github.com/jrsteele09/ainote-client/internal/errors"
	"github.com/jrsteele09/ainote-client/internal/utils"
	"github.com/jrsteele09/ainote-client/model"
	"github.com/jrsteele09/ainote-client/session"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrTenantRequired is returned when switching to an empty tenant id.
var ErrTenantRequired = clienterrors.ErrTenantRequired

type Flow struct {
	client *api.Client
	store  session.Store
	log    zerolog.Logger
}

type FlowOption func(*Flow)

func WithLogger(log zerolog.Logger) FlowOption {
	return func(f *Flow) {
		f.log = log
	}
}

func New(client *api.Client, store session.Store, options ...FlowOption) (*Flow, error) {
	if client == nil {
		return nil, errors.New("[authflow.New] api client is required")
	}
	if store == nil {
		return nil, errors.New("[authflow.New] session store is required")
	}
	f := &Flow{client: client, store: store, log: zerolog.Nop()}
	for _, opt := range options {
		opt(f)
	}
	return f, nil
}

// Login signs in with username and password and persists the session.
func (f *Flow) Login(ctx context.Context, input model.LoginInput) (session.Session, error) {
	resp, err := f.client.Auth.Login(ctx, input)
	if err != nil {
		return session.Session{}, err
	}
	return f.establish(resp)
}

func (f *Flow) Register(ctx context.Context, input model.RegisterInput) (session.Session, error) {
	resp, err := f.client.Auth.Register(ctx, input)
	if err != nil {
		return session.Session{}, err
	}
	return f.establish(resp)
}

func (f *Flow) SmsLogin(ctx context.Context, input model.SmsLoginInput) (session.Session, error) {
	resp, err := f.client.Auth.SmsLogin(ctx, input)
	if err != nil {
		return session.Session{}, err
	}
	return f.establish(resp)
}

// establish writes all four session fields at once. A response without a
// tenant removes any tenant left over from an earlier session.
func (f *Flow) establish(resp model.AuthResponse) (session.Session, error) {
	role := session.Role(resp.Role)
	if role == "" {
		role = session.RoleUser
	}
	update := session.Update{
		Token:    utils.Ptr(resp.Token),
		UserID:   utils.Ptr(resp.ID),
		Role:     &role,
		TenantID: utils.Ptr(resp.Tenant),
	}
	if err := f.store.Set(update); err != nil {
		return session.Session{}, err
	}
	current := f.store.Get()
	f.log.Info().Str("user_id", current.UserID).Str("role", string(current.Role)).
		Bool("tenant_selected", current.HasTenant()).Msg("signed in")
	return current, nil
}

// SwitchTenant selects the company whose data later calls operate on.
func (f *Flow) SwitchTenant(tenantID string) error {
	if tenantID == "" {
		return clienterrors.Wrapf(ErrTenantRequired, "[SwitchTenant]")
	}
	if err := f.store.Set(session.Update{TenantID: utils.Ptr(tenantID)}); err != nil {
		return err
	}
	f.log.Info().Str("tenant", tenantID).Msg("tenant switched")
	return nil
}

func (f *Flow) ClearTenant() error {
	return f.store.Set(session.Update{TenantID: utils.Ptr("")})
}

func (f *Flow) Logout() error {
	return f.store.Clear()
}

func (f *Flow) Current() session.Session {
	return f.store.Get()
}

func (f *Flow) HasValidTenant() bool {
	return f.store.Get().HasTenant()
}

// RefreshProfile fetches the signed-in account and syncs its id and role
// into the session. It returns nil, nil when there is no token.
func (f *Flow) RefreshProfile(ctx context.Context) (*model.AccountSimple, error) {
	if !f.store.HasToken() {
		return nil, nil
	}
	me, err := f.client.Account.Me(ctx)
	if err != nil || me == nil {
		return me, err
	}
	update := session.Update{}
	if me.ID != "" {
		update.UserID = utils.Ptr(me.ID)
	}
	if me.Role != "" {
		role := session.Role(me.Role)
		update.Role = &role
	}
	if err := f.store.Set(update); err != nil {
		return nil, err
	}
	return me, nil
}
