package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/pkg/identity"
	"Kajoogram/internal/pkg/security"
	"Kajoogram/internal/repository/mocks"
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc      AuthService
	provider *fakeProvider
	users    *mocks.MockUserRepo
	roles    *mocks.MockUserRolesRepo
	kv       *memKV
	tokens   *security.TokenIssuer
}

func newAuthFixture(t *testing.T, admins ...string) *authFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := &authFixture{
		provider: &fakeProvider{},
		users:    mocks.NewMockUserRepo(ctrl),
		roles:    mocks.NewMockUserRolesRepo(ctrl),
		kv:       newMemKV(),
		tokens:   security.NewTokenIssuer("test-secret", time.Hour),
	}
	hub := identity.NewHub(f.provider, time.Second)
	f.svc = NewAuthService(hub, f.users, f.roles, f.tokens, f.kv, admins)
	return f
}

func TestAuthService_SignInProjectsNewUser(t *testing.T) {
	f := newAuthFixture(t)
	f.provider.session = &identity.Session{
		ExternalID:  "sb-1",
		Email:       "Ann@Example.com",
		DisplayName: "ann",
		AccessToken: "provider-token",
	}
	f.users.EXPECT().GetUserByExternalID(gomock.Any(), "sb-1").Return(nil, nil)
	f.users.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(nil, nil)
	f.roles.EXPECT().GetRoleByName(gomock.Any(), consts.RoleUser).Return(&model.Role{ID: 1, Name: consts.RoleUser}, nil)
	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, u *model.User, _ []*model.UserRole) error {
			u.ID = 11
			assert.Equal(t, "fake", u.Provider)
			assert.Equal(t, "sb-1", *u.ExternalID)
			return nil
		})
	f.roles.EXPECT().GetUserRoles(gomock.Any(), uint64(11)).Return([]*model.Role{{ID: 1, Name: consts.RoleUser}}, nil)

	out, err := f.svc.SignIn(context.Background(), &dto.SignInDTO{Email: "Ann@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "provider-token", out.ProviderToken)
	assert.Equal(t, []string{consts.RoleUser}, out.User.Roles)

	claims, err := f.tokens.Validate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), claims.UserID)
	assert.False(t, claims.HasRole(consts.RoleAdmin))
}

func TestAuthService_AdminBootstrapOnCreate(t *testing.T) {
	f := newAuthFixture(t, "boss@example.com")
	f.provider.session = &identity.Session{ExternalID: "sb-3", Email: "boss@example.com"}
	f.users.EXPECT().GetUserByExternalID(gomock.Any(), "sb-3").Return(nil, nil)
	f.users.EXPECT().GetUserByEmail(gomock.Any(), "boss@example.com").Return(nil, nil)
	f.roles.EXPECT().GetRoleByName(gomock.Any(), consts.RoleUser).Return(&model.Role{ID: 1, Name: consts.RoleUser}, nil)
	f.roles.EXPECT().GetRoleByName(gomock.Any(), consts.RoleAdmin).Return(&model.Role{ID: 2, Name: consts.RoleAdmin}, nil)
	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *model.User, roles []*model.UserRole) error {
			u.ID = 3
			require.Len(t, roles, 2)
			assert.Equal(t, uint64(2), roles[1].RoleID)
			return nil
		})
	f.roles.EXPECT().GetUserRoles(gomock.Any(), uint64(3)).
		Return([]*model.Role{{ID: 1, Name: consts.RoleUser}, {ID: 2, Name: consts.RoleAdmin}}, nil)

	out, err := f.svc.SignIn(context.Background(), &dto.SignInDTO{Email: "boss@example.com", Password: "secret1"})
	require.NoError(t, err)
	claims, err := f.tokens.Validate(out.Token)
	require.NoError(t, err)
	assert.True(t, claims.HasRole(consts.RoleAdmin))
}

func TestAuthService_RevokedAdminStaysRevoked(t *testing.T) {
	f := newAuthFixture(t, "boss@example.com")
	f.provider.session = &identity.Session{ExternalID: "local:3", Email: "boss@example.com"}
	user := &model.User{ID: 3, Email: "boss@example.com"}
	f.users.EXPECT().GetUserByExternalID(gomock.Any(), "local:3").Return(user, nil).Times(3)
	f.roles.EXPECT().GetUserRoles(gomock.Any(), uint64(3)).
		Return([]*model.Role{{ID: 1, Name: consts.RoleUser}}, nil).Times(3)
	f.roles.EXPECT().AddRoleToUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for i := 0; i < 3; i++ {
		out, err := f.svc.SignIn(context.Background(), &dto.SignInDTO{Email: "boss@example.com", Password: "secret1"})
		require.NoError(t, err)
		claims, err := f.tokens.Validate(out.Token)
		require.NoError(t, err)
		assert.False(t, claims.HasRole(consts.RoleAdmin))
		assert.Equal(t, []string{consts.RoleUser}, out.User.Roles)
	}
}

func TestAuthService_SignUp(t *testing.T) {
	t.Run("password mismatch", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.SignUp(context.Background(), &dto.SignUpDTO{
			Username: "ann", Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret2",
		})
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("pending confirmation", func(t *testing.T) {
		f := newAuthFixture(t)
		f.provider.pending = true
		out, err := f.svc.SignUp(context.Background(), &dto.SignUpDTO{
			Username: "ann", Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1",
		})
		require.NoError(t, err)
		assert.True(t, out.PendingConfirmation)
		assert.Empty(t, out.Token)
	})

	t.Run("provider error passes through", func(t *testing.T) {
		f := newAuthFixture(t)
		f.provider.err = &identity.AuthError{Provider: "fake", Code: "email_exists", Message: "User already registered"}
		_, err := f.svc.SignUp(context.Background(), &dto.SignUpDTO{
			Username: "ann", Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1",
		})
		authErr, ok := identity.AsAuthError(err)
		require.True(t, ok)
		assert.Equal(t, "User already registered", authErr.Error())
	})
}

func TestAuthService_SignOutRevokesToken(t *testing.T) {
	f := newAuthFixture(t)
	token, err := f.tokens.Generate(5, "ann@example.com", []string{consts.RoleUser})
	require.NoError(t, err)

	_, err = f.svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	require.NoError(t, f.svc.SignOut(context.Background(), token, "provider-token"))
	assert.Equal(t, []string{"provider-token"}, f.provider.signOuts)

	_, err = f.svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	assert.ErrorIs(t, f.svc.SignOut(context.Background(), "garbage", ""), ErrTokenInvalid)
}
