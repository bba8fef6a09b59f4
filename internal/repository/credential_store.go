package repository

import (
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/pkg/identity"
	"context"
	"strconv"
)

// CredentialStore 将 users 表适配为本地身份提供方的账号存储
type CredentialStore struct {
	users UserRepo
	roles UserRolesRepo
}

func NewCredentialStore(users UserRepo, roles UserRolesRepo) *CredentialStore {
	return &CredentialStore{users: users, roles: roles}
}

func (c *CredentialStore) FindCredential(ctx context.Context, email string) (*identity.Credential, error) {
	user, err := c.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toCredential(user)
}

func (c *CredentialStore) FindCredentialByID(ctx context.Context, id uint64) (*identity.Credential, error) {
	user, err := c.users.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCredential(user)
}

func (c *CredentialStore) CreateCredential(ctx context.Context, cred *identity.Credential) error {
	hash := cred.PasswordHash
	user := &model.User{
		Email:        cred.Email,
		Provider:     "local",
		Username:     cred.Username,
		PasswordHash: &hash,
		Mobile:       cred.Mobile,
		AvatarURL:    cred.AvatarURL,
	}
	if user.AvatarURL == "" {
		user.AvatarURL = consts.DefaultAvatarURL
	}
	var roles []*model.UserRole
	if c.roles != nil {
		role, err := c.roles.GetRoleByName(ctx, consts.RoleUser)
		if err != nil {
			return err
		}
		if role != nil {
			roles = append(roles, &model.UserRole{RoleID: role.ID})
		}
	}
	if err := c.users.CreateUser(ctx, user, roles); err != nil {
		return err
	}
	cred.ID = user.ID
	externalID := "local:" + strconv.FormatUint(user.ID, 10)
	user.ExternalID = &externalID
	return c.users.UpdateUser(ctx, user)
}

func toCredential(user *model.User) (*identity.Credential, error) {
	if user == nil || user.PasswordHash == nil || user.IsBan {
		return nil, identity.ErrCredentialNotFound
	}
	return &identity.Credential{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: *user.PasswordHash,
		Username:     user.Username,
		Mobile:       user.Mobile,
		AvatarURL:    user.AvatarURL,
	}, nil
}
