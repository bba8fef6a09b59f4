package service

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/pkg/identity"
	"Kajoogram/internal/pkg/security"
	"Kajoogram/internal/pkg/util"
	"Kajoogram/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
)

type AuthService interface {
	SignIn(ctx context.Context, req *dto.SignInDTO) (*dto.AuthDTO, error)
	SignUp(ctx context.Context, req *dto.SignUpDTO) (*dto.AuthDTO, error)
	SignOut(ctx context.Context, token, providerToken string) error
	ValidateToken(ctx context.Context, token string) (*security.UserClaims, error)
	ProviderName() string
}

type authServiceImpl struct {
	hub         *identity.Hub
	userRepo    repository.UserRepo
	rolesRepo   repository.UserRolesRepo
	tokens      *security.TokenIssuer
	kv          KVStore
	adminEmails map[string]struct{}
	now         func() time.Time
}

func NewAuthService(
	hub *identity.Hub,
	userRepo repository.UserRepo,
	rolesRepo repository.UserRolesRepo,
	tokens *security.TokenIssuer,
	kv KVStore,
	adminEmails []string,
) AuthService {
	s := &authServiceImpl{
		hub:       hub,
		userRepo:  userRepo,
		rolesRepo: rolesRepo,
		tokens:    tokens,
		kv:        kv,
		adminEmails: lo.SliceToMap(adminEmails, func(e string) (string, struct{}) {
			return strings.ToLower(strings.TrimSpace(e)), struct{}{}
		}),
		now: time.Now,
	}
	hub.OnSessionChange(func(ctx context.Context, ev identity.Event) {
		email := ""
		if ev.Session != nil {
			email = ev.Session.Email
		}
		log.InfoContext(ctx, "session changed", "provider", hub.Provider(), "kind", ev.Kind, "email", email)
	})
	return s
}

func (s *authServiceImpl) ProviderName() string {
	return s.hub.Provider()
}

func (s *authServiceImpl) SignIn(ctx context.Context, req *dto.SignInDTO) (*dto.AuthDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}
	sess, err := s.hub.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, sess)
}

func (s *authServiceImpl) SignUp(ctx context.Context, req *dto.SignUpDTO) (*dto.AuthDTO, error) {
	if err := util.ValidateDTO(req); err != nil {
		return nil, ErrParamInvalid
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	res, err := s.hub.SignUp(ctx, req.Email, req.Password, identity.Profile{
		Username:  strings.TrimSpace(req.Username),
		Mobile:    req.Mobile,
		AvatarURL: consts.DefaultAvatarURL,
	})
	if err != nil {
		return nil, err
	}
	if res.PendingConfirmation || res.Session == nil {
		return &dto.AuthDTO{PendingConfirmation: true, Email: res.Email}, nil
	}
	if res.Session.DisplayName == "" {
		res.Session.DisplayName = strings.TrimSpace(req.Username)
	}
	return s.issue(ctx, res.Session)
}

// SignOut 本地令牌加入黑名单直到过期，提供方令牌尽力吊销
func (s *authServiceImpl) SignOut(ctx context.Context, token, providerToken string) error {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return ErrTokenInvalid
	}
	sig, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err = s.kv.SetWithExpiration(ctx, consts.TokenBlacklistKey+sig, "1", ttl); err != nil {
			return err
		}
	}
	sess := &identity.Session{Email: claims.Email, AccessToken: providerToken}
	if err = s.hub.SignOut(ctx, sess); err != nil {
		log.WarnContext(ctx, "provider sign out failed", "user_id", claims.UserID, "err", err)
	}
	return nil
}

// ValidateToken 校验签名、有效期与黑名单
func (s *authServiceImpl) ValidateToken(ctx context.Context, token string) (*security.UserClaims, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	sig, err := security.ExtractSignature(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	revoked, err := s.kv.Exists(ctx, consts.TokenBlacklistKey+sig)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (s *authServiceImpl) issue(ctx context.Context, sess *identity.Session) (*dto.AuthDTO, error) {
	user, err := s.project(ctx, sess)
	if err != nil {
		return nil, err
	}
	if user.IsBan {
		return nil, ErrUserBan
	}
	roles, err := s.roles(ctx, user)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Generate(user.ID, user.Email, roles)
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(s.tokens.TTL())
	out := toUserDTO(user)
	out.Roles = roles
	return &dto.AuthDTO{
		Token:         token,
		ExpiresAt:     &expiresAt,
		ProviderToken: sess.AccessToken,
		Email:         user.Email,
		User:          out,
	}, nil
}

// project 将提供方会话映射为本地用户：先按外部 ID，再按邮箱，都没有则创建
func (s *authServiceImpl) project(ctx context.Context, sess *identity.Session) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(sess.Email))
	if sess.ExternalID != "" {
		user, err := s.userRepo.GetUserByExternalID(ctx, sess.ExternalID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
	}
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if sess.ExternalID != "" && user.ExternalID == nil {
			externalID := sess.ExternalID
			user.ExternalID = &externalID
			user.Provider = s.hub.Provider()
			if err = s.userRepo.UpdateUser(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}

	user = &model.User{
		Email:     email,
		Provider:  s.hub.Provider(),
		Username:  lo.Ternary(sess.DisplayName != "", sess.DisplayName, strings.Split(email, "@")[0]),
		Mobile:    sess.Mobile,
		AvatarURL: lo.Ternary(sess.AvatarURL != "", sess.AvatarURL, consts.DefaultAvatarURL),
	}
	if sess.ExternalID != "" {
		externalID := sess.ExternalID
		user.ExternalID = &externalID
	}
	var userRoles []*model.UserRole
	role, err := s.rolesRepo.GetRoleByName(ctx, consts.RoleUser)
	if err != nil {
		return nil, err
	}
	if role != nil {
		userRoles = append(userRoles, &model.UserRole{RoleID: role.ID})
	}
	// 配置中的管理员邮箱只在创建用户时写入 ADMIN，之后以角色表为准
	if _, ok := s.adminEmails[email]; ok {
		admin, err := s.rolesRepo.GetRoleByName(ctx, consts.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, errors.New("admin role missing, run migrate first")
		}
		userRoles = append(userRoles, &model.UserRole{RoleID: admin.ID})
		log.InfoContext(ctx, "admin role granted from config", "email", email)
	}
	if err = s.userRepo.CreateUser(ctx, user, userRoles); err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "user projected from identity provider", "user_id", user.ID, "provider", user.Provider)
	return user, nil
}

// roles 读取角色表
func (s *authServiceImpl) roles(ctx context.Context, user *model.User) ([]string, error) {
	roles, err := s.rolesRepo.GetUserRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return lo.Map(roles, func(r *model.Role, _ int) string { return r.Name }), nil
}
