package identity

import (
	"Kajoogram/internal/api/config"
	"Kajoogram/internal/pkg/security"
	"fmt"
	"strings"
)

// NewProvider 按 auth.provider 选择实现
func NewProvider(cfg config.AuthConfig, store CredentialStore, tokens *security.TokenIssuer) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", localName:
		return NewLocal(store, tokens), nil
	case supabaseName:
		if cfg.Supabase.URL == "" {
			return nil, fmt.Errorf("auth.supabase.url is required")
		}
		return NewSupabase(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.RequestTimeout()), nil
	case firebaseName:
		if cfg.Firebase.APIKey == "" {
			return nil, fmt.Errorf("auth.firebase.api_key is required")
		}
		return NewFirebase(cfg.Firebase.Endpoint, cfg.Firebase.APIKey, cfg.RequestTimeout()), nil
	default:
		return nil, fmt.Errorf("unknown identity provider %q", cfg.Provider)
	}
}
