package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/supabase-community/gotrue-go/types"
)

// AuthenticateUser signs in against Supabase Auth with email and password.
func (su *SupabaseRepo) AuthenticateUser(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if su.supabaseClient == nil {
		return nil, fmt.Errorf("supabase client is not initialized")
	}
	resp, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "invalid login credentials") {
			return nil, fmt.Errorf("invalid email or password")
		}
		return nil, fmt.Errorf("failed to authenticate user: %v", err)
	}
	return resp, nil
}
