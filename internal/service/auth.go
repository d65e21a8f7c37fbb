package service

import (
	"github.com/alpereneser/connectlist-sub003/internal/server"
	"github.com/clerk/clerk-sdk-go/v2"
)

// AuthService configures the Clerk SDK with the server's secret key.
type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}
