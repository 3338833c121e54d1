package model

import "github.com/golang-jwt/jwt/v5"

type BroadcastConnectClaims struct {
	jwt.RegisteredClaims
}

type BroadcastWatchClaims struct {
	jwt.RegisteredClaims

	Channel  string `json:"channel"`
	UserID   string `json:"user_id"`
	StreamID string `json:"stream_id"`
}
