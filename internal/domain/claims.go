package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são os dados carregados no token de acesso da API
type Claims struct {
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}
