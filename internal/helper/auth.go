package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"

	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Auth struct {
	AccessSecret  string
	RefreshSecret string
}

func SetupAuth(accessSecret, refreshSecret string) Auth {
	return Auth{
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
	}
}

// TokenClaims is the decoded identity carried by both token types.
// Role is embedded in the refresh token too, so refresh can be
// role-checked the same way an access token is.
type TokenClaims struct {
	UserID uint
	Role   string
}

func (a Auth) GenerateAccessToken(userID uint, role string) (string, error) {
	return a.generate(userID, role, a.AccessSecret, accessTokenTTL)
}

func (a Auth) GenerateRefreshToken(userID uint, role string) (string, error) {
	return a.generate(userID, role, a.RefreshSecret, refreshTokenTTL)
}

func (a Auth) generate(userID uint, role, secret string, ttl time.Duration) (string, error) {
	if userID == 0 || role == "" {
		return "", errors.New("required inputs are missing to generate token")
	}
	if secret == "" {
		return "", errors.New("missing signing secret")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})

	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

func (a Auth) VerifyAccessToken(tokenString string) (TokenClaims, error) {
	return verify(tokenString, a.AccessSecret)
}

func (a Auth) VerifyRefreshToken(tokenString string) (TokenClaims, error) {
	return verify(tokenString, a.RefreshSecret)
}

func verify(tokenString, secret string) (TokenClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return TokenClaims{}, ErrUnauthenticated("missing token")
	}

	// support both "Bearer <token>" and "<token>"
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return TokenClaims{}, ErrUnauthenticated("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenClaims{}, ErrUnauthenticated("token expired")
		}
		return TokenClaims{}, ErrUnauthenticated("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, ErrUnauthenticated("invalid token claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return TokenClaims{}, ErrUnauthenticated("missing subject claim")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return TokenClaims{}, ErrUnauthenticated("missing role claim")
	}

	return TokenClaims{UserID: uint(sub), Role: role}, nil
}
