package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"grouporder/internal/ports"
)

// TokenSource — источник access-токена для исходящих запросов.
type TokenSource interface {
	Token() string
}

// StaticTokenSource — фиксированный JWT из конфигурации.
// Обновление токена (refresh) вне зоны ответственности подсистемы:
// истёкший токен приводит к 401, который отдаётся вызывающему коду.
type StaticTokenSource struct {
	token string
}

var _ TokenSource = (*StaticTokenSource)(nil)

// NewStaticTokenSource — оборачивает токен и, если это разбираемый JWT,
// предупреждает об истёкшем или скором истечении срока действия.
// Подпись не проверяется — секрет знает только сервер.
func NewStaticTokenSource(ctx context.Context, token string, log ports.Logger) *StaticTokenSource {
	s := &StaticTokenSource{token: token}
	if token == "" {
		log.Warnf(ctx, "auth: токен не задан, запросы уйдут без Authorization")
		return s
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Не JWT — возможно, opaque-токен; работаем как есть.
		log.Warnf(ctx, "auth: токен не разбирается как JWT: %v", err)
		return s
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s
	}

	switch left := time.Until(exp.Time); {
	case left <= 0:
		log.Warnf(ctx, "auth: срок действия токена истёк %s назад", (-left).Round(time.Second))
	case left < 5*time.Minute:
		log.Warnf(ctx, "auth: токен истекает через %s", left.Round(time.Second))
	}

	return s
}

func (s *StaticTokenSource) Token() string {
	return s.token
}
