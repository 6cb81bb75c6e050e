// Package authctx carries the caller's Authorization header through context
package authctx

import "context"

type tokenKey struct{}

// WithToken сохраняет заголовок Authorization ("Bearer ...") в контексте
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Token возвращает сохраненный заголовок Authorization
func Token(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
