package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID  ctxKey = "user_id"
	CtxKeyTokenID ctxKey = "token_id"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID  string
	TokenID string
}

// WithPrincipal stores p on ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.UserID)
	return context.WithValue(ctx, CtxKeyTokenID, p.TokenID)
}

// PrincipalFromContext returns the caller set by AuthnMiddleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	userID, _ := ctx.Value(CtxKeyUserID).(string)
	tokenID, _ := ctx.Value(CtxKeyTokenID).(string)
	if userID == "" || tokenID == "" {
		return Principal{}, false
	}
	return Principal{UserID: userID, TokenID: tokenID}, true
}
