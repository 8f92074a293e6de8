package middleware

import "context"

type contextKey string

const (
	ContextAccountID contextKey = "accountID"
	ContextSessionID contextKey = "sessionID"
	ContextToken     contextKey = "token"
)

func GetAccountID(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextAccountID).(string)
	return val, ok
}

func GetSessionID(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextSessionID).(string)
	return val, ok
}

func GetToken(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextToken).(string)
	return val, ok
}
