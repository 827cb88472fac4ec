package entity

import (
	"context"
	"errors"
)

type CtxKeyUser struct{}

func UserFromContext(ctx context.Context) (UserClaims, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(UserClaims)
	if !ok {
		return UserClaims{}, errors.New("data type casting")
	}

	return user, nil
}

func SetUserToContext(ctx context.Context, user UserClaims) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}
