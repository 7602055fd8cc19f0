// Package identity предоставляет компонентам личность текущего
// пользователя. Сервис не выпускает и не хранит учётные данные, он только
// проверяет токен внешней подсистемы аутентификации.
package identity

import (
	"context"
	"errors"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}

func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

var ErrUnauthenticated = errors.New("not authenticated")

// Provider — потребляемый интерфейс поставщика личности. Компоненты
// получают его через конструктор, никаких глобальных сессий.
type Provider interface {
	CurrentUser(ctx context.Context) (*User, error)
}

type contextKey struct{}

func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

func FromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(contextKey{}).(*User)
	return user, ok
}

type contextProvider struct{}

// NewProvider возвращает Provider, читающий личность из контекста запроса,
// куда её кладёт middleware после проверки токена.
func NewProvider() Provider {
	return &contextProvider{}
}

func (p *contextProvider) CurrentUser(ctx context.Context) (*User, error) {
	user, ok := FromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
