package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/pedidos-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[int64]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error                     { return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error)  { return nil, nil }
func (r *fakeUserRepo) ListByRole(role string) ([]*entity.User, error)  { return nil, nil }
func (r *fakeUserRepo) Delete(id int64) error                           { return nil }

const testSecret = "auth-test-secret"

func newAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[int64]*entity.User{
		1: {ID: 1, Name: "Ana", Email: "ana@example.com", PasswordHash: string(hash), Role: entity.RoleAdmin},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pedidos-api-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// El token debe llevar identidad y rol
	userID, email, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_EmailSinDistinguirMayusculas(t *testing.T) {
	uc := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: "ANA@Example.COM", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.User.Name)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un email inexistente devuelve el mismo error que una password incorrecta.
func TestLogin_EmailInexistente(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
