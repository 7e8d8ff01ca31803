package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// fakeUserRepo almacén en memoria con unicidad de email case-insensitive,
// igual que el índice LOWER(email) de la base real.
type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

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

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByRole(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.users, id)
	return nil
}

// fakeOrderCounter solo implementa lo que el caso de uso de usuarios consulta.
type fakeOrderCounter struct {
	counts map[int64]int
}

func (r *fakeOrderCounter) Create(order *entity.Order) error               { return nil }
func (r *fakeOrderCounter) GetByID(id int64) (*entity.Order, error)        { return nil, nil }
func (r *fakeOrderCounter) GetWithItems(id int64) (*entity.Order, error)   { return nil, nil }
func (r *fakeOrderCounter) List(limit, offset int) ([]*entity.Order, error) { return nil, nil }
func (r *fakeOrderCounter) UpdateStatus(id int64, status string) error     { return nil }
func (r *fakeOrderCounter) Delete(id int64) error                          { return nil }
func (r *fakeOrderCounter) CountByCustomer(customerID int64) (int, error) {
	return r.counts[customerID], nil
}

func newUserUC() (*usecase.UserUseCase, *fakeUserRepo, *fakeOrderCounter) {
	userRepo := newFakeUserRepo()
	orderRepo := &fakeOrderCounter{counts: make(map[int64]int)}
	return usecase.NewUserUseCase(userRepo, orderRepo), userRepo, orderRepo
}

func TestUserCreate_HasheaPasswordYRolPorDefecto(t *testing.T) {
	uc, repo, _ := newUserUC()

	out, err := uc.Create(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.Role, "sin rol explícito el usuario es cliente")

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestUserCreate_EmailDuplicadoSinDistinguirMayusculas(t *testing.T) {
	uc, _, _ := newUserUC()

	_, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "x1234567"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{Name: "Otra", Email: "ANA@Example.COM", Password: "y1234567"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	uc, _, _ := newUserUC()

	_, err := uc.Create(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@example.com", Password: "x1234567", Role: "gerente",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_EmailOcupadoPorOtro(t *testing.T) {
	uc, _, _ := newUserUC()

	ana, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "x1234567"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUserRequest{Name: "Luis", Email: "luis@example.com", Password: "x1234567"})
	require.NoError(t, err)

	email := "luis@example.com"
	_, err = uc.Update(ana.ID, dto.UpdateUserRequest{Email: &email})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// Reutilizar el propio email no es conflicto
	own := "ana@example.com"
	out, err := uc.Update(ana.ID, dto.UpdateUserRequest{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)
}

func TestUserDelete_ConPedidosAsociados(t *testing.T) {
	uc, _, orderRepo := newUserUC()

	ana, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "x1234567"})
	require.NoError(t, err)
	orderRepo.counts[ana.ID] = 2

	err = uc.Delete(ana.ID)
	require.ErrorIs(t, err, domain.ErrConflict, "un usuario con pedidos no puede eliminarse")
}

func TestUserDelete_SinPedidos(t *testing.T) {
	uc, repo, _ := newUserUC()

	ana, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "x1234567"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ana.ID))
	assert.NotContains(t, repo.users, ana.ID)
}

func TestUserDelete_Inexistente(t *testing.T) {
	uc, _, _ := newUserUC()
	err := uc.Delete(99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByRole_SoloClientes(t *testing.T) {
	uc, _, _ := newUserUC()

	_, err := uc.Create(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "x1234567", Role: entity.RoleCliente})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUserRequest{Name: "Root", Email: "root@example.com", Password: "x1234567", Role: entity.RoleAdmin})
	require.NoError(t, err)

	out, err := uc.ListByRole(entity.RoleCliente)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ana", out[0].Name)
}
