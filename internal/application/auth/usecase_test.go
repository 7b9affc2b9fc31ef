package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/comercio-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testBranchID = "22222222-2222-2222-2222-222222222222"
)

type fakeUserRepo struct{ users map[string]*entity.User }

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.Username] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.Username] = u; return nil }

func (r *fakeUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }

type fakeBranchRepo struct{ branches map[string]*entity.Branch }

func (r *fakeBranchRepo) Create(b *entity.Branch) error { r.branches[b.ID] = b; return nil }
func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	return r.branches[id], nil
}
func (r *fakeBranchRepo) GetByName(string) (*entity.Branch, error) { return nil, nil }
func (r *fakeBranchRepo) Update(*entity.Branch) error { return nil }
func (r *fakeBranchRepo) Delete(string) error { return nil }
func (r *fakeBranchRepo) List(int, int) ([]*entity.Branch, error) { return nil, nil }

func newUseCase(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	users := &fakeUserRepo{users: map[string]*entity.User{}}
	branches := &fakeBranchRepo{branches: map[string]*entity.Branch{
		testBranchID: {ID: testBranchID, Name: "Sucursal Centro"},
	}}
	uc := auth.NewAuthUseCase(users, branches, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "comercio-api-test",
	})
	return uc, users
}

// ─────────────────────────────────────────────
// Registro
// ─────────────────────────────────────────────

func TestRegisterUser_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	uc, users := newUseCase(t)

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "ana",
		Password: "secreta123",
		BranchID: testBranchID,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCashier, resp.Role, "sin rol explícito se asigna cashier")
	assert.True(t, resp.IsActive)
	assert.Equal(t, testBranchID, resp.BranchID)

	stored := users.users["ana"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterUser_UsernameDuplicado(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "x1234567"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "otra5678"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterUser_SucursalInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "ana", Password: "x1234567", BranchID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUser_EntradaInvalida(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_TokenContieneClaimsDelUsuario(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "ana", Password: "secreta123",
		Role: entity.RoleManager, BranchID: testBranchID,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana", resp.User.Username)

	userID, role, branchID, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleManager, role)
	assert.Equal(t, testBranchID, branchID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, users := newUseCase(t)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)
	users.users["ana"].IsActive = false

	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
