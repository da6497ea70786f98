package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpanel/internal/application/auth"
	"stockpanel/internal/application/dto"
	"stockpanel/internal/domain"
	"stockpanel/internal/domain/entity"
)

// fakeUserRepo almacena usuarios en memoria indexados por email e ID.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "stockpanel-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register / CreateUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_GuardaHashNoPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la contraseña nunca se guarda en plano")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "otra456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_DerivaNombreCompleto(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	out, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:     "juan@example.com",
		Password:  "secreto123",
		FirstName: "Juan",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	assert.Equal(t, "Juan", out.FirstName)
	assert.Equal(t, "Pérez", out.LastName)
	assert.Equal(t, "Juan Pérez", out.FullName, "el nombre completo se deriva al alta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login / Me
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@example.com", out.User.Email)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)

	// Contraseña errónea y usuario inexistente devuelven el mismo error:
	// no se filtra cuál de los dos falló.
	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@example.com", Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Me(context.Background(), "id-fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMe_DevuelveIdentidad(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	created, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:     "juan@example.com",
		Password:  "secreto123",
		FirstName: "Juan",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	out, err := uc.Me(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, out.Email)
	assert.Equal(t, "Juan Pérez", out.FullName)
}
