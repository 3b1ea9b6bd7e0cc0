package authenticating

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: "test-secret-key",
		Auth: config.Auth{
			SeedAdminUsername: "admin",
			TokenTTLHours:     24,
		},
	}
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func sha256Hex(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

func TestLoginUser_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: testConfig()}

	employeeID := 7
	user := &domain.User{
		ID:           1,
		Username:     "maria",
		PasswordHash: bcryptHash(t, "senha123"),
		RoleID:       domain.RoleVendor,
		EmployeeID:   &employeeID,
		Active:       true,
	}

	mockUserRepo.EXPECT().GetUserByUsername("maria").Return(user, nil)
	mockUserRepo.EXPECT().UpdateLastLogin(1, gomock.Any()).Return(nil)

	token, err := service.LoginUser("Maria", "senha123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "maria", claims.UserName)
	assert.Equal(t, domain.RoleVendor, claims.UserRoleID)
	require.NotNil(t, claims.UserEmployeeID)
	assert.Equal(t, employeeID, *claims.UserEmployeeID)
}

func TestLoginUser_CredenciaisInvalidas(t *testing.T) {
	tests := []struct {
		name  string
		setup func(mockUserRepo *mocks.MockUserRepository)
	}{
		{
			name: "usuário inexistente",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().GetUserByUsername("fulano").Return(nil, nil)
			},
		},
		{
			name: "senha incorreta",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().GetUserByUsername("fulano").Return(&domain.User{
					ID:           2,
					Username:     "fulano",
					PasswordHash: "$2a$04$invalidhashinvalidhashinvalidhashinvalidhashinvalidha",
					Active:       true,
				}, nil)
			},
		},
		{
			name: "conta desativada",
			setup: func(mockUserRepo *mocks.MockUserRepository) {
				mockUserRepo.EXPECT().GetUserByUsername("fulano").Return(&domain.User{
					ID:           3,
					Username:     "fulano",
					PasswordHash: mustBcrypt("qualquer"),
					Active:       false,
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(mockUserRepo)

			service := &Service{userRepo: mockUserRepo, cfg: testConfig()}

			// A mesma falha para os três casos: nada na resposta revela
			// se o username existe ou se a conta está ativa
			token, err := service.LoginUser("fulano", "qualquer")
			assert.Empty(t, token)
			assert.True(t, errors.Is(err, ErrInvalidCredentials))
		})
	}
}

func TestLoginUser_CamposObrigatorios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{userRepo: mocks.NewMockUserRepository(ctrl), cfg: testConfig()}

	_, err := service.LoginUser("", "senha")
	assert.True(t, errors.Is(err, ErrMissingRequiredData))

	_, err = service.LoginUser("maria", "")
	assert.True(t, errors.Is(err, ErrMissingRequiredData))
}

// Contas migradas guardam bcrypt do digest SHA-256 da senha. O primeiro
// login bem-sucedido troca o hash pelo bcrypt puro da senha.
func TestLoginUser_AtualizaHashLegado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockUserRepo, cfg: testConfig()}

	user := &domain.User{
		ID:           5,
		Username:     "legado",
		PasswordHash: bcryptHash(t, sha256Hex("senha-antiga")),
		LegacySHA256: true,
		RoleID:       domain.RoleSupervisor,
		Active:       true,
	}

	mockUserRepo.EXPECT().GetUserByUsername("legado").Return(user, nil)
	mockUserRepo.EXPECT().
		UpdatePasswordHash(5, gomock.Any(), false).
		DoAndReturn(func(_ int, newHash string, _ bool) error {
			// O novo hash precisa validar a senha em claro
			return bcrypt.CompareHashAndPassword([]byte(newHash), []byte("senha-antiga"))
		})
	mockUserRepo.EXPECT().UpdateLastLogin(5, gomock.Any()).Return(nil)

	token, err := service.LoginUser("legado", "senha-antiga")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken_Expirado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	service := &Service{userRepo: mocks.NewMockUserRepository(ctrl), cfg: cfg}

	claims := domain.Claims{
		UserID:   9,
		UserName: "maria",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_AssinaturaErrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	service := &Service{userRepo: mocks.NewMockUserRepository(ctrl), cfg: cfg}

	user := &domain.User{ID: 9, Username: "maria", RoleID: domain.RoleAdmin}
	token, err := generateJWT(user, "outra-chave", 1)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func mustBcrypt(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
