package authenticating

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	errorcodes "github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash mantém o custo do bcrypt constante quando o username não
// existe, para não revelar a existência da conta pelo tempo de resposta.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Authenticator interface {
	LoginUser(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(userID int) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginUser autentica por username e senha e devolve um token JWT.
// Usuário inexistente, senha incorreta e conta desativada produzem o
// mesmo ErrInvalidCredentials; o motivo real fica apenas no log.
func (s *Service) LoginUser(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	username = strings.TrimSpace(strings.ToLower(username))

	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		// Comparação contra hash fixo para igualar o custo do caminho.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		logrus.WithField("username", username).Info("Login recusado: usuário inexistente")
		return "", NewAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, "Credenciais inválidas")
	}

	if !s.verifyPassword(user, password) {
		logrus.WithField("user_id", user.ID).Info("Login recusado: senha incorreta")
		return "", NewAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, "Credenciais inválidas")
	}

	if !user.Active {
		logrus.WithField("user_id", user.ID).Info("Login recusado: conta desativada")
		return "", NewAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, "Credenciais inválidas")
	}

	// Melhor esforço: falha ao gravar last_login não derruba o login.
	if err := s.userRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		logrus.WithError(err).Warnf("Erro ao atualizar last_login do usuário %d", user.ID)
	}

	token, err := generateJWT(user, s.cfg.SecretKey, s.cfg.Auth.TokenTTLHours)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

// verifyPassword compara a senha com o hash armazenado. Contas marcadas
// com legacy_sha256 guardam bcrypt(hex(sha256(senha))); no primeiro
// login bem-sucedido o hash é trocado pelo bcrypt puro.
func (s *Service) verifyPassword(user *domain.User, password string) bool {
	candidate := password
	if user.LegacySHA256 {
		digest := sha256.Sum256([]byte(password))
		candidate = hex.EncodeToString(digest[:])
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)); err != nil {
		return false
	}

	if user.LegacySHA256 {
		if newHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
			if err := s.userRepo.UpdatePasswordHash(user.ID, string(newHash), false); err != nil {
				logrus.WithError(err).Warnf("Erro ao atualizar hash legado do usuário %d", user.ID)
			}
		}
	}

	return true
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if user != nil {
		user.PasswordHash = ""
	}
	return user, nil
}

func generateJWT(user *domain.User, secretKey string, ttlHours int) (string, error) {
	if ttlHours <= 0 {
		ttlHours = 24
	}

	claims := domain.Claims{
		UserID:         user.ID,
		UserName:       user.Username,
		UserRoleID:     user.RoleID,
		UserEmployeeID: user.EmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
