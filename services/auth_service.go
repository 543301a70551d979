package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"github.com/Bruno-Signori/v0-site-estacionamento/repository"
	"github.com/Bruno-Signori/v0-site-estacionamento/utils"
	"golang.org/x/crypto/bcrypt"
)

// A mesma mensagem pra email inexistente e senha errada; o front traduz
// "invalid credentials" pra "Email ou senha incorretos."
var ErrCredenciaisInvalidas = errors.New("invalid credentials")

type AuthService struct {
	usuarioRepo *repository.UsuarioRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(repo *repository.UsuarioRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{usuarioRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Login(email, senha string) (string, *entity.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usuario, err := s.usuarioRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(senha)); err != nil {
		return "", nil, ErrCredenciaisInvalidas
	}

	token, err := utils.GenerateToken(usuario.ID, usuario.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, usuario, nil
}

func (s *AuthService) Perfil(userID uint) (*entity.Usuario, error) {
	return s.usuarioRepo.FindByID(userID)
}
