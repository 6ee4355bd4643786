package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/domain"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	"github.com/dukastock/duka-stock-api/internal/domain/repository"
	"github.com/dukastock/duka-stock-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
//
// El rol se decide en el registro y es inmutable: si existe una invitación
// pendiente para el email, el perfil nace como worker vinculado al jefe que
// invitó; si no, nace como boss con inventario propio.
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	inviteRepo  repository.InviteRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(profileRepo repository.ProfileRepository, inviteRepo repository.InviteRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{profileRepo: profileRepo, inviteRepo: inviteRepo, jwtCfg: jwtCfg}
}

// Register crea un perfil: hashea password con bcrypt, resuelve rol y vínculo
// al jefe desde las invitaciones, y persiste. Devuelve ErrEmailAlreadyExists
// si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, _ := uc.profileRepo.FindByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entity.Profile{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleBoss,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Invitación pendiente => el perfil nace como worker del jefe que invitó.
	invite, err := uc.inviteRepo.GetPendingByEmail(email)
	if err != nil {
		return nil, err
	}
	if invite != nil {
		profile.Role = entity.RoleWorker
		profile.BossID = invite.BossID
	}

	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	if invite != nil {
		if err := uc.inviteRepo.MarkAccepted(invite.ID); err != nil {
			return nil, err
		}
	}
	return toProfileResponse(profile), nil
}

// Login verifica email/password, genera JWT y retorna token + perfil.
// El claim owner_id es el jefe dueño del inventario visible: el propio
// usuario si es boss, su jefe vinculado si es worker.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	profile, err := uc.profileRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.InventoryOwnerID(), profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *toProfileResponse(profile),
	}, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Role:      p.Role,
		BossID:    p.BossID,
		CreatedAt: p.CreatedAt,
	}
}
