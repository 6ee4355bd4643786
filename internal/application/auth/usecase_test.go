package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukastock/duka-stock-api/internal/application/auth"
	"github.com/dukastock/duka-stock-api/internal/application/dto"
	"github.com/dukastock/duka-stock-api/internal/domain"
	"github.com/dukastock/duka-stock-api/internal/domain/entity"
	pkgjwt "github.com/dukastock/duka-stock-api/pkg/jwt"
)

// fakeProfileRepo implementa repository.ProfileRepository en memoria.
type fakeProfileRepo struct {
	byEmail map[string]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byEmail: map[string]*entity.Profile{}}
}

func (r *fakeProfileRepo) Create(p *entity.Profile) error {
	if _, ok := r.byEmail[p.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[p.Email] = p
	return nil
}

func (r *fakeProfileRepo) GetByID(id string) (*entity.Profile, error) {
	for _, p := range r.byEmail {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindByEmail(email string) (*entity.Profile, error) {
	p, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return p, nil
}

// fakeInviteRepo implementa repository.InviteRepository en memoria.
type fakeInviteRepo struct {
	invites map[string]*entity.Invite
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{invites: map[string]*entity.Invite{}}
}

func (r *fakeInviteRepo) Create(in *entity.Invite) error { r.invites[in.ID] = in; return nil }

func (r *fakeInviteRepo) GetPendingByEmail(email string) (*entity.Invite, error) {
	for _, in := range r.invites {
		if in.WorkerEmail == email && in.Status == entity.InviteStatusPending {
			return in, nil
		}
	}
	return nil, nil
}

func (r *fakeInviteRepo) GetByBossAndEmail(bossID, email string) (*entity.Invite, error) {
	for _, in := range r.invites {
		if in.BossID == bossID && in.WorkerEmail == email {
			return in, nil
		}
	}
	return nil, nil
}

func (r *fakeInviteRepo) ListByBoss(bossID string) ([]*entity.Invite, error) {
	var list []*entity.Invite
	for _, in := range r.invites {
		if in.BossID == bossID {
			list = append(list, in)
		}
	}
	return list, nil
}

func (r *fakeInviteRepo) MarkAccepted(id string) error {
	if in, ok := r.invites[id]; ok {
		in.Status = entity.InviteStatusAccepted
	}
	return nil
}

func newAuthFixture() (*auth.AuthUseCase, *fakeProfileRepo, *fakeInviteRepo) {
	profileRepo := newFakeProfileRepo()
	inviteRepo := newFakeInviteRepo()
	uc := auth.NewAuthUseCase(profileRepo, inviteRepo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "duka-stock-test",
	})
	return uc, profileRepo, inviteRepo
}

func TestRegister_SinInvitacionNaceComoBoss(t *testing.T) {
	uc, _, _ := newAuthFixture()

	profile, err := uc.Register(dto.RegisterRequest{Email: "Jefa@Tienda.com", Password: "secreta123"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleBoss, profile.Role)
	assert.Empty(t, profile.BossID)
	assert.Equal(t, "jefa@tienda.com", profile.Email, "el email debe normalizarse a minúsculas")
}

func TestRegister_ConInvitacionPendienteNaceComoWorker(t *testing.T) {
	uc, _, inviteRepo := newAuthFixture()
	inviteRepo.invites["inv-1"] = &entity.Invite{
		ID:          "inv-1",
		BossID:      "boss-1",
		WorkerEmail: "worker@tienda.com",
		Status:      entity.InviteStatusPending,
		CreatedAt:   time.Now(),
	}

	profile, err := uc.Register(dto.RegisterRequest{Email: "worker@tienda.com", Password: "secreta123"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleWorker, profile.Role)
	assert.Equal(t, "boss-1", profile.BossID)
	assert.Equal(t, entity.InviteStatusAccepted, inviteRepo.invites["inv-1"].Status,
		"la invitación debe quedar aceptada tras el registro")
}

func TestRegister_EmailDuplicadoEsError(t *testing.T) {
	uc, _, _ := newAuthFixture()
	_, err := uc.Register(dto.RegisterRequest{Email: "jefa@tienda.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "jefa@tienda.com", Password: "otraclave99"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenLlevaOwnerDelInventario(t *testing.T) {
	uc, _, inviteRepo := newAuthFixture()

	boss, err := uc.Register(dto.RegisterRequest{Email: "jefa@tienda.com", Password: "secreta123"})
	require.NoError(t, err)

	inviteRepo.invites["inv-1"] = &entity.Invite{
		ID: "inv-1", BossID: boss.ID, WorkerEmail: "worker@tienda.com",
		Status: entity.InviteStatusPending,
	}
	_, err = uc.Register(dto.RegisterRequest{Email: "worker@tienda.com", Password: "secreta123"})
	require.NoError(t, err)

	// El boss ve su propio inventario.
	out, err := uc.Login(dto.LoginRequest{Email: "jefa@tienda.com", Password: "secreta123"})
	require.NoError(t, err)
	_, ownerID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, boss.ID, ownerID)
	assert.Equal(t, entity.RoleBoss, role)

	// El worker ve el inventario de su jefe.
	out, err = uc.Login(dto.LoginRequest{Email: "worker@tienda.com", Password: "secreta123"})
	require.NoError(t, err)
	_, ownerID, role, err = pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, boss.ID, ownerID, "el owner_id del worker debe ser su jefe")
	assert.Equal(t, entity.RoleWorker, role)
}

func TestLogin_PasswordIncorrectaEsUnauthorized(t *testing.T) {
	uc, _, _ := newAuthFixture()
	_, err := uc.Register(dto.RegisterRequest{Email: "jefa@tienda.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "jefa@tienda.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@tienda.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
