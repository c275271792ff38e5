// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/talentbook/internal/core"
)

const tracerName = "talentbook/user"

type Service struct {
	repo     Repository
	hash     func(password string) (string, error)
	onChange []func(context.Context)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, hash: core.HashPassword}
}

// OnChange registers fn to run after a user is created.
func (s *Service) OnChange(fn func(context.Context)) {
	s.onChange = append(s.onChange, fn)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	ctx, span := core.StartSpan(ctx, tracerName, "user.Create",
		attribute.String("user.type", req.UserType),
	)
	defer span.End()

	passwordHash, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		UserType:     req.UserType,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        optional(req.Phone),
		Bio:          optional(req.Bio),
		Location:     optional(req.Location),
	}

	var talent *TalentProfile
	if req.hasTalentProfile() {
		talent = &TalentProfile{
			StageName:  req.StageName,
			TalentType: req.TalentType,
			HourlyRate: req.HourlyRate,
		}
	}

	var mediaOwner *MediaOwnerProfile
	if req.hasMediaOwnerProfile() {
		mediaOwner = &MediaOwnerProfile{
			CompanyName: req.CompanyName,
			MediaType:   req.MediaType,
		}
	}

	if err := s.repo.Create(ctx, user, talent, mediaOwner); err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	for _, fn := range s.onChange {
		fn(ctx)
	}

	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]Profile, int, error) {
	params.Normalize()
	return s.repo.List(ctx, params)
}

// GetTalent loads the pricing inputs for a talent. Users of any other type
// are reported as not found.
func (s *Service) GetTalent(ctx context.Context, id int64) (*Talent, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.IsTalent() {
		return nil, fmt.Errorf(
			"get talent: user %d is %s: %w",
			id,
			p.UserType,
			core.ErrNotFound,
		)
	}

	if !p.HourlyRate.Valid || p.HourlyRate.Float64 <= 0 {
		return nil, fmt.Errorf(
			"get talent: talent %d has no hourly rate: %w",
			id,
			core.ErrNotFound,
		)
	}

	stageName := p.StageName.String
	if stageName == "" {
		stageName = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}

	return &Talent{
		ID:         p.ID,
		StageName:  stageName,
		HourlyRate: p.HourlyRate.Float64,
		Location:   p.Location.String,
	}, nil
}

func optional(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
