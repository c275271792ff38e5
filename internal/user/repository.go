// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/talentbook/internal/core"
)

type Repository interface {
	Create(
		ctx context.Context,
		user *User,
		talent *TalentProfile,
		mediaOwner *MediaOwnerProfile,
	) error
	GetByID(ctx context.Context, id int64) (*Profile, error)
	List(ctx context.Context, params ListUsersParams) ([]Profile, int, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const profileColumns = `
		u.id, u.email, u.user_type, u.first_name, u.last_name,
		u.phone, u.bio, u.location, u.created_at,
		CASE
			WHEN u.user_type = 'talent' THEN tp.stage_name
			WHEN u.user_type = 'media_owner' THEN mop.company_name
			ELSE CONCAT(u.first_name, ' ', u.last_name)
		END AS display_name,
		tp.stage_name, tp.talent_type, tp.hourly_rate,
		mop.company_name, mop.media_type`

const profileJoins = `
		FROM users u
		LEFT JOIN talent_profiles tp ON u.id = tp.user_id
		LEFT JOIN media_owner_profiles mop ON u.id = mop.user_id`

func (r *repository) Create(
	ctx context.Context,
	user *User,
	talent *TalentProfile,
	mediaOwner *MediaOwnerProfile,
) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}

		if talent != nil {
			talent.UserID = user.ID
			if err := insertTalentProfile(ctx, tx, talent); err != nil {
				return err
			}
		}

		if mediaOwner != nil {
			mediaOwner.UserID = user.ID
			if err := insertMediaOwnerProfile(ctx, tx, mediaOwner); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func insertUser(ctx context.Context, db core.DBTX, user *User) error {
	query := `
		INSERT INTO users (
			email, password_hash, user_type, first_name, last_name,
			phone, bio, location
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	row := db.QueryRowxContext(ctx, query,
		user.Email,
		user.PasswordHash,
		user.UserType,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Bio,
		user.Location,
	)
	return row.Scan(&user.ID, &user.CreatedAt)
}

func insertTalentProfile(
	ctx context.Context,
	db core.DBTX,
	p *TalentProfile,
) error {
	query := `
		INSERT INTO talent_profiles (user_id, stage_name, talent_type, hourly_rate)
		VALUES ($1, $2, $3, $4)`

	_, err := db.ExecContext(ctx, query,
		p.UserID,
		p.StageName,
		p.TalentType,
		p.HourlyRate,
	)
	return err
}

func insertMediaOwnerProfile(
	ctx context.Context,
	db core.DBTX,
	p *MediaOwnerProfile,
) error {
	query := `
		INSERT INTO media_owner_profiles (user_id, company_name, media_type)
		VALUES ($1, $2, $3)`

	_, err := db.ExecContext(ctx, query, p.UserID, p.CompanyName, p.MediaType)
	return err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Profile, error) {
	query := "SELECT" + profileColumns + profileJoins + `
		WHERE u.id = $1`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &p, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]Profile, int, error) {
	params.Normalize()

	var conditions []string
	var args []any
	argIdx := 1

	if params.Type != "" {
		conditions = append(conditions, fmt.Sprintf("u.user_type = $%d", argIdx))
		args = append(args, params.Type)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM users u " + whereClause
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s
		%s
		ORDER BY u.created_at DESC, u.id DESC
		LIMIT $%d OFFSET $%d`,
		profileColumns, profileJoins, whereClause, argIdx, argIdx+1)

	args = append(args, params.Limit, params.Offset())

	profiles := []Profile{}
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return profiles, total, nil
}
