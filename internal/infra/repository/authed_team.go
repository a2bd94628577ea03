package repository

import (
	"context"
	"errors"
	"time"

	"snackbot/internal/infra"

	"github.com/jackc/pgx/v5"
)

// AuthedTeam is one installed workspace's OAuth record.
type AuthedTeam struct {
	TeamID      string
	TeamName    string
	UserID      string
	AccessToken string
	InstalledAt time.Time
}

type AuthedTeamRepository struct {
	db DBTX
}

func NewAuthedTeamRepository(db DBTX) *AuthedTeamRepository {
	return &AuthedTeamRepository{db: db}
}

// Upsert replaces the team's record on re-install, same as the original
// find-or-create behavior.
func (r *AuthedTeamRepository) Upsert(ctx context.Context, team AuthedTeam) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO authed_teams (team_id, team_name, user_id, access_token, installed_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (team_id) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			user_id = EXCLUDED.user_id,
			access_token = EXCLUDED.access_token,
			installed_at = EXCLUDED.installed_at`,
		team.TeamID, team.TeamName, team.UserID, team.AccessToken,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert authed team", err)
	}
	return nil
}

func (r *AuthedTeamRepository) FindByTeamID(ctx context.Context, teamID string) (*AuthedTeam, error) {
	var team AuthedTeam
	err := r.db.QueryRow(ctx, `
		SELECT team_id, team_name, user_id, access_token, installed_at
		FROM authed_teams
		WHERE team_id = $1`, teamID,
	).Scan(&team.TeamID, &team.TeamName, &team.UserID, &team.AccessToken, &team.InstalledAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find authed team", err)
	}
	return &team, nil
}
