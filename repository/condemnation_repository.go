package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"revobot/domain/entities"

	"github.com/jackc/pgx/v5"
)

const condemnationColumns = `c.id, c.guild_id, c.display_name, c.event_date, c.restore_role_id, c.restore_role_label, c.reminder_sent, c.reminder_sent_at, c.created_at`

// condemnationRepository implements the CondemnationRepository interface
type condemnationRepository struct {
	q       Queryable
	guildID int64
}

// newCondemnationRepository creates a new condemnation repository with a transaction
func newCondemnationRepository(tx Queryable, guildID int64) *condemnationRepository {
	return &condemnationRepository{q: tx, guildID: guildID}
}

// NewCondemnationRepositoryScoped creates a new condemnation repository scoped to a guild
func NewCondemnationRepositoryScoped(q Queryable, guildID int64) *condemnationRepository {
	return &condemnationRepository{q: q, guildID: guildID}
}

func scanCondemnation(row pgx.Row, extra ...any) (*entities.Condemnation, error) {
	var c entities.Condemnation
	dest := append([]any{
		&c.ID,
		&c.GuildID,
		&c.DisplayName,
		&c.EventDate,
		&c.RestoreRoleID,
		&c.RestoreRoleLabel,
		&c.ReminderSent,
		&c.ReminderSentAt,
		&c.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new condemnation and fills in its generated fields
func (r *condemnationRepository) Create(ctx context.Context, condemnation *entities.Condemnation) error {
	query := `
		INSERT INTO condemnations (guild_id, display_name, event_date, restore_role_id, restore_role_label)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, guild_id, reminder_sent, created_at
	`

	err := r.q.QueryRow(ctx, query,
		r.guildID,
		condemnation.DisplayName,
		condemnation.EventDate,
		condemnation.RestoreRoleID,
		condemnation.RestoreRoleLabel,
	).Scan(&condemnation.ID, &condemnation.GuildID, &condemnation.ReminderSent, &condemnation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create condemnation: %w", err)
	}

	return nil
}

// GetByID retrieves a condemnation in the repository's guild
func (r *condemnationRepository) GetByID(ctx context.Context, id int64) (*entities.Condemnation, error) {
	query := `SELECT ` + condemnationColumns + ` FROM condemnations c WHERE c.id = $1 AND c.guild_id = $2`

	condemnation, err := scanCondemnation(r.q.QueryRow(ctx, query, id, r.guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get condemnation %d: %w", id, err)
	}

	return condemnation, nil
}

// GetDue returns unsent condemnations due as of asOf in every guild with a condemnation channel
func (r *condemnationRepository) GetDue(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error) {
	query := `
		SELECT ` + condemnationColumns + `, s.condemnation_channel_id, s.notifier_role_id
		FROM condemnations c
		JOIN guild_settings s ON s.guild_id = c.guild_id
		WHERE NOT c.reminder_sent
		  AND s.condemnation_channel_id IS NOT NULL
		  AND c.event_date + $2::int <= $1::date
		ORDER BY c.event_date, c.id
	`
	return r.queryDue(ctx, query, asOf, entities.ReminderDelayDays)
}

// GetDueInGuild returns unsent condemnations due as of asOf in the repository's guild
func (r *condemnationRepository) GetDueInGuild(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error) {
	query := `
		SELECT ` + condemnationColumns + `, s.condemnation_channel_id, s.notifier_role_id
		FROM condemnations c
		JOIN guild_settings s ON s.guild_id = c.guild_id
		WHERE c.guild_id = $3
		  AND NOT c.reminder_sent
		  AND s.condemnation_channel_id IS NOT NULL
		  AND c.event_date + $2::int <= $1::date
		ORDER BY c.event_date, c.id
	`
	return r.queryDue(ctx, query, asOf, entities.ReminderDelayDays, r.guildID)
}

func (r *condemnationRepository) queryDue(ctx context.Context, query string, args ...any) ([]*entities.DueCondemnation, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query due condemnations: %w", err)
	}
	defer rows.Close()

	var due []*entities.DueCondemnation
	for rows.Next() {
		var channelID int64
		var notifierRoleID *int64
		condemnation, err := scanCondemnation(rows, &channelID, &notifierRoleID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due condemnation: %w", err)
		}
		due = append(due, &entities.DueCondemnation{
			Condemnation:   *condemnation,
			ChannelID:      channelID,
			NotifierRoleID: notifierRoleID,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating due condemnations: %w", err)
	}

	return due, nil
}

// MarkReminderSent flags the reminder as sent; false means it was already sent
func (r *condemnationRepository) MarkReminderSent(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE condemnations
		SET reminder_sent = TRUE, reminder_sent_at = NOW()
		WHERE id = $1 AND NOT reminder_sent
	`

	result, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark condemnation %d as sent: %w", id, err)
	}

	return result.RowsAffected() == 1, nil
}

// CountByDisplayName counts condemnations in the guild with a case-insensitive exact name match
func (r *condemnationRepository) CountByDisplayName(ctx context.Context, displayName string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM condemnations
		WHERE guild_id = $1 AND LOWER(display_name) = LOWER($2)
	`

	var count int64
	if err := r.q.QueryRow(ctx, query, r.guildID, displayName).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count condemnations: %w", err)
	}

	return count, nil
}
