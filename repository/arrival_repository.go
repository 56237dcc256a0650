package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"revobot/domain/entities"

	"github.com/jackc/pgx/v5"
)

const arrivalColumns = `a.id, a.guild_id, a.display_name, a.event_date, a.profile, a.reminder_sent, a.reminder_sent_at, a.created_at`

// arrivalRepository implements the ArrivalRepository interface
type arrivalRepository struct {
	q       Queryable
	guildID int64
}

// newArrivalRepository creates a new arrival repository with a transaction
func newArrivalRepository(tx Queryable, guildID int64) *arrivalRepository {
	return &arrivalRepository{q: tx, guildID: guildID}
}

// NewArrivalRepositoryScoped creates a new arrival repository scoped to a guild
func NewArrivalRepositoryScoped(q Queryable, guildID int64) *arrivalRepository {
	return &arrivalRepository{q: q, guildID: guildID}
}

func scanArrival(row pgx.Row, extra ...any) (*entities.Arrival, error) {
	var a entities.Arrival
	dest := append([]any{
		&a.ID,
		&a.GuildID,
		&a.DisplayName,
		&a.EventDate,
		&a.Profile,
		&a.ReminderSent,
		&a.ReminderSentAt,
		&a.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new arrival and fills in its generated fields
func (r *arrivalRepository) Create(ctx context.Context, arrival *entities.Arrival) error {
	query := `
		INSERT INTO arrivals (guild_id, display_name, event_date, profile)
		VALUES ($1, $2, $3, $4)
		RETURNING id, guild_id, reminder_sent, created_at
	`

	err := r.q.QueryRow(ctx, query,
		r.guildID,
		arrival.DisplayName,
		arrival.EventDate,
		string(arrival.Profile),
	).Scan(&arrival.ID, &arrival.GuildID, &arrival.ReminderSent, &arrival.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create arrival: %w", err)
	}

	return nil
}

// GetByID retrieves an arrival in the repository's guild
func (r *arrivalRepository) GetByID(ctx context.Context, id int64) (*entities.Arrival, error) {
	query := `SELECT ` + arrivalColumns + ` FROM arrivals a WHERE a.id = $1 AND a.guild_id = $2`

	arrival, err := scanArrival(r.q.QueryRow(ctx, query, id, r.guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get arrival %d: %w", id, err)
	}

	return arrival, nil
}

// GetDue returns unsent arrivals due as of asOf in every guild with an arrival channel
func (r *arrivalRepository) GetDue(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error) {
	query := `
		SELECT ` + arrivalColumns + `, s.arrival_channel_id, s.notifier_role_id
		FROM arrivals a
		JOIN guild_settings s ON s.guild_id = a.guild_id
		WHERE NOT a.reminder_sent
		  AND s.arrival_channel_id IS NOT NULL
		  AND a.event_date + $2::int <= $1::date
		ORDER BY a.event_date, a.id
	`
	return r.queryDue(ctx, query, asOf, entities.ReminderDelayDays)
}

// GetDueInGuild returns unsent arrivals due as of asOf in the repository's guild
func (r *arrivalRepository) GetDueInGuild(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error) {
	query := `
		SELECT ` + arrivalColumns + `, s.arrival_channel_id, s.notifier_role_id
		FROM arrivals a
		JOIN guild_settings s ON s.guild_id = a.guild_id
		WHERE a.guild_id = $3
		  AND NOT a.reminder_sent
		  AND s.arrival_channel_id IS NOT NULL
		  AND a.event_date + $2::int <= $1::date
		ORDER BY a.event_date, a.id
	`
	return r.queryDue(ctx, query, asOf, entities.ReminderDelayDays, r.guildID)
}

func (r *arrivalRepository) queryDue(ctx context.Context, query string, args ...any) ([]*entities.DueArrival, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query due arrivals: %w", err)
	}
	defer rows.Close()

	var due []*entities.DueArrival
	for rows.Next() {
		var channelID int64
		var notifierRoleID *int64
		arrival, err := scanArrival(rows, &channelID, &notifierRoleID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due arrival: %w", err)
		}
		due = append(due, &entities.DueArrival{
			Arrival:        *arrival,
			ChannelID:      channelID,
			NotifierRoleID: notifierRoleID,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating due arrivals: %w", err)
	}

	return due, nil
}

// MarkReminderSent flags the reminder as sent; false means it was already sent
func (r *arrivalRepository) MarkReminderSent(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE arrivals
		SET reminder_sent = TRUE, reminder_sent_at = NOW()
		WHERE id = $1 AND NOT reminder_sent
	`

	result, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark arrival %d as sent: %w", id, err)
	}

	return result.RowsAffected() == 1, nil
}
