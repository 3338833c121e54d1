package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/fleencorp/stream-service/internal/config"
	"github.com/fleencorp/stream-service/internal/model"
)

type txKey string

const keyTx = txKey("pg_tx")

type Repository struct {
	connection *sqlx.DB
}

type queryExecutor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// WithTx opens a transaction, stores it in the context and runs cb. The
// transaction commits when cb returns nil and rolls back otherwise.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	txx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyTx, txx)); err != nil {
		_ = txx.Rollback()
		return err
	}

	if err := txx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// Chk returns the transaction bound to the context if there is one,
// otherwise the plain connection.
func (r *Repository) Chk(ctx context.Context) queryExecutor {
	if txx, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return txx
	}

	return r.connection
}

var streamColumns = []string{
	"id",
	"title",
	"description",
	"kind",
	"visibility",
	"status",
	"starts_at",
	"ends_at",
	"timezone",
	"location",
	"owner_id",
	"space_id",
	"external_event_id",
	"external_link",
	"total_attendees",
	"created_at",
	"updated_at",
}

func (r *Repository) GetStreamByID(ctx context.Context, streamID string) (*model.Stream, error) {
	query, args, err := sq.Select(streamColumns...).
		From("streams").
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stream model.Stream
	err = r.Chk(ctx).GetContext(ctx, &stream, query, args...)
	if err != nil {
		return nil, err
	}

	return &stream, nil
}

func (r *Repository) CreateStream(ctx context.Context, stream *model.Stream) error {
	query, args, err := sq.Insert("streams").
		Columns("id", "title", "description", "kind", "visibility", "status",
			"starts_at", "ends_at", "timezone", "location", "owner_id", "space_id").
		Values(stream.ID, stream.Title, stream.Description, stream.Kind, stream.Visibility, stream.Status,
			stream.StartsAt, stream.EndsAt, stream.Timezone, stream.Location, stream.OwnerID, stream.SpaceID).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create stream: %v", err)
	}

	return nil
}

func (r *Repository) UpdateStreamStatus(ctx context.Context, streamID, status string) error {
	query, args, err := sq.Update("streams").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateStreamSchedule(ctx context.Context, streamID string, startsAt, endsAt time.Time, timezone string) error {
	query, args, err := sq.Update("streams").
		Set("starts_at", startsAt).
		Set("ends_at", endsAt).
		Set("timezone", timezone).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateStreamInfo(ctx context.Context, streamID, title, description string, location *string) error {
	query, args, err := sq.Update("streams").
		Set("title", title).
		Set("description", description).
		Set("location", location).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateStreamVisibility(ctx context.Context, streamID, visibility string) error {
	query, args, err := sq.Update("streams").
		Set("visibility", visibility).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) SetStreamExternalRef(ctx context.Context, streamID, externalEventID, externalLink string) error {
	query, args, err := sq.Update("streams").
		Set("external_event_id", externalEventID).
		Set("external_link", externalLink).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

// CreateAttendee inserts the attendee unless a row for the same
// (stream_id, member_id) pair already exists. The unique index on that pair
// makes concurrent first-join attempts collapse into a single row; callers
// refetch when the insert reports no affected rows.
func (r *Repository) CreateAttendee(ctx context.Context, attendee *model.Attendee) (bool, error) {
	query, args, err := sq.Insert("attendees").
		Columns("id", "stream_id", "member_id", "request_status", "attending", "member_comment").
		Values(attendee.ID, attendee.StreamID, attendee.MemberID, attendee.RequestStatus, attendee.Attending, attendee.MemberComment).
		Suffix("ON CONFLICT (stream_id, member_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to create attendee: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}

	return affected == 1, nil
}

var attendeeColumns = []string{
	"id",
	"stream_id",
	"member_id",
	"request_status",
	"attending",
	"member_comment",
	"organizer_comment",
	"created_at",
	"updated_at",
}

func (r *Repository) GetAttendee(ctx context.Context, streamID, memberID string) (*model.Attendee, error) {
	query, args, err := sq.Select(attendeeColumns...).
		From("attendees").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"member_id": memberID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var attendee model.Attendee
	err = r.Chk(ctx).GetContext(ctx, &attendee, query, args...)
	if err != nil {
		return nil, err
	}

	return &attendee, nil
}

func (r *Repository) UpdateAttendeeDecision(ctx context.Context, attendeeID, status string, organizerComment *string) error {
	query, args, err := sq.Update("attendees").
		Set("request_status", status).
		Set("organizer_comment", organizerComment).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": attendeeID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) SetAttendeeAttending(ctx context.Context, attendeeID string, attending bool) error {
	query, args, err := sq.Update("attendees").
		Set("attending", attending).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": attendeeID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

// ApprovePendingAttendees flips every pending attendee of the stream to
// approved in one statement and returns the affected rows.
func (r *Repository) ApprovePendingAttendees(ctx context.Context, streamID string) (model.AttendeeList, error) {
	query, args, err := sq.Update("attendees").
		Set("request_status", model.ApprovedRequestStatus).
		Set("updated_at", time.Now()).
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"request_status": model.PendingRequestStatus},
		}).
		Suffix("RETURNING id, stream_id, member_id, request_status, attending, member_comment, organizer_comment, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var attendees model.AttendeeList
	err = r.Chk(ctx).SelectContext(ctx, &attendees, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to approve pending attendees: %v", err)
	}

	return attendees, nil
}

func (r *Repository) CountApprovedAttending(ctx context.Context, streamID string) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("attendees").
		Where(sq.And{
			sq.Eq{"stream_id": streamID},
			sq.Eq{"request_status": model.ApprovedRequestStatus},
			sq.Eq{"attending": true},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendees: %v", err)
	}

	return count, nil
}

// Counter updates happen at the database layer so concurrent joins and
// leaves cannot lose increments.
func (r *Repository) IncrementTotalAttendees(ctx context.Context, streamID string) error {
	query, args, err := sq.Update("streams").
		Set("total_attendees", sq.Expr("total_attendees + 1")).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) AddToTotalAttendees(ctx context.Context, streamID string, delta int64) error {
	query, args, err := sq.Update("streams").
		Set("total_attendees", sq.Expr("GREATEST(total_attendees + ?, 0)", delta)).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) DecrementTotalAttendees(ctx context.Context, streamID string) error {
	query, args, err := sq.Update("streams").
		Set("total_attendees", sq.Expr("GREATEST(total_attendees - 1, 0)")).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) SaveNotification(ctx context.Context, notification *model.Notification) error {
	query, args, err := sq.Insert("notifications").
		Columns("id", "kind", "stream_id", "attendee_id", "receiver_id", "requester_id", "comment").
		Values(notification.ID, notification.Kind, notification.StreamID, notification.AttendeeID,
			notification.ReceiverID, notification.RequesterID, notification.Comment).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save notification: %v", err)
	}

	return nil
}

func (r *Repository) UpsertMember(ctx context.Context, member *model.Member) error {
	query, args, err := sq.Insert("members").
		Columns("id", "email", "nickname", "avatar_url").
		Values(member.ID, member.Email, member.Nickname, member.AvatarURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

var memberColumns = []string{
	"id",
	"email",
	"nickname",
	"avatar_url",
}

func (r *Repository) GetMemberByID(ctx context.Context, memberID string) (*model.Member, error) {
	query, args, err := sq.Select(memberColumns...).
		From("members").
		Where(sq.Eq{"id": memberID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var member model.Member
	err = r.Chk(ctx).GetContext(ctx, &member, query, args...)
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (r *Repository) GetMemberEmails(ctx context.Context, memberIDs []uuid.UUID) ([]string, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}

	query, args, err := sq.Select("DISTINCT email").
		From("members").
		Where(sq.Eq{"id": memberIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var emails []string
	err = r.Chk(ctx).SelectContext(ctx, &emails, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get member emails: %v", err)
	}

	return emails, nil
}
