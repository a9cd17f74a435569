package store

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/roya-gateway/internal/adapter"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/models"
)

// userRepository is the remote data API implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of outbound calls.
type userRepository struct {
	data   adapter.DataAdapter
	table  string
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] on top of the data adapter.
func NewUserRepository(data adapter.DataAdapter, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		data:   data,
		table:  models.User{}.TableName(),
		logger: logger,
	}
}

// FindUserByIdentifier implements [UserRepository].
//
// Emails are matched case-insensitively with ilike (LIKE metacharacters
// escaped). PostgREST rewrites '*' to '%' inside like patterns, so an email
// containing '*' is matched with eq on its lowercased form instead. Phone
// numbers and usernames use eq.
func (r *userRepository) FindUserByIdentifier(ctx context.Context, identifier models.Identifier) (models.User, error) {
	q := adapter.NewQuery().Select(models.UserColumns).Limit(1)

	column := identifier.Kind.Column()
	switch {
	case identifier.Kind == models.IdentifierEmail && adapter.HasLikeWildcardAlias(identifier.Value):
		q.Eq(column, strings.ToLower(identifier.Value))
	case identifier.Kind == models.IdentifierEmail:
		q.ILike(column, identifier.Value)
	default:
		q.Eq(column, identifier.Value)
	}

	return r.findOne(ctx, q, "*userRepository.FindUserByIdentifier")
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	q := adapter.NewQuery().
		Select(models.UserColumns).
		Eq("id", strconv.FormatInt(id, 10)).
		Limit(1)

	return r.findOne(ctx, q, "*userRepository.FindUserByID")
}

// FindPublicUserByID implements [UserRepository].
func (r *userRepository) FindPublicUserByID(ctx context.Context, id int64) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	q := adapter.NewQuery().
		Select(models.PublicUserColumns).
		Eq("id", strconv.FormatInt(id, 10)).
		Limit(1)

	var rows []models.PublicUser
	if err := r.data.Select(ctx, r.table, q, &rows); err != nil {
		log.Err(err).Str("func", "*userRepository.FindPublicUserByID").Msg("error selecting user")
		return models.PublicUser{}, err
	}

	if len(rows) == 0 {
		return models.PublicUser{}, ErrNoUserWasFound
	}

	return rows[0], nil
}

// InsertUser implements [UserRepository].
//
// A unique violation reported by the remote schema is returned unchanged
// (it matches [adapter.ErrDuplicate]) and logged as a duplicate.
func (r *userRepository) InsertUser(ctx context.Context, user models.NewUser) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	q := adapter.NewQuery().Select(models.PublicUserColumns)

	var rows []models.PublicUser
	if err := r.data.Insert(ctx, r.table, q, user, &rows); err != nil {
		if errors.Is(err, adapter.ErrDuplicate) {
			log.Warn().Str("func", "*userRepository.InsertUser").Str("username", user.Username).Msg("duplicate user")
		} else {
			log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error inserting user")
		}
		return models.PublicUser{}, err
	}

	if len(rows) == 0 {
		return models.PublicUser{}, ErrUserNotReturned
	}

	return rows[0], nil
}

// UpdateUser implements [UserRepository].
func (r *userRepository) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) error {
	log := logger.FromContext(ctx)

	q := adapter.NewQuery().Eq("id", strconv.FormatInt(id, 10))

	if err := r.data.Update(ctx, r.table, q, patch, nil); err != nil {
		if errors.Is(err, adapter.ErrDuplicate) {
			log.Warn().Str("func", "*userRepository.UpdateUser").Int64("user_id", id).Msg("duplicate user")
		} else {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		}
		return err
	}

	return nil
}

// DeleteUser implements [UserRepository].
func (r *userRepository) DeleteUser(ctx context.Context, id int64) ([]models.PublicUser, error) {
	log := logger.FromContext(ctx)

	q := adapter.NewQuery().
		Select(models.PublicUserColumns).
		Eq("id", strconv.FormatInt(id, 10))

	var rows []models.PublicUser
	if err := r.data.Delete(ctx, r.table, q, &rows); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return nil, err
	}

	return rows, nil
}

func (r *userRepository) findOne(ctx context.Context, q *adapter.Query, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	var rows []models.User
	if err := r.data.Select(ctx, r.table, q, &rows); err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, err
	}

	if len(rows) == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return rows[0], nil
}
