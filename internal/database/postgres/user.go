package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/logger"
)

// UserRepository implements the account repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// FindByPlatformID finds an account by a platform-specific external id
func (r *UserRepository) FindByPlatformID(ctx context.Context, platform, externalID string) (*domain.User, error) {
	query := `
		SELECT u.user_id
		FROM users u
		JOIN user_platform_links upl ON u.user_id = upl.user_id
		JOIN platforms p ON upl.platform_id = p.platform_id
		WHERE p.platform_name = $1 AND upl.external_id = $2
	`
	var userID string
	err := r.db.QueryRow(ctx, query, platform, externalID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, ErrMsgFailedToQueryUser, err)
	}

	return r.GetByID(ctx, userID)
}

// FindOrCreateByPlatformID returns the account bound to the given external
// id, creating one when absent. Creation inserts the user row and the link
// row in one transaction; when a concurrent request wins the race on the
// link's unique (platform_id, external_id) constraint, the transaction is
// rolled back (discarding the tentative user row) and the winner's account
// is returned. This is what keeps find-or-create atomic instead of a
// find-then-insert that can mint duplicate accounts.
func (r *UserRepository) FindOrCreateByPlatformID(ctx context.Context, platform, externalID, username, avatarURL string) (*domain.User, error) {
	// Fast path: the link already exists.
	user, err := r.FindByPlatformID(ctx, platform, externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var userID string
	err = tx.QueryRow(ctx, `
		INSERT INTO users DEFAULT VALUES
		RETURNING user_id
	`).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, ErrMsgFailedToInsertUser, err)
	}

	var linkID int
	err = tx.QueryRow(ctx, `
		INSERT INTO user_platform_links (user_id, platform_id, external_id, display_name, avatar_url)
		SELECT $1, p.platform_id, $2, $3, $4
		FROM platforms p
		WHERE p.platform_name = $5
		ON CONFLICT (platform_id, external_id) DO NOTHING
		RETURNING user_platform_link_id
	`, userID, externalID, username, avatarURL, platform).Scan(&linkID)

	switch {
	case err == nil:
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		return r.GetByID(ctx, userID)

	case errors.Is(err, pgx.ErrNoRows):
		// Either the platform name is unknown, or a concurrent
		// find-or-create inserted the link first. Roll back the tentative
		// user row and look the winner up.
		SafeRollback(ctx, tx)
		winner, lookupErr := r.FindByPlatformID(ctx, platform, externalID)
		if lookupErr == nil {
			return winner, nil
		}
		if errors.Is(lookupErr, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidPlatform, ErrMsgUnknownPlatform, platform)
		}
		return nil, lookupErr

	default:
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, ErrMsgFailedToInsertLink, err)
	}
}

// GetByID loads an account with its platform links and owned products
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	user := domain.User{ID: userID}

	err := r.db.QueryRow(ctx, `
		SELECT blacklisted FROM users WHERE user_id = $1
	`, userID).Scan(&user.Blacklisted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, ErrMsgFailedToQueryUser, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT p.platform_name, upl.external_id
		FROM user_platform_links upl
		JOIN platforms p ON upl.platform_id = p.platform_id
		WHERE upl.user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, ErrMsgFailedToQueryUser, err)
	}
	defer rows.Close()

	for rows.Next() {
		var platform, externalID string
		if err := rows.Scan(&platform, &externalID); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, ErrMsgFailedToScanLink, err)
		}
		switch platform {
		case domain.PlatformRoblox:
			user.RobloxID = externalID
		case domain.PlatformDiscord:
			user.DiscordID = externalID
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	productRows, err := r.db.Query(ctx, `
		SELECT product_id FROM user_products WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, ErrMsgFailedToQueryProducts, err)
	}
	defer productRows.Close()

	for productRows.Next() {
		var productID string
		if err := productRows.Scan(&productID); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		user.ProductIDs = append(user.ProductIDs, productID)
	}
	if err := productRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return &user, nil
}

// UnlinkPlatform removes one platform's external id from the account
func (r *UserRepository) UnlinkPlatform(ctx context.Context, userID, platform string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM user_platform_links
		WHERE user_id = $1
		  AND platform_id = (SELECT platform_id FROM platforms WHERE platform_name = $2)
	`, userID, platform)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNothingToUnlink
	}
	return nil
}
