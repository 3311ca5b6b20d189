package database_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/database"
	"github.com/jonesrussell/north-cloud/social-publisher/internal/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var templateColumns = []string{
	"id", "owner_id", "name", "kind", "platform", "body", "variables", "active", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*database.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")
	t.Cleanup(func() { db.Close() })

	return database.NewRepository(sqlx.NewDb(db, "postgres")), mock
}

func addTemplateRow(rows *sqlmock.Rows, id, owner uuid.UUID, name, kind, platform string, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id.String(), owner.String(), name, kind, platform, "{{title}}",
		"{title}", true, createdAt, createdAt,
	)
}

func TestRepository_FindActiveTemplates(t *testing.T) {
	t.Helper()

	repo, mock := newMockRepo(t)
	ctx := context.Background()
	owner := uuid.New()
	now := time.Now()

	t.Run("platform query returns specific before wildcard", func(t *testing.T) {
		rows := sqlmock.NewRows(templateColumns)
		addTemplateRow(rows, uuid.New(), owner, "twitter-tmpl", "blogger", "twitter", now)
		addTemplateRow(rows, uuid.New(), owner, "wildcard-tmpl", "blogger", "all", now)

		mock.ExpectQuery("SELECT (.+) FROM content_templates").
			WithArgs(owner, "blogger", "twitter").
			WillReturnRows(rows)

		templates, err := repo.FindActiveTemplates(ctx, owner, "blogger", "twitter")
		require.NoError(t, err)
		require.Len(t, templates, 2)
		assert.Equal(t, "twitter-tmpl", templates[0].Name)
	})

	t.Run("empty platform queries wildcard only", func(t *testing.T) {
		rows := sqlmock.NewRows(templateColumns)
		addTemplateRow(rows, uuid.New(), owner, "wildcard-tmpl", "blogger", "all", now)

		mock.ExpectQuery("SELECT (.+) FROM content_templates").
			WithArgs(owner, "blogger").
			WillReturnRows(rows)

		templates, err := repo.FindActiveTemplates(ctx, owner, "blogger", "")
		require.NoError(t, err)
		require.Len(t, templates, 1)
		assert.Equal(t, "all", templates[0].Platform)
	})

	t.Run("no rows yields empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM content_templates").
			WithArgs(owner, "manual", "twitter").
			WillReturnRows(sqlmock.NewRows(templateColumns))

		templates, err := repo.FindActiveTemplates(ctx, owner, "manual", "twitter")
		require.NoError(t, err)
		assert.Empty(t, templates)
	})

	t.Run("database failure returns error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM content_templates").
			WillReturnError(sql.ErrConnDone)

		_, err := repo.FindActiveTemplates(ctx, owner, "blogger", "twitter")
		assert.Error(t, err)
	})
}

func TestRepository_CreateTemplate(t *testing.T) {
	t.Helper()

	repo, mock := newMockRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	t.Run("defaults platform to wildcard", func(t *testing.T) {
		rows := sqlmock.NewRows(templateColumns)
		addTemplateRow(rows, uuid.New(), owner, "new-tmpl", "blogger", "all", time.Now())

		mock.ExpectQuery("INSERT INTO content_templates").
			WillReturnRows(rows)

		tmpl, err := repo.CreateTemplate(ctx, &models.TemplateCreateRequest{
			OwnerID: owner,
			Name:    "new-tmpl",
			Kind:    "blogger",
			Body:    "{{title}}",
		})
		require.NoError(t, err)
		assert.Equal(t, "all", tmpl.Platform)
		assert.True(t, tmpl.Active)
	})

	t.Run("unique violation maps to ErrAlreadyExists", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO content_templates").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.CreateTemplate(ctx, &models.TemplateCreateRequest{
			OwnerID: owner,
			Name:    "dup",
			Kind:    "blogger",
			Body:    "{{title}}",
		})
		assert.ErrorIs(t, err, models.ErrAlreadyExists)
	})
}

func TestRepository_GetTemplateByID(t *testing.T) {
	t.Helper()

	repo, mock := newMockRepo(t)
	ctx := context.Background()
	id := uuid.New()

	t.Run("returns template when found", func(t *testing.T) {
		rows := sqlmock.NewRows(templateColumns)
		addTemplateRow(rows, id, uuid.New(), "found", "manual", "all", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM content_templates WHERE id").
			WithArgs(id).
			WillReturnRows(rows)

		tmpl, err := repo.GetTemplateByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "found", tmpl.Name)
	})

	t.Run("maps no rows to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM content_templates WHERE id").
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetTemplateByID(ctx, id)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestRepository_DeleteTemplate(t *testing.T) {
	t.Helper()

	repo, mock := newMockRepo(t)
	ctx := context.Background()
	id := uuid.New()

	t.Run("deletes existing template", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM content_templates").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteTemplate(ctx, id))
	})

	t.Run("missing template returns ErrNotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM content_templates").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteTemplate(ctx, id), models.ErrNotFound)
	})
}
