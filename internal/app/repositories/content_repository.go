package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/dberrors"
	"github.com/konaseema/zpportal/internal/pkg/logger"
)

// ContentRepository handles forum posts, bulletins, news and galleries.
// All four are school scoped publications listed newest first.
type ContentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *ContentRepository) insert(ctx context.Context, table string, columns []string, values []interface{}, createdAt interface{}) error {
	sql, args, err := r.sb.Insert(table).Columns(columns...).Values(values...).Suffix("RETURNING created_at").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert %s query: %w", table, err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(createdAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("table", table).Msg("Error executing insert query")
		return fmt.Errorf("error inserting into %s: %w", table, err)
	}
	return nil
}

// list runs a newest-first select on table and hands each row to scan.
func (r *ContentRepository) list(ctx context.Context, table string, columns []string, filter models.ContentFilter, scan func(pgx.Rows) error) error {
	query := r.sb.Select(columns...).From(table).OrderBy("created_at DESC").Limit(ContentListLimit)
	if filter.SchoolID != "" {
		query = query.Where(squirrel.Eq{"school_id": filter.SchoolID})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build list %s query: %w", table, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error executing list query")
		return fmt.Errorf("error querying %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("error scanning %s row: %w", table, err)
		}
	}
	return rows.Err()
}

// CreateForumPost inserts a forum post.
func (r *ContentRepository) CreateForumPost(ctx context.Context, p *models.ForumPost) error {
	return r.insert(ctx, "forum_posts",
		[]string{"id", "title", "content", "author_id", "school_id", "category", "replies_count"},
		[]interface{}{p.ID, p.Title, p.Content, p.AuthorID, p.SchoolID, p.Category, p.RepliesCount},
		&p.CreatedAt)
}

// ListForumPosts lists forum posts by school and category.
func (r *ContentRepository) ListForumPosts(ctx context.Context, filter models.ContentFilter) ([]*models.ForumPost, error) {
	posts := []*models.ForumPost{}
	err := r.list(ctx, "forum_posts",
		[]string{"id", "title", "content", "author_id", "school_id", "category", "replies_count", "created_at"},
		filter, func(rows pgx.Rows) error {
			p := &models.ForumPost{}
			if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.SchoolID, &p.Category, &p.RepliesCount, &p.CreatedAt); err != nil {
				return err
			}
			posts = append(posts, p)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CreateBulletin inserts a bulletin.
func (r *ContentRepository) CreateBulletin(ctx context.Context, b *models.Bulletin) error {
	return r.insert(ctx, "bulletins",
		[]string{"id", "title", "content", "school_id", "category", "created_by"},
		[]interface{}{b.ID, b.Title, b.Content, b.SchoolID, b.Category, b.CreatedBy},
		&b.CreatedAt)
}

// ListBulletins lists bulletins by school and category.
func (r *ContentRepository) ListBulletins(ctx context.Context, filter models.ContentFilter) ([]*models.Bulletin, error) {
	bulletins := []*models.Bulletin{}
	err := r.list(ctx, "bulletins",
		[]string{"id", "title", "content", "school_id", "category", "created_by", "created_at"},
		filter, func(rows pgx.Rows) error {
			b := &models.Bulletin{}
			if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.SchoolID, &b.Category, &b.CreatedBy, &b.CreatedAt); err != nil {
				return err
			}
			bulletins = append(bulletins, b)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return bulletins, nil
}

// CreateNews inserts a news item.
func (r *ContentRepository) CreateNews(ctx context.Context, n *models.News) error {
	return r.insert(ctx, "news",
		[]string{"id", "title", "content", "school_id", "image_url", "created_by"},
		[]interface{}{n.ID, n.Title, n.Content, n.SchoolID, n.ImageURL, n.CreatedBy},
		&n.CreatedAt)
}

// ListNews lists news by school. News has no category.
func (r *ContentRepository) ListNews(ctx context.Context, filter models.ContentFilter) ([]*models.News, error) {
	filter.Category = ""
	items := []*models.News{}
	err := r.list(ctx, "news",
		[]string{"id", "title", "content", "school_id", "image_url", "created_by", "created_at"},
		filter, func(rows pgx.Rows) error {
			n := &models.News{}
			if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.SchoolID, &n.ImageURL, &n.CreatedBy, &n.CreatedAt); err != nil {
				return err
			}
			items = append(items, n)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CreateGallery inserts a gallery.
func (r *ContentRepository) CreateGallery(ctx context.Context, g *models.Gallery) error {
	return r.insert(ctx, "galleries",
		[]string{"id", "title", "school_id", "images", "created_by"},
		[]interface{}{g.ID, g.Title, g.SchoolID, nonNil(g.Images), g.CreatedBy},
		&g.CreatedAt)
}

// ListGalleries lists galleries by school.
func (r *ContentRepository) ListGalleries(ctx context.Context, filter models.ContentFilter) ([]*models.Gallery, error) {
	filter.Category = ""
	galleries := []*models.Gallery{}
	err := r.list(ctx, "galleries",
		[]string{"id", "title", "school_id", "images", "created_by", "created_at"},
		filter, func(rows pgx.Rows) error {
			g := &models.Gallery{}
			if err := rows.Scan(&g.ID, &g.Title, &g.SchoolID, &g.Images, &g.CreatedBy, &g.CreatedAt); err != nil {
				return err
			}
			galleries = append(galleries, g)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return galleries, nil
}
