package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/asset_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/asset_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/asset_tracker/internal/models"
	"github.com/SscSPs/asset_tracker/internal/utils/queryfilter"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	insertAuditColumns = []string{"created_at", "created_by", "last_updated_at", "last_updated_by", "deleted_at", "deleted_by"}
	updateAuditColumns = []string{"last_updated_at", "last_updated_by"}
)

// tableConfig describes how an entity is laid out in SQL.
type tableConfig struct {
	entity   string // used in error messages
	name     string
	alias    string // must match the alias of the entity's listing schema
	idColumn string
	// columns are the entity's own columns, id first, audit columns excluded.
	columns []string
	// mutable is the subset of columns an Update may rewrite.
	mutable []string
	// extraSelect and joins extend reads with columns from joined tables.
	extraSelect []string
	joins       string
	// removeSets are extra assignments applied when a row is soft-deleted.
	removeSets []string
}

// table implements the generic Reader/Writer contract for one entity.
// M is the row model scanned by column name, D the domain type.
type table[M any, D any] struct {
	BaseRepository
	cfg      tableConfig
	toDomain func(M) D
	toArgs   func(D) pgx.NamedArgs

	selectList string
	from       string
}

func newTable[M any, D any](pool *pgxpool.Pool, cfg tableConfig, toDomain func(M) D, toArgs func(D) pgx.NamedArgs) *table[M, D] {
	cols := make([]string, 0, len(cfg.columns)+len(insertAuditColumns)+len(cfg.extraSelect))
	for _, c := range append(append([]string{}, cfg.columns...), insertAuditColumns...) {
		cols = append(cols, pgx.Identifier{cfg.alias, c}.Sanitize())
	}
	cols = append(cols, cfg.extraSelect...)

	from := pgx.Identifier{cfg.name}.Sanitize() + " " + pgx.Identifier{cfg.alias}.Sanitize()
	if cfg.joins != "" {
		from += " " + cfg.joins
	}

	return &table[M, D]{
		BaseRepository: BaseRepository{Pool: pool},
		cfg:            cfg,
		toDomain:       toDomain,
		toArgs:         toArgs,
		selectList:     strings.Join(cols, ", "),
		from:           from,
	}
}

func (t *table[M, D]) byID(id string) queryfilter.Spec {
	return queryfilter.New(t.cfg.alias, nil).Equal(t.cfg.idColumn, id).Build()
}

func joinSQL(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func (t *table[M, D]) FindByID(ctx context.Context, id string) (*D, error) {
	d, err := t.findOne(ctx, t.Pool, t.byID(id), "")
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%s %s: %w", t.cfg.entity, id, apperrors.ErrNotFound)
	}
	return d, err
}

func (t *table[M, D]) FindOne(ctx context.Context, spec queryfilter.Spec) (*D, error) {
	return t.findOne(ctx, t.Pool, spec, "")
}

// findOne ignores Spec paging and returns the first match. lock, when
// set, is appended verbatim (e.g. "FOR UPDATE").
func (t *table[M, D]) findOne(ctx context.Context, q querier, spec queryfilter.Spec, lock string) (*D, error) {
	sql := joinSQL("SELECT", t.selectList, "FROM", t.from, spec.WhereClause(), spec.OrderClause(), "LIMIT 1", lock)
	rows, err := q.Query(ctx, sql, spec.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.cfg.entity, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan %s: %w", t.cfg.entity, err)
	}
	d := t.toDomain(m)
	return &d, nil
}

func (t *table[M, D]) Exists(ctx context.Context, id string) (bool, error) {
	spec := t.byID(id)
	sql := joinSQL("SELECT EXISTS (SELECT 1 FROM", t.from, spec.WhereClause()+")")
	var exists bool
	if err := t.Pool.QueryRow(ctx, sql, spec.Args).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s %s: %w", t.cfg.entity, id, err)
	}
	return exists, nil
}

func (t *table[M, D]) List(ctx context.Context, spec queryfilter.Spec) ([]D, error) {
	return t.list(ctx, t.Pool, spec, false)
}

func (t *table[M, D]) list(ctx context.Context, q querier, spec queryfilter.Spec, paged bool) ([]D, error) {
	limit := ""
	if paged {
		limit = spec.LimitClause()
	}
	sql := joinSQL("SELECT", t.selectList, "FROM", t.from, spec.WhereClause(), spec.OrderClause(), limit)
	rows, err := q.Query(ctx, sql, spec.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.cfg.entity, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", t.cfg.entity, err)
	}

	ds := make([]D, len(ms))
	for i, m := range ms {
		ds[i] = t.toDomain(m)
	}
	return ds, nil
}

// PaginatedList counts all matches with the same predicates, then reads the
// requested page.
func (t *table[M, D]) PaginatedList(ctx context.Context, spec queryfilter.Spec) (portsrepo.Page[D], error) {
	var total int
	countSQL := joinSQL("SELECT COUNT(*) FROM", t.from, spec.WhereClause())
	if err := t.Pool.QueryRow(ctx, countSQL, spec.Args).Scan(&total); err != nil {
		return portsrepo.Page[D]{}, fmt.Errorf("failed to count %s: %w", t.cfg.entity, err)
	}

	items, err := t.list(ctx, t.Pool, spec, true)
	if err != nil {
		return portsrepo.Page[D]{}, err
	}
	return portsrepo.Page[D]{
		Items:    items,
		Total:    total,
		Page:     spec.Page,
		PageSize: spec.PageSize,
	}, nil
}

func (t *table[M, D]) Add(ctx context.Context, entity D) error {
	return t.insert(ctx, t.Pool, entity)
}

func (t *table[M, D]) insert(ctx context.Context, q querier, entity D) error {
	args := t.toArgs(entity)
	cols := append(append([]string{}, t.cfg.columns...), insertAuditColumns...)

	names := make([]string, len(cols))
	params := make([]string, len(cols))
	for i, c := range cols {
		names[i] = pgx.Identifier{c}.Sanitize()
		params[i] = "@" + c
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{t.cfg.name}.Sanitize(), strings.Join(names, ", "), strings.Join(params, ", "))

	if _, err := q.Exec(ctx, sql, args); err != nil {
		return mapWriteError(err, t.cfg.entity, fmt.Sprint(args[t.cfg.idColumn]))
	}
	return nil
}

func (t *table[M, D]) Update(ctx context.Context, id string, entity D) error {
	return t.update(ctx, t.Pool, id, entity)
}

func (t *table[M, D]) update(ctx context.Context, q querier, id string, entity D) error {
	args := t.toArgs(entity)
	args[t.cfg.idColumn] = id

	cols := append(append([]string{}, t.cfg.mutable...), updateAuditColumns...)
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = pgx.Identifier{c}.Sanitize() + " = @" + c
	}
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = @%s AND deleted_at IS NULL",
		pgx.Identifier{t.cfg.name}.Sanitize(), strings.Join(sets, ", "),
		pgx.Identifier{t.cfg.idColumn}.Sanitize(), t.cfg.idColumn)

	tag, err := q.Exec(ctx, sql, args)
	if err != nil {
		return mapWriteError(err, t.cfg.entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", t.cfg.entity, id, apperrors.ErrNotFound)
	}
	return nil
}

func (t *table[M, D]) Remove(ctx context.Context, id string, deletedBy string, deletedAt time.Time) error {
	return t.remove(ctx, t.Pool, id, deletedBy, deletedAt)
}

func (t *table[M, D]) removeSQL() string {
	sets := append([]string{"deleted_at = @deleted_at", "deleted_by = @deleted_by"}, t.cfg.removeSets...)
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = @id AND deleted_at IS NULL",
		pgx.Identifier{t.cfg.name}.Sanitize(), strings.Join(sets, ", "), pgx.Identifier{t.cfg.idColumn}.Sanitize())
}

func (t *table[M, D]) remove(ctx context.Context, q querier, id string, deletedBy string, deletedAt time.Time) error {
	tag, err := q.Exec(ctx, t.removeSQL(), pgx.NamedArgs{"id": id, "deleted_at": deletedAt, "deleted_by": deletedBy})
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", t.cfg.entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", t.cfg.entity, id, apperrors.ErrNotFound)
	}
	return nil
}

// auditArgs binds the audit columns of a row.
func auditArgs(args pgx.NamedArgs, a models.AuditFields) pgx.NamedArgs {
	args["created_at"] = a.CreatedAt
	args["created_by"] = a.CreatedBy
	args["last_updated_at"] = a.LastUpdatedAt
	args["last_updated_by"] = a.LastUpdatedBy
	args["deleted_at"] = a.DeletedAt
	args["deleted_by"] = a.DeletedBy
	return args
}
