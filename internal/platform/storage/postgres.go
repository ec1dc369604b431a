package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dealhaven/dealsync/internal/platform"
	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/dealhaven/dealsync/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	pgmodels "github.com/dealhaven/dealsync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for products, deals, snapshots and sync runs.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// StartSyncRun creates new unfinished sync run in database and returns it.
// It returns platform.ErrSyncAlreadyRunning if the previous run is not finished yet.
// This guard keeps sync passes serial; it is not a distributed lock.
func (p Postgres) StartSyncRun(ctx context.Context) (*models.SyncRun, error) {
	run := &models.SyncRun{}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		lastRun, err := getLastSyncRun(ctx, tx)

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last sync run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrSyncAlreadyRunning
		}

		newRun := toDBSyncRun(run)
		err = table.SyncRun.INSERT(table.SyncRun.FinishedAt).
			MODEL(newRun).
			RETURNING(table.SyncRun.ID, table.SyncRun.CreatedAt).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert sync run into database: %w", err)
		}

		run.ID = int(newRun.ID)
		run.CreatedAt = newRun.CreatedAt

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add sync run: %w", err)
	}

	return run, nil
}

// FinishSyncRun sets sync run as finished and updates its statistics.
func (p Postgres) FinishSyncRun(ctx context.Context, run *models.SyncRun) error {
	columnList := table.SyncRun.AllColumns.Except(table.SyncRun.ID, table.SyncRun.CreatedAt)

	result, err := table.SyncRun.UPDATE(columnList).
		MODEL(toDBSyncRun(run)).
		WHERE(table.SyncRun.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update sync run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update sync run: %w", platform.ErrNotFound)
	}

	return nil
}

// TrackedProducts returns all products carrying an external business key.
func (p Postgres) TrackedProducts(ctx context.Context) ([]models.Product, error) {
	var dbProducts []pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.Asin.IS_NOT_NULL()).
		QueryContext(ctx, p.db, &dbProducts)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get tracked products: %w", err)
	}

	products := make([]models.Product, 0, len(dbProducts))
	for ix := range dbProducts {
		products = append(products, *toProduct(&dbProducts[ix]))
	}

	return products, nil
}

// ProductByASIN returns the product with the provided business key.
// It returns platform.ErrNotFound when no product is tracked under the key.
func (p Postgres) ProductByASIN(ctx context.Context, asin string) (*models.Product, error) {
	var dbProduct pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.Asin.EQ(pg.String(asin))).
		QueryContext(ctx, p.db, &dbProduct)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get product by asin: %w", err)
	}

	return toProduct(&dbProduct), nil
}

// ActiveDealByASIN returns the single active deal for the provided business key.
// It returns platform.ErrNotFound when the product has no active deal.
func (p Postgres) ActiveDealByASIN(ctx context.Context, asin string) (*models.Deal, error) {
	var dbDeal pgmodels.ProductDeal
	err := table.ProductDeal.SELECT(table.ProductDeal.AllColumns).
		WHERE(pg.AND(
			table.ProductDeal.Asin.EQ(pg.String(asin)),
			table.ProductDeal.IsActive.IS_TRUE(),
		)).
		ORDER_BY(table.ProductDeal.StartsAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &dbDeal)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get active deal by asin: %w", err)
	}

	return toDeal(&dbDeal), nil
}

// CreateActiveDeal inserts a new active deal row and points the owning
// product's deal-reference fields at it. Returns the new deal ID.
func (p Postgres) CreateActiveDeal(ctx context.Context, deal *models.Deal, productID int) (int, error) {
	now := time.Now().UTC()
	deal.IsActive = true
	dbDeal := toDBDeal(deal, now)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		err := table.ProductDeal.INSERT(table.ProductDeal.MutableColumns.Except(table.ProductDeal.CreatedAt)).
			MODEL(dbDeal).
			RETURNING(table.ProductDeal.ID).
			QueryContext(ctx, tx, dbDeal)
		if err != nil {
			return fmt.Errorf("can't insert deal into database: %w", err)
		}

		_, err = table.Product.UPDATE(
			table.Product.CurrentDealID,
			table.Product.HasActiveDeal,
			table.Product.DealLastUpdated,
		).
			SET(pg.Int32(dbDeal.ID), pg.Bool(true), pg.TimestampzT(now)).
			WHERE(table.Product.ID.EQ(pg.Int32(int32(productID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't link deal to product: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	deal.ID = int(dbDeal.ID)

	return deal.ID, nil
}

// SupersedeDeal overwrites the existing active deal row in place with the
// superseding deal's fields and touches the owning product's deal timestamp.
// No second row is created; the row keeps its identity and active flag.
func (p Postgres) SupersedeDeal(ctx context.Context, dealID int, deal *models.Deal, productID int) error {
	now := time.Now().UTC()
	deal.IsActive = true
	dbDeal := toDBDeal(deal, now)
	dbDeal.ID = int32(dealID)

	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		result, err := table.ProductDeal.UPDATE(table.ProductDeal.MutableColumns.Except(table.ProductDeal.CreatedAt)).
			MODEL(dbDeal).
			WHERE(table.ProductDeal.ID.EQ(pg.Int32(int32(dealID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update deal: %w", err)
		}

		if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
			return fmt.Errorf("can't update deal: %w", platform.ErrNotFound)
		}

		_, err = table.Product.UPDATE(
			table.Product.CurrentDealID,
			table.Product.DealLastUpdated,
		).
			SET(pg.Int32(int32(dealID)), pg.TimestampzT(now)).
			WHERE(table.Product.ID.EQ(pg.Int32(int32(productID)))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't touch product deal timestamp: %w", err)
		}

		return nil
	})
}

// DeactivateExpiredDeals marks all active deals with a known end timestamp in
// the past as inactive and clears the deal-reference fields of products left
// without any active deal. Deals with no end timestamp are never touched.
// Returns the deactivated deals.
func (p Postgres) DeactivateExpiredDeals(ctx context.Context, now time.Time, batchSize uint) ([]models.ExpiredDeal, error) {
	var deactivated []models.ExpiredDeal
	toDeactivate := make(chan []models.ExpiredDeal)

	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		return getExpiredDealsAsync(egCtx, p.db, now, batchSize, toDeactivate)
	})

	errGroup.Go(func() error {
		var err error
		deactivated, err = deactivateDealsAsync(egCtx, p.db, toDeactivate)
		return err
	})

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	if len(deactivated) > 0 {
		if err := clearDealRefsWithoutActiveDeals(ctx, p.db); err != nil {
			return deactivated, err
		}
	}

	return deactivated, nil
}

// SaveProduct inserts or updates a product row by its business key and writes
// one immutable snapshot in the same transaction. Returns true when a new
// product row was created.
func (p Postgres) SaveProduct(ctx context.Context, product *models.Product, snapshot *models.Snapshot) (bool, error) {
	created := lo.ToPtr(false)
	now := time.Now().UTC()

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		dbProduct := ToDBProduct(product, now)

		if product.ID == 0 {
			err := table.Product.INSERT(table.Product.MutableColumns.Except(table.Product.CreatedAt)).
				MODEL(dbProduct).
				RETURNING(table.Product.ID).
				QueryContext(ctx, tx, dbProduct)
			if err != nil {
				return fmt.Errorf("can't insert product into database: %w", err)
			}
			product.ID = int(dbProduct.ID)
			*created = true
		} else {
			result, err := table.Product.UPDATE(table.Product.MutableColumns.Except(table.Product.CreatedAt)).
				MODEL(dbProduct).
				WHERE(table.Product.ID.EQ(pg.Int32(dbProduct.ID))).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("can't update product: %w", err)
			}
			if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
				return fmt.Errorf("can't update product: %w", platform.ErrNotFound)
			}
		}

		snapshot.ProductID = product.ID
		dbSnapshot := toDBSnapshot(snapshot)
		_, err := table.ProductAPISnapshot.INSERT(table.ProductAPISnapshot.MutableColumns).
			MODEL(dbSnapshot).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert snapshot into database: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return *created, nil
}

// SnapshotsByProduct returns snapshots for a product ordered by capture time.
func (p Postgres) SnapshotsByProduct(ctx context.Context, productID int) ([]models.Snapshot, error) {
	var dbSnapshots []pgmodels.ProductAPISnapshot
	err := table.ProductAPISnapshot.SELECT(table.ProductAPISnapshot.AllColumns).
		WHERE(table.ProductAPISnapshot.ProductID.EQ(pg.Int32(int32(productID)))).
		ORDER_BY(table.ProductAPISnapshot.CapturedAt.ASC()).
		QueryContext(ctx, p.db, &dbSnapshots)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get snapshots: %w", err)
	}

	snapshots := make([]models.Snapshot, 0, len(dbSnapshots))
	for ix := range dbSnapshots {
		dbSnapshot := &dbSnapshots[ix]
		snapshots = append(snapshots, models.Snapshot{
			ID:           int(dbSnapshot.ID),
			ProductID:    int(dbSnapshot.ProductID),
			ASIN:         dbSnapshot.Asin,
			Source:       dbSnapshot.Source,
			RawPayload:   []byte(dbSnapshot.RawPayload),
			Price:        dbSnapshot.Price,
			Availability: dbSnapshot.Availability,
			InStock:      dbSnapshot.InStock,
			CapturedAt:   dbSnapshot.CapturedAt,
		})
	}

	return snapshots, nil
}

func getLastSyncRun(ctx context.Context, db qrm.DB) (*pgmodels.SyncRun, error) {
	var run pgmodels.SyncRun
	err := table.SyncRun.SELECT(
		table.SyncRun.CreatedAt,
		table.SyncRun.FinishedAt,
		table.SyncRun.Success,
		table.SyncRun.StatusMessage,
	).
		ORDER_BY(table.SyncRun.CreatedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func getExpiredDealsAsync(
	ctx context.Context,
	db qrm.DB,
	now time.Time,
	batchSize uint,
	toDeactivate chan []models.ExpiredDeal,
) error {
	defer close(toDeactivate)
	previousID := int32(0)
	for {
		var deals []pgmodels.ProductDeal
		err := table.ProductDeal.SELECT(table.ProductDeal.ID, table.ProductDeal.Asin).
			WHERE(pg.AND(
				table.ProductDeal.IsActive.IS_TRUE(),
				table.ProductDeal.EndsAt.IS_NOT_NULL(),
				table.ProductDeal.EndsAt.LT(pg.TimestampzT(now)),
				table.ProductDeal.ID.GT(pg.Int32(previousID)),
			)).
			ORDER_BY(table.ProductDeal.ID.ASC()).
			LIMIT(int64(batchSize)).
			QueryContext(ctx, db, &deals)

		if errors.Is(err, qrm.ErrNoRows) || len(deals) == 0 {
			return nil
		}

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return err
		}

		batch := make([]models.ExpiredDeal, 0, len(deals))
		for ix := range deals {
			batch = append(batch, models.ExpiredDeal{
				ID:   int(deals[ix].ID),
				ASIN: deals[ix].Asin,
			})
		}

		previousID = deals[len(deals)-1].ID

		select {
		case <-ctx.Done():
			return ctx.Err()
		case toDeactivate <- batch:
		}
	}
}

func deactivateDealsAsync(ctx context.Context, db qrm.DB, toDeactivate chan []models.ExpiredDeal) ([]models.ExpiredDeal, error) {
	var deactivated []models.ExpiredDeal
	now := time.Now().UTC()
	for batch := range toDeactivate {
		ids := make([]pg.Expression, 0, len(batch))
		for ix := range batch {
			ids = append(ids, pg.Int32(int32(batch[ix].ID)))
		}

		_, err := table.ProductDeal.UPDATE().
			SET(
				table.ProductDeal.IsActive.SET(pg.Bool(false)),
				table.ProductDeal.UpdatedAt.SET(pg.TimestampzT(now)),
			).
			WHERE(table.ProductDeal.ID.IN(ids...)).
			ExecContext(ctx, db)
		if err != nil {
			return deactivated, err
		}
		deactivated = append(deactivated, batch...)
	}
	return deactivated, nil
}

// clearDealRefsWithoutActiveDeals resets deal-reference fields of every
// product marked as having an active deal while no active deal row remains
// for its business key.
func clearDealRefsWithoutActiveDeals(ctx context.Context, db qrm.DB) error {
	activeAsins := table.ProductDeal.
		SELECT(table.ProductDeal.Asin).
		WHERE(table.ProductDeal.IsActive.IS_TRUE())

	_, err := table.Product.UPDATE(
		table.Product.CurrentDealID,
		table.Product.HasActiveDeal,
	).
		SET(pg.NULL, pg.Bool(false)).
		WHERE(pg.AND(
			table.Product.HasActiveDeal.IS_TRUE(),
			table.Product.Asin.NOT_IN(activeAsins),
		)).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't clear product deal references: %w", err)
	}

	return nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
