package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/dealhaven/dealsync/internal/platform/storage/gen/postgres/public/model"
	"github.com/dealhaven/dealsync/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Product, 0, len(products))
	toInsert = append(toInsert, products...)

	_, err := table.Product.INSERT(table.Product.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertDeals is a helper test function to insert deals.
func InsertDeals(t *testing.T, exc qrm.Executable, deals ...pgmodels.ProductDeal) {
	t.Helper()

	if len(deals) == 0 {
		return
	}

	toInsert := make([]pgmodels.ProductDeal, 0, len(deals))
	toInsert = append(toInsert, deals...)

	_, err := table.ProductDeal.INSERT(table.ProductDeal.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert deals", err)
	}
}

// InsertSyncRuns is a helper test function to insert sync runs.
func InsertSyncRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.SyncRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	toInsert := make([]pgmodels.SyncRun, 0, len(runs))
	toInsert = append(toInsert, runs...)

	_, err := table.SyncRun.INSERT(table.SyncRun.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert sync runs", err)
	}
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		ORDER_BY(table.Product.ID.ASC()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetDeals is a helper test function to get all deals.
func GetDeals(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductDeal {
	t.Helper()

	deals := []pgmodels.ProductDeal{}
	err := table.ProductDeal.SELECT(table.ProductDeal.AllColumns).
		WHERE(table.ProductDeal.ID.IS_NOT_NULL()).
		ORDER_BY(table.ProductDeal.ID.ASC()).
		Query(queryable, &deals)
	if err != nil {
		t.Fatal("can't get deals", err)
	}

	return deals
}

// GetSyncRuns is a helper test function to get all sync runs.
func GetSyncRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.SyncRun {
	t.Helper()

	runs := []pgmodels.SyncRun{}
	err := table.SyncRun.SELECT(table.SyncRun.AllColumns).
		WHERE(table.SyncRun.ID.IS_NOT_NULL()).
		ORDER_BY(table.SyncRun.ID.ASC()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get sync runs", err)
	}

	return runs
}

// GetSnapshots is a helper test function to get all snapshots.
func GetSnapshots(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductAPISnapshot {
	t.Helper()

	snapshots := []pgmodels.ProductAPISnapshot{}
	err := table.ProductAPISnapshot.SELECT(table.ProductAPISnapshot.AllColumns).
		WHERE(table.ProductAPISnapshot.ID.IS_NOT_NULL()).
		ORDER_BY(table.ProductAPISnapshot.ID.ASC()).
		Query(queryable, &snapshots)
	if err != nil {
		t.Fatal("can't get snapshots", err)
	}

	return snapshots
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.ProductAPISnapshot.DELETE().WHERE(table.ProductAPISnapshot.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete snapshots data", err)
	}

	_, err = table.ProductDeal.DELETE().WHERE(table.ProductDeal.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete deals data", err)
	}

	_, err = table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}

	_, err = table.SyncRun.DELETE().WHERE(table.SyncRun.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete sync runs data", err)
	}
}
