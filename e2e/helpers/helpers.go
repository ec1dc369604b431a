package helpers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dealhaven/dealsync/internal/platform/models"
	"github.com/dealhaven/dealsync/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

// PrepareMockedSourceAPI starts a mocked source API server. Returns the server
// and a function switching the deals payload by index.
func PrepareMockedSourceAPI(t *testing.T, dealResponses []string, searchResponse, reviewsResponse string) (*httptest.Server, func(int)) {
	t.Helper()

	dealResponseIx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add("Content-Type", "application/json")

		switch req.URL.Path {
		case "/deals-v2":
			fmt.Fprint(wrt, dealResponses[dealResponseIx])
		case "/search":
			fmt.Fprint(wrt, searchResponse)
		case "/product-reviews":
			fmt.Fprint(wrt, reviewsResponse)
		default:
			wrt.WriteHeader(http.StatusNotFound)
		}
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { dealResponseIx = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// WaitForSyncRunToBeFinished is blocking helper function, returns the n-th
// sync run after it is finished.
func WaitForSyncRunToBeFinished(t *testing.T, queryable qrm.Queryable, runNumber int) *models.SyncRun {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)

	for {
		<-time.After(time.Millisecond * 250)
		if time.Now().After(deadline) {
			require.FailNow(t, "sync run didn't finish in time")
		}

		runs := storagetesting.GetSyncRuns(t, queryable)
		if len(runs) < runNumber {
			continue
		}

		run := runs[runNumber-1]
		if run.FinishedAt == nil {
			continue
		}

		return &models.SyncRun{
			ID:               int(run.ID),
			CreatedAt:        run.CreatedAt,
			FinishedAt:       run.FinishedAt,
			IsSuccess:        run.Success,
			StatusMessage:    run.StatusMessage,
			DealsProcessed:   run.DealsProcessed,
			DealsAdded:       run.DealsAdded,
			DealsUpdated:     run.DealsUpdated,
			DealsDeactivated: run.DealsDeactivated,
		}
	}
}

// WaitForProducts is blocking helper function, returns stored products once
// at least n are present.
func WaitForProducts(t *testing.T, queryable qrm.Queryable, n int) []models.Product {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)

	for {
		<-time.After(time.Millisecond * 250)
		if time.Now().After(deadline) {
			require.FailNow(t, "products weren't imported in time")
		}

		dbProducts := storagetesting.GetProducts(t, queryable)
		if len(dbProducts) < n {
			continue
		}

		products := make([]models.Product, 0, len(dbProducts))
		for ix := range dbProducts {
			products = append(products, models.Product{
				ID:            int(dbProducts[ix].ID),
				ASIN:          dbProducts[ix].Asin,
				Title:         dbProducts[ix].Title,
				Price:         dbProducts[ix].Price,
				InStock:       dbProducts[ix].InStock,
				Availability:  dbProducts[ix].Availability,
				CurrentDealID: toIntPtr(dbProducts[ix].CurrentDealID),
				HasActiveDeal: dbProducts[ix].HasActiveDeal,
				Source:        dbProducts[ix].Source,
			})
		}

		return products
	}
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	converted := int(*v)
	return &converted
}
