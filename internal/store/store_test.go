package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suifund/crowdfunding-gobackend/internal/models"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Setup MongoDB ---
func setupMongo(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s", host, port.Port())))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(ctx) })
	require.NoError(t, client.Ping(ctx, nil))

	return client.Database("crowdfunding_test")
}

func newCampaign(code, title, owner string) *models.Campaign {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &models.Campaign{
		Code:          code,
		Title:         title,
		Description:   "clean water for the village",
		EndDate:       "2026-12-31",
		ImageURL:      "https://example.com/well.png",
		DonationLimit: 1000,
		UserAddress:   owner,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestMongoStores(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()

	campaigns := NewCampaignStore(db)
	transactions := NewTransactionStore(db)
	require.NoError(t, campaigns.EnsureIndexes(ctx))
	require.NoError(t, transactions.EnsureIndexes(ctx))

	t.Run("insert and read back by code and object id", func(t *testing.T) {
		c := newCampaign("CAMP-RT0001", "Water Well", "0xowner1")
		require.NoError(t, campaigns.Insert(ctx, c))
		require.False(t, c.ID.IsZero())

		byCode, err := campaigns.FindByRef(ctx, models.CampaignRef{Kind: models.RefByCode, Code: "CAMP-RT0001"})
		require.NoError(t, err)
		byID, err := campaigns.FindByRef(ctx, models.CampaignRef{Kind: models.RefByObjectID, ObjectID: c.ID})
		require.NoError(t, err)

		assert.Equal(t, byCode, byID)
		assert.Equal(t, c.Title, byID.Title)
		assert.Equal(t, c.DonationLimit, byID.DonationLimit)
		assert.Equal(t, c.CreatedAt, byID.CreatedAt)
		assert.Empty(t, byID.Donations)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		require.NoError(t, campaigns.Insert(ctx, newCampaign("CAMP-DUP001", "first", "0xa")))

		exists, err := campaigns.CodeExists(ctx, "CAMP-DUP001")
		require.NoError(t, err)
		assert.True(t, exists)

		err = campaigns.Insert(ctx, newCampaign("CAMP-DUP001", "second", "0xb"))
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		_, err := campaigns.FindByRef(ctx, models.CampaignRef{Kind: models.RefByObjectID, ObjectID: primitive.NewObjectID()})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("search is case-insensitive and literal", func(t *testing.T) {
		require.NoError(t, campaigns.Insert(ctx, newCampaign("CAMP-SRCH01", "School Roof (phase 2)", "0xsearch")))

		found, err := campaigns.List(ctx, "school roof (PHASE", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "CAMP-SRCH01", found[0].Code)

		found, err = campaigns.List(ctx, "srch0", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)

		found, err = campaigns.List(ctx, ".*", 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("update and delete", func(t *testing.T) {
		c := newCampaign("CAMP-UPD001", "Old title", "0xupd")
		require.NoError(t, campaigns.Insert(ctx, c))

		title := "New title"
		updated, err := campaigns.Update(ctx, models.CampaignRef{Kind: models.RefByCode, Code: c.Code}, models.CampaignUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, c.Description, updated.Description)

		deleted, err := campaigns.Delete(ctx, models.CampaignRef{Kind: models.RefByObjectID, ObjectID: c.ID})
		require.NoError(t, err)
		assert.Equal(t, "CAMP-UPD001", deleted.Code)

		_, err = campaigns.Delete(ctx, models.CampaignRef{Kind: models.RefByObjectID, ObjectID: c.ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("string donation limits from older documents decode", func(t *testing.T) {
		now := time.Now().UTC()
		_, err := db.Collection(CampaignsCollection).InsertMany(ctx, []interface{}{
			bson.M{"campaign_id": "CAMP-LEG1", "title": "Legacy", "userAddress": "0xlegacy", "donationLimit": "250", "donations": bson.A{}, "createdAt": now},
			bson.M{"campaign_id": "CAMP-LEG2", "title": "Legacy blank", "userAddress": "0xlegacy", "donationLimit": "", "donations": bson.A{}, "createdAt": now.Add(-time.Minute)},
		})
		require.NoError(t, err)

		found, err := campaigns.ListByOwner(ctx, "0xlegacy")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, models.DonationLimit(250), found[0].DonationLimit)
		assert.Equal(t, models.DonationLimit(0), found[1].DonationLimit)

		limit := models.DonationLimit(300)
		updated, err := campaigns.Update(ctx, models.CampaignRef{Kind: models.RefByCode, Code: "CAMP-LEG1"}, models.CampaignUpdate{DonationLimit: &limit})
		require.NoError(t, err)
		assert.Equal(t, models.DonationLimit(300), updated.DonationLimit)

		var raw bson.M
		require.NoError(t, db.Collection(CampaignsCollection).FindOne(ctx, bson.M{"campaign_id": "CAMP-LEG1"}).Decode(&raw))
		assert.Equal(t, float64(300), raw["donationLimit"])
	})

	t.Run("concurrent credited donations are all counted", func(t *testing.T) {
		c := newCampaign("CAMP-CONC01", "Concurrent", "0xconc")
		require.NoError(t, campaigns.Insert(ctx, c))

		const donors = 20
		var wg sync.WaitGroup
		for i := 0; i < donors; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				d := models.Donation{
					DonorAddress: fmt.Sprintf("0xdonor%d", i),
					Amount:       5,
					TxDigest:     fmt.Sprintf("digest-%d", i),
					Status:       models.StatusSuccess,
					Timestamp:    time.Now().UTC(),
				}
				_, err := campaigns.AppendDonation(ctx, c.ID, d, true)
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		failed := models.Donation{DonorAddress: "0xlate", Amount: 7, TxDigest: "bad", Status: models.StatusFailed, Error: "Not found on-chain"}
		got, err := campaigns.AppendDonation(ctx, c.ID, failed, false)
		require.NoError(t, err)

		assert.Equal(t, float64(donors*5), got.TotalDonations)
		assert.Len(t, got.Donations, donors+1)
		assert.Equal(t, models.StatusFailed, got.Donations[donors].Status)
	})

	t.Run("transactions join their campaign", func(t *testing.T) {
		c := newCampaign("CAMP-TXN001", "Ledger", "0xowner")
		require.NoError(t, campaigns.Insert(ctx, c))
		gone := newCampaign("CAMP-TXN002", "Deleted", "0xowner")
		require.NoError(t, campaigns.Insert(ctx, gone))

		first := &models.Transaction{UserAddress: "0xdonor", CampaignID: gone.ID, CampaignTitle: gone.Title, Amount: 1, TxDigest: "d-1", Status: models.StatusFailed}
		require.NoError(t, transactions.Insert(ctx, first))
		time.Sleep(5 * time.Millisecond)
		second := &models.Transaction{UserAddress: "0xdonor", CampaignID: c.ID, CampaignTitle: c.Title, Amount: 2, TxDigest: "d-2", Status: models.StatusSuccess, GasUsed: map[string]interface{}{"computationCost": "100"}}
		require.NoError(t, transactions.Insert(ctx, second))
		assert.NotEmpty(t, second.ContributionID)

		_, err := campaigns.Delete(ctx, models.CampaignRef{Kind: models.RefByObjectID, ObjectID: gone.ID})
		require.NoError(t, err)

		views, err := transactions.ListByUser(ctx, "0xdonor")
		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, "d-2", views[0].TxDigest)
		require.NotNil(t, views[0].Campaign)
		assert.Equal(t, "CAMP-TXN001", views[0].Campaign.Code)
		assert.Equal(t, "Ledger", views[0].Campaign.Title)
		assert.Equal(t, "100", views[0].GasUsed["computationCost"])

		assert.Equal(t, "d-1", views[1].TxDigest)
		assert.Nil(t, views[1].Campaign)

		none, err := transactions.ListByUser(ctx, "0xnobody")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("digest can be credited only once", func(t *testing.T) {
		cid := primitive.NewObjectID()
		failed := &models.Transaction{UserAddress: "0xd", CampaignID: cid, Amount: 1, TxDigest: "once", Status: models.StatusFailed}
		require.NoError(t, transactions.Insert(ctx, failed))

		ok, err := transactions.HasSuccessfulDigest(ctx, "once")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, transactions.Insert(ctx, &models.Transaction{UserAddress: "0xd", CampaignID: cid, Amount: 1, TxDigest: "once", Status: models.StatusSuccess}))

		ok, err = transactions.HasSuccessfulDigest(ctx, "once")
		require.NoError(t, err)
		assert.True(t, ok)

		err = transactions.Insert(ctx, &models.Transaction{UserAddress: "0xd", CampaignID: cid, Amount: 1, TxDigest: "once", Status: models.StatusSuccess})
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}
