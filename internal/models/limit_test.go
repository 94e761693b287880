package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDonationLimitJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    DonationLimit
		wantErr bool
	}{
		{name: "number", body: `{"donationLimit":100}`, want: 100},
		{name: "numeric string", body: `{"donationLimit":"100.5"}`, want: 100.5},
		{name: "empty string", body: `{"donationLimit":""}`, want: 0},
		{name: "null", body: `{"donationLimit":null}`, want: 0},
		{name: "missing", body: `{}`, want: 0},
		{name: "words", body: `{"donationLimit":"a lot"}`, wantErr: true},
		{name: "object", body: `{"donationLimit":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in CampaignInput
			err := json.Unmarshal([]byte(tt.body), &in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, in.DonationLimit)
		})
	}

	out, err := json.Marshal(Campaign{DonationLimit: 42})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"donationLimit":42`)
}

func TestDonationLimitBSON(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  DonationLimit
	}{
		{name: "double", value: 12.5, want: 12.5},
		{name: "int32", value: int32(7), want: 7},
		{name: "int64", value: int64(9), want: 9},
		{name: "numeric string", value: "250", want: 250},
		{name: "empty string", value: "", want: 0},
		{name: "unparseable string", value: "tbd", want: 0},
		{name: "null", value: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := bson.Marshal(bson.M{"donationLimit": tt.value})
			require.NoError(t, err)

			var c Campaign
			require.NoError(t, bson.Unmarshal(doc, &c))
			assert.Equal(t, tt.want, c.DonationLimit)
		})
	}

	t.Run("written as a double", func(t *testing.T) {
		doc, err := bson.Marshal(Campaign{DonationLimit: 3})
		require.NoError(t, err)
		assert.Equal(t, bson.TypeDouble, bson.Raw(doc).Lookup("donationLimit").Type)
	})
}
