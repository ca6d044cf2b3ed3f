package realtime

import (
	"encoding/json"
	"testing"

	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInMapper_Map(t *testing.T) {
	mapper := CheckInMapper{}

	testCases := []struct {
		name        string
		status      string
		expectKey   string
		escalates   bool
		withRefresh bool
	}{
		{name: "безопасный чек-ин без эскалации", status: models.CheckInStatusSafe},
		{name: "экстренный чек-ин эскалируется", status: models.CheckInStatusEmergency, expectKey: "emergency:c1", escalates: true, withRefresh: true},
		{name: "пропущенный чек-ин эскалируется", status: models.CheckInStatusMissed, expectKey: "missed:c1", escalates: true, withRefresh: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := json.Marshal(models.CheckIn{ID: "c1", UserID: "friend", Status: tc.status})
			require.NoError(t, err)

			record, esc, err := mapper.Map(ChangeEvent{Table: mapper.Table(), UserID: "friend", Payload: payload})

			require.NoError(t, err)
			checkIn, ok := record.(models.CheckIn)
			require.True(t, ok)
			assert.Equal(t, tc.status, checkIn.Status)
			if !tc.escalates {
				assert.Nil(t, esc)
				return
			}
			require.NotNil(t, esc)
			assert.Equal(t, tc.expectKey, esc.Key)
			assert.Equal(t, tc.withRefresh, esc.Refresh)
		})
	}
}

func TestCheckInMapper_Map_BadPayload(t *testing.T) {
	mapper := CheckInMapper{}

	_, _, err := mapper.Map(ChangeEvent{Payload: []byte("not json")})

	require.Error(t, err)
}

func TestAdvisoryMapper_Map(t *testing.T) {
	mapper := AdvisoryMapper{RiskThreshold: 0.7}

	testCases := []struct {
		name      string
		riskScore float64
		escalates bool
	}{
		{name: "ниже порога", riskScore: 0.69, escalates: false},
		{name: "ровно на пороге", riskScore: 0.7, escalates: true},
		{name: "выше порога", riskScore: 0.95, escalates: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := json.Marshal(models.TravelAdvisory{ID: "a1", Region: "downtown", RiskScore: tc.riskScore})
			require.NoError(t, err)

			_, esc, err := mapper.Map(ChangeEvent{Table: mapper.Table(), UserID: "friend", Payload: payload})

			require.NoError(t, err)
			if tc.escalates {
				require.NotNil(t, esc)
				assert.Equal(t, "high-risk:a1", esc.Key)
			} else {
				assert.Nil(t, esc)
			}
		})
	}
}
