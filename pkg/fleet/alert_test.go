package fleet

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
	_ "github.com/EagleFox31/YaroFleet/pkg/testing"
)

func lowStockAlertsForPart(t *testing.T, f *Fleet, partID uint) []models.Alert {
	t.Helper()
	var alerts []models.Alert
	link := fmt.Sprintf("/inventory/parts/%d", partID)
	err := f.Db.Conn.
		Where("type = ? AND link = ?", models.AlertTypeInventory, link).
		Find(&alerts).Error
	require.NoError(t, err)
	return alerts
}

func TestLowStockAlertStoredOncePerCrossing(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	part := newTestPart(t, fleetObj, 3, 5)

	require.NoError(t, fleetObj.Alert.CheckAndStoreLowStockAlert(part))
	require.NoError(t, fleetObj.Alert.CheckAndStoreLowStockAlert(part))

	alerts := lowStockAlertsForPart(t, fleetObj, part.ID)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeInventory, alerts[0].Type)
	assert.Equal(t, models.PriorityHigh, alerts[0].Priority)
	assert.Nil(t, alerts[0].UserID) // broadcast
	assert.False(t, alerts[0].IsRead)
}

func TestLowStockAlertRearmsAfterRead(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	part := newTestPart(t, fleetObj, 3, 5)

	require.NoError(t, fleetObj.Alert.CheckAndStoreLowStockAlert(part))
	alerts := lowStockAlertsForPart(t, fleetObj, part.ID)
	require.Len(t, alerts, 1)

	_, err := fleetObj.Alert.MarkAlertAsRead(alerts[0].ID)
	require.NoError(t, err)

	// With the previous alert acknowledged a new crossing alerts again.
	require.NoError(t, fleetObj.Alert.CheckAndStoreLowStockAlert(part))
	assert.Len(t, lowStockAlertsForPart(t, fleetObj, part.ID), 2)
}

func TestNoLowStockAlertAboveThreshold(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	part := newTestPart(t, fleetObj, 10, 5)

	require.NoError(t, fleetObj.Alert.CheckAndStoreLowStockAlert(part))
	assert.Empty(t, lowStockAlertsForPart(t, fleetObj, part.ID))
}

func TestLowStockAlert_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	part := newTestPart(t, fleetObj, 2, 5)
	require.NoError(t, fleetObj.Alert.CheckAndStoreLowStockAlert(part))

	logs := ParseLogs(buf)
	assert.NotEmpty(t, logs)

	found := false
	for _, entry := range logs {
		if m, ok := entry.(map[string]any); ok && m["msg"] == "Alert saved" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestUserAlertListingIncludesBroadcasts(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	user := newTestUser(t, fleetObj, models.RoleUser, "secret123")
	other := newTestUser(t, fleetObj, models.RoleUser, "secret123")

	personal := &models.Alert{
		UserID:  &user.ID,
		Title:   "Assigned work order",
		Message: "Work order 42 is yours",
		Type:    models.AlertTypeWorkOrder,
	}
	require.NoError(t, fleetObj.Alert.CreateAlert(personal))

	foreign := &models.Alert{
		UserID:  &other.ID,
		Title:   "Not yours",
		Message: "Different user",
		Type:    models.AlertTypeWorkOrder,
	}
	require.NoError(t, fleetObj.Alert.CreateAlert(foreign))

	broadcast := &models.Alert{
		Title:   "Fleet notice",
		Message: "Garage closed friday",
		Type:    models.AlertTypeMaintenance,
	}
	require.NoError(t, fleetObj.Alert.CreateAlert(broadcast))

	alerts, err := fleetObj.Alert.ListUserAlerts(user.ID)
	require.NoError(t, err)

	ids := map[uint]bool{}
	for _, alert := range alerts {
		ids[alert.ID] = true
	}
	assert.True(t, ids[personal.ID])
	assert.True(t, ids[broadcast.ID])
	assert.False(t, ids[foreign.ID])
}

func TestMarkAlertAsRead(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, fleetObj, _, _ := GetMockFleetWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	user := newTestUser(t, fleetObj, models.RoleUser, "secret123")

	alert := &models.Alert{
		UserID:  &user.ID,
		Title:   "Ping",
		Message: "Read me",
		Type:    models.AlertTypeMaintenance,
	}
	require.NoError(t, fleetObj.Alert.CreateAlert(alert))
	require.False(t, alert.IsRead)

	read, err := fleetObj.Alert.MarkAlertAsRead(alert.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	unread, err := fleetObj.Alert.ListUnreadUserAlerts(user.ID)
	require.NoError(t, err)
	for _, remaining := range unread {
		assert.NotEqual(t, alert.ID, remaining.ID)
	}
}
