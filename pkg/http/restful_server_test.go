package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/EagleFox31/YaroFleet/pkg/fleet/mocks"
	_ "github.com/EagleFox31/YaroFleet/pkg/testing"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/db"
	"github.com/EagleFox31/YaroFleet/pkg/fleet"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func setupTestServer() *RestfulServer {
	fleetObj := fleet.Fleet{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	fleetObj.WithAllServices()

	rs := &RestfulServer{
		Server:   gin.Default(),
		Fleet:    &fleetObj,
		Sessions: fleet.NewSessionStore(fleet.DefaultSessionTTL),
		// default we use no login limiter, if need, later assign it
		// rs.LoginLimiterStore = fleet.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func newSessionUser(t *testing.T, rs *RestfulServer, role models.Role) (*models.User, *http.Cookie) {
	t.Helper()
	user := &models.User{
		Username: uuid.NewString(),
		Email:    uuid.NewString() + "@yarofleet.local",
		Name:     "Test User",
		Role:     role,
	}
	require.NoError(t, rs.Fleet.User.CreateUser(user, "secret123"))

	token := rs.Sessions.Create(user.ID)
	return user, &http.Cookie{Name: common.SessionCookieName, Value: token}
}

func doJSON(rs *RestfulServer, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterLoginMeLogout(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	username := uuid.NewString()
	email := uuid.NewString() + "@yarofleet.local"

	w := doJSON(rs, "POST", "/api/auth/register", gin.H{
		"username": username,
		"password": "secret123",
		"email":    email,
		"name":     "New User",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var registered UserView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Equal(t, username, registered.Username)
	assert.Equal(t, models.RoleUser, registered.Role)

	w = doJSON(rs, "POST", "/api/auth/login", gin.H{
		"username": username,
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var session *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == common.SessionCookieName {
			session = cookie
		}
	}
	require.NotNil(t, session)

	w = doJSON(rs, "GET", "/api/auth/me", nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	var me UserView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, registered.ID, me.ID)

	w = doJSON(rs, "POST", "/api/auth/logout", nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/api/auth/me", nil, session)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	user, _ := newSessionUser(t, rs, models.RoleUser)

	w := doJSON(rs, "POST", "/api/auth/login", gin.H{
		"username": user.Username,
		"password": "not-the-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(rs, "POST", "/api/auth/login", gin.H{"username": user.Username}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRateLimited(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	rs.LoginLimiterStore = fleet.NewRateLimiterStore(rate.Limit(1), 1)

	user, _ := newSessionUser(t, rs, models.RoleUser)
	body := gin.H{"username": user.Username, "password": "secret123"}

	w := doJSON(rs, "POST", "/api/auth/login", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "POST", "/api/auth/login", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRequiresAuthentication(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doJSON(rs, "GET", "/api/vehicles", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionExpiryReturns401(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	rs.Sessions = fleet.NewSessionStore(10 * time.Millisecond)

	user := &models.User{
		Username: uuid.NewString(),
		Email:    uuid.NewString() + "@yarofleet.local",
		Name:     "Short Lived",
	}
	require.NoError(t, rs.Fleet.User.CreateUser(user, "secret123"))

	token := rs.Sessions.Create(user.ID)
	cookie := &http.Cookie{Name: common.SessionCookieName, Value: token}

	w := doJSON(rs, "GET", "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	time.Sleep(20 * time.Millisecond)

	w = doJSON(rs, "GET", "/api/auth/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVehicleRoleGates(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, technicianCookie := newSessionUser(t, rs, models.RoleTechnician)
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)
	_, adminCookie := newSessionUser(t, rs, models.RoleAdmin)

	body := gin.H{
		"registrationNumber": uuid.NewString(),
		"brand":              "Renault",
		"model":              "Master",
		"year":               2021,
	}

	w := doJSON(rs, "POST", "/api/vehicles", body, technicianCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(rs, "POST", "/api/vehicles", body, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))

	deletePath := fmt.Sprintf("/api/vehicles/%d", vehicle.ID)
	w = doJSON(rs, "DELETE", deletePath, nil, managerCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(rs, "DELETE", deletePath, nil, adminCookie)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestVehicleCrud(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)

	registration := uuid.NewString()
	w := doJSON(rs, "POST", "/api/vehicles", gin.H{
		"registrationNumber": registration,
		"brand":              "Toyota",
		"model":              "Hilux",
		"year":               2019,
		"mileage":            103_500,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))
	assert.Equal(t, models.VehicleStatusOperational, vehicle.Status)

	// empty payload should be rejected
	w = doJSON(rs, "POST", "/api/vehicles", gin.H{}, managerCookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate registration should be rejected
	w = doJSON(rs, "POST", "/api/vehicles", gin.H{
		"registrationNumber": registration,
		"brand":              "Toyota",
		"model":              "Hilux",
		"year":               2019,
	}, managerCookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, "GET", "/api/vehicles?search="+registration, nil, managerCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Vehicles []models.Vehicle `json:"vehicles"`
		Total    int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, int64(1), list.Total)

	patchPath := fmt.Sprintf("/api/vehicles/%d", vehicle.ID)
	w = doJSON(rs, "PATCH", patchPath, gin.H{"status": "out_of_service"}, managerCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.VehicleStatusOutOfService, updated.Status)

	w = doJSON(rs, "GET", "/api/vehicles/999999999", nil, managerCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func createVehiclePartOrder(t *testing.T, rs *RestfulServer, managerCookie *http.Cookie, partQuantity int) (models.Vehicle, models.Part, models.WorkOrder) {
	t.Helper()

	w := doJSON(rs, "POST", "/api/vehicles", gin.H{
		"registrationNumber": uuid.NewString(),
		"brand":              "Renault",
		"model":              "Master",
		"year":               2021,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))

	w = doJSON(rs, "POST", "/api/parts", gin.H{
		"name":        "Brake pads",
		"reference":   uuid.NewString(),
		"quantity":    partQuantity,
		"minQuantity": 2,
		"unitPrice":   34.90,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var part models.Part
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &part))

	w = doJSON(rs, "POST", "/api/work-orders", gin.H{
		"vehicleId": vehicle.ID,
		"title":     "Brake job",
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.WorkOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	return vehicle, part, order
}

func partQuantityHttp(t *testing.T, rs *RestfulServer, cookie *http.Cookie, partID uint) int {
	t.Helper()
	w := doJSON(rs, "GET", fmt.Sprintf("/api/parts/%d", partID), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var part models.Part
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &part))
	return part.Quantity
}

func TestWorkOrderPartsFlow(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)
	_, technicianCookie := newSessionUser(t, rs, models.RoleTechnician)

	_, part, order := createVehiclePartOrder(t, rs, managerCookie, 10)

	attachPath := fmt.Sprintf("/api/work-orders/%d/parts", order.ID)
	w := doJSON(rs, "POST", attachPath, gin.H{"partId": part.ID, "quantity": 2}, technicianCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var used models.PartUsed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &used))
	assert.Equal(t, 2, used.Quantity)
	assert.Equal(t, 34.90, used.UnitPrice) // snapshotted from the catalog

	assert.Equal(t, 8, partQuantityHttp(t, rs, managerCookie, part.ID))

	w = doJSON(rs, "GET", attachPath, nil, technicianCookie)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []models.PartUsed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)

	// Detach returns stock.
	w = doJSON(rs, "DELETE", fmt.Sprintf("/api/parts-used/%d", used.ID), nil, technicianCookie)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 10, partQuantityHttp(t, rs, managerCookie, part.ID))

	// Re-attach, then close the order and verify attachments are rejected.
	w = doJSON(rs, "POST", attachPath, gin.H{"partId": part.ID}, technicianCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	orderPath := fmt.Sprintf("/api/work-orders/%d", order.ID)
	w = doJSON(rs, "PATCH", orderPath, gin.H{"status": "in_progress"}, technicianCookie)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(rs, "PATCH", orderPath, gin.H{"status": "completed"}, technicianCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var completed models.WorkOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &completed))
	require.NotNil(t, completed.EndDate)

	w = doJSON(rs, "POST", attachPath, gin.H{"partId": part.ID}, technicianCookie)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWorkOrderIllegalTransition(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)
	_, technicianCookie := newSessionUser(t, rs, models.RoleTechnician)

	_, _, order := createVehiclePartOrder(t, rs, managerCookie, 5)

	orderPath := fmt.Sprintf("/api/work-orders/%d", order.ID)
	w := doJSON(rs, "PATCH", orderPath, gin.H{"status": "completed"}, technicianCookie)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(rs, "PATCH", orderPath, gin.H{"status": "on_hold"}, technicianCookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLowStockListingAndAdjustStock(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)

	w := doJSON(rs, "POST", "/api/parts", gin.H{
		"name":        "Wiper blade",
		"reference":   uuid.NewString(),
		"quantity":    10,
		"minQuantity": 5,
		"unitPrice":   11.20,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var part models.Part
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &part))

	adjustPath := fmt.Sprintf("/api/parts/%d/adjust-stock", part.ID)
	w = doJSON(rs, "POST", adjustPath, gin.H{"delta": -7}, managerCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var adjusted models.Part
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adjusted))
	assert.Equal(t, 3, adjusted.Quantity)

	w = doJSON(rs, "GET", "/api/parts/low-on-stock", nil, managerCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var lowParts []models.Part
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lowParts))
	found := false
	for _, p := range lowParts {
		if p.ID == part.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAlertsUnreadAndMarkRead(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)
	_, userCookie := newSessionUser(t, rs, models.RoleUser)

	w := doJSON(rs, "POST", "/api/alerts", gin.H{
		"title":   "Garage closed",
		"message": "Closed friday afternoon",
		"type":    "maintenance",
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var alert models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alert))
	assert.Nil(t, alert.UserID) // broadcast

	w = doJSON(rs, "GET", "/api/alerts/unread", nil, userCookie)
	require.Equal(t, http.StatusOK, w.Code)
	var unread []models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unread))
	found := false
	for _, a := range unread {
		if a.ID == alert.ID {
			found = true
		}
	}
	require.True(t, found)

	w = doJSON(rs, "PATCH", fmt.Sprintf("/api/alerts/%d/read", alert.ID), nil, userCookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/api/alerts/unread", nil, userCookie)
	require.Equal(t, http.StatusOK, w.Code)
	unread = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unread))
	for _, a := range unread {
		assert.NotEqual(t, alert.ID, a.ID)
	}
}

func TestFuelRecordsAndConsumption(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)

	w := doJSON(rs, "POST", "/api/vehicles", gin.H{
		"registrationNumber": uuid.NewString(),
		"brand":              "Renault",
		"model":              "Master",
		"year":               2021,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))

	w = doJSON(rs, "POST", "/api/fuel-records", gin.H{
		"vehicleId": vehicle.ID,
		"date":      time.Now().AddDate(0, 0, -14),
		"quantity":  55,
		"mileage":   10_000,
		"fullTank":  true,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(rs, "POST", "/api/fuel-records", gin.H{
		"vehicleId": vehicle.ID,
		"date":      time.Now().AddDate(0, 0, -2),
		"quantity":  40,
		"mileage":   10_500,
		"fullTank":  true,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)

	// Vehicle odometer follows the highest reading.
	w = doJSON(rs, "GET", fmt.Sprintf("/api/vehicles/%d", vehicle.ID), nil, managerCookie)
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.Equal(t, 10_500, refreshed.Mileage)

	w = doJSON(rs, "GET", fmt.Sprintf("/api/fuel-records/vehicle/%d/consumption", vehicle.ID), nil, managerCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var segments []models.ConsumptionSegment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &segments))
	require.Len(t, segments, 1)
	assert.Equal(t, 8.00, segments[0].LitersPer100Km)
}

func TestFuelRecordFullTankDefaultsTrueKeepsExplicitFalse(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)

	w := doJSON(rs, "POST", "/api/vehicles", gin.H{
		"registrationNumber": uuid.NewString(),
		"brand":              "Renault",
		"model":              "Master",
		"year":               2021,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))

	// omitted -> full tank
	w = doJSON(rs, "POST", "/api/fuel-records", gin.H{
		"vehicleId": vehicle.ID,
		"date":      time.Now(),
		"quantity":  55,
		"mileage":   1_000,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var record models.FuelRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.True(t, record.FullTank)

	// explicit false survives the round trip
	w = doJSON(rs, "POST", "/api/fuel-records", gin.H{
		"vehicleId": vehicle.ID,
		"date":      time.Now(),
		"quantity":  15,
		"mileage":   1_200,
		"fullTank":  false,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var partial models.FuelRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partial))
	require.False(t, partial.FullTank)

	stored, err := rs.Fleet.Fuel.GetFuelRecord(partial.ID)
	require.NoError(t, err)
	assert.False(t, stored.FullTank)
}

func TestPartMinQuantityDefaultsKeepExplicitZero(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)

	w := doJSON(rs, "POST", "/api/parts", gin.H{
		"name":      "Coolant hose",
		"reference": uuid.NewString(),
		"quantity":  9,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var part models.Part
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &part))
	assert.Equal(t, 5, part.MinQuantity)

	w = doJSON(rs, "POST", "/api/parts", gin.H{
		"name":        "Legacy gasket",
		"reference":   uuid.NewString(),
		"quantity":    1,
		"minQuantity": 0,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var noThreshold models.Part
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &noThreshold))
	require.Equal(t, 0, noThreshold.MinQuantity)

	stored, err := rs.Fleet.Inventory.GetPart(noThreshold.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.MinQuantity)
}

func TestScheduleIsActiveDefaultsTrueKeepsExplicitFalse(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)

	w := doJSON(rs, "POST", "/api/vehicles", gin.H{
		"registrationNumber": uuid.NewString(),
		"brand":              "Toyota",
		"model":              "Hilux",
		"year":               2019,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))

	w = doJSON(rs, "POST", "/api/maintenance-schedules", gin.H{
		"vehicleId": vehicle.ID,
		"title":     "Coolant flush",
		"frequency": "yearly",
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var schedule models.MaintenanceSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
	assert.True(t, schedule.IsActive)

	w = doJSON(rs, "POST", "/api/maintenance-schedules", gin.H{
		"vehicleId": vehicle.ID,
		"title":     "Paused brake plan",
		"frequency": "monthly",
		"isActive":  false,
	}, managerCookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var paused models.MaintenanceSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &paused))
	require.False(t, paused.IsActive)

	stored, err := rs.Fleet.Schedule.GetSchedule(paused.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestTechniciansEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	technician, technicianCookie := newSessionUser(t, rs, models.RoleTechnician)
	_, managerCookie := newSessionUser(t, rs, models.RoleWorkshopManager)

	w := doJSON(rs, "GET", "/api/users/technicians", nil, technicianCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(rs, "GET", "/api/users/technicians", nil, managerCookie)
	require.Equal(t, http.StatusOK, w.Code)

	var views []UserView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	found := false
	for _, view := range views {
		if view.ID == technician.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestStatisticsEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, cookie := newSessionUser(t, rs, models.RoleUser)

	w := doJSON(rs, "GET", "/api/statistics/fleet", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/api/statistics/maintenance-compliance", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/api/statistics/maintenance-cost/week", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, "GET", "/api/statistics/maintenance-cost/decade", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatisticsServiceError(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	_, cookie := newSessionUser(t, rs, models.RoleUser)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIStats := mocks.NewMockIStats(ctrl)
	mockIStats.EXPECT().FleetStatistics().Return(nil, errors.New("storage down"))
	rs.Fleet.WithServices(fleet.ServiceOpts{Stats: mockIStats})

	w := doJSON(rs, "GET", "/api/statistics/fleet", nil, cookie)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
