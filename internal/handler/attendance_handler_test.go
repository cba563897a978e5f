package handler_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"clinic-hr-backend/internal/handler"
	"clinic-hr-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakePunchRepo struct {
	punches []model.RawPunch
	created []model.RawPunch
	err     error
}

func (f *fakePunchRepo) CreateMany(punches []model.RawPunch) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, punches...)
	return nil
}
func (f *fakePunchRepo) GetAll() ([]model.RawPunch, error)         { return f.punches, f.err }
func (f *fakePunchRepo) CountByBatch(string) (int64, error)        { return 0, nil }

type fakeEmployeeRepo struct {
	deviceIDs []string
}

func (f *fakeEmployeeRepo) Create(*model.Employee) error                   { return nil }
func (f *fakeEmployeeRepo) Update(*model.Employee) error                   { return nil }
func (f *fakeEmployeeRepo) Delete(uint) error                              { return nil }
func (f *fakeEmployeeRepo) FindByID(uint) (*model.Employee, error)         { return nil, nil }
func (f *fakeEmployeeRepo) FindByEmail(string) (*model.Employee, error)    { return nil, nil }
func (f *fakeEmployeeRepo) FindByDeviceID(string) (*model.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) GetAll() ([]model.Employee, error)              { return nil, nil }
func (f *fakeEmployeeRepo) GetAllActive() ([]model.Employee, error)        { return nil, nil }
func (f *fakeEmployeeRepo) GetAllDeviceIDs() ([]string, error)             { return f.deviceIDs, nil }

type fakeAttendanceRepo struct {
	savedRecords []model.DailyAttendance
	savedStubs   []model.Employee
	saveErr      error
}

func (f *fakeAttendanceRepo) SaveAggregateRun(records []model.DailyAttendance, stubs []model.Employee) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedRecords = records
	f.savedStubs = stubs
	return nil
}
func (f *fakeAttendanceRepo) MergeLeave(string, string, string) error { return nil }
func (f *fakeAttendanceRepo) ClearLeave(string, string) error         { return nil }
func (f *fakeAttendanceRepo) GetHistory(string) ([]model.DailyAttendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) GetByDeviceAndMonth(string, string) ([]model.DailyAttendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) GetByMonth(string) ([]model.DailyAttendance, error) { return nil, nil }
func (f *fakeAttendanceRepo) GetByDate(string) ([]model.DailyAttendance, error)  { return nil, nil }

func TestAggregateEndpoint(t *testing.T) {
	punchRepo := &fakePunchRepo{punches: []model.RawPunch{
		{DeviceID: "101", FirstName: "Ana", LastName: "Wijaya", Timestamp: "2026-03-02 08:20:00", Direction: model.DirectionIn},
		{DeviceID: "101", FirstName: "Ana", LastName: "Wijaya", Timestamp: "2026-03-02 16:00:00", Direction: model.DirectionOut},
		{DeviceID: model.PunchHeaderLiteral, Timestamp: "Time", Direction: ""},
	}}
	employeeRepo := &fakeEmployeeRepo{deviceIDs: nil} // 101 is unknown
	attendanceRepo := &fakeAttendanceRepo{}

	hdl := handler.NewAttendanceHandler(punchRepo, employeeRepo, attendanceRepo, nil)

	app := fiber.New()
	app.Post("/aggregate", hdl.Aggregate)

	req := httptest.NewRequest("POST", "/aggregate", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["processed"])
	assert.Equal(t, float64(1), body["new_employees"])
	assert.Equal(t, float64(1), body["errors"])

	// The run actually reached the store
	assert.Len(t, attendanceRepo.savedRecords, 1)
	assert.Len(t, attendanceRepo.savedStubs, 1)
	assert.Equal(t, "101-2026-03-02", attendanceRepo.savedRecords[0].RecordKey)
}

func TestAggregateEndpointPersistenceFailureIsFatal(t *testing.T) {
	punchRepo := &fakePunchRepo{punches: []model.RawPunch{
		{DeviceID: "101", Timestamp: "2026-03-02 08:20:00", Direction: model.DirectionIn},
	}}
	attendanceRepo := &fakeAttendanceRepo{saveErr: errors.New("batch rejected")}

	hdl := handler.NewAttendanceHandler(punchRepo, &fakeEmployeeRepo{}, attendanceRepo, nil)

	app := fiber.New()
	app.Post("/aggregate", hdl.Aggregate)

	resp, err := app.Test(httptest.NewRequest("POST", "/aggregate", nil))
	assert.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Empty(t, attendanceRepo.savedRecords, "nothing may be committed on failure")
}

func TestAggregateEndpointEmptyStore(t *testing.T) {
	hdl := handler.NewAttendanceHandler(&fakePunchRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, nil)

	app := fiber.New()
	app.Post("/aggregate", hdl.Aggregate)

	resp, err := app.Test(httptest.NewRequest("POST", "/aggregate", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(0), body["processed"])
}
