package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/ShounakShelke/carcircle-backend/internal/events"
	"github.com/ShounakShelke/carcircle-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// performRequest runs a request through the given engine and returns
// the recorder.
func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	topics []string
	events []events.Event
}

func (p *capturePublisher) Publish(topic string, event events.Event) {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
}

// MockUserCollection is a mock implementation of db.UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateUser(ctx context.Context, id string, user models.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockUserCollection) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCarCollection is a mock implementation of db.CarCollection
type MockCarCollection struct {
	mock.Mock
}

func (m *MockCarCollection) InsertCar(ctx context.Context, car models.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarCollection) FindCars(ctx context.Context) ([]models.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarCollection) FindCarByID(ctx context.Context, id string) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarCollection) UpdateCar(ctx context.Context, id string, car models.Car) error {
	args := m.Called(ctx, id, car)
	return args.Error(0)
}

func (m *MockCarCollection) DeleteCar(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookingCollection is a mock implementation of db.BookingCollection
type MockBookingCollection struct {
	mock.Mock
}

func (m *MockBookingCollection) InsertBooking(ctx context.Context, booking models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingCollection) FindBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingCollection) FindBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingCollection) UpdateBooking(ctx context.Context, id string, booking models.Booking) error {
	args := m.Called(ctx, id, booking)
	return args.Error(0)
}

func (m *MockBookingCollection) DeleteBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaintenanceCollection is a mock implementation of db.MaintenanceCollection
type MockMaintenanceCollection struct {
	mock.Mock
}

func (m *MockMaintenanceCollection) InsertJob(ctx context.Context, job models.Maintenance) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockMaintenanceCollection) FindJobs(ctx context.Context, filter bson.M) ([]models.Maintenance, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Maintenance), args.Error(1)
}

func (m *MockMaintenanceCollection) FindJobByID(ctx context.Context, id string) (*models.Maintenance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Maintenance), args.Error(1)
}

func (m *MockMaintenanceCollection) UpdateJob(ctx context.Context, id string, job models.Maintenance) error {
	args := m.Called(ctx, id, job)
	return args.Error(0)
}

func (m *MockMaintenanceCollection) DeleteJob(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMessageCollection is a mock implementation of db.MessageCollection
type MockMessageCollection struct {
	mock.Mock
}

func (m *MockMessageCollection) InsertMessage(ctx context.Context, message models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageCollection) FindMessages(ctx context.Context, filter bson.M) ([]models.Message, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageCollection) FindMessageByID(ctx context.Context, id string) (*models.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageCollection) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageCollection) DeleteMessage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
