package usecase

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/6DaddyCoders9/Salon-App/config"
	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/internal/service"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
	"github.com/6DaddyCoders9/Salon-App/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testClient() *appwrite.Client {
	return appwrite.New(appwrite.Config{Endpoint: "http://appwrite.test/v1", ProjectID: "proj"})
}

func newTestSessionService(t *testing.T) (*service.SessionService, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return service.NewSessionService(rdb, quietLogger()), mr
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
}

type fakeAccountRepo struct {
	mu             sync.Mutex
	account        *entity.Account
	session        *entity.Session
	createErr      error
	sessionErr     error
	getErr         error
	deleteErr      error
	sessionCalls   int
	deletedSession string
	deletedAll     string
	getSession     string
}

func (f *fakeAccountRepo) Create(ctx context.Context, client *appwrite.Client, email, password, name string) (*entity.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &entity.Account{ID: f.account.ID, Name: name, Email: email}, nil
}

func (f *fakeAccountRepo) CreateSession(ctx context.Context, client *appwrite.Client, email, password string) (*entity.Session, error) {
	f.mu.Lock()
	f.sessionCalls++
	f.mu.Unlock()
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	return f.session, nil
}

func (f *fakeAccountRepo) Get(ctx context.Context, client *appwrite.Client) (*entity.Account, error) {
	f.getSession = client.Session()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.account, nil
}

func (f *fakeAccountRepo) DeleteCurrentSession(ctx context.Context, client *appwrite.Client) error {
	f.deletedSession = client.Session()
	return f.deleteErr
}

func (f *fakeAccountRepo) DeleteAllSessions(ctx context.Context, client *appwrite.Client) error {
	f.deletedAll = client.Session()
	return f.deleteErr
}

func (f *fakeAccountRepo) InitialsAvatar(client *appwrite.Client, name string) string {
	return "https://avatars.test/initials?name=" + name
}

type fakeUserRepo struct {
	users         map[string]*entity.User
	createErr     error
	createSession string
}

func (f *fakeUserRepo) Create(ctx context.Context, client *appwrite.Client, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createSession = client.Session()
	user.ID = "user-" + user.AccountID
	if f.users == nil {
		f.users = map[string]*entity.User{}
	}
	f.users[user.AccountID] = user
	return nil
}

func (f *fakeUserRepo) FindByAccountID(ctx context.Context, client *appwrite.Client, accountID string) (*entity.User, error) {
	return f.users[accountID], nil
}

type fakeServiceCenterRepo struct {
	centers map[string]*entity.ServiceCenter
	delays  map[string]time.Duration
	errs    map[string]error
	listErr error
	queries []string
	mu      sync.Mutex
}

func (f *fakeServiceCenterRepo) FindAll(ctx context.Context, client *appwrite.Client) ([]entity.ServiceCenter, error) {
	f.queries = append(f.queries, "")
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []entity.ServiceCenter
	for _, c := range f.centers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeServiceCenterRepo) Search(ctx context.Context, client *appwrite.Client, title string) ([]entity.ServiceCenter, error) {
	f.queries = append(f.queries, title)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []entity.ServiceCenter{{ID: "found", Title: title}}, nil
}

func (f *fakeServiceCenterRepo) FindByID(ctx context.Context, client *appwrite.Client, id string) (*entity.ServiceCenter, error) {
	if d := f.delays[id]; d > 0 {
		time.Sleep(d)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	return f.centers[id], nil
}

type fakeAppointmentRepo struct {
	appointments []entity.Appointment
	created      *entity.Appointment
	createErr    error
	findErr      error
	deleteErr    error
	deleted      string
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, client *appwrite.Client, appointment *entity.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	appointment.ID = "ap-new"
	f.created = appointment
	return nil
}

func (f *fakeAppointmentRepo) FindByCreator(ctx context.Context, client *appwrite.Client, userID string) ([]entity.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.Creator.ID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, client *appwrite.Client, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = id
	return nil
}

type fakeAuditService struct {
	mu       sync.Mutex
	actions  []string
	metadata []entity.JSON
}

func (f *fakeAuditService) record(action string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
	return nil
}

func (f *fakeAuditService) LogCreate(ctx context.Context, accountID string, action string, entityName string, entityID string, newValue interface{}) error {
	return f.record(action)
}

func (f *fakeAuditService) LogDelete(ctx context.Context, accountID string, action string, entityName string, entityID string) error {
	return f.record(action)
}

func (f *fakeAuditService) LogEvent(ctx context.Context, accountID string, action string, metadata entity.JSON) error {
	f.mu.Lock()
	f.metadata = append(f.metadata, metadata)
	f.mu.Unlock()
	return f.record(action)
}
