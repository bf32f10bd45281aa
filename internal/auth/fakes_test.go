// AngelaMos | 2026
// fakes_test.go

package auth

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/tierhub/internal/config"
	"github.com/carterperez-dev/tierhub/internal/core"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*UserInfo
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[int64]*UserInfo{}}
}

func (f *fakeUsers) GetByIdentifier(_ context.Context, identifier string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Nametag == identifier || u.Email == strings.ToLower(identifier) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) GetCredentialsByID(_ context.Context, id int64) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, core.NotFoundError("user")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) CreateAccount(_ context.Context, nu NewUser) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Nametag == nu.Nametag || u.Email == nu.Email {
			return nil, core.ErrDuplicateKey
		}
	}
	f.nextID++
	u := &UserInfo{
		ID:             f.nextID,
		Username:       nu.Username,
		Nametag:        nu.Nametag,
		Email:          nu.Email,
		PasswordHash:   nu.PasswordHash,
		Status:         nu.Status,
		LastConnection: nu.LastConnection,
	}
	f.byID[u.ID] = u
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUsers) TouchLastConnection(_ context.Context, id int64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		u.LastConnection = at
	}
	return nil
}

func (f *fakeUsers) setStatus(id int64, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[id].Status = status
}

type fakeRoles struct {
	mu     sync.Mutex
	labels map[int64][]string
}

func newFakeRoles() *fakeRoles {
	return &fakeRoles{labels: map[int64][]string{}}
}

func (f *fakeRoles) RoleLabelsForUser(_ context.Context, userID int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.labels[userID]...), nil
}

func (f *fakeRoles) AssignDefaultRole(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.labels[userID] = append(f.labels[userID], "User")
	return nil
}

type fakeRevocationRepo struct {
	mu   sync.Mutex
	rows map[int64][]time.Time
}

func newFakeRevocationRepo() *fakeRevocationRepo {
	return &fakeRevocationRepo{rows: map[int64][]time.Time{}}
}

func (f *fakeRevocationRepo) Create(_ context.Context, userID int64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[userID] = append(f.rows[userID], at)
	return nil
}

func (f *fakeRevocationRepo) LatestForUser(_ context.Context, userID int64) (*time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *time.Time
	for _, at := range f.rows[userID] {
		if latest == nil || at.After(*latest) {
			v := at
			latest = &v
		}
	}
	return latest, nil
}

func (f *fakeRevocationRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, rows := range f.rows {
		kept := rows[:0]
		for _, at := range rows {
			if at.Before(cutoff) {
				n++
				continue
			}
			kept = append(kept, at)
		}
		f.rows[id] = kept
	}
	return n, nil
}

func (f *fakeRevocationRepo) count(userID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows[userID])
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type fakeDomains map[string]bool

func (f fakeDomains) HasMX(_ context.Context, domain string) (bool, error) {
	return f[domain], nil
}

type harness struct {
	clock   *clock
	jwt     *JWTManager
	users   *fakeUsers
	roles   *fakeRoles
	revRepo *fakeRevocationRepo
	mailer  *fakeMailer
	service *Service
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Algorithm:         "HS256",
		Secret:            "test-secret-that-is-long-enough-for-hs256",
		AccessTokenExpire: 24 * time.Hour,
		Issuer:            "tierhub-test",
		Audience:          "tierhub-test-api",
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	clk := newClock()
	manager, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)
	manager.SetClock(clk.Now)

	h := &harness{
		clock:   clk,
		jwt:     manager,
		users:   newFakeUsers(),
		roles:   newFakeRoles(),
		revRepo: newFakeRevocationRepo(),
		mailer:  &fakeMailer{},
	}

	h.service = NewService(ServiceConfig{
		JWT:         manager,
		Users:       h.users,
		Roles:       h.roles,
		Revocations: NewRevocations(h.revRepo, nil, nil, nil),
		Mailer:      h.mailer,
		Domains:     fakeDomains{"ex.com": true},
		FrontendURL: "https://tierhub.test/",
		Now:         clk.Now,
	})

	return h
}
