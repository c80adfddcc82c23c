package service

import (
	"context"
	"sync"
	"time"

	"jobconnect/internal/domain"
	"jobconnect/internal/notify"
)

// In-memory repository fakes. IDs are assigned sequentially per fake; every
// lookup that misses returns domain.ErrNotFound like the real store would.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email || e.NationalID == u.NationalID {
			return domain.ErrConflict
		}
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmailOrNationalID(_ context.Context, email, nationalID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email || u.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdatePasswordByEmail(_ context.Context, email, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u.PasswordHash = hash
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeAdminRepo struct {
	nextID int64
	admins map[int64]*domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[int64]*domain.Admin{}}
}

func (r *fakeAdminRepo) Create(_ context.Context, a *domain.Admin) error {
	for _, e := range r.admins {
		if e.Email == a.Email {
			return domain.ErrConflict
		}
	}
	r.nextID++
	a.ID = r.nextID
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id int64) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeCompanyRepo struct {
	nextID    int64
	companies map[int64]*domain.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[int64]*domain.Company{}}
}

func (r *fakeCompanyRepo) Upsert(_ context.Context, c *domain.Company) error {
	for _, e := range r.companies {
		if e.OwnerID == c.OwnerID {
			e.Name, e.Description, e.Website = c.Name, c.Description, c.Website
			c.ID = e.ID
			return nil
		}
	}
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) FindByOwner(_ context.Context, ownerID int64) (*domain.Company, error) {
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id int64) (*domain.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

type fakeJobRepo struct {
	nextID    int64
	jobs      map[int64]*domain.Job
	companies *fakeCompanyRepo
}

func newFakeJobRepo(companies *fakeCompanyRepo) *fakeJobRepo {
	return &fakeJobRepo{jobs: map[int64]*domain.Job{}, companies: companies}
}

func (r *fakeJobRepo) Create(_ context.Context, j *domain.Job) error {
	r.nextID++
	j.ID = r.nextID
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, j *domain.Job) error {
	if _, ok := r.jobs[j.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) FindByID(_ context.Context, id int64) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) FindOwned(_ context.Context, id, ownerID int64) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c, ok := r.companies.companies[j.CompanyID]
	if !ok || c.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) ListActive(_ context.Context, f domain.JobFilter, now time.Time) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if !j.Active(now) {
			continue
		}
		if f.Type != "" && j.Type != f.Type {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) ListByCompany(_ context.Context, companyID int64) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListAll(_ context.Context) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) CountActive(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if j.Active(now) {
			n++
		}
	}
	return n, nil
}

type fakeApplicationRepo struct {
	nextID int64
	apps   map[int64]*domain.Application
	jobs   *fakeJobRepo
	users  *fakeUserRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo, users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[int64]*domain.Application{}, jobs: jobs, users: users}
}

func (r *fakeApplicationRepo) Create(_ context.Context, a *domain.Application) error {
	for _, e := range r.apps {
		if e.UserID == a.UserID && e.JobID == a.JobID {
			return domain.ErrConflict
		}
	}
	r.nextID++
	a.ID = r.nextID
	cp := *a
	r.apps[a.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) preload(a domain.Application) *domain.Application {
	if u, ok := r.users.users[a.UserID]; ok {
		cu := *u
		a.User = &cu
	}
	if j, ok := r.jobs.jobs[a.JobID]; ok {
		cj := *j
		if c, ok := r.jobs.companies.companies[cj.CompanyID]; ok {
			cc := *c
			cj.Company = &cc
		}
		a.Job = &cj
	}
	return &a
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id int64) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.preload(*a), nil
}

func (r *fakeApplicationRepo) FindOwned(_ context.Context, id, employerID int64) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	j, ok := r.jobs.jobs[a.JobID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c, ok := r.jobs.companies.companies[j.CompanyID]
	if !ok || c.OwnerID != employerID {
		return nil, domain.ErrNotFound
	}
	return r.preload(*a), nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	a, ok := r.apps[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeApplicationRepo) ListByUser(_ context.Context, userID int64) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, *r.preload(*a))
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByJob(_ context.Context, jobID int64) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, *r.preload(*a))
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListAll(_ context.Context) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range r.apps {
		out = append(out, *r.preload(*a))
	}
	return out, nil
}

type fakeAnnouncementRepo struct {
	nextID int64
	items  map[int64]*domain.Announcement
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{items: map[int64]*domain.Announcement{}}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) error {
	r.nextID++
	a.ID = r.nextID
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAnnouncementRepo) ListAll(_ context.Context) ([]domain.Announcement, error) {
	var out []domain.Announcement
	for _, a := range r.items {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) ListActive(_ context.Context, now time.Time) ([]domain.Announcement, error) {
	var out []domain.Announcement
	for _, a := range r.items {
		if a.Active(now) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) ListExpired(_ context.Context, now time.Time) ([]domain.Announcement, error) {
	var out []domain.Announcement
	for _, a := range r.items {
		if !a.Active(now) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, a := range r.items {
		if !a.Active(now) {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeAnnouncementRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeProfileRepo struct {
	nextID   int64
	profiles map[int64]*domain.EmployeeProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[int64]*domain.EmployeeProfile{}}
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *domain.EmployeeProfile) error {
	if e, ok := r.profiles[p.UserID]; ok {
		e.Phone, e.Location, e.Education = p.Phone, p.Location, p.Education
		e.Skills, e.Experience = p.Skills, p.Experience
		p.ID = e.ID
		return nil
	}
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) FindByUser(_ context.Context, userID int64) (*domain.EmployeeProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

type fakeDocumentRepo struct {
	nextID int64
	docs   map[int64]*domain.EmployeeDocument
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[int64]*domain.EmployeeDocument{}}
}

func (r *fakeDocumentRepo) Create(_ context.Context, d *domain.EmployeeDocument) error {
	r.nextID++
	d.ID = r.nextID
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) ListByUser(_ context.Context, userID int64) ([]domain.EmployeeDocument, error) {
	var out []domain.EmployeeDocument
	for _, d := range r.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) FindOwned(_ context.Context, id, userID int64) (*domain.EmployeeDocument, error) {
	d, ok := r.docs[id]
	if !ok || d.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocumentRepo) DeleteOwned(_ context.Context, id, userID int64) error {
	d, ok := r.docs[id]
	if !ok || d.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

// captureMailer records sends for assertion behind the real dispatcher.
type captureMailer struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (m *captureMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, notify.Message{To: to, Subject: subject, Body: body})
	return nil
}

func (m *captureMailer) messages() []notify.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notify.Message, len(m.sent))
	copy(out, m.sent)
	return out
}
