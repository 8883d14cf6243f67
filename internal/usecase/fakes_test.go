package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"employee-profile-backend/config"
	"employee-profile-backend/internal/domain"
	"employee-profile-backend/internal/usecase"
	"employee-profile-backend/pkg/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// memReferenceRepo is an in-memory get-or-create store keyed by (kind, name).
type memReferenceRepo struct {
	mu      sync.Mutex
	byName  map[domain.ReferenceKind]map[string]domain.ReferenceEntity
	calls   int
	failErr error
}

func newMemReferenceRepo() *memReferenceRepo {
	return &memReferenceRepo{byName: make(map[domain.ReferenceKind]map[string]domain.ReferenceEntity)}
}

func (r *memReferenceRepo) GetOrCreate(ctx context.Context, kind domain.ReferenceKind, name string) (*domain.ReferenceEntity, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failErr != nil {
		return nil, false, r.failErr
	}
	if r.byName[kind] == nil {
		r.byName[kind] = make(map[string]domain.ReferenceEntity)
	}
	if e, ok := r.byName[kind][name]; ok {
		return &e, false, nil
	}
	e := domain.ReferenceEntity{ID: uuid.New(), Kind: kind, Name: name, CreatedAt: time.Now()}
	r.byName[kind][name] = e
	return &e, true, nil
}

func (r *memReferenceRepo) GetByName(ctx context.Context, kind domain.ReferenceKind, name string) (*domain.ReferenceEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byName[kind][name]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *memReferenceRepo) ListNames(ctx context.Context, kind domain.ReferenceKind) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := []string{}
	for name := range r.byName[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *memReferenceRepo) count(kind domain.ReferenceKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byName[kind])
}

// Mock Cache
type MockReferenceCache struct {
	mock.Mock
}

func (m *MockReferenceCache) Get(ctx context.Context, kind domain.ReferenceKind) ([]string, bool) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]string), args.Bool(1)
}

func (m *MockReferenceCache) Generation(ctx context.Context, kind domain.ReferenceKind) domain.CacheGeneration {
	return m.Called(ctx, kind).Get(0).(domain.CacheGeneration)
}

func (m *MockReferenceCache) SetIfCurrent(ctx context.Context, kind domain.ReferenceKind, names []string, gen domain.CacheGeneration) bool {
	return m.Called(ctx, kind, names, gen).Bool(0)
}

func (m *MockReferenceCache) Invalidate(ctx context.Context, kind domain.ReferenceKind) {
	m.Called(ctx, kind)
}

// nopCache never hits.
type nopCache struct{}

func (nopCache) Get(context.Context, domain.ReferenceKind) ([]string, bool) { return nil, false }
func (nopCache) Invalidate(context.Context, domain.ReferenceKind)           {}

func (nopCache) Generation(context.Context, domain.ReferenceKind) domain.CacheGeneration {
	return domain.CacheGeneration{}
}

func (nopCache) SetIfCurrent(context.Context, domain.ReferenceKind, []string, domain.CacheGeneration) bool {
	return false
}

// Mock Repositories
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Insert(ctx context.Context, profile *domain.EmployeeProfile) error {
	args := m.Called(ctx, profile)
	if args.Error(0) == nil && profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	return args.Error(0)
}

// recordingAuditor keeps every call for assertions.
type recordingAuditor struct {
	mu        sync.Mutex
	committed []uuid.UUID
	rejected  [][]string
	failed    []domain.SubmissionState
	created   []string
}

func (a *recordingAuditor) SubmissionCommitted(_ context.Context, id uuid.UUID, _ string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.committed = append(a.committed, id)
}

func (a *recordingAuditor) SubmissionRejected(_ context.Context, errs []string, _ string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rejected = append(a.rejected, errs)
}

func (a *recordingAuditor) SubmissionFailed(_ context.Context, stage domain.SubmissionState, _ error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failed = append(a.failed, stage)
}

func (a *recordingAuditor) ReferenceCreated(_ context.Context, kind domain.ReferenceKind, _ uuid.UUID, name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.created = append(a.created, string(kind)+":"+name)
}

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("PKT", 5*60*60))

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// validSubmission passes every rule with the default form options.
func validSubmission() *domain.ProfileSubmission {
	return &domain.ProfileSubmission{
		FirstName:       "Ayesha",
		LastName:        "Khan",
		IndustryName:    "Tech",
		DesignationName: "Engineer",
		Contact:         "+92 300 1234567",
		Location:        "Lahore",
		RequiredSkills:  "Go, SQL",
		VerifiedSkills:  "Go",
		SalaryType:      "Monthly",
		CurrentSalary:   floatPtr(50000),
	}
}

type harness struct {
	refs        *memReferenceRepo
	employees   *MockEmployeeRepo
	auditor     *recordingAuditor
	resolver    domain.ReferenceUsecase
	assembler   *usecase.ProfileAssembler
	submissions domain.SubmissionUsecase
}

func newHarness() *harness {
	opts := config.DefaultFormOptions()
	h := &harness{
		refs:      newMemReferenceRepo(),
		employees: new(MockEmployeeRepo),
		auditor:   &recordingAuditor{},
	}
	h.resolver = usecase.NewReferenceUsecase(h.refs, nopCache{}, h.auditor)
	h.assembler = usecase.NewProfileAssembler(h.resolver, opts, func() time.Time { return fixedNow })
	h.submissions = usecase.NewSubmissionUsecase(
		usecase.NewProfileValidator(validation.New(), opts),
		h.assembler,
		h.employees,
		h.auditor,
		opts,
	)
	return h
}
