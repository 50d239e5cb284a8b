package appointments

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"vetcare-portal/internal/domain/pets"
	"vetcare-portal/internal/ports/auth"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[string]Appointment
	creates int
	updates int
	failOn  string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) error {
	r.creates++
	if r.failOn == "create" {
		return errors.New("store unavailable")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	r.updates++
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]WithPet, error) {
	out := make([]WithPet, 0)
	for _, a := range r.byID {
		if a.OwnerUserID == ownerUserID {
			out = append(out, WithPet{Appointment: a})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]WithPet, error) {
	out := make([]WithPet, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, WithPet{Appointment: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type testPets map[string]string // petID -> owner

func (p testPets) OwnerOf(ctx context.Context, petID string) (string, error) {
	owner, ok := p[petID]
	if !ok {
		return "", pets.ErrNotFound
	}
	return owner, nil
}

// miércoles 12/03/2025 10:00 UTC
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	s := NewService(repo, testPets{"pet-1": "owner-1", "pet-2": "owner-2"}, DefaultSchedule())
	s.now = func() time.Time { return testNow }
	return s
}

var (
	owner    = auth.Claims{UserID: "owner-1", Role: auth.RoleClient}
	operator = auth.Claims{UserID: "vet-1", Role: auth.RoleAdmin}
)

func validInput() BookInput {
	return BookInput{
		PetID:       "pet-1",
		Date:        "2025-03-13",
		Time:        "09:30",
		ServiceType: "consultation",
		Notes:       " control anual ",
	}
}

func TestBook_CreatesPending(t *testing.T) {
	repo := newTestRepo()
	s := newTestService(repo)

	a, err := s.Book(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if a.Status != StatusPending {
		t.Fatalf("expected pending, got %s", a.Status)
	}
	want := time.Date(2025, 3, 13, 9, 30, 0, 0, time.UTC)
	if !a.Date.Equal(want) {
		t.Fatalf("expected %s, got %s", want, a.Date)
	}
	if a.Notes != "control anual" {
		t.Fatalf("expected trimmed notes, got %q", a.Notes)
	}
	if repo.creates != 1 {
		t.Fatalf("expected a single create, got %d", repo.creates)
	}
	if got := s.NoticeUntil(); !got.Equal(testNow.Add(3 * time.Second)) {
		t.Fatalf("unexpected notice_until %s", got)
	}
}

func TestBook_CombinesInClinicTimezone(t *testing.T) {
	loc := time.FixedZone("clinic", -3*60*60)
	sched := DefaultSchedule()
	sched.Location = loc

	repo := newTestRepo()
	s := NewService(repo, testPets{"pet-1": "owner-1"}, sched)
	s.now = func() time.Time { return testNow }

	a, err := s.Book(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	want := time.Date(2025, 3, 13, 12, 30, 0, 0, time.UTC)
	if !a.Date.Equal(want) {
		t.Fatalf("expected %s, got %s", want, a.Date)
	}
}

func TestBook_RejectedBeforeStoreCall(t *testing.T) {
	cases := map[string]func(in *BookInput){
		"yesterday":       func(in *BookInput) { in.Date = "2025-03-11" },
		"sunday":          func(in *BookInput) { in.Date = "2025-03-16" },
		"off grid time":   func(in *BookInput) { in.Time = "09:15" },
		"after hours":     func(in *BookInput) { in.Time = "18:30" },
		"unknown service": func(in *BookInput) { in.ServiceType = "massage" },
		"missing pet":     func(in *BookInput) { in.PetID = "" },
		"missing date":    func(in *BookInput) { in.Date = "" },
		"garbage date":    func(in *BookInput) { in.Date = "not a date" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepo()
			s := newTestService(repo)

			in := validInput()
			mutate(&in)

			_, err := s.Book(context.Background(), "owner-1", in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if repo.creates != 0 {
				t.Fatalf("expected no store call, got %d creates", repo.creates)
			}
		})
	}
}

func TestBook_TodayIsAllowed(t *testing.T) {
	s := newTestService(newTestRepo())
	in := validInput()
	in.Date = "2025-03-12"
	in.Time = "08:00" // ya pasó la hora, pero el día no
	if _, err := s.Book(context.Background(), "owner-1", in); err != nil {
		t.Fatalf("expected today to be bookable, got %v", err)
	}
}

func TestBook_PetOwnership(t *testing.T) {
	s := newTestService(newTestRepo())

	in := validInput()
	in.PetID = "pet-2"
	if _, err := s.Book(context.Background(), "owner-1", in); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	in.PetID = "ghost"
	if _, err := s.Book(context.Background(), "owner-1", in); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}

func TestBook_StoreFailureLeavesNothing(t *testing.T) {
	repo := newTestRepo()
	repo.failOn = "create"
	s := newTestService(repo)

	if _, err := s.Book(context.Background(), "owner-1", validInput()); err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no records, got %d", len(repo.byID))
	}
}

func TestCancel_SoftTransition(t *testing.T) {
	repo := newTestRepo()
	s := newTestService(repo)

	a, err := s.Book(context.Background(), "owner-1", validInput())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if _, err := s.Cancel(context.Background(), "owner-2", a.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other owner, got %v", err)
	}

	got, err := s.Cancel(context.Background(), "owner-1", a.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if got.Status != StatusCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
	if _, ok := repo.byID[a.ID]; !ok {
		t.Fatalf("expected record kept after cancel")
	}

	ov, err := s.ListByOwner(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(ov.Upcoming) != 0 || len(ov.Past) != 1 {
		t.Fatalf("expected cancelled in past, got %d/%d", len(ov.Upcoming), len(ov.Past))
	}

	if _, err := s.Cancel(context.Background(), "owner-1", a.ID); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition on second cancel, got %v", err)
	}
}

func TestCancel_OnlyWhilePending(t *testing.T) {
	repo := newTestRepo()
	s := newTestService(repo)

	a, _ := s.Book(context.Background(), "owner-1", validInput())
	if _, err := s.UpdateStatus(context.Background(), operator, a.ID, StatusUpdate{Status: StatusConfirmed}); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if _, err := s.Cancel(context.Background(), "owner-1", a.ID); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition, got %v", err)
	}
}

func TestUpdateStatus_OperatorStateMachine(t *testing.T) {
	repo := newTestRepo()
	s := newTestService(repo)

	a, _ := s.Book(context.Background(), "owner-1", validInput())

	if _, err := s.UpdateStatus(context.Background(), owner, a.ID, StatusUpdate{Status: StatusConfirmed}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for client, got %v", err)
	}

	writes := repo.updates
	if _, err := s.UpdateStatus(context.Background(), operator, a.ID, StatusUpdate{Status: StatusCompleted}); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition pending->completed, got %v", err)
	}
	if repo.updates != writes {
		t.Fatalf("expected no write on illegal transition")
	}

	notes := "todo ok"
	got, err := s.UpdateStatus(context.Background(), operator, a.ID, StatusUpdate{Status: StatusConfirmed, VeterinarianNotes: &notes})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got.VeterinarianNotes == nil || *got.VeterinarianNotes != notes {
		t.Fatalf("expected vet notes stored")
	}

	if _, err := s.UpdateStatus(context.Background(), operator, a.ID, StatusUpdate{Status: StatusCompleted}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := s.UpdateStatus(context.Background(), operator, a.ID, StatusUpdate{Status: StatusCancelled}); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("expected completed to be terminal, got %v", err)
	}
	if _, err := s.UpdateStatus(context.Background(), operator, a.ID, StatusUpdate{Status: "archived"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestGet_OwnerOrOperator(t *testing.T) {
	s := newTestService(newTestRepo())
	a, _ := s.Book(context.Background(), "owner-1", validInput())

	if _, err := s.Get(context.Background(), owner, a.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := s.Get(context.Background(), operator, a.ID); err != nil {
		t.Fatalf("operator get: %v", err)
	}
	if _, err := s.Get(context.Background(), auth.Claims{UserID: "owner-2"}, a.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := s.Get(context.Background(), owner, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAll_RequiresOperator(t *testing.T) {
	s := newTestService(newTestRepo())
	if _, err := s.ListAll(context.Background(), owner); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := s.ListAll(context.Background(), operator); err != nil {
		t.Fatalf("ListAll: %v", err)
	}
}

func TestAvailableSlots(t *testing.T) {
	s := newTestService(newTestRepo())

	slots, err := s.AvailableSlots("2025-03-11")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots for a past day, got %d", len(slots))
	}

	if _, err := s.AvailableSlots(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
