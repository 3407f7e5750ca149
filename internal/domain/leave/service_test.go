package leave

import (
	"context"
	"errors"
	"testing"

	"hrdesk/internal/platform/memstore"
)

type fakeDirectory map[string]string

func (d fakeDirectory) GetEmployeeByID(ctx context.Context, id string) (string, bool) {
	name, ok := d[id]
	return name, ok
}

func newService() *Service {
	store := NewStore()
	store.Seed([]Request{
		{ID: "1", EmployeeID: "5", EmployeeName: "David Kim", Type: TypeAnnual, StartDate: "2024-01-15", EndDate: "2024-01-20", Status: StatusApproved, Reason: "Family vacation"},
		{ID: "2", EmployeeID: "4", EmployeeName: "Emily Rodriguez", Type: TypeSick, StartDate: "2024-01-22", EndDate: "2024-01-23", Status: StatusPending, Reason: "Medical appointment"},
	})
	return NewService(store, fakeDirectory{"4": "Emily Rodriguez"})
}

func TestCreateForcesPending(t *testing.T) {
	svc := newService()
	created, err := svc.Create(context.Background(), Request{
		EmployeeID: "4",
		Type:       TypeSick,
		StartDate:  "2024-02-01",
		EndDate:    "2024-02-02",
		Reason:     "flu",
		Status:     StatusApproved, // must be ignored
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != StatusPending {
		t.Fatalf("expected status Pending, got %s", created.Status)
	}
	if created.EmployeeName != "Emily Rodriguez" {
		t.Fatalf("expected employee name resolved at creation, got %q", created.EmployeeName)
	}
}

func TestApproveAndReject(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	approved, err := svc.Approve(ctx, "2")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != StatusApproved {
		t.Fatalf("expected Approved, got %s", approved.Status)
	}

	// Transitions are one-way: an already-decided request cannot change again.
	if _, err := svc.Reject(ctx, "2"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if _, err := svc.Approve(ctx, "1"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for already-approved request, got %v", err)
	}
}

func TestApproveMissing(t *testing.T) {
	svc := newService()
	if _, err := svc.Approve(context.Background(), "missing"); !memstore.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateDoesNotChangeID(t *testing.T) {
	svc := newService()
	reason := "updated reason"
	updated, err := svc.Update(context.Background(), "2", RequestPatch{Reason: &reason})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != "2" || updated.Reason != "updated reason" || updated.Type != TypeSick {
		t.Fatalf("unexpected record after patch: %+v", updated)
	}
}
