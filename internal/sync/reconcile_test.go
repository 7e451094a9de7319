package sync

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"talentlms-sync/internal/domain"
	"talentlms-sync/internal/org"
	"talentlms-sync/internal/providers/talentlms"
)

// mockAccounts records calls and can be told to fail.
type mockAccounts struct {
	createErr error
	enrollErr error

	nextID   int
	created  []talentlms.CreateUserRequest
	enrolled [][2]int
}

func (m *mockAccounts) CreateUser(ctx context.Context, req talentlms.CreateUserRequest) (*talentlms.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	m.nextID++
	return &talentlms.User{
		ID:    strconv.Itoa(m.nextID),
		Login: req.Login,
		Email: req.Email,
	}, nil
}

func (m *mockAccounts) AddUserToCourse(ctx context.Context, userID, courseID int) error {
	if m.enrollErr != nil {
		return m.enrollErr
	}
	m.enrolled = append(m.enrolled, [2]int{userID, courseID})
	return nil
}

func worker(id, status, first, last, email string) domain.Worker {
	rec := domain.Worker{
		"associateOID": id,
		"workerStatus": map[string]any{
			"statusCode": map[string]any{"codeValue": status},
		},
	}
	if first != "" || last != "" {
		rec["person"] = map[string]any{
			"legalName": map[string]any{
				"givenName":   first,
				"familyName1": last,
			},
		}
	}
	if email != "" {
		rec["businessCommunication"] = map[string]any{
			"emails": []any{
				map[string]any{
					"nameCode": map[string]any{"codeValue": "Work E-mail"},
					"emailUri": email,
				},
			},
		}
	}
	return rec
}

func emailSet(emails ...string) EmailSet {
	users := make([]talentlms.User, len(emails))
	for i, e := range emails {
		users[i] = talentlms.User{ID: strconv.Itoa(i + 1), Email: e}
	}
	return NewEmailSet(users)
}

func TestSyncCreatesMissingAccounts(t *testing.T) {
	accounts := &mockAccounts{}
	var out bytes.Buffer

	workers := []domain.Worker{
		worker("1", "Active", "Jane", "Doe", "jane@x.com"),
		worker("2", "Active", "John", "Smith", "john@x.com"),
	}

	res := SyncWorkers(context.Background(), &out, workers, emailSet("john@x.com"), accounts)

	if res.Processed != 2 {
		t.Errorf("Expected 2 processed, got %d", res.Processed)
	}
	if res.Created != 1 {
		t.Errorf("Expected 1 created, got %d", res.Created)
	}
	if res.Skipped != 1 {
		t.Errorf("Expected 1 skipped, got %d", res.Skipped)
	}
	if res.Errored != 0 {
		t.Errorf("Expected 0 errors, got %d", res.Errored)
	}

	if len(accounts.created) != 1 {
		t.Fatalf("Expected 1 create call, got %d", len(accounts.created))
	}
	req := accounts.created[0]
	if req.Email != "jane@x.com" || req.Login != "jane@x.com" {
		t.Errorf("Expected email and login 'jane@x.com', got email=%q login=%q", req.Email, req.Login)
	}
	if req.FirstName != "Jane" || req.LastName != "Doe" {
		t.Errorf("Expected name Jane Doe, got %q %q", req.FirstName, req.LastName)
	}
	if req.Password == "" {
		t.Error("Expected a password to be set")
	}

	if len(accounts.enrolled) != 1 {
		t.Fatalf("Expected 1 enrollment, got %d", len(accounts.enrolled))
	}
	if accounts.enrolled[0][1] != OnboardingCourseID {
		t.Errorf("Expected enrollment into course %d, got %d", OnboardingCourseID, accounts.enrolled[0][1])
	}
}

func TestSyncInactiveWorkerNeverConsidered(t *testing.T) {
	// Worker 1 already has an account, worker 2 is inactive and must be
	// filtered out before the reconciler runs at all.
	accounts := &mockAccounts{}
	var out bytes.Buffer

	workers := org.Active([]domain.Worker{
		worker("1", "Active", "A", "A", "a@x.com"),
		worker("2", "Terminated", "B", "B", "b@x.com"),
	})

	res := SyncWorkers(context.Background(), &out, workers, emailSet("a@x.com"), accounts)

	if res.Created != 0 {
		t.Errorf("Expected 0 created, got %d", res.Created)
	}
	if res.Skipped != 1 {
		t.Errorf("Expected 1 skipped, got %d", res.Skipped)
	}
	if res.Processed != 1 {
		t.Errorf("Expected inactive worker to never be considered, processed=%d", res.Processed)
	}
	if len(accounts.created) != 0 {
		t.Errorf("Expected no create calls, got %d", len(accounts.created))
	}
}

func TestSyncSkipsWorkerWithoutWorkEmail(t *testing.T) {
	accounts := &mockAccounts{}
	var out bytes.Buffer

	workers := []domain.Worker{
		worker("1", "Active", "Jane", "Doe", ""),
	}

	res := SyncWorkers(context.Background(), &out, workers, emailSet(), accounts)

	if res.Skipped != 1 {
		t.Errorf("Expected 1 skipped, got %d", res.Skipped)
	}
	if res.Created != 0 || res.Errored != 0 {
		t.Errorf("Expected nothing created/errored, got created=%d errored=%d", res.Created, res.Errored)
	}
	if len(accounts.created) != 0 {
		t.Errorf("Expected no create calls, got %d", len(accounts.created))
	}
	if !strings.Contains(out.String(), "no work email") {
		t.Errorf("Expected 'no work email' in output, got %q", out.String())
	}
}

func TestSyncCreationErrorContinues(t *testing.T) {
	accounts := &mockAccounts{createErr: errors.New("boom")}
	var out bytes.Buffer

	workers := []domain.Worker{
		worker("1", "Active", "Jane", "Doe", "jane@x.com"),
		worker("2", "Active", "John", "Smith", "john@x.com"),
	}

	res := SyncWorkers(context.Background(), &out, workers, emailSet(), accounts)

	if res.Errored != 2 {
		t.Errorf("Expected both workers to error, got %d", res.Errored)
	}
	if res.Created != 0 {
		t.Errorf("Expected 0 created, got %d", res.Created)
	}
	// Both workers were attempted: the loop must not abort on the first error.
	if res.Processed != 2 {
		t.Errorf("Expected 2 processed, got %d", res.Processed)
	}
}

func TestSyncEnrollmentFailureKeepsAccount(t *testing.T) {
	accounts := &mockAccounts{enrollErr: errors.New("course full")}
	var out bytes.Buffer

	workers := []domain.Worker{
		worker("1", "Active", "Jane", "Doe", "jane@x.com"),
	}

	res := SyncWorkers(context.Background(), &out, workers, emailSet(), accounts)

	// Enrollment failure is a warning, not an error: the account stays
	// created and the run does not count it as failed.
	if res.Created != 1 {
		t.Errorf("Expected 1 created despite enrollment failure, got %d", res.Created)
	}
	if res.Errored != 0 {
		t.Errorf("Expected 0 errors, got %d", res.Errored)
	}
	if !strings.Contains(out.String(), "enrollment failed") {
		t.Errorf("Expected enrollment warning in output, got %q", out.String())
	}
}

func TestSyncPlaceholderNames(t *testing.T) {
	accounts := &mockAccounts{}
	var out bytes.Buffer

	workers := []domain.Worker{
		worker("1", "Active", "", "", "ghost@x.com"),
	}

	SyncWorkers(context.Background(), &out, workers, emailSet(), accounts)

	if len(accounts.created) != 1 {
		t.Fatalf("Expected 1 create call, got %d", len(accounts.created))
	}
	req := accounts.created[0]
	if req.FirstName != "Unknown" || req.LastName != "User" {
		t.Errorf("Expected placeholder names Unknown/User, got %q %q", req.FirstName, req.LastName)
	}
}

func TestSyncNormalizesEmailBeforeMembership(t *testing.T) {
	accounts := &mockAccounts{}
	var out bytes.Buffer

	// The ADP record carries a differently-cased address than TalentLMS.
	workers := []domain.Worker{
		worker("1", "Active", "Jane", "Doe", "Jane@X.com"),
	}

	res := SyncWorkers(context.Background(), &out, workers, emailSet("jane@x.com"), accounts)

	if res.Created != 0 || res.Skipped != 1 {
		t.Errorf("Expected skip on case-insensitive match, got created=%d skipped=%d", res.Created, res.Skipped)
	}
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	PrintSummary(&out, Outcome{Processed: 10, Created: 3, Skipped: 6, Errored: 1})

	s := out.String()
	for _, want := range []string{
		strings.Repeat("=", 60),
		"SYNC SUMMARY",
		"Total ADP workers processed: 10",
		"New accounts created:        3",
		"Already had accounts:        6",
		"Errors:                      1",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, s)
		}
	}
}
