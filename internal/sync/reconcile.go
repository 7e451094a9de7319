package sync

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"talentlms-sync/internal/domain"
	"talentlms-sync/internal/providers/talentlms"
)

// OnboardingCourseID is the TalentLMS course every new account is enrolled
// into.
const OnboardingCourseID = 127

// defaultPassword seeds every created account. Known security smell carried
// over from the original process: a fixed dummy password, relying on the LMS
// forcing a reset on first login. Replace with generated one-time passwords
// before pointing this at anything real.
const defaultPassword = "Testpassword1"

// Accounts is the slice of the TalentLMS client the reconciler calls,
// narrowed so tests can stub it.
type Accounts interface {
	CreateUser(ctx context.Context, req talentlms.CreateUserRequest) (*talentlms.User, error)
	AddUserToCourse(ctx context.Context, userID, courseID int) error
}

type Outcome struct {
	Processed int
	Created   int
	Skipped   int
	Errored   int
}

// SyncWorkers creates TalentLMS accounts for the given workers when their
// work email is not already in existing. Strictly sequential, front to back.
// Per-worker failures are counted and reported on out; they never abort the
// loop. An account created before a failed enrollment is kept.
func SyncWorkers(ctx context.Context, out io.Writer, workers []domain.Worker, existing EmailSet, accounts Accounts) Outcome {
	res := Outcome{Processed: len(workers)}

	for _, w := range workers {
		name := w.FullName()

		email := w.WorkEmail()
		if email == "" {
			fmt.Fprintf(out, "SKIP %s: no work email found\n", name)
			res.Skipped++
			continue
		}

		if existing.Contains(email) {
			fmt.Fprintf(out, "OK   %s (%s): already has TalentLMS account\n", name, email)
			res.Skipped++
			continue
		}

		first, last := w.FirstName(), w.LastName()
		if first == "" && last == "" {
			first, last = "Unknown", "User"
		}

		fmt.Fprintf(out, "->   Creating TalentLMS account for %s (%s)...\n", name, email)
		created, err := accounts.CreateUser(ctx, talentlms.CreateUserRequest{
			FirstName: first,
			LastName:  last,
			Email:     email,
			Login:     email,
			Password:  defaultPassword,
		})
		if err != nil {
			fmt.Fprintf(out, "     ERR creating user: %v\n", err)
			res.Errored++
			continue
		}
		fmt.Fprintf(out, "     created user id %s\n", created.ID)
		res.Created++

		uid, err := strconv.Atoi(created.ID)
		if err != nil {
			fmt.Fprintf(out, "     WARN enrollment skipped: non-numeric user id %q\n", created.ID)
			continue
		}
		// Enrollment is best effort; the account stays either way.
		if err := accounts.AddUserToCourse(ctx, uid, OnboardingCourseID); err != nil {
			fmt.Fprintf(out, "     WARN enrollment failed: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "     enrolled in course %d\n", OnboardingCourseID)
	}

	return res
}

// PrintSummary writes the fixed-width report block that closes every run.
func PrintSummary(out io.Writer, res Outcome) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(out)
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, "SYNC SUMMARY")
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "Total ADP workers processed: %d\n", res.Processed)
	fmt.Fprintf(out, "New accounts created:        %d\n", res.Created)
	fmt.Fprintf(out, "Already had accounts:        %d\n", res.Skipped)
	fmt.Fprintf(out, "Errors:                      %d\n", res.Errored)
	fmt.Fprintln(out, line)
}
