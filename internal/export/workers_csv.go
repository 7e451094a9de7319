package export

import (
	"encoding/csv"
	"io"

	"talentlms-sync/internal/domain"
)

// Worker directory audit template. Keep header order EXACT — the HR side
// loads this positionally.
var workerHeader = []string{
	"WORKER_ID",
	"FIRST_NAME",
	"LAST_NAME",
	"STATUS",
	"MANAGER_ID",
	"WORK_EMAIL",
}

// WriteWorkerCSV writes the worker directory in the HR audit format.
func WriteWorkerCSV(w io.Writer, workers []domain.Worker) error {
	cw := csv.NewWriter(w)
	// match typical templates
	cw.UseCRLF = true

	if err := cw.Write(workerHeader); err != nil {
		return err
	}

	for _, wk := range workers {
		if err := cw.Write(toWorkerRow(wk)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toWorkerRow(w domain.Worker) []string {
	status := "inactive"
	if w.IsActive() {
		status = "active"
	}
	return []string{
		w.ID(),
		w.FirstName(),
		w.LastName(),
		status,
		w.ManagerID(),
		w.WorkEmail(),
	}
}
