package domain

import "strings"

// Worker is one ADP worker record, kept as the raw decoded JSON object.
// ADP nests everything (person.legalName, workerStatus.statusCode, ...) and
// tenants disagree on which fields are populated, so we keep the map and
// extract with tolerant helpers instead of forcing a struct schema.
type Worker map[string]any

// ID returns the stable worker identifier: associateOID, falling back to
// workerID.idValue. Empty when the record carries neither.
func (w Worker) ID() string {
	if v := getString(w, "associateOID"); v != "" {
		return v
	}
	return getString(getMap(w, "workerID"), "idValue")
}

// ManagerID returns the identifier of the worker's manager, taken from the
// primary work assignment's reportsTo entry (associateOID, else
// workerID.idValue). Empty means top of the tree or missing HR data.
func (w Worker) ManagerID() string {
	for _, a := range getSlice(w, "workAssignments") {
		asg, ok := a.(map[string]any)
		if !ok {
			continue
		}
		if b, ok := asg["primaryIndicator"].(bool); ok && !b {
			continue
		}
		for _, r := range getSlice(asg, "reportsTo") {
			rep, ok := r.(map[string]any)
			if !ok {
				continue
			}
			if v := getString(rep, "associateOID"); v != "" {
				return v
			}
			if v := getString(getMap(rep, "workerID"), "idValue"); v != "" {
				return v
			}
		}
	}
	return ""
}

func (w Worker) IsActive() bool {
	code := getString(getMap(getMap(w, "workerStatus"), "statusCode"), "codeValue")
	return strings.EqualFold(strings.TrimSpace(code), "Active")
}

func (w Worker) FirstName() string {
	return getString(legalName(w), "givenName")
}

func (w Worker) LastName() string {
	return getString(legalName(w), "familyName1")
}

// FullName is for console output only; falls back to ADP's formattedName and
// finally to the raw id so log lines always identify the worker somehow.
func (w Worker) FullName() string {
	full := strings.TrimSpace(w.FirstName() + " " + w.LastName())
	if full != "" {
		return full
	}
	if v := getString(legalName(w), "formattedName"); v != "" {
		return v
	}
	return w.ID()
}

// WorkEmail returns the first business email tagged as a work address
// (ADP uses nameCode.codeValue = "Work E-mail"). Empty when the worker has
// no usable work email.
func (w Worker) WorkEmail() string {
	comm := getMap(w, "businessCommunication")
	for _, e := range getSlice(comm, "emails") {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		tag := getString(getMap(em, "nameCode"), "codeValue")
		if !strings.Contains(strings.ToLower(tag), "work") {
			continue
		}
		if uri := getString(em, "emailUri"); uri != "" {
			return uri
		}
	}
	return ""
}

func legalName(w Worker) map[string]any {
	return getMap(getMap(w, "person"), "legalName")
}

/* -------- tolerant map extraction -------- */

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	v, _ := m[key].(map[string]any)
	return v
}

func getSlice(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	v, _ := m[key].([]any)
	return v
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	v, _ := m[key].(string)
	return strings.TrimSpace(v)
}
