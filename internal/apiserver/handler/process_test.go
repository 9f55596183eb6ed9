package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/internal/common/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProcess(t *testing.T, e *testEnv, id, userID string) *database.Process {
	t.Helper()
	p := &database.Process{ID: id, SheetID: "sh-0001", SheetName: "Billing", UserID: userID, Day: "2026-09-01"}
	require.NoError(t, e.db.CreateProcesses(context.Background(), []*database.Process{p}))
	return p
}

func TestUpdateProcessHappyPath(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)
	seedProcess(t, e, "pr-100001", user.ID)

	ts := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	w := e.do(t, http.MethodPatch, "/api/processes/pr-100001", e.token(t, user), dto.UpdateProcessRequest{
		Calls: []dto.CallUpdate{
			{CallNumber: 1, Attended: true, Reason: "intro call", Outcome: "reached", Timestamp: &ts},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := e.db.processes["pr-100001"]
	require.NotNil(t, got.Call1Attended)
	assert.True(t, *got.Call1Attended)
	assert.Equal(t, "intro call", got.Reason1)
	assert.Equal(t, "reached", got.Outcome1)
	require.NotNil(t, got.Timestamp1)
	assert.True(t, got.Timestamp1.Equal(ts))
	// untouched slots stay empty
	assert.Nil(t, got.Call2Attended)
	assert.Nil(t, got.Call3Attended)
}

func TestUpdateProcessDefaultsTimestampToServerClock(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)
	seedProcess(t, e, "pr-100001", user.ID)

	w := e.do(t, http.MethodPatch, "/api/processes/pr-100001", e.token(t, user), dto.UpdateProcessRequest{
		Calls: []dto.CallUpdate{{CallNumber: 2, Attended: false, Reason: "no answer"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := e.db.processes["pr-100001"]
	require.NotNil(t, got.Timestamp2)
	assert.True(t, got.Timestamp2.Equal(testNow))
	require.NotNil(t, got.Call2Attended)
	assert.False(t, *got.Call2Attended)
}

func TestUpdateProcessBatchUpdatesSeveralSlots(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)
	seedProcess(t, e, "pr-100001", user.ID)

	w := e.do(t, http.MethodPatch, "/api/processes/pr-100001", e.token(t, user), dto.UpdateProcessRequest{
		Calls: []dto.CallUpdate{
			{CallNumber: 1, Attended: true},
			{CallNumber: 3, Attended: true, Outcome: "closed"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := e.db.processes["pr-100001"]
	assert.NotNil(t, got.Call1Attended)
	assert.Nil(t, got.Call2Attended)
	require.NotNil(t, got.Call3Attended)
	assert.Equal(t, "closed", got.Outcome3)
}

func TestUpdateProcessUnknownRow(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)

	w := e.do(t, http.MethodPatch, "/api/processes/pr-999999", e.token(t, user), dto.UpdateProcessRequest{
		Calls: []dto.CallUpdate{{CallNumber: 1, Attended: true}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProcessOwnerOnly(t *testing.T) {
	e := newTestEnv(t)
	owner := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)
	other := e.seedUser(t, "em-0002", "bob", "bob@example.com", "pw", cnst.RoleUser)
	seedProcess(t, e, "pr-100001", owner.ID)

	w := e.do(t, http.MethodPatch, "/api/processes/pr-100001", e.token(t, other), dto.UpdateProcessRequest{
		Calls: []dto.CallUpdate{{CallNumber: 1, Attended: true}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Nil(t, e.db.processes["pr-100001"].Call1Attended)
}

func TestUpdateProcessEmptyBatch(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)
	seedProcess(t, e, "pr-100001", user.ID)

	w := e.do(t, http.MethodPatch, "/api/processes/pr-100001", e.token(t, user), dto.UpdateProcessRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProcessInvalidCallNumberIsAllOrNothing(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)
	seedProcess(t, e, "pr-100001", user.ID)

	// the valid first entry must not be applied when the second is invalid
	w := e.do(t, http.MethodPatch, "/api/processes/pr-100001", e.token(t, user), dto.UpdateProcessRequest{
		Calls: []dto.CallUpdate{
			{CallNumber: 1, Attended: true},
			{CallNumber: 4, Attended: true},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got := e.db.processes["pr-100001"]
	assert.Nil(t, got.Call1Attended)
	assert.Nil(t, got.Timestamp1)
}

func TestUpdateProcessStoreFailure(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)
	seedProcess(t, e, "pr-100001", user.ID)
	e.db.updateProcessErr = assert.AnError

	w := e.do(t, http.MethodPatch, "/api/processes/pr-100001", e.token(t, user), dto.UpdateProcessRequest{
		Calls: []dto.CallUpdate{{CallNumber: 1, Attended: true}},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetProcessVisibility(t *testing.T) {
	e := newTestEnv(t)
	admin := e.seedAdmin(t)
	owner := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)
	other := e.seedUser(t, "em-0002", "bob", "bob@example.com", "pw", cnst.RoleUser)
	seedProcess(t, e, "pr-100001", owner.ID)

	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/api/processes/pr-100001", e.token(t, owner), nil).Code)
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/api/processes/pr-100001", e.token(t, admin), nil).Code)
	assert.Equal(t, http.StatusForbidden, e.do(t, http.MethodGet, "/api/processes/pr-100001", e.token(t, other), nil).Code)
}

func TestProcessSummaryCount(t *testing.T) {
	e := newTestEnv(t)
	admin := e.seedAdmin(t)
	alice := e.seedUser(t, "em-0001", "alice", "alice@example.com", "pw", cnst.RoleUser)
	seedProcess(t, e, "pr-100001", alice.ID)
	seedProcess(t, e, "pr-100002", "em-0002")

	w := e.do(t, http.MethodGet, "/api/dashboard/summary", e.token(t, alice), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = e.do(t, http.MethodGet, "/api/dashboard/summary", e.token(t, admin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())
}
