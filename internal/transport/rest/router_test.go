package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chatfuture/internal/catalog"
	"chatfuture/internal/logging"
	"chatfuture/internal/model"
	"chatfuture/internal/service"
	"chatfuture/internal/storage"
	"chatfuture/internal/transport/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate(ctx context.Context, result *model.AssessmentResult, info *model.BasicInfo) (*model.CareerReport, bool, error) {
	return &model.CareerReport{Summary: "务实的建造者"}, false, nil
}

type testAPI struct {
	handler http.Handler
	auth    *service.AuthService
	reports *service.ReportService
}

func newTestAPI(t *testing.T, allowTokenIssue bool) *testAPI {
	t.Helper()
	logger := logging.NewNop()
	store := storage.NewMemoryStore()
	c := catalog.New()

	sessions := service.NewSessionService(store, c, logger)
	answers := service.NewAnswerService(sessions, c, logger)
	scoring := service.NewScoringService(sessions, c, store, logger)
	profiles := service.NewProfileService(store, logger)
	reports := service.NewReportService(scoring, profiles, fixedGenerator{}, store, time.Second, logger)
	auth := service.NewAuthService("router-secret", time.Hour)
	hub := ws.NewHub(logger)
	t.Cleanup(hub.Close)

	return &testAPI{
		handler: NewRouter(&Container{
			Catalog:         c,
			AuthService:     auth,
			SessionService:  sessions,
			AnswerService:   answers,
			ScoringService:  scoring,
			ProfileService:  profiles,
			ReportService:   reports,
			WSHub:           hub,
			Logger:          logger,
			CORSOrigins:     "https://chatfuture.example",
			AllowTokenIssue: allowTokenIssue,
		}),
		auth:    auth,
		reports: reports,
	}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	decode(t, rec, &body)
	return body.Code
}

func TestRouter_HealthAndCORS(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "https://chatfuture.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = api.do(t, http.MethodOptions, "/v1/session", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Catalog(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(t, http.MethodGet, "/v1/instruments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Instruments []struct {
			ID            string `json:"id"`
			QuestionCount int    `json:"questionCount"`
		} `json:"instruments"`
		TotalQuestions int `json:"totalQuestions"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Instruments, 4)
	assert.Equal(t, "riasec", list.Instruments[0].ID)
	assert.Equal(t, 36, list.Instruments[0].QuestionCount)
	assert.Equal(t, 110, list.TotalQuestions)

	rec = api.do(t, http.MethodGet, "/v1/instruments/career_values/questions", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var questions struct {
		Questions []model.Question `json:"questions"`
	}
	decode(t, rec, &questions)
	assert.Len(t, questions.Questions, 12)

	rec = api.do(t, http.MethodGet, "/v1/instruments/mbti/questions", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown_instrument", errorCode(t, rec))
}

func TestRouter_AssessmentFlow(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(t, http.MethodGet, "/v1/session", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no_active_session", errorCode(t, rec))

	rec = api.do(t, http.MethodPost, "/v1/session/answers", "", model.AnswerRequest{
		QuestionID: "RIASEC_R_001", OptionID: "ri_2", InstrumentID: model.InstrumentInterest,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no_active_session", errorCode(t, rec))

	rec = api.do(t, http.MethodPost, "/v1/session", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var sess model.Session
	decode(t, rec, &sess)
	assert.Equal(t, storage.AnonymousUser, sess.UserID)

	rec = api.do(t, http.MethodPost, "/v1/results", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "no_answers", errorCode(t, rec))

	for _, q := range []string{"RIASEC_E_001", "RIASEC_E_002"} {
		rec = api.do(t, http.MethodPost, "/v1/session/answers", "", model.AnswerRequest{
			QuestionID: q, OptionID: "ri_2", InstrumentID: model.InstrumentInterest,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = api.do(t, http.MethodPost, "/v1/session/answers", "", model.AnswerRequest{
		QuestionID: "RIASEC_E_001", OptionID: "opt_001", InstrumentID: model.InstrumentInterest,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_answer", errorCode(t, rec))

	rec = api.do(t, http.MethodPost, "/v1/session/answers", "", map[string]string{"questionId": "RIASEC_E_001"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", errorCode(t, rec))

	rec = api.do(t, http.MethodPost, "/v1/session/instruments/riasec/complete", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var progress model.Progress
	decode(t, rec, &progress)
	assert.True(t, progress.Instruments[0].Completed)
	assert.Equal(t, 2, progress.Answered)

	rec = api.do(t, http.MethodPost, "/v1/results", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var scored struct {
		Result  model.AssessmentResult `json:"result"`
		Summary model.ResultSummary    `json:"summary"`
	}
	decode(t, rec, &scored)
	assert.Equal(t, 100, scored.Result.Interest.Scores["E"])
	require.NotNil(t, scored.Summary.DominantInterest)
	assert.Equal(t, "E", scored.Summary.DominantInterest.Key)

	rec = api.do(t, http.MethodGet, "/v1/results", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/session/complete", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &progress)
	assert.True(t, progress.Completed)

	rec = api.do(t, http.MethodDelete, "/v1/session", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = api.do(t, http.MethodGet, "/v1/session/progress", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_FreshStartClearsResult(t *testing.T) {
	api := newTestAPI(t, false)

	api.do(t, http.MethodPost, "/v1/session", "", nil)
	api.do(t, http.MethodPost, "/v1/session/answers", "", model.AnswerRequest{
		QuestionID: "apt_MM_001", OptionID: "likert_1", InstrumentID: model.InstrumentAptitude,
	})
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/v1/results", "", nil).Code)

	rec := api.do(t, http.MethodPost, "/v1/session/reset", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/v1/results", "", nil).Code, "reset keeps the result")

	api.do(t, http.MethodPost, "/v1/session", "", nil)
	rec = api.do(t, http.MethodGet, "/v1/results", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no_result", errorCode(t, rec))
}

func TestRouter_IdentityIsolation(t *testing.T) {
	api := newTestAPI(t, true)

	rec := api.do(t, http.MethodPost, "/v1/auth/token", "", model.TokenRequest{UserID: "alice"})
	require.Equal(t, http.StatusOK, rec.Code)
	var tok model.TokenResponse
	decode(t, rec, &tok)

	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/v1/session", tok.Token, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/v1/session", "", nil).Code)

	rec = api.do(t, http.MethodGet, "/v1/session", tok.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sess model.Session
	decode(t, rec, &sess)
	assert.Equal(t, "alice", sess.UserID)

	rec = api.do(t, http.MethodGet, "/v1/session", "forged", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", errorCode(t, rec))
}

func TestRouter_TokenIssueDisabled(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(t, http.MethodPost, "/v1/auth/token", "", model.TokenRequest{UserID: "alice"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Profile(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(t, http.MethodGet, "/v1/profile/basic-info", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodPut, "/v1/profile/basic-info", "", map[string]string{
		"gender": "female", "ageRange": "18-25", "occupation": "市场营销",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var info struct {
		Occupation           string          `json:"occupation"`
		AgeBounds            model.AgeBounds `json:"ageBounds"`
		OccupationCategories []string        `json:"occupationCategories"`
	}
	decode(t, rec, &info)
	assert.Equal(t, model.AgeBounds{Min: 18, Max: 25}, info.AgeBounds)
	assert.Equal(t, []string{"sales_marketing"}, info.OccupationCategories)

	rec = api.do(t, http.MethodPut, "/v1/profile/basic-info", "", map[string]string{
		"gender": "unknown", "ageRange": "18-25", "occupation": "学生",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_basic_info", errorCode(t, rec))

	assert.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/v1/profile/basic-info", "", nil).Code)
	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodDelete, "/v1/profile/basic-info", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/v1/profile/basic-info", "", nil).Code)
}

func TestRouter_Reports(t *testing.T) {
	api := newTestAPI(t, false)

	rec := api.do(t, http.MethodGet, "/v1/reports", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"not_started"}`, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/v1/reports", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no_result", errorCode(t, rec))

	api.do(t, http.MethodPost, "/v1/session", "", nil)
	api.do(t, http.MethodPost, "/v1/session/answers", "", model.AnswerRequest{
		QuestionID: "values_002", OptionID: "opt_010", InstrumentID: model.InstrumentValues,
	})
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/v1/results", "", nil).Code)

	rec = api.do(t, http.MethodPost, "/v1/reports", "", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	api.reports.Wait()

	rec = api.do(t, http.MethodGet, "/v1/reports", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var record model.ReportRecord
	decode(t, rec, &record)
	assert.Equal(t, model.ReportReady, record.Status)
	require.NotNil(t, record.Report)
	assert.Equal(t, "务实的建造者", record.Report.Summary)
}

func TestRouter_FreshStartDropsPreviousReport(t *testing.T) {
	api := newTestAPI(t, false)

	api.do(t, http.MethodPost, "/v1/session", "", nil)
	api.do(t, http.MethodPost, "/v1/session/answers", "", model.AnswerRequest{
		QuestionID: "RIASEC_S_001", OptionID: "ri_2", InstrumentID: model.InstrumentInterest,
	})
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/v1/results", "", nil).Code)
	require.Equal(t, http.StatusAccepted, api.do(t, http.MethodPost, "/v1/reports", "", nil).Code)
	api.reports.Wait()

	var record model.ReportRecord
	decode(t, api.do(t, http.MethodGet, "/v1/reports", "", nil), &record)
	require.Equal(t, model.ReportReady, record.Status)

	rec := api.do(t, http.MethodPost, "/v1/session", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var fresh model.Session
	decode(t, rec, &fresh)
	assert.NotEqual(t, record.SessionID, fresh.ID)

	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/v1/results", "", nil).Code)
	rec = api.do(t, http.MethodGet, "/v1/reports", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"not_started"}`, rec.Body.String())
}
