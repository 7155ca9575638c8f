package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nearaid/models"
	"nearaid/services/help"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHelpService struct {
	resp *models.HelpResponse
	err  error
}

func (s *stubHelpService) Resolve(ctx context.Context, req models.HelpRequest) (*models.HelpResponse, error) {
	return s.resp, s.err
}

func setupHelpRouter(svc help.HelpService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/help", NewHelpHandler(svc).GetHelpHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetHelpHandler(t *testing.T) {
	t.Run("success returns the resolution envelope", func(t *testing.T) {
		stub := &stubHelpService{resp: &models.HelpResponse{
			OriginalQuery:      "need a hospital",
			UnderstoodServices: []string{"hospital"},
			TargetLocation:     "your current location",
			Urgency:            "Medium",
			RadiusKm:           10,
			NearbyServices:     []models.NearbyService{},
			Message:            "No hospital services found within 10km of the target location. Try increasing the search radius or selecting a different service type.",
		}}
		r := setupHelpRouter(stub)

		w := postJSON(t, r, "/api/help", `{"query":"need a hospital","latitude":0,"longitude":0}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "need a hospital", body["original_query"])
		assert.Equal(t, []interface{}{"hospital"}, body["understood_services"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("validation failure is a 400", func(t *testing.T) {
		stub := &stubHelpService{err: &help.ValidationError{Reason: "Query text is required"}}
		r := setupHelpRouter(stub)

		w := postJSON(t, r, "/api/help", `{"latitude":0,"longitude":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Query text is required")
	})

	t.Run("pipeline failure is a 500", func(t *testing.T) {
		stub := &stubHelpService{err: errors.New("mongo down")}
		r := setupHelpRouter(stub)

		w := postJSON(t, r, "/api/help", `{"query":"q","latitude":0,"longitude":0}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		r := setupHelpRouter(&stubHelpService{})

		w := postJSON(t, r, "/api/help", `{"query":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
