package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"printflow/internal/domain"
	"printflow/internal/handler"
	"printflow/internal/middleware"
	"printflow/internal/service"
	"printflow/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withIdentity injects validated claims the way AuthMiddleware would.
func withIdentity(user domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{},
			UserID:           user.ID,
			Email:            user.Email,
			Role:             user.Role,
		}
		c.Set(middleware.ContextKeyUserID, claims.UserID)
		c.Set(middleware.ContextKeyEmail, claims.Email)
		c.Set(middleware.ContextKeyRole, string(claims.Role))
		c.Set(middleware.ContextKeyClaims, claims)
		c.Next()
	}
}

// withDossier injects a resolved dossier the way DossierAccess would.
func withDossier(dossier domain.Dossier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyDossier, dossier)
		c.Next()
	}
}

func jsonRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total  int `json:"total"`
		Offset int `json:"offset"`
		Limit  int `json:"limit"`
	} `json:"meta"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDossierHandler_Create(t *testing.T) {
	svc := new(mocks.MockDossierService)
	h := handler.NewDossierHandler(svc)
	user := domain.User{ID: uuid.New(), Role: domain.RolePreparateur}

	r := gin.New()
	r.POST("/dossiers", withIdentity(user), h.Create)

	created := &domain.Dossier{
		ID:          uuid.New(),
		OrderNumber: "CMD-2026-AAAA1111",
		ClientName:  "Imprimerie Dupont",
		Status:      domain.StatusEnCours,
		MachineType: domain.MachineRoland,
		OwnerID:     user.ID,
	}
	svc.On("Create", mock.Anything, mock.AnythingOfType("domain.User"),
		mock.AnythingOfType("service.CreateDossierInput")).Return(created, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/dossiers", gin.H{
		"client_name":  "Imprimerie Dupont",
		"machine_type": "roland",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)

	var dossier domain.Dossier
	assert.NoError(t, json.Unmarshal(resp.Data, &dossier))
	assert.Equal(t, "CMD-2026-AAAA1111", dossier.OrderNumber)
	svc.AssertExpectations(t)
}

func TestDossierHandler_Create_MissingFields(t *testing.T) {
	svc := new(mocks.MockDossierService)
	h := handler.NewDossierHandler(svc)

	r := gin.New()
	r.POST("/dossiers", withIdentity(domain.User{ID: uuid.New(), Role: domain.RolePreparateur}), h.Create)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/dossiers", gin.H{"description": "no client"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestDossierHandler_Create_WithoutIdentity(t *testing.T) {
	svc := new(mocks.MockDossierService)
	h := handler.NewDossierHandler(svc)

	r := gin.New()
	r.POST("/dossiers", h.Create)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/dossiers", gin.H{
		"client_name":  "X",
		"machine_type": "roland",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDossierHandler_List_PassesPagination(t *testing.T) {
	svc := new(mocks.MockDossierService)
	h := handler.NewDossierHandler(svc)
	user := domain.User{ID: uuid.New(), Role: domain.RoleAdmin}

	r := gin.New()
	r.GET("/dossiers", withIdentity(user), h.List)

	svc.On("List", mock.Anything, mock.AnythingOfType("domain.User"), 40, 20).
		Return([]domain.Dossier{}, 73, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dossiers?offset=40&limit=20", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 73, resp.Meta.Total)
	assert.Equal(t, 40, resp.Meta.Offset)
	svc.AssertExpectations(t)
}

func TestDossierHandler_ChangeStatus_DenialReasonReachesBody(t *testing.T) {
	svc := new(mocks.MockDossierService)
	h := handler.NewDossierHandler(svc)
	user := domain.User{ID: uuid.New(), Role: domain.RolePreparateur}
	dossier := domain.Dossier{ID: uuid.New(), Status: domain.StatusEnCours, OwnerID: uuid.New()}

	r := gin.New()
	r.POST("/dossiers/:id/status", withIdentity(user), withDossier(dossier), h.ChangeStatus)

	svc.On("ChangeStatus", mock.Anything, mock.AnythingOfType("domain.User"), dossier,
		mock.AnythingOfType("service.ChangeStatusInput")).
		Return(nil, domain.Denied("this dossier belongs to another preparer"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/dossiers/"+dossier.ID.String()+"/status",
		gin.H{"target_status": "pret_impression"}))

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)
	assert.Equal(t, "this dossier belongs to another preparer", resp.Error.Message)
}

func TestDossierHandler_ChangeStatus_ConflictIs409(t *testing.T) {
	svc := new(mocks.MockDossierService)
	h := handler.NewDossierHandler(svc)
	user := domain.User{ID: uuid.New(), Role: domain.RolePreparateur}
	dossier := domain.Dossier{ID: uuid.New(), Status: domain.StatusEnCours, OwnerID: user.ID}

	r := gin.New()
	r.POST("/dossiers/:id/status", withIdentity(user), withDossier(dossier), h.ChangeStatus)

	svc.On("ChangeStatus", mock.Anything, mock.AnythingOfType("domain.User"), dossier,
		mock.AnythingOfType("service.ChangeStatusInput")).
		Return(nil, domain.ErrStatusConflict)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/dossiers/"+dossier.ID.String()+"/status",
		gin.H{"target_status": "pret_impression"}))

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "STATUS_CONFLICT", resp.Error.Code)
}

func TestDossierHandler_Get_ReturnsBoundDossier(t *testing.T) {
	svc := new(mocks.MockDossierService)
	h := handler.NewDossierHandler(svc)
	dossier := domain.Dossier{ID: uuid.New(), OrderNumber: "CMD-2026-BBBB2222"}

	r := gin.New()
	r.GET("/dossiers/:id", withDossier(dossier), h.Get)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dossiers/"+dossier.ID.String(), http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	var got domain.Dossier
	assert.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "CMD-2026-BBBB2222", got.OrderNumber)
	svc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestDossierHandler_Import(t *testing.T) {
	svc := new(mocks.MockDossierService)
	h := handler.NewDossierHandler(svc)
	user := domain.User{ID: uuid.New(), Role: domain.RoleAdmin}

	r := gin.New()
	r.POST("/dossiers/import", withIdentity(user), h.Import)

	svc.On("ImportLegacy", mock.Anything, mock.AnythingOfType("domain.User"),
		mock.AnythingOfType("[]map[string]interface {}")).Return(2, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/dossiers/import", gin.H{
		"records": []gin.H{
			{"client_name": "A", "machine_type": "roland"},
			{"client_name": "B", "machine_type": "xerox"},
		},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	var data map[string]int
	assert.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 2, data["imported"])
}
